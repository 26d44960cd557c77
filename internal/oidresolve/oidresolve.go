// Package oidresolve performs the Document Generator's two recursive
// lookups across a closure of symbol tables: numeric OID resolution
// (§4.3) and base-type chain resolution (§4.4). Both walks are
// cycle-safe: a visited set is threaded through the recursion and a
// repeated name aborts with an error instead of looping forever.
package oidresolve

import (
	"fmt"

	"github.com/snmpmib/gomib/internal/normalize"
	"github.com/snmpmib/gomib/symtable"
)

// Tables is the closure of per-module symbol tables a resolution walk
// may need: the module currently being resolved, plus every module it
// (transitively) imports from.
type Tables map[string]*symtable.SymbolTable

// Error is raised when an OID or base-type reference cannot be
// resolved: an unknown symbol, a cross-module reference to a module
// missing from Tables, or a cycle.
type Error struct {
	Symbol  string
	Module  string
	Message string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s.%s: %s", e.Module, e.Symbol, e.Message)
}

// Resolve computes the numeric OID (as a slice of sub-identifiers) for
// ref, which was declared in selfModule. It recurses left-to-right:
// the well-known X.660 roots terminate immediately, a named parent is
// looked up (locally or, if ParentModule is set or the name is
// imported, in the owning module's table) and resolved first, and a
// literal base needs no further recursion.
func Resolve(ref symtable.OIDRef, selfModule string, tables Tables) ([]uint32, error) {
	return resolve(ref, selfModule, tables, make(map[string]struct{}))
}

func resolve(ref symtable.OIDRef, selfModule string, tables Tables, visited map[string]struct{}) ([]uint32, error) {
	switch ref.BaseKind {
	case symtable.OIDBaseWellKnown:
		return append([]uint32{ref.RootArc}, ref.Arcs...), nil

	case symtable.OIDBaseLiteral:
		return append([]uint32(nil), ref.Arcs...), nil

	case symtable.OIDBaseNamedParent:
		parentModule, parentEntry, err := lookupSymbol(ref.ParentName, ref.ParentModule, selfModule, tables)
		if err != nil {
			return nil, err
		}
		key := parentModule + "." + ref.ParentName
		if _, seen := visited[key]; seen {
			return nil, &Error{Symbol: ref.ParentName, Module: parentModule, Message: "OID reference cycle detected"}
		}
		visited[key] = struct{}{}

		base, err := resolve(parentEntry.OID, parentModule, tables, visited)
		if err != nil {
			return nil, err
		}
		return append(append([]uint32(nil), base...), ref.Arcs...), nil

	default:
		return nil, &Error{Symbol: ref.ParentName, Module: selfModule, Message: "unknown OID base kind"}
	}
}

// lookupSymbol finds name's entry. An unqualified name defined in the
// referencing module's own table resolves there; otherwise the explicit
// module qualifier (if any) is tried first, then the module the
// referencing module's import map names, then the referencing module.
func lookupSymbol(name, explicitModule, selfModule string, tables Tables) (string, *symtable.Entry, error) {
	candidates := make([]string, 0, 2)
	if explicitModule != "" {
		candidates = append(candidates, explicitModule)
	}

	self, ok := tables[selfModule]
	if !ok {
		return "", nil, &Error{Symbol: name, Module: selfModule, Message: "module not present in resolution closure"}
	}
	if entry, ok := self.Lookup(name); ok && explicitModule == "" {
		return selfModule, entry, nil
	}
	if m, ok := self.ImportMap[name]; ok {
		candidates = append(candidates, m)
	}
	candidates = append(candidates, selfModule)

	for _, mod := range candidates {
		table, ok := tables[mod]
		if !ok {
			continue
		}
		if entry, ok := table.Lookup(name); ok {
			return mod, entry, nil
		}
	}
	return "", nil, &Error{Symbol: name, Module: selfModule, Message: "unknown parent symbol: " + name}
}

// BaseType is the fully reduced base type for a syntax reference: the
// terminal type name after following every TC alias in the chain, with
// every subtype constraint encountered along the way merged together.
type BaseType struct {
	TypeName string
	Subtype  symtable.Subtype
}

// ResolveBaseType walks ref's TC chain to its terminal base type,
// merging subtype constraints as it goes. At each step the child's
// subtype list is prepended onto the parent's, since a TC narrowing a
// range further adds its own bound ahead of the one it inherits.
func ResolveBaseType(ref *symtable.SyntaxRef, selfModule string, tables Tables) (*BaseType, error) {
	return resolveBaseType(ref, selfModule, tables, make(map[string]struct{}))
}

func resolveBaseType(ref *symtable.SyntaxRef, selfModule string, tables Tables, visited map[string]struct{}) (*BaseType, error) {
	if ref == nil || isBaseTypeName(ref.TypeName) {
		name := ""
		var sub symtable.Subtype
		if ref != nil {
			name = ref.TypeName
			sub = ref.Subtype
		}
		return &BaseType{TypeName: name, Subtype: sub}, nil
	}

	mod := ref.DefiningModule
	if mod == "" {
		mod = selfModule
	}
	key := mod + "." + ref.TypeName
	if _, seen := visited[key]; seen {
		return nil, &Error{Symbol: ref.TypeName, Module: mod, Message: "base type reference cycle detected"}
	}
	visited[key] = struct{}{}

	table, ok := tables[mod]
	if !ok {
		return nil, &Error{Symbol: ref.TypeName, Module: mod, Message: "module not present in resolution closure"}
	}
	parentEntry, ok := table.Lookup(ref.TypeName)
	if !ok {
		return nil, &Error{Symbol: ref.TypeName, Module: mod, Message: "unknown type reference"}
	}
	if parentEntry.Syntax == nil {
		return &BaseType{TypeName: ref.TypeName, Subtype: ref.Subtype}, nil
	}

	parent, err := resolveBaseType(parentEntry.Syntax, mod, tables, visited)
	if err != nil {
		return nil, err
	}

	return &BaseType{
		TypeName: parent.TypeName,
		Subtype:  mergeSubtype(ref.Subtype, parent.Subtype),
	}, nil
}

// mergeSubtype combines child's constraint with parent's. Range and
// size lists concatenate with child's bounds first; bits maps are
// unioned, child's value winning on a shared label; an enumeration, or
// a child of a different kind, replaces parent's constraint.
func mergeSubtype(child, parent symtable.Subtype) symtable.Subtype {
	if child.Kind == symtable.SubtypeNone {
		return parent
	}
	if parent.Kind == symtable.SubtypeNone {
		return child
	}
	if child.Kind != parent.Kind {
		// A TC that changes shape (e.g. an enumeration built on a ranged
		// integer) keeps its own constraint; the parent's no longer
		// applies to the narrower type.
		return child
	}
	merged := symtable.Subtype{Kind: child.Kind}
	switch child.Kind {
	case symtable.SubtypeIntegerRange, symtable.SubtypeOctetStringSize:
		merged.Ranges = append(append([]symtable.RangeBound(nil), child.Ranges...), parent.Ranges...)
	case symtable.SubtypeEnumeration:
		return child
	case symtable.SubtypeBits:
		merged.Bits = mergeInt64Map(child.Bits, parent.Bits)
	}
	return merged
}

func mergeInt64Map(child, parent map[string]int64) map[string]int64 {
	out := make(map[string]int64, len(child)+len(parent))
	for k, v := range parent {
		out[k] = v
	}
	for k, v := range child {
		out[k] = v
	}
	return out
}

func isBaseTypeName(name string) bool {
	switch name {
	case "Integer32", "Unsigned32", "Counter32", "Counter64", "Gauge32",
		"TimeTicks", "IpAddress", "OctetString", "ObjectIdentifier", "Bits", "Opaque",
		"MibTable", "MibTableRow", "MibTableColumn", "":
		return true
	default:
		return false
	}
}

// NormalizeCandidate is a small convenience re-export so callers that
// only have a raw identifier (not yet STB-normalized) can build a
// lookup key the same way the builder did.
func NormalizeCandidate(name string) string {
	return normalize.STB(name)
}
