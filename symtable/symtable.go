// Package symtable implements the Symbol Table Builder (STB): the first
// of the two code generation passes. It walks a parsed MIB module's
// declarations in source order and produces a per-module symbol table
// describing every declared name's kind, OID, syntax, and the
// dependencies ("parents") that must already be registered before it is
// admissible.
//
// Admission follows a deferral fixpoint: an entry whose parents are not
// yet known is postponed and retried whenever a new name is admitted,
// until every entry has either been admitted or the pass concludes with
// unresolved names (a semantic error).
package symtable

import (
	"github.com/snmpmib/gomib/internal/ast"
)

// Kind identifies the declaration kind a symbol table entry describes.
type Kind int

const (
	KindModuleIdentity Kind = iota
	KindObjectType
	KindObjectIdentity
	KindNotificationType
	KindObjectGroup
	KindNotificationGroup
	KindModuleCompliance
	KindAgentCapabilities
	KindTypeDeclaration
	KindMibIdentifier
	KindFakeColumn
)

func (k Kind) String() string {
	switch k {
	case KindModuleIdentity:
		return "ModuleIdentity"
	case KindObjectType:
		return "ObjectType"
	case KindObjectIdentity:
		return "ObjectIdentity"
	case KindNotificationType:
		return "NotificationType"
	case KindObjectGroup:
		return "ObjectGroup"
	case KindNotificationGroup:
		return "NotificationGroup"
	case KindModuleCompliance:
		return "ModuleCompliance"
	case KindAgentCapabilities:
		return "AgentCapabilities"
	case KindTypeDeclaration:
		return "TypeDeclaration"
	case KindMibIdentifier:
		return "MibIdentifier"
	case KindFakeColumn:
		return "fakeColumn"
	default:
		return "Unknown"
	}
}

// OIDBaseKind distinguishes the three ways an OIDRef's base arc(s) are
// determined before its trailing literal Arcs are appended.
type OIDBaseKind int

const (
	// OIDBaseWellKnown is the X.660 root: iso=1, ccitt=0, joint-iso-ccitt=2.
	OIDBaseWellKnown OIDBaseKind = iota
	// OIDBaseNamedParent resolves ParentName in ParentModule's symbol table.
	OIDBaseNamedParent
	// OIDBaseLiteral means there is no symbolic parent at all; Arcs holds
	// every component (this covers the rare bare-numeric OID value).
	OIDBaseLiteral
)

// OIDRef is an OID reference as described in §3: a base (well-known
// root, named symbolic parent, or pure literal) followed by a sequence
// of literal trailing arcs.
type OIDRef struct {
	BaseKind     OIDBaseKind
	RootArc      uint32
	ParentName   string
	ParentModule string
	Arcs         []uint32
}

// SyntaxRef is the reduced `((typeName, definingModule), subtypeConstraint)`
// pair from §3.
type SyntaxRef struct {
	TypeName       string
	DefiningModule string
	Subtype        Subtype
}

// SubtypeKind distinguishes which subtype constraint (if any) a syntax
// reference carries.
type SubtypeKind int

const (
	SubtypeNone SubtypeKind = iota
	SubtypeEnumeration
	SubtypeIntegerRange
	SubtypeOctetStringSize
	SubtypeBits
)

// RangeBound is a single (min, max) bound in a range or size list.
type RangeBound struct {
	Min int64
	Max int64
}

// Subtype is a tagged subtype constraint.
type Subtype struct {
	Kind        SubtypeKind
	Enumeration map[string]int64 // name -> value, SubtypeEnumeration
	Bits        map[string]int64 // name -> bit position, SubtypeBits
	Ranges      []RangeBound     // SubtypeIntegerRange / SubtypeOctetStringSize
}

// Entry is a single symbol table entry (§3).
type Entry struct {
	OrigName string
	NormName string
	Kind     Kind
	OID      OIDRef
	Syntax   *SyntaxRef
	Parents  []string
	DefVal   ast.DefValContent

	// AugmentsRow is the normalized name of the row this entry AUGMENTS,
	// empty if this object-type has no AUGMENTS clause.
	AugmentsRow string
	// Index holds the normalized names of this row's INDEX members, in
	// declaration order, including any synthesized fake columns
	// interleaved at the position a bare-type index item occupied.
	Index []IndexMember
	// Module records which module this entry belongs to, so callers that
	// hold only an Entry (not also its owning SymbolTable) can still
	// qualify cross-module references.
	Module string
}

// IndexMember is one element of an object-type's INDEX list.
type IndexMember struct {
	Name    string
	Implied bool
	// Fake is true if this member was synthesized (§4.5 fake column
	// synthesis) rather than referring to a declared column.
	Fake bool
}

// SymbolTable is the STB's output for one module (§3's SymbolTable[M]).
type SymbolTable struct {
	Module string

	entries map[string]*Entry
	order   []string
	rows    map[string]struct{}
	cols    map[string]struct{}

	// ImportMap maps an imported symbol to the module it was imported
	// from (after SMIv1->SMIv2 rewriting and constant-import merging).
	ImportMap map[string]string
}

// Lookup returns the entry for a normalized name, if registered.
func (t *SymbolTable) Lookup(normName string) (*Entry, bool) {
	e, ok := t.entries[normName]
	return e, ok
}

// Order returns the admission order (a permutation of registered names).
func (t *SymbolTable) Order() []string {
	return append([]string(nil), t.order...)
}

// IsRow reports whether normName was recorded as a conceptual table's row.
func (t *SymbolTable) IsRow(normName string) bool {
	_, ok := t.rows[normName]
	return ok
}

// IsColumn reports whether normName was recorded as a row's column.
func (t *SymbolTable) IsColumn(normName string) bool {
	_, ok := t.cols[normName]
	return ok
}

// Len returns the number of registered entries.
func (t *SymbolTable) Len() int {
	return len(t.entries)
}

// SemanticError is raised for malformed input the builder can diagnose:
// duplicate symbol, unknown OID parent, unresolved postponed symbols,
// an empty or incomplete OID assignment, and reuse of a consumed
// builder (§7, case 1). OID cycles are reported by oidresolve, not here.
type SemanticError struct {
	Module  string
	Message string
}

func (e *SemanticError) Error() string {
	return e.Module + ": " + e.Message
}
