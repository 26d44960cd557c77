package symtable

import (
	"fmt"
	"log/slog"
	"math"
	"sort"
	"strings"

	"github.com/snmpmib/gomib/internal/ast"
	"github.com/snmpmib/gomib/internal/importtable"
	"github.com/snmpmib/gomib/internal/normalize"
	"github.com/snmpmib/gomib/internal/types"
)

// pendingEntry is an admitted-but-not-yet-registered entry waiting on
// one or more parents.
type pendingEntry struct {
	entry   *Entry
	missing map[string]struct{}
}

// Builder runs the Symbol Table Builder pass for a single module. A
// Builder is consumed by its one Build call; reuse returns an error
// rather than silently re-running.
type Builder struct {
	moduleName string
	imports    map[string]*SymbolTable
	table      *importtable.Table
	logger     *types.Logger

	importMap map[string]string

	entries map[string]*Entry
	order   []string
	rows    map[string]struct{}
	cols    map[string]struct{}

	pending    map[string]*pendingEntry
	waiters    map[string][]string
	parentOids map[string]struct{}
	fakeSeq    uint32

	built bool
}

// NewBuilder creates a Builder for moduleName. imports holds the
// already-built symbol tables of every module this one may import
// from; table supplies the SMIv1->SMIv2 rewrite and constant-imports
// rules (§4.2).
func NewBuilder(moduleName string, imports map[string]*SymbolTable, table *importtable.Table, logger *types.Logger) *Builder {
	return &Builder{
		moduleName: moduleName,
		imports:    imports,
		table:      table,
		logger:     logger,
		entries:    make(map[string]*Entry),
		rows:       make(map[string]struct{}),
		cols:       make(map[string]struct{}),
		pending:    make(map[string]*pendingEntry),
		waiters:    make(map[string][]string),
		parentOids: make(map[string]struct{}),
	}
}

// Build walks mod's declarations in source order, admitting each one
// once its parents are satisfied, and returns the completed symbol
// table once every declaration has been admitted and every OID parent
// reference is known to resolve.
func (b *Builder) Build(mod *ast.Module) (*SymbolTable, error) {
	if b.built {
		return nil, &SemanticError{Module: b.moduleName, Message: "builder already consumed"}
	}
	b.built = true

	b.importMap = buildImportMap(mod, b.table)
	if b.logger != nil {
		b.logger.Trace("symtable: built import map", slog.String("module", b.moduleName), slog.Int("imports", len(b.importMap)))
	}

	for _, def := range mod.Body {
		if err := b.process(def); err != nil {
			return nil, err
		}
	}

	if len(b.pending) > 0 {
		names := make([]string, 0, len(b.pending))
		for n := range b.pending {
			names = append(names, n)
		}
		sort.Strings(names)
		return nil, &SemanticError{
			Module:  b.moduleName,
			Message: "unresolved symbols: " + strings.Join(names, ", "),
		}
	}

	parentNames := make([]string, 0, len(b.parentOids))
	for n := range b.parentOids {
		parentNames = append(parentNames, n)
	}
	sort.Strings(parentNames)
	for _, n := range parentNames {
		if !b.parentSatisfied(n) {
			return nil, &SemanticError{Module: b.moduleName, Message: "unknown parent symbol: " + n}
		}
	}

	return &SymbolTable{
		Module:    b.moduleName,
		entries:   b.entries,
		order:     b.order,
		rows:      b.rows,
		cols:      b.cols,
		ImportMap: b.importMap,
	}, nil
}

// buildImportMap merges a module's own IMPORTS (after SMIv1->SMIv2
// rewriting) with the always-available constant imports (§4.2).
func buildImportMap(mod *ast.Module, table *importtable.Table) map[string]string {
	importMap := make(map[string]string)
	for _, clause := range mod.Imports {
		kept, rewritten := table.Apply(clause.FromModule.Name, clause.Symbols)
		for _, id := range kept {
			importMap[normalize.STB(id.Name)] = clause.FromModule.Name
		}
		for _, r := range rewritten {
			importMap[normalize.STB(r.Symbol)] = r.Module
		}
	}
	table.MergeConstants(importMap)
	return importMap
}

// process dispatches a single body declaration to its entry builder.
func (b *Builder) process(def ast.Definition) error {
	switch d := def.(type) {
	case *ast.ObjectTypeDef:
		return b.genObjectType(d)
	case *ast.ModuleIdentityDef:
		return b.genSimple(d.Name, KindModuleIdentity, d.OidAssignment)
	case *ast.ObjectIdentityDef:
		return b.genSimple(d.Name, KindObjectIdentity, d.OidAssignment)
	case *ast.NotificationTypeDef:
		return b.genSimple(d.Name, KindNotificationType, d.OidAssignment)
	case *ast.ObjectGroupDef:
		return b.genSimple(d.Name, KindObjectGroup, d.OidAssignment)
	case *ast.NotificationGroupDef:
		return b.genSimple(d.Name, KindNotificationGroup, d.OidAssignment)
	case *ast.ModuleComplianceDef:
		return b.genSimple(d.Name, KindModuleCompliance, d.OidAssignment)
	case *ast.AgentCapabilitiesDef:
		return b.genSimple(d.Name, KindAgentCapabilities, d.OidAssignment)
	case *ast.ValueAssignmentDef:
		return b.genSimple(d.Name, KindMibIdentifier, d.OidAssignment)
	case *ast.TrapTypeDef:
		return b.genTrapType(d)
	case *ast.TextualConventionDef:
		return b.genTypeDecl(d.Name, d.Syntax.Syntax)
	case *ast.TypeAssignmentDef:
		return b.genTypeAssignmentDecl(d)
	case *ast.MacroDefinitionDef, *ast.ErrorDef:
		// Neither contributes a symbol; MACRO bodies are never parsed and
		// ErrorDef only records a parse recovery point.
		return nil
	default:
		return nil
	}
}

// genSimple registers a declaration kind whose only structure STB cares
// about is its name and OID (MODULE-IDENTITY, OBJECT-IDENTITY,
// NOTIFICATION-TYPE, the two GROUP kinds, MODULE-COMPLIANCE,
// AGENT-CAPABILITIES, and plain value assignments).
func (b *Builder) genSimple(name ast.Ident, kind Kind, oa ast.OidAssignment) error {
	oid, err := b.genOidAssignment(oa)
	if err != nil {
		return err
	}
	entry := &Entry{
		OrigName: name.Name,
		NormName: normalize.STB(name.Name),
		Kind:     kind,
		OID:      oid,
		Module:   b.moduleName,
	}
	return b.regSym(entry)
}

// genTrapType builds the SMIv1 TRAP-TYPE entry. Its OID is not a direct
// assignment: it is the enterprise OID, followed by a literal 0, then
// the trap number (RFC 1215).
func (b *Builder) genTrapType(d *ast.TrapTypeDef) error {
	parentName := normalize.STB(d.Enterprise.Name)
	b.parentOids[parentName] = struct{}{}
	entry := &Entry{
		OrigName: d.Name.Name,
		NormName: normalize.STB(d.Name.Name),
		Kind:     KindNotificationType,
		OID: OIDRef{
			BaseKind:     OIDBaseNamedParent,
			ParentName:   parentName,
			ParentModule: b.moduleName,
			Arcs:         []uint32{0, d.TrapNumber},
		},
		Module: b.moduleName,
	}
	return b.regSym(entry)
}

// genTypeDecl registers a type declaration (TEXTUAL-CONVENTION, or a
// TypeAssignmentDef reducible to a simple/constrained syntax).
func (b *Builder) genTypeDecl(name ast.Ident, syntax ast.TypeSyntax) error {
	ref, err := b.genSyntax(syntax)
	if err != nil {
		return err
	}
	var parents []string
	if ref.TypeName != "" {
		parents = append(parents, ref.TypeName)
	}
	entry := &Entry{
		OrigName: name.Name,
		NormName: normalize.STB(name.Name),
		Kind:     KindTypeDeclaration,
		Syntax:   ref,
		Parents:  parents,
		Module:   b.moduleName,
	}
	return b.regSym(entry)
}

// genTypeAssignmentDecl handles the two TypeAssignmentDef shapes that
// don't reduce to a simple syntax: SEQUENCE (a row definition, whose
// fields become recorded columns) and CHOICE (the SMIv1 ObjectSyntax
// family). CHOICE admits unconditionally; SEQUENCE registers no entry
// and only records its fields as columns. Everything else falls through
// to genTypeDecl.
func (b *Builder) genTypeAssignmentDecl(d *ast.TypeAssignmentDef) error {
	switch s := d.Syntax.(type) {
	case *ast.TypeSyntaxSequence:
		// A SEQUENCE declaration has no parentType (it's a field list,
		// not a type reference), so pysmi's genTypeDeclaration never
		// calls regSym for it; only the row's column set is recorded.
		for _, f := range s.Fields {
			b.cols[normalize.STB(f.Name.Name)] = struct{}{}
		}
		return nil
	case *ast.TypeSyntaxChoice:
		entry := &Entry{
			OrigName: d.Name.Name,
			NormName: normalize.STB(d.Name.Name),
			Kind:     KindTypeDeclaration,
			Module:   b.moduleName,
		}
		return b.regSym(entry)
	default:
		return b.genTypeDecl(d.Name, d.Syntax)
	}
}

// genObjectType builds the OBJECT-TYPE entry: its reduced syntax, its
// INDEX members (synthesizing fake columns where needed), and its OID.
func (b *Builder) genObjectType(d *ast.ObjectTypeDef) error {
	syntaxRef, err := b.genSyntax(d.Syntax.Syntax)
	if err != nil {
		return err
	}

	var parents []string
	if syntaxRef.TypeName != "" {
		parents = append(parents, syntaxRef.TypeName)
	}

	augmentsRow := ""
	if d.Augments != nil {
		augmentsRow = normalize.STB(d.Augments.Target.Name)
		parents = append(parents, augmentsRow)
	}

	normName := normalize.STB(d.Name.Name)

	var index []IndexMember
	if d.Index != nil {
		index = b.genIndex(d.Index, normName)
	}

	oid, err := b.genOidAssignment(d.OidAssignment)
	if err != nil {
		return err
	}

	entry := &Entry{
		OrigName:    d.Name.Name,
		NormName:    normName,
		Kind:        KindObjectType,
		OID:         oid,
		Syntax:      syntaxRef,
		Parents:     parents,
		AugmentsRow: augmentsRow,
		Index:       index,
		Module:      b.moduleName,
	}
	if d.DefVal != nil {
		entry.DefVal = d.DefVal.Value
	}
	return b.regSym(entry)
}

// genIndex converts an INDEX (or PIB-INDEX) clause's items into
// IndexMembers, synthesizing a fake column (§4.5) for every bare-type
// item that isn't a reference to a declared column.
func (b *Builder) genIndex(idx ast.IndexClause, owner string) []IndexMember {
	items := idx.Indexes()
	members := make([]IndexMember, 0, len(items))
	for _, item := range items {
		if importtable.IsSMIv1IndexType(item.Object.Name) {
			members = append(members, IndexMember{
				Name:    b.nextFakeColumn(owner, item.Object.Name),
				Implied: item.Implied,
				Fake:    true,
			})
			continue
		}
		members = append(members, IndexMember{
			Name:    normalize.STB(item.Object.Name),
			Implied: item.Implied,
		})
	}
	return members
}

// nextFakeColumn synthesizes the next pysmiFakeColN entry, owned by
// owner's OID. Fake columns admit unconditionally: their only
// dependency is the owning row, which is registered by the same
// genObjectType call immediately after genIndex returns.
func (b *Builder) nextFakeColumn(owner, bareType string) string {
	b.fakeSeq++
	local := b.fakeSeq
	name := fmt.Sprintf("pysmiFakeCol%d", 999+local)

	b.parentOids[owner] = struct{}{}
	entry := &Entry{
		OrigName: name,
		NormName: name,
		Kind:     KindFakeColumn,
		OID: OIDRef{
			BaseKind:     OIDBaseNamedParent,
			ParentName:   owner,
			ParentModule: b.moduleName,
			Arcs:         []uint32{uint32(local)},
		},
		Syntax: &SyntaxRef{TypeName: normalize.STB(importtable.ResolveTypeClass(bareType))},
		Module: b.moduleName,
	}
	b.admit(entry)
	b.cols[name] = struct{}{}
	return name
}

// genOidAssignment reduces an OidAssignment to an OIDRef: the first
// component supplies the symbolic (or literal) base, every remaining
// component contributes a literal trailing arc (§4.3).
func (b *Builder) genOidAssignment(oa ast.OidAssignment) (OIDRef, error) {
	if len(oa.Components) == 0 {
		return OIDRef{}, &SemanticError{Module: b.moduleName, Message: "empty OID assignment"}
	}

	first := oa.Components[0]
	var ref OIDRef
	if name := first.ComponentName(); name != nil {
		switch name.Name {
		case "iso":
			ref = OIDRef{BaseKind: OIDBaseWellKnown, RootArc: 1}
		case "ccitt":
			ref = OIDRef{BaseKind: OIDBaseWellKnown, RootArc: 0}
		case "joint-iso-ccitt":
			ref = OIDRef{BaseKind: OIDBaseWellKnown, RootArc: 2}
		default:
			parentModule := ""
			if mod := first.Module(); mod != nil {
				parentModule = mod.Name
			}
			parentName := normalize.STB(name.Name)
			ref = OIDRef{BaseKind: OIDBaseNamedParent, ParentName: parentName, ParentModule: parentModule}
			b.parentOids[parentName] = struct{}{}
		}
	} else if num, ok := first.Number(); ok {
		ref = OIDRef{BaseKind: OIDBaseLiteral, Arcs: []uint32{num}}
	} else {
		return OIDRef{}, &SemanticError{Module: b.moduleName, Message: "OID component has neither name nor number"}
	}

	for _, comp := range oa.Components[1:] {
		n, ok := comp.Number()
		if !ok {
			return OIDRef{}, &SemanticError{Module: b.moduleName, Message: "OID component missing a numeric value"}
		}
		ref.Arcs = append(ref.Arcs, n)
	}
	return ref, nil
}

// genSyntax reduces a TypeSyntax to the `((typeName, definingModule),
// subtype)` pair of §3. Row detection looks only at what has already
// been registered in b.rows, so it is sensitive to whether the
// conceptual table's SEQUENCE OF declaration has already been
// processed -- the same source-order dependency the source exhibits.
func (b *Builder) genSyntax(syntax ast.TypeSyntax) (*SyntaxRef, error) {
	switch s := syntax.(type) {
	case *ast.TypeSyntaxTypeRef:
		normRef := normalize.STB(s.Name.Name)
		if _, isRow := b.rows[normRef]; isRow {
			return &SyntaxRef{TypeName: "MibTableRow"}, nil
		}
		className := normalize.STB(importtable.ResolveTypeClass(s.Name.Name))
		if importtable.IsBaseType(className) {
			return &SyntaxRef{TypeName: className}, nil
		}
		mod := b.moduleName
		if m, ok := b.importMap[className]; ok {
			mod = m
		}
		return &SyntaxRef{TypeName: className, DefiningModule: mod}, nil

	case *ast.TypeSyntaxIntegerEnum:
		sub := Subtype{}
		if len(s.NamedNumbers) > 0 {
			sub.Kind = SubtypeEnumeration
			sub.Enumeration = make(map[string]int64, len(s.NamedNumbers))
			for _, nn := range s.NamedNumbers {
				sub.Enumeration[nn.Name.Name] = nn.Value
			}
		}
		return &SyntaxRef{TypeName: "Integer32", Subtype: sub}, nil

	case *ast.TypeSyntaxBits:
		sub := Subtype{Kind: SubtypeBits, Bits: make(map[string]int64, len(s.NamedBits))}
		for _, nn := range s.NamedBits {
			sub.Bits[nn.Name.Name] = nn.Value
		}
		return &SyntaxRef{TypeName: "Bits", Subtype: sub}, nil

	case *ast.TypeSyntaxOctetString:
		return &SyntaxRef{TypeName: "OctetString"}, nil

	case *ast.TypeSyntaxObjectIdentifier:
		return &SyntaxRef{TypeName: "ObjectIdentifier"}, nil

	case *ast.TypeSyntaxSequenceOf:
		b.rows[normalize.STB(s.EntryType.Name)] = struct{}{}
		return &SyntaxRef{TypeName: "MibTable"}, nil

	case *ast.TypeSyntaxConstrained:
		base, err := b.genSyntax(s.Base)
		if err != nil {
			return nil, err
		}
		sub, err := genConstraintSubtype(s.Constraint)
		if err != nil {
			return nil, err
		}
		return &SyntaxRef{TypeName: base.TypeName, DefiningModule: base.DefiningModule, Subtype: sub}, nil

	case *ast.TypeSyntaxSequence, *ast.TypeSyntaxChoice:
		// Not a simple syntax; callers that can reach this (there are
		// none in the current grammar position) get no blocking parent.
		return &SyntaxRef{}, nil

	default:
		return &SyntaxRef{}, nil
	}
}

func genConstraintSubtype(c ast.Constraint) (Subtype, error) {
	switch cc := c.(type) {
	case *ast.ConstraintSize:
		bounds, err := convertRanges(cc.Ranges)
		if err != nil {
			return Subtype{}, err
		}
		return Subtype{Kind: SubtypeOctetStringSize, Ranges: bounds}, nil
	case *ast.ConstraintRange:
		bounds, err := convertRanges(cc.Ranges)
		if err != nil {
			return Subtype{}, err
		}
		return Subtype{Kind: SubtypeIntegerRange, Ranges: bounds}, nil
	default:
		return Subtype{}, nil
	}
}

func convertRanges(ranges []ast.Range) ([]RangeBound, error) {
	out := make([]RangeBound, 0, len(ranges))
	for _, r := range ranges {
		minV, err := rangeValueToInt64(r.Min)
		if err != nil {
			return nil, err
		}
		maxV := minV
		if r.Max != nil {
			maxV, err = rangeValueToInt64(r.Max)
			if err != nil {
				return nil, err
			}
		}
		out = append(out, RangeBound{Min: minV, Max: maxV})
	}
	return out, nil
}

func rangeValueToInt64(v ast.RangeValue) (int64, error) {
	switch vv := v.(type) {
	case *ast.RangeValueSigned:
		return vv.Value, nil
	case *ast.RangeValueUnsigned:
		return int64(vv.Value), nil
	case *ast.RangeValueIdent:
		switch vv.Name.Name {
		case "MIN":
			return math.MinInt64, nil
		case "MAX":
			return math.MaxInt64, nil
		default:
			return 0, fmt.Errorf("unknown range bound identifier %q", vv.Name.Name)
		}
	default:
		return 0, fmt.Errorf("unsupported range value type %T", v)
	}
}

// regSym admits entry immediately if every parent is already
// satisfied, otherwise defers it and registers it as a waiter on each
// missing parent.
func (b *Builder) regSym(entry *Entry) error {
	if _, dup := b.entries[entry.NormName]; dup {
		return &SemanticError{Module: b.moduleName, Message: "duplicate symbol: " + entry.NormName}
	}
	if _, dup := b.pending[entry.NormName]; dup {
		return &SemanticError{Module: b.moduleName, Message: "duplicate symbol: " + entry.NormName}
	}

	missing := make(map[string]struct{})
	for _, p := range entry.Parents {
		if p == "" {
			continue
		}
		if !b.parentSatisfied(p) {
			missing[p] = struct{}{}
		}
	}

	if len(missing) == 0 {
		b.admit(entry)
		return nil
	}

	b.pending[entry.NormName] = &pendingEntry{entry: entry, missing: missing}
	for p := range missing {
		b.waiters[p] = append(b.waiters[p], entry.NormName)
	}
	return nil
}

// parentSatisfied reports whether name is already resolvable: a base
// type, a built-in conceptual-table token, a locally admitted entry,
// an imported symbol, or a known row type.
func (b *Builder) parentSatisfied(name string) bool {
	if importtable.IsBaseType(name) {
		return true
	}
	switch name {
	case "MibTable", "MibTableRow", "MibTableColumn":
		return true
	}
	if _, ok := b.entries[name]; ok {
		return true
	}
	if _, ok := b.importMap[name]; ok {
		return true
	}
	if _, ok := b.rows[name]; ok {
		return true
	}
	return false
}

// admit registers entry as resolved and wakes every pending entry that
// was waiting on it, recursively.
func (b *Builder) admit(entry *Entry) {
	b.entries[entry.NormName] = entry
	b.order = append(b.order, entry.NormName)
	b.wake(entry.NormName)
}

func (b *Builder) wake(name string) {
	waiting := b.waiters[name]
	if len(waiting) == 0 {
		return
	}
	delete(b.waiters, name)
	for _, waiterName := range waiting {
		pe, ok := b.pending[waiterName]
		if !ok {
			continue
		}
		delete(pe.missing, name)
		if len(pe.missing) == 0 {
			delete(b.pending, waiterName)
			b.admit(pe.entry)
		}
	}
}
