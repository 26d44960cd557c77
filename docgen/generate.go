package docgen

import (
	"strconv"
	"strings"

	"github.com/snmpmib/gomib/internal/ast"
	"github.com/snmpmib/gomib/internal/normalize"
	"github.com/snmpmib/gomib/internal/oidresolve"
	"github.com/snmpmib/gomib/symtable"
)

// Build renders mod's Document. tables must contain mod's own symbol
// table (keyed by mod.Name.Name) plus the symbol table of every module
// it imports from, transitively.
func Build(mod *ast.Module, tables oidresolve.Tables, opts Options) (*Document, error) {
	selfModule := mod.Name.Name
	table, ok := tables[selfModule]
	if !ok {
		return nil, &CodegenError{Module: selfModule, Message: "module's own symbol table missing from closure"}
	}

	g := &generator{
		module: selfModule,
		table:  table,
		tables: tables,
		opts:   opts,
	}

	doc := NewOrderedDoc()
	doc.Set("module", selfModule)
	doc.Set("imports", copyImportMap(table.ImportMap))

	if len(opts.Comments) > 0 {
		meta := NewOrderedDoc()
		meta.Set("comments", opts.Comments)
		meta.Set("module", selfModule)
		doc.Set("meta", meta)
	}

	order := table.Order()
	for _, name := range order {
		entry, _ := table.Lookup(name)
		record, err := g.genRecord(entry)
		if err != nil {
			return nil, err
		}
		if def := definitionOf(mod, entry.OrigName); def != nil {
			if err := g.enrich(record, def); err != nil {
				return nil, err
			}
		}
		doc.Set(name, record)
	}
	doc.Set("_symtable_order", order)

	return &Document{OrderedDoc: doc}, nil
}

// definitionOf finds the Definition named origName in mod's body, if
// any. The symbol table keeps only the reduced OIDRef/Kind/Syntax
// shape, so every field beyond that (DESCRIPTION, STATUS, REFERENCE,
// OBJECTS/NOTIFICATIONS lists, compliance refinements, AGENT-CAPABILITIES
// SUPPORTS, UNITS, MAX-ACCESS, TEXTUAL-CONVENTION DISPLAY-HINT) is
// rendered by looking back at the original declaration.
func definitionOf(mod *ast.Module, origName string) ast.Definition {
	for _, def := range mod.Body {
		if n := def.DefinitionName(); n != nil && n.Name == origName {
			return def
		}
	}
	return nil
}

// enrich dispatches a definition to the enrichment function for its
// concrete type. Definition kinds the symbol table represents fully
// already (type assignments reduced to a simple syntax, plain value
// assignments) need no further enrichment here.
func (g *generator) enrich(rec *OrderedDoc, def ast.Definition) error {
	switch d := def.(type) {
	case *ast.ModuleIdentityDef:
		return g.enrichModuleIdentity(rec, d)
	case *ast.ObjectTypeDef:
		g.enrichObjectType(rec, d)
	case *ast.ObjectIdentityDef:
		g.enrichObjectIdentity(rec, d)
	case *ast.NotificationTypeDef:
		g.setDescription(rec, d.Description.Value)
		setReference(rec, d.Reference)
		rec.Set("objects", g.identRefs(d.Objects))
	case *ast.TrapTypeDef:
		if d.Description != nil {
			g.setDescription(rec, d.Description.Value)
		}
		setReference(rec, d.Reference)
		rec.Set("objects", g.identRefs(d.Variables))
	case *ast.ObjectGroupDef:
		g.setDescription(rec, d.Description.Value)
		setReference(rec, d.Reference)
		rec.Set("objects", g.identRefs(d.Objects))
	case *ast.NotificationGroupDef:
		g.setDescription(rec, d.Description.Value)
		setReference(rec, d.Reference)
		rec.Set("objects", g.identRefs(d.Notifications))
	case *ast.ModuleComplianceDef:
		g.enrichModuleCompliance(rec, d)
	case *ast.AgentCapabilitiesDef:
		g.enrichAgentCapabilities(rec, d)
	case *ast.TextualConventionDef:
		g.enrichTextualConvention(rec, d)
	}
	return nil
}

// setDescription sets rec's "description" key, gated by the text-mode
// switch (§9): DESCRIPTION/CONTACT-INFO/ORGANIZATION/LAST-UPDATED/UNITS
// text is only rendered when GenTexts is enabled.
func (g *generator) setDescription(rec *OrderedDoc, text string) {
	if g.opts.GenTexts {
		rec.Set("description", normalize.CollapseWhitespace(text))
	}
}

// setReference sets rec's "reference" key if ref is present. Unlike
// DESCRIPTION, REFERENCE is a short bibliographic pointer rather than
// prose, so it is not gated by GenTexts.
func setReference(rec *OrderedDoc, ref *ast.QuotedString) {
	if ref != nil && ref.Value != "" {
		rec.Set("reference", ref.Value)
	}
}

// identRefs renders a list of bare identifiers (an OBJECTS,
// NOTIFICATIONS, or VARIABLES clause) as the `{module, object}` shape
// used throughout the class table.
func (g *generator) identRefs(idents []ast.Ident) []any {
	out := make([]any, 0, len(idents))
	for _, id := range idents {
		item := NewOrderedDoc()
		item.Set("module", g.moduleOf(id.Name))
		item.Set("object", normalize.DG(id.Name))
		out = append(out, item)
	}
	return out
}

// moduleOf resolves the defining module of a symbol referenced by
// name from the current module: itself if locally declared, else the
// module recorded in the import map, else the current module (a
// best-effort fallback for names the import map doesn't cover).
func (g *generator) moduleOf(name string) string {
	norm := normalize.STB(name)
	if _, ok := g.table.Lookup(norm); ok {
		return g.module
	}
	if m, ok := g.table.ImportMap[norm]; ok {
		return m
	}
	return g.module
}

func (g *generator) enrichObjectIdentity(rec *OrderedDoc, d *ast.ObjectIdentityDef) {
	g.setDescription(rec, d.Description.Value)
	setReference(rec, d.Reference)
}

// enrichObjectType adds the fields genRecord's entry-based pass can't
// reach (it only sees the symbol table's reduced Entry): UNITS,
// MAX-ACCESS, and DESCRIPTION/REFERENCE.
func (g *generator) enrichObjectType(rec *OrderedDoc, d *ast.ObjectTypeDef) {
	if g.opts.GenTexts && d.Units != nil && d.Units.Value != "" {
		rec.Set("units", normalize.CollapseWhitespace(d.Units.Value))
	}
	rec.Set("maxaccess", accessValueString(d.Access.Value))
	if d.Description != nil {
		g.setDescription(rec, d.Description.Value)
	}
	setReference(rec, d.Reference)
}

// enrichModuleCompliance renders both the MANDATORY-GROUPS list and
// the GROUP/OBJECT refinement list under the single "modulecompliance"
// key, matching pysmi's genCompliances: every item shares the
// `{module, object}` shape, and refinements additionally carry their
// own DESCRIPTION.
func (g *generator) enrichModuleCompliance(rec *OrderedDoc, d *ast.ModuleComplianceDef) {
	g.setDescription(rec, d.Description.Value)
	setReference(rec, d.Reference)

	var items []any
	for _, cm := range d.Modules {
		owner := g.module
		if cm.ModuleName != nil {
			owner = cm.ModuleName.Name
		}
		for _, grp := range cm.MandatoryGroups {
			item := NewOrderedDoc()
			item.Set("module", g.resolveComplianceModule(owner, grp.Name))
			item.Set("object", normalize.DG(grp.Name))
			items = append(items, item)
		}
		for _, c := range cm.Compliances {
			switch cc := c.(type) {
			case *ast.ComplianceGroup:
				item := NewOrderedDoc()
				item.Set("module", g.resolveComplianceModule(owner, cc.Group.Name))
				item.Set("object", normalize.DG(cc.Group.Name))
				g.setDescription(item, cc.Description.Value)
				items = append(items, item)
			case *ast.ComplianceObject:
				item := NewOrderedDoc()
				item.Set("module", g.resolveComplianceModule(owner, cc.Object.Name))
				item.Set("object", normalize.DG(cc.Object.Name))
				g.setDescription(item, cc.Description.Value)
				items = append(items, item)
			}
		}
	}
	if len(items) > 0 {
		rec.Set("modulecompliance", items)
	}
}

// resolveComplianceModule prefers an explicit MODULE clause name over
// the import-map lookup moduleOf falls back to, since a compliance
// statement may name a module it doesn't itself import symbols from.
func (g *generator) resolveComplianceModule(explicit, name string) string {
	if explicit != g.module {
		return explicit
	}
	return g.moduleOf(name)
}

// enrichAgentCapabilities renders the AGENT-CAPABILITIES record per
// pysmi's genAgentCapabilities: PRODUCT-RELEASE, STATUS, DESCRIPTION,
// REFERENCE, and one `supports` entry per SUPPORTS clause.
func (g *generator) enrichAgentCapabilities(rec *OrderedDoc, d *ast.AgentCapabilitiesDef) {
	rec.Set("productrelease", d.ProductRelease.Value)
	rec.Set("status", statusValueString(d.Status.Value))
	g.setDescription(rec, d.Description.Value)
	setReference(rec, d.Reference)

	supports := make([]any, 0, len(d.Supports))
	for _, sm := range d.Supports {
		item := NewOrderedDoc()
		item.Set("module", sm.ModuleName.Name)

		includes := make([]string, 0, len(sm.Includes))
		for _, inc := range sm.Includes {
			includes = append(includes, normalize.DG(inc.Name))
		}
		item.Set("includes", includes)

		variations := make([]any, 0, len(sm.Variations))
		for _, v := range sm.Variations {
			variations = append(variations, g.variationDoc(v))
		}
		item.Set("variations", variations)

		supports = append(supports, item)
	}
	rec.Set("supports", supports)
}

func (g *generator) variationDoc(v ast.Variation) *OrderedDoc {
	item := NewOrderedDoc()
	switch vv := v.(type) {
	case *ast.ObjectVariation:
		item.Set("object", normalize.DG(vv.Object.Name))
		if vv.Access != nil {
			item.Set("access", accessValueString(vv.Access.Value))
		}
		g.setDescription(item, vv.Description.Value)
	case *ast.NotificationVariation:
		item.Set("notification", normalize.DG(vv.Notification.Name))
		if vv.Access != nil {
			item.Set("access", accessValueString(vv.Access.Value))
		}
		g.setDescription(item, vv.Description.Value)
	}
	return item
}

// enrichTextualConvention distinguishes a true TEXTUAL-CONVENTION from
// a plain type alias (both reduce to the same KindTypeDeclaration
// entry) and attaches DISPLAY-HINT when present, matching pysmi's
// genTypeDeclarationRHS.
func (g *generator) enrichTextualConvention(rec *OrderedDoc, d *ast.TextualConventionDef) {
	rec.Set("class", "textualconvention")
	if d.DisplayHint != nil && d.DisplayHint.Value != "" {
		rec.Set("displayhint", normalize.CollapseWhitespace(d.DisplayHint.Value))
	}
	g.setDescription(rec, d.Description.Value)
	setReference(rec, d.Reference)
}

func accessValueString(v ast.AccessValue) string {
	switch v {
	case ast.AccessValueReadOnly:
		return "read-only"
	case ast.AccessValueReadWrite:
		return "read-write"
	case ast.AccessValueReadCreate:
		return "read-create"
	case ast.AccessValueNotAccessible:
		return "not-accessible"
	case ast.AccessValueAccessibleForNotify:
		return "accessible-for-notify"
	case ast.AccessValueWriteOnly:
		return "write-only"
	case ast.AccessValueNotImplemented:
		return "not-implemented"
	case ast.AccessValueInstall:
		return "install"
	case ast.AccessValueInstallNotify:
		return "install-notify"
	case ast.AccessValueReportOnly:
		return "report-only"
	default:
		return "not-accessible"
	}
}

func statusValueString(v ast.StatusValue) string {
	switch v {
	case ast.StatusValueCurrent:
		return "current"
	case ast.StatusValueDeprecated:
		return "deprecated"
	case ast.StatusValueObsolete:
		return "obsolete"
	case ast.StatusValueMandatory:
		return "mandatory"
	case ast.StatusValueOptional:
		return "optional"
	default:
		return "current"
	}
}

func (g *generator) enrichModuleIdentity(rec *OrderedDoc, mi *ast.ModuleIdentityDef) error {
	lastUpdated, err := g.genTimestamp(mi.LastUpdated.Value, "lastUpdated")
	if err != nil {
		return err
	}
	if g.opts.GenTexts {
		rec.Set("lastUpdated", lastUpdated)
		rec.Set("organization", normalize.CollapseWhitespace(mi.Organization.Value))
		rec.Set("contactInfo", normalize.CollapseWhitespace(mi.ContactInfo.Value))
	}
	g.setDescription(rec, mi.Description.Value)

	if len(mi.Revisions) > 0 {
		revisions := make([]any, 0, len(mi.Revisions))
		for _, r := range mi.Revisions {
			date, err := g.genTimestamp(r.Date.Value, "revision")
			if err != nil {
				return err
			}
			rev := NewOrderedDoc()
			rev.Set("date", date)
			rev.Set("description", r.Description.Value)
			revisions = append(revisions, rev)
		}
		rec.Set("revisions", revisions)
	}
	return nil
}

// genTimestamp normalizes a LAST-UPDATED/REVISION date. In Strict mode
// a date that fails to parse is a hard error instead of a silent
// sentinel substitution (§9 Open Question (b)).
func (g *generator) genTimestamp(raw, field string) (string, error) {
	if !g.opts.Strict {
		return normalize.NormalizeTimestamp(raw), nil
	}
	value, ok := normalize.NormalizeTimestampChecked(raw)
	if !ok {
		return "", &CodegenError{Module: g.module, Message: "malformed " + field + " timestamp: " + raw}
	}
	return value, nil
}

type generator struct {
	module string
	table  *symtable.SymbolTable
	tables oidresolve.Tables
	opts   Options
}

func (g *generator) genRecord(e *symtable.Entry) (*OrderedDoc, error) {
	rec := NewOrderedDoc()
	rec.Set("name", e.OrigName)

	// A TypeDeclaration (type alias or TEXTUAL-CONVENTION) has no OID
	// of its own to resolve; pysmi's genTypeDeclaration never attaches
	// an "oid" key to a type record.
	if e.Kind != symtable.KindTypeDeclaration {
		oid, err := g.resolveOID(e)
		if err != nil {
			return nil, err
		}
		rec.Set("oid", oid)
	}
	rec.Set("class", classOf(e.Kind))

	switch e.Kind {
	case symtable.KindObjectType, symtable.KindFakeColumn:
		if err := g.genObjectType(rec, e); err != nil {
			return nil, err
		}
	case symtable.KindTypeDeclaration:
		g.genTypeDeclaration(rec, e)
	case symtable.KindModuleIdentity:
		// LAST-UPDATED/ORGANIZATION/CONTACT-INFO/REVISION are added by
		// enrichModuleIdentity, which needs the original
		// ast.ModuleIdentityDef rather than the reduced symbol table
		// entry this function works from.
	}

	return rec, nil
}

func (g *generator) resolveOID(e *symtable.Entry) (string, error) {
	arcs, err := oidresolve.Resolve(e.OID, g.module, g.tables)
	if err != nil {
		return "", &CodegenError{Module: g.module, Symbol: e.NormName, Message: err.Error()}
	}
	return oidString(arcs), nil
}

func (g *generator) genObjectType(rec *OrderedDoc, e *symtable.Entry) error {
	if e.Syntax != nil {
		syn, bt, err := g.genSyntax(e.Syntax)
		if err != nil {
			return err
		}
		rec.Set("syntax", syn)

		if e.DefVal != nil {
			dv, err := g.genDefVal(e.DefVal, bt)
			if err != nil {
				return err
			}
			rec.Set("default", dv)
		}
	}

	if e.AugmentsRow != "" {
		augmention := NewOrderedDoc()
		augmention.Set("name", e.OrigName)
		augmention.Set("module", g.moduleOf(e.AugmentsRow))
		augmention.Set("object", normalize.DG(e.AugmentsRow))
		rec.Set("augmention", augmention)
	}
	if len(e.Index) > 0 {
		idx := make([]any, 0, len(e.Index))
		for _, m := range e.Index {
			item := NewOrderedDoc()
			item.Set("module", g.moduleOf(m.Name))
			item.Set("object", normalize.DG(m.Name))
			if m.Implied {
				item.Set("implied", true)
			}
			idx = append(idx, item)
		}
		rec.Set("indices", idx)
	}
	return nil
}

func (g *generator) genTypeDeclaration(rec *OrderedDoc, e *symtable.Entry) {
	if e.Syntax == nil {
		return
	}
	syn, _, err := g.genSyntax(e.Syntax)
	if err != nil {
		// A broken base-type chain in a type declaration doesn't block
		// the rest of the document; record what's known and move on.
		rec.Set("syntax", NewOrderedDoc().Set("type", e.Syntax.TypeName))
		return
	}
	rec.Set("syntax", syn)
}

// genSyntax renders a syntax reference's JSON shape and also returns
// the fully-resolved base type, which genDefVal needs to pick a
// DEFVAL format.
func (g *generator) genSyntax(ref *symtable.SyntaxRef) (*OrderedDoc, *oidresolve.BaseType, error) {
	bt, err := oidresolve.ResolveBaseType(ref, g.module, g.tables)
	if err != nil {
		return nil, nil, &CodegenError{Module: g.module, Message: err.Error()}
	}

	syn := NewOrderedDoc()
	syn.Set("type", normalize.DG(ref.TypeName))
	if ref.DefiningModule != "" && ref.DefiningModule != g.module {
		syn.Set("module", ref.DefiningModule)
	}

	switch bt.Subtype.Kind {
	case symtable.SubtypeEnumeration:
		enum := NewOrderedDoc()
		for label, val := range bt.Subtype.Enumeration {
			enum.Set(normalize.DG(label), val)
		}
		syn.Set("enumeration", enum)
	case symtable.SubtypeBits:
		bits := NewOrderedDoc()
		for label, val := range bt.Subtype.Bits {
			bits.Set(normalize.DG(label), val)
		}
		syn.Set("bits", bits)
	case symtable.SubtypeIntegerRange, symtable.SubtypeOctetStringSize:
		ranges := make([]any, 0, len(bt.Subtype.Ranges))
		for _, r := range bt.Subtype.Ranges {
			item := NewOrderedDoc()
			item.Set("min", r.Min)
			item.Set("max", r.Max)
			ranges = append(ranges, item)
		}
		if bt.Subtype.Kind == symtable.SubtypeIntegerRange {
			syn.Set("range", ranges)
		} else {
			syn.Set("size", ranges)
		}
	}

	return syn, bt, nil
}

// genDefVal lowers a DEFVAL clause per §4.7's format rules. The
// rendered value is always a JSON string, matching the source's own
// string-typed DEFVAL dict.
func (g *generator) genDefVal(content ast.DefValContent, bt *oidresolve.BaseType) (*OrderedDoc, error) {
	isEnum := bt.Subtype.Kind == symtable.SubtypeEnumeration
	isInteger := isIntegerBase(bt.TypeName)

	dv := NewOrderedDoc()
	switch v := content.(type) {
	case *ast.DefValContentInteger:
		dv.Set("value", formatInt(v.Value))
		dv.Set("format", "decimal")

	case *ast.DefValContentUnsigned:
		dv.Set("value", formatUint(v.Value))
		dv.Set("format", "decimal")

	case *ast.DefValContentString:
		dv.Set("value", v.Value.Value)
		dv.Set("format", "string")

	case *ast.DefValContentIdentifier:
		if isEnum {
			dv.Set("value", v.Name.Name)
			dv.Set("format", "enum")
		} else {
			ref := symtable.OIDRef{BaseKind: symtable.OIDBaseNamedParent, ParentName: normalize.STB(v.Name.Name)}
			arcs, err := oidresolve.Resolve(ref, g.module, g.tables)
			if err != nil {
				return nil, &CodegenError{Module: g.module, Message: err.Error()}
			}
			dv.Set("value", oidString(arcs))
			dv.Set("format", "oid")
		}

	case *ast.DefValContentBits:
		labels := make([]string, 0, len(v.Labels))
		for _, l := range v.Labels {
			labels = append(labels, l.Name)
		}
		dv.Set("value", strings.Join(labels, " "))
		dv.Set("format", "bits")

	case *ast.DefValContentHexString:
		if isInteger {
			n, err := normalize.ParseHexDigits(v.Content)
			if err != nil {
				return nil, &CodegenError{Module: g.module, Message: err.Error()}
			}
			dv.Set("value", formatInt(n))
			dv.Set("format", "hex")
		} else {
			dv.Set("value", v.Content)
			dv.Set("format", "hex")
		}

	case *ast.DefValContentBinaryString:
		if isInteger {
			n, err := normalize.ParseBinaryDigits(v.Content)
			if err != nil {
				return nil, &CodegenError{Module: g.module, Message: err.Error()}
			}
			dv.Set("value", formatInt(n))
			dv.Set("format", "bin")
		} else {
			hex, err := normalize.BinaryToHex(v.Content)
			if err != nil {
				return nil, &CodegenError{Module: g.module, Message: err.Error()}
			}
			dv.Set("value", hex)
			dv.Set("format", "hex")
		}

	case *ast.DefValContentObjectIdentifier:
		ref, err := oidRefFromComponents(v.Components, g.module)
		if err != nil {
			return nil, err
		}
		arcs, err := oidresolve.Resolve(ref, g.module, g.tables)
		if err != nil {
			return nil, &CodegenError{Module: g.module, Message: err.Error()}
		}
		dv.Set("value", oidString(arcs))
		dv.Set("format", "oid")

	default:
		return nil, &CodegenError{Module: g.module, Message: "unrecognized DEFVAL content"}
	}

	return dv, nil
}

func oidRefFromComponents(components []ast.OidComponent, selfModule string) (symtable.OIDRef, error) {
	if len(components) == 0 {
		return symtable.OIDRef{}, &CodegenError{Module: selfModule, Message: "empty OID literal"}
	}
	first := components[0]
	var ref symtable.OIDRef
	if name := first.ComponentName(); name != nil {
		switch name.Name {
		case "iso":
			ref = symtable.OIDRef{BaseKind: symtable.OIDBaseWellKnown, RootArc: 1}
		case "ccitt":
			ref = symtable.OIDRef{BaseKind: symtable.OIDBaseWellKnown, RootArc: 0}
		case "joint-iso-ccitt":
			ref = symtable.OIDRef{BaseKind: symtable.OIDBaseWellKnown, RootArc: 2}
		default:
			ref = symtable.OIDRef{BaseKind: symtable.OIDBaseNamedParent, ParentName: normalize.STB(name.Name)}
		}
	} else if n, ok := first.Number(); ok {
		ref = symtable.OIDRef{BaseKind: symtable.OIDBaseLiteral, Arcs: []uint32{n}}
	} else {
		return symtable.OIDRef{}, &CodegenError{Module: selfModule, Message: "OID literal component has neither name nor number"}
	}
	for _, c := range components[1:] {
		n, ok := c.Number()
		if !ok {
			return symtable.OIDRef{}, &CodegenError{Module: selfModule, Message: "OID literal component missing numeric value"}
		}
		ref.Arcs = append(ref.Arcs, n)
	}
	return ref, nil
}

func classOf(k symtable.Kind) string {
	switch k {
	case symtable.KindModuleIdentity:
		return "moduleidentity"
	case symtable.KindObjectType, symtable.KindFakeColumn:
		return "objecttype"
	case symtable.KindObjectIdentity:
		return "objectidentity"
	case symtable.KindNotificationType:
		return "notificationtype"
	case symtable.KindObjectGroup:
		return "objectgroup"
	case symtable.KindNotificationGroup:
		return "notificationgroup"
	case symtable.KindModuleCompliance:
		return "modulecompliance"
	case symtable.KindAgentCapabilities:
		return "agentcapabilities"
	case symtable.KindTypeDeclaration:
		return "type"
	case symtable.KindMibIdentifier:
		// A bare OBJECT IDENTIFIER value assignment renders the same
		// class as OBJECT-IDENTITY: pysmi's genValueDeclaration emits
		// 'objectidentity' for both.
		return "objectidentity"
	default:
		return "unknown"
	}
}

func isIntegerBase(typeName string) bool {
	switch typeName {
	case "Integer32", "Unsigned32", "Counter32", "Counter64", "Gauge32", "TimeTicks":
		return true
	default:
		return false
	}
}

func formatInt(v int64) string {
	return strconv.FormatInt(v, 10)
}

func formatUint(v uint64) string {
	return strconv.FormatUint(v, 10)
}

func copyImportMap(m map[string]string) map[string]string {
	out := make(map[string]string, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}
