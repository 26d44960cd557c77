// Package docgen implements the Document Generator (DG): the second
// of the two code generation passes. Given a parsed module and the
// symbol tables of that module and everything it imports from, it
// renders an ordered JSON document describing every admitted symbol.
package docgen

import (
	"fmt"
	"sort"
	"strings"
)

// Options configures a single Build call.
type Options struct {
	// GenTexts includes DESCRIPTION and UNITS text, and the
	// MODULE-IDENTITY LAST-UPDATED/ORGANIZATION/CONTACT-INFO fields, in
	// the rendered document. REFERENCE text is rendered either way.
	// The zero value leaves these texts out.
	GenTexts bool
	// Comments is copied verbatim into the document's "meta.comments"
	// field (typically the module's leading comment block).
	Comments []string
	// Strict turns a revision/last-updated date that fails to parse
	// into a hard error instead of silently substituting the sentinel
	// date (§9 Open Question (b)).
	Strict bool
}

// CodegenError is raised for malformed input the generator can
// diagnose: an unresolvable OID or base-type chain, or (in Strict
// mode) a malformed timestamp.
type CodegenError struct {
	Module  string
	Symbol  string
	Message string
}

func (e *CodegenError) Error() string {
	if e.Symbol == "" {
		return fmt.Sprintf("%s: %s", e.Module, e.Message)
	}
	return fmt.Sprintf("%s.%s: %s", e.Module, e.Symbol, e.Message)
}

// Document is the rendered output of one Build call: an ordered JSON
// object keyed by "module", "imports", "meta" (only when
// Options.Comments is non-empty), one key per admitted symbol (in
// admission order), and finally "_symtable_order".
type Document struct {
	*OrderedDoc
}

// IndexEntry pairs a resolved OID with the module that defines the
// symbol registered at it, the input to [BuildIndex].
type IndexEntry struct {
	OID    []uint32
	Module string
}

// BuildIndex renders entries as a flat "oid module" text index, one
// line per entry, sorted numerically by OID and then by module name to
// break ties. An optional leading "# comment" line documents how the
// index was produced. Mirrors pysmi's jsondoc.py:genIndex, which walks
// a compiled MIB tree once and emits the same oid->module mapping for
// use by SNMP agents doing OID-prefix lookups without parsing MIBs.
func BuildIndex(entries []IndexEntry, comment string) string {
	sorted := make([]IndexEntry, len(entries))
	copy(sorted, entries)
	sort.SliceStable(sorted, func(i, j int) bool {
		if c := compareOID(sorted[i].OID, sorted[j].OID); c != 0 {
			return c < 0
		}
		return sorted[i].Module < sorted[j].Module
	})

	var b strings.Builder
	if comment != "" {
		b.WriteString("# ")
		b.WriteString(comment)
		b.WriteByte('\n')
	}
	for _, e := range sorted {
		b.WriteString(oidString(e.OID))
		b.WriteByte(' ')
		b.WriteString(e.Module)
		b.WriteByte('\n')
	}
	return b.String()
}

// compareOID orders two OIDs lexicographically by arc, with a shorter
// prefix sorting before its longer extension.
func compareOID(a, b []uint32) int {
	for i := 0; i < len(a) && i < len(b); i++ {
		switch {
		case a[i] < b[i]:
			return -1
		case a[i] > b[i]:
			return 1
		}
	}
	switch {
	case len(a) < len(b):
		return -1
	case len(a) > len(b):
		return 1
	default:
		return 0
	}
}

// oidString renders a resolved OID as a dotted string, e.g. "1.3.6.1".
func oidString(arcs []uint32) string {
	if len(arcs) == 0 {
		return ""
	}
	out := make([]byte, 0, len(arcs)*4)
	for i, a := range arcs {
		if i > 0 {
			out = append(out, '.')
		}
		out = fmt.Appendf(out, "%d", a)
	}
	return string(out)
}

