package docgen

import (
	"encoding/json"
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/pmezard/go-difflib/difflib"
	"github.com/snmpmib/gomib/internal/ast"
	"github.com/snmpmib/gomib/internal/types"
	"github.com/stretchr/testify/require"
)

// goldenScalarModule is a small module exercising an OBJECT-TYPE with
// an enumerated syntax and a DEFVAL, run through the same Build path a
// real MIB load takes, then compared against a hand-verified JSON
// rendering of its record. A line-level diff on mismatch makes a
// regression in the generator's field shape immediately legible, which
// a bare reflect.DeepEqual on the decoded value would not.
func goldenScalarModule() *ast.Module {
	return newModule("GOLDEN-MIB",
		&ast.ObjectTypeDef{
			Name: ident("goldenStatus"),
			Syntax: ast.NewSyntaxClause(&ast.TypeSyntaxIntegerEnum{
				NamedNumbers: []ast.NamedNumber{
					{Name: ident("enabled"), Value: 1},
					{Name: ident("disabled"), Value: 2},
				},
			}, types.Synthetic),
			Access:        ast.AccessClause{Keyword: ast.AccessKeywordMaxAccess, Value: ast.AccessValueReadOnly},
			Description:   &ast.QuotedString{Value: "golden status"},
			DefVal:        &ast.DefValClause{Value: &ast.DefValContentIdentifier{Name: ident("enabled")}},
			OidAssignment: oidOf(nameComponent("iso"), numberComponent(1)),
		},
	)
}

const goldenScalarRecordJSON = `{
	"name": "goldenStatus",
	"oid": "1.1",
	"class": "objecttype",
	"syntax": {
		"type": "Integer32",
		"enumeration": {"enabled": 1, "disabled": 2}
	},
	"default": {"value": "enabled", "format": "enum"},
	"maxaccess": "read-only",
	"description": "golden status"
}`

func TestBuildGoldenObjectTypeRecord(t *testing.T) {
	mod := goldenScalarModule()
	st := buildTable(t, mod)
	doc, err := Build(mod, singleModuleTables(mod, st), Options{GenTexts: true})
	require.NoError(t, err)

	rec, ok := doc.Get("goldenStatus")
	require.True(t, ok)

	got, err := json.Marshal(rec)
	require.NoError(t, err)

	// Enumeration entries come from a plain Go map (symtable.Subtype's
	// Enumeration field), so iteration order isn't stable across runs;
	// canonicalize both sides through an unordered re-encoding before
	// comparing so the diff only ever reflects real content drift.
	want, err := canonicalizeJSON([]byte(goldenScalarRecordJSON))
	require.NoError(t, err)
	gotCanon, err := canonicalizeJSON(got)
	require.NoError(t, err)

	if want != gotCanon {
		diff, _ := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
			A:        difflib.SplitLines(want),
			B:        difflib.SplitLines(gotCanon),
			FromFile: "fixture",
			ToFile:   "generated",
			Context:  2,
		})
		t.Fatalf("generated record does not match fixture:\n%s\nfull record: %s", diff, spew.Sdump(rec))
	}
}

// canonicalizeJSON re-encodes a JSON document through a plain map so
// comparisons are insensitive to key order, isolating this test from
// OrderedDoc's insertion-order guarantees (already covered by the
// ordering-focused tests elsewhere in this file) and from the
// enumeration map's nondeterministic iteration order.
func canonicalizeJSON(b []byte) (string, error) {
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return "", err
	}
	out, err := json.Marshal(v)
	if err != nil {
		return "", err
	}
	return string(out), nil
}
