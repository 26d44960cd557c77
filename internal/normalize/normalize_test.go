package normalize

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSTB(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain", "ifIndex", "ifIndex"},
		{"hyphenated", "if-Index", "if_Index"},
		{"reserved-class", "class", "pysmi_class"},
		{"reserved-import", "import", "pysmi_import"},
		{"reserved-with-hyphen", "de-f", "de_f"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, STB(tt.in))
		})
	}
}

func TestDG(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain", "ifIndex", "ifIndex"},
		{"hyphenated", "if-Index", "if_Index"},
		{"reserved-word-not-prefixed", "class", "class"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DG(tt.in))
		})
	}
}

func TestParseDecimal(t *testing.T) {
	v, err := ParseDecimal("42")
	require.NoError(t, err)
	assert.Equal(t, int64(42), v)

	_, err = ParseDecimal("")
	assert.Error(t, err)
}

func TestParseHexDigits(t *testing.T) {
	v, err := ParseHexDigits("FF")
	require.NoError(t, err)
	assert.Equal(t, int64(255), v)

	_, err = ParseHexDigits("")
	assert.Error(t, err)
}

func TestParseBinaryDigits(t *testing.T) {
	v, err := ParseBinaryDigits("1010")
	require.NoError(t, err)
	assert.Equal(t, int64(10), v)

	_, err = ParseBinaryDigits("")
	assert.Error(t, err)
}

func TestBinaryToHex(t *testing.T) {
	hex, err := BinaryToHex("11111111")
	require.NoError(t, err)
	assert.Equal(t, "ff", hex)
}

func TestNormalizeTimestamp(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"13-char-full", "202401011230Z", "2024-01-01 12:30"},
		{"invalid-substitutes-sentinel", "not-a-date", "1970-01-01 00:00"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeTimestamp(tt.in))
		})
	}
}

func TestNormalizeTimestampElevenChar(t *testing.T) {
	// 11 total chars including trailing Z: YYMMDDhhmmZ
	got := NormalizeTimestamp("9912312359Z")
	assert.Equal(t, "1999-12-31 23:59", got)
}

func TestNormalizeTimestampIdempotentOnSentinel(t *testing.T) {
	first := NormalizeTimestamp("garbage")
	second := NormalizeTimestamp("garbage")
	assert.Equal(t, first, second)
}

func TestCollapseWhitespace(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"single-spaces-unchanged", "a b c", "a b c"},
		{"newlines-collapse", "a\n\nb\tc", "a b c"},
		{"leading-trailing", "  a  ", " a "},
		{"idempotent", " a  b ", " a b "},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CollapseWhitespace(tt.in)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, got, CollapseWhitespace(got), "collapsing twice must be idempotent")
		})
	}
}
