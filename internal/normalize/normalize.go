// Package normalize implements the identifier, literal, timestamp, and
// whitespace normalization rules shared by the symbol table builder and
// the document generator.
package normalize

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"
)

// reservedWords collide with identifiers in the downstream consumer and
// must be prefixed rather than used bare. The symbol table builder
// applies this prefix; the document generator does not.
var reservedWords = map[string]struct{}{
	"False": {}, "None": {}, "True": {}, "and": {}, "as": {}, "assert": {},
	"async": {}, "await": {}, "break": {}, "class": {}, "continue": {},
	"def": {}, "del": {}, "elif": {}, "else": {}, "except": {},
	"finally": {}, "for": {}, "from": {}, "global": {}, "if": {},
	"import": {}, "in": {}, "is": {}, "lambda": {}, "nonlocal": {},
	"not": {}, "or": {}, "pass": {}, "raise": {}, "return": {}, "try": {},
	"while": {}, "with": {}, "yield": {},
}

// ReservedPrefix is prepended to identifiers colliding with a reserved word.
const ReservedPrefix = "pysmi_"

// STB normalizes an identifier the way the symbol table builder does:
// hyphens become underscores, then a colliding name is prefixed.
func STB(name string) string {
	n := hyphenToUnderscore(name)
	if _, collides := reservedWords[n]; collides {
		return ReservedPrefix + n
	}
	return n
}

// DG normalizes an identifier the way the document generator does:
// hyphens become underscores, no reserved-word prefix.
func DG(name string) string {
	return hyphenToUnderscore(name)
}

func hyphenToUnderscore(name string) string {
	return strings.ReplaceAll(name, "-", "_")
}

// IsHex reports whether s has the `'...'H` suffix form (quotes already
// stripped, content-only check performed by the caller).
func IsHex(raw string) bool {
	return strings.HasSuffix(raw, "H") || strings.HasSuffix(raw, "h")
}

// IsBinary reports whether s has the `'...'B` suffix form.
func IsBinary(raw string) bool {
	return strings.HasSuffix(raw, "B") || strings.HasSuffix(raw, "b")
}

// ParseDecimal parses a decimal integer literal. Empty input is a
// semantic error (signaled by the caller wrapping the returned error).
func ParseDecimal(s string) (int64, error) {
	if s == "" {
		return 0, fmt.Errorf("empty decimal literal")
	}
	return strconv.ParseInt(s, 10, 64)
}

// ParseHexDigits parses a hex digit string (no quotes, no 'H' suffix)
// into its integer value. Empty input is an error.
func ParseHexDigits(digits string) (int64, error) {
	if digits == "" {
		return 0, fmt.Errorf("empty hex literal")
	}
	return strconv.ParseInt(digits, 16, 64)
}

// ParseBinaryDigits parses a binary digit string (no quotes, no 'B'
// suffix) into its integer value. Empty input is an error.
func ParseBinaryDigits(digits string) (int64, error) {
	if digits == "" {
		return 0, fmt.Errorf("empty binary literal")
	}
	return strconv.ParseInt(digits, 2, 64)
}

// BinaryToHex converts a binary digit string to lowercase hex digits,
// used by DEFVAL lowering for non-integer base types (§4.7).
func BinaryToHex(digits string) (string, error) {
	v, err := ParseBinaryDigits(digits)
	if err != nil {
		return "", err
	}
	return strconv.FormatInt(v, 16), nil
}

// sentinelTimestamp is substituted when a revision/last-updated date
// fails to parse. It does not abort compilation.
const sentinelTimestamp = "197001010000Z"

// NormalizeTimestamp accepts an 11-char (YYMMDDhhmmZ, 20th century
// assumed) or 13-char (YYYYMMDDhhmmZ) timestamp and returns the output
// form "YYYY-MM-DD hh:mm". Parse failures substitute the sentinel date
// rather than aborting.
func NormalizeTimestamp(raw string) string {
	expanded := raw
	switch len(raw) {
	case 11:
		expanded = "19" + raw
	case 13:
		// already full form
	default:
		expanded = sentinelTimestamp
	}

	year, month, day, hour, minute, ok := parseTimestampDigits(expanded)
	if !ok {
		year, month, day, hour, minute, _ = parseTimestampDigits(sentinelTimestamp)
	}
	return fmt.Sprintf("%04d-%02d-%02d %02d:%02d", year, month, day, hour, minute)
}

// NormalizeTimestampChecked behaves like NormalizeTimestamp but also
// reports whether raw actually parsed, so a strict caller can turn the
// sentinel substitution into a hard error instead of a silent fallback.
func NormalizeTimestampChecked(raw string) (value string, ok bool) {
	expanded := raw
	switch len(raw) {
	case 11:
		expanded = "19" + raw
	case 13:
		// already full form
	default:
		return NormalizeTimestamp(raw), false
	}
	year, month, day, hour, minute, parsed := parseTimestampDigits(expanded)
	if !parsed {
		return NormalizeTimestamp(raw), false
	}
	return fmt.Sprintf("%04d-%02d-%02d %02d:%02d", year, month, day, hour, minute), true
}

func parseTimestampDigits(s string) (year, month, day, hour, minute int, ok bool) {
	if len(s) != 13 || (s[12] != 'Z' && s[12] != 'z') {
		return 0, 0, 0, 0, 0, false
	}
	digits := s[:12]
	for _, c := range digits {
		if c < '0' || c > '9' {
			return 0, 0, 0, 0, 0, false
		}
	}
	year = atoi(digits[0:4])
	month = atoi(digits[4:6])
	day = atoi(digits[6:8])
	hour = atoi(digits[8:10])
	minute = atoi(digits[10:12])
	if month < 1 || month > 12 || day < 1 || day > 31 || hour > 23 || minute > 59 {
		return 0, 0, 0, 0, 0, false
	}
	return year, month, day, hour, minute, true
}

func atoi(s string) int {
	n := 0
	for _, c := range s {
		n = n*10 + int(c-'0')
	}
	return n
}

// CollapseWhitespace collapses every run of whitespace (including
// newlines) in s to a single ASCII space, without trimming leading or
// trailing runs, matching the source's re.sub(r'\s+', ' ', text).
func CollapseWhitespace(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	inRun := false
	for _, r := range s {
		if unicode.IsSpace(r) {
			if !inRun {
				b.WriteByte(' ')
				inRun = true
			}
			continue
		}
		inRun = false
		b.WriteRune(r)
	}
	return b.String()
}
