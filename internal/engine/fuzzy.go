package engine

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// markStripper decomposes text and drops combining marks, removing accents
// from Latin letters without touching the base character.
var markStripper = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// specialLetters folds letters that survive decomposition unchanged. ñ and ç
// are listed even though NFD already handles them; source files occasionally
// carry them as pre-composed private encodings that bypass decomposition.
var specialLetters = strings.NewReplacer(
	"ñ", "n",
	"ç", "c",
	"ø", "o",
	"đ", "d",
	"ł", "l",
)

// NormalizeText prepares a value for diacritic-insensitive comparison:
// lower-case, accents stripped, special letters folded, whitespace runs
// collapsed, trimmed.
func NormalizeText(s string) string {
	s = strings.ToLower(s)
	if out, _, err := transform.String(markStripper, s); err == nil {
		s = out
	}
	s = specialLetters.Replace(s)
	return strings.Join(strings.Fields(s), " ")
}

// FuzzyMatcher resolves raw categorical values against an accepted value
// universe. It never rejects: agencies' categorical universes are known to
// be incomplete, so an unmatched input degrades to its normalized,
// upper-cased form instead of an error.
type FuzzyMatcher struct {
	spec       ChoiceSpec
	normalized []string // normalized accepted values, aligned with spec.Values
}

// NewFuzzyMatcher pre-normalizes the accepted values once so per-cell
// matching is a plain string comparison.
func NewFuzzyMatcher(spec ChoiceSpec) *FuzzyMatcher {
	m := &FuzzyMatcher{
		spec:       spec,
		normalized: make([]string, len(spec.Values)),
	}
	for i, v := range spec.Values {
		m.normalized[i] = NormalizeText(v)
	}
	return m
}

// Match returns the upper-cased accepted value for raw, or the normalized,
// upper-cased input when nothing matches.
//
// The replacement map is consulted before matching, not after a failed
// match: a replacement corrects a raw variant into a value that is then
// found among the accepted set verbatim.
func (m *FuzzyMatcher) Match(raw string) string {
	value := NormalizeText(raw)

	if replacement, found := m.spec.Replacements[strings.ToUpper(value)]; found {
		value = NormalizeText(replacement)
	}

	for i, accepted := range m.normalized {
		if value == accepted {
			return strings.ToUpper(m.spec.Values[i])
		}
	}
	return strings.ToUpper(value)
}
