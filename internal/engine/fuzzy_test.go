package engine

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

var departmentSpec = ChoiceSpec{
	Values: []string{"Bogotá D.C.", "Antioquia", "Valle del Cauca", "Nariño"},
	Replacements: map[string]string{
		"BOGOTA":   "Bogotá D.C.",
		"BTA":      "Bogotá D.C.",
		"VALLE":    "Valle del Cauca",
		"NARINO N": "Nariño",
	},
}

func TestNormalizeText(t *testing.T) {
	cases := []struct{ raw, want string }{
		{"Bogotá", "bogota"},
		{"  NARIÑO  ", "narino"},
		{"Valle   del\tCauca", "valle del cauca"},
		{"Çali", "cali"},
		{"sin acentos", "sin acentos"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, NormalizeText(tc.raw), "input %q", tc.raw)
	}
}

func TestFuzzyMatcherAcceptedValuesAreFixedPoints(t *testing.T) {
	m := NewFuzzyMatcher(departmentSpec)
	for _, v := range departmentSpec.Values {
		assert.Equal(t, strings.ToUpper(v), m.Match(v), "value %q", v)
	}
}

func TestFuzzyMatcherIgnoresCaseAndAccents(t *testing.T) {
	m := NewFuzzyMatcher(departmentSpec)

	assert.Equal(t, "ANTIOQUIA", m.Match("antioquia"))
	assert.Equal(t, "ANTIOQUIA", m.Match("ANTIOQUÍA"))
	assert.Equal(t, "NARIÑO", m.Match("narino"))
	assert.Equal(t, "VALLE DEL CAUCA", m.Match("  valle  del  cauca "))
}

func TestFuzzyMatcherReplacements(t *testing.T) {
	m := NewFuzzyMatcher(departmentSpec)

	assert.Equal(t, "BOGOTÁ D.C.", m.Match("Bogota"))
	assert.Equal(t, "BOGOTÁ D.C.", m.Match("bta"))

	// Every replacement key resolves to the same answer as its target.
	for key, target := range departmentSpec.Replacements {
		assert.Equal(t, m.Match(target), m.Match(key), "key %q", key)
	}
}

func TestFuzzyMatcherDegradesToNormalizedEcho(t *testing.T) {
	m := NewFuzzyMatcher(departmentSpec)
	assert.Equal(t, "AMAZONAS", m.Match("Amazonas"))
	assert.Equal(t, "SAN ANDRES", m.Match("  San Andrés "))
}
