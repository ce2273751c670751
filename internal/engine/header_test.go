package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeColumnName(t *testing.T) {
	cases := map[string]string{
		" número de años ": "NUMERO_DE_ANOS",
		"Fecha-Inicio":     "FECHA_INICIO",
		"Razón Social":     "RAZON_SOCIAL",
		"C.C.":             "CC",
		"Depto/Municipio":  "DEPTO_MUNICIPIO",
		"NIT":              "NIT",
	}
	for in, want := range cases {
		assert.Equal(t, want, NormalizeColumnName(in), "input %q", in)
	}
}

func TestOrganizeHeadersSchemaOrder(t *testing.T) {
	schema := ReferenceSchema{"SECCIONAL", "NIT"}
	got := OrganizeHeaders([]string{"nit", "Seccional", "Extra Col"}, schema, nil)
	assert.Equal(t, []string{"SECCIONAL", "NIT", "EXTRA_COL"}, got)
}

func TestOrganizeHeadersAliases(t *testing.T) {
	schema := ReferenceSchema{"NIT", "RAZON_SOCIAL"}
	aliases := AliasTable{"NUMERO_NIT": "NIT", "NOMBRE": "RAZON_SOCIAL"}
	got := OrganizeHeaders([]string{"Nombre", "Numero NIT"}, schema, aliases)
	assert.Equal(t, []string{"NIT", "RAZON_SOCIAL"}, got)
}

func TestOrganizeHeadersDeduplicates(t *testing.T) {
	schema := ReferenceSchema{"NIT"}
	got := OrganizeHeaders([]string{"NIT", "nit", "Otro"}, schema, nil)
	assert.Equal(t, []string{"NIT", "OTRO"}, got)
}

func TestProjectionReordersAndPads(t *testing.T) {
	raw := []string{"nit", "Seccional"}
	schema := ReferenceSchema{"SECCIONAL", "NIT", "CIUDAD"}
	canonical := OrganizeHeaders(raw, schema, nil)
	assert.Equal(t, []string{"SECCIONAL", "NIT"}, canonical)

	proj := buildProjection(canonical, headerIndex(raw), nil)
	assert.Equal(t, []string{"Medellín", "900123456"}, proj.apply([]string{"900123456", "Medellín"}))
}

func TestProjectionReverseAliasLookup(t *testing.T) {
	raw := []string{"Numero NIT", "Ciudad"}
	schema := ReferenceSchema{"NIT", "CIUDAD"}
	aliases := AliasTable{"NUMERO_NIT": "NIT"}

	canonical := OrganizeHeaders(raw, schema, aliases)
	assert.Equal(t, []string{"NIT", "CIUDAD"}, canonical)

	// headerIndex keeps the raw, un-aliased names; the projection must find
	// NIT through the alias.
	proj := buildProjection(canonical, headerIndex(raw), aliases)
	assert.Equal(t, []string{"800999333", "Cali"}, proj.apply([]string{"800999333", "Cali"}))
}
