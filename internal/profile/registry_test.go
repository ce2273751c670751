package profile

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/excelsior/engine/internal/engine"
)

func TestRegisteredProfiles(t *testing.T) {
	assert.Equal(t, []string{"bpm-expedientes", "coljuegos-disciplinarios", "dian-notificaciones", "ugpp-procesos"}, Keys())

	p, ok := Get("dian-notificaciones")
	require.True(t, ok)
	assert.Equal(t, "DIAN", p.Agency)

	_, ok = Get("inexistente")
	assert.False(t, ok)
}

func TestAllSortedByAgency(t *testing.T) {
	all := All()
	require.Len(t, all, 4)
	assert.Equal(t, "BPM", all[0].Agency)
	assert.Equal(t, "COLJUEGOS", all[1].Agency)
	assert.Equal(t, "DIAN", all[2].Agency)
	assert.Equal(t, "UGPP", all[3].Agency)
}

// Every profile must be internally consistent: canonical schema names,
// resolvable validator types, alias targets that exist in the schema.
func TestProfileSpecsAreConsistent(t *testing.T) {
	registry := engine.NewRegistry()

	for _, p := range All() {
		t.Run(p.Key, func(t *testing.T) {
			inSchema := make(map[string]bool, len(p.Spec.Schema))
			for _, col := range p.Spec.Schema {
				assert.Equal(t, engine.NormalizeColumnName(col), col,
					"schema column %q is not in canonical form", col)
				assert.False(t, inSchema[col], "schema column %q duplicated", col)
				inSchema[col] = true

				_, err := registry.ForColumn(&p.Spec, col)
				assert.NoError(t, err, "column %q", col)
			}

			for alias, target := range p.Spec.Aliases {
				assert.Equal(t, engine.NormalizeColumnName(alias), alias,
					"alias key %q is not in canonical form", alias)
				assert.True(t, inSchema[target], "alias %q points outside the schema: %q", alias, target)
			}

			for col, typeID := range p.Spec.Types {
				assert.True(t, inSchema[col], "typed column %q not in schema", col)
				if typeID == engine.TypeChoice || typeID == engine.TypeFuzzyChoice {
					_, ok := p.Spec.Choices[col]
					assert.True(t, ok, "column %q lacks a value universe", col)
				}
			}
		})
	}
}

func TestProfilesProcessEndToEnd(t *testing.T) {
	p, ok := Get("ugpp-procesos")
	require.True(t, ok)

	proc := engine.NewProcessor(&p.Spec, engine.NewRegistry())
	input := "NIT|CORREO|PORCENTAJE|DEPARTAMENTO\n" +
		"900.123.456-7|Contacto@Empresa.co|12.5%|bogota\n"

	result, err := proc.Process("ugpp.txt", []byte(input))
	require.NoError(t, err)
	require.Empty(t, result.Errors)
	require.Len(t, result.Rows, 1)

	row := result.Rows[0]
	idx := make(map[string]int, len(result.Header))
	for i, col := range result.Header {
		idx[col] = i
	}
	assert.Equal(t, "900123456", row[idx["NIT_EMPRESA"]])
	assert.Equal(t, "contacto@empresa.co", row[idx["EMAIL_EMPRESA"]])
	assert.Equal(t, "12.5", row[idx["PORCENTAJE_APORTE"]])
	assert.Equal(t, "BOGOTÁ D.C.", row[idx["DEPARTAMENTO"]])
}

func TestBPMProfileProcessEndToEnd(t *testing.T) {
	p, ok := Get("bpm-expedientes")
	require.True(t, ok)

	proc := engine.NewProcessor(&p.Spec, engine.NewRegistry())
	input := "ORDEN|NIT APORTANTE|CORREO|DEPTO RUT|FECHA REPARTO\n" +
		"001|900.123.456-7|Fiscal@UGPP.gov.co|boyaca|2024/01/15\n"

	result, err := proc.Process("bpm.txt", []byte(input))
	require.NoError(t, err)
	require.Empty(t, result.Errors)
	require.Len(t, result.Rows, 1)

	row := result.Rows[0]
	idx := make(map[string]int, len(result.Header))
	for i, col := range result.Header {
		idx[col] = i
	}
	assert.Equal(t, "1", row[idx["ORDEN"]])
	assert.Equal(t, "900123456", row[idx["NO_CC_O_NIT_APORTANTE"]])
	assert.Equal(t, "fiscal@ugpp.gov.co", row[idx["EMAIL"]])
	assert.Equal(t, "BOYACÁ", row[idx["DPTO_RUT"]])
	assert.Equal(t, "15/01/2024", row[idx["FECHA_REPARTO"]])
}
