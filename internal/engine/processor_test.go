package engine

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testSpec() *Spec {
	return &Spec{
		Schema: ReferenceSchema{"NIT", "RAZON_SOCIAL", "FECHA_REGISTRO", "DEPARTAMENTO"},
		Aliases: AliasTable{
			"NUMERO_NIT": "NIT",
			"NOMBRE":     "RAZON_SOCIAL",
		},
		Types: TypeMapping{
			"NIT":            TypeNIT,
			"FECHA_REGISTRO": TypeDate,
			"DEPARTAMENTO":   TypeFuzzyChoice,
		},
		Choices: map[string]ChoiceSpec{
			"DEPARTAMENTO": {
				Values:       []string{"Bogotá D.C.", "Antioquia"},
				Replacements: map[string]string{"BOGOTA": "Bogotá D.C."},
			},
		},
	}
}

func TestProcessFullRun(t *testing.T) {
	p := NewProcessor(testSpec(), NewRegistry())

	input := strings.Join([]string{
		"Numero NIT|Nombre|Fecha Registro|Departamento",
		"900.123.456-7|Acme S.A.S.|2024-01-15|bogota",
		"abc|Beta Ltda|15/02/2024|Antioquia",
		"solo|tres|celdas",
	}, "\n")

	result, err := p.Process("extracto.txt", []byte(input))
	require.NoError(t, err)

	assert.Equal(t, []string{"NIT", "RAZON_SOCIAL", "FECHA_REGISTRO", "DEPARTAMENTO"}, result.Header)
	assert.Equal(t, "|", result.Delimiter)
	assert.Equal(t, EncodingUTF8, result.Encoding)
	assert.Equal(t, 3, result.RowCount)

	require.Len(t, result.Rows, 2)
	assert.Equal(t, []string{"900123456", "Acme S.A.S.", "15/01/2024", "BOGOTÁ D.C."}, result.Rows[0])
	// The failing NIT cell keeps its raw value in the output row.
	assert.Equal(t, []string{"abc", "Beta Ltda", "15/02/2024", "ANTIOQUIA"}, result.Rows[1])

	require.Len(t, result.Errors, 2)

	nitErr := result.Errors[0]
	assert.Equal(t, "Numero NIT", nitErr.Column)
	assert.Equal(t, 1, nitErr.ColumnIndex)
	assert.Equal(t, TypeNIT, nitErr.Type)
	assert.Equal(t, "abc", nitErr.Value)
	assert.Equal(t, 2, nitErr.Row)

	shapeErr := result.Errors[1]
	assert.Equal(t, TypeProcessing, shapeErr.Type)
	assert.Equal(t, 3, shapeErr.Row)
}

func TestProcessRowAccounting(t *testing.T) {
	p := NewProcessor(testSpec(), NewRegistry())

	input := "NIT|NOMBRE|FECHA REGISTRO|DEPARTAMENTO\n" +
		"123456|Uno|01/01/2024|Antioquia\n" +
		"\n" +
		"corta|fila\n" +
		"654321|Dos|02/01/2024|bogota\n"

	result, err := p.Process("extracto.txt", []byte(input))
	require.NoError(t, err)

	shapeFailures := 0
	for _, rec := range result.Errors {
		if rec.Type == TypeProcessing {
			shapeFailures++
		}
	}
	// Blank lines never consume a row number.
	assert.Equal(t, 3, result.RowCount)
	assert.Equal(t, result.RowCount, len(result.Rows)+shapeFailures)
}

func TestProcessEmptyInput(t *testing.T) {
	p := NewProcessor(testSpec(), NewRegistry())

	_, err := p.Process("vacio.txt", []byte("   \n  \n"))
	var inputErr *InputError
	require.ErrorAs(t, err, &inputErr)
	assert.Equal(t, "vacio.txt", inputErr.File)
}

func TestProcessExtraColumnsAppended(t *testing.T) {
	p := NewProcessor(testSpec(), NewRegistry())

	input := "Columna Rara|NIT\nvalor|123456\n"
	result, err := p.Process("extracto.txt", []byte(input))
	require.NoError(t, err)

	assert.Equal(t, []string{"NIT", "COLUMNA_RARA"}, result.Header)
	require.Len(t, result.Rows, 1)
	assert.Equal(t, []string{"123456", "valor"}, result.Rows[0])
}

func TestWriteOutputRowWidths(t *testing.T) {
	p := NewProcessor(testSpec(), NewRegistry())

	input := "NIT|NOMBRE|DEPARTAMENTO\n123456|Acme|Antioquia\n"
	result, err := p.Process("extracto.txt", []byte(input))
	require.NoError(t, err)

	var out bytes.Buffer
	require.NoError(t, p.WriteOutput(&out, result))

	lines := strings.Split(strings.TrimRight(out.String(), "\n"), "\n")
	require.Len(t, lines, 2)
	width := len(strings.Split(lines[0], "|"))
	for _, line := range lines[1:] {
		assert.Len(t, strings.Split(line, "|"), width)
	}
}

func TestProcessIdempotentOnOwnOutput(t *testing.T) {
	spec := testSpec()
	p := NewProcessor(spec, NewRegistry())

	input := "NIT|NOMBRE|FECHA REGISTRO|DEPARTAMENTO\n" +
		"900.123.456-7|Acme, S.A.S.|45000|bogota\n" +
		"800999333|Beta Ltda|15/02/2024|Antioquia\n"

	first, err := p.Process("extracto.txt", []byte(input))
	require.NoError(t, err)

	var out1 bytes.Buffer
	require.NoError(t, p.WriteOutput(&out1, first))

	// Re-running over the canonical output with every column typed string
	// must reproduce it byte for byte.
	echo := NewProcessor(&Spec{Schema: spec.Schema}, NewRegistry())
	second, err := echo.Process("salida.txt", out1.Bytes())
	require.NoError(t, err)

	var out2 bytes.Buffer
	require.NoError(t, echo.WriteOutput(&out2, second))
	assert.Equal(t, out1.String(), out2.String())
}

func TestWriteErrorReport(t *testing.T) {
	p := NewProcessor(testSpec(), NewRegistry())

	result := &Result{Errors: []ErrorRecord{{
		Column:      "NIT",
		ColumnIndex: 1,
		Type:        TypeNIT,
		Value:       "abc",
		Row:         4,
		Message:     "'abc' contiene letras, no es un NIT válido",
	}}}

	var buf bytes.Buffer
	require.NoError(t, p.WriteErrorReport(&buf, result))

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "columna,numero_columna,tipo,valor,fila,error", lines[0])
	assert.Contains(t, lines[1], "NIT,1,nit,abc,4,")
}

func TestWriteErrorReportNoFindings(t *testing.T) {
	p := NewProcessor(testSpec(), NewRegistry())

	var buf bytes.Buffer
	require.NoError(t, p.WriteErrorReport(&buf, &Result{}))

	assert.Equal(t, noFindingsNotice, buf.String())
}

func TestProcessUnknownTypeFails(t *testing.T) {
	spec := &Spec{
		Schema: ReferenceSchema{"CAMPO"},
		Types:  TypeMapping{"CAMPO": "inventado"},
	}
	p := NewProcessor(spec, NewRegistry())

	_, err := p.Process("extracto.txt", []byte("CAMPO\nvalor\n"))
	require.Error(t, err)
	assert.False(t, errors.As(err, new(*InputError)))
}
