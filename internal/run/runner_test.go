package run

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/excelsior/engine/internal/store"
)

type fakeAuditor struct {
	recorded []store.RunParams
	fail     error
}

func (f *fakeAuditor) RecordRun(_ context.Context, params store.RunParams) (store.Run, error) {
	if f.fail != nil {
		return store.Run{}, f.fail
	}
	f.recorded = append(f.recorded, params)
	return store.Run{ID: uuid.New(), ProfileKey: params.ProfileKey, CreatedAt: time.Now()}, nil
}

func TestProcessTextFile(t *testing.T) {
	auditor := &fakeAuditor{}
	runner := New(auditor)

	input := Input{
		ProfileKey: "dian-notificaciones",
		FileName:   "notificaciones_2024.csv",
		Data: []byte("NIT|RAZON_SOCIAL|FECHA_ACTO|DEPARTAMENTO\n" +
			"900.123.456-7|Acme S.A.S.|2024-01-15|bogota\n" +
			"abc|Beta Ltda|15/02/2024|Antioquia\n"),
	}

	out, err := runner.Process(context.Background(), input)
	require.NoError(t, err)

	canonical := string(out.Canonical)
	assert.True(t, strings.HasPrefix(canonical, "FECHA_ACTO|NIT|RAZON_SOCIAL|DEPARTAMENTO\n"),
		"canonical header keeps schema order for present columns")
	assert.Contains(t, canonical, "900123456")
	assert.Contains(t, canonical, "BOGOTÁ D.C.")

	report := string(out.Report)
	assert.Contains(t, report, "columna,numero_columna,tipo,valor,fila,error")
	assert.Contains(t, report, "abc")

	require.NotNil(t, out.Run)
	require.Len(t, auditor.recorded, 1)
	rec := auditor.recorded[0]
	assert.Equal(t, "dian-notificaciones", rec.ProfileKey)
	assert.Equal(t, 2, rec.RowCount)
	assert.Equal(t, 2, rec.OutputRows)
	assert.Equal(t, 1, rec.ErrorCount)
}

func TestProcessUnknownProfile(t *testing.T) {
	runner := New(nil)

	_, err := runner.Process(context.Background(), Input{ProfileKey: "inexistente", Data: []byte("A\n1\n")})
	assert.ErrorIs(t, err, ErrUnknownProfile)
}

func TestProcessAuditFailureDoesNotFailRun(t *testing.T) {
	auditor := &fakeAuditor{fail: context.DeadlineExceeded}
	runner := New(auditor)

	out, err := runner.Process(context.Background(), Input{
		ProfileKey: "ugpp-procesos",
		FileName:   "ugpp.csv",
		Data:       []byte("NIT|CORREO\n900123456|a@b.co\n"),
	})
	require.NoError(t, err)
	assert.Nil(t, out.Run)
}

func TestProcessNoFindingsReport(t *testing.T) {
	runner := New(nil)

	out, err := runner.Process(context.Background(), Input{
		ProfileKey: "coljuegos-disciplinarios",
		FileName:   "disciplinarios.csv",
		Data:       []byte("EXPEDIENTE|IMPLICADO\nE-001|Juan Pérez\n"),
	})
	require.NoError(t, err)
	assert.Contains(t, string(out.Report), "No se encontraron errores")
}
