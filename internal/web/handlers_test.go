package web

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/excelsior/engine/internal/config"
	"github.com/excelsior/engine/internal/run"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()
	cfg := &config.Config{
		Server: config.ServerConfig{
			Host:           "127.0.0.1",
			Port:           0,
			RequestTimeout: 30 * time.Second,
		},
		Process: config.ProcessConfig{
			MaxFileSize:   1 << 20,
			MaxConcurrent: 2,
		},
	}
	return NewServer(cfg, run.New(nil), nil)
}

func TestHealth(t *testing.T) {
	s := newTestServer(t)

	rec := httptest.NewRecorder()
	s.Router().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

func TestListProfiles(t *testing.T) {
	s := newTestServer(t)

	rec := httptest.NewRecorder()
	s.Router().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/profiles", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var got []profileSummary
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.NotEmpty(t, got)

	keys := make([]string, 0, len(got))
	for _, p := range got {
		keys = append(keys, p.Key)
		assert.Positive(t, p.Columns)
	}
	assert.Contains(t, keys, "dian-notificaciones")
	assert.Contains(t, keys, "ugpp-procesos")
}

func TestGetProfile(t *testing.T) {
	s := newTestServer(t)

	rec := httptest.NewRecorder()
	s.Router().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/profiles/ugpp-procesos", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var got profileDetail
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, "UGPP", got.Agency)
	require.NotEmpty(t, got.Schema)

	byName := map[string]columnInfo{}
	for _, col := range got.Schema {
		byName[col.Name] = col
	}
	assert.Equal(t, "nit", byName["NIT_EMPRESA"].Type)
	assert.NotEmpty(t, byName["DEPARTAMENTO"].Choices)
}

func TestGetProfileUnknown(t *testing.T) {
	s := newTestServer(t)

	rec := httptest.NewRecorder()
	s.Router().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/profiles/nope", nil))
	require.Equal(t, http.StatusNotFound, rec.Code)

	var resp ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "unknown_profile", resp.Code)
}

func TestProcessRawBody(t *testing.T) {
	s := newTestServer(t)

	body := strings.NewReader("NIT|CORREO|DEPARTAMENTO\n900.123.456|contacto@empresa.co|bogota\n")
	req := httptest.NewRequest(http.MethodPost, "/api/v1/process/ugpp-procesos?filename=aportes.csv", body)
	rec := httptest.NewRecorder()
	s.Router().ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var resp processResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "ugpp-procesos", resp.Profile)
	assert.Equal(t, "aportes.csv", resp.FileName)
	assert.Equal(t, 1, resp.RowCount)
	assert.Equal(t, 1, resp.OutputRows)
	assert.Empty(t, resp.Findings)
	assert.Contains(t, resp.Canonical, "BOGOTÁ D.C.")
	assert.Contains(t, resp.Report, "No se encontraron errores")
}

func TestProcessMultipart(t *testing.T) {
	s := newTestServer(t)

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	part, err := mw.CreateFormFile("file", "notificaciones.csv")
	require.NoError(t, err)
	_, err = part.Write([]byte("NIT|FECHA_ACTO\nabc|2024-01-15\n"))
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/v1/process/dian-notificaciones", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	rec := httptest.NewRecorder()
	s.Router().ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var resp processResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "notificaciones.csv", resp.FileName)
	require.Len(t, resp.Findings, 1)
	assert.Equal(t, "NIT", resp.Findings[0].Column)
	assert.Equal(t, "abc", resp.Findings[0].Value)
}

func TestProcessUnknownProfile(t *testing.T) {
	s := newTestServer(t)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/process/nope", strings.NewReader("A\n1\n"))
	rec := httptest.NewRecorder()
	s.Router().ServeHTTP(rec, req)
	require.Equal(t, http.StatusNotFound, rec.Code)

	var resp ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "unknown_profile", resp.Code)
}

func TestProcessEmptyFile(t *testing.T) {
	s := newTestServer(t)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/process/ugpp-procesos", strings.NewReader(""))
	rec := httptest.NewRecorder()
	s.Router().ServeHTTP(rec, req)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	var resp ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "invalid_input", resp.Code)
}

func TestProcessFileTooLarge(t *testing.T) {
	s := newTestServer(t)
	s.cfg.Process.MaxFileSize = 16

	body := strings.NewReader("NIT|CORREO\n900123456|a@b.co\n")
	req := httptest.NewRequest(http.MethodPost, "/api/v1/process/ugpp-procesos", body)
	rec := httptest.NewRecorder()
	s.Router().ServeHTTP(rec, req)
	require.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
}

func TestShutdownStopsRateLimiterCleanup(t *testing.T) {
	s := newTestServer(t)

	require.NoError(t, s.Shutdown(context.Background()))
	select {
	case <-s.limiter.done:
	default:
		t.Fatal("cleanup goroutine not signalled to stop")
	}

	// Repeated shutdown must not panic on the closed channel.
	require.NoError(t, s.Shutdown(context.Background()))
}

func TestRunsWithoutStore(t *testing.T) {
	s := newTestServer(t)

	rec := httptest.NewRecorder()
	s.Router().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/runs", nil))
	require.Equal(t, http.StatusNotFound, rec.Code)

	var resp ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "audit_disabled", resp.Code)
}
