package web

import (
	"io"
	"mime"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/excelsior/engine/internal/engine"
	"github.com/excelsior/engine/internal/profile"
	"github.com/excelsior/engine/internal/run"
	"github.com/excelsior/engine/internal/store"
)

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// profileSummary is the list representation of a profile.
type profileSummary struct {
	Key         string `json:"key"`
	Agency      string `json:"agency"`
	Label       string `json:"label"`
	Description string `json:"description"`
	Columns     int    `json:"columns"`
}

// profileDetail adds the full column listing to a summary.
type profileDetail struct {
	profileSummary
	Schema []columnInfo `json:"schema"`
}

type columnInfo struct {
	Name    string   `json:"name"`
	Type    string   `json:"type"`
	Choices []string `json:"choices,omitempty"`
}

func (s *Server) handleListProfiles(w http.ResponseWriter, r *http.Request) {
	profiles := profile.All()
	summaries := make([]profileSummary, 0, len(profiles))
	for _, p := range profiles {
		summaries = append(summaries, summarize(p))
	}
	respondJSON(w, http.StatusOK, summaries)
}

func (s *Server) handleGetProfile(w http.ResponseWriter, r *http.Request) {
	key := chi.URLParam(r, "profileKey")
	p, ok := profile.Get(key)
	if !ok {
		respondErrorJSON(w, http.StatusNotFound, "unknown_profile", "unknown profile: "+key)
		return
	}

	detail := profileDetail{profileSummary: summarize(p)}
	for _, col := range p.Spec.Schema {
		info := columnInfo{Name: col, Type: p.Spec.Type(col)}
		if cs, ok := p.Spec.Choices[col]; ok {
			info.Choices = cs.Values
		}
		detail.Schema = append(detail.Schema, info)
	}
	respondJSON(w, http.StatusOK, detail)
}

func summarize(p profile.Profile) profileSummary {
	return profileSummary{
		Key:         p.Key,
		Agency:      p.Agency,
		Label:       p.Label,
		Description: p.Description,
		Columns:     len(p.Spec.Schema),
	}
}

// processResponse is the JSON result of one processing run. Canonical and
// Report carry the rendered artifacts verbatim.
type processResponse struct {
	Profile    string     `json:"profile"`
	FileName   string     `json:"fileName"`
	Encoding   string     `json:"encoding"`
	Delimiter  string     `json:"delimiter"`
	RowCount   int        `json:"rowCount"`
	OutputRows int        `json:"outputRows"`
	Findings   []finding  `json:"findings"`
	Canonical  string     `json:"canonical"`
	Report     string     `json:"report"`
	Run        *store.Run `json:"run,omitempty"`
}

type finding struct {
	Column      string `json:"column"`
	ColumnIndex int    `json:"columnIndex"`
	Type        string `json:"type"`
	Value       string `json:"value"`
	Row         int    `json:"row"`
	Message     string `json:"message"`
}

// handleProcess accepts a file as multipart form data (field "file") or as a
// raw request body and runs it through the engine for the named profile.
func (s *Server) handleProcess(w http.ResponseWriter, r *http.Request) {
	if err := s.acquireSlot(r.Context()); err != nil {
		respondErrorJSON(w, http.StatusServiceUnavailable, "busy", "server is busy, try again later")
		return
	}
	defer s.releaseSlot()

	fileName, data, err := s.readFile(w, r)
	if err != nil {
		s.respondError(w, r, err)
		return
	}

	out, err := s.runner.Process(r.Context(), run.Input{
		ProfileKey: chi.URLParam(r, "profileKey"),
		FileName:   fileName,
		Data:       data,
	})
	if err != nil {
		s.respondError(w, r, err)
		return
	}

	resp := processResponse{
		Profile:    out.Profile.Key,
		FileName:   fileName,
		Encoding:   out.Result.Encoding,
		Delimiter:  out.Result.Delimiter,
		RowCount:   out.Result.RowCount,
		OutputRows: len(out.Result.Rows),
		Findings:   toFindings(out.Result.Errors),
		Canonical:  string(out.Canonical),
		Report:     string(out.Report),
		Run:        out.Run,
	}
	respondJSON(w, http.StatusOK, resp)
}

func toFindings(records []engine.ErrorRecord) []finding {
	findings := make([]finding, 0, len(records))
	for _, rec := range records {
		findings = append(findings, finding{
			Column:      rec.Column,
			ColumnIndex: rec.ColumnIndex,
			Type:        rec.Type,
			Value:       rec.Value,
			Row:         rec.Row,
			Message:     rec.Message,
		})
	}
	return findings
}

// readFile extracts the upload from the request, honoring the configured
// size limit. Multipart requests use the "file" field; anything else is read
// as a raw body with the name taken from the filename query parameter.
func (s *Server) readFile(w http.ResponseWriter, r *http.Request) (string, []byte, error) {
	r.Body = http.MaxBytesReader(w, r.Body, s.cfg.Process.MaxFileSize)

	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if mediaType == "multipart/form-data" {
		file, header, err := r.FormFile("file")
		if err != nil {
			return "", nil, err
		}
		defer file.Close()

		data, err := io.ReadAll(file)
		if err != nil {
			return "", nil, err
		}
		return header.Filename, data, nil
	}

	data, err := io.ReadAll(r.Body)
	if err != nil {
		return "", nil, err
	}
	name := r.URL.Query().Get("filename")
	if name == "" {
		name = "upload"
	}
	return name, data, nil
}

// handleListRuns returns the recent audit trail, optionally filtered by the
// profile query parameter. Requires a configured database.
func (s *Server) handleListRuns(w http.ResponseWriter, r *http.Request) {
	if s.store == nil {
		respondErrorJSON(w, http.StatusNotFound, "audit_disabled", "run auditing is not configured")
		return
	}

	limit := 20
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 || n > 100 {
			respondErrorJSON(w, http.StatusBadRequest, "invalid_limit", "limit must be 1-100")
			return
		}
		limit = n
	}

	runs, err := s.store.RecentRuns(r.Context(), r.URL.Query().Get("profile"), limit)
	if err != nil {
		s.respondError(w, r, err)
		return
	}
	if runs == nil {
		runs = []store.Run{}
	}
	respondJSON(w, http.StatusOK, runs)
}
