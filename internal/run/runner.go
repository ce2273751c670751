// Package run orchestrates a complete processing run: profile lookup, engine
// execution, output rendering and the optional audit record.
package run

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/excelsior/engine/internal/engine"
	"github.com/excelsior/engine/internal/excel"
	"github.com/excelsior/engine/internal/logging"
	"github.com/excelsior/engine/internal/profile"
	"github.com/excelsior/engine/internal/store"
)

// ErrUnknownProfile is returned when the requested profile key is not
// registered.
var ErrUnknownProfile = errors.New("unknown profile")

// Auditor records finished runs. *store.Store satisfies it; a nil Auditor
// disables auditing.
type Auditor interface {
	RecordRun(ctx context.Context, params store.RunParams) (store.Run, error)
}

// Runner executes processing runs. It is safe for concurrent use: each run
// builds its own Processor and shares only the immutable validator registry.
type Runner struct {
	registry *engine.Registry
	auditor  Auditor
}

// New creates a runner. auditor may be nil.
func New(auditor Auditor) *Runner {
	return &Runner{registry: engine.NewRegistry(), auditor: auditor}
}

// Input is one file to process.
type Input struct {
	ProfileKey string
	FileName   string
	Data       []byte
}

// Output bundles everything a finished run produced.
type Output struct {
	Profile   profile.Profile
	Result    *engine.Result
	Canonical []byte // canonical delimited output
	Report    []byte // error report, or the no-findings notice
	Run       *store.Run
}

// xlsxMagic is the zip local-file-header signature; xlsx workbooks are zip
// containers.
var xlsxMagic = []byte{'P', 'K', 0x03, 0x04}

// Process runs one file through the engine and renders both artifacts.
// Validation findings are not errors; a non-nil error means the run produced
// nothing usable.
func (r *Runner) Process(ctx context.Context, in Input) (*Output, error) {
	p, ok := profile.Get(in.ProfileKey)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownProfile, in.ProfileKey)
	}

	logger := logging.WithFields(ctx, "profile", p.Key, "file", in.FileName)
	start := time.Now()

	proc := engine.NewProcessor(&p.Spec, r.registry)
	proc.OutputDelimiter = p.OutputDelimiter

	result, err := r.execute(proc, in)
	if err != nil {
		return nil, err
	}

	var canonical, report bytes.Buffer
	if err := proc.WriteOutput(&canonical, result); err != nil {
		return nil, err
	}
	if err := proc.WriteErrorReport(&report, result); err != nil {
		return nil, err
	}

	out := &Output{
		Profile:   p,
		Result:    result,
		Canonical: canonical.Bytes(),
		Report:    report.Bytes(),
	}

	duration := time.Since(start)
	logger.Info("run finished",
		"rows", result.RowCount,
		"output_rows", len(result.Rows),
		"findings", len(result.Errors),
		"duration", duration,
	)

	if r.auditor != nil {
		run, err := r.auditor.RecordRun(ctx, store.RunParams{
			ProfileKey: p.Key,
			FileName:   in.FileName,
			Encoding:   result.Encoding,
			Delimiter:  result.Delimiter,
			RowCount:   result.RowCount,
			OutputRows: len(result.Rows),
			ErrorCount: len(result.Errors),
			Duration:   duration,
		})
		if err != nil {
			// Auditing is best effort; the run itself succeeded.
			logger.Warn("audit record failed", "error", err)
		} else {
			out.Run = &run
		}
	}
	return out, nil
}

func (r *Runner) execute(proc *engine.Processor, in Input) (*engine.Result, error) {
	if isWorkbook(in) {
		header, rows, err := excel.Rows(in.Data)
		if err != nil {
			return nil, &engine.InputError{File: in.FileName, Reason: "no se pudo leer el libro xlsx", Err: err}
		}
		result, err := proc.ProcessRows(in.FileName, header, rows)
		if err != nil {
			return nil, err
		}
		result.Encoding = "xlsx"
		return result, nil
	}
	return proc.Process(in.FileName, in.Data)
}

func isWorkbook(in Input) bool {
	return strings.HasSuffix(strings.ToLower(in.FileName), ".xlsx") &&
		bytes.HasPrefix(in.Data, xlsxMagic)
}
