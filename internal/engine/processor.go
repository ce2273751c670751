package engine

import (
	"bytes"
	"fmt"
	"io"
	"strings"
)

// errorReportHeader is the fixed column header of the error report.
var errorReportHeader = []string{"columna", "numero_columna", "tipo", "valor", "fila", "error"}

// noFindingsNotice replaces the error table when a run produced zero
// findings. Callers treat both forms as a valid "no findings" signal.
const noFindingsNotice = "Archivo procesado correctamente\nNo se encontraron errores de validación\n"

// Processor runs the full pipeline for one agency configuration: probe,
// tokenize, validate, reproject. A Processor is stateless between calls and
// safe to reuse; concurrent files are handled by calling Process from
// independent goroutines.
type Processor struct {
	Spec     *Spec
	Registry *Registry

	// OutputDelimiter separates cells in the canonical output. Empty means
	// the default "|".
	OutputDelimiter string
}

// NewProcessor wires a Spec to a validator registry with the default output
// delimiter.
func NewProcessor(spec *Spec, registry *Registry) *Processor {
	return &Processor{Spec: spec, Registry: registry}
}

// Result holds everything a single run produced. Rows are already validated
// and reprojected into canonical order; Errors are in file-processing order.
type Result struct {
	Header []string
	Rows   [][]string
	Errors []ErrorRecord

	// Probe findings and input accounting, for run auditing.
	Encoding  string
	Delimiter string
	RowCount  int // input data rows, including rows dropped for shape failures
}

// columnPlan is the per-input-column validation plan, resolved once from the
// header and reused for every data row.
type columnPlan struct {
	raw       string // header text as it appeared in the input
	typeID    string
	validator Validator
}

// Process runs the whole pipeline over raw file bytes. name identifies the
// input in fatal errors only; the engine never touches the filesystem.
//
// Cell failures and row-shape failures are findings, not errors: they land
// in Result.Errors and Process still returns nil. A non-nil error means the
// run as a whole is unusable.
func (p *Processor) Process(name string, data []byte) (*Result, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, &InputError{File: name, Reason: "el archivo está vacío"}
	}

	text, delimiter, encoding := Probe(data)
	lines := splitLines(text)
	if len(lines) == 0 {
		return nil, &InputError{File: name, Reason: "el archivo no tiene fila de encabezado"}
	}

	rawHeader := Tokenize(lines[0], delimiter)
	rows := make([][]string, 0, len(lines)-1)
	for _, line := range lines[1:] {
		rows = append(rows, Tokenize(line, delimiter))
	}

	result, err := p.run(rawHeader, rows, false)
	if err != nil {
		return nil, err
	}
	result.Encoding = encoding
	result.Delimiter = delimiter
	return result, nil
}

// ProcessRows runs the pipeline over pre-split rows, the entry point for
// spreadsheet input where cells arrive already separated. Short rows are
// padded with empty cells because spreadsheet readers trim trailing blanks;
// rows longer than the header are still shape failures.
func (p *Processor) ProcessRows(name string, rawHeader []string, rows [][]string) (*Result, error) {
	if len(rawHeader) == 0 {
		return nil, &InputError{File: name, Reason: "el archivo no tiene fila de encabezado"}
	}
	return p.run(rawHeader, rows, true)
}

func (p *Processor) run(rawHeader []string, rows [][]string, padShort bool) (*Result, error) {
	result := &Result{
		Header: OrganizeHeaders(rawHeader, p.Spec.Schema, p.Spec.Aliases),
	}
	proj := buildProjection(result.Header, headerIndex(rawHeader), p.Spec.Aliases)

	plans, err := p.buildPlans(rawHeader)
	if err != nil {
		return nil, err
	}

	rowNum := 0
	for _, cells := range rows {
		rowNum++
		result.RowCount++

		if padShort && len(cells) < len(rawHeader) {
			padded := make([]string, len(rawHeader))
			copy(padded, cells)
			cells = padded
		}
		if len(cells) != len(rawHeader) {
			result.Errors = append(result.Errors, ErrorRecord{
				Type:    TypeProcessing,
				Value:   truncate(strings.Join(cells, "|"), 100),
				Row:     rowNum,
				Message: fmt.Sprintf("la fila tiene %d celdas, se esperaban %d", len(cells), len(rawHeader)),
			})
			continue
		}

		for j, cell := range cells {
			outcome := plans[j].validator.Validate(cell)
			if outcome.Valid {
				cells[j] = outcome.Normalized
				continue
			}
			result.Errors = append(result.Errors, ErrorRecord{
				Column:      plans[j].raw,
				ColumnIndex: j + 1,
				Type:        plans[j].typeID,
				Value:       cell,
				Row:         rowNum,
				Message:     outcome.Message,
			})
		}
		result.Rows = append(result.Rows, proj.apply(cells))
	}
	return result, nil
}

// buildPlans resolves one validator per input column. Validation runs
// against the input-aligned row, so error records can carry the original
// column name and position.
func (p *Processor) buildPlans(rawHeader []string) ([]columnPlan, error) {
	plans := make([]columnPlan, len(rawHeader))
	for j, raw := range rawHeader {
		canonical := NormalizeColumnName(raw)
		if target, found := p.Spec.Aliases[canonical]; found {
			canonical = target
		}
		v, err := p.Registry.ForColumn(p.Spec, canonical)
		if err != nil {
			return nil, err
		}
		plans[j] = columnPlan{raw: raw, typeID: p.Spec.Type(canonical), validator: v}
	}
	return plans, nil
}

// WriteOutput writes the canonical header and all rows as delimited text.
func (p *Processor) WriteOutput(w io.Writer, result *Result) error {
	delim := p.OutputDelimiter
	if delim == "" {
		delim = "|"
	}
	if err := writeDelimitedLine(w, result.Header, delim); err != nil {
		return &OutputError{File: "output", Err: err}
	}
	for _, row := range result.Rows {
		if err := writeDelimitedLine(w, row, delim); err != nil {
			return &OutputError{File: "output", Err: err}
		}
	}
	return nil
}

// WriteErrorReport writes the findings table, or the two-line notice when
// the run had none.
func (p *Processor) WriteErrorReport(w io.Writer, result *Result) error {
	if len(result.Errors) == 0 {
		if _, err := io.WriteString(w, noFindingsNotice); err != nil {
			return &OutputError{File: "error report", Err: err}
		}
		return nil
	}
	if err := writeDelimitedLine(w, errorReportHeader, ","); err != nil {
		return &OutputError{File: "error report", Err: err}
	}
	for _, rec := range result.Errors {
		row := []string{
			rec.Column,
			fmt.Sprintf("%d", rec.ColumnIndex),
			rec.Type,
			rec.Value,
			fmt.Sprintf("%d", rec.Row),
			rec.Message,
		}
		if err := writeDelimitedLine(w, row, ","); err != nil {
			return &OutputError{File: "error report", Err: err}
		}
	}
	return nil
}

// writeDelimitedLine emits one physical line. Cells containing the delimiter
// or a quote are quoted with doubled inner quotes; embedded newlines are
// escaped back to the literal two-character `\n` so a row never spans lines.
func writeDelimitedLine(w io.Writer, cells []string, delim string) error {
	var b strings.Builder
	for i, cell := range cells {
		if i > 0 {
			b.WriteString(delim)
		}
		b.WriteString(encodeCell(cell, delim))
	}
	b.WriteByte('\n')
	_, err := io.WriteString(w, b.String())
	return err
}

func encodeCell(cell, delim string) string {
	cell = strings.ReplaceAll(cell, "\n", `\n`)
	if strings.Contains(cell, delim) || strings.Contains(cell, `"`) {
		cell = `"` + strings.ReplaceAll(cell, `"`, `""`) + `"`
	}
	return cell
}

// splitLines breaks decoded text into logical lines, dropping blank lines so
// they never consume a row number.
func splitLines(text string) []string {
	var lines []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimRight(line, "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		lines = append(lines, line)
	}
	return lines
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max] + "..."
}
