package engine

// ReferenceSchema is the ordered list of canonical column names for one
// agency. Columns present in the input are emitted first, in this order;
// unrecognized input columns follow in their original relative order.
type ReferenceSchema []string

// AliasTable maps a normalized raw column name to its canonical name.
// Aliases are resolved once, after name normalization. Many-to-one.
type AliasTable map[string]string

// TypeMapping maps a canonical column name to a validator type identifier.
// Columns absent from the mapping default to TypeString.
type TypeMapping map[string]string

// Validator type identifiers accepted by TypeMapping and the Registry.
const (
	TypeInteger     = "integer"
	TypeFloat       = "float"
	TypeDate        = "date"
	TypeNIT         = "nit"
	TypeString      = "string"
	TypeEmail       = "email"
	TypePhone       = "phone"
	TypePercentage  = "percentage"
	TypeBoolean     = "boolean"
	TypeChoice      = "choice"
	TypeFuzzyChoice = "fuzzy_choice"

	// TypeProcessing tags row-level failures (cell count mismatch) in the
	// error report. It is not a validator and cannot appear in a TypeMapping.
	TypeProcessing = "processing"
)

// ChoiceSpec describes the accepted value universe for a categorical column.
//
// Values keeps the agency's display casing; matching is diacritic and case
// insensitive. Replacements maps a normalized, upper-cased input to a
// corrected raw value which is re-normalized before the final lookup.
type ChoiceSpec struct {
	Values       []string
	Replacements map[string]string
}

// PercentRange bounds a percentage column. The zero value is not meaningful;
// use DefaultPercentRange when a column has no explicit bounds.
type PercentRange struct {
	Min float64
	Max float64
}

// DefaultPercentRange is the bound applied to percentage columns without an
// explicit range in Spec.Ranges.
var DefaultPercentRange = PercentRange{Min: 0, Max: 100}

// Spec is the full per-agency configuration consumed by a Processor. All
// fields are read-only for the life of a run; the engine never mutates them
// and never loads them from disk itself.
type Spec struct {
	Schema  ReferenceSchema
	Aliases AliasTable
	Types   TypeMapping

	// Choices holds the value universe per choice/fuzzy_choice column,
	// keyed by canonical column name.
	Choices map[string]ChoiceSpec

	// Ranges holds optional per-column percentage bounds, keyed by
	// canonical column name.
	Ranges map[string]PercentRange
}

// Type resolves the validator type for a canonical column name, defaulting
// to TypeString for unmapped columns.
func (s *Spec) Type(column string) string {
	if t, ok := s.Types[NormalizeColumnName(column)]; ok {
		return t
	}
	return TypeString
}

// ErrorRecord describes one validation finding. Records are created once,
// never mutated, and accumulated in file-processing order.
type ErrorRecord struct {
	Column      string // original column name as it appeared in the input
	ColumnIndex int    // 1-based position in the input header
	Type        string // validator type id, or TypeProcessing for row-shape failures
	Value       string // offending raw value
	Row         int    // 1-based data row index, header excluded
	Message     string
}

// Outcome is the result of validating a single cell. A recognized null
// yields {Valid: true, Normalized: ""}. Invalid cells carry a message; the
// caller keeps the raw value in the output row and records an ErrorRecord.
type Outcome struct {
	Valid      bool
	Message    string
	Normalized string
}

func ok(normalized string) Outcome {
	return Outcome{Valid: true, Normalized: normalized}
}

func fail(message string) Outcome {
	return Outcome{Valid: false, Message: message}
}

// Validator is the uniform per-type validation contract.
type Validator interface {
	// Type returns the validator type identifier.
	Type() string
	// Validate checks and normalizes a raw cell value.
	Validate(raw string) Outcome
}
