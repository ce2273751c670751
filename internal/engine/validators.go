package engine

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// nullTokens are raw values recognized as "no data" by every validator.
// Compared after trimming and lower-casing.
var nullTokens = map[string]bool{
	"":             true,
	"nan":          true,
	"null":         true,
	"n/a":          true,
	"n/a.":         true,
	"n.a":          true,
	"n.a.":         true,
	"none":         true,
	"na":           true,
	"$null$":       true,
	"sin registro": true,
	"desconocido":  true,
	"no aplica":    true,
}

// IsNull reports whether a raw cell value is one of the recognized null
// tokens.
func IsNull(raw string) bool {
	return nullTokens[strings.ToLower(strings.TrimSpace(raw))]
}

// ---- integer ----

var (
	integerPattern = regexp.MustCompile(`^[+-]?\d+$`)
	// integerGrouped matches thousands grouping with '.' or ',' in
	// three-digit groups, the only form where those characters are not a
	// decimal separator.
	integerGrouped = regexp.MustCompile(`^[+-]?\d{1,3}([.,]\d{3})+$`)
)

type integerValidator struct{}

func (integerValidator) Type() string { return TypeInteger }

func (integerValidator) Validate(raw string) Outcome {
	if IsNull(raw) {
		return ok("")
	}
	v := strings.ReplaceAll(strings.TrimSpace(raw), " ", "")

	switch {
	case integerGrouped.MatchString(v):
		v = strings.NewReplacer(".", "", ",", "").Replace(v)
	default:
		// Drop an all-zero fractional part left behind by spreadsheet
		// exports ("12.0", "12.00"). A non-zero fraction is not an integer.
		if i := strings.IndexAny(v, ".,"); i >= 0 && strings.Trim(v[i+1:], "0") == "" {
			v = v[:i]
		}
	}

	if !integerPattern.MatchString(v) {
		return fail(fmt.Sprintf("'%s' no es un número entero válido", raw))
	}
	return ok(canonicalInteger(v))
}

// canonicalInteger strips leading zeros and a redundant '+' sign from an
// already pattern-checked decimal string.
func canonicalInteger(v string) string {
	neg := false
	switch v[0] {
	case '-':
		neg = true
		v = v[1:]
	case '+':
		v = v[1:]
	}
	v = strings.TrimLeft(v, "0")
	if v == "" {
		return "0"
	}
	if neg {
		return "-" + v
	}
	return v
}

// ---- float ----

type floatValidator struct{}

func (floatValidator) Type() string { return TypeFloat }

func (floatValidator) Validate(raw string) Outcome {
	if IsNull(raw) {
		return ok("")
	}
	f, err := parseDecimal(raw)
	if err != nil {
		return fail(fmt.Sprintf("'%s' no es un número decimal válido", raw))
	}
	return ok(strconv.FormatFloat(f, 'f', -1, 64))
}

// parseDecimal accepts both '.' and ',' decimal conventions. When both
// characters appear, the rightmost one is the decimal separator and the
// other is treated as grouping.
func parseDecimal(raw string) (float64, error) {
	v := strings.ReplaceAll(strings.TrimSpace(raw), " ", "")
	dot := strings.LastIndexByte(v, '.')
	comma := strings.LastIndexByte(v, ',')
	switch {
	case dot >= 0 && comma >= 0 && comma > dot:
		v = strings.ReplaceAll(v, ".", "")
		v = strings.Replace(v, ",", ".", 1)
	case dot >= 0 && comma >= 0:
		v = strings.ReplaceAll(v, ",", "")
	case comma >= 0:
		if strings.Count(v, ",") > 1 {
			v = strings.ReplaceAll(v, ",", "")
		} else {
			v = strings.Replace(v, ",", ".", 1)
		}
	case strings.Count(v, ".") > 1:
		v = strings.ReplaceAll(v, ".", "")
	}
	return strconv.ParseFloat(v, 64)
}

// ---- date ----

// serialEpoch is the legacy spreadsheet date epoch. Day 1 is 1899-12-31 in
// that convention, but the epoch is set two days earlier to reproduce the
// historical leap-year bug that downstream systems already compensate for.
var serialEpoch = time.Date(1899, time.December, 30, 0, 0, 0, 0, time.UTC)

var serialPattern = regexp.MustCompile(`^\d{1,6}$`)

// dateLayouts are tried in order; the first match wins. Day precedes month
// everywhere except the ISO form. Single-digit day and month variants are
// accepted by the unpadded layout elements.
var dateLayouts = []string{
	"2/1/2006",
	"2-1-2006",
	"2006-1-2",
	"2.1.2006",
}

// dateTimeLayouts extend dateLayouts for values that carry a time component,
// which is discarded.
var dateTimeLayouts = []string{
	time.RFC3339,
	"2006-1-2T15:04:05",
	"2006-1-2 15:04:05",
	"2/1/2006 15:04:05",
	"2/1/2006 15:04",
	"2-1-2006 15:04:05",
}

// lastResortLayouts catch the stragglers real extracts still contain after
// the explicit patterns and the serial check have failed: year-first slashed
// dates, two-digit years and spelled-out months. Where a form is ambiguous
// the day-first variant is listed, never its month-first twin.
var lastResortLayouts = []string{
	"2006/1/2",
	"2/1/06",
	"2-1-06",
	"2.1.06",
	"2 Jan 2006",
	"2 January 2006",
	"2-Jan-2006",
	"2-Jan-06",
	"Jan 2, 2006",
	"January 2, 2006",
}

const dateOutput = "02/01/2006"

type dateValidator struct{}

func (dateValidator) Type() string { return TypeDate }

func (dateValidator) Validate(raw string) Outcome {
	if IsNull(raw) {
		return ok("")
	}
	v := strings.TrimSpace(raw)

	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, v); err == nil {
			return ok(t.Format(dateOutput))
		}
	}
	if serialPattern.MatchString(v) {
		n, err := strconv.Atoi(v)
		if err == nil && n > 0 {
			return ok(serialEpoch.AddDate(0, 0, n).Format(dateOutput))
		}
	}
	for _, layout := range dateTimeLayouts {
		if t, err := time.Parse(layout, v); err == nil {
			return ok(t.Format(dateOutput))
		}
	}
	for _, layout := range lastResortLayouts {
		if t, err := time.Parse(layout, v); err == nil {
			return ok(t.Format(dateOutput))
		}
	}
	return fail(fmt.Sprintf("'%s' no es una fecha válida", raw))
}

// ---- tax id (NIT) ----

// nitNullPhrases are free-text values agencies use where a NIT is genuinely
// unknown or inapplicable. They normalize to empty rather than failing.
var nitNullPhrases = map[string]bool{
	"por establecer": true,
	"por definir":    true,
	"no aplica":      true,
	"no tiene":       true,
	"pendiente":      true,
	"sin nit":        true,
	"sin numero":     true,
	"sin número":     true,
}

type nitValidator struct{}

func (nitValidator) Type() string { return TypeNIT }

func (nitValidator) Validate(raw string) Outcome {
	if IsNull(raw) {
		return ok("")
	}
	v := strings.TrimSpace(raw)
	if nitNullPhrases[strings.ToLower(v)] {
		return ok("")
	}
	if strings.ContainsFunc(v, func(r rune) bool {
		return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
	}) {
		return fail(fmt.Sprintf("'%s' contiene letras, no es un NIT válido", raw))
	}

	v = strings.NewReplacer(" ", "", ".", "").Replace(v)

	if n := strings.Count(v, "-"); n > 1 {
		return fail(fmt.Sprintf("'%s' tiene un formato de NIT inválido", raw))
	} else if n == 1 {
		body, suffix, _ := strings.Cut(v, "-")
		if !allDigits(body) || !allDigits(suffix) {
			return fail(fmt.Sprintf("'%s' tiene un formato de NIT inválido", raw))
		}
		// Check-digit suffix convention: one or two trailing digits after
		// the hyphen are dropped. A longer suffix is not a check digit.
		if len(suffix) > 2 {
			return fail(fmt.Sprintf("'%s' tiene un formato de NIT inválido", raw))
		}
		v = body
	}

	if !allDigits(v) || len(v) < 3 {
		return fail(fmt.Sprintf("'%s' no es un NIT válido", raw))
	}
	return ok(v)
}

func allDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// ---- string ----

type stringValidator struct{}

func (stringValidator) Type() string { return TypeString }

func (stringValidator) Validate(raw string) Outcome {
	if IsNull(raw) {
		return ok("")
	}
	cleaned := strings.Map(func(r rune) rune {
		if r < 0x20 || r == 0x7F {
			return -1
		}
		return r
	}, raw)
	return ok(strings.Join(strings.Fields(cleaned), " "))
}

// ---- email ----

var emailPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

type emailValidator struct{}

func (emailValidator) Type() string { return TypeEmail }

func (emailValidator) Validate(raw string) Outcome {
	if IsNull(raw) {
		return ok("")
	}
	v := strings.TrimSpace(raw)
	if !emailPattern.MatchString(v) {
		return fail(fmt.Sprintf("'%s' no es un correo electrónico válido", raw))
	}
	return ok(strings.ToLower(v))
}

// ---- phone ----

var phoneStripper = strings.NewReplacer(" ", "", "-", "", "(", "", ")", "", "+", "", ".", "")

type phoneValidator struct{}

func (phoneValidator) Type() string { return TypePhone }

func (phoneValidator) Validate(raw string) Outcome {
	if IsNull(raw) {
		return ok("")
	}
	v := phoneStripper.Replace(strings.TrimSpace(raw))
	if !allDigits(v) || len(v) < 7 {
		return fail(fmt.Sprintf("'%s' no es un teléfono válido (mínimo 7 dígitos)", raw))
	}
	return ok(v)
}

// ---- percentage ----

type percentageValidator struct {
	bounds PercentRange
}

func (percentageValidator) Type() string { return TypePercentage }

func (p percentageValidator) Validate(raw string) Outcome {
	if IsNull(raw) {
		return ok("")
	}
	v := strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(raw), "%"))
	f, err := parseDecimal(v)
	if err != nil {
		return fail(fmt.Sprintf("'%s' no es un porcentaje válido", raw))
	}
	if f < p.bounds.Min || f > p.bounds.Max {
		return fail(fmt.Sprintf("'%s' está fuera del rango [%v, %v]", raw, p.bounds.Min, p.bounds.Max))
	}
	return ok(strconv.FormatFloat(f, 'f', -1, 64))
}

// ---- boolean ----

var (
	affirmativeTokens = map[string]bool{
		"si": true, "sí": true, "s": true, "yes": true, "y": true,
		"true": true, "verdadero": true, "1": true, "x": true,
	}
	negativeTokens = map[string]bool{
		"no": true, "n": true, "false": true, "falso": true, "0": true,
	}
)

type booleanValidator struct{}

func (booleanValidator) Type() string { return TypeBoolean }

func (booleanValidator) Validate(raw string) Outcome {
	if IsNull(raw) {
		return ok("")
	}
	v := strings.ToLower(strings.TrimSpace(raw))
	switch {
	case affirmativeTokens[v]:
		return ok("SI")
	case negativeTokens[v]:
		return ok("NO")
	}
	return fail(fmt.Sprintf("'%s' no es un valor booleano válido", raw))
}

// ---- exact choice ----

type choiceValidator struct {
	values []string
}

func (choiceValidator) Type() string { return TypeChoice }

func (c choiceValidator) Validate(raw string) Outcome {
	if IsNull(raw) {
		return ok("")
	}
	v := strings.TrimSpace(raw)
	for _, accepted := range c.values {
		if strings.EqualFold(v, accepted) {
			return ok(strings.ToUpper(accepted))
		}
	}
	return fail(fmt.Sprintf("'%s' no está entre los valores permitidos", raw))
}

// ---- fuzzy choice ----

type fuzzyChoiceValidator struct {
	matcher *FuzzyMatcher
}

func (fuzzyChoiceValidator) Type() string { return TypeFuzzyChoice }

func (f fuzzyChoiceValidator) Validate(raw string) Outcome {
	if IsNull(raw) {
		return ok("")
	}
	return ok(f.matcher.Match(raw))
}
