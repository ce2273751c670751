package engine

import "strings"

// Placeholder characters used to protect structure while splitting a line.
// delimPlaceholder is a private-use codepoint standing in for a delimiter
// that occurs inside quoted content; newlinePlaceholder stands in for an
// escaped newline sequence. Both are restored before output.
const (
	delimPlaceholder   = '\uE000'
	newlinePlaceholder = '\u23CE' // ⏎
)

// Tokenize splits one logical line into cells, honoring double quotes: a
// delimiter inside a quoted region does not separate cells, and an escaped
// `\n` sequence does not break the record. Surrounding quotes are stripped
// from each cell and doubled quotes collapse to one.
//
// An odd number of quotes leaves the quoted state open at end of line. That
// is a source-data defect; the line is treated as closed at end of scan and
// no multi-line joining is attempted.
func Tokenize(line, delimiter string) []string {
	if line == "" {
		return []string{""}
	}

	line = strings.ReplaceAll(line, `\n`, string(newlinePlaceholder))

	var b strings.Builder
	b.Grow(len(line))
	inQuotes := false
	for i := 0; i < len(line); {
		if line[i] == '"' {
			inQuotes = !inQuotes
			b.WriteByte('"')
			i++
			continue
		}
		if inQuotes && strings.HasPrefix(line[i:], delimiter) {
			b.WriteRune(delimPlaceholder)
			i += len(delimiter)
			continue
		}
		b.WriteByte(line[i])
		i++
	}

	parts := strings.Split(b.String(), delimiter)
	cells := make([]string, len(parts))
	for i, p := range parts {
		cells[i] = restoreCell(p, delimiter)
	}
	return cells
}

// restoreCell strips one pair of surrounding quotes, collapses doubled
// quotes, and swaps placeholders back to the literal delimiter and newline.
func restoreCell(cell, delimiter string) string {
	if len(cell) >= 2 && cell[0] == '"' && cell[len(cell)-1] == '"' {
		cell = cell[1 : len(cell)-1]
		cell = strings.ReplaceAll(cell, `""`, `"`)
	}
	cell = strings.ReplaceAll(cell, string(delimPlaceholder), delimiter)
	cell = strings.ReplaceAll(cell, string(newlinePlaceholder), "\n")
	return cell
}
