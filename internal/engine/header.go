package engine

import "strings"

// columnNameReplacer folds the fixed set of accented Latin letters and
// punctuation that show up in agency headers. Applied after upper-casing.
var columnNameReplacer = strings.NewReplacer(
	" ", "_",
	"-", "_",
	"Á", "A",
	"É", "E",
	"Í", "I",
	"Ó", "O",
	"Ú", "U",
	"Ü", "U",
	"Ñ", "N",
	".", "",
	"/", "_",
)

// NormalizeColumnName converts a raw column name to the canonical form used
// for all header comparisons: trimmed, upper-cased, spaces and hyphens as
// underscores, accents folded, '.' stripped and '/' converted.
func NormalizeColumnName(name string) string {
	return columnNameReplacer.Replace(strings.ToUpper(strings.TrimSpace(name)))
}

// OrganizeHeaders produces the canonical header order for a file: reference
// schema columns that are present in the input first, in schema order,
// followed by unrecognized input columns in their original relative order.
// Raw names are normalized, then alias-resolved once, then deduplicated
// keeping the first occurrence.
func OrganizeHeaders(raw []string, schema ReferenceSchema, aliases AliasTable) []string {
	seen := make(map[string]bool, len(raw))
	unique := make([]string, 0, len(raw))
	for _, h := range raw {
		name := NormalizeColumnName(h)
		if canonical, found := aliases[name]; found {
			name = canonical
		}
		if !seen[name] {
			seen[name] = true
			unique = append(unique, name)
		}
	}

	inSchema := make(map[string]bool, len(schema))
	ordered := make([]string, 0, len(unique))
	for _, ref := range schema {
		name := NormalizeColumnName(ref)
		if seen[name] {
			inSchema[name] = true
			ordered = append(ordered, name)
		}
	}
	for _, h := range unique {
		if !inSchema[h] {
			ordered = append(ordered, h)
		}
	}
	return ordered
}

// headerIndex maps normalized original header names to their input column
// position. First occurrence wins for duplicated names.
func headerIndex(raw []string) map[string]int {
	idx := make(map[string]int, len(raw))
	for i, h := range raw {
		name := NormalizeColumnName(h)
		if _, dup := idx[name]; !dup {
			idx[name] = i
		}
	}
	return idx
}

// projection maps each canonical output position to its input column, or -1
// when the column is absent from the input. Computed once per file and
// reused for every data row.
type projection []int

// buildProjection resolves every canonical column either directly against
// the normalized input header or, failing that, through a reverse alias
// lookup: an alias key whose canonical target is this column and which is
// itself present in the input.
func buildProjection(canonical []string, idx map[string]int, aliases AliasTable) projection {
	proj := make(projection, len(canonical))
	for i, col := range canonical {
		if pos, found := idx[col]; found {
			proj[i] = pos
			continue
		}
		// Reverse alias lookup. When several aliases of the same column
		// are present, the leftmost input column wins, keeping output
		// deterministic regardless of map iteration order.
		proj[i] = -1
		for alias, target := range aliases {
			if target != col {
				continue
			}
			if pos, found := idx[alias]; found && (proj[i] < 0 || pos < proj[i]) {
				proj[i] = pos
			}
		}
	}
	return proj
}

// apply reprojects one input row into canonical column order, padding
// absent columns with the empty string.
func (p projection) apply(row []string) []string {
	out := make([]string, len(p))
	for i, pos := range p {
		if pos >= 0 && pos < len(row) {
			out[i] = row[pos]
		}
	}
	return out
}
