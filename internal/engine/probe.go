package engine

import (
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
)

// Encoding names reported by DetectEncoding.
const (
	EncodingUTF8   = "utf-8"
	EncodingLatin1 = "latin-1"
	EncodingCP1252 = "cp1252"
)

// DefaultDelimiter is used when no candidate delimiter occurs in the input.
const DefaultDelimiter = ","

// probeSampleLines bounds how many lines the delimiter consistency check
// inspects.
const probeSampleLines = 10

// DetectEncoding decodes raw bytes into text, trying UTF-8 first and falling
// back to the single-byte encodings government systems still export.
//
// Latin-1 and CP1252 only differ in the 0x80-0x9F range: Latin-1 assigns it
// control characters that never appear in real extracts, CP1252 assigns it
// printable punctuation. Presence of any byte in that range therefore selects
// CP1252.
func DetectEncoding(data []byte) (string, string) {
	if utf8.Valid(data) {
		return string(data), EncodingUTF8
	}
	hasC1 := false
	for _, b := range data {
		if b >= 0x80 && b <= 0x9F {
			hasC1 = true
			break
		}
	}
	if hasC1 {
		if decoded, err := charmap.Windows1252.NewDecoder().Bytes(data); err == nil {
			return string(decoded), EncodingCP1252
		}
	}
	decoded, err := charmap.ISO8859_1.NewDecoder().Bytes(data)
	if err != nil {
		// Latin-1 decoding is total; this branch is unreachable in
		// practice but keeps the fallback explicit.
		return string(data), EncodingUTF8
	}
	return string(decoded), EncodingLatin1
}

// delimiterCandidates are tried in priority order. Multi-character and
// pipe-family delimiters are deliberate agency conventions and outrank the
// generic ones; the trailing single characters appear in free text often
// enough to be down-weighted.
var delimiterCandidates = []struct {
	token  string
	weight float64
}{
	{"|@", 1.5},
	{"|", 1.2},
	{",", 1.0},
	{";", 1.0},
	{"\t", 1.0},
	{"@", 0.8},
	{"~", 0.8},
	{"^", 0.8},
}

// DetectDelimiter picks the most plausible cell delimiter for the given
// text. Each candidate is scored on how consistently it splits the sample
// lines into the same number of cells and on how often it occurs in the
// header line; the weighted blend favors consistency. Returns
// DefaultDelimiter when no candidate occurs at all.
func DetectDelimiter(text string) string {
	lines := sampleLines(text, probeSampleLines)
	if len(lines) == 0 {
		return DefaultDelimiter
	}

	best := DefaultDelimiter
	bestScore := 0.0
	for _, cand := range delimiterCandidates {
		headerCount := strings.Count(lines[0], cand.token)
		if headerCount == 0 {
			continue
		}

		consistent := 0
		for _, line := range lines {
			if strings.Count(line, cand.token) == headerCount {
				consistent++
			}
		}
		consistency := float64(consistent) / float64(len(lines))

		frequency := float64(headerCount) / 10.0
		if frequency > 1 {
			frequency = 1
		}

		score := (consistency*0.6 + frequency*0.4) * cand.weight
		if score > bestScore {
			bestScore = score
			best = cand.token
		}
	}
	return best
}

// sampleLines returns up to max non-empty lines from the start of text.
func sampleLines(text string, max int) []string {
	var lines []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimRight(line, "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		lines = append(lines, line)
		if len(lines) == max {
			break
		}
	}
	return lines
}

// Probe decodes raw input bytes and detects the cell delimiter in one step.
func Probe(data []byte) (text, delimiter, encoding string) {
	text, encoding = DetectEncoding(data)
	return text, DetectDelimiter(text), encoding
}
