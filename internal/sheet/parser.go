// Package sheet parses published-spreadsheet TSV exports into header-keyed rows.
//
// Published sheets are human-edited: headers vary in casing, spacing and
// diacritics, trailing cells go missing, and exports often end with blank
// lines. The parser is tolerant by contract — it never returns an error for
// shape problems, it just produces fewer or emptier rows.
package sheet

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// KeyPolicy controls how header cells are normalized into row keys. The two
// sheet families use different conventions.
type KeyPolicy int

const (
	// Collapse removes whitespace runs entirely: "Thumbnail Url" -> "thumbnailurl".
	// Used by the resource sheets (videos, ebooks, lectures, documents).
	Collapse KeyPolicy = iota
	// Underscore replaces whitespace runs with a single underscore:
	// "Dap An A" -> "dap_an_a". Used by the worksheet sheets.
	Underscore
)

// Row maps normalized header keys to trimmed cell values for one data line.
type Row map[string]string

// Get returns the first non-empty value among the given keys.
func (r Row) Get(keys ...string) string {
	for _, k := range keys {
		if v := r[k]; v != "" {
			return v
		}
	}
	return ""
}

// Line is one data line of a parsed sheet. Index is the 1-based position
// below the header line; blank lines consume an index even though they
// produce no Line, so Index is stable against trailing-newline noise.
type Line struct {
	Index int
	Row   Row
}

// Table is the result of parsing one sheet export.
type Table struct {
	Headers []string
	Lines   []Line
}

var wsRun = regexp.MustCompile(`\s+`)

// NormalizeKey turns a raw header cell into a row key: trimmed,
// diacritic-folded, lowercased, with whitespace runs collapsed per policy.
// Folding lets localized headers like "Lớp" or "Câu hỏi" match their ASCII
// aliases.
func NormalizeKey(header string, policy KeyPolicy) string {
	k := strings.ToLower(foldDiacritics(strings.TrimSpace(header)))
	if policy == Underscore {
		return wsRun.ReplaceAllString(k, "_")
	}
	return wsRun.ReplaceAllString(k, "")
}

var dReplacer = strings.NewReplacer("đ", "d", "Đ", "D")

func foldDiacritics(s string) string {
	s = dReplacer.Replace(s)
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return out
}

// Parse tokenizes raw tab-separated text. The first line is the header line;
// every following line becomes one Row keyed by the normalized headers.
//
// Tolerance rules: fewer than two lines yields an empty Table; a line that is
// empty (or whose sole cell is empty) is skipped; cells are trimmed; missing
// trailing cells resolve to ""; cells beyond the header count are ignored.
func Parse(text string, policy KeyPolicy) Table {
	lines := strings.Split(text, "\n")
	if len(lines) < 2 {
		return Table{}
	}

	rawHeaders := strings.Split(lines[0], "\t")
	keys := make([]string, len(rawHeaders))
	for i, h := range rawHeaders {
		keys[i] = NormalizeKey(h, policy)
	}

	t := Table{Headers: keys}
	for i := 1; i < len(lines); i++ {
		cells := strings.Split(lines[i], "\t")
		if len(cells) == 1 && cells[0] == "" {
			continue // blank trailing line, common in published exports
		}

		row := make(Row, len(keys))
		for j, key := range keys {
			if j < len(cells) {
				row[key] = strings.TrimSpace(cells[j])
			} else {
				row[key] = ""
			}
		}
		t.Lines = append(t.Lines, Line{Index: i, Row: row})
	}
	return t
}
