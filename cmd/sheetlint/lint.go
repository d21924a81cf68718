package main

import (
	"fmt"
	"strings"

	"github.com/capyhoc/capyhoc/internal/catalog"
	"github.com/capyhoc/capyhoc/internal/sheet"
)

// Finding is one lint result. Errors mark rows the viewer would silently
// drop; warnings mark content that loads but probably not as intended.
type Finding struct {
	Level   string // "error" or "warn"
	Message string
}

func (f Finding) String() string {
	return fmt.Sprintf("%s: %s", f.Level, f.Message)
}

var resourceHeaders = map[string]bool{
	"id": true, "title": true, "description": true,
	"thumbnailurl": true, "linkurl": true,
	"category": true, "author": true, "date": true,
	"grade": true, "lop": true, "class": true,
}

var worksheetHeaders = map[string]bool{
	"id_bai_tap": true, "id": true,
	"tieu_de_bai_tap": true, "title": true,
	"cau_hoi": true, "loai_cau_hoi": true,
	"dap_an_a": true, "dap_an_b": true, "dap_an_c": true, "dap_an_d": true,
	"dap_an_dung": true, "giai_thich": true,
}

// lintResources checks a resource sheet for rows the normalizer would drop
// and content that would render oddly.
func lintResources(t sheet.Table) []Finding {
	findings := lintHeaders(t.Headers, resourceHeaders)

	seen := map[string]int{}
	for _, ln := range t.Lines {
		row := ln.Row

		if row["title"] == "" {
			findings = append(findings, Finding{
				"error", fmt.Sprintf("row %d will be dropped: empty title", ln.Index),
			})
			continue
		}

		if id := row["id"]; id != "" {
			if prev, ok := seen[id]; ok {
				findings = append(findings, Finding{
					"warn", fmt.Sprintf("row %d reuses id %q (first used on row %d)", ln.Index, id, prev),
				})
			} else {
				seen[id] = ln.Index
			}
		}

		link := row["linkurl"]
		looksLikeYouTube := strings.Contains(link, "youtube.com") || strings.Contains(link, "youtu.be")
		if looksLikeYouTube && catalog.YouTubeID(link) == "" {
			findings = append(findings, Finding{
				"warn", fmt.Sprintf("row %d: YouTube-looking link %q has no recognizable video id; no thumbnail or player will be generated", ln.Index, link),
			})
		}
	}
	return findings
}

// lintWorksheets checks a worksheet sheet for ungroupable rows and questions
// that cannot be answered correctly.
func lintWorksheets(t sheet.Table) []Finding {
	findings := lintHeaders(t.Headers, worksheetHeaders)

	for _, ln := range t.Lines {
		row := ln.Row

		if row.Get("id_bai_tap", "id") == "" {
			findings = append(findings, Finding{
				"error", fmt.Sprintf("row %d will be skipped: no worksheet id", ln.Index),
			})
			continue
		}

		text := row["cau_hoi"]
		if text == "" {
			continue // metadata-only row
		}

		if typ := row["loai_cau_hoi"]; typ != "" && !strings.EqualFold(typ, "text") {
			findings = append(findings, Finding{
				"warn", fmt.Sprintf("row %d: question type %q is not recognized, treated as multiple-choice", ln.Index, typ),
			})
		}

		if strings.EqualFold(row["loai_cau_hoi"], "text") {
			continue
		}

		var options []string
		for _, k := range []string{"dap_an_a", "dap_an_b", "dap_an_c", "dap_an_d"} {
			if v := row[k]; v != "" {
				options = append(options, v)
			}
		}

		if len(options) == 0 {
			findings = append(findings, Finding{
				"error", fmt.Sprintf("row %d: multiple-choice question has no options", ln.Index),
			})
			continue
		}

		answer := row["dap_an_dung"]
		if answer == "" {
			findings = append(findings, Finding{
				"warn", fmt.Sprintf("row %d: no correct answer; the question can never be marked correct", ln.Index),
			})
		} else if !contains(options, answer) {
			findings = append(findings, Finding{
				"warn", fmt.Sprintf("row %d: correct answer %q is not among the options", ln.Index, answer),
			})
		}
	}
	return findings
}

func lintHeaders(headers []string, known map[string]bool) []Finding {
	var findings []Finding
	for _, h := range headers {
		if h != "" && !known[h] {
			findings = append(findings, Finding{
				"warn", fmt.Sprintf("unknown header %q will be ignored", h),
			})
		}
	}
	return findings
}

func contains(values []string, v string) bool {
	for _, x := range values {
		if x == v {
			return true
		}
	}
	return false
}

func countErrors(findings []Finding) int {
	n := 0
	for _, f := range findings {
		if f.Level == "error" {
			n++
		}
	}
	return n
}
