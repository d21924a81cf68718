package catalog

import (
	"fmt"
	"strings"

	"github.com/capyhoc/capyhoc/internal/sheet"
)

// UntitledWorksheet is the title given to a worksheet whose sheet rows never
// name it.
const UntitledWorksheet = "Bài tập không tên"

var optionKeys = [4]string{"dap_an_a", "dap_an_b", "dap_an_c", "dap_an_d"}

// Worksheets maps parsed worksheet-sheet rows (Underscore key policy) into
// grouped Worksheets. Rows sharing a grouping key aggregate into one
// worksheet; worksheet output order is the order in which keys first appear.
//
// A row without a grouping key is skipped entirely. A row with a key but no
// question text contributes worksheet metadata only, which lets a sheet carry
// a title-bearing header row per worksheet.
func Worksheets(t sheet.Table) []Worksheet {
	byID := make(map[string]*Worksheet)
	var order []string

	for _, ln := range t.Lines {
		row := ln.Row

		id := row.Get("id_bai_tap", "id")
		if id == "" {
			continue
		}

		ws, ok := byID[id]
		if !ok {
			title := row.Get("tieu_de_bai_tap", "title")
			if title == "" {
				title = UntitledWorksheet
			}
			ws = &Worksheet{ID: id, Title: title, Questions: []Question{}}
			byID[id] = ws
			order = append(order, id)
		}

		text := row["cau_hoi"]
		if text == "" {
			continue
		}

		q := Question{
			// Row index keeps ids unique even when a key repeats across
			// disjoint row ranges.
			ID:            fmt.Sprintf("q-%s-%d", id, ln.Index),
			Text:          text,
			Type:          MultipleChoice,
			CorrectAnswer: row["dap_an_dung"],
			Explanation:   row["giai_thich"],
		}
		if strings.EqualFold(row["loai_cau_hoi"], "text") {
			q.Type = FreeText
		}
		if q.Type == MultipleChoice {
			for _, k := range optionKeys {
				if v := row[k]; v != "" {
					q.Options = append(q.Options, v)
				}
			}
		}

		ws.Questions = append(ws.Questions, q)
	}

	out := make([]Worksheet, 0, len(order))
	for _, id := range order {
		out = append(out, *byID[id])
	}
	return out
}
