package catalog

import (
	"fmt"

	"github.com/capyhoc/capyhoc/internal/sheet"
)

// gradeKeys lists the accepted header aliases for the grade column, highest
// priority first. The raw "lớp" form is kept for sheets parsed before header
// folding existed.
var gradeKeys = []string{"grade", "lớp", "lop", "class"}

// Resources maps parsed resource-sheet rows (Collapse key policy) into
// ResourceItems, preserving source row order.
//
// A row without a title is dropped; that is the sole validity gate. Duplicate
// ids are kept as-is — resources are consumed positionally, never by id.
func Resources(t sheet.Table) []ResourceItem {
	items := make([]ResourceItem, 0, len(t.Lines))
	for _, ln := range t.Lines {
		row := ln.Row

		title := row["title"]
		if title == "" {
			continue
		}

		item := ResourceItem{
			Title:        title,
			Description:  row["description"],
			ThumbnailURL: row["thumbnailurl"],
			LinkURL:      row["linkurl"],
			Category:     row["category"],
			Author:       row["author"],
			Date:         row["date"],
			Grade:        row.Get(gradeKeys...),
		}
		if item.LinkURL == "" {
			item.LinkURL = "#"
		}

		if id := YouTubeID(row["linkurl"]); id != "" {
			if item.ThumbnailURL == "" {
				item.ThumbnailURL = ThumbnailURL(id)
			}
			item.EmbedURL = EmbedURL(id)
		}

		item.ID = row["id"]
		if item.ID == "" {
			item.ID = fmt.Sprintf("row-%d", ln.Index)
		}

		items = append(items, item)
	}
	return items
}
