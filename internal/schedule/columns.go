package schedule

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// ResolveColumn maps a semantic field name ("Type", "Subj", "Start", ...) to
// its cell index in the table's header, or ok=false if no header cell
// matches. Matching is case-insensitive substring containment.
//
// Banner splits wide headers across two consecutive rows, labeling early
// columns in the first row and later columns in the second, aligned by cell
// position. Resolution therefore checks the first header-cell-bearing row,
// then every further header row top-to-bottom, stopping at the first row
// with no header cells (the start of the data rows).
func ResolveColumn(table *goquery.Selection, name string) (int, bool) {
	target := strings.ToUpper(strings.TrimSpace(name))
	if target == "" {
		return 0, false
	}

	index := -1
	seenHeader := false

	table.Find("tr").EachWithBreak(func(_ int, row *goquery.Selection) bool {
		if row.Find("th").Length() == 0 {
			// First non-header row after the header block ends the search.
			return !seenHeader
		}
		seenHeader = true

		// Index across all cells in the row so a second header row with
		// leading filler cells stays position-aligned with the data rows.
		row.Find("th, td").EachWithBreak(func(i int, cell *goquery.Selection) bool {
			if strings.Contains(strings.ToUpper(cellText(cell)), target) {
				index = i
				return false
			}
			return true
		})
		return index < 0
	})

	if index < 0 {
		return 0, false
	}
	return index, true
}

// cellText returns a cell's text with surrounding whitespace and the
// non-breaking spaces Banner pads empty cells with stripped out.
func cellText(cell *goquery.Selection) string {
	text := strings.ReplaceAll(cell.Text(), "\u00a0", " ")
	return strings.TrimSpace(text)
}
