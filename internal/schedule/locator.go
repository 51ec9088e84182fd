package schedule

import (
	"errors"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// ErrTableNotFound is returned when no locator strategy matched a table.
// Typically the user is on a page variant that doesn't render the registered
// courses table (e.g. the wrong view tab).
var ErrTableNotFound = errors.New("registered courses table not found on page")

const (
	// How many following siblings of a matched heading to scan for the table.
	siblingScanDepth = 10
	// How many ancestors of a matched heading to scan (each ancestor's
	// descendants are searched for the table).
	ancestorScanDepth = 5
)

// headingSelector covers the elements Banner-style pages use to label the
// registered-courses section, in both by-course and by-week views.
const headingSelector = "h1, h2, h3, h4, caption, th, td, b, strong, div, span"

// tableSelectors are structural selectors for the registration system's
// known table styling. Banner renders data tables with the
// "datadisplaytable" class inside a "pagebodydiv" wrapper.
var tableSelectors = []string{
	"table.datadisplaytable",
	"table.dataentrytable",
	"div.pagebodydiv table",
	"table[summary]",
}

// FindScheduleTable returns the table most likely to hold course session
// rows, trying three strategies in order and taking the first match. The
// layered approach exists because the markup differs across institution
// deployments and page variants around what is functionally the same table.
func FindScheduleTable(doc *goquery.Document) (*goquery.Selection, error) {
	if table := findByHeading(doc); table != nil {
		return table, nil
	}
	if table := findBySelectors(doc); table != nil {
		return table, nil
	}
	if table := findByHeaderScan(doc); table != nil {
		return table, nil
	}
	return nil, ErrTableNotFound
}

// findByHeading is strategy 1: locate a heading-like element mentioning the
// registered courses section, then look for a nearby table with a Type
// column — first among following siblings, then via ancestor subtrees.
func findByHeading(doc *goquery.Document) *goquery.Selection {
	var found *goquery.Selection

	doc.Find(headingSelector).EachWithBreak(func(_ int, sel *goquery.Selection) bool {
		text := strings.ToUpper(sel.Text())
		if !strings.Contains(text, "REGISTERED") || !strings.Contains(text, "COURSE") {
			return true
		}

		if table := scanSiblings(sel); table != nil {
			found = table
			return false
		}
		if table := scanAncestors(sel); table != nil {
			found = table
			return false
		}
		return true
	})

	return found
}

// scanSiblings walks up to siblingScanDepth following siblings of sel,
// accepting the first table (direct or nested) whose header has a Type
// column.
func scanSiblings(sel *goquery.Selection) *goquery.Selection {
	next := sel
	for i := 0; i < siblingScanDepth; i++ {
		next = next.Next()
		if next.Length() == 0 {
			return nil
		}
		if next.Is("table") && hasHeaderColumn(next, "TYPE") {
			return next
		}
		if table := firstTableWithColumn(next, "TYPE"); table != nil {
			return table
		}
	}
	return nil
}

// scanAncestors walks up to ancestorScanDepth ancestors of sel and searches
// each ancestor's subtree for a table with a Type column.
func scanAncestors(sel *goquery.Selection) *goquery.Selection {
	parent := sel.Parent()
	for i := 0; i < ancestorScanDepth; i++ {
		if parent.Length() == 0 {
			return nil
		}
		if table := firstTableWithColumn(parent, "TYPE"); table != nil {
			return table
		}
		parent = parent.Parent()
	}
	return nil
}

// findBySelectors is strategy 2: try the known structural selectors and
// accept a candidate only if its header resolves a schedule-shaped column.
func findBySelectors(doc *goquery.Document) *goquery.Selection {
	for _, selector := range tableSelectors {
		var found *goquery.Selection
		doc.Find(selector).EachWithBreak(func(_ int, table *goquery.Selection) bool {
			if !table.Is("table") {
				return true
			}
			if hasHeaderColumn(table, "TYPE") ||
				hasHeaderColumn(table, "START") ||
				hasHeaderColumn(table, "DAYS") ||
				(hasHeaderColumn(table, "SUBJ") && hasHeaderColumn(table, "CRSE")) {
				found = table
				return false
			}
			return true
		})
		if found != nil {
			return found
		}
	}
	return nil
}

// findByHeaderScan is strategy 3, the last resort: scan every table with
// more than 3 rows and accept the first whose concatenated header text looks
// like a schedule header.
func findByHeaderScan(doc *goquery.Document) *goquery.Selection {
	var found *goquery.Selection

	doc.Find("table").EachWithBreak(func(_ int, table *goquery.Selection) bool {
		if table.Find("tr").Length() <= 3 {
			return true
		}
		header := strings.ToUpper(headerText(table))
		if strings.Contains(header, "TYPE") &&
			(strings.Contains(header, "START") || strings.Contains(header, "DAYS")) {
			found = table
			return false
		}
		return true
	})

	return found
}

// firstTableWithColumn returns the first table in root's subtree whose
// header resolves the named column, or nil.
func firstTableWithColumn(root *goquery.Selection, name string) *goquery.Selection {
	var found *goquery.Selection
	root.Find("table").EachWithBreak(func(_ int, table *goquery.Selection) bool {
		if hasHeaderColumn(table, name) {
			found = table
			return false
		}
		return true
	})
	return found
}

// hasHeaderColumn reports whether the table's header resolves the named
// column.
func hasHeaderColumn(table *goquery.Selection, name string) bool {
	_, ok := ResolveColumn(table, name)
	return ok
}

// headerText concatenates the text of every header cell in the table's
// leading header rows.
func headerText(table *goquery.Selection) string {
	var parts []string
	table.Find("tr").EachWithBreak(func(i int, row *goquery.Selection) bool {
		cells := row.Find("th")
		if cells.Length() == 0 {
			// Header rows are contiguous at the top; the first row without
			// header cells starts the data section.
			return i == 0
		}
		cells.Each(func(_ int, cell *goquery.Selection) {
			parts = append(parts, cellText(cell))
		})
		return true
	})
	return strings.Join(parts, " ")
}
