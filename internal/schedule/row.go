package schedule

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// Cell content patterns for the fields that identify a session row. Column
// positions shift between institution configurations, so pattern matching
// over cell text is the primary extraction path; header resolution and then
// fixed positions are the fallbacks.
var (
	datePattern = regexp.MustCompile(`^\d{1,2}-[A-Za-z]{3}-\d{4}$`)
	timePattern = regexp.MustCompile(`^\d{3,4}-\d{3,4}$`)
	daysPattern = regexp.MustCompile(`(?i)^[MTWRFSU-]{7}$`)
)

// sessionTypes are the recognized Type column values.
var sessionTypes = []string{TypeLecture, TypeLab, TypeExam}

// Last-resort column positions, matching the default registered-courses
// layout (Subj, Crse, Sec, Cred, Title, Type, Days, Time, Start, End, Room).
const (
	fallbackSubjectCol = 0
	fallbackCourseCol  = 1
	fallbackSectionCol = 2
	fallbackTitleCol   = 4
	fallbackTypeCol    = 5
	fallbackDaysCol    = 6
	fallbackTimeCol    = 7
	fallbackStartCol   = 8
	fallbackEndCol     = 9
	fallbackRoomCol    = 10
)

// minSessionCells is the cell count below which a row is a spacer, not data.
const minSessionCells = 3

// ParseRow extracts a session record from one data row. Identity fields the
// row leaves blank are inherited from ctx. Returns ok=false for rows that
// are not session data: spacers, continuation markers, and rows missing a
// session type or both a start date and a time range. That is an expected
// outcome, not an error.
func ParseRow(row, table *goquery.Selection, ctx CourseIdentity) (*Session, bool) {
	cells := rowCells(row)
	if len(cells) < minSessionCells {
		return nil, false
	}

	sessionType := findSessionType(cells, table)
	startDate, endDate := findDates(cells, table)
	timeRange := findCell(cells, timePattern, resolveIndex(table, "TIME", fallbackTimeCol))
	daysMask := findCell(cells, daysPattern, resolveIndex(table, "DAYS", fallbackDaysCol))

	if sessionType == "" {
		return nil, false
	}
	if startDate == "" && timeRange == "" {
		return nil, false
	}

	identity := CourseIdentity{
		Subject: cellAt(cells, resolveIndex(table, "SUBJ", fallbackSubjectCol)),
		Course:  cellAt(cells, resolveIndex(table, "CRSE", fallbackCourseCol)),
		Section: cellAt(cells, resolveIndex(table, "SEC", fallbackSectionCol)),
		Title:   cellAt(cells, resolveIndex(table, "TITLE", fallbackTitleCol)),
	}.Merge(ctx)

	return &Session{
		Subject:     identity.Subject,
		Course:      identity.Course,
		Section:     identity.Section,
		Title:       identity.Title,
		SessionType: sessionType,
		DaysMask:    daysMask,
		TimeRange:   timeRange,
		StartDate:   startDate,
		EndDate:     endDate,
		Room:        cellAt(cells, resolveIndex(table, "ROOM", fallbackRoomCol)),
	}, true
}

// RowIdentity extracts just the identity fields a row carries itself, and
// reports whether the row names its own course. The aggregator uses this to
// refresh the carry-over context even for rows that yield no record.
func RowIdentity(row, table *goquery.Selection) (CourseIdentity, bool) {
	cells := rowCells(row)
	identity := CourseIdentity{
		Subject: cellAt(cells, resolveIndex(table, "SUBJ", fallbackSubjectCol)),
		Course:  cellAt(cells, resolveIndex(table, "CRSE", fallbackCourseCol)),
		Section: cellAt(cells, resolveIndex(table, "SEC", fallbackSectionCol)),
		Title:   cellAt(cells, resolveIndex(table, "TITLE", fallbackTitleCol)),
	}
	return identity, identity.HasCourse()
}

// rowCells returns the cleaned text of every cell in the row, in order.
func rowCells(row *goquery.Selection) []string {
	var cells []string
	row.Find("th, td").Each(func(_ int, cell *goquery.Selection) {
		cells = append(cells, cellText(cell))
	})
	return cells
}

// findSessionType scans the cells for a recognized session type, falling
// back to the resolved Type column.
func findSessionType(cells []string, table *goquery.Selection) string {
	for _, text := range cells {
		upper := strings.ToUpper(text)
		for _, st := range sessionTypes {
			if upper == st {
				return st
			}
		}
	}

	text := strings.ToUpper(cellAt(cells, resolveIndex(table, "TYPE", fallbackTypeCol)))
	for _, st := range sessionTypes {
		if text == st {
			return st
		}
	}
	return ""
}

// findDates scans left-to-right for the first date-shaped cell, which is the
// start date. The end date is the immediately following cell, but only when
// that cell is also date-shaped; otherwise the session has no end date.
func findDates(cells []string, table *goquery.Selection) (start, end string) {
	for i, text := range cells {
		if !datePattern.MatchString(text) {
			continue
		}
		start = text
		if i+1 < len(cells) && datePattern.MatchString(cells[i+1]) {
			end = cells[i+1]
		}
		return start, end
	}

	start = cellAt(cells, resolveIndex(table, "START", fallbackStartCol))
	if !datePattern.MatchString(start) {
		return "", ""
	}
	end = cellAt(cells, resolveIndex(table, "END", fallbackEndCol))
	if !datePattern.MatchString(end) {
		end = ""
	}
	return start, end
}

// findCell returns the first cell matching pattern, or the cell at the
// fallback index if its text matches.
func findCell(cells []string, pattern *regexp.Regexp, fallback int) string {
	for _, text := range cells {
		if pattern.MatchString(text) {
			return text
		}
	}
	if text := cellAt(cells, fallback); pattern.MatchString(text) {
		return text
	}
	return ""
}

// resolveIndex resolves a column by header name, falling back to a fixed
// position when the header doesn't name it.
func resolveIndex(table *goquery.Selection, name string, fallback int) int {
	if i, ok := ResolveColumn(table, name); ok {
		return i
	}
	return fallback
}

// cellAt returns the cell text at index i, or "" when out of range.
func cellAt(cells []string, i int) string {
	if i < 0 || i >= len(cells) {
		return ""
	}
	return cells[i]
}
