package schedule

import (
	"github.com/PuerkitoBio/goquery"
)

// CollectSessions walks every row of the located schedule table and returns
// the session records in table order, together with diagnostic counts.
//
// Leading rows containing header cells are skipped (Banner uses a two-row
// header). Rows with fewer than 3 cells are spacers and are counted but
// never parsed. The course identity carries over between rows: a row that
// names its own subject and course resets it, and every produced record
// refreshes it, so continuation rows for the same course inherit the right
// identity.
//
// Returns a *NoSessionsError carrying the counts when no row produced a
// record.
func CollectSessions(table *goquery.Selection) ([]*Session, ParseStats, error) {
	rows := table.Find("tr")

	var stats ParseStats
	stats.TotalRows = rows.Length()

	var sessions []*Session
	var ctx CourseIdentity
	inHeader := true

	rows.Each(func(_ int, row *goquery.Selection) {
		if inHeader {
			if row.Find("th").Length() > 0 {
				stats.HeaderRows++
				return
			}
			inHeader = false
		}

		if len(rowCells(row)) < minSessionCells {
			stats.SkippedRows++
			return
		}

		if identity, ok := RowIdentity(row, table); ok {
			ctx = identity
		}

		session, ok := ParseRow(row, table, ctx)
		if !ok {
			stats.InvalidRows++
			return
		}

		sessions = append(sessions, session)
		ctx = session.Identity().Merge(ctx)
	})

	stats.Sessions = len(sessions)
	if len(sessions) == 0 {
		return nil, stats, &NoSessionsError{Stats: stats}
	}
	return sessions, stats, nil
}
