// Package calendar turns parsed course sessions into an iCalendar document.
//
// The generator emits floating-local DTSTART/DTEND values qualified with a
// TZID parameter, and weekly RRULEs whose UNTIL timestamps are converted to
// UTC as RFC 5545 requires for TZID-qualified starts. Output is fully
// deterministic: no wall-clock fields, and UIDs are derived from the session
// identity, so the same sessions always produce byte-identical output.
package calendar

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/Shexter/langara-ics/internal/logger"
	"github.com/Shexter/langara-ics/internal/schedule"
)

// uidNamespace seeds the deterministic SHA1 UIDs.
var uidNamespace = uuid.MustParse("9cfa41a6-8c9c-4c1f-9b4e-2d1c6e0a7b53")

// Options control the document-level fields of the generated calendar.
type Options struct {
	// Institution is the campus name used in LOCATION values.
	Institution string
	// TimezoneID is the IANA zone emitted as X-WR-TIMEZONE and TZID.
	TimezoneID string
	// ProdID is the iCalendar product identifier.
	ProdID string
	// UTCOffsetHours is the fixed local-to-UTC offset applied to recurrence
	// termination timestamps. The registration system treats the campus zone
	// as UTC-8 year-round.
	UTCOffsetHours int
}

// DefaultOptions returns the Langara defaults.
func DefaultOptions() Options {
	return Options{
		Institution:    "Langara College",
		TimezoneID:     "America/Los_Angeles",
		ProdID:         "-//langara-ics//course-schedule//EN",
		UTCOffsetHours: 8,
	}
}

// Generate assembles the complete iCalendar document for the given sessions,
// in order. A session whose start date or time range fails to decode is
// logged and omitted; it never aborts the rest of the document.
func Generate(sessions []*schedule.Session, opts Options) string {
	var ics strings.Builder

	ics.WriteString("BEGIN:VCALENDAR\r\n")
	ics.WriteString("VERSION:2.0\r\n")
	ics.WriteString(fmt.Sprintf("PRODID:%s\r\n", opts.ProdID))
	ics.WriteString("CALSCALE:GREGORIAN\r\n")
	ics.WriteString(fmt.Sprintf("X-WR-TIMEZONE:%s\r\n", opts.TimezoneID))

	for _, session := range sessions {
		block, ok := buildEvent(session, opts)
		if !ok {
			logger.Warn("Skipping session with undecodable date or time", logger.Fields{
				"course": courseLabel(session),
				"start":  session.StartDate,
				"time":   session.TimeRange,
			})
			continue
		}
		ics.WriteString(block)
	}

	ics.WriteString("END:VCALENDAR\r\n")
	return ics.String()
}

// buildEvent renders one VEVENT block. Returns ok=false when the session's
// start date or time range does not decode.
func buildEvent(session *schedule.Session, opts Options) (string, bool) {
	startDate := schedule.DecodeDate(session.StartDate)
	endDate := schedule.DecodeDate(session.EndDate)
	timeRange, timeOK := schedule.DecodeTime(session.TimeRange)
	if startDate == "" || !timeOK {
		return "", false
	}

	label := courseLabel(session)
	isExam := session.SessionType == schedule.TypeExam

	summary := label + " " + session.SessionType
	if isExam {
		summary = "FINAL EXAM - " + label
	}

	description := session.Title
	if description == "" {
		description = summary
	}

	location := opts.Institution
	if session.Room != "" {
		location = fmt.Sprintf("%s, Room %s", opts.Institution, session.Room)
	}

	// Each event is a single occurrence on the start date; recurrence is
	// expressed through RRULE. Multi-day final exam blocks are the one case
	// where DTEND moves to the end date.
	endEventDate := startDate
	if isExam && endDate != "" && endDate != startDate {
		endEventDate = endDate
	}

	var event strings.Builder
	event.WriteString("BEGIN:VEVENT\r\n")
	event.WriteString(fmt.Sprintf("UID:%s@langara.ca\r\n", sessionUID(session)))
	event.WriteString(fmt.Sprintf("DTSTART;TZID=%s:%s\r\n",
		opts.TimezoneID, schedule.ToCalendarDateTime(startDate, timeRange.Start)))
	event.WriteString(fmt.Sprintf("DTEND;TZID=%s:%s\r\n",
		opts.TimezoneID, schedule.ToCalendarDateTime(endEventDate, timeRange.End)))

	if rule := recurrenceRule(session, endDate, opts.UTCOffsetHours); rule != "" {
		event.WriteString(rule + "\r\n")
	}

	event.WriteString(fmt.Sprintf("SUMMARY:%s\r\n", escapeICS(summary)))
	event.WriteString(fmt.Sprintf("DESCRIPTION:%s\r\n", escapeICS(description)))
	event.WriteString(fmt.Sprintf("LOCATION:%s\r\n", escapeICS(location)))
	event.WriteString("END:VEVENT\r\n")

	return event.String(), true
}

// recurrenceRule builds the weekly RRULE for a session, or "" when the
// session doesn't recur: exams, sessions with no marked weekdays, and
// sessions whose end date is missing or undecodable.
func recurrenceRule(session *schedule.Session, endDate string, utcOffsetHours int) string {
	if session.SessionType == schedule.TypeExam || endDate == "" {
		return ""
	}
	days := schedule.DecodeDays(session.DaysMask)
	if len(days) == 0 {
		return ""
	}

	// UNTIL must be UTC when DTSTART carries a TZID; terminate at the end
	// of the last day of classes, local time.
	until := schedule.ToUTCDateTime(endDate, "23:59", utcOffsetHours)
	return fmt.Sprintf("RRULE:FREQ=WEEKLY;BYDAY=%s;UNTIL=%s", strings.Join(days, ","), until)
}

// courseLabel builds the human-readable course identifier, degrading to
// whatever identity fields the session has.
func courseLabel(session *schedule.Session) string {
	if session.Subject != "" && session.Course != "" {
		label := session.Subject + " " + session.Course
		if session.Section != "" {
			label += " " + session.Section
		}
		return label
	}
	if session.Subject != "" {
		return session.Subject
	}
	if session.Course != "" {
		return session.Course
	}
	if session.Title != "" {
		return session.Title
	}
	return "Course"
}

// sessionUID derives a deterministic UID from the session identity, so
// re-exporting the same schedule yields identical events.
func sessionUID(session *schedule.Session) string {
	key := strings.Join([]string{
		session.Subject,
		session.Course,
		session.Section,
		session.SessionType,
		session.DaysMask,
		session.TimeRange,
		session.StartDate,
	}, "|")
	return uuid.NewSHA1(uidNamespace, []byte(key)).String()
}

// escapeICS escapes special characters for iCalendar text values per
// RFC 5545: backslash, semicolon, comma, and newline.
func escapeICS(s string) string {
	s = strings.ReplaceAll(s, "\\", "\\\\")
	s = strings.ReplaceAll(s, ";", "\\;")
	s = strings.ReplaceAll(s, ",", "\\,")
	s = strings.ReplaceAll(s, "\n", "\\n")
	return s
}
