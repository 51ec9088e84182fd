package schedule

import "fmt"

// SessionType values as they appear (case-normalized) in the Type column.
const (
	TypeLecture = "LECTURE"
	TypeLab     = "LAB"
	TypeExam    = "EXAM"
)

// Session represents one scheduled meeting pattern for a course component:
// a lecture's weekly slot, a lab's weekly slot, or a final exam sitting.
// Date, time, and days fields hold the registration system's raw compact
// encodings; decoding happens at calendar-generation time.
type Session struct {
	Subject     string `json:"subject"`
	Course      string `json:"course"`
	Section     string `json:"section"`
	Title       string `json:"title"`
	SessionType string `json:"session_type"`
	DaysMask    string `json:"days_mask"`
	TimeRange   string `json:"time_range"`
	StartDate   string `json:"start_date"`
	EndDate     string `json:"end_date,omitempty"`
	Room        string `json:"room,omitempty"`
}

// Identity returns the session's course-identifying fields.
func (s *Session) Identity() CourseIdentity {
	return CourseIdentity{
		Subject: s.Subject,
		Course:  s.Course,
		Section: s.Section,
		Title:   s.Title,
	}
}

// CourseIdentity is the carry-over state threaded through one aggregation
// pass. The registration table prints Subject/Course/Section/Title only on
// the first of several session rows for a course; later rows read them from
// here.
type CourseIdentity struct {
	Subject string
	Course  string
	Section string
	Title   string
}

// HasCourse reports whether the identity names a course (subject and course
// number both present).
func (c CourseIdentity) HasCourse() bool {
	return c.Subject != "" && c.Course != ""
}

// Merge fills any empty fields of c from other, keeping c's own values.
func (c CourseIdentity) Merge(other CourseIdentity) CourseIdentity {
	if c.Subject == "" {
		c.Subject = other.Subject
	}
	if c.Course == "" {
		c.Course = other.Course
	}
	if c.Section == "" {
		c.Section = other.Section
	}
	if c.Title == "" {
		c.Title = other.Title
	}
	return c
}

// ParseStats carries per-table diagnostic counts surfaced to the caller.
type ParseStats struct {
	TotalRows   int `json:"total_rows"`
	HeaderRows  int `json:"header_rows"`
	SkippedRows int `json:"skipped_rows"`
	InvalidRows int `json:"invalid_rows"`
	Sessions    int `json:"sessions"`
}

// NoSessionsError is returned when the schedule table was located but no row
// produced a valid session record. The embedded stats let the caller explain
// what the parser saw.
type NoSessionsError struct {
	Stats ParseStats
}

func (e *NoSessionsError) Error() string {
	return fmt.Sprintf("no course sessions found in schedule table (%d rows: %d header, %d skipped, %d invalid)",
		e.Stats.TotalRows, e.Stats.HeaderRows, e.Stats.SkippedRows, e.Stats.InvalidRows)
}
