package schedule

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// monthNumbers maps the registration system's 3-letter month abbreviations
// to calendar month numbers.
var monthNumbers = map[string]int{
	"JAN": 1, "FEB": 2, "MAR": 3, "APR": 4, "MAY": 5, "JUN": 6,
	"JUL": 7, "AUG": 8, "SEP": 9, "OCT": 10, "NOV": 11, "DEC": 12,
}

// weekdayLetters is the fixed Monday-first alphabet of the 7-character days
// mask. Thursday is R and Sunday is U so every day gets a distinct letter.
var weekdayLetters = [7]byte{'M', 'T', 'W', 'R', 'F', 'S', 'U'}

// weekdayCodes are the iCalendar BYDAY codes, index-aligned with weekdayLetters.
var weekdayCodes = [7]string{"MO", "TU", "WE", "TH", "FR", "SA", "SU"}

// DecodeDate converts a "D-MMM-YYYY" date (e.g. "06-MAY-2024") to an 8-digit
// "YYYYMMDD" string. The month abbreviation is case-insensitive. Returns ""
// for malformed input, an unknown month, or an impossible calendar date such
// as 30-FEB.
func DecodeDate(raw string) string {
	parts := strings.Split(strings.TrimSpace(raw), "-")
	if len(parts) != 3 {
		return ""
	}
	dayText, monText, yearText := parts[0], parts[1], parts[2]
	if len(dayText) < 1 || len(dayText) > 2 || len(yearText) != 4 {
		return ""
	}

	month, ok := monthNumbers[strings.ToUpper(monText)]
	if !ok {
		return ""
	}
	day, err := strconv.Atoi(dayText)
	if err != nil {
		return ""
	}
	year, err := strconv.Atoi(yearText)
	if err != nil {
		return ""
	}

	// time.Date normalizes out-of-range values (Feb 30 becomes Mar 1), so a
	// round-trip mismatch means the date was not a real calendar day.
	t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	if t.Year() != year || t.Month() != time.Month(month) || t.Day() != day {
		return ""
	}

	return fmt.Sprintf("%04d%02d%02d", year, month, day)
}

// TimeRange is a decoded start/end clock pair in "HH:MM" form.
type TimeRange struct {
	Start string
	End   string
}

// DecodeTime splits a compact "HHMM-HHMM" range (hours may be a single
// digit, e.g. "830-1025") into zero-padded "HH:MM" start and end clocks.
// Returns ok=false when the separator is missing or either side is not a
// 3-4 digit number.
func DecodeTime(raw string) (TimeRange, bool) {
	parts := strings.Split(strings.TrimSpace(raw), "-")
	if len(parts) != 2 {
		return TimeRange{}, false
	}

	start, ok := decodeClock(parts[0])
	if !ok {
		return TimeRange{}, false
	}
	end, ok := decodeClock(parts[1])
	if !ok {
		return TimeRange{}, false
	}
	return TimeRange{Start: start, End: end}, true
}

// decodeClock converts "HMM" or "HHMM" to "HH:MM". The last two digits are
// the minutes; whatever precedes them is the hour.
func decodeClock(s string) (string, bool) {
	if len(s) < 3 || len(s) > 4 {
		return "", false
	}
	if _, err := strconv.Atoi(s); err != nil {
		return "", false
	}
	hours := s[:len(s)-2]
	minutes := s[len(s)-2:]
	if len(hours) == 1 {
		hours = "0" + hours
	}
	return hours + ":" + minutes, true
}

// DecodeDays expands a 7-character weekday mask ("M-W-F--", "-T-R---") into
// iCalendar BYDAY codes, always ordered Monday-first. Positions holding
// anything other than that weekday's letter are treated as placeholders and
// skipped. Empty or malformed input yields an empty sequence, not an error:
// a session with no recurrence days is valid (final exams).
func DecodeDays(raw string) []string {
	mask := strings.TrimSpace(raw)
	if len(mask) != 7 {
		return nil
	}

	days := make([]string, 0, 7)
	upper := strings.ToUpper(mask)
	for i := 0; i < 7; i++ {
		if upper[i] == weekdayLetters[i] {
			days = append(days, weekdayCodes[i])
		}
	}
	return days
}

// ToCalendarDateTime joins an 8-digit date and an "HH:MM" clock into a
// floating-local iCalendar timestamp ("YYYYMMDDTHHMMSS"). No timezone
// conversion happens here; callers pair the value with an explicit TZID.
func ToCalendarDateTime(isoDate, clock string) string {
	return isoDate + "T" + strings.ReplaceAll(clock, ":", "") + "00"
}

// ToUTCDateTime converts a local date and "HH:MM" clock to a UTC iCalendar
// timestamp ("YYYYMMDDTHHMMSSZ") by adding a fixed offset. The registration
// system treats the campus timezone as a constant UTC-8 year-round, so the
// default offset is 8 hours and no daylight-saving adjustment is applied.
// Returns "" when the date or clock does not parse.
func ToUTCDateTime(isoDate, clock string, offsetHours int) string {
	t, err := time.Parse("20060102 15:04", isoDate+" "+clock)
	if err != nil {
		return ""
	}
	t = t.Add(time.Duration(offsetHours) * time.Hour)
	return t.Format("20060102T150405") + "Z"
}
