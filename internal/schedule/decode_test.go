package schedule

import (
	"reflect"
	"testing"
)

func TestDecodeDate(t *testing.T) {
	tests := []struct {
		raw  string
		want string
	}{
		{"06-MAY-2024", "20240506"},
		{"6-MAY-2024", "20240506"},
		{"6-may-2024", "20240506"},
		{"12-Aug-2024", "20240812"},
		{"29-FEB-2024", "20240229"}, // leap year
		{"30-FEB-2024", ""},
		{"29-FEB-2023", ""},
		{"31-APR-2024", ""},
		{"06-XXX-2024", ""},
		{"06-MAY-24", ""},
		{"06-MAY", ""},
		{"", ""},
		{"May 6 2024", ""},
		{"123-MAY-2024", ""},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			if got := DecodeDate(tt.raw); got != tt.want {
				t.Errorf("DecodeDate(%q) = %q, want %q", tt.raw, got, tt.want)
			}
		})
	}
}

func TestDecodeTime(t *testing.T) {
	tests := []struct {
		raw    string
		want   TimeRange
		wantOK bool
	}{
		{"1230-1420", TimeRange{Start: "12:30", End: "14:20"}, true},
		{"830-1025", TimeRange{Start: "08:30", End: "10:25"}, true},
		{"900-1200", TimeRange{Start: "09:00", End: "12:00"}, true},
		{"12301420", TimeRange{}, false},
		{"1230", TimeRange{}, false},
		{"1230-1420-1500", TimeRange{}, false},
		{"12-34", TimeRange{}, false},
		{"abcd-efgh", TimeRange{}, false},
		{"", TimeRange{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, ok := DecodeTime(tt.raw)
			if ok != tt.wantOK {
				t.Fatalf("DecodeTime(%q) ok = %v, want %v", tt.raw, ok, tt.wantOK)
			}
			if got != tt.want {
				t.Errorf("DecodeTime(%q) = %+v, want %+v", tt.raw, got, tt.want)
			}
		})
	}
}

func TestDecodeDays(t *testing.T) {
	tests := []struct {
		raw  string
		want []string
	}{
		{"-T-R---", []string{"TU", "TH"}},
		{"MTWRF--", []string{"MO", "TU", "WE", "TH", "FR"}},
		{"M-W-F--", []string{"MO", "WE", "FR"}},
		{"-t-r---", []string{"TU", "TH"}}, // lowercase mask
		{"------U", []string{"SU"}},
		{"-----S-", []string{"SA"}},
		{"-------", nil},
		{"", nil},
		{"MTWRF", nil},    // wrong width
		{"MTWRF---", nil}, // wrong width
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got := DecodeDays(tt.raw)
			if len(got) == 0 && len(tt.want) == 0 {
				return
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("DecodeDays(%q) = %v, want %v", tt.raw, got, tt.want)
			}
		})
	}
}

func TestToCalendarDateTime(t *testing.T) {
	if got := ToCalendarDateTime("20240506", "12:30"); got != "20240506T123000" {
		t.Errorf("ToCalendarDateTime() = %q, want 20240506T123000", got)
	}
}

func TestToUTCDateTime(t *testing.T) {
	tests := []struct {
		isoDate string
		clock   string
		offset  int
		want    string
	}{
		// 23:59 local with the fixed +8 offset rolls into the next UTC day.
		{"20240809", "23:59", 8, "20240810T075900Z"},
		{"20240506", "12:30", 8, "20240506T203000Z"},
		{"20240506", "12:30", 0, "20240506T123000Z"},
		{"bogus", "23:59", 8, ""},
		{"20240506", "25:99", 8, ""},
	}

	for _, tt := range tests {
		if got := ToUTCDateTime(tt.isoDate, tt.clock, tt.offset); got != tt.want {
			t.Errorf("ToUTCDateTime(%q, %q, %d) = %q, want %q",
				tt.isoDate, tt.clock, tt.offset, got, tt.want)
		}
	}
}
