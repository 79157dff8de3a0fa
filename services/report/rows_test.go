package report

import (
	"testing"
	"time"
)

func TestFormatAMPM(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"00:00", "12:00 ص"},
		{"00:30", "12:30 ص"},
		{"09:05", "9:05 ص"},
		{"11:59", "11:59 ص"},
		{"12:00", "12:00 م"},
		{"13:15", "1:15 م"},
		{"18:30", "6:30 م"},
		{"23:45", "11:45 م"},
		{"", ""},
		{"not-a-time", "not-a-time"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := FormatAMPM(tt.in); got != tt.want {
				t.Errorf("FormatAMPM(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestFormatDateRange(t *testing.T) {
	a := day(2025, time.November, 3)
	b := day(2025, time.December, 29)

	if got := formatDateRange(a, a); got != "2025/11/03" {
		t.Errorf("collapsed range = %q, want single date", got)
	}
	if got := formatDateRange(a, b); got != "2025/11/03 إلى 2025/12/29" {
		t.Errorf("range = %q", got)
	}
}

func TestLocalizeDay(t *testing.T) {
	if got := localizeDay("Friday"); got != "الجمعة" {
		t.Errorf("localizeDay(Friday) = %q", got)
	}
	// Anything outside the fixed table passes through.
	if got := localizeDay("Someday"); got != "Someday" {
		t.Errorf("localizeDay(Someday) = %q", got)
	}
}

func TestBuildRecurringRow(t *testing.T) {
	base := day(2025, time.November, 3) // Monday
	group := RecurringGroup{Slots: mergedAt(base, base.AddDate(0, 0, 7), base.AddDate(0, 0, 14))}

	row := buildRecurringRow(group)
	if row.Day != "الاثنين" {
		t.Errorf("Day = %q, want الاثنين", row.Day)
	}
	if row.Time != "10:00 ص إلى 11:00 ص" {
		t.Errorf("Time = %q", row.Time)
	}
	if row.DateRange != "2025/11/03 إلى 2025/11/17" {
		t.Errorf("DateRange = %q", row.DateRange)
	}
	if row.Count != 3 {
		t.Errorf("Count = %d, want 3", row.Count)
	}
}

func TestBuildOneTimeRow(t *testing.T) {
	s := withDayOfWeek(slot("A", "S", "P", day(2025, time.November, 4), "18:00", "20:00"))
	row := buildOneTimeRow(s)
	if row.Date != "2025/11/04" {
		t.Errorf("Date = %q", row.Date)
	}
	if row.Time != "6:00 م إلى 8:00 م" {
		t.Errorf("Time = %q", row.Time)
	}
}
