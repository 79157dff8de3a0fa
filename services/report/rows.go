package report

import (
	"fmt"
	"time"

	"github.com/aymanashrafmounir/SaintMark-BookingSystem/models"
)

// FormatAMPM converts a 24-hour "HH:MM" string to the localized 12-hour form
// "H:MM ص/م" with no leading zero. Hours 0 and 12 both render as "12"; the
// suffix disambiguates. Unparseable input passes through unchanged.
func FormatAMPM(time24 string) string {
	if time24 == "" {
		return ""
	}
	t, err := time.Parse("15:04", time24)
	if err != nil {
		return time24
	}

	hour := t.Hour() % 12
	if hour == 0 {
		hour = 12
	}
	suffix := "ص"
	if t.Hour() >= 12 {
		suffix = "م"
	}
	return fmt.Sprintf("%d:%02d %s", hour, t.Minute(), suffix)
}

func formatTimeRange(start, end string) string {
	return FormatAMPM(start) + " إلى " + FormatAMPM(end)
}

func formatDate(t time.Time) string {
	return t.Format("2006/01/02")
}

// formatDateRange renders a single date when the span collapses, otherwise
// "start إلى end".
func formatDateRange(start, end time.Time) string {
	if start.Equal(end) {
		return formatDate(start)
	}
	return formatDate(start) + " إلى " + formatDate(end)
}

// localizeDay translates an English weekday name, falling back to the input
// for anything outside the fixed table.
func localizeDay(day string) string {
	if translated, ok := dayTranslations[day]; ok {
		return translated
	}
	return day
}

// buildRecurringRow formats one recurring group. Day and times come from the
// first chronological member; the date range spans first to last occurrence.
func buildRecurringRow(group RecurringGroup) models.RecurringBooking {
	first := group.Slots[0]
	last := group.Slots[len(group.Slots)-1]
	return models.RecurringBooking{
		Room:      first.Room,
		Service:   first.Service,
		Provider:  first.Provider,
		Day:       localizeDay(first.DayOfWeek),
		Time:      formatTimeRange(first.StartTime, first.EndTime),
		DateRange: formatDateRange(first.Date, last.Date),
		Count:     len(group.Slots),
	}
}

func buildOneTimeRow(slot models.MergedSlot) models.OneTimeBooking {
	return models.OneTimeBooking{
		Room:     slot.Room,
		Service:  slot.Service,
		Provider: slot.Provider,
		Date:     formatDate(slot.Date),
		Time:     formatTimeRange(slot.StartTime, slot.EndTime),
	}
}
