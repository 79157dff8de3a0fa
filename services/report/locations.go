package report

import (
	"sort"
	"strings"

	"github.com/aymanashrafmounir/SaintMark-BookingSystem/models"
)

// GroupByLocation groups merged slots by the room-agnostic key and surfaces
// patterns hosted in two or more distinct rooms as single cross-location
// rows: the same service, provider, weekday and times offered in
// interchangeable locations. Sentinel and empty room names never count as a
// distinct location.
func GroupByLocation(slots []models.MergedSlot) []models.CrossLocationBooking {
	groups := make(map[string][]models.MergedSlot)
	var order []string
	for _, s := range slots {
		key := s.LocationGroupKey()
		if _, seen := groups[key]; !seen {
			order = append(order, key)
		}
		groups[key] = append(groups[key], s)
	}

	var rows []models.CrossLocationBooking
	for _, key := range order {
		group := groups[key]
		if len(group) < 2 {
			continue
		}

		rooms := distinctRooms(group)
		if len(rooms) < 2 {
			continue
		}
		sort.Strings(rooms)

		first := group[0]
		minDate, maxDate := group[0].Date, group[0].Date
		for _, s := range group[1:] {
			if s.Date.Before(minDate) {
				minDate = s.Date
			}
			if s.Date.After(maxDate) {
				maxDate = s.Date
			}
		}

		rows = append(rows, models.CrossLocationBooking{
			Rooms:     strings.Join(rooms, " | "),
			Service:   first.Service,
			Provider:  first.Provider,
			Day:       localizeDay(first.DayOfWeek),
			DateRange: formatDateRange(minDate, maxDate),
			Time:      formatTimeRange(first.StartTime, first.EndTime),
			Count:     len(group),
		})
	}
	return rows
}

func distinctRooms(group []models.MergedSlot) []string {
	var rooms []string
	seen := make(map[string]bool)
	for _, s := range group {
		room := strings.TrimSpace(s.Room)
		if room == "" || room == Unspecified || seen[room] {
			continue
		}
		seen[room] = true
		rooms = append(rooms, room)
	}
	return rooms
}

// ReconcileRecurring drops recurring rows whose (service, provider, day,
// time) already appear in a cross-location row, so one underlying pattern is
// reported exactly once. Room and date range are deliberately ignored; the
// rare collision with an unrelated booking is an accepted approximation.
func ReconcileRecurring(recurring []models.RecurringBooking, cross []models.CrossLocationBooking) []models.RecurringBooking {
	if len(cross) == 0 {
		return recurring
	}

	crossKeys := make(map[string]bool, len(cross))
	for _, c := range cross {
		crossKeys[c.Service+" | "+c.Provider+" | "+c.Day+" | "+c.Time] = true
	}

	kept := recurring[:0:0]
	for _, r := range recurring {
		if !crossKeys[r.Service+" | "+r.Provider+" | "+r.Day+" | "+r.Time] {
			kept = append(kept, r)
		}
	}
	return kept
}
