package report

import (
	"sort"
	"time"

	"github.com/aymanashrafmounir/SaintMark-BookingSystem/models"
)

// RecurringGroup is one weekly-recurring pattern: every merged slot sharing a
// recurring key, sorted chronologically.
type RecurringGroup struct {
	Slots []models.MergedSlot
}

// Classify groups merged slots by recurring key and splits them into
// weekly-recurring groups and one-time bookings. Classification depends only
// on each group's sorted date sequence, so input order never changes the
// result. Members of a non-recurring group each become their own one-time
// booking.
func Classify(slots []models.MergedSlot) ([]RecurringGroup, []models.MergedSlot) {
	groups := make(map[string][]models.MergedSlot)
	var order []string
	for _, s := range slots {
		key := s.RecurringKey()
		if _, seen := groups[key]; !seen {
			order = append(order, key)
		}
		groups[key] = append(groups[key], s)
	}

	var recurring []RecurringGroup
	var oneTime []models.MergedSlot
	for _, key := range order {
		group := groups[key]
		sort.SliceStable(group, func(i, j int) bool {
			return group[i].Date.Before(group[j].Date)
		})
		if isWeeklyRecurring(group) {
			recurring = append(recurring, RecurringGroup{Slots: group})
		} else {
			oneTime = append(oneTime, group...)
		}
	}
	return recurring, oneTime
}

// isWeeklyRecurring applies the tuned three-way heuristic over consecutive
// date deltas. A delta is weekly when it is a positive multiple of 7 days.
// The group is recurring when at least half the deltas are weekly, or it has
// 3+ members with any weekly delta, or it has exactly 2 members whose single
// delta is weekly. Each condition covers a different group size; keep the
// disjunction as is.
func isWeeklyRecurring(group []models.MergedSlot) bool {
	if len(group) < 2 {
		return false
	}

	var weekly int
	total := len(group) - 1
	for i := 0; i < total; i++ {
		days := daysBetween(group[i].Date, group[i+1].Date)
		if days > 0 && days%7 == 0 {
			weekly++
		}
	}

	switch {
	case float64(weekly)/float64(total) >= 0.5:
		return true
	case len(group) >= 3 && weekly >= 1:
		return true
	case len(group) == 2 && weekly == 1:
		return true
	default:
		return false
	}
}

// daysBetween assumes day-precision UTC dates, as produced by normalization.
func daysBetween(a, b time.Time) int {
	return int(b.Sub(a) / (24 * time.Hour))
}
