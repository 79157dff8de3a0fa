package report

import (
	"sort"

	"github.com/aymanashrafmounir/SaintMark-BookingSystem/models"
)

// MergeContiguous sorts slots by (group key, date, start time) and coalesces
// runs of immediately-adjacent intervals within the same series and date: a
// slot whose start time equals the accumulator's end time extends it in
// place. Overlapping but non-abutting slots stay distinct; nothing merges
// across a series or date boundary.
func MergeContiguous(slots []models.BookingSlot) []models.MergedSlot {
	if len(slots) == 0 {
		return nil
	}

	sorted := make([]models.BookingSlot, len(slots))
	copy(sorted, slots)
	sort.SliceStable(sorted, func(i, j int) bool {
		a, b := &sorted[i], &sorted[j]
		if ka, kb := a.GroupKey(), b.GroupKey(); ka != kb {
			return ka < kb
		}
		if !a.Date.Equal(b.Date) {
			return a.Date.Before(b.Date)
		}
		return a.StartTime < b.StartTime
	})

	merged := make([]models.MergedSlot, 0, len(sorted))
	current := sorted[0]
	for _, next := range sorted[1:] {
		if current.GroupKey() == next.GroupKey() &&
			current.Date.Equal(next.Date) &&
			current.EndTime == next.StartTime {
			current.EndTime = next.EndTime
			continue
		}
		merged = append(merged, withDayOfWeek(current))
		current = next
	}
	merged = append(merged, withDayOfWeek(current))
	return merged
}

func withDayOfWeek(s models.BookingSlot) models.MergedSlot {
	return models.MergedSlot{
		BookingSlot: s,
		DayOfWeek:   s.Date.Weekday().String(),
	}
}
