package report

import (
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"

	"github.com/aymanashrafmounir/SaintMark-BookingSystem/models"
)

// String timestamp layouts accepted for the date attribute, tried in order.
var dateLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02",
	"2006/01/02",
}

// Normalize resolves the display attributes of each confirmed raw record,
// parses its date and re-applies the [start, end] day window client-side.
// Records with an unresolvable date, start time or end time are dropped and
// counted; a bad record never aborts the run.
func (p *Pipeline) Normalize(records []models.RawRecord, start, end time.Time) []models.BookingSlot {
	startDay := dateOnly(start)
	endDay := dateOnly(end)

	slots := make([]models.BookingSlot, 0, len(records))
	var notBooked, missingTimes, badDates, outOfWindow int

	for _, rec := range records {
		if status, ok := stringifyScalar(rec["status"]); ok && status != models.StatusBooked {
			notBooked++
			continue
		}

		startTime, okStart := stringifyScalar(rec["startTime"])
		endTime, okEnd := stringifyScalar(rec["endTime"])
		if !okStart || !okEnd {
			missingTimes++
			continue
		}

		date, ok := parseRecordDate(rec["date"])
		if !ok {
			badDates++
			continue
		}
		if date.Before(startDay) || date.After(endDay) {
			outOfWindow++
			continue
		}

		slots = append(slots, models.BookingSlot{
			Room:      ResolveField(rec, roomPaths, Unspecified),
			Service:   ResolveField(rec, servicePaths, Unspecified),
			Provider:  ResolveField(rec, providerPaths, Unspecified),
			Date:      date,
			StartTime: startTime,
			EndTime:   endTime,
		})
	}

	p.logger.Info("normalized booking records",
		zap.Int("fetched", len(records)),
		zap.Int("kept", len(slots)),
		zap.Int("not_booked", notBooked),
		zap.Int("missing_times", missingTimes),
		zap.Int("bad_dates", badDates),
		zap.Int("out_of_window", outOfWindow),
	)
	return slots
}

// parseRecordDate accepts BSON datetimes, native times and the common string
// layouts. Timezone-aware values are normalized to a naive UTC calendar date
// before comparison, matching how the source system stores day boundaries.
func parseRecordDate(v any) (time.Time, bool) {
	switch d := v.(type) {
	case primitive.DateTime:
		return dateOnly(d.Time().UTC()), true
	case time.Time:
		return dateOnly(d.UTC()), true
	case string:
		s := strings.TrimSpace(d)
		if s == "" {
			return time.Time{}, false
		}
		for _, layout := range dateLayouts {
			if t, err := time.Parse(layout, s); err == nil {
				return dateOnly(t.UTC()), true
			}
		}
		return time.Time{}, false
	default:
		return time.Time{}, false
	}
}

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
