package report

import (
	"context"
	"sort"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	slotsRepo "github.com/aymanashrafmounir/SaintMark-BookingSystem/database/repository/slots"
	"github.com/aymanashrafmounir/SaintMark-BookingSystem/models"
)

// Variant selects which report is produced.
type Variant string

const (
	// VariantFull reports recurring, one-time and cross-location tables for
	// every room.
	VariantFull Variant = "full"
	// VariantMusic reports only the recurring table, restricted to the music
	// room and to bookings starting between 18:00 and 22:00.
	VariantMusic Variant = "music"
)

// Pipeline runs the full batch transformation: fetch, normalize, merge,
// classify, reconcile, format. Single-threaded and synchronous; each stage
// owns the record set exclusively until it hands it to the next.
type Pipeline struct {
	repo   slotsRepo.SlotRepository
	logger *zap.Logger
}

// NewPipeline wires a pipeline to its query source. Every run shares one
// correlation ID across all stage logs.
func NewPipeline(repo slotsRepo.SlotRepository, logger *zap.Logger) *Pipeline {
	return &Pipeline{
		repo:   repo,
		logger: logger.With(zap.String("run_id", uuid.NewString())),
	}
}

// Run produces the report for the inclusive [start, end] date window. A
// fetch failure degrades to zero records and an empty report; it is never an
// error. Running twice on the same stored data yields identical rows in
// identical order.
func (p *Pipeline) Run(ctx context.Context, start, end time.Time, variant Variant) *models.Report {
	records, err := p.repo.FetchBooked(ctx, start, end)
	if err != nil {
		p.logger.Warn("fetch failed, continuing with zero records", zap.Error(err))
		records = nil
	}
	p.logger.Info("fetched booking records", zap.Int("count", len(records)))

	slots := p.Normalize(records, start, end)
	if variant == VariantMusic {
		slots = FilterMusicRoom(slots)
		p.logger.Info("filtered to music room", zap.Int("kept", len(slots)))
		slots = FilterEveningStart(slots)
		p.logger.Info("filtered to evening start times", zap.Int("kept", len(slots)))
	}

	merged := MergeContiguous(slots)
	p.logger.Info("merged contiguous slots",
		zap.Int("before", len(slots)), zap.Int("after", len(merged)))

	groups, oneOff := Classify(merged)

	rep := &models.Report{}
	for _, g := range groups {
		rep.Recurring = append(rep.Recurring, buildRecurringRow(g))
	}
	if variant == VariantFull {
		for _, s := range oneOff {
			rep.OneTime = append(rep.OneTime, buildOneTimeRow(s))
		}
		rep.CrossLocation = GroupByLocation(merged)
		removed := len(rep.Recurring)
		rep.Recurring = ReconcileRecurring(rep.Recurring, rep.CrossLocation)
		removed -= len(rep.Recurring)
		if removed > 0 {
			p.logger.Info("moved recurring rows to the cross-location table",
				zap.Int("removed", removed))
		}
	}

	sortReport(rep)
	p.logger.Info("report built",
		zap.Int("recurring", len(rep.Recurring)),
		zap.Int("one_time", len(rep.OneTime)),
		zap.Int("cross_location", len(rep.CrossLocation)),
	)
	return rep
}

// sortReport applies the documented total orders: recurring by (room, day,
// date range), one-time by (room, date), cross-location by (service, date
// range, time). Date-range strings start with YYYY/MM/DD, so lexicographic
// order is chronological by first occurrence.
func sortReport(rep *models.Report) {
	sort.SliceStable(rep.Recurring, func(i, j int) bool {
		a, b := &rep.Recurring[i], &rep.Recurring[j]
		if a.Room != b.Room {
			return a.Room < b.Room
		}
		if a.Day != b.Day {
			return a.Day < b.Day
		}
		return a.DateRange < b.DateRange
	})
	sort.SliceStable(rep.OneTime, func(i, j int) bool {
		a, b := &rep.OneTime[i], &rep.OneTime[j]
		if a.Room != b.Room {
			return a.Room < b.Room
		}
		return a.Date < b.Date
	})
	sort.SliceStable(rep.CrossLocation, func(i, j int) bool {
		a, b := &rep.CrossLocation[i], &rep.CrossLocation[j]
		if a.Service != b.Service {
			return a.Service < b.Service
		}
		if a.DateRange != b.DateRange {
			return a.DateRange < b.DateRange
		}
		return a.Time < b.Time
	})
}
