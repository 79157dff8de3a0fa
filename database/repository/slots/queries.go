// File: database/repository/slots/queries.go
package slotsRepo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/aymanashrafmounir/SaintMark-BookingSystem/config"
	"github.com/aymanashrafmounir/SaintMark-BookingSystem/models"
)

// FetchBooked returns every confirmed record whose date falls inside the
// inclusive [start, end] day window. The window is only applied server-side
// to records whose date is stored as a BSON datetime; records carrying string
// or missing dates pass through and are re-filtered during normalization.
func (repo *mongoSlotRepo) FetchBooked(ctx context.Context, start, end time.Time) ([]models.RawRecord, error) {
	timeout := time.Duration(config.AppConfig.FetchTimeoutSec) * time.Second
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	startOfDay := time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, time.UTC)
	endOfDay := time.Date(end.Year(), end.Month(), end.Day(), 23, 59, 59, 999000000, time.UTC)

	filter := bson.M{
		"status": models.StatusBooked,
		"$or": []bson.M{
			{"date": bson.M{"$gte": startOfDay, "$lte": endOfDay}},
			{"date": bson.M{"$not": bson.M{"$type": "date"}}},
		},
	}

	cursor, err := repo.coll.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch booking slots: %w", err)
	}
	defer cursor.Close(ctx)

	var records []models.RawRecord
	if err := cursor.All(ctx, &records); err != nil {
		return nil, fmt.Errorf("error decoding booking slots: %w", err)
	}

	return records, nil
}
