// File: database/repository/slots/interface.go
package slotsRepo

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/mongo"

	"github.com/aymanashrafmounir/SaintMark-BookingSystem/config"
	"github.com/aymanashrafmounir/SaintMark-BookingSystem/models"
)

// SlotRepository is the query-source boundary of the report pipeline. It
// returns confirmed booking records as stored, with no shape guarantees; all
// normalization happens downstream.
type SlotRepository interface {
	FetchBooked(ctx context.Context, start, end time.Time) ([]models.RawRecord, error)
}

type mongoSlotRepo struct {
	coll *mongo.Collection
}

// NewMongoSlotRepo constructs a SlotRepository backed by the configured
// collection.
func NewMongoSlotRepo(client *mongo.Client) SlotRepository {
	db := client.Database(config.AppConfig.MongoDBName)
	return &mongoSlotRepo{
		coll: db.Collection(config.AppConfig.MongoCollection),
	}
}
