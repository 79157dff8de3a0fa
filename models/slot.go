package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson"
)

// StatusBooked is the only booking status that reaches the report.
const StatusBooked = "booked"

// RawRecord is one booking event exactly as stored. Attributes of interest
// may live at varying nesting depths and under varying names; absence is
// common and no shape is guaranteed.
type RawRecord bson.M

// BookingSlot is a raw record after normalization: resolved display
// attributes, a day-precision timezone-naive date and HH:MM wall-clock times.
type BookingSlot struct {
	Room      string    // display name, sentinel when unresolved
	Service   string    // display name, sentinel when unresolved
	Provider  string    // display name, sentinel when unresolved
	Date      time.Time // calendar date, no time-of-day
	StartTime string    // 24-hour "HH:MM"
	EndTime   string    // 24-hour "HH:MM"; extended in place during merging
}

// MergedSlot is a BookingSlot whose EndTime may span several original slots,
// plus the derived weekday used by the grouping keys.
type MergedSlot struct {
	BookingSlot
	DayOfWeek string // English weekday name; translated at presentation time
}

// GroupKey identifies "same booking series, same place".
func (s *BookingSlot) GroupKey() string {
	return s.Room + " | " + s.Service + " | " + s.Provider
}

// RecurringKey identifies "same weekly slot": series plus weekday and times.
func (s *MergedSlot) RecurringKey() string {
	return s.GroupKey() + " | " + s.DayOfWeek + " | " + s.StartTime + " - " + s.EndTime
}

// LocationGroupKey is the room-agnostic variant of RecurringKey, identifying
// the same slot possibly hosted in several rooms.
func (s *MergedSlot) LocationGroupKey() string {
	return s.Service + " | " + s.Provider + " | " + s.DayOfWeek + " | " + s.StartTime + " | " + s.EndTime
}
