package report

import (
	"strings"
	"time"

	"github.com/aymanashrafmounir/SaintMark-BookingSystem/models"
)

// FilterMusicRoom keeps slots whose room name contains any of the music-room
// spellings, case-insensitively.
func FilterMusicRoom(slots []models.BookingSlot) []models.BookingSlot {
	out := make([]models.BookingSlot, 0, len(slots))
	for _, s := range slots {
		if isMusicRoom(s.Room) {
			out = append(out, s)
		}
	}
	return out
}

func isMusicRoom(room string) bool {
	lower := strings.ToLower(room)
	for _, kw := range musicRoomKeywords {
		if strings.Contains(lower, strings.ToLower(kw)) {
			return true
		}
	}
	return false
}

// FilterEveningStart keeps slots starting within the [18:00, 22:00) window.
// Unparseable start times are dropped.
func FilterEveningStart(slots []models.BookingSlot) []models.BookingSlot {
	out := make([]models.BookingSlot, 0, len(slots))
	for _, s := range slots {
		t, err := time.Parse("15:04", s.StartTime)
		if err != nil {
			continue
		}
		if h := t.Hour(); h >= eveningStartHour && h < eveningEndHour {
			out = append(out, s)
		}
	}
	return out
}
