package report

import (
	"testing"
	"time"

	"github.com/aymanashrafmounir/SaintMark-BookingSystem/models"
)

func TestGroupByLocation(t *testing.T) {
	base := day(2025, time.November, 3)

	t.Run("pattern spanning two rooms is surfaced once", func(t *testing.T) {
		slots := []models.MergedSlot{
			withDayOfWeek(slot("B", "S", "P", base, "10:00", "11:00")),
			withDayOfWeek(slot("A", "S", "P", base.AddDate(0, 0, 7), "10:00", "11:00")),
		}
		got := GroupByLocation(slots)
		if len(got) != 1 {
			t.Fatalf("got %d rows, want 1", len(got))
		}
		if got[0].Rooms != "A | B" {
			t.Errorf("Rooms = %q, want sorted \"A | B\"", got[0].Rooms)
		}
		if got[0].Count != 2 {
			t.Errorf("Count = %d, want 2", got[0].Count)
		}
		if got[0].DateRange != "2025/11/03 إلى 2025/11/10" {
			t.Errorf("DateRange = %q", got[0].DateRange)
		}
	})

	t.Run("single room group is not surfaced", func(t *testing.T) {
		slots := []models.MergedSlot{
			withDayOfWeek(slot("A", "S", "P", base, "10:00", "11:00")),
			withDayOfWeek(slot("A", "S", "P", base.AddDate(0, 0, 7), "10:00", "11:00")),
		}
		if got := GroupByLocation(slots); len(got) != 0 {
			t.Errorf("got %d rows, want 0", len(got))
		}
	})

	t.Run("sentinel room does not count as a location", func(t *testing.T) {
		slots := []models.MergedSlot{
			withDayOfWeek(slot("A", "S", "P", base, "10:00", "11:00")),
			withDayOfWeek(slot(Unspecified, "S", "P", base.AddDate(0, 0, 7), "10:00", "11:00")),
		}
		if got := GroupByLocation(slots); len(got) != 0 {
			t.Errorf("got %d rows, want 0", len(got))
		}
	})

	t.Run("different times stay separate", func(t *testing.T) {
		slots := []models.MergedSlot{
			withDayOfWeek(slot("A", "S", "P", base, "10:00", "11:00")),
			withDayOfWeek(slot("B", "S", "P", base, "11:00", "12:00")),
		}
		if got := GroupByLocation(slots); len(got) != 0 {
			t.Errorf("got %d rows, want 0", len(got))
		}
	})
}

func TestReconcileRecurring(t *testing.T) {
	cross := []models.CrossLocationBooking{{
		Rooms: "A | B", Service: "S", Provider: "P",
		Day: "الاثنين", Time: "10:00 ص إلى 11:00 ص",
	}}
	recurring := []models.RecurringBooking{
		{Room: "A", Service: "S", Provider: "P", Day: "الاثنين", Time: "10:00 ص إلى 11:00 ص"},
		{Room: "C", Service: "S2", Provider: "P", Day: "الاثنين", Time: "10:00 ص إلى 11:00 ص"},
	}

	got := ReconcileRecurring(recurring, cross)
	if len(got) != 1 {
		t.Fatalf("got %d rows, want 1", len(got))
	}
	if got[0].Room != "C" {
		t.Errorf("surviving row = %+v, want the unrelated service", got[0])
	}

	// Without cross-location rows everything survives untouched.
	if got := ReconcileRecurring(recurring, nil); len(got) != 2 {
		t.Errorf("got %d rows, want 2", len(got))
	}
}
