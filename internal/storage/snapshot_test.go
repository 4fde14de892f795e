package storage_test

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/julianstephens/liftshift/internal/models"
	"github.com/julianstephens/liftshift/internal/storage"
	"github.com/julianstephens/liftshift/internal/storage/sqlite"
)

func seededStore(t *testing.T) *sqlite.Store {
	t.Helper()
	store := sqlite.NewStore(filepath.Join(t.TempDir(), "snapshot.db"))
	if err := store.Init(); err != nil {
		t.Fatalf("Init() error = %v", err)
	}
	t.Cleanup(func() { store.Close() })

	shifts := []models.WorkShift{
		{ID: "prev-month", Date: "2024-12-30", StartTime: "06:00", EndTime: "14:00", DurationHours: 8, ShiftType: models.ShiftMorning},
		{ID: "month", Date: "2025-01-02", StartTime: "06:00", EndTime: "14:00", DurationHours: 8, ShiftType: models.ShiftMorning},
		{ID: "week", Date: "2025-01-08", StartTime: "14:00", EndTime: "22:00", DurationHours: 8, ShiftType: models.ShiftAfternoon},
		{ID: "later", Date: "2025-01-20", StartTime: "08:00", EndTime: "16:00", DurationHours: 8, ShiftType: models.ShiftMorning},
	}
	for _, sh := range shifts {
		if err := store.AddShift(sh); err != nil {
			t.Fatalf("AddShift() error = %v", err)
		}
	}
	if err := store.AddEvent(models.ScheduleEvent{ID: "e1", Type: models.EventOther, Date: "2025-01-08", StartTime: "09:00", EndTime: "10:00"}); err != nil {
		t.Fatalf("AddEvent() error = %v", err)
	}
	if err := store.AddFriendEntry(models.FriendScheduleEntry{ID: "f1", DayOfWeek: 2, StartTime: "14:00", EndTime: "16:00"}); err != nil {
		t.Fatalf("AddFriendEntry() error = %v", err)
	}
	for _, n := range []models.FriendNightShift{
		{ID: "sunday", Date: "2025-01-05", StartTime: "22:00", EndTime: "06:00"},
		{ID: "tuesday", Date: "2025-01-07", StartTime: "22:00", EndTime: "06:00"},
		{ID: "old", Date: "2025-01-01", StartTime: "22:00", EndTime: "06:00"},
	} {
		if err := store.AddNightShift(n); err != nil {
			t.Fatalf("AddNightShift() error = %v", err)
		}
	}
	return store
}

func ids[T any](items []T, id func(T) string) []string {
	out := make([]string, 0, len(items))
	for _, it := range items {
		out = append(out, id(it))
	}
	return out
}

func equal(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestLoadSnapshot(t *testing.T) {
	store := seededStore(t)
	weekStart := time.Date(2025, 1, 6, 0, 0, 0, 0, time.UTC)

	snap, err := storage.LoadSnapshot(store, weekStart)
	if err != nil {
		t.Fatalf("LoadSnapshot() error = %v", err)
	}

	shiftID := func(s models.WorkShift) string { return s.ID }
	if got := ids(snap.Shifts, shiftID); !equal(got, []string{"week"}) {
		t.Errorf("Shifts = %v, want [week]", got)
	}
	if got := ids(snap.MonthShifts, shiftID); !equal(got, []string{"month", "week", "later"}) {
		t.Errorf("MonthShifts = %v, want [month week later]", got)
	}
	if got := ids(snap.NightShifts, func(n models.FriendNightShift) string { return n.ID }); !equal(got, []string{"sunday", "tuesday"}) {
		t.Errorf("NightShifts = %v, want [sunday tuesday]", got)
	}
	if len(snap.Events) != 1 || len(snap.FriendSchedule) != 1 {
		t.Errorf("Events = %d, FriendSchedule = %d, want 1 and 1", len(snap.Events), len(snap.FriendSchedule))
	}
	if snap.Quota != models.DefaultQuota() {
		t.Errorf("Quota = %+v, want defaults", snap.Quota)
	}
}

func TestLoadDay(t *testing.T) {
	store := seededStore(t)

	day, err := storage.LoadDay(store, time.Date(2025, 1, 8, 15, 0, 0, 0, time.UTC))
	if err != nil {
		t.Fatalf("LoadDay() error = %v", err)
	}
	if len(day.Shifts) != 1 || day.Shifts[0].ID != "week" {
		t.Errorf("Shifts = %+v, want [week]", day.Shifts)
	}
	if len(day.Events) != 1 {
		t.Errorf("Events = %d, want 1", len(day.Events))
	}
	if len(day.NightShifts) != 1 || day.NightShifts[0].ID != "tuesday" {
		t.Errorf("NightShifts = %+v, want the previous night only", day.NightShifts)
	}
}

func TestMonthShifts(t *testing.T) {
	store := seededStore(t)
	shifts, err := storage.MonthShifts(store, time.Date(2024, 12, 15, 0, 0, 0, 0, time.UTC))
	if err != nil {
		t.Fatalf("MonthShifts() error = %v", err)
	}
	if len(shifts) != 1 || shifts[0].ID != "prev-month" {
		t.Errorf("MonthShifts() = %+v, want [prev-month]", shifts)
	}
}
