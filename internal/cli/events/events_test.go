package events

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/julianstephens/liftshift/internal/cli"
	apperrors "github.com/julianstephens/liftshift/internal/errors"
	"github.com/julianstephens/liftshift/internal/models"
	"github.com/julianstephens/liftshift/internal/storage/sqlite"
)

func setupTestDB(t *testing.T) *cli.Context {
	t.Helper()
	store := sqlite.NewStore(filepath.Join(t.TempDir(), "test.db"))
	if err := store.Init(); err != nil {
		t.Fatalf("failed to init store: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	shift := models.WorkShift{ID: "s1", Date: "2025-01-06", StartTime: "06:00", EndTime: "14:00", DurationHours: 8, ShiftType: models.ShiftMorning}
	if err := store.AddShift(shift); err != nil {
		t.Fatalf("AddShift() error = %v", err)
	}
	class := models.FriendScheduleEntry{ID: "c1", DayOfWeek: 0, StartTime: "16:00", EndTime: "18:00", Label: "Anatomy"}
	if err := store.AddFriendEntry(class); err != nil {
		t.Fatalf("AddFriendEntry() error = %v", err)
	}
	return cli.NewContext(store)
}

func eventsOn(t *testing.T, ctx *cli.Context, date string) []models.ScheduleEvent {
	t.Helper()
	events, err := ctx.Store.GetEventsInRange(date, date)
	if err != nil {
		t.Fatalf("GetEventsInRange() error = %v", err)
	}
	return events
}

func TestEventAddCmd(t *testing.T) {
	tests := []struct {
		name    string
		cmd     EventAddCmd
		wantErr error
		saved   bool
	}{
		{name: "free slot", cmd: EventAddCmd{Title: "Dinner", Type: "cooking", Date: "2025-01-06", Start: "19:00", End: "20:00"}, saved: true},
		{name: "friend class only warns", cmd: EventAddCmd{Title: "Gym", Type: "workout", Date: "2025-01-06", Start: "15:00", End: "17:00"}, saved: true},
		{name: "shift overlap blocks", cmd: EventAddCmd{Type: "partner", Date: "2025-01-06", Start: "13:00", End: "15:00"}, wantErr: apperrors.ErrConflict},
		{name: "shift overlap forced", cmd: EventAddCmd{Type: "partner", Date: "2025-01-06", Start: "13:00", End: "15:00", Force: true}, saved: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := setupTestDB(t)
			err := tt.cmd.Run(ctx)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("Run() error = %v, want %v", err, tt.wantErr)
			}
			if got := len(eventsOn(t, ctx, "2025-01-06")) == 1; got != tt.saved {
				t.Errorf("event saved = %v, want %v", got, tt.saved)
			}
		})
	}
}

func TestEventAddCmd_Invalid(t *testing.T) {
	tests := []struct {
		name string
		cmd  EventAddCmd
	}{
		{name: "reversed", cmd: EventAddCmd{Type: "other", Date: "2025-01-07", Start: "12:00", End: "11:00"}},
		{name: "bad time", cmd: EventAddCmd{Type: "other", Date: "2025-01-07", Start: "noon", End: "13:00"}},
		{name: "bad type", cmd: EventAddCmd{Type: "party", Date: "2025-01-07", Start: "12:00", End: "13:00"}},
		{name: "bad date", cmd: EventAddCmd{Type: "other", Date: "07.01.2025", Start: "12:00", End: "13:00"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.cmd.Run(setupTestDB(t)); err == nil {
				t.Error("Run() error = nil, want validation error")
			}
		})
	}
}

func TestEventListAndDelete(t *testing.T) {
	ctx := setupTestDB(t)
	if err := ctx.Store.AddEvent(models.ScheduleEvent{ID: "e1", Type: models.EventWorkout, Date: "2025-01-07", StartTime: "16:00", EndTime: "18:30", Title: "PULL A"}); err != nil {
		t.Fatalf("AddEvent() error = %v", err)
	}

	if err := (&EventListCmd{Week: "2025-01-06"}).Run(ctx); err != nil {
		t.Errorf("EventListCmd.Run() error = %v", err)
	}
	if err := (&EventListCmd{Week: "2025-01-06", Type: "cooking"}).Run(ctx); err != nil {
		t.Errorf("EventListCmd{Type}.Run() error = %v", err)
	}

	if err := (&EventDeleteCmd{ID: "e1"}).Run(ctx); err != nil {
		t.Fatalf("EventDeleteCmd.Run() error = %v", err)
	}
	if len(eventsOn(t, ctx, "2025-01-07")) != 0 {
		t.Error("event still stored after delete")
	}
	if err := (&EventDeleteCmd{ID: "e1"}).Run(ctx); err == nil {
		t.Error("deleting a missing event should fail")
	}
}
