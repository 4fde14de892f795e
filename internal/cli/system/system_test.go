package system

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/julianstephens/liftshift/internal/cli"
	apperrors "github.com/julianstephens/liftshift/internal/errors"
	"github.com/julianstephens/liftshift/internal/models"
	"github.com/julianstephens/liftshift/internal/storage/sqlite"
)

func newTestContext(t *testing.T, name string) (*cli.Context, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	store := sqlite.NewStore(path)
	t.Cleanup(func() { store.Close() })
	return cli.NewContext(store), path
}

func initialized(t *testing.T, name string) (*cli.Context, string) {
	t.Helper()
	ctx, path := newTestContext(t, name)
	if err := (&InitCmd{}).Run(ctx); err != nil {
		t.Fatalf("InitCmd.Run() error = %v", err)
	}
	return ctx, path
}

func TestInitCmd(t *testing.T) {
	ctx, path := initialized(t, "liftshift.db")

	if _, err := os.Stat(path); err != nil {
		t.Fatalf("database file not created: %v", err)
	}
	settings, err := ctx.Store.GetSettings()
	if err != nil {
		t.Fatalf("GetSettings() error = %v", err)
	}
	if settings != models.DefaultSettings() {
		t.Errorf("settings = %+v, want defaults", settings)
	}

	t.Run("init is idempotent", func(t *testing.T) {
		if err := (&InitCmd{}).Run(ctx); err != nil {
			t.Errorf("second InitCmd.Run() error = %v", err)
		}
	})
}

func TestInitCmdForce(t *testing.T) {
	ctx, path := initialized(t, "liftshift.db")
	if err := ctx.Store.AddShift(models.WorkShift{ID: "s1", Date: "2025-01-06", StartTime: "06:00", EndTime: "14:00", DurationHours: 8, ShiftType: models.ShiftMorning}); err != nil {
		t.Fatalf("AddShift() error = %v", err)
	}

	t.Run("source equal to destination is rejected", func(t *testing.T) {
		if err := (&InitCmd{Force: true, Source: path}).Run(ctx); err == nil {
			t.Error("expected error when source and destination match")
		}
	})

	fresh := sqlite.NewStore(path)
	t.Cleanup(func() { fresh.Close() })
	freshCtx := cli.NewContext(fresh)
	if err := (&InitCmd{Force: true}).Run(freshCtx); err != nil {
		t.Fatalf("InitCmd{Force}.Run() error = %v", err)
	}
	shifts, err := fresh.GetShiftsInRange("2025-01-01", "2025-01-31")
	if err != nil {
		t.Fatalf("GetShiftsInRange() error = %v", err)
	}
	if len(shifts) != 0 {
		t.Errorf("got %d shifts after reset, want 0", len(shifts))
	}
}

func TestInitCmdCopiesSource(t *testing.T) {
	src, srcPath := initialized(t, "source.db")
	settings := models.DefaultSettings()
	settings.CycleStartDate = "2025-01-06"
	if err := src.Store.SaveSettings(settings); err != nil {
		t.Fatalf("SaveSettings() error = %v", err)
	}
	if err := src.Store.AddShift(models.WorkShift{ID: "s1", Date: "2025-01-06", StartTime: "06:00", EndTime: "14:00", DurationHours: 8, ShiftType: models.ShiftMorning}); err != nil {
		t.Fatalf("AddShift() error = %v", err)
	}
	if err := src.Store.AddEvent(models.ScheduleEvent{ID: "e1", Type: models.EventPartner, Date: "2025-01-07", StartTime: "19:00", EndTime: "21:00"}); err != nil {
		t.Fatalf("AddEvent() error = %v", err)
	}
	if err := src.Store.AddFriendEntry(models.FriendScheduleEntry{ID: "f1", DayOfWeek: 1, StartTime: "09:00", EndTime: "12:00"}); err != nil {
		t.Fatalf("AddFriendEntry() error = %v", err)
	}
	if err := src.Store.AddNightShift(models.FriendNightShift{ID: "n1", Date: "2025-01-08", StartTime: "22:00", EndTime: "06:00"}); err != nil {
		t.Fatalf("AddNightShift() error = %v", err)
	}
	if err := src.Store.AddPlan(models.WorkoutPlan{ID: "p1", Name: "PUSH A", WeekType: models.WeekA}); err != nil {
		t.Fatalf("AddPlan() error = %v", err)
	}
	if err := src.Store.AddExercise(models.Exercise{ID: "x1", PlanID: "p1", Name: "Bench press", Sets: 3, Reps: "5"}); err != nil {
		t.Fatalf("AddExercise() error = %v", err)
	}
	if err := src.Store.AddLog(models.WorkoutLog{ID: "l1", ExerciseID: "x1", Date: "2025-01-06", SetNumber: 1, RepsCompleted: 5, WeightKg: 80}); err != nil {
		t.Fatalf("AddLog() error = %v", err)
	}
	src.Store.Close()

	dst, _ := newTestContext(t, "dest.db")
	if err := (&InitCmd{Source: srcPath}).Run(dst); err != nil {
		t.Fatalf("InitCmd{Source}.Run() error = %v", err)
	}

	got, err := dst.Store.GetSettings()
	if err != nil || got.CycleStartDate != "2025-01-06" {
		t.Errorf("settings not copied: %+v, %v", got, err)
	}
	if _, err := dst.Store.GetShift("s1"); err != nil {
		t.Errorf("shift not copied: %v", err)
	}
	if _, err := dst.Store.GetEvent("e1"); err != nil {
		t.Errorf("event not copied: %v", err)
	}
	friend, err := dst.Store.GetFriendSchedule()
	if err != nil || len(friend) != 1 {
		t.Errorf("friend schedule = %v, %v, want 1 entry", friend, err)
	}
	if _, err := dst.Store.GetExercise("x1"); err != nil {
		t.Errorf("exercise not copied: %v", err)
	}
	if logs, err := dst.Store.GetExerciseLogs("x1", 10); err != nil || len(logs) != 1 {
		t.Errorf("logs = %v, %v, want 1 set", logs, err)
	}
	nights, err := dst.Store.GetNightShiftsInRange("2025-01-01", "2025-01-31")
	if err != nil || len(nights) != 1 {
		t.Errorf("night shifts = %v, %v, want 1 entry", nights, err)
	}
}

func TestMigrateCmd(t *testing.T) {
	ctx, _ := initialized(t, "liftshift.db")
	if err := (&MigrateCmd{}).Run(ctx); err != nil {
		t.Errorf("MigrateCmd.Run() on an up-to-date database error = %v", err)
	}
}

func TestDoctorCmd(t *testing.T) {
	t.Run("uninitialized database fails", func(t *testing.T) {
		ctx, _ := newTestContext(t, "missing.db")
		if err := (&DoctorCmd{}).Run(ctx); err == nil {
			t.Error("DoctorCmd.Run() should fail before init")
		}
	})

	t.Run("missing cycle is only a warning", func(t *testing.T) {
		ctx, _ := initialized(t, "liftshift.db")
		if err := (&DoctorCmd{}).Run(ctx); err != nil {
			t.Errorf("DoctorCmd.Run() error = %v", err)
		}
	})
}

func TestNotifyMessage(t *testing.T) {
	ctx, _ := initialized(t, "liftshift.db")

	t.Run("cycle required", func(t *testing.T) {
		_, err := (&NotifyCmd{Date: "2025-01-06"}).message(ctx)
		if !errors.Is(err, apperrors.ErrCycleNotConfigured) {
			t.Errorf("message() error = %v, want ErrCycleNotConfigured", err)
		}
	})

	settings := models.DefaultSettings()
	settings.CycleStartDate = "2025-01-06"
	if err := ctx.Store.SaveSettings(settings); err != nil {
		t.Fatalf("SaveSettings() error = %v", err)
	}

	tests := []struct {
		name   string
		date   string
		prefix string
	}{
		{name: "first cycle day is push", date: "2025-01-06", prefix: "PUSH A "},
		{name: "fourth cycle day rests", date: "2025-01-09", prefix: "No workout slot found for 2025-01-09"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg, err := (&NotifyCmd{Date: tt.date}).message(ctx)
			if err != nil {
				t.Fatalf("message() error = %v", err)
			}
			if !strings.HasPrefix(msg, tt.prefix) {
				t.Errorf("message() = %q, want prefix %q", msg, tt.prefix)
			}
		})
	}

	if err := (&NotifyCmd{Date: "2025-01-06", DryRun: true}).Run(ctx); err != nil {
		t.Errorf("NotifyCmd{DryRun}.Run() error = %v", err)
	}
}
