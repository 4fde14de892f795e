package shifts

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
	return cli.NewContext(store)
}

func shiftsOn(t *testing.T, ctx *cli.Context, date string) []models.WorkShift {
	t.Helper()
	shifts, err := ctx.Store.GetShiftsInRange(date, date)
	if err != nil {
		t.Fatalf("GetShiftsInRange() error = %v", err)
	}
	return shifts
}

func TestShiftAddCmd_Validate(t *testing.T) {
	tests := []struct {
		name    string
		cmd     ShiftAddCmd
		wantErr bool
	}{
		{name: "preset", cmd: ShiftAddCmd{Preset: "morning"}},
		{name: "explicit times", cmd: ShiftAddCmd{Start: "08:00", End: "12:00"}},
		{name: "explicit type", cmd: ShiftAddCmd{Start: "08:00", End: "12:00", Type: "weekend"}},
		{name: "interactive skips checks", cmd: ShiftAddCmd{Interactive: true}},
		{name: "nothing given", cmd: ShiftAddCmd{}, wantErr: true},
		{name: "only start", cmd: ShiftAddCmd{Start: "08:00"}, wantErr: true},
		{name: "unknown preset", cmd: ShiftAddCmd{Preset: "graveyard"}, wantErr: true},
		{name: "preset and times", cmd: ShiftAddCmd{Preset: "morning", Start: "08:00", End: "12:00"}, wantErr: true},
		{name: "bad type", cmd: ShiftAddCmd{Start: "08:00", End: "12:00", Type: "night"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.cmd.Validate(); (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestShiftAddCmd(t *testing.T) {
	tests := []struct {
		name      string
		cmd       ShiftAddCmd
		wantStart string
		wantHours float64
		wantType  models.ShiftType
	}{
		{name: "preset", cmd: ShiftAddCmd{Date: "2025-01-06", Preset: "short-afternoon"}, wantStart: "14:00", wantHours: 4, wantType: models.ShiftAfternoon},
		{name: "derived morning", cmd: ShiftAddCmd{Date: "2025-01-07", Start: "09:00", End: "13:30"}, wantStart: "09:00", wantHours: 4.5, wantType: models.ShiftMorning},
		{name: "derived weekend", cmd: ShiftAddCmd{Date: "2025-01-11", Start: "15:00", End: "19:00"}, wantStart: "15:00", wantHours: 4, wantType: models.ShiftWeekend},
		{name: "explicit type wins", cmd: ShiftAddCmd{Date: "2025-01-08", Start: "15:00", End: "19:00", Type: "morning"}, wantStart: "15:00", wantHours: 4, wantType: models.ShiftMorning},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := setupTestDB(t)
			if err := tt.cmd.Run(ctx); err != nil {
				t.Fatalf("Run() error = %v", err)
			}
			got := shiftsOn(t, ctx, tt.cmd.Date)
			if len(got) != 1 {
				t.Fatalf("got %d shifts, want 1", len(got))
			}
			if got[0].StartTime != tt.wantStart || got[0].DurationHours != tt.wantHours || got[0].ShiftType != tt.wantType {
				t.Errorf("shift = %+v, want start %s, %vh, %s", got[0], tt.wantStart, tt.wantHours, tt.wantType)
			}
		})
	}
}

func TestShiftAddCmd_Conflicts(t *testing.T) {
	ctx := setupTestDB(t)
	first := ShiftAddCmd{Date: "2025-01-06", Start: "08:00", End: "12:00"}
	if err := first.Run(ctx); err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	overlap := ShiftAddCmd{Date: "2025-01-06", Start: "11:00", End: "15:00"}
	if err := overlap.Run(ctx); !errors.Is(err, apperrors.ErrConflict) {
		t.Fatalf("overlapping Run() error = %v, want ErrConflict", err)
	}
	if n := len(shiftsOn(t, ctx, "2025-01-06")); n != 1 {
		t.Fatalf("got %d shifts after rejected overlap, want 1", n)
	}

	touching := ShiftAddCmd{Date: "2025-01-06", Start: "12:00", End: "14:00"}
	if err := touching.Run(ctx); err != nil {
		t.Errorf("touching Run() error = %v", err)
	}

	overlap.Force = true
	if err := overlap.Run(ctx); err != nil {
		t.Errorf("forced Run() error = %v", err)
	}
	if n := len(shiftsOn(t, ctx, "2025-01-06")); n != 3 {
		t.Errorf("got %d shifts, want 3", n)
	}
}

func TestShiftAddCmd_RejectsReversedTimes(t *testing.T) {
	ctx := setupTestDB(t)
	cmd := ShiftAddCmd{Date: "2025-01-06", Start: "14:00", End: "10:00"}
	if err := cmd.Run(ctx); err == nil {
		t.Error("Run() accepted a shift ending before it starts")
	}
}

func TestShiftListAndDelete(t *testing.T) {
	ctx := setupTestDB(t)
	sh := models.WorkShift{ID: "s1", Date: "2025-01-06", StartTime: "06:00", EndTime: "14:00", DurationHours: 8, ShiftType: models.ShiftMorning}
	if err := ctx.Store.AddShift(sh); err != nil {
		t.Fatalf("AddShift() error = %v", err)
	}

	if err := (&ShiftListCmd{Week: "2025-01-08"}).Run(ctx); err != nil {
		t.Errorf("ShiftListCmd{Week}.Run() error = %v", err)
	}
	if err := (&ShiftListCmd{From: "2025-01-01", To: "2025-01-31"}).Run(ctx); err != nil {
		t.Errorf("ShiftListCmd{From,To}.Run() error = %v", err)
	}
	if err := (&ShiftListCmd{From: "2025-01-31", To: "2025-01-01"}).Run(ctx); err == nil {
		t.Error("ShiftListCmd accepted a reversed range")
	}
	if err := (&ShiftListCmd{From: "2025-01-01"}).Run(ctx); err == nil {
		t.Error("ShiftListCmd accepted --from without --to")
	}

	if err := (&ShiftDeleteCmd{ID: "s1"}).Run(ctx); err != nil {
		t.Fatalf("ShiftDeleteCmd.Run() error = %v", err)
	}
	if err := (&ShiftDeleteCmd{ID: "s1"}).Run(ctx); err == nil {
		t.Error("deleting a missing shift should fail")
	}
}
