package validation

import (
	"strings"
	"testing"

	"github.com/julianstephens/liftshift/internal/models"
	"github.com/julianstephens/liftshift/internal/scheduler"
)

// 2025-01-08 is a Wednesday (friend day index 2).
func sampleDay() DaySnapshot {
	return DaySnapshot{
		Shifts: []models.WorkShift{
			{ID: "shift-1", Date: "2025-01-08", StartTime: "06:00", EndTime: "10:00", DurationHours: 4, ShiftType: models.ShiftMorning},
			{ID: "shift-other-day", Date: "2025-01-09", StartTime: "06:00", EndTime: "22:00", DurationHours: 16, ShiftType: models.ShiftMorning},
		},
		Events: []models.ScheduleEvent{
			{ID: "event-1", Type: models.EventPartner, Date: "2025-01-08", StartTime: "18:00", EndTime: "20:00", Title: "Dinner"},
		},
		FriendSchedule: []models.FriendScheduleEntry{
			{ID: "class-1", DayOfWeek: 2, StartTime: "12:00", EndTime: "14:00", Label: "Algebra"},
			{ID: "free-1", DayOfWeek: 2, StartTime: "15:00", EndTime: "17:00", IsAvailable: true, Label: "Open"},
			{ID: "class-thu", DayOfWeek: 3, StartTime: "08:00", EndTime: "20:00", Label: "Lab"},
		},
	}
}

func conflictTypes(conflicts []Conflict) []ConflictType {
	out := make([]ConflictType, 0, len(conflicts))
	for _, c := range conflicts {
		out = append(out, c.Type)
	}
	return out
}

func TestCheckConflicts(t *testing.T) {
	v := New()

	tests := []struct {
		name string
		req  ConflictRequest
		want []ConflictType
	}{
		{
			name: "free time",
			req:  ConflictRequest{Date: "2025-01-08", StartTime: "10:00", EndTime: "12:00", Kind: KindEvent},
			want: []ConflictType{},
		},
		{
			name: "shift overlap is reported for both kinds",
			req:  ConflictRequest{Date: "2025-01-08", StartTime: "09:00", EndTime: "11:00", Kind: KindShift},
			want: []ConflictType{ConflictShift},
		},
		{
			name: "excluded shift is skipped",
			req:  ConflictRequest{Date: "2025-01-08", StartTime: "07:00", EndTime: "09:00", Kind: KindShift, ExcludeID: "shift-1"},
			want: []ConflictType{},
		},
		{
			name: "event overlapping class and dinner",
			req:  ConflictRequest{Date: "2025-01-08", StartTime: "13:00", EndTime: "19:00", Kind: KindEvent},
			want: []ConflictType{ConflictEvent, ConflictFriendClass},
		},
		{
			name: "shift ignores friend classes",
			req:  ConflictRequest{Date: "2025-01-08", StartTime: "12:00", EndTime: "14:00", Kind: KindShift},
			want: []ConflictType{},
		},
		{
			name: "available friend entry is not a class",
			req:  ConflictRequest{Date: "2025-01-08", StartTime: "15:00", EndTime: "17:00", Kind: KindEvent},
			want: []ConflictType{},
		},
		{
			name: "touching ranges do not conflict",
			req:  ConflictRequest{Date: "2025-01-08", StartTime: "10:00", EndTime: "12:00", Kind: KindShift},
			want: []ConflictType{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := conflictTypes(v.CheckConflicts(tt.req, sampleDay()))
			if len(got) != len(tt.want) {
				t.Fatalf("CheckConflicts() = %v, want %v", got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("conflict %d = %s, want %s", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestCheckConflicts_SeverityAndDescription(t *testing.T) {
	v := New()
	req := ConflictRequest{Date: "2025-01-08", StartTime: "08:00", EndTime: "19:00", Kind: KindEvent}
	conflicts := v.CheckConflicts(req, sampleDay())
	if len(conflicts) != 3 {
		t.Fatalf("len(CheckConflicts()) = %d, want 3: %+v", len(conflicts), conflicts)
	}

	shift := conflicts[0]
	if shift.Severity != SeverityError || shift.TimeRange != "06:00 - 10:00" || shift.ItemID != "shift-1" {
		t.Errorf("shift conflict = %+v", shift)
	}
	if !strings.Contains(conflicts[1].Description, `"Dinner"`) || conflicts[1].Severity != SeverityWarning {
		t.Errorf("event conflict = %+v", conflicts[1])
	}
	if !strings.Contains(conflicts[2].Description, "12:00 - 14:00") {
		t.Errorf("class conflict = %+v", conflicts[2])
	}

	result := v.Check(req, sampleDay())
	if !result.HasErrors() {
		t.Error("HasErrors() = false with a shift overlap")
	}
	if !strings.Contains(result.FormatReport(), "[error] Overlaps a work shift (06:00 - 10:00)") {
		t.Errorf("FormatReport() = %q", result.FormatReport())
	}
}

func TestCheckConflicts_FriendSleeping(t *testing.T) {
	v := New()
	day := DaySnapshot{NightShifts: []models.FriendNightShift{
		{ID: "night-1", Date: "2025-01-07", StartTime: "22:00", EndTime: "06:00", SleepUntil: "12:00"},
	}}

	tests := []struct {
		name     string
		req      ConflictRequest
		want     int
		rangeStr string
	}{
		{name: "event during sleep", req: ConflictRequest{Date: "2025-01-08", StartTime: "09:00", EndTime: "10:00", Kind: KindEvent}, want: 1, rangeStr: "07:00 - 12:00"},
		{name: "event after wake up", req: ConflictRequest{Date: "2025-01-08", StartTime: "12:00", EndTime: "13:00", Kind: KindEvent}, want: 0},
		{name: "event before sleep", req: ConflictRequest{Date: "2025-01-08", StartTime: "05:00", EndTime: "07:00", Kind: KindEvent}, want: 0},
		{name: "shifts are not warned", req: ConflictRequest{Date: "2025-01-08", StartTime: "09:00", EndTime: "10:00", Kind: KindShift}, want: 0},
		{name: "night shift on same date is ignored", req: ConflictRequest{Date: "2025-01-07", StartTime: "09:00", EndTime: "10:00", Kind: KindEvent}, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := v.CheckConflicts(tt.req, day)
			if len(got) != tt.want {
				t.Fatalf("CheckConflicts() = %+v, want %d conflicts", got, tt.want)
			}
			if tt.want > 0 && (got[0].Type != ConflictFriendSleeping || got[0].TimeRange != tt.rangeStr) {
				t.Errorf("conflict = %+v, want friend_sleeping %s", got[0], tt.rangeStr)
			}
		})
	}
}

func TestCheckConflicts_DefaultSleepUntil(t *testing.T) {
	v := New()
	day := DaySnapshot{NightShifts: []models.FriendNightShift{
		{ID: "night-1", Date: "2025-01-07", StartTime: "22:00", EndTime: "06:00"},
	}}
	got := v.CheckConflicts(ConflictRequest{Date: "2025-01-08", StartTime: "13:30", EndTime: "15:00", Kind: KindEvent}, day)
	if len(got) != 1 || got[0].TimeRange != "07:00 - 14:00" {
		t.Errorf("CheckConflicts() = %+v, want sleep window ending 14:00", got)
	}
}

func TestValidateRequest(t *testing.T) {
	v := New()
	tests := []struct {
		name    string
		req     ConflictRequest
		wantErr bool
	}{
		{name: "valid", req: ConflictRequest{Date: "2025-01-08", StartTime: "09:00", EndTime: "10:00", Kind: KindEvent}},
		{name: "bad date", req: ConflictRequest{Date: "08/01/2025", StartTime: "09:00", EndTime: "10:00", Kind: KindEvent}, wantErr: true},
		{name: "end before start", req: ConflictRequest{Date: "2025-01-08", StartTime: "10:00", EndTime: "09:00", Kind: KindShift}, wantErr: true},
		{name: "zero length", req: ConflictRequest{Date: "2025-01-08", StartTime: "10:00", EndTime: "10:00", Kind: KindShift}, wantErr: true},
		{name: "unknown kind", req: ConflictRequest{Date: "2025-01-08", StartTime: "09:00", EndTime: "10:00", Kind: "meeting"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := v.ValidateRequest(tt.req); (err != nil) != tt.wantErr {
				t.Errorf("ValidateRequest() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestFormatReport_NoConflicts(t *testing.T) {
	result := ValidationResult{}
	if result.HasConflicts() || result.HasErrors() {
		t.Error("empty result reports conflicts")
	}
	if result.FormatReport() != "No conflicts detected." {
		t.Errorf("FormatReport() = %q", result.FormatReport())
	}
}

func TestSanitize(t *testing.T) {
	v := New()
	snap := scheduler.Snapshot{
		Shifts: []models.WorkShift{
			{ID: "ok", Date: "2025-01-08", StartTime: "06:00", EndTime: "10:00", DurationHours: 4, ShiftType: models.ShiftMorning},
			{ID: "reversed", Date: "2025-01-08", StartTime: "10:00", EndTime: "06:00", DurationHours: 4, ShiftType: models.ShiftMorning},
			{ID: "bad-type", Date: "2025-01-08", StartTime: "06:00", EndTime: "10:00", DurationHours: 4, ShiftType: "night"},
		},
		Events: []models.ScheduleEvent{
			{ID: "ok", Type: models.EventCooking, Date: "2025-01-08", StartTime: "18:00", EndTime: "19:00"},
			{ID: "bad-date", Type: models.EventCooking, Date: "tomorrow", StartTime: "18:00", EndTime: "19:00"},
		},
		FriendSchedule: []models.FriendScheduleEntry{
			{ID: "ok", DayOfWeek: 6, StartTime: "09:00", EndTime: "11:00"},
			{ID: "bad-day", DayOfWeek: 7, StartTime: "09:00", EndTime: "11:00"},
		},
		NightShifts: []models.FriendNightShift{
			{ID: "overnight", Date: "2025-01-07", StartTime: "22:00", EndTime: "06:00"},
			{ID: "bad-wake", Date: "2025-01-07", StartTime: "22:00", EndTime: "06:00", SleepUntil: "noon"},
		},
		Quota: models.DefaultQuota(),
	}

	clean, issues := v.Sanitize(snap)
	if len(clean.Shifts) != 1 || clean.Shifts[0].ID != "ok" {
		t.Errorf("Shifts = %+v, want only ok", clean.Shifts)
	}
	if len(clean.Events) != 1 || len(clean.FriendSchedule) != 1 {
		t.Errorf("Events = %d, FriendSchedule = %d, want 1 each", len(clean.Events), len(clean.FriendSchedule))
	}
	if len(clean.NightShifts) != 1 || clean.NightShifts[0].ID != "overnight" {
		t.Errorf("NightShifts = %+v, want the overnight shift kept", clean.NightShifts)
	}
	if clean.Quota != snap.Quota {
		t.Errorf("Quota = %+v, want %+v", clean.Quota, snap.Quota)
	}
	if len(issues) != 5 {
		t.Errorf("len(issues) = %d, want 5: %v", len(issues), issues)
	}
}

func TestValidateShift_Messages(t *testing.T) {
	v := New()
	err := v.ValidateShift(models.WorkShift{Date: "2025-01-08", StartTime: "9am", EndTime: "10:00", ShiftType: models.ShiftMorning})
	if err == nil {
		t.Fatal("ValidateShift() accepted a malformed shift")
	}
	if !strings.Contains(err.Error(), "ID fails required") || !strings.Contains(err.Error(), "StartTime fails datetime=15:04") {
		t.Errorf("ValidateShift() error = %q", err)
	}
}
