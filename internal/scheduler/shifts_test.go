package scheduler

import (
	"slices"
	"testing"

	"github.com/julianstephens/liftshift/internal/models"
)

func shiftsOn(suggestions []models.ShiftSuggestion, date string) []models.ShiftSuggestion {
	var out []models.ShiftSuggestion
	for _, s := range suggestions {
		if s.Date == date {
			out = append(out, s)
		}
	}
	return out
}

func TestSuggestShifts_FriendSleepingAfterNightShift(t *testing.T) {
	s := New()
	snap := Snapshot{
		NightShifts: []models.FriendNightShift{
			{ID: "n1", Date: "2025-01-07", StartTime: "22:00", EndTime: "06:00"},
		},
	}

	got := s.SuggestShifts(mustDate(t, weekStartStr), nil, snap)
	wed := shiftsOn(got, "2025-01-08")
	if len(wed) != 1 {
		t.Fatalf("Wednesday suggestions = %v, want exactly one", wed)
	}
	for _, sug := range wed {
		if sug.StartTime == "09:00" {
			t.Error("suggested 09:00 while the friend is asleep")
		}
	}
	sug := wed[0]
	if sug.StartTime != "14:00" || sug.EndTime != "20:00" || sug.DurationHours != 6 {
		t.Errorf("Wednesday = %s-%s (%vh), want 14:00-20:00 (6h)", sug.StartTime, sug.EndTime, sug.DurationHours)
	}
	if sug.Priority != models.PriorityHigh {
		t.Errorf("priority = %s, want high", sug.Priority)
	}
	if !slices.Contains(sug.Tags, TagFriendSleeping) {
		t.Errorf("tags = %v, want %q", sug.Tags, TagFriendSleeping)
	}
	if sug.ShiftType != models.ShiftAfternoon {
		t.Errorf("shift type = %s, want afternoon", sug.ShiftType)
	}
}

func TestSuggestShifts_ForcedHighOverridesQuota(t *testing.T) {
	s := New()
	snap := Snapshot{
		NightShifts: []models.FriendNightShift{{ID: "n1", Date: "2025-01-07", StartTime: "22:00", EndTime: "06:00"}},
		MonthShifts: []models.WorkShift{
			{ID: "m1", Date: "2025-01-02", DurationHours: 20, ShiftType: models.ShiftMorning},
			{ID: "m2", Date: "2025-01-03", DurationHours: 20, ShiftType: models.ShiftAfternoon},
			{ID: "m3", Date: "2025-01-04", DurationHours: 20, ShiftType: models.ShiftWeekend},
		},
		Shifts: []models.WorkShift{
			{ID: "w1", Date: "2025-01-06", StartTime: "06:00", EndTime: "18:00", DurationHours: 12, ShiftType: models.ShiftMorning},
		},
	}
	got := s.SuggestShifts(mustDate(t, weekStartStr), nil, snap)
	if len(got) == 0 || got[0].Date != "2025-01-08" || got[0].Priority != models.PriorityHigh {
		t.Fatalf("first suggestion = %+v, want forced high on Wednesday", got)
	}
	for _, sug := range got[1:] {
		if sug.Priority != models.PriorityLow {
			t.Errorf("%s priority = %s, want low with quotas met", sug.Date, sug.Priority)
		}
	}
}

func TestSuggestShifts_QuotaPriorities(t *testing.T) {
	s := New()
	snap := Snapshot{
		MonthShifts: []models.WorkShift{
			{ID: "m1", Date: "2025-01-02", DurationHours: 4, ShiftType: models.ShiftMorning},
			{ID: "m2", Date: "2025-01-03", DurationHours: 16, ShiftType: models.ShiftAfternoon},
			{ID: "m3", Date: "2025-01-04", DurationHours: 30, ShiftType: models.ShiftWeekend},
		},
		Shifts: []models.WorkShift{
			{ID: "w1", Date: "2025-01-06", StartTime: "06:00", EndTime: "14:00", DurationHours: 8, ShiftType: models.ShiftMorning},
			{ID: "w2", Date: "2025-01-07", StartTime: "06:00", EndTime: "10:00", DurationHours: 4, ShiftType: models.ShiftMorning},
		},
	}

	got := s.SuggestShifts(mustDate(t, weekStartStr), nil, snap)
	if len(shiftsOn(got, "2025-01-06")) != 0 || len(shiftsOn(got, "2025-01-07")) != 0 {
		t.Error("suggested a shift on a day that already has one")
	}

	wantOrder := []struct {
		date     string
		priority models.Priority
		kind     models.ShiftType
	}{
		{"2025-01-08", models.PriorityMedium, models.ShiftMorning},
		{"2025-01-09", models.PriorityMedium, models.ShiftMorning},
		{"2025-01-10", models.PriorityMedium, models.ShiftMorning},
		{"2025-01-11", models.PriorityLow, models.ShiftWeekend},
		{"2025-01-12", models.PriorityLow, models.ShiftWeekend},
	}
	if len(got) != len(wantOrder) {
		t.Fatalf("len(SuggestShifts()) = %d, want %d: %+v", len(got), len(wantOrder), got)
	}
	for i, want := range wantOrder {
		if got[i].Date != want.date || got[i].Priority != want.priority || got[i].ShiftType != want.kind {
			t.Errorf("suggestion %d = %s %s %s, want %s %s %s",
				i, got[i].Date, got[i].Priority, got[i].ShiftType, want.date, want.priority, want.kind)
		}
	}
	if got[0].Reason != "morning shifts need 4h more" {
		t.Errorf("reason = %q", got[0].Reason)
	}
	if got[3].Reason != fallbackReason {
		t.Errorf("low priority reason = %q, want fallback", got[3].Reason)
	}
}

func TestSuggestShifts_CapsResults(t *testing.T) {
	s := New()
	var classes []models.FriendScheduleEntry
	for dow := 0; dow < 7; dow++ {
		classes = append(classes, models.FriendScheduleEntry{ID: "c", DayOfWeek: dow, StartTime: "12:00", EndTime: "14:00"})
	}
	got := s.SuggestShifts(mustDate(t, weekStartStr), nil, Snapshot{FriendSchedule: classes})
	if len(got) != 10 {
		t.Fatalf("len(SuggestShifts()) = %d, want 10", len(got))
	}
	for i := 1; i < len(got); i++ {
		a, b := got[i-1], got[i]
		if a.Date > b.Date || (a.Date == b.Date && a.StartTime > b.StartTime) {
			t.Errorf("suggestions out of order: %s %s before %s %s", a.Date, a.StartTime, b.Date, b.StartTime)
		}
	}
	if !slices.Contains(got[1].Tags, TagAfterClasses) {
		t.Errorf("afternoon window tags = %v, want %q", got[1].Tags, TagAfterClasses)
	}
}

func TestSuggestShifts_ReservesWorkoutSlot(t *testing.T) {
	s := New()
	got := s.SuggestShifts(mustDate(t, weekStartStr), ptr(mustDate(t, cycleStartStr)), Snapshot{})

	mon := shiftsOn(got, "2025-01-06")
	if len(mon) != 2 {
		t.Fatalf("Monday suggestions = %+v, want 2 around the workout", mon)
	}
	if mon[0].StartTime != "06:00" || mon[0].EndTime != "10:00" || mon[0].DurationHours != 4 {
		t.Errorf("Monday morning = %s-%s", mon[0].StartTime, mon[0].EndTime)
	}
	if mon[1].StartTime != "12:30" || mon[1].EndTime != "18:30" {
		t.Errorf("Monday afternoon = %s-%s, want 12:30-18:30", mon[1].StartTime, mon[1].EndTime)
	}
	// The window opens the moment the workout ends, which is not after it.
	if slices.Contains(mon[1].Tags, TagAfterWorkout) {
		t.Errorf("Monday afternoon tags = %v, want no %q", mon[1].Tags, TagAfterWorkout)
	}

	// Thursday is a rest day, so the whole window stays open.
	thu := shiftsOn(got, "2025-01-09")
	if len(thu) != 1 || thu[0].StartTime != "06:00" {
		t.Errorf("Thursday suggestions = %+v, want one from 06:00", thu)
	}
}

func TestSuggestShifts_AfterWorkoutTag(t *testing.T) {
	s := New()
	snap := Snapshot{
		Events: []models.ScheduleEvent{
			{ID: "e1", Type: models.EventCooking, Date: "2025-01-06", StartTime: "12:30", EndTime: "13:30"},
		},
	}
	got := s.SuggestShifts(mustDate(t, weekStartStr), ptr(mustDate(t, cycleStartStr)), snap)

	mon := shiftsOn(got, "2025-01-06")
	if len(mon) != 2 {
		t.Fatalf("Monday suggestions = %+v, want 2", mon)
	}
	if mon[1].StartTime != "13:30" {
		t.Errorf("Monday afternoon starts at %s, want 13:30", mon[1].StartTime)
	}
	if !slices.Contains(mon[1].Tags, TagAfterWorkout) {
		t.Errorf("Monday afternoon tags = %v, want %q", mon[1].Tags, TagAfterWorkout)
	}
	if slices.Contains(mon[0].Tags, TagAfterWorkout) {
		t.Errorf("Monday morning tags = %v, want no %q", mon[0].Tags, TagAfterWorkout)
	}
}
