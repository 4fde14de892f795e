package scheduler

import (
	"testing"

	"github.com/julianstephens/liftshift/internal/models"
)

func dayWith(t *testing.T, snap Snapshot, date string) *Day {
	t.Helper()
	return snap.Day(mustDate(t, date), ptr(mustDate(t, cycleStartStr)))
}

func TestFriendClassRule(t *testing.T) {
	rule := FriendClassRule(2.5)
	d := dayWith(t, Snapshot{FriendSchedule: []models.FriendScheduleEntry{
		{ID: "c1", DayOfWeek: 2, StartTime: "12:00", EndTime: "13:00"},
		{ID: "c2", DayOfWeek: 2, StartTime: "14:00", EndTime: "16:00"},
		{ID: "free", DayOfWeek: 2, StartTime: "17:00", EndTime: "20:00", IsAvailable: true},
	}}, "2025-01-08")

	tests := []struct {
		name  string
		start float64
		delta int
		tag   string
	}{
		{name: "right after last class", start: 16, delta: 30, tag: TagTrainTogether},
		{name: "one hour after", start: 17, delta: 30, tag: TagTrainTogether},
		{name: "later in the evening", start: 18, delta: 15, tag: TagAfterClasses},
		{name: "finishes before first class", start: 9.5, delta: 5, tag: TagBeforeClass},
		{name: "runs into first class", start: 10, delta: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			eff := rule(Candidate{Start: tt.start, End: tt.start + 2.5}, d)
			if eff.Delta != tt.delta || eff.Tag != tt.tag {
				t.Errorf("FriendClassRule(%v) = %+v, want delta %d tag %q", tt.start, eff, tt.delta, tt.tag)
			}
		})
	}
}

func TestFriendClassRule_NoClasses(t *testing.T) {
	d := dayWith(t, Snapshot{}, "2025-01-08")
	if eff := FriendClassRule(2.5)(Candidate{Start: 10, End: 12.5}, d); eff != (Effect{}) {
		t.Errorf("FriendClassRule() without classes = %+v, want zero", eff)
	}
}

func TestFriendFreeAndSleepRules(t *testing.T) {
	free := dayWith(t, Snapshot{}, "2025-01-08")
	slept := dayWith(t, Snapshot{NightShifts: []models.FriendNightShift{
		{ID: "n1", Date: "2025-01-07", StartTime: "22:00", EndTime: "06:00"},
	}}, "2025-01-08")

	if eff := FriendFreeRule(Candidate{Start: 10}, free); eff.Delta != 20 || eff.Tag != TagFriendFree {
		t.Errorf("FriendFreeRule(free day) = %+v", eff)
	}
	if eff := FriendFreeRule(Candidate{Start: 10}, slept); eff.Delta != 0 {
		t.Errorf("FriendFreeRule(after night shift) = %+v, want zero", eff)
	}
	if eff := FriendSleepRule(Candidate{Start: 14}, slept); eff.Delta != 25 || eff.Tag != TagFriendWokeUp {
		t.Errorf("FriendSleepRule(14:00) = %+v", eff)
	}
	if eff := FriendSleepRule(Candidate{Start: 13.5}, slept); eff.Delta != -20 || eff.Tag != TagFriendSleeping {
		t.Errorf("FriendSleepRule(13:30) = %+v", eff)
	}
	if eff := FriendSleepRule(Candidate{Start: 10}, free); eff != (Effect{}) {
		t.Errorf("FriendSleepRule(no night shift) = %+v, want zero", eff)
	}
}

func TestTimeRules(t *testing.T) {
	tests := []struct {
		start float64
		want  int
	}{
		{start: 7, want: -15},
		{start: 8.5, want: -15},
		{start: 9, want: 8},
		{start: 9.5, want: 8},
		{start: 10, want: 15},
		{start: 11, want: 15},
		{start: 12, want: 0},
		{start: 14, want: 12},
		{start: 16, want: 12},
		{start: 17, want: 0},
		{start: 18, want: 3},
		{start: 19, want: -12},
	}

	for _, tt := range tests {
		c := Candidate{Start: tt.start, End: tt.start + 2.5}
		got := TimeOfDayRule(c, nil).Delta + EdgeHoursRule(c, nil).Delta
		if got != tt.want {
			t.Errorf("time rules at %v = %d, want %d", tt.start, got, tt.want)
		}
	}
}

func TestScore_FoldsRulesInOrder(t *testing.T) {
	d := dayWith(t, Snapshot{}, "2025-01-06")
	rules := []Rule{
		func(Candidate, *Day) Effect { return Effect{Delta: 10, Tag: "a", Reason: "first"} },
		func(Candidate, *Day) Effect { return Effect{} },
		func(Candidate, *Day) Effect { return Effect{Delta: -5, Tag: "b", Reason: "second"} },
	}
	got := Score(Candidate{Start: 10, End: 12.5}, d, rules)
	if got.Score != 55 {
		t.Errorf("Score = %d, want 55", got.Score)
	}
	if len(got.Tags) != 2 || got.Tags[0] != "a" || got.Tags[1] != "b" {
		t.Errorf("Tags = %v, want [a b]", got.Tags)
	}
	if got.Reason() != "first · second" {
		t.Errorf("Reason() = %q", got.Reason())
	}

	empty := Score(Candidate{Start: 10, End: 12.5}, d, nil)
	if empty.Score != baseScore || empty.Reason() != fallbackReason {
		t.Errorf("Score with no rules = %+v, reason %q", empty, empty.Reason())
	}
}
