package scheduler

import "strings"

const (
	baseScore = 50

	idealScore = 70
	goodScore  = 40

	// friendWakeHour is when a friend coming off a night shift is assumed awake.
	friendWakeHour = 14.0
)

const (
	TagTrainTogether  = "train together"
	TagAfterClasses   = "after classes"
	TagBeforeClass    = "before class"
	TagFriendFree     = "friend free"
	TagFriendWokeUp   = "friend woke up"
	TagFriendSleeping = "friend sleeping"
	TagAfterWorkout   = "after workout"
)

const fallbackReason = "free slot in schedule"

// Candidate is a possible workout start with its end.
type Candidate struct {
	Start float64
	End   float64
}

// Effect is the contribution of one rule to a candidate's score.
type Effect struct {
	Delta  int
	Tag    string
	Reason string
}

// Rule scores one aspect of a candidate. Rules must not depend on each other.
type Rule func(c Candidate, d *Day) Effect

// DefaultRules returns the workout scoring rules in evaluation order.
func DefaultRules(workoutDuration float64) []Rule {
	return []Rule{
		FriendClassRule(workoutDuration),
		FriendFreeRule,
		FriendSleepRule,
		TimeOfDayRule,
		EdgeHoursRule,
	}
}

// FriendClassRule rewards training right after the friend's classes end.
func FriendClassRule(workoutDuration float64) Rule {
	return func(c Candidate, d *Day) Effect {
		lastEnd, ok := d.LastClassEnd()
		if !ok {
			return Effect{}
		}
		firstStart, _ := d.FirstClassStart()
		switch {
		case c.Start >= lastEnd && c.Start <= lastEnd+1:
			return Effect{Delta: 30, Tag: TagTrainTogether, Reason: "friend's classes are over, train together"}
		case c.Start >= lastEnd:
			return Effect{Delta: 15, Tag: TagAfterClasses}
		case c.Start+workoutDuration <= firstStart:
			return Effect{Delta: 5, Tag: TagBeforeClass}
		}
		return Effect{}
	}
}

// FriendFreeRule rewards days when the friend has neither classes nor a night shift.
func FriendFreeRule(_ Candidate, d *Day) Effect {
	if d.HasClasses() || d.FriendSlept() {
		return Effect{}
	}
	return Effect{Delta: 20, Tag: TagFriendFree}
}

// FriendSleepRule pushes workouts past the friend's post night shift sleep.
func FriendSleepRule(c Candidate, d *Day) Effect {
	if !d.FriendSlept() {
		return Effect{}
	}
	if c.Start >= friendWakeHour {
		return Effect{Delta: 25, Tag: TagFriendWokeUp, Reason: "friend is up after the night shift, afternoon is ideal"}
	}
	return Effect{Delta: -20, Tag: TagFriendSleeping, Reason: "friend is still asleep, training alone"}
}

// TimeOfDayRule prefers mid-morning and early afternoon.
func TimeOfDayRule(c Candidate, _ *Day) Effect {
	switch {
	case c.Start >= 10 && c.Start <= 11:
		return Effect{Delta: 15, Reason: "optimal time: mid-morning"}
	case c.Start >= 9 && c.Start < 10:
		return Effect{Delta: 8, Reason: "good time: early morning"}
	case c.Start >= 14 && c.Start <= 16:
		return Effect{Delta: 12, Reason: "optimal time: early afternoon"}
	case c.Start >= 18:
		return Effect{Delta: 3}
	}
	return Effect{}
}

// EdgeHoursRule penalizes very early and very late starts.
func EdgeHoursRule(c Candidate, _ *Day) Effect {
	if c.Start < 9 || c.Start >= 19 {
		return Effect{Delta: -15}
	}
	return Effect{}
}

// Scored is a candidate with the folded result of all rules.
type Scored struct {
	Candidate
	Score   int
	Tags    []string
	Reasons []string
}

// Reason joins the fired rule reasons.
func (s Scored) Reason() string {
	return joinReasons(s.Reasons)
}

// Score folds rules over c from left to right starting at the base score.
func Score(c Candidate, d *Day, rules []Rule) Scored {
	out := Scored{Candidate: c, Score: baseScore, Tags: []string{}}
	for _, rule := range rules {
		eff := rule(c, d)
		out.Score += eff.Delta
		if eff.Tag != "" {
			out.Tags = append(out.Tags, eff.Tag)
		}
		if eff.Reason != "" {
			out.Reasons = append(out.Reasons, eff.Reason)
		}
	}
	return out
}

func joinReasons(reasons []string) string {
	if len(reasons) == 0 {
		return fallbackReason
	}
	return strings.Join(reasons, " · ")
}
