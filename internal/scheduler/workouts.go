package scheduler

import (
	"math"
	"sort"
	"time"

	"github.com/julianstephens/liftshift/internal/constants"
	"github.com/julianstephens/liftshift/internal/interval"
	"github.com/julianstephens/liftshift/internal/models"
)

// SuggestWorkouts proposes at most one workout per training day of the week
// starting at weekStart, ordered by date. It returns nothing when cycleStart is nil.
func (s *Scheduler) SuggestWorkouts(weekStart time.Time, cycleStart *time.Time, snap Snapshot) []models.WorkoutSuggestion {
	suggestions := []models.WorkoutSuggestion{}
	if cycleStart == nil {
		return suggestions
	}

	for i := 0; i < constants.DaysPerWeek; i++ {
		day := snap.Day(weekStart.AddDate(0, 0, i), cycleStart)
		if suggestion, ok := s.suggestWorkout(day); ok {
			suggestions = append(suggestions, suggestion)
		}
	}
	return suggestions
}

func (s *Scheduler) suggestWorkout(d *Day) (models.WorkoutSuggestion, bool) {
	if !d.IsTrainingDay() || d.HasWorkoutEvent() {
		return models.WorkoutSuggestion{}, false
	}

	free := interval.Subtract(s.opts.WorkoutWindow, s.workoutBusy(d), s.opts.WorkoutDuration)
	if len(free) == 0 {
		return models.WorkoutSuggestion{}, false
	}

	var scored []Scored
	for _, window := range free {
		for _, start := range s.candidateStarts(window) {
			c := Candidate{Start: start, End: start + s.opts.WorkoutDuration}
			scored = append(scored, Score(c, d, s.rules))
		}
	}
	if len(scored) == 0 {
		return models.WorkoutSuggestion{}, false
	}

	sort.SliceStable(scored, func(i, j int) bool {
		if scored[i].Score != scored[j].Score {
			return scored[i].Score > scored[j].Score
		}
		return scored[i].Start < scored[j].Start
	})
	best := scored[0]

	return models.WorkoutSuggestion{
		Date:        d.Key(),
		DayName:     d.Name(),
		WorkoutType: d.Cycle.WorkoutType,
		WeekType:    d.Cycle.WeekType,
		StartTime:   interval.Clock(best.Start),
		EndTime:     interval.Clock(best.End),
		Score:       best.Score,
		Confidence:  ConfidenceFor(best.Score),
		Reason:      best.Reason(),
		Tags:        best.Tags,
	}, true
}

// workoutBusy lists every interval a workout on d must avoid.
func (s *Scheduler) workoutBusy(d *Day) []interval.Interval {
	busy := d.shiftIntervals()
	busy = append(busy, d.eventIntervals(s.opts.EventBuffer)...)
	busy = append(busy, d.Classes()...)
	if d.FriendSlept() {
		busy = append(busy, s.opts.FriendSleepBlock)
	}
	return busy
}

// candidateStarts steps hourly through window and adds the preferred
// starts that fit, sorted ascending without duplicates.
func (s *Scheduler) candidateStarts(window interval.Interval) []float64 {
	var starts []float64
	for t := window.Start; t+s.opts.WorkoutDuration <= window.End; t++ {
		starts = append(starts, t)
	}
	for _, p := range s.opts.PreferredStarts {
		if p >= window.Start && p+s.opts.WorkoutDuration <= window.End && !containsStart(starts, p) {
			starts = append(starts, p)
		}
	}
	sort.Float64s(starts)
	return starts
}

func containsStart(starts []float64, t float64) bool {
	for _, s := range starts {
		if math.Abs(s-t) < 1e-9 {
			return true
		}
	}
	return false
}

// ConfidenceFor maps a workout score to its confidence label.
func ConfidenceFor(score int) models.Confidence {
	switch {
	case score >= idealScore:
		return models.ConfidenceIdeal
	case score >= goodScore:
		return models.ConfidenceGood
	default:
		return models.ConfidenceLimited
	}
}
