package scheduler

import "github.com/julianstephens/liftshift/internal/interval"

const (
	defaultWorkoutStart    = 10.0
	afterSleepWorkoutStart = 15.0
	earlyWorkoutStart      = 9.0
	latestWorkoutStart     = 19.0
	afterClassGap          = 0.5
)

// WorkoutSlot estimates when the day's workout happens so the shift
// generator can keep it free. It reports false on rest days and when no
// cycle is configured.
func (s *Scheduler) WorkoutSlot(d *Day) (interval.Interval, bool) {
	if !d.IsTrainingDay() {
		return interval.Interval{}, false
	}
	start := defaultWorkoutStart
	if d.FriendSlept() {
		start = afterSleepWorkoutStart
	} else if lastEnd, ok := d.LastClassEnd(); ok {
		start = lastEnd + afterClassGap
		if start > latestWorkoutStart {
			start = earlyWorkoutStart
		}
	}
	return interval.New(start, start+s.opts.WorkoutDuration), true
}
