// Package scheduler proposes workout and work-shift slots for a week by
// combining the training cycle, existing commitments and the friend's timetable.
// Every function here is pure over its inputs and safe to re-run.
package scheduler

type Scheduler struct {
	opts  Options
	rules []Rule
}

func New() *Scheduler {
	return NewWithOptions(DefaultOptions())
}

// NewWithOptions returns a scheduler using opts and the default scoring rules.
func NewWithOptions(opts Options) *Scheduler {
	return &Scheduler{opts: opts, rules: DefaultRules(opts.WorkoutDuration)}
}

// Options returns the tuning the scheduler was built with.
func (s *Scheduler) Options() Options {
	return s.opts
}
