package scheduler

import (
	"github.com/julianstephens/liftshift/internal/constants"
	"github.com/julianstephens/liftshift/internal/interval"
)

// Options holds the tunable constants of both suggestion generators.
type Options struct {
	// WorkoutDuration is the fixed length of a training session in hours.
	WorkoutDuration float64
	// WorkoutWindow bounds the hours a workout may be placed in.
	WorkoutWindow interval.Interval
	// EventBuffer pads schedule events on both sides when placing workouts.
	EventBuffer float64
	// PreferredStarts are extra candidate start times tried next to the hourly steps.
	PreferredStarts []float64

	// ShiftWindow bounds the hours a work shift may be placed in.
	ShiftWindow      interval.Interval
	MinShiftWindow   float64
	MaxShiftLength   float64
	MaxShiftResults  int
	FriendSleepBlock interval.Interval
}

// DefaultOptions returns the stock tuning.
func DefaultOptions() Options {
	return Options{
		WorkoutDuration:  2.5,
		WorkoutWindow:    interval.New(7, 21),
		EventBuffer:      0.5,
		PreferredStarts:  []float64{9.5, 10, 10.5, 14, 14.5, 15},
		ShiftWindow:      interval.New(6, 22),
		MinShiftWindow:   2,
		MaxShiftLength:   6,
		MaxShiftResults:  constants.MaxShiftSuggestions,
		FriendSleepBlock: interval.New(5, 14),
	}
}
