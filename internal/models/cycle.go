package models

import "time"

type WorkoutType string

const (
	WorkoutPush WorkoutType = "PUSH"
	WorkoutPull WorkoutType = "PULL"
	WorkoutLegs WorkoutType = "LEGS"
	WorkoutRest WorkoutType = "REST"
)

type WeekType string

const (
	WeekA WeekType = "A"
	WeekB WeekType = "B"
)

// CycleConfig anchors the repeating training cycle.
type CycleConfig struct {
	CycleStartDate time.Time `json:"cycle_start_date"`
}

// CycleDay is the derived cycle position of one calendar date. It is never persisted.
type CycleDay struct {
	Date        time.Time   `json:"date"`
	WorkoutType WorkoutType `json:"workout_type"`
	WeekType    WeekType    `json:"week_type"`
	WeekNumber  int         `json:"week_number"` // 1-10
	DayIndex    int         `json:"day_index"`   // 0=PUSH, 1=PULL, 2=LEGS, 3=REST
}

// Label returns the short display form, e.g. "PUSH A".
func (d CycleDay) Label() string {
	return string(d.WorkoutType) + " " + string(d.WeekType)
}

// IsTrainingDay reports whether the day is not a rest day.
func (d CycleDay) IsTrainingDay() bool {
	return d.WorkoutType != WorkoutRest
}
