package models

import "strings"

// WorkoutPlan is the exercise list for one training day of the cycle, named
// after its cycle label, e.g. "PUSH A".
type WorkoutPlan struct {
	ID           string   `json:"id" validate:"required"`
	Name         string   `json:"name" validate:"required"`
	WeekType     WeekType `json:"week_type" validate:"oneof=A B"`
	OrderInCycle int      `json:"order_in_cycle" validate:"gte=0"`
}

// Matches reports whether the plan is the one for cycle day d.
func (p WorkoutPlan) Matches(d CycleDay) bool {
	return strings.EqualFold(strings.TrimSpace(p.Name), d.Label())
}

type Exercise struct {
	ID          string `json:"id" validate:"required"`
	PlanID      string `json:"plan_id" validate:"required"`
	Name        string `json:"name" validate:"required"`
	Sets        int    `json:"sets" validate:"gte=1"`
	Reps        string `json:"reps" validate:"required"` // target, e.g. "8-10"
	RIR         int    `json:"rir" validate:"gte=0,lte=10"`
	RestSeconds int    `json:"rest_seconds" validate:"gte=0"`
	OrderIndex  int    `json:"order_index" validate:"gte=0"`
}

// WorkoutLog is one recorded set.
type WorkoutLog struct {
	ID            string  `json:"id" validate:"required"`
	ExerciseID    string  `json:"exercise_id" validate:"required"`
	Date          string  `json:"workout_date" validate:"required,datetime=2006-01-02"`
	SetNumber     int     `json:"set_number" validate:"gte=1"`
	RepsCompleted int     `json:"reps_completed" validate:"gte=0"`
	WeightKg      float64 `json:"weight_kg" validate:"gte=0"`
	RIRActual     *int    `json:"rir_actual,omitempty" validate:"omitempty,gte=0,lte=10"`
	Notes         string  `json:"notes,omitempty"`
}

// VolumeLoad is weight times reps for the set.
func (l WorkoutLog) VolumeLoad() float64 {
	return l.WeightKg * float64(l.RepsCompleted)
}

// FindPlan returns the plan for cycle day d. Rest days have no plan.
func FindPlan(plans []WorkoutPlan, d CycleDay) (WorkoutPlan, bool) {
	if !d.IsTrainingDay() {
		return WorkoutPlan{}, false
	}
	for _, p := range plans {
		if p.Matches(d) {
			return p, true
		}
	}
	return WorkoutPlan{}, false
}
