package validation

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/julianstephens/liftshift/internal/logger"
	"github.com/julianstephens/liftshift/internal/models"
	"github.com/julianstephens/liftshift/internal/scheduler"
)

type structValidator struct {
	v *validator.Validate
}

func newStructValidator() structValidator {
	return structValidator{v: validator.New(validator.WithRequiredStructEnabled())}
}

// check runs the struct tags of s and flattens field errors into one message.
func (sv structValidator) check(s interface{}) error {
	err := sv.v.Struct(s)
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err
	}
	parts := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		if fe.Param() != "" {
			parts = append(parts, fmt.Sprintf("%s fails %s=%s", fe.Field(), fe.Tag(), fe.Param()))
		} else {
			parts = append(parts, fmt.Sprintf("%s fails %s", fe.Field(), fe.Tag()))
		}
	}
	return errors.New(strings.Join(parts, ", "))
}

// ValidateShift checks a shift before it is stored or scheduled around.
func (v *Validator) ValidateShift(s models.WorkShift) error {
	if err := v.structs.check(s); err != nil {
		return err
	}
	return validInterval(s.StartTime, s.EndTime)
}

func (v *Validator) ValidateEvent(e models.ScheduleEvent) error {
	if err := v.structs.check(e); err != nil {
		return err
	}
	return validInterval(e.StartTime, e.EndTime)
}

func (v *Validator) ValidateFriendEntry(e models.FriendScheduleEntry) error {
	if err := v.structs.check(e); err != nil {
		return err
	}
	return validInterval(e.StartTime, e.EndTime)
}

// ValidateNightShift checks a night shift. Its end may fall on the next
// morning, so only the formats are checked.
func (v *Validator) ValidateNightShift(n models.FriendNightShift) error {
	return v.structs.check(n)
}

func (v *Validator) ValidatePlan(p models.WorkoutPlan) error {
	return v.structs.check(p)
}

func (v *Validator) ValidateExercise(e models.Exercise) error {
	return v.structs.check(e)
}

// ValidateLog checks one recorded set. A set with no reps or no weight is
// not worth keeping, so both must be positive.
func (v *Validator) ValidateLog(l models.WorkoutLog) error {
	if err := v.structs.check(l); err != nil {
		return err
	}
	if l.RepsCompleted <= 0 || l.WeightKg <= 0 {
		return fmt.Errorf("reps (%d) and weight (%g kg) must both be positive", l.RepsCompleted, l.WeightKg)
	}
	return nil
}

// Issue describes one record dropped by Sanitize.
type Issue struct {
	Kind string
	ID   string
	Err  error
}

func (i Issue) String() string {
	return fmt.Sprintf("%s %s: %v", i.Kind, i.ID, i.Err)
}

// Sanitize returns a copy of snap without malformed records. Every dropped
// record is logged as a warning and reported in the returned issues.
func (v *Validator) Sanitize(snap scheduler.Snapshot) (scheduler.Snapshot, []Issue) {
	var issues []Issue
	report := func(kind, id string, err error) {
		logger.Warn("Skipping malformed record", "kind", kind, "id", id, "error", err)
		issues = append(issues, Issue{Kind: kind, ID: id, Err: err})
	}

	out := scheduler.Snapshot{Quota: snap.Quota}
	out.Shifts = keep(snap.Shifts, v.ValidateShift, func(s models.WorkShift) string { return s.ID }, "shift", report)
	out.MonthShifts = keep(snap.MonthShifts, v.ValidateShift, func(s models.WorkShift) string { return s.ID }, "shift", report)
	out.Events = keep(snap.Events, v.ValidateEvent, func(e models.ScheduleEvent) string { return e.ID }, "event", report)
	out.FriendSchedule = keep(snap.FriendSchedule, v.ValidateFriendEntry, func(e models.FriendScheduleEntry) string { return e.ID }, "friend_class", report)
	out.NightShifts = keep(snap.NightShifts, v.ValidateNightShift, func(n models.FriendNightShift) string { return n.ID }, "night_shift", report)
	return out, issues
}

func keep[T any](items []T, check func(T) error, id func(T) string, kind string, report func(kind, id string, err error)) []T {
	out := make([]T, 0, len(items))
	for _, item := range items {
		if err := check(item); err != nil {
			report(kind, id(item), err)
			continue
		}
		out = append(out, item)
	}
	return out
}

// SanitizeDay applies the same filtering to a conflict-check snapshot.
func (v *Validator) SanitizeDay(day DaySnapshot) (DaySnapshot, []Issue) {
	snap, issues := v.Sanitize(scheduler.Snapshot{
		Shifts:         day.Shifts,
		Events:         day.Events,
		FriendSchedule: day.FriendSchedule,
		NightShifts:    day.NightShifts,
	})
	return DaySnapshot{
		Shifts:         snap.Shifts,
		Events:         snap.Events,
		FriendSchedule: snap.FriendSchedule,
		NightShifts:    snap.NightShifts,
	}, issues
}
