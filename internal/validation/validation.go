package validation

import (
	"fmt"
	"time"

	"github.com/julianstephens/liftshift/internal/constants"
	"github.com/julianstephens/liftshift/internal/interval"
	"github.com/julianstephens/liftshift/internal/models"
)

// ConflictType represents what a proposed time collides with
type ConflictType string

const (
	ConflictShift          ConflictType = "shift"
	ConflictEvent          ConflictType = "event"
	ConflictFriendClass    ConflictType = "friend_class"
	ConflictFriendSleeping ConflictType = "friend_sleeping"
)

type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
)

// Kind is the sort of record being checked.
type Kind string

const (
	KindEvent Kind = "event"
	KindShift Kind = "shift"
)

// friendSleepStart is when the friend goes to bed after a night shift.
const friendSleepStart = "07:00"

// Conflict represents one collision of a proposed time range
type Conflict struct {
	Type        ConflictType
	Severity    Severity
	Description string
	ItemID      string // ID of the conflicting record, if any
	TimeRange   string // HH:MM - HH:MM of the conflicting item
}

// ConflictRequest is a proposed time range on one date.
type ConflictRequest struct {
	Date      string
	StartTime string
	EndTime   string
	Kind      Kind
	// ExcludeID skips the record being edited.
	ExcludeID string
}

// DaySnapshot holds the records the checker compares against. Records for
// other dates are ignored, so callers may pass wider ranges.
type DaySnapshot struct {
	Shifts         []models.WorkShift
	Events         []models.ScheduleEvent
	FriendSchedule []models.FriendScheduleEntry
	NightShifts    []models.FriendNightShift
}

// ValidationResult contains all detected conflicts
type ValidationResult struct {
	Conflicts []Conflict
}

// HasConflicts returns true if there are any conflicts
func (vr *ValidationResult) HasConflicts() bool {
	return len(vr.Conflicts) > 0
}

// HasErrors reports whether any conflict should block the save.
func (vr *ValidationResult) HasErrors() bool {
	for _, c := range vr.Conflicts {
		if c.Severity == SeverityError {
			return true
		}
	}
	return false
}

// FormatReport returns a human-readable report of all conflicts
func (vr *ValidationResult) FormatReport() string {
	if !vr.HasConflicts() {
		return "No conflicts detected."
	}

	report := "Conflicts detected:\n"
	for _, conflict := range vr.Conflicts {
		report += fmt.Sprintf("- [%s] %s\n", conflict.Severity, conflict.Description)
	}
	return report
}

// Validator checks proposed times and sanitizes store input.
type Validator struct {
	structs structValidator
}

// New creates a new Validator
func New() *Validator {
	return &Validator{structs: newStructValidator()}
}

// ValidateRequest reports a malformed request before it is checked.
func (v *Validator) ValidateRequest(req ConflictRequest) error {
	if _, err := time.Parse(constants.DateFormat, req.Date); err != nil {
		return fmt.Errorf("invalid date %q: %w", req.Date, err)
	}
	if req.Kind != KindEvent && req.Kind != KindShift {
		return fmt.Errorf("invalid kind %q, expected event or shift", req.Kind)
	}
	return validInterval(req.StartTime, req.EndTime)
}

// CheckConflicts compares req against the same-day records in day.
// Overlaps use half-open intervals, so touching ranges never conflict.
// A request with unparsable times yields no conflicts; see ValidateRequest.
func (v *Validator) CheckConflicts(req ConflictRequest, day DaySnapshot) []Conflict {
	conflicts := []Conflict{}

	slot, err := interval.FromClock(req.StartTime, req.EndTime)
	if err != nil {
		return conflicts
	}
	date, err := time.Parse(constants.DateFormat, req.Date)
	if err != nil {
		return conflicts
	}

	for _, sh := range day.Shifts {
		if sh.Date != req.Date || (req.ExcludeID != "" && sh.ID == req.ExcludeID) {
			continue
		}
		if overlapsClock(slot, sh.StartTime, sh.EndTime) {
			tr := timeRange(sh.StartTime, sh.EndTime)
			conflicts = append(conflicts, Conflict{
				Type:        ConflictShift,
				Severity:    SeverityError,
				Description: fmt.Sprintf("Overlaps a work shift (%s)", tr),
				ItemID:      sh.ID,
				TimeRange:   tr,
			})
		}
	}

	for _, ev := range day.Events {
		if ev.Date != req.Date || (req.ExcludeID != "" && ev.ID == req.ExcludeID) {
			continue
		}
		if overlapsClock(slot, ev.StartTime, ev.EndTime) {
			tr := timeRange(ev.StartTime, ev.EndTime)
			conflicts = append(conflicts, Conflict{
				Type:        ConflictEvent,
				Severity:    SeverityWarning,
				Description: fmt.Sprintf("Overlaps %q (%s)", ev.DisplayName(), tr),
				ItemID:      ev.ID,
				TimeRange:   tr,
			})
		}
	}

	if req.Kind != KindEvent {
		return conflicts
	}

	weekday := models.FriendWeekday(date.Weekday())
	for _, entry := range day.FriendSchedule {
		if entry.DayOfWeek != weekday || !entry.IsClass() {
			continue
		}
		if overlapsClock(slot, entry.StartTime, entry.EndTime) {
			tr := timeRange(entry.StartTime, entry.EndTime)
			conflicts = append(conflicts, Conflict{
				Type:        ConflictFriendClass,
				Severity:    SeverityWarning,
				Description: fmt.Sprintf("Friend has class %q (%s)", entry.Label, tr),
				ItemID:      entry.ID,
				TimeRange:   tr,
			})
		}
	}

	prev := date.AddDate(0, 0, -1).Format(constants.DateFormat)
	for _, ns := range day.NightShifts {
		if ns.Date != prev {
			continue
		}
		wake := ns.WakeTime()
		if overlapsClock(slot, friendSleepStart, wake) {
			tr := timeRange(friendSleepStart, wake)
			conflicts = append(conflicts, Conflict{
				Type:        ConflictFriendSleeping,
				Severity:    SeverityWarning,
				Description: fmt.Sprintf("Friend is asleep after a night shift (%s)", tr),
				ItemID:      ns.ID,
				TimeRange:   tr,
			})
		}
		break
	}

	return conflicts
}

// Check wraps CheckConflicts in a ValidationResult.
func (v *Validator) Check(req ConflictRequest, day DaySnapshot) ValidationResult {
	return ValidationResult{Conflicts: v.CheckConflicts(req, day)}
}

func overlapsClock(slot interval.Interval, start, end string) bool {
	other, err := interval.FromClock(start, end)
	if err != nil {
		return false
	}
	return interval.Overlaps(slot, other)
}

// timeRange renders stored times as HH:MM - HH:MM, dropping any seconds.
func timeRange(start, end string) string {
	return clip(start) + " - " + clip(end)
}

func clip(clock string) string {
	if len(clock) > 5 {
		return clock[:5]
	}
	return clock
}

func validInterval(start, end string) error {
	iv, err := interval.FromClock(start, end)
	if err != nil {
		return err
	}
	if iv.End <= iv.Start {
		return fmt.Errorf("end time %s must be after start time %s", end, start)
	}
	return nil
}
