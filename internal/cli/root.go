package cli

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	apperrors "github.com/julianstephens/liftshift/internal/errors"
	"github.com/julianstephens/liftshift/internal/models"
	"github.com/julianstephens/liftshift/internal/scheduler"
	"github.com/julianstephens/liftshift/internal/storage"
	"github.com/julianstephens/liftshift/internal/utils"
	"github.com/julianstephens/liftshift/internal/validation"
)

type Context struct {
	Store     storage.Provider
	Scheduler *scheduler.Scheduler
	Validator *validation.Validator
}

// NewContext wires the engine and validator around store.
func NewContext(store storage.Provider) *Context {
	return &Context{
		Store:     store,
		Scheduler: scheduler.New(),
		Validator: validation.New(),
	}
}

// NewID returns a fresh record id.
func NewID() string {
	return uuid.New().String()
}

// ResolveDate parses "today", "tomorrow", "yesterday" or YYYY-MM-DD in the configured timezone.
func (c *Context) ResolveDate(input string) (time.Time, error) {
	settings, err := c.Store.GetSettings()
	if err != nil {
		return time.Time{}, fmt.Errorf("failed to get settings: %w", err)
	}
	return utils.ResolveDate(input, settings.Timezone)
}

// ResolveWeek returns the Monday of the week containing input.
func (c *Context) ResolveWeek(input string) (time.Time, error) {
	d, err := c.ResolveDate(input)
	if err != nil {
		return time.Time{}, err
	}
	return utils.WeekStart(d), nil
}

// CycleStart returns the configured cycle anchor, or nil when unset.
func (c *Context) CycleStart() (*time.Time, error) {
	settings, err := c.Store.GetSettings()
	if err != nil {
		return nil, fmt.Errorf("failed to get settings: %w", err)
	}
	return settings.CycleStart()
}

// RequireCycleStart is CycleStart for commands that cannot work without a cycle.
func (c *Context) RequireCycleStart() (time.Time, error) {
	start, err := c.CycleStart()
	if err != nil {
		return time.Time{}, err
	}
	if start == nil {
		return time.Time{}, apperrors.ErrCycleNotConfigured
	}
	return *start, nil
}

// Snapshot loads and sanitizes the engine input for one week.
func (c *Context) Snapshot(weekStart time.Time) (scheduler.Snapshot, error) {
	snap, err := storage.LoadSnapshot(c.Store, weekStart)
	if err != nil {
		return scheduler.Snapshot{}, err
	}
	snap, _ = c.Validator.Sanitize(snap)
	return snap, nil
}

// Day loads and sanitizes the conflict-check input for one date.
func (c *Context) Day(date time.Time) (validation.DaySnapshot, error) {
	day, err := storage.LoadDay(c.Store, date)
	if err != nil {
		return validation.DaySnapshot{}, err
	}
	day, _ = c.Validator.SanitizeDay(day)
	return day, nil
}

var weekdayNames = map[string]int{
	"mon": 0, "monday": 0,
	"tue": 1, "tuesday": 1,
	"wed": 2, "wednesday": 2,
	"thu": 3, "thursday": 3,
	"fri": 4, "friday": 4,
	"sat": 5, "saturday": 5,
	"sun": 6, "sunday": 6,
}

// ParseWeekday parses a weekday name or a Monday-based index (0=Monday, 6=Sunday).
func ParseWeekday(s string) (int, error) {
	s = strings.TrimSpace(strings.ToLower(s))
	if wd, ok := weekdayNames[s]; ok {
		return wd, nil
	}
	num, err := strconv.Atoi(s)
	if err == nil && num >= 0 && num <= 6 {
		return num, nil
	}
	return 0, fmt.Errorf("invalid weekday: %s", s)
}

// WeekdayName is the inverse of ParseWeekday for display.
func WeekdayName(day int) string {
	return time.Weekday((day + 1) % 7).String()
}

// FormatTags joins suggestion tags for one-line display.
func FormatTags(tags []string) string {
	if len(tags) == 0 {
		return ""
	}
	return "[" + strings.Join(tags, ", ") + "]"
}

// FormatHours renders a duration like 7.5h or 8h.
func FormatHours(h float64) string {
	return strconv.FormatFloat(h, 'f', -1, 64) + "h"
}

// ShiftFromSuggestion converts an accepted suggestion into a storable shift.
func ShiftFromSuggestion(s models.ShiftSuggestion) models.WorkShift {
	return models.WorkShift{
		ID:            NewID(),
		Date:          s.Date,
		StartTime:     s.StartTime,
		EndTime:       s.EndTime,
		DurationHours: s.DurationHours,
		ShiftType:     s.ShiftType,
	}
}

// EventFromWorkout converts an accepted workout suggestion into a workout event.
func EventFromWorkout(s models.WorkoutSuggestion) models.ScheduleEvent {
	return models.ScheduleEvent{
		ID:        NewID(),
		Type:      models.EventWorkout,
		Date:      s.Date,
		StartTime: s.StartTime,
		EndTime:   s.EndTime,
		Title:     fmt.Sprintf("%s %s", s.WorkoutType, s.WeekType),
	}
}

// ResolveRange returns inclusive bounds from --from/--to, or the week containing week.
func (c *Context) ResolveRange(week, from, to string) (time.Time, time.Time, error) {
	if from == "" && to == "" {
		start, err := c.ResolveWeek(week)
		if err != nil {
			return time.Time{}, time.Time{}, err
		}
		return start, start.AddDate(0, 0, 6), nil
	}
	if from == "" || to == "" {
		return time.Time{}, time.Time{}, fmt.Errorf("--from and --to must be given together")
	}
	start, err := c.ResolveDate(from)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	end, err := c.ResolveDate(to)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	if end.Before(start) {
		return time.Time{}, time.Time{}, fmt.Errorf("--to %s is before --from %s", utils.FormatDate(end), utils.FormatDate(start))
	}
	return start, end, nil
}
