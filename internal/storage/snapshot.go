package storage

import (
	"fmt"
	"time"

	"github.com/julianstephens/liftshift/internal/constants"
	"github.com/julianstephens/liftshift/internal/models"
	"github.com/julianstephens/liftshift/internal/scheduler"
	"github.com/julianstephens/liftshift/internal/utils"
	"github.com/julianstephens/liftshift/internal/validation"
)

// LoadSnapshot fetches the engine inputs for the week starting at weekStart:
// the friend timetable, the week's shifts and events, night shifts from the
// day before the week, and every shift of the week's month.
func LoadSnapshot(p Provider, weekStart time.Time) (scheduler.Snapshot, error) {
	weekStart = utils.StartOfDay(weekStart)
	from := utils.FormatDate(weekStart)
	to := utils.FormatDate(weekStart.AddDate(0, 0, constants.DaysPerWeek-1))

	settings, err := p.GetSettings()
	if err != nil {
		return scheduler.Snapshot{}, fmt.Errorf("loading settings: %w", err)
	}

	friend, err := p.GetFriendSchedule()
	if err != nil {
		return scheduler.Snapshot{}, fmt.Errorf("loading friend schedule: %w", err)
	}

	shifts, err := p.GetShiftsInRange(from, to)
	if err != nil {
		return scheduler.Snapshot{}, fmt.Errorf("loading shifts: %w", err)
	}

	events, err := p.GetEventsInRange(from, to)
	if err != nil {
		return scheduler.Snapshot{}, fmt.Errorf("loading events: %w", err)
	}

	nights, err := p.GetNightShiftsInRange(utils.FormatDate(weekStart.AddDate(0, 0, -1)), to)
	if err != nil {
		return scheduler.Snapshot{}, fmt.Errorf("loading night shifts: %w", err)
	}

	month, err := p.GetShiftsInRange(utils.FormatDate(utils.MonthStart(weekStart)), utils.FormatDate(utils.MonthEnd(weekStart)))
	if err != nil {
		return scheduler.Snapshot{}, fmt.Errorf("loading month shifts: %w", err)
	}

	return scheduler.Snapshot{
		Shifts:         shifts,
		Events:         events,
		FriendSchedule: friend,
		NightShifts:    nights,
		MonthShifts:    month,
		Quota:          settings.Quota(),
	}, nil
}

// LoadDay fetches the same-day records the conflict checker needs, plus the
// previous night's shift.
func LoadDay(p Provider, date time.Time) (validation.DaySnapshot, error) {
	date = utils.StartOfDay(date)
	day := utils.FormatDate(date)

	shifts, err := p.GetShiftsInRange(day, day)
	if err != nil {
		return validation.DaySnapshot{}, fmt.Errorf("loading shifts: %w", err)
	}

	events, err := p.GetEventsInRange(day, day)
	if err != nil {
		return validation.DaySnapshot{}, fmt.Errorf("loading events: %w", err)
	}

	friend, err := p.GetFriendSchedule()
	if err != nil {
		return validation.DaySnapshot{}, fmt.Errorf("loading friend schedule: %w", err)
	}

	nights, err := p.GetNightShiftsInRange(utils.FormatDate(date.AddDate(0, 0, -1)), day)
	if err != nil {
		return validation.DaySnapshot{}, fmt.Errorf("loading night shifts: %w", err)
	}

	return validation.DaySnapshot{
		Shifts:         shifts,
		Events:         events,
		FriendSchedule: friend,
		NightShifts:    nights,
	}, nil
}

// MonthShifts returns every shift of the month containing t.
func MonthShifts(p Provider, t time.Time) ([]models.WorkShift, error) {
	return p.GetShiftsInRange(utils.FormatDate(utils.MonthStart(t)), utils.FormatDate(utils.MonthEnd(t)))
}
