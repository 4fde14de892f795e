package scheduler

import (
	"time"

	"github.com/julianstephens/liftshift/internal/constants"
	"github.com/julianstephens/liftshift/internal/models"
)

// CalendarDay is one row of the week view.
type CalendarDay struct {
	Date           time.Time
	DayName        string
	Cycle          *models.CycleDay
	Shifts         []models.WorkShift
	Events         []models.ScheduleEvent
	FriendClasses  []models.FriendScheduleEntry
	NightShift     *models.FriendNightShift
	FriendSleeping bool
}

// Week lays out the seven days starting at weekStart.
func Week(weekStart time.Time, cycleStart *time.Time, snap Snapshot) []CalendarDay {
	days := make([]CalendarDay, 0, constants.DaysPerWeek)
	for i := 0; i < constants.DaysPerWeek; i++ {
		d := snap.Day(weekStart.AddDate(0, 0, i), cycleStart)
		days = append(days, CalendarDay{
			Date:           d.Date,
			DayName:        d.Name(),
			Cycle:          d.Cycle,
			Shifts:         d.Shifts,
			Events:         d.Events,
			FriendClasses:  d.FriendClasses,
			NightShift:     d.NightShift,
			FriendSleeping: d.FriendSlept(),
		})
	}
	return days
}
