package scheduler

import (
	"math"
	"time"

	"github.com/julianstephens/liftshift/internal/constants"
	"github.com/julianstephens/liftshift/internal/cycle"
	"github.com/julianstephens/liftshift/internal/interval"
	"github.com/julianstephens/liftshift/internal/models"
)

// Snapshot is the read-only input for one target week.
type Snapshot struct {
	// Shifts and Events cover at least the target week.
	Shifts []models.WorkShift
	Events []models.ScheduleEvent
	// FriendSchedule is the friend's full weekly timetable.
	FriendSchedule []models.FriendScheduleEntry
	// NightShifts must include the day before the week starts.
	NightShifts []models.FriendNightShift
	// MonthShifts are the shifts of the month the week starts in.
	MonthShifts []models.WorkShift
	// Quota falls back to models.DefaultQuota when zero.
	Quota models.Quota
}

func (s Snapshot) quota() models.Quota {
	if s.Quota == (models.Quota{}) {
		return models.DefaultQuota()
	}
	return s.Quota
}

// Day is the per-date view both generators work on.
type Day struct {
	Date time.Time
	// Cycle is nil when no cycle start is configured.
	Cycle         *models.CycleDay
	Shifts        []models.WorkShift
	Events        []models.ScheduleEvent
	FriendClasses []models.FriendScheduleEntry
	// NightShift is the friend's night shift of the previous date, if any.
	NightShift *models.FriendNightShift

	classes []interval.Interval
}

// Day collects everything the snapshot holds about date.
func (s Snapshot) Day(date time.Time, cycleStart *time.Time) *Day {
	date = time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC)
	key := date.Format(constants.DateFormat)
	prev := date.AddDate(0, 0, -1).Format(constants.DateFormat)
	weekday := models.FriendWeekday(date.Weekday())

	d := &Day{Date: date}
	if cycleStart != nil {
		cd := cycle.DayFor(*cycleStart, date)
		d.Cycle = &cd
	}
	for _, sh := range s.Shifts {
		if sh.Date == key {
			d.Shifts = append(d.Shifts, sh)
		}
	}
	for _, ev := range s.Events {
		if ev.Date == key {
			d.Events = append(d.Events, ev)
		}
	}
	for _, entry := range s.FriendSchedule {
		if entry.DayOfWeek != weekday || !entry.IsClass() {
			continue
		}
		iv, err := interval.FromClock(entry.StartTime, entry.EndTime)
		if err != nil {
			continue
		}
		d.FriendClasses = append(d.FriendClasses, entry)
		d.classes = append(d.classes, iv)
	}
	for i := range s.NightShifts {
		if s.NightShifts[i].Date == prev {
			ns := s.NightShifts[i]
			d.NightShift = &ns
			break
		}
	}
	return d
}

// Key returns the date as YYYY-MM-DD.
func (d *Day) Key() string {
	return d.Date.Format(constants.DateFormat)
}

func (d *Day) Name() string {
	return d.Date.Weekday().String()
}

// FriendSlept reports whether the friend worked a night shift the previous date.
func (d *Day) FriendSlept() bool {
	return d.NightShift != nil
}

func (d *Day) HasClasses() bool {
	return len(d.classes) > 0
}

// Classes returns the friend's blocking classes as intervals.
func (d *Day) Classes() []interval.Interval {
	return d.classes
}

// LastClassEnd returns the latest end of the friend's classes.
func (d *Day) LastClassEnd() (float64, bool) {
	if len(d.classes) == 0 {
		return 0, false
	}
	end := math.Inf(-1)
	for _, c := range d.classes {
		end = math.Max(end, c.End)
	}
	return end, true
}

// FirstClassStart returns the earliest start of the friend's classes.
func (d *Day) FirstClassStart() (float64, bool) {
	if len(d.classes) == 0 {
		return 0, false
	}
	start := math.Inf(1)
	for _, c := range d.classes {
		start = math.Min(start, c.Start)
	}
	return start, true
}

// HasWorkoutEvent reports whether a workout is already on the calendar.
func (d *Day) HasWorkoutEvent() bool {
	for _, ev := range d.Events {
		if ev.Type == models.EventWorkout {
			return true
		}
	}
	return false
}

// IsTrainingDay reports whether the cycle schedules a workout on this date.
func (d *Day) IsTrainingDay() bool {
	return d.Cycle != nil && d.Cycle.IsTrainingDay()
}

func (d *Day) IsWeekend() bool {
	wd := d.Date.Weekday()
	return wd == time.Saturday || wd == time.Sunday
}

func (d *Day) shiftIntervals() []interval.Interval {
	out := make([]interval.Interval, 0, len(d.Shifts))
	for _, sh := range d.Shifts {
		if iv, err := interval.FromClock(sh.StartTime, sh.EndTime); err == nil {
			out = append(out, iv)
		}
	}
	return out
}

func (d *Day) eventIntervals(buffer float64) []interval.Interval {
	out := make([]interval.Interval, 0, len(d.Events))
	for _, ev := range d.Events {
		if iv, err := interval.FromClock(ev.StartTime, ev.EndTime); err == nil {
			out = append(out, iv.Expand(buffer))
		}
	}
	return out
}
