package models

import "time"

// DefaultSleepUntil is assumed when a night shift has no explicit wake-up time.
const DefaultSleepUntil = "14:00"

// FriendScheduleEntry is a weekly recurring commitment of the friend.
// DayOfWeek counts from Monday (0) to Sunday (6).
type FriendScheduleEntry struct {
	ID          string `json:"id" validate:"required"`
	DayOfWeek   int    `json:"day_of_week" validate:"min=0,max=6"`
	StartTime   string `json:"start_time" validate:"required,datetime=15:04"`
	EndTime     string `json:"end_time" validate:"required,datetime=15:04"`
	IsAvailable bool   `json:"is_available"`
	Label       string `json:"label,omitempty"`
}

// IsClass reports whether the entry blocks the friend's time.
func (e FriendScheduleEntry) IsClass() bool {
	return !e.IsAvailable
}

type FriendNightShift struct {
	ID         string `json:"id" validate:"required"`
	Date       string `json:"date" validate:"required,datetime=2006-01-02"`
	StartTime  string `json:"start_time" validate:"required,datetime=15:04"`
	EndTime    string `json:"end_time" validate:"required,datetime=15:04"`
	SleepUntil string `json:"sleep_until,omitempty" validate:"omitempty,datetime=15:04"`
}

// WakeTime returns SleepUntil or the default wake-up time.
func (n FriendNightShift) WakeTime() string {
	if n.SleepUntil == "" {
		return DefaultSleepUntil
	}
	return n.SleepUntil
}

// FriendWeekday converts a Go weekday (Sunday=0) to the Monday-based index
// used by FriendScheduleEntry.
func FriendWeekday(wd time.Weekday) int {
	return (int(wd) + 6) % 7
}
