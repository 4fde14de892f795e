package scheduler

import (
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/julianstephens/liftshift/internal/constants"
	"github.com/julianstephens/liftshift/internal/interval"
	"github.com/julianstephens/liftshift/internal/models"
)

const (
	monthlyShortfallHigh = 20.0
	weeklyShortfallHigh  = 4.0
	categoryShortfallMed = 2.0
	friendSleepingReason = "friend is asleep, a good time to work"
)

// hoursContext is the quota progress the shift priorities are derived from.
type hoursContext struct {
	monthly    float64
	byCategory map[models.ShiftType]float64
	weekly     float64
}

func newHoursContext(weekStart time.Time, snap Snapshot) hoursContext {
	ctx := hoursContext{byCategory: make(map[models.ShiftType]float64, len(models.ShiftTypes))}
	for _, sh := range snap.MonthShifts {
		ctx.monthly += sh.DurationHours
		ctx.byCategory[sh.ShiftType] += sh.DurationHours
	}

	from := weekStart.Format(constants.DateFormat)
	to := weekStart.AddDate(0, 0, constants.DaysPerWeek-1).Format(constants.DateFormat)
	for _, sh := range snap.Shifts {
		if sh.Date >= from && sh.Date <= to {
			ctx.weekly += sh.DurationHours
		}
	}
	return ctx
}

// SuggestShifts proposes work shifts in every free window of the week that
// has no shift yet, ranked by how far behind the hour quotas are. Without a
// cycle start the workout slot is not reserved.
func (s *Scheduler) SuggestShifts(weekStart time.Time, cycleStart *time.Time, snap Snapshot) []models.ShiftSuggestion {
	weekStart = time.Date(weekStart.Year(), weekStart.Month(), weekStart.Day(), 0, 0, 0, 0, time.UTC)
	hours := newHoursContext(weekStart, snap)
	quota := snap.quota()

	suggestions := []models.ShiftSuggestion{}
	for i := 0; i < constants.DaysPerWeek; i++ {
		day := snap.Day(weekStart.AddDate(0, 0, i), cycleStart)
		suggestions = append(suggestions, s.suggestShiftsForDay(day, hours, quota)...)
	}

	sort.SliceStable(suggestions, func(i, j int) bool {
		a, b := suggestions[i], suggestions[j]
		if a.Priority.Rank() != b.Priority.Rank() {
			return a.Priority.Rank() < b.Priority.Rank()
		}
		if a.Date != b.Date {
			return a.Date < b.Date
		}
		return a.StartTime < b.StartTime
	})

	if s.opts.MaxShiftResults > 0 && len(suggestions) > s.opts.MaxShiftResults {
		suggestions = suggestions[:s.opts.MaxShiftResults]
	}
	return suggestions
}

func (s *Scheduler) suggestShiftsForDay(d *Day, hours hoursContext, quota models.Quota) []models.ShiftSuggestion {
	if len(d.Shifts) > 0 {
		return nil
	}

	busy := append([]interval.Interval{}, d.Classes()...)
	if d.FriendSlept() {
		busy = append(busy, s.opts.FriendSleepBlock)
	}
	workout, hasWorkout := s.WorkoutSlot(d)
	if hasWorkout {
		busy = append(busy, workout)
	}
	busy = append(busy, d.shiftIntervals()...)
	busy = append(busy, d.eventIntervals(0)...)

	lastClassEnd, hasClasses := d.LastClassEnd()

	var out []models.ShiftSuggestion
	for _, window := range interval.Subtract(s.opts.ShiftWindow, busy, s.opts.MinShiftWindow) {
		category := classifyWindow(d, window)
		duration := math.Min(window.Length(), s.opts.MaxShiftLength)

		priority, reasons := quotaPriority(category, hours, quota)
		tags := []string{}

		if d.FriendSlept() && window.Start <= s.opts.FriendSleepBlock.End {
			priority = models.PriorityHigh
			tags = append(tags, TagFriendSleeping)
			reasons = append(reasons, friendSleepingReason)
		}
		if hasWorkout && window.Start > workout.End {
			tags = append(tags, TagAfterWorkout)
		}
		if hasClasses && window.Start >= lastClassEnd {
			tags = append(tags, TagAfterClasses)
		}

		out = append(out, models.ShiftSuggestion{
			Date:          d.Key(),
			DayName:       d.Name(),
			StartTime:     interval.Clock(window.Start),
			EndTime:       interval.Clock(window.Start + duration),
			DurationHours: math.Round(duration*100) / 100,
			ShiftType:     category,
			Priority:      priority,
			Reason:        joinReasons(reasons),
			Tags:          tags,
		})
	}
	return out
}

func classifyWindow(d *Day, window interval.Interval) models.ShiftType {
	switch {
	case d.IsWeekend():
		return models.ShiftWeekend
	case window.Start < 12:
		return models.ShiftMorning
	default:
		return models.ShiftAfternoon
	}
}

// quotaPriority ranks a window by the most pressing unmet quota.
func quotaPriority(category models.ShiftType, hours hoursContext, quota models.Quota) (models.Priority, []string) {
	monthlyNeeded := quota.MonthlyTarget - hours.monthly
	weeklyNeeded := quota.WeeklyTarget - hours.weekly
	categoryNeeded := quota.CategoryMin - hours.byCategory[category]

	switch {
	case monthlyNeeded > monthlyShortfallHigh:
		return models.PriorityHigh, []string{fmt.Sprintf("monthly target needs %.0fh more", monthlyNeeded)}
	case weeklyNeeded > weeklyShortfallHigh:
		return models.PriorityHigh, []string{fmt.Sprintf("weekly target needs %.0fh more", weeklyNeeded)}
	case categoryNeeded > categoryShortfallMed:
		return models.PriorityMedium, []string{fmt.Sprintf("%s shifts need %.0fh more", category, categoryNeeded)}
	}
	return models.PriorityLow, nil
}
