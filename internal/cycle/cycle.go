// Package cycle maps calendar dates onto the repeating push/pull/legs/rest
// training cycle. Positions are always derived from the cycle start date and
// never stored.
package cycle

import (
	"math"
	"time"

	"github.com/julianstephens/liftshift/internal/models"
)

const (
	// PatternLength is the number of days in one push/pull/legs/rest pattern.
	PatternLength = 4
	// Weeks is the number of numbered patterns in a full cycle.
	Weeks = 10
	// Length is the full cycle length in days.
	Length = PatternLength * Weeks
)

var pattern = [PatternLength]models.WorkoutType{
	models.WorkoutPush,
	models.WorkoutPull,
	models.WorkoutLegs,
	models.WorkoutRest,
}

// DayFor returns the cycle position of target relative to cycleStart.
// Both dates are reduced to their calendar date first, so the time of day
// and the location of either argument never shift the result.
func DayFor(cycleStart, target time.Time) models.CycleDay {
	diffDays := daysBetween(cycleStart, target)
	dayInCycle := ((diffDays % Length) + Length) % Length

	weekNumber := dayInCycle/PatternLength + 1
	dayIndex := dayInCycle % PatternLength

	return models.CycleDay{
		Date:        target,
		WorkoutType: pattern[dayIndex],
		WeekType:    WeekTypeFor(weekNumber),
		WeekNumber:  weekNumber,
		DayIndex:    dayIndex,
	}
}

// Days returns the cycle positions of n consecutive days beginning at from.
func Days(cycleStart, from time.Time, n int) []models.CycleDay {
	days := make([]models.CycleDay, 0, n)
	for i := 0; i < n; i++ {
		days = append(days, DayFor(cycleStart, from.AddDate(0, 0, i)))
	}
	return days
}

// WeekTypeFor returns A for odd week numbers and B for even ones.
func WeekTypeFor(weekNumber int) models.WeekType {
	if weekNumber%2 == 1 {
		return models.WeekA
	}
	return models.WeekB
}

func daysBetween(from, to time.Time) int {
	a := time.Date(from.Year(), from.Month(), from.Day(), 0, 0, 0, 0, time.UTC)
	b := time.Date(to.Year(), to.Month(), to.Day(), 0, 0, 0, 0, time.UTC)
	return int(math.Round(b.Sub(a).Hours() / 24))
}
