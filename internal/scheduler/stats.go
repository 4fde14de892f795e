package scheduler

import (
	"math"
	"time"

	"github.com/julianstephens/liftshift/internal/constants"
	"github.com/julianstephens/liftshift/internal/models"
	"github.com/julianstephens/liftshift/internal/utils"
)

// WeekHours is the logged time of one Monday-based week of a month.
type WeekHours struct {
	Label string
	Start time.Time
	Hours float64
}

// MonthStats summarizes the logged shifts of one month against the quota.
type MonthStats struct {
	Month      time.Time
	TotalHours float64
	Target     float64
	Progress   float64 // percent of Target, capped at 100
	Remaining  float64
	ByType     map[models.ShiftType]float64
	Weeks      []WeekHours
	ShiftCount int
	Quota      models.Quota
}

// MonthlyStats aggregates the shifts falling into month.
func MonthlyStats(month time.Time, shifts []models.WorkShift, quota models.Quota) MonthStats {
	start := utils.MonthStart(month)
	end := utils.MonthEnd(month)
	from, to := utils.FormatDate(start), utils.FormatDate(end)

	stats := MonthStats{
		Month:  start,
		Target: quota.MonthlyTarget,
		ByType: make(map[models.ShiftType]float64, len(models.ShiftTypes)),
		Quota:  quota,
	}
	for _, t := range models.ShiftTypes {
		stats.ByType[t] = 0
	}

	var inMonth []models.WorkShift
	for _, sh := range shifts {
		if sh.Date < from || sh.Date > to {
			continue
		}
		inMonth = append(inMonth, sh)
		stats.TotalHours += sh.DurationHours
		stats.ByType[sh.ShiftType] += sh.DurationHours
	}
	stats.ShiftCount = len(inMonth)

	if stats.Target > 0 {
		stats.Progress = math.Min(stats.TotalHours/stats.Target*100, 100)
	}
	stats.Remaining = math.Max(stats.Target-stats.TotalHours, 0)

	for ws := utils.WeekStart(start); !ws.After(end); ws = ws.AddDate(0, 0, constants.DaysPerWeek) {
		we := ws.AddDate(0, 0, constants.DaysPerWeek-1)
		wFrom, wTo := utils.FormatDate(ws), utils.FormatDate(we)
		week := WeekHours{Label: ws.Format("01.02") + " - " + we.Format("01.02"), Start: ws}
		for _, sh := range inMonth {
			if sh.Date >= wFrom && sh.Date <= wTo {
				week.Hours += sh.DurationHours
			}
		}
		stats.Weeks = append(stats.Weeks, week)
	}
	return stats
}

type ForecastStatus string

const (
	StatusOnTrack        ForecastStatus = "on_track"
	StatusSlightlyBehind ForecastStatus = "slightly_behind"
	StatusBehind         ForecastStatus = "behind"
	StatusMet            ForecastStatus = "met"
	StatusMissed         ForecastStatus = "missed"
	StatusUpcoming       ForecastStatus = "upcoming"
)

// slightlyBehindPercent is the forecast share of the target still counted as reachable.
const slightlyBehindPercent = 80

// CategoryProgress is one shift category against its monthly minimum.
type CategoryProgress struct {
	Type    models.ShiftType
	Hours   float64
	Minimum float64
	Percent int
	Met     bool
}

// MonthForecast projects the month's total from the pace so far.
type MonthForecast struct {
	CurrentMonth    bool
	DaysInMonth     int
	DaysPassed      int
	DaysRemaining   int
	DailyRate       float64
	ForecastTotal   float64
	ForecastPercent int
	HoursNeeded     float64
	DailyNeeded     float64
	Status          ForecastStatus
	Categories      []CategoryProgress
}

// Forecast extrapolates stats to the end of its month as seen from today.
func Forecast(stats MonthStats, today time.Time) MonthForecast {
	today = utils.StartOfDay(today)
	monthStart := utils.MonthStart(stats.Month)
	daysInMonth := utils.MonthEnd(stats.Month).Day()

	f := MonthForecast{
		CurrentMonth: monthStart.Equal(utils.MonthStart(today)),
		DaysInMonth:  daysInMonth,
		HoursNeeded:  round1(math.Max(0, stats.Target-stats.TotalHours)),
	}

	switch {
	case f.CurrentMonth:
		f.DaysPassed = int(today.Sub(monthStart).Hours()/24) + 1
		f.DaysRemaining = max(0, daysInMonth-f.DaysPassed)
		f.DailyRate = stats.TotalHours / float64(f.DaysPassed)
		f.ForecastTotal = round1(f.DailyRate * float64(daysInMonth))
	case monthStart.After(today):
		f.DaysRemaining = daysInMonth
		f.ForecastTotal = stats.TotalHours
	default:
		f.DaysPassed = daysInMonth
		f.DailyRate = stats.TotalHours / float64(daysInMonth)
		f.ForecastTotal = stats.TotalHours
	}

	if stats.Target > 0 {
		f.ForecastPercent = int(math.Round(f.ForecastTotal / stats.Target * 100))
	}
	if f.DaysRemaining > 0 {
		f.DailyNeeded = round1(f.HoursNeeded / float64(f.DaysRemaining))
	}

	switch {
	case monthStart.After(today):
		f.Status = StatusUpcoming
	case !f.CurrentMonth && stats.TotalHours >= stats.Target:
		f.Status = StatusMet
	case !f.CurrentMonth:
		f.Status = StatusMissed
	case f.ForecastTotal >= stats.Target:
		f.Status = StatusOnTrack
	case f.ForecastPercent >= slightlyBehindPercent:
		f.Status = StatusSlightlyBehind
	default:
		f.Status = StatusBehind
	}

	minimum := stats.Quota.CategoryMin
	for _, t := range models.ShiftTypes {
		cp := CategoryProgress{Type: t, Hours: stats.ByType[t], Minimum: minimum, Met: stats.ByType[t] >= minimum}
		if minimum > 0 {
			cp.Percent = int(math.Min(math.Round(cp.Hours/minimum*100), 100))
		}
		f.Categories = append(f.Categories, cp)
	}
	return f
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
