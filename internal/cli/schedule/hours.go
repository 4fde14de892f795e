package schedule

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/liftshift/internal/cli"
	"github.com/julianstephens/liftshift/internal/constants"
	"github.com/julianstephens/liftshift/internal/models"
	"github.com/julianstephens/liftshift/internal/scheduler"
	"github.com/julianstephens/liftshift/internal/storage"
)

type HoursCmd struct {
	Month string `arg:"" optional:"" help:"Month to summarize (YYYY-MM). Defaults to the current month."`
}

func (c *HoursCmd) Run(ctx *cli.Context) error {
	month, err := resolveMonth(ctx, c.Month)
	if err != nil {
		return err
	}
	stats, forecast, err := LoadHours(ctx, month)
	if err != nil {
		return err
	}
	fmt.Println(RenderHours(stats, forecast))
	return nil
}

func resolveMonth(ctx *cli.Context, month string) (time.Time, error) {
	if month == "" {
		return ctx.ResolveDate("today")
	}
	t, err := time.Parse(constants.MonthFormat, month)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid month %q, use YYYY-MM: %w", month, err)
	}
	return t, nil
}

// LoadHours computes the monthly statistics and forecast for the month containing month.
func LoadHours(ctx *cli.Context, month time.Time) (scheduler.MonthStats, scheduler.MonthForecast, error) {
	settings, err := ctx.Store.GetSettings()
	if err != nil {
		return scheduler.MonthStats{}, scheduler.MonthForecast{}, fmt.Errorf("failed to get settings: %w", err)
	}
	quota := settings.Quota()
	if quota == (models.Quota{}) {
		quota = models.DefaultQuota()
	}

	shifts, err := storage.MonthShifts(ctx.Store, month)
	if err != nil {
		return scheduler.MonthStats{}, scheduler.MonthForecast{}, err
	}
	today, err := ctx.ResolveDate("today")
	if err != nil {
		return scheduler.MonthStats{}, scheduler.MonthForecast{}, err
	}

	stats := scheduler.MonthlyStats(month, shifts, quota)
	return stats, scheduler.Forecast(stats, today), nil
}

var statusLabels = map[scheduler.ForecastStatus]string{
	scheduler.StatusOnTrack:        "on track",
	scheduler.StatusSlightlyBehind: "slightly behind",
	scheduler.StatusBehind:         "behind",
	scheduler.StatusMet:            "target met",
	scheduler.StatusMissed:         "target missed",
	scheduler.StatusUpcoming:       "upcoming",
}

func statusStyle(s scheduler.ForecastStatus) lipgloss.Style {
	switch s {
	case scheduler.StatusOnTrack, scheduler.StatusMet:
		return cli.SuccessStyle
	case scheduler.StatusSlightlyBehind:
		return cli.WarningStyle
	case scheduler.StatusUpcoming:
		return cli.MutedStyle
	default:
		return cli.ErrorStyle
	}
}

// RenderHours renders the month summary, weekly breakdown, categories and forecast.
func RenderHours(stats scheduler.MonthStats, f scheduler.MonthForecast) string {
	var b strings.Builder

	bar := progress.New(progress.WithDefaultGradient(), progress.WithWidth(40))
	fmt.Fprintln(&b, cli.TitleStyle.Render(stats.Month.Format("January 2006")))
	fmt.Fprintf(&b, "%s %s of %s (%.0f%%), %d shift(s)\n",
		bar.ViewAs(stats.Progress/100), cli.FormatHours(stats.TotalHours), cli.FormatHours(stats.Target), stats.Progress, stats.ShiftCount)
	if stats.Remaining > 0 {
		fmt.Fprintf(&b, "Remaining: %s\n", cli.FormatHours(stats.Remaining))
	}
	fmt.Fprintln(&b)

	weeks := make([][]string, 0, len(stats.Weeks))
	for _, w := range stats.Weeks {
		weeks = append(weeks, []string{w.Label, cli.FormatHours(w.Hours), cli.FormatHours(stats.Quota.WeeklyTarget)})
	}
	fmt.Fprintln(&b, cli.Table([]string{"Week", "Hours", "Target"}, weeks))

	cats := make([][]string, 0, len(f.Categories))
	for _, c := range f.Categories {
		met := cli.ErrorStyle.Render("✗")
		if c.Met {
			met = cli.SuccessStyle.Render("✓")
		}
		cats = append(cats, []string{string(c.Type), cli.FormatHours(c.Hours), cli.FormatHours(c.Minimum), strconv.Itoa(c.Percent) + "%", met})
	}
	fmt.Fprintln(&b, cli.Table([]string{"Category", "Hours", "Minimum", "Progress", "Met"}, cats))

	fmt.Fprintln(&b, "Status: "+statusStyle(f.Status).Render(statusLabels[f.Status]))
	if f.CurrentMonth {
		fmt.Fprintf(&b, "Day %d of %d, %.1fh per day so far\n", f.DaysPassed, f.DaysInMonth, f.DailyRate)
		fmt.Fprintf(&b, "Forecast: %s (%d%% of target)\n", cli.FormatHours(f.ForecastTotal), f.ForecastPercent)
		if f.HoursNeeded > 0 && f.DaysRemaining > 0 {
			fmt.Fprintf(&b, "Needed: %s over %d day(s), %s per day\n", cli.FormatHours(f.HoursNeeded), f.DaysRemaining, cli.FormatHours(f.DailyNeeded))
		}
	}
	return strings.TrimRight(b.String(), "\n")
}
