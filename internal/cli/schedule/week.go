package schedule

import (
	"fmt"
	"slices"
	"sort"
	"strings"
	"time"

	"github.com/julianstephens/liftshift/internal/cli"
	"github.com/julianstephens/liftshift/internal/scheduler"
	"github.com/julianstephens/liftshift/internal/utils"
)

type WeekCmd struct {
	Week string `arg:"" optional:"" help:"Any date in the week to show (YYYY-MM-DD or today)." default:"today"`
}

func (c *WeekCmd) Run(ctx *cli.Context) error {
	weekStart, err := ctx.ResolveWeek(c.Week)
	if err != nil {
		return err
	}
	days, err := LoadWeek(ctx, weekStart)
	if err != nil {
		return err
	}

	fmt.Println(cli.TitleStyle.Render("Week of " + utils.FormatDate(weekStart)))
	fmt.Println(RenderWeek(days))
	return nil
}

// LoadWeek builds the calendar days of the week starting at weekStart. A
// missing cycle leaves the workout column empty.
func LoadWeek(ctx *cli.Context, weekStart time.Time) ([]scheduler.CalendarDay, error) {
	cycleStart, err := ctx.CycleStart()
	if err != nil {
		return nil, err
	}
	snap, err := ctx.Snapshot(weekStart)
	if err != nil {
		return nil, err
	}
	return scheduler.Week(weekStart, cycleStart, snap), nil
}

// RenderWeek renders one row per day with the cycle, shifts, events and friend availability.
func RenderWeek(days []scheduler.CalendarDay) string {
	rows := make([][]string, 0, len(days))
	for _, d := range days {
		workout := ""
		if d.Cycle != nil {
			workout = d.Cycle.Label()
		}
		rows = append(rows, []string{
			d.DayName[:3] + " " + utils.FormatDate(d.Date),
			workout,
			shiftsCell(d),
			eventsCell(d),
			friendCell(d),
		})
	}
	return cli.Table([]string{"Day", "Workout", "Shifts", "Events", "Friend"}, rows)
}

func shiftsCell(d scheduler.CalendarDay) string {
	parts := make([]string, 0, len(d.Shifts))
	for _, sh := range d.Shifts {
		parts = append(parts, fmt.Sprintf("%s-%s %s", sh.StartTime, sh.EndTime, sh.ShiftType))
	}
	return strings.Join(parts, "\n")
}

func eventsCell(d scheduler.CalendarDay) string {
	parts := make([]string, 0, len(d.Events))
	for _, e := range d.Events {
		parts = append(parts, fmt.Sprintf("%s-%s %s", e.StartTime, e.EndTime, e.DisplayName()))
	}
	return strings.Join(parts, "\n")
}

func friendCell(d scheduler.CalendarDay) string {
	var parts []string
	if d.FriendSleeping {
		parts = append(parts, "asleep until "+d.NightShift.WakeTime())
	}
	classes := slices.Clone(d.FriendClasses)
	sort.Slice(classes, func(i, j int) bool { return classes[i].StartTime < classes[j].StartTime })
	for _, c := range classes {
		label := "class"
		if c.Label != "" {
			label = c.Label
		}
		parts = append(parts, fmt.Sprintf("%s-%s %s", c.StartTime, c.EndTime, label))
	}
	if len(parts) == 0 {
		return cli.MutedStyle.Render("free")
	}
	return strings.Join(parts, "\n")
}
