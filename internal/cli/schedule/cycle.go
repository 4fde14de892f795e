package schedule

import (
	"fmt"
	"strconv"

	"github.com/julianstephens/liftshift/internal/cli"
	"github.com/julianstephens/liftshift/internal/cycle"
	"github.com/julianstephens/liftshift/internal/models"
	"github.com/julianstephens/liftshift/internal/utils"
)

type CycleCmd struct {
	Show  CycleShowCmd  `cmd:"" help:"Show the cycle position of one date."`
	Range CycleRangeCmd `cmd:"" help:"Show the cycle positions of consecutive days."`
}

type CycleShowCmd struct {
	Date string `arg:"" optional:"" help:"Date to look up (YYYY-MM-DD or today)." default:"today"`
}

func (c *CycleShowCmd) Run(ctx *cli.Context) error {
	start, err := ctx.RequireCycleStart()
	if err != nil {
		return err
	}
	date, err := ctx.ResolveDate(c.Date)
	if err != nil {
		return err
	}

	day := cycle.DayFor(start, date)
	fmt.Println(cli.TitleStyle.Render(fmt.Sprintf("%s %s: %s", date.Weekday(), utils.FormatDate(date), day.Label())))
	fmt.Println(cli.MutedStyle.Render(DescribeCycleDay(day)))
	return nil
}

// DescribeCycleDay renders the position details, e.g. "week 3/10, day 2 of 40".
func DescribeCycleDay(d models.CycleDay) string {
	dayInCycle := (d.WeekNumber-1)*cycle.PatternLength + d.DayIndex + 1
	return fmt.Sprintf("week %d/%d, day %d of %d", d.WeekNumber, cycle.Weeks, dayInCycle, cycle.Length)
}

type CycleRangeCmd struct {
	From string `help:"First date (YYYY-MM-DD or today)." default:"today"`
	Days int    `short:"n" help:"Number of days to show." default:"14"`
}

func (c *CycleRangeCmd) Validate() error {
	if c.Days < 1 || c.Days > 366 {
		return fmt.Errorf("--days must be between 1 and 366, got %d", c.Days)
	}
	return nil
}

func (c *CycleRangeCmd) Run(ctx *cli.Context) error {
	start, err := ctx.RequireCycleStart()
	if err != nil {
		return err
	}
	from, err := ctx.ResolveDate(c.From)
	if err != nil {
		return err
	}

	days := cycle.Days(start, from, c.Days)
	rows := make([][]string, 0, len(days))
	for _, d := range days {
		workout := d.Label()
		if !d.IsTrainingDay() {
			workout = cli.MutedStyle.Render(workout)
		}
		rows = append(rows, []string{utils.FormatDate(d.Date), d.Date.Weekday().String(), workout, strconv.Itoa(d.WeekNumber)})
	}
	fmt.Println(cli.Table([]string{"Date", "Day", "Workout", "Week"}, rows))
	return nil
}
