package friend

import (
	"errors"
	"fmt"
	"sort"

	"github.com/julianstephens/liftshift/internal/cli"
	"github.com/julianstephens/liftshift/internal/models"
	"github.com/julianstephens/liftshift/internal/storage"
	"github.com/julianstephens/liftshift/internal/utils"
)

type FriendCmd struct {
	Class ClassCmd `cmd:"" help:"Manage the friend's weekly timetable."`
	Night NightCmd `cmd:"" help:"Manage the friend's night shifts."`
}

type ClassCmd struct {
	Add    ClassAddCmd    `cmd:"" help:"Add a recurring weekly entry."`
	List   ClassListCmd   `cmd:"" help:"List the weekly timetable." default:"1"`
	Delete ClassDeleteCmd `cmd:"" help:"Delete a timetable entry."`
}

type ClassAddCmd struct {
	Day       string `arg:"" help:"Weekday (monday..sunday, mon..sun, or 0=Monday..6=Sunday)."`
	Start     string `short:"s" help:"Start time (HH:MM)." required:""`
	End       string `short:"e" help:"End time (HH:MM)." required:""`
	Label     string `short:"l" help:"Label, e.g. the course name."`
	Available bool   `help:"Mark the entry as free time instead of a class."`
}

func (c *ClassAddCmd) Run(ctx *cli.Context) error {
	day, err := cli.ParseWeekday(c.Day)
	if err != nil {
		return err
	}

	entry := models.FriendScheduleEntry{
		ID:          cli.NewID(),
		DayOfWeek:   day,
		StartTime:   c.Start,
		EndTime:     c.End,
		IsAvailable: c.Available,
		Label:       c.Label,
	}
	if err := ctx.Validator.ValidateFriendEntry(entry); err != nil {
		return fmt.Errorf("invalid timetable entry: %w", err)
	}
	if err := ctx.Store.AddFriendEntry(entry); err != nil {
		return fmt.Errorf("failed to save timetable entry: %w", err)
	}

	kind := "class"
	if entry.IsAvailable {
		kind = "free time"
	}
	fmt.Println(cli.SuccessStyle.Render(fmt.Sprintf("✓ Added %s every %s %s-%s", kind, cli.WeekdayName(day), entry.StartTime, entry.EndTime)))
	fmt.Println(cli.MutedStyle.Render("  id: " + entry.ID))
	return nil
}

type ClassListCmd struct{}

func (c *ClassListCmd) Run(ctx *cli.Context) error {
	entries, err := ctx.Store.GetFriendSchedule()
	if err != nil {
		return fmt.Errorf("failed to get friend schedule: %w", err)
	}

	fmt.Println(cli.TitleStyle.Render("Friend Timetable"))
	if len(entries) == 0 {
		fmt.Println(cli.MutedStyle.Render("No timetable entries."))
		return nil
	}

	sort.SliceStable(entries, func(i, j int) bool {
		if entries[i].DayOfWeek != entries[j].DayOfWeek {
			return entries[i].DayOfWeek < entries[j].DayOfWeek
		}
		return entries[i].StartTime < entries[j].StartTime
	})

	rows := make([][]string, 0, len(entries))
	for _, e := range entries {
		kind := "class"
		if e.IsAvailable {
			kind = "free"
		}
		rows = append(rows, []string{cli.WeekdayName(e.DayOfWeek), e.StartTime + "-" + e.EndTime, kind, e.Label, e.ID})
	}
	fmt.Println(cli.Table([]string{"Day", "Time", "Kind", "Label", "ID"}, rows))
	return nil
}

type ClassDeleteCmd struct {
	ID string `arg:"" help:"Timetable entry ID."`
}

func (c *ClassDeleteCmd) Run(ctx *cli.Context) error {
	if err := ctx.Store.DeleteFriendEntry(c.ID); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return fmt.Errorf("timetable entry %s not found", c.ID)
		}
		return fmt.Errorf("failed to delete timetable entry: %w", err)
	}
	fmt.Println(cli.SuccessStyle.Render("✓ Deleted timetable entry " + c.ID))
	return nil
}

type NightCmd struct {
	Add    NightAddCmd    `cmd:"" help:"Add a night shift."`
	List   NightListCmd   `cmd:"" help:"List night shifts." default:"1"`
	Delete NightDeleteCmd `cmd:"" help:"Delete a night shift."`
}

type NightAddCmd struct {
	Date       string `short:"d" help:"Date the night shift starts (YYYY-MM-DD or today)." default:"today"`
	Start      string `short:"s" help:"Start time (HH:MM)." default:"22:00"`
	End        string `short:"e" help:"End time the next morning (HH:MM)." default:"06:00"`
	SleepUntil string `help:"When the friend wakes up the next day (HH:MM). Defaults to 14:00."`
}

func (c *NightAddCmd) Run(ctx *cli.Context) error {
	date, err := ctx.ResolveDate(c.Date)
	if err != nil {
		return err
	}

	night := models.FriendNightShift{
		ID:         cli.NewID(),
		Date:       utils.FormatDate(date),
		StartTime:  c.Start,
		EndTime:    c.End,
		SleepUntil: c.SleepUntil,
	}
	if err := ctx.Validator.ValidateNightShift(night); err != nil {
		return fmt.Errorf("invalid night shift: %w", err)
	}
	if err := ctx.Store.AddNightShift(night); err != nil {
		return fmt.Errorf("failed to save night shift: %w", err)
	}

	fmt.Println(cli.SuccessStyle.Render(fmt.Sprintf("✓ Added night shift on %s %s-%s, asleep until %s the next day",
		night.Date, night.StartTime, night.EndTime, night.WakeTime())))
	fmt.Println(cli.MutedStyle.Render("  id: " + night.ID))
	return nil
}

type NightListCmd struct {
	Week string `short:"w" help:"Any date in the week to list (YYYY-MM-DD or today)." default:"today"`
	From string `help:"First date of a custom range."`
	To   string `help:"Last date of a custom range."`
}

func (c *NightListCmd) Run(ctx *cli.Context) error {
	start, end, err := ctx.ResolveRange(c.Week, c.From, c.To)
	if err != nil {
		return err
	}

	nights, err := ctx.Store.GetNightShiftsInRange(utils.FormatDate(start), utils.FormatDate(end))
	if err != nil {
		return fmt.Errorf("failed to list night shifts: %w", err)
	}

	fmt.Println(cli.TitleStyle.Render(fmt.Sprintf("Night shifts %s to %s", utils.FormatDate(start), utils.FormatDate(end))))
	if len(nights) == 0 {
		fmt.Println(cli.MutedStyle.Render("No night shifts."))
		return nil
	}

	rows := make([][]string, 0, len(nights))
	for _, n := range nights {
		rows = append(rows, []string{n.Date, n.StartTime + "-" + n.EndTime, n.WakeTime(), n.ID})
	}
	fmt.Println(cli.Table([]string{"Date", "Time", "Asleep until", "ID"}, rows))
	return nil
}

type NightDeleteCmd struct {
	ID string `arg:"" help:"Night shift ID."`
}

func (c *NightDeleteCmd) Run(ctx *cli.Context) error {
	if err := ctx.Store.DeleteNightShift(c.ID); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return fmt.Errorf("night shift %s not found", c.ID)
		}
		return fmt.Errorf("failed to delete night shift: %w", err)
	}
	fmt.Println(cli.SuccessStyle.Render("✓ Deleted night shift " + c.ID))
	return nil
}
