package shifts

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/huh"

	"github.com/julianstephens/liftshift/internal/cli"
	"github.com/julianstephens/liftshift/internal/models"
	"github.com/julianstephens/liftshift/internal/storage"
	"github.com/julianstephens/liftshift/internal/utils"
	"github.com/julianstephens/liftshift/internal/validation"
)

type ShiftCmd struct {
	Add    ShiftAddCmd    `cmd:"" help:"Log a work shift."`
	List   ShiftListCmd   `cmd:"" help:"List work shifts." default:"1"`
	Delete ShiftDeleteCmd `cmd:"" help:"Delete a work shift."`
}

type ShiftAddCmd struct {
	Date        string `short:"d" help:"Date of the shift (YYYY-MM-DD or today)." default:"today"`
	Preset      string `short:"p" help:"Named preset (morning|afternoon|short-morning|short-afternoon|weekend)."`
	Start       string `short:"s" help:"Start time (HH:MM)."`
	End         string `short:"e" help:"End time (HH:MM)."`
	Type        string `short:"t" help:"Shift category (morning|afternoon|weekend). Derived from date and start when omitted."`
	Force       bool   `short:"f" help:"Save even when the shift overlaps another one."`
	Interactive bool   `short:"i" help:"Pick the date and preset in a form."`
}

func (c *ShiftAddCmd) Validate() error {
	if c.Interactive {
		return nil
	}
	if c.Preset != "" {
		if _, ok := models.FindShiftPreset(c.Preset); !ok {
			return fmt.Errorf("unknown preset %q", c.Preset)
		}
		if c.Start != "" || c.End != "" {
			return errors.New("--preset cannot be combined with --start/--end")
		}
	} else if c.Start == "" || c.End == "" {
		return errors.New("either --preset or both --start and --end are required")
	}
	if c.Type != "" && !validType(models.ShiftType(c.Type)) {
		return fmt.Errorf("invalid shift type %q", c.Type)
	}
	return nil
}

func (c *ShiftAddCmd) Run(ctx *cli.Context) error {
	if c.Interactive {
		if err := c.prompt(); err != nil {
			return err
		}
		if err := c.Validate(); err != nil {
			return err
		}
	}

	shift, err := c.build(ctx)
	if err != nil {
		return err
	}
	if err := ctx.Validator.ValidateShift(shift); err != nil {
		return fmt.Errorf("invalid shift: %w", err)
	}

	result, err := ctx.Check(validation.ConflictRequest{
		Date:      shift.Date,
		StartTime: shift.StartTime,
		EndTime:   shift.EndTime,
		Kind:      validation.KindShift,
	})
	if err != nil {
		return err
	}
	if err := cli.GuardConflicts(result, c.Force); err != nil {
		return err
	}

	if err := ctx.Store.AddShift(shift); err != nil {
		return fmt.Errorf("failed to save shift: %w", err)
	}
	fmt.Println(cli.SuccessStyle.Render(fmt.Sprintf("✓ Added %s shift on %s %s-%s (%s)",
		shift.ShiftType, shift.Date, shift.StartTime, shift.EndTime, cli.FormatHours(shift.DurationHours))))
	fmt.Println(cli.MutedStyle.Render("  id: " + shift.ID))
	return nil
}

func (c *ShiftAddCmd) build(ctx *cli.Context) (models.WorkShift, error) {
	date, err := ctx.ResolveDate(c.Date)
	if err != nil {
		return models.WorkShift{}, err
	}

	start, end := c.Start, c.End
	shiftType := models.ShiftType(c.Type)
	if c.Preset != "" {
		p, _ := models.FindShiftPreset(c.Preset)
		start, end = p.StartTime, p.EndTime
		if shiftType == "" {
			shiftType = p.ShiftType
		}
	}
	if !utils.ValidateTimeFormat(start) || !utils.ValidateTimeFormat(end) {
		return models.WorkShift{}, fmt.Errorf("invalid time range %s-%s, use HH:MM", start, end)
	}
	if shiftType == "" {
		shiftType = models.DeriveShiftType(date, start)
	}

	return models.WorkShift{
		ID:            cli.NewID(),
		Date:          utils.FormatDate(date),
		StartTime:     start,
		EndTime:       end,
		DurationHours: models.ShiftDuration(start, end),
		ShiftType:     shiftType,
	}, nil
}

func (c *ShiftAddCmd) prompt() error {
	options := make([]huh.Option[string], 0, len(models.ShiftPresets))
	for _, p := range models.ShiftPresets {
		options = append(options, huh.NewOption(fmt.Sprintf("%s (%s-%s)", p.Name, p.StartTime, p.EndTime), p.Name))
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Date").
				Description("YYYY-MM-DD, today or tomorrow").
				Value(&c.Date),
			huh.NewSelect[string]().
				Title("Shift").
				Options(options...).
				Value(&c.Preset),
		),
	)
	if err := form.Run(); err != nil {
		return fmt.Errorf("shift form cancelled: %w", err)
	}
	c.Start, c.End = "", ""
	return nil
}

func validType(t models.ShiftType) bool {
	for _, st := range models.ShiftTypes {
		if st == t {
			return true
		}
	}
	return false
}

type ShiftListCmd struct {
	Week string `short:"w" help:"Any date in the week to list (YYYY-MM-DD or today)." default:"today"`
	From string `help:"First date of a custom range."`
	To   string `help:"Last date of a custom range."`
}

func (c *ShiftListCmd) Run(ctx *cli.Context) error {
	start, end, err := ctx.ResolveRange(c.Week, c.From, c.To)
	if err != nil {
		return err
	}

	shifts, err := ctx.Store.GetShiftsInRange(utils.FormatDate(start), utils.FormatDate(end))
	if err != nil {
		return fmt.Errorf("failed to list shifts: %w", err)
	}

	title := fmt.Sprintf("Shifts %s to %s", utils.FormatDate(start), utils.FormatDate(end))
	fmt.Println(cli.TitleStyle.Render(title))
	if len(shifts) == 0 {
		fmt.Println(cli.MutedStyle.Render("No shifts logged."))
		return nil
	}

	var total float64
	rows := make([][]string, 0, len(shifts))
	for _, sh := range shifts {
		day := sh.Date
		if d, err := utils.ParseDate(sh.Date); err == nil {
			day = d.Weekday().String()[:3] + " " + sh.Date
		}
		rows = append(rows, []string{day, sh.StartTime + "-" + sh.EndTime, cli.FormatHours(sh.DurationHours), string(sh.ShiftType), sh.ID})
		total += sh.DurationHours
	}
	fmt.Println(cli.Table([]string{"Date", "Time", "Hours", "Type", "ID"}, rows))
	fmt.Printf("Total: %s across %d shift(s)\n", cli.FormatHours(total), len(shifts))
	return nil
}

type ShiftDeleteCmd struct {
	ID string `arg:"" help:"Shift ID."`
}

func (c *ShiftDeleteCmd) Run(ctx *cli.Context) error {
	if err := ctx.Store.DeleteShift(c.ID); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return fmt.Errorf("shift %s not found", c.ID)
		}
		return fmt.Errorf("failed to delete shift: %w", err)
	}
	fmt.Println(cli.SuccessStyle.Render("✓ Deleted shift " + c.ID))
	return nil
}
