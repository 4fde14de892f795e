package settings

import (
	"errors"
	"fmt"

	"github.com/julianstephens/liftshift/internal/cli"
	"github.com/julianstephens/liftshift/internal/models"
	"github.com/julianstephens/liftshift/internal/utils"
)

type SettingsCmd struct {
	List bool `help:"List current settings."`

	CycleStart    *string  `help:"Start date of the training cycle (YYYY-MM-DD)."`
	ClearCycle    bool     `help:"Remove the training cycle start date."`
	Timezone      *string  `help:"IANA timezone used to resolve 'today' (e.g. Europe/Budapest, Local)."`
	MonthlyTarget *float64 `help:"Total work hours to reach each month."`
	WeeklyTarget  *float64 `help:"Work hours to reach each week."`
	CategoryMin   *float64 `help:"Minimum monthly hours per shift category."`
}

func (c *SettingsCmd) Run(ctx *cli.Context) error {
	settings, err := ctx.Store.GetSettings()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}

	if c.List {
		printSettings(settings)
		return nil
	}

	updated, err := c.apply(&settings)
	if err != nil {
		return err
	}
	if !updated {
		fmt.Println("No changes specified. Use --list to view settings or flags to update them.")
		return nil
	}

	if err := ctx.Store.SaveSettings(settings); err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}
	fmt.Println(cli.SuccessStyle.Render("✓ Settings updated successfully."))
	return nil
}

// apply copies the given flags onto settings and reports whether anything changed.
func (c *SettingsCmd) apply(settings *models.Settings) (bool, error) {
	updated := false

	if c.CycleStart != nil && c.ClearCycle {
		return false, errors.New("--cycle-start and --clear-cycle are mutually exclusive")
	}
	if c.CycleStart != nil {
		if _, err := utils.ParseDate(*c.CycleStart); err != nil {
			return false, fmt.Errorf("invalid cycle start %q, use YYYY-MM-DD: %w", *c.CycleStart, err)
		}
		settings.CycleStartDate = *c.CycleStart
		updated = true
	}
	if c.ClearCycle {
		settings.CycleStartDate = ""
		updated = true
	}
	if c.Timezone != nil {
		if !utils.ValidateTimezone(*c.Timezone) {
			return false, fmt.Errorf("invalid timezone %q", *c.Timezone)
		}
		settings.Timezone = *c.Timezone
		updated = true
	}

	hours := []struct {
		flag  string
		value *float64
		dst   *float64
	}{
		{"--monthly-target", c.MonthlyTarget, &settings.MonthlyTargetHours},
		{"--weekly-target", c.WeeklyTarget, &settings.WeeklyTargetHours},
		{"--category-min", c.CategoryMin, &settings.CategoryMinHours},
	}
	for _, h := range hours {
		if h.value == nil {
			continue
		}
		if *h.value < 0 {
			return false, fmt.Errorf("%s must not be negative, got %v", h.flag, *h.value)
		}
		*h.dst = *h.value
		updated = true
	}

	return updated, nil
}

func printSettings(s models.Settings) {
	cycle := s.CycleStartDate
	if cycle == "" {
		cycle = cli.MutedStyle.Render("(not set)")
	}

	fmt.Println(cli.TitleStyle.Render("Current Settings"))
	fmt.Printf("  Cycle Start:        %s\n", cycle)
	fmt.Printf("  Timezone:           %s\n", s.Timezone)
	fmt.Println()
	fmt.Println(cli.TitleStyle.Render("Hour Targets"))
	fmt.Printf("  Monthly Target:     %s\n", cli.FormatHours(s.MonthlyTargetHours))
	fmt.Printf("  Weekly Target:      %s\n", cli.FormatHours(s.WeeklyTargetHours))
	fmt.Printf("  Category Minimum:   %s\n", cli.FormatHours(s.CategoryMinHours))
}
