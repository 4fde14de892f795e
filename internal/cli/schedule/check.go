package schedule

import (
	"fmt"

	"github.com/julianstephens/liftshift/internal/cli"
	"github.com/julianstephens/liftshift/internal/utils"
	"github.com/julianstephens/liftshift/internal/validation"
)

type CheckCmd struct {
	Date    string `short:"d" help:"Date to check (YYYY-MM-DD or today)." default:"today"`
	Start   string `short:"s" help:"Start time (HH:MM)." required:""`
	End     string `short:"e" help:"End time (HH:MM)." required:""`
	Kind    string `short:"k" help:"What is being planned (event|shift)." default:"event" enum:"event,shift"`
	Exclude string `help:"ID of the record being moved, ignored by the check."`
}

func (c *CheckCmd) Run(ctx *cli.Context) error {
	result, err := c.check(ctx)
	if err != nil {
		return err
	}

	if !result.HasConflicts() {
		fmt.Println(cli.SuccessStyle.Render("✓ " + result.FormatReport()))
		return nil
	}
	style := cli.WarningStyle
	if result.HasErrors() {
		style = cli.ErrorStyle
	}
	fmt.Print(style.Render(result.FormatReport()))
	return nil
}

func (c *CheckCmd) check(ctx *cli.Context) (validation.ValidationResult, error) {
	date, err := ctx.ResolveDate(c.Date)
	if err != nil {
		return validation.ValidationResult{}, err
	}
	return ctx.Check(validation.ConflictRequest{
		Date:      utils.FormatDate(date),
		StartTime: c.Start,
		EndTime:   c.End,
		Kind:      validation.Kind(c.Kind),
		ExcludeID: c.Exclude,
	})
}
