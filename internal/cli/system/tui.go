package system

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/julianstephens/liftshift/internal/cli"
	"github.com/julianstephens/liftshift/internal/tui"
)

type TuiCmd struct {
	Week string `help:"Any date in the week to open (YYYY-MM-DD or today)." default:"today"`
}

func (c *TuiCmd) Run(ctx *cli.Context) error {
	weekStart, err := ctx.ResolveWeek(c.Week)
	if err != nil {
		return err
	}

	p := tea.NewProgram(tui.NewModel(ctx, weekStart), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("tui exited with error: %w", err)
	}
	return nil
}
