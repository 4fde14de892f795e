package system

import (
	"context"
	"fmt"

	"github.com/julianstephens/liftshift/internal/cli"
	"github.com/julianstephens/liftshift/internal/logger"
	"github.com/julianstephens/liftshift/internal/models"
	"github.com/julianstephens/liftshift/internal/notifier"
	"github.com/julianstephens/liftshift/internal/utils"
)

type NotifyCmd struct {
	Date   string `help:"Date to announce (YYYY-MM-DD or today)." default:"today"`
	DryRun bool   `help:"Print the notification to stdout instead of sending it."`
}

func (c *NotifyCmd) Run(ctx *cli.Context) error {
	msg, err := c.message(ctx)
	if err != nil {
		return err
	}

	if c.DryRun {
		fmt.Println("[DryRun] " + msg)
		return nil
	}

	if err := notifier.New().Notify(context.Background(), msg); err != nil {
		logger.Warn("Failed to send notification", "error", err)
		return fmt.Errorf("failed to send notification: %w", err)
	}
	return nil
}

// message builds the workout notification for c.Date.
func (c *NotifyCmd) message(ctx *cli.Context) (string, error) {
	date, err := ctx.ResolveDate(c.Date)
	if err != nil {
		return "", err
	}
	cycleStart, err := ctx.RequireCycleStart()
	if err != nil {
		return "", err
	}

	weekStart := utils.WeekStart(date)
	snap, err := ctx.Snapshot(weekStart)
	if err != nil {
		return "", err
	}

	key := utils.FormatDate(date)
	var today *models.WorkoutSuggestion
	for _, s := range ctx.Scheduler.SuggestWorkouts(weekStart, &cycleStart, snap) {
		if s.Date == key {
			today = &s
			break
		}
	}
	return notifier.WorkoutMessage(key, today), nil
}
