package events

import (
	"errors"
	"fmt"

	"github.com/julianstephens/liftshift/internal/cli"
	"github.com/julianstephens/liftshift/internal/models"
	"github.com/julianstephens/liftshift/internal/storage"
	"github.com/julianstephens/liftshift/internal/utils"
	"github.com/julianstephens/liftshift/internal/validation"
)

type EventCmd struct {
	Add    EventAddCmd    `cmd:"" help:"Add a schedule event."`
	List   EventListCmd   `cmd:"" help:"List schedule events." default:"1"`
	Delete EventDeleteCmd `cmd:"" help:"Delete a schedule event."`
}

type EventAddCmd struct {
	Title       string `arg:"" optional:"" help:"Event title."`
	Type        string `short:"t" help:"Event type (workout|partner|cooking|other)." default:"other" enum:"workout,partner,cooking,other"`
	Date        string `short:"d" help:"Date of the event (YYYY-MM-DD or today)." default:"today"`
	Start       string `short:"s" help:"Start time (HH:MM)." required:""`
	End         string `short:"e" help:"End time (HH:MM)." required:""`
	Description string `help:"Longer description."`
	Force       bool   `short:"f" help:"Save even when the event overlaps a work shift."`
}

func (c *EventAddCmd) Run(ctx *cli.Context) error {
	date, err := ctx.ResolveDate(c.Date)
	if err != nil {
		return err
	}

	event := models.ScheduleEvent{
		ID:          cli.NewID(),
		Type:        models.EventType(c.Type),
		Date:        utils.FormatDate(date),
		StartTime:   c.Start,
		EndTime:     c.End,
		Title:       c.Title,
		Description: c.Description,
	}
	if err := ctx.Validator.ValidateEvent(event); err != nil {
		return fmt.Errorf("invalid event: %w", err)
	}

	result, err := ctx.Check(validation.ConflictRequest{
		Date:      event.Date,
		StartTime: event.StartTime,
		EndTime:   event.EndTime,
		Kind:      validation.KindEvent,
	})
	if err != nil {
		return err
	}
	if err := cli.GuardConflicts(result, c.Force); err != nil {
		return err
	}

	if err := ctx.Store.AddEvent(event); err != nil {
		return fmt.Errorf("failed to save event: %w", err)
	}
	fmt.Println(cli.SuccessStyle.Render(fmt.Sprintf("✓ Added %s on %s %s-%s", event.DisplayName(), event.Date, event.StartTime, event.EndTime)))
	fmt.Println(cli.MutedStyle.Render("  id: " + event.ID))
	return nil
}

type EventListCmd struct {
	Week string `short:"w" help:"Any date in the week to list (YYYY-MM-DD or today)." default:"today"`
	From string `help:"First date of a custom range."`
	To   string `help:"Last date of a custom range."`
	Type string `short:"t" help:"Only show events of this type."`
}

func (c *EventListCmd) Run(ctx *cli.Context) error {
	start, end, err := ctx.ResolveRange(c.Week, c.From, c.To)
	if err != nil {
		return err
	}

	events, err := ctx.Store.GetEventsInRange(utils.FormatDate(start), utils.FormatDate(end))
	if err != nil {
		return fmt.Errorf("failed to list events: %w", err)
	}

	fmt.Println(cli.TitleStyle.Render(fmt.Sprintf("Events %s to %s", utils.FormatDate(start), utils.FormatDate(end))))
	rows := [][]string{}
	for _, e := range events {
		if c.Type != "" && string(e.Type) != c.Type {
			continue
		}
		rows = append(rows, []string{e.Date, e.StartTime + "-" + e.EndTime, string(e.Type), e.DisplayName(), e.ID})
	}
	if len(rows) == 0 {
		fmt.Println(cli.MutedStyle.Render("No events."))
		return nil
	}
	fmt.Println(cli.Table([]string{"Date", "Time", "Type", "Title", "ID"}, rows))
	return nil
}

type EventDeleteCmd struct {
	ID string `arg:"" help:"Event ID."`
}

func (c *EventDeleteCmd) Run(ctx *cli.Context) error {
	if err := ctx.Store.DeleteEvent(c.ID); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return fmt.Errorf("event %s not found", c.ID)
		}
		return fmt.Errorf("failed to delete event: %w", err)
	}
	fmt.Println(cli.SuccessStyle.Render("✓ Deleted event " + c.ID))
	return nil
}
