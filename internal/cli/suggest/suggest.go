package suggest

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"

	"github.com/charmbracelet/huh"

	"github.com/julianstephens/liftshift/internal/cli"
	"github.com/julianstephens/liftshift/internal/models"
	"github.com/julianstephens/liftshift/internal/validation"
)

type SuggestCmd struct {
	Workouts WorkoutsCmd `cmd:"" help:"Suggest a workout slot for each training day of a week."`
	Shifts   ShiftsCmd   `cmd:"" help:"Suggest work shifts that keep the hour quota on track."`
}

// WeekOptions are the flags shared by both suggest commands.
type WeekOptions struct {
	Week   string `short:"w" help:"Any date in the week to plan (YYYY-MM-DD or today)." default:"today"`
	Accept bool   `short:"a" help:"Pick suggestions to save to the schedule."`
	Yes    bool   `short:"y" help:"With --accept, save every suggestion without prompting."`
	JSON   bool   `help:"Print suggestions as JSON."`
}

type WorkoutsCmd struct {
	WeekOptions `embed:""`
}

func (c *WorkoutsCmd) Run(ctx *cli.Context) error {
	suggestions, err := Workouts(ctx, c.Week)
	if err != nil {
		return err
	}
	if c.JSON {
		return printJSON(suggestions)
	}

	fmt.Println(cli.TitleStyle.Render("Workout suggestions"))
	if len(suggestions) == 0 {
		fmt.Println(cli.MutedStyle.Render("No workout slots found this week."))
		return nil
	}
	fmt.Println(WorkoutTable(suggestions))

	if !c.Accept {
		return nil
	}
	chosen, err := choose("Save workouts", suggestions, workoutLabel, c.Yes)
	if err != nil {
		return err
	}
	if err := AcceptWorkouts(ctx, chosen); err != nil {
		return err
	}
	for _, s := range chosen {
		fmt.Println(cli.SuccessStyle.Render("✓ Saved " + workoutLabel(s)))
	}
	return nil
}

// AcceptWorkouts stores each suggestion as a workout event.
func AcceptWorkouts(ctx *cli.Context, chosen []models.WorkoutSuggestion) error {
	for _, s := range chosen {
		if err := ctx.Store.AddEvent(cli.EventFromWorkout(s)); err != nil {
			return fmt.Errorf("failed to save workout on %s: %w", s.Date, err)
		}
	}
	return nil
}

// Workouts runs the workout generator for the week containing week.
func Workouts(ctx *cli.Context, week string) ([]models.WorkoutSuggestion, error) {
	cycleStart, err := ctx.RequireCycleStart()
	if err != nil {
		return nil, err
	}
	weekStart, err := ctx.ResolveWeek(week)
	if err != nil {
		return nil, err
	}
	snap, err := ctx.Snapshot(weekStart)
	if err != nil {
		return nil, err
	}
	return ctx.Scheduler.SuggestWorkouts(weekStart, &cycleStart, snap), nil
}

// WorkoutTable renders workout suggestions as a table.
func WorkoutTable(suggestions []models.WorkoutSuggestion) string {
	rows := make([][]string, 0, len(suggestions))
	for _, s := range suggestions {
		rows = append(rows, []string{
			s.DayName,
			s.Date,
			string(s.WorkoutType) + " " + string(s.WeekType),
			s.StartTime + "-" + s.EndTime,
			cli.ConfidenceStyle(s.Confidence).Render(string(s.Confidence)),
			strconv.Itoa(s.Score),
			s.Reason,
		})
	}
	return cli.Table([]string{"Day", "Date", "Workout", "Time", "Confidence", "Score", "Reason"}, rows)
}

func workoutLabel(s models.WorkoutSuggestion) string {
	return fmt.Sprintf("%s %s %s %s-%s", s.DayName, s.WorkoutType, s.WeekType, s.StartTime, s.EndTime)
}

type ShiftsCmd struct {
	WeekOptions `embed:""`
}

func (c *ShiftsCmd) Run(ctx *cli.Context) error {
	suggestions, err := Shifts(ctx, c.Week)
	if err != nil {
		return err
	}
	if c.JSON {
		return printJSON(suggestions)
	}

	fmt.Println(cli.TitleStyle.Render("Shift suggestions"))
	if len(suggestions) == 0 {
		fmt.Println(cli.MutedStyle.Render("No shift windows found this week."))
		return nil
	}
	fmt.Println(ShiftTable(suggestions))

	if !c.Accept {
		return nil
	}
	chosen, err := choose("Save shifts", suggestions, shiftLabel, c.Yes)
	if err != nil {
		return err
	}
	saved, skipped, err := AcceptShifts(ctx, chosen)
	if err != nil {
		return err
	}
	for _, sk := range skipped {
		fmt.Println(cli.WarningStyle.Render("⚠ Skipped " + shiftLabel(sk) + ": overlaps a saved shift"))
	}
	fmt.Println(cli.SuccessStyle.Render(fmt.Sprintf("✓ Saved %d shift(s)", saved)))
	return nil
}

// AcceptShifts stores chosen suggestions as shifts. Suggestions overlapping a
// shift already stored, including one saved earlier in the same call, are skipped.
func AcceptShifts(ctx *cli.Context, chosen []models.ShiftSuggestion) (int, []models.ShiftSuggestion, error) {
	saved := 0
	var skipped []models.ShiftSuggestion
	for _, s := range chosen {
		shift := cli.ShiftFromSuggestion(s)
		result, err := ctx.Check(validation.ConflictRequest{
			Date:      shift.Date,
			StartTime: shift.StartTime,
			EndTime:   shift.EndTime,
			Kind:      validation.KindShift,
		})
		if err != nil {
			return saved, skipped, err
		}
		if result.HasErrors() {
			skipped = append(skipped, s)
			continue
		}
		if err := ctx.Store.AddShift(shift); err != nil {
			return saved, skipped, fmt.Errorf("failed to save shift on %s: %w", s.Date, err)
		}
		saved++
	}
	return saved, skipped, nil
}

// Shifts runs the shift generator for the week containing week. The cycle is optional.
func Shifts(ctx *cli.Context, week string) ([]models.ShiftSuggestion, error) {
	cycleStart, err := ctx.CycleStart()
	if err != nil {
		return nil, err
	}
	weekStart, err := ctx.ResolveWeek(week)
	if err != nil {
		return nil, err
	}
	snap, err := ctx.Snapshot(weekStart)
	if err != nil {
		return nil, err
	}
	return ctx.Scheduler.SuggestShifts(weekStart, cycleStart, snap), nil
}

// ShiftTable renders shift suggestions as a table.
func ShiftTable(suggestions []models.ShiftSuggestion) string {
	rows := make([][]string, 0, len(suggestions))
	for _, s := range suggestions {
		rows = append(rows, []string{
			s.DayName,
			s.Date,
			s.StartTime + "-" + s.EndTime,
			cli.FormatHours(s.DurationHours),
			string(s.ShiftType),
			cli.PriorityStyle(s.Priority).Render(string(s.Priority)),
			s.Reason + " " + cli.MutedStyle.Render(cli.FormatTags(s.Tags)),
		})
	}
	return cli.Table([]string{"Day", "Date", "Time", "Hours", "Type", "Priority", "Reason"}, rows)
}

func shiftLabel(s models.ShiftSuggestion) string {
	return fmt.Sprintf("%s %s %s-%s (%s)", s.DayName, s.ShiftType, s.StartTime, s.EndTime, cli.FormatHours(s.DurationHours))
}

// choose asks which items to keep and confirms the choice. yes keeps everything.
func choose[T any](title string, items []T, label func(T) string, yes bool) ([]T, error) {
	if yes {
		return items, nil
	}

	options := make([]huh.Option[int], 0, len(items))
	for i, it := range items {
		options = append(options, huh.NewOption(label(it), i))
	}

	var picked []int
	confirmed := false
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewMultiSelect[int]().
				Title(title).
				Options(options...).
				Value(&picked),
		),
		huh.NewGroup(
			huh.NewConfirm().
				Title("Save the selected suggestions?").
				Value(&confirmed),
		),
	)
	if err := form.Run(); err != nil {
		return nil, fmt.Errorf("selection cancelled: %w", err)
	}
	if !confirmed {
		return nil, nil
	}

	chosen := make([]T, 0, len(picked))
	for _, i := range picked {
		chosen = append(chosen, items[i])
	}
	return chosen, nil
}

func printJSON(v interface{}) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
