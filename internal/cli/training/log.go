package training

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/julianstephens/liftshift/internal/cli"
	"github.com/julianstephens/liftshift/internal/cycle"
	"github.com/julianstephens/liftshift/internal/models"
	"github.com/julianstephens/liftshift/internal/progress"
	"github.com/julianstephens/liftshift/internal/storage"
	"github.com/julianstephens/liftshift/internal/utils"
)

const historyLimit = 50

type LogCmd struct {
	Add     LogAddCmd     `cmd:"" help:"Record one completed set."`
	List    LogListCmd    `cmd:"" help:"List the sets logged on a date." default:"1"`
	Today   LogTodayCmd   `cmd:"" help:"Show the plan for the cycle day with the sets logged so far."`
	History LogHistoryCmd `cmd:"" help:"Show the recent sessions of one exercise."`
	Delete  LogDeleteCmd  `cmd:"" help:"Delete a logged set."`
}

type LogAddCmd struct {
	Exercise string  `arg:"" help:"Exercise ID or name."`
	Weight   float64 `short:"w" help:"Weight in kg." required:""`
	Reps     int     `short:"r" help:"Reps completed." required:""`
	RIR      *int    `help:"Reps in reserve for the set."`
	Set      int     `help:"Set number. Defaults to the next set of the day." default:"0"`
	Date     string  `short:"d" help:"Workout date (YYYY-MM-DD or today)." default:"today"`
	Notes    string  `help:"Free-form notes."`
}

func (c *LogAddCmd) Run(ctx *cli.Context) error {
	date, err := ctx.ResolveDate(c.Date)
	if err != nil {
		return err
	}
	exercise, err := resolveExercise(ctx, c.Exercise)
	if err != nil {
		return err
	}

	day := utils.FormatDate(date)
	set := c.Set
	if set == 0 {
		logs, err := ctx.Store.GetLogsInRange(day, day)
		if err != nil {
			return fmt.Errorf("failed to list logs: %w", err)
		}
		set = progress.NextSetNumber(logs, exercise.ID, day)
	}

	entry := models.WorkoutLog{
		ID:            cli.NewID(),
		ExerciseID:    exercise.ID,
		Date:          day,
		SetNumber:     set,
		RepsCompleted: c.Reps,
		WeightKg:      c.Weight,
		RIRActual:     c.RIR,
		Notes:         strings.TrimSpace(c.Notes),
	}
	if err := ctx.Validator.ValidateLog(entry); err != nil {
		return fmt.Errorf("invalid set: %w", err)
	}
	if err := ctx.Store.AddLog(entry); err != nil {
		return fmt.Errorf("failed to save set: %w", err)
	}

	msg := fmt.Sprintf("✓ %s set %d: %s kg × %d", exercise.Name, entry.SetNumber, formatWeight(entry.WeightKg), entry.RepsCompleted)
	fmt.Println(cli.SuccessStyle.Render(msg))
	if entry.SetNumber >= exercise.Sets {
		fmt.Println(cli.MutedStyle.Render(fmt.Sprintf("  target of %d sets reached", exercise.Sets)))
	} else if exercise.RestSeconds > 0 {
		fmt.Println(cli.MutedStyle.Render(fmt.Sprintf("  rest %ds", exercise.RestSeconds)))
	}
	return nil
}

type LogListCmd struct {
	Date string `short:"d" help:"Workout date (YYYY-MM-DD or today)." default:"today"`
}

func (c *LogListCmd) Run(ctx *cli.Context) error {
	date, err := ctx.ResolveDate(c.Date)
	if err != nil {
		return err
	}
	day := utils.FormatDate(date)
	logs, err := ctx.Store.GetLogsInRange(day, day)
	if err != nil {
		return fmt.Errorf("failed to list logs: %w", err)
	}
	if len(logs) == 0 {
		fmt.Println(cli.MutedStyle.Render("No sets logged on " + day + "."))
		return nil
	}

	names, err := exerciseNames(ctx)
	if err != nil {
		return err
	}
	rows := make([][]string, 0, len(logs))
	for _, l := range logs {
		rows = append(rows, []string{
			names[l.ExerciseID],
			strconv.Itoa(l.SetNumber),
			formatWeight(l.WeightKg),
			strconv.Itoa(l.RepsCompleted),
			formatRIR(l.RIRActual),
			l.Notes,
			l.ID,
		})
	}
	fmt.Println(cli.TitleStyle.Render("Sets on " + day))
	fmt.Println(cli.Table([]string{"Exercise", "Set", "kg", "Reps", "RIR", "Notes", "ID"}, rows))
	return nil
}

type LogTodayCmd struct {
	Date string `short:"d" help:"Date to show (YYYY-MM-DD or today)." default:"today"`
}

func (c *LogTodayCmd) Run(ctx *cli.Context) error {
	date, err := ctx.ResolveDate(c.Date)
	if err != nil {
		return err
	}
	start, err := ctx.RequireCycleStart()
	if err != nil {
		return err
	}

	day := cycle.DayFor(start, date)
	header := fmt.Sprintf("%s  %s (week %d)", utils.FormatDate(date), day.Label(), day.WeekNumber)
	fmt.Println(cli.TitleStyle.Render(header))
	if !day.IsTrainingDay() {
		fmt.Println(cli.MutedStyle.Render("Rest day."))
		return nil
	}

	plans, err := ctx.Store.GetPlans()
	if err != nil {
		return fmt.Errorf("failed to list plans: %w", err)
	}
	plan, ok := models.FindPlan(plans, day)
	if !ok {
		fmt.Println(cli.WarningStyle.Render(fmt.Sprintf("No plan named %q. Add one with 'liftshift plan add \"%s\"'.", day.Label(), day.Label())))
		return nil
	}
	exercises, err := ctx.Store.GetExercises(plan.ID)
	if err != nil {
		return fmt.Errorf("failed to list exercises: %w", err)
	}
	if len(exercises) == 0 {
		fmt.Println(cli.MutedStyle.Render("Plan " + plan.Name + " has no exercises."))
		return nil
	}

	iso := utils.FormatDate(date)
	logs, err := ctx.Store.GetLogsInRange(iso, iso)
	if err != nil {
		return fmt.Errorf("failed to list logs: %w", err)
	}
	done := make(map[string][]models.WorkoutLog)
	for _, l := range logs {
		done[l.ExerciseID] = append(done[l.ExerciseID], l)
	}

	rows := make([][]string, 0, len(exercises))
	for _, e := range exercises {
		sets := done[e.ID]
		logged := make([]string, 0, len(sets))
		for _, s := range sets {
			logged = append(logged, fmt.Sprintf("%s×%d", formatWeight(s.WeightKg), s.RepsCompleted))
		}
		status := fmt.Sprintf("%d/%d", len(sets), e.Sets)
		if len(sets) >= e.Sets {
			status = cli.SuccessStyle.Render(status)
		}
		rows = append(rows, []string{
			e.Name,
			fmt.Sprintf("%d × %s @ RIR %d", e.Sets, e.Reps, e.RIR),
			status,
			strings.Join(logged, ", "),
		})
	}
	fmt.Println(cli.Table([]string{"Exercise", "Target", "Done", "Sets"}, rows))
	return nil
}

type LogHistoryCmd struct {
	Exercise string `arg:"" help:"Exercise ID or name."`
	Limit    int    `short:"n" help:"Number of recent sets to read." default:"50"`
}

func (c *LogHistoryCmd) Run(ctx *cli.Context) error {
	exercise, err := resolveExercise(ctx, c.Exercise)
	if err != nil {
		return err
	}
	limit := c.Limit
	if limit <= 0 {
		limit = historyLimit
	}
	logs, err := ctx.Store.GetExerciseLogs(exercise.ID, limit)
	if err != nil {
		return fmt.Errorf("failed to read history: %w", err)
	}

	fmt.Println(cli.TitleStyle.Render(exercise.Name + " history"))
	sessions, best := progress.History(logs)
	if len(sessions) == 0 {
		fmt.Println(cli.MutedStyle.Render("No sets logged yet."))
		return nil
	}
	fmt.Println(cli.MutedStyle.Render("Best: " + formatWeight(best) + " kg"))

	rows := make([][]string, 0, len(sessions))
	for _, s := range sessions {
		sets := make([]string, 0, len(s.Sets))
		for _, l := range s.Sets {
			sets = append(sets, fmt.Sprintf("%s×%d", formatWeight(l.WeightKg), l.RepsCompleted))
		}
		rows = append(rows, []string{s.Date, strconv.Itoa(len(s.Sets)), formatWeight(s.MaxWeight), strings.Join(sets, ", ")})
	}
	fmt.Println(cli.Table([]string{"Date", "Sets", "Top kg", "Sets"}, rows))
	return nil
}

type LogDeleteCmd struct {
	ID string `arg:"" help:"Log ID."`
}

func (c *LogDeleteCmd) Run(ctx *cli.Context) error {
	if err := ctx.Store.DeleteLog(c.ID); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return fmt.Errorf("log %s not found", c.ID)
		}
		return fmt.Errorf("failed to delete log: %w", err)
	}
	fmt.Println(cli.SuccessStyle.Render("✓ Deleted log " + c.ID))
	return nil
}

func exerciseNames(ctx *cli.Context) (map[string]string, error) {
	exercises, err := ctx.Store.GetExercises("")
	if err != nil {
		return nil, fmt.Errorf("failed to list exercises: %w", err)
	}
	names := make(map[string]string, len(exercises))
	for _, e := range exercises {
		names[e.ID] = e.Name
	}
	return names, nil
}

func formatWeight(kg float64) string {
	return strconv.FormatFloat(kg, 'f', -1, 64)
}

func formatRIR(rir *int) string {
	if rir == nil {
		return "-"
	}
	return strconv.Itoa(*rir)
}
