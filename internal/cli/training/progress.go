package training

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/liftshift/internal/cli"
	"github.com/julianstephens/liftshift/internal/progress"
	"github.com/julianstephens/liftshift/internal/utils"
)

type ProgressCmd struct {
	Weeks int    `short:"n" help:"Number of weeks to analyze." default:"6"`
	Date  string `short:"d" help:"Last day of the window (YYYY-MM-DD or today)." default:"today"`
	JSON  bool   `help:"Print the analysis as JSON."`
}

func (c *ProgressCmd) Validate() error {
	if c.Weeks < 1 {
		return errors.New("--weeks must be at least 1")
	}
	return nil
}

// Report is the progress output of one window.
type Report struct {
	From      string                      `json:"from"`
	To        string                      `json:"to"`
	Summary   progress.Summary            `json:"summary"`
	Exercises []progress.ExerciseProgress `json:"exercises"`
}

// Load analyzes the logs in the last weeks ending on to.
func (c *ProgressCmd) Load(ctx *cli.Context) (Report, error) {
	to, err := ctx.ResolveDate(c.Date)
	if err != nil {
		return Report{}, err
	}
	report := Report{From: progress.Since(to, c.Weeks), To: utils.FormatDate(to)}

	plans, err := ctx.Store.GetPlans()
	if err != nil {
		return Report{}, fmt.Errorf("failed to list plans: %w", err)
	}
	exercises, err := ctx.Store.GetExercises("")
	if err != nil {
		return Report{}, fmt.Errorf("failed to list exercises: %w", err)
	}
	logs, err := ctx.Store.GetLogsInRange(report.From, report.To)
	if err != nil {
		return Report{}, fmt.Errorf("failed to list logs: %w", err)
	}

	report.Exercises = progress.Analyze(plans, exercises, logs)
	report.Summary = progress.Summarize(report.Exercises)
	return report, nil
}

func (c *ProgressCmd) Run(ctx *cli.Context) error {
	report, err := c.Load(ctx)
	if err != nil {
		return err
	}
	if c.JSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(report)
	}

	fmt.Println(cli.TitleStyle.Render(fmt.Sprintf("Progress %s to %s", report.From, report.To)))
	if len(report.Exercises) == 0 {
		fmt.Println(cli.MutedStyle.Render("No sets logged in this window."))
		return nil
	}

	s := report.Summary
	fmt.Println(fmt.Sprintf("%d exercises, average %+d%%: ", s.Total, s.AvgImprovement) +
		cli.SuccessStyle.Render(fmt.Sprintf("%d excellent", s.Excellent)) + ", " +
		fmt.Sprintf("%d steady", s.Steady) + ", " +
		cli.WarningStyle.Render(fmt.Sprintf("%d plateau", s.Plateau)) + ", " +
		cli.ErrorStyle.Render(fmt.Sprintf("%d regression", s.Regression)))

	rows := make([][]string, 0, len(report.Exercises))
	for _, p := range report.Exercises {
		rows = append(rows, []string{
			p.Exercise.Name,
			p.PlanName,
			strconv.Itoa(len(p.Weeks)),
			strconv.Itoa(p.TotalSets),
			fmt.Sprintf("%s×%d", formatWeight(p.LatestWeight), p.LatestReps),
			fmt.Sprintf("%+d%%", p.ImprovementPct),
			categoryStyle(p.Category).Render(string(p.Category)),
		})
	}
	fmt.Println(cli.Table([]string{"Exercise", "Plan", "Weeks", "Sets", "Latest", "Change", "Status"}, rows))
	for _, p := range report.Exercises {
		fmt.Println(cli.MutedStyle.Render("• " + p.Recommendation))
	}
	return nil
}

func categoryStyle(c progress.Category) lipgloss.Style {
	switch c {
	case progress.CategoryExcellent:
		return cli.SuccessStyle
	case progress.CategoryPlateau:
		return cli.WarningStyle
	case progress.CategoryRegression:
		return cli.ErrorStyle
	default:
		return lipgloss.NewStyle()
	}
}
