package training

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/julianstephens/liftshift/internal/cli"
	"github.com/julianstephens/liftshift/internal/models"
	"github.com/julianstephens/liftshift/internal/storage"
)

type PlanCmd struct {
	Add      PlanAddCmd    `cmd:"" help:"Add a workout plan for one cycle day, e.g. \"PUSH A\"."`
	List     PlanListCmd   `cmd:"" help:"List workout plans and their exercises." default:"1"`
	Delete   PlanDeleteCmd `cmd:"" help:"Delete a plan with its exercises and logged sets."`
	Exercise ExerciseCmd   `cmd:"" help:"Manage the exercises of a plan."`
}

type PlanAddCmd struct {
	Name     string `arg:"" help:"Cycle label the plan belongs to (PUSH A, PULL B, ...)."`
	WeekType string `help:"Week type (A|B). Defaults to the last word of the name." enum:",A,B" default:""`
	Order    int    `help:"Position within the cycle week." default:"0"`
}

func (c *PlanAddCmd) Validate() error {
	c.Name = strings.ToUpper(strings.Join(strings.Fields(c.Name), " "))
	if c.Name == "" {
		return errors.New("plan name cannot be empty")
	}
	if c.WeekType == "" {
		fields := strings.Fields(c.Name)
		switch last := fields[len(fields)-1]; last {
		case "A", "B":
			c.WeekType = last
		default:
			return fmt.Errorf("cannot derive the week type from %q, pass --week-type", c.Name)
		}
	}
	if c.Order < 0 {
		return errors.New("--order cannot be negative")
	}
	return nil
}

func (c *PlanAddCmd) Run(ctx *cli.Context) error {
	plan := models.WorkoutPlan{
		ID:           cli.NewID(),
		Name:         c.Name,
		WeekType:     models.WeekType(c.WeekType),
		OrderInCycle: c.Order,
	}
	if err := ctx.Validator.ValidatePlan(plan); err != nil {
		return fmt.Errorf("invalid plan: %w", err)
	}

	plans, err := ctx.Store.GetPlans()
	if err != nil {
		return fmt.Errorf("failed to list plans: %w", err)
	}
	for _, p := range plans {
		if strings.EqualFold(p.Name, plan.Name) {
			return fmt.Errorf("plan %q already exists (id %s)", p.Name, p.ID)
		}
	}

	if err := ctx.Store.AddPlan(plan); err != nil {
		return fmt.Errorf("failed to save plan: %w", err)
	}
	fmt.Println(cli.SuccessStyle.Render("✓ Added plan " + plan.Name))
	fmt.Println(cli.MutedStyle.Render("  id: " + plan.ID))
	return nil
}

type PlanListCmd struct{}

func (c *PlanListCmd) Run(ctx *cli.Context) error {
	plans, err := ctx.Store.GetPlans()
	if err != nil {
		return fmt.Errorf("failed to list plans: %w", err)
	}
	if len(plans) == 0 {
		fmt.Println(cli.MutedStyle.Render("No workout plans. Add one with 'liftshift plan add \"PUSH A\"'."))
		return nil
	}

	exercises, err := ctx.Store.GetExercises("")
	if err != nil {
		return fmt.Errorf("failed to list exercises: %w", err)
	}
	byPlan := make(map[string][]models.Exercise)
	for _, e := range exercises {
		byPlan[e.PlanID] = append(byPlan[e.PlanID], e)
	}

	for _, p := range plans {
		fmt.Println(cli.TitleStyle.Render(p.Name) + cli.MutedStyle.Render("  "+p.ID))
		if len(byPlan[p.ID]) == 0 {
			fmt.Println(cli.MutedStyle.Render("  No exercises."))
			continue
		}
		fmt.Println(ExerciseTable(byPlan[p.ID]))
	}
	return nil
}

// ExerciseTable renders a plan's exercises with their targets.
func ExerciseTable(exercises []models.Exercise) string {
	rows := make([][]string, 0, len(exercises))
	for _, e := range exercises {
		rows = append(rows, []string{
			strconv.Itoa(e.OrderIndex + 1),
			e.Name,
			fmt.Sprintf("%d × %s", e.Sets, e.Reps),
			strconv.Itoa(e.RIR),
			fmt.Sprintf("%ds", e.RestSeconds),
			e.ID,
		})
	}
	return cli.Table([]string{"#", "Exercise", "Target", "RIR", "Rest", "ID"}, rows)
}

type PlanDeleteCmd struct {
	Plan string `arg:"" help:"Plan ID or name."`
}

func (c *PlanDeleteCmd) Run(ctx *cli.Context) error {
	plan, err := resolvePlan(ctx, c.Plan)
	if err != nil {
		return err
	}
	if err := ctx.Store.DeletePlan(plan.ID); err != nil {
		return fmt.Errorf("failed to delete plan: %w", err)
	}
	fmt.Println(cli.SuccessStyle.Render("✓ Deleted plan " + plan.Name))
	return nil
}

type ExerciseCmd struct {
	Add    ExerciseAddCmd    `cmd:"" help:"Add an exercise to a plan."`
	Delete ExerciseDeleteCmd `cmd:"" help:"Delete an exercise with its logged sets."`
}

type ExerciseAddCmd struct {
	Plan  string `arg:"" help:"Plan ID or name."`
	Name  string `arg:"" help:"Exercise name."`
	Sets  int    `help:"Target number of sets." default:"3"`
	Reps  string `help:"Target reps, e.g. 8-10." default:"8-10"`
	RIR   int    `help:"Target reps in reserve." default:"2"`
	Rest  int    `help:"Rest between sets in seconds." default:"120"`
	Order int    `help:"Position in the plan (1-based). Defaults to the end." default:"0"`
}

func (c *ExerciseAddCmd) Run(ctx *cli.Context) error {
	plan, err := resolvePlan(ctx, c.Plan)
	if err != nil {
		return err
	}
	existing, err := ctx.Store.GetExercises(plan.ID)
	if err != nil {
		return fmt.Errorf("failed to list exercises: %w", err)
	}

	order := len(existing)
	if c.Order > 0 {
		order = c.Order - 1
	}
	exercise := models.Exercise{
		ID:          cli.NewID(),
		PlanID:      plan.ID,
		Name:        strings.TrimSpace(c.Name),
		Sets:        c.Sets,
		Reps:        c.Reps,
		RIR:         c.RIR,
		RestSeconds: c.Rest,
		OrderIndex:  order,
	}
	if err := ctx.Validator.ValidateExercise(exercise); err != nil {
		return fmt.Errorf("invalid exercise: %w", err)
	}
	if err := ctx.Store.AddExercise(exercise); err != nil {
		return fmt.Errorf("failed to save exercise: %w", err)
	}
	fmt.Println(cli.SuccessStyle.Render(fmt.Sprintf("✓ Added %s to %s", exercise.Name, plan.Name)))
	fmt.Println(cli.MutedStyle.Render("  id: " + exercise.ID))
	return nil
}

type ExerciseDeleteCmd struct {
	ID string `arg:"" help:"Exercise ID."`
}

func (c *ExerciseDeleteCmd) Run(ctx *cli.Context) error {
	if err := ctx.Store.DeleteExercise(c.ID); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return fmt.Errorf("exercise %s not found", c.ID)
		}
		return fmt.Errorf("failed to delete exercise: %w", err)
	}
	fmt.Println(cli.SuccessStyle.Render("✓ Deleted exercise " + c.ID))
	return nil
}

// resolvePlan accepts a plan ID or a case-insensitive plan name.
func resolvePlan(ctx *cli.Context, ref string) (models.WorkoutPlan, error) {
	plan, err := ctx.Store.GetPlan(ref)
	if err == nil {
		return plan, nil
	}
	if !errors.Is(err, storage.ErrNotFound) {
		return models.WorkoutPlan{}, err
	}

	plans, err := ctx.Store.GetPlans()
	if err != nil {
		return models.WorkoutPlan{}, fmt.Errorf("failed to list plans: %w", err)
	}
	name := strings.Join(strings.Fields(ref), " ")
	for _, p := range plans {
		if strings.EqualFold(p.Name, name) {
			return p, nil
		}
	}
	return models.WorkoutPlan{}, fmt.Errorf("plan %q not found", ref)
}

// resolveExercise accepts an exercise ID or a case-insensitive name. A name
// shared by several plans must be disambiguated by ID.
func resolveExercise(ctx *cli.Context, ref string) (models.Exercise, error) {
	exercise, err := ctx.Store.GetExercise(ref)
	if err == nil {
		return exercise, nil
	}
	if !errors.Is(err, storage.ErrNotFound) {
		return models.Exercise{}, err
	}

	all, err := ctx.Store.GetExercises("")
	if err != nil {
		return models.Exercise{}, fmt.Errorf("failed to list exercises: %w", err)
	}
	var matches []models.Exercise
	for _, e := range all {
		if strings.EqualFold(e.Name, strings.TrimSpace(ref)) {
			matches = append(matches, e)
		}
	}
	switch len(matches) {
	case 0:
		return models.Exercise{}, fmt.Errorf("exercise %q not found", ref)
	case 1:
		return matches[0], nil
	default:
		return models.Exercise{}, fmt.Errorf("%d exercises are named %q, use the exercise ID", len(matches), ref)
	}
}
