package system

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/julianstephens/liftshift/internal/cli"
	"github.com/julianstephens/liftshift/internal/storage"
	"github.com/julianstephens/liftshift/internal/storage/postgres"
	"github.com/julianstephens/liftshift/internal/storage/sqlite"
)

type InitCmd struct {
	Force  bool   `help:"Force reset by deleting existing database before initialization."`
	Source string `help:"Source database path or connection string to copy data from."`
}

func (c *InitCmd) Run(ctx *cli.Context) error {
	if c.Force {
		if err := c.reset(ctx); err != nil {
			return err
		}
	}

	if err := ctx.Store.Init(); err != nil {
		return err
	}
	fmt.Println(cli.SuccessStyle.Render("✓ Initialized liftshift storage at: " + ctx.Store.GetConfigPath()))

	if c.Source != "" {
		fmt.Printf("Copying data from: %s\n", c.Source)
		if err := c.copyData(ctx, c.Source); err != nil {
			return fmt.Errorf("copy failed: %w", err)
		}
		fmt.Println("Copy completed successfully!")
	}

	return nil
}

func (c *InitCmd) reset(ctx *cli.Context) error {
	dbPath := ctx.Store.GetConfigPath()
	if _, ok := ctx.Store.(*sqlite.Store); !ok {
		return errors.New("--force is only supported for SQLite databases")
	}

	if c.Source != "" {
		absDB, errDB := filepath.Abs(dbPath)
		absSource, errSource := filepath.Abs(c.Source)
		if errDB == nil && errSource == nil && absDB == absSource {
			return fmt.Errorf("cannot use --force when source and destination are the same: %s", dbPath)
		}
	}

	if _, err := os.Stat(dbPath); err == nil {
		// Close first so the file is not locked
		if err := ctx.Store.Close(); err != nil {
			return fmt.Errorf("failed to close existing database: %w", err)
		}
		if err := os.Remove(dbPath); err != nil {
			return fmt.Errorf("failed to delete existing database: %w", err)
		}
		fmt.Printf("Deleted existing database at: %s\n", dbPath)
	} else if !os.IsNotExist(err) {
		return fmt.Errorf("failed to access existing database: %w", err)
	}
	return nil
}

func openSource(source string) (storage.Provider, error) {
	if cli.IsPostgres(source) {
		if valid, err := postgres.ValidateConnString(source); !valid {
			if errors.Is(err, postgres.ErrEmbeddedCredentials) {
				return nil, errors.New("PostgreSQL source connection string contains embedded credentials. Use environment variables or .pgpass instead")
			}
			return nil, err
		}
		return postgres.New(source), nil
	}
	return sqlite.NewStore(source), nil
}

// copyData copies every record from source into the freshly initialized store.
// Night shifts and shifts are copied over the full stored date range.
func (c *InitCmd) copyData(ctx *cli.Context, source string) error {
	src, err := openSource(source)
	if err != nil {
		return err
	}
	if err := src.Load(); err != nil {
		return fmt.Errorf("failed to load source database: %w", err)
	}
	defer src.Close()

	const first, last = "0000-01-01", "9999-12-31"

	fmt.Println("  Copying settings...")
	settings, err := src.GetSettings()
	if err != nil {
		return fmt.Errorf("failed to get settings from source: %w", err)
	}
	if err := ctx.Store.SaveSettings(settings); err != nil {
		return fmt.Errorf("failed to save settings to destination: %w", err)
	}

	shifts, err := src.GetShiftsInRange(first, last)
	if err != nil {
		return fmt.Errorf("failed to get shifts from source: %w", err)
	}
	for _, sh := range shifts {
		if err := ctx.Store.AddShift(sh); err != nil {
			return err
		}
	}
	fmt.Printf("    Copied %d shifts\n", len(shifts))

	events, err := src.GetEventsInRange(first, last)
	if err != nil {
		return fmt.Errorf("failed to get events from source: %w", err)
	}
	for _, e := range events {
		if err := ctx.Store.AddEvent(e); err != nil {
			return err
		}
	}
	fmt.Printf("    Copied %d events\n", len(events))

	friend, err := src.GetFriendSchedule()
	if err != nil {
		return fmt.Errorf("failed to get friend schedule from source: %w", err)
	}
	for _, e := range friend {
		if err := ctx.Store.AddFriendEntry(e); err != nil {
			return err
		}
	}
	fmt.Printf("    Copied %d friend schedule entries\n", len(friend))

	nights, err := src.GetNightShiftsInRange(first, last)
	if err != nil {
		return fmt.Errorf("failed to get night shifts from source: %w", err)
	}
	for _, n := range nights {
		if err := ctx.Store.AddNightShift(n); err != nil {
			return err
		}
	}
	fmt.Printf("    Copied %d night shifts\n", len(nights))

	return copyTraining(ctx, src, first, last)
}

// copyTraining copies plans before exercises and exercises before logs.
func copyTraining(ctx *cli.Context, src storage.Provider, first, last string) error {
	plans, err := src.GetPlans()
	if err != nil {
		return fmt.Errorf("failed to get workout plans from source: %w", err)
	}
	for _, p := range plans {
		if err := ctx.Store.AddPlan(p); err != nil {
			return err
		}
	}

	exercises, err := src.GetExercises("")
	if err != nil {
		return fmt.Errorf("failed to get exercises from source: %w", err)
	}
	for _, e := range exercises {
		if err := ctx.Store.AddExercise(e); err != nil {
			return err
		}
	}
	fmt.Printf("    Copied %d workout plans with %d exercises\n", len(plans), len(exercises))

	logs, err := src.GetLogsInRange(first, last)
	if err != nil {
		return fmt.Errorf("failed to get workout logs from source: %w", err)
	}
	for _, l := range logs {
		if err := ctx.Store.AddLog(l); err != nil {
			return err
		}
	}
	fmt.Printf("    Copied %d logged sets\n", len(logs))
	return nil
}
