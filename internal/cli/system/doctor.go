package system

import (
	"fmt"
	"time"

	"github.com/julianstephens/liftshift/internal/cli"
	"github.com/julianstephens/liftshift/internal/storage"
	"github.com/julianstephens/liftshift/internal/storage/sqlite"
	"github.com/julianstephens/liftshift/internal/utils"
)

type DoctorCmd struct{}

type check struct {
	name     string
	needsDB  bool
	warnOnly bool
	run      func(*cli.Context) error
}

var checks = []check{
	{name: "Schema version", needsDB: true, run: checkSchemaVersion},
	{name: "Migrations complete", needsDB: true, run: checkMigrationsComplete},
	{name: "Settings", needsDB: true, run: checkSettings},
	{name: "Training cycle", needsDB: true, warnOnly: true, run: checkCycle},
	{name: "Data validation", needsDB: true, run: checkRecords},
	{name: "Clock/timezone", run: func(*cli.Context) error { return checkClockTimezone() }},
}

func (cmd *DoctorCmd) Run(ctx *cli.Context) error {
	fmt.Println("Running diagnostics...")
	fmt.Println()

	hasError := false
	dbReachable := true

	if err := checkDBReachable(ctx); err != nil {
		printFail("Database reachable", err)
		hasError = true
		dbReachable = false
	} else {
		printOK("Database reachable")
	}

	for _, c := range checks {
		if c.needsDB && !dbReachable {
			fmt.Println(cli.MutedStyle.Render(fmt.Sprintf("⊘ %s: SKIPPED (database not reachable)", c.name)))
			continue
		}
		err := c.run(ctx)
		switch {
		case err == nil:
			printOK(c.name)
		case c.warnOnly:
			fmt.Println(cli.WarningStyle.Render(fmt.Sprintf("⚠ %s: WARNING", c.name)))
			fmt.Printf("   %v\n", err)
		default:
			printFail(c.name, err)
			hasError = true
		}
	}

	fmt.Println()
	if hasError {
		fmt.Println("Diagnostics completed with errors.")
		return fmt.Errorf("one or more health checks failed")
	}

	fmt.Println("All diagnostics passed!")
	return nil
}

func printOK(name string) {
	fmt.Println(cli.SuccessStyle.Render(fmt.Sprintf("✓ %s: OK", name)))
}

func printFail(name string, err error) {
	fmt.Println(cli.ErrorStyle.Render(fmt.Sprintf("❌ %s: FAIL", name)))
	fmt.Printf("   Error: %v\n", err)
}

func checkDBReachable(ctx *cli.Context) error {
	if err := ctx.Store.Load(); err != nil {
		return fmt.Errorf("failed to load database: %w", err)
	}

	// For SQLite, also try a simple query
	if sqliteStore, ok := ctx.Store.(*sqlite.Store); ok {
		db := sqliteStore.GetDB()
		if db == nil {
			return fmt.Errorf("database connection is nil")
		}
		var result int
		if err := db.QueryRow("SELECT 1").Scan(&result); err != nil {
			return fmt.Errorf("failed to query database: %w", err)
		}
	}

	return nil
}

func checkSchemaVersion(ctx *cli.Context) error {
	current, latest, err := ctx.Store.SchemaStatus()
	if err != nil {
		return fmt.Errorf("failed to get schema version: %w", err)
	}
	if current > latest {
		return fmt.Errorf("database schema version (%d) is newer than supported version (%d)", current, latest)
	}
	return nil
}

func checkMigrationsComplete(ctx *cli.Context) error {
	current, latest, err := ctx.Store.SchemaStatus()
	if err != nil {
		return fmt.Errorf("failed to get schema version: %w", err)
	}
	if current < latest {
		return fmt.Errorf("migrations incomplete: current version %d, latest version %d (run 'liftshift migrate')", current, latest)
	}
	return nil
}

func checkSettings(ctx *cli.Context) error {
	settings, err := ctx.Store.GetSettings()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}
	if !utils.ValidateTimezone(settings.Timezone) {
		return fmt.Errorf("invalid timezone %q", settings.Timezone)
	}
	if settings.MonthlyTargetHours < 0 || settings.WeeklyTargetHours < 0 || settings.CategoryMinHours < 0 {
		return fmt.Errorf("hour targets must not be negative")
	}
	return nil
}

func checkCycle(ctx *cli.Context) error {
	_, err := ctx.RequireCycleStart()
	return err
}

// checkRecords runs the ingestion validator over the current week.
func checkRecords(ctx *cli.Context) error {
	weekStart, err := ctx.ResolveWeek("today")
	if err != nil {
		return err
	}
	raw, err := storage.LoadSnapshot(ctx.Store, weekStart)
	if err != nil {
		return err
	}
	if _, issues := ctx.Validator.Sanitize(raw); len(issues) > 0 {
		return fmt.Errorf("%d malformed record(s), first: %s", len(issues), issues[0])
	}
	return nil
}

func checkClockTimezone() error {
	now := time.Now()
	if now.Year() < 2020 || now.Year() > 2100 {
		return fmt.Errorf("system time appears incorrect: %s", now.Format(time.RFC3339))
	}
	return nil
}
