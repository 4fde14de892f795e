package main

import (
	"fmt"
	"os"

	"github.com/alecthomas/kong"

	"github.com/julianstephens/liftshift/internal/cli"
	"github.com/julianstephens/liftshift/internal/cli/events"
	"github.com/julianstephens/liftshift/internal/cli/friend"
	"github.com/julianstephens/liftshift/internal/cli/schedule"
	"github.com/julianstephens/liftshift/internal/cli/settings"
	"github.com/julianstephens/liftshift/internal/cli/shifts"
	"github.com/julianstephens/liftshift/internal/cli/suggest"
	"github.com/julianstephens/liftshift/internal/cli/system"
	"github.com/julianstephens/liftshift/internal/cli/training"
	"github.com/julianstephens/liftshift/internal/constants"
	apperrors "github.com/julianstephens/liftshift/internal/errors"
	"github.com/julianstephens/liftshift/internal/logger"
)

var CLI struct {
	Version kong.VersionFlag
	Config  string `help:"SQLite database path or PostgreSQL connection string. For PostgreSQL, credentials must NOT be embedded in the connection string. Use the OS keyring, LIFTSHIFT_DB_CONNECTION or .pgpass instead." type:"string" default:"${default_config}"`
	Debug   bool   `help:"Log debug output to stderr."`

	Init     system.InitCmd       `cmd:"" help:"Initialize liftshift storage."`
	Migrate  system.MigrateCmd    `cmd:"" help:"Run database migrations."`
	Doctor   system.DoctorCmd     `cmd:"" help:"Run health checks and diagnostics."`
	Keyring  system.KeyringCmd    `cmd:"" help:"Manage the PostgreSQL connection string in the OS keyring."`
	Settings settings.SettingsCmd `cmd:"" help:"Manage cycle, timezone and hour targets."`
	Tui      system.TuiCmd        `cmd:"" help:"Launch the interactive TUI." default:"1"`

	Cycle   schedule.CycleCmd  `cmd:"" help:"Show the training cycle."`
	Week    schedule.WeekCmd   `cmd:"" help:"Show the calendar of one week."`
	Hours   schedule.HoursCmd  `cmd:"" help:"Show monthly work hours and the forecast."`
	Check   schedule.CheckCmd  `cmd:"" help:"Check a time range for conflicts."`
	Suggest suggest.SuggestCmd `cmd:"" help:"Suggest workouts or work shifts."`

	Shift  shifts.ShiftCmd  `cmd:"" help:"Manage work shifts."`
	Event  events.EventCmd  `cmd:"" help:"Manage schedule events."`
	Friend friend.FriendCmd `cmd:"" help:"Manage the training partner's timetable."`

	Plan     training.PlanCmd     `cmd:"" help:"Manage workout plans and exercises."`
	Log      training.LogCmd      `cmd:"" help:"Record and review completed sets."`
	Progress training.ProgressCmd `cmd:"" help:"Analyze strength progress per exercise."`

	Notify system.NotifyCmd `cmd:"" hidden:"" help:"Send today's workout to the tray app (used internally)."`
}

// storeless commands open or bypass the store themselves.
var storeless = map[string]bool{
	"init":    true,
	"keyring": true,
	"doctor":  true,
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name(constants.AppName),
		kong.Description("Workout and work shift planner around a 40-day training cycle"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact:             true,
			NoExpandSubcommands: true,
		}),
		kong.Vars{
			"version":        constants.Version,
			"default_config": constants.DefaultConfigPath,
		},
	)

	config, source := cli.ResolveConfig(CLI.Config)
	if err := logger.Init(logger.Config{Debug: CLI.Debug, ConfigDir: cli.ConfigDir(config)}); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: logging disabled: %v\n", err)
	}
	logger.Debug("Resolved database", "source", source)

	store, err := cli.OpenStore(config, source)
	if err != nil {
		apperrors.Fatal(err)
	}
	defer store.Close()

	appCtx := cli.NewContext(store)

	if !storeless[rootCommand(ctx)] {
		if err := store.Load(); err != nil {
			store.Close()
			apperrors.Fatal(err)
		}
	}

	if err := ctx.Run(appCtx); err != nil {
		store.Close()
		apperrors.Fatal(err)
	}
}

// rootCommand returns the top-level command of the selected path, e.g. "keyring" for "keyring set".
func rootCommand(ctx *kong.Context) string {
	node := ctx.Selected()
	for node != nil && node.Parent != nil && node.Parent.Type == kong.CommandNode {
		node = node.Parent
	}
	if node == nil {
		return ""
	}
	return node.Name
}
