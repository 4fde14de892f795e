// Package tui is the interactive week planner: tabs for the calendar, both
// suggestion generators and the monthly hour forecast.
package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/julianstephens/liftshift/internal/cli"
	"github.com/julianstephens/liftshift/internal/cli/schedule"
	"github.com/julianstephens/liftshift/internal/cli/suggest"
	"github.com/julianstephens/liftshift/internal/constants"
	"github.com/julianstephens/liftshift/internal/models"
	"github.com/julianstephens/liftshift/internal/scheduler"
	"github.com/julianstephens/liftshift/internal/tui/components/pane"
)

type SessionState int

const (
	StateWeek SessionState = iota
	StateWorkouts
	StateShifts
	StateHours
	StateConfirmAccept
)

type tab struct {
	title string
	state SessionState
}

var tabs = []tab{
	{"Week", StateWeek},
	{"Workouts", StateWorkouts},
	{"Shifts", StateShifts},
	{"Hours", StateHours},
}

// weekLoadedMsg carries everything the tabs show for one week. Per-tab errors
// are kept separately so a missing cycle only blanks the workout tab.
type weekLoadedMsg struct {
	weekStart time.Time
	days      []scheduler.CalendarDay
	workouts  []models.WorkoutSuggestion
	shifts    []models.ShiftSuggestion
	stats     scheduler.MonthStats
	forecast  scheduler.MonthForecast

	weekErr, workoutsErr, shiftsErr, hoursErr error
}

// acceptedMsg reports the outcome of saving the current tab's suggestions.
type acceptedMsg struct {
	text string
	err  error
}

type Model struct {
	ctx       *cli.Context
	weekStart time.Time

	state         SessionState
	previousState SessionState

	keys KeyMap
	help help.Model

	week     pane.Model
	workouts pane.Model
	shifts   pane.Model
	hours    pane.Model

	workoutSuggestions []models.WorkoutSuggestion
	shiftSuggestions   []models.ShiftSuggestion

	loading bool
	status  string
	width   int
	height  int
}

func NewModel(ctx *cli.Context, weekStart time.Time) Model {
	return Model{
		ctx:       ctx,
		weekStart: weekStart,
		state:     StateWeek,
		keys:      DefaultKeyMap(),
		help:      help.New(),
		week:      pane.New("No schedule loaded.", 0, 0),
		workouts:  pane.New("No workout slots found this week.", 0, 0),
		shifts:    pane.New("No shift windows found this week.", 0, 0),
		hours:     pane.New("No hours loaded.", 0, 0),
		loading:   true,
	}
}

func (m Model) Init() tea.Cmd {
	return m.load()
}

// load reads the current week in the background.
func (m Model) load() tea.Cmd {
	ctx, weekStart := m.ctx, m.weekStart
	return func() tea.Msg {
		return loadWeek(ctx, weekStart)
	}
}

func loadWeek(ctx *cli.Context, weekStart time.Time) weekLoadedMsg {
	msg := weekLoadedMsg{weekStart: weekStart}
	week := weekStart.Format(constants.DateFormat)

	msg.days, msg.weekErr = schedule.LoadWeek(ctx, weekStart)
	msg.workouts, msg.workoutsErr = suggest.Workouts(ctx, week)
	msg.shifts, msg.shiftsErr = suggest.Shifts(ctx, week)
	msg.stats, msg.forecast, msg.hoursErr = schedule.LoadHours(ctx, weekStart)
	return msg
}
