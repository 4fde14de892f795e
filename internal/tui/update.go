package tui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/liftshift/internal/cli"
	"github.com/julianstephens/liftshift/internal/cli/schedule"
	"github.com/julianstephens/liftshift/internal/cli/suggest"
	apperrors "github.com/julianstephens/liftshift/internal/errors"
	"github.com/julianstephens/liftshift/internal/logger"
	"github.com/julianstephens/liftshift/internal/tui/components/pane"
	"github.com/julianstephens/liftshift/internal/utils"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resize()
		return m, nil

	case weekLoadedMsg:
		if !msg.weekStart.Equal(m.weekStart) {
			// a newer week was requested while this one loaded
			return m, nil
		}
		m.loading = false
		m.apply(msg)
		return m, nil

	case acceptedMsg:
		if msg.err != nil {
			logger.Error("Failed to save suggestions", "error", msg.err)
			m.status = dangerStyle.Render(apperrors.Format(msg.err))
			return m, nil
		}
		m.status = msg.text
		m.loading = true
		return m, m.load()

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m.updateActive(msg)
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.state == StateConfirmAccept {
		switch {
		case key.Matches(msg, m.keys.Confirm):
			m.state = m.previousState
			return m, m.accept()
		case key.Matches(msg, m.keys.Cancel), key.Matches(msg, m.keys.Quit):
			m.state = m.previousState
			m.status = ""
		}
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		m.resize()
		return m, nil
	case key.Matches(msg, m.keys.Tab):
		m.state = tabs[(m.tabIndex()+1)%len(tabs)].state
		return m, nil
	case key.Matches(msg, m.keys.ShiftTab):
		m.state = tabs[(m.tabIndex()+len(tabs)-1)%len(tabs)].state
		return m, nil
	case key.Matches(msg, m.keys.PrevWeek):
		return m.moveTo(m.weekStart.AddDate(0, 0, -7))
	case key.Matches(msg, m.keys.NextWeek):
		return m.moveTo(m.weekStart.AddDate(0, 0, 7))
	case key.Matches(msg, m.keys.Today):
		today, err := m.ctx.ResolveDate("today")
		if err != nil {
			m.status = dangerStyle.Render(apperrors.Format(err))
			return m, nil
		}
		return m.moveTo(utils.WeekStart(today))
	case key.Matches(msg, m.keys.Regenerate):
		m.loading = true
		m.status = ""
		return m, m.load()
	case key.Matches(msg, m.keys.Accept):
		if n := m.pending(); n > 0 {
			m.previousState = m.state
			m.state = StateConfirmAccept
			return m, nil
		}
		m.status = warningStyle.Render("Nothing to accept on this tab.")
		return m, nil
	}

	return m.updateActive(msg)
}

// moveTo switches to another week. Suggestions of the old week are dropped
// so nothing can be accepted until the new week has loaded.
func (m Model) moveTo(weekStart time.Time) (tea.Model, tea.Cmd) {
	m.weekStart = weekStart
	m.loading = true
	m.status = ""
	m.workoutSuggestions = nil
	m.shiftSuggestions = nil
	for _, p := range []*pane.Model{&m.week, &m.workouts, &m.shifts, &m.hours} {
		p.SetLoading()
	}
	return m, m.load()
}

// updateActive forwards scrolling to the visible pane.
func (m Model) updateActive(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch m.state {
	case StateWeek:
		m.week, cmd = m.week.Update(msg)
	case StateWorkouts:
		m.workouts, cmd = m.workouts.Update(msg)
	case StateShifts:
		m.shifts, cmd = m.shifts.Update(msg)
	case StateHours:
		m.hours, cmd = m.hours.Update(msg)
	}
	return m, cmd
}

func (m *Model) apply(msg weekLoadedMsg) {
	if msg.weekErr != nil {
		m.week.SetError(apperrors.Format(msg.weekErr))
	} else {
		m.week.SetContent(schedule.RenderWeek(msg.days))
	}

	m.workoutSuggestions = msg.workouts
	switch {
	case msg.workoutsErr != nil:
		m.workoutSuggestions = nil
		m.workouts.SetError(apperrors.Format(msg.workoutsErr))
	case len(msg.workouts) == 0:
		m.workouts.SetContent("")
	default:
		m.workouts.SetContent(suggest.WorkoutTable(msg.workouts))
	}

	m.shiftSuggestions = msg.shifts
	switch {
	case msg.shiftsErr != nil:
		m.shiftSuggestions = nil
		m.shifts.SetError(apperrors.Format(msg.shiftsErr))
	case len(msg.shifts) == 0:
		m.shifts.SetContent("")
	default:
		m.shifts.SetContent(suggest.ShiftTable(msg.shifts))
	}

	if msg.hoursErr != nil {
		m.hours.SetError(apperrors.Format(msg.hoursErr))
	} else {
		m.hours.SetContent(schedule.RenderHours(msg.stats, msg.forecast))
	}
}

// pending is the number of suggestions the accept key would save. Nothing is
// pending while a load is in flight.
func (m Model) pending() int {
	if m.loading {
		return 0
	}
	switch m.activeState() {
	case StateWorkouts:
		return len(m.workoutSuggestions)
	case StateShifts:
		return len(m.shiftSuggestions)
	}
	return 0
}

func (m Model) accept() tea.Cmd {
	ctx := m.ctx
	switch m.state {
	case StateWorkouts:
		chosen := m.workoutSuggestions
		return func() tea.Msg {
			if err := suggest.AcceptWorkouts(ctx, chosen); err != nil {
				return acceptedMsg{err: err}
			}
			return acceptedMsg{text: cli.SuccessStyle.Render(fmt.Sprintf("✓ Saved %d workouts", len(chosen)))}
		}
	case StateShifts:
		chosen := m.shiftSuggestions
		return func() tea.Msg {
			saved, skipped, err := suggest.AcceptShifts(ctx, chosen)
			if err != nil {
				return acceptedMsg{err: err}
			}
			text := cli.SuccessStyle.Render(fmt.Sprintf("✓ Saved %d shifts", saved))
			if len(skipped) > 0 {
				text += " " + warningStyle.Render(fmt.Sprintf("(%d skipped, overlapping an existing shift)", len(skipped)))
			}
			return acceptedMsg{text: text}
		}
	}
	return nil
}

// activeState is the tab on screen, including behind the confirm dialog.
func (m Model) activeState() SessionState {
	if m.state == StateConfirmAccept {
		return m.previousState
	}
	return m.state
}

func (m Model) tabIndex() int {
	state := m.activeState()
	for i, t := range tabs {
		if t.state == state {
			return i
		}
	}
	return 0
}

func (m *Model) resize() {
	h, v := docStyle.GetFrameSize()
	// title, tabs, status and help lines
	chrome := 4 + lipgloss.Height(m.help.View(m.keys))
	width := m.width - h
	height := m.height - v - chrome
	if height < 1 {
		height = 1
	}
	m.help.Width = width
	for _, p := range []*pane.Model{&m.week, &m.workouts, &m.shifts, &m.hours} {
		p.SetSize(width, height)
	}
}
