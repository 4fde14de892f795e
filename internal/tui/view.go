package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/liftshift/internal/cli"
	"github.com/julianstephens/liftshift/internal/constants"
)

func (m Model) View() string {
	if m.state == StateConfirmAccept {
		return m.confirmView()
	}

	var b strings.Builder
	b.WriteString(m.header())
	b.WriteString("\n")
	b.WriteString(m.tabsView())
	b.WriteString("\n\n")

	switch m.state {
	case StateWeek:
		b.WriteString(m.week.View())
	case StateWorkouts:
		b.WriteString(m.workouts.View())
	case StateShifts:
		b.WriteString(m.shifts.View())
	case StateHours:
		b.WriteString(m.hours.View())
	}

	b.WriteString("\n")
	if m.status != "" {
		b.WriteString(m.status)
	}
	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys))

	return docStyle.Render(b.String())
}

func (m Model) header() string {
	end := m.weekStart.AddDate(0, 0, 6)
	title := fmt.Sprintf("Week of %s to %s", m.weekStart.Format(constants.DateFormat), end.Format(constants.DateFormat))
	if m.loading {
		title += " " + cli.MutedStyle.Render("(loading…)")
	}
	return cli.TitleStyle.Render(title)
}

func (m Model) tabsView() string {
	active := m.tabIndex()
	rendered := make([]string, 0, len(tabs))
	for i, t := range tabs {
		if i == active {
			rendered = append(rendered, activeTabStyle.Render(t.title))
		} else {
			rendered = append(rendered, inactiveTabStyle.Render(t.title))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, rendered...)
}

func (m Model) confirmView() string {
	noun := "workouts"
	if m.previousState == StateShifts {
		noun = "shifts"
	}
	question := fmt.Sprintf("Save %d suggested %s to the schedule?", m.pending(), noun)
	dialog := lipgloss.JoinVertical(lipgloss.Center,
		question,
		"",
		"[y] Yes    [n] No",
	)
	box := confirmStyle.Render(dialog)
	if m.width == 0 || m.height == 0 {
		return box
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, box)
}
