package cli

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/julianstephens/liftshift/internal/models"
)

var (
	TitleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")).
			Bold(true)

	MutedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))

	SuccessStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("42"))

	WarningStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("214"))

	ErrorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")).
			Bold(true)

	headerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("99")).
			Bold(true).
			Padding(0, 1)

	cellStyle = lipgloss.NewStyle().Padding(0, 1)
)

// Table renders rows with the shared list styling.
func Table(headers []string, rows [][]string) string {
	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(MutedStyle).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		})
	return t.Render()
}

// ConfidenceStyle colours a workout confidence level.
func ConfidenceStyle(c models.Confidence) lipgloss.Style {
	switch c {
	case models.ConfidenceIdeal:
		return SuccessStyle
	case models.ConfidenceGood:
		return WarningStyle
	default:
		return MutedStyle
	}
}

// PriorityStyle colours a shift suggestion priority.
func PriorityStyle(p models.Priority) lipgloss.Style {
	switch p {
	case models.PriorityHigh:
		return ErrorStyle
	case models.PriorityMedium:
		return WarningStyle
	default:
		return MutedStyle
	}
}
