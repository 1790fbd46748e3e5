package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/pixelforge/nexus-tui/models"
)

var (
	appStyle        = lipgloss.NewStyle().Padding(1, 2)
	titleStyle      = lipgloss.NewStyle().Bold(true)
	helpStyle       = lipgloss.NewStyle().Faint(true)
	errorStyle      = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))
	overlayBoxStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(1, 2)
)

// Status badge styles matching the web client's palette: green for active,
// yellow for pending, blue for completed, orange for on hold and a neutral
// grey for anything unrecognised.
var (
	statusActiveStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	statusPendingStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	statusCompletedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("12"))
	statusOnHoldStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("208"))
	statusUnknownStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
)

// statusBadge renders the status label with its style. Unrecognised values
// render as "Unknown" with the neutral style — never an error.
func statusBadge(p models.Project) string {
	label := p.StatusLabel()
	switch p.Status {
	case models.StatusActive:
		return statusActiveStyle.Render(label)
	case models.StatusPending:
		return statusPendingStyle.Render(label)
	case models.StatusCompleted:
		return statusCompletedStyle.Render(label)
	case models.StatusOnHold:
		return statusOnHoldStyle.Render(label)
	default:
		return statusUnknownStyle.Render(label)
	}
}
