package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/pixelforge/nexus-tui/internal/policy"
	"github.com/pixelforge/nexus-tui/internal/service"
	"github.com/pixelforge/nexus-tui/internal/view"
	"github.com/pixelforge/nexus-tui/models"
)

// AdminDashboardModel is the admin home screen: the full stat cards
// (totals, budget, team, overdue) plus the status distribution, with a
// shortcut for creating a project.
type AdminDashboardModel struct {
	ctx      context.Context
	projects service.ClientProjectService
	session  models.Session

	stats   view.Stats
	loading bool
	spinner spinner.Model
	errMsg  string
}

// NewAdminDashboardModel creates the admin dashboard. Projects are fetched
// on mount.
func NewAdminDashboardModel(ctx context.Context, projects service.ClientProjectService, session models.Session) *AdminDashboardModel {
	s := spinner.New()
	s.Spinner = spinner.MiniDot
	return &AdminDashboardModel{
		ctx:      ctx,
		projects: projects,
		session:  session,
		loading:  true,
		spinner:  s,
	}
}

func (m *AdminDashboardModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, cmdLoadProjects(m.ctx, m.projects))
}

func (m *AdminDashboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case projectsLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.errMsg = "Failed to load dashboard. Press r to try again."
			return m, nil
		}
		m.errMsg = ""
		m.stats = view.Compute(msg.projects, time.Now())
		return m, nil
	case spinner.TickMsg:
		if m.loading {
			var cmd tea.Cmd
			m.spinner, cmd = m.spinner.Update(msg)
			return m, cmd
		}
		return m, nil
	case tea.KeyMsg:
		switch msg.String() {
		case "p":
			return m, func() tea.Msg { return NavigateTo{Route: policy.RouteProjects} }
		case "n":
			return m, func() tea.Msg { return NavigateTo{Route: policy.RouteCreateProject} }
		case "a":
			return m, func() tea.Msg { return NavigateTo{Route: policy.RouteAccount} }
		case "r":
			if !m.loading {
				m.loading = true
				return m, tea.Batch(m.spinner.Tick, cmdLoadProjects(m.ctx, m.projects))
			}
		}
	}

	return m, nil
}

func (m *AdminDashboardModel) View() string {
	var b strings.Builder

	if m.loading {
		b.WriteString(m.spinner.View())
		b.WriteString(" Loading...\n")
		return renderPage("ADMIN DASHBOARD", strings.TrimRight(b.String(), "\n"), "")
	}
	if m.errMsg != "" {
		b.WriteString(errorStyle.Render(m.errMsg))
		return renderPage("ADMIN DASHBOARD", b.String(), "r: try again │ ctrl+l: log out")
	}

	b.WriteString(fmt.Sprintf("Total projects │ %d\n", m.stats.Total))
	b.WriteString(fmt.Sprintf("Total budget   │ %s\n", formatMoney(m.stats.TotalBudget)))
	b.WriteString(fmt.Sprintf("Team members   │ %d\n", m.stats.TeamMembers))
	b.WriteString(fmt.Sprintf("Overdue        │ %d\n", m.stats.Overdue))
	b.WriteString("\nStatus distribution\n")

	rows := []struct {
		label string
		count int
	}{
		{"Active", m.stats.Active},
		{"Pending", m.stats.Pending},
		{"Completed", m.stats.Completed},
		{"On Hold", m.stats.OnHold},
	}
	for _, row := range rows {
		percent := m.stats.Percent(row.count)
		b.WriteString(fmt.Sprintf("%-9s │ %-20s %3d%% (%d)\n", row.label, distributionBar(percent), percent, row.count))
	}

	return renderPage("ADMIN DASHBOARD", strings.TrimRight(b.String(), "\n"), "p: projects │ n: new project │ a: account │ r: refresh │ ctrl+l: log out")
}

// distributionBar renders a 20-cell bar for a whole-number percentage.
func distributionBar(percent int) string {
	filled := percent / 5
	if filled > 20 {
		filled = 20
	}
	return strings.Repeat("█", filled) + strings.Repeat("░", 20-filled)
}
