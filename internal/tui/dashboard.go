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

// DashboardModel is the member home screen: a welcome line, status counts
// derived from the project collection, and shortcuts into the list and
// account views.
type DashboardModel struct {
	ctx      context.Context
	projects service.ClientProjectService
	session  models.Session

	stats   view.Stats
	loading bool
	spinner spinner.Model
	errMsg  string
}

// NewDashboardModel creates the member dashboard. Projects are fetched on
// mount.
func NewDashboardModel(ctx context.Context, projects service.ClientProjectService, session models.Session) *DashboardModel {
	s := spinner.New()
	s.Spinner = spinner.MiniDot
	return &DashboardModel{
		ctx:      ctx,
		projects: projects,
		session:  session,
		loading:  true,
		spinner:  s,
	}
}

func (m *DashboardModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, cmdLoadProjects(m.ctx, m.projects))
}

func (m *DashboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
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

func (m *DashboardModel) View() string {
	var b strings.Builder

	name := ""
	if m.session.User != nil {
		name = m.session.User.Name
	}
	b.WriteString(fmt.Sprintf("Welcome back, %s!\n\n", name))

	if m.loading {
		b.WriteString(m.spinner.View())
		b.WriteString(" Loading...\n")
	} else if m.errMsg != "" {
		b.WriteString(errorStyle.Render(m.errMsg))
		b.WriteString("\n")
	} else {
		b.WriteString(fmt.Sprintf("Projects   │ %d\n", m.stats.Total))
		b.WriteString(fmt.Sprintf("Active     │ %d\n", m.stats.Active))
		b.WriteString(fmt.Sprintf("Pending    │ %d\n", m.stats.Pending))
		b.WriteString(fmt.Sprintf("Completed  │ %d\n", m.stats.Completed))
	}

	return renderPage("DASHBOARD", strings.TrimRight(b.String(), "\n"), "p: projects │ a: account │ r: refresh │ ctrl+l: log out")
}

// cmdLoadProjects is shared by both dashboards and the list screen.
func cmdLoadProjects(ctx context.Context, svc service.ClientProjectService) tea.Cmd {
	return func() tea.Msg {
		projects, err := svc.List(ctx)
		return projectsLoadedMsg{projects: projects, err: err}
	}
}
