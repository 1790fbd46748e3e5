package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/pixelforge/nexus-tui/internal/policy"
	"github.com/pixelforge/nexus-tui/internal/service"
	"github.com/pixelforge/nexus-tui/models"
)

// DetailModel is the single-project screen. It fetches the record on mount
// and, for admins, offers edit and a confirmed delete.
type DetailModel struct {
	ctx      context.Context
	projects service.ClientProjectService
	session  models.Session
	id       string

	project models.Project
	loading bool
	spinner spinner.Model
	errMsg  string
	status  string
	confirm confirmOverlay
}

// NewDetailModel creates the detail screen for one record id.
func NewDetailModel(ctx context.Context, projects service.ClientProjectService, session models.Session, id string) *DetailModel {
	s := spinner.New()
	s.Spinner = spinner.MiniDot
	return &DetailModel{
		ctx:      ctx,
		projects: projects,
		session:  session,
		id:       id,
		loading:  true,
		spinner:  s,
	}
}

func (m *DetailModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.cmdLoad())
}

func (m *DetailModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case projectLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.errMsg = "Failed to load product"
			return m, nil
		}
		m.errMsg = ""
		m.project = msg.project
		return m, nil
	case deleteDoneMsg:
		m.loading = false
		if msg.err != nil {
			m.errMsg = "Failed to delete project"
			return m, nil
		}
		return m, func() tea.Msg { return NavigateTo{Route: policy.RouteProjects} }
	case copiedMsg:
		m.status = "Project id copied to clipboard"
		return m, tea.Tick(2*time.Second, func(time.Time) tea.Msg { return clearStatusMsg{} })
	case clearStatusMsg:
		m.status = ""
		return m, nil
	case spinner.TickMsg:
		if m.loading {
			var cmd tea.Cmd
			m.spinner, cmd = m.spinner.Update(msg)
			return m, cmd
		}
		return m, nil
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	if confirmed, handled := m.confirm.handleKey(keyMsg.String()); handled {
		if confirmed {
			m.loading = true
			return m, tea.Batch(m.spinner.Tick, m.cmdDelete())
		}
		return m, nil
	}

	switch keyMsg.String() {
	case "esc":
		return m, func() tea.Msg { return NavigateTo{Route: policy.RouteProjects} }
	case "e":
		if policy.CanManageProjects(m.session) && !m.loading && m.errMsg == "" {
			id := m.id
			return m, func() tea.Msg {
				return NavigateTo{Route: policy.RouteEditProject, ProjectID: id}
			}
		}
	case "d":
		if policy.CanManageProjects(m.session) && !m.loading && m.errMsg == "" {
			m.confirm.open(fmt.Sprintf("Delete %q? This cannot be undone.", m.project.Name))
		}
	case "c":
		if !m.loading && m.errMsg == "" {
			return m, m.cmdCopyID()
		}
	case "r":
		if !m.loading {
			m.loading = true
			m.errMsg = ""
			return m, tea.Batch(m.spinner.Tick, m.cmdLoad())
		}
	}

	return m, nil
}

func (m *DetailModel) View() string {
	var b strings.Builder

	switch {
	case m.loading:
		b.WriteString(m.spinner.View())
		b.WriteString(" Loading...\n")
	case m.errMsg != "":
		b.WriteString(errorStyle.Render(m.errMsg))
		b.WriteString("\n")
	default:
		p := m.project
		b.WriteString(fmt.Sprintf("Name        │ %s\n", p.Name))
		b.WriteString(fmt.Sprintf("Status      │ %s\n", statusBadge(p)))
		b.WriteString(fmt.Sprintf("Deadline    │ %s\n", formatDeadline(p.Deadline)))
		b.WriteString(fmt.Sprintf("Budget      │ %s\n", formatMoney(p.Budget)))
		b.WriteString(fmt.Sprintf("Team size   │ %d\n", p.TeamSize))
		b.WriteString(fmt.Sprintf("Progress    │ %d%%\n", p.Progress))
		if len(p.Tags) > 0 {
			b.WriteString(fmt.Sprintf("Tags        │ %s\n", strings.Join(p.Tags, ", ")))
		}
		b.WriteString(fmt.Sprintf("Created     │ %s\n", formatTimestamp(p.CreatedAt)))
		b.WriteString(fmt.Sprintf("Updated     │ %s\n", formatTimestamp(p.UpdatedAt)))
		if p.Description != "" {
			b.WriteString("\n")
			b.WriteString(p.Description)
			b.WriteString("\n")
		}
	}

	if m.status != "" {
		b.WriteString("\n")
		b.WriteString(helpStyle.Render(m.status))
		b.WriteString("\n")
	}
	if m.confirm.active {
		b.WriteString("\n")
		b.WriteString(m.confirm.render())
		b.WriteString("\n")
	}

	hotKeys := "c: copy id │ r: refresh │ esc: back"
	if policy.CanManageProjects(m.session) {
		hotKeys = "e: edit │ d: delete │ c: copy id │ r: refresh │ esc: back"
	}
	return renderPage("PROJECT", strings.TrimRight(b.String(), "\n"), hotKeys)
}

func (m *DetailModel) cmdLoad() tea.Cmd {
	ctx := m.ctx
	svc := m.projects
	id := m.id
	return func() tea.Msg {
		project, err := svc.Get(ctx, id)
		return projectLoadedMsg{project: project, err: err}
	}
}

func (m *DetailModel) cmdDelete() tea.Cmd {
	ctx := m.ctx
	svc := m.projects
	id := m.id
	return func() tea.Msg {
		return deleteDoneMsg{err: svc.Delete(ctx, id)}
	}
}

func (m *DetailModel) cmdCopyID() tea.Cmd {
	id := m.project.ID
	return func() tea.Msg {
		if err := clipboard.WriteAll(id); err != nil {
			return clearStatusMsg{}
		}
		return copiedMsg{}
	}
}
