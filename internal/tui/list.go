package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/pixelforge/nexus-tui/internal/policy"
	"github.com/pixelforge/nexus-tui/internal/service"
	"github.com/pixelforge/nexus-tui/internal/view"
	"github.com/pixelforge/nexus-tui/models"
)

// statusFilters is the cycle order of the f hotkey.
var statusFilters = []string{view.StatusAll, models.StatusActive, models.StatusPending, models.StatusCompleted, models.StatusOnHold}

// sortKeys is the cycle order of the s hotkey. Deadline first, matching the
// web client's default.
var sortKeys = []view.SortKey{view.SortByDeadline, view.SortByName, view.SortByStatus}

// ListModel is the project list screen. It keeps the raw server-ordered
// collection and re-derives the visible ordering from the ephemeral query
// state on every change; the query is never persisted.
type ListModel struct {
	ctx      context.Context
	projects service.ClientProjectService
	session  models.Session

	raw     []models.Project
	query   view.Query
	sortIdx int

	idx        int
	loading    bool
	spinner    spinner.Model
	errMsg     string
	searchMode bool
	search     textinput.Model
}

// NewListModel creates the list screen. Projects are fetched on mount.
func NewListModel(ctx context.Context, projects service.ClientProjectService, session models.Session) *ListModel {
	s := spinner.New()
	s.Spinner = spinner.MiniDot

	search := textinput.New()
	search.Placeholder = "search projects"
	search.CharLimit = 64
	search.Width = 30

	return &ListModel{
		ctx:      ctx,
		projects: projects,
		session:  session,
		query:    view.Query{Status: view.StatusAll, SortBy: sortKeys[0]},
		loading:  true,
		spinner:  s,
		search:   search,
	}
}

func (m *ListModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, cmdLoadProjects(m.ctx, m.projects))
}

func (m *ListModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case projectsLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.errMsg = "Failed to load products. Please try again later."
			return m, nil
		}
		m.errMsg = ""
		m.raw = msg.projects
		m.clampCursor()
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

	if m.searchMode {
		switch keyMsg.String() {
		case "enter", "esc":
			m.searchMode = false
			m.search.Blur()
			return m, nil
		}
		var cmd tea.Cmd
		m.search, cmd = m.search.Update(keyMsg)
		m.query.Search = m.search.Value()
		m.clampCursor()
		return m, cmd
	}

	switch keyMsg.String() {
	case "up", "k":
		if m.idx > 0 {
			m.idx--
		}
	case "down", "j":
		if m.idx < len(m.derived())-1 {
			m.idx++
		}
	case "enter":
		item, ok := m.current()
		if !ok {
			return m, nil
		}
		return m, func() tea.Msg {
			return NavigateTo{Route: policy.RouteProjectDetail, ProjectID: item.ID}
		}
	case "/":
		m.searchMode = true
		m.search.Focus()
		return m, textinput.Blink
	case "f":
		m.query.Status = nextStatusFilter(m.query.Status)
		m.clampCursor()
	case "s":
		m.sortIdx = (m.sortIdx + 1) % len(sortKeys)
		m.query.SortBy = sortKeys[m.sortIdx]
		m.clampCursor()
	case "n":
		if policy.CanManageProjects(m.session) {
			return m, func() tea.Msg { return NavigateTo{Route: policy.RouteCreateProject} }
		}
	case "e":
		if item, ok := m.current(); ok && policy.CanManageProjects(m.session) {
			return m, func() tea.Msg {
				return NavigateTo{Route: policy.RouteEditProject, ProjectID: item.ID}
			}
		}
	case "r":
		if !m.loading {
			m.loading = true
			m.errMsg = ""
			return m, tea.Batch(m.spinner.Tick, cmdLoadProjects(m.ctx, m.projects))
		}
	case "esc":
		return m, func() tea.Msg { return NavigateTo{Route: policy.RouteHome} }
	}

	return m, nil
}

func (m *ListModel) View() string {
	var b strings.Builder

	if m.searchMode || m.query.Search != "" {
		b.WriteString("Search: [")
		b.WriteString(m.search.View())
		b.WriteString("]\n")
	}
	b.WriteString(fmt.Sprintf("Filter: %-9s │ Sort: %s\n\n", filterLabel(m.query.Status), m.query.SortBy))

	switch {
	case m.loading:
		b.WriteString(m.spinner.View())
		b.WriteString(" Loading...\n")
	case m.errMsg != "":
		b.WriteString(errorStyle.Render(m.errMsg))
		b.WriteString("\n")
	default:
		derived := m.derived()
		if len(derived) == 0 {
			b.WriteString("No projects found\n")
		}
		for i, item := range derived {
			cursor := "  "
			if i == m.idx {
				cursor = "> "
			}
			b.WriteString(fmt.Sprintf("%s%-30s %-10s %s\n",
				cursor, fitText(item.Name, 30), statusBadge(item), formatDeadline(item.Deadline)))
		}
		b.WriteString(fmt.Sprintf("\n%d of %d projects\n", len(derived), len(m.raw)))
	}

	hotKeys := "enter: open │ /: search │ f: filter │ s: sort │ r: refresh │ esc: home"
	if policy.CanManageProjects(m.session) {
		hotKeys = "enter: open │ n: new │ e: edit │ /: search │ f: filter │ s: sort │ r: refresh │ esc: home"
	}
	return renderPage("PROJECTS", strings.TrimRight(b.String(), "\n"), hotKeys)
}

// derived recomputes the visible ordering from the raw snapshot. Cheap for
// the collection sizes this client sees, and guarantees the view never goes
// stale relative to the query.
func (m *ListModel) derived() []models.Project {
	return view.Derive(m.raw, m.query)
}

func (m *ListModel) current() (models.Project, bool) {
	derived := m.derived()
	if len(derived) == 0 || m.idx < 0 || m.idx >= len(derived) {
		return models.Project{}, false
	}
	return derived[m.idx], true
}

func (m *ListModel) clampCursor() {
	if n := len(m.derived()); m.idx >= n {
		m.idx = n - 1
	}
	if m.idx < 0 {
		m.idx = 0
	}
}

func nextStatusFilter(current string) string {
	for i, f := range statusFilters {
		if f == current {
			return statusFilters[(i+1)%len(statusFilters)]
		}
	}
	return statusFilters[0]
}

func filterLabel(status string) string {
	if status == view.StatusAll || status == "" {
		return "all"
	}
	return status
}
