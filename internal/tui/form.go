package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/pixelforge/nexus-tui/internal/adapter"
	"github.com/pixelforge/nexus-tui/internal/policy"
	"github.com/pixelforge/nexus-tui/internal/service"
	"github.com/pixelforge/nexus-tui/internal/validators"
	"github.com/pixelforge/nexus-tui/models"
)

const (
	formFieldName = iota
	formFieldDescription
	formFieldDeadline
	formFieldStatus
)

// FormModel is the create-or-edit screen. The mode is fixed at entry by the
// presence of a record id: with an id the form loads the record and submits
// an update, without one it submits a create. Entered values survive a
// failed submission.
type FormModel struct {
	ctx      context.Context
	projects service.ClientProjectService

	form       service.ProjectForm
	inputs     []textinput.Model
	statusIdx  int
	focus      int
	loading    bool
	submitting bool
	errMsg     string
}

// NewFormModel creates the form screen. An empty id means create mode; a
// non-empty id means edit mode and the record is fetched on mount.
func NewFormModel(ctx context.Context, projects service.ClientProjectService, id string) *FormModel {
	nameInput := textinput.New()
	nameInput.Placeholder = "project name"
	nameInput.CharLimit = 128
	nameInput.Width = 40
	nameInput.Focus()

	descriptionInput := textinput.New()
	descriptionInput.Placeholder = "description"
	descriptionInput.CharLimit = 512
	descriptionInput.Width = 40

	deadlineInput := textinput.New()
	deadlineInput.Placeholder = "YYYY-MM-DD"
	deadlineInput.CharLimit = 10
	deadlineInput.Width = 40

	m := &FormModel{
		ctx:      ctx,
		projects: projects,
		form:     service.NewProjectForm(),
		inputs:   []textinput.Model{nameInput, descriptionInput, deadlineInput},
	}
	if id != "" {
		m.form.ID = id
		m.loading = true
	}
	m.statusIdx = statusIndex(m.form.Status)
	return m
}

func (m *FormModel) Init() tea.Cmd {
	if m.form.Editing() {
		return tea.Batch(textinput.Blink, m.cmdLoadForm())
	}
	return textinput.Blink
}

func (m *FormModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case formLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.errMsg = "Failed to load project"
			return m, nil
		}
		m.form = msg.form
		m.inputs[formFieldName].SetValue(m.form.Name)
		m.inputs[formFieldDescription].SetValue(m.form.Description)
		m.inputs[formFieldDeadline].SetValue(m.form.Deadline)
		m.statusIdx = statusIndex(m.form.Status)
		return m, nil
	case submitDoneMsg:
		m.submitting = false
		if msg.err != nil {
			m.errMsg = submitErrorMessage(msg.err)
			return m, nil
		}
		return m, func() tea.Msg { return NavigateTo{Route: policy.RouteProjects} }
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch keyMsg.String() {
	case "esc":
		if m.form.Editing() {
			id := m.form.ID
			return m, func() tea.Msg {
				return NavigateTo{Route: policy.RouteProjectDetail, ProjectID: id}
			}
		}
		return m, func() tea.Msg { return NavigateTo{Route: policy.RouteProjects} }
	case "tab", "down":
		m.focusField((m.focus + 1) % (len(m.inputs) + 1))
		return m, nil
	case "shift+tab", "up":
		m.focusField((m.focus - 1 + len(m.inputs) + 1) % (len(m.inputs) + 1))
		return m, nil
	case "left":
		if m.focus == formFieldStatus {
			m.statusIdx = (m.statusIdx - 1 + len(models.KnownStatuses)) % len(models.KnownStatuses)
			return m, nil
		}
	case "right":
		if m.focus == formFieldStatus {
			m.statusIdx = (m.statusIdx + 1) % len(models.KnownStatuses)
			return m, nil
		}
	case "enter":
		if m.submitting || m.loading {
			return m, nil
		}
		m.form.Name = strings.TrimSpace(m.inputs[formFieldName].Value())
		m.form.Description = strings.TrimSpace(m.inputs[formFieldDescription].Value())
		m.form.Deadline = strings.TrimSpace(m.inputs[formFieldDeadline].Value())
		m.form.Status = models.KnownStatuses[m.statusIdx]
		m.errMsg = ""
		m.submitting = true
		return m, m.cmdSubmit()
	}

	if m.focus < len(m.inputs) {
		var cmd tea.Cmd
		m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m *FormModel) View() string {
	title := "NEW PROJECT"
	if m.form.Editing() {
		title = "EDIT PROJECT"
	}

	var b strings.Builder
	if m.loading {
		b.WriteString("Loading...\n")
		return renderPage(title, strings.TrimRight(b.String(), "\n"), "esc: cancel")
	}

	labels := []string{"Name       ", "Description", "Deadline   "}
	for i, input := range m.inputs {
		b.WriteString(labels[i])
		b.WriteString(" │ [")
		b.WriteString(input.View())
		b.WriteString("]\n")
	}

	statusMarker := "  "
	if m.focus == formFieldStatus {
		statusMarker = "> "
	}
	b.WriteString(fmt.Sprintf("Status      │ %s◄ %s ►\n", statusMarker, models.StatusLabelFor(models.KnownStatuses[m.statusIdx])))

	if m.submitting {
		b.WriteString("\n[Saving...]\n")
	} else if m.form.Editing() {
		b.WriteString("\n[Save Changes]\n")
	} else {
		b.WriteString("\n[Create Project]\n")
	}

	if m.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render("Error: " + m.errMsg))
		b.WriteString("\n")
	}

	return renderPage(title, strings.TrimRight(b.String(), "\n"), "enter: submit │ tab: next field │ ←/→: change status │ esc: cancel")
}

func (m *FormModel) focusField(next int) {
	if m.focus < len(m.inputs) {
		m.inputs[m.focus].Blur()
	}
	m.focus = next
	if m.focus < len(m.inputs) {
		m.inputs[m.focus].Focus()
	}
}

func (m *FormModel) cmdLoadForm() tea.Cmd {
	ctx := m.ctx
	svc := m.projects
	id := m.form.ID
	return func() tea.Msg {
		form, err := svc.LoadForm(ctx, id)
		return formLoadedMsg{form: form, err: err}
	}
}

func (m *FormModel) cmdSubmit() tea.Cmd {
	ctx := m.ctx
	svc := m.projects
	form := m.form
	return func() tea.Msg {
		project, err := svc.Submit(ctx, form)
		return submitDoneMsg{project: project, err: err}
	}
}

// submitErrorMessage maps validation sentinels to their own wording and
// everything else to a generic save failure.
func submitErrorMessage(err error) string {
	for _, validation := range []error{
		validators.ErrNameRequired,
		validators.ErrDescriptionRequired,
		validators.ErrInvalidDeadline,
		validators.ErrInvalidStatus,
	} {
		if errors.Is(err, validation) {
			return validation.Error()
		}
	}
	if errors.Is(err, adapter.ErrUnauthorized) {
		return "Session expired. Please sign in again."
	}
	return "Failed to save project. Please try again."
}

func statusIndex(status string) int {
	for i, s := range models.KnownStatuses {
		if s == status {
			return i
		}
	}
	return 0
}
