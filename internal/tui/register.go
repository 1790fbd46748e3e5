package tui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/pixelforge/nexus-tui/internal/policy"
	"github.com/pixelforge/nexus-tui/internal/service"
)

// RegisterModel is the account-creation screen: name, email, password and a
// confirmation field. A successful registration logs the new member in and
// the root navigates home.
type RegisterModel struct {
	ctx  context.Context
	auth service.ClientAuthService

	inputs     []textinput.Model
	focus      int
	submitting bool
	errMsg     string
}

// NewRegisterModel creates a [RegisterModel] with focus on the name field.
func NewRegisterModel(ctx context.Context, auth service.ClientAuthService) *RegisterModel {
	nameInput := textinput.New()
	nameInput.Placeholder = "name"
	nameInput.CharLimit = 64
	nameInput.Width = 40
	nameInput.Focus()

	emailInput := textinput.New()
	emailInput.Placeholder = "you@example.com"
	emailInput.CharLimit = 64
	emailInput.Width = 40

	passwordInput := textinput.New()
	passwordInput.Placeholder = "password"
	passwordInput.CharLimit = 256
	passwordInput.Width = 40
	passwordInput.EchoMode = textinput.EchoPassword
	passwordInput.EchoCharacter = '*'

	repeatInput := textinput.New()
	repeatInput.Placeholder = "repeat password"
	repeatInput.CharLimit = 256
	repeatInput.Width = 40
	repeatInput.EchoMode = textinput.EchoPassword
	repeatInput.EchoCharacter = '*'

	return &RegisterModel{
		ctx:    ctx,
		auth:   auth,
		inputs: []textinput.Model{nameInput, emailInput, passwordInput, repeatInput},
	}
}

func (m *RegisterModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *RegisterModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if result, ok := msg.(registerResultMsg); ok {
		m.submitting = false
		if result.err != nil {
			m.errMsg = "Registration failed. Please try again."
		}
		return m, nil
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch keyMsg.String() {
		case "esc":
			return m, func() tea.Msg { return NavigateTo{Route: policy.RouteLogin} }
		case "tab":
			m.focusNext()
			return m, nil
		case "shift+tab":
			m.focusPrev()
			return m, nil
		case "enter":
			if m.submitting {
				return m, nil
			}

			name := strings.TrimSpace(m.inputs[0].Value())
			email := strings.TrimSpace(m.inputs[1].Value())
			pass := m.inputs[2].Value()
			repeat := m.inputs[3].Value()
			if name == "" || email == "" || pass == "" {
				m.errMsg = "Name, email and password are required"
				return m, nil
			}
			if pass != repeat {
				m.errMsg = "Passwords do not match"
				return m, nil
			}

			m.errMsg = ""
			m.submitting = true
			return m, m.cmdRegister(name, email, pass)
		}
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

func (m *RegisterModel) View() string {
	var b strings.Builder
	b.WriteString("Create your account\n\n")
	labels := []string{"Name    ", "Email   ", "Password", "Repeat  "}
	for i, input := range m.inputs {
		b.WriteString(labels[i])
		b.WriteString(" │ [")
		b.WriteString(input.View())
		b.WriteString("]\n")
	}

	if m.submitting {
		b.WriteString("\n[Creating account...]\n")
	} else {
		b.WriteString("\n[Create Account]\n")
	}

	if m.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render("Error: " + m.errMsg))
		b.WriteString("\n")
	}

	return renderPage("REGISTER", strings.TrimRight(b.String(), "\n"), "enter: submit │ tab: next field │ esc: back to sign in")
}

func (m *RegisterModel) cmdRegister(name, email, pass string) tea.Cmd {
	ctx := m.ctx
	auth := m.auth

	return func() tea.Msg {
		sess, err := auth.Register(ctx, name, email, pass)
		return registerResultMsg{session: sess, err: err}
	}
}

func (m *RegisterModel) focusNext() {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus + 1) % len(m.inputs)
	m.inputs[m.focus].Focus()
}

func (m *RegisterModel) focusPrev() {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus - 1 + len(m.inputs)) % len(m.inputs)
	m.inputs[m.focus].Focus()
}
