package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/pixelforge/nexus-tui/internal/policy"
	"github.com/pixelforge/nexus-tui/models"
)

// AccountModel shows the signed-in profile. The only mutations offered here
// are navigation and the global logout hotkey.
type AccountModel struct {
	session models.Session
}

// NewAccountModel creates the account screen from a session snapshot.
func NewAccountModel(session models.Session) *AccountModel {
	return &AccountModel{session: session}
}

func (m *AccountModel) Init() tea.Cmd {
	return nil
}

func (m *AccountModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "esc":
			return m, func() tea.Msg { return NavigateTo{Route: policy.RouteHome} }
		case "p":
			return m, func() tea.Msg { return NavigateTo{Route: policy.RouteProjects} }
		}
	}
	return m, nil
}

func (m *AccountModel) View() string {
	var b strings.Builder

	user := m.session.User
	if user == nil {
		b.WriteString("Not signed in\n")
	} else {
		b.WriteString(fmt.Sprintf("Name  │ %s\n", user.Name))
		b.WriteString(fmt.Sprintf("Email │ %s\n", user.Email))
		b.WriteString(fmt.Sprintf("Role  │ %s\n", roleLabel(user.Role)))
	}

	return renderPage("ACCOUNT", strings.TrimRight(b.String(), "\n"), "p: projects │ esc: home │ ctrl+l: log out")
}

func roleLabel(role string) string {
	switch role {
	case models.RoleAdmin:
		return "Administrator"
	case models.RoleMember:
		return "Member"
	default:
		return role
	}
}
