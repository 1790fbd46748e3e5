package tui

import (
	"context"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/pixelforge/nexus-tui/internal/logger"
	"github.com/pixelforge/nexus-tui/internal/policy"
	"github.com/pixelforge/nexus-tui/internal/service"
)

// RootModel is the TUI router:
// 1) resolves every [NavigateTo] through the access policy
// 2) mounts the page the policy allows (views fetch on mount)
// 3) handles the global quit and logout hotkeys
// 4) delegates all other messages to the active page
//
// The guard is also re-evaluated for the current route after a logout, so a
// session cleared while a protected view is open redirects immediately.
type RootModel struct {
	ctx      context.Context
	services *service.ClientServices
	logger   *logger.Logger

	currentRoute policy.Route
	current      tea.Model

	quitByUser bool
}

// newRootModel opens the home route; the policy redirects to the login page
// when the restored session is not authenticated.
func newRootModel(ctx context.Context, services *service.ClientServices, log *logger.Logger) RootModel {
	r := RootModel{ctx: ctx, services: services, logger: log}
	r, _ = r.navigate(NavigateTo{Route: policy.RouteHome})
	return r
}

func (r RootModel) Init() tea.Cmd {
	if r.current == nil {
		return nil
	}
	return r.current.Init()
}

func (r RootModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Global hotkeys for every page.
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, globalKeys.quit):
			r.quitByUser = true
			return r, tea.Quit
		case key.Matches(keyMsg, globalKeys.logout):
			if r.services.Sessions.Authenticated() {
				return r, r.cmdLogout()
			}
		}
	}

	// Cross-page navigation, always through the guard.
	if nav, ok := msg.(NavigateTo); ok {
		next, cmd := r.navigate(nav)
		return next, cmd
	}

	switch result := msg.(type) {
	case loginResultMsg:
		if result.err == nil {
			next, cmd := r.navigate(NavigateTo{Route: policy.RouteHome})
			return next, cmd
		}
	case registerResultMsg:
		if result.err == nil {
			next, cmd := r.navigate(NavigateTo{Route: policy.RouteHome})
			return next, cmd
		}
	case loggedOutMsg:
		// Re-run the guard for the view that is open; with the session
		// cleared it redirects to login.
		next, cmd := r.navigate(NavigateTo{Route: r.currentRoute})
		return next, cmd
	}

	if r.current == nil {
		return r, nil
	}

	updated, cmd := r.current.Update(msg)
	r.current = updated
	return r, cmd
}

func (r RootModel) View() string {
	if r.current == nil {
		return appStyle.Render("PixelForge Nexus")
	}
	return appStyle.Render(r.current.View())
}

// navigate resolves the requested route through the access policy and
// mounts a fresh page for the decision target. Pages are remounted on every
// navigation so each view fetches on mount, like the web client did.
func (r RootModel) navigate(nav NavigateTo) (RootModel, tea.Cmd) {
	snapshot := r.services.Sessions.Current()
	decision := policy.Decide(nav.Route, snapshot)

	projectID := nav.ProjectID
	if decision.Action != policy.Render {
		projectID = ""
	}

	switch decision.Target {
	case policy.RouteLogin:
		r.current = NewLoginModel(r.ctx, r.services.AuthService)
	case policy.RouteRegister:
		r.current = NewRegisterModel(r.ctx, r.services.AuthService)
	case policy.RouteHome:
		if snapshot.IsAdmin() {
			r.current = NewAdminDashboardModel(r.ctx, r.services.ProjectService, snapshot)
		} else {
			r.current = NewDashboardModel(r.ctx, r.services.ProjectService, snapshot)
		}
	case policy.RouteProjects:
		r.current = NewListModel(r.ctx, r.services.ProjectService, snapshot)
	case policy.RouteProjectDetail:
		r.current = NewDetailModel(r.ctx, r.services.ProjectService, snapshot, projectID)
	case policy.RouteCreateProject, policy.RouteEditProject:
		r.current = NewFormModel(r.ctx, r.services.ProjectService, projectID)
	case policy.RouteAccount:
		r.current = NewAccountModel(snapshot)
	default:
		r.current = NewLoginModel(r.ctx, r.services.AuthService)
		decision.Target = policy.RouteLogin
	}

	r.currentRoute = decision.Target
	return r, r.current.Init()
}

func (r RootModel) cmdLogout() tea.Cmd {
	auth := r.services.AuthService
	return func() tea.Msg {
		return loggedOutMsg{err: auth.Logout()}
	}
}
