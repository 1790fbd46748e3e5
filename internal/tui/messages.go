package tui

import (
	"github.com/pixelforge/nexus-tui/internal/policy"
	"github.com/pixelforge/nexus-tui/internal/service"
	"github.com/pixelforge/nexus-tui/models"
)

// NavigateTo requests a cross-page navigation. Every NavigateTo passes
// through the access policy in the root model before a page mounts.
type NavigateTo struct {
	Route policy.Route
	// ProjectID carries the record id for detail and edit routes.
	ProjectID string
}

type loginResultMsg struct {
	session models.Session
	err     error
}

type registerResultMsg struct {
	session models.Session
	err     error
}

type loggedOutMsg struct {
	err error
}

type projectsLoadedMsg struct {
	projects []models.Project
	err      error
}

type projectLoadedMsg struct {
	project models.Project
	err     error
}

type formLoadedMsg struct {
	form service.ProjectForm
	err  error
}

type submitDoneMsg struct {
	project models.Project
	err     error
}

type deleteDoneMsg struct {
	err error
}

type copiedMsg struct{}

type clearStatusMsg struct{}
