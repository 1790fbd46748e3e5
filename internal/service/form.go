package service

import (
	"github.com/pixelforge/nexus-tui/models"
)

const deadlineLayout = "2006-01-02"

// ProjectForm is the state of the create-or-edit flow. The mode is decided
// once, at entry, by the presence of the record id: edit when set, create
// otherwise. Field values are kept as entered so a failed submission loses
// nothing.
type ProjectForm struct {
	// ID is the record identifier in edit mode; empty in create mode.
	ID string

	Name        string
	Description string
	// Deadline is the raw form value in "2006-01-02" form, or empty.
	Deadline string
	Status   string
}

// NewProjectForm returns an empty create-mode form with the default status.
func NewProjectForm() ProjectForm {
	return ProjectForm{Status: models.StatusActive}
}

// FormFromProject pre-populates an edit-mode form from an existing record.
func FormFromProject(p models.Project) ProjectForm {
	form := ProjectForm{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Status:      p.Status,
	}
	if !p.Deadline.IsZero() {
		form.Deadline = p.Deadline.Format(deadlineLayout)
	}
	if form.Status == "" {
		form.Status = models.StatusActive
	}
	return form
}

// Editing reports whether the flow entered with an identifier.
func (f ProjectForm) Editing() bool {
	return f.ID != ""
}

// Draft converts the form into the request body for create and update
// calls, applying the default status to blank values.
func (f ProjectForm) Draft() models.ProjectDraft {
	status := f.Status
	if status == "" {
		status = models.StatusActive
	}
	return models.ProjectDraft{
		Name:        f.Name,
		Description: f.Description,
		Deadline:    f.Deadline,
		Status:      status,
	}
}
