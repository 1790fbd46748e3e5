package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/pixelforge/nexus-tui/models"
)

func TestNewProjectForm_Defaults(t *testing.T) {
	form := NewProjectForm()

	assert.False(t, form.Editing())
	assert.Equal(t, models.StatusActive, form.Status)
}

func TestFormFromProject(t *testing.T) {
	deadline, _ := time.Parse("2006-01-02", "2026-12-01")
	p := models.Project{
		ID:          "p1",
		Name:        "Alpha",
		Description: "first",
		Status:      models.StatusOnHold,
		Deadline:    models.APITime{Time: deadline},
	}

	form := FormFromProject(p)

	assert.True(t, form.Editing())
	assert.Equal(t, "2026-12-01", form.Deadline)
	assert.Equal(t, models.StatusOnHold, form.Status)
}

func TestFormFromProject_NoDeadline(t *testing.T) {
	form := FormFromProject(models.Project{ID: "p1", Name: "Alpha", Status: models.StatusActive})

	assert.Empty(t, form.Deadline)
}

func TestFormFromProject_BlankStatusDefaults(t *testing.T) {
	form := FormFromProject(models.Project{ID: "p1", Name: "Alpha"})

	assert.Equal(t, models.StatusActive, form.Status)
}

func TestDraft_KeepsValuesVerbatim(t *testing.T) {
	form := ProjectForm{
		ID:          "p1",
		Name:        "  Alpha  ",
		Description: "desc",
		Deadline:    "2026-12-01",
		Status:      models.StatusPending,
	}

	draft := form.Draft()

	assert.Equal(t, "  Alpha  ", draft.Name)
	assert.Equal(t, "2026-12-01", draft.Deadline)
	assert.Equal(t, models.StatusPending, draft.Status)
}
