package view

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/pixelforge/nexus-tui/models"
)

func TestCompute_CountsAndBudget(t *testing.T) {
	projects := []models.Project{
		{ID: "p1", Status: models.StatusActive, Budget: 100},
		{ID: "p2", Status: models.StatusCompleted, Budget: 50},
		{ID: "p3", Status: models.StatusActive, Budget: 0},
	}

	got := Compute(projects, time.Now())

	assert.Equal(t, 3, got.Total)
	assert.Equal(t, 2, got.Active)
	assert.Equal(t, 1, got.Completed)
	assert.Equal(t, 0, got.Pending)
	assert.Equal(t, 0, got.OnHold)
	assert.InDelta(t, 150.0, got.TotalBudget, 0.001)
}

func TestCompute_UnknownStatusCountsTotalOnly(t *testing.T) {
	projects := []models.Project{
		{ID: "p1", Status: "archived", Budget: 10, TeamSize: 4},
	}

	got := Compute(projects, time.Now())

	assert.Equal(t, 1, got.Total)
	assert.Equal(t, 0, got.Active+got.Pending+got.Completed+got.OnHold)
	assert.Equal(t, 4, got.TeamMembers)
}

func TestCompute_Overdue(t *testing.T) {
	now := time.Date(2026, 6, 15, 12, 0, 0, 0, time.UTC)
	past := models.APITime{Time: now.AddDate(0, -1, 0)}
	future := models.APITime{Time: now.AddDate(0, 1, 0)}

	projects := []models.Project{
		{ID: "p1", Status: models.StatusActive, Deadline: past},     // overdue
		{ID: "p2", Status: models.StatusCompleted, Deadline: past},  // done, never overdue
		{ID: "p3", Status: models.StatusPending, Deadline: future},  // still ahead
		{ID: "p4", Status: models.StatusActive},                     // no deadline
		{ID: "p5", Status: models.StatusOnHold, Deadline: past},     // overdue
	}

	got := Compute(projects, now)

	assert.Equal(t, 2, got.Overdue)
}

func TestCompute_EmptyCollection(t *testing.T) {
	got := Compute(nil, time.Now())

	assert.Equal(t, Stats{}, got)
}

func TestPercent(t *testing.T) {
	tests := []struct {
		name  string
		stats Stats
		count int
		want  int
	}{
		{"empty total", Stats{Total: 0}, 5, 0},
		{"half", Stats{Total: 4}, 2, 50},
		{"rounds up", Stats{Total: 3}, 2, 67},
		{"rounds down", Stats{Total: 3}, 1, 33},
		{"full", Stats{Total: 7}, 7, 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.stats.Percent(tt.count))
		})
	}
}
