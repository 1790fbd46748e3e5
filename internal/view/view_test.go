package view

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pixelforge/nexus-tui/models"
)

func project(id, name, status string) models.Project {
	return models.Project{ID: id, Name: name, Status: status}
}

func withDeadline(p models.Project, day string) models.Project {
	parsed, err := time.Parse("2006-01-02", day)
	if err != nil {
		panic(err)
	}
	p.Deadline = models.APITime{Time: parsed}
	return p
}

func names(projects []models.Project) []string {
	out := make([]string, 0, len(projects))
	for _, p := range projects {
		out = append(out, p.Name)
	}
	return out
}

// ── Filtering ────────────────────────────────────────────────────────────────

func TestDerive_SearchIsCaseInsensitive(t *testing.T) {
	projects := []models.Project{
		project("p1", "Website Redesign", "active"),
		project("p2", "Mobile App", "active"),
		{ID: "p3", Name: "Backend", Description: "redesign the API layer", Status: "active"},
	}

	got := Derive(projects, Query{Search: "REDESIGN"})

	assert.Equal(t, []string{"Website Redesign", "Backend"}, names(got))
}

func TestDerive_SearchMatchesDescription(t *testing.T) {
	projects := []models.Project{
		{ID: "p1", Name: "Alpha", Description: "migrate billing", Status: "active"},
		{ID: "p2", Name: "Beta", Description: "new landing page", Status: "active"},
	}

	got := Derive(projects, Query{Search: "billing"})

	require.Len(t, got, 1)
	assert.Equal(t, "Alpha", got[0].Name)
}

func TestDerive_StatusFilterExactMatch(t *testing.T) {
	projects := []models.Project{
		project("p1", "Alpha", models.StatusActive),
		project("p2", "Beta", models.StatusCompleted),
		project("p3", "Gamma", models.StatusActive),
	}

	got := Derive(projects, Query{Status: models.StatusActive})

	assert.Equal(t, []string{"Alpha", "Gamma"}, names(got))
}

func TestDerive_StatusAllKeepsEverything(t *testing.T) {
	projects := []models.Project{
		project("p1", "Alpha", models.StatusActive),
		project("p2", "Beta", "weird-status"),
	}

	assert.Len(t, Derive(projects, Query{Status: StatusAll}), 2)
	assert.Len(t, Derive(projects, Query{Status: ""}), 2)
}

func TestDerive_DoesNotModifyInput(t *testing.T) {
	projects := []models.Project{
		project("p2", "Beta", "active"),
		project("p1", "Alpha", "active"),
	}

	_ = Derive(projects, Query{SortBy: SortByName})

	assert.Equal(t, []string{"Beta", "Alpha"}, names(projects))
}

// ── Sorting ──────────────────────────────────────────────────────────────────

func TestDerive_SortByNameIgnoresCase(t *testing.T) {
	projects := []models.Project{
		project("p1", "Banana", "active"),
		project("p2", "apple", "active"),
	}

	got := Derive(projects, Query{SortBy: SortByName})

	assert.Equal(t, []string{"apple", "Banana"}, names(got))
}

func TestDerive_SortByDeadlinePlacesUndatedLast(t *testing.T) {
	projects := []models.Project{
		project("p1", "NoDate A", "active"),
		withDeadline(project("p2", "Later", "active"), "2026-12-01"),
		project("p3", "NoDate B", "active"),
		withDeadline(project("p4", "Sooner", "active"), "2026-01-15"),
	}

	got := Derive(projects, Query{SortBy: SortByDeadline})

	assert.Equal(t, []string{"Sooner", "Later", "NoDate A", "NoDate B"}, names(got))
}

func TestDerive_SortIsStable(t *testing.T) {
	projects := []models.Project{
		project("p1", "Same", models.StatusPending),
		project("p2", "Same", models.StatusActive),
		project("p3", "Same", models.StatusActive),
	}

	got := Derive(projects, Query{SortBy: SortByName})

	// Equal names keep their input order.
	assert.Equal(t, []string{"p1", "p2", "p3"}, []string{got[0].ID, got[1].ID, got[2].ID})
}

func TestDerive_UnknownSortKeyKeepsFilteredOrder(t *testing.T) {
	projects := []models.Project{
		project("p2", "Beta", "active"),
		project("p1", "Alpha", "active"),
	}

	got := Derive(projects, Query{SortBy: SortKey("bogus")})

	assert.Equal(t, []string{"Beta", "Alpha"}, names(got))
}

func TestDerive_FilterThenSortCombined(t *testing.T) {
	projects := []models.Project{
		project("p1", "Zeta", models.StatusActive),
		project("p2", "Alpha", models.StatusCompleted),
		project("p3", "Mid", models.StatusActive),
	}

	got := Derive(projects, Query{Status: models.StatusActive, SortBy: SortByName})

	assert.Equal(t, []string{"Mid", "Zeta"}, names(got))
}
