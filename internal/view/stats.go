package view

import (
	"time"

	"github.com/pixelforge/nexus-tui/models"
)

// Stats are the aggregate dashboard figures for a project collection.
// Status counts are exact matches against the canonical lowercase values;
// records with an unrecognised status contribute to Total only.
type Stats struct {
	Total     int
	Active    int
	Pending   int
	Completed int
	OnHold    int

	// TotalBudget sums the budget field; absent budgets count as 0.
	TotalBudget float64
	// TeamMembers sums the teamSize field; absent values count as 0.
	TeamMembers int
	// Overdue counts records with a deadline in the past whose status is
	// not "completed".
	Overdue int
}

// Compute derives Stats from a snapshot of the collection at the given
// evaluation time.
func Compute(projects []models.Project, now time.Time) Stats {
	var s Stats
	s.Total = len(projects)

	for _, p := range projects {
		switch p.Status {
		case models.StatusActive:
			s.Active++
		case models.StatusPending:
			s.Pending++
		case models.StatusCompleted:
			s.Completed++
		case models.StatusOnHold:
			s.OnHold++
		}

		s.TotalBudget += p.Budget
		s.TeamMembers += p.TeamSize

		if !p.Deadline.IsZero() && p.Status != models.StatusCompleted && p.Deadline.Before(now) {
			s.Overdue++
		}
	}

	return s
}

// Percent returns count as a whole-number percentage of the total, 0 when
// the collection is empty. Used by the status distribution bars.
func (s Stats) Percent(count int) int {
	if s.Total <= 0 {
		return 0
	}
	return int(float64(count)/float64(s.Total)*100 + 0.5)
}
