// Package view derives presentation state from raw project collections:
// filtered and sorted orderings plus aggregate statistics. Everything here
// is a pure function over a snapshot — nothing is cached or incrementally
// maintained, so derived state can be rebuilt at any time.
package view

import (
	"sort"
	"strings"

	"github.com/pixelforge/nexus-tui/models"
)

// SortKey selects the ordering of a derived view.
type SortKey string

const (
	SortByName     SortKey = "name"
	SortByDeadline SortKey = "deadline"
	SortByStatus   SortKey = "status"
)

// StatusAll is the status filter value that matches every record.
const StatusAll = "all"

// Query is the ephemeral per-view filter and sort state. It is never
// persisted.
type Query struct {
	// Search matches records whose name or description contains the term,
	// case-insensitively. Empty matches everything.
	Search string
	// Status keeps only records with exactly this status; StatusAll (or
	// empty) keeps all.
	Status string
	// SortBy orders the filtered records. Unknown keys leave the filtered
	// order untouched.
	SortBy SortKey
}

// Derive returns the filtered, stably sorted view of projects. The input
// slice is not modified; ties retain their post-filter relative order.
func Derive(projects []models.Project, q Query) []models.Project {
	search := strings.ToLower(strings.TrimSpace(q.Search))

	filtered := make([]models.Project, 0, len(projects))
	for _, p := range projects {
		if !matchesSearch(p, search) {
			continue
		}
		if q.Status != "" && q.Status != StatusAll && p.Status != q.Status {
			continue
		}
		filtered = append(filtered, p)
	}

	switch q.SortBy {
	case SortByName:
		sort.SliceStable(filtered, func(i, j int) bool {
			return strings.ToLower(filtered[i].Name) < strings.ToLower(filtered[j].Name)
		})
	case SortByDeadline:
		sort.SliceStable(filtered, func(i, j int) bool {
			return deadlineLess(filtered[i], filtered[j])
		})
	case SortByStatus:
		sort.SliceStable(filtered, func(i, j int) bool {
			return filtered[i].Status < filtered[j].Status
		})
	}

	return filtered
}

func matchesSearch(p models.Project, search string) bool {
	if search == "" {
		return true
	}
	return strings.Contains(strings.ToLower(p.Name), search) ||
		strings.Contains(strings.ToLower(p.Description), search)
}

// deadlineLess orders dated records chronologically and places records
// without a deadline after all dated ones, preserving input order among
// themselves.
func deadlineLess(a, b models.Project) bool {
	switch {
	case a.Deadline.IsZero():
		return false
	case b.Deadline.IsZero():
		return true
	default:
		return a.Deadline.Before(b.Deadline.Time)
	}
}
