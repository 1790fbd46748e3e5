package models

import (
	"bytes"
	"time"
)

// Project statuses as the server stores them. Records can carry values
// outside this set; the client renders those as "Unknown" and never rejects
// them.
const (
	StatusActive    = "active"
	StatusPending   = "pending"
	StatusCompleted = "completed"
	StatusOnHold    = "on hold"
)

// KnownStatuses is the canonical ordering used by filters and the form's
// status selector.
var KnownStatuses = []string{StatusActive, StatusPending, StatusCompleted, StatusOnHold}

var statusLabels = map[string]string{
	StatusActive:    "Active",
	StatusPending:   "Pending",
	StatusCompleted: "Completed",
	StatusOnHold:    "On Hold",
}

// StatusLabelFor returns the display label for a status value, or "Unknown"
// for anything outside the known set.
func StatusLabelFor(status string) string {
	if label, ok := statusLabels[status]; ok {
		return label
	}
	return "Unknown"
}

// Project is a project record as returned by the server. The id field is
// "_id" on the wire.
type Project struct {
	ID          string   `json:"_id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Deadline    APITime  `json:"deadline"`
	Status      string   `json:"status"`
	Budget      float64  `json:"budget"`
	TeamSize    int      `json:"teamSize"`
	Progress    int      `json:"progress"`
	Tags        []string `json:"tags"`
	CreatedAt   APITime  `json:"createdAt"`
	UpdatedAt   APITime  `json:"updatedAt"`
}

// Normalize repairs fields a lenient server may leave off: a blank status
// becomes active and progress is clamped to 0..100.
func (p *Project) Normalize() {
	if p.Status == "" {
		p.Status = StatusActive
	}
	if p.Progress < 0 {
		p.Progress = 0
	}
	if p.Progress > 100 {
		p.Progress = 100
	}
}

// StatusKnown reports whether the status is one of the known values.
func (p Project) StatusKnown() bool {
	_, ok := statusLabels[p.Status]
	return ok
}

// StatusLabel returns the display label for the record's status.
func (p Project) StatusLabel() string {
	return StatusLabelFor(p.Status)
}

// ProjectDraft is the request body for create and update calls. Deadline
// stays a string ("2006-01-02" or empty); the server owns its parsing.
type ProjectDraft struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Deadline    string `json:"deadline,omitempty"`
	Status      string `json:"status"`
}

// apiTimeLayouts are tried in order when decoding a timestamp.
var apiTimeLayouts = []string{time.RFC3339Nano, time.RFC3339, "2006-01-02"}

// APITime is a timestamp that tolerates the formats the server actually
// emits: RFC 3339 with or without fractional seconds, bare dates, and
// null/empty values. Unparsable values decode to the zero time instead of
// failing the whole record.
type APITime struct {
	time.Time
}

func (t *APITime) UnmarshalJSON(data []byte) error {
	data = bytes.Trim(data, `"`)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		t.Time = time.Time{}
		return nil
	}
	for _, layout := range apiTimeLayouts {
		if parsed, err := time.Parse(layout, string(data)); err == nil {
			t.Time = parsed
			return nil
		}
	}
	t.Time = time.Time{}
	return nil
}

func (t APITime) MarshalJSON() ([]byte, error) {
	if t.IsZero() {
		return []byte("null"), nil
	}
	return []byte(`"` + t.Format(time.RFC3339) + `"`), nil
}
