// Package validators holds client-side field validation for project drafts.
// The form flow runs these checks before a submission is attempted, so an
// invalid draft never produces a network call.
package validators

import (
	"slices"
	"strings"
	"time"

	"github.com/pixelforge/nexus-tui/models"
)

// Field name constants used to restrict validation to a subset of fields.
const (
	// FieldName targets the required project name.
	FieldName = "name"

	// FieldDescription targets the required project description.
	FieldDescription = "description"

	// FieldDeadline targets the optional due date in "2006-01-02" form.
	FieldDeadline = "deadline"

	// FieldStatus targets the enumerated status value.
	FieldStatus = "status"
)

const deadlineLayout = "2006-01-02"

// ProjectValidator validates [models.ProjectDraft] values before they are
// submitted to the server.
type ProjectValidator struct {
}

// NewProjectValidator constructs a new ProjectValidator.
func NewProjectValidator() *ProjectValidator {
	return &ProjectValidator{}
}

// Validate checks the draft's fields. Optional field arguments restrict
// validation to the named subset; when omitted, all fields are validated.
// The first failing check is returned.
func (v *ProjectValidator) Validate(draft models.ProjectDraft, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldName, FieldDescription, FieldDeadline, FieldStatus}
	}

	for _, field := range fields {
		var err error
		switch field {
		case FieldName:
			err = v.validateName(draft)
		case FieldDescription:
			err = v.validateDescription(draft)
		case FieldDeadline:
			err = v.validateDeadline(draft)
		case FieldStatus:
			err = v.validateStatus(draft)
		}
		if err != nil {
			return err
		}
	}

	return nil
}

func (v *ProjectValidator) validateName(draft models.ProjectDraft) error {
	if strings.TrimSpace(draft.Name) == "" {
		return ErrNameRequired
	}
	return nil
}

func (v *ProjectValidator) validateDescription(draft models.ProjectDraft) error {
	if strings.TrimSpace(draft.Description) == "" {
		return ErrDescriptionRequired
	}
	return nil
}

func (v *ProjectValidator) validateDeadline(draft models.ProjectDraft) error {
	if draft.Deadline == "" {
		return nil
	}
	if _, err := time.Parse(deadlineLayout, draft.Deadline); err != nil {
		return ErrInvalidDeadline
	}
	return nil
}

func (v *ProjectValidator) validateStatus(draft models.ProjectDraft) error {
	if !slices.Contains(models.KnownStatuses, draft.Status) {
		return ErrInvalidStatus
	}
	return nil
}
