// Package service wires the transport adapter and the session store into
// the operations the screens call. Services stay free of rendering concerns
// so the flows can be tested against fakes and httptest servers.
package service

import (
	"context"

	"github.com/pixelforge/nexus-tui/models"
)

// ClientAuthService drives the authentication flows against the server and
// the session store.
type ClientAuthService interface {
	// Login authenticates with email and password and, on success, makes
	// the session authenticated and persisted. Returns the new session
	// snapshot.
	Login(ctx context.Context, email, password string) (models.Session, error)

	// Register creates a member account and logs it in, mirroring Login.
	Register(ctx context.Context, name, email, password string) (models.Session, error)

	// Logout clears the session. Idempotent.
	Logout() error
}

// ClientProjectService exposes the project collection and the
// create-or-edit submission flow.
type ClientProjectService interface {
	// List fetches all project records in server-defined order.
	List(ctx context.Context) ([]models.Project, error)

	// Get fetches a single record by id.
	Get(ctx context.Context, id string) (models.Project, error)

	// Delete removes a record. Callers must have obtained explicit user
	// confirmation before invoking this.
	Delete(ctx context.Context, id string) error

	// LoadForm fetches an existing record and returns it as a pre-filled
	// edit-mode form.
	LoadForm(ctx context.Context, id string) (ProjectForm, error)

	// Submit validates the form client-side and then either creates (no
	// id) or updates (id present) the record. Validation failures are
	// returned before any network call.
	Submit(ctx context.Context, form ProjectForm) (models.Project, error)
}
