// Package adapter provides the transport layer for communicating with the
// PixelForge Nexus server.
//
// The primary abstraction is [APIClient], which decouples the service layer
// from the underlying protocol. The package ships an HTTP/REST
// implementation ([NewHTTPAPIClient]) built on resty.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic
// error handling. Every failure — network error, non-2xx status, or decode
// failure — matches [ErrRequestFailed]; [ErrNotFound] and [ErrUnauthorized]
// refine it for the two statuses callers branch on.
package adapter

import (
	"context"

	"github.com/pixelforge/nexus-tui/models"
)

// TokenSource supplies the current bearer token for outgoing requests.
// Implementations must return the live value at call time so that a logout
// takes effect on the next request; the session store satisfies this.
type TokenSource interface {
	// Token returns the current bearer token, or an empty string when
	// logged out. Requests without a token omit the Authorization header.
	Token() string
}

// APIClient defines transport-agnostic communication with the PixelForge
// Nexus server. Implementations are responsible for serialisation, bearer
// header management, response normalization, and mapping transport-level
// errors to the sentinel values defined in this package.
type APIClient interface {
	// Login authenticates with email and password. On success it returns
	// the opaque bearer token and the resolved account profile. Responses
	// missing either half are rejected at this boundary rather than
	// propagated as a half-authenticated session.
	Login(ctx context.Context, req models.LoginRequest) (models.AuthResponse, error)

	// Register creates a new member account and returns the same payload
	// as Login.
	Register(ctx context.Context, req models.RegisterRequest) (models.AuthResponse, error)

	// ListProjects fetches all project records. Order is server-defined;
	// callers must not assume any sort. Each record is normalized before
	// being returned.
	ListProjects(ctx context.Context) ([]models.Project, error)

	// GetProject fetches a single record by id. Returns an error matching
	// [ErrNotFound] when the server responds 404.
	GetProject(ctx context.Context, id string) (models.Project, error)

	// CreateProject creates a record from the draft; the server assigns id
	// and timestamps.
	CreateProject(ctx context.Context, draft models.ProjectDraft) (models.Project, error)

	// UpdateProject replaces the mutable fields of an existing record.
	// Last write wins; there is no version checking.
	UpdateProject(ctx context.Context, id string, draft models.ProjectDraft) (models.Project, error)

	// DeleteProject removes a record. No response body is required.
	DeleteProject(ctx context.Context, id string) error
}
