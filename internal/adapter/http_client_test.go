package adapter

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pixelforge/nexus-tui/internal/config"
	"github.com/pixelforge/nexus-tui/internal/logger"
	"github.com/pixelforge/nexus-tui/models"
)

type staticTokens struct {
	token string
}

func (s *staticTokens) Token() string { return s.token }

func newTestClient(t *testing.T, serverURL, token string) APIClient {
	t.Helper()
	api, err := NewHTTPAPIClient(config.Server{BaseURL: serverURL}, &staticTokens{token: token}, logger.Nop())
	require.NoError(t, err)
	return api
}

// ── Login ────────────────────────────────────────────────────────────────────

func TestLogin_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/auth/login", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		assert.NotEmpty(t, r.Header.Get("X-Request-ID"))
		assert.Empty(t, r.Header.Get("Authorization"))

		var req models.LoginRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "alice@example.com", req.Email)

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(models.AuthResponse{
			Token: "tok-123",
			User:  models.User{ID: "u1", Name: "Alice", Email: req.Email, Role: models.RoleAdmin},
		})
	}))
	defer srv.Close()

	api := newTestClient(t, srv.URL, "")
	got, err := api.Login(context.Background(), models.LoginRequest{Email: "alice@example.com", Password: "secret"})

	require.NoError(t, err)
	assert.Equal(t, "tok-123", got.Token)
	assert.Equal(t, "u1", got.User.ID)
	assert.Equal(t, models.RoleAdmin, got.User.Role)
}

func TestLogin_Unauthorized(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte("invalid credentials"))
	}))
	defer srv.Close()

	api := newTestClient(t, srv.URL, "")
	_, err := api.Login(context.Background(), models.LoginRequest{Email: "alice@example.com", Password: "wrong"})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnauthorized)
	assert.ErrorIs(t, err, ErrRequestFailed)
}

func TestLogin_IncompletePayloadRejected(t *testing.T) {
	tests := []struct {
		name string
		body models.AuthResponse
	}{
		{
			name: "missing token",
			body: models.AuthResponse{User: models.User{ID: "u1"}},
		},
		{
			name: "missing user id",
			body: models.AuthResponse{Token: "tok-123"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				_ = json.NewEncoder(w).Encode(tt.body)
			}))
			defer srv.Close()

			api := newTestClient(t, srv.URL, "")
			_, err := api.Login(context.Background(), models.LoginRequest{Email: "a@b.c", Password: "x"})

			require.Error(t, err)
			assert.ErrorIs(t, err, ErrRequestFailed)
		})
	}
}

// ── Register ─────────────────────────────────────────────────────────────────

func TestRegister_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/auth/register", r.URL.Path)

		_ = json.NewEncoder(w).Encode(models.AuthResponse{
			Token: "tok-456",
			User:  models.User{ID: "u2", Name: "Bob", Email: "bob@example.com", Role: models.RoleMember},
		})
	}))
	defer srv.Close()

	api := newTestClient(t, srv.URL, "")
	got, err := api.Register(context.Background(), models.RegisterRequest{Name: "Bob", Email: "bob@example.com", Password: "secret"})

	require.NoError(t, err)
	assert.Equal(t, "tok-456", got.Token)
	assert.Equal(t, models.RoleMember, got.User.Role)
}

// ── Projects ─────────────────────────────────────────────────────────────────

func TestListProjects_SendsBearerAndNormalizes(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/projects", r.URL.Path)
		assert.Equal(t, "Bearer tok-123", r.Header.Get("Authorization"))

		_, _ = w.Write([]byte(`[
			{"_id":"p1","name":"Alpha","status":"active","progress":150},
			{"_id":"p2","name":"Beta","status":"","progress":-5}
		]`))
	}))
	defer srv.Close()

	api := newTestClient(t, srv.URL, "tok-123")
	got, err := api.ListProjects(context.Background())

	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, 100, got[0].Progress)
	assert.Equal(t, models.StatusActive, got[1].Status)
	assert.Equal(t, 0, got[1].Progress)
}

func TestGetProject_NotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	api := newTestClient(t, srv.URL, "tok-123")
	_, err := api.GetProject(context.Background(), "missing")

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.ErrorIs(t, err, ErrRequestFailed)
}

func TestGetProject_TolerantTimestamps(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{
			"_id":"p1","name":"Alpha","status":"active",
			"deadline":"2026-12-01",
			"createdAt":"2026-01-02T15:04:05Z",
			"updatedAt":"not a timestamp"
		}`))
	}))
	defer srv.Close()

	api := newTestClient(t, srv.URL, "tok-123")
	got, err := api.GetProject(context.Background(), "p1")

	require.NoError(t, err)
	assert.Equal(t, "2026-12-01", got.Deadline.Format("2006-01-02"))
	assert.False(t, got.CreatedAt.IsZero())
	assert.True(t, got.UpdatedAt.IsZero())
}

func TestCreateProject_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/projects", r.URL.Path)

		var draft models.ProjectDraft
		require.NoError(t, json.NewDecoder(r.Body).Decode(&draft))
		assert.Equal(t, "Gamma", draft.Name)
		assert.Equal(t, models.StatusActive, draft.Status)

		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"_id":"p3","name":"Gamma","status":"active"}`))
	}))
	defer srv.Close()

	api := newTestClient(t, srv.URL, "tok-123")
	got, err := api.CreateProject(context.Background(), models.ProjectDraft{
		Name: "Gamma", Description: "third", Status: models.StatusActive,
	})

	require.NoError(t, err)
	assert.Equal(t, "p3", got.ID)
}

func TestUpdateProject_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/projects/p1", r.URL.Path)

		_, _ = w.Write([]byte(`{"_id":"p1","name":"Alpha v2","status":"completed"}`))
	}))
	defer srv.Close()

	api := newTestClient(t, srv.URL, "tok-123")
	got, err := api.UpdateProject(context.Background(), "p1", models.ProjectDraft{
		Name: "Alpha v2", Description: "renamed", Status: models.StatusCompleted,
	})

	require.NoError(t, err)
	assert.Equal(t, "Alpha v2", got.Name)
	assert.Equal(t, models.StatusCompleted, got.Status)
}

func TestDeleteProject_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/projects/p1", r.URL.Path)
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	api := newTestClient(t, srv.URL, "tok-123")
	require.NoError(t, api.DeleteProject(context.Background(), "p1"))
}

func TestDeleteProject_ServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte("boom"))
	}))
	defer srv.Close()

	api := newTestClient(t, srv.URL, "tok-123")
	err := api.DeleteProject(context.Background(), "p1")

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrRequestFailed)
	assert.NotErrorIs(t, err, ErrUnauthorized)
	assert.NotErrorIs(t, err, ErrNotFound)
}

// ── Token liveness ───────────────────────────────────────────────────────────

func TestRequest_TokenReadAtCallTime(t *testing.T) {
	var gotAuth []string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = append(gotAuth, r.Header.Get("Authorization"))
		_, _ = w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	tokens := &staticTokens{token: "first"}
	api, err := NewHTTPAPIClient(config.Server{BaseURL: srv.URL}, tokens, logger.Nop())
	require.NoError(t, err)

	_, err = api.ListProjects(context.Background())
	require.NoError(t, err)

	tokens.token = ""
	_, err = api.ListProjects(context.Background())
	require.NoError(t, err)

	require.Len(t, gotAuth, 2)
	assert.Equal(t, "Bearer first", gotAuth[0])
	assert.Empty(t, gotAuth[1])
}

func TestNewHTTPAPIClient_NilTokenSource(t *testing.T) {
	_, err := NewHTTPAPIClient(config.Server{BaseURL: "http://localhost:1"}, nil, logger.Nop())
	require.Error(t, err)
}
