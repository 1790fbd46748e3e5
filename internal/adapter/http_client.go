package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"

	"github.com/pixelforge/nexus-tui/internal/config"
	"github.com/pixelforge/nexus-tui/internal/logger"
	"github.com/pixelforge/nexus-tui/models"
)

type httpAPIClient struct {
	client *resty.Client
	tokens TokenSource
	logger *logger.Logger
}

// NewHTTPAPIClient builds the HTTP implementation of [APIClient] from the
// server config. The bearer token is read from tokens at request time, never
// captured, so session changes apply to the next outgoing call.
func NewHTTPAPIClient(cfg config.Server, tokens TokenSource, log *logger.Logger) (APIClient, error) {
	if cfg.BaseURL == "" {
		cfg.BaseURL = config.DefaultBaseURL
	}
	if cfg.RequestTimeout <= 0 {
		cfg.RequestTimeout = config.DefaultRequestTimeout
	}
	if tokens == nil {
		return nil, fmt.Errorf("nil token source")
	}

	cli := resty.New().
		SetBaseURL(strings.TrimRight(cfg.BaseURL, "/")).
		SetTimeout(cfg.RequestTimeout)

	return &httpAPIClient{client: cli, tokens: tokens, logger: log}, nil
}

func (h *httpAPIClient) Login(ctx context.Context, req models.LoginRequest) (models.AuthResponse, error) {
	resp, err := h.request(ctx).
		SetBody(req).
		Post("/auth/login")
	if err != nil {
		return models.AuthResponse{}, fmt.Errorf("%w: login request: %v", ErrRequestFailed, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.AuthResponse{}, err
	}

	return h.decodeAuthResponse(resp)
}

func (h *httpAPIClient) Register(ctx context.Context, req models.RegisterRequest) (models.AuthResponse, error) {
	resp, err := h.request(ctx).
		SetBody(req).
		Post("/auth/register")
	if err != nil {
		return models.AuthResponse{}, fmt.Errorf("%w: register request: %v", ErrRequestFailed, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.AuthResponse{}, err
	}

	return h.decodeAuthResponse(resp)
}

func (h *httpAPIClient) ListProjects(ctx context.Context) ([]models.Project, error) {
	resp, err := h.request(ctx).Get("/projects")
	if err != nil {
		return nil, fmt.Errorf("%w: list projects request: %v", ErrRequestFailed, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var projects []models.Project
	if err = json.Unmarshal(resp.Body(), &projects); err != nil {
		return nil, fmt.Errorf("%w: decode projects response: %v", ErrRequestFailed, err)
	}

	for i := range projects {
		projects[i].Normalize()
	}
	return projects, nil
}

func (h *httpAPIClient) GetProject(ctx context.Context, id string) (models.Project, error) {
	resp, err := h.request(ctx).Get("/projects/" + id)
	if err != nil {
		return models.Project{}, fmt.Errorf("%w: get project request: %v", ErrRequestFailed, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Project{}, err
	}

	return h.decodeProject(resp)
}

func (h *httpAPIClient) CreateProject(ctx context.Context, draft models.ProjectDraft) (models.Project, error) {
	resp, err := h.request(ctx).
		SetBody(draft).
		Post("/projects")
	if err != nil {
		return models.Project{}, fmt.Errorf("%w: create project request: %v", ErrRequestFailed, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Project{}, err
	}

	return h.decodeProject(resp)
}

func (h *httpAPIClient) UpdateProject(ctx context.Context, id string, draft models.ProjectDraft) (models.Project, error) {
	resp, err := h.request(ctx).
		SetBody(draft).
		Put("/projects/" + id)
	if err != nil {
		return models.Project{}, fmt.Errorf("%w: update project request: %v", ErrRequestFailed, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Project{}, err
	}

	return h.decodeProject(resp)
}

func (h *httpAPIClient) DeleteProject(ctx context.Context, id string) error {
	resp, err := h.request(ctx).Delete("/projects/" + id)
	if err != nil {
		return fmt.Errorf("%w: delete project request: %v", ErrRequestFailed, err)
	}

	return mapHTTPError(resp)
}

// request builds a base request with content type, a correlation id for the
// logs, and the bearer header when a token is currently present.
func (h *httpAPIClient) request(ctx context.Context) *resty.Request {
	req := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetHeader("X-Request-ID", uuid.NewString())

	if token := h.tokens.Token(); token != "" {
		req.SetHeader("Authorization", "Bearer "+token)
	}
	return req
}

func (h *httpAPIClient) decodeAuthResponse(resp *resty.Response) (models.AuthResponse, error) {
	var auth models.AuthResponse
	if err := json.Unmarshal(resp.Body(), &auth); err != nil {
		return models.AuthResponse{}, fmt.Errorf("%w: decode auth response: %v", ErrRequestFailed, err)
	}

	// Reject half-formed payloads here so the session layer never stores
	// a token without a resolved user.
	if auth.Token == "" || auth.User.ID == "" {
		return models.AuthResponse{}, fmt.Errorf("%w: auth response missing token or user", ErrRequestFailed)
	}

	return auth, nil
}

func (h *httpAPIClient) decodeProject(resp *resty.Response) (models.Project, error) {
	var project models.Project
	if err := json.Unmarshal(resp.Body(), &project); err != nil {
		return models.Project{}, fmt.Errorf("%w: decode project response: %v", ErrRequestFailed, err)
	}

	project.Normalize()
	return project, nil
}
