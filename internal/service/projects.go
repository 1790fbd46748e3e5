package service

import (
	"context"
	"fmt"

	"github.com/pixelforge/nexus-tui/internal/adapter"
	"github.com/pixelforge/nexus-tui/internal/logger"
	"github.com/pixelforge/nexus-tui/internal/validators"
	"github.com/pixelforge/nexus-tui/models"
)

type clientProjectService struct {
	api       adapter.APIClient
	validator *validators.ProjectValidator
	logger    *logger.Logger
}

// NewClientProjectService builds the project collection service.
func NewClientProjectService(api adapter.APIClient, validator *validators.ProjectValidator, log *logger.Logger) ClientProjectService {
	return &clientProjectService{api: api, validator: validator, logger: log}
}

func (p *clientProjectService) List(ctx context.Context) ([]models.Project, error) {
	projects, err := p.api.ListProjects(ctx)
	if err != nil {
		return nil, fmt.Errorf("list projects: %w", err)
	}
	return projects, nil
}

func (p *clientProjectService) Get(ctx context.Context, id string) (models.Project, error) {
	project, err := p.api.GetProject(ctx, id)
	if err != nil {
		return models.Project{}, fmt.Errorf("get project %s: %w", id, err)
	}
	return project, nil
}

func (p *clientProjectService) Delete(ctx context.Context, id string) error {
	if err := p.api.DeleteProject(ctx, id); err != nil {
		return fmt.Errorf("delete project %s: %w", id, err)
	}

	p.logger.Info().Str("project_id", id).Msg("project deleted")
	return nil
}

func (p *clientProjectService) LoadForm(ctx context.Context, id string) (ProjectForm, error) {
	project, err := p.api.GetProject(ctx, id)
	if err != nil {
		return ProjectForm{}, fmt.Errorf("load project %s for edit: %w", id, err)
	}
	return FormFromProject(project), nil
}

func (p *clientProjectService) Submit(ctx context.Context, form ProjectForm) (models.Project, error) {
	draft := form.Draft()
	if err := p.validator.Validate(draft); err != nil {
		return models.Project{}, err
	}

	if form.Editing() {
		project, err := p.api.UpdateProject(ctx, form.ID, draft)
		if err != nil {
			return models.Project{}, fmt.Errorf("update project %s: %w", form.ID, err)
		}
		p.logger.Info().Str("project_id", project.ID).Msg("project updated")
		return project, nil
	}

	project, err := p.api.CreateProject(ctx, draft)
	if err != nil {
		return models.Project{}, fmt.Errorf("create project: %w", err)
	}
	p.logger.Info().Str("project_id", project.ID).Msg("project created")
	return project, nil
}
