package usecases

import (
	"context"
	"fmt"

	"stride/internal/domain/backlog"
	"stride/internal/domain/project"
	"stride/internal/shared/errors"
	"stride/internal/shared/logger"
)

// CreateEpicCommand contains the data needed to create an epic
type CreateEpicCommand struct {
	Title       string
	Description string
	ProjectID   uint
	RequesterID uint
}

// CreateEpicUseCase creates an epic under a project
type CreateEpicUseCase struct {
	epicRepo backlog.EpicRepository
	guard    *accessGuard
	logger   logger.Interface
}

// NewCreateEpicUseCase creates a new create epic use case
func NewCreateEpicUseCase(
	epicRepo backlog.EpicRepository,
	projectRepo project.Repository,
	log logger.Interface,
) *CreateEpicUseCase {
	return &CreateEpicUseCase{
		epicRepo: epicRepo,
		guard:    newAccessGuard(projectRepo, epicRepo, nil),
		logger:   log,
	}
}

// Execute creates the epic. Titles are unique within a project.
func (uc *CreateEpicUseCase) Execute(ctx context.Context, cmd CreateEpicCommand) (*EpicResult, error) {
	if err := uc.guard.requireProjectMember(ctx, cmd.ProjectID, cmd.RequesterID); err != nil {
		return nil, err
	}

	existing, err := uc.epicRepo.GetByTitleAndProject(ctx, cmd.Title, cmd.ProjectID)
	if err != nil {
		return nil, fmt.Errorf("failed to check existing epic: %w", err)
	}
	if existing != nil {
		uc.logger.Warnw("epic title already used in project", "project_id", cmd.ProjectID)
		return nil, errors.NewConflictError("epic with this title already exists in the project")
	}

	entity, err := backlog.NewEpic(cmd.Title, cmd.Description, cmd.ProjectID)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.epicRepo.Save(ctx, entity); err != nil {
		return nil, err
	}

	uc.logger.Infow("epic created", "id", entity.ID(), "project_id", cmd.ProjectID)
	return epicResult(entity), nil
}
