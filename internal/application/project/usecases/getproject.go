package usecases

import (
	"context"
	"fmt"

	"stride/internal/domain/project"
	"stride/internal/shared/errors"
	"stride/internal/shared/logger"
)

// GetProjectUseCase retrieves a single project, restricted to members
type GetProjectUseCase struct {
	projectRepo project.Repository
	logger      logger.Interface
}

// NewGetProjectUseCase creates a new get project use case
func NewGetProjectUseCase(projectRepo project.Repository, log logger.Interface) *GetProjectUseCase {
	return &GetProjectUseCase{
		projectRepo: projectRepo,
		logger:      log,
	}
}

// Execute retrieves the project. Non-members get a forbidden error, not a
// membership listing.
func (uc *GetProjectUseCase) Execute(ctx context.Context, projectID, userID uint) (*ProjectResult, error) {
	entity, err := uc.projectRepo.GetByID(ctx, projectID)
	if err != nil {
		return nil, fmt.Errorf("failed to get project: %w", err)
	}
	if entity == nil {
		return nil, errors.NewNotFoundError("project not found")
	}

	isMember, err := uc.projectRepo.IsMember(ctx, projectID, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to check membership: %w", err)
	}
	if !isMember {
		return nil, errors.NewForbiddenError("not a member of this project")
	}

	return &ProjectResult{
		ID:          entity.ID(),
		Name:        entity.Name(),
		Description: entity.Description(),
		CreatedAt:   entity.CreatedAt(),
	}, nil
}
