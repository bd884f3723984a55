package usecases

import (
	"context"
	"fmt"

	"stride/internal/domain/project"
	"stride/internal/shared/logger"
)

// ListProjectsUseCase returns the projects visible to a user
type ListProjectsUseCase struct {
	projectRepo project.Repository
	logger      logger.Interface
}

// NewListProjectsUseCase creates a new list projects use case
func NewListProjectsUseCase(projectRepo project.Repository, log logger.Interface) *ListProjectsUseCase {
	return &ListProjectsUseCase{
		projectRepo: projectRepo,
		logger:      log,
	}
}

// Execute lists the projects the user is a member of
func (uc *ListProjectsUseCase) Execute(ctx context.Context, userID uint) ([]*ProjectResult, error) {
	entities, err := uc.projectRepo.ListForUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}

	results := make([]*ProjectResult, 0, len(entities))
	for _, entity := range entities {
		results = append(results, &ProjectResult{
			ID:          entity.ID(),
			Name:        entity.Name(),
			Description: entity.Description(),
			CreatedAt:   entity.CreatedAt(),
		})
	}
	return results, nil
}
