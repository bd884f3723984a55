package usecases

import (
	"context"
	"fmt"

	"stride/internal/domain/backlog"
	"stride/internal/domain/project"
	"stride/internal/shared/logger"
)

// ListEpicsUseCase lists the epics under a project
type ListEpicsUseCase struct {
	epicRepo backlog.EpicRepository
	guard    *accessGuard
	logger   logger.Interface
}

// NewListEpicsUseCase creates a new list epics use case
func NewListEpicsUseCase(
	epicRepo backlog.EpicRepository,
	projectRepo project.Repository,
	log logger.Interface,
) *ListEpicsUseCase {
	return &ListEpicsUseCase{
		epicRepo: epicRepo,
		guard:    newAccessGuard(projectRepo, epicRepo, nil),
		logger:   log,
	}
}

// Execute lists the epics of the project, restricted to members
func (uc *ListEpicsUseCase) Execute(ctx context.Context, projectID, requesterID uint) ([]*EpicResult, error) {
	if err := uc.guard.requireProjectMember(ctx, projectID, requesterID); err != nil {
		return nil, err
	}

	entities, err := uc.epicRepo.ListByProject(ctx, projectID)
	if err != nil {
		return nil, fmt.Errorf("failed to list epics: %w", err)
	}

	results := make([]*EpicResult, 0, len(entities))
	for _, entity := range entities {
		results = append(results, epicResult(entity))
	}
	return results, nil
}
