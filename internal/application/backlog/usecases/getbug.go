package usecases

import (
	"context"
	"fmt"

	"stride/internal/domain/backlog"
	"stride/internal/domain/project"
	"stride/internal/shared/errors"
	"stride/internal/shared/logger"
)

// GetBugUseCase retrieves a single bug
type GetBugUseCase struct {
	bugRepo backlog.BugRepository
	guard   *accessGuard
	logger  logger.Interface
}

// NewGetBugUseCase creates a new get bug use case
func NewGetBugUseCase(
	bugRepo backlog.BugRepository,
	storyRepo backlog.StoryRepository,
	epicRepo backlog.EpicRepository,
	projectRepo project.Repository,
	log logger.Interface,
) *GetBugUseCase {
	return &GetBugUseCase{
		bugRepo: bugRepo,
		guard:   newAccessGuard(projectRepo, epicRepo, storyRepo),
		logger:  log,
	}
}

// Execute retrieves the bug, restricted to project members
func (uc *GetBugUseCase) Execute(ctx context.Context, bugID, requesterID uint) (*BugResult, error) {
	entity, err := uc.bugRepo.GetByID(ctx, bugID)
	if err != nil {
		return nil, fmt.Errorf("failed to get bug: %w", err)
	}
	if entity == nil {
		return nil, errors.NewNotFoundError("bug not found")
	}

	if _, err := uc.guard.requireStoryAccess(ctx, entity.StoryID(), requesterID); err != nil {
		return nil, err
	}
	return bugResult(entity), nil
}
