package usecases

import (
	"context"

	"stride/internal/domain/backlog"
	"stride/internal/domain/project"
	"stride/internal/shared/logger"
)

// GetStoryUseCase retrieves a single story
type GetStoryUseCase struct {
	guard  *accessGuard
	logger logger.Interface
}

// NewGetStoryUseCase creates a new get story use case
func NewGetStoryUseCase(
	storyRepo backlog.StoryRepository,
	epicRepo backlog.EpicRepository,
	projectRepo project.Repository,
	log logger.Interface,
) *GetStoryUseCase {
	return &GetStoryUseCase{
		guard:  newAccessGuard(projectRepo, epicRepo, storyRepo),
		logger: log,
	}
}

// Execute retrieves the story, restricted to project members
func (uc *GetStoryUseCase) Execute(ctx context.Context, storyID, requesterID uint) (*StoryResult, error) {
	entity, err := uc.guard.requireStoryAccess(ctx, storyID, requesterID)
	if err != nil {
		return nil, err
	}
	return storyResult(entity), nil
}
