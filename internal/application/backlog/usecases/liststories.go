package usecases

import (
	"context"
	"fmt"

	"stride/internal/domain/backlog"
	"stride/internal/domain/project"
	"stride/internal/shared/logger"
)

// ListStoriesUseCase lists the stories under an epic
type ListStoriesUseCase struct {
	storyRepo backlog.StoryRepository
	guard     *accessGuard
	logger    logger.Interface
}

// NewListStoriesUseCase creates a new list stories use case
func NewListStoriesUseCase(
	storyRepo backlog.StoryRepository,
	epicRepo backlog.EpicRepository,
	projectRepo project.Repository,
	log logger.Interface,
) *ListStoriesUseCase {
	return &ListStoriesUseCase{
		storyRepo: storyRepo,
		guard:     newAccessGuard(projectRepo, epicRepo, storyRepo),
		logger:    log,
	}
}

// Execute lists the stories of the epic, restricted to members
func (uc *ListStoriesUseCase) Execute(ctx context.Context, epicID, requesterID uint) ([]*StoryResult, error) {
	if _, err := uc.guard.requireEpicAccess(ctx, epicID, requesterID); err != nil {
		return nil, err
	}

	entities, err := uc.storyRepo.ListByEpic(ctx, epicID)
	if err != nil {
		return nil, fmt.Errorf("failed to list stories: %w", err)
	}

	results := make([]*StoryResult, 0, len(entities))
	for _, entity := range entities {
		results = append(results, storyResult(entity))
	}
	return results, nil
}
