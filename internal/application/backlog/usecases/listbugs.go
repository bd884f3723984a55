package usecases

import (
	"context"
	"fmt"

	"stride/internal/domain/backlog"
	"stride/internal/domain/project"
	"stride/internal/shared/logger"
)

// ListBugsUseCase lists the bugs under a story
type ListBugsUseCase struct {
	bugRepo backlog.BugRepository
	guard   *accessGuard
	logger  logger.Interface
}

// NewListBugsUseCase creates a new list bugs use case
func NewListBugsUseCase(
	bugRepo backlog.BugRepository,
	storyRepo backlog.StoryRepository,
	epicRepo backlog.EpicRepository,
	projectRepo project.Repository,
	log logger.Interface,
) *ListBugsUseCase {
	return &ListBugsUseCase{
		bugRepo: bugRepo,
		guard:   newAccessGuard(projectRepo, epicRepo, storyRepo),
		logger:  log,
	}
}

// Execute lists the bugs of the story, restricted to members
func (uc *ListBugsUseCase) Execute(ctx context.Context, storyID, requesterID uint) ([]*BugResult, error) {
	if _, err := uc.guard.requireStoryAccess(ctx, storyID, requesterID); err != nil {
		return nil, err
	}

	entities, err := uc.bugRepo.ListByStory(ctx, storyID)
	if err != nil {
		return nil, fmt.Errorf("failed to list bugs: %w", err)
	}

	results := make([]*BugResult, 0, len(entities))
	for _, entity := range entities {
		results = append(results, bugResult(entity))
	}
	return results, nil
}
