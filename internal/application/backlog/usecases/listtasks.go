package usecases

import (
	"context"
	"fmt"

	"stride/internal/domain/backlog"
	"stride/internal/domain/project"
	"stride/internal/shared/logger"
)

// ListTasksUseCase lists the tasks under a story
type ListTasksUseCase struct {
	taskRepo backlog.TaskRepository
	guard    *accessGuard
	logger   logger.Interface
}

// NewListTasksUseCase creates a new list tasks use case
func NewListTasksUseCase(
	taskRepo backlog.TaskRepository,
	storyRepo backlog.StoryRepository,
	epicRepo backlog.EpicRepository,
	projectRepo project.Repository,
	log logger.Interface,
) *ListTasksUseCase {
	return &ListTasksUseCase{
		taskRepo: taskRepo,
		guard:    newAccessGuard(projectRepo, epicRepo, storyRepo),
		logger:   log,
	}
}

// Execute lists the tasks of the story, restricted to members
func (uc *ListTasksUseCase) Execute(ctx context.Context, storyID, requesterID uint) ([]*TaskResult, error) {
	if _, err := uc.guard.requireStoryAccess(ctx, storyID, requesterID); err != nil {
		return nil, err
	}

	entities, err := uc.taskRepo.ListByStory(ctx, storyID)
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}

	results := make([]*TaskResult, 0, len(entities))
	for _, entity := range entities {
		results = append(results, taskResult(entity))
	}
	return results, nil
}
