package usecases

import (
	"context"
	"fmt"

	"stride/internal/domain/backlog"
	"stride/internal/domain/project"
	"stride/internal/shared/errors"
	"stride/internal/shared/logger"
)

// GetTaskUseCase retrieves a single task
type GetTaskUseCase struct {
	taskRepo backlog.TaskRepository
	guard    *accessGuard
	logger   logger.Interface
}

// NewGetTaskUseCase creates a new get task use case
func NewGetTaskUseCase(
	taskRepo backlog.TaskRepository,
	storyRepo backlog.StoryRepository,
	epicRepo backlog.EpicRepository,
	projectRepo project.Repository,
	log logger.Interface,
) *GetTaskUseCase {
	return &GetTaskUseCase{
		taskRepo: taskRepo,
		guard:    newAccessGuard(projectRepo, epicRepo, storyRepo),
		logger:   log,
	}
}

// Execute retrieves the task, restricted to project members
func (uc *GetTaskUseCase) Execute(ctx context.Context, taskID, requesterID uint) (*TaskResult, error) {
	entity, err := uc.taskRepo.GetByID(ctx, taskID)
	if err != nil {
		return nil, fmt.Errorf("failed to get task: %w", err)
	}
	if entity == nil {
		return nil, errors.NewNotFoundError("task not found")
	}

	if _, err := uc.guard.requireStoryAccess(ctx, entity.StoryID(), requesterID); err != nil {
		return nil, err
	}
	return taskResult(entity), nil
}
