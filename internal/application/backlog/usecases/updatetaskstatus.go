package usecases

import (
	"context"
	"fmt"

	"stride/internal/domain/backlog"
	"stride/internal/domain/project"
	"stride/internal/shared/errors"
	"stride/internal/shared/logger"
)

// UpdateTaskStatusCommand moves a task through the workflow
type UpdateTaskStatusCommand struct {
	TaskID      uint
	Status      string
	RequesterID uint
}

// UpdateTaskStatusUseCase changes the workflow status of a task
type UpdateTaskStatusUseCase struct {
	taskRepo backlog.TaskRepository
	guard    *accessGuard
	logger   logger.Interface
}

// NewUpdateTaskStatusUseCase creates a new update task status use case
func NewUpdateTaskStatusUseCase(
	taskRepo backlog.TaskRepository,
	storyRepo backlog.StoryRepository,
	epicRepo backlog.EpicRepository,
	projectRepo project.Repository,
	log logger.Interface,
) *UpdateTaskStatusUseCase {
	return &UpdateTaskStatusUseCase{
		taskRepo: taskRepo,
		guard:    newAccessGuard(projectRepo, epicRepo, storyRepo),
		logger:   log,
	}
}

// Execute moves the task to the given status. Any valid status transition is
// allowed, the workflow has no forced ordering.
func (uc *UpdateTaskStatusUseCase) Execute(ctx context.Context, cmd UpdateTaskStatusCommand) (*TaskResult, error) {
	entity, err := uc.taskRepo.GetByID(ctx, cmd.TaskID)
	if err != nil {
		return nil, fmt.Errorf("failed to get task: %w", err)
	}
	if entity == nil {
		return nil, errors.NewNotFoundError("task not found")
	}

	if _, err := uc.guard.requireStoryAccess(ctx, entity.StoryID(), cmd.RequesterID); err != nil {
		return nil, err
	}

	if err := entity.ChangeStatus(backlog.WorkStatus(cmd.Status)); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.taskRepo.Update(ctx, entity); err != nil {
		return nil, err
	}

	uc.logger.Infow("task status updated", "id", entity.ID(), "status", cmd.Status)
	return taskResult(entity), nil
}
