package usecases

import (
	"context"
	"fmt"

	"stride/internal/domain/backlog"
	"stride/internal/domain/project"
	"stride/internal/domain/user"
	"stride/internal/shared/errors"
	"stride/internal/shared/logger"
)

// AssignTaskCommand sets or clears the assignee of a task. A nil AssigneeID
// unassigns the task.
type AssignTaskCommand struct {
	TaskID      uint
	AssigneeID  *uint
	RequesterID uint
}

// AssignTaskUseCase manages task assignment
type AssignTaskUseCase struct {
	taskRepo backlog.TaskRepository
	userRepo user.Repository
	guard    *accessGuard
	logger   logger.Interface
}

// NewAssignTaskUseCase creates a new assign task use case
func NewAssignTaskUseCase(
	taskRepo backlog.TaskRepository,
	userRepo user.Repository,
	storyRepo backlog.StoryRepository,
	epicRepo backlog.EpicRepository,
	projectRepo project.Repository,
	log logger.Interface,
) *AssignTaskUseCase {
	return &AssignTaskUseCase{
		taskRepo: taskRepo,
		userRepo: userRepo,
		guard:    newAccessGuard(projectRepo, epicRepo, storyRepo),
		logger:   log,
	}
}

// Execute assigns the task to an existing user, or unassigns it
func (uc *AssignTaskUseCase) Execute(ctx context.Context, cmd AssignTaskCommand) (*TaskResult, error) {
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

	if cmd.AssigneeID == nil {
		entity.Unassign()
	} else {
		assignee, err := uc.userRepo.GetByID(ctx, *cmd.AssigneeID)
		if err != nil {
			return nil, fmt.Errorf("failed to get assignee: %w", err)
		}
		if assignee == nil {
			return nil, errors.NewNotFoundError("assignee not found")
		}
		if err := entity.AssignTo(*cmd.AssigneeID); err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
	}

	if err := uc.taskRepo.Update(ctx, entity); err != nil {
		return nil, err
	}

	uc.logger.Infow("task assignment updated", "id", entity.ID())
	return taskResult(entity), nil
}
