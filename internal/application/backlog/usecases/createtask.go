package usecases

import (
	"context"

	"stride/internal/domain/backlog"
	"stride/internal/domain/project"
	"stride/internal/shared/errors"
	"stride/internal/shared/logger"
)

// CreateTaskCommand contains the data needed to create a task
type CreateTaskCommand struct {
	Title       string
	Description string
	StoryID     uint
	RequesterID uint
}

// CreateTaskUseCase creates a task under a story
type CreateTaskUseCase struct {
	taskRepo backlog.TaskRepository
	guard    *accessGuard
	logger   logger.Interface
}

// NewCreateTaskUseCase creates a new create task use case
func NewCreateTaskUseCase(
	taskRepo backlog.TaskRepository,
	storyRepo backlog.StoryRepository,
	epicRepo backlog.EpicRepository,
	projectRepo project.Repository,
	log logger.Interface,
) *CreateTaskUseCase {
	return &CreateTaskUseCase{
		taskRepo: taskRepo,
		guard:    newAccessGuard(projectRepo, epicRepo, storyRepo),
		logger:   log,
	}
}

// Execute creates the task. New tasks start unassigned in todo status.
func (uc *CreateTaskUseCase) Execute(ctx context.Context, cmd CreateTaskCommand) (*TaskResult, error) {
	if _, err := uc.guard.requireStoryAccess(ctx, cmd.StoryID, cmd.RequesterID); err != nil {
		return nil, err
	}

	entity, err := backlog.NewTask(cmd.Title, cmd.Description, cmd.StoryID)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.taskRepo.Save(ctx, entity); err != nil {
		return nil, err
	}

	uc.logger.Infow("task created", "id", entity.ID(), "story_id", cmd.StoryID)
	return taskResult(entity), nil
}
