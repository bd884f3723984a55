package usecases

import (
	"context"
	"fmt"

	"stride/internal/domain/backlog"
	"stride/internal/domain/project"
	"stride/internal/shared/db"
	"stride/internal/shared/errors"
	"stride/internal/shared/logger"
)

// DeleteTaskUseCase removes a task and its comments
type DeleteTaskUseCase struct {
	taskRepo backlog.TaskRepository
	guard    *accessGuard
	txMgr    *db.TransactionManager
	logger   logger.Interface
}

// NewDeleteTaskUseCase creates a new delete task use case
func NewDeleteTaskUseCase(
	taskRepo backlog.TaskRepository,
	storyRepo backlog.StoryRepository,
	epicRepo backlog.EpicRepository,
	projectRepo project.Repository,
	txMgr *db.TransactionManager,
	log logger.Interface,
) *DeleteTaskUseCase {
	return &DeleteTaskUseCase{
		taskRepo: taskRepo,
		guard:    newAccessGuard(projectRepo, epicRepo, storyRepo),
		txMgr:    txMgr,
		logger:   log,
	}
}

// Execute deletes the task along with the comments attached to it
func (uc *DeleteTaskUseCase) Execute(ctx context.Context, taskID, requesterID uint) error {
	entity, err := uc.taskRepo.GetByID(ctx, taskID)
	if err != nil {
		return fmt.Errorf("failed to get task: %w", err)
	}
	if entity == nil {
		return errors.NewNotFoundError("task not found")
	}

	if _, err := uc.guard.requireStoryAccess(ctx, entity.StoryID(), requesterID); err != nil {
		return err
	}

	return uc.txMgr.RunInTransaction(ctx, func(ctx context.Context) error {
		if err := uc.taskRepo.Delete(ctx, taskID); err != nil {
			return err
		}
		uc.logger.Infow("task deleted", "id", taskID)
		return nil
	})
}
