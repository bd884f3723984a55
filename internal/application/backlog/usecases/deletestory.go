package usecases

import (
	"context"

	"stride/internal/domain/backlog"
	"stride/internal/domain/project"
	"stride/internal/shared/db"
	"stride/internal/shared/logger"
)

// DeleteStoryUseCase removes a story and its work items
type DeleteStoryUseCase struct {
	storyRepo backlog.StoryRepository
	guard     *accessGuard
	txMgr     *db.TransactionManager
	logger    logger.Interface
}

// NewDeleteStoryUseCase creates a new delete story use case
func NewDeleteStoryUseCase(
	storyRepo backlog.StoryRepository,
	epicRepo backlog.EpicRepository,
	projectRepo project.Repository,
	txMgr *db.TransactionManager,
	log logger.Interface,
) *DeleteStoryUseCase {
	return &DeleteStoryUseCase{
		storyRepo: storyRepo,
		guard:     newAccessGuard(projectRepo, epicRepo, storyRepo),
		txMgr:     txMgr,
		logger:    log,
	}
}

// Execute deletes the story with its tasks, bugs, and comments
func (uc *DeleteStoryUseCase) Execute(ctx context.Context, storyID, requesterID uint) error {
	if _, err := uc.guard.requireStoryAccess(ctx, storyID, requesterID); err != nil {
		return err
	}

	return uc.txMgr.RunInTransaction(ctx, func(ctx context.Context) error {
		if err := uc.storyRepo.Delete(ctx, storyID); err != nil {
			return err
		}
		uc.logger.Infow("story deleted", "id", storyID)
		return nil
	})
}
