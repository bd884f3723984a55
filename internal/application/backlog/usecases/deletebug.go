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

// DeleteBugUseCase removes a bug and its comments
type DeleteBugUseCase struct {
	bugRepo backlog.BugRepository
	guard   *accessGuard
	txMgr   *db.TransactionManager
	logger  logger.Interface
}

// NewDeleteBugUseCase creates a new delete bug use case
func NewDeleteBugUseCase(
	bugRepo backlog.BugRepository,
	storyRepo backlog.StoryRepository,
	epicRepo backlog.EpicRepository,
	projectRepo project.Repository,
	txMgr *db.TransactionManager,
	log logger.Interface,
) *DeleteBugUseCase {
	return &DeleteBugUseCase{
		bugRepo: bugRepo,
		guard:   newAccessGuard(projectRepo, epicRepo, storyRepo),
		txMgr:   txMgr,
		logger:  log,
	}
}

// Execute deletes the bug along with the comments attached to it
func (uc *DeleteBugUseCase) Execute(ctx context.Context, bugID, requesterID uint) error {
	entity, err := uc.bugRepo.GetByID(ctx, bugID)
	if err != nil {
		return fmt.Errorf("failed to get bug: %w", err)
	}
	if entity == nil {
		return errors.NewNotFoundError("bug not found")
	}

	if _, err := uc.guard.requireStoryAccess(ctx, entity.StoryID(), requesterID); err != nil {
		return err
	}

	return uc.txMgr.RunInTransaction(ctx, func(ctx context.Context) error {
		if err := uc.bugRepo.Delete(ctx, bugID); err != nil {
			return err
		}
		uc.logger.Infow("bug deleted", "id", bugID)
		return nil
	})
}
