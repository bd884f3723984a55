package usecases

import (
	"context"

	"stride/internal/domain/backlog"
	"stride/internal/domain/project"
	"stride/internal/shared/db"
	"stride/internal/shared/logger"
)

// DeleteEpicUseCase removes an epic and everything nested under it
type DeleteEpicUseCase struct {
	epicRepo backlog.EpicRepository
	guard    *accessGuard
	txMgr    *db.TransactionManager
	logger   logger.Interface
}

// NewDeleteEpicUseCase creates a new delete epic use case
func NewDeleteEpicUseCase(
	epicRepo backlog.EpicRepository,
	projectRepo project.Repository,
	txMgr *db.TransactionManager,
	log logger.Interface,
) *DeleteEpicUseCase {
	return &DeleteEpicUseCase{
		epicRepo: epicRepo,
		guard:    newAccessGuard(projectRepo, epicRepo, nil),
		txMgr:    txMgr,
		logger:   log,
	}
}

// Execute deletes the epic with its stories, tasks, bugs, and comments
func (uc *DeleteEpicUseCase) Execute(ctx context.Context, epicID, requesterID uint) error {
	if _, err := uc.guard.requireEpicAccess(ctx, epicID, requesterID); err != nil {
		return err
	}

	return uc.txMgr.RunInTransaction(ctx, func(ctx context.Context) error {
		if err := uc.epicRepo.Delete(ctx, epicID); err != nil {
			return err
		}
		uc.logger.Infow("epic deleted", "id", epicID)
		return nil
	})
}
