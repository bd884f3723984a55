package usecases

import (
	"context"
	"fmt"

	"stride/internal/domain/project"
	"stride/internal/shared/db"
	"stride/internal/shared/errors"
	"stride/internal/shared/logger"
)

// DeleteProjectUseCase removes a project and everything nested under it
type DeleteProjectUseCase struct {
	projectRepo project.Repository
	txMgr       *db.TransactionManager
	logger      logger.Interface
}

// NewDeleteProjectUseCase creates a new delete project use case
func NewDeleteProjectUseCase(
	projectRepo project.Repository,
	txMgr *db.TransactionManager,
	log logger.Interface,
) *DeleteProjectUseCase {
	return &DeleteProjectUseCase{
		projectRepo: projectRepo,
		txMgr:       txMgr,
		logger:      log,
	}
}

// Execute deletes the project. The whole subtree goes in one transaction:
// epics, stories, tasks, bugs, comments, memberships.
func (uc *DeleteProjectUseCase) Execute(ctx context.Context, projectID, requesterID uint) error {
	entity, err := uc.projectRepo.GetByID(ctx, projectID)
	if err != nil {
		return fmt.Errorf("failed to get project: %w", err)
	}
	if entity == nil {
		return errors.NewNotFoundError("project not found")
	}

	isMember, err := uc.projectRepo.IsMember(ctx, projectID, requesterID)
	if err != nil {
		return fmt.Errorf("failed to check membership: %w", err)
	}
	if !isMember {
		return errors.NewForbiddenError("not a member of this project")
	}

	return uc.txMgr.RunInTransaction(ctx, func(ctx context.Context) error {
		if err := uc.projectRepo.Delete(ctx, projectID); err != nil {
			return err
		}
		uc.logger.Infow("project deleted", "id", projectID, "requester_id", requesterID)
		return nil
	})
}
