package usecases

import (
	"context"
	"fmt"

	"stride/internal/domain/user"
	"stride/internal/shared/db"
	"stride/internal/shared/errors"
	"stride/internal/shared/logger"
)

// DeleteUserUseCase removes an account. Work items the user was assigned to
// are released, authored comments and project memberships go with the account.
type DeleteUserUseCase struct {
	userRepo user.Repository
	txMgr    *db.TransactionManager
	logger   logger.Interface
}

// NewDeleteUserUseCase creates a new delete user use case
func NewDeleteUserUseCase(
	userRepo user.Repository,
	txMgr *db.TransactionManager,
	log logger.Interface,
) *DeleteUserUseCase {
	return &DeleteUserUseCase{
		userRepo: userRepo,
		txMgr:    txMgr,
		logger:   log,
	}
}

// Execute deletes the user by ID
func (uc *DeleteUserUseCase) Execute(ctx context.Context, id uint) error {
	entity, err := uc.userRepo.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to get user: %w", err)
	}
	if entity == nil {
		return errors.NewNotFoundError("user not found")
	}

	return uc.txMgr.RunInTransaction(ctx, func(ctx context.Context) error {
		if err := uc.userRepo.Delete(ctx, id); err != nil {
			return err
		}
		uc.logger.Infow("user account deleted", "id", id)
		return nil
	})
}
