package usecases

import (
	"context"
	"fmt"
	"time"

	"stride/internal/domain/user"
	"stride/internal/shared/errors"
	"stride/internal/shared/logger"
)

// GetUserResult is the public view of an account
type GetUserResult struct {
	ID        uint
	Username  string
	Email     string
	CreatedAt time.Time
}

// GetUserUseCase retrieves a single account
type GetUserUseCase struct {
	userRepo user.Repository
	logger   logger.Interface
}

// NewGetUserUseCase creates a new get user use case
func NewGetUserUseCase(userRepo user.Repository, log logger.Interface) *GetUserUseCase {
	return &GetUserUseCase{
		userRepo: userRepo,
		logger:   log,
	}
}

// Execute retrieves the user by ID
func (uc *GetUserUseCase) Execute(ctx context.Context, id uint) (*GetUserResult, error) {
	entity, err := uc.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	if entity == nil {
		return nil, errors.NewNotFoundError("user not found")
	}

	return &GetUserResult{
		ID:        entity.ID(),
		Username:  entity.Username(),
		Email:     entity.Email(),
		CreatedAt: entity.CreatedAt(),
	}, nil
}
