package usecases

import (
	"context"
	"fmt"
	"time"

	"stride/internal/domain/user"
	"stride/internal/shared/errors"
	"stride/internal/shared/logger"
)

// RegisterUserCommand contains the data needed to register a new account
type RegisterUserCommand struct {
	Username string
	Email    string
	Password string
}

// RegisterUserResult is the outcome of a successful registration
type RegisterUserResult struct {
	ID        uint
	Username  string
	Email     string
	CreatedAt time.Time
}

// RegisterUserUseCase handles account registration
type RegisterUserUseCase struct {
	userRepo user.Repository
	hasher   PasswordHasher
	logger   logger.Interface
}

// NewRegisterUserUseCase creates a new register user use case
func NewRegisterUserUseCase(
	userRepo user.Repository,
	hasher PasswordHasher,
	log logger.Interface,
) *RegisterUserUseCase {
	return &RegisterUserUseCase{
		userRepo: userRepo,
		hasher:   hasher,
		logger:   log,
	}
}

// Execute registers a new user. Username and email must both be unused.
func (uc *RegisterUserUseCase) Execute(ctx context.Context, cmd RegisterUserCommand) (*RegisterUserResult, error) {
	uc.logger.Infow("registering user", "username", cmd.Username)

	if cmd.Password == "" {
		return nil, errors.NewValidationError("password is required")
	}

	existing, err := uc.userRepo.GetByUsername(ctx, cmd.Username)
	if err != nil {
		return nil, fmt.Errorf("failed to check existing username: %w", err)
	}
	if existing != nil {
		uc.logger.Warnw("username already taken", "username", cmd.Username)
		return nil, errors.NewConflictError("username already exists")
	}

	existing, err = uc.userRepo.GetByEmail(ctx, cmd.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to check existing email: %w", err)
	}
	if existing != nil {
		uc.logger.Warnw("email already taken", "email", cmd.Email)
		return nil, errors.NewConflictError("email already exists")
	}

	hash, err := uc.hasher.Hash(cmd.Password)
	if err != nil {
		uc.logger.Errorw("failed to hash password", "error", err)
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	entity, err := user.NewUser(cmd.Username, cmd.Email, hash)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.userRepo.Create(ctx, entity); err != nil {
		return nil, err
	}

	uc.logger.Infow("user registered", "id", entity.ID(), "username", entity.Username())

	return &RegisterUserResult{
		ID:        entity.ID(),
		Username:  entity.Username(),
		Email:     entity.Email(),
		CreatedAt: entity.CreatedAt(),
	}, nil
}
