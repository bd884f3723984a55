package usecases

import (
	"context"
	"fmt"

	"stride/internal/domain/user"
	"stride/internal/shared/errors"
	"stride/internal/shared/logger"
)

// LoginUserCommand carries a login attempt. Identifier may be a username or
// an email address.
type LoginUserCommand struct {
	Identifier string
	Password   string
}

// LoginUserResult is the outcome of a successful login
type LoginUserResult struct {
	UserID      uint
	Username    string
	AccessToken string
	ExpiresIn   int64
}

// LoginUserUseCase handles credential verification and token issuance
type LoginUserUseCase struct {
	userRepo user.Repository
	hasher   PasswordHasher
	tokens   TokenIssuer
	logger   logger.Interface
}

// NewLoginUserUseCase creates a new login use case
func NewLoginUserUseCase(
	userRepo user.Repository,
	hasher PasswordHasher,
	tokens TokenIssuer,
	log logger.Interface,
) *LoginUserUseCase {
	return &LoginUserUseCase{
		userRepo: userRepo,
		hasher:   hasher,
		tokens:   tokens,
		logger:   log,
	}
}

// Execute verifies the credentials and returns a signed access token. Unknown
// identifiers and wrong passwords produce the same error so the response
// never reveals which part failed.
func (uc *LoginUserUseCase) Execute(ctx context.Context, cmd LoginUserCommand) (*LoginUserResult, error) {
	entity, err := uc.userRepo.GetByIdentifier(ctx, cmd.Identifier)
	if err != nil {
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}
	if entity == nil {
		uc.logger.Warnw("login attempt for unknown identifier")
		return nil, errors.NewUnauthorizedError("invalid credentials")
	}

	if err := uc.hasher.Verify(cmd.Password, entity.PasswordHash()); err != nil {
		uc.logger.Warnw("login attempt with wrong password", "user_id", entity.ID())
		return nil, errors.NewUnauthorizedError("invalid credentials")
	}

	token, err := uc.tokens.Generate(entity.ID(), entity.Username())
	if err != nil {
		uc.logger.Errorw("failed to issue token", "user_id", entity.ID(), "error", err)
		return nil, fmt.Errorf("failed to issue token: %w", err)
	}

	uc.logger.Infow("user logged in", "user_id", entity.ID())

	return &LoginUserResult{
		UserID:      entity.ID(),
		Username:    entity.Username(),
		AccessToken: token,
		ExpiresIn:   int64(uc.tokens.AccessExpMinutes()) * 60,
	}, nil
}
