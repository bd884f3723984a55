package usecases

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"stride/internal/domain/user"
	"stride/internal/shared/errors"
	"stride/internal/shared/logger"
)

func testTime() time.Time {
	return time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
}

func loginTestUser(t *testing.T) *user.User {
	entity, err := user.ReconstructUser(1, "alice", "alice@example.com", "$2a$12$hashed", testTime())
	require.NoError(t, err)
	return entity
}

func TestLoginUserUseCase_Execute_Success(t *testing.T) {
	repo := new(mockUserRepository)
	hasher := new(mockPasswordHasher)
	tokens := new(mockTokenIssuer)

	entity := loginTestUser(t)
	repo.On("GetByIdentifier", mock.Anything, "alice").Return(entity, nil)
	hasher.On("Verify", "s3cret", "$2a$12$hashed").Return(nil)
	tokens.On("Generate", uint(1), "alice").Return("signed.jwt.token", nil)
	tokens.On("AccessExpMinutes").Return(30)

	uc := NewLoginUserUseCase(repo, hasher, tokens, logger.NewLogger())

	result, err := uc.Execute(context.Background(), LoginUserCommand{
		Identifier: "alice",
		Password:   "s3cret",
	})

	require.NoError(t, err)
	require.NotNil(t, result)
	assert.Equal(t, uint(1), result.UserID)
	assert.Equal(t, "signed.jwt.token", result.AccessToken)
	assert.Equal(t, int64(1800), result.ExpiresIn)

	repo.AssertExpectations(t)
	hasher.AssertExpectations(t)
	tokens.AssertExpectations(t)
}

func TestLoginUserUseCase_Execute_EmailAsIdentifier(t *testing.T) {
	repo := new(mockUserRepository)
	hasher := new(mockPasswordHasher)
	tokens := new(mockTokenIssuer)

	entity := loginTestUser(t)
	repo.On("GetByIdentifier", mock.Anything, "alice@example.com").Return(entity, nil)
	hasher.On("Verify", "s3cret", "$2a$12$hashed").Return(nil)
	tokens.On("Generate", uint(1), "alice").Return("signed.jwt.token", nil)
	tokens.On("AccessExpMinutes").Return(30)

	uc := NewLoginUserUseCase(repo, hasher, tokens, logger.NewLogger())

	result, err := uc.Execute(context.Background(), LoginUserCommand{
		Identifier: "alice@example.com",
		Password:   "s3cret",
	})

	require.NoError(t, err)
	assert.Equal(t, "alice", result.Username)
}

func TestLoginUserUseCase_Execute_IndistinguishableFailures(t *testing.T) {
	t.Run("unknown identifier", func(t *testing.T) {
		repo := new(mockUserRepository)
		hasher := new(mockPasswordHasher)
		tokens := new(mockTokenIssuer)

		repo.On("GetByIdentifier", mock.Anything, "ghost").Return(nil, nil)

		uc := NewLoginUserUseCase(repo, hasher, tokens, logger.NewLogger())
		result, err := uc.Execute(context.Background(), LoginUserCommand{Identifier: "ghost", Password: "pw"})

		assert.Nil(t, result)
		require.Error(t, err)
		assert.True(t, errors.IsUnauthorizedError(err))
		assert.Equal(t, "invalid credentials", errors.GetAppError(err).Message)
	})

	t.Run("wrong password", func(t *testing.T) {
		repo := new(mockUserRepository)
		hasher := new(mockPasswordHasher)
		tokens := new(mockTokenIssuer)

		entity := loginTestUser(t)
		repo.On("GetByIdentifier", mock.Anything, "alice").Return(entity, nil)
		hasher.On("Verify", "wrong", "$2a$12$hashed").Return(fmt.Errorf("mismatch"))

		uc := NewLoginUserUseCase(repo, hasher, tokens, logger.NewLogger())
		result, err := uc.Execute(context.Background(), LoginUserCommand{Identifier: "alice", Password: "wrong"})

		assert.Nil(t, result)
		require.Error(t, err)
		assert.True(t, errors.IsUnauthorizedError(err))
		// same message as the unknown-identifier case
		assert.Equal(t, "invalid credentials", errors.GetAppError(err).Message)
		tokens.AssertNotCalled(t, "Generate", mock.Anything, mock.Anything)
	})
}
