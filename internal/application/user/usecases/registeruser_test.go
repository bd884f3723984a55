package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"stride/internal/domain/user"
	"stride/internal/shared/errors"
	"stride/internal/shared/logger"
)

func TestRegisterUserUseCase_Execute_Success(t *testing.T) {
	repo := new(mockUserRepository)
	hasher := new(mockPasswordHasher)

	repo.On("GetByUsername", mock.Anything, "alice").Return(nil, nil)
	repo.On("GetByEmail", mock.Anything, "alice@example.com").Return(nil, nil)
	hasher.On("Hash", "s3cret").Return("$2a$12$hashed", nil)
	repo.On("Create", mock.Anything, mock.AnythingOfType("*user.User")).Run(func(args mock.Arguments) {
		entity := args.Get(1).(*user.User)
		_ = entity.SetID(1)
	}).Return(nil)

	uc := NewRegisterUserUseCase(repo, hasher, logger.NewLogger())

	result, err := uc.Execute(context.Background(), RegisterUserCommand{
		Username: "alice",
		Email:    "alice@example.com",
		Password: "s3cret",
	})

	require.NoError(t, err)
	require.NotNil(t, result)
	assert.Equal(t, uint(1), result.ID)
	assert.Equal(t, "alice", result.Username)
	assert.Equal(t, "alice@example.com", result.Email)

	repo.AssertExpectations(t)
	hasher.AssertExpectations(t)
}

func TestRegisterUserUseCase_Execute_DuplicateUsername(t *testing.T) {
	repo := new(mockUserRepository)
	hasher := new(mockPasswordHasher)

	existing, err := user.NewUser("alice", "taken@example.com", "hash")
	require.NoError(t, err)
	repo.On("GetByUsername", mock.Anything, "alice").Return(existing, nil)

	uc := NewRegisterUserUseCase(repo, hasher, logger.NewLogger())

	result, err := uc.Execute(context.Background(), RegisterUserCommand{
		Username: "alice",
		Email:    "new@example.com",
		Password: "s3cret",
	})

	assert.Nil(t, result)
	require.Error(t, err)
	assert.True(t, errors.IsConflictError(err))
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestRegisterUserUseCase_Execute_DuplicateEmail(t *testing.T) {
	repo := new(mockUserRepository)
	hasher := new(mockPasswordHasher)

	existing, err := user.NewUser("someone", "alice@example.com", "hash")
	require.NoError(t, err)
	repo.On("GetByUsername", mock.Anything, "alice").Return(nil, nil)
	repo.On("GetByEmail", mock.Anything, "alice@example.com").Return(existing, nil)

	uc := NewRegisterUserUseCase(repo, hasher, logger.NewLogger())

	result, err := uc.Execute(context.Background(), RegisterUserCommand{
		Username: "alice",
		Email:    "alice@example.com",
		Password: "s3cret",
	})

	assert.Nil(t, result)
	require.Error(t, err)
	assert.True(t, errors.IsConflictError(err))
}

func TestRegisterUserUseCase_Execute_InvalidInput(t *testing.T) {
	tests := []struct {
		name string
		cmd  RegisterUserCommand
	}{
		{name: "empty password", cmd: RegisterUserCommand{Username: "alice", Email: "a@example.com"}},
		{name: "empty username", cmd: RegisterUserCommand{Email: "a@example.com", Password: "pw"}},
		{name: "bad email", cmd: RegisterUserCommand{Username: "alice", Email: "not-an-email", Password: "pw"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(mockUserRepository)
			hasher := new(mockPasswordHasher)
			repo.On("GetByUsername", mock.Anything, mock.Anything).Return(nil, nil).Maybe()
			repo.On("GetByEmail", mock.Anything, mock.Anything).Return(nil, nil).Maybe()
			hasher.On("Hash", mock.Anything).Return("hash", nil).Maybe()

			uc := NewRegisterUserUseCase(repo, hasher, logger.NewLogger())

			result, err := uc.Execute(context.Background(), tt.cmd)

			assert.Nil(t, result)
			require.Error(t, err)
			assert.True(t, errors.IsValidationError(err))
			repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
		})
	}
}

func TestRegisterUserUseCase_Execute_StoresHashNotPassword(t *testing.T) {
	repo := new(mockUserRepository)
	hasher := new(mockPasswordHasher)

	repo.On("GetByUsername", mock.Anything, "alice").Return(nil, nil)
	repo.On("GetByEmail", mock.Anything, "alice@example.com").Return(nil, nil)
	hasher.On("Hash", "s3cret").Return("$2a$12$hashed", nil)

	var stored *user.User
	repo.On("Create", mock.Anything, mock.AnythingOfType("*user.User")).Run(func(args mock.Arguments) {
		stored = args.Get(1).(*user.User)
		_ = stored.SetID(7)
	}).Return(nil)

	uc := NewRegisterUserUseCase(repo, hasher, logger.NewLogger())

	_, err := uc.Execute(context.Background(), RegisterUserCommand{
		Username: "alice",
		Email:    "alice@example.com",
		Password: "s3cret",
	})

	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Equal(t, "$2a$12$hashed", stored.PasswordHash())
	assert.NotContains(t, stored.PasswordHash(), "s3cret")
}
