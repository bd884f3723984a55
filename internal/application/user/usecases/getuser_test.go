package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"stride/internal/shared/db"
	"stride/internal/shared/errors"
	"stride/internal/shared/logger"
)

func TestGetUserUseCase_Execute(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		repo := new(mockUserRepository)
		entity := loginTestUser(t)
		repo.On("GetByID", mock.Anything, uint(1)).Return(entity, nil)

		uc := NewGetUserUseCase(repo, logger.NewLogger())
		result, err := uc.Execute(context.Background(), 1)

		require.NoError(t, err)
		assert.Equal(t, "alice", result.Username)
		assert.Equal(t, "alice@example.com", result.Email)
	})

	t.Run("not found", func(t *testing.T) {
		repo := new(mockUserRepository)
		repo.On("GetByID", mock.Anything, uint(42)).Return(nil, nil)

		uc := NewGetUserUseCase(repo, logger.NewLogger())
		result, err := uc.Execute(context.Background(), 42)

		assert.Nil(t, result)
		require.Error(t, err)
		assert.True(t, errors.IsNotFoundError(err))
	})
}

func TestDeleteUserUseCase_Execute(t *testing.T) {
	gdb, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	txMgr := db.NewTransactionManager(gdb)

	t.Run("deletes existing user", func(t *testing.T) {
		repo := new(mockUserRepository)
		entity := loginTestUser(t)
		repo.On("GetByID", mock.Anything, uint(1)).Return(entity, nil)
		repo.On("Delete", mock.Anything, uint(1)).Return(nil)

		uc := NewDeleteUserUseCase(repo, txMgr, logger.NewLogger())
		err := uc.Execute(context.Background(), 1)

		assert.NoError(t, err)
		repo.AssertExpectations(t)
	})

	t.Run("missing user", func(t *testing.T) {
		repo := new(mockUserRepository)
		repo.On("GetByID", mock.Anything, uint(42)).Return(nil, nil)

		uc := NewDeleteUserUseCase(repo, txMgr, logger.NewLogger())
		err := uc.Execute(context.Background(), 42)

		require.Error(t, err)
		assert.True(t, errors.IsNotFoundError(err))
		repo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	})
}
