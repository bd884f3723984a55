package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"stride/internal/domain/backlog"
	"stride/internal/shared/errors"
	"stride/internal/shared/logger"
)

func TestCreateEpicUseCase_Execute_Success(t *testing.T) {
	epicRepo := new(mockEpicRepository)
	projectRepo := new(mockProjectRepository)

	projectRepo.On("GetByID", mock.Anything, uint(10)).Return(fixtureProject(t, 10), nil)
	projectRepo.On("IsMember", mock.Anything, uint(10), uint(1)).Return(true, nil)
	epicRepo.On("GetByTitleAndProject", mock.Anything, "Roadmap", uint(10)).Return(nil, nil)
	epicRepo.On("Save", mock.Anything, mock.AnythingOfType("*backlog.Epic")).
		Run(func(args mock.Arguments) {
			_ = args.Get(1).(*backlog.Epic).SetID(100)
		}).Return(nil)

	uc := NewCreateEpicUseCase(epicRepo, projectRepo, logger.NewLogger())

	result, err := uc.Execute(context.Background(), CreateEpicCommand{
		Title:       "Roadmap",
		ProjectID:   10,
		RequesterID: 1,
	})

	require.NoError(t, err)
	assert.Equal(t, uint(100), result.ID)
	assert.Equal(t, "Roadmap", result.Title)
	assert.Equal(t, uint(10), result.ProjectID)
	epicRepo.AssertExpectations(t)
}

func TestCreateEpicUseCase_Execute_DuplicateTitle(t *testing.T) {
	epicRepo := new(mockEpicRepository)
	projectRepo := new(mockProjectRepository)

	projectRepo.On("GetByID", mock.Anything, uint(10)).Return(fixtureProject(t, 10), nil)
	projectRepo.On("IsMember", mock.Anything, uint(10), uint(1)).Return(true, nil)
	epicRepo.On("GetByTitleAndProject", mock.Anything, "Roadmap", uint(10)).
		Return(fixtureEpic(t, 100, 10, "Roadmap"), nil)

	uc := NewCreateEpicUseCase(epicRepo, projectRepo, logger.NewLogger())

	result, err := uc.Execute(context.Background(), CreateEpicCommand{
		Title:       "Roadmap",
		ProjectID:   10,
		RequesterID: 1,
	})

	assert.Nil(t, result)
	require.Error(t, err)
	assert.True(t, errors.IsConflictError(err))
	epicRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

func TestCreateEpicUseCase_Execute_MissingProject(t *testing.T) {
	epicRepo := new(mockEpicRepository)
	projectRepo := new(mockProjectRepository)

	projectRepo.On("GetByID", mock.Anything, uint(99)).Return(nil, nil)

	uc := NewCreateEpicUseCase(epicRepo, projectRepo, logger.NewLogger())

	result, err := uc.Execute(context.Background(), CreateEpicCommand{
		Title:       "Roadmap",
		ProjectID:   99,
		RequesterID: 1,
	})

	assert.Nil(t, result)
	require.Error(t, err)
	assert.True(t, errors.IsNotFoundError(err))
}

func TestCreateEpicUseCase_Execute_NonMemberForbidden(t *testing.T) {
	epicRepo := new(mockEpicRepository)
	projectRepo := new(mockProjectRepository)

	projectRepo.On("GetByID", mock.Anything, uint(10)).Return(fixtureProject(t, 10), nil)
	projectRepo.On("IsMember", mock.Anything, uint(10), uint(2)).Return(false, nil)

	uc := NewCreateEpicUseCase(epicRepo, projectRepo, logger.NewLogger())

	result, err := uc.Execute(context.Background(), CreateEpicCommand{
		Title:       "Roadmap",
		ProjectID:   10,
		RequesterID: 2,
	})

	assert.Nil(t, result)
	require.Error(t, err)
	assert.True(t, errors.IsForbiddenError(err))
}

func TestCreateStoryUseCase_Execute(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		storyRepo := new(mockStoryRepository)
		epicRepo := new(mockEpicRepository)
		projectRepo := new(mockProjectRepository)

		epicRepo.On("GetByID", mock.Anything, uint(100)).Return(fixtureEpic(t, 100, 10, "Roadmap"), nil)
		projectRepo.On("GetByID", mock.Anything, uint(10)).Return(fixtureProject(t, 10), nil)
		projectRepo.On("IsMember", mock.Anything, uint(10), uint(1)).Return(true, nil)
		storyRepo.On("GetByTitleAndEpic", mock.Anything, "Launch", uint(100)).Return(nil, nil)
		storyRepo.On("Save", mock.Anything, mock.AnythingOfType("*backlog.Story")).
			Run(func(args mock.Arguments) {
				_ = args.Get(1).(*backlog.Story).SetID(200)
			}).Return(nil)

		uc := NewCreateStoryUseCase(storyRepo, epicRepo, projectRepo, logger.NewLogger())

		result, err := uc.Execute(context.Background(), CreateStoryCommand{
			Title:       "Launch",
			EpicID:      100,
			RequesterID: 1,
		})

		require.NoError(t, err)
		assert.Equal(t, uint(200), result.ID)
		assert.Equal(t, uint(100), result.EpicID)
	})

	t.Run("duplicate title in epic", func(t *testing.T) {
		storyRepo := new(mockStoryRepository)
		epicRepo := new(mockEpicRepository)
		projectRepo := new(mockProjectRepository)

		epicRepo.On("GetByID", mock.Anything, uint(100)).Return(fixtureEpic(t, 100, 10, "Roadmap"), nil)
		projectRepo.On("GetByID", mock.Anything, uint(10)).Return(fixtureProject(t, 10), nil)
		projectRepo.On("IsMember", mock.Anything, uint(10), uint(1)).Return(true, nil)
		storyRepo.On("GetByTitleAndEpic", mock.Anything, "Launch", uint(100)).
			Return(fixtureStory(t, 200, 100, "Launch"), nil)

		uc := NewCreateStoryUseCase(storyRepo, epicRepo, projectRepo, logger.NewLogger())

		result, err := uc.Execute(context.Background(), CreateStoryCommand{
			Title:       "Launch",
			EpicID:      100,
			RequesterID: 1,
		})

		assert.Nil(t, result)
		require.Error(t, err)
		assert.True(t, errors.IsConflictError(err))
	})

	t.Run("missing epic", func(t *testing.T) {
		storyRepo := new(mockStoryRepository)
		epicRepo := new(mockEpicRepository)
		projectRepo := new(mockProjectRepository)

		epicRepo.On("GetByID", mock.Anything, uint(999)).Return(nil, nil)

		uc := NewCreateStoryUseCase(storyRepo, epicRepo, projectRepo, logger.NewLogger())

		result, err := uc.Execute(context.Background(), CreateStoryCommand{
			Title:       "Launch",
			EpicID:      999,
			RequesterID: 1,
		})

		assert.Nil(t, result)
		require.Error(t, err)
		assert.True(t, errors.IsNotFoundError(err))
	})
}
