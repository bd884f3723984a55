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

func newCommentUseCase(t *testing.T) (*AddCommentUseCase, *mockCommentRepository, *mockTaskRepository, *mockBugRepository, *mockProjectRepository, *mockEpicRepository, *mockStoryRepository) {
	commentRepo := new(mockCommentRepository)
	taskRepo := new(mockTaskRepository)
	bugRepo := new(mockBugRepository)
	storyRepo := new(mockStoryRepository)
	epicRepo := new(mockEpicRepository)
	projectRepo := new(mockProjectRepository)

	uc := NewAddCommentUseCase(commentRepo, taskRepo, bugRepo, storyRepo, epicRepo, projectRepo, logger.NewLogger())
	return uc, commentRepo, taskRepo, bugRepo, projectRepo, epicRepo, storyRepo
}

func TestAddCommentUseCase_Execute_OnTask(t *testing.T) {
	uc, commentRepo, taskRepo, _, projectRepo, epicRepo, storyRepo := newCommentUseCase(t)

	memberChain(projectRepo, epicRepo, storyRepo, t, 1)
	taskRepo.On("GetByID", mock.Anything, uint(300)).Return(fixtureTask(t, 300, 200, backlog.StatusTodo), nil)
	commentRepo.On("Save", mock.Anything, mock.AnythingOfType("*backlog.Comment")).
		Run(func(args mock.Arguments) {
			_ = args.Get(1).(*backlog.Comment).SetID(500)
		}).Return(nil)

	taskID := uint(300)
	result, err := uc.Execute(context.Background(), AddCommentCommand{
		Content:     "looks good",
		TaskID:      &taskID,
		RequesterID: 1,
	})

	require.NoError(t, err)
	assert.Equal(t, uint(500), result.ID)
	assert.Equal(t, uint(1), result.AuthorID)
	require.NotNil(t, result.TaskID)
	assert.Equal(t, uint(300), *result.TaskID)
	assert.Nil(t, result.BugID)
}

func TestAddCommentUseCase_Execute_OnBug(t *testing.T) {
	uc, commentRepo, _, bugRepo, projectRepo, epicRepo, storyRepo := newCommentUseCase(t)

	memberChain(projectRepo, epicRepo, storyRepo, t, 1)
	bugRepo.On("GetByID", mock.Anything, uint(400)).Return(fixtureBug(t, 400, 200), nil)
	commentRepo.On("Save", mock.Anything, mock.AnythingOfType("*backlog.Comment")).
		Run(func(args mock.Arguments) {
			_ = args.Get(1).(*backlog.Comment).SetID(501)
		}).Return(nil)

	bugID := uint(400)
	result, err := uc.Execute(context.Background(), AddCommentCommand{
		Content:     "reproduced on main",
		BugID:       &bugID,
		RequesterID: 1,
	})

	require.NoError(t, err)
	require.NotNil(t, result.BugID)
	assert.Nil(t, result.TaskID)
}

func TestAddCommentUseCase_Execute_ParentXor(t *testing.T) {
	taskID := uint(300)
	bugID := uint(400)

	tests := []struct {
		name string
		cmd  AddCommentCommand
	}{
		{name: "neither parent", cmd: AddCommentCommand{Content: "orphan", RequesterID: 1}},
		{name: "both parents", cmd: AddCommentCommand{Content: "twins", TaskID: &taskID, BugID: &bugID, RequesterID: 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc, commentRepo, _, _, _, _, _ := newCommentUseCase(t)

			result, err := uc.Execute(context.Background(), tt.cmd)

			assert.Nil(t, result)
			require.Error(t, err)
			assert.True(t, errors.IsValidationError(err))
			commentRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
		})
	}
}

func TestAddCommentUseCase_Execute_MissingParent(t *testing.T) {
	uc, _, taskRepo, _, _, _, _ := newCommentUseCase(t)

	taskRepo.On("GetByID", mock.Anything, uint(999)).Return(nil, nil)

	taskID := uint(999)
	result, err := uc.Execute(context.Background(), AddCommentCommand{
		Content:     "lost",
		TaskID:      &taskID,
		RequesterID: 1,
	})

	assert.Nil(t, result)
	require.Error(t, err)
	assert.True(t, errors.IsNotFoundError(err))
}

func TestDeleteCommentUseCase_Execute(t *testing.T) {
	taskID := uint(300)

	t.Run("author deletes own comment", func(t *testing.T) {
		commentRepo := new(mockCommentRepository)
		comment, err := backlog.ReconstructComment(500, "mine", 1, &taskID, nil, fixedTime)
		require.NoError(t, err)

		commentRepo.On("GetByID", mock.Anything, uint(500)).Return(comment, nil)
		commentRepo.On("Delete", mock.Anything, uint(500)).Return(nil)

		uc := NewDeleteCommentUseCase(commentRepo, logger.NewLogger())
		assert.NoError(t, uc.Execute(context.Background(), 500, 1))
		commentRepo.AssertExpectations(t)
	})

	t.Run("non-author is forbidden", func(t *testing.T) {
		commentRepo := new(mockCommentRepository)
		comment, err := backlog.ReconstructComment(500, "not yours", 1, &taskID, nil, fixedTime)
		require.NoError(t, err)

		commentRepo.On("GetByID", mock.Anything, uint(500)).Return(comment, nil)

		uc := NewDeleteCommentUseCase(commentRepo, logger.NewLogger())
		err = uc.Execute(context.Background(), 500, 2)

		require.Error(t, err)
		assert.True(t, errors.IsForbiddenError(err))
		commentRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	})
}
