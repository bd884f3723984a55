package usecases

import (
	"context"
	"fmt"

	"stride/internal/domain/backlog"
	"stride/internal/domain/project"
	"stride/internal/shared/errors"
	"stride/internal/shared/logger"
)

// ListCommentsUseCase lists the comments attached to a task or bug
type ListCommentsUseCase struct {
	commentRepo backlog.CommentRepository
	taskRepo    backlog.TaskRepository
	bugRepo     backlog.BugRepository
	guard       *accessGuard
	logger      logger.Interface
}

// NewListCommentsUseCase creates a new list comments use case
func NewListCommentsUseCase(
	commentRepo backlog.CommentRepository,
	taskRepo backlog.TaskRepository,
	bugRepo backlog.BugRepository,
	storyRepo backlog.StoryRepository,
	epicRepo backlog.EpicRepository,
	projectRepo project.Repository,
	log logger.Interface,
) *ListCommentsUseCase {
	return &ListCommentsUseCase{
		commentRepo: commentRepo,
		taskRepo:    taskRepo,
		bugRepo:     bugRepo,
		guard:       newAccessGuard(projectRepo, epicRepo, storyRepo),
		logger:      log,
	}
}

// ExecuteForTask lists the comments on a task
func (uc *ListCommentsUseCase) ExecuteForTask(ctx context.Context, taskID, requesterID uint) ([]*CommentResult, error) {
	task, err := uc.taskRepo.GetByID(ctx, taskID)
	if err != nil {
		return nil, fmt.Errorf("failed to get task: %w", err)
	}
	if task == nil {
		return nil, errors.NewNotFoundError("task not found")
	}
	if _, err := uc.guard.requireStoryAccess(ctx, task.StoryID(), requesterID); err != nil {
		return nil, err
	}

	entities, err := uc.commentRepo.ListByTask(ctx, taskID)
	if err != nil {
		return nil, fmt.Errorf("failed to list comments: %w", err)
	}
	return commentResults(entities), nil
}

// ExecuteForBug lists the comments on a bug
func (uc *ListCommentsUseCase) ExecuteForBug(ctx context.Context, bugID, requesterID uint) ([]*CommentResult, error) {
	bug, err := uc.bugRepo.GetByID(ctx, bugID)
	if err != nil {
		return nil, fmt.Errorf("failed to get bug: %w", err)
	}
	if bug == nil {
		return nil, errors.NewNotFoundError("bug not found")
	}
	if _, err := uc.guard.requireStoryAccess(ctx, bug.StoryID(), requesterID); err != nil {
		return nil, err
	}

	entities, err := uc.commentRepo.ListByBug(ctx, bugID)
	if err != nil {
		return nil, fmt.Errorf("failed to list comments: %w", err)
	}
	return commentResults(entities), nil
}

func commentResults(entities []*backlog.Comment) []*CommentResult {
	results := make([]*CommentResult, 0, len(entities))
	for _, entity := range entities {
		results = append(results, commentResult(entity))
	}
	return results
}
