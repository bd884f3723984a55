package usecases

import (
	"context"
	"fmt"

	"stride/internal/domain/backlog"
	"stride/internal/domain/project"
	"stride/internal/shared/errors"
	"stride/internal/shared/logger"
)

// AddCommentCommand attaches a comment to exactly one work item. Exactly one
// of TaskID and BugID must be set.
type AddCommentCommand struct {
	Content     string
	TaskID      *uint
	BugID       *uint
	RequesterID uint
}

// AddCommentUseCase attaches comments to tasks and bugs
type AddCommentUseCase struct {
	commentRepo backlog.CommentRepository
	taskRepo    backlog.TaskRepository
	bugRepo     backlog.BugRepository
	guard       *accessGuard
	logger      logger.Interface
}

// NewAddCommentUseCase creates a new add comment use case
func NewAddCommentUseCase(
	commentRepo backlog.CommentRepository,
	taskRepo backlog.TaskRepository,
	bugRepo backlog.BugRepository,
	storyRepo backlog.StoryRepository,
	epicRepo backlog.EpicRepository,
	projectRepo project.Repository,
	log logger.Interface,
) *AddCommentUseCase {
	return &AddCommentUseCase{
		commentRepo: commentRepo,
		taskRepo:    taskRepo,
		bugRepo:     bugRepo,
		guard:       newAccessGuard(projectRepo, epicRepo, storyRepo),
		logger:      log,
	}
}

// Execute adds the comment. The author is the requester.
func (uc *AddCommentUseCase) Execute(ctx context.Context, cmd AddCommentCommand) (*CommentResult, error) {
	if (cmd.TaskID == nil) == (cmd.BugID == nil) {
		return nil, errors.NewValidationError("comment must reference exactly one of task or bug")
	}

	var entity *backlog.Comment

	switch {
	case cmd.TaskID != nil:
		task, err := uc.taskRepo.GetByID(ctx, *cmd.TaskID)
		if err != nil {
			return nil, fmt.Errorf("failed to get task: %w", err)
		}
		if task == nil {
			return nil, errors.NewNotFoundError("task not found")
		}
		if _, err := uc.guard.requireStoryAccess(ctx, task.StoryID(), cmd.RequesterID); err != nil {
			return nil, err
		}
		entity, err = backlog.NewTaskComment(cmd.Content, cmd.RequesterID, *cmd.TaskID)
		if err != nil {
			return nil, errors.NewValidationError(err.Error())
		}

	default:
		bug, err := uc.bugRepo.GetByID(ctx, *cmd.BugID)
		if err != nil {
			return nil, fmt.Errorf("failed to get bug: %w", err)
		}
		if bug == nil {
			return nil, errors.NewNotFoundError("bug not found")
		}
		if _, err := uc.guard.requireStoryAccess(ctx, bug.StoryID(), cmd.RequesterID); err != nil {
			return nil, err
		}
		entity, err = backlog.NewBugComment(cmd.Content, cmd.RequesterID, *cmd.BugID)
		if err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
	}

	if err := uc.commentRepo.Save(ctx, entity); err != nil {
		return nil, err
	}

	uc.logger.Infow("comment added", "id", entity.ID(), "author_id", cmd.RequesterID)
	return commentResult(entity), nil
}
