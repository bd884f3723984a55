package usecases

import (
	"context"
	"fmt"

	"stride/internal/domain/backlog"
	"stride/internal/shared/errors"
	"stride/internal/shared/logger"
)

// DeleteCommentUseCase removes a comment. Only the author may delete it.
type DeleteCommentUseCase struct {
	commentRepo backlog.CommentRepository
	logger      logger.Interface
}

// NewDeleteCommentUseCase creates a new delete comment use case
func NewDeleteCommentUseCase(commentRepo backlog.CommentRepository, log logger.Interface) *DeleteCommentUseCase {
	return &DeleteCommentUseCase{
		commentRepo: commentRepo,
		logger:      log,
	}
}

// Execute deletes the comment by ID
func (uc *DeleteCommentUseCase) Execute(ctx context.Context, commentID, requesterID uint) error {
	entity, err := uc.commentRepo.GetByID(ctx, commentID)
	if err != nil {
		return fmt.Errorf("failed to get comment: %w", err)
	}
	if entity == nil {
		return errors.NewNotFoundError("comment not found")
	}

	if entity.AuthorID() != requesterID {
		return errors.NewForbiddenError("only the author can delete a comment")
	}

	if err := uc.commentRepo.Delete(ctx, commentID); err != nil {
		return err
	}

	uc.logger.Infow("comment deleted", "id", commentID)
	return nil
}
