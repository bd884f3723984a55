package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"stride/internal/domain/backlog"
	"stride/internal/infrastructure/persistence/models"
	"stride/internal/shared/db"
	"stride/internal/shared/errors"
	"stride/internal/shared/logger"
)

// CommentRepository implements the comment repository interface backed by GORM
type CommentRepository struct {
	db     *gorm.DB
	logger logger.Interface
}

// NewCommentRepository creates a new comment repository
func NewCommentRepository(gdb *gorm.DB, log logger.Interface) backlog.CommentRepository {
	return &CommentRepository{
		db:     gdb,
		logger: log,
	}
}

func commentToModel(entity *backlog.Comment) *models.CommentModel {
	return &models.CommentModel{
		ID:        entity.ID(),
		Content:   entity.Content(),
		AuthorID:  entity.AuthorID(),
		TaskID:    entity.TaskID(),
		BugID:     entity.BugID(),
		CreatedAt: entity.CreatedAt(),
	}
}

func commentToEntity(model *models.CommentModel) (*backlog.Comment, error) {
	return backlog.ReconstructComment(model.ID, model.Content, model.AuthorID, model.TaskID, model.BugID, model.CreatedAt)
}

// Save persists a new comment
func (r *CommentRepository) Save(ctx context.Context, entity *backlog.Comment) error {
	model := commentToModel(entity)

	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		r.logger.Errorw("failed to save comment", "error", err)
		return fmt.Errorf("failed to save comment: %w", err)
	}

	if err := entity.SetID(model.ID); err != nil {
		return fmt.Errorf("failed to set comment ID: %w", err)
	}

	r.logger.Infow("comment saved", "id", model.ID, "author_id", model.AuthorID)
	return nil
}

// GetByID retrieves a comment by ID
func (r *CommentRepository) GetByID(ctx context.Context, id uint) (*backlog.Comment, error) {
	var model models.CommentModel

	if err := db.GetTxFromContext(ctx, r.db).First(&model, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		r.logger.Errorw("failed to get comment by ID", "id", id, "error", err)
		return nil, fmt.Errorf("failed to get comment: %w", err)
	}

	return commentToEntity(&model)
}

// ListByTask returns every comment attached to the given task
func (r *CommentRepository) ListByTask(ctx context.Context, taskID uint) ([]*backlog.Comment, error) {
	return r.list(ctx, "task_id = ?", taskID)
}

// ListByBug returns every comment attached to the given bug
func (r *CommentRepository) ListByBug(ctx context.Context, bugID uint) ([]*backlog.Comment, error) {
	return r.list(ctx, "bug_id = ?", bugID)
}

func (r *CommentRepository) list(ctx context.Context, query string, id uint) ([]*backlog.Comment, error) {
	var modelList []models.CommentModel

	err := db.GetTxFromContext(ctx, r.db).
		Where(query, id).
		Find(&modelList).Error
	if err != nil {
		r.logger.Errorw("failed to list comments", "error", err)
		return nil, fmt.Errorf("failed to list comments: %w", err)
	}

	comments := make([]*backlog.Comment, 0, len(modelList))
	for i := range modelList {
		entity, err := commentToEntity(&modelList[i])
		if err != nil {
			return nil, err
		}
		comments = append(comments, entity)
	}
	return comments, nil
}

// Delete removes a comment
func (r *CommentRepository) Delete(ctx context.Context, id uint) error {
	result := db.GetTxFromContext(ctx, r.db).Delete(&models.CommentModel{}, id)
	if result.Error != nil {
		r.logger.Errorw("failed to delete comment", "id", id, "error", result.Error)
		return fmt.Errorf("failed to delete comment: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return errors.NewNotFoundError("comment not found")
	}

	r.logger.Infow("comment deleted", "id", id)
	return nil
}
