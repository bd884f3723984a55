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

// BugRepository implements the bug repository interface backed by GORM
type BugRepository struct {
	db     *gorm.DB
	logger logger.Interface
}

// NewBugRepository creates a new bug repository
func NewBugRepository(gdb *gorm.DB, log logger.Interface) backlog.BugRepository {
	return &BugRepository{
		db:     gdb,
		logger: log,
	}
}

func bugToModel(entity *backlog.Bug) *models.BugModel {
	return &models.BugModel{
		ID:          entity.ID(),
		Title:       entity.Title(),
		Description: entity.Description(),
		Severity:    entity.Severity().String(),
		Status:      entity.Status().String(),
		StoryID:     entity.StoryID(),
		AssigneeID:  entity.AssigneeID(),
		CreatedAt:   entity.CreatedAt(),
	}
}

func bugToEntity(model *models.BugModel) (*backlog.Bug, error) {
	return backlog.ReconstructBug(
		model.ID,
		model.Title,
		model.Description,
		backlog.Severity(model.Severity),
		backlog.WorkStatus(model.Status),
		model.StoryID,
		model.AssigneeID,
		model.CreatedAt,
	)
}

// Save persists a new bug
func (r *BugRepository) Save(ctx context.Context, entity *backlog.Bug) error {
	model := bugToModel(entity)

	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		r.logger.Errorw("failed to save bug", "error", err)
		return fmt.Errorf("failed to save bug: %w", err)
	}

	if err := entity.SetID(model.ID); err != nil {
		return fmt.Errorf("failed to set bug ID: %w", err)
	}

	r.logger.Infow("bug saved", "id", model.ID, "story_id", model.StoryID, "severity", model.Severity)
	return nil
}

// Update persists changes to an existing bug
func (r *BugRepository) Update(ctx context.Context, entity *backlog.Bug) error {
	model := bugToModel(entity)

	result := db.GetTxFromContext(ctx, r.db).
		Model(&models.BugModel{}).
		Where("id = ?", model.ID).
		Select("title", "description", "severity", "status", "assignee_id").
		Updates(map[string]interface{}{
			"title":       model.Title,
			"description": model.Description,
			"severity":    model.Severity,
			"status":      model.Status,
			"assignee_id": model.AssigneeID,
		})
	if result.Error != nil {
		r.logger.Errorw("failed to update bug", "id", model.ID, "error", result.Error)
		return fmt.Errorf("failed to update bug: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return errors.NewNotFoundError("bug not found")
	}

	return nil
}

// GetByID retrieves a bug by ID
func (r *BugRepository) GetByID(ctx context.Context, id uint) (*backlog.Bug, error) {
	var model models.BugModel

	if err := db.GetTxFromContext(ctx, r.db).First(&model, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		r.logger.Errorw("failed to get bug by ID", "id", id, "error", err)
		return nil, fmt.Errorf("failed to get bug: %w", err)
	}

	return bugToEntity(&model)
}

// ListByStory returns every bug under the given story
func (r *BugRepository) ListByStory(ctx context.Context, storyID uint) ([]*backlog.Bug, error) {
	var modelList []models.BugModel

	err := db.GetTxFromContext(ctx, r.db).
		Where("story_id = ?", storyID).
		Find(&modelList).Error
	if err != nil {
		r.logger.Errorw("failed to list bugs", "story_id", storyID, "error", err)
		return nil, fmt.Errorf("failed to list bugs: %w", err)
	}

	bugs := make([]*backlog.Bug, 0, len(modelList))
	for i := range modelList {
		entity, err := bugToEntity(&modelList[i])
		if err != nil {
			return nil, err
		}
		bugs = append(bugs, entity)
	}
	return bugs, nil
}

// Delete removes the bug and the comments attached to it
func (r *BugRepository) Delete(ctx context.Context, id uint) error {
	tx := db.GetTxFromContext(ctx, r.db)

	return tx.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("bug_id = ?", id).Delete(&models.CommentModel{}).Error; err != nil {
			return fmt.Errorf("failed to delete bug comments: %w", err)
		}

		result := tx.Delete(&models.BugModel{}, id)
		if result.Error != nil {
			return fmt.Errorf("failed to delete bug: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return errors.NewNotFoundError("bug not found")
		}

		r.logger.Infow("bug deleted", "id", id)
		return nil
	})
}
