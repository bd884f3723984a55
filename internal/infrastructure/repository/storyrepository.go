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

// StoryRepository implements the story repository interface backed by GORM
type StoryRepository struct {
	db     *gorm.DB
	logger logger.Interface
}

// NewStoryRepository creates a new story repository
func NewStoryRepository(gdb *gorm.DB, log logger.Interface) backlog.StoryRepository {
	return &StoryRepository{
		db:     gdb,
		logger: log,
	}
}

func storyToModel(entity *backlog.Story) *models.StoryModel {
	return &models.StoryModel{
		ID:          entity.ID(),
		Title:       entity.Title(),
		Description: entity.Description(),
		EpicID:      entity.EpicID(),
		CreatedAt:   entity.CreatedAt(),
	}
}

func storyToEntity(model *models.StoryModel) (*backlog.Story, error) {
	return backlog.ReconstructStory(model.ID, model.Title, model.Description, model.EpicID, model.CreatedAt)
}

// Save persists a new story
func (r *StoryRepository) Save(ctx context.Context, entity *backlog.Story) error {
	model := storyToModel(entity)

	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		if errors.IsDuplicateError(err) {
			return errors.NewConflictError("story with this title already exists in the epic")
		}
		r.logger.Errorw("failed to save story", "error", err)
		return fmt.Errorf("failed to save story: %w", err)
	}

	if err := entity.SetID(model.ID); err != nil {
		return fmt.Errorf("failed to set story ID: %w", err)
	}

	r.logger.Infow("story saved", "id", model.ID, "epic_id", model.EpicID)
	return nil
}

// GetByID retrieves a story by ID
func (r *StoryRepository) GetByID(ctx context.Context, id uint) (*backlog.Story, error) {
	var model models.StoryModel

	if err := db.GetTxFromContext(ctx, r.db).First(&model, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		r.logger.Errorw("failed to get story by ID", "id", id, "error", err)
		return nil, fmt.Errorf("failed to get story: %w", err)
	}

	return storyToEntity(&model)
}

// GetByTitleAndEpic retrieves a story by its title within an epic
func (r *StoryRepository) GetByTitleAndEpic(ctx context.Context, title string, epicID uint) (*backlog.Story, error) {
	var model models.StoryModel

	err := db.GetTxFromContext(ctx, r.db).
		Where("title = ? AND epic_id = ?", title, epicID).
		First(&model).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		r.logger.Errorw("failed to get story by title", "epic_id", epicID, "error", err)
		return nil, fmt.Errorf("failed to get story: %w", err)
	}

	return storyToEntity(&model)
}

// ListByEpic returns every story under the given epic
func (r *StoryRepository) ListByEpic(ctx context.Context, epicID uint) ([]*backlog.Story, error) {
	var modelList []models.StoryModel

	err := db.GetTxFromContext(ctx, r.db).
		Where("epic_id = ?", epicID).
		Find(&modelList).Error
	if err != nil {
		r.logger.Errorw("failed to list stories", "epic_id", epicID, "error", err)
		return nil, fmt.Errorf("failed to list stories: %w", err)
	}

	stories := make([]*backlog.Story, 0, len(modelList))
	for i := range modelList {
		entity, err := storyToEntity(&modelList[i])
		if err != nil {
			return nil, err
		}
		stories = append(stories, entity)
	}
	return stories, nil
}

// Delete removes the story along with its tasks, bugs, and their comments
func (r *StoryRepository) Delete(ctx context.Context, id uint) error {
	tx := db.GetTxFromContext(ctx, r.db)

	return tx.Transaction(func(tx *gorm.DB) error {
		if err := deleteStoryChildren(tx, []uint{id}); err != nil {
			return err
		}

		result := tx.Delete(&models.StoryModel{}, id)
		if result.Error != nil {
			return fmt.Errorf("failed to delete story: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return errors.NewNotFoundError("story not found")
		}

		r.logger.Infow("story deleted", "id", id)
		return nil
	})
}
