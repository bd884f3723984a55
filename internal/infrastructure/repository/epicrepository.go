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

// EpicRepository implements the epic repository interface backed by GORM
type EpicRepository struct {
	db     *gorm.DB
	logger logger.Interface
}

// NewEpicRepository creates a new epic repository
func NewEpicRepository(gdb *gorm.DB, log logger.Interface) backlog.EpicRepository {
	return &EpicRepository{
		db:     gdb,
		logger: log,
	}
}

func epicToModel(entity *backlog.Epic) *models.EpicModel {
	return &models.EpicModel{
		ID:          entity.ID(),
		Title:       entity.Title(),
		Description: entity.Description(),
		ProjectID:   entity.ProjectID(),
		CreatedAt:   entity.CreatedAt(),
	}
}

func epicToEntity(model *models.EpicModel) (*backlog.Epic, error) {
	return backlog.ReconstructEpic(model.ID, model.Title, model.Description, model.ProjectID, model.CreatedAt)
}

// Save persists a new epic
func (r *EpicRepository) Save(ctx context.Context, entity *backlog.Epic) error {
	model := epicToModel(entity)

	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		if errors.IsDuplicateError(err) {
			return errors.NewConflictError("epic with this title already exists in the project")
		}
		r.logger.Errorw("failed to save epic", "error", err)
		return fmt.Errorf("failed to save epic: %w", err)
	}

	if err := entity.SetID(model.ID); err != nil {
		return fmt.Errorf("failed to set epic ID: %w", err)
	}

	r.logger.Infow("epic saved", "id", model.ID, "project_id", model.ProjectID)
	return nil
}

// GetByID retrieves an epic by ID
func (r *EpicRepository) GetByID(ctx context.Context, id uint) (*backlog.Epic, error) {
	var model models.EpicModel

	if err := db.GetTxFromContext(ctx, r.db).First(&model, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		r.logger.Errorw("failed to get epic by ID", "id", id, "error", err)
		return nil, fmt.Errorf("failed to get epic: %w", err)
	}

	return epicToEntity(&model)
}

// GetByTitleAndProject retrieves an epic by its title within a project
func (r *EpicRepository) GetByTitleAndProject(ctx context.Context, title string, projectID uint) (*backlog.Epic, error) {
	var model models.EpicModel

	err := db.GetTxFromContext(ctx, r.db).
		Where("title = ? AND project_id = ?", title, projectID).
		First(&model).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		r.logger.Errorw("failed to get epic by title", "project_id", projectID, "error", err)
		return nil, fmt.Errorf("failed to get epic: %w", err)
	}

	return epicToEntity(&model)
}

// ListByProject returns every epic under the given project
func (r *EpicRepository) ListByProject(ctx context.Context, projectID uint) ([]*backlog.Epic, error) {
	var modelList []models.EpicModel

	err := db.GetTxFromContext(ctx, r.db).
		Where("project_id = ?", projectID).
		Find(&modelList).Error
	if err != nil {
		r.logger.Errorw("failed to list epics", "project_id", projectID, "error", err)
		return nil, fmt.Errorf("failed to list epics: %w", err)
	}

	epics := make([]*backlog.Epic, 0, len(modelList))
	for i := range modelList {
		entity, err := epicToEntity(&modelList[i])
		if err != nil {
			return nil, err
		}
		epics = append(epics, entity)
	}
	return epics, nil
}

// Delete removes the epic along with its stories and their work items
func (r *EpicRepository) Delete(ctx context.Context, id uint) error {
	tx := db.GetTxFromContext(ctx, r.db)

	return tx.Transaction(func(tx *gorm.DB) error {
		var storyIDs []uint
		if err := tx.Model(&models.StoryModel{}).
			Where("epic_id = ?", id).
			Pluck("id", &storyIDs).Error; err != nil {
			return fmt.Errorf("failed to collect stories: %w", err)
		}

		if len(storyIDs) > 0 {
			if err := deleteStoryChildren(tx, storyIDs); err != nil {
				return err
			}
			if err := tx.Where("id IN ?", storyIDs).Delete(&models.StoryModel{}).Error; err != nil {
				return fmt.Errorf("failed to delete stories: %w", err)
			}
		}

		result := tx.Delete(&models.EpicModel{}, id)
		if result.Error != nil {
			return fmt.Errorf("failed to delete epic: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return errors.NewNotFoundError("epic not found")
		}

		r.logger.Infow("epic deleted", "id", id, "stories_removed", len(storyIDs))
		return nil
	})
}
