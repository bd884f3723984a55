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

// TaskRepository implements the task repository interface backed by GORM
type TaskRepository struct {
	db     *gorm.DB
	logger logger.Interface
}

// NewTaskRepository creates a new task repository
func NewTaskRepository(gdb *gorm.DB, log logger.Interface) backlog.TaskRepository {
	return &TaskRepository{
		db:     gdb,
		logger: log,
	}
}

func taskToModel(entity *backlog.Task) *models.TaskModel {
	return &models.TaskModel{
		ID:          entity.ID(),
		Title:       entity.Title(),
		Description: entity.Description(),
		Status:      entity.Status().String(),
		StoryID:     entity.StoryID(),
		AssigneeID:  entity.AssigneeID(),
		CreatedAt:   entity.CreatedAt(),
	}
}

func taskToEntity(model *models.TaskModel) (*backlog.Task, error) {
	return backlog.ReconstructTask(
		model.ID,
		model.Title,
		model.Description,
		backlog.WorkStatus(model.Status),
		model.StoryID,
		model.AssigneeID,
		model.CreatedAt,
	)
}

// Save persists a new task
func (r *TaskRepository) Save(ctx context.Context, entity *backlog.Task) error {
	model := taskToModel(entity)

	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		r.logger.Errorw("failed to save task", "error", err)
		return fmt.Errorf("failed to save task: %w", err)
	}

	if err := entity.SetID(model.ID); err != nil {
		return fmt.Errorf("failed to set task ID: %w", err)
	}

	r.logger.Infow("task saved", "id", model.ID, "story_id", model.StoryID)
	return nil
}

// Update persists changes to an existing task. Select covers nullable columns
// so clearing the assignee actually writes NULL.
func (r *TaskRepository) Update(ctx context.Context, entity *backlog.Task) error {
	model := taskToModel(entity)

	result := db.GetTxFromContext(ctx, r.db).
		Model(&models.TaskModel{}).
		Where("id = ?", model.ID).
		Select("title", "description", "status", "assignee_id").
		Updates(map[string]interface{}{
			"title":       model.Title,
			"description": model.Description,
			"status":      model.Status,
			"assignee_id": model.AssigneeID,
		})
	if result.Error != nil {
		r.logger.Errorw("failed to update task", "id", model.ID, "error", result.Error)
		return fmt.Errorf("failed to update task: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return errors.NewNotFoundError("task not found")
	}

	return nil
}

// GetByID retrieves a task by ID
func (r *TaskRepository) GetByID(ctx context.Context, id uint) (*backlog.Task, error) {
	var model models.TaskModel

	if err := db.GetTxFromContext(ctx, r.db).First(&model, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		r.logger.Errorw("failed to get task by ID", "id", id, "error", err)
		return nil, fmt.Errorf("failed to get task: %w", err)
	}

	return taskToEntity(&model)
}

// ListByStory returns every task under the given story
func (r *TaskRepository) ListByStory(ctx context.Context, storyID uint) ([]*backlog.Task, error) {
	var modelList []models.TaskModel

	err := db.GetTxFromContext(ctx, r.db).
		Where("story_id = ?", storyID).
		Find(&modelList).Error
	if err != nil {
		r.logger.Errorw("failed to list tasks", "story_id", storyID, "error", err)
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}

	tasks := make([]*backlog.Task, 0, len(modelList))
	for i := range modelList {
		entity, err := taskToEntity(&modelList[i])
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, entity)
	}
	return tasks, nil
}

// Delete removes the task and the comments attached to it
func (r *TaskRepository) Delete(ctx context.Context, id uint) error {
	tx := db.GetTxFromContext(ctx, r.db)

	return tx.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("task_id = ?", id).Delete(&models.CommentModel{}).Error; err != nil {
			return fmt.Errorf("failed to delete task comments: %w", err)
		}

		result := tx.Delete(&models.TaskModel{}, id)
		if result.Error != nil {
			return fmt.Errorf("failed to delete task: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return errors.NewNotFoundError("task not found")
		}

		r.logger.Infow("task deleted", "id", id)
		return nil
	})
}
