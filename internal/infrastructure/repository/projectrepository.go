package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"stride/internal/domain/project"
	"stride/internal/infrastructure/persistence/models"
	"stride/internal/shared/db"
	"stride/internal/shared/errors"
	"stride/internal/shared/logger"
)

// ProjectRepository implements the project repository interface backed by GORM
type ProjectRepository struct {
	db     *gorm.DB
	logger logger.Interface
}

// NewProjectRepository creates a new project repository
func NewProjectRepository(gdb *gorm.DB, log logger.Interface) project.Repository {
	return &ProjectRepository{
		db:     gdb,
		logger: log,
	}
}

func projectToModel(entity *project.Project) *models.ProjectModel {
	return &models.ProjectModel{
		ID:          entity.ID(),
		Name:        entity.Name(),
		Description: entity.Description(),
		CreatedAt:   entity.CreatedAt(),
	}
}

func projectToEntity(model *models.ProjectModel) (*project.Project, error) {
	return project.ReconstructProject(model.ID, model.Name, model.Description, model.CreatedAt)
}

// Create persists a new project and links the creator as its first member
func (r *ProjectRepository) Create(ctx context.Context, entity *project.Project, creatorID uint) error {
	tx := db.GetTxFromContext(ctx, r.db)

	return tx.Transaction(func(tx *gorm.DB) error {
		model := projectToModel(entity)

		if err := tx.Create(model).Error; err != nil {
			r.logger.Errorw("failed to create project", "error", err)
			return fmt.Errorf("failed to create project: %w", err)
		}

		if err := entity.SetID(model.ID); err != nil {
			return fmt.Errorf("failed to set project ID: %w", err)
		}

		membership := &models.UserProjectModel{UserID: creatorID, ProjectID: model.ID}
		if err := tx.Create(membership).Error; err != nil {
			return fmt.Errorf("failed to link creator to project: %w", err)
		}

		r.logger.Infow("project created", "id", model.ID, "creator_id", creatorID)
		return nil
	})
}

// GetByID retrieves a project by ID
func (r *ProjectRepository) GetByID(ctx context.Context, id uint) (*project.Project, error) {
	var model models.ProjectModel

	if err := db.GetTxFromContext(ctx, r.db).First(&model, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		r.logger.Errorw("failed to get project by ID", "id", id, "error", err)
		return nil, fmt.Errorf("failed to get project: %w", err)
	}

	return projectToEntity(&model)
}

// ListForUser returns every project the given user is a member of
func (r *ProjectRepository) ListForUser(ctx context.Context, userID uint) ([]*project.Project, error) {
	var modelList []models.ProjectModel

	err := db.GetTxFromContext(ctx, r.db).
		Joins("JOIN user_projects ON user_projects.project_id = projects.id").
		Where("user_projects.user_id = ?", userID).
		Find(&modelList).Error
	if err != nil {
		r.logger.Errorw("failed to list projects for user", "user_id", userID, "error", err)
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}

	projects := make([]*project.Project, 0, len(modelList))
	for i := range modelList {
		entity, err := projectToEntity(&modelList[i])
		if err != nil {
			return nil, err
		}
		projects = append(projects, entity)
	}
	return projects, nil
}

// AddMember links a user to a project. Re-adding an existing member is a conflict.
func (r *ProjectRepository) AddMember(ctx context.Context, projectID, userID uint) error {
	membership := &models.UserProjectModel{UserID: userID, ProjectID: projectID}

	if err := db.GetTxFromContext(ctx, r.db).Create(membership).Error; err != nil {
		if errors.IsDuplicateError(err) {
			return errors.NewConflictError("user is already a member of this project")
		}
		r.logger.Errorw("failed to add project member", "project_id", projectID, "user_id", userID, "error", err)
		return fmt.Errorf("failed to add member: %w", err)
	}

	r.logger.Infow("project member added", "project_id", projectID, "user_id", userID)
	return nil
}

// IsMember reports whether the user belongs to the project
func (r *ProjectRepository) IsMember(ctx context.Context, projectID, userID uint) (bool, error) {
	var count int64

	err := db.GetTxFromContext(ctx, r.db).
		Model(&models.UserProjectModel{}).
		Where("project_id = ? AND user_id = ?", projectID, userID).
		Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("failed to check project membership: %w", err)
	}
	return count > 0, nil
}

// Delete removes the project and every entity nested under it: epics,
// stories, tasks, bugs, their comments, and all membership rows.
func (r *ProjectRepository) Delete(ctx context.Context, id uint) error {
	tx := db.GetTxFromContext(ctx, r.db)

	return tx.Transaction(func(tx *gorm.DB) error {
		var epicIDs []uint
		if err := tx.Model(&models.EpicModel{}).
			Where("project_id = ?", id).
			Pluck("id", &epicIDs).Error; err != nil {
			return fmt.Errorf("failed to collect epics: %w", err)
		}

		if len(epicIDs) > 0 {
			var storyIDs []uint
			if err := tx.Model(&models.StoryModel{}).
				Where("epic_id IN ?", epicIDs).
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

			if err := tx.Where("id IN ?", epicIDs).Delete(&models.EpicModel{}).Error; err != nil {
				return fmt.Errorf("failed to delete epics: %w", err)
			}
		}

		if err := tx.Where("project_id = ?", id).Delete(&models.UserProjectModel{}).Error; err != nil {
			return fmt.Errorf("failed to delete project memberships: %w", err)
		}

		result := tx.Delete(&models.ProjectModel{}, id)
		if result.Error != nil {
			return fmt.Errorf("failed to delete project: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return errors.NewNotFoundError("project not found")
		}

		r.logger.Infow("project deleted", "id", id, "epics_removed", len(epicIDs))
		return nil
	})
}

// deleteStoryChildren removes the tasks and bugs under the given stories,
// along with the comments attached to them.
func deleteStoryChildren(tx *gorm.DB, storyIDs []uint) error {
	var taskIDs []uint
	if err := tx.Model(&models.TaskModel{}).
		Where("story_id IN ?", storyIDs).
		Pluck("id", &taskIDs).Error; err != nil {
		return fmt.Errorf("failed to collect tasks: %w", err)
	}

	var bugIDs []uint
	if err := tx.Model(&models.BugModel{}).
		Where("story_id IN ?", storyIDs).
		Pluck("id", &bugIDs).Error; err != nil {
		return fmt.Errorf("failed to collect bugs: %w", err)
	}

	if len(taskIDs) > 0 {
		if err := tx.Where("task_id IN ?", taskIDs).Delete(&models.CommentModel{}).Error; err != nil {
			return fmt.Errorf("failed to delete task comments: %w", err)
		}
		if err := tx.Where("id IN ?", taskIDs).Delete(&models.TaskModel{}).Error; err != nil {
			return fmt.Errorf("failed to delete tasks: %w", err)
		}
	}

	if len(bugIDs) > 0 {
		if err := tx.Where("bug_id IN ?", bugIDs).Delete(&models.CommentModel{}).Error; err != nil {
			return fmt.Errorf("failed to delete bug comments: %w", err)
		}
		if err := tx.Where("id IN ?", bugIDs).Delete(&models.BugModel{}).Error; err != nil {
			return fmt.Errorf("failed to delete bugs: %w", err)
		}
	}

	return nil
}
