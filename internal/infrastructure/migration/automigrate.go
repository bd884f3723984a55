package migration

import (
	"stride/internal/infrastructure/persistence/models"
)

// AutoMigrateModels returns every persistence model, in dependency order.
func AutoMigrateModels() []interface{} {
	return []interface{}{
		&models.UserModel{},
		&models.ProjectModel{},
		&models.UserProjectModel{},
		&models.EpicModel{},
		&models.StoryModel{},
		&models.TaskModel{},
		&models.BugModel{},
		&models.CommentModel{},
	}
}
