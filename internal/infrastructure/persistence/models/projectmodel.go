package models

import (
	"time"

	"stride/internal/shared/constants"
)

// ProjectModel is the GORM model for the projects table
type ProjectModel struct {
	ID          uint      `gorm:"primaryKey;autoIncrement"`
	Name        string    `gorm:"column:name;size:200;not null"`
	Description string    `gorm:"column:description;type:text"`
	CreatedAt   time.Time `gorm:"column:created_at;autoCreateTime"`
}

func (ProjectModel) TableName() string {
	return constants.TableProjects
}

// UserProjectModel is the association table for the user-project
// many-to-many relationship, keyed by the (user_id, project_id) pair.
type UserProjectModel struct {
	UserID    uint `gorm:"column:user_id;primaryKey"`
	ProjectID uint `gorm:"column:project_id;primaryKey"`
}

func (UserProjectModel) TableName() string {
	return constants.TableUserProjects
}
