package models

import (
	"time"

	"stride/internal/shared/constants"
)

// EpicModel is the GORM model for the epics table. Title is unique within a
// project.
type EpicModel struct {
	ID          uint      `gorm:"primaryKey;autoIncrement"`
	Title       string    `gorm:"column:title;size:200;not null;uniqueIndex:idx_epics_project_title"`
	Description string    `gorm:"column:description;type:text"`
	ProjectID   uint      `gorm:"column:project_id;not null;index;uniqueIndex:idx_epics_project_title"`
	CreatedAt   time.Time `gorm:"column:created_at;autoCreateTime"`
}

func (EpicModel) TableName() string {
	return constants.TableEpics
}
