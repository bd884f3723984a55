package models

import (
	"time"

	"stride/internal/shared/constants"
)

// TaskModel is the GORM model for the tasks table. AssigneeID is a weak
// reference; it is cleared, not cascaded, when the assignee is deleted.
type TaskModel struct {
	ID          uint      `gorm:"primaryKey;autoIncrement"`
	Title       string    `gorm:"column:title;size:200;not null"`
	Description string    `gorm:"column:description;type:text"`
	Status      string    `gorm:"column:status;size:20;not null;default:'todo'"`
	StoryID     uint      `gorm:"column:story_id;not null;index"`
	AssigneeID  *uint     `gorm:"column:assignee_id;index"`
	CreatedAt   time.Time `gorm:"column:created_at;autoCreateTime"`
}

func (TaskModel) TableName() string {
	return constants.TableTasks
}
