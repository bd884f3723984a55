package models

import (
	"time"

	"stride/internal/shared/constants"
)

// BugModel is the GORM model for the bugs table
type BugModel struct {
	ID          uint      `gorm:"primaryKey;autoIncrement"`
	Title       string    `gorm:"column:title;size:200;not null"`
	Description string    `gorm:"column:description;type:text"`
	Severity    string    `gorm:"column:severity;size:20;not null;default:'medium'"`
	Status      string    `gorm:"column:status;size:20;not null;default:'todo'"`
	StoryID     uint      `gorm:"column:story_id;not null;index"`
	AssigneeID  *uint     `gorm:"column:assignee_id;index"`
	CreatedAt   time.Time `gorm:"column:created_at;autoCreateTime"`
}

func (BugModel) TableName() string {
	return constants.TableBugs
}
