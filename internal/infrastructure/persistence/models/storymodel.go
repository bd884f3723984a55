package models

import (
	"time"

	"stride/internal/shared/constants"
)

// StoryModel is the GORM model for the stories table. Title is unique within
// an epic.
type StoryModel struct {
	ID          uint      `gorm:"primaryKey;autoIncrement"`
	Title       string    `gorm:"column:title;size:200;not null;uniqueIndex:idx_stories_epic_title"`
	Description string    `gorm:"column:description;type:text"`
	EpicID      uint      `gorm:"column:epic_id;not null;index;uniqueIndex:idx_stories_epic_title"`
	CreatedAt   time.Time `gorm:"column:created_at;autoCreateTime"`
}

func (StoryModel) TableName() string {
	return constants.TableStories
}
