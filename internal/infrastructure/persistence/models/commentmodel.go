package models

import (
	"time"

	"stride/internal/shared/constants"
)

// CommentModel is the GORM model for the comments table. Exactly one of
// TaskID and BugID is set; the repository rejects rows violating the xor.
type CommentModel struct {
	ID        uint      `gorm:"primaryKey;autoIncrement"`
	Content   string    `gorm:"column:content;type:text;not null"`
	AuthorID  uint      `gorm:"column:author_id;not null;index"`
	TaskID    *uint     `gorm:"column:task_id;index"`
	BugID     *uint     `gorm:"column:bug_id;index"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime"`
}

func (CommentModel) TableName() string {
	return constants.TableComments
}
