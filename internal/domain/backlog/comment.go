package backlog

import (
	"fmt"
	"time"

	"stride/internal/shared/biztime"
)

// Comment attaches to exactly one work item, either a task or a bug, never
// both. The xor is enforced at construction and again by the repository.
type Comment struct {
	id        uint
	content   string
	authorID  uint
	taskID    *uint
	bugID     *uint
	createdAt time.Time
}

// NewTaskComment creates a comment on a task.
func NewTaskComment(content string, authorID, taskID uint) (*Comment, error) {
	if err := validateComment(content, authorID); err != nil {
		return nil, err
	}
	if taskID == 0 {
		return nil, fmt.Errorf("task ID is required")
	}

	return &Comment{
		content:   content,
		authorID:  authorID,
		taskID:    &taskID,
		createdAt: biztime.NowUTC(),
	}, nil
}

// NewBugComment creates a comment on a bug.
func NewBugComment(content string, authorID, bugID uint) (*Comment, error) {
	if err := validateComment(content, authorID); err != nil {
		return nil, err
	}
	if bugID == 0 {
		return nil, fmt.Errorf("bug ID is required")
	}

	return &Comment{
		content:   content,
		authorID:  authorID,
		bugID:     &bugID,
		createdAt: biztime.NowUTC(),
	}, nil
}

func validateComment(content string, authorID uint) error {
	if len(content) == 0 {
		return fmt.Errorf("content cannot be empty")
	}
	if len(content) > maxCommentLength {
		return fmt.Errorf("content exceeds maximum length of %d characters", maxCommentLength)
	}
	if authorID == 0 {
		return fmt.Errorf("author ID is required")
	}
	return nil
}

func ReconstructComment(
	id uint,
	content string,
	authorID uint,
	taskID, bugID *uint,
	createdAt time.Time,
) (*Comment, error) {
	if id == 0 {
		return nil, fmt.Errorf("comment ID cannot be zero")
	}
	if content == "" {
		return nil, fmt.Errorf("content cannot be empty")
	}
	if authorID == 0 {
		return nil, fmt.Errorf("author ID is required")
	}
	if (taskID == nil) == (bugID == nil) {
		return nil, fmt.Errorf("comment must reference exactly one of task or bug")
	}

	return &Comment{
		id:        id,
		content:   content,
		authorID:  authorID,
		taskID:    taskID,
		bugID:     bugID,
		createdAt: createdAt,
	}, nil
}

func (c *Comment) ID() uint {
	return c.id
}

func (c *Comment) Content() string {
	return c.content
}

func (c *Comment) AuthorID() uint {
	return c.authorID
}

func (c *Comment) TaskID() *uint {
	return c.taskID
}

func (c *Comment) BugID() *uint {
	return c.bugID
}

func (c *Comment) CreatedAt() time.Time {
	return c.createdAt
}

func (c *Comment) SetID(id uint) error {
	if c.id != 0 {
		return fmt.Errorf("comment ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("comment ID cannot be zero")
	}
	c.id = id
	return nil
}
