package usecases

import (
	"time"

	"stride/internal/domain/backlog"
)

// EpicResult is the public view of an epic
type EpicResult struct {
	ID          uint
	Title       string
	Description string
	ProjectID   uint
	CreatedAt   time.Time
}

// StoryResult is the public view of a story
type StoryResult struct {
	ID          uint
	Title       string
	Description string
	EpicID      uint
	CreatedAt   time.Time
}

// TaskResult is the public view of a task
type TaskResult struct {
	ID          uint
	Title       string
	Description string
	Status      string
	StoryID     uint
	AssigneeID  *uint
	CreatedAt   time.Time
}

// BugResult is the public view of a bug
type BugResult struct {
	ID          uint
	Title       string
	Description string
	Severity    string
	Status      string
	StoryID     uint
	AssigneeID  *uint
	CreatedAt   time.Time
}

// CommentResult is the public view of a comment
type CommentResult struct {
	ID        uint
	Content   string
	AuthorID  uint
	TaskID    *uint
	BugID     *uint
	CreatedAt time.Time
}

func epicResult(e *backlog.Epic) *EpicResult {
	return &EpicResult{
		ID:          e.ID(),
		Title:       e.Title(),
		Description: e.Description(),
		ProjectID:   e.ProjectID(),
		CreatedAt:   e.CreatedAt(),
	}
}

func storyResult(s *backlog.Story) *StoryResult {
	return &StoryResult{
		ID:          s.ID(),
		Title:       s.Title(),
		Description: s.Description(),
		EpicID:      s.EpicID(),
		CreatedAt:   s.CreatedAt(),
	}
}

func taskResult(t *backlog.Task) *TaskResult {
	return &TaskResult{
		ID:          t.ID(),
		Title:       t.Title(),
		Description: t.Description(),
		Status:      t.Status().String(),
		StoryID:     t.StoryID(),
		AssigneeID:  t.AssigneeID(),
		CreatedAt:   t.CreatedAt(),
	}
}

func bugResult(b *backlog.Bug) *BugResult {
	return &BugResult{
		ID:          b.ID(),
		Title:       b.Title(),
		Description: b.Description(),
		Severity:    b.Severity().String(),
		Status:      b.Status().String(),
		StoryID:     b.StoryID(),
		AssigneeID:  b.AssigneeID(),
		CreatedAt:   b.CreatedAt(),
	}
}

func commentResult(c *backlog.Comment) *CommentResult {
	return &CommentResult{
		ID:        c.ID(),
		Content:   c.Content(),
		AuthorID:  c.AuthorID(),
		TaskID:    c.TaskID(),
		BugID:     c.BugID(),
		CreatedAt: c.CreatedAt(),
	}
}
