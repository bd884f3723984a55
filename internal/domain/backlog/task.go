package backlog

import (
	"fmt"
	"strings"
	"time"

	"stride/internal/shared/biztime"
)

// Task belongs to a story and may be assigned to a user. The assignee is a
// reference, not ownership: clearing it never deletes the task.
type Task struct {
	id          uint
	title       string
	description string
	status      WorkStatus
	storyID     uint
	assigneeID  *uint
	createdAt   time.Time
}

func NewTask(title, description string, storyID uint) (*Task, error) {
	title = strings.TrimSpace(title)

	if title == "" {
		return nil, fmt.Errorf("title is required")
	}
	if len(title) > maxTitleLength {
		return nil, fmt.Errorf("title exceeds maximum length of %d characters", maxTitleLength)
	}
	if len(description) > maxDescriptionLength {
		return nil, fmt.Errorf("description exceeds maximum length of %d characters", maxDescriptionLength)
	}
	if storyID == 0 {
		return nil, fmt.Errorf("story ID is required")
	}

	return &Task{
		title:       title,
		description: description,
		status:      StatusTodo,
		storyID:     storyID,
		createdAt:   biztime.NowUTC(),
	}, nil
}

func ReconstructTask(
	id uint,
	title, description string,
	status WorkStatus,
	storyID uint,
	assigneeID *uint,
	createdAt time.Time,
) (*Task, error) {
	if id == 0 {
		return nil, fmt.Errorf("task ID cannot be zero")
	}
	if title == "" {
		return nil, fmt.Errorf("title is required")
	}
	if !status.IsValid() {
		return nil, fmt.Errorf("invalid status %q", status)
	}
	if storyID == 0 {
		return nil, fmt.Errorf("story ID is required")
	}

	return &Task{
		id:          id,
		title:       title,
		description: description,
		status:      status,
		storyID:     storyID,
		assigneeID:  assigneeID,
		createdAt:   createdAt,
	}, nil
}

func (t *Task) ID() uint {
	return t.id
}

func (t *Task) Title() string {
	return t.title
}

func (t *Task) Description() string {
	return t.description
}

func (t *Task) Status() WorkStatus {
	return t.status
}

func (t *Task) StoryID() uint {
	return t.storyID
}

func (t *Task) AssigneeID() *uint {
	return t.assigneeID
}

func (t *Task) CreatedAt() time.Time {
	return t.createdAt
}

func (t *Task) SetID(id uint) error {
	if t.id != 0 {
		return fmt.Errorf("task ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("task ID cannot be zero")
	}
	t.id = id
	return nil
}

func (t *Task) ChangeStatus(status WorkStatus) error {
	if !status.IsValid() {
		return fmt.Errorf("invalid status %q", status)
	}
	t.status = status
	return nil
}

func (t *Task) AssignTo(userID uint) error {
	if userID == 0 {
		return fmt.Errorf("assignee ID cannot be zero")
	}
	t.assigneeID = &userID
	return nil
}

func (t *Task) Unassign() {
	t.assigneeID = nil
}
