package backlog

import (
	"fmt"
	"strings"
	"time"

	"stride/internal/shared/biztime"
)

// Bug shares the task workflow but carries a severity. Like tasks, the
// assignee is a weak reference.
type Bug struct {
	id          uint
	title       string
	description string
	severity    Severity
	status      WorkStatus
	storyID     uint
	assigneeID  *uint
	createdAt   time.Time
}

func NewBug(title, description string, severity Severity, storyID uint) (*Bug, error) {
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
	if severity == "" {
		severity = SeverityMedium
	}
	if !severity.IsValid() {
		return nil, fmt.Errorf("invalid severity %q", severity)
	}
	if storyID == 0 {
		return nil, fmt.Errorf("story ID is required")
	}

	return &Bug{
		title:       title,
		description: description,
		severity:    severity,
		status:      StatusTodo,
		storyID:     storyID,
		createdAt:   biztime.NowUTC(),
	}, nil
}

func ReconstructBug(
	id uint,
	title, description string,
	severity Severity,
	status WorkStatus,
	storyID uint,
	assigneeID *uint,
	createdAt time.Time,
) (*Bug, error) {
	if id == 0 {
		return nil, fmt.Errorf("bug ID cannot be zero")
	}
	if title == "" {
		return nil, fmt.Errorf("title is required")
	}
	if !severity.IsValid() {
		return nil, fmt.Errorf("invalid severity %q", severity)
	}
	if !status.IsValid() {
		return nil, fmt.Errorf("invalid status %q", status)
	}
	if storyID == 0 {
		return nil, fmt.Errorf("story ID is required")
	}

	return &Bug{
		id:          id,
		title:       title,
		description: description,
		severity:    severity,
		status:      status,
		storyID:     storyID,
		assigneeID:  assigneeID,
		createdAt:   createdAt,
	}, nil
}

func (b *Bug) ID() uint {
	return b.id
}

func (b *Bug) Title() string {
	return b.title
}

func (b *Bug) Description() string {
	return b.description
}

func (b *Bug) Severity() Severity {
	return b.severity
}

func (b *Bug) Status() WorkStatus {
	return b.status
}

func (b *Bug) StoryID() uint {
	return b.storyID
}

func (b *Bug) AssigneeID() *uint {
	return b.assigneeID
}

func (b *Bug) CreatedAt() time.Time {
	return b.createdAt
}

func (b *Bug) SetID(id uint) error {
	if b.id != 0 {
		return fmt.Errorf("bug ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("bug ID cannot be zero")
	}
	b.id = id
	return nil
}

func (b *Bug) ChangeStatus(status WorkStatus) error {
	if !status.IsValid() {
		return fmt.Errorf("invalid status %q", status)
	}
	b.status = status
	return nil
}

func (b *Bug) AssignTo(userID uint) error {
	if userID == 0 {
		return fmt.Errorf("assignee ID cannot be zero")
	}
	b.assigneeID = &userID
	return nil
}

func (b *Bug) Unassign() {
	b.assigneeID = nil
}
