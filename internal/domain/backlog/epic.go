// Package backlog contains the planning hierarchy beneath a project:
// epics, stories, tasks, bugs, and the comments attached to work items.
package backlog

import (
	"fmt"
	"strings"
	"time"

	"stride/internal/shared/biztime"
)

const (
	maxTitleLength       = 200
	maxDescriptionLength = 5000
	maxCommentLength     = 5000
)

// Epic groups stories under a project. Its title is unique within the project.
type Epic struct {
	id          uint
	title       string
	description string
	projectID   uint
	createdAt   time.Time
}

func NewEpic(title, description string, projectID uint) (*Epic, error) {
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
	if projectID == 0 {
		return nil, fmt.Errorf("project ID is required")
	}

	return &Epic{
		title:       title,
		description: description,
		projectID:   projectID,
		createdAt:   biztime.NowUTC(),
	}, nil
}

func ReconstructEpic(id uint, title, description string, projectID uint, createdAt time.Time) (*Epic, error) {
	if id == 0 {
		return nil, fmt.Errorf("epic ID cannot be zero")
	}
	if title == "" {
		return nil, fmt.Errorf("title is required")
	}
	if projectID == 0 {
		return nil, fmt.Errorf("project ID is required")
	}

	return &Epic{
		id:          id,
		title:       title,
		description: description,
		projectID:   projectID,
		createdAt:   createdAt,
	}, nil
}

func (e *Epic) ID() uint {
	return e.id
}

func (e *Epic) Title() string {
	return e.title
}

func (e *Epic) Description() string {
	return e.description
}

func (e *Epic) ProjectID() uint {
	return e.projectID
}

func (e *Epic) CreatedAt() time.Time {
	return e.createdAt
}

func (e *Epic) SetID(id uint) error {
	if e.id != 0 {
		return fmt.Errorf("epic ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("epic ID cannot be zero")
	}
	e.id = id
	return nil
}
