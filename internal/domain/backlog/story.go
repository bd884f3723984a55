package backlog

import (
	"fmt"
	"strings"
	"time"

	"stride/internal/shared/biztime"
)

// Story is a unit of work under an epic. Its title is unique within the epic.
type Story struct {
	id          uint
	title       string
	description string
	epicID      uint
	createdAt   time.Time
}

func NewStory(title, description string, epicID uint) (*Story, error) {
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
	if epicID == 0 {
		return nil, fmt.Errorf("epic ID is required")
	}

	return &Story{
		title:       title,
		description: description,
		epicID:      epicID,
		createdAt:   biztime.NowUTC(),
	}, nil
}

func ReconstructStory(id uint, title, description string, epicID uint, createdAt time.Time) (*Story, error) {
	if id == 0 {
		return nil, fmt.Errorf("story ID cannot be zero")
	}
	if title == "" {
		return nil, fmt.Errorf("title is required")
	}
	if epicID == 0 {
		return nil, fmt.Errorf("epic ID is required")
	}

	return &Story{
		id:          id,
		title:       title,
		description: description,
		epicID:      epicID,
		createdAt:   createdAt,
	}, nil
}

func (s *Story) ID() uint {
	return s.id
}

func (s *Story) Title() string {
	return s.title
}

func (s *Story) Description() string {
	return s.description
}

func (s *Story) EpicID() uint {
	return s.epicID
}

func (s *Story) CreatedAt() time.Time {
	return s.createdAt
}

func (s *Story) SetID(id uint) error {
	if s.id != 0 {
		return fmt.Errorf("story ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("story ID cannot be zero")
	}
	s.id = id
	return nil
}
