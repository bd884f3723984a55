// Package project contains the project aggregate and its repository contract.
package project

import (
	"fmt"
	"strings"
	"time"

	"stride/internal/shared/biztime"
)

const (
	maxNameLength        = 200
	maxDescriptionLength = 5000
)

// Project is owned collectively by its members (many-to-many with users) and
// exclusively owns its epics.
type Project struct {
	id          uint
	name        string
	description string
	createdAt   time.Time
}

func NewProject(name, description string) (*Project, error) {
	name = strings.TrimSpace(name)

	if name == "" {
		return nil, fmt.Errorf("name is required")
	}
	if len(name) > maxNameLength {
		return nil, fmt.Errorf("name exceeds maximum length of %d characters", maxNameLength)
	}
	if len(description) > maxDescriptionLength {
		return nil, fmt.Errorf("description exceeds maximum length of %d characters", maxDescriptionLength)
	}

	return &Project{
		name:        name,
		description: description,
		createdAt:   biztime.NowUTC(),
	}, nil
}

func ReconstructProject(id uint, name, description string, createdAt time.Time) (*Project, error) {
	if id == 0 {
		return nil, fmt.Errorf("project ID cannot be zero")
	}
	if name == "" {
		return nil, fmt.Errorf("name is required")
	}

	return &Project{
		id:          id,
		name:        name,
		description: description,
		createdAt:   createdAt,
	}, nil
}

func (p *Project) ID() uint {
	return p.id
}

func (p *Project) Name() string {
	return p.name
}

func (p *Project) Description() string {
	return p.description
}

func (p *Project) CreatedAt() time.Time {
	return p.createdAt
}

func (p *Project) SetID(id uint) error {
	if p.id != 0 {
		return fmt.Errorf("project ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("project ID cannot be zero")
	}
	p.id = id
	return nil
}
