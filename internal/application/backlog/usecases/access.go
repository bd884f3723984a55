package usecases

import (
	"context"
	"fmt"

	"stride/internal/domain/backlog"
	"stride/internal/domain/project"
	"stride/internal/shared/errors"
)

// accessGuard walks a work item up to its owning project and checks that the
// requester is a member. Every backlog use case goes through it.
type accessGuard struct {
	projectRepo project.Repository
	epicRepo    backlog.EpicRepository
	storyRepo   backlog.StoryRepository
}

func newAccessGuard(
	projectRepo project.Repository,
	epicRepo backlog.EpicRepository,
	storyRepo backlog.StoryRepository,
) *accessGuard {
	return &accessGuard{
		projectRepo: projectRepo,
		epicRepo:    epicRepo,
		storyRepo:   storyRepo,
	}
}

// requireProjectMember fails with not-found when the project is missing and
// forbidden when the requester is not a member.
func (g *accessGuard) requireProjectMember(ctx context.Context, projectID, requesterID uint) error {
	entity, err := g.projectRepo.GetByID(ctx, projectID)
	if err != nil {
		return fmt.Errorf("failed to get project: %w", err)
	}
	if entity == nil {
		return errors.NewNotFoundError("project not found")
	}

	isMember, err := g.projectRepo.IsMember(ctx, projectID, requesterID)
	if err != nil {
		return fmt.Errorf("failed to check membership: %w", err)
	}
	if !isMember {
		return errors.NewForbiddenError("not a member of this project")
	}
	return nil
}

// requireEpicAccess resolves the epic and checks membership on its project
func (g *accessGuard) requireEpicAccess(ctx context.Context, epicID, requesterID uint) (*backlog.Epic, error) {
	epic, err := g.epicRepo.GetByID(ctx, epicID)
	if err != nil {
		return nil, fmt.Errorf("failed to get epic: %w", err)
	}
	if epic == nil {
		return nil, errors.NewNotFoundError("epic not found")
	}
	if err := g.requireProjectMember(ctx, epic.ProjectID(), requesterID); err != nil {
		return nil, err
	}
	return epic, nil
}

// requireStoryAccess resolves the story and checks membership up the chain
func (g *accessGuard) requireStoryAccess(ctx context.Context, storyID, requesterID uint) (*backlog.Story, error) {
	story, err := g.storyRepo.GetByID(ctx, storyID)
	if err != nil {
		return nil, fmt.Errorf("failed to get story: %w", err)
	}
	if story == nil {
		return nil, errors.NewNotFoundError("story not found")
	}
	if _, err := g.requireEpicAccess(ctx, story.EpicID(), requesterID); err != nil {
		return nil, err
	}
	return story, nil
}
