package usecases

import (
	"context"
	"fmt"

	"stride/internal/domain/backlog"
	"stride/internal/domain/project"
	"stride/internal/domain/user"
	"stride/internal/shared/errors"
	"stride/internal/shared/logger"
)

// AssignBugCommand sets or clears the assignee of a bug. A nil AssigneeID
// unassigns the bug.
type AssignBugCommand struct {
	BugID       uint
	AssigneeID  *uint
	RequesterID uint
}

// AssignBugUseCase manages bug assignment
type AssignBugUseCase struct {
	bugRepo  backlog.BugRepository
	userRepo user.Repository
	guard    *accessGuard
	logger   logger.Interface
}

// NewAssignBugUseCase creates a new assign bug use case
func NewAssignBugUseCase(
	bugRepo backlog.BugRepository,
	userRepo user.Repository,
	storyRepo backlog.StoryRepository,
	epicRepo backlog.EpicRepository,
	projectRepo project.Repository,
	log logger.Interface,
) *AssignBugUseCase {
	return &AssignBugUseCase{
		bugRepo:  bugRepo,
		userRepo: userRepo,
		guard:    newAccessGuard(projectRepo, epicRepo, storyRepo),
		logger:   log,
	}
}

// Execute assigns the bug to an existing user, or unassigns it
func (uc *AssignBugUseCase) Execute(ctx context.Context, cmd AssignBugCommand) (*BugResult, error) {
	entity, err := uc.bugRepo.GetByID(ctx, cmd.BugID)
	if err != nil {
		return nil, fmt.Errorf("failed to get bug: %w", err)
	}
	if entity == nil {
		return nil, errors.NewNotFoundError("bug not found")
	}

	if _, err := uc.guard.requireStoryAccess(ctx, entity.StoryID(), cmd.RequesterID); err != nil {
		return nil, err
	}

	if cmd.AssigneeID == nil {
		entity.Unassign()
	} else {
		assignee, err := uc.userRepo.GetByID(ctx, *cmd.AssigneeID)
		if err != nil {
			return nil, fmt.Errorf("failed to get assignee: %w", err)
		}
		if assignee == nil {
			return nil, errors.NewNotFoundError("assignee not found")
		}
		if err := entity.AssignTo(*cmd.AssigneeID); err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
	}

	if err := uc.bugRepo.Update(ctx, entity); err != nil {
		return nil, err
	}

	uc.logger.Infow("bug assignment updated", "id", entity.ID())
	return bugResult(entity), nil
}
