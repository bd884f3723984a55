package usecases

import (
	"context"
	"fmt"

	"stride/internal/domain/backlog"
	"stride/internal/domain/project"
	"stride/internal/shared/errors"
	"stride/internal/shared/logger"
)

// UpdateBugStatusCommand moves a bug through the workflow
type UpdateBugStatusCommand struct {
	BugID       uint
	Status      string
	RequesterID uint
}

// UpdateBugStatusUseCase changes the workflow status of a bug
type UpdateBugStatusUseCase struct {
	bugRepo backlog.BugRepository
	guard   *accessGuard
	logger  logger.Interface
}

// NewUpdateBugStatusUseCase creates a new update bug status use case
func NewUpdateBugStatusUseCase(
	bugRepo backlog.BugRepository,
	storyRepo backlog.StoryRepository,
	epicRepo backlog.EpicRepository,
	projectRepo project.Repository,
	log logger.Interface,
) *UpdateBugStatusUseCase {
	return &UpdateBugStatusUseCase{
		bugRepo: bugRepo,
		guard:   newAccessGuard(projectRepo, epicRepo, storyRepo),
		logger:  log,
	}
}

// Execute moves the bug to the given status
func (uc *UpdateBugStatusUseCase) Execute(ctx context.Context, cmd UpdateBugStatusCommand) (*BugResult, error) {
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

	if err := entity.ChangeStatus(backlog.WorkStatus(cmd.Status)); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.bugRepo.Update(ctx, entity); err != nil {
		return nil, err
	}

	uc.logger.Infow("bug status updated", "id", entity.ID(), "status", cmd.Status)
	return bugResult(entity), nil
}
