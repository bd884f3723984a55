package usecases

import (
	"context"

	"stride/internal/domain/backlog"
	"stride/internal/domain/project"
	"stride/internal/shared/errors"
	"stride/internal/shared/logger"
)

// CreateBugCommand contains the data needed to report a bug. Severity
// defaults to medium when empty.
type CreateBugCommand struct {
	Title       string
	Description string
	Severity    string
	StoryID     uint
	RequesterID uint
}

// CreateBugUseCase files a bug under a story
type CreateBugUseCase struct {
	bugRepo backlog.BugRepository
	guard   *accessGuard
	logger  logger.Interface
}

// NewCreateBugUseCase creates a new create bug use case
func NewCreateBugUseCase(
	bugRepo backlog.BugRepository,
	storyRepo backlog.StoryRepository,
	epicRepo backlog.EpicRepository,
	projectRepo project.Repository,
	log logger.Interface,
) *CreateBugUseCase {
	return &CreateBugUseCase{
		bugRepo: bugRepo,
		guard:   newAccessGuard(projectRepo, epicRepo, storyRepo),
		logger:  log,
	}
}

// Execute files the bug. New bugs start unassigned in todo status.
func (uc *CreateBugUseCase) Execute(ctx context.Context, cmd CreateBugCommand) (*BugResult, error) {
	if _, err := uc.guard.requireStoryAccess(ctx, cmd.StoryID, cmd.RequesterID); err != nil {
		return nil, err
	}

	entity, err := backlog.NewBug(cmd.Title, cmd.Description, backlog.Severity(cmd.Severity), cmd.StoryID)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.bugRepo.Save(ctx, entity); err != nil {
		return nil, err
	}

	uc.logger.Infow("bug filed", "id", entity.ID(), "story_id", cmd.StoryID, "severity", entity.Severity().String())
	return bugResult(entity), nil
}
