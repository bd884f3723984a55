package usecases

import (
	"context"
	"fmt"

	"stride/internal/domain/backlog"
	"stride/internal/domain/project"
	"stride/internal/shared/errors"
	"stride/internal/shared/logger"
)

// CreateStoryCommand contains the data needed to create a story
type CreateStoryCommand struct {
	Title       string
	Description string
	EpicID      uint
	RequesterID uint
}

// CreateStoryUseCase creates a story under an epic
type CreateStoryUseCase struct {
	storyRepo backlog.StoryRepository
	guard     *accessGuard
	logger    logger.Interface
}

// NewCreateStoryUseCase creates a new create story use case
func NewCreateStoryUseCase(
	storyRepo backlog.StoryRepository,
	epicRepo backlog.EpicRepository,
	projectRepo project.Repository,
	log logger.Interface,
) *CreateStoryUseCase {
	return &CreateStoryUseCase{
		storyRepo: storyRepo,
		guard:     newAccessGuard(projectRepo, epicRepo, storyRepo),
		logger:    log,
	}
}

// Execute creates the story. Titles are unique within an epic.
func (uc *CreateStoryUseCase) Execute(ctx context.Context, cmd CreateStoryCommand) (*StoryResult, error) {
	if _, err := uc.guard.requireEpicAccess(ctx, cmd.EpicID, cmd.RequesterID); err != nil {
		return nil, err
	}

	existing, err := uc.storyRepo.GetByTitleAndEpic(ctx, cmd.Title, cmd.EpicID)
	if err != nil {
		return nil, fmt.Errorf("failed to check existing story: %w", err)
	}
	if existing != nil {
		uc.logger.Warnw("story title already used in epic", "epic_id", cmd.EpicID)
		return nil, errors.NewConflictError("story with this title already exists in the epic")
	}

	entity, err := backlog.NewStory(cmd.Title, cmd.Description, cmd.EpicID)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.storyRepo.Save(ctx, entity); err != nil {
		return nil, err
	}

	uc.logger.Infow("story created", "id", entity.ID(), "epic_id", cmd.EpicID)
	return storyResult(entity), nil
}
