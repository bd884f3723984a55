package usecases

import (
	"context"
	"fmt"

	"stride/internal/domain/project"
	"stride/internal/domain/user"
	"stride/internal/shared/errors"
	"stride/internal/shared/logger"
)

// AddMemberCommand links a user to a project
type AddMemberCommand struct {
	ProjectID   uint
	UserID      uint
	RequesterID uint
}

// AddMemberUseCase enrolls an existing user into a project
type AddMemberUseCase struct {
	projectRepo project.Repository
	userRepo    user.Repository
	logger      logger.Interface
}

// NewAddMemberUseCase creates a new add member use case
func NewAddMemberUseCase(
	projectRepo project.Repository,
	userRepo user.Repository,
	log logger.Interface,
) *AddMemberUseCase {
	return &AddMemberUseCase{
		projectRepo: projectRepo,
		userRepo:    userRepo,
		logger:      log,
	}
}

// Execute adds the user to the project. Only existing members may add others.
func (uc *AddMemberUseCase) Execute(ctx context.Context, cmd AddMemberCommand) error {
	entity, err := uc.projectRepo.GetByID(ctx, cmd.ProjectID)
	if err != nil {
		return fmt.Errorf("failed to get project: %w", err)
	}
	if entity == nil {
		return errors.NewNotFoundError("project not found")
	}

	requesterIsMember, err := uc.projectRepo.IsMember(ctx, cmd.ProjectID, cmd.RequesterID)
	if err != nil {
		return fmt.Errorf("failed to check membership: %w", err)
	}
	if !requesterIsMember {
		return errors.NewForbiddenError("not a member of this project")
	}

	target, err := uc.userRepo.GetByID(ctx, cmd.UserID)
	if err != nil {
		return fmt.Errorf("failed to get user: %w", err)
	}
	if target == nil {
		return errors.NewNotFoundError("user not found")
	}

	if err := uc.projectRepo.AddMember(ctx, cmd.ProjectID, cmd.UserID); err != nil {
		return err
	}

	uc.logger.Infow("member added to project", "project_id", cmd.ProjectID, "user_id", cmd.UserID)
	return nil
}
