package usecases

import (
	"context"
	"time"

	"stride/internal/domain/project"
	"stride/internal/shared/db"
	"stride/internal/shared/errors"
	"stride/internal/shared/logger"
)

// CreateProjectCommand contains the data needed to create a project
type CreateProjectCommand struct {
	Name        string
	Description string
	CreatorID   uint
}

// ProjectResult is the public view of a project
type ProjectResult struct {
	ID          uint
	Name        string
	Description string
	CreatedAt   time.Time
}

// CreateProjectUseCase creates a project and enrolls the creator as its
// first member.
type CreateProjectUseCase struct {
	projectRepo project.Repository
	txMgr       *db.TransactionManager
	logger      logger.Interface
}

// NewCreateProjectUseCase creates a new create project use case
func NewCreateProjectUseCase(
	projectRepo project.Repository,
	txMgr *db.TransactionManager,
	log logger.Interface,
) *CreateProjectUseCase {
	return &CreateProjectUseCase{
		projectRepo: projectRepo,
		txMgr:       txMgr,
		logger:      log,
	}
}

// Execute creates the project. The creator becomes a member atomically with
// the project row.
func (uc *CreateProjectUseCase) Execute(ctx context.Context, cmd CreateProjectCommand) (*ProjectResult, error) {
	entity, err := project.NewProject(cmd.Name, cmd.Description)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	err = uc.txMgr.RunInTransaction(ctx, func(ctx context.Context) error {
		return uc.projectRepo.Create(ctx, entity, cmd.CreatorID)
	})
	if err != nil {
		return nil, err
	}

	uc.logger.Infow("project created", "id", entity.ID(), "creator_id", cmd.CreatorID)

	return &ProjectResult{
		ID:          entity.ID(),
		Name:        entity.Name(),
		Description: entity.Description(),
		CreatedAt:   entity.CreatedAt(),
	}, nil
}
