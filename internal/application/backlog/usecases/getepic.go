package usecases

import (
	"context"

	"stride/internal/domain/backlog"
	"stride/internal/domain/project"
	"stride/internal/shared/logger"
)

// GetEpicUseCase retrieves a single epic
type GetEpicUseCase struct {
	guard  *accessGuard
	logger logger.Interface
}

// NewGetEpicUseCase creates a new get epic use case
func NewGetEpicUseCase(
	epicRepo backlog.EpicRepository,
	projectRepo project.Repository,
	log logger.Interface,
) *GetEpicUseCase {
	return &GetEpicUseCase{
		guard:  newAccessGuard(projectRepo, epicRepo, nil),
		logger: log,
	}
}

// Execute retrieves the epic, restricted to project members
func (uc *GetEpicUseCase) Execute(ctx context.Context, epicID, requesterID uint) (*EpicResult, error) {
	entity, err := uc.guard.requireEpicAccess(ctx, epicID, requesterID)
	if err != nil {
		return nil, err
	}
	return epicResult(entity), nil
}
