package project

import (
	"time"

	"stride/internal/application/project/usecases"
)

type CreateProjectRequest struct {
	Name        string `json:"name" binding:"required,max=200"`
	Description string `json:"description" binding:"max=5000"`
}

func (r *CreateProjectRequest) ToCommand(creatorID uint) usecases.CreateProjectCommand {
	return usecases.CreateProjectCommand{
		Name:        r.Name,
		Description: r.Description,
		CreatorID:   creatorID,
	}
}

type AddMemberRequest struct {
	UserID uint `json:"user_id" binding:"required"`
}

type ProjectResponse struct {
	ID          uint      `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
}

func toProjectResponse(result *usecases.ProjectResult) ProjectResponse {
	return ProjectResponse{
		ID:          result.ID,
		Name:        result.Name,
		Description: result.Description,
		CreatedAt:   result.CreatedAt,
	}
}
