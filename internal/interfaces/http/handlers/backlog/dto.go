package backlog

import (
	"time"

	"stride/internal/application/backlog/usecases"
)

type CreateEpicRequest struct {
	Title       string `json:"title" binding:"required,max=200"`
	Description string `json:"description" binding:"max=5000"`
}

type CreateStoryRequest struct {
	Title       string `json:"title" binding:"required,max=200"`
	Description string `json:"description" binding:"max=5000"`
}

type CreateTaskRequest struct {
	Title       string `json:"title" binding:"required,max=200"`
	Description string `json:"description" binding:"max=5000"`
}

type CreateBugRequest struct {
	Title       string `json:"title" binding:"required,max=200"`
	Description string `json:"description" binding:"max=5000"`
	Severity    string `json:"severity" binding:"omitempty,oneof=low medium high critical"`
}

type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=todo in_progress done"`
}

// AssignRequest sets the assignee. A null assignee_id unassigns.
type AssignRequest struct {
	AssigneeID *uint `json:"assignee_id"`
}

type AddCommentRequest struct {
	Content string `json:"content" binding:"required,max=5000"`
}

type EpicResponse struct {
	ID          uint      `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	ProjectID   uint      `json:"project_id"`
	CreatedAt   time.Time `json:"created_at"`
}

type StoryResponse struct {
	ID          uint      `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	EpicID      uint      `json:"epic_id"`
	CreatedAt   time.Time `json:"created_at"`
}

type TaskResponse struct {
	ID          uint      `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Status      string    `json:"status"`
	StoryID     uint      `json:"story_id"`
	AssigneeID  *uint     `json:"assignee_id"`
	CreatedAt   time.Time `json:"created_at"`
}

type BugResponse struct {
	ID          uint      `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Severity    string    `json:"severity"`
	Status      string    `json:"status"`
	StoryID     uint      `json:"story_id"`
	AssigneeID  *uint     `json:"assignee_id"`
	CreatedAt   time.Time `json:"created_at"`
}

type CommentResponse struct {
	ID        uint      `json:"id"`
	Content   string    `json:"content"`
	AuthorID  uint      `json:"author_id"`
	TaskID    *uint     `json:"task_id,omitempty"`
	BugID     *uint     `json:"bug_id,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

func toEpicResponse(r *usecases.EpicResult) EpicResponse {
	return EpicResponse{
		ID:          r.ID,
		Title:       r.Title,
		Description: r.Description,
		ProjectID:   r.ProjectID,
		CreatedAt:   r.CreatedAt,
	}
}

func toStoryResponse(r *usecases.StoryResult) StoryResponse {
	return StoryResponse{
		ID:          r.ID,
		Title:       r.Title,
		Description: r.Description,
		EpicID:      r.EpicID,
		CreatedAt:   r.CreatedAt,
	}
}

func toTaskResponse(r *usecases.TaskResult) TaskResponse {
	return TaskResponse{
		ID:          r.ID,
		Title:       r.Title,
		Description: r.Description,
		Status:      r.Status,
		StoryID:     r.StoryID,
		AssigneeID:  r.AssigneeID,
		CreatedAt:   r.CreatedAt,
	}
}

func toBugResponse(r *usecases.BugResult) BugResponse {
	return BugResponse{
		ID:          r.ID,
		Title:       r.Title,
		Description: r.Description,
		Severity:    r.Severity,
		Status:      r.Status,
		StoryID:     r.StoryID,
		AssigneeID:  r.AssigneeID,
		CreatedAt:   r.CreatedAt,
	}
}

func toCommentResponse(r *usecases.CommentResult) CommentResponse {
	return CommentResponse{
		ID:        r.ID,
		Content:   r.Content,
		AuthorID:  r.AuthorID,
		TaskID:    r.TaskID,
		BugID:     r.BugID,
		CreatedAt: r.CreatedAt,
	}
}
