package backlog

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"stride/internal/application/backlog/usecases"
	"stride/internal/interfaces/http/middleware"
	"stride/internal/shared/logger"
	"stride/internal/shared/utils"
)

// TaskHandler serves task CRUD, workflow, and assignment under stories
type TaskHandler struct {
	createUC       *usecases.CreateTaskUseCase
	getUC          *usecases.GetTaskUseCase
	listUC         *usecases.ListTasksUseCase
	updateStatusUC *usecases.UpdateTaskStatusUseCase
	assignUC       *usecases.AssignTaskUseCase
	deleteUC       *usecases.DeleteTaskUseCase
	logger         logger.Interface
}

// NewTaskHandler creates a new task handler
func NewTaskHandler(
	createUC *usecases.CreateTaskUseCase,
	getUC *usecases.GetTaskUseCase,
	listUC *usecases.ListTasksUseCase,
	updateStatusUC *usecases.UpdateTaskStatusUseCase,
	assignUC *usecases.AssignTaskUseCase,
	deleteUC *usecases.DeleteTaskUseCase,
) *TaskHandler {
	return &TaskHandler{
		createUC:       createUC,
		getUC:          getUC,
		listUC:         listUC,
		updateStatusUC: updateStatusUC,
		assignUC:       assignUC,
		deleteUC:       deleteUC,
		logger:         logger.NewLogger(),
	}
}

// CreateTask handles POST /stories/:id/tasks
func (h *TaskHandler) CreateTask(c *gin.Context) {
	storyID, err := utils.ParseIDParam(c, "id", "story")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req CreateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid create task request", "error", err)
		utils.ErrorResponseWithError(c, utils.FormatBindingError(err))
		return
	}

	userID, _ := middleware.CurrentUserID(c)

	result, err := h.createUC.Execute(c.Request.Context(), usecases.CreateTaskCommand{
		Title:       req.Title,
		Description: req.Description,
		StoryID:     storyID,
		RequesterID: userID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, toTaskResponse(result))
}

// ListTasks handles GET /stories/:id/tasks
func (h *TaskHandler) ListTasks(c *gin.Context) {
	storyID, err := utils.ParseIDParam(c, "id", "story")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	userID, _ := middleware.CurrentUserID(c)

	results, err := h.listUC.Execute(c.Request.Context(), storyID, userID)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	responses := make([]TaskResponse, 0, len(results))
	for _, result := range results {
		responses = append(responses, toTaskResponse(result))
	}
	utils.SuccessResponse(c, http.StatusOK, "", responses)
}

// GetTask handles GET /tasks/:id
func (h *TaskHandler) GetTask(c *gin.Context) {
	taskID, err := utils.ParseIDParam(c, "id", "task")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	userID, _ := middleware.CurrentUserID(c)

	result, err := h.getUC.Execute(c.Request.Context(), taskID, userID)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", toTaskResponse(result))
}

// UpdateTaskStatus handles PATCH /tasks/:id/status
func (h *TaskHandler) UpdateTaskStatus(c *gin.Context) {
	taskID, err := utils.ParseIDParam(c, "id", "task")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, utils.FormatBindingError(err))
		return
	}

	userID, _ := middleware.CurrentUserID(c)

	result, err := h.updateStatusUC.Execute(c.Request.Context(), usecases.UpdateTaskStatusCommand{
		TaskID:      taskID,
		Status:      req.Status,
		RequesterID: userID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", toTaskResponse(result))
}

// AssignTask handles PATCH /tasks/:id/assignee
func (h *TaskHandler) AssignTask(c *gin.Context) {
	taskID, err := utils.ParseIDParam(c, "id", "task")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req AssignRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, utils.FormatBindingError(err))
		return
	}

	userID, _ := middleware.CurrentUserID(c)

	result, err := h.assignUC.Execute(c.Request.Context(), usecases.AssignTaskCommand{
		TaskID:      taskID,
		AssigneeID:  req.AssigneeID,
		RequesterID: userID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", toTaskResponse(result))
}

// DeleteTask handles DELETE /tasks/:id
func (h *TaskHandler) DeleteTask(c *gin.Context) {
	taskID, err := utils.ParseIDParam(c, "id", "task")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	userID, _ := middleware.CurrentUserID(c)

	if err := h.deleteUC.Execute(c.Request.Context(), taskID, userID); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.NoContentResponse(c)
}
