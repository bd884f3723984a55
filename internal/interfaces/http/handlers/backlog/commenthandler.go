package backlog

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"stride/internal/application/backlog/usecases"
	"stride/internal/interfaces/http/middleware"
	"stride/internal/shared/logger"
	"stride/internal/shared/utils"
)

// CommentHandler serves comments on tasks and bugs
type CommentHandler struct {
	addUC    *usecases.AddCommentUseCase
	listUC   *usecases.ListCommentsUseCase
	deleteUC *usecases.DeleteCommentUseCase
	logger   logger.Interface
}

// NewCommentHandler creates a new comment handler
func NewCommentHandler(
	addUC *usecases.AddCommentUseCase,
	listUC *usecases.ListCommentsUseCase,
	deleteUC *usecases.DeleteCommentUseCase,
) *CommentHandler {
	return &CommentHandler{
		addUC:    addUC,
		listUC:   listUC,
		deleteUC: deleteUC,
		logger:   logger.NewLogger(),
	}
}

// AddTaskComment handles POST /tasks/:id/comments
func (h *CommentHandler) AddTaskComment(c *gin.Context) {
	taskID, err := utils.ParseIDParam(c, "id", "task")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req AddCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid add comment request", "error", err)
		utils.ErrorResponseWithError(c, utils.FormatBindingError(err))
		return
	}

	userID, _ := middleware.CurrentUserID(c)

	result, err := h.addUC.Execute(c.Request.Context(), usecases.AddCommentCommand{
		Content:     req.Content,
		TaskID:      &taskID,
		RequesterID: userID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, toCommentResponse(result))
}

// AddBugComment handles POST /bugs/:id/comments
func (h *CommentHandler) AddBugComment(c *gin.Context) {
	bugID, err := utils.ParseIDParam(c, "id", "bug")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req AddCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid add comment request", "error", err)
		utils.ErrorResponseWithError(c, utils.FormatBindingError(err))
		return
	}

	userID, _ := middleware.CurrentUserID(c)

	result, err := h.addUC.Execute(c.Request.Context(), usecases.AddCommentCommand{
		Content:     req.Content,
		BugID:       &bugID,
		RequesterID: userID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, toCommentResponse(result))
}

// ListTaskComments handles GET /tasks/:id/comments
func (h *CommentHandler) ListTaskComments(c *gin.Context) {
	taskID, err := utils.ParseIDParam(c, "id", "task")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	userID, _ := middleware.CurrentUserID(c)

	results, err := h.listUC.ExecuteForTask(c.Request.Context(), taskID, userID)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", toCommentResponses(results))
}

// ListBugComments handles GET /bugs/:id/comments
func (h *CommentHandler) ListBugComments(c *gin.Context) {
	bugID, err := utils.ParseIDParam(c, "id", "bug")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	userID, _ := middleware.CurrentUserID(c)

	results, err := h.listUC.ExecuteForBug(c.Request.Context(), bugID, userID)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", toCommentResponses(results))
}

// DeleteComment handles DELETE /comments/:id
func (h *CommentHandler) DeleteComment(c *gin.Context) {
	commentID, err := utils.ParseIDParam(c, "id", "comment")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	userID, _ := middleware.CurrentUserID(c)

	if err := h.deleteUC.Execute(c.Request.Context(), commentID, userID); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.NoContentResponse(c)
}

func toCommentResponses(results []*usecases.CommentResult) []CommentResponse {
	responses := make([]CommentResponse, 0, len(results))
	for _, result := range results {
		responses = append(responses, toCommentResponse(result))
	}
	return responses
}
