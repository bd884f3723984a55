package backlog

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"stride/internal/application/backlog/usecases"
	"stride/internal/interfaces/http/middleware"
	"stride/internal/shared/logger"
	"stride/internal/shared/utils"
)

// BugHandler serves bug CRUD, workflow, and assignment under stories
type BugHandler struct {
	createUC       *usecases.CreateBugUseCase
	getUC          *usecases.GetBugUseCase
	listUC         *usecases.ListBugsUseCase
	updateStatusUC *usecases.UpdateBugStatusUseCase
	assignUC       *usecases.AssignBugUseCase
	deleteUC       *usecases.DeleteBugUseCase
	logger         logger.Interface
}

// NewBugHandler creates a new bug handler
func NewBugHandler(
	createUC *usecases.CreateBugUseCase,
	getUC *usecases.GetBugUseCase,
	listUC *usecases.ListBugsUseCase,
	updateStatusUC *usecases.UpdateBugStatusUseCase,
	assignUC *usecases.AssignBugUseCase,
	deleteUC *usecases.DeleteBugUseCase,
) *BugHandler {
	return &BugHandler{
		createUC:       createUC,
		getUC:          getUC,
		listUC:         listUC,
		updateStatusUC: updateStatusUC,
		assignUC:       assignUC,
		deleteUC:       deleteUC,
		logger:         logger.NewLogger(),
	}
}

// CreateBug handles POST /stories/:id/bugs
func (h *BugHandler) CreateBug(c *gin.Context) {
	storyID, err := utils.ParseIDParam(c, "id", "story")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req CreateBugRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid create bug request", "error", err)
		utils.ErrorResponseWithError(c, utils.FormatBindingError(err))
		return
	}

	userID, _ := middleware.CurrentUserID(c)

	result, err := h.createUC.Execute(c.Request.Context(), usecases.CreateBugCommand{
		Title:       req.Title,
		Description: req.Description,
		Severity:    req.Severity,
		StoryID:     storyID,
		RequesterID: userID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, toBugResponse(result))
}

// ListBugs handles GET /stories/:id/bugs
func (h *BugHandler) ListBugs(c *gin.Context) {
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

	responses := make([]BugResponse, 0, len(results))
	for _, result := range results {
		responses = append(responses, toBugResponse(result))
	}
	utils.SuccessResponse(c, http.StatusOK, "", responses)
}

// GetBug handles GET /bugs/:id
func (h *BugHandler) GetBug(c *gin.Context) {
	bugID, err := utils.ParseIDParam(c, "id", "bug")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	userID, _ := middleware.CurrentUserID(c)

	result, err := h.getUC.Execute(c.Request.Context(), bugID, userID)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", toBugResponse(result))
}

// UpdateBugStatus handles PATCH /bugs/:id/status
func (h *BugHandler) UpdateBugStatus(c *gin.Context) {
	bugID, err := utils.ParseIDParam(c, "id", "bug")
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

	result, err := h.updateStatusUC.Execute(c.Request.Context(), usecases.UpdateBugStatusCommand{
		BugID:       bugID,
		Status:      req.Status,
		RequesterID: userID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", toBugResponse(result))
}

// AssignBug handles PATCH /bugs/:id/assignee
func (h *BugHandler) AssignBug(c *gin.Context) {
	bugID, err := utils.ParseIDParam(c, "id", "bug")
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

	result, err := h.assignUC.Execute(c.Request.Context(), usecases.AssignBugCommand{
		BugID:       bugID,
		AssigneeID:  req.AssigneeID,
		RequesterID: userID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", toBugResponse(result))
}

// DeleteBug handles DELETE /bugs/:id
func (h *BugHandler) DeleteBug(c *gin.Context) {
	bugID, err := utils.ParseIDParam(c, "id", "bug")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	userID, _ := middleware.CurrentUserID(c)

	if err := h.deleteUC.Execute(c.Request.Context(), bugID, userID); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.NoContentResponse(c)
}
