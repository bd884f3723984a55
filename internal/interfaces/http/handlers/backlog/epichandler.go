package backlog

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"stride/internal/application/backlog/usecases"
	"stride/internal/interfaces/http/middleware"
	"stride/internal/shared/logger"
	"stride/internal/shared/utils"
)

// EpicHandler serves epic CRUD under projects
type EpicHandler struct {
	createUC *usecases.CreateEpicUseCase
	getUC    *usecases.GetEpicUseCase
	listUC   *usecases.ListEpicsUseCase
	deleteUC *usecases.DeleteEpicUseCase
	logger   logger.Interface
}

// NewEpicHandler creates a new epic handler
func NewEpicHandler(
	createUC *usecases.CreateEpicUseCase,
	getUC *usecases.GetEpicUseCase,
	listUC *usecases.ListEpicsUseCase,
	deleteUC *usecases.DeleteEpicUseCase,
) *EpicHandler {
	return &EpicHandler{
		createUC: createUC,
		getUC:    getUC,
		listUC:   listUC,
		deleteUC: deleteUC,
		logger:   logger.NewLogger(),
	}
}

// CreateEpic handles POST /projects/:id/epics
func (h *EpicHandler) CreateEpic(c *gin.Context) {
	projectID, err := utils.ParseIDParam(c, "id", "project")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req CreateEpicRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid create epic request", "error", err)
		utils.ErrorResponseWithError(c, utils.FormatBindingError(err))
		return
	}

	userID, _ := middleware.CurrentUserID(c)

	result, err := h.createUC.Execute(c.Request.Context(), usecases.CreateEpicCommand{
		Title:       req.Title,
		Description: req.Description,
		ProjectID:   projectID,
		RequesterID: userID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, toEpicResponse(result))
}

// ListEpics handles GET /projects/:id/epics
func (h *EpicHandler) ListEpics(c *gin.Context) {
	projectID, err := utils.ParseIDParam(c, "id", "project")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	userID, _ := middleware.CurrentUserID(c)

	results, err := h.listUC.Execute(c.Request.Context(), projectID, userID)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	responses := make([]EpicResponse, 0, len(results))
	for _, result := range results {
		responses = append(responses, toEpicResponse(result))
	}
	utils.SuccessResponse(c, http.StatusOK, "", responses)
}

// GetEpic handles GET /epics/:id
func (h *EpicHandler) GetEpic(c *gin.Context) {
	epicID, err := utils.ParseIDParam(c, "id", "epic")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	userID, _ := middleware.CurrentUserID(c)

	result, err := h.getUC.Execute(c.Request.Context(), epicID, userID)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", toEpicResponse(result))
}

// DeleteEpic handles DELETE /epics/:id
func (h *EpicHandler) DeleteEpic(c *gin.Context) {
	epicID, err := utils.ParseIDParam(c, "id", "epic")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	userID, _ := middleware.CurrentUserID(c)

	if err := h.deleteUC.Execute(c.Request.Context(), epicID, userID); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.NoContentResponse(c)
}
