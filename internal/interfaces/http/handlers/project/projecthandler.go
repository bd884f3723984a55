package project

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"stride/internal/application/project/usecases"
	"stride/internal/interfaces/http/middleware"
	"stride/internal/shared/logger"
	"stride/internal/shared/utils"
)

// ProjectHandler serves project CRUD and membership management
type ProjectHandler struct {
	createUC    *usecases.CreateProjectUseCase
	listUC      *usecases.ListProjectsUseCase
	getUC       *usecases.GetProjectUseCase
	addMemberUC *usecases.AddMemberUseCase
	deleteUC    *usecases.DeleteProjectUseCase
	logger      logger.Interface
}

// NewProjectHandler creates a new project handler
func NewProjectHandler(
	createUC *usecases.CreateProjectUseCase,
	listUC *usecases.ListProjectsUseCase,
	getUC *usecases.GetProjectUseCase,
	addMemberUC *usecases.AddMemberUseCase,
	deleteUC *usecases.DeleteProjectUseCase,
) *ProjectHandler {
	return &ProjectHandler{
		createUC:    createUC,
		listUC:      listUC,
		getUC:       getUC,
		addMemberUC: addMemberUC,
		deleteUC:    deleteUC,
		logger:      logger.NewLogger(),
	}
}

// CreateProject handles POST /projects
func (h *ProjectHandler) CreateProject(c *gin.Context) {
	var req CreateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid create project request", "error", err)
		utils.ErrorResponseWithError(c, utils.FormatBindingError(err))
		return
	}

	userID, _ := middleware.CurrentUserID(c)

	result, err := h.createUC.Execute(c.Request.Context(), req.ToCommand(userID))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, toProjectResponse(result))
}

// ListProjects handles GET /projects
func (h *ProjectHandler) ListProjects(c *gin.Context) {
	userID, _ := middleware.CurrentUserID(c)

	results, err := h.listUC.Execute(c.Request.Context(), userID)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	responses := make([]ProjectResponse, 0, len(results))
	for _, result := range results {
		responses = append(responses, toProjectResponse(result))
	}
	utils.SuccessResponse(c, http.StatusOK, "", responses)
}

// GetProject handles GET /projects/:id
func (h *ProjectHandler) GetProject(c *gin.Context) {
	projectID, err := utils.ParseIDParam(c, "id", "project")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	userID, _ := middleware.CurrentUserID(c)

	result, err := h.getUC.Execute(c.Request.Context(), projectID, userID)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", toProjectResponse(result))
}

// AddMember handles POST /projects/:id/members
func (h *ProjectHandler) AddMember(c *gin.Context) {
	projectID, err := utils.ParseIDParam(c, "id", "project")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req AddMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, utils.FormatBindingError(err))
		return
	}

	userID, _ := middleware.CurrentUserID(c)

	err = h.addMemberUC.Execute(c.Request.Context(), usecases.AddMemberCommand{
		ProjectID:   projectID,
		UserID:      req.UserID,
		RequesterID: userID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "member added", nil)
}

// DeleteProject handles DELETE /projects/:id
func (h *ProjectHandler) DeleteProject(c *gin.Context) {
	projectID, err := utils.ParseIDParam(c, "id", "project")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	userID, _ := middleware.CurrentUserID(c)

	if err := h.deleteUC.Execute(c.Request.Context(), projectID, userID); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.NoContentResponse(c)
}
