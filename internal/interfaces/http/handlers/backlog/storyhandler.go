package backlog

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"stride/internal/application/backlog/usecases"
	"stride/internal/interfaces/http/middleware"
	"stride/internal/shared/logger"
	"stride/internal/shared/utils"
)

// StoryHandler serves story CRUD under epics
type StoryHandler struct {
	createUC *usecases.CreateStoryUseCase
	getUC    *usecases.GetStoryUseCase
	listUC   *usecases.ListStoriesUseCase
	deleteUC *usecases.DeleteStoryUseCase
	logger   logger.Interface
}

// NewStoryHandler creates a new story handler
func NewStoryHandler(
	createUC *usecases.CreateStoryUseCase,
	getUC *usecases.GetStoryUseCase,
	listUC *usecases.ListStoriesUseCase,
	deleteUC *usecases.DeleteStoryUseCase,
) *StoryHandler {
	return &StoryHandler{
		createUC: createUC,
		getUC:    getUC,
		listUC:   listUC,
		deleteUC: deleteUC,
		logger:   logger.NewLogger(),
	}
}

// CreateStory handles POST /epics/:id/stories
func (h *StoryHandler) CreateStory(c *gin.Context) {
	epicID, err := utils.ParseIDParam(c, "id", "epic")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req CreateStoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid create story request", "error", err)
		utils.ErrorResponseWithError(c, utils.FormatBindingError(err))
		return
	}

	userID, _ := middleware.CurrentUserID(c)

	result, err := h.createUC.Execute(c.Request.Context(), usecases.CreateStoryCommand{
		Title:       req.Title,
		Description: req.Description,
		EpicID:      epicID,
		RequesterID: userID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, toStoryResponse(result))
}

// ListStories handles GET /epics/:id/stories
func (h *StoryHandler) ListStories(c *gin.Context) {
	epicID, err := utils.ParseIDParam(c, "id", "epic")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	userID, _ := middleware.CurrentUserID(c)

	results, err := h.listUC.Execute(c.Request.Context(), epicID, userID)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	responses := make([]StoryResponse, 0, len(results))
	for _, result := range results {
		responses = append(responses, toStoryResponse(result))
	}
	utils.SuccessResponse(c, http.StatusOK, "", responses)
}

// GetStory handles GET /stories/:id
func (h *StoryHandler) GetStory(c *gin.Context) {
	storyID, err := utils.ParseIDParam(c, "id", "story")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	userID, _ := middleware.CurrentUserID(c)

	result, err := h.getUC.Execute(c.Request.Context(), storyID, userID)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", toStoryResponse(result))
}

// DeleteStory handles DELETE /stories/:id
func (h *StoryHandler) DeleteStory(c *gin.Context) {
	storyID, err := utils.ParseIDParam(c, "id", "story")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	userID, _ := middleware.CurrentUserID(c)

	if err := h.deleteUC.Execute(c.Request.Context(), storyID, userID); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.NoContentResponse(c)
}
