package account

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"stride/internal/application/user/usecases"
	"stride/internal/interfaces/http/middleware"
	"stride/internal/shared/logger"
	"stride/internal/shared/utils"
)

// AccountHandler serves registration, login, and account management
type AccountHandler struct {
	registerUC *usecases.RegisterUserUseCase
	loginUC    *usecases.LoginUserUseCase
	getUserUC  *usecases.GetUserUseCase
	deleteUC   *usecases.DeleteUserUseCase
	logger     logger.Interface
}

// NewAccountHandler creates a new account handler
func NewAccountHandler(
	registerUC *usecases.RegisterUserUseCase,
	loginUC *usecases.LoginUserUseCase,
	getUserUC *usecases.GetUserUseCase,
	deleteUC *usecases.DeleteUserUseCase,
) *AccountHandler {
	return &AccountHandler{
		registerUC: registerUC,
		loginUC:    loginUC,
		getUserUC:  getUserUC,
		deleteUC:   deleteUC,
		logger:     logger.NewLogger(),
	}
}

// Register handles POST /auth/register
func (h *AccountHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid register request", "error", err)
		utils.ErrorResponseWithError(c, utils.FormatBindingError(err))
		return
	}

	result, err := h.registerUC.Execute(c.Request.Context(), req.ToCommand())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, UserResponse{
		ID:        result.ID,
		Username:  result.Username,
		Email:     result.Email,
		CreatedAt: result.CreatedAt,
	})
}

// Login handles POST /auth/login
func (h *AccountHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, utils.FormatBindingError(err))
		return
	}

	result, err := h.loginUC.Execute(c.Request.Context(), usecases.LoginUserCommand{
		Identifier: req.Identifier,
		Password:   req.Password,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", TokenResponse{
		AccessToken: result.AccessToken,
		TokenType:   "Bearer",
		ExpiresIn:   result.ExpiresIn,
	})
}

// Me handles GET /auth/me
func (h *AccountHandler) Me(c *gin.Context) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "missing authentication")
		return
	}

	result, err := h.getUserUC.Execute(c.Request.Context(), userID)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", UserResponse{
		ID:        result.ID,
		Username:  result.Username,
		Email:     result.Email,
		CreatedAt: result.CreatedAt,
	})
}

// DeleteMe handles DELETE /auth/me
func (h *AccountHandler) DeleteMe(c *gin.Context) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "missing authentication")
		return
	}

	if err := h.deleteUC.Execute(c.Request.Context(), userID); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.NoContentResponse(c)
}

// GetUser handles GET /users/:id
func (h *AccountHandler) GetUser(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id", "user")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.getUserUC.Execute(c.Request.Context(), id)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", UserResponse{
		ID:        result.ID,
		Username:  result.Username,
		Email:     result.Email,
		CreatedAt: result.CreatedAt,
	})
}
