package routes

import (
	"github.com/gin-gonic/gin"

	"stride/internal/interfaces/http/handlers/account"
	"stride/internal/interfaces/http/middleware"
)

// AuthRouteConfig holds dependencies for authentication and account routes.
type AuthRouteConfig struct {
	AccountHandler *account.AccountHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// SetupAuthRoutes configures authentication and account routes.
func SetupAuthRoutes(engine *gin.Engine, cfg *AuthRouteConfig) {
	auth := engine.Group("/auth")
	{
		auth.POST("/register", cfg.AccountHandler.Register)
		auth.POST("/login", cfg.AccountHandler.Login)

		auth.GET("/me", cfg.AuthMiddleware.RequireAuth(), cfg.AccountHandler.Me)
		auth.DELETE("/me", cfg.AuthMiddleware.RequireAuth(), cfg.AccountHandler.DeleteMe)
	}

	users := engine.Group("/users", cfg.AuthMiddleware.RequireAuth())
	{
		users.GET("/:id", cfg.AccountHandler.GetUser)
	}
}
