package routes

import (
	"github.com/gin-gonic/gin"

	"stride/internal/interfaces/http/handlers/project"
	"stride/internal/interfaces/http/middleware"
)

// ProjectRouteConfig holds dependencies for project routes.
type ProjectRouteConfig struct {
	ProjectHandler *project.ProjectHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// SetupProjectRoutes configures project and membership routes.
func SetupProjectRoutes(engine *gin.Engine, cfg *ProjectRouteConfig) {
	projects := engine.Group("/projects", cfg.AuthMiddleware.RequireAuth())
	{
		projects.POST("", cfg.ProjectHandler.CreateProject)
		projects.GET("", cfg.ProjectHandler.ListProjects)
		projects.GET("/:id", cfg.ProjectHandler.GetProject)
		projects.DELETE("/:id", cfg.ProjectHandler.DeleteProject)
		projects.POST("/:id/members", cfg.ProjectHandler.AddMember)
	}
}
