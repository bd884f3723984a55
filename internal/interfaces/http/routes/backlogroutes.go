package routes

import (
	"github.com/gin-gonic/gin"

	"stride/internal/interfaces/http/handlers/backlog"
	"stride/internal/interfaces/http/middleware"
)

// BacklogRouteConfig holds dependencies for epic, story, task, bug, and
// comment routes.
type BacklogRouteConfig struct {
	EpicHandler    *backlog.EpicHandler
	StoryHandler   *backlog.StoryHandler
	TaskHandler    *backlog.TaskHandler
	BugHandler     *backlog.BugHandler
	CommentHandler *backlog.CommentHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// SetupBacklogRoutes configures the work item hierarchy routes. Epics nest
// under projects, stories under epics, and tasks and bugs under stories.
func SetupBacklogRoutes(engine *gin.Engine, cfg *BacklogRouteConfig) {
	requireAuth := cfg.AuthMiddleware.RequireAuth()

	projects := engine.Group("/projects", requireAuth)
	{
		projects.POST("/:id/epics", cfg.EpicHandler.CreateEpic)
		projects.GET("/:id/epics", cfg.EpicHandler.ListEpics)
	}

	epics := engine.Group("/epics", requireAuth)
	{
		epics.GET("/:id", cfg.EpicHandler.GetEpic)
		epics.DELETE("/:id", cfg.EpicHandler.DeleteEpic)
		epics.POST("/:id/stories", cfg.StoryHandler.CreateStory)
		epics.GET("/:id/stories", cfg.StoryHandler.ListStories)
	}

	stories := engine.Group("/stories", requireAuth)
	{
		stories.GET("/:id", cfg.StoryHandler.GetStory)
		stories.DELETE("/:id", cfg.StoryHandler.DeleteStory)
		stories.POST("/:id/tasks", cfg.TaskHandler.CreateTask)
		stories.GET("/:id/tasks", cfg.TaskHandler.ListTasks)
		stories.POST("/:id/bugs", cfg.BugHandler.CreateBug)
		stories.GET("/:id/bugs", cfg.BugHandler.ListBugs)
	}

	tasks := engine.Group("/tasks", requireAuth)
	{
		tasks.GET("/:id", cfg.TaskHandler.GetTask)
		tasks.DELETE("/:id", cfg.TaskHandler.DeleteTask)
		tasks.PATCH("/:id/status", cfg.TaskHandler.UpdateTaskStatus)
		tasks.PATCH("/:id/assignee", cfg.TaskHandler.AssignTask)
		tasks.POST("/:id/comments", cfg.CommentHandler.AddTaskComment)
		tasks.GET("/:id/comments", cfg.CommentHandler.ListTaskComments)
	}

	bugs := engine.Group("/bugs", requireAuth)
	{
		bugs.GET("/:id", cfg.BugHandler.GetBug)
		bugs.DELETE("/:id", cfg.BugHandler.DeleteBug)
		bugs.PATCH("/:id/status", cfg.BugHandler.UpdateBugStatus)
		bugs.PATCH("/:id/assignee", cfg.BugHandler.AssignBug)
		bugs.POST("/:id/comments", cfg.CommentHandler.AddBugComment)
		bugs.GET("/:id/comments", cfg.CommentHandler.ListBugComments)
	}

	comments := engine.Group("/comments", requireAuth)
	{
		comments.DELETE("/:id", cfg.CommentHandler.DeleteComment)
	}
}
