// Package http assembles the gin engine, wiring repositories, use cases,
// handlers, and routes together.
package http

import (
	"gorm.io/gorm"

	backlogUC "stride/internal/application/backlog/usecases"
	projectUC "stride/internal/application/project/usecases"
	userUC "stride/internal/application/user/usecases"
	"stride/internal/infrastructure/auth"
	"stride/internal/infrastructure/config"
	"stride/internal/infrastructure/repository"
	"stride/internal/interfaces/http/handlers/account"
	backlogHandlers "stride/internal/interfaces/http/handlers/backlog"
	projectHandlers "stride/internal/interfaces/http/handlers/project"
	"stride/internal/interfaces/http/middleware"
	"stride/internal/interfaces/http/routes"
	"stride/internal/shared/db"
	"stride/internal/shared/logger"

	"github.com/gin-gonic/gin"
)

// Router owns the gin engine and the dependency graph behind it
type Router struct {
	engine *gin.Engine
	db     *gorm.DB
	config *config.Config
	logger logger.Interface
}

// NewRouter creates a new router
func NewRouter(database *gorm.DB, cfg *config.Config, log logger.Interface) *Router {
	return &Router{
		engine: gin.New(),
		db:     database,
		config: cfg,
		logger: log,
	}
}

// SetupRoutes registers middleware and all route groups
func (r *Router) SetupRoutes() {
	r.engine.Use(middleware.Recovery(r.logger))
	r.engine.Use(middleware.Logger(r.logger))
	r.engine.Use(middleware.CORS([]string{"*"}))

	r.engine.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	txMgr := db.NewTransactionManager(r.db)

	userRepo := repository.NewUserRepository(r.db, r.logger)
	projectRepo := repository.NewProjectRepository(r.db, r.logger)
	epicRepo := repository.NewEpicRepository(r.db, r.logger)
	storyRepo := repository.NewStoryRepository(r.db, r.logger)
	taskRepo := repository.NewTaskRepository(r.db, r.logger)
	bugRepo := repository.NewBugRepository(r.db, r.logger)
	commentRepo := repository.NewCommentRepository(r.db, r.logger)

	hasher := auth.NewBcryptPasswordHasher(r.config.Auth.Password.BcryptCost)
	jwtService := auth.NewJWTService(r.config.Auth.JWT.Secret, r.config.Auth.JWT.AccessExpMinutes)
	authMiddleware := middleware.NewAuthMiddleware(jwtService, r.logger)

	accountHandler := account.NewAccountHandler(
		userUC.NewRegisterUserUseCase(userRepo, hasher, r.logger),
		userUC.NewLoginUserUseCase(userRepo, hasher, jwtService, r.logger),
		userUC.NewGetUserUseCase(userRepo, r.logger),
		userUC.NewDeleteUserUseCase(userRepo, txMgr, r.logger),
	)

	projectHandler := projectHandlers.NewProjectHandler(
		projectUC.NewCreateProjectUseCase(projectRepo, txMgr, r.logger),
		projectUC.NewListProjectsUseCase(projectRepo, r.logger),
		projectUC.NewGetProjectUseCase(projectRepo, r.logger),
		projectUC.NewAddMemberUseCase(projectRepo, userRepo, r.logger),
		projectUC.NewDeleteProjectUseCase(projectRepo, txMgr, r.logger),
	)

	epicHandler := backlogHandlers.NewEpicHandler(
		backlogUC.NewCreateEpicUseCase(epicRepo, projectRepo, r.logger),
		backlogUC.NewGetEpicUseCase(epicRepo, projectRepo, r.logger),
		backlogUC.NewListEpicsUseCase(epicRepo, projectRepo, r.logger),
		backlogUC.NewDeleteEpicUseCase(epicRepo, projectRepo, txMgr, r.logger),
	)

	storyHandler := backlogHandlers.NewStoryHandler(
		backlogUC.NewCreateStoryUseCase(storyRepo, epicRepo, projectRepo, r.logger),
		backlogUC.NewGetStoryUseCase(storyRepo, epicRepo, projectRepo, r.logger),
		backlogUC.NewListStoriesUseCase(storyRepo, epicRepo, projectRepo, r.logger),
		backlogUC.NewDeleteStoryUseCase(storyRepo, epicRepo, projectRepo, txMgr, r.logger),
	)

	taskHandler := backlogHandlers.NewTaskHandler(
		backlogUC.NewCreateTaskUseCase(taskRepo, storyRepo, epicRepo, projectRepo, r.logger),
		backlogUC.NewGetTaskUseCase(taskRepo, storyRepo, epicRepo, projectRepo, r.logger),
		backlogUC.NewListTasksUseCase(taskRepo, storyRepo, epicRepo, projectRepo, r.logger),
		backlogUC.NewUpdateTaskStatusUseCase(taskRepo, storyRepo, epicRepo, projectRepo, r.logger),
		backlogUC.NewAssignTaskUseCase(taskRepo, userRepo, storyRepo, epicRepo, projectRepo, r.logger),
		backlogUC.NewDeleteTaskUseCase(taskRepo, storyRepo, epicRepo, projectRepo, txMgr, r.logger),
	)

	bugHandler := backlogHandlers.NewBugHandler(
		backlogUC.NewCreateBugUseCase(bugRepo, storyRepo, epicRepo, projectRepo, r.logger),
		backlogUC.NewGetBugUseCase(bugRepo, storyRepo, epicRepo, projectRepo, r.logger),
		backlogUC.NewListBugsUseCase(bugRepo, storyRepo, epicRepo, projectRepo, r.logger),
		backlogUC.NewUpdateBugStatusUseCase(bugRepo, storyRepo, epicRepo, projectRepo, r.logger),
		backlogUC.NewAssignBugUseCase(bugRepo, userRepo, storyRepo, epicRepo, projectRepo, r.logger),
		backlogUC.NewDeleteBugUseCase(bugRepo, storyRepo, epicRepo, projectRepo, txMgr, r.logger),
	)

	commentHandler := backlogHandlers.NewCommentHandler(
		backlogUC.NewAddCommentUseCase(commentRepo, taskRepo, bugRepo, storyRepo, epicRepo, projectRepo, r.logger),
		backlogUC.NewListCommentsUseCase(commentRepo, taskRepo, bugRepo, storyRepo, epicRepo, projectRepo, r.logger),
		backlogUC.NewDeleteCommentUseCase(commentRepo, r.logger),
	)

	routes.SetupAuthRoutes(r.engine, &routes.AuthRouteConfig{
		AccountHandler: accountHandler,
		AuthMiddleware: authMiddleware,
	})

	routes.SetupProjectRoutes(r.engine, &routes.ProjectRouteConfig{
		ProjectHandler: projectHandler,
		AuthMiddleware: authMiddleware,
	})

	routes.SetupBacklogRoutes(r.engine, &routes.BacklogRouteConfig{
		EpicHandler:    epicHandler,
		StoryHandler:   storyHandler,
		TaskHandler:    taskHandler,
		BugHandler:     bugHandler,
		CommentHandler: commentHandler,
		AuthMiddleware: authMiddleware,
	})
}

// GetEngine returns the underlying gin engine
func (r *Router) GetEngine() *gin.Engine {
	return r.engine
}
