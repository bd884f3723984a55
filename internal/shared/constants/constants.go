// Package constants defines shared constant values used across the application.
package constants

// Environment names
const (
	EnvDevelopment = "development"
	EnvTest        = "test"
	EnvProduction  = "production"
)

// Gin context keys
const (
	ContextKeyUserID   = "user_id"
	ContextKeyUsername = "username"
)

// Table names
const (
	TableUsers        = "users"
	TableProjects     = "projects"
	TableUserProjects = "user_projects"
	TableEpics        = "epics"
	TableStories      = "stories"
	TableTasks        = "tasks"
	TableBugs         = "bugs"
	TableComments     = "comments"
)
