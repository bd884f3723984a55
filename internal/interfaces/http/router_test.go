package http

import (
	"bytes"
	"encoding/json"
	"fmt"
	netHTTP "net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"stride/internal/infrastructure/config"
	"stride/internal/infrastructure/migration"
	sharedConfig "stride/internal/shared/config"
	"stride/internal/shared/logger"
)

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   *struct {
		Type    string `json:"type"`
		Message string `json:"message"`
	} `json:"error"`
}

func setupTestRouter(t *testing.T) *gin.Engine {
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(migration.AutoMigrateModels()...))

	cfg := &config.Config{
		Auth: sharedConfig.AuthConfig{
			Password: sharedConfig.PasswordConfig{BcryptCost: 4},
			JWT:      sharedConfig.JWTConfig{Secret: "test-secret", AccessExpMinutes: 30},
		},
	}

	router := NewRouter(db, cfg, logger.NewLogger())
	router.SetupRoutes()
	return router.GetEngine()
}

func doJSON(t *testing.T, engine *gin.Engine, method, path, token string, body interface{}) (*httptest.ResponseRecorder, envelope) {
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, req)

	var env envelope
	if len(rec.Body.Bytes()) > 0 {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	}
	return rec, env
}

func registerAndLogin(t *testing.T, engine *gin.Engine, username string) (uint, string) {
	rec, env := doJSON(t, engine, "POST", "/auth/register", "", gin.H{
		"username": username,
		"email":    username + "@example.com",
		"password": "s3cretpass",
	})
	require.Equal(t, netHTTP.StatusCreated, rec.Code)

	var created struct {
		ID uint `json:"id"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &created))

	rec, env = doJSON(t, engine, "POST", "/auth/login", "", gin.H{
		"identifier": username,
		"password":   "s3cretpass",
	})
	require.Equal(t, netHTTP.StatusOK, rec.Code)

	var tok struct {
		AccessToken string `json:"access_token"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &tok))
	require.NotEmpty(t, tok.AccessToken)

	return created.ID, tok.AccessToken
}

func TestRouter_AuthFlow(t *testing.T) {
	engine := setupTestRouter(t)

	t.Run("rejects unauthenticated access", func(t *testing.T) {
		rec, _ := doJSON(t, engine, "GET", "/projects", "", nil)
		assert.Equal(t, netHTTP.StatusUnauthorized, rec.Code)
	})

	t.Run("register login me", func(t *testing.T) {
		_, token := registerAndLogin(t, engine, "alice")

		rec, env := doJSON(t, engine, "GET", "/auth/me", token, nil)
		assert.Equal(t, netHTTP.StatusOK, rec.Code)

		var me struct {
			Username string `json:"username"`
		}
		require.NoError(t, json.Unmarshal(env.Data, &me))
		assert.Equal(t, "alice", me.Username)
	})

	t.Run("duplicate registration conflicts", func(t *testing.T) {
		rec, env := doJSON(t, engine, "POST", "/auth/register", "", gin.H{
			"username": "alice",
			"email":    "other@example.com",
			"password": "s3cretpass",
		})
		assert.Equal(t, netHTTP.StatusConflict, rec.Code)
		require.NotNil(t, env.Error)
		assert.Equal(t, "username already exists", env.Error.Message)
	})

	t.Run("wrong password is indistinguishable", func(t *testing.T) {
		rec, env := doJSON(t, engine, "POST", "/auth/login", "", gin.H{
			"identifier": "alice",
			"password":   "wrongwrong",
		})
		assert.Equal(t, netHTTP.StatusUnauthorized, rec.Code)
		require.NotNil(t, env.Error)
		assert.Equal(t, "invalid credentials", env.Error.Message)

		rec, env = doJSON(t, engine, "POST", "/auth/login", "", gin.H{
			"identifier": "nosuchuser",
			"password":   "wrongwrong",
		})
		assert.Equal(t, netHTTP.StatusUnauthorized, rec.Code)
		require.NotNil(t, env.Error)
		assert.Equal(t, "invalid credentials", env.Error.Message)
	})

	t.Run("short password fails binding", func(t *testing.T) {
		rec, env := doJSON(t, engine, "POST", "/auth/register", "", gin.H{
			"username": "carol",
			"email":    "carol@example.com",
			"password": "short",
		})
		assert.Equal(t, netHTTP.StatusBadRequest, rec.Code)
		require.NotNil(t, env.Error)
	})
}

func TestRouter_BacklogHierarchy(t *testing.T) {
	engine := setupTestRouter(t)

	_, alice := registerAndLogin(t, engine, "alice")
	bobID, bob := registerAndLogin(t, engine, "bob")

	var projectID uint
	{
		rec, env := doJSON(t, engine, "POST", "/projects", alice, gin.H{
			"name": "Roadmap", "description": "q3 planning",
		})
		require.Equal(t, netHTTP.StatusCreated, rec.Code)
		var created struct {
			ID uint `json:"id"`
		}
		require.NoError(t, json.Unmarshal(env.Data, &created))
		projectID = created.ID
	}

	t.Run("non-member is forbidden", func(t *testing.T) {
		rec, _ := doJSON(t, engine, "GET", fmt.Sprintf("/projects/%d", projectID), bob, nil)
		assert.Equal(t, netHTTP.StatusForbidden, rec.Code)

		rec, _ = doJSON(t, engine, "POST", fmt.Sprintf("/projects/%d/epics", projectID), bob, gin.H{"title": "Sneaky"})
		assert.Equal(t, netHTTP.StatusForbidden, rec.Code)
	})

	var epicID, storyID, taskID uint
	{
		rec, env := doJSON(t, engine, "POST", fmt.Sprintf("/projects/%d/epics", projectID), alice, gin.H{"title": "Launch"})
		require.Equal(t, netHTTP.StatusCreated, rec.Code)
		var created struct {
			ID uint `json:"id"`
		}
		require.NoError(t, json.Unmarshal(env.Data, &created))
		epicID = created.ID
	}

	t.Run("duplicate epic title conflicts", func(t *testing.T) {
		rec, _ := doJSON(t, engine, "POST", fmt.Sprintf("/projects/%d/epics", projectID), alice, gin.H{"title": "Launch"})
		assert.Equal(t, netHTTP.StatusConflict, rec.Code)
	})

	{
		rec, env := doJSON(t, engine, "POST", fmt.Sprintf("/epics/%d/stories", epicID), alice, gin.H{"title": "Write docs"})
		require.Equal(t, netHTTP.StatusCreated, rec.Code)
		var created struct {
			ID uint `json:"id"`
		}
		require.NoError(t, json.Unmarshal(env.Data, &created))
		storyID = created.ID
	}

	{
		rec, env := doJSON(t, engine, "POST", fmt.Sprintf("/stories/%d/tasks", storyID), alice, gin.H{"title": "Draft outline"})
		require.Equal(t, netHTTP.StatusCreated, rec.Code)
		var created struct {
			ID     uint   `json:"id"`
			Status string `json:"status"`
		}
		require.NoError(t, json.Unmarshal(env.Data, &created))
		assert.Equal(t, "todo", created.Status)
		taskID = created.ID
	}

	t.Run("status transitions and validation", func(t *testing.T) {
		rec, env := doJSON(t, engine, "PATCH", fmt.Sprintf("/tasks/%d/status", taskID), alice, gin.H{"status": "in_progress"})
		assert.Equal(t, netHTTP.StatusOK, rec.Code)
		var updated struct {
			Status string `json:"status"`
		}
		require.NoError(t, json.Unmarshal(env.Data, &updated))
		assert.Equal(t, "in_progress", updated.Status)

		rec, _ = doJSON(t, engine, "PATCH", fmt.Sprintf("/tasks/%d/status", taskID), alice, gin.H{"status": "blocked"})
		assert.Equal(t, netHTTP.StatusBadRequest, rec.Code)
	})

	t.Run("membership unlocks access and assignment", func(t *testing.T) {
		rec, _ := doJSON(t, engine, "POST", fmt.Sprintf("/projects/%d/members", projectID), alice, gin.H{"user_id": bobID})
		assert.Equal(t, netHTTP.StatusOK, rec.Code)

		rec, _ = doJSON(t, engine, "GET", fmt.Sprintf("/projects/%d", projectID), bob, nil)
		assert.Equal(t, netHTTP.StatusOK, rec.Code)

		rec, env := doJSON(t, engine, "PATCH", fmt.Sprintf("/tasks/%d/assignee", taskID), alice, gin.H{"assignee_id": bobID})
		assert.Equal(t, netHTTP.StatusOK, rec.Code)
		var assigned struct {
			AssigneeID *uint `json:"assignee_id"`
		}
		require.NoError(t, json.Unmarshal(env.Data, &assigned))
		require.NotNil(t, assigned.AssigneeID)
		assert.Equal(t, bobID, *assigned.AssigneeID)
	})

	t.Run("comments attach and only author deletes", func(t *testing.T) {
		rec, env := doJSON(t, engine, "POST", fmt.Sprintf("/tasks/%d/comments", taskID), bob, gin.H{"content": "on it"})
		require.Equal(t, netHTTP.StatusCreated, rec.Code)
		var comment struct {
			ID uint `json:"id"`
		}
		require.NoError(t, json.Unmarshal(env.Data, &comment))

		rec, _ = doJSON(t, engine, "DELETE", fmt.Sprintf("/comments/%d", comment.ID), alice, nil)
		assert.Equal(t, netHTTP.StatusForbidden, rec.Code)

		rec, _ = doJSON(t, engine, "DELETE", fmt.Sprintf("/comments/%d", comment.ID), bob, nil)
		assert.Equal(t, netHTTP.StatusNoContent, rec.Code)
	})

	t.Run("project delete cascades", func(t *testing.T) {
		rec, _ := doJSON(t, engine, "DELETE", fmt.Sprintf("/projects/%d", projectID), alice, nil)
		assert.Equal(t, netHTTP.StatusNoContent, rec.Code)

		rec, _ = doJSON(t, engine, "GET", fmt.Sprintf("/epics/%d", epicID), alice, nil)
		assert.Equal(t, netHTTP.StatusNotFound, rec.Code)

		rec, _ = doJSON(t, engine, "GET", fmt.Sprintf("/tasks/%d", taskID), alice, nil)
		assert.Equal(t, netHTTP.StatusNotFound, rec.Code)
	})
}
