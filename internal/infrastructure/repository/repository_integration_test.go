package repository

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"stride/internal/domain/backlog"
	"stride/internal/domain/project"
	"stride/internal/domain/user"
	"stride/internal/infrastructure/persistence/models"
	"stride/internal/shared/biztime"
	"stride/internal/shared/errors"
	"stride/internal/shared/logger"
)

func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	err = db.AutoMigrate(
		&models.UserModel{},
		&models.ProjectModel{},
		&models.UserProjectModel{},
		&models.EpicModel{},
		&models.StoryModel{},
		&models.TaskModel{},
		&models.BugModel{},
		&models.CommentModel{},
	)
	require.NoError(t, err)

	return db
}

func createTestUser(t *testing.T, db *gorm.DB, username string) *user.User {
	u, err := user.NewUser(username, username+"@example.com", "$2a$10$fakehashfakehashfakehash")
	require.NoError(t, err)

	repo := NewUserRepository(db, logger.NewLogger())
	require.NoError(t, repo.Create(context.Background(), u))
	return u
}

func createTestProject(t *testing.T, db *gorm.DB, name string, creatorID uint) *project.Project {
	p, err := project.NewProject(name, "test project")
	require.NoError(t, err)

	repo := NewProjectRepository(db, logger.NewLogger())
	require.NoError(t, repo.Create(context.Background(), p, creatorID))
	return p
}

func createTestEpic(t *testing.T, db *gorm.DB, title string, projectID uint) *backlog.Epic {
	e, err := backlog.NewEpic(title, "", projectID)
	require.NoError(t, err)

	repo := NewEpicRepository(db, logger.NewLogger())
	require.NoError(t, repo.Save(context.Background(), e))
	return e
}

func createTestStory(t *testing.T, db *gorm.DB, title string, epicID uint) *backlog.Story {
	s, err := backlog.NewStory(title, "", epicID)
	require.NoError(t, err)

	repo := NewStoryRepository(db, logger.NewLogger())
	require.NoError(t, repo.Save(context.Background(), s))
	return s
}

func createTestTask(t *testing.T, db *gorm.DB, title string, storyID uint) *backlog.Task {
	tk, err := backlog.NewTask(title, "", storyID)
	require.NoError(t, err)

	repo := NewTaskRepository(db, logger.NewLogger())
	require.NoError(t, repo.Save(context.Background(), tk))
	return tk
}

func createTestBug(t *testing.T, db *gorm.DB, title string, severity backlog.Severity, storyID uint) *backlog.Bug {
	b, err := backlog.NewBug(title, "", severity, storyID)
	require.NoError(t, err)

	repo := NewBugRepository(db, logger.NewLogger())
	require.NoError(t, repo.Save(context.Background(), b))
	return b
}

func TestUserRepository_CreateAndLookups(t *testing.T) {
	db := setupTestDB(t)
	repo := NewUserRepository(db, logger.NewLogger())
	ctx := context.Background()

	t.Run("create assigns ID", func(t *testing.T) {
		u, err := user.NewUser("alice", "alice@example.com", "hash")
		require.NoError(t, err)

		err = repo.Create(ctx, u)
		assert.NoError(t, err)
		assert.NotZero(t, u.ID())
	})

	t.Run("duplicate username conflicts", func(t *testing.T) {
		u, err := user.NewUser("alice", "other@example.com", "hash")
		require.NoError(t, err)

		err = repo.Create(ctx, u)
		require.Error(t, err)
		assert.True(t, errors.IsConflictError(err))
	})

	t.Run("duplicate email conflicts", func(t *testing.T) {
		u, err := user.NewUser("alice2", "alice@example.com", "hash")
		require.NoError(t, err)

		err = repo.Create(ctx, u)
		require.Error(t, err)
		assert.True(t, errors.IsConflictError(err))
	})

	t.Run("lookup by username, email and identifier", func(t *testing.T) {
		byName, err := repo.GetByUsername(ctx, "alice")
		require.NoError(t, err)
		require.NotNil(t, byName)

		byEmail, err := repo.GetByEmail(ctx, "alice@example.com")
		require.NoError(t, err)
		require.NotNil(t, byEmail)
		assert.Equal(t, byName.ID(), byEmail.ID())

		byIdent, err := repo.GetByIdentifier(ctx, "alice@example.com")
		require.NoError(t, err)
		require.NotNil(t, byIdent)
		assert.Equal(t, byName.ID(), byIdent.ID())
	})

	t.Run("missing user returns nil without error", func(t *testing.T) {
		found, err := repo.GetByID(ctx, 9999)
		assert.NoError(t, err)
		assert.Nil(t, found)
	})
}

func TestUserRepository_DeleteReleasesWorkAndRemovesComments(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()

	owner := createTestUser(t, db, "owner")
	worker := createTestUser(t, db, "worker")

	p := createTestProject(t, db, "Platform", owner.ID())
	e := createTestEpic(t, db, "Roadmap", p.ID())
	s := createTestStory(t, db, "Launch", e.ID())
	tk := createTestTask(t, db, "Write docs", s.ID())
	b := createTestBug(t, db, "Crash on save", backlog.SeverityHigh, s.ID())

	taskRepo := NewTaskRepository(db, logger.NewLogger())
	bugRepo := NewBugRepository(db, logger.NewLogger())
	commentRepo := NewCommentRepository(db, logger.NewLogger())
	projectRepo := NewProjectRepository(db, logger.NewLogger())
	userRepo := NewUserRepository(db, logger.NewLogger())

	require.NoError(t, tk.AssignTo(worker.ID()))
	require.NoError(t, taskRepo.Update(ctx, tk))
	require.NoError(t, b.AssignTo(worker.ID()))
	require.NoError(t, bugRepo.Update(ctx, b))

	c, err := backlog.NewTaskComment("on it", worker.ID(), tk.ID())
	require.NoError(t, err)
	require.NoError(t, commentRepo.Save(ctx, c))

	require.NoError(t, projectRepo.AddMember(ctx, p.ID(), worker.ID()))

	err = userRepo.Delete(ctx, worker.ID())
	require.NoError(t, err)

	// work items survive with assignee cleared
	foundTask, err := taskRepo.GetByID(ctx, tk.ID())
	require.NoError(t, err)
	require.NotNil(t, foundTask)
	assert.Nil(t, foundTask.AssigneeID())

	foundBug, err := bugRepo.GetByID(ctx, b.ID())
	require.NoError(t, err)
	require.NotNil(t, foundBug)
	assert.Nil(t, foundBug.AssigneeID())

	// authored comments are gone
	comments, err := commentRepo.ListByTask(ctx, tk.ID())
	require.NoError(t, err)
	assert.Empty(t, comments)

	// membership row is gone, project is untouched
	isMember, err := projectRepo.IsMember(ctx, p.ID(), worker.ID())
	require.NoError(t, err)
	assert.False(t, isMember)

	foundProject, err := projectRepo.GetByID(ctx, p.ID())
	require.NoError(t, err)
	assert.NotNil(t, foundProject)
}

func TestProjectRepository_Membership(t *testing.T) {
	db := setupTestDB(t)
	repo := NewProjectRepository(db, logger.NewLogger())
	ctx := context.Background()

	alice := createTestUser(t, db, "alice")
	bob := createTestUser(t, db, "bob")

	p := createTestProject(t, db, "Platform", alice.ID())

	t.Run("creator is linked as member", func(t *testing.T) {
		isMember, err := repo.IsMember(ctx, p.ID(), alice.ID())
		require.NoError(t, err)
		assert.True(t, isMember)
	})

	t.Run("list only includes member projects", func(t *testing.T) {
		forAlice, err := repo.ListForUser(ctx, alice.ID())
		require.NoError(t, err)
		assert.Len(t, forAlice, 1)

		forBob, err := repo.ListForUser(ctx, bob.ID())
		require.NoError(t, err)
		assert.Empty(t, forBob)
	})

	t.Run("add member then re-add conflicts", func(t *testing.T) {
		err := repo.AddMember(ctx, p.ID(), bob.ID())
		require.NoError(t, err)

		isMember, err := repo.IsMember(ctx, p.ID(), bob.ID())
		require.NoError(t, err)
		assert.True(t, isMember)

		err = repo.AddMember(ctx, p.ID(), bob.ID())
		require.Error(t, err)
		assert.True(t, errors.IsConflictError(err))
	})
}

func TestProjectRepository_DeleteCascadesWholeTree(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()

	alice := createTestUser(t, db, "alice")
	p := createTestProject(t, db, "Platform", alice.ID())
	e := createTestEpic(t, db, "Roadmap", p.ID())
	s := createTestStory(t, db, "Launch", e.ID())
	tk := createTestTask(t, db, "Write docs", s.ID())
	b := createTestBug(t, db, "Crash on save", backlog.SeverityMedium, s.ID())

	commentRepo := NewCommentRepository(db, logger.NewLogger())
	taskComment, err := backlog.NewTaskComment("looks good", alice.ID(), tk.ID())
	require.NoError(t, err)
	require.NoError(t, commentRepo.Save(ctx, taskComment))

	bugComment, err := backlog.NewBugComment("reproduced", alice.ID(), b.ID())
	require.NoError(t, err)
	require.NoError(t, commentRepo.Save(ctx, bugComment))

	projectRepo := NewProjectRepository(db, logger.NewLogger())
	require.NoError(t, projectRepo.Delete(ctx, p.ID()))

	for table, want := range map[string]int64{
		"projects":      0,
		"user_projects": 0,
		"epics":         0,
		"stories":       0,
		"tasks":         0,
		"bugs":          0,
		"comments":      0,
	} {
		var count int64
		require.NoError(t, db.Table(table).Count(&count).Error)
		assert.Equal(t, want, count, "table %s not emptied", table)
	}

	// the user itself is untouched
	foundUser, err := NewUserRepository(db, logger.NewLogger()).GetByID(ctx, alice.ID())
	require.NoError(t, err)
	assert.NotNil(t, foundUser)
}

func TestEpicRepository_TitleUniquePerProject(t *testing.T) {
	db := setupTestDB(t)
	repo := NewEpicRepository(db, logger.NewLogger())
	ctx := context.Background()

	alice := createTestUser(t, db, "alice")
	p1 := createTestProject(t, db, "One", alice.ID())
	p2 := createTestProject(t, db, "Two", alice.ID())

	createTestEpic(t, db, "Roadmap", p1.ID())

	t.Run("same title in same project conflicts", func(t *testing.T) {
		dup, err := backlog.NewEpic("Roadmap", "", p1.ID())
		require.NoError(t, err)

		err = repo.Save(ctx, dup)
		require.Error(t, err)
		assert.True(t, errors.IsConflictError(err))
	})

	t.Run("same title in another project is fine", func(t *testing.T) {
		other, err := backlog.NewEpic("Roadmap", "", p2.ID())
		require.NoError(t, err)

		err = repo.Save(ctx, other)
		assert.NoError(t, err)
	})

	t.Run("lookup by title and project", func(t *testing.T) {
		found, err := repo.GetByTitleAndProject(ctx, "Roadmap", p1.ID())
		require.NoError(t, err)
		require.NotNil(t, found)
		assert.Equal(t, p1.ID(), found.ProjectID())

		missing, err := repo.GetByTitleAndProject(ctx, "Nope", p1.ID())
		require.NoError(t, err)
		assert.Nil(t, missing)
	})
}

func TestStoryRepository_TitleUniquePerEpic(t *testing.T) {
	db := setupTestDB(t)
	repo := NewStoryRepository(db, logger.NewLogger())
	ctx := context.Background()

	alice := createTestUser(t, db, "alice")
	p := createTestProject(t, db, "Platform", alice.ID())
	e1 := createTestEpic(t, db, "Roadmap", p.ID())
	e2 := createTestEpic(t, db, "Infra", p.ID())

	createTestStory(t, db, "Launch", e1.ID())

	dup, err := backlog.NewStory("Launch", "", e1.ID())
	require.NoError(t, err)
	err = repo.Save(ctx, dup)
	require.Error(t, err)
	assert.True(t, errors.IsConflictError(err))

	other, err := backlog.NewStory("Launch", "", e2.ID())
	require.NoError(t, err)
	assert.NoError(t, repo.Save(ctx, other))

	stories, err := repo.ListByEpic(ctx, e1.ID())
	require.NoError(t, err)
	assert.Len(t, stories, 1)
}

func TestTaskRepository_UpdateStatusAndAssignment(t *testing.T) {
	db := setupTestDB(t)
	repo := NewTaskRepository(db, logger.NewLogger())
	ctx := context.Background()

	alice := createTestUser(t, db, "alice")
	p := createTestProject(t, db, "Platform", alice.ID())
	e := createTestEpic(t, db, "Roadmap", p.ID())
	s := createTestStory(t, db, "Launch", e.ID())
	tk := createTestTask(t, db, "Write docs", s.ID())

	require.NoError(t, tk.ChangeStatus(backlog.StatusInProgress))
	require.NoError(t, tk.AssignTo(alice.ID()))
	require.NoError(t, repo.Update(ctx, tk))

	found, err := repo.GetByID(ctx, tk.ID())
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, backlog.StatusInProgress, found.Status())
	require.NotNil(t, found.AssigneeID())
	assert.Equal(t, alice.ID(), *found.AssigneeID())

	found.Unassign()
	require.NoError(t, repo.Update(ctx, found))

	again, err := repo.GetByID(ctx, tk.ID())
	require.NoError(t, err)
	assert.Nil(t, again.AssigneeID())

	err = repo.Update(ctx, mustReconstructTask(t, 9999, s.ID()))
	require.Error(t, err)
	assert.True(t, errors.IsNotFoundError(err))
}

func mustReconstructTask(t *testing.T, id, storyID uint) *backlog.Task {
	tk, err := backlog.ReconstructTask(id, "ghost", "", backlog.StatusTodo, storyID, nil, biztime.NowUTC())
	require.NoError(t, err)
	return tk
}

func TestBugRepository_SeverityRoundTrip(t *testing.T) {
	db := setupTestDB(t)
	repo := NewBugRepository(db, logger.NewLogger())
	ctx := context.Background()

	alice := createTestUser(t, db, "alice")
	p := createTestProject(t, db, "Platform", alice.ID())
	e := createTestEpic(t, db, "Roadmap", p.ID())
	s := createTestStory(t, db, "Launch", e.ID())

	b := createTestBug(t, db, "Crash on save", backlog.SeverityCritical, s.ID())

	found, err := repo.GetByID(ctx, b.ID())
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, backlog.SeverityCritical, found.Severity())
	assert.Equal(t, backlog.StatusTodo, found.Status())

	bugs, err := repo.ListByStory(ctx, s.ID())
	require.NoError(t, err)
	assert.Len(t, bugs, 1)
}

func TestCommentRepository_AttachesToOneParent(t *testing.T) {
	db := setupTestDB(t)
	repo := NewCommentRepository(db, logger.NewLogger())
	ctx := context.Background()

	alice := createTestUser(t, db, "alice")
	p := createTestProject(t, db, "Platform", alice.ID())
	e := createTestEpic(t, db, "Roadmap", p.ID())
	s := createTestStory(t, db, "Launch", e.ID())
	tk := createTestTask(t, db, "Write docs", s.ID())
	b := createTestBug(t, db, "Crash on save", backlog.SeverityLow, s.ID())

	for i := 0; i < 3; i++ {
		c, err := backlog.NewTaskComment(fmt.Sprintf("note %d", i), alice.ID(), tk.ID())
		require.NoError(t, err)
		require.NoError(t, repo.Save(ctx, c))
	}
	bc, err := backlog.NewBugComment("reproduced", alice.ID(), b.ID())
	require.NoError(t, err)
	require.NoError(t, repo.Save(ctx, bc))

	taskComments, err := repo.ListByTask(ctx, tk.ID())
	require.NoError(t, err)
	assert.Len(t, taskComments, 3)

	bugComments, err := repo.ListByBug(ctx, b.ID())
	require.NoError(t, err)
	assert.Len(t, bugComments, 1)
	assert.NotNil(t, bugComments[0].BugID())
	assert.Nil(t, bugComments[0].TaskID())

	require.NoError(t, repo.Delete(ctx, taskComments[0].ID()))

	remaining, err := repo.ListByTask(ctx, tk.ID())
	require.NoError(t, err)
	assert.Len(t, remaining, 2)
}

func TestTaskRepository_DeleteRemovesOwnComments(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()

	alice := createTestUser(t, db, "alice")
	p := createTestProject(t, db, "Platform", alice.ID())
	e := createTestEpic(t, db, "Roadmap", p.ID())
	s := createTestStory(t, db, "Launch", e.ID())
	tk := createTestTask(t, db, "Write docs", s.ID())
	b := createTestBug(t, db, "Crash on save", backlog.SeverityLow, s.ID())

	commentRepo := NewCommentRepository(db, logger.NewLogger())
	tc, err := backlog.NewTaskComment("on task", alice.ID(), tk.ID())
	require.NoError(t, err)
	require.NoError(t, commentRepo.Save(ctx, tc))

	bc, err := backlog.NewBugComment("on bug", alice.ID(), b.ID())
	require.NoError(t, err)
	require.NoError(t, commentRepo.Save(ctx, bc))

	taskRepo := NewTaskRepository(db, logger.NewLogger())
	require.NoError(t, taskRepo.Delete(ctx, tk.ID()))

	gone, err := taskRepo.GetByID(ctx, tk.ID())
	require.NoError(t, err)
	assert.Nil(t, gone)

	taskComments, err := commentRepo.ListByTask(ctx, tk.ID())
	require.NoError(t, err)
	assert.Empty(t, taskComments)

	// the bug and its comment are untouched
	bugComments, err := commentRepo.ListByBug(ctx, b.ID())
	require.NoError(t, err)
	assert.Len(t, bugComments, 1)
}
