package usecases

import (
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"stride/internal/domain/backlog"
	"stride/internal/domain/project"
	"stride/internal/domain/user"
)

var (
	fixedTime    = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	mockAnything = mock.Anything
)

func fixtureProject(t *testing.T, id uint) *project.Project {
	p, err := project.ReconstructProject(id, "Platform", "", fixedTime)
	require.NoError(t, err)
	return p
}

func fixtureUser(t *testing.T, id uint, username string) *user.User {
	u, err := user.ReconstructUser(id, username, username+"@example.com", "hash", fixedTime)
	require.NoError(t, err)
	return u
}

func fixtureEpic(t *testing.T, id, projectID uint, title string) *backlog.Epic {
	e, err := backlog.ReconstructEpic(id, title, "", projectID, fixedTime)
	require.NoError(t, err)
	return e
}

func fixtureStory(t *testing.T, id, epicID uint, title string) *backlog.Story {
	s, err := backlog.ReconstructStory(id, title, "", epicID, fixedTime)
	require.NoError(t, err)
	return s
}

func fixtureTask(t *testing.T, id, storyID uint, status backlog.WorkStatus) *backlog.Task {
	tk, err := backlog.ReconstructTask(id, "Write docs", "", status, storyID, nil, fixedTime)
	require.NoError(t, err)
	return tk
}

func fixtureBug(t *testing.T, id, storyID uint) *backlog.Bug {
	b, err := backlog.ReconstructBug(id, "Crash on save", "", backlog.SeverityHigh, backlog.StatusTodo, storyID, nil, fixedTime)
	require.NoError(t, err)
	return b
}

// memberChain wires the GetByID/IsMember expectations for a requester who is
// a member of the project owning epic 100 and story 200.
func memberChain(projectRepo *mockProjectRepository, epicRepo *mockEpicRepository, storyRepo *mockStoryRepository, t *testing.T, requesterID uint) {
	story := fixtureStory(t, 200, 100, "Launch")
	epic := fixtureEpic(t, 100, 10, "Roadmap")

	storyRepo.On("GetByID", mockAnything, uint(200)).Return(story, nil)
	epicRepo.On("GetByID", mockAnything, uint(100)).Return(epic, nil)
	projectRepo.On("GetByID", mockAnything, uint(10)).Return(fixtureProject(t, 10), nil)
	projectRepo.On("IsMember", mockAnything, uint(10), requesterID).Return(true, nil)
}
