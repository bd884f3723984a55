package usecases

import (
	"context"

	"github.com/stretchr/testify/mock"

	"stride/internal/domain/backlog"
	"stride/internal/domain/project"
	"stride/internal/domain/user"
)

type mockProjectRepository struct {
	mock.Mock
}

func (m *mockProjectRepository) Create(ctx context.Context, entity *project.Project, creatorID uint) error {
	args := m.Called(ctx, entity, creatorID)
	return args.Error(0)
}

func (m *mockProjectRepository) GetByID(ctx context.Context, id uint) (*project.Project, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*project.Project), args.Error(1)
}

func (m *mockProjectRepository) ListForUser(ctx context.Context, userID uint) ([]*project.Project, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*project.Project), args.Error(1)
}

func (m *mockProjectRepository) AddMember(ctx context.Context, projectID, userID uint) error {
	args := m.Called(ctx, projectID, userID)
	return args.Error(0)
}

func (m *mockProjectRepository) IsMember(ctx context.Context, projectID, userID uint) (bool, error) {
	args := m.Called(ctx, projectID, userID)
	return args.Bool(0), args.Error(1)
}

func (m *mockProjectRepository) Delete(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type mockUserRepository struct {
	mock.Mock
}

func (m *mockUserRepository) Create(ctx context.Context, entity *user.User) error {
	args := m.Called(ctx, entity)
	return args.Error(0)
}

func (m *mockUserRepository) GetByID(ctx context.Context, id uint) (*user.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*user.User), args.Error(1)
}

func (m *mockUserRepository) GetByUsername(ctx context.Context, username string) (*user.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*user.User), args.Error(1)
}

func (m *mockUserRepository) GetByEmail(ctx context.Context, email string) (*user.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*user.User), args.Error(1)
}

func (m *mockUserRepository) GetByIdentifier(ctx context.Context, identifier string) (*user.User, error) {
	args := m.Called(ctx, identifier)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*user.User), args.Error(1)
}

func (m *mockUserRepository) Delete(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *mockUserRepository) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

type mockEpicRepository struct {
	mock.Mock
}

func (m *mockEpicRepository) Save(ctx context.Context, epic *backlog.Epic) error {
	args := m.Called(ctx, epic)
	return args.Error(0)
}

func (m *mockEpicRepository) GetByID(ctx context.Context, id uint) (*backlog.Epic, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*backlog.Epic), args.Error(1)
}

func (m *mockEpicRepository) GetByTitleAndProject(ctx context.Context, title string, projectID uint) (*backlog.Epic, error) {
	args := m.Called(ctx, title, projectID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*backlog.Epic), args.Error(1)
}

func (m *mockEpicRepository) ListByProject(ctx context.Context, projectID uint) ([]*backlog.Epic, error) {
	args := m.Called(ctx, projectID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*backlog.Epic), args.Error(1)
}

func (m *mockEpicRepository) Delete(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type mockStoryRepository struct {
	mock.Mock
}

func (m *mockStoryRepository) Save(ctx context.Context, story *backlog.Story) error {
	args := m.Called(ctx, story)
	return args.Error(0)
}

func (m *mockStoryRepository) GetByID(ctx context.Context, id uint) (*backlog.Story, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*backlog.Story), args.Error(1)
}

func (m *mockStoryRepository) GetByTitleAndEpic(ctx context.Context, title string, epicID uint) (*backlog.Story, error) {
	args := m.Called(ctx, title, epicID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*backlog.Story), args.Error(1)
}

func (m *mockStoryRepository) ListByEpic(ctx context.Context, epicID uint) ([]*backlog.Story, error) {
	args := m.Called(ctx, epicID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*backlog.Story), args.Error(1)
}

func (m *mockStoryRepository) Delete(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type mockTaskRepository struct {
	mock.Mock
}

func (m *mockTaskRepository) Save(ctx context.Context, task *backlog.Task) error {
	args := m.Called(ctx, task)
	return args.Error(0)
}

func (m *mockTaskRepository) Update(ctx context.Context, task *backlog.Task) error {
	args := m.Called(ctx, task)
	return args.Error(0)
}

func (m *mockTaskRepository) GetByID(ctx context.Context, id uint) (*backlog.Task, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*backlog.Task), args.Error(1)
}

func (m *mockTaskRepository) ListByStory(ctx context.Context, storyID uint) ([]*backlog.Task, error) {
	args := m.Called(ctx, storyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*backlog.Task), args.Error(1)
}

func (m *mockTaskRepository) Delete(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type mockBugRepository struct {
	mock.Mock
}

func (m *mockBugRepository) Save(ctx context.Context, bug *backlog.Bug) error {
	args := m.Called(ctx, bug)
	return args.Error(0)
}

func (m *mockBugRepository) Update(ctx context.Context, bug *backlog.Bug) error {
	args := m.Called(ctx, bug)
	return args.Error(0)
}

func (m *mockBugRepository) GetByID(ctx context.Context, id uint) (*backlog.Bug, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*backlog.Bug), args.Error(1)
}

func (m *mockBugRepository) ListByStory(ctx context.Context, storyID uint) ([]*backlog.Bug, error) {
	args := m.Called(ctx, storyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*backlog.Bug), args.Error(1)
}

func (m *mockBugRepository) Delete(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type mockCommentRepository struct {
	mock.Mock
}

func (m *mockCommentRepository) Save(ctx context.Context, comment *backlog.Comment) error {
	args := m.Called(ctx, comment)
	return args.Error(0)
}

func (m *mockCommentRepository) GetByID(ctx context.Context, id uint) (*backlog.Comment, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*backlog.Comment), args.Error(1)
}

func (m *mockCommentRepository) ListByTask(ctx context.Context, taskID uint) ([]*backlog.Comment, error) {
	args := m.Called(ctx, taskID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*backlog.Comment), args.Error(1)
}

func (m *mockCommentRepository) ListByBug(ctx context.Context, bugID uint) ([]*backlog.Comment, error) {
	args := m.Called(ctx, bugID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*backlog.Comment), args.Error(1)
}

func (m *mockCommentRepository) Delete(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
