package backlog

import "context"

// EpicRepository persists epics. Lookups return (nil, nil) on no match.
type EpicRepository interface {
	Save(ctx context.Context, epic *Epic) error
	GetByID(ctx context.Context, id uint) (*Epic, error)
	GetByTitleAndProject(ctx context.Context, title string, projectID uint) (*Epic, error)
	ListByProject(ctx context.Context, projectID uint) ([]*Epic, error)
	// Delete removes the epic and cascades to its stories and their work items.
	Delete(ctx context.Context, id uint) error
}

// StoryRepository persists stories.
type StoryRepository interface {
	Save(ctx context.Context, story *Story) error
	GetByID(ctx context.Context, id uint) (*Story, error)
	GetByTitleAndEpic(ctx context.Context, title string, epicID uint) (*Story, error)
	ListByEpic(ctx context.Context, epicID uint) ([]*Story, error)
	// Delete removes the story and cascades to its tasks, bugs, and comments.
	Delete(ctx context.Context, id uint) error
}

// TaskRepository persists tasks.
type TaskRepository interface {
	Save(ctx context.Context, task *Task) error
	Update(ctx context.Context, task *Task) error
	GetByID(ctx context.Context, id uint) (*Task, error)
	ListByStory(ctx context.Context, storyID uint) ([]*Task, error)
	// Delete removes the task and its comments.
	Delete(ctx context.Context, id uint) error
}

// BugRepository persists bugs.
type BugRepository interface {
	Save(ctx context.Context, bug *Bug) error
	Update(ctx context.Context, bug *Bug) error
	GetByID(ctx context.Context, id uint) (*Bug, error)
	ListByStory(ctx context.Context, storyID uint) ([]*Bug, error)
	// Delete removes the bug and its comments.
	Delete(ctx context.Context, id uint) error
}

// CommentRepository persists comments.
type CommentRepository interface {
	Save(ctx context.Context, comment *Comment) error
	GetByID(ctx context.Context, id uint) (*Comment, error)
	ListByTask(ctx context.Context, taskID uint) ([]*Comment, error)
	ListByBug(ctx context.Context, bugID uint) ([]*Comment, error)
	Delete(ctx context.Context, id uint) error
}
