package project

import "context"

// Repository persists project aggregates and the user-project membership
// association. Lookup methods return (nil, nil) when no matching row exists.
type Repository interface {
	// Create persists the project and links creatorID as its first member.
	Create(ctx context.Context, project *Project, creatorID uint) error
	GetByID(ctx context.Context, id uint) (*Project, error)
	// ListForUser returns all projects the user is a member of, in storage order.
	ListForUser(ctx context.Context, userID uint) ([]*Project, error)
	AddMember(ctx context.Context, projectID, userID uint) error
	IsMember(ctx context.Context, projectID, userID uint) (bool, error)
	// Delete removes the project and cascades to all epics, stories, tasks,
	// bugs, and comments beneath it, plus its membership rows.
	Delete(ctx context.Context, id uint) error
}
