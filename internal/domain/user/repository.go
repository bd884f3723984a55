package user

import "context"

// Repository persists user aggregates. Lookup methods return (nil, nil) when
// no matching row exists; callers decide whether that is an error.
type Repository interface {
	Create(ctx context.Context, user *User) error
	GetByID(ctx context.Context, id uint) (*User, error)
	GetByUsername(ctx context.Context, username string) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
	// GetByIdentifier resolves a login identifier that may be a username or an email.
	GetByIdentifier(ctx context.Context, identifier string) (*User, error)
	// Delete removes the user. Assigned tasks and bugs are released (assignee
	// cleared); authored comments are removed with the account.
	Delete(ctx context.Context, id uint) error
	Count(ctx context.Context) (int64, error)
}
