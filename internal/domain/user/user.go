// Package user contains the user aggregate and its repository contract.
package user

import (
	"fmt"
	"net/mail"
	"strings"
	"time"

	"stride/internal/shared/biztime"
)

const (
	maxUsernameLength = 50
	maxEmailLength    = 255
)

// User is the account aggregate. The password is stored only as a bcrypt hash;
// plaintext never enters the domain layer.
type User struct {
	id           uint
	username     string
	email        string
	passwordHash string
	createdAt    time.Time
}

// NewUser creates a user from an already-hashed password.
func NewUser(username, email, passwordHash string) (*User, error) {
	username = strings.TrimSpace(username)
	email = strings.TrimSpace(strings.ToLower(email))

	if username == "" {
		return nil, fmt.Errorf("username is required")
	}
	if len(username) > maxUsernameLength {
		return nil, fmt.Errorf("username exceeds maximum length of %d characters", maxUsernameLength)
	}
	if email == "" {
		return nil, fmt.Errorf("email is required")
	}
	if len(email) > maxEmailLength {
		return nil, fmt.Errorf("email exceeds maximum length of %d characters", maxEmailLength)
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return nil, fmt.Errorf("invalid email address %q", email)
	}
	if passwordHash == "" {
		return nil, fmt.Errorf("password hash is required")
	}

	return &User{
		username:     username,
		email:        email,
		passwordHash: passwordHash,
		createdAt:    biztime.NowUTC(),
	}, nil
}

// ReconstructUser rebuilds a user from persisted state.
func ReconstructUser(id uint, username, email, passwordHash string, createdAt time.Time) (*User, error) {
	if id == 0 {
		return nil, fmt.Errorf("user ID cannot be zero")
	}
	if username == "" {
		return nil, fmt.Errorf("username is required")
	}
	if email == "" {
		return nil, fmt.Errorf("email is required")
	}

	return &User{
		id:           id,
		username:     username,
		email:        email,
		passwordHash: passwordHash,
		createdAt:    createdAt,
	}, nil
}

func (u *User) ID() uint {
	return u.id
}

func (u *User) Username() string {
	return u.username
}

func (u *User) Email() string {
	return u.email
}

func (u *User) PasswordHash() string {
	return u.passwordHash
}

func (u *User) CreatedAt() time.Time {
	return u.createdAt
}

func (u *User) SetID(id uint) error {
	if u.id != 0 {
		return fmt.Errorf("user ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("user ID cannot be zero")
	}
	u.id = id
	return nil
}
