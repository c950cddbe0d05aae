package domain

import (
	"context"
	"time"
)

// User represents a registered user of the application. Employers post
// jobs; candidates apply to them. The role is fixed at registration.
type User struct {
	ID           int64
	Username     string
	Email        string
	PasswordHash string
	IsEmployer   bool
	CreatedAt    time.Time
}

// UserRepository defines persistence operations for users.
type UserRepository interface {
	Create(ctx context.Context, user *User) error
	GetByID(ctx context.Context, id int64) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
	GetByUsername(ctx context.Context, username string) (*User, error)
	// Delete removes the user together with their jobs, those jobs'
	// applications, and the user's own applications in one transaction.
	// Not exposed over HTTP; exists to keep the cascade rules explicit.
	Delete(ctx context.Context, id int64) error
}
