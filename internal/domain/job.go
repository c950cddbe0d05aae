package domain

import (
	"context"
	"time"
)

// Job is a posting owned by an employer. PostedAt is set at creation
// and never updated.
type Job struct {
	ID          int64
	Title       string
	Description string
	Company     string
	Location    string
	PostedAt    time.Time
	EmployerID  int64
}

// JobUpdate carries the editable fields of a job. ID, PostedAt, and
// EmployerID are immutable after creation.
type JobUpdate struct {
	Title       string
	Description string
	Company     string
	Location    string
}

// JobRepository defines persistence operations for jobs.
type JobRepository interface {
	Create(ctx context.Context, job *Job) error
	GetByID(ctx context.Context, id int64) (*Job, error)
	// List returns all jobs, optionally filtered by a case-insensitive
	// substring match on the title. The unfiltered listing carries no
	// ordering guarantee.
	List(ctx context.Context, titleQuery string) ([]Job, error)
	// ListRecent returns the most recently posted jobs, newest first.
	ListRecent(ctx context.Context, limit int) ([]Job, error)
	ListByEmployer(ctx context.Context, employerID int64) ([]Job, error)
	Update(ctx context.Context, id int64, fields JobUpdate) error
	// Delete removes the job and every application referencing it in a
	// single transaction.
	Delete(ctx context.Context, id int64) error
}
