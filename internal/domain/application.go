package domain

import (
	"context"
	"time"
)

// Application is a candidate's submission to a job. ResumeKey points at
// the stored artifact in the FileStore; ResumeFilename preserves the
// sanitized original name for display. AppliedAt is set at creation and
// never updated.
type Application struct {
	ID             int64
	ResumeKey      string
	ResumeFilename string
	Message        string
	AppliedAt      time.Time
	JobID          int64
	CandidateID    int64
}

// ApplicationRepository defines persistence operations for applications.
// Applications are never updated or individually deleted; they go away
// only when their job or a related user is deleted.
type ApplicationRepository interface {
	Create(ctx context.Context, app *Application) error
	GetByID(ctx context.Context, id int64) (*Application, error)
	ListByCandidate(ctx context.Context, candidateID int64) ([]Application, error)
	ListByJob(ctx context.Context, jobID int64) ([]Application, error)
	CountByJob(ctx context.Context, jobID int64) (int, error)
}
