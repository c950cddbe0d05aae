package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/msomdec/job-board/internal/domain"
)

// ApplicationRepository implements domain.ApplicationRepository using SQLite.
type ApplicationRepository struct {
	db *sql.DB
}

const applicationColumns = "id, resume_key, resume_filename, message, applied_at, job_id, candidate_id"

func (r *ApplicationRepository) Create(ctx context.Context, app *domain.Application) error {
	now := time.Now().UTC()
	result, err := r.db.ExecContext(ctx,
		`INSERT INTO applications (resume_key, resume_filename, message, applied_at, job_id, candidate_id)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		app.ResumeKey, app.ResumeFilename, app.Message, now, app.JobID, app.CandidateID,
	)
	if err != nil {
		return fmt.Errorf("insert application: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("get last insert id: %w", err)
	}

	app.ID = id
	app.AppliedAt = now
	return nil
}

func (r *ApplicationRepository) GetByID(ctx context.Context, id int64) (*domain.Application, error) {
	app := &domain.Application{}
	err := r.db.QueryRowContext(ctx,
		"SELECT "+applicationColumns+" FROM applications WHERE id = ?", id,
	).Scan(&app.ID, &app.ResumeKey, &app.ResumeFilename, &app.Message, &app.AppliedAt, &app.JobID, &app.CandidateID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("query application by id: %w", err)
	}
	return app, nil
}

func (r *ApplicationRepository) ListByCandidate(ctx context.Context, candidateID int64) ([]domain.Application, error) {
	return r.queryApplications(ctx,
		"SELECT "+applicationColumns+" FROM applications WHERE candidate_id = ? ORDER BY applied_at DESC, id DESC",
		candidateID)
}

func (r *ApplicationRepository) ListByJob(ctx context.Context, jobID int64) ([]domain.Application, error) {
	return r.queryApplications(ctx,
		"SELECT "+applicationColumns+" FROM applications WHERE job_id = ? ORDER BY applied_at DESC, id DESC",
		jobID)
}

func (r *ApplicationRepository) CountByJob(ctx context.Context, jobID int64) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM applications WHERE job_id = ?", jobID,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count applications: %w", err)
	}
	return count, nil
}

func (r *ApplicationRepository) queryApplications(ctx context.Context, query string, args ...any) ([]domain.Application, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list applications: %w", err)
	}
	defer rows.Close()

	var apps []domain.Application
	for rows.Next() {
		var a domain.Application
		if err := rows.Scan(&a.ID, &a.ResumeKey, &a.ResumeFilename, &a.Message, &a.AppliedAt, &a.JobID, &a.CandidateID); err != nil {
			return nil, fmt.Errorf("scan application: %w", err)
		}
		apps = append(apps, a)
	}
	return apps, rows.Err()
}
