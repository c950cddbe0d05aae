package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/msomdec/job-board/internal/domain"
)

// JobRepository implements domain.JobRepository using SQLite.
type JobRepository struct {
	db *sql.DB
}

const jobColumns = "id, title, description, company, location, posted_at, employer_id"

func (r *JobRepository) Create(ctx context.Context, job *domain.Job) error {
	now := time.Now().UTC()
	result, err := r.db.ExecContext(ctx,
		`INSERT INTO jobs (title, description, company, location, posted_at, employer_id)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		job.Title, job.Description, job.Company, job.Location, now, job.EmployerID,
	)
	if err != nil {
		return fmt.Errorf("insert job: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("get last insert id: %w", err)
	}

	job.ID = id
	job.PostedAt = now
	return nil
}

func (r *JobRepository) GetByID(ctx context.Context, id int64) (*domain.Job, error) {
	job := &domain.Job{}
	err := r.db.QueryRowContext(ctx,
		"SELECT "+jobColumns+" FROM jobs WHERE id = ?", id,
	).Scan(&job.ID, &job.Title, &job.Description, &job.Company, &job.Location, &job.PostedAt, &job.EmployerID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("query job by id: %w", err)
	}
	return job, nil
}

// List returns all jobs, optionally filtered by a case-insensitive
// substring match on the title. The query string is passed as a bound
// parameter with LIKE wildcards escaped, never interpolated.
func (r *JobRepository) List(ctx context.Context, titleQuery string) ([]domain.Job, error) {
	if titleQuery == "" {
		return r.queryJobs(ctx, "SELECT "+jobColumns+" FROM jobs")
	}

	pattern := "%" + escapeLike(titleQuery) + "%"
	return r.queryJobs(ctx,
		"SELECT "+jobColumns+" FROM jobs WHERE title LIKE ? ESCAPE '\\'", pattern)
}

func (r *JobRepository) ListRecent(ctx context.Context, limit int) ([]domain.Job, error) {
	return r.queryJobs(ctx,
		"SELECT "+jobColumns+" FROM jobs ORDER BY posted_at DESC, id DESC LIMIT ?", limit)
}

func (r *JobRepository) ListByEmployer(ctx context.Context, employerID int64) ([]domain.Job, error) {
	return r.queryJobs(ctx,
		"SELECT "+jobColumns+" FROM jobs WHERE employer_id = ? ORDER BY posted_at DESC, id DESC", employerID)
}

// Update rewrites the four editable fields. Posted timestamp and owner
// are never touched.
func (r *JobRepository) Update(ctx context.Context, id int64, fields domain.JobUpdate) error {
	result, err := r.db.ExecContext(ctx,
		`UPDATE jobs SET title = ?, description = ?, company = ?, location = ?
		 WHERE id = ?`,
		fields.Title, fields.Description, fields.Company, fields.Location, id,
	)
	if err != nil {
		return fmt.Errorf("update job: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete removes the job and every application referencing it in one
// transaction. Either both deletes commit or neither does; applications
// can never be orphaned by a partial delete.
func (r *JobRepository) Delete(ctx context.Context, id int64) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, "DELETE FROM applications WHERE job_id = ?", id); err != nil {
		return fmt.Errorf("delete applications: %w", err)
	}

	result, err := tx.ExecContext(ctx, "DELETE FROM jobs WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("delete job: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if rows == 0 {
		return domain.ErrNotFound
	}

	return tx.Commit()
}

func (r *JobRepository) queryJobs(ctx context.Context, query string, args ...any) ([]domain.Job, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list jobs: %w", err)
	}
	defer rows.Close()

	var jobs []domain.Job
	for rows.Next() {
		var j domain.Job
		if err := rows.Scan(&j.ID, &j.Title, &j.Description, &j.Company, &j.Location, &j.PostedAt, &j.EmployerID); err != nil {
			return nil, fmt.Errorf("scan job: %w", err)
		}
		jobs = append(jobs, j)
	}
	return jobs, rows.Err()
}

// escapeLike escapes LIKE metacharacters in user-supplied search text.
func escapeLike(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, "%", `\%`)
	s = strings.ReplaceAll(s, "_", `\_`)
	return s
}
