package service

import (
	"context"
	"fmt"

	"github.com/msomdec/job-board/internal/domain"
)

const recentJobsLimit = 5

// JobService handles job posting CRUD with validation and the
// authorization guard applied before every mutation.
type JobService struct {
	jobs domain.JobRepository
}

// NewJobService creates a new JobService.
func NewJobService(jobs domain.JobRepository) *JobService {
	return &JobService{jobs: jobs}
}

// Post creates a job owned by the session's employer.
func (s *JobService) Post(ctx context.Context, sess *domain.Session, fields domain.JobUpdate) (*domain.Job, error) {
	if !domain.CanPostJob(sess) {
		return nil, domain.ErrForbidden
	}

	if err := validateJobFields(fields); err != nil {
		return nil, err
	}

	job := &domain.Job{
		Title:       fields.Title,
		Description: fields.Description,
		Company:     fields.Company,
		Location:    fields.Location,
		EmployerID:  sess.UserID,
	}

	if err := s.jobs.Create(ctx, job); err != nil {
		return nil, fmt.Errorf("create job: %w", err)
	}
	return job, nil
}

// GetByID returns a job by ID.
func (s *JobService) GetByID(ctx context.Context, id int64) (*domain.Job, error) {
	return s.jobs.GetByID(ctx, id)
}

// List returns all jobs, optionally filtered by title substring.
func (s *JobService) List(ctx context.Context, titleQuery string) ([]domain.Job, error) {
	return s.jobs.List(ctx, titleQuery)
}

// ListRecent returns the newest postings for the home feed.
func (s *JobService) ListRecent(ctx context.Context) ([]domain.Job, error) {
	return s.jobs.ListRecent(ctx, recentJobsLimit)
}

// ListByEmployer returns the session's own jobs for the employer
// dashboard, most recent first.
func (s *JobService) ListByEmployer(ctx context.Context, sess *domain.Session) ([]domain.Job, error) {
	if !domain.CanViewEmployerDashboard(sess) {
		return nil, domain.ErrForbidden
	}
	return s.jobs.ListByEmployer(ctx, sess.UserID)
}

// Update edits a job's four editable fields after an ownership check.
// On denial nothing is written.
func (s *JobService) Update(ctx context.Context, sess *domain.Session, id int64, fields domain.JobUpdate) (*domain.Job, error) {
	job, err := s.jobs.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !domain.CanMutateJob(sess, job) {
		return nil, domain.ErrForbidden
	}

	if err := validateJobFields(fields); err != nil {
		return nil, err
	}

	if err := s.jobs.Update(ctx, id, fields); err != nil {
		return nil, fmt.Errorf("update job: %w", err)
	}

	job.Title = fields.Title
	job.Description = fields.Description
	job.Company = fields.Company
	job.Location = fields.Location
	return job, nil
}

// Delete removes a job and its applications after an ownership check.
func (s *JobService) Delete(ctx context.Context, sess *domain.Session, id int64) error {
	job, err := s.jobs.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if !domain.CanMutateJob(sess, job) {
		return domain.ErrForbidden
	}

	return s.jobs.Delete(ctx, id)
}

func validateJobFields(fields domain.JobUpdate) error {
	if fields.Title == "" {
		return fmt.Errorf("%w: title is required", domain.ErrInvalidInput)
	}
	if fields.Description == "" {
		return fmt.Errorf("%w: description is required", domain.ErrInvalidInput)
	}
	if fields.Company == "" {
		return fmt.Errorf("%w: company is required", domain.ErrInvalidInput)
	}
	// Location is optional.
	return nil
}
