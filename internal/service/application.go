package service

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/msomdec/job-board/internal/domain"
)

const maxResumeSize = 10 * 1024 * 1024 // 10MB

// ApplicationService orchestrates job applications and resume storage.
type ApplicationService struct {
	applications domain.ApplicationRepository
	jobs         domain.JobRepository
	files        domain.FileStore
}

// NewApplicationService creates a new ApplicationService.
func NewApplicationService(applications domain.ApplicationRepository, jobs domain.JobRepository, files domain.FileStore) *ApplicationService {
	return &ApplicationService{applications: applications, jobs: jobs, files: files}
}

// Apply records a candidate's application to a job, storing the resume
// bytes under a fresh storage key. The client filename is reduced to
// its base name; it never influences the storage key, so repeated or
// traversal-bearing names cannot touch another upload.
func (s *ApplicationService) Apply(ctx context.Context, sess *domain.Session, jobID int64, filename, message string, resume []byte) (*domain.Application, error) {
	job, err := s.jobs.GetByID(ctx, jobID)
	if err != nil {
		return nil, err
	}

	if !domain.CanApply(sess) {
		return nil, domain.ErrForbidden
	}

	if len(resume) == 0 {
		return nil, fmt.Errorf("%w: a resume file is required", domain.ErrInvalidInput)
	}
	if len(resume) > maxResumeSize {
		return nil, fmt.Errorf("%w: resume exceeds 10MB limit", domain.ErrInvalidInput)
	}

	key := "resumes/" + uuid.NewString()

	if err := s.files.Save(ctx, key, resume); err != nil {
		return nil, fmt.Errorf("save resume: %w", err)
	}

	app := &domain.Application{
		ResumeKey:      key,
		ResumeFilename: sanitizeFilename(filename),
		Message:        message,
		JobID:          job.ID,
		CandidateID:    sess.UserID,
	}

	if err := s.applications.Create(ctx, app); err != nil {
		// Best-effort cleanup of the stored file.
		s.files.Delete(ctx, key)
		return nil, fmt.Errorf("create application: %w", err)
	}

	return app, nil
}

// ListByCandidate returns the session's own applications for the
// candidate dashboard.
func (s *ApplicationService) ListByCandidate(ctx context.Context, sess *domain.Session) ([]domain.Application, error) {
	if !domain.CanViewCandidateDashboard(sess) {
		return nil, domain.ErrForbidden
	}
	return s.applications.ListByCandidate(ctx, sess.UserID)
}

// ListByJob returns the applications for a job after checking the
// session owns the posting.
func (s *ApplicationService) ListByJob(ctx context.Context, sess *domain.Session, jobID int64) ([]domain.Application, error) {
	job, err := s.jobs.GetByID(ctx, jobID)
	if err != nil {
		return nil, err
	}
	if !domain.CanMutateJob(sess, job) {
		return nil, domain.ErrForbidden
	}
	return s.applications.ListByJob(ctx, jobID)
}

// GetResume returns the stored resume bytes and display filename for an
// application, restricted to the employer owning the applied-to job.
func (s *ApplicationService) GetResume(ctx context.Context, sess *domain.Session, applicationID int64) ([]byte, string, error) {
	app, err := s.applications.GetByID(ctx, applicationID)
	if err != nil {
		return nil, "", err
	}

	job, err := s.jobs.GetByID(ctx, app.JobID)
	if err != nil {
		return nil, "", fmt.Errorf("get job for application: %w", err)
	}
	if !domain.CanMutateJob(sess, job) {
		return nil, "", domain.ErrForbidden
	}

	data, err := s.files.Get(ctx, app.ResumeKey)
	if err != nil {
		return nil, "", fmt.Errorf("get resume: %w", err)
	}

	return data, app.ResumeFilename, nil
}

// sanitizeFilename strips any path components from a client-supplied
// filename, keeping only a safe base name for display.
func sanitizeFilename(name string) string {
	name = strings.ReplaceAll(name, "\\", "/")
	base := filepath.Base(name)
	if base == "." || base == "/" || base == ".." {
		return "resume"
	}
	return base
}
