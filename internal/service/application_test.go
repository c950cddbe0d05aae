package service_test

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/msomdec/job-board/internal/domain"
	"github.com/msomdec/job-board/internal/repository/sqlite"
	"github.com/msomdec/job-board/internal/service"
)

func newTestApplicationService(t *testing.T) (*service.ApplicationService, *service.JobService, *sqlite.DB) {
	t.Helper()
	db := newTestDB(t)
	apps := service.NewApplicationService(db.Applications(), db.Jobs(), db.FileStore())
	jobs := service.NewJobService(db.Jobs())
	return apps, jobs, db
}

func postTestJob(t *testing.T, jobs *service.JobService, employer *domain.Session) *domain.Job {
	t.Helper()
	job, err := jobs.Post(context.Background(), employer, validJobFields())
	if err != nil {
		t.Fatalf("Post: %v", err)
	}
	return job
}

func TestApplicationService_Apply_Success(t *testing.T) {
	apps, jobs, db := newTestApplicationService(t)
	ctx := context.Background()
	employer := registerUser(t, db, "employer", true)
	candidate := registerUser(t, db, "candidate", false)
	job := postTestJob(t, jobs, employer)

	resume := []byte("%PDF-1.4 my resume")
	app, err := apps.Apply(ctx, candidate, job.ID, "resume.pdf", "Hello", resume)
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}

	if app.ID == 0 {
		t.Fatal("expected application ID to be set")
	}
	if app.AppliedAt.IsZero() {
		t.Fatal("expected AppliedAt to be set")
	}
	if app.CandidateID != candidate.UserID {
		t.Fatalf("expected candidate %d, got %d", candidate.UserID, app.CandidateID)
	}

	// The stored artifact is retrievable under the generated key.
	stored, err := db.FileStore().Get(ctx, app.ResumeKey)
	if err != nil {
		t.Fatalf("Get stored resume: %v", err)
	}
	if !bytes.Equal(stored, resume) {
		t.Fatal("stored resume does not match upload")
	}
}

func TestApplicationService_Apply_SameFilenameDistinctArtifacts(t *testing.T) {
	apps, jobs, db := newTestApplicationService(t)
	ctx := context.Background()
	employer := registerUser(t, db, "employer", true)
	alice := registerUser(t, db, "alice", false)
	bob := registerUser(t, db, "bob", false)
	job := postTestJob(t, jobs, employer)

	first, err := apps.Apply(ctx, alice, job.ID, "resume.pdf", "", []byte("alice resume"))
	if err != nil {
		t.Fatalf("Apply alice: %v", err)
	}
	second, err := apps.Apply(ctx, bob, job.ID, "resume.pdf", "", []byte("bob resume"))
	if err != nil {
		t.Fatalf("Apply bob: %v", err)
	}

	if first.ResumeKey == second.ResumeKey {
		t.Fatal("same original filename must not share a storage key")
	}

	aliceData, err := db.FileStore().Get(ctx, first.ResumeKey)
	if err != nil {
		t.Fatalf("Get alice resume: %v", err)
	}
	if string(aliceData) != "alice resume" {
		t.Fatalf("alice's upload was clobbered: %q", aliceData)
	}
}

func TestApplicationService_Apply_SanitizesFilename(t *testing.T) {
	apps, jobs, db := newTestApplicationService(t)
	ctx := context.Background()
	employer := registerUser(t, db, "employer", true)
	candidate := registerUser(t, db, "candidate", false)
	job := postTestJob(t, jobs, employer)

	app, err := apps.Apply(ctx, candidate, job.ID, "../../etc/passwd", "", []byte("data"))
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if strings.Contains(app.ResumeFilename, "/") || strings.Contains(app.ResumeFilename, "..") {
		t.Fatalf("filename not sanitized: %q", app.ResumeFilename)
	}
	if strings.Contains(strings.TrimPrefix(app.ResumeKey, "resumes/"), "/") {
		t.Fatalf("client input leaked into storage key: %q", app.ResumeKey)
	}
}

func TestApplicationService_Apply_EmployerForbidden(t *testing.T) {
	apps, jobs, db := newTestApplicationService(t)
	employer := registerUser(t, db, "employer", true)
	job := postTestJob(t, jobs, employer)

	_, err := apps.Apply(context.Background(), employer, job.ID, "r.pdf", "", []byte("data"))
	if !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
}

func TestApplicationService_Apply_JobNotFound(t *testing.T) {
	apps, _, db := newTestApplicationService(t)
	candidate := registerUser(t, db, "candidate", false)

	_, err := apps.Apply(context.Background(), candidate, 99999, "r.pdf", "", []byte("data"))
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestApplicationService_Apply_MissingResume(t *testing.T) {
	apps, jobs, db := newTestApplicationService(t)
	employer := registerUser(t, db, "employer", true)
	candidate := registerUser(t, db, "candidate", false)
	job := postTestJob(t, jobs, employer)

	_, err := apps.Apply(context.Background(), candidate, job.ID, "r.pdf", "", nil)
	if !errors.Is(err, domain.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestApplicationService_Apply_OversizeResume(t *testing.T) {
	apps, jobs, db := newTestApplicationService(t)
	employer := registerUser(t, db, "employer", true)
	candidate := registerUser(t, db, "candidate", false)
	job := postTestJob(t, jobs, employer)

	// One byte over the 10MB limit.
	oversize := bytes.Repeat([]byte("a"), 10*1024*1024+1)
	_, err := apps.Apply(context.Background(), candidate, job.ID, "r.pdf", "", oversize)
	if !errors.Is(err, domain.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}

	// Nothing should have been recorded for the rejected attempt.
	recorded, err := apps.ListByJob(context.Background(), employer, job.ID)
	if err != nil {
		t.Fatalf("ListByJob: %v", err)
	}
	if len(recorded) != 0 {
		t.Fatalf("expected no applications after rejected upload, got %d", len(recorded))
	}
}

func TestApplicationService_ListByCandidate_GuardsRole(t *testing.T) {
	apps, _, db := newTestApplicationService(t)
	employer := registerUser(t, db, "employer", true)

	_, err := apps.ListByCandidate(context.Background(), employer)
	if !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
}

func TestApplicationService_ListByJob_OwnerOnly(t *testing.T) {
	apps, jobs, db := newTestApplicationService(t)
	ctx := context.Background()
	owner := registerUser(t, db, "owner", true)
	rival := registerUser(t, db, "rival", true)
	candidate := registerUser(t, db, "candidate", false)
	job := postTestJob(t, jobs, owner)

	if _, err := apps.Apply(ctx, candidate, job.ID, "r.pdf", "hi", []byte("data")); err != nil {
		t.Fatalf("Apply: %v", err)
	}

	if _, err := apps.ListByJob(ctx, rival, job.ID); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden for non-owner, got %v", err)
	}

	got, err := apps.ListByJob(ctx, owner, job.ID)
	if err != nil {
		t.Fatalf("ListByJob: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("expected 1 application, got %d", len(got))
	}
}

func TestApplicationService_GetResume_OwnerOnly(t *testing.T) {
	apps, jobs, db := newTestApplicationService(t)
	ctx := context.Background()
	owner := registerUser(t, db, "owner", true)
	rival := registerUser(t, db, "rival", true)
	candidate := registerUser(t, db, "candidate", false)
	job := postTestJob(t, jobs, owner)

	app, err := apps.Apply(ctx, candidate, job.ID, "r.pdf", "hi", []byte("resume bytes"))
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}

	if _, _, err := apps.GetResume(ctx, rival, app.ID); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden for non-owner, got %v", err)
	}

	data, filename, err := apps.GetResume(ctx, owner, app.ID)
	if err != nil {
		t.Fatalf("GetResume: %v", err)
	}
	if string(data) != "resume bytes" {
		t.Fatalf("unexpected resume bytes: %q", data)
	}
	if filename != "r.pdf" {
		t.Fatalf("unexpected filename: %q", filename)
	}
}
