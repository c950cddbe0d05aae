package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/msomdec/job-board/internal/domain"
	"github.com/msomdec/job-board/internal/service"
)

// DashboardHandler serves the per-role dashboards.
type DashboardHandler struct {
	jobs         *service.JobService
	applications *service.ApplicationService
}

// NewDashboardHandler creates a new DashboardHandler.
func NewDashboardHandler(jobs *service.JobService, applications *service.ApplicationService) *DashboardHandler {
	return &DashboardHandler{jobs: jobs, applications: applications}
}

// HandleEmployer returns the acting employer's own postings, newest first.
// GET /api/employer/dashboard
// Response: {"jobs": [...]}
func (h *DashboardHandler) HandleEmployer(w http.ResponseWriter, r *http.Request) {
	sess := SessionFromContext(r.Context())
	jobs, err := h.jobs.ListByEmployer(r.Context(), sess)
	if err != nil {
		if errors.Is(err, domain.ErrForbidden) {
			writeError(w, http.StatusForbidden, "Access denied.")
			return
		}
		slog.Error("employer dashboard", "error", err)
		writeError(w, http.StatusInternalServerError, "An unexpected error occurred.")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"jobs": toJobDTOs(jobs),
	})
}

// HandleCandidate returns the acting candidate's own applications.
// GET /api/candidate/dashboard
// Response: {"applications": [...]}
func (h *DashboardHandler) HandleCandidate(w http.ResponseWriter, r *http.Request) {
	sess := SessionFromContext(r.Context())
	apps, err := h.applications.ListByCandidate(r.Context(), sess)
	if err != nil {
		if errors.Is(err, domain.ErrForbidden) {
			writeError(w, http.StatusForbidden, "Access denied.")
			return
		}
		slog.Error("candidate dashboard", "error", err)
		writeError(w, http.StatusInternalServerError, "An unexpected error occurred.")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"applications": toApplicationDTOs(apps),
	})
}
