package handler

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/msomdec/job-board/internal/domain"
	"github.com/msomdec/job-board/internal/service"
)

// JobHandler handles job-related HTTP requests.
type JobHandler struct {
	jobs *service.JobService
}

// NewJobHandler creates a new JobHandler.
func NewJobHandler(jobs *service.JobService) *JobHandler {
	return &JobHandler{jobs: jobs}
}

// HandleList returns all jobs, optionally filtered by title.
// GET /api/jobs?q=...
// Response: {"jobs": [...]}
func (h *JobHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	jobs, err := h.jobs.List(r.Context(), r.URL.Query().Get("q"))
	if err != nil {
		slog.Error("list jobs", "error", err)
		writeError(w, http.StatusInternalServerError, "An unexpected error occurred.")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"jobs": toJobDTOs(jobs),
	})
}

// HandleRecent returns the newest postings for the home feed.
// GET /api/jobs/recent
// Response: {"jobs": [...]}
func (h *JobHandler) HandleRecent(w http.ResponseWriter, r *http.Request) {
	jobs, err := h.jobs.ListRecent(r.Context())
	if err != nil {
		slog.Error("list recent jobs", "error", err)
		writeError(w, http.StatusInternalServerError, "An unexpected error occurred.")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"jobs": toJobDTOs(jobs),
	})
}

// HandleDetail returns a single job.
// GET /api/jobs/{id}
// Response: {"job": {...}} or 404
func (h *JobHandler) HandleDetail(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid job id.")
		return
	}

	job, err := h.jobs.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			writeError(w, http.StatusNotFound, "Job not found.")
			return
		}
		slog.Error("get job", "error", err)
		writeError(w, http.StatusInternalServerError, "An unexpected error occurred.")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"job": toJobDTO(job),
	})
}

// HandleCreate posts a new job owned by the acting employer.
// POST /api/jobs
// Request:  {"title":"...","description":"...","company":"...","location":"..."}
// Response: {"job": {...}}
func (h *JobHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Title       string `json:"title"`
		Description string `json:"description"`
		Company     string `json:"company"`
		Location    string `json:"location"`
	}
	if err := readJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body.")
		return
	}

	sess := SessionFromContext(r.Context())
	job, err := h.jobs.Post(r.Context(), sess, domain.JobUpdate{
		Title:       req.Title,
		Description: req.Description,
		Company:     req.Company,
		Location:    req.Location,
	})
	if err != nil {
		h.writeJobError(w, err, "post job")
		return
	}

	writeJSON(w, http.StatusCreated, map[string]any{
		"job": toJobDTO(job),
	})
}

// HandleUpdate edits an existing job's editable fields.
// PUT /api/jobs/{id}
// Response: {"job": {...}}
func (h *JobHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid job id.")
		return
	}

	var req struct {
		Title       string `json:"title"`
		Description string `json:"description"`
		Company     string `json:"company"`
		Location    string `json:"location"`
	}
	if err := readJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body.")
		return
	}

	sess := SessionFromContext(r.Context())
	job, err := h.jobs.Update(r.Context(), sess, id, domain.JobUpdate{
		Title:       req.Title,
		Description: req.Description,
		Company:     req.Company,
		Location:    req.Location,
	})
	if err != nil {
		h.writeJobError(w, err, "update job")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"job": toJobDTO(job),
	})
}

// HandleDelete removes a job together with its applications.
// DELETE /api/jobs/{id}
// Response: 204 No Content
func (h *JobHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid job id.")
		return
	}

	sess := SessionFromContext(r.Context())
	if err := h.jobs.Delete(r.Context(), sess, id); err != nil {
		h.writeJobError(w, err, "delete job")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *JobHandler) writeJobError(w http.ResponseWriter, err error, op string) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		writeError(w, http.StatusNotFound, "Job not found.")
	case errors.Is(err, domain.ErrForbidden):
		writeError(w, http.StatusForbidden, "Access denied.")
	case errors.Is(err, domain.ErrInvalidInput):
		writeError(w, http.StatusUnprocessableEntity, err.Error())
	default:
		slog.Error(op, "error", err)
		writeError(w, http.StatusInternalServerError, "An unexpected error occurred.")
	}
}

func parseID(r *http.Request, name string) (int64, error) {
	return strconv.ParseInt(r.PathValue(name), 10, 64)
}
