package handler

import (
	"errors"
	"io"
	"log/slog"
	"mime"
	"net/http"
	"strconv"

	"github.com/msomdec/job-board/internal/domain"
	"github.com/msomdec/job-board/internal/service"
)

// ApplicationHandler handles job applications and resume retrieval.
type ApplicationHandler struct {
	applications *service.ApplicationService
}

// NewApplicationHandler creates a new ApplicationHandler.
func NewApplicationHandler(applications *service.ApplicationService) *ApplicationHandler {
	return &ApplicationHandler{applications: applications}
}

// HandleApply processes a multipart application to a job.
// POST /api/jobs/{id}/apply with form fields "resume" (file) and "message".
// Response: {"application": {...}}
func (h *ApplicationHandler) HandleApply(w http.ResponseWriter, r *http.Request) {
	jobID, err := parseID(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid job id.")
		return
	}

	// Parse multipart form (10MB limit).
	if err := r.ParseMultipartForm(10 << 20); err != nil {
		writeError(w, http.StatusBadRequest, "File too large.")
		return
	}

	file, header, err := r.FormFile("resume")
	if err != nil {
		writeError(w, http.StatusBadRequest, "No resume file provided.")
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		slog.Error("read resume upload", "error", err)
		writeError(w, http.StatusInternalServerError, "An unexpected error occurred.")
		return
	}

	sess := SessionFromContext(r.Context())
	app, err := h.applications.Apply(r.Context(), sess, jobID, header.Filename, r.FormValue("message"), data)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrNotFound):
			writeError(w, http.StatusNotFound, "Job not found.")
		case errors.Is(err, domain.ErrForbidden):
			writeError(w, http.StatusForbidden, "Access denied.")
		case errors.Is(err, domain.ErrInvalidInput):
			writeError(w, http.StatusUnprocessableEntity, err.Error())
		default:
			slog.Error("apply to job", "error", err)
			writeError(w, http.StatusInternalServerError, "An unexpected error occurred.")
		}
		return
	}

	writeJSON(w, http.StatusCreated, map[string]any{
		"application": toApplicationDTO(app),
	})
}

// HandleListForJob lists the applications for a job the employer owns.
// GET /api/jobs/{id}/applications
// Response: {"applications": [...]}
func (h *ApplicationHandler) HandleListForJob(w http.ResponseWriter, r *http.Request) {
	jobID, err := parseID(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid job id.")
		return
	}

	sess := SessionFromContext(r.Context())
	apps, err := h.applications.ListByJob(r.Context(), sess, jobID)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrNotFound):
			writeError(w, http.StatusNotFound, "Job not found.")
		case errors.Is(err, domain.ErrForbidden):
			writeError(w, http.StatusForbidden, "Access denied.")
		default:
			slog.Error("list applications for job", "error", err)
			writeError(w, http.StatusInternalServerError, "An unexpected error occurred.")
		}
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"applications": toApplicationDTOs(apps),
	})
}

// HandleResume serves the stored resume artifact for an application,
// restricted to the employer owning the applied-to job.
// GET /api/resumes/{id}
func (h *ApplicationHandler) HandleResume(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid application id.")
		return
	}

	sess := SessionFromContext(r.Context())
	data, filename, err := h.applications.GetResume(r.Context(), sess, id)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrNotFound):
			writeError(w, http.StatusNotFound, "Resume not found.")
		case errors.Is(err, domain.ErrForbidden):
			writeError(w, http.StatusForbidden, "Access denied.")
		default:
			slog.Error("serve resume", "error", err)
			writeError(w, http.StatusInternalServerError, "An unexpected error occurred.")
		}
		return
	}

	w.Header().Set("Content-Type", http.DetectContentType(data))
	w.Header().Set("Content-Disposition", mime.FormatMediaType("attachment", map[string]string{"filename": filename}))
	w.Header().Set("Content-Length", strconv.Itoa(len(data)))
	w.Write(data)
}
