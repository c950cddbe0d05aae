package handler

import (
	"net/http"

	"github.com/msomdec/job-board/internal/service"
)

// RegisterRoutes sets up all HTTP routes on the given mux.
func RegisterRoutes(
	mux *http.ServeMux,
	auth *service.AuthService,
	jobs *service.JobService,
	applications *service.ApplicationService,
	cookieSecure bool,
) {
	authHandler := NewAuthHandler(auth, cookieSecure)
	jobHandler := NewJobHandler(jobs)
	appHandler := NewApplicationHandler(applications)
	dashHandler := NewDashboardHandler(jobs, applications)

	mux.HandleFunc("GET /healthz", HandleHealthz)

	// Public listings. A session is attached when present so responses
	// can be personalized, but none is required.
	mux.Handle("GET /api/jobs", OptionalAuth(auth, http.HandlerFunc(jobHandler.HandleList)))
	mux.Handle("GET /api/jobs/recent", OptionalAuth(auth, http.HandlerFunc(jobHandler.HandleRecent)))
	mux.Handle("GET /api/jobs/{id}", OptionalAuth(auth, http.HandlerFunc(jobHandler.HandleDetail)))

	// Authentication.
	mux.HandleFunc("POST /api/auth/register", authHandler.HandleRegister)
	mux.HandleFunc("POST /api/auth/login", authHandler.HandleLogin)
	mux.HandleFunc("POST /api/auth/logout", authHandler.HandleLogout)
	mux.Handle("GET /api/auth/me", RequireAuth(auth, http.HandlerFunc(authHandler.HandleMe)))

	// Job mutations (employer, ownership enforced in the service).
	mux.Handle("POST /api/jobs", RequireAuth(auth, http.HandlerFunc(jobHandler.HandleCreate)))
	mux.Handle("PUT /api/jobs/{id}", RequireAuth(auth, http.HandlerFunc(jobHandler.HandleUpdate)))
	mux.Handle("DELETE /api/jobs/{id}", RequireAuth(auth, http.HandlerFunc(jobHandler.HandleDelete)))

	// Applications.
	mux.Handle("POST /api/jobs/{id}/apply", RequireAuth(auth, http.HandlerFunc(appHandler.HandleApply)))
	mux.Handle("GET /api/jobs/{id}/applications", RequireAuth(auth, http.HandlerFunc(appHandler.HandleListForJob)))
	mux.Handle("GET /api/resumes/{id}", RequireAuth(auth, http.HandlerFunc(appHandler.HandleResume)))

	// Dashboards.
	mux.Handle("GET /api/employer/dashboard", RequireAuth(auth, http.HandlerFunc(dashHandler.HandleEmployer)))
	mux.Handle("GET /api/candidate/dashboard", RequireAuth(auth, http.HandlerFunc(dashHandler.HandleCandidate)))
}
