package handler_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/msomdec/job-board/internal/handler"
	"github.com/msomdec/job-board/internal/repository/sqlite"
	"github.com/msomdec/job-board/internal/service"
)

const testJWTSecret = "test-secret-for-handler-tests"

func newTestServices(t *testing.T) (*service.AuthService, *service.JobService, *service.ApplicationService) {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "test.db")
	db, err := sqlite.New(dbPath)
	if err != nil {
		t.Fatalf("New DB: %v", err)
	}
	if err := db.Migrate(context.Background()); err != nil {
		t.Fatalf("Migrate: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	return service.NewAuthService(db.Users(), testJWTSecret, 4),
		service.NewJobService(db.Jobs()),
		service.NewApplicationService(db.Applications(), db.Jobs(), db.FileStore())
}

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	auth, jobs, applications := newTestServices(t)

	mux := http.NewServeMux()
	handler.RegisterRoutes(mux, auth, jobs, applications, false)

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func loginToken(t *testing.T, auth *service.AuthService, username string, isEmployer bool) string {
	t.Helper()
	ctx := context.Background()
	email := username + "@example.com"
	if _, err := auth.Register(ctx, username, email, "password123", isEmployer); err != nil {
		t.Fatalf("Register %s: %v", username, err)
	}
	_, token, err := auth.Login(ctx, email, "password123")
	if err != nil {
		t.Fatalf("Login %s: %v", username, err)
	}
	return token
}

func TestRequireAuth_ValidJWT(t *testing.T) {
	auth, _, _ := newTestServices(t)
	token := loginToken(t, auth, "valid", false)

	var gotUsername string
	inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sess := handler.SessionFromContext(r.Context())
		if sess != nil {
			gotUsername = sess.Username
		}
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.AddCookie(&http.Cookie{Name: "auth_token", Value: token})
	w := httptest.NewRecorder()

	handler.RequireAuth(auth, inner).ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if gotUsername != "valid" {
		t.Fatalf("expected session for 'valid', got %q", gotUsername)
	}
}

func TestRequireAuth_MissingCookie(t *testing.T) {
	auth, _, _ := newTestServices(t)

	inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("inner handler should not be called")
	})

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	w := httptest.NewRecorder()

	handler.RequireAuth(auth, inner).ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", w.Code)
	}
}

func TestRequireAuth_TamperedToken(t *testing.T) {
	auth, _, _ := newTestServices(t)
	token := loginToken(t, auth, "tamper", false)
	tampered := token[:len(token)-1] + "X"

	inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("inner handler should not be called")
	})

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.AddCookie(&http.Cookie{Name: "auth_token", Value: tampered})
	w := httptest.NewRecorder()

	handler.RequireAuth(auth, inner).ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", w.Code)
	}
}

func TestOptionalAuth_WithToken(t *testing.T) {
	auth, _, _ := newTestServices(t)
	token := loginToken(t, auth, "optional", true)

	var gotEmployer bool
	inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sess := handler.SessionFromContext(r.Context())
		if sess != nil {
			gotEmployer = sess.IsEmployer
		}
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: "auth_token", Value: token})
	w := httptest.NewRecorder()

	handler.OptionalAuth(auth, inner).ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if !gotEmployer {
		t.Fatal("expected employer session in context")
	}
}

func TestOptionalAuth_WithoutToken(t *testing.T) {
	auth, _, _ := newTestServices(t)

	var sawRequest, sawSession bool
	inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sawRequest = true
		sawSession = handler.SessionFromContext(r.Context()) != nil
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	w := httptest.NewRecorder()

	handler.OptionalAuth(auth, inner).ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if !sawRequest {
		t.Fatal("expected the request to proceed without a session")
	}
	if sawSession {
		t.Fatal("expected nil session for unauthenticated request")
	}
}

func TestSecurityHeaders(t *testing.T) {
	inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	w := httptest.NewRecorder()

	handler.SecurityHeaders(inner).ServeHTTP(w, req)

	if got := w.Header().Get("X-Content-Type-Options"); got != "nosniff" {
		t.Fatalf("expected nosniff, got %q", got)
	}
	if got := w.Header().Get("X-Frame-Options"); got != "DENY" {
		t.Fatalf("expected DENY, got %q", got)
	}
}
