package auth

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"skillgap-backend/internal/sessions"
	"skillgap-backend/internal/users"
)

type authEnv struct {
	router  *gin.Engine
	svc     *GoogleService
	userSvc *users.Service
	store   *sessions.MemoryStore
}

func newAuthEnv(t *testing.T, clientID string) authEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	userSvc := users.NewService(users.NewMemoryRepo())
	store := sessions.NewMemoryStore()
	mgr := sessions.NewManager(store, userSvc, time.Hour, false)

	svc := NewGoogleService(
		clientID,
		"secret",
		"http://localhost:3001/auth/google/callback",
		"http://localhost:5173/dashboard",
		"http://localhost:5173/login?error=auth_failed",
		userSvc,
		mgr,
	)
	if clientID == "" {
		svc.oauthConfig.ClientSecret = ""
	}

	r := gin.New()
	svc.RegisterRoutes(r.Group(""))
	return authEnv{router: r, svc: svc, userSvc: userSvc, store: store}
}

func TestStartRedirectsToGoogle(t *testing.T) {
	env := newAuthEnv(t, "client-id")

	req := httptest.NewRequest(http.MethodGet, "/auth/google", nil)
	resp := httptest.NewRecorder()
	env.router.ServeHTTP(resp, req)

	if resp.Code != http.StatusFound {
		t.Fatalf("expected 302, got %d", resp.Code)
	}
	location := resp.Header().Get("Location")
	if !strings.Contains(location, "accounts.google.com") {
		t.Fatalf("expected redirect to Google, got %q", location)
	}
	if !strings.Contains(location, "state=") {
		t.Fatalf("expected state parameter in %q", location)
	}
}

func TestStartWithoutCredentials(t *testing.T) {
	env := newAuthEnv(t, "")

	req := httptest.NewRequest(http.MethodGet, "/auth/google", nil)
	resp := httptest.NewRecorder()
	env.router.ServeHTTP(resp, req)

	if resp.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", resp.Code)
	}
	var envelope struct {
		Success bool   `json:"success"`
		Error   string `json:"error"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if envelope.Error != "Google auth is not configured" {
		t.Fatalf("unexpected error: %q", envelope.Error)
	}
}

func TestCallbackRejectsUnknownState(t *testing.T) {
	env := newAuthEnv(t, "client-id")

	req := httptest.NewRequest(http.MethodGet, "/auth/google/callback?state=forged&code=abc", nil)
	resp := httptest.NewRecorder()
	env.router.ServeHTTP(resp, req)

	if resp.Code != http.StatusFound {
		t.Fatalf("expected 302, got %d", resp.Code)
	}
	if got := resp.Header().Get("Location"); got != "http://localhost:5173/login?error=auth_failed" {
		t.Fatalf("expected failure redirect, got %q", got)
	}
}

func TestCallbackRejectsMissingCode(t *testing.T) {
	env := newAuthEnv(t, "client-id")
	env.svc.stateStore.put("known-state", time.Now().Add(time.Minute))

	req := httptest.NewRequest(http.MethodGet, "/auth/google/callback?state=known-state", nil)
	resp := httptest.NewRecorder()
	env.router.ServeHTTP(resp, req)

	if resp.Code != http.StatusFound {
		t.Fatalf("expected 302, got %d", resp.Code)
	}
	if got := resp.Header().Get("Location"); !strings.Contains(got, "error=auth_failed") {
		t.Fatalf("expected failure redirect, got %q", got)
	}
}

func TestMeWithoutSession(t *testing.T) {
	env := newAuthEnv(t, "client-id")

	req := httptest.NewRequest(http.MethodGet, "/auth/me", nil)
	resp := httptest.NewRecorder()
	env.router.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
	var body struct {
		Authenticated bool `json:"authenticated"`
		User          any  `json:"user"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if body.Authenticated {
		t.Fatalf("expected authenticated false")
	}
	if body.User != nil {
		t.Fatalf("expected null user, got %v", body.User)
	}
}

func TestMeWithSession(t *testing.T) {
	env := newAuthEnv(t, "client-id")

	user, err := env.userSvc.UpsertFromAuth(context.Background(), "jane@example.com", "Jane", "https://example.com/a.png", "g-1")
	if err != nil {
		t.Fatalf("seed user: %v", err)
	}
	sess, err := env.store.Create(context.Background(), user.ID, time.Hour)
	if err != nil {
		t.Fatalf("seed session: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/auth/me", nil)
	req.AddCookie(&http.Cookie{Name: sessions.CookieName, Value: sess.Token})
	resp := httptest.NewRecorder()
	env.router.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
	var body struct {
		Authenticated bool `json:"authenticated"`
		User          struct {
			ID       string `json:"id"`
			Email    string `json:"email"`
			Name     string `json:"name"`
			ImageURL string `json:"imageUrl"`
		} `json:"user"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if !body.Authenticated {
		t.Fatalf("expected authenticated true")
	}
	if body.User.Email != "jane@example.com" {
		t.Fatalf("unexpected email %q", body.User.Email)
	}
}

func TestLogoutClearsSession(t *testing.T) {
	env := newAuthEnv(t, "client-id")

	user, err := env.userSvc.UpsertFromAuth(context.Background(), "jane@example.com", "Jane", "", "g-1")
	if err != nil {
		t.Fatalf("seed user: %v", err)
	}
	sess, err := env.store.Create(context.Background(), user.ID, time.Hour)
	if err != nil {
		t.Fatalf("seed session: %v", err)
	}

	req := httptest.NewRequest(http.MethodPost, "/auth/logout", nil)
	req.AddCookie(&http.Cookie{Name: sessions.CookieName, Value: sess.Token})
	resp := httptest.NewRecorder()
	env.router.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
	if _, err := env.store.Get(context.Background(), sess.Token); err == nil {
		t.Fatalf("expected session to be deleted")
	}
}

func TestStateStoreConsumeOnce(t *testing.T) {
	store := newStateStore()
	store.put("s1", time.Now().Add(time.Minute))

	if !store.consume("s1") {
		t.Fatalf("expected first consume to succeed")
	}
	if store.consume("s1") {
		t.Fatalf("expected second consume to fail")
	}
}

func TestStateStoreExpiry(t *testing.T) {
	store := newStateStore()
	store.put("s1", time.Now().Add(-time.Second))

	if store.consume("s1") {
		t.Fatalf("expected expired state to be rejected")
	}
}
