// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/MKhiriev/go-blog-engine/internal/service"
	"github.com/MKhiriev/go-blog-engine/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newHandlerWithAdmin(t *testing.T, admin service.AdminService) *Handler {
	t.Helper()
	return newTestHandler(t, &service.Services{AdminService: admin})
}

// sessionCookie extracts the admin session cookie from a recorded response.
func sessionCookie(t *testing.T, rec *httptest.ResponseRecorder) *http.Cookie {
	t.Helper()
	for _, cookie := range rec.Result().Cookies() {
		if cookie.Name == adminSessionCookie {
			return cookie
		}
	}
	t.Fatalf("no %q cookie in response", adminSessionCookie)
	return nil
}

// ─────────────────────────────────────────────
// adminLogin
// ─────────────────────────────────────────────

func TestAdminLogin_Success(t *testing.T) {
	admin := &mockAdminService{
		loginFn: func(_ context.Context, username, password string) (string, error) {
			assert.Equal(t, "admin", username)
			assert.Equal(t, "hunter2", password)
			return "session-id-1", nil
		},
	}
	h := newHandlerWithAdmin(t, admin)

	req := httptest.NewRequest(http.MethodPost, "/api/admin/login", strings.NewReader(`{"username":"admin","password":"hunter2"}`))
	rec := httptest.NewRecorder()

	h.adminLogin(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	cookie := sessionCookie(t, rec)
	assert.Equal(t, "session-id-1", cookie.Value)
	assert.True(t, cookie.HttpOnly)
}

func TestAdminLogin_WrongCredentials(t *testing.T) {
	admin := &mockAdminService{
		loginFn: func(_ context.Context, _, _ string) (string, error) {
			return "", service.ErrWrongAdminCredentials
		},
	}
	h := newHandlerWithAdmin(t, admin)

	req := httptest.NewRequest(http.MethodPost, "/api/admin/login", strings.NewReader(`{"username":"admin","password":"wrong"}`))
	rec := httptest.NewRecorder()

	h.adminLogin(rec, req)

	require.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Empty(t, rec.Result().Cookies())
}

func TestAdminLogin_InvalidJSON(t *testing.T) {
	h := newHandlerWithAdmin(t, &mockAdminService{})

	req := httptest.NewRequest(http.MethodPost, "/api/admin/login", strings.NewReader("{invalid json}"))
	rec := httptest.NewRecorder()

	h.adminLogin(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
}

// ─────────────────────────────────────────────
// adminLogout
// ─────────────────────────────────────────────

func TestAdminLogout_RemovesSessionAndExpiresCookie(t *testing.T) {
	var loggedOut string
	admin := &mockAdminService{
		logoutFn: func(_ context.Context, sessionID string) {
			loggedOut = sessionID
		},
	}
	h := newHandlerWithAdmin(t, admin)

	req := httptest.NewRequest(http.MethodPost, "/api/admin/logout", nil)
	req.AddCookie(&http.Cookie{Name: adminSessionCookie, Value: "session-id-1"})
	rec := httptest.NewRecorder()

	h.adminLogout(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "session-id-1", loggedOut)

	cookie := sessionCookie(t, rec)
	assert.Empty(t, cookie.Value)
	assert.Negative(t, cookie.MaxAge)
}

func TestAdminLogout_WithoutCookie(t *testing.T) {
	h := newHandlerWithAdmin(t, &mockAdminService{})

	req := httptest.NewRequest(http.MethodPost, "/api/admin/logout", nil)
	rec := httptest.NewRecorder()

	h.adminLogout(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
}

// ─────────────────────────────────────────────
// adminOnly middleware
// ─────────────────────────────────────────────

func TestAdminOnly_LiveSessionPassesThrough(t *testing.T) {
	admin := &mockAdminService{
		isLoggedInFn: func(_ context.Context, sessionID string) bool {
			return sessionID == "live-session"
		},
	}
	h := newHandlerWithAdmin(t, admin)

	called := false
	next := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		called = true
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/api/admin/posts", nil)
	req.AddCookie(&http.Cookie{Name: adminSessionCookie, Value: "live-session"})
	rec := httptest.NewRecorder()

	h.adminOnly(next).ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, called)
}

func TestAdminOnly_RejectsWithoutSession(t *testing.T) {
	admin := &mockAdminService{
		isLoggedInFn: func(_ context.Context, _ string) bool {
			return false
		},
	}
	h := newHandlerWithAdmin(t, admin)

	next := http.HandlerFunc(func(_ http.ResponseWriter, _ *http.Request) {
		t.Fatal("next handler must not be called")
	})

	tests := []struct {
		name   string
		cookie *http.Cookie
	}{
		{name: "no cookie", cookie: nil},
		{name: "expired session", cookie: &http.Cookie{Name: adminSessionCookie, Value: "stale-session"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/api/admin/posts", nil)
			if tt.cookie != nil {
				req.AddCookie(tt.cookie)
			}
			rec := httptest.NewRecorder()

			h.adminOnly(next).ServeHTTP(rec, req)

			require.Equal(t, http.StatusUnauthorized, rec.Code)
			assert.Equal(t, "/api/admin/login", rec.Header().Get("Location"))
		})
	}
}

// ─────────────────────────────────────────────
// admin listings
// ─────────────────────────────────────────────

func TestAdminListPosts_Success(t *testing.T) {
	admin := &mockAdminService{
		listAllPostsFn: func(_ context.Context) ([]models.PostSummary, error) {
			return []models.PostSummary{{PostID: 1, Title: "one", Body: "body one", URL: "one"}}, nil
		},
	}
	h := newHandlerWithAdmin(t, admin)

	req := httptest.NewRequest(http.MethodGet, "/api/admin/posts", nil)
	rec := httptest.NewRecorder()

	h.adminListPosts(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"posts":[{"id":1,"title":"one","body":"body one","url":"one"}],"length":1}`, rec.Body.String())
}

func TestAdminListPosts_StorageError(t *testing.T) {
	admin := &mockAdminService{
		listAllPostsFn: func(_ context.Context) ([]models.PostSummary, error) {
			return nil, errStorage
		},
	}
	h := newHandlerWithAdmin(t, admin)

	req := httptest.NewRequest(http.MethodGet, "/api/admin/posts", nil)
	rec := httptest.NewRecorder()

	h.adminListPosts(rec, req)

	require.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestAdminListUsers_Success(t *testing.T) {
	admin := &mockAdminService{
		listAllUsersFn: func(_ context.Context) ([]models.UserSummary, error) {
			return []models.UserSummary{{Name: "alice", Email: "alice@example.com"}}, nil
		},
	}
	h := newHandlerWithAdmin(t, admin)

	req := httptest.NewRequest(http.MethodGet, "/api/admin/users", nil)
	rec := httptest.NewRecorder()

	h.adminListUsers(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"users":[{"name":"alice","email":"alice@example.com"}],"length":1}`, rec.Body.String())
}

func TestAdminListUsers_StorageError(t *testing.T) {
	admin := &mockAdminService{
		listAllUsersFn: func(_ context.Context) ([]models.UserSummary, error) {
			return nil, errStorage
		},
	}
	h := newHandlerWithAdmin(t, admin)

	req := httptest.NewRequest(http.MethodGet, "/api/admin/users", nil)
	rec := httptest.NewRecorder()

	h.adminListUsers(rec, req)

	require.Equal(t, http.StatusInternalServerError, rec.Code)
}
