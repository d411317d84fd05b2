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
	"github.com/MKhiriev/go-blog-engine/internal/store"
	"github.com/MKhiriev/go-blog-engine/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newHandlerWithAuth(t *testing.T, auth service.AuthService) *Handler {
	t.Helper()
	return newTestHandler(t, &service.Services{AuthService: auth})
}

// stubToken returns a models.Token with the given signed string.
func stubToken(signed string) models.Token {
	return models.Token{SignedString: signed}
}

const validRegisterBody = `{"name":"alice","email":"alice@example.com","password":"s3cret"}`
const validLoginBody = `{"email":"alice@example.com","password":"s3cret"}`

// ─────────────────────────────────────────────
// register
// ─────────────────────────────────────────────

// TestRegister_Success verifies that a valid registration request results in
// 200 OK and an Authorization header containing the issued Bearer token.
func TestRegister_Success(t *testing.T) {
	const signedToken = "signed.jwt.token"

	auth := &mockAuthService{
		registerUserFn: func(_ context.Context, request models.RegisterRequest) (models.User, error) {
			assert.Equal(t, "alice@example.com", request.Email)
			return models.User{UserID: 1, Name: request.Name, Email: request.Email}, nil
		},
		createTokenFn: func(_ context.Context, user models.User) (models.Token, error) {
			assert.Equal(t, int64(1), user.UserID)
			return stubToken(signedToken), nil
		},
	}
	h := newHandlerWithAuth(t, auth)

	req := httptest.NewRequest(http.MethodPost, "/api/user/register", strings.NewReader(validRegisterBody))
	rec := httptest.NewRecorder()

	h.register(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Bearer "+signedToken, rec.Header().Get("Authorization"))
}

// TestRegister_InvalidJSON verifies that a malformed request body results in
// 400 Bad Request.
func TestRegister_InvalidJSON(t *testing.T) {
	h := newHandlerWithAuth(t, &mockAuthService{})

	req := httptest.NewRequest(http.MethodPost, "/api/user/register", strings.NewReader("{invalid json}"))
	rec := httptest.NewRecorder()

	h.register(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRegister_InvalidData(t *testing.T) {
	auth := &mockAuthService{
		registerUserFn: func(_ context.Context, _ models.RegisterRequest) (models.User, error) {
			return models.User{}, service.ErrInvalidDataProvided
		},
	}
	h := newHandlerWithAuth(t, auth)

	req := httptest.NewRequest(http.MethodPost, "/api/user/register", strings.NewReader(`{"name":"bob"}`))
	rec := httptest.NewRecorder()

	h.register(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRegister_DuplicateEmail(t *testing.T) {
	auth := &mockAuthService{
		registerUserFn: func(_ context.Context, _ models.RegisterRequest) (models.User, error) {
			return models.User{}, store.ErrEmailAlreadyExists
		},
	}
	h := newHandlerWithAuth(t, auth)

	req := httptest.NewRequest(http.MethodPost, "/api/user/register", strings.NewReader(validRegisterBody))
	rec := httptest.NewRecorder()

	h.register(rec, req)

	require.Equal(t, http.StatusConflict, rec.Code)
	assert.JSONEq(t, `{"message":"this email is already registered","category":"error"}`, rec.Body.String())
}

func TestRegister_TokenCreationFails(t *testing.T) {
	auth := &mockAuthService{
		registerUserFn: func(_ context.Context, request models.RegisterRequest) (models.User, error) {
			return models.User{UserID: 1, Email: request.Email}, nil
		},
		createTokenFn: func(_ context.Context, _ models.User) (models.Token, error) {
			return models.Token{}, service.ErrTokenCreationFailed
		},
	}
	h := newHandlerWithAuth(t, auth)

	req := httptest.NewRequest(http.MethodPost, "/api/user/register", strings.NewReader(validRegisterBody))
	rec := httptest.NewRecorder()

	h.register(rec, req)

	require.Equal(t, http.StatusInternalServerError, rec.Code)
}

// ─────────────────────────────────────────────
// login
// ─────────────────────────────────────────────

func TestLogin_Success(t *testing.T) {
	const signedToken = "signed.jwt.token"

	auth := &mockAuthService{
		loginFn: func(_ context.Context, request models.LoginRequest) (models.User, error) {
			assert.Equal(t, "alice@example.com", request.Email)
			return models.User{UserID: 1, Email: request.Email}, nil
		},
		createTokenFn: func(_ context.Context, _ models.User) (models.Token, error) {
			return stubToken(signedToken), nil
		},
	}
	h := newHandlerWithAuth(t, auth)

	req := httptest.NewRequest(http.MethodPost, "/api/user/login", strings.NewReader(validLoginBody))
	rec := httptest.NewRecorder()

	h.login(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Bearer "+signedToken, rec.Header().Get("Authorization"))
}

func TestLogin_WrongPassword(t *testing.T) {
	auth := &mockAuthService{
		loginFn: func(_ context.Context, _ models.LoginRequest) (models.User, error) {
			return models.User{}, service.ErrWrongPassword
		},
	}
	h := newHandlerWithAuth(t, auth)

	req := httptest.NewRequest(http.MethodPost, "/api/user/login", strings.NewReader(validLoginBody))
	rec := httptest.NewRecorder()

	h.login(rec, req)

	require.Equal(t, http.StatusUnauthorized, rec.Code)
}

// TestLogin_UnknownEmail verifies that an unknown account and a wrong
// password are indistinguishable to the caller.
func TestLogin_UnknownEmail(t *testing.T) {
	auth := &mockAuthService{
		loginFn: func(_ context.Context, _ models.LoginRequest) (models.User, error) {
			return models.User{}, store.ErrUserNotFound
		},
	}
	h := newHandlerWithAuth(t, auth)

	req := httptest.NewRequest(http.MethodPost, "/api/user/login", strings.NewReader(validLoginBody))
	rec := httptest.NewRecorder()

	h.login(rec, req)

	require.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestLogin_InvalidJSON(t *testing.T) {
	h := newHandlerWithAuth(t, &mockAuthService{})

	req := httptest.NewRequest(http.MethodPost, "/api/user/login", strings.NewReader("{invalid json}"))
	rec := httptest.NewRecorder()

	h.login(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
}
