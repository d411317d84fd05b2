// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"testing"
	"time"

	"github.com/MKhiriev/go-blog-engine/internal/logger"
	"github.com/MKhiriev/go-blog-engine/internal/session"
	"github.com/MKhiriev/go-blog-engine/internal/utils"
	"github.com/MKhiriev/go-blog-engine/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestAdminService(posts *mockPostRepository, users *mockUserRepository) *adminService {
	return &adminService{
		postRepository: posts,
		userRepository: users,
		sessions:       session.NewRegistry(time.Hour, utils.NewUUIDGenerator(), logger.Nop()),
		username:       "admin",
		password:       "hunter2",
		logger:         logger.Nop(),
	}
}

func TestAdminService_LoginLogoutCycle(t *testing.T) {
	svc := newTestAdminService(&mockPostRepository{}, &mockUserRepository{})
	ctx := context.Background()

	sessionID, err := svc.Login(ctx, "admin", "hunter2")
	require.NoError(t, err)
	require.NotEmpty(t, sessionID)
	assert.True(t, svc.IsLoggedIn(ctx, sessionID))

	svc.Logout(ctx, sessionID)
	assert.False(t, svc.IsLoggedIn(ctx, sessionID))

	// logging out again is a no-op
	svc.Logout(ctx, sessionID)
}

func TestAdminService_Login_WrongCredentials(t *testing.T) {
	svc := newTestAdminService(&mockPostRepository{}, &mockUserRepository{})
	ctx := context.Background()

	tests := []struct {
		name     string
		username string
		password string
	}{
		{name: "wrong password", username: "admin", password: "wrong"},
		{name: "wrong username", username: "root", password: "hunter2"},
		{name: "both wrong", username: "root", password: "wrong"},
		{name: "both empty", username: "", password: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sessionID, err := svc.Login(ctx, tt.username, tt.password)
			require.ErrorIs(t, err, ErrWrongAdminCredentials)
			assert.Empty(t, sessionID)
		})
	}
}

func TestAdminService_IsLoggedIn_UnknownSession(t *testing.T) {
	svc := newTestAdminService(&mockPostRepository{}, &mockUserRepository{})

	assert.False(t, svc.IsLoggedIn(context.Background(), "no-such-session"))
}

func TestAdminService_ListAllPosts(t *testing.T) {
	expected := []models.PostSummary{{PostID: 1, Title: "one", URL: "one"}}
	posts := &mockPostRepository{
		listAllPostsFn: func(_ context.Context) ([]models.PostSummary, error) {
			return expected, nil
		},
	}
	svc := newTestAdminService(posts, &mockUserRepository{})

	got, err := svc.ListAllPosts(context.Background())

	require.NoError(t, err)
	assert.Equal(t, expected, got)
}

func TestAdminService_ListAllPosts_StorageError(t *testing.T) {
	posts := &mockPostRepository{
		listAllPostsFn: func(_ context.Context) ([]models.PostSummary, error) {
			return nil, errStorage
		},
	}
	svc := newTestAdminService(posts, &mockUserRepository{})

	_, err := svc.ListAllPosts(context.Background())

	require.ErrorIs(t, err, errStorage)
}

func TestAdminService_ListAllUsers(t *testing.T) {
	expected := []models.UserSummary{{Name: "alice", Email: "alice@example.com"}}
	users := &mockUserRepository{
		listAllUsersFn: func(_ context.Context) ([]models.UserSummary, error) {
			return expected, nil
		},
	}
	svc := newTestAdminService(&mockPostRepository{}, users)

	got, err := svc.ListAllUsers(context.Background())

	require.NoError(t, err)
	assert.Equal(t, expected, got)
}

func TestAdminService_ListAllUsers_StorageError(t *testing.T) {
	users := &mockUserRepository{
		listAllUsersFn: func(_ context.Context) ([]models.UserSummary, error) {
			return nil, errStorage
		},
	}
	svc := newTestAdminService(&mockPostRepository{}, users)

	_, err := svc.ListAllUsers(context.Background())

	require.ErrorIs(t, err, errStorage)
}
