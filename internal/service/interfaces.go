package service

import (
	"context"

	"github.com/MKhiriev/go-blog-engine/models"
)

// PostService covers the public article operations: submission with
// embedded-image rewriting, single-article lookup and the front-page listing.
type PostService interface {
	AddPost(ctx context.Context, request models.AddPostRequest) (models.Post, error)
	GetPost(ctx context.Context, slug string) (models.Post, error)

	// ListPostsSummary never fails from the caller's point of view: a storage
	// error is logged and an empty listing is returned.
	ListPostsSummary(ctx context.Context) []models.PostSummary
}

// AuthService handles account registration, credential verification, JWT
// token lifecycle and the per-user avatar blob.
type AuthService interface {
	RegisterUser(ctx context.Context, request models.RegisterRequest) (models.User, error)
	Login(ctx context.Context, request models.LoginRequest) (models.User, error)

	CreateToken(ctx context.Context, user models.User) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)

	UpdateAvatar(ctx context.Context, data []byte, fileName string, userID int64) error
	GetAvatar(ctx context.Context, userID int64) ([]byte, error)
}

// AdminService gates the admin panel behind a configured credential pair and
// exposes the panel's listings.
type AdminService interface {
	Login(ctx context.Context, username, password string) (string, error)
	Logout(ctx context.Context, sessionID string)
	IsLoggedIn(ctx context.Context, sessionID string) bool

	ListAllPosts(ctx context.Context) ([]models.PostSummary, error)
	ListAllUsers(ctx context.Context) ([]models.UserSummary, error)
}
