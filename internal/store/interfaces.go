package store

import (
	"context"

	"github.com/MKhiriev/go-blog-engine/models"
)

// PostRepository is the persistence contract for articles.
type PostRepository interface {
	CreatePost(ctx context.Context, post models.Post) (models.Post, error)
	FindPostBySlug(ctx context.Context, slug string) (models.Post, error)
	ListPostsSummary(ctx context.Context) ([]models.PostSummary, error)
	ListAllPosts(ctx context.Context) ([]models.PostSummary, error)
}

// UserRepository is the persistence contract for user accounts.
type UserRepository interface {
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	FindUserByID(ctx context.Context, userID int64) (models.User, error)
	FindUserByEmail(ctx context.Context, email string) (models.User, error)
	UpdateAvatar(ctx context.Context, avatar []byte, userID int64) error
	ListAllUsers(ctx context.Context) ([]models.UserSummary, error)
}
