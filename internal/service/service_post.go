package service

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-blog-engine/internal/config"
	"github.com/MKhiriev/go-blog-engine/internal/logger"
	"github.com/MKhiriev/go-blog-engine/internal/store"
	"github.com/MKhiriev/go-blog-engine/models"
	"github.com/go-playground/validator/v10"
)

// postService is the concrete implementation of PostService. It validates
// submissions, rewrites embedded image sources and delegates persistence to a
// PostRepository.
type postService struct {
	// postRepository is the data-access layer used to create and look up posts.
	postRepository store.PostRepository

	// staticBasePath is the URL prefix prepended to embedded image sources
	// before an article body is stored.
	staticBasePath string

	// validate checks incoming requests against their struct tags.
	validate *validator.Validate

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// NewPostService constructs a PostService wired to the given PostRepository.
//
// The returned service is safe for concurrent use; all state is read-only
// after construction.
func NewPostService(postRepository store.PostRepository, cfg config.App, logger *logger.Logger) PostService {
	return &postService{
		postRepository: postRepository,
		staticBasePath: cfg.StaticBasePath,
		validate:       validator.New(validator.WithRequiredStructEnabled()),
		logger:         logger,
	}
}

// AddPost stores a new article.
//
// The request is validated against its struct tags (title at least five
// characters, body longer than ten, slug present). Embedded image sources in
// the body are rewritten to live under the static asset base path, and the
// creation timestamp is assigned server-side.
//
// Returns the persisted post (with a server-assigned PostID) or:
//   - ErrInvalidDataProvided if validation fails.
//   - A wrapped storage error if the repository call fails (e.g. slug already
//     taken — see store.ErrSlugAlreadyExists).
func (p *postService) AddPost(ctx context.Context, request models.AddPostRequest) (models.Post, error) {
	log := logger.FromContext(ctx)

	if err := p.validate.Struct(request); err != nil {
		log.Error().Err(err).Str("url", request.URL).Msg("invalid post data provided")
		return models.Post{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	post := models.Post{
		Title:     request.Title,
		Body:      rewriteImageSources(request.Body, p.staticBasePath),
		URL:       request.URL,
		CreatedAt: time.Now().Unix(),
	}

	createdPost, err := p.postRepository.CreatePost(ctx, post)
	if err != nil {
		log.Err(err).Str("url", post.URL).Msg("post creation ended with error")
		return models.Post{}, fmt.Errorf("post creation ended with error: %w", err)
	}

	return createdPost, nil
}

// GetPost looks up a single article by its slug.
//
// Returns the post or:
//   - ErrInvalidDataProvided if slug is empty.
//   - A wrapped storage error if the lookup fails (e.g. no such article —
//     see store.ErrPostNotFound).
func (p *postService) GetPost(ctx context.Context, slug string) (models.Post, error) {
	log := logger.FromContext(ctx)

	if slug == "" {
		log.Error().Msg("empty slug provided")
		return models.Post{}, ErrInvalidDataProvided
	}

	post, err := p.postRepository.FindPostBySlug(ctx, slug)
	if err != nil {
		log.Err(err).Str("url", slug).Msg("post search by slug failed")
		return models.Post{}, fmt.Errorf("post search by slug failed: %w", err)
	}

	return post, nil
}

// ListPostsSummary returns the front-page listing, newest articles first.
// A storage failure is logged and an empty listing is returned so the caller
// always has something to render.
func (p *postService) ListPostsSummary(ctx context.Context) []models.PostSummary {
	log := logger.FromContext(ctx)

	posts, err := p.postRepository.ListPostsSummary(ctx)
	if err != nil {
		log.Err(err).Msg("listing posts failed")
		return []models.PostSummary{}
	}

	return posts
}
