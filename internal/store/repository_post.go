package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-blog-engine/internal/logger"
	"github.com/MKhiriev/go-blog-engine/models"
)

// postRepository is the SQL-backed implementation of [PostRepository].
// It handles article creation and lookup against the "posts" table.
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type postRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewPostRepository constructs a [PostRepository] backed by the provided
// database connection and logger.
func NewPostRepository(db *DB, logger *logger.Logger) PostRepository {
	logger.Debug().Msg("creating post repository")
	return &postRepository{
		db:     db,
		logger: logger,
	}
}

// CreatePost persists a new article and returns the fully populated
// [models.Post] with the server-assigned PostID.
//
// The INSERT relies on the UNIQUE index on posts.url: a conflicting slug
// surfaces as a driver-level unique violation and is mapped to
// [ErrSlugAlreadyExists]. There is no separate existence check, so two
// concurrent writers racing on the same slug cannot both succeed.
func (r *postRepository) CreatePost(ctx context.Context, post models.Post) (models.Post, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, createPost, post.Title, post.Body, post.URL, post.CreatedAt)

	if err := row.Err(); err != nil {
		log.Err(err).Str("func", "*postRepository.CreatePost").Msg("error: insert failed")

		if isUniqueViolation(err) {
			return models.Post{}, ErrSlugAlreadyExists
		}
		return models.Post{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	// scan saved post from db
	if err := row.Scan(&post.PostID, &post.Title, &post.Body, &post.URL, &post.CreatedAt); err != nil {
		log.Err(err).Str("func", "*postRepository.CreatePost").Msg("error: scanning error")

		if isUniqueViolation(err) {
			return models.Post{}, ErrSlugAlreadyExists
		}
		return models.Post{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return post, nil
}

// FindPostBySlug retrieves the post whose URL slug equals slug.
//
// An empty result set is mapped to [ErrPostNotFound]; any other driver
// error is wrapped so that callers can distinguish "not found" from a
// storage failure via [errors.Is].
func (r *postRepository) FindPostBySlug(ctx context.Context, slug string) (models.Post, error) {
	log := logger.FromContext(ctx)

	var post models.Post
	row := r.db.QueryRowContext(ctx, findPostBySlug, slug)

	if err := row.Err(); err != nil {
		log.Err(err).Str("func", "*postRepository.FindPostBySlug").Msg("error: query failed")
		return models.Post{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	if err := row.Scan(&post.PostID, &post.Title, &post.Body, &post.URL, &post.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Post{}, ErrPostNotFound
		}

		log.Err(err).Str("func", "*postRepository.FindPostBySlug").Msg("error: scanning error")
		return models.Post{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return post, nil
}

// ListPostsSummary returns the listing projection of every post ordered by
// creation time, newest first.
func (r *postRepository) ListPostsSummary(ctx context.Context) ([]models.PostSummary, error) {
	return r.listPosts(ctx, true)
}

// ListAllPosts returns the listing projection of every post in insertion
// order. Used by the admin panel.
func (r *postRepository) ListAllPosts(ctx context.Context) ([]models.PostSummary, error) {
	return r.listPosts(ctx, false)
}

func (r *postRepository) listPosts(ctx context.Context, newestFirst bool) ([]models.PostSummary, error) {
	log := logger.FromContext(ctx)

	builder := r.db.sb.Select("id", "title", "body", "url").From("posts")
	if newestFirst {
		builder = builder.OrderBy("created_at DESC")
	}

	query, args, err := builder.ToSql()
	if err != nil {
		log.Err(err).Str("func", "*postRepository.listPosts").Msg("error: building query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*postRepository.listPosts").Msg("error: query failed")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	var posts []models.PostSummary
	for rows.Next() {
		var p models.PostSummary
		if err := rows.Scan(&p.PostID, &p.Title, &p.Body, &p.URL); err != nil {
			log.Err(err).Str("func", "*postRepository.listPosts").Msg("error: scanning error")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		posts = append(posts, p)
	}

	if err := rows.Err(); err != nil {
		log.Err(err).Str("func", "*postRepository.listPosts").Msg("error: rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return posts, nil
}
