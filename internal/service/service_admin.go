package service

import (
	"context"
	"crypto/subtle"
	"fmt"

	"github.com/MKhiriev/go-blog-engine/internal/config"
	"github.com/MKhiriev/go-blog-engine/internal/logger"
	"github.com/MKhiriev/go-blog-engine/internal/session"
	"github.com/MKhiriev/go-blog-engine/internal/store"
	"github.com/MKhiriev/go-blog-engine/models"
)

// adminService is the concrete implementation of AdminService. It checks the
// configured credential pair, keeps admin sessions in the in-memory registry
// and serves the admin panel listings.
type adminService struct {
	postRepository store.PostRepository
	userRepository store.UserRepository

	// sessions tracks live admin sessions; a session ID present and unexpired
	// in the registry means "logged in".
	sessions *session.Registry

	// username and password form the single admin account; both comparisons
	// run in constant time.
	username string
	password string

	logger *logger.Logger
}

// NewAdminService constructs an AdminService backed by the given repositories
// and session registry, with the credential pair taken from cfg.
func NewAdminService(storages store.Storages, sessions *session.Registry, cfg config.Admin, logger *logger.Logger) AdminService {
	return &adminService{
		postRepository: storages.PostRepository,
		userRepository: storages.UserRepository,
		sessions:       sessions,
		username:       cfg.Username,
		password:       cfg.Password,
		logger:         logger,
	}
}

// Login checks the supplied credential pair against the configured admin
// account and, on success, registers a new session.
//
// Returns the opaque session identifier or ErrWrongAdminCredentials. Both
// halves of the pair are always compared so timing reveals nothing about
// which one was wrong.
func (s *adminService) Login(ctx context.Context, username, password string) (string, error) {
	log := logger.FromContext(ctx)

	usernameMatch := subtle.ConstantTimeCompare([]byte(username), []byte(s.username))
	passwordMatch := subtle.ConstantTimeCompare([]byte(password), []byte(s.password))

	if usernameMatch&passwordMatch != 1 {
		log.Warn().Str("username", username).Msg("admin login with wrong credentials")
		return "", ErrWrongAdminCredentials
	}

	return s.sessions.Create(), nil
}

// Logout removes the session with the given identifier. Logging out an
// unknown or expired session is a no-op.
func (s *adminService) Logout(ctx context.Context, sessionID string) {
	s.sessions.Delete(sessionID)
}

// IsLoggedIn reports whether the given session identifier belongs to a live
// admin session.
func (s *adminService) IsLoggedIn(ctx context.Context, sessionID string) bool {
	return s.sessions.Active(sessionID)
}

// ListAllPosts returns every stored article for the admin panel.
func (s *adminService) ListAllPosts(ctx context.Context) ([]models.PostSummary, error) {
	log := logger.FromContext(ctx)

	posts, err := s.postRepository.ListAllPosts(ctx)
	if err != nil {
		log.Err(err).Msg("listing all posts failed")
		return nil, fmt.Errorf("listing all posts failed: %w", err)
	}

	return posts, nil
}

// ListAllUsers returns every registered account for the admin panel.
func (s *adminService) ListAllUsers(ctx context.Context) ([]models.UserSummary, error) {
	log := logger.FromContext(ctx)

	users, err := s.userRepository.ListAllUsers(ctx)
	if err != nil {
		log.Err(err).Msg("listing all users failed")
		return nil, fmt.Errorf("listing all users failed: %w", err)
	}

	return users, nil
}
