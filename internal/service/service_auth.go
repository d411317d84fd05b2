package service

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/MKhiriev/go-blog-engine/internal/config"
	"github.com/MKhiriev/go-blog-engine/internal/logger"
	"github.com/MKhiriev/go-blog-engine/internal/store"
	"github.com/MKhiriev/go-blog-engine/internal/utils"
	"github.com/MKhiriev/go-blog-engine/models"
	"github.com/go-playground/validator/v10"
)

// defaultAvatarFile is the fallback image served for accounts that never
// uploaded an avatar, resolved relative to the configured static directory.
const defaultAvatarFile = "images/default.png"

// authService is the concrete implementation of AuthService.
// It handles user registration, credential verification, JWT token lifecycle
// and avatar storage using a UserRepository for persistence and bcrypt for
// password hashing.
type authService struct {
	// userRepository is the data-access layer used to create and look up users.
	userRepository store.UserRepository

	// tokenSignKey is the HMAC secret used to sign and verify JWT tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued JWT.
	// Tokens whose issuer does not match this value are rejected during parsing.
	tokenIssuer string

	// tokenDuration controls how long a newly issued JWT remains valid.
	tokenDuration time.Duration

	// staticDir is the directory the default avatar is read from.
	staticDir string

	// validate checks incoming requests against their struct tags.
	validate *validator.Validate

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// NewAuthService constructs an AuthService wired to the given UserRepository
// and populated with security parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only
// after construction.
func NewAuthService(userRepository store.UserRepository, cfg config.App, files config.Files, logger *logger.Logger) AuthService {
	return &authService{
		userRepository: userRepository,
		tokenSignKey:   cfg.TokenSignKey,
		tokenIssuer:    cfg.TokenIssuer,
		tokenDuration:  cfg.TokenDuration,
		staticDir:      files.StaticDir,
		validate:       validator.New(validator.WithRequiredStructEnabled()),
		logger:         logger,
	}
}

// RegisterUser creates a new user account.
//
// The request is validated against its struct tags (name at least four
// characters, well-formed email, password at least four characters), the
// password is bcrypt-hashed, and persistence is delegated to the
// UserRepository. New accounts start without an avatar.
//
// Returns the persisted user (with a server-assigned UserID) or:
//   - ErrInvalidDataProvided if validation fails.
//   - A wrapped storage error if the repository call fails (e.g. email
//     already taken — see store.ErrEmailAlreadyExists).
func (a *authService) RegisterUser(ctx context.Context, request models.RegisterRequest) (models.User, error) {
	log := logger.FromContext(ctx)

	if err := a.validate.Struct(request); err != nil {
		log.Error().Err(err).Str("email", request.Email).Msg("invalid registration data provided")
		return models.User{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	passwordHash, err := utils.HashPassword(request.Password)
	if err != nil {
		log.Err(err).Msg("password hashing failed")
		return models.User{}, fmt.Errorf("password hashing failed: %w", err)
	}

	user := models.User{
		Name:         request.Name,
		Email:        request.Email,
		PasswordHash: passwordHash,
		CreatedAt:    time.Now().Unix(),
	}

	registeredUser, err := a.userRepository.CreateUser(ctx, user)
	if err != nil {
		log.Err(err).Str("email", user.Email).Msg("user creation ended with error")
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	return registeredUser, nil
}

// Login authenticates an existing user.
//
// The account is looked up by email and the supplied password is compared
// against the stored bcrypt hash.
//
// Returns the authenticated user record or:
//   - ErrInvalidDataProvided if validation fails.
//   - A wrapped storage error if the lookup fails (e.g. unknown email — see
//     store.ErrUserNotFound).
//   - ErrWrongPassword if the password does not match.
func (a *authService) Login(ctx context.Context, request models.LoginRequest) (models.User, error) {
	log := logger.FromContext(ctx)

	if err := a.validate.Struct(request); err != nil {
		log.Error().Err(err).Str("email", request.Email).Msg("invalid login data provided")
		return models.User{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	foundUser, err := a.userRepository.FindUserByEmail(ctx, request.Email)
	if err != nil {
		log.Err(err).Str("email", request.Email).Msg("user search by email failed")
		return models.User{}, fmt.Errorf("user search by email failed: %w", err)
	}

	if err := utils.CheckPasswordHash(foundUser.PasswordHash, request.Password); err != nil {
		log.Error().
			Int64("id", foundUser.UserID).
			Str("email", foundUser.Email).
			Msg("wrong password")
		return models.User{}, ErrWrongPassword
	}

	return foundUser, nil
}

// CreateToken issues a signed JWT for the given user.
//
// The token is signed with the configured tokenSignKey, carries the
// configured tokenIssuer as the "iss" claim, and expires after tokenDuration.
//
// Returns the token model on success or a wrapped ErrTokenCreationFailed if
// JWT generation fails.
func (a *authService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	token, err := utils.GenerateJWTToken(a.tokenIssuer, user.UserID, a.tokenDuration, a.tokenSignKey)
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// ParseToken validates and parses a raw JWT string.
//
// It delegates to utils.ValidateAndParseJWTToken, verifying the signature and
// the issuer claim. Any validation failure (expired, wrong issuer, malformed)
// is normalised to ErrTokenIsExpiredOrInvalid so that callers do not need to
// inspect low-level JWT errors.
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer)
	if err != nil {
		return models.Token{}, ErrTokenIsExpiredOrInvalid
	}

	return token, nil
}

// UpdateAvatar replaces the avatar blob of the given user.
//
// Returns nil on success or:
//   - ErrEmptyAvatar if the payload is empty; nothing is written.
//   - ErrUnsupportedImageType if the uploaded file name does not carry a
//     .png/.PNG extension.
//   - A wrapped storage error if the update fails (e.g. no such user — see
//     store.ErrUserNotFound).
func (a *authService) UpdateAvatar(ctx context.Context, data []byte, fileName string, userID int64) error {
	log := logger.FromContext(ctx)

	if len(data) == 0 {
		log.Error().Int64("userID", userID).Msg("empty avatar payload provided")
		return ErrEmptyAvatar
	}

	if !strings.EqualFold(filepath.Ext(fileName), ".png") {
		log.Error().Int64("userID", userID).Str("fileName", fileName).Msg("unsupported avatar image type")
		return ErrUnsupportedImageType
	}

	if err := a.userRepository.UpdateAvatar(ctx, data, userID); err != nil {
		log.Err(err).Int64("userID", userID).Msg("avatar update ended with error")
		return fmt.Errorf("avatar update ended with error: %w", err)
	}

	return nil
}

// GetAvatar returns the avatar blob of the given user.
//
// Accounts without an uploaded avatar fall back to the default image from the
// static directory; a missing default file yields an empty blob rather than
// an error.
//
// Returns a wrapped storage error if the user lookup fails (e.g. no such
// user — see store.ErrUserNotFound).
func (a *authService) GetAvatar(ctx context.Context, userID int64) ([]byte, error) {
	log := logger.FromContext(ctx)

	user, err := a.userRepository.FindUserByID(ctx, userID)
	if err != nil {
		log.Err(err).Int64("userID", userID).Msg("user search by id failed")
		return nil, fmt.Errorf("user search by id failed: %w", err)
	}

	if len(user.Avatar) > 0 {
		return user.Avatar, nil
	}

	defaultAvatar, err := os.ReadFile(filepath.Join(a.staticDir, defaultAvatarFile))
	if err != nil {
		log.Warn().Err(err).Str("staticDir", a.staticDir).Msg("default avatar is not readable")
		return []byte{}, nil
	}

	return defaultAvatar, nil
}
