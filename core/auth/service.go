// ABOUTME: Auth service handles registration, login and bearer token resolution
// ABOUTME: Hashes passwords with bcrypt and caches token lookups in the session cache

package auth

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"careercompass-api/core/domain"
	coreerrors "careercompass-api/core/errors"
	"careercompass-api/core/interfaces"
)

const (
	// DefaultSessionTTL bounds how long a token lookup stays cached
	DefaultSessionTTL = 24 * time.Hour

	sessionKeyPrefix = "session:"
	bearerPrefix     = "Bearer "
)

// Session is the result of a successful login
type Session struct {
	Token  string
	UserID string
}

// AuthService implements interfaces.Authenticator over the user store
type AuthService struct {
	deps          interfaces.Dependencies
	sessionTTL    time.Duration
	cacheSessions bool
	hashCost      int
}

// Option configures an AuthService
type Option func(*AuthService)

// WithSessionTTL sets the session cache TTL
func WithSessionTTL(ttl time.Duration) Option {
	return func(s *AuthService) {
		if ttl > 0 {
			s.sessionTTL = ttl
		}
	}
}

// WithSessionCache toggles caching of token lookups
func WithSessionCache(enabled bool) Option {
	return func(s *AuthService) {
		s.cacheSessions = enabled
	}
}

// WithHashCost sets the bcrypt cost
func WithHashCost(cost int) Option {
	return func(s *AuthService) {
		s.hashCost = cost
	}
}

// NewAuthService creates a new auth service instance
func NewAuthService(deps interfaces.Dependencies, opts ...Option) *AuthService {
	s := &AuthService{
		deps:          deps,
		sessionTTL:    DefaultSessionTTL,
		cacheSessions: true,
		hashCost:      bcrypt.DefaultCost,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Register creates a new account. An empty role selects student.
func (s *AuthService) Register(ctx context.Context, name, email, password string, role domain.Role) (*domain.User, error) {
	if password == "" {
		return nil, &coreerrors.ValidationError{Field: "password", Message: "password is required"}
	}

	user, err := domain.NewUser(name, email, "", role)
	if err != nil {
		return nil, err
	}

	existing, err := s.deps.Users.GetByEmail(ctx, user.Email)
	if err != nil {
		return nil, coreerrors.WrapError(err, "failed to look up email")
	}
	if existing != nil {
		return nil, &coreerrors.ConflictError{Resource: "user", Field: "email", Value: user.Email}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.hashCost)
	if err != nil {
		if errors.Is(err, bcrypt.ErrPasswordTooLong) {
			return nil, &coreerrors.ValidationError{Field: "password", Message: "password is too long"}
		}
		return nil, coreerrors.WrapError(err, "failed to hash password")
	}
	user.PasswordHash = string(hash)

	if err := s.deps.Users.Create(ctx, user); err != nil {
		return nil, err
	}

	s.log().Info("User registered", map[string]interface{}{
		"user_id": user.ID,
		"role":    string(user.Role),
	})

	return user, nil
}

// Login verifies credentials and issues a fresh token, revoking the previous one
func (s *AuthService) Login(ctx context.Context, email, password string) (*Session, error) {
	email = strings.TrimSpace(email)
	if email == "" {
		return nil, &coreerrors.ValidationError{Field: "email", Message: "email is required"}
	}
	if password == "" {
		return nil, &coreerrors.ValidationError{Field: "password", Message: "password is required"}
	}

	user, err := s.deps.Users.GetByEmail(ctx, email)
	if err != nil {
		return nil, coreerrors.WrapError(err, "failed to look up user")
	}
	if user == nil || bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		s.log().Warn("Login rejected", map[string]interface{}{
			"email": email,
		})
		return nil, &coreerrors.UnauthorizedError{Reason: "invalid credentials"}
	}

	previous := user.Token
	token := uuid.New().String()
	if err := s.deps.Users.UpdateToken(ctx, user.ID, token); err != nil {
		return nil, coreerrors.WrapError(err, "failed to store token")
	}
	user.Token = token

	if previous != "" {
		s.forgetSession(ctx, previous)
	}
	s.rememberSession(ctx, token, user.Identity())

	s.log().Info("User logged in", map[string]interface{}{
		"user_id": user.ID,
	})

	return &Session{Token: token, UserID: user.ID}, nil
}

// Authenticate resolves an Authorization header value or raw token to an identity.
// Unknown or empty tokens yield (nil, nil).
func (s *AuthService) Authenticate(ctx context.Context, token string) (*domain.Identity, error) {
	token = strings.TrimSpace(strings.TrimPrefix(token, bearerPrefix))
	if token == "" {
		return nil, nil
	}

	if identity := s.cachedSession(ctx, token); identity != nil {
		return identity, nil
	}

	user, err := s.deps.Users.GetByToken(ctx, token)
	if err != nil {
		return nil, coreerrors.WrapError(err, "failed to resolve token")
	}
	if user == nil {
		return nil, nil
	}

	identity := user.Identity()
	s.rememberSession(ctx, token, identity)
	return &identity, nil
}

// Profile returns the identity for userID when token belongs to that same user
func (s *AuthService) Profile(ctx context.Context, token, userID string) (*domain.Identity, error) {
	identity, err := s.Authenticate(ctx, token)
	if err != nil {
		return nil, err
	}
	if identity == nil || identity.UserID != userID {
		return nil, &coreerrors.UnauthorizedError{}
	}
	return identity, nil
}

func (s *AuthService) cachedSession(ctx context.Context, token string) *domain.Identity {
	if !s.cacheSessions || s.deps.Cache == nil {
		return nil
	}

	data, err := s.deps.Cache.Get(ctx, sessionKeyPrefix+token)
	if err != nil {
		if !errors.Is(err, interfaces.ErrCacheMiss) {
			s.log().Warn("Session cache read failed", map[string]interface{}{
				"error": err.Error(),
			})
		}
		return nil
	}

	var identity domain.Identity
	if err := json.Unmarshal(data, &identity); err != nil || identity.UserID == "" {
		s.forgetSession(ctx, token)
		return nil
	}
	return &identity
}

func (s *AuthService) rememberSession(ctx context.Context, token string, identity domain.Identity) {
	if !s.cacheSessions || s.deps.Cache == nil {
		return
	}

	data, err := json.Marshal(identity)
	if err != nil {
		return
	}
	if err := s.deps.Cache.Set(ctx, sessionKeyPrefix+token, data, s.sessionTTL); err != nil {
		s.log().Warn("Session cache write failed", map[string]interface{}{
			"error": err.Error(),
		})
	}
}

func (s *AuthService) forgetSession(ctx context.Context, token string) {
	if s.deps.Cache == nil {
		return
	}
	if err := s.deps.Cache.Delete(ctx, sessionKeyPrefix+token); err != nil {
		s.log().Warn("Session cache delete failed", map[string]interface{}{
			"error": err.Error(),
		})
	}
}

func (s *AuthService) log() interfaces.Logger {
	if s.deps.Logger != nil {
		return s.deps.Logger
	}
	return interfaces.NopLogger{}
}
