package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"citizen_registry/internal/domain"
	"citizen_registry/internal/utils"

	"golang.org/x/crypto/bcrypt"
)

// DefaultTokenTTL is the validity window of issued session tokens
const DefaultTokenTTL = 24 * time.Hour

// Session is the result of a successful login
type Session struct {
	Token     string
	ExpiresAt time.Time
	User      *domain.User
}

// Principal is the identity carried by a verified token
type Principal struct {
	UserID   uint
	Username string
	Role     string
}

// AuthService verifies credentials and issues and checks stateless session tokens.
// It keeps no state between calls; any instance holding the secret can verify a token.
type AuthService struct {
	users  UserStore
	secret string
	ttl    time.Duration
	now    func() time.Time
}

// AuthOption configures an AuthService
type AuthOption func(*AuthService)

// WithTokenTTL overrides the token validity window
func WithTokenTTL(ttl time.Duration) AuthOption {
	return func(s *AuthService) {
		if ttl > 0 {
			s.ttl = ttl
		}
	}
}

// WithAuthClock overrides the issuance clock
func WithAuthClock(now func() time.Time) AuthOption {
	return func(s *AuthService) { s.now = now }
}

// NewAuthService creates an auth service signing tokens with secret
func NewAuthService(users UserStore, secret string, opts ...AuthOption) (*AuthService, error) {
	if users == nil {
		return nil, errors.New("user store is required")
	}
	if secret == "" {
		return nil, errors.New("signing secret is required")
	}
	s := &AuthService{users: users, secret: secret, ttl: DefaultTokenTTL, now: time.Now}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// Authenticate checks username and password and issues a session token.
// Unknown users and wrong passwords both fail with ErrInvalidCredentials.
func (s *AuthService) Authenticate(ctx context.Context, username, password string) (*Session, error) {
	user, err := s.users.FindByUsername(ctx, username)
	if err != nil {
		err = translate(err)
		if errors.Is(err, ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("authenticate: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	token, expiresAt, err := utils.GenerateJWT(user.ID, user.Username, user.Role, s.secret, s.now(), s.ttl)
	if err != nil {
		return nil, fmt.Errorf("sign token: %w", err)
	}
	return &Session{Token: token, ExpiresAt: expiresAt, User: user}, nil
}

// Authorize verifies a token's signature and expiry and returns its principal
func (s *AuthService) Authorize(token string) (*Principal, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return nil, ErrMissingToken
	}
	claims, err := utils.ParseJWT(token, s.secret)
	if err != nil {
		return nil, errors.Join(ErrInvalidToken, err)
	}
	return &Principal{UserID: claims.UserID, Username: claims.Username, Role: claims.Role}, nil
}
