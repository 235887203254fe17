package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

// Auther orchestrates login and registration against the credential store
// and the token service
type Auther struct {
	provider     IdentityProvider
	registrar    IdentityRegistrar
	tokenService TokenService
	logger       Logger
}

// NewAuthenticator returns a new Authenticator
func NewAuthenticator(provider IdentityProvider, registrar IdentityRegistrar, opts Config) *Auther {
	tokenService := NewTokenService(
		[]byte(opts.GetSigningKey()),
		opts.GetTokenExpiration(),
		opts.GetIssuer(),
		opts.GetAudience(),
		defLogger{},
	)

	return &Auther{
		provider:     provider,
		registrar:    registrar,
		tokenService: tokenService,
		logger:       defLogger{},
	}
}

func (s *Auther) WithLogger(logger Logger) *Auther {
	s.logger = logger
	return s
}

// TokenService returns the TokenService instance used by this Authenticator
func (s *Auther) TokenService() TokenService {
	return s.tokenService
}

// Login verifies the credentials and issues a session token. Unknown user
// and bad password are logged distinctly but surfaced as one
// ErrInvalidCredentials so responses cannot enumerate usernames.
func (s *Auther) Login(ctx context.Context, username, password string) (string, Identity, error) {
	identity, err := s.provider.VerifyIdentity(ctx, username, password)
	if err != nil {
		s.logger.Error("login verify identity error", "username", username, "error", err)
		if errors.Is(err, ErrIdentityNotFound) || errors.Is(err, ErrMismatchedHashAndPassword) {
			return "", nil, ErrInvalidCredentials
		}
		return "", nil, err
	}

	token, err := s.tokenService.Generate(identity)
	if err != nil {
		s.logger.Error("login token generation error", "error", err)
		return "", nil, err
	}

	return token, identity, nil
}

// RegisterInput is the shape of a registration request
type RegisterInput struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Register validates the input, creates the identity with its default role
// in one atomic unit, and issues a session token exactly as login does.
func (s *Auther) Register(ctx context.Context, input RegisterInput) (string, Identity, error) {
	username := strings.TrimSpace(input.Username)
	email := strings.TrimSpace(input.Email)

	if username == "" || email == "" {
		return "", nil, fmt.Errorf("username and email are required: %w", ErrNoEmptyString)
	}

	if err := ValidatePasswordComplexity(input.Password); err != nil {
		return "", nil, fmt.Errorf("password %s: %w", err.Error(), ErrWeakPassword)
	}

	hash, err := HashPassword(input.Password)
	if err != nil {
		return "", nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user, err := s.registrar.RegisterIdentity(ctx, username, email, hash)
	if err != nil {
		s.logger.Error("register identity error", "username", username, "error", err)
		return "", nil, err
	}

	identity := IdentityFromUser(user)

	token, err := s.tokenService.Generate(identity)
	if err != nil {
		s.logger.Error("register token generation error", "error", err)
		return "", nil, err
	}

	return token, identity, nil
}

// SessionFromToken validates a raw token and returns its claims
func (s *Auther) SessionFromToken(raw string) (AuthClaims, error) {
	claims, err := s.tokenService.Validate(raw)
	if err != nil {
		s.logger.Debug("session from token validation failed", "error", err)
		return nil, err
	}
	return claims, nil
}

// IdentityFromClaims re-resolves the caller from the stable id claim
func (s *Auther) IdentityFromClaims(ctx context.Context, claims AuthClaims) (Identity, error) {
	return s.provider.FindIdentityByID(ctx, claims.UserID())
}

var _ Authenticator = (*Auther)(nil)
