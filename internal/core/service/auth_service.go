package service

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"

	"github.com/simfut/league-api/internal/core/domain"
	"github.com/simfut/league-api/internal/core/ports"
)

// AuthService implements registration and login on top of the user
// repository, password hasher and token service.
type AuthService struct {
	repo   ports.UserRepository
	hasher PasswordHasher
	tokens ports.TokenService
	logger zerolog.Logger
}

func NewAuthService(repo ports.UserRepository, hasher PasswordHasher, tokens ports.TokenService, logger zerolog.Logger) *AuthService {
	return &AuthService{repo: repo, hasher: hasher, tokens: tokens, logger: logger}
}

// Register creates an account and issues a token for it. An unspecified role
// defaults to USER. Duplicate usernames fail with domain.ErrUserExists; the
// pre-check below only short-circuits the common case; the repository's
// unique index is what guarantees uniqueness under concurrent registration.
func (s *AuthService) Register(ctx context.Context, username, password string, role domain.Role) (*ports.AuthResult, error) {
	if role == "" {
		role = domain.RoleUser
	}
	if !role.Valid() {
		return nil, domain.ErrInvalidRole
	}

	if _, err := s.repo.FindByUsername(ctx, username); err == nil {
		return nil, domain.ErrUserExists
	} else if !errors.Is(err, domain.ErrUserNotFound) {
		return nil, err
	}

	hash, err := s.hasher.Hash(password)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	user, err := s.repo.Create(ctx, &domain.UserAccount{
		Username:     username,
		PasswordHash: hash,
		Role:         role,
		CreatedAt:    now,
		UpdatedAt:    now,
	})
	if err != nil {
		return nil, err
	}

	token, err := s.tokens.Issue(user.Username, user.Role)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("username", user.Username).Str("role", string(user.Role)).Msg("user registered")

	return &ports.AuthResult{Token: token, Username: user.Username, Role: user.Role}, nil
}

// Login verifies credentials and issues a fresh token bound to the account's
// current role. An unknown username and a wrong password both yield the same
// domain.ErrInvalidCredentials value so callers cannot enumerate usernames.
func (s *AuthService) Login(ctx context.Context, username, password string) (*ports.AuthResult, error) {
	user, err := s.repo.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}

	if !s.hasher.Verify(password, user.PasswordHash) {
		return nil, domain.ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(user.Username, user.Role)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("username", user.Username).Msg("user logged in")

	return &ports.AuthResult{Token: token, Username: user.Username, Role: user.Role}, nil
}
