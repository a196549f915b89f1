package service

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/fullstack-app/catalog-api/internal/core/domain"
	"github.com/fullstack-app/catalog-api/internal/core/ports"
	"github.com/fullstack-app/catalog-api/internal/pkg/metrics"
)

// bcryptCost must stay adaptive; 10 matches bcrypt.DefaultCost.
const bcryptCost = 10

// AuthService implements registration, login and token-subject validation.
type AuthService struct {
	users  ports.UserRepository
	tokens ports.TokenService
	logger zerolog.Logger
}

func NewAuthService(users ports.UserRepository, tokens ports.TokenService, logger zerolog.Logger) *AuthService {
	return &AuthService{users: users, tokens: tokens, logger: logger}
}

// Register creates a new user with a bcrypt-hashed password. The FindByLogin
// check gives a fast conflict answer; the unique index on login is the real
// guarantee, and a duplicate-key failure on insert surfaces as the same
// ErrUserExists.
func (s *AuthService) Register(ctx context.Context, login, password string) error {
	if login == "" || password == "" {
		return domain.ErrInvalidCredentials
	}

	if _, err := s.users.FindByLogin(ctx, login); err == nil {
		metrics.RegistrationsTotal.WithLabelValues("conflict").Inc()
		return domain.ErrUserExists
	} else if !errors.Is(err, domain.ErrUserNotFound) {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return err
	}

	user := &domain.User{
		Login:        login,
		PasswordHash: string(hash),
		CreatedAt:    time.Now().UTC(),
	}

	if _, err := s.users.Create(ctx, user); err != nil {
		if errors.Is(err, domain.ErrUserExists) {
			metrics.RegistrationsTotal.WithLabelValues("conflict").Inc()
		}
		return err
	}

	metrics.RegistrationsTotal.WithLabelValues("success").Inc()
	s.logger.Info().Str("login", login).Msg("user registered")
	return nil
}

// Login verifies the credentials and returns a signed bearer token. Unknown
// login and wrong password are indistinguishable to the caller.
func (s *AuthService) Login(ctx context.Context, login, password string) (string, error) {
	if login == "" || password == "" {
		return "", domain.ErrInvalidCredentials
	}

	user, err := s.users.FindByLogin(ctx, login)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			metrics.LoginsTotal.WithLabelValues("failure").Inc()
			return "", domain.ErrInvalidCredentials
		}
		return "", err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		metrics.LoginsTotal.WithLabelValues("failure").Inc()
		return "", domain.ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(user.ID, user.Login)
	if err != nil {
		return "", err
	}

	metrics.LoginsTotal.WithLabelValues("success").Inc()
	s.logger.Info().Str("login", login).Msg("user logged in")
	return token, nil
}

// Validate resolves a token subject back to a stored user. A stale ID (user
// deleted out-of-band) is an authentication failure, not a 404.
func (s *AuthService) Validate(ctx context.Context, userID string) (*domain.User, error) {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}
	return user, nil
}
