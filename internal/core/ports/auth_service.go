package ports

import (
	"context"

	"github.com/fullstack-app/catalog-api/internal/core/domain"
)

type AuthService interface {
	Register(ctx context.Context, login, password string) error
	Login(ctx context.Context, login, password string) (string, error)
	Validate(ctx context.Context, userID string) (*domain.User, error)
}
