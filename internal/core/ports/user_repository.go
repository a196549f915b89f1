package ports

import (
	"context"

	"github.com/fullstack-app/catalog-api/internal/core/domain"
)

// UserRepository defines the interface for user persistence.
type UserRepository interface {
	// Create inserts a new user. A duplicate login is reported as
	// domain.ErrUserExists, whether detected before or during the insert.
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByLogin(ctx context.Context, login string) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
}
