package ports

import (
	"context"

	"github.com/fullstack-app/catalog-api/internal/core/domain"
)

// ListItemsFilter carries the paging window for listing items.
// Page is 1-based; Limit is capped at 100 by the service layer.
type ListItemsFilter struct {
	Page  int
	Limit int
}

// ItemRepository defines persistence operations for catalog items.
type ItemRepository interface {
	// List returns one page of items sorted by creation time descending,
	// with category references resolved, plus the total item count.
	List(ctx context.Context, filter ListItemsFilter) ([]*domain.Item, int64, error)
	// Count returns the total number of items in the store.
	Count(ctx context.Context) (int64, error)
	// InsertCategories stores categories and returns their assigned IDs in order.
	InsertCategories(ctx context.Context, categories []*domain.Category) ([]string, error)
	InsertItems(ctx context.Context, items []*domain.Item) error
}
