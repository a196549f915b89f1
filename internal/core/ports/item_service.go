package ports

import (
	"context"

	"github.com/fullstack-app/catalog-api/internal/core/domain"
)

// ItemPage is the result of one paginate call. PrevPage and NextPage are nil
// when there is no such page.
type ItemPage struct {
	Docs          []*domain.Item
	TotalDocs     int64
	Limit         int
	TotalPages    int
	Page          int
	PagingCounter int
	HasPrevPage   bool
	HasNextPage   bool
	PrevPage      *int
	NextPage      *int
}

type ItemService interface {
	List(ctx context.Context, page, limit int) (*ItemPage, error)
}
