package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/fullstack-app/catalog-api/internal/core/domain"
	"github.com/fullstack-app/catalog-api/internal/core/ports"
	"github.com/fullstack-app/catalog-api/internal/pkg/metrics"
)

const (
	defaultPageLimit = 10
	// maxPageLimit is a hard cap: a request may never pull more rows in one
	// call, whatever limit it asks for.
	maxPageLimit = 100
)

// ItemService serves paginated catalog reads.
type ItemService struct {
	repo   ports.ItemRepository
	logger zerolog.Logger
}

func NewItemService(repo ports.ItemRepository, logger zerolog.Logger) *ItemService {
	return &ItemService{repo: repo, logger: logger}
}

// List returns one page of items with full pagination metadata. Page and
// limit are normalised first: page floors at 1, limit defaults to 10 and is
// clamped to [1,100].
func (s *ItemService) List(ctx context.Context, page, limit int) (*ports.ItemPage, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = defaultPageLimit
	}
	if limit > maxPageLimit {
		limit = maxPageLimit
	}

	docs, total, err := s.repo.List(ctx, ports.ListItemsFilter{Page: page, Limit: limit})
	if err != nil {
		s.logger.Error().Err(err).Int("page", page).Int("limit", limit).Msg("failed to list items")
		return nil, err
	}

	result := paginate(docs, total, page, limit)

	metrics.ItemPagesServedTotal.Inc()
	metrics.ItemPageSize.Observe(float64(len(result.Docs)))

	return result, nil
}

// paginate computes the result envelope: totalPages = ceil(totalDocs/limit),
// pagingCounter = (page-1)*limit + 1, prevPage/nextPage nil when out of range.
func paginate(docs []*domain.Item, total int64, page, limit int) *ports.ItemPage {
	totalPages := int((total + int64(limit) - 1) / int64(limit))

	result := &ports.ItemPage{
		Docs:          docs,
		TotalDocs:     total,
		Limit:         limit,
		TotalPages:    totalPages,
		Page:          page,
		PagingCounter: (page-1)*limit + 1,
		HasPrevPage:   page > 1,
		HasNextPage:   page < totalPages,
	}
	if result.HasPrevPage {
		prev := page - 1
		result.PrevPage = &prev
	}
	if result.HasNextPage {
		next := page + 1
		result.NextPage = &next
	}
	return result
}
