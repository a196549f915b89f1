package handler

import (
	"github.com/fullstack-app/catalog-api/internal/core/domain"
	"github.com/fullstack-app/catalog-api/internal/core/ports"
)

// listItemsRequest is pre-filled with defaults before binding, so a zero
// value can only come from the caller and is rejected.
type listItemsRequest struct {
	Page  int `query:"page"  validate:"gte=1"`
	Limit int `query:"limit" validate:"gte=1"`
}

// listItemsResponse mirrors the paginate result envelope.
type listItemsResponse struct {
	Docs          []*domain.Item `json:"docs"`
	TotalDocs     int64          `json:"totalDocs"`
	Limit         int            `json:"limit"`
	TotalPages    int            `json:"totalPages"`
	Page          int            `json:"page"`
	PagingCounter int            `json:"pagingCounter"`
	HasPrevPage   bool           `json:"hasPrevPage"`
	HasNextPage   bool           `json:"hasNextPage"`
	PrevPage      *int           `json:"prevPage"`
	NextPage      *int           `json:"nextPage"`
}

func toListItemsResponse(p *ports.ItemPage) listItemsResponse {
	docs := p.Docs
	if docs == nil {
		docs = []*domain.Item{}
	}
	return listItemsResponse{
		Docs:          docs,
		TotalDocs:     p.TotalDocs,
		Limit:         p.Limit,
		TotalPages:    p.TotalPages,
		Page:          p.Page,
		PagingCounter: p.PagingCounter,
		HasPrevPage:   p.HasPrevPage,
		HasNextPage:   p.HasNextPage,
		PrevPage:      p.PrevPage,
		NextPage:      p.NextPage,
	}
}
