package service

import (
	"context"
	"fmt"
	"reflect"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/fullstack-app/catalog-api/internal/core/domain"
	"github.com/fullstack-app/catalog-api/internal/core/ports"
)

// stubItemRepo serves pages from an in-memory slice already sorted by
// creation time descending, the way the mongo repository would.
type stubItemRepo struct {
	items      []*domain.Item
	categories []*domain.Category
}

func newStubItemRepo(n int) *stubItemRepo {
	r := &stubItemRepo{}
	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	for i := n - 1; i >= 0; i-- {
		r.items = append(r.items, &domain.Item{
			ID:        fmt.Sprintf("item-%d", i),
			Name:      fmt.Sprintf("Item %d", i),
			Price:     9.99,
			Quantity:  10,
			CreatedAt: base.Add(time.Duration(i) * time.Second),
		})
	}
	return r
}

func (r *stubItemRepo) List(_ context.Context, filter ports.ListItemsFilter) ([]*domain.Item, int64, error) {
	skip := (filter.Page - 1) * filter.Limit
	if skip >= len(r.items) {
		return nil, int64(len(r.items)), nil
	}
	end := skip + filter.Limit
	if end > len(r.items) {
		end = len(r.items)
	}
	return r.items[skip:end], int64(len(r.items)), nil
}

func (r *stubItemRepo) Count(_ context.Context) (int64, error) {
	return int64(len(r.items)), nil
}

func (r *stubItemRepo) InsertCategories(_ context.Context, categories []*domain.Category) ([]string, error) {
	ids := make([]string, 0, len(categories))
	for i, c := range categories {
		cat := *c
		cat.ID = fmt.Sprintf("cat-%d", i)
		r.categories = append(r.categories, &cat)
		ids = append(ids, cat.ID)
	}
	return ids, nil
}

func (r *stubItemRepo) InsertItems(_ context.Context, items []*domain.Item) error {
	r.items = append(r.items, items...)
	return nil
}

func TestItemService_List_FirstPage(t *testing.T) {
	svc := NewItemService(newStubItemRepo(25), zerolog.Nop())

	page, err := svc.List(context.Background(), 1, 5)
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}

	if len(page.Docs) != 5 {
		t.Fatalf("expected 5 docs, got %d", len(page.Docs))
	}
	if page.TotalDocs != 25 {
		t.Fatalf("expected totalDocs 25, got %d", page.TotalDocs)
	}
	if page.TotalPages != 5 {
		t.Fatalf("expected totalPages 5, got %d", page.TotalPages)
	}
	if page.Page != 1 || page.PagingCounter != 1 {
		t.Fatalf("unexpected page/pagingCounter: %d/%d", page.Page, page.PagingCounter)
	}
	if page.HasPrevPage || !page.HasNextPage {
		t.Fatalf("unexpected prev/next flags: %v/%v", page.HasPrevPage, page.HasNextPage)
	}
	if page.PrevPage != nil {
		t.Fatalf("expected nil prevPage, got %d", *page.PrevPage)
	}
	if page.NextPage == nil || *page.NextPage != 2 {
		t.Fatalf("expected nextPage 2, got %v", page.NextPage)
	}
}

func TestItemService_List_LastPage(t *testing.T) {
	svc := NewItemService(newStubItemRepo(25), zerolog.Nop())

	page, err := svc.List(context.Background(), 5, 5)
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}

	if len(page.Docs) != 5 {
		t.Fatalf("expected 5 docs, got %d", len(page.Docs))
	}
	if page.HasNextPage {
		t.Fatalf("last page must not report a next page")
	}
	if !page.HasPrevPage || page.PrevPage == nil || *page.PrevPage != 4 {
		t.Fatalf("expected prevPage 4, got %v", page.PrevPage)
	}
	if page.PagingCounter != 21 {
		t.Fatalf("expected pagingCounter 21, got %d", page.PagingCounter)
	}
}

func TestItemService_List_PartialLastPage(t *testing.T) {
	svc := NewItemService(newStubItemRepo(23), zerolog.Nop())

	page, err := svc.List(context.Background(), 3, 10)
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}

	if len(page.Docs) != 3 {
		t.Fatalf("expected 3 docs on partial page, got %d", len(page.Docs))
	}
	if page.TotalPages != 3 {
		t.Fatalf("expected totalPages 3, got %d", page.TotalPages)
	}
	if page.HasNextPage {
		t.Fatalf("partial last page must not report a next page")
	}
}

func TestItemService_List_EmptyStore(t *testing.T) {
	svc := NewItemService(newStubItemRepo(0), zerolog.Nop())

	page, err := svc.List(context.Background(), 1, 10)
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}

	if page.TotalDocs != 0 || page.TotalPages != 0 {
		t.Fatalf("expected empty totals, got %d/%d", page.TotalDocs, page.TotalPages)
	}
	if page.HasPrevPage || page.HasNextPage {
		t.Fatalf("empty store must not report prev/next pages")
	}
}

func TestItemService_List_ClampsLimit(t *testing.T) {
	svc := NewItemService(newStubItemRepo(250), zerolog.Nop())

	page, err := svc.List(context.Background(), 1, 1000)
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}

	if page.Limit != 100 {
		t.Fatalf("expected limit clamped to 100, got %d", page.Limit)
	}
	if len(page.Docs) > 100 {
		t.Fatalf("served %d docs, cap is 100", len(page.Docs))
	}
	if page.TotalPages != 3 {
		t.Fatalf("expected totalPages 3 for 250 docs at limit 100, got %d", page.TotalPages)
	}
}

func TestItemService_List_NormalisesInput(t *testing.T) {
	svc := NewItemService(newStubItemRepo(25), zerolog.Nop())

	page, err := svc.List(context.Background(), 0, 0)
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if page.Page != 1 || page.Limit != 10 {
		t.Fatalf("expected page 1 / limit 10 after normalisation, got %d/%d", page.Page, page.Limit)
	}
}

func TestItemService_List_Idempotent(t *testing.T) {
	svc := NewItemService(newStubItemRepo(25), zerolog.Nop())

	first, err := svc.List(context.Background(), 2, 5)
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	second, err := svc.List(context.Background(), 2, 5)
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}

	if !reflect.DeepEqual(first, second) {
		t.Fatalf("identical calls against an unchanged store returned different results")
	}
}

func TestItemService_List_TotalPagesProperty(t *testing.T) {
	for _, tc := range []struct {
		total, limit, want int
	}{
		{0, 10, 0},
		{1, 10, 1},
		{10, 10, 1},
		{11, 10, 2},
		{25, 5, 5},
		{99, 100, 1},
		{101, 100, 2},
	} {
		svc := NewItemService(newStubItemRepo(tc.total), zerolog.Nop())
		page, err := svc.List(context.Background(), 1, tc.limit)
		if err != nil {
			t.Fatalf("List returned error: %v", err)
		}
		if page.TotalPages != tc.want {
			t.Fatalf("total=%d limit=%d: expected totalPages %d, got %d", tc.total, tc.limit, tc.want, page.TotalPages)
		}
	}
}
