package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/fullstack-app/catalog-api/internal/core/domain"
	"github.com/fullstack-app/catalog-api/internal/core/ports"
)

// Seeder populates an empty catalog with a fixed dataset at startup. The
// emptiness check makes it idempotent: a store that already holds items is
// left untouched.
type Seeder struct {
	repo   ports.ItemRepository
	logger zerolog.Logger
}

func NewSeeder(repo ports.ItemRepository, logger zerolog.Logger) *Seeder {
	return &Seeder{repo: repo, logger: logger}
}

type seedItem struct {
	name        string
	description string
	price       float64
	quantity    int
	category    int // index into seedCategories
}

var seedCategories = []*domain.Category{
	{Name: "Electronics", Description: "Electronic devices and gadgets"},
	{Name: "Books", Description: "Physical and digital books"},
	{Name: "Clothing", Description: "Apparel and accessories"},
	{Name: "Home & Garden", Description: "Home improvement and gardening supplies"},
	{Name: "Sports", Description: "Sports equipment and accessories"},
}

var seedItems = []seedItem{
	{"Laptop Pro", "High-performance laptop", 1299.99, 50, 0},
	{"Wireless Mouse", "Ergonomic wireless mouse", 29.99, 200, 0},
	{"USB-C Hub", "7-in-1 USB-C hub", 49.99, 150, 0},
	{"Mechanical Keyboard", "RGB mechanical keyboard", 89.99, 75, 0},
	{"4K Monitor", "27-inch 4K display", 399.99, 30, 0},
	{"JavaScript Mastery", "Complete JS guide", 39.99, 100, 1},
	{"Clean Code", "Software craftsmanship book", 34.99, 80, 1},
	{"Design Patterns", "Gang of Four patterns", 44.99, 60, 1},
	{"TypeScript Handbook", "TypeScript reference", 29.99, 120, 1},
	{"Angular in Action", "Angular framework guide", 49.99, 40, 1},
	{"Cotton T-Shirt", "Comfortable cotton tee", 19.99, 500, 2},
	{"Denim Jeans", "Classic fit jeans", 59.99, 200, 2},
	{"Running Shoes", "Lightweight running shoes", 79.99, 150, 2},
	{"Winter Jacket", "Warm winter jacket", 129.99, 75, 2},
	{"Baseball Cap", "Adjustable baseball cap", 24.99, 300, 2},
	{"Garden Tools Set", "10-piece garden set", 49.99, 100, 3},
	{"Indoor Plant Pot", "Ceramic plant pot", 19.99, 250, 3},
	{"LED Grow Light", "Full spectrum grow light", 59.99, 80, 3},
	{"Outdoor Chair", "Weather-resistant chair", 89.99, 60, 3},
	{"Bird Feeder", "Hanging bird feeder", 29.99, 150, 3},
	{"Yoga Mat", "Non-slip yoga mat", 29.99, 200, 4},
	{"Dumbbells Set", "Adjustable dumbbells", 149.99, 50, 4},
	{"Tennis Racket", "Professional racket", 79.99, 80, 4},
	{"Basketball", "Official size basketball", 24.99, 120, 4},
	{"Fitness Tracker", "Smart fitness band", 69.99, 100, 4},
}

// Run seeds the catalog when it is empty. Creation timestamps are staggered
// one second apart so the created_at-descending sort order is stable.
func (s *Seeder) Run(ctx context.Context) error {
	count, err := s.repo.Count(ctx)
	if err != nil {
		return err
	}
	if count > 0 {
		s.logger.Debug().Int64("items", count).Msg("catalog already seeded")
		return nil
	}

	categoryIDs, err := s.repo.InsertCategories(ctx, seedCategories)
	if err != nil {
		return err
	}

	base := time.Now().UTC().Add(-time.Duration(len(seedItems)) * time.Second)
	items := make([]*domain.Item, 0, len(seedItems))
	for i, si := range seedItems {
		ts := base.Add(time.Duration(i) * time.Second)
		items = append(items, &domain.Item{
			Name:        si.name,
			Description: si.description,
			Price:       si.price,
			Quantity:    si.quantity,
			CategoryID:  categoryIDs[si.category],
			CreatedAt:   ts,
			UpdatedAt:   ts,
		})
	}

	if err := s.repo.InsertItems(ctx, items); err != nil {
		return err
	}

	s.logger.Info().
		Int("categories", len(seedCategories)).
		Int("items", len(items)).
		Msg("seeded catalog with mock data")
	return nil
}
