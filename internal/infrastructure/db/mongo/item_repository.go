package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/fullstack-app/catalog-api/internal/core/domain"
	"github.com/fullstack-app/catalog-api/internal/core/ports"
)

const (
	itemsCollection      = "items"
	categoriesCollection = "categories"
)

type ItemRepository struct {
	items      *mongo.Collection
	categories *mongo.Collection
}

func NewItemRepository(db *mongo.Database) *ItemRepository {
	return &ItemRepository{
		items:      db.Collection(itemsCollection),
		categories: db.Collection(categoriesCollection),
	}
}

type mongoItem struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	Name        string             `bson:"name"`
	Description string             `bson:"description,omitempty"`
	Price       float64            `bson:"price"`
	Quantity    int                `bson:"quantity"`
	CategoryID  primitive.ObjectID `bson:"category,omitempty"`
	CreatedAt   time.Time          `bson:"created_at"`
	UpdatedAt   time.Time          `bson:"updated_at"`
}

type mongoCategory struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	Name        string             `bson:"name"`
	Description string             `bson:"description,omitempty"`
}

// List fetches one page of items sorted by creation time descending and
// resolves each item's category reference, plus the total item count.
func (r *ItemRepository) List(ctx context.Context, filter ports.ListItemsFilter) ([]*domain.Item, int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	total, err := r.items.CountDocuments(ctx, bson.M{})
	if err != nil {
		return nil, 0, fmt.Errorf("count items: %w", err)
	}

	skip := int64(filter.Page-1) * int64(filter.Limit)
	opts := options.Find().
		SetSkip(skip).
		SetLimit(int64(filter.Limit)).
		SetSort(bson.D{{Key: "created_at", Value: -1}})

	cur, err := r.items.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, 0, fmt.Errorf("find items: %w", err)
	}
	defer cur.Close(ctx)

	var docs []mongoItem
	if err := cur.All(ctx, &docs); err != nil {
		return nil, 0, fmt.Errorf("decode items: %w", err)
	}

	categories, err := r.categoriesByID(ctx, docs)
	if err != nil {
		return nil, 0, err
	}

	items := make([]*domain.Item, 0, len(docs))
	for _, d := range docs {
		item := &domain.Item{
			ID:          d.ID.Hex(),
			Name:        d.Name,
			Description: d.Description,
			Price:       d.Price,
			Quantity:    d.Quantity,
			CreatedAt:   d.CreatedAt.UTC(),
			UpdatedAt:   d.UpdatedAt.UTC(),
		}
		if !d.CategoryID.IsZero() {
			item.CategoryID = d.CategoryID.Hex()
			item.Category = categories[d.CategoryID]
		}
		items = append(items, item)
	}

	return items, total, nil
}

// categoriesByID loads the categories referenced by the page in one query.
func (r *ItemRepository) categoriesByID(ctx context.Context, docs []mongoItem) (map[primitive.ObjectID]*domain.Category, error) {
	ids := make([]primitive.ObjectID, 0, len(docs))
	seen := make(map[primitive.ObjectID]struct{}, len(docs))
	for _, d := range docs {
		if d.CategoryID.IsZero() {
			continue
		}
		if _, ok := seen[d.CategoryID]; ok {
			continue
		}
		seen[d.CategoryID] = struct{}{}
		ids = append(ids, d.CategoryID)
	}
	if len(ids) == 0 {
		return nil, nil
	}

	cur, err := r.categories.Find(ctx, bson.M{"_id": bson.M{"$in": ids}})
	if err != nil {
		return nil, fmt.Errorf("find categories: %w", err)
	}
	defer cur.Close(ctx)

	var cats []mongoCategory
	if err := cur.All(ctx, &cats); err != nil {
		return nil, fmt.Errorf("decode categories: %w", err)
	}

	out := make(map[primitive.ObjectID]*domain.Category, len(cats))
	for _, c := range cats {
		out[c.ID] = &domain.Category{
			ID:          c.ID.Hex(),
			Name:        c.Name,
			Description: c.Description,
		}
	}
	return out, nil
}

func (r *ItemRepository) Count(ctx context.Context) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	n, err := r.items.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, fmt.Errorf("count items: %w", err)
	}
	return n, nil
}

func (r *ItemRepository) InsertCategories(ctx context.Context, categories []*domain.Category) ([]string, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	docs := make([]interface{}, 0, len(categories))
	for _, c := range categories {
		docs = append(docs, mongoCategory{Name: c.Name, Description: c.Description})
	}

	res, err := r.categories.InsertMany(ctx, docs)
	if err != nil {
		return nil, fmt.Errorf("insert categories: %w", err)
	}

	ids := make([]string, 0, len(res.InsertedIDs))
	for _, id := range res.InsertedIDs {
		oid, ok := id.(primitive.ObjectID)
		if !ok {
			return nil, fmt.Errorf("insert categories: unexpected id type %T", id)
		}
		ids = append(ids, oid.Hex())
	}
	return ids, nil
}

func (r *ItemRepository) InsertItems(ctx context.Context, items []*domain.Item) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	docs := make([]interface{}, 0, len(items))
	for _, it := range items {
		doc := mongoItem{
			Name:        it.Name,
			Description: it.Description,
			Price:       it.Price,
			Quantity:    it.Quantity,
			CreatedAt:   it.CreatedAt,
			UpdatedAt:   it.UpdatedAt,
		}
		if it.CategoryID != "" {
			oid, err := primitive.ObjectIDFromHex(it.CategoryID)
			if err != nil {
				return fmt.Errorf("insert items: invalid category id %q: %w", it.CategoryID, err)
			}
			doc.CategoryID = oid
		}
		docs = append(docs, doc)
	}

	if _, err := r.items.InsertMany(ctx, docs); err != nil {
		return fmt.Errorf("insert items: %w", err)
	}
	return nil
}

// EnsureIndexes creates the indexes backing the paginated listing.
func (r *ItemRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "created_at", Value: -1}}},
		{Keys: bson.D{{Key: "category", Value: 1}}},
	}

	_, err := r.items.Indexes().CreateMany(ctx, indexes)
	return err
}
