package store

import (
	"context"
	"fmt"
	"log"
	"sort"
	"time"

	"github.com/go-faster/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/Madhav-Gupta-28/emi-store-backend-go/database"
	"github.com/Madhav-Gupta-28/emi-store-backend-go/models"
)

// AllBrands is the brand filter value that selects the whole catalog.
const AllBrands = "All"

var ErrNotFound = errors.New("product not found")

// CatalogStore is the read side of the product catalog plus the bulk replace
// used by the offline seeding step.
type CatalogStore interface {
	Brands(ctx context.Context) ([]string, error)
	List(ctx context.Context, brand string) ([]models.Product, error)
	GetBySlug(ctx context.Context, slug string) (*models.Product, error)
	ReplaceAll(ctx context.Context, products []models.Product) (int, error)
}

// summaryProjection matches what the listing endpoint exposes: no timestamps and
// only the pricing fields of each storage option.
var summaryProjection = bson.D{
	{Key: "name", Value: 1},
	{Key: "slug", Value: 1},
	{Key: "brand", Value: 1},
	{Key: "category", Value: 1},
	{Key: "isNewProduct", Value: 1},
	{Key: "colors", Value: 1},
	{Key: "storageOptions.size", Value: 1},
	{Key: "storageOptions.mrp", Value: 1},
	{Key: "storageOptions.price", Value: 1},
	{Key: "storageOptions.emiPlans", Value: 1},
}

type MongoProductStore struct {
	collection *mongo.Collection
}

func NewMongoProductStore(db *mongo.Database) *MongoProductStore {
	return &MongoProductStore{collection: db.Collection(database.ProductsCollection)}
}

func (s *MongoProductStore) Brands(ctx context.Context) ([]string, error) {
	values, err := s.collection.Distinct(ctx, "brand", bson.D{})
	if err != nil {
		return nil, fmt.Errorf("failed to list brands: %w", err)
	}

	brands := make([]string, 0, len(values))
	for _, v := range values {
		if b, ok := v.(string); ok {
			brands = append(brands, b)
		}
	}
	sort.Strings(brands)
	return brands, nil
}

func (s *MongoProductStore) List(ctx context.Context, brand string) ([]models.Product, error) {
	filter := bson.D{}
	if brand != "" && brand != AllBrands {
		filter = bson.D{{Key: "brand", Value: brand}}
	}

	cursor, err := s.collection.Find(ctx, filter, options.Find().SetProjection(summaryProjection))
	if err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}
	defer cursor.Close(ctx)

	var products []models.Product
	if err = cursor.All(ctx, &products); err != nil {
		return nil, fmt.Errorf("failed to decode products: %w", err)
	}

	if products == nil {
		products = []models.Product{}
	}
	return products, nil
}

func (s *MongoProductStore) GetBySlug(ctx context.Context, slug string) (*models.Product, error) {
	var product models.Product
	err := s.collection.FindOne(ctx, bson.D{{Key: "slug", Value: slug}}).Decode(&product)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to find product %q: %w", slug, err)
	}
	return &product, nil
}

// ReplaceAll validates every product before touching the collection, then
// clears it and inserts the new catalog.
func (s *MongoProductStore) ReplaceAll(ctx context.Context, products []models.Product) (int, error) {
	docs := make([]interface{}, 0, len(products))
	now := time.Now().UTC()
	for i := range products {
		p := products[i]
		if err := p.Validate(); err != nil {
			return 0, err
		}
		if p.Category == "" {
			p.Category = models.DefaultCategory
		}
		p.CreatedAt = &now
		p.UpdatedAt = &now
		docs = append(docs, p)
	}

	deleted, err := s.collection.DeleteMany(ctx, bson.D{})
	if err != nil {
		return 0, fmt.Errorf("failed to clear products: %w", err)
	}
	log.Printf("Cleared %d existing products", deleted.DeletedCount)

	if len(docs) == 0 {
		return 0, nil
	}
	result, err := s.collection.InsertMany(ctx, docs)
	if err != nil {
		return 0, fmt.Errorf("failed to insert products: %w", err)
	}
	return len(result.InsertedIDs), nil
}
