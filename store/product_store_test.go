package store

import (
	"context"
	"testing"

	"github.com/go-faster/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"

	"github.com/Madhav-Gupta-28/emi-store-backend-go/models"
)

const ns = "emistore.products"

func productDoc(name, slug, brand string) bson.D {
	return bson.D{
		{Key: "name", Value: name},
		{Key: "slug", Value: slug},
		{Key: "brand", Value: brand},
		{Key: "category", Value: "Smartphones"},
		{Key: "isNewProduct", Value: true},
		{Key: "colors", Value: bson.A{
			bson.D{{Key: "name", Value: "Black"}, {Key: "hex", Value: "#000000"}, {Key: "image", Value: "https://img.example/black.png"}},
		}},
		{Key: "storageOptions", Value: bson.A{
			bson.D{
				{Key: "size", Value: "256GB"},
				{Key: "mrp", Value: int64(100000)},
				{Key: "price", Value: int64(90000)},
				{Key: "emiPlans", Value: bson.A{
					bson.D{{Key: "monthlyAmount", Value: int64(30000)}, {Key: "tenure", Value: int32(3)}, {Key: "interestRate", Value: 0.0}, {Key: "cashback", Value: int64(5000)}},
				}},
			},
		}},
	}
}

func TestBrands(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("sorted distinct brands", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateSuccessResponse(
			bson.E{Key: "values", Value: bson.A{"Samsung", "Apple", "OnePlus", "Google"}},
		))
		brands, err := NewMongoProductStore(mt.DB).Brands(context.Background())
		require.NoError(mt, err)
		assert.Equal(mt, []string{"Apple", "Google", "OnePlus", "Samsung"}, brands)
	})

	mt.Run("store failure", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateCommandErrorResponse(mtest.CommandError{Code: 2, Message: "boom", Name: "BadValue"}))
		_, err := NewMongoProductStore(mt.DB).Brands(context.Background())
		require.Error(mt, err)
	})
}

func TestList(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("decodes summaries", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns, mtest.FirstBatch,
			productDoc("iPhone 17 Pro", "iphone-17-pro", "Apple"),
			productDoc("Galaxy S24 Ultra", "samsung-s24-ultra", "Samsung"),
		))
		products, err := NewMongoProductStore(mt.DB).List(context.Background(), AllBrands)
		require.NoError(mt, err)
		require.Len(mt, products, 2)
		assert.Equal(mt, "iphone-17-pro", products[0].Slug)
		assert.Equal(mt, int64(90000), products[0].StorageOptions[0].Price)
		assert.Equal(mt, 3, products[0].StorageOptions[0].EmiPlans[0].Tenure)
		assert.Nil(mt, products[0].CreatedAt)
	})

	mt.Run("empty result is not nil", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns, mtest.FirstBatch))
		products, err := NewMongoProductStore(mt.DB).List(context.Background(), "Nokia")
		require.NoError(mt, err)
		assert.NotNil(mt, products)
		assert.Empty(mt, products)
	})
}

func TestGetBySlug(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("found", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns, mtest.FirstBatch, productDoc("OnePlus 13", "oneplus-13", "OnePlus")))
		p, err := NewMongoProductStore(mt.DB).GetBySlug(context.Background(), "oneplus-13")
		require.NoError(mt, err)
		assert.Equal(mt, "OnePlus 13", p.Name)
	})

	mt.Run("not found", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns, mtest.FirstBatch))
		_, err := NewMongoProductStore(mt.DB).GetBySlug(context.Background(), "iphone-17-pro")
		require.Error(mt, err)
		assert.True(mt, errors.Is(err, ErrNotFound))
	})
}

func TestReplaceAll(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	product := models.Product{
		Name:   "Pixel 9 Pro",
		Slug:   "google-pixel-9-pro",
		Brand:  "Google",
		Colors: []models.Color{{Name: "Obsidian", Hex: "#2C2C2C", Image: "https://img.example/obsidian.png"}},
		StorageOptions: []models.StorageOption{{
			Size: "256GB", MRP: 109999, Price: 99999,
			EmiPlans: []models.EmiPlan{{MonthlyAmount: 33333, Tenure: 3, Cashback: 5500}},
		}},
	}

	mt.Run("inserts catalog", func(mt *mtest.T) {
		mt.AddMockResponses(
			mtest.CreateSuccessResponse(bson.E{Key: "n", Value: int32(4)}),
			mtest.CreateSuccessResponse(bson.E{Key: "n", Value: int32(1)}),
		)
		n, err := NewMongoProductStore(mt.DB).ReplaceAll(context.Background(), []models.Product{product})
		require.NoError(mt, err)
		assert.Equal(mt, 1, n)
	})

	mt.Run("rejects invalid product before writing", func(mt *mtest.T) {
		bad := product
		bad.StorageOptions = []models.StorageOption{{Size: "256GB", MRP: 100, Price: 200}}
		_, err := NewMongoProductStore(mt.DB).ReplaceAll(context.Background(), []models.Product{bad})
		require.Error(mt, err)
		assert.True(mt, errors.Is(err, models.ErrInvalidProduct))
	})
}
