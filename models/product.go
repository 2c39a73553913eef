package models

import (
	"fmt"
	"time"

	"github.com/go-faster/errors"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ErrInvalidProduct is returned by Validate for documents the storefront cannot render.
var ErrInvalidProduct = errors.New("invalid product")

const DefaultCategory = "Smartphones"

type EmiPlan struct {
	MonthlyAmount int64   `bson:"monthlyAmount" json:"monthlyAmount"`
	Tenure        int     `bson:"tenure" json:"tenure"`             // months
	InterestRate  float64 `bson:"interestRate" json:"interestRate"` // percentage
	Cashback      int64   `bson:"cashback" json:"cashback"`
}

type Color struct {
	Name  string `bson:"name" json:"name"` // e.g. "Black Titanium"
	Hex   string `bson:"hex" json:"hex"`
	Image string `bson:"image" json:"image"`
}

type StorageOption struct {
	Size     string    `bson:"size" json:"size"` // e.g. "256GB"
	MRP      int64     `bson:"mrp" json:"mrp"`
	Price    int64     `bson:"price" json:"price"`
	EmiPlans []EmiPlan `bson:"emiPlans" json:"emiPlans"`
}

type Product struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Name           string             `bson:"name" json:"name"`
	Slug           string             `bson:"slug" json:"slug"`
	Brand          string             `bson:"brand" json:"brand"`
	Category       string             `bson:"category" json:"category"`
	IsNewProduct   bool               `bson:"isNewProduct" json:"isNewProduct"`
	Colors         []Color            `bson:"colors" json:"colors"`
	StorageOptions []StorageOption    `bson:"storageOptions" json:"storageOptions"`
	CreatedAt      *time.Time         `bson:"createdAt,omitempty" json:"createdAt,omitempty"`
	UpdatedAt      *time.Time         `bson:"updatedAt,omitempty" json:"updatedAt,omitempty"`
}

// Validate checks the invariants the storefront relies on: a slug, at least one
// color and storage tier, price not above MRP and sane plan terms.
func (p *Product) Validate() error {
	if p.Name == "" || p.Slug == "" || p.Brand == "" {
		return errors.Wrap(ErrInvalidProduct, "name, slug and brand are required")
	}
	if len(p.Colors) == 0 {
		return errors.Wrapf(ErrInvalidProduct, "%s: no colors", p.Slug)
	}
	if len(p.StorageOptions) == 0 {
		return errors.Wrapf(ErrInvalidProduct, "%s: no storage options", p.Slug)
	}
	for i, c := range p.Colors {
		if c.Name == "" || c.Hex == "" || c.Image == "" {
			return errors.Wrapf(ErrInvalidProduct, "%s: color %d is incomplete", p.Slug, i)
		}
	}
	for i, s := range p.StorageOptions {
		if err := s.validate(); err != nil {
			return errors.Wrapf(ErrInvalidProduct, "%s: storage option %d: %v", p.Slug, i, err)
		}
	}
	return nil
}

func (s StorageOption) validate() error {
	if s.Size == "" {
		return fmt.Errorf("size is required")
	}
	if s.MRP <= 0 {
		return fmt.Errorf("mrp must be positive, got %d", s.MRP)
	}
	if s.Price < 0 || s.Price > s.MRP {
		return fmt.Errorf("price %d outside [0, mrp %d]", s.Price, s.MRP)
	}
	for j, plan := range s.EmiPlans {
		if plan.Tenure <= 0 {
			return fmt.Errorf("plan %d: tenure must be positive", j)
		}
		if plan.InterestRate < 0 || plan.Cashback < 0 || plan.MonthlyAmount < 0 {
			return fmt.Errorf("plan %d: negative amount", j)
		}
	}
	return nil
}
