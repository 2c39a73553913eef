package models

import (
	"testing"

	"github.com/go-faster/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validProduct() Product {
	return Product{
		Name:     "Pixel 9 Pro",
		Slug:     "google-pixel-9-pro",
		Brand:    "Google",
		Category: DefaultCategory,
		Colors:   []Color{{Name: "Obsidian", Hex: "#2C2C2C", Image: "https://img.example/obsidian.png"}},
		StorageOptions: []StorageOption{{
			Size: "256GB", MRP: 109999, Price: 99999,
			EmiPlans: []EmiPlan{{MonthlyAmount: 33333, Tenure: 3, Cashback: 5500}},
		}},
	}
}

func TestValidateAcceptsCompleteProduct(t *testing.T) {
	p := validProduct()
	require.NoError(t, p.Validate())
}

func TestValidateRejects(t *testing.T) {
	cases := map[string]func(p *Product){
		"missing slug":        func(p *Product) { p.Slug = "" },
		"no colors":           func(p *Product) { p.Colors = nil },
		"no storage":          func(p *Product) { p.StorageOptions = nil },
		"price above mrp":     func(p *Product) { p.StorageOptions[0].Price = p.StorageOptions[0].MRP + 1 },
		"zero mrp":            func(p *Product) { p.StorageOptions[0].MRP = 0 },
		"zero tenure":         func(p *Product) { p.StorageOptions[0].EmiPlans[0].Tenure = 0 },
		"negative cashback":   func(p *Product) { p.StorageOptions[0].EmiPlans[0].Cashback = -1 },
		"color without image": func(p *Product) { p.Colors[0].Image = "" },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			p := validProduct()
			mutate(&p)
			err := p.Validate()
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvalidProduct))
		})
	}
}
