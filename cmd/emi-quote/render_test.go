package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Madhav-Gupta-28/emi-store-backend-go/models"
	"github.com/Madhav-Gupta-28/emi-store-backend-go/viewmodel"
)

func pixel() *models.Product {
	return &models.Product{
		Name:  "Google Pixel 9 Pro",
		Slug:  "google-pixel-9-pro",
		Brand: "Google",
		Colors: []models.Color{
			{Name: "Obsidian", Hex: "#2C2C2C", Image: "https://img.example/obsidian.png"},
			{Name: "Porcelain", Hex: "#F2EDE3", Image: "https://img.example/porcelain.png"},
		},
		StorageOptions: []models.StorageOption{{
			Size: "256GB", MRP: 100000, Price: 90000,
			EmiPlans: []models.EmiPlan{
				{MonthlyAmount: 20000, Tenure: 3},
				{MonthlyAmount: 5000, Tenure: 12, Cashback: 2000},
			},
		}},
	}
}

func TestRenderProduct(t *testing.T) {
	sel, err := viewmodel.NewSelection(pixel())
	require.NoError(t, err)
	defer sel.Close()
	require.NoError(t, applyChoice(sel, choice{plan: 1}))

	var out bytes.Buffer
	renderProduct(&out, sel)
	s := out.String()
	assert.Contains(t, s, "10% off")
	assert.Contains(t, s, "BEST VALUE")
	assert.Contains(t, s, "₹58,000")
	assert.Contains(t, s, "*1")
	assert.Contains(t, s, "Selected: ₹5,000/mo x 12 months")
}

func TestApplyChoiceRejectsUnknownPlan(t *testing.T) {
	sel, err := viewmodel.NewSelection(pixel())
	require.NoError(t, err)
	defer sel.Close()
	assert.ErrorIs(t, applyChoice(sel, choice{plan: 9}), viewmodel.ErrOutOfRange)
}

func TestRenderCatalog(t *testing.T) {
	card, ok := viewmodel.NewCard(*pixel())
	require.True(t, ok)

	var out bytes.Buffer
	renderCatalog(&out, []string{"All", "Google"}, "Google", []viewmodel.Card{card})
	s := out.String()
	assert.Contains(t, s, "[Google]")
	assert.Contains(t, s, "1 product by Google")
	assert.Contains(t, s, "from ₹5,000/mo")
	assert.Contains(t, s, "10% OFF")
}

func TestRenderAbsent(t *testing.T) {
	var out bytes.Buffer
	renderAbsent(&out, "iphone-17-pro")
	assert.Contains(t, out.String(), "Product not found: iphone-17-pro")
}
