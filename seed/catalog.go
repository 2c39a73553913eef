// Package seed holds the launch catalog and the EMI plan schedule applied to
// every storage tier.
package seed

import (
	"github.com/shopspring/decimal"

	"github.com/Madhav-Gupta-28/emi-store-backend-go/models"
)

var (
	cashbackRate = decimal.RequireFromString("0.055")
	cashbackStep = decimal.NewFromInt(500)
)

// zero-interest tenures are priced as price/tenure; the rest use a flat
// monthly factor that already includes 10.5% interest.
var interestTenures = []struct {
	tenure int
	factor decimal.Decimal
}{
	{36, decimal.RequireFromString("0.0338")},
	{48, decimal.RequireFromString("0.0266")},
	{60, decimal.RequireFromString("0.0223")},
}

var zeroInterestTenures = []int{3, 6, 12, 24}

const standardInterestRate = 10.5

// EmiPlans builds the seven plans offered on a tier priced at price, ordered by
// ascending tenure. Cashback is about 5.5% of the price in steps of ₹500.
func EmiPlans(price int64) []models.EmiPlan {
	p := decimal.NewFromInt(price)
	cashback := p.Mul(cashbackRate).Div(cashbackStep).Round(0).Mul(cashbackStep).IntPart()

	plans := make([]models.EmiPlan, 0, len(zeroInterestTenures)+len(interestTenures))
	for _, t := range zeroInterestTenures {
		plans = append(plans, models.EmiPlan{
			MonthlyAmount: p.Div(decimal.NewFromInt(int64(t))).Round(0).IntPart(),
			Tenure:        t,
			InterestRate:  0,
			Cashback:      cashback,
		})
	}
	for _, t := range interestTenures {
		plans = append(plans, models.EmiPlan{
			MonthlyAmount: p.Mul(t.factor).Round(0).IntPart(),
			Tenure:        t.tenure,
			InterestRate:  standardInterestRate,
			Cashback:      cashback,
		})
	}
	return plans
}

func tier(size string, mrp, price int64) models.StorageOption {
	return models.StorageOption{Size: size, MRP: mrp, Price: price, EmiPlans: EmiPlans(price)}
}

const cdn = "https://media.tatacroma.com/Croma%20Assets/Communication/Mobiles/Images/"
const resized = "https://media-ik.croma.com/prod/" + cdn

// Products returns a fresh copy of the launch catalog.
func Products() []models.Product {
	return []models.Product{
		{
			Name:         "iPhone 17 Pro",
			Slug:         "iphone-17-pro",
			Brand:        "Apple",
			Category:     models.DefaultCategory,
			IsNewProduct: true,
			Colors: []models.Color{
				{Name: "Natural Titanium", Hex: "#BFA48E", Image: resized + "309747_0_aerxf2.png?tr=w-600"},
				{Name: "Black Titanium", Hex: "#3B3B3D", Image: cdn + "309729_0_mnt0xu.png"},
				{Name: "White Titanium", Hex: "#F2F1EB", Image: cdn + "309730_0_zf9qar.png"},
				{Name: "Desert Titanium", Hex: "#C4A882", Image: resized + "309746_0_itb0g6.png"},
			},
			StorageOptions: []models.StorageOption{
				tier("256GB", 134900, 127400),
				tier("512GB", 154900, 147400),
				tier("1TB", 174900, 167400),
			},
		},
		{
			Name:     "Samsung Galaxy S24 Ultra",
			Slug:     "samsung-s24-ultra",
			Brand:    "Samsung",
			Category: models.DefaultCategory,
			Colors: []models.Color{
				{Name: "Titanium Gray", Hex: "#7A7A7A", Image: cdn + "303840_rlonbq.png"},
				{Name: "Titanium Violet", Hex: "#9B7DB8", Image: cdn + "303817_4_wgxzg1.png"},
				{Name: "Titanium Yellow", Hex: "#E8D44D", Image: resized + "303809_kwm8bv.png"},
				{Name: "Titanium Black", Hex: "#2B2B2B", Image: "https://encrypted-tbn0.gstatic.com/images?q=tbn:ANd9GcS6cny5S7MiRdveF4NQi8aE77EnfiFt4pZg2A&s"},
			},
			StorageOptions: []models.StorageOption{
				tier("256GB", 134999, 121999),
				tier("512GB", 144999, 131999),
				tier("1TB", 164999, 151999),
			},
		},
		{
			Name:         "OnePlus 13",
			Slug:         "oneplus-13",
			Brand:        "OnePlus",
			Category:     models.DefaultCategory,
			IsNewProduct: true,
			Colors: []models.Color{
				{Name: "Midnight Ocean", Hex: "#1B3A5C", Image: resized + "312534_0_bcgauh.png"},
				{Name: "Arctic Dawn", Hex: "#F5F0E8", Image: resized + "312536_0_ymiz2z.png?tr=w-600"},
				{Name: "Black Eclipse", Hex: "#1A1A1A", Image: cdn + "312540_0_uzcjlb.png"},
			},
			StorageOptions: []models.StorageOption{
				tier("256GB", 69999, 65999),
				tier("512GB", 79999, 75999),
				tier("1TB", 89999, 85999),
			},
		},
		{
			Name:         "Google Pixel 9 Pro",
			Slug:         "google-pixel-9-pro",
			Brand:        "Google",
			Category:     models.DefaultCategory,
			IsNewProduct: true,
			Colors: []models.Color{
				{Name: "Obsidian", Hex: "#2C2C2C", Image: cdn + "309165_0_gvylu0.png"},
				{Name: "Porcelain", Hex: "#F2EDE3", Image: cdn + "309145_0_liywir.png"},
				{Name: "Hazel", Hex: "#8B7B6B", Image: resized + "309163_0_s395j3.png"},
			},
			StorageOptions: []models.StorageOption{
				tier("256GB", 109999, 99999),
				tier("512GB", 124999, 114999),
				tier("1TB", 144999, 134999),
			},
		},
	}
}
