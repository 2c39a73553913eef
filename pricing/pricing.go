// Package pricing derives the figures shown next to a storage tier and its EMI
// plans. Every function is pure; amounts are whole rupees as stored in the catalog.
package pricing

import (
	"github.com/shopspring/decimal"

	"github.com/Madhav-Gupta-28/emi-store-backend-go/models"
)

// BestValueMaxTenure is the longest zero-interest tenure flagged as best value.
const BestValueMaxTenure = 6

var hundred = decimal.NewFromInt(100)

// DiscountPercent returns round((mrp - price) / mrp * 100), rounding halves up.
// It reports false when the MRP is not positive.
func DiscountPercent(s models.StorageOption) (int, bool) {
	if s.MRP <= 0 {
		return 0, false
	}
	pct := decimal.NewFromInt(s.MRP - s.Price).Mul(hundred).Div(decimal.NewFromInt(s.MRP)).Round(0)
	return int(pct.IntPart()), true
}

func IsZeroInterest(p models.EmiPlan) bool {
	return p.InterestRate == 0
}

// IsBestValue flags short zero-interest plans. Several plans of one tier may qualify.
func IsBestValue(p models.EmiPlan) bool {
	return IsZeroInterest(p) && p.Tenure <= BestValueMaxTenure
}

func TotalCost(p models.EmiPlan) int64 {
	return p.MonthlyAmount * int64(p.Tenure)
}

// EffectiveCost is the total plan cost minus cashback. Only display it when
// ShowEffectiveCost is true.
func EffectiveCost(p models.EmiPlan) int64 {
	return TotalCost(p) - p.Cashback
}

func ShowEffectiveCost(p models.EmiPlan) bool {
	return p.Cashback > 0
}

// BestMonthlyQuote returns the plan with the lowest monthly amount, used for the
// "from ₹X/mo" teaser. Ties go to the later plan in catalog order.
func BestMonthlyQuote(s models.StorageOption) (models.EmiPlan, bool) {
	if len(s.EmiPlans) == 0 {
		return models.EmiPlan{}, false
	}
	best := s.EmiPlans[0]
	for _, p := range s.EmiPlans[1:] {
		if p.MonthlyAmount <= best.MonthlyAmount {
			best = p
		}
	}
	return best, true
}

// PlanView bundles the derived values of one plan for rendering.
type PlanView struct {
	Plan          models.EmiPlan
	ZeroInterest  bool
	BestValue     bool
	TotalCost     int64
	EffectiveCost int64
	ShowEffective bool
}

func NewPlanView(p models.EmiPlan) PlanView {
	return PlanView{
		Plan:          p,
		ZeroInterest:  IsZeroInterest(p),
		BestValue:     IsBestValue(p),
		TotalCost:     TotalCost(p),
		EffectiveCost: EffectiveCost(p),
		ShowEffective: ShowEffectiveCost(p),
	}
}

// PlanViews derives a view for every plan of the tier, in catalog order.
func PlanViews(s models.StorageOption) []PlanView {
	views := make([]PlanView, len(s.EmiPlans))
	for i, p := range s.EmiPlans {
		views[i] = NewPlanView(p)
	}
	return views
}
