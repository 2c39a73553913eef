package main

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/Madhav-Gupta-28/emi-store-backend-go/pricing"
	"github.com/Madhav-Gupta-28/emi-store-backend-go/viewmodel"
)

func renderCatalog(w io.Writer, filters []string, active string, cards []viewmodel.Card) {
	marked := make([]string, len(filters))
	for i, f := range filters {
		if f == active {
			marked[i] = "[" + f + "]"
		} else {
			marked[i] = f
		}
	}
	fmt.Fprintln(w, strings.Join(marked, "  "))

	suffix := "available"
	if active != viewmodel.AllBrands {
		suffix = "by " + active
	}
	plural := "s"
	if len(cards) == 1 {
		plural = ""
	}
	fmt.Fprintf(w, "%d product%s %s\n\n", len(cards), plural, suffix)

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	for _, c := range cards {
		var badges []string
		if c.IsNew {
			badges = append(badges, "NEW")
		}
		if c.ShowDiscount {
			badges = append(badges, fmt.Sprintf("%d%% OFF", c.Discount))
		}
		quote := ""
		if c.HasQuote {
			quote = "from " + pricing.FormatRupees(c.MonthlyQuote) + "/mo"
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\n",
			c.Slug, c.Name, c.Brand, pricing.FormatRupees(c.Price), quote, strings.Join(badges, " "))
	}
	tw.Flush()
}

func renderAbsent(w io.Writer, slug string) {
	fmt.Fprintf(w, "Product not found: %s\nBack to products: emi-quote -brand All\n", slug)
}

func renderProduct(w io.Writer, sel *viewmodel.Selection) {
	p := sel.Product()
	st := sel.State()
	storage := sel.Storage()

	fmt.Fprintf(w, "%s (%s)\n", p.Name, p.Brand)
	fmt.Fprintf(w, "Color: %s  Image: %s\n", sel.Color().Name, sel.DisplayedColor().Image)
	fmt.Fprintf(w, "Storage: %s  Price: %s  MRP: %s", storage.Size,
		pricing.FormatRupees(storage.Price), pricing.FormatRupees(storage.MRP))
	if pct, ok := pricing.DiscountPercent(storage); ok && pct > 0 {
		fmt.Fprintf(w, "  %d%% off", pct)
	}
	fmt.Fprintln(w)

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "#\tMONTHLY\tTENURE\tINTEREST\tTOTAL\tCASHBACK\tEFFECTIVE\t")
	for i, v := range sel.Plans() {
		mark := " "
		if st.PlanIndex == i {
			mark = "*"
		}
		label := ""
		if v.BestValue {
			label = "BEST VALUE"
		}
		cashback, effective := "-", "-"
		if v.ShowEffective {
			cashback = pricing.FormatRupees(v.Plan.Cashback)
			effective = pricing.FormatRupees(v.EffectiveCost)
		}
		fmt.Fprintf(tw, "%s%d\t%s/mo\t%d months\t%s\t%s\t%s\t%s\t%s\n", mark, i,
			pricing.FormatRupees(v.Plan.MonthlyAmount), v.Plan.Tenure, pricing.FormatRate(v.Plan.InterestRate),
			pricing.FormatRupees(v.TotalCost), cashback, effective, label)
	}
	tw.Flush()

	if plan, ok := sel.SelectedPlan(); ok {
		fmt.Fprintf(w, "Selected: %s/mo x %d months\n", pricing.FormatRupees(plan.MonthlyAmount), plan.Tenure)
	} else {
		fmt.Fprintln(w, "Select an EMI plan to proceed")
	}
}
