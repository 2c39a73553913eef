package pricing

import (
	"strconv"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// DefaultLocale groups thousands the way the storefront's Indian audience reads them.
var DefaultLocale = language.MustParse("en-IN")

const rupee = "₹"

// Formatter renders whole-rupee amounts with locale-aware digit grouping.
type Formatter struct {
	p *message.Printer
}

func NewFormatter(tag language.Tag) *Formatter {
	return &Formatter{p: message.NewPrinter(tag)}
}

var defaultFormatter = NewFormatter(DefaultLocale)

// Amount groups digits, e.g. 127400 -> "1,27,400" for en-IN.
func (f *Formatter) Amount(v int64) string {
	return f.p.Sprintf("%d", v)
}

func (f *Formatter) Rupees(v int64) string {
	return rupee + f.Amount(v)
}

func FormatAmount(v int64) string { return defaultFormatter.Amount(v) }

func FormatRupees(v int64) string { return defaultFormatter.Rupees(v) }

// FormatRate renders the interest badge: "0% interest" or e.g. "10.5%".
func FormatRate(rate float64) string {
	if rate == 0 {
		return "0% interest"
	}
	return strconv.FormatFloat(rate, 'f', -1, 64) + "%"
}
