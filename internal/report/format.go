package report

import (
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/jesses-code-adventures/cms/internal/models"
)

const notAvailable = "N/A"

const currencyPrefix = "Rs. "

func orNA(s *string) string {
	if s == nil || strings.TrimSpace(*s) == "" {
		return notAvailable
	}
	return *s
}

func textOrNA(s string) string {
	if strings.TrimSpace(s) == "" {
		return notAvailable
	}
	return s
}

func money(d decimal.Decimal) string {
	return currencyPrefix + d.StringFixed(2)
}

func moneyOrNA(d *decimal.Decimal) string {
	if d == nil {
		return notAvailable
	}
	return money(*d)
}

func decimalOrNA(d *decimal.Decimal) string {
	if d == nil {
		return notAvailable
	}
	return d.StringFixed(2)
}

func dateOrNA(d *models.Date) string {
	if d == nil || d.IsZero() {
		return notAvailable
	}
	return d.String()
}

var groupedPrinter = message.NewPrinter(language.English)

// groupedMoney formats with thousands separators, e.g. "Rs. 160,000.00".
// Only the whole part goes through the printer so no digits pass through a float.
func groupedMoney(d decimal.Decimal) string {
	fixed := d.StringFixed(2)
	sign := ""
	if rest, ok := strings.CutPrefix(fixed, "-"); ok {
		sign, fixed = "-", rest
	}
	whole, frac, _ := strings.Cut(fixed, ".")
	n, err := strconv.ParseInt(whole, 10, 64)
	if err != nil {
		return currencyPrefix + sign + fixed
	}
	return currencyPrefix + sign + groupedPrinter.Sprintf("%d", n) + "." + frac
}

// percent renders a rate such as 0.09 as "9.00%".
func percent(rate decimal.Decimal) string {
	return rate.Mul(decimal.NewFromInt(100)).StringFixed(2) + "%"
}
