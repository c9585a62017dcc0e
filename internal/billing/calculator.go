// Package billing derives the tax and balance figures printed on invoices.
package billing

import (
	"encoding/json"
	"math"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/jesses-code-adventures/cms/internal/models"
)

// DefaultTaxRate is one component of the two-part CGST/SGST split.
var DefaultTaxRate = decimal.RequireFromString("0.09")

// Breakdown is recomputed for every render and never stored.
type Breakdown struct {
	BillAmount decimal.Decimal `json:"bill_amount"`
	TaxRate    decimal.Decimal `json:"tax_rate"`
	TaxAmount  decimal.Decimal `json:"tax_amount"`
	TotalTax   decimal.Decimal `json:"total_tax"`
	Subtotal   decimal.Decimal `json:"subtotal"`
	RoundOff   decimal.Decimal `json:"round_off"`
	FinalTotal decimal.Decimal `json:"final_total"`
	AmountPaid decimal.Decimal `json:"amount_paid"`
	BalanceDue decimal.Decimal `json:"balance_due"`
}

type Calculator struct {
	TaxRate  decimal.Decimal
	RoundOff decimal.Decimal
}

func NewCalculator(taxRate, roundOff decimal.Decimal) *Calculator {
	return &Calculator{TaxRate: taxRate, RoundOff: roundOff}
}

// Calculate rounds half away from zero to two places at each step that the
// printed summary shows. The balance is not clamped, so overpayment goes negative.
func (c *Calculator) Calculate(bill, paid decimal.Decimal) Breakdown {
	tax := bill.Mul(c.TaxRate).Round(2)
	totalTax := tax.Mul(decimal.NewFromInt(2)).Round(2)
	subtotal := bill.Add(totalTax)
	final := subtotal.Add(c.RoundOff).Round(2)

	return Breakdown{
		BillAmount: bill,
		TaxRate:    c.TaxRate,
		TaxAmount:  tax,
		TotalTax:   totalTax,
		Subtotal:   subtotal,
		RoundOff:   c.RoundOff,
		FinalTotal: final,
		AmountPaid: paid,
		BalanceDue: final.Sub(paid),
	}
}

// ForInvoice uses the reconciled paid amount when payments have been recorded.
func (c *Calculator) ForInvoice(inv *models.Invoice) Breakdown {
	if inv == nil {
		return c.Calculate(decimal.Zero, decimal.Zero)
	}
	return c.Calculate(inv.BillAmount, inv.Paid())
}

// ParseAmount converts loosely typed input to a decimal. Anything missing or
// malformed becomes zero.
func ParseAmount(v any) decimal.Decimal {
	switch x := v.(type) {
	case nil:
		return decimal.Zero
	case decimal.Decimal:
		return x
	case *decimal.Decimal:
		if x == nil {
			return decimal.Zero
		}
		return *x
	case decimal.NullDecimal:
		if !x.Valid {
			return decimal.Zero
		}
		return x.Decimal
	case string:
		d, err := decimal.NewFromString(strings.ReplaceAll(strings.TrimSpace(x), ",", ""))
		if err != nil {
			return decimal.Zero
		}
		return d
	case *string:
		if x == nil {
			return decimal.Zero
		}
		return ParseAmount(*x)
	case []byte:
		return ParseAmount(string(x))
	case json.Number:
		return ParseAmount(string(x))
	case float64:
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return decimal.Zero
		}
		return decimal.NewFromFloat(x)
	case float32:
		if f := float64(x); math.IsNaN(f) || math.IsInf(f, 0) {
			return decimal.Zero
		}
		return decimal.NewFromFloat32(x)
	case int:
		return decimal.NewFromInt(int64(x))
	case int32:
		return decimal.NewFromInt32(x)
	case int64:
		return decimal.NewFromInt(x)
	default:
		return decimal.Zero
	}
}
