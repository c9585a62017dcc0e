package report

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/jesses-code-adventures/cms/internal/billing"
	"github.com/jesses-code-adventures/cms/internal/models"
)

const logoPlaceholderSuffix = " (LOGO PLACEHOLDER)"

var lineItemTable = table{
	columns: []column{
		{header: "Sr. No.", width: 15, align: "C"},
		{header: "Description of Work", width: 125},
		{header: "Qty/Unit", width: 25, align: "C"},
		{header: "Amount (Rs)", width: 25, align: "R"},
	},
	rowHeight: 8,
	fontSize:  9,
}

// Invoice renders a tax invoice. The breakdown is computed by the caller so
// the printed figures match what the API reports for the same invoice.
func (r *Renderer) Invoice(inv *models.Invoice, b billing.Breakdown) ([]byte, error) {
	if inv == nil {
		return nil, nil
	}
	return r.output(r.invoice(inv, b))
}

func (r *Renderer) invoice(inv *models.Invoice, b billing.Breakdown) *doc {
	co := r.opts.Company
	d := r.newDoc("Invoice " + inv.ID)
	d.AddPage()

	if !r.drawLogo(d, marginLeft, 8, 35) {
		d.SetXY(marginLeft, 12)
		d.SetFont("Arial", "B", 11)
		d.SetTextColor(0, 77, 153)
		d.cell(90, 10, co.Name+logoPlaceholderSuffix, "0", 0, "L", false)
		d.SetTextColor(0, 0, 0)
	}

	d.SetXY(110, 8)
	d.SetFont("Arial", "B", 12)
	d.cell(90, 6, co.Owner, "0", 2, "R", false)
	d.SetFont("Arial", "", 9)
	for _, line := range co.AddressLines {
		d.cell(90, 4.5, line, "0", 2, "R", false)
	}
	if co.Phone != "" {
		d.cell(90, 4.5, "Mob: "+co.Phone, "0", 2, "R", false)
	}
	if co.Email != "" {
		d.cell(90, 4.5, "Email: "+co.Email, "0", 2, "R", false)
	}

	if d.GetY() < 42 {
		d.SetY(42)
	}
	d.SetLineWidth(0.5)
	d.SetDrawColor(0, 77, 153)
	d.Line(marginLeft, d.GetY(), marginLeft+printableWidth, d.GetY())
	d.SetLineWidth(0.2)
	d.SetDrawColor(0, 0, 0)
	d.Ln(3)

	d.SetFont("Arial", "B", 16)
	d.cell(0, 9, "TAX INVOICE", "0", 1, "C", false)
	d.Ln(1)

	r.invoiceDetails(d, inv)
	d.Ln(4)
	r.invoiceParties(d, inv)
	d.Ln(4)

	d.drawTable(lineItemTable, [][]string{
		{"01", "General Project Services (See Project ID)", "L.S.", b.BillAmount.StringFixed(2)},
	})
	d.Ln(5)

	top := d.GetY()
	bankBottom := r.invoiceBankBox(d, top)
	summaryBottom := invoiceSummary(d, top, b)

	sigY := bankBottom
	if summaryBottom > sigY {
		sigY = summaryBottom
	}
	d.SetXY(110, sigY+12)
	d.SetFont("Arial", "B", 10)
	d.cell(90, 6, "For "+strings.ToUpper(co.Name), "0", 2, "R", false)
	d.Ln(16)
	d.SetX(110)
	d.cell(90, 6, "AUTHORISED SIGNATORY.", "0", 1, "R", false)
	return d
}

func (r *Renderer) invoiceDetails(d *doc, inv *models.Invoice) {
	pair := func(label, value string, red bool) {
		d.SetFont("Arial", "B", 9)
		d.SetFillColor(240, 240, 240)
		d.cell(30, 7, label, "1", 0, "L", true)
		d.SetFont("Arial", "", 9)
		if red {
			d.SetTextColor(200, 0, 0)
			d.SetFont("Arial", "B", 9)
		}
		d.cell(65, 7, d.fit(value, 65), "1", 0, "L", false)
		d.SetTextColor(0, 0, 0)
	}

	pair("INVOICE NO:", inv.ID, false)
	pair("DATE:", dateOrNA(inv.InvoiceDate), false)
	d.Ln(-1)
	pair("PROJECT ID:", orNA(inv.ProjectID), false)
	pair("CLIENT ID:", orNA(inv.ClientID), false)
	d.Ln(-1)
	pair("STATUS:", strings.ToUpper(orNA(inv.Status)), true)
	pair("DUE DATE:", dateOrNA(inv.DueDate), false)
	d.Ln(-1)
}

func (r *Renderer) invoiceParties(d *doc, inv *models.Invoice) {
	const boxHeight = 26.0
	name := orNA(inv.ClientName)
	address := orNA(inv.ClientAddress)

	d.SetFont("Arial", "B", 10)
	d.SetFillColor(200, 220, 255)
	d.cell(95, 7, "Bill To Party", "1", 0, "L", true)
	d.cell(95, 7, "Service To Party", "1", 1, "L", true)

	top := d.GetY()
	d.Rect(marginLeft, top, 95, boxHeight, "D")
	d.Rect(marginLeft+95, top, 95, boxHeight, "D")
	for _, x := range []float64{marginLeft, marginLeft + 95} {
		d.SetXY(x+1, top+1)
		d.SetFont("Arial", "B", 10)
		d.cell(93, 6, d.fit(name, 93), "0", 2, "L", false)
		d.SetFont("Arial", "", 9)
		d.multi(93, 5, address, "0", "L", false)
	}
	d.SetXY(marginLeft, top+boxHeight)
}

// invoiceBankBox returns the y coordinate below the box.
func (r *Renderer) invoiceBankBox(d *doc, top float64) float64 {
	co := r.opts.Company
	d.SetXY(marginLeft, top)
	d.SetFont("Arial", "B", 10)
	d.SetFillColor(240, 240, 240)
	d.cell(90, 7, "Bank Details:", "1", 2, "L", true)
	d.SetFont("Arial", "", 9)
	d.cell(90, 6, "Name: "+co.BankName, "LR", 2, "L", false)
	d.cell(90, 6, "A/C: "+co.BankAccount, "LR", 2, "L", false)
	d.cell(90, 6, "IFSC: "+co.BankIFSC, "LRB", 2, "L", false)
	d.Ln(3)
	d.SetFont("Arial", "B", 10)
	d.cell(90, 7, "Terms & Conditions", "0", 2, "L", false)
	d.SetFont("Arial", "", 9)
	d.multi(90, 5, co.PaymentTerms, "0", "L", false)
	return d.GetY()
}

// invoiceSummary returns the y coordinate below the box.
func invoiceSummary(d *doc, top float64, b billing.Breakdown) float64 {
	const (
		x          = 110.0
		labelWidth = 50.0
		valueWidth = 40.0
	)
	row := func(label string, value decimal.Decimal, bold bool, fill bool) {
		style := ""
		if bold {
			style = "B"
		}
		d.SetX(x)
		d.SetFont("Arial", style, 9)
		d.cell(labelWidth, 7, label, "1", 0, "L", fill)
		d.cell(valueWidth, 7, value.StringFixed(2), "1", 1, "R", fill)
	}

	rate := percent(b.TaxRate)
	d.SetY(top)
	row("Bill Amount Rs.", b.BillAmount, false, false)
	row("Add: CGST @"+rate+" Rs.", b.TaxAmount, false, false)
	row("Add: SGST @"+rate+" Rs.", b.TaxAmount, false, false)
	row("Total Tax Amt. Rs.", b.TotalTax, false, false)
	row("Round Off Amt. Rs.", b.RoundOff, false, false)
	d.SetFillColor(200, 220, 255)
	row("Total Bill Amt. With Tax Rs.", b.FinalTotal, true, true)
	row("AMOUNT PAID", b.AmountPaid, false, false)
	d.SetFillColor(255, 230, 230)
	row("BALANCE DUE", b.BalanceDue, true, true)
	return d.GetY()
}
