package report

import (
	"fmt"

	"github.com/jesses-code-adventures/cms/internal/models"
)

const receiptFooterText = "This is a system-generated receipt. No signature required."

func (r *Renderer) PaymentReceipt(p *models.Payment) ([]byte, error) {
	if p == nil {
		return nil, nil
	}
	return r.output(r.paymentReceipt(p))
}

func (r *Renderer) paymentReceipt(p *models.Payment) *doc {
	co := r.opts.Company
	d := r.newDoc("Payment Receipt " + p.ID)
	d.SetFooterFunc(func() {
		d.SetY(-15)
		d.SetFont("Arial", "I", 8)
		d.SetTextColor(128, 128, 128)
		d.cell(0, 10, receiptFooterText, "0", 0, "C", false)
		d.SetTextColor(0, 0, 0)
	})
	d.AddPage()

	if !r.drawLogo(d, marginLeft, 8, 30) {
		d.SetXY(marginLeft, 10)
		d.SetFont("Arial", "B", 14)
		d.SetTextColor(0, 77, 153)
		d.cell(90, 10, co.Name, "0", 0, "L", false)
		d.SetTextColor(0, 0, 0)
	}
	d.SetY(40)

	d.SetFont("Arial", "B", 20)
	d.SetTextColor(0, 77, 153)
	d.cell(0, 12, "PAYMENT RECEIPT", "0", 1, "C", false)
	d.SetTextColor(0, 0, 0)
	d.SetFont("Arial", "", 10)
	d.cell(0, 6, "Receipt Date: "+r.now().Format("02 January 2006"), "0", 1, "R", false)
	d.Ln(6)

	d.detailRow("Payment ID", p.ID)
	d.detailRow("Invoice ID", p.InvoiceID)
	d.detailRow("Payment Date", p.PaymentDate.Format(models.TimestampLayout))
	d.detailRow("Payment Method", orNA(p.Method))
	d.detailRow("Transaction ID", orNA(p.TransactionID))

	d.SetFont("Arial", "B", 12)
	d.SetFillColor(240, 240, 240)
	d.cell(50, 10, "Amount Paid", "1", 0, "L", true)
	d.SetTextColor(0, 102, 0)
	d.cell(printableWidth-50, 10, groupedMoney(p.Amount), "1", 1, "L", false)
	d.SetTextColor(0, 0, 0)
	d.Ln(10)

	d.SetFont("Arial", "", 10)
	d.multi(printableWidth, 6, fmt.Sprintf(
		"Thank you for your payment. This receipt confirms that the amount above has been received against invoice %s.\nFor any queries please contact us at %s or %s.",
		p.InvoiceID, co.Email, co.Phone), "0", "L", false)
	d.Ln(20)

	d.SetX(130)
	d.SetFont("Arial", "B", 10)
	d.cell(70, 6, "Authorized Signature:", "0", 2, "L", false)
	d.Ln(12)
	d.SetX(130)
	d.Line(130, d.GetY(), 200, d.GetY())
	d.SetFont("Arial", "", 9)
	d.cell(70, 6, "(Finance Department)", "0", 1, "C", false)
	return d
}
