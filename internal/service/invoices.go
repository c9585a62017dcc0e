package service

import (
	"context"
	"errors"
	"time"

	"github.com/jesses-code-adventures/cms/internal/billing"
	"github.com/jesses-code-adventures/cms/internal/database"
	"github.com/jesses-code-adventures/cms/internal/models"
	"github.com/jesses-code-adventures/cms/internal/utils"
)

const (
	defaultInvoiceStatus = "Pending"
	invoiceTermDays      = 30
)

// InvoiceSummary pairs an invoice with the figures printed on it.
type InvoiceSummary struct {
	Invoice   *models.Invoice   `json:"invoice"`
	Breakdown billing.Breakdown `json:"breakdown"`
}

func (s *BackOffice) ListInvoices(ctx context.Context) ([]*models.Invoice, error) {
	return s.db.ListInvoices(ctx)
}

// GenerateInvoice fills in the status, dates and client the caller left out.
// The client defaults to the billed project's client.
func (s *BackOffice) GenerateInvoice(ctx context.Context, inv *models.Invoice) (*models.Invoice, Outcome) {
	draft := *inv
	if draft.Status == nil || *draft.Status == "" {
		draft.Status = utils.ToPtr(defaultInvoiceStatus)
	}
	if draft.InvoiceDate == nil {
		today := models.DateOf(s.now())
		draft.InvoiceDate = &today
	}
	if draft.DueDate == nil {
		due := models.DateOf(draft.InvoiceDate.AddDate(0, 0, invoiceTermDays))
		draft.DueDate = &due
	}
	if draft.ClientID == nil && draft.ProjectID != nil {
		project, err := s.db.GetProject(ctx, *draft.ProjectID)
		if err != nil {
			s.log.Error().Err(err).Str("project_id", *draft.ProjectID).Msg("invoice project lookup failed")
			return nil, outcomeFor("Project", "finding", err)
		}
		draft.ClientID = project.ClientID
	}

	created, err := s.db.CreateInvoice(ctx, &draft)
	if err != nil {
		s.log.Error().Err(err).Msg("invoice create failed")
		return nil, outcomeFor("Invoice", "generating", err)
	}
	s.log.Info().Str("invoice_id", created.ID).Str("bill_amount", created.BillAmount.StringFixed(2)).Msg("invoice generated")
	return created, succeeded("Invoice generated successfully!")
}

func (s *BackOffice) DeleteInvoice(ctx context.Context, id string) Outcome {
	return s.deleted("Invoice", id, s.db.DeleteInvoice(ctx, id))
}

func (s *BackOffice) InvoiceSummary(ctx context.Context, id string) (*InvoiceSummary, Outcome) {
	inv, err := s.db.GetInvoice(ctx, id)
	if err != nil {
		return nil, outcomeFor("Invoice", "loading", err)
	}
	return &InvoiceSummary{Invoice: inv, Breakdown: s.calc.ForInvoice(inv)}, succeeded("")
}

func (s *BackOffice) ListPayments(ctx context.Context) ([]*models.Payment, error) {
	return s.db.ListPayments(ctx)
}

// RecordPayment stores a payment against an existing invoice. The invoice's
// paid figure follows from the payments on the next read.
func (s *BackOffice) RecordPayment(ctx context.Context, p *models.Payment) (*models.Payment, Outcome) {
	if !p.Amount.IsPositive() {
		return nil, failed(KindInvalid, msgInvalidAmount)
	}
	if p.InvoiceID != "" {
		if _, err := s.db.GetInvoice(ctx, p.InvoiceID); err != nil {
			if !errors.Is(err, database.ErrNotFound) {
				s.log.Error().Err(err).Str("invoice_id", p.InvoiceID).Msg("payment invoice lookup failed")
			}
			return nil, outcomeFor("Invoice", "finding", err)
		}
	}

	draft := *p
	if draft.PaymentDate.IsZero() {
		draft.PaymentDate = s.now().Truncate(time.Second)
	}
	created, err := s.db.CreatePayment(ctx, &draft)
	if err != nil {
		s.log.Error().Err(err).Str("invoice_id", p.InvoiceID).Msg("payment create failed")
		return nil, outcomeFor("Payment", "recording", err)
	}
	s.log.Info().Str("payment_id", created.ID).Str("invoice_id", created.InvoiceID).Msg("payment recorded")
	return created, succeeded("Payment recorded successfully!")
}

func (s *BackOffice) DeletePayment(ctx context.Context, id string) Outcome {
	return s.deleted("Payment", id, s.db.DeletePayment(ctx, id))
}
