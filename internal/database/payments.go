package database

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jesses-code-adventures/cms/internal/models"
)

const paymentColumns = "payment_id, invoice_id, payment_date, amount, payment_method, transaction_id"

func scanPayment(row scanner) (*models.Payment, error) {
	var p models.Payment
	var paymentDate string
	var method, transactionID sql.NullString
	if err := row.Scan(&p.ID, &p.InvoiceID, &paymentDate, &p.Amount, &method, &transactionID); err != nil {
		return nil, err
	}
	p.PaymentDate = parseTimestamp(paymentDate)
	p.Method = nullStringToPtr(method)
	p.TransactionID = nullStringToPtr(transactionID)
	return &p, nil
}

func (s *SQLDB) ListPayments(ctx context.Context) ([]*models.Payment, error) {
	payments, err := listRows(ctx, s, "SELECT "+paymentColumns+" FROM payments ORDER BY LENGTH(payment_id), payment_id", scanPayment)
	if err != nil {
		return nil, fmt.Errorf("failed to list payments: %w", err)
	}
	return payments, nil
}

func (s *SQLDB) GetPayment(ctx context.Context, id string) (*models.Payment, error) {
	payment, err := getRow(ctx, s, "SELECT "+paymentColumns+" FROM payments WHERE payment_id = ?", scanPayment, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get payment %s: %w", id, err)
	}
	return payment, nil
}

// CreatePayment records a payment. The invoice row is left untouched; its
// paid amount is derived from payments on read.
func (s *SQLDB) CreatePayment(ctx context.Context, p *models.Payment) (*models.Payment, error) {
	if err := requireFields("payment", [2]string{"invoice_id", p.InvoiceID}); err != nil {
		return nil, err
	}
	created := *p
	err := s.withTx(ctx, func(q querier) error {
		id, err := s.nextID(ctx, q, "payments")
		if err != nil {
			return err
		}
		created.ID = id
		_, err = s.exec(ctx, q,
			"INSERT INTO payments ("+paymentColumns+") VALUES (?, ?, ?, ?, ?, ?)",
			id,
			p.InvoiceID,
			p.PaymentDate.Format(models.TimestampLayout),
			p.Amount,
			ptrToNullString(p.Method),
			ptrToNullString(p.TransactionID),
		)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to record payment: %w", err)
	}
	return &created, nil
}

func (s *SQLDB) DeletePayment(ctx context.Context, id string) error {
	if err := s.deleteByID(ctx, "payments", "payment_id", id); err != nil {
		return fmt.Errorf("failed to delete payment %s: %w", id, err)
	}
	return nil
}
