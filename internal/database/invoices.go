package database

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/jesses-code-adventures/cms/internal/models"
)

// The paid figure is derived from recorded payments when any exist; the
// stored amount_paid is only the fallback for invoices with none.
const invoiceSelect = `
	SELECT i.invoice_id, i.project_id, i.client_id, i.invoice_date, i.due_date,
		i.bill_amount, i.amount_paid, i.status,
		c.client_name, c.address,
		(SELECT SUM(p.amount) FROM payments p WHERE p.invoice_id = i.invoice_id) AS payments_total
	FROM invoices i
	LEFT JOIN clients c ON i.client_id = c.client_id`

func scanInvoice(row scanner) (*models.Invoice, error) {
	var inv models.Invoice
	var projectID, clientID, invoiceDate, dueDate, status, clientName, clientAddress sql.NullString
	var bill, paid, paymentsTotal decimal.NullDecimal
	if err := row.Scan(&inv.ID, &projectID, &clientID, &invoiceDate, &dueDate, &bill, &paid, &status, &clientName, &clientAddress, &paymentsTotal); err != nil {
		return nil, err
	}
	inv.ProjectID = nullStringToPtr(projectID)
	inv.ClientID = nullStringToPtr(clientID)
	inv.InvoiceDate = nullStringToDate(invoiceDate)
	inv.DueDate = nullStringToDate(dueDate)
	inv.BillAmount = bill.Decimal
	inv.AmountPaid = paid.Decimal
	inv.Status = nullStringToPtr(status)
	inv.ClientName = nullStringToPtr(clientName)
	inv.ClientAddress = nullStringToPtr(clientAddress)
	inv.PaymentsTotal = nullDecimalToPtr(paymentsTotal)
	return &inv, nil
}

func (s *SQLDB) ListInvoices(ctx context.Context) ([]*models.Invoice, error) {
	invoices, err := listRows(ctx, s, invoiceSelect+" ORDER BY LENGTH(i.invoice_id), i.invoice_id", scanInvoice)
	if err != nil {
		return nil, fmt.Errorf("failed to list invoices: %w", err)
	}
	return invoices, nil
}

func (s *SQLDB) GetInvoice(ctx context.Context, id string) (*models.Invoice, error) {
	invoice, err := getRow(ctx, s, invoiceSelect+" WHERE i.invoice_id = ?", scanInvoice, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get invoice %s: %w", id, err)
	}
	return invoice, nil
}

func (s *SQLDB) CreateInvoice(ctx context.Context, inv *models.Invoice) (*models.Invoice, error) {
	created := *inv
	created.PaymentsTotal = nil
	err := s.withTx(ctx, func(q querier) error {
		id, err := s.nextID(ctx, q, "invoices")
		if err != nil {
			return err
		}
		created.ID = id
		_, err = s.exec(ctx, q,
			`INSERT INTO invoices (invoice_id, project_id, client_id, invoice_date, due_date, bill_amount, amount_paid, status)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
			id,
			ptrToNullString(inv.ProjectID),
			ptrToNullString(inv.ClientID),
			dateToNullString(inv.InvoiceDate),
			dateToNullString(inv.DueDate),
			inv.BillAmount,
			inv.AmountPaid,
			ptrToNullString(inv.Status),
		)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create invoice: %w", err)
	}
	return &created, nil
}

func (s *SQLDB) DeleteInvoice(ctx context.Context, id string) error {
	if err := s.deleteByID(ctx, "invoices", "invoice_id", id); err != nil {
		return fmt.Errorf("failed to delete invoice %s: %w", id, err)
	}
	return nil
}
