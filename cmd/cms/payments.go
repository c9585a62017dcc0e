package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jesses-code-adventures/cms/internal/billing"
	"github.com/jesses-code-adventures/cms/internal/models"
	"github.com/jesses-code-adventures/cms/internal/utils"
)

func newPaymentsCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "payments",
		Short: "Record payments and print receipts",
	}

	cmd.AddCommand(
		newPaymentsListCmd(a),
		newPaymentsRecordCmd(a),
		newPaymentsReceiptCmd(a),
	)
	return cmd
}

func newPaymentsListCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all payments",
		RunE: func(cmd *cobra.Command, args []string) error {
			payments, err := a.svc.ListPayments(cmd.Context())
			if err != nil {
				return fmt.Errorf("failed to list payments: %w", err)
			}
			if len(payments) == 0 {
				fmt.Println("No payments found.")
				return nil
			}

			for _, p := range payments {
				fmt.Printf("%s - %s - %s - %s - %s\n",
					p.ID, p.InvoiceID, p.PaymentDate.Format(models.TimestampLayout),
					formatAmount(p.Amount), orDash(p.Method))
			}
			return nil
		},
	}
}

func newPaymentsRecordCmd(a *app) *cobra.Command {
	var invoiceID, amount, paidAt, method, transactionID string

	cmd := &cobra.Command{
		Use:   "record",
		Short: "Record a payment against an invoice",
		RunE: func(cmd *cobra.Command, args []string) error {
			p := &models.Payment{
				InvoiceID:     invoiceID,
				Amount:        billing.ParseAmount(amount),
				Method:        utils.ToPtrNil(method),
				TransactionID: utils.ToPtrNil(transactionID),
			}
			if paidAt != "" {
				t, err := models.ParseTimestamp(paidAt)
				if err != nil {
					return fmt.Errorf("invalid payment date: %w", err)
				}
				p.PaymentDate = t
			}

			created, o := a.svc.RecordPayment(cmd.Context(), p)
			if err := outcomeErr(o); err != nil {
				return err
			}
			fmt.Printf("%s (ID: %s)\n", o.Message, created.ID)
			return nil
		},
	}

	cmd.Flags().StringVarP(&invoiceID, "invoice", "i", "", "Invoice id")
	cmd.Flags().StringVarP(&amount, "amount", "a", "", "Amount received")
	cmd.Flags().StringVar(&paidAt, "date", "", "Payment time (YYYY-MM-DD or YYYY-MM-DD HH:MM:SS, default now)")
	cmd.Flags().StringVarP(&method, "method", "m", "", "Payment method, e.g. Bank Transfer")
	cmd.Flags().StringVar(&transactionID, "txn", "", "Bank transaction reference")
	cmd.MarkFlagRequired("invoice")
	cmd.MarkFlagRequired("amount")
	return cmd
}

func newPaymentsReceiptCmd(a *app) *cobra.Command {
	var output string
	cmd := &cobra.Command{
		Use:   "receipt <payment-id>",
		Short: "Render a payment receipt to PDF",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, o := a.svc.PaymentReceiptPDF(cmd.Context(), args[0])
			return writeDocument(doc, o, output)
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", "Output file or directory (default: PaymentReceipt_<id>.pdf)")
	return cmd
}
