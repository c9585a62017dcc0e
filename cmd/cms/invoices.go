package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jesses-code-adventures/cms/internal/billing"
	"github.com/jesses-code-adventures/cms/internal/models"
	"github.com/jesses-code-adventures/cms/internal/utils"
)

func newInvoicesCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "invoices",
		Short: "Bill projects and inspect invoices",
	}

	cmd.AddCommand(
		newInvoicesListCmd(a),
		newInvoicesGenerateCmd(a),
		newInvoicesSummaryCmd(a),
		newInvoicesPDFCmd(a),
	)
	return cmd
}

func newInvoicesListCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all invoices",
		RunE: func(cmd *cobra.Command, args []string) error {
			invoices, err := a.svc.ListInvoices(cmd.Context())
			if err != nil {
				return fmt.Errorf("failed to list invoices: %w", err)
			}
			if len(invoices) == 0 {
				fmt.Println("No invoices found.")
				return nil
			}

			for _, inv := range invoices {
				date := "-"
				if inv.InvoiceDate != nil {
					date = inv.InvoiceDate.String()
				}
				fmt.Printf("%s - %s - %s - bill %s - paid %s - %s\n",
					inv.ID, date, orDash(inv.ClientName),
					formatAmount(inv.BillAmount), formatAmount(inv.Paid()), orDash(inv.Status))
			}
			return nil
		},
	}
}

func newInvoicesGenerateCmd(a *app) *cobra.Command {
	var projectID, clientID, amount, invoiceDate, dueDate, status string

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Bill a project",
		Long:  "Create an invoice for a project. The client defaults to the project's client and the due date to 30 days after the invoice date.",
		RunE: func(cmd *cobra.Command, args []string) error {
			inv := &models.Invoice{
				ProjectID:  utils.ToPtrNil(projectID),
				ClientID:   utils.ToPtrNil(clientID),
				BillAmount: billing.ParseAmount(amount),
				Status:     utils.ToPtrNil(status),
			}
			var err error
			if inv.InvoiceDate, err = optionalDate(invoiceDate); err != nil {
				return err
			}
			if inv.DueDate, err = optionalDate(dueDate); err != nil {
				return err
			}

			created, o := a.svc.GenerateInvoice(cmd.Context(), inv)
			if err := outcomeErr(o); err != nil {
				return err
			}
			fmt.Printf("%s (ID: %s)\n", o.Message, created.ID)
			return nil
		},
	}

	cmd.Flags().StringVarP(&projectID, "project", "p", "", "Project id")
	cmd.Flags().StringVarP(&clientID, "client", "c", "", "Client id (defaults to the project's client)")
	cmd.Flags().StringVarP(&amount, "amount", "a", "", "Bill amount before tax, e.g. 1,60,000")
	cmd.Flags().StringVar(&invoiceDate, "date", "", "Invoice date (YYYY-MM-DD, default today)")
	cmd.Flags().StringVar(&dueDate, "due", "", "Due date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&status, "status", "", "Invoice status (default Pending)")
	cmd.MarkFlagRequired("amount")
	return cmd
}

func newInvoicesSummaryCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "summary <invoice-id>",
		Short: "Show the tax breakdown and balance for an invoice",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			summary, o := a.svc.InvoiceSummary(cmd.Context(), args[0])
			if err := outcomeErr(o); err != nil {
				return err
			}

			b := summary.Breakdown
			fmt.Printf("Invoice %s (%s)\n", summary.Invoice.ID, orDash(summary.Invoice.ClientName))
			fmt.Printf("  Bill Amount: %s\n", formatAmount(b.BillAmount))
			fmt.Printf("  CGST:        %s\n", formatAmount(b.TaxAmount))
			fmt.Printf("  SGST:        %s\n", formatAmount(b.TaxAmount))
			fmt.Printf("  Total Tax:   %s\n", formatAmount(b.TotalTax))
			fmt.Printf("  Round Off:   %s\n", formatAmount(b.RoundOff))
			fmt.Printf("  Final Total: %s\n", formatAmount(b.FinalTotal))
			fmt.Printf("  Amount Paid: %s\n", formatAmount(b.AmountPaid))
			fmt.Printf("  Balance Due: %s\n", formatAmount(b.BalanceDue))
			return nil
		},
	}
}

func newInvoicesPDFCmd(a *app) *cobra.Command {
	var output string
	cmd := &cobra.Command{
		Use:   "pdf <invoice-id>",
		Short: "Render a tax invoice to PDF",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, o := a.svc.InvoicePDF(cmd.Context(), args[0])
			return writeDocument(doc, o, output)
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", "Output file or directory (default: invoice_<id>.pdf)")
	return cmd
}

func optionalDate(s string) (*models.Date, error) {
	if s == "" {
		return nil, nil
	}
	d, err := models.ParseDate(s)
	if err != nil {
		return nil, fmt.Errorf("invalid date format, expected YYYY-MM-DD: %w", err)
	}
	return &d, nil
}
