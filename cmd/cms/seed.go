package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jesses-code-adventures/cms/internal/service"
)

func newSeedCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Load the sample company records into an empty database",
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := a.svc.Seed(cmd.Context())
			if errors.Is(err, service.ErrAlreadySeeded) {
				fmt.Println("Database already has records; nothing seeded.")
				return nil
			}
			if err != nil {
				return fmt.Errorf("failed to seed database: %w", err)
			}

			fmt.Println("Seeded sample records:")
			fmt.Printf("  Client:    %s\n", res.ClientID)
			fmt.Printf("  Project:   %s\n", res.ProjectID)
			fmt.Printf("  Employees: %s\n", strings.Join(res.Employees, ", "))
			fmt.Printf("  Supplier:  %s\n", res.SupplierID)
			fmt.Printf("  Service:   %s\n", res.ServiceID)
			fmt.Printf("  Material:  %s\n", res.MaterialID)
			fmt.Printf("  Invoice:   %s\n", res.InvoiceID)
			fmt.Printf("  Payment:   %s\n", res.PaymentID)
			return nil
		},
	}
}
