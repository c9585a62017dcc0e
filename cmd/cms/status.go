package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jesses-code-adventures/cms/internal/models"
)

func newStatusCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show record counts and project progress",
		RunE: func(cmd *cobra.Command, args []string) error {
			counts, err := a.svc.Dashboard(cmd.Context())
			if err != nil {
				return fmt.Errorf("failed to load dashboard: %w", err)
			}

			fmt.Printf("Clients:   %d\n", counts.Clients)
			fmt.Printf("Projects:  %d\n", counts.Projects)
			fmt.Printf("Employees: %d\n", counts.Employees)
			fmt.Printf("Invoices:  %d\n", counts.Invoices)
			printStatus("Working", counts.ProjectsWorking)
			printStatus("Pending", counts.ProjectsPending)
			printStatus("Completed", counts.ProjectsCompleted)
			return nil
		},
	}
}

func printStatus(label string, s models.StatusSummary) {
	if s.Count == 0 {
		fmt.Printf("%s projects: 0\n", label)
		return
	}
	fmt.Printf("%s projects: %d (%s)\n", label, s.Count, s.Names)
}
