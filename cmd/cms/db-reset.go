package main

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func newDbResetCmd(a *app) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "db-reset",
		Short: "Drop every table and recreate the schema",
		Long: `Drop all back office tables and recreate them empty.
This permanently deletes every client, project, employee, invoice and payment.

WARNING: This operation cannot be undone!`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !yes {
				fmt.Println("WARNING: This will permanently delete all records!")
				fmt.Print("Are you sure you want to continue? (y/N): ")

				response, _ := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
				if r := strings.TrimSpace(response); r != "y" && r != "Y" {
					fmt.Println("Database reset cancelled.")
					return nil
				}
			}

			if err := a.db.Reset(cmd.Context()); err != nil {
				return fmt.Errorf("failed to reset database: %w", err)
			}
			fmt.Printf("Successfully recreated database: %s\n", a.cfg.DatabaseURL)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Skip the confirmation prompt")
	return cmd
}
