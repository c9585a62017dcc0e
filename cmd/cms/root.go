package main

import (
	"github.com/spf13/cobra"
)

// annotationNoDB marks commands that run without a database connection.
const annotationNoDB = "no-db"

func newRootCmd(a *app) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "cms",
		Short: "Contractor back office for clients, projects, staff and billing",
		Long: `Manage clients, projects, employees, suppliers, materials and services,
bill projects with tax invoices, record payments and render PDF reports.
Run "cms serve" for the web API.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Annotations[annotationNoDB] == "true" {
				return nil
			}
			return a.init()
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&a.overrides.DatabaseURL, "db-url", "", "Database URL or file path (overrides DATABASE_URL)")
	flags.StringVar(&a.overrides.DatabaseDriver, "db-driver", "", "Database driver: sqlite3, libsql, sqlite, mysql, pgx")
	flags.StringVar(&a.overrides.DevMode, "dev-mode", "", "Force dev mode on or off (true|false)")

	rootCmd.AddCommand(
		newServeCmd(a),
		newMigrateCmd(a),
		newDbResetCmd(a),
		newSeedCmd(a),
		newStatusCmd(a),
		newConfigCmd(a),
		newClientsCmd(a),
		newInvoicesCmd(a),
		newPaymentsCmd(a),
		newReportCmd(a),
		newExportCmd(a),
		newHashPasswordCmd(),
	)

	return rootCmd
}
