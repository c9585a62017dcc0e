package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jesses-code-adventures/cms/internal/server"
)

func newServeCmd(a *app) *cobra.Command {
	var skipMigrate bool

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		Long:  "Apply the schema and serve the back office API until interrupted.",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			if !skipMigrate {
				if err := a.db.Migrate(ctx); err != nil {
					return fmt.Errorf("failed to migrate database: %w", err)
				}
			}
			srv, err := server.New(a.cfg, a.svc)
			if err != nil {
				return fmt.Errorf("failed to create server: %w", err)
			}
			return srv.Run(ctx)
		},
	}

	// Parsed before the root loads config, so it lands in the overrides.
	cmd.Flags().StringVarP(&a.overrides.HTTPAddr, "addr", "a", "", "Listen address (overrides HTTP_ADDR)")
	cmd.Flags().BoolVar(&skipMigrate, "skip-migrate", false, "Do not apply the schema on startup")
	return cmd
}
