package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jesses-code-adventures/cms/internal/config"
)

func newConfigCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:         "config",
		Short:       "Print the resolved non-secret configuration",
		Long:        "Load .env, the environment and any flag overrides, then print the values the other commands would use.",
		Annotations: map[string]string{annotationNoDB: "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(a.overrides)
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}
			cfg.Dump()
			if cfg.UsingDevSecret() {
				fmt.Println("Warning: SECRET_KEY is the development default")
			}
			return nil
		},
	}
}
