package main

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/jesses-code-adventures/cms/internal/export"
)

func newExportCmd(a *app) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:       "export <entity>",
		Short:     "Export a table to an XLSX workbook",
		Long:      "Export one table to XLSX. Entities: " + strings.Join(export.Entities, ", ") + ".",
		Args:      cobra.ExactArgs(1),
		ValidArgs: export.Entities,
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, o := a.svc.Export(cmd.Context(), args[0])
			return writeDocument(doc, o, output)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "Output file or directory (default: <entity>.xlsx)")
	return cmd
}
