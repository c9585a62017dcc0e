package main

import (
	"github.com/spf13/cobra"
)

func newReportCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "report",
		Short: "Render PDF reports",
	}

	cmd.AddCommand(newReportMasterCmd(a), newReportRosterCmd(a))
	return cmd
}

func newReportMasterCmd(a *app) *cobra.Command {
	var output string
	cmd := &cobra.Command{
		Use:   "master",
		Short: "Render the projects, clients and employees master report",
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, o := a.svc.MasterReportPDF(cmd.Context())
			return writeDocument(doc, o, output)
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", "Output file or directory (default: CMS_Master_Report.pdf)")
	return cmd
}

func newReportRosterCmd(a *app) *cobra.Command {
	var output string
	cmd := &cobra.Command{
		Use:       "roster <clients|projects|employees|suppliers|materials>",
		Short:     "Render the full roster of one entity",
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{"clients", "projects", "employees", "suppliers", "materials"},
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, o := a.svc.RosterPDF(cmd.Context(), args[0])
			return writeDocument(doc, o, output)
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", "Output file or directory")
	return cmd
}
