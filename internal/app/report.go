package app

import (
	"path/filepath"

	"github.com/blackwell-systems/libctl/internal/report"
	"github.com/blackwell-systems/libctl/internal/util"
	"github.com/spf13/cobra"
)

func newReportCmd() *cobra.Command {
	var out string

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Write an HTML page of the catalog",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			if out == "" {
				out = filepath.Join(util.ExpandHome(cfg.Data.Dir), "library.html")
			}
			c, err := view()
			if err != nil {
				return err
			}
			if err := report.Write(out, c.Books(), c.Users()); err != nil {
				return err
			}
			ok("Report written to %s", out)
			return nil
		},
	}

	cmd.Flags().StringVarP(&out, "out", "o", "", "Output file (default: <data-dir>/library.html)")
	return cmd
}
