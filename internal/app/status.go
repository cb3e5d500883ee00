package app

import (
	"fmt"

	"github.com/blackwell-systems/libctl/internal/ledger"
	"github.com/blackwell-systems/libctl/internal/util"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

func newStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show data files, counts and checksums",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			c, err := view()
			if err != nil {
				return err
			}
			s := c.Stats()

			header("Configuration")
			fmt.Fprintf(stdout, "  %-10s %s\n", "config:", flagConfigPath())
			fmt.Fprintf(stdout, "  %-10s %s\n", "data dir:", util.ExpandHome(cfg.Data.Dir))

			header("Data files")
			printFileStatus("books:", st.BooksPath)
			printFileStatus("users:", st.UsersPath)

			header("Catalog")
			fmt.Fprintf(stdout, "  %-10s %d (%d available, %d on loan)\n", "books:", s.Books, s.Available, s.Borrowed)
			fmt.Fprintf(stdout, "  %-10s %d\n", "users:", s.Users)

			header("History journal")
			if !cfg.JournalEnabled() {
				fmt.Fprintf(stdout, "  %-10s %s\n", "journal:", color.YellowString("disabled"))
				return nil
			}
			j, err := ledger.Open(cfg.JournalPath())
			if err != nil {
				return err
			}
			entries, err := j.Entries()
			if err != nil {
				return err
			}
			fmt.Fprintf(stdout, "  %-10s %s (%d entries)\n", "journal:", j.Path(), len(entries))
			return nil
		},
	}
}

func printFileStatus(label, path string) {
	if !util.FileExists(path) {
		fmt.Fprintf(stdout, "  %-10s %s %s\n", label, path, color.YellowString("(missing, starts empty)"))
		return
	}
	sum, err := util.SHA256File(path)
	if err != nil {
		fmt.Fprintf(stdout, "  %-10s %s %s\n", label, path, color.RedString("(error: %v)", err))
		return
	}
	fmt.Fprintf(stdout, "  %-10s %s sha256:%s\n", label, path, util.ShortHash(sum))
}
