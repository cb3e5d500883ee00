package app

import (
	"encoding/json"
	"fmt"

	"github.com/blackwell-systems/libctl/internal/ledger"
	"github.com/blackwell-systems/libctl/internal/record"
	"github.com/blackwell-systems/libctl/internal/tui"
	"github.com/spf13/cobra"
)

func newBooksCmd() *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:     "books",
		Aliases: []string{"ls"},
		Short:   "List every book and its status",
		Args:    cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			c, err := view()
			if err != nil {
				return err
			}
			books := c.Books()
			if asJSON {
				return writeJSON(emptyIfNil(books))
			}
			printBooks(books)
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Output as JSON")
	return cmd
}

func newUsersCmd() *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "users",
		Short: "List users and the ISBNs they hold",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			c, err := view()
			if err != nil {
				return err
			}
			users := c.Users()
			if asJSON {
				return writeJSON(emptyIfNil(users))
			}
			printUsers(users)
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Output as JSON")
	return cmd
}

func newHistoryCmd() *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show the borrow and return journal",
		Long: `Show borrow and return history.

History lives in memory for one session, so a one-shot command has none of
its own. This command reads the history journal, which is kept only when
history.journal is set in the config.`,
		Args: cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			if !cfg.JournalEnabled() {
				warn("History journal is disabled. Set history.journal in %s to keep history across sessions.", flagConfigPath())
				if asJSON {
					return writeJSON([]record.HistoryEntry{})
				}
				return nil
			}
			j, err := ledger.Open(cfg.JournalPath())
			if err != nil {
				return err
			}
			entries, err := j.Entries()
			if err != nil {
				return fmt.Errorf("reading journal: %w", err)
			}
			if asJSON {
				return writeJSON(emptyIfNil(entries))
			}
			printHistory(entries)
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Output as JSON")
	return cmd
}

func printBooks(books []record.Book) {
	header("Books in Library (%d)", len(books))
	fmt.Fprintln(stdout, tui.BooksTable(books))
}

func printUsers(users []record.User) {
	header("Library Users (%d)", len(users))
	fmt.Fprintln(stdout, tui.UsersTable(users))
}

func printHistory(entries []record.HistoryEntry) {
	header("Borrowed/Returned Books History (%d)", len(entries))
	fmt.Fprintln(stdout, tui.HistoryTable(entries))
}

func writeJSON(v any) error {
	enc := json.NewEncoder(stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func emptyIfNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
