package app

import (
	"fmt"
	"strings"

	"github.com/blackwell-systems/libctl/internal/catalog"
	"github.com/blackwell-systems/libctl/internal/tui"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

func newSearchCmd() *cobra.Command {
	var (
		f      catalog.Filter
		asJSON bool
	)

	cmd := &cobra.Command{
		Use:   "search [query]",
		Short: "Find books by title, author or ISBN",
		Example: `  libctl search dune
  libctl search --author herbert --available`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			if len(args) > 0 {
				f.Search = args[0]
			}
			c, err := view()
			if err != nil {
				return err
			}
			books := c.Search(f)
			if asJSON {
				return writeJSON(emptyIfNil(books))
			}
			if len(books) == 0 {
				warn("No books match.")
				return nil
			}
			printBooks(books)
			return nil
		},
	}

	cmd.Flags().StringVar(&f.Author, "author", "", "Only books whose author contains this text")
	cmd.Flags().BoolVar(&f.Available, "available", false, "Only books on the shelf")
	cmd.Flags().BoolVar(&f.Borrowed, "borrowed", false, "Only books on loan")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Output as JSON")
	cmd.MarkFlagsMutuallyExclusive("available", "borrowed")
	return cmd
}

func newInfoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "info <isbn>",
		Short: "Show a book and who holds it",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			isbn := args[0]
			c, err := view()
			if err != nil {
				return err
			}

			var copies int
			for _, b := range c.Books() {
				if b.ISBN != isbn {
					continue
				}
				copies++
				header("%s", b.Title)
				fmt.Fprintf(stdout, "  %-10s %s\n", "Author:", b.Author)
				fmt.Fprintf(stdout, "  %-10s %s\n", "ISBN:", color.CyanString(b.ISBN))
				fmt.Fprintf(stdout, "  %-10s %s\n", "Status:", tui.AvailabilityLabel(b.Available))
			}
			if copies == 0 {
				return fmt.Errorf("%s %s", msgBookNotFound, isbn)
			}

			holders := c.Borrowers(isbn)
			if len(holders) == 0 {
				fmt.Fprintf(stdout, "  %-10s %s\n", "Held by:", "nobody")
				return nil
			}
			names := make([]string, len(holders))
			for i, u := range holders {
				names[i] = fmt.Sprintf("%s (%s)", u.Name, u.ID)
			}
			fmt.Fprintf(stdout, "  %-10s %s\n", "Held by:", strings.Join(names, ", "))
			return nil
		},
	}
}
