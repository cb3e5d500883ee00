package app

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/blackwell-systems/libctl/internal/catalog"
	"github.com/blackwell-systems/libctl/internal/record"
	"github.com/blackwell-systems/libctl/internal/tui"
	"github.com/spf13/cobra"
)

func newBorrowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "borrow [isbn] [user-id]",
		Short: "Lend an available book to a user",
		Long: `Lend the first available copy of an ISBN to a user.

Missing arguments are chosen with a picker when running in a terminal.`,
		Example: `  libctl borrow 978-0-441-17271-9 U1`,
		Args:    cobra.MaximumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			isbn, err := isbnArg(cmd, args, "Select book to borrow", func(b record.Book) bool { return b.Available })
			if err != nil {
				return err
			}
			userID, err := userArg(cmd, args, 1, "Who is borrowing "+isbn+"?", nil)
			if err != nil {
				return err
			}

			var msg string
			err = update(func(c *catalog.Catalog) error {
				var err error
				msg, err = borrow(c, isbn, userID)
				return err
			})
			if err != nil {
				return err
			}
			ok("%s %s → %s", msg, isbn, userID)
			return nil
		},
	}
}

func newReturnCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "return [isbn] [user-id]",
		Short: "Take a book back from a user",
		Long: `Take a book back from a user. Every copy of the ISBN is removed from the
user's borrowed list and the first book with that ISBN becomes available.`,
		Example: `  libctl return 978-0-441-17271-9 U1`,
		Args:    cobra.MaximumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			isbn, err := isbnArg(cmd, args, "Select book to return", func(b record.Book) bool { return !b.Available })
			if err != nil {
				return err
			}
			holders := func(c *catalog.Catalog) []record.User {
				if hs := c.Borrowers(isbn); len(hs) > 0 {
					return hs
				}
				return c.Users()
			}
			userID, err := userArg(cmd, args, 1, "Who is returning "+isbn+"?", holders)
			if err != nil {
				return err
			}

			var msg string
			err = update(func(c *catalog.Catalog) error {
				var err error
				msg, err = giveBack(c, isbn, userID)
				return err
			})
			if err != nil {
				return err
			}
			ok("%s %s ← %s", msg, isbn, userID)
			return nil
		},
	}
}

// isbnArg returns args[0] as a validated ISBN, or asks with a book picker
// over the books matching keep.
func isbnArg(cmd *cobra.Command, args []string, title string, keep func(record.Book) bool) (string, error) {
	if len(args) > 0 {
		if err := record.ValidateISBN(args[0]); err != nil {
			return "", err
		}
		return args[0], nil
	}
	if !interactive(cmd) {
		return "", fmt.Errorf("isbn required in non-interactive mode")
	}

	c, err := view()
	if err != nil {
		return "", err
	}
	var books []record.Book
	for _, b := range c.Books() {
		if keep == nil || keep(b) {
			books = append(books, b)
		}
	}
	b, err := tui.RunBookPicker(books, title)
	if err != nil {
		return "", err
	}
	return b.ISBN, nil
}

// userArg returns args[i] as a user ID, or asks with a user picker over
// candidates (all users when nil).
func userArg(cmd *cobra.Command, args []string, i int, title string, candidates func(*catalog.Catalog) []record.User) (string, error) {
	if len(args) > i {
		if err := record.ValidateText("user id", args[i]); err != nil {
			return "", err
		}
		return args[i], nil
	}
	if !interactive(cmd) {
		return "", fmt.Errorf("user id required in non-interactive mode")
	}

	c, err := view()
	if err != nil {
		return "", err
	}
	users := c.Users()
	if candidates != nil {
		users = candidates(c)
	}
	u, err := tui.RunUserPicker(users, title)
	if err != nil {
		return "", err
	}
	return u.ID, nil
}

// confirmUnless asks a yes/no question on stdin unless skip is set.
func confirmUnless(skip bool, question string) error {
	if skip {
		return nil
	}
	fmt.Fprintf(stdout, "%s (y/N): ", question)
	switch strings.ToLower(readLine()) {
	case "y", "yes":
		return nil
	}
	return errAborted
}

var lineReader *bufio.Reader

// readLine reads one trimmed line from stdin. Every plain-terminal read goes
// through the same buffer.
func readLine() string {
	if lineReader == nil {
		lineReader = bufio.NewReader(stdin)
	}
	line, _ := lineReader.ReadString('\n')
	return strings.TrimSpace(line)
}
