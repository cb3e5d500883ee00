package app

import (
	"errors"
	"fmt"

	"github.com/blackwell-systems/libctl/internal/catalog"
	"github.com/spf13/cobra"
)

func newAddBookCmd() *cobra.Command {
	var title, author, isbn string

	cmd := &cobra.Command{
		Use:   "add-book",
		Short: "Add a book to the catalog",
		Long: `Add a book to the catalog. New books are available.

Duplicate ISBNs are allowed; borrow and return act on the first match.`,
		Example: `  libctl add-book --title "Dune" --author "Frank Herbert" --isbn 978-0-441-17271-9`,
		Args:    cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			var msg string
			err := update(func(c *catalog.Catalog) error {
				var err error
				msg, err = addBook(c, title, author, isbn)
				return err
			})
			if err != nil {
				return err
			}
			ok("%s %s", msg, isbn)
			return nil
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "Book title")
	cmd.Flags().StringVar(&author, "author", "", "Author name (letters, spaces and . & - ')")
	cmd.Flags().StringVar(&isbn, "isbn", "", "ISBN (digits and dashes)")
	_ = cmd.MarkFlagRequired("author")
	_ = cmd.MarkFlagRequired("isbn")
	return cmd
}

func newRegisterUserCmd() *cobra.Command {
	var id, name string

	cmd := &cobra.Command{
		Use:     "register-user",
		Aliases: []string{"add-user"},
		Short:   "Register a library user",
		Example: `  libctl register-user --id U1 --name "Alice Smith"`,
		Args:    cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			var msg string
			err := update(func(c *catalog.Catalog) error {
				var err error
				msg, err = registerUser(c, id, name)
				return err
			})
			if err != nil {
				return err
			}
			ok("%s %s", msg, id)
			return nil
		},
	}

	cmd.Flags().StringVar(&id, "id", "", "User ID")
	cmd.Flags().StringVar(&name, "name", "", "User name (letters, spaces and . & - ')")
	_ = cmd.MarkFlagRequired("id")
	_ = cmd.MarkFlagRequired("name")
	return cmd
}

func newDeleteBookCmd() *cobra.Command {
	var skipConfirm bool

	cmd := &cobra.Command{
		Use:   "delete-book [isbn]",
		Short: "Remove every book with an ISBN",
		Long: `Remove every book with the given ISBN from the catalog.

Users who still hold the ISBN keep it on their borrowed list.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			isbn, err := isbnArg(cmd, args, "Select book to delete", nil)
			if err != nil {
				return err
			}
			if err := confirmUnless(skipConfirm, fmt.Sprintf("Delete every book with ISBN %s?", isbn)); err != nil {
				return err
			}

			var msg string
			err = update(func(c *catalog.Catalog) error {
				var err error
				msg, err = deleteBook(c, isbn)
				return err
			})
			if err != nil {
				return err
			}
			ok("%s %s", msg, isbn)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&skipConfirm, "yes", "y", false, "Skip confirmation prompt")
	return cmd
}

func newDeleteUserCmd() *cobra.Command {
	var skipConfirm bool

	cmd := &cobra.Command{
		Use:   "delete-user [user-id]",
		Short: "Remove every user with an ID",
		Long: `Remove every user with the given ID.

Books they held stay marked as on loan.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := userArg(cmd, args, 0, "Select user to delete", nil)
			if err != nil {
				return err
			}
			if err := confirmUnless(skipConfirm, fmt.Sprintf("Delete user %s?", id)); err != nil {
				return err
			}

			var msg string
			err = update(func(c *catalog.Catalog) error {
				var err error
				msg, err = deleteUser(c, id)
				return err
			})
			if err != nil {
				return err
			}
			ok("%s %s", msg, id)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&skipConfirm, "yes", "y", false, "Skip confirmation prompt")
	return cmd
}

var errAborted = errors.New("aborted")
