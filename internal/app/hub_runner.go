package app

import (
	"errors"
	"fmt"

	"github.com/blackwell-systems/libctl/internal/catalog"
	"github.com/blackwell-systems/libctl/internal/record"
	"github.com/blackwell-systems/libctl/internal/tui"
	"github.com/blackwell-systems/libctl/internal/tui/picker"
)

// runHub shows the hub menu in a loop, running each chosen action against c
// until the user quits.
func runHub(c *catalog.Catalog) error {
	status := ""
	for {
		s := c.Stats()
		action, err := tui.RunHub(tui.HubContext{
			Books:     s.Books,
			Available: s.Available,
			Users:     s.Users,
			History:   s.History,
		}, status)
		if err != nil {
			return err
		}
		if action == "" || action == "quit" {
			return nil
		}

		msg, err := hubAction(c, action)
		switch {
		case isCanceled(err):
			status = tui.StyleHelp.Render("Canceled.")
		case err != nil:
			status = tui.StyleError.Render("! " + err.Error())
		case msg != "":
			status = tui.StyleAvailable.Render("✓ " + msg)
		default:
			status = ""
		}
	}
}

func hubAction(c *catalog.Catalog, action string) (string, error) {
	switch action {
	case "add-book":
		vals, err := tui.RunForm(tui.FormSpec{
			Title: "Add Book",
			Fields: []tui.FormField{
				{Label: "Title", Placeholder: "Book title", Validate: func(s string) error { return record.ValidateText("title", s) }},
				{Label: "Author", Placeholder: "Author name", CharLimit: 100, Validate: func(s string) error { return record.ValidateName("author", s) }},
				{Label: "ISBN", Placeholder: "978-0-00-000000-0", CharLimit: 32, Validate: record.ValidateISBN},
			},
		})
		if err != nil {
			return "", err
		}
		return addBook(c, vals[0], vals[1], vals[2])

	case "register-user":
		vals, err := tui.RunForm(tui.FormSpec{
			Title: "Register User",
			Fields: []tui.FormField{
				{Label: "User ID", Placeholder: "U1", CharLimit: 64, Validate: func(s string) error { return record.ValidateText("user id", s) }},
				{Label: "Name", Placeholder: "Full name", CharLimit: 100, Validate: func(s string) error { return record.ValidateName("name", s) }},
			},
		})
		if err != nil {
			return "", err
		}
		return registerUser(c, vals[0], vals[1])

	case "borrow":
		b, err := tui.RunBookPicker(c.Search(catalog.Filter{Available: true}), "Select book to borrow")
		if err != nil {
			return "", err
		}
		u, err := tui.RunUserPicker(c.Users(), "Who is borrowing "+b.Title+"?")
		if err != nil {
			return "", err
		}
		return borrow(c, b.ISBN, u.ID)

	case "return":
		b, err := tui.RunBookPicker(c.Search(catalog.Filter{Borrowed: true}), "Select book to return")
		if err != nil {
			return "", err
		}
		holders := c.Borrowers(b.ISBN)
		if len(holders) == 0 {
			holders = c.Users()
		}
		u, err := tui.RunUserPicker(holders, "Who is returning "+b.Title+"?")
		if err != nil {
			return "", err
		}
		return giveBack(c, b.ISBN, u.ID)

	case "books":
		printBooks(c.Books())
		return "", waitForEnter()

	case "users":
		printUsers(c.Users())
		return "", waitForEnter()

	case "history":
		printHistory(c.History())
		return "", waitForEnter()

	case "delete-book":
		b, err := tui.RunBookPicker(c.Books(), "Select book to delete")
		if err != nil {
			return "", err
		}
		if err := confirmUnless(false, fmt.Sprintf("Delete every book with ISBN %s (%s)?", b.ISBN, b.Title)); err != nil {
			return "", err
		}
		return deleteBook(c, b.ISBN)

	case "delete-user":
		u, err := tui.RunUserPicker(c.Users(), "Select user to delete")
		if err != nil {
			return "", err
		}
		if err := confirmUnless(false, fmt.Sprintf("Delete user %s (%s)?", u.ID, u.Name)); err != nil {
			return "", err
		}
		return deleteUser(c, u.ID)
	}
	return "", fmt.Errorf("unknown action %q", action)
}

func waitForEnter() error {
	fmt.Fprint(stdout, "\n"+msgPressEnter)
	readLine()
	return nil
}

func isCanceled(err error) bool {
	return errors.Is(err, picker.ErrCanceled) ||
		errors.Is(err, tui.ErrFormCanceled) ||
		errors.Is(err, errAborted)
}
