package app

import (
	"errors"
	"fmt"

	"github.com/blackwell-systems/libctl/internal/catalog"
	"github.com/blackwell-systems/libctl/internal/record"
)

// Status lines shared by the commands, the numbered menu and the hub.
const (
	msgBookAdded      = "Book added successfully!"
	msgUserRegistered = "User registered successfully!"
	msgBorrowed       = "Book borrowed successfully!"
	msgReturned       = "Book returned successfully!"
	msgBookDeleted    = "Book deleted successfully!"
	msgUserDeleted    = "User deleted successfully!"
	msgBorrowFailed   = "Book not available or user not found."
	msgReturnFailed   = "Return failed."
	msgBookNotFound   = "Book not found!"
	msgUserNotFound   = "User not found!"
)

func validateBook(title, author, isbn string) error {
	if err := record.ValidateText("title", title); err != nil {
		return err
	}
	if err := record.ValidateName("author", author); err != nil {
		return err
	}
	return record.ValidateISBN(isbn)
}

func validateUser(id, name string) error {
	if err := record.ValidateText("user id", id); err != nil {
		return err
	}
	return record.ValidateName("name", name)
}

func addBook(c *catalog.Catalog, title, author, isbn string) (string, error) {
	if err := validateBook(title, author, isbn); err != nil {
		return "", err
	}
	c.AddBook(title, author, isbn)
	return msgBookAdded, nil
}

func registerUser(c *catalog.Catalog, id, name string) (string, error) {
	if err := validateUser(id, name); err != nil {
		return "", err
	}
	c.RegisterUser(id, name)
	return msgUserRegistered, nil
}

func borrow(c *catalog.Catalog, isbn, userID string) (string, error) {
	if err := c.BorrowBook(isbn, userID); err != nil {
		return "", fmt.Errorf("%s (%w)", msgBorrowFailed, err)
	}
	return msgBorrowed, nil
}

func giveBack(c *catalog.Catalog, isbn, userID string) (string, error) {
	if err := c.ReturnBook(isbn, userID); err != nil {
		return "", fmt.Errorf("%s (%w)", msgReturnFailed, err)
	}
	return msgReturned, nil
}

func deleteBook(c *catalog.Catalog, isbn string) (string, error) {
	n, err := c.DeleteBook(isbn)
	if errors.Is(err, catalog.ErrBookNotFound) {
		return "", errors.New(msgBookNotFound)
	}
	if err != nil {
		return "", err
	}
	if n > 1 {
		return fmt.Sprintf("%s (%d copies)", msgBookDeleted, n), nil
	}
	return msgBookDeleted, nil
}

func deleteUser(c *catalog.Catalog, id string) (string, error) {
	n, err := c.DeleteUser(id)
	if errors.Is(err, catalog.ErrUserNotFound) {
		return "", errors.New(msgUserNotFound)
	}
	if err != nil {
		return "", err
	}
	if n > 1 {
		return fmt.Sprintf("%s (%d entries)", msgUserDeleted, n), nil
	}
	return msgUserDeleted, nil
}
