// Package catalog holds the in-memory library: books, users and the
// borrow/return history of the current session.
package catalog

import (
	"time"

	"github.com/blackwell-systems/libctl/internal/record"
)

// Catalog is the in-memory aggregate of books, users and history.
// Collections keep insertion order; keys are not required to be unique and
// lookups act on the first match.
type Catalog struct {
	books   []record.Book
	users   []record.User
	history []record.HistoryEntry

	now func() time.Time
}

// New returns an empty catalog.
func New() *Catalog {
	return &Catalog{now: time.Now}
}

// FromSnapshot builds a catalog from previously persisted books and users.
// History always starts empty.
func FromSnapshot(books []record.Book, users []record.User) *Catalog {
	c := New()
	c.books = append(c.books, books...)
	for _, u := range users {
		c.users = append(c.users, u.Clone())
	}
	return c
}

// SetClock replaces the time source used to stamp history entries.
func (c *Catalog) SetClock(now func() time.Time) {
	c.now = now
}

// AddBook appends a new available book. Duplicate ISBNs are allowed.
func (c *Catalog) AddBook(title, author, isbn string) record.Book {
	b := record.Book{Title: title, Author: author, ISBN: isbn, Available: true}
	c.books = append(c.books, b)
	return b
}

// RegisterUser appends a new user with nothing borrowed. Duplicate IDs are allowed.
func (c *Catalog) RegisterUser(id, name string) record.User {
	u := record.User{ID: id, Name: name}
	c.users = append(c.users, u)
	return u
}

// DeleteBook removes every book with the given ISBN and returns how many
// were removed. Borrowed lists that still reference the ISBN are left as is.
func (c *Catalog) DeleteBook(isbn string) (int, error) {
	kept := c.books[:0]
	for _, b := range c.books {
		if b.ISBN != isbn {
			kept = append(kept, b)
		}
	}
	removed := len(c.books) - len(kept)
	clear(c.books[len(kept):])
	c.books = kept
	if removed == 0 {
		return 0, ErrBookNotFound
	}
	return removed, nil
}

// DeleteUser removes every user with the given ID and returns how many were
// removed. Availability of the books they held is not reverted.
func (c *Catalog) DeleteUser(id string) (int, error) {
	kept := c.users[:0]
	for _, u := range c.users {
		if u.ID != id {
			kept = append(kept, u)
		}
	}
	removed := len(c.users) - len(kept)
	clear(c.users[len(kept):])
	c.users = kept
	if removed == 0 {
		return 0, ErrUserNotFound
	}
	return removed, nil
}

// Books returns a copy of all books in catalog order.
func (c *Catalog) Books() []record.Book {
	return append([]record.Book(nil), c.books...)
}

// Users returns a deep copy of all users in catalog order.
func (c *Catalog) Users() []record.User {
	out := make([]record.User, len(c.users))
	for i, u := range c.users {
		out[i] = u.Clone()
	}
	return out
}

// History returns a copy of the session history, oldest first.
func (c *Catalog) History() []record.HistoryEntry {
	return append([]record.HistoryEntry(nil), c.history...)
}

// Stats summarizes the catalog for status views.
type Stats struct {
	Books     int
	Available int
	Borrowed  int
	Users     int
	History   int
}

// Stats counts books by availability, users and history entries.
func (c *Catalog) Stats() Stats {
	s := Stats{Books: len(c.books), Users: len(c.users), History: len(c.history)}
	for _, b := range c.books {
		if b.Available {
			s.Available++
		} else {
			s.Borrowed++
		}
	}
	return s
}
