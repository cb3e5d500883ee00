package catalog

import (
	"strings"

	"github.com/blackwell-systems/libctl/internal/record"
)

// Filter applies all non-empty criteria and returns matching books.
type Filter struct {
	Search    string // matches title, author or ISBN
	Author    string
	Available bool // only books on the shelf
	Borrowed  bool // only books currently lent out
}

// Apply returns the subset of books matching all filter fields, in order.
func (f Filter) Apply(books []record.Book) []record.Book {
	var out []record.Book
	for _, b := range books {
		if f.Available && !b.Available {
			continue
		}
		if f.Borrowed && b.Available {
			continue
		}
		if f.Author != "" && !strings.Contains(strings.ToLower(b.Author), strings.ToLower(f.Author)) {
			continue
		}
		if f.Search != "" && !matchesSearch(b, f.Search) {
			continue
		}
		out = append(out, b)
	}
	return out
}

// Search applies f to the catalog's books.
func (c *Catalog) Search(f Filter) []record.Book {
	return f.Apply(c.books)
}

// FindBook returns the first book with the given ISBN.
func (c *Catalog) FindBook(isbn string) (record.Book, bool) {
	if i := c.bookIndex(isbn); i >= 0 {
		return c.books[i], true
	}
	return record.Book{}, false
}

// FindUser returns the first user with the given ID.
func (c *Catalog) FindUser(id string) (record.User, bool) {
	if i := c.userIndex(id); i >= 0 {
		return c.users[i].Clone(), true
	}
	return record.User{}, false
}

// Borrowers returns the users whose borrowed list contains isbn.
func (c *Catalog) Borrowers(isbn string) []record.User {
	var out []record.User
	for _, u := range c.users {
		if u.Holds(isbn) {
			out = append(out, u.Clone())
		}
	}
	return out
}

func (c *Catalog) bookIndex(isbn string) int {
	for i := range c.books {
		if c.books[i].ISBN == isbn {
			return i
		}
	}
	return -1
}

func (c *Catalog) userIndex(id string) int {
	for i := range c.users {
		if c.users[i].ID == id {
			return i
		}
	}
	return -1
}

func matchesSearch(b record.Book, q string) bool {
	q = strings.ToLower(q)
	if strings.Contains(strings.ToLower(b.Title), q) {
		return true
	}
	if strings.Contains(strings.ToLower(b.Author), q) {
		return true
	}
	return strings.Contains(b.ISBN, q)
}
