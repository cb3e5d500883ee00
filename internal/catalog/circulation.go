package catalog

import "github.com/blackwell-systems/libctl/internal/record"

// BorrowBook lends the first available copy of isbn to the first user with
// userID. Both must exist before anything changes; on failure the catalog is
// untouched.
func (c *Catalog) BorrowBook(isbn, userID string) error {
	bi := -1
	for i := range c.books {
		if c.books[i].ISBN == isbn && c.books[i].Available {
			bi = i
			break
		}
	}
	if bi < 0 {
		return ErrBookUnavailable
	}

	ui := c.userIndex(userID)
	if ui < 0 {
		return ErrUserNotFound
	}

	c.books[bi].Available = false
	c.users[ui].Borrowed = append(c.users[ui].Borrowed, isbn)
	c.record(userID, isbn, record.ActionBorrowed)
	return nil
}

// ReturnBook takes isbn back from the first user with userID. Every
// occurrence of isbn is dropped from that user's list and the first book with
// that ISBN becomes available, even if this user never borrowed it.
func (c *Catalog) ReturnBook(isbn, userID string) error {
	ui := c.userIndex(userID)
	if ui < 0 {
		return ErrUserNotFound
	}

	bi := c.bookIndex(isbn)
	if bi < 0 {
		return ErrBookNotFound
	}

	u := &c.users[ui]
	kept := u.Borrowed[:0]
	for _, b := range u.Borrowed {
		if b != isbn {
			kept = append(kept, b)
		}
	}
	if len(kept) == 0 {
		kept = nil
	}
	u.Borrowed = kept

	c.books[bi].Available = true
	c.record(userID, isbn, record.ActionReturned)
	return nil
}

func (c *Catalog) record(userID, isbn string, action record.Action) {
	c.history = append(c.history, record.HistoryEntry{
		UserID: userID,
		ISBN:   isbn,
		Action: action,
		At:     c.now().UTC(),
	})
}
