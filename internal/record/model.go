package record

import "time"

// Book is one line of the books file.
type Book struct {
	Title     string `json:"title" yaml:"title"`
	Author    string `json:"author" yaml:"author"`
	ISBN      string `json:"isbn" yaml:"isbn"`
	Available bool   `json:"available" yaml:"-"`
}

// User is one line of the users file. Borrowed holds ISBNs in borrow order
// and may contain the same ISBN more than once.
type User struct {
	ID       string   `json:"id" yaml:"id"`
	Name     string   `json:"name" yaml:"name"`
	Borrowed []string `json:"borrowed" yaml:"-"`
}

// Action is the kind of a history entry.
type Action string

const (
	ActionBorrowed Action = "Borrowed"
	ActionReturned Action = "Returned"
)

// HistoryEntry records one successful borrow or return.
type HistoryEntry struct {
	UserID string    `json:"user_id"`
	ISBN   string    `json:"isbn"`
	Action Action    `json:"action"`
	At     time.Time `json:"at"`
}

// Holds reports whether the user currently has isbn on their borrowed list.
func (u User) Holds(isbn string) bool {
	for _, b := range u.Borrowed {
		if b == isbn {
			return true
		}
	}
	return false
}

// Clone returns a copy whose Borrowed slice does not alias u's.
func (u User) Clone() User {
	if u.Borrowed != nil {
		u.Borrowed = append([]string(nil), u.Borrowed...)
	}
	return u
}
