package catalog_test

import (
	"errors"
	"testing"
	"time"

	"github.com/blackwell-systems/libctl/internal/catalog"
	"github.com/blackwell-systems/libctl/internal/record"
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

const dune = "978-0-441-0"

var ignoreAt = cmpopts.IgnoreFields(record.HistoryEntry{}, "At")

func sample() *catalog.Catalog {
	c := catalog.New()
	c.AddBook("Dune", "Frank Herbert", dune)
	c.AddBook("Operating Systems", "Arpaci-Dusseau", "978-1-98")
	c.RegisterUser("U1", "Alice")
	c.RegisterUser("U2", "Bob")
	return c
}

func bookByISBN(t *testing.T, c *catalog.Catalog, isbn string) record.Book {
	t.Helper()
	b, ok := c.FindBook(isbn)
	if !ok {
		t.Fatalf("book %q not found", isbn)
	}
	return b
}

func userByID(t *testing.T, c *catalog.Catalog, id string) record.User {
	t.Helper()
	u, ok := c.FindUser(id)
	if !ok {
		t.Fatalf("user %q not found", id)
	}
	return u
}

// --- Add / Register ---

func TestAddBook_Available(t *testing.T) {
	c := catalog.New()
	got := c.AddBook("Dune", "Frank Herbert", dune)
	want := record.Book{Title: "Dune", Author: "Frank Herbert", ISBN: dune, Available: true}
	if got != want {
		t.Errorf("AddBook = %+v, want %+v", got, want)
	}
	if diff := cmp.Diff([]record.Book{want}, c.Books()); diff != "" {
		t.Errorf("Books() mismatch (-want +got):\n%s", diff)
	}
}

func TestAddBook_DuplicateISBNAllowed(t *testing.T) {
	c := catalog.New()
	c.AddBook("Dune", "Frank Herbert", dune)
	c.AddBook("Dune (copy 2)", "Frank Herbert", dune)
	if n := len(c.Books()); n != 2 {
		t.Errorf("expected 2 books, got %d", n)
	}
}

func TestRegisterUser(t *testing.T) {
	c := catalog.New()
	c.RegisterUser("U1", "Alice")
	c.RegisterUser("U1", "Alice Again")
	users := c.Users()
	if len(users) != 2 {
		t.Fatalf("expected 2 users, got %d", len(users))
	}
	if len(users[0].Borrowed) != 0 {
		t.Errorf("new user has borrowed books: %v", users[0].Borrowed)
	}
}

// --- Borrow ---

func TestBorrowBook_Example(t *testing.T) {
	c := catalog.New()
	c.AddBook("Dune", "Frank Herbert", dune)
	c.RegisterUser("U1", "Alice")

	if err := c.BorrowBook(dune, "U1"); err != nil {
		t.Fatalf("BorrowBook: %v", err)
	}
	if bookByISBN(t, c, dune).Available {
		t.Error("book still available after borrow")
	}
	if diff := cmp.Diff([]string{dune}, userByID(t, c, "U1").Borrowed); diff != "" {
		t.Errorf("borrowed list mismatch (-want +got):\n%s", diff)
	}
	want := []record.HistoryEntry{{UserID: "U1", ISBN: dune, Action: record.ActionBorrowed}}
	if diff := cmp.Diff(want, c.History(), ignoreAt); diff != "" {
		t.Errorf("history mismatch (-want +got):\n%s", diff)
	}
}

func TestBorrowBook_AlreadyBorrowed(t *testing.T) {
	c := sample()
	if err := c.BorrowBook(dune, "U1"); err != nil {
		t.Fatalf("first borrow: %v", err)
	}
	before := c.Users()

	err := c.BorrowBook(dune, "U2")
	if !errors.Is(err, catalog.ErrBookUnavailable) {
		t.Fatalf("second borrow error = %v, want ErrBookUnavailable", err)
	}
	if bookByISBN(t, c, dune).Available {
		t.Error("book became available after failed borrow")
	}
	if len(c.History()) != 1 {
		t.Errorf("history grew on failed borrow: %d entries", len(c.History()))
	}
	if diff := cmp.Diff(before, c.Users()); diff != "" {
		t.Errorf("users changed on failed borrow (-before +after):\n%s", diff)
	}
}

func TestBorrowBook_UnknownUserLeavesBookAvailable(t *testing.T) {
	c := sample()
	err := c.BorrowBook(dune, "nobody")
	if !errors.Is(err, catalog.ErrUserNotFound) {
		t.Fatalf("error = %v, want ErrUserNotFound", err)
	}
	if !bookByISBN(t, c, dune).Available {
		t.Error("book marked unavailable although the user does not exist")
	}
	if len(c.History()) != 0 {
		t.Error("history recorded a failed borrow")
	}
}

func TestBorrowBook_UnknownBook(t *testing.T) {
	c := sample()
	if err := c.BorrowBook("000", "U1"); !errors.Is(err, catalog.ErrBookUnavailable) {
		t.Errorf("error = %v, want ErrBookUnavailable", err)
	}
	if len(userByID(t, c, "U1").Borrowed) != 0 {
		t.Error("user mutated on failed borrow")
	}
}

func TestBorrowBook_SecondCopy(t *testing.T) {
	c := catalog.New()
	c.AddBook("Dune", "Frank Herbert", dune)
	c.AddBook("Dune", "Frank Herbert", dune)
	c.RegisterUser("U1", "Alice")

	for i := 0; i < 2; i++ {
		if err := c.BorrowBook(dune, "U1"); err != nil {
			t.Fatalf("borrow %d: %v", i, err)
		}
	}
	if diff := cmp.Diff([]string{dune, dune}, userByID(t, c, "U1").Borrowed); diff != "" {
		t.Errorf("duplicate membership mismatch (-want +got):\n%s", diff)
	}
	if err := c.BorrowBook(dune, "U1"); !errors.Is(err, catalog.ErrBookUnavailable) {
		t.Errorf("third borrow error = %v, want ErrBookUnavailable", err)
	}
}

// --- Return ---

func TestBorrowThenReturn(t *testing.T) {
	c := sample()
	if err := c.BorrowBook(dune, "U1"); err != nil {
		t.Fatalf("BorrowBook: %v", err)
	}
	if err := c.ReturnBook(dune, "U1"); err != nil {
		t.Fatalf("ReturnBook: %v", err)
	}
	if !bookByISBN(t, c, dune).Available {
		t.Error("book not available after return")
	}
	if u := userByID(t, c, "U1"); u.Holds(dune) {
		t.Errorf("user still holds %s: %v", dune, u.Borrowed)
	}
	want := []record.HistoryEntry{
		{UserID: "U1", ISBN: dune, Action: record.ActionBorrowed},
		{UserID: "U1", ISBN: dune, Action: record.ActionReturned},
	}
	if diff := cmp.Diff(want, c.History(), ignoreAt); diff != "" {
		t.Errorf("history mismatch (-want +got):\n%s", diff)
	}
}

func TestReturnBook_RemovesAllOccurrences(t *testing.T) {
	c := catalog.FromSnapshot(
		[]record.Book{{Title: "Dune", Author: "Frank Herbert", ISBN: dune}},
		[]record.User{{ID: "U1", Name: "Alice", Borrowed: []string{dune, "111", dune}}},
	)
	if err := c.ReturnBook(dune, "U1"); err != nil {
		t.Fatalf("ReturnBook: %v", err)
	}
	if diff := cmp.Diff([]string{"111"}, userByID(t, c, "U1").Borrowed); diff != "" {
		t.Errorf("borrowed list mismatch (-want +got):\n%s", diff)
	}
}

// A user who never borrowed the book can still return it: the book flips to
// available and a Returned entry is logged.
func TestReturnBook_NotBorrowedByUserStillSucceeds(t *testing.T) {
	c := sample()
	if err := c.BorrowBook(dune, "U1"); err != nil {
		t.Fatalf("BorrowBook: %v", err)
	}
	if err := c.ReturnBook(dune, "U2"); err != nil {
		t.Fatalf("ReturnBook by non-holder: %v", err)
	}
	if !bookByISBN(t, c, dune).Available {
		t.Error("book not flipped to available")
	}
	if !userByID(t, c, "U1").Holds(dune) {
		t.Error("original borrower's list was changed")
	}
	if n := len(c.History()); n != 2 {
		t.Errorf("history entries = %d, want 2", n)
	}
}

func TestReturnBook_UnknownUser(t *testing.T) {
	c := sample()
	_ = c.BorrowBook(dune, "U1")
	if err := c.ReturnBook(dune, "nobody"); !errors.Is(err, catalog.ErrUserNotFound) {
		t.Errorf("error = %v, want ErrUserNotFound", err)
	}
	if bookByISBN(t, c, dune).Available {
		t.Error("book flipped on failed return")
	}
}

func TestReturnBook_UnknownBookLeavesUserUntouched(t *testing.T) {
	c := catalog.FromSnapshot(nil, []record.User{{ID: "U1", Name: "Alice", Borrowed: []string{"gone"}}})
	if err := c.ReturnBook("gone", "U1"); !errors.Is(err, catalog.ErrBookNotFound) {
		t.Fatalf("error = %v, want ErrBookNotFound", err)
	}
	if diff := cmp.Diff([]string{"gone"}, userByID(t, c, "U1").Borrowed); diff != "" {
		t.Errorf("user changed on failed return (-want +got):\n%s", diff)
	}
	if len(c.History()) != 0 {
		t.Error("history recorded a failed return")
	}
}

// --- Delete ---

func TestDeleteBook_RemovesAllMatches(t *testing.T) {
	c := sample()
	c.AddBook("Dune (copy)", "Frank Herbert", dune)
	n, err := c.DeleteBook(dune)
	if err != nil {
		t.Fatalf("DeleteBook: %v", err)
	}
	if n != 2 {
		t.Errorf("removed = %d, want 2", n)
	}
	books := c.Books()
	if len(books) != 1 || books[0].ISBN != "978-1-98" {
		t.Errorf("remaining books = %+v", books)
	}
}

func TestDeleteBook_KeepsDanglingReferences(t *testing.T) {
	c := sample()
	_ = c.BorrowBook(dune, "U1")
	if _, err := c.DeleteBook(dune); err != nil {
		t.Fatalf("DeleteBook: %v", err)
	}
	if !userByID(t, c, "U1").Holds(dune) {
		t.Error("delete-book cleaned the borrower's list")
	}
}

func TestDeleteBook_Missing(t *testing.T) {
	c := sample()
	before := c.Books()
	n, err := c.DeleteBook("000")
	if !errors.Is(err, catalog.ErrBookNotFound) || n != 0 {
		t.Fatalf("DeleteBook(missing) = %d, %v", n, err)
	}
	if diff := cmp.Diff(before, c.Books()); diff != "" {
		t.Errorf("books changed (-before +after):\n%s", diff)
	}
}

func TestDeleteUser(t *testing.T) {
	c := sample()
	_ = c.BorrowBook(dune, "U1")
	n, err := c.DeleteUser("U1")
	if err != nil || n != 1 {
		t.Fatalf("DeleteUser = %d, %v", n, err)
	}
	if _, ok := c.FindUser("U1"); ok {
		t.Error("user still present")
	}
	if bookByISBN(t, c, dune).Available {
		t.Error("delete-user reverted availability")
	}
}

func TestDeleteUser_Missing(t *testing.T) {
	c := sample()
	before := c.Users()
	if _, err := c.DeleteUser("nobody"); !errors.Is(err, catalog.ErrUserNotFound) {
		t.Fatalf("error = %v, want ErrUserNotFound", err)
	}
	if diff := cmp.Diff(before, c.Users()); diff != "" {
		t.Errorf("users changed (-before +after):\n%s", diff)
	}
}

// --- Snapshots ---

func TestUsers_ReturnsCopies(t *testing.T) {
	c := sample()
	_ = c.BorrowBook(dune, "U1")
	users := c.Users()
	users[0].Borrowed[0] = "tampered"
	if userByID(t, c, "U1").Borrowed[0] != dune {
		t.Error("Users() exposes internal slices")
	}
}

func TestFromSnapshot_HistoryEmpty(t *testing.T) {
	c := catalog.FromSnapshot([]record.Book{{ISBN: "1"}}, []record.User{{ID: "U1"}})
	if len(c.History()) != 0 {
		t.Error("history not empty after snapshot")
	}
}

func TestHistory_Stamped(t *testing.T) {
	c := sample()
	at := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	c.SetClock(func() time.Time { return at })
	_ = c.BorrowBook(dune, "U1")
	if got := c.History()[0].At; !got.Equal(at) {
		t.Errorf("At = %v, want %v", got, at)
	}
}

func TestStats(t *testing.T) {
	c := sample()
	_ = c.BorrowBook(dune, "U1")
	want := catalog.Stats{Books: 2, Available: 1, Borrowed: 1, Users: 2, History: 1}
	if got := c.Stats(); got != want {
		t.Errorf("Stats = %+v, want %+v", got, want)
	}
}

// --- Filter ---

func isbns(books []record.Book) []string {
	out := make([]string, len(books))
	for i, b := range books {
		out[i] = b.ISBN
	}
	return out
}

func TestFilter_BySearch(t *testing.T) {
	c := sample()
	if got := isbns(c.Search(catalog.Filter{Search: "dune"})); !cmp.Equal(got, []string{dune}) {
		t.Errorf("search by title: %v", got)
	}
	if got := isbns(c.Search(catalog.Filter{Search: "arpaci"})); !cmp.Equal(got, []string{"978-1-98"}) {
		t.Errorf("search by author: %v", got)
	}
	if got := isbns(c.Search(catalog.Filter{Search: "1-98"})); !cmp.Equal(got, []string{"978-1-98"}) {
		t.Errorf("search by isbn: %v", got)
	}
}

func TestFilter_Availability(t *testing.T) {
	c := sample()
	_ = c.BorrowBook(dune, "U1")
	if got := isbns(c.Search(catalog.Filter{Available: true})); !cmp.Equal(got, []string{"978-1-98"}) {
		t.Errorf("available filter: %v", got)
	}
	if got := isbns(c.Search(catalog.Filter{Borrowed: true})); !cmp.Equal(got, []string{dune}) {
		t.Errorf("borrowed filter: %v", got)
	}
}

func TestFilter_Empty(t *testing.T) {
	c := sample()
	if got := c.Search(catalog.Filter{}); len(got) != 2 {
		t.Errorf("empty filter should return all books, got %d", len(got))
	}
}

func TestBorrowers(t *testing.T) {
	c := sample()
	_ = c.BorrowBook(dune, "U2")
	got := c.Borrowers(dune)
	if len(got) != 1 || got[0].ID != "U2" {
		t.Errorf("Borrowers = %+v", got)
	}
}
