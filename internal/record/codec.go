package record

import (
	"errors"
	"fmt"
	"strings"
)

const (
	fieldSep = "|"
	isbnSep  = ","
)

// ErrFieldSeparator is returned by the encoders when a field holds a
// character that would split or terminate the line on the next load.
var ErrFieldSeparator = errors.New("field contains a record separator")

// EncodeBook renders b as title|author|isbn|flag where flag is 1 or 0.
func EncodeBook(b Book) (string, error) {
	for _, f := range []struct{ name, val string }{
		{"title", b.Title},
		{"author", b.Author},
		{"isbn", b.ISBN},
	} {
		if hasLineBreaker(f.val) {
			return "", fmt.Errorf("book %q: %s: %w", b.ISBN, f.name, ErrFieldSeparator)
		}
	}

	flag := "0"
	if b.Available {
		flag = "1"
	}
	return strings.Join([]string{b.Title, b.Author, b.ISBN, flag}, fieldSep), nil
}

// DecodeBook parses one books-file line. Missing trailing fields stay empty
// and the book is available only when the flag field is exactly "1".
func DecodeBook(line string) Book {
	parts := strings.SplitN(line, fieldSep, 4)
	var b Book
	if len(parts) > 0 {
		b.Title = parts[0]
	}
	if len(parts) > 1 {
		b.Author = parts[1]
	}
	if len(parts) > 2 {
		b.ISBN = parts[2]
	}
	if len(parts) > 3 {
		b.Available = parts[3] == "1"
	}
	return b
}

// EncodeUser renders u as id|name|isbn1,isbn2, with a comma after every ISBN.
func EncodeUser(u User) (string, error) {
	if hasLineBreaker(u.ID) {
		return "", fmt.Errorf("user %q: id: %w", u.ID, ErrFieldSeparator)
	}
	if hasLineBreaker(u.Name) {
		return "", fmt.Errorf("user %q: name: %w", u.ID, ErrFieldSeparator)
	}

	var sb strings.Builder
	sb.WriteString(u.ID)
	sb.WriteString(fieldSep)
	sb.WriteString(u.Name)
	sb.WriteString(fieldSep)
	for _, isbn := range u.Borrowed {
		if hasLineBreaker(isbn) || strings.Contains(isbn, isbnSep) {
			return "", fmt.Errorf("user %q: borrowed isbn %q: %w", u.ID, isbn, ErrFieldSeparator)
		}
		sb.WriteString(isbn)
		sb.WriteString(isbnSep)
	}
	return sb.String(), nil
}

// DecodeUser parses one users-file line. Empty ISBN tokens are skipped, and a
// final token without its trailing comma is still kept.
func DecodeUser(line string) User {
	parts := strings.SplitN(line, fieldSep, 3)
	var u User
	if len(parts) > 0 {
		u.ID = parts[0]
	}
	if len(parts) > 1 {
		u.Name = parts[1]
	}
	if len(parts) > 2 {
		for _, tok := range strings.Split(parts[2], isbnSep) {
			if tok == "" {
				continue
			}
			u.Borrowed = append(u.Borrowed, tok)
		}
	}
	return u
}

func hasLineBreaker(s string) bool {
	return strings.ContainsAny(s, fieldSep+"\n\r")
}
