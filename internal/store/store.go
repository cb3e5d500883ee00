// Package store persists the catalog's books and users as flat,
// pipe-delimited text files.
package store

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/blackwell-systems/libctl/internal/catalog"
	"github.com/blackwell-systems/libctl/internal/record"
	"github.com/natefinch/atomic"
)

const (
	DefaultBooksFile = "books.txt"
	DefaultUsersFile = "users.txt"

	filePerms = 0644
	dirPerms  = 0755
)

// Store knows where the books and users files live.
type Store struct {
	BooksPath string
	UsersPath string
}

// New returns a Store for the two files inside dir. Empty file names fall
// back to books.txt and users.txt.
func New(dir, booksFile, usersFile string) *Store {
	if booksFile == "" {
		booksFile = DefaultBooksFile
	}
	if usersFile == "" {
		usersFile = DefaultUsersFile
	}
	return &Store{
		BooksPath: filepath.Join(dir, booksFile),
		UsersPath: filepath.Join(dir, usersFile),
	}
}

// Load reads both files into a fresh catalog. A missing file is an empty
// collection, and history always starts empty.
func (s *Store) Load() (*catalog.Catalog, error) {
	var books []record.Book
	err := readLines(s.BooksPath, func(line string) {
		books = append(books, record.DecodeBook(line))
	})
	if err != nil {
		return nil, fmt.Errorf("loading books: %w", err)
	}

	var users []record.User
	err = readLines(s.UsersPath, func(line string) {
		users = append(users, record.DecodeUser(line))
	})
	if err != nil {
		return nil, fmt.Errorf("loading users: %w", err)
	}

	return catalog.FromSnapshot(books, users), nil
}

// Save rewrites both files from the catalog, one line per entity in catalog
// order. History is never written. Nothing is written if any record fails to
// encode.
func (s *Store) Save(c *catalog.Catalog) error {
	var books strings.Builder
	for _, b := range c.Books() {
		line, err := record.EncodeBook(b)
		if err != nil {
			return fmt.Errorf("saving books: %w", err)
		}
		books.WriteString(line)
		books.WriteByte('\n')
	}

	var users strings.Builder
	for _, u := range c.Users() {
		line, err := record.EncodeUser(u)
		if err != nil {
			return fmt.Errorf("saving users: %w", err)
		}
		users.WriteString(line)
		users.WriteByte('\n')
	}

	if err := writeFile(s.BooksPath, books.String()); err != nil {
		return fmt.Errorf("saving books: %w", err)
	}
	if err := writeFile(s.UsersPath, users.String()); err != nil {
		return fmt.Errorf("saving users: %w", err)
	}
	return nil
}

func readLines(path string, fn func(string)) error {
	f, err := os.Open(path)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return err
	}
	defer f.Close()

	sc := bufio.NewScanner(f)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for sc.Scan() {
		line := strings.TrimSuffix(sc.Text(), "\r")
		if line == "" {
			continue
		}
		fn(line)
	}
	return sc.Err()
}

func writeFile(path, content string) error {
	if err := os.MkdirAll(filepath.Dir(path), dirPerms); err != nil {
		return err
	}
	if err := atomic.WriteFile(path, strings.NewReader(content)); err != nil {
		return err
	}
	// atomic.WriteFile leaves new files with the temp file's 0600 mode.
	return os.Chmod(path, filePerms)
}
