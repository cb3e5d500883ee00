package store

import (
	"fmt"

	"github.com/blackwell-systems/libctl/internal/catalog"
	"github.com/blackwell-systems/libctl/internal/ledger"
)

// Session is one load → operate → save cycle. Open it once, hand its catalog
// to the caller and defer Close.
type Session struct {
	store   *Store
	cat     *catalog.Catalog
	journal *ledger.Journal
	closed  bool
}

// Option configures a Session.
type Option func(*Session)

// WithJournal appends the session's history to j when the session closes.
func WithJournal(j *ledger.Journal) Option {
	return func(s *Session) { s.journal = j }
}

// Open loads the catalog from st.
func Open(st *Store, opts ...Option) (*Session, error) {
	cat, err := st.Load()
	if err != nil {
		return nil, err
	}
	s := &Session{store: st, cat: cat}
	for _, o := range opts {
		o(s)
	}
	return s, nil
}

// Catalog returns the session's in-memory catalog.
func (s *Session) Catalog() *catalog.Catalog {
	return s.cat
}

// Close saves the catalog and flushes history to the journal, if any.
// Calling Close more than once is a no-op.
func (s *Session) Close() error {
	if s.closed {
		return nil
	}
	s.closed = true

	if err := s.store.Save(s.cat); err != nil {
		return err
	}
	if s.journal == nil {
		return nil
	}
	if err := s.journal.Append(s.cat.History()...); err != nil {
		return fmt.Errorf("writing history journal: %w", err)
	}
	return nil
}

// Update loads the catalog, applies fn and saves the result. If fn returns
// an error nothing is written.
func Update(st *Store, fn func(*catalog.Catalog) error, opts ...Option) error {
	s, err := Open(st, opts...)
	if err != nil {
		return err
	}
	if err := fn(s.cat); err != nil {
		return err
	}
	return s.Close()
}
