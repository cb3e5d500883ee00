// Package ledger keeps an optional append-only JSONL copy of borrow and
// return history across sessions.
package ledger

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/blackwell-systems/libctl/internal/record"
)

// Journal is a JSONL append-only history log.
type Journal struct {
	path string
}

// DefaultPath returns the default location of the history journal.
func DefaultPath() string {
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".local", "share", "libctl", "history.jsonl")
}

// Open opens (or prepares to create) the journal at path.
func Open(path string) (*Journal, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0750); err != nil {
		return nil, err
	}
	return &Journal{path: path}, nil
}

// Path returns the journal file path.
func (j *Journal) Path() string {
	return j.path
}

// Append writes entries to the end of the journal in order.
func (j *Journal) Append(entries ...record.HistoryEntry) error {
	if len(entries) == 0 {
		return nil
	}
	f, err := os.OpenFile(j.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return err
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	for _, e := range entries {
		data, err := json.Marshal(e)
		if err != nil {
			return err
		}
		if _, err := fmt.Fprintln(w, string(data)); err != nil {
			return err
		}
	}
	return w.Flush()
}

// Entries returns every readable journal entry, oldest first. Malformed
// lines are skipped and a missing journal has no entries.
func (j *Journal) Entries() ([]record.HistoryEntry, error) {
	f, err := os.Open(j.path)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var entries []record.HistoryEntry
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		var e record.HistoryEntry
		if err := json.Unmarshal(sc.Bytes(), &e); err != nil {
			continue
		}
		entries = append(entries, e)
	}
	return entries, sc.Err()
}
