package report_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/blackwell-systems/libctl/internal/record"
	"github.com/blackwell-systems/libctl/internal/report"
)

func TestHTML_ContainsRows(t *testing.T) {
	books := []record.Book{
		{Title: "Dune", Author: "Frank Herbert", ISBN: "111", Available: false},
		{Title: "Emma", Author: "Jane Austen", ISBN: "222", Available: true},
	}
	users := []record.User{{ID: "U1", Name: "Alice", Borrowed: []string{"111"}}}

	out := report.HTML(books, users)
	for _, want := range []string{
		"2 books (1 available, 1 on loan) · 1 users",
		"<td>Dune</td>",
		`<td class="status-out">On loan</td>`,
		`<td class="status-in">Available</td>`,
		`<td>U1</td><td>Alice</td><td class="isbn">111</td>`,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("report missing %q", want)
		}
	}
}

func TestHTML_EscapesText(t *testing.T) {
	books := []record.Book{{Title: `<script>alert("x")</script>`, Author: "A & B", ISBN: "1", Available: true}}
	out := report.HTML(books, nil)
	if strings.Contains(out, `<script>alert`) {
		t.Error("title was not escaped")
	}
	if !strings.Contains(out, "&lt;script&gt;") {
		t.Error("escaped title not found")
	}
	if !strings.Contains(out, "A &amp; B") {
		t.Error("author ampersand not escaped")
	}
}

func TestHTML_Empty(t *testing.T) {
	out := report.HTML(nil, nil)
	if !strings.Contains(out, "No books.") || !strings.Contains(out, "No users.") {
		t.Error("empty placeholders missing")
	}
}

func TestHTML_UserWithoutLoans(t *testing.T) {
	out := report.HTML(nil, []record.User{{ID: "U2", Name: "Bob"}})
	if !strings.Contains(out, `<span class="empty">none</span>`) {
		t.Error("missing placeholder for user without loans")
	}
}

func TestWrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out", "index.html")
	if err := report.Write(path, []record.Book{{Title: "Dune", ISBN: "1", Available: true}}, nil); err != nil {
		t.Fatalf("Write: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if !strings.HasPrefix(string(data), "<!DOCTYPE html>") {
		t.Error("report does not start with doctype")
	}
}
