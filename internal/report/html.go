// Package report renders a static HTML page of the catalog.
package report

import (
	"fmt"
	"html"
	"os"
	"path/filepath"
	"strings"

	"github.com/blackwell-systems/libctl/internal/record"
	"github.com/natefinch/atomic"
)

// Write renders the report and writes it to path.
func Write(path string, books []record.Book, users []record.User) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("creating report dir: %w", err)
	}
	if err := atomic.WriteFile(path, strings.NewReader(HTML(books, users))); err != nil {
		return fmt.Errorf("writing %s: %w", filepath.Base(path), err)
	}
	return os.Chmod(path, 0644)
}

// HTML returns the full report page. All catalog text is escaped.
func HTML(books []record.Book, users []record.User) string {
	var s strings.Builder

	available := 0
	for _, b := range books {
		if b.Available {
			available++
		}
	}

	s.WriteString(`<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>libctl Library</title>
    <style>
        :root {
            --teal: #1b8487;
            --teal-light: #2ecfd4;
            --teal-border: #1e3a3c;
            --orange: #fb6820;
        }
        * { margin: 0; padding: 0; box-sizing: border-box; }
        body {
            font-family: -apple-system, BlinkMacSystemFont, "Segoe UI", Roboto, sans-serif;
            background: #1a1a1a;
            color: #e0e0e0;
            line-height: 1.6;
            padding: 20px;
        }
        main { max-width: 1100px; margin: 0 auto; }
        h1 { font-size: 2rem; color: var(--teal-light); }
        h2 { margin: 30px 0 10px; color: var(--orange); }
        .subtitle { color: #888; font-size: 0.9rem; margin-bottom: 20px; }
        #search {
            width: 100%;
            padding: 12px 20px;
            font-size: 1rem;
            background: #2a2a2a;
            border: 1px solid #444;
            border-radius: 8px;
            color: #e0e0e0;
        }
        #search:focus { outline: none; border-color: var(--teal-light); }
        table { width: 100%; border-collapse: collapse; }
        th, td { text-align: left; padding: 8px 10px; border-bottom: 1px solid var(--teal-border); }
        th { color: var(--teal-light); font-weight: 600; }
        .isbn { font-family: monospace; color: #aaa; }
        .status-in { color: #5fd068; }
        .status-out { color: var(--orange); }
        .empty { color: #666; font-style: italic; }
    </style>
</head>
<body>
<main>
    <h1>Library</h1>
`)
	fmt.Fprintf(&s, `    <div class="subtitle">%d books (%d available, %d on loan) · %d users</div>
    <input id="search" type="text" placeholder="Filter books and users…">
`, len(books), available, len(books)-available, len(users))

	s.WriteString(`
    <h2>Books</h2>
    <table id="books">
        <thead><tr><th>Title</th><th>Author</th><th>ISBN</th><th>Status</th></tr></thead>
        <tbody>
`)
	if len(books) == 0 {
		s.WriteString(`            <tr><td colspan="4" class="empty">No books.</td></tr>
`)
	}
	for _, b := range books {
		renderBookRow(&s, b)
	}
	s.WriteString(`        </tbody>
    </table>

    <h2>Users</h2>
    <table id="users">
        <thead><tr><th>ID</th><th>Name</th><th>Borrowed</th></tr></thead>
        <tbody>
`)
	if len(users) == 0 {
		s.WriteString(`            <tr><td colspan="3" class="empty">No users.</td></tr>
`)
	}
	for _, u := range users {
		renderUserRow(&s, u)
	}
	s.WriteString(`        </tbody>
    </table>
</main>
<script>
    const search = document.getElementById('search');
    search.addEventListener('input', () => {
        const q = search.value.toLowerCase();
        document.querySelectorAll('tbody tr').forEach(row => {
            row.style.display = row.textContent.toLowerCase().includes(q) ? '' : 'none';
        });
    });
</script>
</body>
</html>
`)
	return s.String()
}

func renderBookRow(s *strings.Builder, b record.Book) {
	status, class := "Available", "status-in"
	if !b.Available {
		status, class = "On loan", "status-out"
	}
	fmt.Fprintf(s, `            <tr><td>%s</td><td>%s</td><td class="isbn">%s</td><td class="%s">%s</td></tr>
`,
		html.EscapeString(b.Title),
		html.EscapeString(b.Author),
		html.EscapeString(b.ISBN),
		class, status)
}

func renderUserRow(s *strings.Builder, u record.User) {
	borrowed := make([]string, len(u.Borrowed))
	for i, isbn := range u.Borrowed {
		borrowed[i] = html.EscapeString(isbn)
	}
	cell := strings.Join(borrowed, ", ")
	if cell == "" {
		cell = `<span class="empty">none</span>`
	}
	fmt.Fprintf(s, `            <tr><td>%s</td><td>%s</td><td class="isbn">%s</td></tr>
`,
		html.EscapeString(u.ID),
		html.EscapeString(u.Name),
		cell)
}
