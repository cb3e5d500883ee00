package tui

import (
	"strings"

	"github.com/blackwell-systems/libctl/internal/record"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/charmbracelet/x/ansi"
)

// Column widths for listings.
const (
	widthTitle  = 30
	widthAuthor = 20
	widthISBN   = 17
	widthUserID = 12
	widthName   = 20
	widthLoans  = 29
)

const timeLayout = "2006-01-02 15:04"

func cell(s string, width int) string {
	return ansi.Truncate(s, width, "…")
}

func newTable(headers ...string) *table.Table {
	headerStyle := StyleHeader.Padding(0, 1)
	cellStyle := lipgloss.NewStyle().Padding(0, 1)
	return table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(ColorGray)).
		Headers(headers...).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		})
}

// BooksTable renders books with their availability.
func BooksTable(books []record.Book) string {
	t := newTable("Title", "Author", "ISBN", "Status")
	for _, b := range books {
		status := "Available"
		if !b.Available {
			status = "Borrowed"
		}
		t.Row(cell(b.Title, widthTitle), cell(b.Author, widthAuthor), cell(b.ISBN, widthISBN), status)
	}
	return t.String()
}

// UsersTable renders users and the ISBNs they hold.
func UsersTable(users []record.User) string {
	t := newTable("User ID", "Name", "Borrowed Books")
	for _, u := range users {
		loans := strings.Join(u.Borrowed, " ")
		if loans == "" {
			loans = "None"
		}
		t.Row(cell(u.ID, widthUserID), cell(u.Name, widthName), cell(loans, widthLoans))
	}
	return t.String()
}

// HistoryTable renders borrow and return entries, oldest first.
func HistoryTable(entries []record.HistoryEntry) string {
	t := newTable("User ID", "ISBN", "Action", "When")
	for _, e := range entries {
		when := ""
		if !e.At.IsZero() {
			when = e.At.Local().Format(timeLayout)
		}
		t.Row(cell(e.UserID, widthUserID), cell(e.ISBN, widthISBN), string(e.Action), when)
	}
	return t.String()
}
