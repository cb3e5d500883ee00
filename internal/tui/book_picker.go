package tui

import (
	"errors"
	"fmt"
	"io"

	"github.com/blackwell-systems/libctl/internal/record"
	"github.com/blackwell-systems/libctl/internal/tui/delegate"
	"github.com/blackwell-systems/libctl/internal/tui/picker"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
)

// ErrNothingToPick is returned when a picker has no items to offer.
var ErrNothingToPick = errors.New("nothing to pick from")

// BookOption is a book shown in the picker.
type BookOption struct {
	Book record.Book
}

// FilterValue implements list.Item
func (b BookOption) FilterValue() string {
	return b.Book.Title + " " + b.Book.Author + " " + b.Book.ISBN
}

func renderBookOption(w io.Writer, m list.Model, index int, item list.Item) {
	opt, ok := item.(BookOption)
	if !ok {
		return
	}

	isbn := fmt.Sprintf("%-17s", ansi.Truncate(opt.Book.ISBN, 17, "…"))
	title := ansi.Truncate(opt.Book.Title, 40, "…")
	status := AvailabilityLabel(opt.Book.Available)

	if index == m.Index() {
		_, _ = fmt.Fprint(w, StyleHighlight.Render("› "+isbn+" "+title)+" "+status)
	} else {
		_, _ = fmt.Fprint(w, "  "+StyleKey.Render(isbn)+" "+StyleNormal.Render(title)+" "+status)
	}
}

// RunBookPicker lets the user choose one of books and returns it.
func RunBookPicker(books []record.Book, title string) (record.Book, error) {
	if len(books) == 0 {
		return record.Book{}, fmt.Errorf("no books: %w", ErrNothingToPick)
	}
	items := make([]list.Item, len(books))
	for i, b := range books {
		items[i] = BookOption{Book: b}
	}
	if title == "" {
		title = "Select a book"
	}

	chosen, err := runPicker(items, title, renderBookOption)
	if err != nil {
		return record.Book{}, err
	}
	return chosen.(BookOption).Book, nil
}

type pickerModel struct {
	base *picker.Base
}

func (m pickerModel) Init() tea.Cmd {
	return nil
}

func (m pickerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	return m, m.base.Update(msg)
}

func (m pickerModel) View() string {
	return m.base.View()
}

func newPickerList(items []list.Item, title string, render delegate.RenderFunc) list.Model {
	l := list.New(items, delegate.New(render), 0, 0)
	l.Title = title
	l.SetShowStatusBar(true)
	l.SetFilteringEnabled(true)
	l.Styles.Title = StyleHeader
	l.Styles.PaginationStyle = StyleHelp
	l.Styles.HelpStyle = StyleHelp

	keys := NewPickerKeys()
	l.AdditionalShortHelpKeys = func() []key.Binding {
		return []key.Binding{keys.Select}
	}
	return l
}

func runPicker(items []list.Item, title string, render delegate.RenderFunc) (list.Item, error) {
	keys := NewPickerKeys()
	base := picker.New(picker.Config{
		List:        newPickerList(items, title, render),
		QuitKeys:    keys.Quit,
		SelectKeys:  keys.Select,
		ShowBorder:  true,
		BorderStyle: StyleBorder,
	})

	p := tea.NewProgram(pickerModel{base: base}, tea.WithAltScreen())
	finalModel, err := p.Run()
	if err != nil {
		return nil, fmt.Errorf("running picker: %w", err)
	}

	fm, ok := finalModel.(pickerModel)
	if !ok {
		return nil, fmt.Errorf("unexpected model type")
	}
	if fm.base.Error() != nil {
		return nil, fm.base.Error()
	}
	if fm.base.Chosen() == nil {
		return nil, picker.ErrCanceled
	}
	return fm.base.Chosen(), nil
}
