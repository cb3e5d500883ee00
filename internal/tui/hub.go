package tui

import (
	"fmt"
	"io"

	"github.com/blackwell-systems/libctl/internal/tui/delegate"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// MenuItem represents an action in the hub menu
type MenuItem struct {
	Key         string
	Code        string // numeric shortcut, same as the plain menu
	Label       string
	Description string
}

// FilterValue implements list.Item
func (m MenuItem) FilterValue() string {
	return m.Label + " " + m.Description
}

// HubContext holds the catalog counts shown in the hub header
type HubContext struct {
	Books     int
	Available int
	Users     int
	History   int
}

// MenuItems is the full menu in display order.
var MenuItems = []MenuItem{
	{Key: "add-book", Code: "1", Label: "Add Book", Description: "Add a new book to the catalog"},
	{Key: "register-user", Code: "2", Label: "Register User", Description: "Register a library member"},
	{Key: "borrow", Code: "3", Label: "Borrow Book", Description: "Lend an available book to a user"},
	{Key: "return", Code: "4", Label: "Return Book", Description: "Take a book back from a user"},
	{Key: "books", Code: "5", Label: "List Books", Description: "Show every book and its status"},
	{Key: "users", Code: "6", Label: "List Users", Description: "Show members and what they hold"},
	{Key: "delete-book", Code: "7", Label: "Delete Book", Description: "Remove a book from the catalog"},
	{Key: "delete-user", Code: "8", Label: "Delete User", Description: "Remove a member"},
	{Key: "history", Code: "9", Label: "History", Description: "Borrow and return log for this session"},
	{Key: "quit", Code: "0", Label: "Save & Quit", Description: "Write the data files and exit"},
}

// ItemByCode returns the menu item with the given numeric code.
func ItemByCode(code string) (MenuItem, bool) {
	for _, it := range MenuItems {
		if it.Code == code {
			return it, true
		}
	}
	return MenuItem{}, false
}

// VisibleItems filters the menu down to actions that make sense for ctx.
func VisibleItems(ctx HubContext) []MenuItem {
	var out []MenuItem
	for _, it := range MenuItems {
		switch it.Key {
		case "borrow":
			if ctx.Available == 0 || ctx.Users == 0 {
				continue
			}
		case "return":
			if ctx.Books == ctx.Available || ctx.Users == 0 {
				continue
			}
		case "delete-book":
			if ctx.Books == 0 {
				continue
			}
		case "delete-user":
			if ctx.Users == 0 {
				continue
			}
		}
		out = append(out, it)
	}
	return out
}

func renderMenuItem(w io.Writer, m list.Model, index int, item list.Item) {
	menuItem, ok := item.(MenuItem)
	if !ok {
		return
	}

	code := StyleHelp.Render(menuItem.Code)
	desc := StyleHelp.Render(menuItem.Description)
	display := fmt.Sprintf("%-16s %s", menuItem.Label, desc)

	if index == m.Index() {
		_, _ = fmt.Fprint(w, code+" "+StyleHighlight.Render("› "+display))
	} else {
		_, _ = fmt.Fprint(w, code+"   "+StyleNormal.Render(display))
	}
}

type hubModel struct {
	list      list.Model
	items     []MenuItem
	quitting  bool
	action    string
	context   HubContext
	status    string
	activeCmd string
}

type hubKeys struct {
	quit       key.Binding
	selectItem key.Binding
}

var hubKeyMap = hubKeys{
	quit: key.NewBinding(
		key.WithKeys("q", "esc", "ctrl+c"),
		key.WithHelp("q", "save & quit"),
	),
	selectItem: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "select"),
	),
}

func newHubModel(ctx HubContext, status string) hubModel {
	visible := VisibleItems(ctx)
	items := make([]list.Item, len(visible))
	for i, it := range visible {
		items[i] = it
	}

	l := list.New(items, delegate.NewWithSpacing(renderMenuItem, 1), 0, 0)
	l.SetShowTitle(false)
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(true)
	l.Styles.HelpStyle = StyleHelp
	l.AdditionalShortHelpKeys = func() []key.Binding {
		return []key.Binding{hubKeyMap.selectItem}
	}

	return hubModel{list: l, items: visible, context: ctx, status: status}
}

func (m hubModel) Init() tea.Cmd {
	return nil
}

func (m hubModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case ClearActiveCmdMsg:
		m.activeCmd = ""
		return m, nil

	case tea.KeyMsg:
		if m.list.FilterState() == list.Filtering {
			break
		}

		switch {
		case key.Matches(msg, hubKeyMap.quit):
			m.quitting = true
			m.action = "quit"
			return m, tea.Quit

		case key.Matches(msg, hubKeyMap.selectItem):
			if item, ok := m.list.SelectedItem().(MenuItem); ok {
				m.action = item.Key
				m.quitting = true
				return m, tea.Quit
			}
		}

		// Numeric shortcuts jump straight to the action.
		for _, it := range m.items {
			if msg.String() == it.Code {
				m.action = it.Key
				m.quitting = true
				return m, tea.Quit
			}
		}

	case tea.WindowSizeMsg:
		const outerPaddingH = 4 * 2
		const outerPaddingV = 2 * 2
		const innerPaddingH = 1 + 2
		const headerLines = 6
		h, v := StyleBorder.GetFrameSize()

		listWidth := max(msg.Width-outerPaddingH-innerPaddingH-h, 40)
		listHeight := max(msg.Height-outerPaddingV-v-headerLines, 5)
		m.list.SetSize(listWidth, listHeight)
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m hubModel) View() string {
	if m.quitting {
		return ""
	}

	outerStyle := lipgloss.NewStyle().Padding(2, 4)

	header := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("86")).
		Padding(0, 1).
		Render("libctl - Library Catalog")

	counts := lipgloss.NewStyle().
		Foreground(lipgloss.Color("240")).
		Render(fmt.Sprintf("  %d books (%d available) · %d users · %d history entries",
			m.context.Books, m.context.Available, m.context.Users, m.context.History))

	parts := []string{header, counts}
	if m.status != "" {
		parts = append(parts, "  "+m.status)
	}
	parts = append(parts, "", m.list.View(), RenderFooterBar([]ShortcutEntry{
		{Label: "0-9 jump"},
		{Label: "/ filter"},
		{Label: "q save & quit"},
	}, m.activeCmd))

	content := lipgloss.JoinVertical(lipgloss.Left, parts...)
	innerPadding := lipgloss.NewStyle().Padding(0, 2, 0, 1)
	return outerStyle.Render(StyleBorder.Render(innerPadding.Render(content)))
}

// RunHub shows the hub menu and returns the chosen action key. status is a
// one-line message from the previous action, shown under the header.
func RunHub(ctx HubContext, status string) (string, error) {
	p := tea.NewProgram(newHubModel(ctx, status), tea.WithAltScreen())
	finalModel, err := p.Run()
	if err != nil {
		return "", fmt.Errorf("running hub: %w", err)
	}

	fm, ok := finalModel.(hubModel)
	if !ok {
		return "", fmt.Errorf("unexpected model type")
	}
	return fm.action, nil
}
