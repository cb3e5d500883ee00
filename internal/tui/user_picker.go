package tui

import (
	"fmt"
	"io"

	"github.com/blackwell-systems/libctl/internal/record"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/x/ansi"
)

// UserOption is a user shown in the picker.
type UserOption struct {
	User record.User
}

// FilterValue implements list.Item
func (u UserOption) FilterValue() string {
	return u.User.ID + " " + u.User.Name
}

func renderUserOption(w io.Writer, m list.Model, index int, item list.Item) {
	opt, ok := item.(UserOption)
	if !ok {
		return
	}

	id := fmt.Sprintf("%-12s", ansi.Truncate(opt.User.ID, 12, "…"))
	name := ansi.Truncate(opt.User.Name, 32, "…")
	loans := StyleHelp.Render(fmt.Sprintf("[%d borrowed]", len(opt.User.Borrowed)))

	if index == m.Index() {
		_, _ = fmt.Fprint(w, StyleHighlight.Render("› "+id+" "+name)+" "+loans)
	} else {
		_, _ = fmt.Fprint(w, "  "+StyleKey.Render(id)+" "+StyleNormal.Render(name)+" "+loans)
	}
}

// RunUserPicker lets the user choose one of users and returns it.
func RunUserPicker(users []record.User, title string) (record.User, error) {
	if len(users) == 0 {
		return record.User{}, fmt.Errorf("no users: %w", ErrNothingToPick)
	}
	items := make([]list.Item, len(users))
	for i, u := range users {
		items[i] = UserOption{User: u}
	}
	if title == "" {
		title = "Select a user"
	}

	chosen, err := runPicker(items, title, renderUserOption)
	if err != nil {
		return record.User{}, err
	}
	return chosen.(UserOption).User, nil
}
