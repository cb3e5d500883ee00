package app

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/blackwell-systems/libctl/internal/catalog"
	"github.com/blackwell-systems/libctl/internal/record"
	"github.com/blackwell-systems/libctl/internal/tui"
	"github.com/fatih/color"
	"github.com/peterh/liner"
	"github.com/spf13/cobra"
)

// Prompter reads one line of input after showing prompt. *liner.State
// satisfies it.
type Prompter interface {
	Prompt(prompt string) (string, error)
}

const menuText = `
Library Management System
1. Add Book
2. Register User
3. Borrow Book
4. Return Book
5. Display All Books
6. Display All Users
7. Delete Book
8. Delete User
9. Display Borrowed/Returned Books History
0. Exit`

const (
	msgInvalidNumber = "Invalid input! Please enter a number."
	msgInvalidChoice = "Invalid choice! Please select between 0 and 9."
	msgInvalidName   = "Invalid input! Please enter a valid name."
	msgInvalidISBN   = "Invalid ISBN! Please use digits and dashes only."
	msgInvalidText   = "Invalid input! '|' and line breaks are not allowed."
	msgPressEnter    = "Press Enter to go back to menu..."
)

// runInteractive opens one session, runs the hub or the numbered menu on it
// and saves when the user leaves.
func runInteractive(cmd *cobra.Command) (err error) {
	s, err := openSession()
	if err != nil {
		return err
	}
	defer func() {
		if cerr := s.Close(); cerr != nil {
			if err == nil {
				err = fmt.Errorf("saving catalog: %w", cerr)
			}
			return
		}
		ok("Saved %s and %s", st.BooksPath, st.UsersPath)
	}()

	if interactive(cmd) {
		return runHub(s.Catalog())
	}

	line := liner.NewLiner()
	defer line.Close()
	line.SetCtrlCAborts(true)
	return newMenu(line, stdout, s.Catalog()).run()
}

type menu struct {
	in  Prompter
	out io.Writer
	cat *catalog.Catalog
}

func newMenu(in Prompter, out io.Writer, cat *catalog.Catalog) *menu {
	return &menu{in: in, out: out, cat: cat}
}

// run shows the menu until the user picks 0 or input ends.
func (m *menu) run() error {
	for {
		fmt.Fprintln(m.out, menuText)
		choice, err := m.in.Prompt("Choice: ")
		if err != nil {
			return endOfInput(err)
		}

		n, convErr := strconv.Atoi(strings.TrimSpace(choice))
		if convErr != nil {
			fmt.Fprintln(m.out, msgInvalidNumber)
			continue
		}
		if n < 0 || n > 9 {
			fmt.Fprintln(m.out, msgInvalidChoice)
			continue
		}
		if n == 0 {
			return nil
		}
		if err := m.dispatch(n); err != nil {
			return endOfInput(err)
		}
	}
}

func (m *menu) dispatch(choice int) error {
	switch choice {
	case 1:
		title, err := m.ask("Title: ", msgInvalidText, func(s string) error { return record.ValidateText("title", s) })
		if err != nil {
			return err
		}
		author, err := m.ask("Author : ", msgInvalidName, func(s string) error { return record.ValidateName("author", s) })
		if err != nil {
			return err
		}
		isbn, err := m.ask("ISBN : ", msgInvalidISBN, record.ValidateISBN)
		if err != nil {
			return err
		}
		m.report(addBook(m.cat, title, author, isbn))

	case 2:
		id, err := m.askUserID("User ID: ")
		if err != nil {
			return err
		}
		name, err := m.ask("Name : ", msgInvalidName, func(s string) error { return record.ValidateName("name", s) })
		if err != nil {
			return err
		}
		m.report(registerUser(m.cat, id, name))

	case 3, 4:
		isbn, err := m.ask("ISBN : ", msgInvalidISBN, record.ValidateISBN)
		if err != nil {
			return err
		}
		id, err := m.askUserID("User ID: ")
		if err != nil {
			return err
		}
		if choice == 3 {
			m.report(borrow(m.cat, isbn, id))
		} else {
			m.report(giveBack(m.cat, isbn, id))
		}

	case 5:
		fmt.Fprintln(m.out, tui.BooksTable(m.cat.Books()))
		return m.pause()

	case 6:
		fmt.Fprintln(m.out, tui.UsersTable(m.cat.Users()))
		return m.pause()

	case 7:
		isbn, err := m.ask("Enter ISBN of the book to delete : ", msgInvalidISBN, record.ValidateISBN)
		if err != nil {
			return err
		}
		m.report(deleteBook(m.cat, isbn))

	case 8:
		id, err := m.askUserID("Enter User ID to delete: ")
		if err != nil {
			return err
		}
		m.report(deleteUser(m.cat, id))

	case 9:
		fmt.Fprintln(m.out, tui.HistoryTable(m.cat.History()))
		return m.pause()
	}
	return nil
}

// ask prompts until validate accepts the trimmed answer.
func (m *menu) ask(prompt, invalid string, validate func(string) error) (string, error) {
	for {
		answer, err := m.in.Prompt(prompt)
		if err != nil {
			return "", err
		}
		answer = strings.TrimSpace(answer)
		if validate(answer) == nil {
			return answer, nil
		}
		fmt.Fprintln(m.out, invalid)
	}
}

func (m *menu) askUserID(prompt string) (string, error) {
	return m.ask(prompt, msgInvalidText, func(s string) error { return record.ValidateText("user id", s) })
}

func (m *menu) pause() error {
	_, err := m.in.Prompt(msgPressEnter)
	return err
}

func (m *menu) report(msg string, err error) {
	if err != nil {
		fmt.Fprintln(m.out, color.YellowString("!"), err)
		return
	}
	fmt.Fprintln(m.out, color.GreenString("✓"), msg)
}

// endOfInput treats EOF and Ctrl-C at a prompt as leaving the menu.
func endOfInput(err error) error {
	if errors.Is(err, io.EOF) || errors.Is(err, liner.ErrPromptAborted) {
		return nil
	}
	return err
}
