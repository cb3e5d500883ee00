// Package app wires the libctl command tree.
package app

import (
	"fmt"
	"io"
	"os"

	"github.com/blackwell-systems/libctl/internal/catalog"
	"github.com/blackwell-systems/libctl/internal/config"
	"github.com/blackwell-systems/libctl/internal/ledger"
	"github.com/blackwell-systems/libctl/internal/store"
	"github.com/blackwell-systems/libctl/internal/tui"
	"github.com/blackwell-systems/libctl/internal/util"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var (
	cfg *config.Config
	st  *store.Store

	flagNoColor       bool
	flagNoInteractive bool
	flagConfig        string
	flagDataDir       string

	stdin  io.Reader = os.Stdin
	stdout io.Writer = os.Stdout
	stderr io.Writer = os.Stderr
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "libctl",
		Short: "Manage a small library catalog of books, users and loans",
		Long: `libctl keeps a library catalog in two plain text files:

  books.txt   title|author|isbn|1 (available) or 0 (on loan)
  users.txt   id|name|isbn,isbn,

Run 'libctl' with no arguments for the interactive menu. Every menu
action is also available as a subcommand for scripting.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runInteractive(cmd)
		},
	}

	root.PersistentFlags().BoolVar(&flagNoColor, "no-color", false, "Disable colored output")
	root.PersistentFlags().BoolVar(&flagNoInteractive, "no-interactive", false, "Disable the TUI menu and pickers")
	root.PersistentFlags().StringVar(&flagConfig, "config", "", "Config file path (default: ~/.config/libctl/config.yml)")
	root.PersistentFlags().StringVar(&flagDataDir, "data-dir", "", "Directory holding books.txt and users.txt")

	root.PersistentPreRunE = func(cmd *cobra.Command, _ []string) error {
		var err error
		cfg, err = config.Load(flagConfig)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
		if flagDataDir != "" {
			cfg.Data.Dir = flagDataDir
		}
		if cfg.UI.NoInteractive {
			flagNoInteractive = true
			_ = cmd.Flags().Set("no-interactive", "true")
		}
		util.InitColor(flagNoColor || cfg.UI.NoColor)

		st = &store.Store{BooksPath: cfg.BooksPath(), UsersPath: cfg.UsersPath()}
		return nil
	}

	root.AddCommand(
		newInitCmd(),
		newAddBookCmd(),
		newRegisterUserCmd(),
		newBorrowCmd(),
		newReturnCmd(),
		newDeleteBookCmd(),
		newDeleteUserCmd(),
		newBooksCmd(),
		newUsersCmd(),
		newHistoryCmd(),
		newSearchCmd(),
		newInfoCmd(),
		newImportCmd(),
		newReportCmd(),
		newBackupCmd(),
		newStatusCmd(),
		newVersionCmd(),
		newCompletionCmd(),
	)
	return root
}

// Execute is the entry point called from main.
func Execute() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, color.RedString("error:"), err)
		os.Exit(1)
	}
}

// sessionOptions returns the store options implied by the config.
func sessionOptions() ([]store.Option, error) {
	if !cfg.JournalEnabled() {
		return nil, nil
	}
	j, err := ledger.Open(cfg.JournalPath())
	if err != nil {
		return nil, fmt.Errorf("opening history journal: %w", err)
	}
	return []store.Option{store.WithJournal(j)}, nil
}

// openSession loads the catalog for an interactive session.
func openSession() (*store.Session, error) {
	opts, err := sessionOptions()
	if err != nil {
		return nil, err
	}
	return store.Open(st, opts...)
}

// update runs fn against a freshly loaded catalog and saves only if fn
// succeeds.
func update(fn func(*catalog.Catalog) error) error {
	opts, err := sessionOptions()
	if err != nil {
		return err
	}
	return store.Update(st, fn, opts...)
}

// view loads the catalog read-only.
func view() (*catalog.Catalog, error) {
	return st.Load()
}

// ok prints a green success line.
func ok(format string, a ...interface{}) {
	fmt.Fprintln(stdout, color.GreenString("✓"), fmt.Sprintf(format, a...))
}

// warn prints a yellow warning line.
func warn(format string, a ...interface{}) {
	fmt.Fprintln(stderr, color.YellowString("!"), fmt.Sprintf(format, a...))
}

// header prints a cyan section heading.
func header(format string, a ...interface{}) {
	fmt.Fprintln(stdout, color.CyanString(fmt.Sprintf(format, a...)))
}

// interactive reports whether pickers and the hub may be used for cmd.
func interactive(cmd *cobra.Command) bool {
	return tui.ShouldUseTUI(cmd)
}
