package app

import (
	"fmt"
	"path/filepath"

	"github.com/blackwell-systems/libctl/internal/config"
	"github.com/blackwell-systems/libctl/internal/ledger"
	"github.com/blackwell-systems/libctl/internal/util"
	"github.com/spf13/cobra"
)

func newInitCmd() *cobra.Command {
	var (
		journal bool
		force   bool
	)

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a config file and create the data directory",
		Long: `Write a libctl config file pointing at a data directory.

The data directory comes from --data-dir (default: the current directory).
With --journal, borrow and return history is appended to a JSONL file at the
end of every session.`,
		Example: `  libctl init --data-dir ~/library --journal`,
		Args:    cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			path := flagConfigPath()
			if util.FileExists(path) && !force {
				return fmt.Errorf("config already exists at %s (use --force to overwrite)", path)
			}

			dir := cfg.Data.Dir
			if abs, err := filepath.Abs(util.ExpandHome(dir)); err == nil {
				dir = abs
			}
			out := &config.Config{
				Data: config.DataConfig{
					Dir:       dir,
					BooksFile: cfg.Data.BooksFile,
					UsersFile: cfg.Data.UsersFile,
				},
				UI: cfg.UI,
			}
			if journal {
				out.History.Journal = ledger.DefaultPath()
			}

			if err := util.EnsureDir(dir); err != nil {
				return fmt.Errorf("creating data dir: %w", err)
			}
			if err := config.Save(path, out); err != nil {
				return fmt.Errorf("writing config: %w", err)
			}

			ok("Config written to %s", path)
			ok("Data directory: %s", dir)
			if journal {
				ok("History journal: %s", out.History.Journal)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&journal, "journal", false, "Keep borrow/return history across sessions")
	cmd.Flags().BoolVar(&force, "force", false, "Overwrite an existing config")
	return cmd
}

// flagConfigPath is the config file this invocation reads and writes.
func flagConfigPath() string {
	return config.ResolvePath(flagConfig)
}
