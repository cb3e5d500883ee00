package app

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/blackwell-systems/libctl/internal/util"
	"github.com/spf13/cobra"
)

func newBackupCmd() *cobra.Command {
	var dir string

	cmd := &cobra.Command{
		Use:   "backup",
		Short: "Copy the data files to a backup directory",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			if dir == "" {
				stamp := time.Now().Format("20060102-150405")
				dir = filepath.Join(util.ExpandHome(cfg.Data.Dir), "backup", stamp)
			}

			copied := 0
			for _, src := range []string{st.BooksPath, st.UsersPath} {
				if !util.FileExists(src) {
					warn("Skipping %s (does not exist yet)", src)
					continue
				}
				dst := filepath.Join(dir, filepath.Base(src))
				if err := util.CopyFile(src, dst); err != nil {
					return fmt.Errorf("backing up %s: %w", filepath.Base(src), err)
				}
				copied++
			}
			if copied == 0 {
				return fmt.Errorf("nothing to back up")
			}
			ok("Backed up %d files to %s", copied, dir)
			return nil
		},
	}

	cmd.Flags().StringVar(&dir, "dir", "", "Destination directory (default: <data-dir>/backup/<timestamp>)")
	return cmd
}
