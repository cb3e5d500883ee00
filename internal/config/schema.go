package config

import (
	"path/filepath"

	"github.com/blackwell-systems/libctl/internal/util"
)

// Config is the top-level libctl configuration.
type Config struct {
	Data    DataConfig    `mapstructure:"data" yaml:"data"`
	History HistoryConfig `mapstructure:"history" yaml:"history"`
	UI      UIConfig      `mapstructure:"ui" yaml:"ui"`
}

// DataConfig locates the books and users files.
type DataConfig struct {
	Dir       string `mapstructure:"dir" yaml:"dir"`
	BooksFile string `mapstructure:"books_file" yaml:"books_file"`
	UsersFile string `mapstructure:"users_file" yaml:"users_file"`
}

// HistoryConfig controls the optional cross-session history journal.
type HistoryConfig struct {
	Journal string `mapstructure:"journal" yaml:"journal,omitempty"` // empty disables it
}

// UIConfig holds terminal preferences.
type UIConfig struct {
	NoColor       bool `mapstructure:"no_color" yaml:"no_color"`
	NoInteractive bool `mapstructure:"no_interactive" yaml:"no_interactive"`
}

// BooksPath returns the full path of the books file.
func (c *Config) BooksPath() string {
	return filepath.Join(util.ExpandHome(c.Data.Dir), c.effectiveBooksFile())
}

// UsersPath returns the full path of the users file.
func (c *Config) UsersPath() string {
	return filepath.Join(util.ExpandHome(c.Data.Dir), c.effectiveUsersFile())
}

// JournalEnabled reports whether history should be journaled.
func (c *Config) JournalEnabled() bool {
	return c.History.Journal != ""
}

// JournalPath returns the expanded journal path, or "" when disabled.
func (c *Config) JournalPath() string {
	return util.ExpandHome(c.History.Journal)
}

func (c *Config) effectiveBooksFile() string {
	if c.Data.BooksFile != "" {
		return c.Data.BooksFile
	}
	return DefaultBooksFile
}

func (c *Config) effectiveUsersFile() string {
	if c.Data.UsersFile != "" {
		return c.Data.UsersFile
	}
	return DefaultUsersFile
}
