// Package config loads libctl settings from a YAML file and LIBCTL_*
// environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/blackwell-systems/libctl/internal/util"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

const (
	DefaultBooksFile = "books.txt"
	DefaultUsersFile = "users.txt"
)

// DefaultPath returns the default config file path.
func DefaultPath() string {
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "libctl", "config.yml")
}

// ResolvePath picks the config file: an explicit path wins, then
// LIBCTL_CONFIG, then the default.
func ResolvePath(explicit string) string {
	if explicit != "" {
		return util.ExpandHome(explicit)
	}
	if p := os.Getenv("LIBCTL_CONFIG"); p != "" {
		return util.ExpandHome(p)
	}
	return DefaultPath()
}

// Load reads the config from path (see ResolvePath) and the environment.
// A missing file is fine; the defaults keep the data files in the current
// directory.
func Load(path string) (*Config, error) {
	v := viper.New()

	v.SetDefault("data.dir", ".")
	v.SetDefault("data.books_file", DefaultBooksFile)
	v.SetDefault("data.users_file", DefaultUsersFile)
	v.SetDefault("history.journal", "")
	v.SetDefault("ui.no_color", false)
	v.SetDefault("ui.no_interactive", false)

	v.SetEnvPrefix("LIBCTL")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetConfigFile(ResolvePath(path))
	v.SetConfigType("yaml")

	if err := v.ReadInConfig(); err != nil {
		// A missing config file is fine; init creates it.
		var notFound viper.ConfigFileNotFoundError
		if !errors.Is(err, os.ErrNotExist) && !errors.As(err, &notFound) {
			return nil, fmt.Errorf("reading config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return &cfg, nil
}

// Save writes cfg as YAML to path, creating parent directories.
func Save(path string, cfg *Config) error {
	if err := util.EnsureDir(filepath.Dir(path)); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	enc := yaml.NewEncoder(f)
	enc.SetIndent(2)
	if err := enc.Encode(cfg); err != nil {
		return err
	}
	return enc.Close()
}
