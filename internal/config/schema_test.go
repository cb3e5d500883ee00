package config_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/blackwell-systems/libctl/internal/config"
)

func TestBooksPath_Defaults(t *testing.T) {
	cfg := &config.Config{Data: config.DataConfig{Dir: "/srv/lib"}}
	if got, want := cfg.BooksPath(), filepath.Join("/srv/lib", "books.txt"); got != want {
		t.Errorf("BooksPath = %q, want %q", got, want)
	}
	if got, want := cfg.UsersPath(), filepath.Join("/srv/lib", "users.txt"); got != want {
		t.Errorf("UsersPath = %q, want %q", got, want)
	}
}

func TestBooksPath_CustomFiles(t *testing.T) {
	cfg := &config.Config{Data: config.DataConfig{Dir: "data", BooksFile: "b.db", UsersFile: "u.db"}}
	if got := cfg.BooksPath(); got != filepath.Join("data", "b.db") {
		t.Errorf("BooksPath = %q", got)
	}
	if got := cfg.UsersPath(); got != filepath.Join("data", "u.db") {
		t.Errorf("UsersPath = %q", got)
	}
}

func TestBooksPath_ExpandsHome(t *testing.T) {
	home, _ := os.UserHomeDir()
	cfg := &config.Config{Data: config.DataConfig{Dir: "~/lib"}}
	if got, want := cfg.BooksPath(), filepath.Join(home, "lib", "books.txt"); got != want {
		t.Errorf("BooksPath = %q, want %q", got, want)
	}
}

func TestJournal(t *testing.T) {
	cfg := &config.Config{}
	if cfg.JournalEnabled() {
		t.Error("journal should be disabled by default")
	}
	cfg.History.Journal = "/tmp/h.jsonl"
	if !cfg.JournalEnabled() || cfg.JournalPath() != "/tmp/h.jsonl" {
		t.Errorf("JournalPath = %q", cfg.JournalPath())
	}
}

func TestDefaultPath(t *testing.T) {
	p := config.DefaultPath()
	if p == "" {
		t.Fatal("DefaultPath returned empty string")
	}
	if !strings.HasSuffix(p, filepath.Join("libctl", "config.yml")) {
		t.Errorf("DefaultPath = %q, should end with libctl/config.yml", p)
	}
}

func TestResolvePath(t *testing.T) {
	t.Setenv("LIBCTL_CONFIG", "/from/env.yml")
	if got := config.ResolvePath("/explicit.yml"); got != "/explicit.yml" {
		t.Errorf("explicit path: got %q", got)
	}
	if got := config.ResolvePath(""); got != "/from/env.yml" {
		t.Errorf("env path: got %q", got)
	}
	t.Setenv("LIBCTL_CONFIG", "")
	if got := config.ResolvePath(""); got != config.DefaultPath() {
		t.Errorf("default path: got %q", got)
	}
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := config.Load(filepath.Join(t.TempDir(), "none.yml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Data.Dir != "." {
		t.Errorf("Data.Dir = %q, want %q", cfg.Data.Dir, ".")
	}
	if cfg.Data.BooksFile != "books.txt" || cfg.Data.UsersFile != "users.txt" {
		t.Errorf("file names = %q, %q", cfg.Data.BooksFile, cfg.Data.UsersFile)
	}
	if cfg.JournalEnabled() {
		t.Error("journal enabled by default")
	}
}

func TestSaveThenLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yml")
	in := &config.Config{
		Data:    config.DataConfig{Dir: "/srv/lib", BooksFile: "books.txt", UsersFile: "members.txt"},
		History: config.HistoryConfig{Journal: "/srv/lib/history.jsonl"},
		UI:      config.UIConfig{NoColor: true},
	}
	if err := config.Save(path, in); err != nil {
		t.Fatalf("Save: %v", err)
	}
	out, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if *out != *in {
		t.Errorf("round trip mismatch:\n got %+v\nwant %+v", *out, *in)
	}
}

func TestLoad_EnvOverride(t *testing.T) {
	t.Setenv("LIBCTL_DATA_DIR", "/env/dir")
	cfg, err := config.Load(filepath.Join(t.TempDir(), "none.yml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Data.Dir != "/env/dir" {
		t.Errorf("Data.Dir = %q, want /env/dir", cfg.Data.Dir)
	}
}

func TestLoad_BadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")
	if err := os.WriteFile(path, []byte("data: [unclosed"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := config.Load(path); err == nil {
		t.Error("expected error for malformed config")
	}
}
