package app

import (
	"fmt"
	"os"

	"github.com/blackwell-systems/libctl/internal/catalog"
	"github.com/blackwell-systems/libctl/internal/record"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// seedFile is the YAML layout accepted by import.
type seedFile struct {
	Books []record.Book `yaml:"books"`
	Users []record.User `yaml:"users"`
}

func newImportCmd() *cobra.Command {
	var (
		strict bool
		dryRun bool
	)

	cmd := &cobra.Command{
		Use:   "import <file.yml>",
		Short: "Add books and users from a YAML seed file",
		Long: `Add books and users listed in a YAML file.

  books:
    - title: Dune
      author: Frank Herbert
      isbn: 978-0-441-17271-9
  users:
    - id: U1
      name: Alice Smith

Every entry is validated like interactive input. Invalid entries are skipped
with a warning, or with --strict the whole import is rejected.`,
		Args: cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			seed, err := readSeed(args[0])
			if err != nil {
				return err
			}

			var books, users, skipped int
			apply := func(c *catalog.Catalog) error {
				books, users, skipped = 0, 0, 0
				for i, b := range seed.Books {
					if err := validateBook(b.Title, b.Author, b.ISBN); err != nil {
						if strict {
							return fmt.Errorf("books[%d]: %w", i, err)
						}
						warn("Skipping books[%d]: %v", i, err)
						skipped++
						continue
					}
					c.AddBook(b.Title, b.Author, b.ISBN)
					books++
				}
				for i, u := range seed.Users {
					if err := validateUser(u.ID, u.Name); err != nil {
						if strict {
							return fmt.Errorf("users[%d]: %w", i, err)
						}
						warn("Skipping users[%d]: %v", i, err)
						skipped++
						continue
					}
					c.RegisterUser(u.ID, u.Name)
					users++
				}
				return nil
			}

			if dryRun {
				if err := apply(catalog.New()); err != nil {
					return err
				}
				ok("Dry run: would import %d books and %d users (%d skipped)", books, users, skipped)
				return nil
			}

			if err := update(apply); err != nil {
				return err
			}
			ok("Imported %d books and %d users (%d skipped)", books, users, skipped)
			return nil
		},
	}

	cmd.Flags().BoolVar(&strict, "strict", false, "Reject the whole file if any entry is invalid")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Validate without writing")
	return cmd
}

func readSeed(path string) (*seedFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading seed file: %w", err)
	}
	var seed seedFile
	if err := yaml.Unmarshal(data, &seed); err != nil {
		return nil, fmt.Errorf("parsing seed file: %w", err)
	}
	return &seed, nil
}
