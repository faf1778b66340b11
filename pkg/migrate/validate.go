package migrate

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
)

var sqlFileRe = regexp.MustCompile(`^(\d{14})_[a-z0-9_]+\.sql$`)

// goose directives every migration in this repo must carry. Down is not
// optional: the schema predates some deployments and the migrate CLI steps
// both directions.
var requiredDirectives = []string{"-- +goose Up", "-- +goose Down"}

// ValidateDir checks that every SQL file in dir is a well-formed goose
// migration: versioned snake_case filename, unique version, both directives
// present. An empty dir passes; cmd/migrate runs this before shipping a new
// migration.
func ValidateDir(dir string) error {
	if dir == "" {
		return fmt.Errorf("dir is required")
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return fmt.Errorf("read dir %q: %w", dir, err)
	}

	seen := map[string]string{} // version -> filename

	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || !strings.HasSuffix(name, ".sql") {
			continue
		}

		m := sqlFileRe.FindStringSubmatch(name)
		if m == nil {
			return fmt.Errorf("invalid migration filename %q (expected YYYYMMDDHHMMSS_name.sql)", name)
		}

		version := m[1]
		if prev, ok := seen[version]; ok {
			return fmt.Errorf("duplicate migration version %s in %q and %q", version, prev, name)
		}
		seen[version] = name

		b, err := os.ReadFile(filepath.Join(dir, name))
		if err != nil {
			return fmt.Errorf("read file %q: %w", name, err)
		}

		for _, directive := range requiredDirectives {
			if !strings.Contains(string(b), directive) {
				return fmt.Errorf("migration %q missing %q", name, directive)
			}
		}
	}

	return nil
}
