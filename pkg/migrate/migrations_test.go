package migrate

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const migrationsDir = "migrations"

func TestMigrationsDirValidates(t *testing.T) {
	if err := ValidateDir(migrationsDir); err != nil {
		t.Fatalf("migration dir failed validation: %v", err)
	}
}

func TestInitMigrationCoversAllTables(t *testing.T) {
	entries, err := os.ReadDir(migrationsDir)
	if err != nil {
		t.Fatalf("reading migrations dir: %v", err)
	}

	var combined strings.Builder
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".sql") {
			continue
		}
		b, err := os.ReadFile(filepath.Join(migrationsDir, e.Name()))
		if err != nil {
			t.Fatalf("reading %s: %v", e.Name(), err)
		}
		combined.Write(b)
	}
	sql := combined.String()

	tables := []string{
		"reference_data", "customer", "address", "book", "orders",
		"order_item", "shopping_cart", "shopping_cart_item", "offer",
	}
	for _, table := range tables {
		want := "bobsusedbookstore_dbo." + table + " ("
		if !strings.Contains(sql, want) {
			t.Fatalf("no CREATE TABLE for %s in migrations", table)
		}
	}

	for _, fragment := range []string{
		"ON DELETE RESTRICT",
		"ux_customer_sub UNIQUE (sub)",
		"NUMERIC(18,2)",
		"CHECK (quantity > 0)",
	} {
		if !strings.Contains(sql, fragment) {
			t.Fatalf("expected migrations to declare %q", fragment)
		}
	}
}

func TestCreateSQLMigrationSanitizesName(t *testing.T) {
	dir := t.TempDir()

	path, err := CreateSQLMigration(dir, "Add Wishlist Flag!")
	if err != nil {
		t.Fatalf("create migration: %v", err)
	}
	if !strings.HasSuffix(path, "_add_wishlist_flag.sql") {
		t.Fatalf("unexpected migration filename %q", path)
	}

	if err := ValidateDir(dir); err != nil {
		t.Fatalf("generated migration failed validation: %v", err)
	}

	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading generated migration: %v", err)
	}
	for _, directive := range []string{"-- +goose Up", "-- +goose Down", "bobsusedbookstore_dbo"} {
		if !strings.Contains(string(b), directive) {
			t.Fatalf("generated migration missing %q", directive)
		}
	}
}

func TestValidateDirRejectsDirectivelessFile(t *testing.T) {
	dir := t.TempDir()
	name := filepath.Join(dir, "20260102030405_broken.sql")
	if err := os.WriteFile(name, []byte("CREATE TABLE nope (id int);"), 0o644); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}

	if err := ValidateDir(dir); err == nil {
		t.Fatal("expected validation to reject a migration without goose directives")
	}
}
