package migrations

import (
	"context"
	"database/sql"
	"io/fs"
	"path/filepath"
	"strings"
	"testing"

	catalog "github.com/goliatone/go-catalog"
	"github.com/goliatone/go-catalog/core"
	goerrors "github.com/goliatone/go-errors"
	_ "github.com/mattn/go-sqlite3"
)

func TestFS_ResolvesEachDialect(t *testing.T) {
	for _, dialect := range []string{DialectPostgres, DialectSQLite} {
		fsys, err := FS(dialect)
		if err != nil {
			t.Fatalf("%s: %v", dialect, err)
		}
		matches, err := fs.Glob(fsys, "*.up.sql")
		if err != nil {
			t.Fatalf("glob %s: %v", dialect, err)
		}
		if len(matches) != 2 {
			t.Fatalf("expected 2 %s up migrations, got %v", dialect, matches)
		}
	}
}

func TestFS_SQLiteVariantIsSeparate(t *testing.T) {
	fsys, err := FS(DialectSQLite)
	if err != nil {
		t.Fatalf("sqlite: %v", err)
	}
	if _, err := fs.Stat(fsys, "sqlite"); err == nil {
		t.Fatalf("sqlite filesystem must be rooted at the sqlite directory")
	}
	content, err := fs.ReadFile(fsys, "00001_catalog_schema.up.sql")
	if err != nil {
		t.Fatalf("read schema: %v", err)
	}
	if !strings.Contains(strings.ToUpper(string(content)), "CREATE TABLE") {
		t.Fatalf("expected schema DDL, got %q", content)
	}
}

func TestFS_RejectsUnknownDialect(t *testing.T) {
	_, err := FS("mysql")
	var envelope *goerrors.Error
	if !goerrors.As(err, &envelope) {
		t.Fatalf("expected go-errors envelope, got %T %v", err, err)
	}
	if envelope.TextCode != core.ErrorBadParameter {
		t.Fatalf("expected bad parameter text code, got %q", envelope.TextCode)
	}
}

func TestDialectForDriver(t *testing.T) {
	cases := map[string]string{
		"sqlite3":  DialectSQLite,
		"postgres": DialectPostgres,
		" PGX ":    DialectPostgres,
	}
	for driver, want := range cases {
		got, err := DialectForDriver(driver)
		if err != nil || got != want {
			t.Fatalf("driver %q: expected %q, got %q (%v)", driver, want, got, err)
		}
	}
	_, err := DialectForDriver("mysql")
	if !goerrors.IsCategory(err, goerrors.CategoryBadInput) {
		t.Fatalf("expected bad input error for unsupported driver, got %v", err)
	}
}

func TestCatalogMigrationPairs_ExistForBothDialects(t *testing.T) {
	root := catalog.GetMigrationsFS()
	names := []string{
		"00001_catalog_schema",
		"00002_catalog_seed_categories",
	}
	for _, name := range names {
		for _, dir := range []string{"data/sql/migrations", "data/sql/migrations/sqlite"} {
			for _, suffix := range []string{".up.sql", ".down.sql"} {
				migrationPath := dir + "/" + name + suffix
				content, err := fs.ReadFile(root, migrationPath)
				if err != nil {
					t.Fatalf("read migration %s: %v", migrationPath, err)
				}
				if strings.TrimSpace(string(content)) == "" {
					t.Fatalf("expected migration %s to have SQL content", migrationPath)
				}
			}
		}
	}
}

func TestSQLiteCatalogSchema_ApplyAndRollback(t *testing.T) {
	db, err := sql.Open("sqlite3", "file:migrations-catalog-schema?mode=memory&cache=shared&_foreign_keys=on")
	if err != nil {
		t.Fatalf("open sqlite db: %v", err)
	}
	defer func() { _ = db.Close() }()

	root := catalog.GetMigrationsFS()
	sqliteMigrations, err := fs.Sub(root, "data/sql/migrations/sqlite")
	if err != nil {
		t.Fatalf("resolve sqlite migrations: %v", err)
	}

	ctx := context.Background()
	for _, migration := range []string{
		"00001_catalog_schema.up.sql",
		"00002_catalog_seed_categories.up.sql",
	} {
		if err := execSQLMigration(ctx, db, sqliteMigrations, migration); err != nil {
			t.Fatalf("apply migration %s: %v", migration, err)
		}
	}

	var seeded int
	if err := db.QueryRowContext(ctx, `SELECT COUNT(*) FROM categories`).Scan(&seeded); err != nil {
		t.Fatalf("count categories: %v", err)
	}
	if seeded != 3 {
		t.Fatalf("expected 3 seeded categories, got %d", seeded)
	}

	if _, err := db.ExecContext(ctx,
		`INSERT INTO products (nombre, precio, categoria_id) VALUES (?, ?, ?)`,
		"Fantasma", "1.00", 999,
	); err == nil {
		t.Fatalf("expected foreign key violation for unknown category")
	}

	if _, err := db.ExecContext(ctx, `INSERT INTO categories (nombre) VALUES (?)`, "bazar"); err == nil {
		t.Fatalf("expected case-insensitive unique category name")
	}

	for _, migration := range []string{
		"00002_catalog_seed_categories.down.sql",
		"00001_catalog_schema.down.sql",
	} {
		if err := execSQLMigration(ctx, db, sqliteMigrations, migration); err != nil {
			t.Fatalf("rollback migration %s: %v", migration, err)
		}
	}

	var tables int
	if err := db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM sqlite_master WHERE type='table' AND name IN ('categories','products','inventory')`,
	).Scan(&tables); err != nil {
		t.Fatalf("query tables after down: %v", err)
	}
	if tables != 0 {
		t.Fatalf("expected catalog tables to be dropped, found %d", tables)
	}
}

func execSQLMigration(ctx context.Context, db *sql.DB, fsys fs.FS, filename string) error {
	content, err := fs.ReadFile(fsys, filepath.Clean(filename))
	if err != nil {
		return err
	}
	_, err = db.ExecContext(ctx, string(content))
	return err
}
