package migrations

import (
	"io/fs"
	"strings"

	catalog "github.com/goliatone/go-catalog"
	"github.com/goliatone/go-catalog/core"
	goerrors "github.com/goliatone/go-errors"
)

const (
	DialectPostgres = "postgres"
	DialectSQLite   = "sqlite"
)

const rootDir = "data/sql/migrations"

// DialectForDriver maps a database/sql driver name to the migration dialect
// that ships for it.
func DialectForDriver(driver string) (string, error) {
	switch strings.TrimSpace(strings.ToLower(driver)) {
	case "sqlite3", "sqlite":
		return DialectSQLite, nil
	case "postgres", "pgx", "pq":
		return DialectPostgres, nil
	default:
		return "", goerrors.New("unsupported database driver", goerrors.CategoryBadInput).
			WithTextCode(core.ErrorBadParameter).
			WithMetadata(map[string]any{"driver": driver})
	}
}

// FS returns the embedded migration files for dialect, rooted so the
// *.up.sql and *.down.sql pairs sit at the top level.
func FS(dialect string) (fs.FS, error) {
	dir := rootDir
	switch dialect {
	case DialectPostgres:
	case DialectSQLite:
		dir += "/sqlite"
	default:
		return nil, goerrors.New("unsupported migration dialect", goerrors.CategoryBadInput).
			WithTextCode(core.ErrorBadParameter).
			WithMetadata(map[string]any{"dialect": dialect})
	}

	sub, err := fs.Sub(catalog.GetMigrationsFS(), dir)
	if err != nil {
		return nil, goerrors.Wrap(err, goerrors.CategoryInternal, "resolve migrations").
			WithTextCode(core.ErrorInternal)
	}
	matches, err := fs.Glob(sub, "*.up.sql")
	if err != nil || len(matches) == 0 {
		return nil, goerrors.New("no migrations embedded for dialect", goerrors.CategoryInternal).
			WithTextCode(core.ErrorInternal).
			WithMetadata(map[string]any{"dialect": dialect, "dir": dir})
	}
	return sub, nil
}
