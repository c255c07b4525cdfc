package dataservice

import (
	"context"
	"database/sql"

	"github.com/goliatone/go-catalog/core"
	"github.com/goliatone/go-catalog/migrations"
	goerrors "github.com/goliatone/go-errors"
	persistence "github.com/goliatone/go-persistence-bun"
	_ "github.com/lib/pq"
	_ "github.com/mattn/go-sqlite3"
	"github.com/uptrace/bun/dialect/pgdialect"
	"github.com/uptrace/bun/dialect/sqlitedialect"
	"github.com/uptrace/bun/schema"
)

// OpenPersistence connects to the configured database and applies the
// catalog migrations for its dialect.
func OpenPersistence(ctx context.Context, cfg Config) (*persistence.Client, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	dialectName, err := migrations.DialectForDriver(cfg.Driver)
	if err != nil {
		return nil, err
	}

	sqlDB, err := sql.Open(cfg.GetDriver(), cfg.GetServer())
	if err != nil {
		return nil, goerrors.Wrap(err, goerrors.CategoryExternal, "open database").WithTextCode(core.ErrorCommunicationFailure)
	}
	var dialect schema.Dialect
	switch dialectName {
	case migrations.DialectSQLite:
		sqlDB.SetMaxOpenConns(1)
		dialect = sqlitedialect.New()
	default:
		dialect = pgdialect.New()
	}

	client, err := persistence.New(cfg, sqlDB, dialect)
	if err != nil {
		_ = sqlDB.Close()
		return nil, goerrors.Wrap(err, goerrors.CategoryExternal, "persistence client").WithTextCode(core.ErrorCommunicationFailure)
	}

	fsys, err := migrations.FS(dialectName)
	if err != nil {
		_ = client.Close()
		return nil, err
	}
	client.RegisterSQLMigrations(fsys)
	if err := client.Migrate(ctx); err != nil {
		_ = client.Close()
		return nil, goerrors.Wrap(err, goerrors.CategoryInternal, "apply migrations").WithTextCode(core.ErrorInternal)
	}
	return client, nil
}
