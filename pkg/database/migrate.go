package database

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"io/fs"

	"cinemania/pkg/utils"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
	"go.uber.org/zap"
)

//go:embed migrations/*.sql
var migrations embed.FS

// NewMigrationProvider loads the embedded migrations for db. Applied versions
// are tracked in goose's own version table.
func NewMigrationProvider(db *sql.DB) (*goose.Provider, error) {
	fsys, err := fs.Sub(migrations, "migrations")
	if err != nil {
		return nil, fmt.Errorf("open migrations: %w", err)
	}

	provider, err := goose.NewProvider(goose.DialectPostgres, db, fsys)
	if err != nil {
		return nil, fmt.Errorf("load migrations: %w", err)
	}
	return provider, nil
}

// Migrate applies every pending migration. It opens its own connection so the
// request pool never holds the migration lock.
func Migrate(ctx context.Context, config utils.DatabaseConfig, log *zap.Logger) error {
	db, err := sql.Open("pgx", config.ConnString())
	if err != nil {
		return fmt.Errorf("open migration connection: %w", err)
	}
	defer db.Close()

	provider, err := NewMigrationProvider(db)
	if err != nil {
		return err
	}

	results, err := provider.Up(ctx)
	if err != nil {
		return fmt.Errorf("apply migrations: %w", err)
	}

	for _, res := range results {
		log.Info("Migration applied",
			zap.Int64("version", res.Source.Version),
			zap.String("file", res.Source.Path),
			zap.Duration("duration", res.Duration),
		)
	}
	if len(results) == 0 {
		log.Info("Schema up to date")
	}
	return nil
}
