// Package migrations хранит схему БД в виде goose-миграций, вшитых в бинарник.
package migrations

import (
	"context"
	"database/sql"
	"embed"
	"fmt"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
)

//go:embed sql/*.sql
var embedMigrations embed.FS

const dir = "sql"

// Open открывает database/sql поверх pgx для goose.
func Open(dsn string) (*sql.DB, error) {
	db, err := goose.OpenDBWithDriver("pgx", dsn)
	if err != nil {
		return nil, fmt.Errorf("не удалось открыть БД для миграций: %w", err)
	}
	return db, nil
}

func prepare() error {
	goose.SetBaseFS(embedMigrations)
	return goose.SetDialect("postgres")
}

func Up(ctx context.Context, db *sql.DB) error {
	if err := prepare(); err != nil {
		return err
	}
	return goose.UpContext(ctx, db, dir)
}

func Down(ctx context.Context, db *sql.DB) error {
	if err := prepare(); err != nil {
		return err
	}
	return goose.DownContext(ctx, db, dir)
}

func Status(ctx context.Context, db *sql.DB) error {
	if err := prepare(); err != nil {
		return err
	}
	return goose.StatusContext(ctx, db, dir)
}
