package database

import (
	"context"
	"database/sql"
	"embed"
	"fmt"

	"github.com/pressly/goose/v3"
	_ "modernc.org/sqlite"
)

//go:embed migrations/*.sql
var migrations embed.FS

const memoryPath = ":memory:"

// Open opens a SQLite database at the given path and runs migrations.
// ":memory:" yields a private database pinned to a single connection.
func Open(dbPath string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", dsn(dbPath))
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}
	if dbPath == memoryPath {
		db.SetMaxOpenConns(1)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping db: %w", err)
	}

	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		db.Close()
		return nil, fmt.Errorf("enable foreign keys: %w", err)
	}

	if err := Migrate(context.Background(), db, "up"); err != nil {
		db.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	return db, nil
}

// OpenRaw opens the database without migrating, for the migrate command.
func OpenRaw(dbPath string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", dsn(dbPath))
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping db: %w", err)
	}
	return db, nil
}

func dsn(dbPath string) string {
	q := "?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)"
	if dbPath != memoryPath {
		q += "&_pragma=journal_mode(WAL)"
	}
	return dbPath + q
}

// Migrate runs a goose command ("up", "down", "status", "version", "redo",
// "reset") against the embedded migrations.
func Migrate(ctx context.Context, db *sql.DB, command string, args ...string) error {
	goose.SetBaseFS(migrations)

	if err := goose.SetDialect("sqlite3"); err != nil {
		return fmt.Errorf("set dialect: %w", err)
	}

	if err := goose.RunContext(ctx, command, db, "migrations", args...); err != nil {
		return fmt.Errorf("goose %s: %w", command, err)
	}

	return nil
}
