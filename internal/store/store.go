// Package store opens the relational store both pipelines read from.
package store

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"strings"

	apperr "db-audit/internal/errors"

	_ "modernc.org/sqlite" // SQLite Driver
)

// Config names a store: a database/sql driver plus its DSN. For SQLite the
// DSN is a file path (optionally with a "file:" prefix and query options).
type Config struct {
	Name   string `mapstructure:"name"`
	Driver string `mapstructure:"driver"`
	DSN    string `mapstructure:"dsn"`
	Active bool   `mapstructure:"active"`
}

// IsSQLite reports whether the config targets the bundled SQLite driver.
func (c Config) IsSQLite() bool {
	return c.Driver == "" || c.Driver == "sqlite" || c.Driver == "sqlite3"
}

// Open connects to the store and verifies the connection with a ping.
// A SQLite path that does not exist is rejected instead of silently
// creating an empty database.
func Open(ctx context.Context, cfg Config) (*sql.DB, error) {
	driver := cfg.Driver
	if cfg.IsSQLite() {
		driver = "sqlite"
		if path := SQLitePath(cfg.DSN); path != "" {
			if _, err := os.Stat(path); err != nil {
				return nil, apperr.Wrap(apperr.ConnectionError, fmt.Sprintf("database file %s is not accessible", path), err)
			}
		}
	}
	if cfg.DSN == "" {
		return nil, apperr.New(apperr.ConnectionError, "dsn is required")
	}

	db, err := sql.Open(driver, cfg.DSN)
	if err != nil {
		return nil, apperr.Wrap(apperr.ConnectionError, "failed to open db", err)
	}
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, apperr.Wrap(apperr.ConnectionError, "failed to connect to db", err)
	}
	return db, nil
}

// SQLitePath extracts the file path from a SQLite DSN. In-memory databases
// yield "".
func SQLitePath(dsn string) string {
	path := strings.TrimPrefix(dsn, "file:")
	if i := strings.IndexByte(path, '?'); i >= 0 {
		path = path[:i]
	}
	if path == "" || path == ":memory:" {
		return ""
	}
	return path
}
