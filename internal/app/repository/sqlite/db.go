package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	_ "github.com/mattn/go-sqlite3"
)

const createTableSQL = `
CREATE TABLE IF NOT EXISTS transcriptions (
	id               TEXT PRIMARY KEY,
	source_url       TEXT NOT NULL,
	title            TEXT NOT NULL,
	output_path      TEXT NOT NULL,
	duration_seconds REAL NOT NULL DEFAULT 0,
	segment_count    INTEGER NOT NULL DEFAULT 0,
	paragraph_count  INTEGER NOT NULL DEFAULT 0,
	engine           TEXT NOT NULL,
	created_at       DATETIME NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_transcriptions_created_at ON transcriptions (created_at);`

// Open opens (creating if needed) the history database at dbPath and makes sure the schema exists.
func Open(ctx context.Context, dbPath string) (*SQLiteDB, error) {
	if dir := filepath.Dir(dbPath); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("failed to create database directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite3", dataSourceName(dbPath))
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := InitDB(ctx, db); err != nil {
		db.Close()
		return nil, err
	}
	return &SQLiteDB{db: db}, nil
}

// dataSourceName builds a file: URI for dbPath with its path escaped, so
// characters such as '?', '#' and '%' stay part of the file name.
func dataSourceName(dbPath string) string {
	if abs, err := filepath.Abs(dbPath); err == nil {
		dbPath = abs
	}
	path := filepath.ToSlash(dbPath)
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	u := url.URL{
		Scheme:   "file",
		Path:     path,
		RawQuery: "cache=shared&mode=rwc&_busy_timeout=5000",
	}
	return u.String()
}

// InitDB creates the transcriptions table.
func InitDB(ctx context.Context, db *sql.DB) error {
	if _, err := db.ExecContext(ctx, createTableSQL); err != nil {
		return fmt.Errorf("failed to create table: %w", err)
	}
	return nil
}
