// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package logstore

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/pdiddy/accesspaper/pkg/types"
)

// tableName restricts collection names to plain SQL identifiers.
var tableName = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// SQLiteStore keeps log records in one SQLite table. Each row holds the
// timestamp as Unix nanoseconds and the remaining fields as a JSON object.
type SQLiteStore struct {
	db    *sql.DB
	table string
}

// NewSQLiteStore opens or creates the database at path and the table named
// by collection.
func NewSQLiteStore(path, collection string) (*SQLiteStore, error) {
	if collection == "" {
		collection = types.DefaultCollection
	}
	if !tableName.MatchString(collection) {
		return nil, fmt.Errorf("invalid collection name %q", collection)
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("creating database directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite3", path+"?_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	s := &SQLiteStore{db: db, table: collection}
	if err := s.createSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}
	return s, nil
}

// newSQLiteStoreWithDB wraps an existing handle without touching the schema.
func newSQLiteStoreWithDB(db *sql.DB, table string) *SQLiteStore {
	return &SQLiteStore{db: db, table: table}
}

// Close releases the database connection.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

func (s *SQLiteStore) createSchema() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS ` + s.table + ` (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			ts INTEGER NOT NULL,
			data TEXT NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_` + s.table + `_ts ON ` + s.table + `(ts)`,
	}
	for _, stmt := range statements {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("executing schema statement: %w", err)
		}
	}
	return nil
}

// List returns every record ordered by timestamp descending. Records with
// equal timestamps come back newest insert first.
func (s *SQLiteStore) List(ctx context.Context) ([]types.LogEntry, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, ts, data FROM `+s.table+` ORDER BY ts DESC, id DESC`)
	if err != nil {
		return nil, fmt.Errorf("querying %s: %w", s.table, err)
	}
	defer rows.Close()

	entries := []types.LogEntry{}
	for rows.Next() {
		var (
			id   int64
			ts   int64
			data string
		)
		if err := rows.Scan(&id, &ts, &data); err != nil {
			return nil, fmt.Errorf("scanning %s: %w", s.table, err)
		}
		fields := map[string]any{}
		if err := json.Unmarshal([]byte(data), &fields); err != nil {
			return nil, fmt.Errorf("log row %d: decoding data: %w", id, err)
		}
		entries = append(entries, types.LogEntry{
			Timestamp: time.Unix(0, ts).UTC(),
			Fields:    fields,
		})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating %s: %w", s.table, err)
	}
	return entries, nil
}

// Append inserts entries in a single transaction.
func (s *SQLiteStore) Append(ctx context.Context, entries ...types.LogEntry) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx, `INSERT INTO `+s.table+` (ts, data) VALUES (?, ?)`)
	if err != nil {
		return fmt.Errorf("preparing insert: %w", err)
	}
	defer stmt.Close()

	for i, e := range entries {
		if e.Timestamp.IsZero() {
			return fmt.Errorf("entry %d: %w", i, types.ErrMissingTimestamp)
		}
		fields := e.Fields
		if fields == nil {
			fields = map[string]any{}
		}
		data, err := json.Marshal(fields)
		if err != nil {
			return fmt.Errorf("entry %d: encoding fields: %w", i, err)
		}
		if _, err := stmt.ExecContext(ctx, e.Timestamp.UnixNano(), string(data)); err != nil {
			return fmt.Errorf("entry %d: inserting: %w", i, err)
		}
	}

	return tx.Commit()
}
