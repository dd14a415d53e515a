// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package logstore reads diagnostic log records from a document database.
// Firestore is the production backend; SQLite serves local development and
// tests. Both return every record ordered by timestamp, newest first.
package logstore

import (
	"context"
	"fmt"

	"github.com/pdiddy/accesspaper/internal/secrets"
	"github.com/pdiddy/accesspaper/pkg/types"
)

// Store lists the whole log collection, newest first.
type Store interface {
	List(ctx context.Context) ([]types.LogEntry, error)
	Close() error
}

// Appender is implemented by stores that accept new records.
type Appender interface {
	Append(ctx context.Context, entries ...types.LogEntry) error
}

// Open constructs the store selected by cfg.Backend. cred is required for
// the firestore backend and ignored otherwise.
func Open(ctx context.Context, cfg types.LogStoreConfig, cred *secrets.Credential) (Store, error) {
	switch cfg.Backend {
	case types.LogBackendFirestore, "":
		if cred == nil {
			return nil, secrets.ErrNoCredential
		}
		return NewFirestoreStore(ctx, cred, cfg.Collection)
	case types.LogBackendSQLite:
		return NewSQLiteStore(cfg.SQLitePath, cfg.Collection)
	default:
		return nil, fmt.Errorf("unsupported log backend %q: use firestore or sqlite", cfg.Backend)
	}
}
