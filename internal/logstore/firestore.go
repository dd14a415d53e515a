// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package logstore

import (
	"context"
	"fmt"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/option"

	"github.com/pdiddy/accesspaper/internal/secrets"
	"github.com/pdiddy/accesspaper/pkg/types"
)

// FirestoreStore reads a Firestore collection. The client is created once
// and shared by every request; it honours FIRESTORE_EMULATOR_HOST.
type FirestoreStore struct {
	client     *firestore.Client
	collection string
}

// NewFirestoreStore connects to the project named in cred.
func NewFirestoreStore(ctx context.Context, cred *secrets.Credential, collection string) (*FirestoreStore, error) {
	if collection == "" {
		collection = types.DefaultCollection
	}
	client, err := firestore.NewClient(ctx, cred.ProjectID, option.WithCredentialsJSON(cred.JSON))
	if err != nil {
		return nil, fmt.Errorf("creating firestore client: %w", err)
	}
	return &FirestoreStore{client: client, collection: collection}, nil
}

// List returns every document ordered by timestamp descending.
func (s *FirestoreStore) List(ctx context.Context) ([]types.LogEntry, error) {
	docs, err := s.client.Collection(s.collection).
		OrderBy(types.TimestampField, firestore.Desc).
		Documents(ctx).
		GetAll()
	if err != nil {
		return nil, fmt.Errorf("querying %s: %w", s.collection, err)
	}

	entries := make([]types.LogEntry, 0, len(docs))
	for _, doc := range docs {
		e, err := entryFromDocument(doc.Ref.ID, doc.Data())
		if err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, nil
}

// Close releases the Firestore client.
func (s *FirestoreStore) Close() error {
	return s.client.Close()
}

// entryFromDocument converts a document's data. Firestore timestamps arrive
// as time.Time.
func entryFromDocument(id string, data map[string]any) (types.LogEntry, error) {
	e, err := types.LogEntryFromMap(data)
	if err != nil {
		return types.LogEntry{}, fmt.Errorf("log document %s: %w", id, err)
	}
	return e, nil
}
