package kvstore

import (
	"context"
	"fmt"

	"github.com/hashicorp/go-memdb"
)

const memTable = "entries"

type memEntry struct {
	Key   string
	Value []byte
}

// MemStore keeps entries in process memory. It is the default backend and the
// one used by tests.
type MemStore struct {
	db *memdb.MemDB
}

var _ Store = (*MemStore)(nil)

func NewMemStore() (*MemStore, error) {
	schema := &memdb.DBSchema{
		Tables: map[string]*memdb.TableSchema{
			memTable: {
				Name: memTable,
				Indexes: map[string]*memdb.IndexSchema{
					"id": {
						Name:    "id",
						Unique:  true,
						Indexer: &memdb.StringFieldIndex{Field: "Key"},
					},
				},
			},
		},
	}

	db, err := memdb.NewMemDB(schema)
	if err != nil {
		return nil, fmt.Errorf("failed to create memdb: %w", err)
	}

	return &MemStore{db: db}, nil
}

func (s *MemStore) Get(_ context.Context, key string) ([]byte, error) {
	txn := s.db.Txn(false)
	defer txn.Abort()

	raw, err := txn.First(memTable, "id", key)
	if err != nil {
		return nil, fmt.Errorf("error reading key %s: %w", key, err)
	}
	if raw == nil {
		return nil, ErrNotFound
	}

	entry := raw.(*memEntry)
	out := make([]byte, len(entry.Value))
	copy(out, entry.Value)
	return out, nil
}

func (s *MemStore) Set(_ context.Context, key string, value []byte) error {
	stored := make([]byte, len(value))
	copy(stored, value)

	txn := s.db.Txn(true)
	if err := txn.Insert(memTable, &memEntry{Key: key, Value: stored}); err != nil {
		txn.Abort()
		return fmt.Errorf("error writing key %s: %w", key, err)
	}
	txn.Commit()

	return nil
}
