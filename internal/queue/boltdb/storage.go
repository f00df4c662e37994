// Package boltdb implements the sync queue store and the engine metadata
// store on top of a single BoltDB file. This is the default client-side
// persistence: transactional, single-file, no external daemon.
package boltdb

import (
	"context"
	"crypto/rand"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"
	"go.etcd.io/bbolt"
)

var (
	// BoltDB bucket names
	bucketOperations = []byte("operations")  // id → JSON operation
	bucketQueueIndex = []byte("queue_index") // priority+createdAt key → id
	bucketMetadata   = []byte("metadata")    // engine key-value state
)

// Storage represents the BoltDB-backed queue and metadata store.
type Storage struct {
	db      *bbolt.DB
	entropy io.Reader
	nowFn   func() time.Time
	mu      sync.Mutex // guards entropy (monotonic ULID reader)
}

// New creates a new BoltDB storage instance.
// dbPath is the path to the BoltDB database file.
func New(ctx context.Context, dbPath string) (*Storage, error) {
	db, err := bbolt.Open(dbPath, 0600, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to open boltdb: %w", err)
	}

	storage := &Storage{
		db:      db,
		entropy: ulid.Monotonic(rand.Reader, 0),
		nowFn:   time.Now,
	}

	if err := storage.initBuckets(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize buckets: %w", err)
	}

	return storage, nil
}

// Close closes the database connection
func (s *Storage) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}

// initBuckets создает необходимые buckets если они не существуют
func (s *Storage) initBuckets() error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		for _, name := range [][]byte{bucketOperations, bucketQueueIndex, bucketMetadata} {
			if _, err := tx.CreateBucketIfNotExists(name); err != nil {
				return fmt.Errorf("failed to create bucket %s: %w", name, err)
			}
		}
		return nil
	})
}

// newID returns a ULID minted at the given time. ULIDs are
// lexicographically ordered by their timestamp component, so ids double
// as creation-ordered keys.
func (s *Storage) newID(at time.Time) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id, err := ulid.New(ulid.Timestamp(at), s.entropy)
	if err != nil {
		return "", fmt.Errorf("failed to generate operation id: %w", err)
	}
	return id.String(), nil
}
