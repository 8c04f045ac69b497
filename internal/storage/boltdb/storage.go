package boltdb

import (
	"context"
	"encoding/binary"
	"errors"
	"fmt"

	"go.etcd.io/bbolt"

	"github.com/OLMA25/guzels-clinic-management-system/internal/storage"
)

var (
	// BoltDB bucket names, one per collection plus store metadata
	bucketClients      = []byte("clients")
	bucketAppointments = []byte("appointments")
	bucketServices     = []byte("services")
	bucketInvoices     = []byte("invoices")
	bucketSettings     = []byte("settings")
	bucketProviders    = []byte("providers")
	bucketMeta         = []byte("meta")

	keySchemaVersion = []byte("schema_version")
)

// schemaVersion is bumped when the bucket layout changes so an older file
// gets its missing buckets created on open.
const schemaVersion uint64 = 1

// Storage represents the BoltDB-backed clinic store
type Storage struct {
	db *bbolt.DB
}

// New creates a new BoltDB storage instance
// dbPath is the path to the BoltDB database file
func New(ctx context.Context, dbPath string) (*Storage, error) {
	db, err := bbolt.Open(dbPath, 0600, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to open boltdb: %w", err)
	}

	storage := &Storage{db: db}

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

// initBuckets creates the collection buckets if they do not exist and
// records the schema version in the meta bucket.
func (s *Storage) initBuckets() error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		buckets := [][]byte{
			bucketClients,
			bucketAppointments,
			bucketServices,
			bucketInvoices,
			bucketSettings,
			bucketProviders,
			bucketMeta,
		}

		for _, name := range buckets {
			if _, err := tx.CreateBucketIfNotExists(name); err != nil {
				return fmt.Errorf("failed to create %s bucket: %w", name, err)
			}
		}

		meta := tx.Bucket(bucketMeta)
		return meta.Put(keySchemaVersion, itob(int64(schemaVersion)))
	})
}

// view runs a read transaction, mapping the driver's not-open failure to
// the storage sentinel so callers can test for a closed store.
func (s *Storage) view(fn func(tx *bbolt.Tx) error) error {
	err := s.db.View(fn)
	if errors.Is(err, bbolt.ErrDatabaseNotOpen) {
		return storage.ErrStorageClosed
	}
	return err
}

// update runs a write transaction with the same closed-store mapping
func (s *Storage) update(fn func(tx *bbolt.Tx) error) error {
	err := s.db.Update(fn)
	if errors.Is(err, bbolt.ErrDatabaseNotOpen) {
		return storage.ErrStorageClosed
	}
	return err
}

// itob encodes an identifier as a big-endian key so the bucket iterates
// in identifier order.
func itob(id int64) []byte {
	buf := make([]byte, 8)
	binary.BigEndian.PutUint64(buf, uint64(id))
	return buf
}

// btoi decodes a big-endian bucket key back into an identifier
func btoi(key []byte) int64 {
	return int64(binary.BigEndian.Uint64(key))
}

// clearBucket deletes every key in the bucket without touching its
// sequence counter, so identifiers are not reused after a clear.
func clearBucket(bucket *bbolt.Bucket) error {
	cursor := bucket.Cursor()
	for k, _ := cursor.First(); k != nil; k, _ = cursor.Next() {
		if err := cursor.Delete(); err != nil {
			return err
		}
	}
	return nil
}
