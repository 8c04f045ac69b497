package boltdb

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"go.etcd.io/bbolt"

	"github.com/OLMA25/guzels-clinic-management-system/internal/models"
	"github.com/OLMA25/guzels-clinic-management-system/internal/storage"
)

// Snapshot reads all six collections inside one read transaction, so the
// result is a consistent view even while writes are queued behind it.
// Empty collections come back as empty slices, never nil, so the backup
// file always carries all six arrays.
func (s *Storage) Snapshot(ctx context.Context) (*storage.Snapshot, error) {
	snap := &storage.Snapshot{
		Timestamp:    time.Now(),
		Clients:      []*models.Client{},
		Appointments: []*models.Appointment{},
		Services:     []*models.Service{},
		Invoices:     []*models.Invoice{},
		Settings:     []*models.Setting{},
		Providers:    []*models.Provider{},
	}

	err := s.view(func(tx *bbolt.Tx) error {
		if err := readBucket(tx, bucketClients, func(v []byte) error {
			record := &models.Client{}
			if err := json.Unmarshal(v, record); err != nil {
				return err
			}
			snap.Clients = append(snap.Clients, record)
			return nil
		}); err != nil {
			return err
		}

		if err := readBucket(tx, bucketAppointments, func(v []byte) error {
			record := &models.Appointment{}
			if err := json.Unmarshal(v, record); err != nil {
				return err
			}
			snap.Appointments = append(snap.Appointments, record)
			return nil
		}); err != nil {
			return err
		}

		if err := readBucket(tx, bucketServices, func(v []byte) error {
			record := &models.Service{}
			if err := json.Unmarshal(v, record); err != nil {
				return err
			}
			snap.Services = append(snap.Services, record)
			return nil
		}); err != nil {
			return err
		}

		if err := readBucket(tx, bucketInvoices, func(v []byte) error {
			record := &models.Invoice{}
			if err := json.Unmarshal(v, record); err != nil {
				return err
			}
			snap.Invoices = append(snap.Invoices, record)
			return nil
		}); err != nil {
			return err
		}

		if err := readBucket(tx, bucketSettings, func(v []byte) error {
			record := &models.Setting{}
			if err := json.Unmarshal(v, record); err != nil {
				return err
			}
			snap.Settings = append(snap.Settings, record)
			return nil
		}); err != nil {
			return err
		}

		return readBucket(tx, bucketProviders, func(v []byte) error {
			record := &models.Provider{}
			if err := json.Unmarshal(v, record); err != nil {
				return err
			}
			snap.Providers = append(snap.Providers, record)
			return nil
		})
	})
	if err != nil {
		return nil, err
	}

	return snap, nil
}

// readBucket iterates every value of the named bucket
func readBucket(tx *bbolt.Tx, name []byte, fn func(v []byte) error) error {
	bucket := tx.Bucket(name)
	if bucket == nil {
		return fmt.Errorf("%s bucket not found", name)
	}
	return bucket.ForEach(func(k, v []byte) error {
		if err := fn(v); err != nil {
			return fmt.Errorf("failed to unmarshal %s record: %w", name, err)
		}
		return nil
	})
}

// Restore replaces the entire store with the snapshot contents inside one
// write transaction. A failure anywhere rolls the whole replace back, so
// a half-cleared store cannot be observed. Identifiers from the snapshot
// are kept verbatim; each bucket sequence is advanced past the highest
// restored identifier so later inserts cannot collide.
func (s *Storage) Restore(ctx context.Context, snap *storage.Snapshot) error {
	if snap == nil {
		return fmt.Errorf("nil snapshot")
	}

	return s.update(func(tx *bbolt.Tx) error {
		if err := replaceBucket(tx, bucketClients, len(snap.Clients), func(i int) (*int64, any) {
			return &snap.Clients[i].ID, snap.Clients[i]
		}); err != nil {
			return err
		}

		if err := replaceBucket(tx, bucketAppointments, len(snap.Appointments), func(i int) (*int64, any) {
			return &snap.Appointments[i].ID, snap.Appointments[i]
		}); err != nil {
			return err
		}

		if err := replaceBucket(tx, bucketServices, len(snap.Services), func(i int) (*int64, any) {
			return &snap.Services[i].ID, snap.Services[i]
		}); err != nil {
			return err
		}

		if err := replaceBucket(tx, bucketInvoices, len(snap.Invoices), func(i int) (*int64, any) {
			return &snap.Invoices[i].ID, snap.Invoices[i]
		}); err != nil {
			return err
		}

		if err := replaceBucket(tx, bucketSettings, len(snap.Settings), func(i int) (*int64, any) {
			return &snap.Settings[i].ID, snap.Settings[i]
		}); err != nil {
			return err
		}

		return replaceBucket(tx, bucketProviders, len(snap.Providers), func(i int) (*int64, any) {
			return &snap.Providers[i].ID, snap.Providers[i]
		})
	})
}

// replaceBucket clears the named bucket and fills it with n records,
// keeping their identifiers. Records carrying a zero identifier get a
// fresh one from the bucket sequence.
func replaceBucket(tx *bbolt.Tx, name []byte, n int, record func(i int) (*int64, any)) error {
	bucket := tx.Bucket(name)
	if bucket == nil {
		return fmt.Errorf("%s bucket not found", name)
	}

	if err := clearBucket(bucket); err != nil {
		return fmt.Errorf("failed to clear %s bucket: %w", name, err)
	}

	maxID := int64(bucket.Sequence())
	for i := 0; i < n; i++ {
		idPtr, rec := record(i)
		if *idPtr == 0 {
			seq, err := bucket.NextSequence()
			if err != nil {
				return fmt.Errorf("failed to assign %s id: %w", name, err)
			}
			*idPtr = int64(seq)
		}
		id := *idPtr

		data, err := json.Marshal(rec)
		if err != nil {
			return fmt.Errorf("failed to marshal %s record: %w", name, err)
		}

		if err := bucket.Put(itob(id), data); err != nil {
			return fmt.Errorf("failed to restore %s record: %w", name, err)
		}

		if id > maxID {
			maxID = id
		}
	}

	return bucket.SetSequence(uint64(maxID))
}
