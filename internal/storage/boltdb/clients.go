package boltdb

import (
	"context"
	"encoding/json"
	"fmt"

	"go.etcd.io/bbolt"

	"github.com/OLMA25/guzels-clinic-management-system/internal/models"
	"github.com/OLMA25/guzels-clinic-management-system/internal/storage"
)

// AddClient inserts a client and returns the assigned identifier
func (s *Storage) AddClient(ctx context.Context, client *models.Client) (int64, error) {
	var id int64

	err := s.update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketClients)
		if bucket == nil {
			return fmt.Errorf("clients bucket not found")
		}

		seq, err := bucket.NextSequence()
		if err != nil {
			return fmt.Errorf("failed to assign client id: %w", err)
		}
		id = int64(seq)
		client.ID = id

		data, err := json.Marshal(client)
		if err != nil {
			return fmt.Errorf("failed to marshal client: %w", err)
		}

		if err := bucket.Put(itob(id), data); err != nil {
			return fmt.Errorf("failed to save client: %w", err)
		}

		return nil
	})
	if err != nil {
		return 0, err
	}

	return id, nil
}

// GetClient retrieves a client by identifier
func (s *Storage) GetClient(ctx context.Context, id int64) (*models.Client, error) {
	var client *models.Client

	err := s.view(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketClients)
		if bucket == nil {
			return fmt.Errorf("clients bucket not found")
		}

		data := bucket.Get(itob(id))
		if data == nil {
			return storage.ErrNotFound
		}

		client = &models.Client{}
		if err := json.Unmarshal(data, client); err != nil {
			return fmt.Errorf("failed to unmarshal client: %w", err)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return client, nil
}

// UpdateClient replaces the client stored at id.
// Returns storage.ErrNotFound if the identifier does not exist.
func (s *Storage) UpdateClient(ctx context.Context, id int64, client *models.Client) error {
	return s.update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketClients)
		if bucket == nil {
			return fmt.Errorf("clients bucket not found")
		}

		if bucket.Get(itob(id)) == nil {
			return storage.ErrNotFound
		}

		client.ID = id
		data, err := json.Marshal(client)
		if err != nil {
			return fmt.Errorf("failed to marshal client: %w", err)
		}

		if err := bucket.Put(itob(id), data); err != nil {
			return fmt.Errorf("failed to update client: %w", err)
		}

		return nil
	})
}

// DeleteClient removes the client at id; deleting a missing id is a no-op
func (s *Storage) DeleteClient(ctx context.Context, id int64) error {
	return s.update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketClients)
		if bucket == nil {
			return fmt.Errorf("clients bucket not found")
		}

		if err := bucket.Delete(itob(id)); err != nil {
			return fmt.Errorf("failed to delete client: %w", err)
		}

		return nil
	})
}

// ListClients returns all clients ordered by identifier
func (s *Storage) ListClients(ctx context.Context) ([]*models.Client, error) {
	var clients []*models.Client

	err := s.view(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketClients)
		if bucket == nil {
			return fmt.Errorf("clients bucket not found")
		}

		return bucket.ForEach(func(k, v []byte) error {
			client := &models.Client{}
			if err := json.Unmarshal(v, client); err != nil {
				return fmt.Errorf("failed to unmarshal client: %w", err)
			}
			clients = append(clients, client)
			return nil
		})
	})
	if err != nil {
		return nil, err
	}

	return clients, nil
}

// CountClients returns the number of client rows
func (s *Storage) CountClients(ctx context.Context) (int, error) {
	var count int

	err := s.view(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketClients)
		if bucket == nil {
			return fmt.Errorf("clients bucket not found")
		}

		count = bucket.Stats().KeyN
		return nil
	})
	if err != nil {
		return 0, err
	}

	return count, nil
}

// ClearClients removes every client row. Identifiers are not reused
// afterwards because the bucket sequence is left untouched.
func (s *Storage) ClearClients(ctx context.Context) error {
	return s.update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketClients)
		if bucket == nil {
			return fmt.Errorf("clients bucket not found")
		}

		return clearBucket(bucket)
	})
}
