package boltdb

import (
	"context"
	"encoding/json"
	"fmt"

	"go.etcd.io/bbolt"

	"github.com/OLMA25/guzels-clinic-management-system/internal/models"
	"github.com/OLMA25/guzels-clinic-management-system/internal/storage"
)

// AddProvider inserts a provider and returns the assigned identifier
func (s *Storage) AddProvider(ctx context.Context, provider *models.Provider) (int64, error) {
	var id int64

	err := s.update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketProviders)
		if bucket == nil {
			return fmt.Errorf("providers bucket not found")
		}

		seq, err := bucket.NextSequence()
		if err != nil {
			return fmt.Errorf("failed to assign provider id: %w", err)
		}
		id = int64(seq)
		provider.ID = id

		data, err := json.Marshal(provider)
		if err != nil {
			return fmt.Errorf("failed to marshal provider: %w", err)
		}

		if err := bucket.Put(itob(id), data); err != nil {
			return fmt.Errorf("failed to save provider: %w", err)
		}

		return nil
	})
	if err != nil {
		return 0, err
	}

	return id, nil
}

// GetProvider retrieves a provider by identifier
func (s *Storage) GetProvider(ctx context.Context, id int64) (*models.Provider, error) {
	var provider *models.Provider

	err := s.view(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketProviders)
		if bucket == nil {
			return fmt.Errorf("providers bucket not found")
		}

		data := bucket.Get(itob(id))
		if data == nil {
			return storage.ErrNotFound
		}

		provider = &models.Provider{}
		if err := json.Unmarshal(data, provider); err != nil {
			return fmt.Errorf("failed to unmarshal provider: %w", err)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return provider, nil
}

// UpdateProvider replaces the provider stored at id
func (s *Storage) UpdateProvider(ctx context.Context, id int64, provider *models.Provider) error {
	return s.update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketProviders)
		if bucket == nil {
			return fmt.Errorf("providers bucket not found")
		}

		if bucket.Get(itob(id)) == nil {
			return storage.ErrNotFound
		}

		provider.ID = id
		data, err := json.Marshal(provider)
		if err != nil {
			return fmt.Errorf("failed to marshal provider: %w", err)
		}

		if err := bucket.Put(itob(id), data); err != nil {
			return fmt.Errorf("failed to update provider: %w", err)
		}

		return nil
	})
}

// DeleteProvider removes the provider at id, no-op when missing
func (s *Storage) DeleteProvider(ctx context.Context, id int64) error {
	return s.update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketProviders)
		if bucket == nil {
			return fmt.Errorf("providers bucket not found")
		}

		if err := bucket.Delete(itob(id)); err != nil {
			return fmt.Errorf("failed to delete provider: %w", err)
		}

		return nil
	})
}

// ListProviders returns all providers ordered by identifier
func (s *Storage) ListProviders(ctx context.Context) ([]*models.Provider, error) {
	var providers []*models.Provider

	err := s.view(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketProviders)
		if bucket == nil {
			return fmt.Errorf("providers bucket not found")
		}

		return bucket.ForEach(func(k, v []byte) error {
			provider := &models.Provider{}
			if err := json.Unmarshal(v, provider); err != nil {
				return fmt.Errorf("failed to unmarshal provider: %w", err)
			}
			providers = append(providers, provider)
			return nil
		})
	})
	if err != nil {
		return nil, err
	}

	return providers, nil
}

// CountProviders returns the number of provider rows
func (s *Storage) CountProviders(ctx context.Context) (int, error) {
	var count int

	err := s.view(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketProviders)
		if bucket == nil {
			return fmt.Errorf("providers bucket not found")
		}

		count = bucket.Stats().KeyN
		return nil
	})
	if err != nil {
		return 0, err
	}

	return count, nil
}

// ClearProviders removes every provider row
func (s *Storage) ClearProviders(ctx context.Context) error {
	return s.update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketProviders)
		if bucket == nil {
			return fmt.Errorf("providers bucket not found")
		}

		return clearBucket(bucket)
	})
}
