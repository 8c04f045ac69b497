package boltdb

import (
	"context"
	"encoding/json"
	"fmt"

	"go.etcd.io/bbolt"

	"github.com/OLMA25/guzels-clinic-management-system/internal/models"
	"github.com/OLMA25/guzels-clinic-management-system/internal/storage"
)

// AddService inserts a price-list entry and returns the assigned identifier
func (s *Storage) AddService(ctx context.Context, service *models.Service) (int64, error) {
	var id int64

	err := s.update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketServices)
		if bucket == nil {
			return fmt.Errorf("services bucket not found")
		}

		seq, err := bucket.NextSequence()
		if err != nil {
			return fmt.Errorf("failed to assign service id: %w", err)
		}
		id = int64(seq)
		service.ID = id

		data, err := json.Marshal(service)
		if err != nil {
			return fmt.Errorf("failed to marshal service: %w", err)
		}

		if err := bucket.Put(itob(id), data); err != nil {
			return fmt.Errorf("failed to save service: %w", err)
		}

		return nil
	})
	if err != nil {
		return 0, err
	}

	return id, nil
}

// GetService retrieves a price-list entry by identifier
func (s *Storage) GetService(ctx context.Context, id int64) (*models.Service, error) {
	var service *models.Service

	err := s.view(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketServices)
		if bucket == nil {
			return fmt.Errorf("services bucket not found")
		}

		data := bucket.Get(itob(id))
		if data == nil {
			return storage.ErrNotFound
		}

		service = &models.Service{}
		if err := json.Unmarshal(data, service); err != nil {
			return fmt.Errorf("failed to unmarshal service: %w", err)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return service, nil
}

// UpdateService replaces the price-list entry stored at id
func (s *Storage) UpdateService(ctx context.Context, id int64, service *models.Service) error {
	return s.update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketServices)
		if bucket == nil {
			return fmt.Errorf("services bucket not found")
		}

		if bucket.Get(itob(id)) == nil {
			return storage.ErrNotFound
		}

		service.ID = id
		data, err := json.Marshal(service)
		if err != nil {
			return fmt.Errorf("failed to marshal service: %w", err)
		}

		if err := bucket.Put(itob(id), data); err != nil {
			return fmt.Errorf("failed to update service: %w", err)
		}

		return nil
	})
}

// DeleteService removes the price-list entry at id, no-op when missing
func (s *Storage) DeleteService(ctx context.Context, id int64) error {
	return s.update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketServices)
		if bucket == nil {
			return fmt.Errorf("services bucket not found")
		}

		if err := bucket.Delete(itob(id)); err != nil {
			return fmt.Errorf("failed to delete service: %w", err)
		}

		return nil
	})
}

// ListServices returns the whole price list ordered by identifier
func (s *Storage) ListServices(ctx context.Context) ([]*models.Service, error) {
	var services []*models.Service

	err := s.view(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketServices)
		if bucket == nil {
			return fmt.Errorf("services bucket not found")
		}

		return bucket.ForEach(func(k, v []byte) error {
			service := &models.Service{}
			if err := json.Unmarshal(v, service); err != nil {
				return fmt.Errorf("failed to unmarshal service: %w", err)
			}
			services = append(services, service)
			return nil
		})
	})
	if err != nil {
		return nil, err
	}

	return services, nil
}

// CountServices returns the number of price-list rows
func (s *Storage) CountServices(ctx context.Context) (int, error) {
	var count int

	err := s.view(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketServices)
		if bucket == nil {
			return fmt.Errorf("services bucket not found")
		}

		count = bucket.Stats().KeyN
		return nil
	})
	if err != nil {
		return 0, err
	}

	return count, nil
}

// ClearServices removes every price-list row
func (s *Storage) ClearServices(ctx context.Context) error {
	return s.update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketServices)
		if bucket == nil {
			return fmt.Errorf("services bucket not found")
		}

		return clearBucket(bucket)
	})
}
