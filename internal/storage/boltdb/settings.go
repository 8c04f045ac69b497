package boltdb

import (
	"context"
	"encoding/json"
	"fmt"

	"go.etcd.io/bbolt"

	"github.com/OLMA25/guzels-clinic-management-system/internal/models"
	"github.com/OLMA25/guzels-clinic-management-system/internal/storage"
)

// AddSetting inserts a key/value row and returns the assigned identifier.
// Key uniqueness is not checked here; use UpdateSetting for upserts.
func (s *Storage) AddSetting(ctx context.Context, setting *models.Setting) (int64, error) {
	var id int64

	err := s.update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketSettings)
		if bucket == nil {
			return fmt.Errorf("settings bucket not found")
		}

		seq, err := bucket.NextSequence()
		if err != nil {
			return fmt.Errorf("failed to assign setting id: %w", err)
		}
		id = int64(seq)
		setting.ID = id

		data, err := json.Marshal(setting)
		if err != nil {
			return fmt.Errorf("failed to marshal setting: %w", err)
		}

		if err := bucket.Put(itob(id), data); err != nil {
			return fmt.Errorf("failed to save setting: %w", err)
		}

		return nil
	})
	if err != nil {
		return 0, err
	}

	return id, nil
}

// GetSettingByID retrieves a setting row by identifier
func (s *Storage) GetSettingByID(ctx context.Context, id int64) (*models.Setting, error) {
	var setting *models.Setting

	err := s.view(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketSettings)
		if bucket == nil {
			return fmt.Errorf("settings bucket not found")
		}

		data := bucket.Get(itob(id))
		if data == nil {
			return storage.ErrNotFound
		}

		setting = &models.Setting{}
		if err := json.Unmarshal(data, setting); err != nil {
			return fmt.Errorf("failed to unmarshal setting: %w", err)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return setting, nil
}

// DeleteSetting removes the setting row at id, no-op when missing
func (s *Storage) DeleteSetting(ctx context.Context, id int64) error {
	return s.update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketSettings)
		if bucket == nil {
			return fmt.Errorf("settings bucket not found")
		}

		if err := bucket.Delete(itob(id)); err != nil {
			return fmt.Errorf("failed to delete setting: %w", err)
		}

		return nil
	})
}

// ListSettings returns all setting rows ordered by identifier
func (s *Storage) ListSettings(ctx context.Context) ([]*models.Setting, error) {
	var settings []*models.Setting

	err := s.view(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketSettings)
		if bucket == nil {
			return fmt.Errorf("settings bucket not found")
		}

		return bucket.ForEach(func(k, v []byte) error {
			setting := &models.Setting{}
			if err := json.Unmarshal(v, setting); err != nil {
				return fmt.Errorf("failed to unmarshal setting: %w", err)
			}
			settings = append(settings, setting)
			return nil
		})
	})
	if err != nil {
		return nil, err
	}

	return settings, nil
}

// CountSettings returns the number of setting rows
func (s *Storage) CountSettings(ctx context.Context) (int, error) {
	var count int

	err := s.view(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketSettings)
		if bucket == nil {
			return fmt.Errorf("settings bucket not found")
		}

		count = bucket.Stats().KeyN
		return nil
	})
	if err != nil {
		return 0, err
	}

	return count, nil
}

// ClearSettings removes every setting row
func (s *Storage) ClearSettings(ctx context.Context) error {
	return s.update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketSettings)
		if bucket == nil {
			return fmt.Errorf("settings bucket not found")
		}

		return clearBucket(bucket)
	})
}

// GetSetting returns the value stored under key, or an empty string when
// the key is absent. A missing key is not an error.
func (s *Storage) GetSetting(ctx context.Context, key string) (string, error) {
	var value string

	err := s.view(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketSettings)
		if bucket == nil {
			return fmt.Errorf("settings bucket not found")
		}

		return bucket.ForEach(func(k, v []byte) error {
			setting := &models.Setting{}
			if err := json.Unmarshal(v, setting); err != nil {
				return fmt.Errorf("failed to unmarshal setting: %w", err)
			}
			if setting.Key == key {
				value = setting.Value
			}
			return nil
		})
	})
	if err != nil {
		return "", err
	}

	return value, nil
}

// UpdateSetting patches the row holding key, inserting a new row when the
// key is absent. The lookup and the write share one transaction, so two
// racing upserts cannot both insert. With duplicate keys the row with the
// highest identifier is patched, the same row GetSetting reads.
func (s *Storage) UpdateSetting(ctx context.Context, key, value string) error {
	return s.update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketSettings)
		if bucket == nil {
			return fmt.Errorf("settings bucket not found")
		}

		var existing *models.Setting
		err := bucket.ForEach(func(k, v []byte) error {
			setting := &models.Setting{}
			if err := json.Unmarshal(v, setting); err != nil {
				return fmt.Errorf("failed to unmarshal setting: %w", err)
			}
			if setting.Key == key {
				existing = setting
			}
			return nil
		})
		if err != nil {
			return err
		}

		if existing == nil {
			seq, err := bucket.NextSequence()
			if err != nil {
				return fmt.Errorf("failed to assign setting id: %w", err)
			}
			existing = &models.Setting{ID: int64(seq), Key: key}
		}
		existing.Value = value

		data, err := json.Marshal(existing)
		if err != nil {
			return fmt.Errorf("failed to marshal setting: %w", err)
		}

		if err := bucket.Put(itob(existing.ID), data); err != nil {
			return fmt.Errorf("failed to save setting: %w", err)
		}

		return nil
	})
}

// AllSettings folds every setting row into a flat key/value map.
// Duplicate keys resolve last-write-wins in identifier order.
func (s *Storage) AllSettings(ctx context.Context) (map[string]string, error) {
	settings := make(map[string]string)

	err := s.view(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketSettings)
		if bucket == nil {
			return fmt.Errorf("settings bucket not found")
		}

		return bucket.ForEach(func(k, v []byte) error {
			setting := &models.Setting{}
			if err := json.Unmarshal(v, setting); err != nil {
				return fmt.Errorf("failed to unmarshal setting: %w", err)
			}
			settings[setting.Key] = setting.Value
			return nil
		})
	})
	if err != nil {
		return nil, err
	}

	return settings, nil
}
