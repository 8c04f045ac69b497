package boltdb

import (
	"context"
	"encoding/json"
	"fmt"

	"go.etcd.io/bbolt"

	"github.com/OLMA25/guzels-clinic-management-system/internal/models"
	"github.com/OLMA25/guzels-clinic-management-system/internal/storage"
)

// AddAppointment inserts an appointment and returns the assigned identifier
func (s *Storage) AddAppointment(ctx context.Context, appointment *models.Appointment) (int64, error) {
	var id int64

	err := s.update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketAppointments)
		if bucket == nil {
			return fmt.Errorf("appointments bucket not found")
		}

		seq, err := bucket.NextSequence()
		if err != nil {
			return fmt.Errorf("failed to assign appointment id: %w", err)
		}
		id = int64(seq)
		appointment.ID = id

		data, err := json.Marshal(appointment)
		if err != nil {
			return fmt.Errorf("failed to marshal appointment: %w", err)
		}

		if err := bucket.Put(itob(id), data); err != nil {
			return fmt.Errorf("failed to save appointment: %w", err)
		}

		return nil
	})
	if err != nil {
		return 0, err
	}

	return id, nil
}

// GetAppointment retrieves an appointment by identifier
func (s *Storage) GetAppointment(ctx context.Context, id int64) (*models.Appointment, error) {
	var appointment *models.Appointment

	err := s.view(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketAppointments)
		if bucket == nil {
			return fmt.Errorf("appointments bucket not found")
		}

		data := bucket.Get(itob(id))
		if data == nil {
			return storage.ErrNotFound
		}

		appointment = &models.Appointment{}
		if err := json.Unmarshal(data, appointment); err != nil {
			return fmt.Errorf("failed to unmarshal appointment: %w", err)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return appointment, nil
}

// UpdateAppointment replaces the appointment stored at id
func (s *Storage) UpdateAppointment(ctx context.Context, id int64, appointment *models.Appointment) error {
	return s.update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketAppointments)
		if bucket == nil {
			return fmt.Errorf("appointments bucket not found")
		}

		if bucket.Get(itob(id)) == nil {
			return storage.ErrNotFound
		}

		appointment.ID = id
		data, err := json.Marshal(appointment)
		if err != nil {
			return fmt.Errorf("failed to marshal appointment: %w", err)
		}

		if err := bucket.Put(itob(id), data); err != nil {
			return fmt.Errorf("failed to update appointment: %w", err)
		}

		return nil
	})
}

// DeleteAppointment removes the appointment at id, no-op when missing
func (s *Storage) DeleteAppointment(ctx context.Context, id int64) error {
	return s.update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketAppointments)
		if bucket == nil {
			return fmt.Errorf("appointments bucket not found")
		}

		if err := bucket.Delete(itob(id)); err != nil {
			return fmt.Errorf("failed to delete appointment: %w", err)
		}

		return nil
	})
}

// ListAppointments returns all appointments ordered by identifier
func (s *Storage) ListAppointments(ctx context.Context) ([]*models.Appointment, error) {
	var appointments []*models.Appointment

	err := s.view(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketAppointments)
		if bucket == nil {
			return fmt.Errorf("appointments bucket not found")
		}

		return bucket.ForEach(func(k, v []byte) error {
			appointment := &models.Appointment{}
			if err := json.Unmarshal(v, appointment); err != nil {
				return fmt.Errorf("failed to unmarshal appointment: %w", err)
			}
			appointments = append(appointments, appointment)
			return nil
		})
	})
	if err != nil {
		return nil, err
	}

	return appointments, nil
}

// CountAppointments returns the number of appointment rows
func (s *Storage) CountAppointments(ctx context.Context) (int, error) {
	var count int

	err := s.view(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketAppointments)
		if bucket == nil {
			return fmt.Errorf("appointments bucket not found")
		}

		count = bucket.Stats().KeyN
		return nil
	})
	if err != nil {
		return 0, err
	}

	return count, nil
}

// ClearAppointments removes every appointment row
func (s *Storage) ClearAppointments(ctx context.Context) error {
	return s.update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketAppointments)
		if bucket == nil {
			return fmt.Errorf("appointments bucket not found")
		}

		return clearBucket(bucket)
	})
}
