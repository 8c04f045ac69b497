package boltdb

import (
	"context"
	"encoding/json"
	"fmt"

	"go.etcd.io/bbolt"

	"github.com/OLMA25/guzels-clinic-management-system/internal/models"
	"github.com/OLMA25/guzels-clinic-management-system/internal/storage"
)

// AddInvoice inserts an invoice and returns the assigned identifier.
// The paid/remaining/total relation is the caller's responsibility.
func (s *Storage) AddInvoice(ctx context.Context, invoice *models.Invoice) (int64, error) {
	var id int64

	err := s.update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketInvoices)
		if bucket == nil {
			return fmt.Errorf("invoices bucket not found")
		}

		seq, err := bucket.NextSequence()
		if err != nil {
			return fmt.Errorf("failed to assign invoice id: %w", err)
		}
		id = int64(seq)
		invoice.ID = id

		data, err := json.Marshal(invoice)
		if err != nil {
			return fmt.Errorf("failed to marshal invoice: %w", err)
		}

		if err := bucket.Put(itob(id), data); err != nil {
			return fmt.Errorf("failed to save invoice: %w", err)
		}

		return nil
	})
	if err != nil {
		return 0, err
	}

	return id, nil
}

// GetInvoice retrieves an invoice by identifier
func (s *Storage) GetInvoice(ctx context.Context, id int64) (*models.Invoice, error) {
	var invoice *models.Invoice

	err := s.view(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketInvoices)
		if bucket == nil {
			return fmt.Errorf("invoices bucket not found")
		}

		data := bucket.Get(itob(id))
		if data == nil {
			return storage.ErrNotFound
		}

		invoice = &models.Invoice{}
		if err := json.Unmarshal(data, invoice); err != nil {
			return fmt.Errorf("failed to unmarshal invoice: %w", err)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return invoice, nil
}

// UpdateInvoice replaces the invoice stored at id
func (s *Storage) UpdateInvoice(ctx context.Context, id int64, invoice *models.Invoice) error {
	return s.update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketInvoices)
		if bucket == nil {
			return fmt.Errorf("invoices bucket not found")
		}

		if bucket.Get(itob(id)) == nil {
			return storage.ErrNotFound
		}

		invoice.ID = id
		data, err := json.Marshal(invoice)
		if err != nil {
			return fmt.Errorf("failed to marshal invoice: %w", err)
		}

		if err := bucket.Put(itob(id), data); err != nil {
			return fmt.Errorf("failed to update invoice: %w", err)
		}

		return nil
	})
}

// DeleteInvoice removes the invoice at id, no-op when missing
func (s *Storage) DeleteInvoice(ctx context.Context, id int64) error {
	return s.update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketInvoices)
		if bucket == nil {
			return fmt.Errorf("invoices bucket not found")
		}

		if err := bucket.Delete(itob(id)); err != nil {
			return fmt.Errorf("failed to delete invoice: %w", err)
		}

		return nil
	})
}

// ListInvoices returns all invoices ordered by identifier
func (s *Storage) ListInvoices(ctx context.Context) ([]*models.Invoice, error) {
	var invoices []*models.Invoice

	err := s.view(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketInvoices)
		if bucket == nil {
			return fmt.Errorf("invoices bucket not found")
		}

		return bucket.ForEach(func(k, v []byte) error {
			invoice := &models.Invoice{}
			if err := json.Unmarshal(v, invoice); err != nil {
				return fmt.Errorf("failed to unmarshal invoice: %w", err)
			}
			invoices = append(invoices, invoice)
			return nil
		})
	})
	if err != nil {
		return nil, err
	}

	return invoices, nil
}

// CountInvoices returns the number of invoice rows
func (s *Storage) CountInvoices(ctx context.Context) (int, error) {
	var count int

	err := s.view(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketInvoices)
		if bucket == nil {
			return fmt.Errorf("invoices bucket not found")
		}

		count = bucket.Stats().KeyN
		return nil
	})
	if err != nil {
		return 0, err
	}

	return count, nil
}

// ClearInvoices removes every invoice row
func (s *Storage) ClearInvoices(ctx context.Context) error {
	return s.update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketInvoices)
		if bucket == nil {
			return fmt.Errorf("invoices bucket not found")
		}

		return clearBucket(bucket)
	})
}
