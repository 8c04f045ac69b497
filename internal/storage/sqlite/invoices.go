package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/OLMA25/guzels-clinic-management-system/internal/models"
	"github.com/OLMA25/guzels-clinic-management-system/internal/storage"
)

// AddInvoice inserts an invoice and returns the assigned identifier.
// The paid/remaining/total relation is the caller's responsibility.
func (s *Storage) AddInvoice(ctx context.Context, invoice *models.Invoice) (int64, error) {
	query := `
		INSERT INTO invoices (client_id, client, phone, date, time, services, payment_type,
			paid_amount, remaining_amount, created_by, service_provider, total_amount, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	result, err := s.db.ExecContext(ctx, query,
		invoice.ClientID,
		invoice.ClientName,
		invoice.Phone,
		invoice.Date,
		invoice.Time,
		invoice.Services,
		invoice.PaymentType,
		invoice.PaidAmount,
		invoice.RemainingAmount,
		invoice.CreatedBy,
		invoice.ServiceProvider,
		invoice.TotalAmount,
		invoice.CreatedAt,
	)
	if err != nil {
		return 0, fmt.Errorf("failed to insert invoice: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to read invoice id: %w", err)
	}
	invoice.ID = id

	return id, nil
}

// GetInvoice retrieves an invoice by identifier
func (s *Storage) GetInvoice(ctx context.Context, id int64) (*models.Invoice, error) {
	query := `
		SELECT id, client_id, client, phone, date, time, services, payment_type,
			paid_amount, remaining_amount, created_by, service_provider, total_amount, created_at
		FROM invoices
		WHERE id = ?
	`

	invoice := &models.Invoice{}
	err := s.db.QueryRowContext(ctx, query, id).Scan(
		&invoice.ID,
		&invoice.ClientID,
		&invoice.ClientName,
		&invoice.Phone,
		&invoice.Date,
		&invoice.Time,
		&invoice.Services,
		&invoice.PaymentType,
		&invoice.PaidAmount,
		&invoice.RemainingAmount,
		&invoice.CreatedBy,
		&invoice.ServiceProvider,
		&invoice.TotalAmount,
		&invoice.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get invoice: %w", err)
	}

	return invoice, nil
}

// UpdateInvoice replaces the invoice row at id
func (s *Storage) UpdateInvoice(ctx context.Context, id int64, invoice *models.Invoice) error {
	query := `
		UPDATE invoices
		SET client_id = ?, client = ?, phone = ?, date = ?, time = ?, services = ?,
			payment_type = ?, paid_amount = ?, remaining_amount = ?, created_by = ?,
			service_provider = ?, total_amount = ?, created_at = ?
		WHERE id = ?
	`

	result, err := s.db.ExecContext(ctx, query,
		invoice.ClientID,
		invoice.ClientName,
		invoice.Phone,
		invoice.Date,
		invoice.Time,
		invoice.Services,
		invoice.PaymentType,
		invoice.PaidAmount,
		invoice.RemainingAmount,
		invoice.CreatedBy,
		invoice.ServiceProvider,
		invoice.TotalAmount,
		invoice.CreatedAt,
		id,
	)
	if err != nil {
		return fmt.Errorf("failed to update invoice: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if affected == 0 {
		return storage.ErrNotFound
	}
	invoice.ID = id

	return nil
}

// DeleteInvoice removes the invoice at id, no-op when missing
func (s *Storage) DeleteInvoice(ctx context.Context, id int64) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM invoices WHERE id = ?`, id); err != nil {
		return fmt.Errorf("failed to delete invoice: %w", err)
	}
	return nil
}

// ListInvoices returns all invoices ordered by identifier
func (s *Storage) ListInvoices(ctx context.Context) ([]*models.Invoice, error) {
	query := `
		SELECT id, client_id, client, phone, date, time, services, payment_type,
			paid_amount, remaining_amount, created_by, service_provider, total_amount, created_at
		FROM invoices
		ORDER BY id
	`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list invoices: %w", err)
	}
	defer rows.Close()

	var invoices []*models.Invoice
	for rows.Next() {
		invoice := &models.Invoice{}
		err := rows.Scan(
			&invoice.ID,
			&invoice.ClientID,
			&invoice.ClientName,
			&invoice.Phone,
			&invoice.Date,
			&invoice.Time,
			&invoice.Services,
			&invoice.PaymentType,
			&invoice.PaidAmount,
			&invoice.RemainingAmount,
			&invoice.CreatedBy,
			&invoice.ServiceProvider,
			&invoice.TotalAmount,
			&invoice.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan invoice: %w", err)
		}
		invoices = append(invoices, invoice)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate invoices: %w", err)
	}

	return invoices, nil
}

// CountInvoices returns the number of invoice rows
func (s *Storage) CountInvoices(ctx context.Context) (int, error) {
	var count int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM invoices`).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count invoices: %w", err)
	}
	return count, nil
}

// ClearInvoices removes every invoice row
func (s *Storage) ClearInvoices(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM invoices`); err != nil {
		return fmt.Errorf("failed to clear invoices: %w", err)
	}
	return nil
}
