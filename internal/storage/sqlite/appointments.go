package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/OLMA25/guzels-clinic-management-system/internal/models"
	"github.com/OLMA25/guzels-clinic-management-system/internal/storage"
)

// AddAppointment inserts an appointment and returns the assigned identifier
func (s *Storage) AddAppointment(ctx context.Context, appointment *models.Appointment) (int64, error) {
	query := `
		INSERT INTO appointments (client_id, client, phone, email, date, time, service,
			provider, notes, status, remaining_payments, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	result, err := s.db.ExecContext(ctx, query,
		appointment.ClientID,
		appointment.ClientName,
		appointment.Phone,
		appointment.Email,
		appointment.Date,
		appointment.Time,
		appointment.Service,
		appointment.Provider,
		appointment.Notes,
		appointment.Status,
		appointment.RemainingPayments,
		appointment.CreatedAt,
	)
	if err != nil {
		return 0, fmt.Errorf("failed to insert appointment: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to read appointment id: %w", err)
	}
	appointment.ID = id

	return id, nil
}

// GetAppointment retrieves an appointment by identifier
func (s *Storage) GetAppointment(ctx context.Context, id int64) (*models.Appointment, error) {
	query := `
		SELECT id, client_id, client, phone, email, date, time, service, provider,
			notes, status, remaining_payments, created_at
		FROM appointments
		WHERE id = ?
	`

	appointment := &models.Appointment{}
	err := s.db.QueryRowContext(ctx, query, id).Scan(
		&appointment.ID,
		&appointment.ClientID,
		&appointment.ClientName,
		&appointment.Phone,
		&appointment.Email,
		&appointment.Date,
		&appointment.Time,
		&appointment.Service,
		&appointment.Provider,
		&appointment.Notes,
		&appointment.Status,
		&appointment.RemainingPayments,
		&appointment.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get appointment: %w", err)
	}

	return appointment, nil
}

// UpdateAppointment replaces the appointment row at id
func (s *Storage) UpdateAppointment(ctx context.Context, id int64, appointment *models.Appointment) error {
	query := `
		UPDATE appointments
		SET client_id = ?, client = ?, phone = ?, email = ?, date = ?, time = ?,
			service = ?, provider = ?, notes = ?, status = ?, remaining_payments = ?,
			created_at = ?
		WHERE id = ?
	`

	result, err := s.db.ExecContext(ctx, query,
		appointment.ClientID,
		appointment.ClientName,
		appointment.Phone,
		appointment.Email,
		appointment.Date,
		appointment.Time,
		appointment.Service,
		appointment.Provider,
		appointment.Notes,
		appointment.Status,
		appointment.RemainingPayments,
		appointment.CreatedAt,
		id,
	)
	if err != nil {
		return fmt.Errorf("failed to update appointment: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if affected == 0 {
		return storage.ErrNotFound
	}
	appointment.ID = id

	return nil
}

// DeleteAppointment removes the appointment at id, no-op when missing
func (s *Storage) DeleteAppointment(ctx context.Context, id int64) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM appointments WHERE id = ?`, id); err != nil {
		return fmt.Errorf("failed to delete appointment: %w", err)
	}
	return nil
}

// ListAppointments returns all appointments ordered by identifier
func (s *Storage) ListAppointments(ctx context.Context) ([]*models.Appointment, error) {
	query := `
		SELECT id, client_id, client, phone, email, date, time, service, provider,
			notes, status, remaining_payments, created_at
		FROM appointments
		ORDER BY id
	`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list appointments: %w", err)
	}
	defer rows.Close()

	var appointments []*models.Appointment
	for rows.Next() {
		appointment := &models.Appointment{}
		err := rows.Scan(
			&appointment.ID,
			&appointment.ClientID,
			&appointment.ClientName,
			&appointment.Phone,
			&appointment.Email,
			&appointment.Date,
			&appointment.Time,
			&appointment.Service,
			&appointment.Provider,
			&appointment.Notes,
			&appointment.Status,
			&appointment.RemainingPayments,
			&appointment.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan appointment: %w", err)
		}
		appointments = append(appointments, appointment)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate appointments: %w", err)
	}

	return appointments, nil
}

// CountAppointments returns the number of appointment rows
func (s *Storage) CountAppointments(ctx context.Context) (int, error) {
	var count int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM appointments`).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count appointments: %w", err)
	}
	return count, nil
}

// ClearAppointments removes every appointment row
func (s *Storage) ClearAppointments(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM appointments`); err != nil {
		return fmt.Errorf("failed to clear appointments: %w", err)
	}
	return nil
}
