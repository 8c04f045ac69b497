package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/OLMA25/guzels-clinic-management-system/internal/models"
	"github.com/OLMA25/guzels-clinic-management-system/internal/storage"
)

// AddClient inserts a client and returns the assigned identifier
func (s *Storage) AddClient(ctx context.Context, client *models.Client) (int64, error) {
	query := `
		INSERT INTO clients (name, phone, email, hair_type, hair_color, skin_type, allergies,
			current_sessions, remaining_sessions, most_requested_services, remaining_payments,
			notes, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	result, err := s.db.ExecContext(ctx, query,
		client.Name,
		client.Phone,
		client.Email,
		client.HairType,
		client.HairColor,
		client.SkinType,
		client.Allergies,
		client.CurrentSessions,
		client.RemainingSessions,
		client.MostRequestedServices,
		client.RemainingPayments,
		client.Notes,
		client.CreatedAt,
	)
	if err != nil {
		return 0, fmt.Errorf("failed to insert client: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to read client id: %w", err)
	}
	client.ID = id

	return id, nil
}

// GetClient retrieves a client by identifier
func (s *Storage) GetClient(ctx context.Context, id int64) (*models.Client, error) {
	query := `
		SELECT id, name, phone, email, hair_type, hair_color, skin_type, allergies,
			current_sessions, remaining_sessions, most_requested_services, remaining_payments,
			notes, created_at
		FROM clients
		WHERE id = ?
	`

	client := &models.Client{}
	err := s.db.QueryRowContext(ctx, query, id).Scan(
		&client.ID,
		&client.Name,
		&client.Phone,
		&client.Email,
		&client.HairType,
		&client.HairColor,
		&client.SkinType,
		&client.Allergies,
		&client.CurrentSessions,
		&client.RemainingSessions,
		&client.MostRequestedServices,
		&client.RemainingPayments,
		&client.Notes,
		&client.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get client: %w", err)
	}

	return client, nil
}

// UpdateClient replaces the client row at id.
// Returns storage.ErrNotFound if the identifier does not exist.
func (s *Storage) UpdateClient(ctx context.Context, id int64, client *models.Client) error {
	query := `
		UPDATE clients
		SET name = ?, phone = ?, email = ?, hair_type = ?, hair_color = ?, skin_type = ?,
			allergies = ?, current_sessions = ?, remaining_sessions = ?,
			most_requested_services = ?, remaining_payments = ?, notes = ?, created_at = ?
		WHERE id = ?
	`

	result, err := s.db.ExecContext(ctx, query,
		client.Name,
		client.Phone,
		client.Email,
		client.HairType,
		client.HairColor,
		client.SkinType,
		client.Allergies,
		client.CurrentSessions,
		client.RemainingSessions,
		client.MostRequestedServices,
		client.RemainingPayments,
		client.Notes,
		client.CreatedAt,
		id,
	)
	if err != nil {
		return fmt.Errorf("failed to update client: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if affected == 0 {
		return storage.ErrNotFound
	}
	client.ID = id

	return nil
}

// DeleteClient removes the client at id; deleting a missing id is a no-op
func (s *Storage) DeleteClient(ctx context.Context, id int64) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM clients WHERE id = ?`, id); err != nil {
		return fmt.Errorf("failed to delete client: %w", err)
	}
	return nil
}

// ListClients returns all clients ordered by identifier
func (s *Storage) ListClients(ctx context.Context) ([]*models.Client, error) {
	query := `
		SELECT id, name, phone, email, hair_type, hair_color, skin_type, allergies,
			current_sessions, remaining_sessions, most_requested_services, remaining_payments,
			notes, created_at
		FROM clients
		ORDER BY id
	`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list clients: %w", err)
	}
	defer rows.Close()

	var clients []*models.Client
	for rows.Next() {
		client := &models.Client{}
		err := rows.Scan(
			&client.ID,
			&client.Name,
			&client.Phone,
			&client.Email,
			&client.HairType,
			&client.HairColor,
			&client.SkinType,
			&client.Allergies,
			&client.CurrentSessions,
			&client.RemainingSessions,
			&client.MostRequestedServices,
			&client.RemainingPayments,
			&client.Notes,
			&client.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan client: %w", err)
		}
		clients = append(clients, client)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate clients: %w", err)
	}

	return clients, nil
}

// CountClients returns the number of client rows
func (s *Storage) CountClients(ctx context.Context) (int, error) {
	var count int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM clients`).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count clients: %w", err)
	}
	return count, nil
}

// ClearClients removes every client row. AUTOINCREMENT keeps the rowid
// sequence, so cleared identifiers are not reused.
func (s *Storage) ClearClients(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM clients`); err != nil {
		return fmt.Errorf("failed to clear clients: %w", err)
	}
	return nil
}
