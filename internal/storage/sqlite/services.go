package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/OLMA25/guzels-clinic-management-system/internal/models"
	"github.com/OLMA25/guzels-clinic-management-system/internal/storage"
)

// AddService inserts a price-list entry and returns the assigned identifier
func (s *Storage) AddService(ctx context.Context, service *models.Service) (int64, error) {
	query := `
		INSERT INTO services (name, price, dynamic_price, created_at)
		VALUES (?, ?, ?, ?)
	`

	result, err := s.db.ExecContext(ctx, query,
		service.Name,
		service.Price,
		service.DynamicPrice,
		service.CreatedAt,
	)
	if err != nil {
		return 0, fmt.Errorf("failed to insert service: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to read service id: %w", err)
	}
	service.ID = id

	return id, nil
}

// GetService retrieves a price-list entry by identifier
func (s *Storage) GetService(ctx context.Context, id int64) (*models.Service, error) {
	query := `
		SELECT id, name, price, dynamic_price, created_at
		FROM services
		WHERE id = ?
	`

	service := &models.Service{}
	err := s.db.QueryRowContext(ctx, query, id).Scan(
		&service.ID,
		&service.Name,
		&service.Price,
		&service.DynamicPrice,
		&service.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get service: %w", err)
	}

	return service, nil
}

// UpdateService replaces the price-list row at id
func (s *Storage) UpdateService(ctx context.Context, id int64, service *models.Service) error {
	query := `
		UPDATE services
		SET name = ?, price = ?, dynamic_price = ?, created_at = ?
		WHERE id = ?
	`

	result, err := s.db.ExecContext(ctx, query,
		service.Name,
		service.Price,
		service.DynamicPrice,
		service.CreatedAt,
		id,
	)
	if err != nil {
		return fmt.Errorf("failed to update service: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if affected == 0 {
		return storage.ErrNotFound
	}
	service.ID = id

	return nil
}

// DeleteService removes the price-list row at id, no-op when missing
func (s *Storage) DeleteService(ctx context.Context, id int64) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM services WHERE id = ?`, id); err != nil {
		return fmt.Errorf("failed to delete service: %w", err)
	}
	return nil
}

// ListServices returns the whole price list ordered by identifier
func (s *Storage) ListServices(ctx context.Context) ([]*models.Service, error) {
	query := `
		SELECT id, name, price, dynamic_price, created_at
		FROM services
		ORDER BY id
	`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list services: %w", err)
	}
	defer rows.Close()

	var services []*models.Service
	for rows.Next() {
		service := &models.Service{}
		err := rows.Scan(
			&service.ID,
			&service.Name,
			&service.Price,
			&service.DynamicPrice,
			&service.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan service: %w", err)
		}
		services = append(services, service)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate services: %w", err)
	}

	return services, nil
}

// CountServices returns the number of price-list rows
func (s *Storage) CountServices(ctx context.Context) (int, error) {
	var count int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM services`).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count services: %w", err)
	}
	return count, nil
}

// ClearServices removes every price-list row
func (s *Storage) ClearServices(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM services`); err != nil {
		return fmt.Errorf("failed to clear services: %w", err)
	}
	return nil
}
