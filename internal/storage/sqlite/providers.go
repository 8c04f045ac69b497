package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/OLMA25/guzels-clinic-management-system/internal/models"
	"github.com/OLMA25/guzels-clinic-management-system/internal/storage"
)

// AddProvider inserts a provider and returns the assigned identifier
func (s *Storage) AddProvider(ctx context.Context, provider *models.Provider) (int64, error) {
	query := `
		INSERT INTO providers (name, phone, email, role, active, created_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`

	result, err := s.db.ExecContext(ctx, query,
		provider.Name,
		provider.Phone,
		provider.Email,
		provider.Role,
		provider.Active,
		provider.CreatedAt,
	)
	if err != nil {
		return 0, fmt.Errorf("failed to insert provider: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to read provider id: %w", err)
	}
	provider.ID = id

	return id, nil
}

// GetProvider retrieves a provider by identifier
func (s *Storage) GetProvider(ctx context.Context, id int64) (*models.Provider, error) {
	query := `
		SELECT id, name, phone, email, role, active, created_at
		FROM providers
		WHERE id = ?
	`

	provider := &models.Provider{}
	err := s.db.QueryRowContext(ctx, query, id).Scan(
		&provider.ID,
		&provider.Name,
		&provider.Phone,
		&provider.Email,
		&provider.Role,
		&provider.Active,
		&provider.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get provider: %w", err)
	}

	return provider, nil
}

// UpdateProvider replaces the provider row at id
func (s *Storage) UpdateProvider(ctx context.Context, id int64, provider *models.Provider) error {
	query := `
		UPDATE providers
		SET name = ?, phone = ?, email = ?, role = ?, active = ?, created_at = ?
		WHERE id = ?
	`

	result, err := s.db.ExecContext(ctx, query,
		provider.Name,
		provider.Phone,
		provider.Email,
		provider.Role,
		provider.Active,
		provider.CreatedAt,
		id,
	)
	if err != nil {
		return fmt.Errorf("failed to update provider: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if affected == 0 {
		return storage.ErrNotFound
	}
	provider.ID = id

	return nil
}

// DeleteProvider removes the provider at id, no-op when missing
func (s *Storage) DeleteProvider(ctx context.Context, id int64) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM providers WHERE id = ?`, id); err != nil {
		return fmt.Errorf("failed to delete provider: %w", err)
	}
	return nil
}

// ListProviders returns all providers ordered by identifier
func (s *Storage) ListProviders(ctx context.Context) ([]*models.Provider, error) {
	query := `
		SELECT id, name, phone, email, role, active, created_at
		FROM providers
		ORDER BY id
	`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list providers: %w", err)
	}
	defer rows.Close()

	var providers []*models.Provider
	for rows.Next() {
		provider := &models.Provider{}
		err := rows.Scan(
			&provider.ID,
			&provider.Name,
			&provider.Phone,
			&provider.Email,
			&provider.Role,
			&provider.Active,
			&provider.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan provider: %w", err)
		}
		providers = append(providers, provider)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate providers: %w", err)
	}

	return providers, nil
}

// CountProviders returns the number of provider rows
func (s *Storage) CountProviders(ctx context.Context) (int, error) {
	var count int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM providers`).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count providers: %w", err)
	}
	return count, nil
}

// ClearProviders removes every provider row
func (s *Storage) ClearProviders(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM providers`); err != nil {
		return fmt.Errorf("failed to clear providers: %w", err)
	}
	return nil
}
