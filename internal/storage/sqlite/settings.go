package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/OLMA25/guzels-clinic-management-system/internal/models"
	"github.com/OLMA25/guzels-clinic-management-system/internal/storage"
)

// AddSetting inserts a key/value row and returns the assigned identifier.
// Key uniqueness is not checked here; use UpdateSetting for upserts.
func (s *Storage) AddSetting(ctx context.Context, setting *models.Setting) (int64, error) {
	result, err := s.db.ExecContext(ctx,
		`INSERT INTO settings (key, value) VALUES (?, ?)`,
		setting.Key, setting.Value,
	)
	if err != nil {
		return 0, fmt.Errorf("failed to insert setting: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to read setting id: %w", err)
	}
	setting.ID = id

	return id, nil
}

// GetSettingByID retrieves a setting row by identifier
func (s *Storage) GetSettingByID(ctx context.Context, id int64) (*models.Setting, error) {
	setting := &models.Setting{}
	err := s.db.QueryRowContext(ctx,
		`SELECT id, key, value FROM settings WHERE id = ?`, id,
	).Scan(&setting.ID, &setting.Key, &setting.Value)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get setting: %w", err)
	}

	return setting, nil
}

// DeleteSetting removes the setting row at id, no-op when missing
func (s *Storage) DeleteSetting(ctx context.Context, id int64) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM settings WHERE id = ?`, id); err != nil {
		return fmt.Errorf("failed to delete setting: %w", err)
	}
	return nil
}

// ListSettings returns all setting rows ordered by identifier
func (s *Storage) ListSettings(ctx context.Context) ([]*models.Setting, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT id, key, value FROM settings ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("failed to list settings: %w", err)
	}
	defer rows.Close()

	var settings []*models.Setting
	for rows.Next() {
		setting := &models.Setting{}
		if err := rows.Scan(&setting.ID, &setting.Key, &setting.Value); err != nil {
			return nil, fmt.Errorf("failed to scan setting: %w", err)
		}
		settings = append(settings, setting)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate settings: %w", err)
	}

	return settings, nil
}

// CountSettings returns the number of setting rows
func (s *Storage) CountSettings(ctx context.Context) (int, error) {
	var count int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM settings`).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count settings: %w", err)
	}
	return count, nil
}

// ClearSettings removes every setting row
func (s *Storage) ClearSettings(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM settings`); err != nil {
		return fmt.Errorf("failed to clear settings: %w", err)
	}
	return nil
}

// GetSetting returns the value stored under key, or an empty string when
// the key is absent. A missing key is not an error. With duplicate keys
// the highest identifier wins, matching the map fold in AllSettings.
func (s *Storage) GetSetting(ctx context.Context, key string) (string, error) {
	var value string
	err := s.db.QueryRowContext(ctx,
		`SELECT value FROM settings WHERE key = ? ORDER BY id DESC LIMIT 1`, key,
	).Scan(&value)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", nil
		}
		return "", fmt.Errorf("failed to get setting: %w", err)
	}

	return value, nil
}

// UpdateSetting patches the row holding key, inserting a new row when the
// key is absent. Lookup and write run in one transaction so two racing
// upserts cannot both insert. With duplicate keys the row with the
// highest identifier is patched, the same row GetSetting reads.
func (s *Storage) UpdateSetting(ctx context.Context, key, value string) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	var id int64
	err = tx.QueryRowContext(ctx,
		`SELECT id FROM settings WHERE key = ? ORDER BY id DESC LIMIT 1`, key,
	).Scan(&id)

	switch {
	case errors.Is(err, sql.ErrNoRows):
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO settings (key, value) VALUES (?, ?)`, key, value,
		); err != nil {
			return fmt.Errorf("failed to insert setting: %w", err)
		}
	case err != nil:
		return fmt.Errorf("failed to look up setting: %w", err)
	default:
		if _, err := tx.ExecContext(ctx,
			`UPDATE settings SET value = ? WHERE id = ?`, value, id,
		); err != nil {
			return fmt.Errorf("failed to update setting: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit setting upsert: %w", err)
	}

	return nil
}

// AllSettings folds every setting row into a flat key/value map.
// Duplicate keys resolve last-write-wins in identifier order.
func (s *Storage) AllSettings(ctx context.Context) (map[string]string, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT key, value FROM settings ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("failed to read settings: %w", err)
	}
	defer rows.Close()

	settings := make(map[string]string)
	for rows.Next() {
		var key, value string
		if err := rows.Scan(&key, &value); err != nil {
			return nil, fmt.Errorf("failed to scan setting: %w", err)
		}
		settings[key] = value
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate settings: %w", err)
	}

	return settings, nil
}
