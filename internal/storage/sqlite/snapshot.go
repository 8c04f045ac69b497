package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/OLMA25/guzels-clinic-management-system/internal/models"
	"github.com/OLMA25/guzels-clinic-management-system/internal/storage"
)

// Snapshot reads all six collections inside one transaction, so the
// result is a consistent view. Empty collections come back as empty
// slices, never nil, so the backup file always carries all six arrays.
func (s *Storage) Snapshot(ctx context.Context) (*storage.Snapshot, error) {
	tx, err := s.db.BeginTx(ctx, &sql.TxOptions{ReadOnly: true})
	if err != nil {
		return nil, fmt.Errorf("failed to begin snapshot transaction: %w", err)
	}
	defer tx.Rollback()

	snap := &storage.Snapshot{
		Timestamp:    time.Now(),
		Clients:      []*models.Client{},
		Appointments: []*models.Appointment{},
		Services:     []*models.Service{},
		Invoices:     []*models.Invoice{},
		Settings:     []*models.Setting{},
		Providers:    []*models.Provider{},
	}

	if err := snapshotClients(ctx, tx, snap); err != nil {
		return nil, err
	}
	if err := snapshotAppointments(ctx, tx, snap); err != nil {
		return nil, err
	}
	if err := snapshotServices(ctx, tx, snap); err != nil {
		return nil, err
	}
	if err := snapshotInvoices(ctx, tx, snap); err != nil {
		return nil, err
	}
	if err := snapshotSettings(ctx, tx, snap); err != nil {
		return nil, err
	}
	if err := snapshotProviders(ctx, tx, snap); err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit snapshot transaction: %w", err)
	}

	return snap, nil
}

func snapshotClients(ctx context.Context, tx *sql.Tx, snap *storage.Snapshot) error {
	rows, err := tx.QueryContext(ctx, `
		SELECT id, name, phone, email, hair_type, hair_color, skin_type, allergies,
			current_sessions, remaining_sessions, most_requested_services, remaining_payments,
			notes, created_at
		FROM clients ORDER BY id`)
	if err != nil {
		return fmt.Errorf("failed to snapshot clients: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		c := &models.Client{}
		if err := rows.Scan(&c.ID, &c.Name, &c.Phone, &c.Email, &c.HairType, &c.HairColor,
			&c.SkinType, &c.Allergies, &c.CurrentSessions, &c.RemainingSessions,
			&c.MostRequestedServices, &c.RemainingPayments, &c.Notes, &c.CreatedAt); err != nil {
			return fmt.Errorf("failed to scan client: %w", err)
		}
		snap.Clients = append(snap.Clients, c)
	}
	return rows.Err()
}

func snapshotAppointments(ctx context.Context, tx *sql.Tx, snap *storage.Snapshot) error {
	rows, err := tx.QueryContext(ctx, `
		SELECT id, client_id, client, phone, email, date, time, service, provider,
			notes, status, remaining_payments, created_at
		FROM appointments ORDER BY id`)
	if err != nil {
		return fmt.Errorf("failed to snapshot appointments: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		a := &models.Appointment{}
		if err := rows.Scan(&a.ID, &a.ClientID, &a.ClientName, &a.Phone, &a.Email, &a.Date,
			&a.Time, &a.Service, &a.Provider, &a.Notes, &a.Status,
			&a.RemainingPayments, &a.CreatedAt); err != nil {
			return fmt.Errorf("failed to scan appointment: %w", err)
		}
		snap.Appointments = append(snap.Appointments, a)
	}
	return rows.Err()
}

func snapshotServices(ctx context.Context, tx *sql.Tx, snap *storage.Snapshot) error {
	rows, err := tx.QueryContext(ctx,
		`SELECT id, name, price, dynamic_price, created_at FROM services ORDER BY id`)
	if err != nil {
		return fmt.Errorf("failed to snapshot services: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		sv := &models.Service{}
		if err := rows.Scan(&sv.ID, &sv.Name, &sv.Price, &sv.DynamicPrice, &sv.CreatedAt); err != nil {
			return fmt.Errorf("failed to scan service: %w", err)
		}
		snap.Services = append(snap.Services, sv)
	}
	return rows.Err()
}

func snapshotInvoices(ctx context.Context, tx *sql.Tx, snap *storage.Snapshot) error {
	rows, err := tx.QueryContext(ctx, `
		SELECT id, client_id, client, phone, date, time, services, payment_type,
			paid_amount, remaining_amount, created_by, service_provider, total_amount, created_at
		FROM invoices ORDER BY id`)
	if err != nil {
		return fmt.Errorf("failed to snapshot invoices: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		inv := &models.Invoice{}
		if err := rows.Scan(&inv.ID, &inv.ClientID, &inv.ClientName, &inv.Phone, &inv.Date,
			&inv.Time, &inv.Services, &inv.PaymentType, &inv.PaidAmount, &inv.RemainingAmount,
			&inv.CreatedBy, &inv.ServiceProvider, &inv.TotalAmount, &inv.CreatedAt); err != nil {
			return fmt.Errorf("failed to scan invoice: %w", err)
		}
		snap.Invoices = append(snap.Invoices, inv)
	}
	return rows.Err()
}

func snapshotSettings(ctx context.Context, tx *sql.Tx, snap *storage.Snapshot) error {
	rows, err := tx.QueryContext(ctx, `SELECT id, key, value FROM settings ORDER BY id`)
	if err != nil {
		return fmt.Errorf("failed to snapshot settings: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		st := &models.Setting{}
		if err := rows.Scan(&st.ID, &st.Key, &st.Value); err != nil {
			return fmt.Errorf("failed to scan setting: %w", err)
		}
		snap.Settings = append(snap.Settings, st)
	}
	return rows.Err()
}

func snapshotProviders(ctx context.Context, tx *sql.Tx, snap *storage.Snapshot) error {
	rows, err := tx.QueryContext(ctx,
		`SELECT id, name, phone, email, role, active, created_at FROM providers ORDER BY id`)
	if err != nil {
		return fmt.Errorf("failed to snapshot providers: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		p := &models.Provider{}
		if err := rows.Scan(&p.ID, &p.Name, &p.Phone, &p.Email, &p.Role, &p.Active, &p.CreatedAt); err != nil {
			return fmt.Errorf("failed to scan provider: %w", err)
		}
		snap.Providers = append(snap.Providers, p)
	}
	return rows.Err()
}

// Restore replaces the entire store with the snapshot contents inside one
// transaction; a failure anywhere rolls the whole replace back. Snapshot
// identifiers are inserted verbatim (AUTOINCREMENT advances its sequence
// past them, so later inserts cannot collide); records carrying a zero
// identifier get a fresh one.
func (s *Storage) Restore(ctx context.Context, snap *storage.Snapshot) error {
	if snap == nil {
		return fmt.Errorf("nil snapshot")
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin restore transaction: %w", err)
	}
	defer tx.Rollback()

	tables := []string{"clients", "appointments", "services", "invoices", "settings", "providers"}
	for _, table := range tables {
		if _, err := tx.ExecContext(ctx, `DELETE FROM `+table); err != nil {
			return fmt.Errorf("failed to clear %s: %w", table, err)
		}
	}

	for _, c := range snap.Clients {
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO clients (id, name, phone, email, hair_type, hair_color, skin_type,
				allergies, current_sessions, remaining_sessions, most_requested_services,
				remaining_payments, notes, created_at)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			nullableID(c.ID), c.Name, c.Phone, c.Email, c.HairType, c.HairColor, c.SkinType,
			c.Allergies, c.CurrentSessions, c.RemainingSessions, c.MostRequestedServices,
			c.RemainingPayments, c.Notes, c.CreatedAt,
		); err != nil {
			return fmt.Errorf("failed to restore client: %w", err)
		}
	}

	for _, a := range snap.Appointments {
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO appointments (id, client_id, client, phone, email, date, time,
				service, provider, notes, status, remaining_payments, created_at)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			nullableID(a.ID), a.ClientID, a.ClientName, a.Phone, a.Email, a.Date, a.Time,
			a.Service, a.Provider, a.Notes, a.Status, a.RemainingPayments, a.CreatedAt,
		); err != nil {
			return fmt.Errorf("failed to restore appointment: %w", err)
		}
	}

	for _, sv := range snap.Services {
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO services (id, name, price, dynamic_price, created_at)
			VALUES (?, ?, ?, ?, ?)`,
			nullableID(sv.ID), sv.Name, sv.Price, sv.DynamicPrice, sv.CreatedAt,
		); err != nil {
			return fmt.Errorf("failed to restore service: %w", err)
		}
	}

	for _, inv := range snap.Invoices {
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO invoices (id, client_id, client, phone, date, time, services,
				payment_type, paid_amount, remaining_amount, created_by, service_provider,
				total_amount, created_at)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			nullableID(inv.ID), inv.ClientID, inv.ClientName, inv.Phone, inv.Date, inv.Time,
			inv.Services, inv.PaymentType, inv.PaidAmount, inv.RemainingAmount, inv.CreatedBy,
			inv.ServiceProvider, inv.TotalAmount, inv.CreatedAt,
		); err != nil {
			return fmt.Errorf("failed to restore invoice: %w", err)
		}
	}

	for _, st := range snap.Settings {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO settings (id, key, value) VALUES (?, ?, ?)`,
			nullableID(st.ID), st.Key, st.Value,
		); err != nil {
			return fmt.Errorf("failed to restore setting: %w", err)
		}
	}

	for _, p := range snap.Providers {
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO providers (id, name, phone, email, role, active, created_at)
			VALUES (?, ?, ?, ?, ?, ?, ?)`,
			nullableID(p.ID), p.Name, p.Phone, p.Email, p.Role, p.Active, p.CreatedAt,
		); err != nil {
			return fmt.Errorf("failed to restore provider: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit restore transaction: %w", err)
	}

	return nil
}

// nullableID maps a zero identifier to NULL so AUTOINCREMENT assigns one
func nullableID(id int64) any {
	if id == 0 {
		return nil
	}
	return id
}
