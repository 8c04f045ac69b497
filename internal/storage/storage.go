package storage

import (
	"context"

	"github.com/OLMA25/guzels-clinic-management-system/internal/models"
)

// ClientStore defines CRUD over the clients collection. List returns rows
// ordered by identifier. Add assigns and returns the new identifier.
type ClientStore interface {
	AddClient(ctx context.Context, client *models.Client) (int64, error)

	// GetClient returns ErrNotFound if no client exists at id
	GetClient(ctx context.Context, id int64) (*models.Client, error)

	// UpdateClient replaces the record at id, keeping the identifier.
	// Returns ErrNotFound if no client exists at id.
	UpdateClient(ctx context.Context, id int64, client *models.Client) error

	// DeleteClient removes the record at id; no-op if it does not exist
	DeleteClient(ctx context.Context, id int64) error

	ListClients(ctx context.Context) ([]*models.Client, error)
	CountClients(ctx context.Context) (int, error)
	ClearClients(ctx context.Context) error
}

// AppointmentStore defines CRUD over the appointments collection.
type AppointmentStore interface {
	AddAppointment(ctx context.Context, appointment *models.Appointment) (int64, error)
	GetAppointment(ctx context.Context, id int64) (*models.Appointment, error)
	UpdateAppointment(ctx context.Context, id int64, appointment *models.Appointment) error
	DeleteAppointment(ctx context.Context, id int64) error
	ListAppointments(ctx context.Context) ([]*models.Appointment, error)
	CountAppointments(ctx context.Context) (int, error)
	ClearAppointments(ctx context.Context) error
}

// ServiceStore defines CRUD over the price-list collection.
type ServiceStore interface {
	AddService(ctx context.Context, service *models.Service) (int64, error)
	GetService(ctx context.Context, id int64) (*models.Service, error)
	UpdateService(ctx context.Context, id int64, service *models.Service) error
	DeleteService(ctx context.Context, id int64) error
	ListServices(ctx context.Context) ([]*models.Service, error)
	CountServices(ctx context.Context) (int, error)
	ClearServices(ctx context.Context) error
}

// InvoiceStore defines CRUD over the invoices collection. The store does
// not validate the paid/remaining/total relation; that is the caller's
// contract (see the clinic service).
type InvoiceStore interface {
	AddInvoice(ctx context.Context, invoice *models.Invoice) (int64, error)
	GetInvoice(ctx context.Context, id int64) (*models.Invoice, error)
	UpdateInvoice(ctx context.Context, id int64, invoice *models.Invoice) error
	DeleteInvoice(ctx context.Context, id int64) error
	ListInvoices(ctx context.Context) ([]*models.Invoice, error)
	CountInvoices(ctx context.Context) (int, error)
	ClearInvoices(ctx context.Context) error
}

// ProviderStore defines CRUD over the providers collection.
type ProviderStore interface {
	AddProvider(ctx context.Context, provider *models.Provider) (int64, error)
	GetProvider(ctx context.Context, id int64) (*models.Provider, error)
	UpdateProvider(ctx context.Context, id int64, provider *models.Provider) error
	DeleteProvider(ctx context.Context, id int64) error
	ListProviders(ctx context.Context) ([]*models.Provider, error)
	CountProviders(ctx context.Context) (int, error)
	ClearProviders(ctx context.Context) error
}

// SettingStore defines CRUD plus key-based accessors over the settings
// collection. The underlying engine has no unique-key upsert, so
// UpdateSetting implements lookup-then-patch-or-insert itself.
type SettingStore interface {
	AddSetting(ctx context.Context, setting *models.Setting) (int64, error)
	GetSettingByID(ctx context.Context, id int64) (*models.Setting, error)
	DeleteSetting(ctx context.Context, id int64) error
	ListSettings(ctx context.Context) ([]*models.Setting, error)
	CountSettings(ctx context.Context) (int, error)
	ClearSettings(ctx context.Context) error

	// GetSetting returns the value stored under key, or an empty string
	// when the key is absent. It never fails on a missing key.
	GetSetting(ctx context.Context, key string) (string, error)

	// UpdateSetting patches the row holding key, inserting one if absent.
	// Should duplicate key rows exist, the one with the highest
	// identifier is patched, matching the row GetSetting reads.
	UpdateSetting(ctx context.Context, key, value string) error

	// AllSettings folds every row into a flat key/value map.
	// Duplicate keys resolve last-write-wins in iteration order.
	AllSettings(ctx context.Context) (map[string]string, error)
}

// SnapshotStore captures and replaces the whole store.
type SnapshotStore interface {
	// Snapshot reads all six collections in one consistent view
	Snapshot(ctx context.Context) (*Snapshot, error)

	// Restore clears all six collections and inserts the snapshot
	// contents, identifiers included, as a single atomic replace.
	// Nil collection slices mean "nothing to insert" for that collection.
	Restore(ctx context.Context, snap *Snapshot) error
}

// Store is the full persistence surface the application is built on.
type Store interface {
	ClientStore
	AppointmentStore
	ServiceStore
	InvoiceStore
	ProviderStore
	SettingStore
	SnapshotStore

	Close() error
}
