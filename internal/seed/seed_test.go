package seed

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/OLMA25/guzels-clinic-management-system/internal/storage/boltdb"
)

func createTestStorage(t *testing.T) *boltdb.Storage {
	t.Helper()

	store, err := boltdb.New(context.Background(), filepath.Join(t.TempDir(), "clinic_test.db"))
	require.NoError(t, err)

	t.Cleanup(func() {
		require.NoError(t, store.Close())
	})

	return store
}

func TestInitializeSeedsEmptyStore(t *testing.T) {
	ctx := context.Background()
	store := createTestStorage(t)

	require.NoError(t, Initialize(ctx, store))

	services, err := store.CountServices(ctx)
	require.NoError(t, err)
	assert.Equal(t, 11, services)

	clients, err := store.CountClients(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, clients)

	providers, err := store.CountProviders(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, providers)

	settings, err := store.CountSettings(ctx)
	require.NoError(t, err)
	assert.Equal(t, len(DefaultSettings()), settings)

	// Appointments and invoices never get seed rows
	appointments, err := store.CountAppointments(ctx)
	require.NoError(t, err)
	assert.Zero(t, appointments)

	invoices, err := store.CountInvoices(ctx)
	require.NoError(t, err)
	assert.Zero(t, invoices)
}

func TestInitializeIsIdempotent(t *testing.T) {
	ctx := context.Background()
	store := createTestStorage(t)

	require.NoError(t, Initialize(ctx, store))
	require.NoError(t, Initialize(ctx, store))

	services, err := store.CountServices(ctx)
	require.NoError(t, err)
	assert.Equal(t, 11, services)

	clients, err := store.CountClients(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, clients)
}

func TestInitializeDoesNotRepairPartialCollection(t *testing.T) {
	ctx := context.Background()
	store := createTestStorage(t)

	require.NoError(t, Initialize(ctx, store))

	// Operator deletes part of the price list; the next startup must not
	// re-add it.
	services, err := store.ListServices(ctx)
	require.NoError(t, err)
	require.NoError(t, store.DeleteService(ctx, services[0].ID))

	require.NoError(t, Initialize(ctx, store))

	count, err := store.CountServices(ctx)
	require.NoError(t, err)
	assert.Equal(t, 10, count)
}

func TestInitializeRefillsClearedCollection(t *testing.T) {
	ctx := context.Background()
	store := createTestStorage(t)

	require.NoError(t, Initialize(ctx, store))
	require.NoError(t, store.ClearServices(ctx))
	require.NoError(t, Initialize(ctx, store))

	count, err := store.CountServices(ctx)
	require.NoError(t, err)
	assert.Equal(t, 11, count)
}

func TestDefaultSettingsTemplatesCarryPlaceholders(t *testing.T) {
	defaults := DefaultSettings()

	for _, key := range []string{"whatsapp_template", "email_template"} {
		template := defaults[key]
		assert.Contains(t, template, "{client_name}", key)
		assert.Contains(t, template, "{clinic_name}", key)
		assert.Contains(t, template, "{appointment_date}", key)
		assert.Contains(t, template, "{appointment_time}", key)
	}
}
