package sqlite

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/OLMA25/guzels-clinic-management-system/internal/models"
	"github.com/OLMA25/guzels-clinic-management-system/internal/storage"
)

func TestSnapshotIncludesEmptyCollections(t *testing.T) {
	ctx := context.Background()
	store := createTestStorage(t)

	snap, err := store.Snapshot(ctx)
	require.NoError(t, err)

	assert.NotNil(t, snap.Clients)
	assert.NotNil(t, snap.Appointments)
	assert.NotNil(t, snap.Services)
	assert.NotNil(t, snap.Invoices)
	assert.NotNil(t, snap.Settings)
	assert.NotNil(t, snap.Providers)
	assert.False(t, snap.Timestamp.IsZero())
}

func TestSnapshotRestoreRoundTrip(t *testing.T) {
	ctx := context.Background()
	source := createTestStorage(t)

	clientID, err := source.AddClient(ctx, testClient("سارة أحمد", "0956789123"))
	require.NoError(t, err)

	_, err = source.AddInvoice(ctx, &models.Invoice{
		ClientID:        clientID,
		ClientName:      "سارة أحمد",
		Phone:           "0956789123",
		Date:            "2025-02-14",
		Time:            "14:30",
		Services:        "وجه كامل",
		PaymentType:     "نقدي",
		PaidAmount:      50000,
		RemainingAmount: 25000,
		TotalAmount:     75000,
		CreatedBy:       "admin",
		ServiceProvider: "د. رشا معتوق",
		CreatedAt:       time.Now(),
	})
	require.NoError(t, err)

	require.NoError(t, source.UpdateSetting(ctx, "clinic_name", "مركز غزل للتجميل"))

	snap, err := source.Snapshot(ctx)
	require.NoError(t, err)

	target := createTestStorage(t)
	require.NoError(t, target.Restore(ctx, snap))

	clients, err := target.ListClients(ctx)
	require.NoError(t, err)
	require.Len(t, clients, 1)
	assert.Equal(t, clientID, clients[0].ID)

	invoices, err := target.ListInvoices(ctx)
	require.NoError(t, err)
	require.Len(t, invoices, 1)
	assert.Equal(t, float64(75000), invoices[0].TotalAmount)

	value, err := target.GetSetting(ctx, "clinic_name")
	require.NoError(t, err)
	assert.Equal(t, "مركز غزل للتجميل", value)
}

func TestRestoreReplacesNotMerges(t *testing.T) {
	ctx := context.Background()
	source := createTestStorage(t)

	_, err := source.AddClient(ctx, testClient("عميل ب", "0911111111"))
	require.NoError(t, err)

	snap, err := source.Snapshot(ctx)
	require.NoError(t, err)

	target := createTestStorage(t)
	_, err = target.AddClient(ctx, testClient("عميل أ", "0922222222"))
	require.NoError(t, err)

	require.NoError(t, target.Restore(ctx, snap))

	clients, err := target.ListClients(ctx)
	require.NoError(t, err)
	require.Len(t, clients, 1)
	assert.Equal(t, "عميل ب", clients[0].Name)
}

func TestRestoreAssignsFreshIDsToZeroRecords(t *testing.T) {
	ctx := context.Background()
	store := createTestStorage(t)

	snap := &storage.Snapshot{
		Timestamp: time.Now(),
		Clients: []*models.Client{
			{ID: 7, Name: "سارة أحمد", Phone: "0956789123", CreatedAt: time.Now()},
			{Name: "رنا محمد", Phone: "0944556677", CreatedAt: time.Now()},
		},
	}
	require.NoError(t, store.Restore(ctx, snap))

	clients, err := store.ListClients(ctx)
	require.NoError(t, err)
	require.Len(t, clients, 2)
	assert.Equal(t, int64(7), clients[0].ID)
	assert.Greater(t, clients[1].ID, int64(7))
}
