package boltdb

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

	_, err = source.AddAppointment(ctx, &models.Appointment{
		ClientID:   clientID,
		ClientName: "سارة أحمد",
		Phone:      "0956789123",
		Date:       "2025-02-14",
		Time:       "14:30",
		Service:    "وجه كامل",
		Provider:   "د. رشا معتوق",
		Status:     models.AppointmentConfirmed,
		CreatedAt:  time.Now(),
	})
	require.NoError(t, err)

	require.NoError(t, source.UpdateSetting(ctx, "clinic_name", "مركز غزل للتجميل"))

	snap, err := source.Snapshot(ctx)
	require.NoError(t, err)

	// Restore into a fresh store and compare
	target := createTestStorage(t)
	require.NoError(t, target.Restore(ctx, snap))

	clients, err := target.ListClients(ctx)
	require.NoError(t, err)
	require.Len(t, clients, 1)
	assert.Equal(t, clientID, clients[0].ID)
	assert.Equal(t, "سارة أحمد", clients[0].Name)

	appointments, err := target.ListAppointments(ctx)
	require.NoError(t, err)
	require.Len(t, appointments, 1)
	assert.Equal(t, "وجه كامل", appointments[0].Service)

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

func TestRestoreWithMissingCollectionsClears(t *testing.T) {
	ctx := context.Background()
	store := createTestStorage(t)

	_, err := store.AddClient(ctx, testClient("سارة أحمد", "0956789123"))
	require.NoError(t, err)

	// A snapshot parsed from a document without collection keys has nil
	// slices; restore must still clear everything.
	require.NoError(t, store.Restore(ctx, &storage.Snapshot{Timestamp: time.Now()}))

	count, err := store.CountClients(ctx)
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestRestoreAdvancesSequencePastRestoredIDs(t *testing.T) {
	ctx := context.Background()
	store := createTestStorage(t)

	snap := &storage.Snapshot{
		Timestamp: time.Now(),
		Clients: []*models.Client{
			{ID: 7, Name: "سارة أحمد", Phone: "0956789123", CreatedAt: time.Now()},
		},
	}
	require.NoError(t, store.Restore(ctx, snap))

	id, err := store.AddClient(ctx, testClient("رنا محمد", "0944556677"))
	require.NoError(t, err)
	assert.Equal(t, int64(8), id)
}
