package sqlite

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/OLMA25/guzels-clinic-management-system/internal/storage"
)

func TestAddGetUpdateDeleteClient(t *testing.T) {
	ctx := context.Background()
	store := createTestStorage(t)

	client := testClient("سارة أحمد", "0956789123")

	id, err := store.AddClient(ctx, client)
	require.NoError(t, err)
	assert.Equal(t, int64(1), id)

	got, err := store.GetClient(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, client.Name, got.Name)
	assert.Equal(t, client.Phone, got.Phone)
	assert.Equal(t, id, got.ID)

	got.Notes = "تفضل موعد بعد الظهر"
	require.NoError(t, store.UpdateClient(ctx, id, got))

	updated, err := store.GetClient(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "تفضل موعد بعد الظهر", updated.Notes)

	require.NoError(t, store.DeleteClient(ctx, id))

	_, err = store.GetClient(ctx, id)
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestGetClient_NotFound(t *testing.T) {
	ctx := context.Background()
	store := createTestStorage(t)

	_, err := store.GetClient(ctx, 42)
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestUpdateClient_NotFound(t *testing.T) {
	ctx := context.Background()
	store := createTestStorage(t)

	err := store.UpdateClient(ctx, 42, testClient("سارة أحمد", "0956789123"))
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestDeleteClient_MissingIsNoOp(t *testing.T) {
	ctx := context.Background()
	store := createTestStorage(t)

	assert.NoError(t, store.DeleteClient(ctx, 42))
}

func TestClientIDsNotReusedAfterDelete(t *testing.T) {
	ctx := context.Background()
	store := createTestStorage(t)

	first, err := store.AddClient(ctx, testClient("سارة أحمد", "0956789123"))
	require.NoError(t, err)

	require.NoError(t, store.DeleteClient(ctx, first))

	// AUTOINCREMENT keeps the sequence monotone even after deletes
	second, err := store.AddClient(ctx, testClient("رنا محمد", "0944556677"))
	require.NoError(t, err)
	assert.Greater(t, second, first)
}

func TestListClientsOrderedByID(t *testing.T) {
	ctx := context.Background()
	store := createTestStorage(t)

	names := []string{"سارة أحمد", "رنا محمد", "نور حسن"}
	for _, name := range names {
		_, err := store.AddClient(ctx, testClient(name, "0900000000"))
		require.NoError(t, err)
	}

	clients, err := store.ListClients(ctx)
	require.NoError(t, err)
	require.Len(t, clients, 3)
	for i, client := range clients {
		assert.Equal(t, int64(i+1), client.ID)
		assert.Equal(t, names[i], client.Name)
	}
}

func TestClearClients(t *testing.T) {
	ctx := context.Background()
	store := createTestStorage(t)

	_, err := store.AddClient(ctx, testClient("سارة أحمد", "0956789123"))
	require.NoError(t, err)

	require.NoError(t, store.ClearClients(ctx))

	count, err := store.CountClients(ctx)
	require.NoError(t, err)
	assert.Zero(t, count)
}
