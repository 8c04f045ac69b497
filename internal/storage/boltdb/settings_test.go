package boltdb

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/OLMA25/guzels-clinic-management-system/internal/models"
)

func TestUpdateSettingUpserts(t *testing.T) {
	ctx := context.Background()
	store := createTestStorage(t)

	require.NoError(t, store.UpdateSetting(ctx, "clinic_name", "a"))
	require.NoError(t, store.UpdateSetting(ctx, "clinic_name", "b"))

	value, err := store.GetSetting(ctx, "clinic_name")
	require.NoError(t, err)
	assert.Equal(t, "b", value)

	// The second update patched the row instead of inserting another
	count, err := store.CountSettings(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestGetSetting_MissingReturnsEmpty(t *testing.T) {
	ctx := context.Background()
	store := createTestStorage(t)

	value, err := store.GetSetting(ctx, "does_not_exist")
	require.NoError(t, err)
	assert.Equal(t, "", value)
}

func TestAllSettings(t *testing.T) {
	ctx := context.Background()
	store := createTestStorage(t)

	require.NoError(t, store.UpdateSetting(ctx, "clinic_name", "مركز غزل للتجميل"))
	require.NoError(t, store.UpdateSetting(ctx, "theme", "dark"))

	settings, err := store.AllSettings(ctx)
	require.NoError(t, err)
	assert.Equal(t, map[string]string{
		"clinic_name": "مركز غزل للتجميل",
		"theme":       "dark",
	}, settings)
}

func TestUpdateSetting_DuplicateKeyPatchesNewestRow(t *testing.T) {
	ctx := context.Background()
	store := createTestStorage(t)

	_, err := store.AddSetting(ctx, &models.Setting{Key: "theme", Value: "light"})
	require.NoError(t, err)
	_, err = store.AddSetting(ctx, &models.Setting{Key: "theme", Value: "dark"})
	require.NoError(t, err)

	// The upsert must patch the row GetSetting reads, not the stale
	// duplicate with the lower identifier.
	require.NoError(t, store.UpdateSetting(ctx, "theme", "blue"))

	value, err := store.GetSetting(ctx, "theme")
	require.NoError(t, err)
	assert.Equal(t, "blue", value)
}

func TestAllSettings_DuplicateKeyLastWriteWins(t *testing.T) {
	ctx := context.Background()
	store := createTestStorage(t)

	// AddSetting does not enforce key uniqueness; the fold must favor
	// the row with the higher identifier.
	_, err := store.AddSetting(ctx, &models.Setting{Key: "theme", Value: "light"})
	require.NoError(t, err)
	_, err = store.AddSetting(ctx, &models.Setting{Key: "theme", Value: "dark"})
	require.NoError(t, err)

	settings, err := store.AllSettings(ctx)
	require.NoError(t, err)
	assert.Equal(t, "dark", settings["theme"])

	value, err := store.GetSetting(ctx, "theme")
	require.NoError(t, err)
	assert.Equal(t, "dark", value)
}
