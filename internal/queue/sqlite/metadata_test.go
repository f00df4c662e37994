package sqlite

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ridawn928/hr-connect/internal/models"
)

func TestMetadata_WindowStart(t *testing.T) {
	store := newTestStorage(t)
	ctx := context.Background()

	start, err := store.WindowStart(ctx)
	require.NoError(t, err)
	assert.True(t, start.IsZero())

	at := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	require.NoError(t, store.SaveWindowStart(ctx, at))

	start, err = store.WindowStart(ctx)
	require.NoError(t, err)
	assert.Equal(t, at.UnixNano(), start.UnixNano())

	// Повторная запись перезаписывает значение (upsert).
	later := at.Add(24 * time.Hour)
	require.NoError(t, store.SaveWindowStart(ctx, later))

	start, err = store.WindowStart(ctx)
	require.NoError(t, err)
	assert.Equal(t, later.UnixNano(), start.UnixNano())
}

func TestMetadata_BatterySamples(t *testing.T) {
	store := newTestStorage(t)
	ctx := context.Background()

	samples, err := store.BatterySamples(ctx)
	require.NoError(t, err)
	assert.Empty(t, samples)

	saved := []models.BatterySample{
		{At: time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC), Consumed: 0.04},
	}
	require.NoError(t, store.SaveBatterySamples(ctx, saved))

	samples, err = store.BatterySamples(ctx)
	require.NoError(t, err)
	require.Len(t, samples, 1)
	assert.Equal(t, 0.04, samples[0].Consumed)
}

func TestMetadata_SyncConfig(t *testing.T) {
	store := newTestStorage(t)
	ctx := context.Background()

	cfg, err := store.SyncConfig(ctx)
	require.NoError(t, err)
	assert.Nil(t, cfg)

	saved := models.DefaultSyncConfig()
	saved.WifiOnly = true
	saved.SyncInterval = 4 * time.Hour
	require.NoError(t, store.SaveSyncConfig(ctx, saved))

	cfg, err = store.SyncConfig(ctx)
	require.NoError(t, err)
	require.NotNil(t, cfg)
	assert.True(t, cfg.WifiOnly)
	assert.Equal(t, 4*time.Hour, cfg.SyncInterval)
}
