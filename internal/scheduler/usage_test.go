package scheduler

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ridawn928/hr-connect/internal/device"
	"github.com/ridawn928/hr-connect/internal/models"
	"github.com/ridawn928/hr-connect/internal/queue"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestScheduler(now time.Time, saved *models.SyncConfig) (*Scheduler, *queue.MetadataStoreMock) {
	meta := &queue.MetadataStoreMock{
		SaveBatterySamplesFunc: func(ctx context.Context, samples []models.BatterySample) error {
			return nil
		},
		SaveSyncConfigFunc: func(ctx context.Context, cfg models.SyncConfig) error {
			if saved != nil {
				*saved = cfg
			}
			return nil
		},
	}

	s := New(
		&RunnerMock{},
		meta,
		&device.ConnectivityProviderMock{},
		&device.BatteryProviderMock{},
		models.DefaultSyncConfig(),
		discardLogger(),
		func() time.Time { return now },
	)
	return s, meta
}

func TestRecordUsage(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	s, meta := newTestScheduler(now, nil)
	ctx := context.Background()

	s.recordUsage(ctx,
		device.BatteryState{Level: 0.80},
		device.BatteryState{Level: 0.77})

	assert.InDelta(t, 0.03, s.UsageOver24h(), 1e-9)
	require.Len(t, meta.SaveBatterySamplesCalls(), 1)
}

func TestRecordUsage_SkipsWhileCharging(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	s, meta := newTestScheduler(now, nil)

	s.recordUsage(context.Background(),
		device.BatteryState{Level: 0.80, Charging: true},
		device.BatteryState{Level: 0.85, Charging: true})

	assert.Zero(t, s.UsageOver24h())
	assert.Empty(t, meta.SaveBatterySamplesCalls())
}

func TestRecordUsage_SkipsNonPositiveDelta(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	s, _ := newTestScheduler(now, nil)

	// Уровень не изменился — семпл не пишется.
	s.recordUsage(context.Background(),
		device.BatteryState{Level: 0.80},
		device.BatteryState{Level: 0.80})

	assert.Zero(t, s.UsageOver24h())
}

func TestUsageOver24h_IgnoresOldSamples(t *testing.T) {
	now := time.Date(2025, 6, 2, 12, 0, 0, 0, time.UTC)
	s, _ := newTestScheduler(now, nil)

	s.samples = []models.BatterySample{
		{At: now.Add(-30 * time.Hour), Consumed: 0.10}, // за пределами окна
		{At: now.Add(-2 * time.Hour), Consumed: 0.03},
		{At: now.Add(-1 * time.Hour), Consumed: 0.04},
	}

	assert.InDelta(t, 0.07, s.UsageOver24h(), 1e-9)
}

func TestAdjustSettings_UnderBudgetNoChange(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	s, meta := newTestScheduler(now, nil)

	s.samples = []models.BatterySample{
		{At: now.Add(-time.Hour), Consumed: 0.03}, // бюджет 0.05
	}

	changed, err := s.AdjustSettingsBasedOnUsage(context.Background())
	require.NoError(t, err)
	assert.False(t, changed)
	assert.Empty(t, meta.SaveSyncConfigCalls())
}

func TestAdjustSettings_OverBudgetScalesInterval(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	var saved models.SyncConfig
	s, meta := newTestScheduler(now, &saved)

	// Расход 10% при бюджете 5%: интервал растягивается вдвое.
	s.samples = []models.BatterySample{
		{At: now.Add(-time.Hour), Consumed: 0.10},
	}

	changed, err := s.AdjustSettingsBasedOnUsage(context.Background())
	require.NoError(t, err)
	assert.True(t, changed)

	cfg := s.Config()
	assert.Equal(t, 2*models.DefaultSyncInterval, cfg.SyncInterval)
	assert.True(t, cfg.WifiOnly)
	assert.True(t, cfg.BatterySaving)

	// Новая конфигурация сохранена в metadata store.
	require.Len(t, meta.SaveSyncConfigCalls(), 1)
	assert.Equal(t, cfg.SyncInterval, saved.SyncInterval)
}

func TestAdjustSettings_WritesTunedConfigBack(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	s, _ := newTestScheduler(now, nil)

	var written []models.SyncConfig
	s.OnConfigTuned(func(cfg models.SyncConfig) error {
		written = append(written, cfg)
		return nil
	})

	// Под бюджетом callback молчит.
	s.samples = []models.BatterySample{
		{At: now.Add(-time.Hour), Consumed: 0.03},
	}
	changed, err := s.AdjustSettingsBasedOnUsage(context.Background())
	require.NoError(t, err)
	assert.False(t, changed)
	assert.Empty(t, written)

	// Сверх бюджета подстроенная конфигурация уходит в callback.
	s.samples = []models.BatterySample{
		{At: now.Add(-time.Hour), Consumed: 0.10},
	}
	changed, err = s.AdjustSettingsBasedOnUsage(context.Background())
	require.NoError(t, err)
	assert.True(t, changed)

	require.Len(t, written, 1)
	assert.Equal(t, 2*models.DefaultSyncInterval, written[0].SyncInterval)
	assert.True(t, written[0].WifiOnly)
}

func TestAdjustSettings_TunedCallbackErrorNotFatal(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	s, meta := newTestScheduler(now, nil)

	s.OnConfigTuned(func(cfg models.SyncConfig) error {
		return assert.AnError
	})
	s.samples = []models.BatterySample{
		{At: now.Add(-time.Hour), Consumed: 0.10},
	}

	// Сбой записи файла не отменяет подстройку: metadata-копия уже
	// сохранена.
	changed, err := s.AdjustSettingsBasedOnUsage(context.Background())
	require.NoError(t, err)
	assert.True(t, changed)
	require.Len(t, meta.SaveSyncConfigCalls(), 1)
}

func TestAdjustSettings_ScaledIntervalClamped(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	s, _ := newTestScheduler(now, nil)

	// Гигантский расход не раздувает интервал за MaxInterval.
	s.samples = []models.BatterySample{
		{At: now.Add(-time.Hour), Consumed: 0.90},
	}

	changed, err := s.AdjustSettingsBasedOnUsage(context.Background())
	require.NoError(t, err)
	assert.True(t, changed)
	assert.Equal(t, models.DefaultMaxInterval, s.Config().SyncInterval)
}

func TestTrimSamples(t *testing.T) {
	now := time.Date(2025, 6, 2, 12, 0, 0, 0, time.UTC)
	cutoff := now.Add(-usageWindow)

	samples := []models.BatterySample{
		{At: now.Add(-30 * time.Hour), Consumed: 0.10},
		{At: now.Add(-2 * time.Hour), Consumed: 0.03},
	}

	trimmed := trimSamples(samples, cutoff)
	require.Len(t, trimmed, 1)
	assert.Equal(t, 0.03, trimmed[0].Consumed)
}
