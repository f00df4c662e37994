package scheduler

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/ridawn928/hr-connect/internal/device"
	"github.com/ridawn928/hr-connect/internal/models"
)

func TestEvaluate_FixedOrder(t *testing.T) {
	day := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	night := time.Date(2025, 6, 1, 23, 0, 0, 0, time.UTC)

	wifi := device.NetworkStatus{State: device.ConnOnline, Wifi: true}
	cellular := device.NetworkStatus{State: device.ConnOnline, Wifi: false}

	tests := []struct {
		name         string
		mutate       func(cfg *models.SyncConfig)
		net          device.NetworkStatus
		bat          device.BatteryState
		now          time.Time
		wantAction   Action
		wantInterval time.Duration
	}{
		{
			name:       "critical battery forces critical-only",
			mutate:     func(cfg *models.SyncConfig) {},
			net:        wifi,
			bat:        device.BatteryState{Level: 0.10, Charging: false},
			now:        day,
			wantAction: ActionCriticalOnly,
		},
		{
			name:       "critical battery while charging is ignored",
			mutate:     func(cfg *models.SyncConfig) {},
			net:        wifi,
			bat:        device.BatteryState{Level: 0.10, Charging: true},
			now:        day,
			wantAction: ActionPeriodic,
		},
		{
			name:       "critical battery with saving disabled",
			mutate:     func(cfg *models.SyncConfig) { cfg.BatterySaving = false },
			net:        wifi,
			bat:        device.BatteryState{Level: 0.10, Charging: false},
			now:        day,
			wantAction: ActionPeriodic,
		},
		{
			name:         "charging required but absent defers",
			mutate:       func(cfg *models.SyncConfig) { cfg.ChargingOnly = true },
			net:          wifi,
			bat:          device.BatteryState{Level: 0.90, Charging: false},
			now:          day,
			wantAction:   ActionDefer,
			wantInterval: models.DefaultDeferRecheck,
		},
		{
			name:         "wifi required but absent defers",
			mutate:       func(cfg *models.SyncConfig) { cfg.WifiOnly = true },
			net:          cellular,
			bat:          device.BatteryState{Level: 0.90, Charging: false},
			now:          day,
			wantAction:   ActionDefer,
			wantInterval: models.DefaultDeferRecheck,
		},
		{
			// Критическая батарея имеет приоритет над defer-условиями.
			name:       "critical battery wins over missing wifi",
			mutate:     func(cfg *models.SyncConfig) { cfg.WifiOnly = true },
			net:        cellular,
			bat:        device.BatteryState{Level: 0.10, Charging: false},
			now:        day,
			wantAction: ActionCriticalOnly,
		},
		{
			name:         "low battery stretches interval",
			mutate:       func(cfg *models.SyncConfig) {},
			net:          wifi,
			bat:          device.BatteryState{Level: 0.25, Charging: false},
			now:          day,
			wantAction:   ActionPeriodic,
			wantInterval: models.DefaultBatterySavingInterval,
		},
		{
			name:         "night window uses night interval",
			mutate:       func(cfg *models.SyncConfig) {},
			net:          wifi,
			bat:          device.BatteryState{Level: 0.90, Charging: false},
			now:          night,
			wantAction:   ActionPeriodic,
			wantInterval: models.DefaultNightInterval,
		},
		{
			// Низкая батарея проверяется раньше ночного окна.
			name:         "low battery wins over night window",
			mutate:       func(cfg *models.SyncConfig) {},
			net:          wifi,
			bat:          device.BatteryState{Level: 0.25, Charging: false},
			now:          night,
			wantAction:   ActionPeriodic,
			wantInterval: models.DefaultBatterySavingInterval,
		},
		{
			name:         "night mode disabled falls through",
			mutate:       func(cfg *models.SyncConfig) { cfg.NightModeEnabled = false },
			net:          wifi,
			bat:          device.BatteryState{Level: 0.90, Charging: false},
			now:          night,
			wantAction:   ActionPeriodic,
			wantInterval: models.DefaultSyncInterval,
		},
		{
			name:         "normal cadence",
			mutate:       func(cfg *models.SyncConfig) {},
			net:          wifi,
			bat:          device.BatteryState{Level: 0.90, Charging: false},
			now:          day,
			wantAction:   ActionPeriodic,
			wantInterval: models.DefaultSyncInterval,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := models.DefaultSyncConfig()
			tt.mutate(&cfg)

			decision := Evaluate(cfg, tt.net, tt.bat, tt.now)
			assert.Equal(t, tt.wantAction, decision.Action)
			if tt.wantInterval != 0 {
				assert.Equal(t, tt.wantInterval, decision.Interval)
			}
		})
	}
}

func TestEvaluate_Pure(t *testing.T) {
	cfg := models.DefaultSyncConfig()
	net := device.NetworkStatus{State: device.ConnOnline, Wifi: true}
	bat := device.BatteryState{Level: 0.5, Charging: false}
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	first := Evaluate(cfg, net, bat, now)
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, Evaluate(cfg, net, bat, now))
	}
}
