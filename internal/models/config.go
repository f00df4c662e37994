package models

import "time"

// Default scheduler intervals and thresholds.
const (
	DefaultSyncInterval          = 1 * time.Hour
	DefaultBatterySavingInterval = 3 * time.Hour
	DefaultNightInterval         = 6 * time.Hour
	DefaultDeferRecheck          = 30 * time.Minute
	DefaultMinInterval           = 15 * time.Minute
	DefaultMaxInterval           = 24 * time.Hour

	// DefaultLowBattery включает режим энергосбережения.
	DefaultLowBattery = 0.30
	// DefaultCriticalBattery restricts sync to critical-priority operations.
	DefaultCriticalBattery = 0.15
	// DefaultUsageBudget is the rolling-24h battery share sync may consume
	// before the scheduler throttles itself.
	DefaultUsageBudget = 0.05
)

// SyncConfig is the user/policy configuration owned by the Adaptive
// Scheduler. It is persisted in the engine metadata store and may be
// rewritten by the scheduler's usage feedback loop.
type SyncConfig struct {
	SyncInterval          time.Duration `json:"sync_interval"`
	BatterySavingInterval time.Duration `json:"battery_saving_interval"`
	NightInterval         time.Duration `json:"night_interval"`
	DeferRecheck          time.Duration `json:"defer_recheck"`
	MinInterval           time.Duration `json:"min_interval"`
	MaxInterval           time.Duration `json:"max_interval"`

	// HighPriorityTypes lists aggregate types whose mutations should be
	// enqueued as high priority by the feature layer.
	HighPriorityTypes []string `json:"high_priority_types,omitempty"`

	LowBatteryThreshold      float64 `json:"low_battery_threshold"`
	CriticalBatteryThreshold float64 `json:"critical_battery_threshold"`
	UsageBudget              float64 `json:"usage_budget"`

	// Night window hours in local time, [NightStartHour, NightEndHour),
	// possibly wrapping midnight.
	NightStartHour int `json:"night_start_hour"`
	NightEndHour   int `json:"night_end_hour"`

	WifiOnly         bool `json:"wifi_only"`
	ChargingOnly     bool `json:"charging_only"`
	BatterySaving    bool `json:"battery_saving"`
	NightModeEnabled bool `json:"night_mode_enabled"`
}

// DefaultSyncConfig returns the configuration used before the user or the
// usage feedback loop changes anything.
func DefaultSyncConfig() SyncConfig {
	return SyncConfig{
		SyncInterval:             DefaultSyncInterval,
		BatterySavingInterval:    DefaultBatterySavingInterval,
		NightInterval:            DefaultNightInterval,
		DeferRecheck:             DefaultDeferRecheck,
		MinInterval:              DefaultMinInterval,
		MaxInterval:              DefaultMaxInterval,
		LowBatteryThreshold:      DefaultLowBattery,
		CriticalBatteryThreshold: DefaultCriticalBattery,
		UsageBudget:              DefaultUsageBudget,
		NightStartHour:           22,
		NightEndHour:             6,
		BatterySaving:            true,
		NightModeEnabled:         true,
	}
}

// Normalize fills zero fields with defaults and clamps intervals into
// [MinInterval, MaxInterval].
func (c *SyncConfig) Normalize() {
	def := DefaultSyncConfig()
	if c.SyncInterval <= 0 {
		c.SyncInterval = def.SyncInterval
	}
	if c.BatterySavingInterval <= 0 {
		c.BatterySavingInterval = def.BatterySavingInterval
	}
	if c.NightInterval <= 0 {
		c.NightInterval = def.NightInterval
	}
	if c.DeferRecheck <= 0 {
		c.DeferRecheck = def.DeferRecheck
	}
	if c.MinInterval <= 0 {
		c.MinInterval = def.MinInterval
	}
	if c.MaxInterval <= 0 {
		c.MaxInterval = def.MaxInterval
	}
	if c.LowBatteryThreshold <= 0 {
		c.LowBatteryThreshold = def.LowBatteryThreshold
	}
	if c.CriticalBatteryThreshold <= 0 {
		c.CriticalBatteryThreshold = def.CriticalBatteryThreshold
	}
	if c.UsageBudget <= 0 {
		c.UsageBudget = def.UsageBudget
	}
	c.SyncInterval = c.ClampInterval(c.SyncInterval)
	c.BatterySavingInterval = c.ClampInterval(c.BatterySavingInterval)
	c.NightInterval = c.ClampInterval(c.NightInterval)
}

// ClampInterval bounds an interval into the configured range.
func (c *SyncConfig) ClampInterval(d time.Duration) time.Duration {
	if c.MinInterval > 0 && d < c.MinInterval {
		return c.MinInterval
	}
	if c.MaxInterval > 0 && d > c.MaxInterval {
		return c.MaxInterval
	}
	return d
}

// InNightWindow reports whether the given local time falls inside the
// configured night window, handling windows that wrap midnight.
func (c *SyncConfig) InNightWindow(t time.Time) bool {
	h := t.Hour()
	start, end := c.NightStartHour, c.NightEndHour
	if start == end {
		return false
	}
	if start < end {
		return h >= start && h < end
	}
	// Окно переходит через полночь, например 22 → 6.
	return h >= start || h < end
}

// BatterySample is one observation of battery consumed by a sync run.
// The scheduler keeps a rolling 24h window of samples.
type BatterySample struct {
	At       time.Time `json:"at"`
	Consumed float64   `json:"consumed"` // fraction of full charge, 0..1
}

// SyncResult is the aggregate tally of one executor run.
type SyncResult struct {
	Total      int `json:"total"`
	Succeeded  int `json:"succeeded"`
	Failed     int `json:"failed"`
	Conflicted int `json:"conflicted"`
	// Retried counts operations returned to pending with a backoff gate.
	Retried int `json:"retried"`
}

// Clean reports whether the cycle finished with every operation applied:
// nothing failed, conflicted, or deferred for retry. Only a clean cycle
// resets the offline window.
func (r *SyncResult) Clean() bool {
	return r.Failed == 0 && r.Conflicted == 0 && r.Retried == 0
}
