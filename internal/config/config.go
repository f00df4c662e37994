// Package config loads and saves the sync configuration YAML file. The
// metadata store holds the authoritative runtime copy; the file seeds it
// and lets operators edit settings by hand.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/ridawn928/hr-connect/internal/models"
)

// fileConfig is the YAML representation: durations as strings ("1h30m").
type fileConfig struct {
	SyncInterval          string   `yaml:"sync_interval,omitempty"`
	BatterySavingInterval string   `yaml:"battery_saving_interval,omitempty"`
	NightInterval         string   `yaml:"night_interval,omitempty"`
	DeferRecheck          string   `yaml:"defer_recheck,omitempty"`
	MinInterval           string   `yaml:"min_interval,omitempty"`
	MaxInterval           string   `yaml:"max_interval,omitempty"`
	HighPriorityTypes     []string `yaml:"high_priority_types,omitempty"`

	LowBatteryThreshold      float64 `yaml:"low_battery_threshold,omitempty"`
	CriticalBatteryThreshold float64 `yaml:"critical_battery_threshold,omitempty"`
	UsageBudget              float64 `yaml:"usage_budget,omitempty"`

	NightStartHour int `yaml:"night_start_hour,omitempty"`
	NightEndHour   int `yaml:"night_end_hour,omitempty"`

	// Указатели отличают «не задано» от явного false: пропущенный флаг
	// не должен сбрасывать включенный по умолчанию режим.
	WifiOnly         *bool `yaml:"wifi_only"`
	ChargingOnly     *bool `yaml:"charging_only"`
	BatterySaving    *bool `yaml:"battery_saving"`
	NightModeEnabled *bool `yaml:"night_mode_enabled"`
}

// Load reads the sync configuration from a YAML file. A missing file is
// not an error: defaults are returned.
func Load(path string) (models.SyncConfig, error) {
	cfg := models.DefaultSyncConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("failed to read config file: %w", err)
	}

	var fc fileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return cfg, fmt.Errorf("failed to parse config file: %w", err)
	}

	if err := applyFile(&cfg, fc); err != nil {
		return cfg, err
	}
	cfg.Normalize()
	return cfg, nil
}

// Save writes the configuration atomically (tmp + rename).
func Save(path string, cfg models.SyncConfig) error {
	fc := fileConfig{
		SyncInterval:             cfg.SyncInterval.String(),
		BatterySavingInterval:    cfg.BatterySavingInterval.String(),
		NightInterval:            cfg.NightInterval.String(),
		DeferRecheck:             cfg.DeferRecheck.String(),
		MinInterval:              cfg.MinInterval.String(),
		MaxInterval:              cfg.MaxInterval.String(),
		HighPriorityTypes:        cfg.HighPriorityTypes,
		LowBatteryThreshold:      cfg.LowBatteryThreshold,
		CriticalBatteryThreshold: cfg.CriticalBatteryThreshold,
		UsageBudget:              cfg.UsageBudget,
		NightStartHour:           cfg.NightStartHour,
		NightEndHour:             cfg.NightEndHour,
		WifiOnly:                 &cfg.WifiOnly,
		ChargingOnly:             &cfg.ChargingOnly,
		BatterySaving:            &cfg.BatterySaving,
		NightModeEnabled:         &cfg.NightModeEnabled,
	}

	data, err := yaml.Marshal(&fc)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	tmp := path + ".tmp"
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		return fmt.Errorf("failed to replace config file: %w", err)
	}
	return nil
}

func applyFile(cfg *models.SyncConfig, fc fileConfig) error {
	durations := []struct {
		raw string
		dst *time.Duration
	}{
		{fc.SyncInterval, &cfg.SyncInterval},
		{fc.BatterySavingInterval, &cfg.BatterySavingInterval},
		{fc.NightInterval, &cfg.NightInterval},
		{fc.DeferRecheck, &cfg.DeferRecheck},
		{fc.MinInterval, &cfg.MinInterval},
		{fc.MaxInterval, &cfg.MaxInterval},
	}
	for _, d := range durations {
		if d.raw == "" {
			continue
		}
		parsed, err := time.ParseDuration(d.raw)
		if err != nil {
			return fmt.Errorf("invalid duration %q: %w", d.raw, err)
		}
		*d.dst = parsed
	}

	if fc.HighPriorityTypes != nil {
		cfg.HighPriorityTypes = fc.HighPriorityTypes
	}
	if fc.LowBatteryThreshold > 0 {
		cfg.LowBatteryThreshold = fc.LowBatteryThreshold
	}
	if fc.CriticalBatteryThreshold > 0 {
		cfg.CriticalBatteryThreshold = fc.CriticalBatteryThreshold
	}
	if fc.UsageBudget > 0 {
		cfg.UsageBudget = fc.UsageBudget
	}
	if fc.NightStartHour > 0 {
		cfg.NightStartHour = fc.NightStartHour
	}
	if fc.NightEndHour > 0 {
		cfg.NightEndHour = fc.NightEndHour
	}
	if fc.WifiOnly != nil {
		cfg.WifiOnly = *fc.WifiOnly
	}
	if fc.ChargingOnly != nil {
		cfg.ChargingOnly = *fc.ChargingOnly
	}
	if fc.BatterySaving != nil {
		cfg.BatterySaving = *fc.BatterySaving
	}
	if fc.NightModeEnabled != nil {
		cfg.NightModeEnabled = *fc.NightModeEnabled
	}
	return nil
}
