package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/ridawn928/hr-connect/internal/models"
)

const (
	keyWindowStart    = "window_start"
	keyBatterySamples = "battery_samples"
	keySyncConfig     = "sync_config"
)

// SaveWindowStart persists the offline window start timestamp
func (s *Storage) SaveWindowStart(ctx context.Context, t time.Time) error {
	return s.putMeta(ctx, keyWindowStart, []byte(strconv.FormatInt(t.UnixNano(), 10)))
}

// WindowStart retrieves the offline window start timestamp.
// Returns the zero time if no full sync has ever succeeded.
func (s *Storage) WindowStart(ctx context.Context) (time.Time, error) {
	data, err := s.getMeta(ctx, keyWindowStart)
	if err != nil {
		return time.Time{}, err
	}
	if data == nil {
		return time.Time{}, nil
	}

	nanos, err := strconv.ParseInt(string(data), 10, 64)
	if err != nil {
		return time.Time{}, fmt.Errorf("failed to parse window start: %w", err)
	}
	return time.Unix(0, nanos), nil
}

// SaveBatterySamples persists the rolling battery-usage samples
func (s *Storage) SaveBatterySamples(ctx context.Context, samples []models.BatterySample) error {
	data, err := json.Marshal(samples)
	if err != nil {
		return fmt.Errorf("failed to marshal battery samples: %w", err)
	}
	return s.putMeta(ctx, keyBatterySamples, data)
}

// BatterySamples retrieves the persisted battery-usage samples
func (s *Storage) BatterySamples(ctx context.Context) ([]models.BatterySample, error) {
	data, err := s.getMeta(ctx, keyBatterySamples)
	if err != nil {
		return nil, err
	}
	if data == nil {
		return nil, nil
	}

	var samples []models.BatterySample
	if err := json.Unmarshal(data, &samples); err != nil {
		return nil, fmt.Errorf("failed to unmarshal battery samples: %w", err)
	}
	return samples, nil
}

// SaveSyncConfig persists the current scheduler configuration
func (s *Storage) SaveSyncConfig(ctx context.Context, cfg models.SyncConfig) error {
	data, err := json.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal sync config: %w", err)
	}
	return s.putMeta(ctx, keySyncConfig, data)
}

// SyncConfig retrieves the persisted scheduler configuration.
// Returns nil if none has been saved yet.
func (s *Storage) SyncConfig(ctx context.Context) (*models.SyncConfig, error) {
	data, err := s.getMeta(ctx, keySyncConfig)
	if err != nil {
		return nil, err
	}
	if data == nil {
		return nil, nil
	}

	cfg := &models.SyncConfig{}
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal sync config: %w", err)
	}
	return cfg, nil
}

func (s *Storage) putMeta(ctx context.Context, key string, value []byte) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO sync_metadata (key, value) VALUES (?, ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value`,
		key, value)
	if err != nil {
		return fmt.Errorf("failed to save metadata %q: %w", key, err)
	}
	return nil
}

func (s *Storage) getMeta(ctx context.Context, key string) ([]byte, error) {
	var value []byte
	row := s.db.QueryRowContext(ctx, `SELECT value FROM sync_metadata WHERE key = ?`, key)
	if err := row.Scan(&value); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get metadata %q: %w", key, err)
	}
	return value, nil
}
