package boltdb

import (
	"context"
	"encoding/binary"
	"encoding/json"
	"fmt"
	"time"

	"go.etcd.io/bbolt"

	"github.com/ridawn928/hr-connect/internal/models"
)

const (
	keyWindowStart    = "window_start"
	keyBatterySamples = "battery_samples"
	keySyncConfig     = "sync_config"
)

// SaveWindowStart persists the offline window start timestamp
func (s *Storage) SaveWindowStart(ctx context.Context, t time.Time) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketMetadata)
		if bucket == nil {
			return fmt.Errorf("metadata bucket not found")
		}

		// Храним UnixNano как 8 байт big-endian.
		buf := make([]byte, 8)
		binary.BigEndian.PutUint64(buf, uint64(t.UnixNano()))

		if err := bucket.Put([]byte(keyWindowStart), buf); err != nil {
			return fmt.Errorf("failed to save window start: %w", err)
		}
		return nil
	})
}

// WindowStart retrieves the offline window start timestamp.
// Returns the zero time if no full sync has ever succeeded.
func (s *Storage) WindowStart(ctx context.Context) (time.Time, error) {
	var start time.Time

	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketMetadata)
		if bucket == nil {
			return fmt.Errorf("metadata bucket not found")
		}

		buf := bucket.Get([]byte(keyWindowStart))
		if buf == nil {
			return nil
		}
		start = time.Unix(0, int64(binary.BigEndian.Uint64(buf)))
		return nil
	})
	if err != nil {
		return time.Time{}, fmt.Errorf("failed to get window start: %w", err)
	}

	return start, nil
}

// SaveBatterySamples persists the rolling battery-usage samples
func (s *Storage) SaveBatterySamples(ctx context.Context, samples []models.BatterySample) error {
	data, err := json.Marshal(samples)
	if err != nil {
		return fmt.Errorf("failed to marshal battery samples: %w", err)
	}

	return s.db.Update(func(tx *bbolt.Tx) error {
		if err := tx.Bucket(bucketMetadata).Put([]byte(keyBatterySamples), data); err != nil {
			return fmt.Errorf("failed to save battery samples: %w", err)
		}
		return nil
	})
}

// BatterySamples retrieves the persisted battery-usage samples
func (s *Storage) BatterySamples(ctx context.Context) ([]models.BatterySample, error) {
	var samples []models.BatterySample

	err := s.db.View(func(tx *bbolt.Tx) error {
		data := tx.Bucket(bucketMetadata).Get([]byte(keyBatterySamples))
		if data == nil {
			return nil
		}
		if err := json.Unmarshal(data, &samples); err != nil {
			return fmt.Errorf("failed to unmarshal battery samples: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get battery samples: %w", err)
	}

	return samples, nil
}

// SaveSyncConfig persists the current scheduler configuration
func (s *Storage) SaveSyncConfig(ctx context.Context, cfg models.SyncConfig) error {
	data, err := json.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal sync config: %w", err)
	}

	return s.db.Update(func(tx *bbolt.Tx) error {
		if err := tx.Bucket(bucketMetadata).Put([]byte(keySyncConfig), data); err != nil {
			return fmt.Errorf("failed to save sync config: %w", err)
		}
		return nil
	})
}

// SyncConfig retrieves the persisted scheduler configuration.
// Returns nil if none has been saved yet.
func (s *Storage) SyncConfig(ctx context.Context) (*models.SyncConfig, error) {
	var cfg *models.SyncConfig

	err := s.db.View(func(tx *bbolt.Tx) error {
		data := tx.Bucket(bucketMetadata).Get([]byte(keySyncConfig))
		if data == nil {
			return nil
		}
		cfg = &models.SyncConfig{}
		if err := json.Unmarshal(data, cfg); err != nil {
			return fmt.Errorf("failed to unmarshal sync config: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get sync config: %w", err)
	}

	return cfg, nil
}
