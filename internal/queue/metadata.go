package queue

import (
	"context"
	"time"

	"github.com/ridawn928/hr-connect/internal/models"
)

//go:generate moq -out metadata_mock.go . MetadataStore

// MetadataStore is the small key-value store backing engine state that
// lives outside the operation log: the offline window start, the rolling
// battery-usage samples and the current scheduler configuration.
type MetadataStore interface {
	// SaveWindowStart persists the offline window start timestamp.
	SaveWindowStart(ctx context.Context, t time.Time) error

	// WindowStart returns the persisted window start.
	// Returns the zero time if no full sync has ever succeeded.
	WindowStart(ctx context.Context) (time.Time, error)

	// SaveBatterySamples persists the rolling battery-usage samples.
	SaveBatterySamples(ctx context.Context, samples []models.BatterySample) error

	// BatterySamples returns the persisted battery-usage samples.
	// Returns an empty slice if none were recorded.
	BatterySamples(ctx context.Context) ([]models.BatterySample, error)

	// SaveSyncConfig persists the current scheduler configuration.
	SaveSyncConfig(ctx context.Context, cfg models.SyncConfig) error

	// SyncConfig returns the persisted scheduler configuration,
	// or nil if none has been saved yet.
	SyncConfig(ctx context.Context) (*models.SyncConfig, error)
}
