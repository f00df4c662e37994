// Package window tracks the time since the last fully-successful sync
// cycle and enforces the bounded offline operating window.
package window

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/ridawn928/hr-connect/internal/models"
	"github.com/ridawn928/hr-connect/internal/queue"
)

// MaxOffline is the offline ceiling: past it, non-critical operations
// are blocked pending re-authentication.
const MaxOffline = 7 * 24 * time.Hour

// ErrReauthRequired indicates the offline window has expired and the
// attempted operation is not critical enough to bypass the gate.
var ErrReauthRequired = errors.New("offline window expired, re-authentication required")

// Tracker is the process-wide offline window state. windowStart only
// moves forward, and only on a cycle with zero failed or conflicted
// operations.
type Tracker struct {
	meta       queue.MetadataStore
	logger     *slog.Logger
	nowFn      func() time.Time
	maxOffline time.Duration
}

// NewTracker creates an offline window tracker backed by the metadata
// store. nowFn may be nil, in which case time.Now is used.
func NewTracker(meta queue.MetadataStore, logger *slog.Logger, nowFn func() time.Time) *Tracker {
	if nowFn == nil {
		nowFn = time.Now
	}
	return &Tracker{
		meta:       meta,
		logger:     logger,
		nowFn:      nowFn,
		maxOffline: MaxOffline,
	}
}

// RecordSuccessfulFullSync moves windowStart to now. Called only by the
// executor after a batch with zero failures and zero conflicts.
func (t *Tracker) RecordSuccessfulFullSync(ctx context.Context) error {
	now := t.nowFn()

	start, err := t.meta.WindowStart(ctx)
	if err != nil {
		return fmt.Errorf("failed to read window start: %w", err)
	}
	// Окно двигается только вперед.
	if !start.IsZero() && !now.After(start) {
		return nil
	}

	if err := t.meta.SaveWindowStart(ctx, now); err != nil {
		return fmt.Errorf("failed to save window start: %w", err)
	}

	t.logger.Info("offline window reset", "window_start", now)
	return nil
}

// WindowStart returns the current window start. On the very first call of
// a fresh installation the window is initialized to now, so the 7-day
// ceiling counts from first run rather than from the epoch.
func (t *Tracker) WindowStart(ctx context.Context) (time.Time, error) {
	start, err := t.meta.WindowStart(ctx)
	if err != nil {
		return time.Time{}, fmt.Errorf("failed to read window start: %w", err)
	}
	if start.IsZero() {
		start = t.nowFn()
		if err := t.meta.SaveWindowStart(ctx, start); err != nil {
			return time.Time{}, fmt.Errorf("failed to initialize window start: %w", err)
		}
		t.logger.Info("offline window initialized", "window_start", start)
	}
	return start, nil
}

// IsExpired reports whether the offline window has been open longer than
// the offline ceiling.
func (t *Tracker) IsExpired(ctx context.Context) (bool, error) {
	start, err := t.WindowStart(ctx)
	if err != nil {
		return false, err
	}
	return t.nowFn().Sub(start) > t.maxOffline, nil
}

// Gate checks whether an operation of the given priority may proceed.
// Past expiry only critical-priority operations remain permitted — the
// explicit carve-out for time-critical records.
func (t *Tracker) Gate(ctx context.Context, p models.Priority) error {
	if p == models.PriorityCritical {
		return nil
	}
	expired, err := t.IsExpired(ctx)
	if err != nil {
		return err
	}
	if expired {
		return ErrReauthRequired
	}
	return nil
}
