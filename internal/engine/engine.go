// Package engine wires the queue store, conflict resolution, executor,
// scheduler and offline window tracker into the offline-first sync
// facade the feature layer talks to.
package engine

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/ridawn928/hr-connect/internal/executor"
	"github.com/ridawn928/hr-connect/internal/models"
	"github.com/ridawn928/hr-connect/internal/queue"
	"github.com/ridawn928/hr-connect/internal/scheduler"
	"github.com/ridawn928/hr-connect/internal/window"
)

// DefaultRetention is how long completed operations stay in the queue
// before the cleanup loop removes them.
const DefaultRetention = 7 * 24 * time.Hour

const cleanupInterval = time.Hour

// Snapshot is one observation of queue state, published on the status
// stream for pending/conflict UI indicators.
type Snapshot struct {
	At            time.Time
	LastSyncAt    time.Time
	Pending       int
	InProgress    int
	Failed        int
	Conflicted    int
	WindowExpired bool
}

// Engine is the sync engine facade. All collaborators are passed in
// explicitly; nothing is resolved from process-wide state.
type Engine struct {
	store     queue.Store
	exec      *executor.Executor
	sched     *scheduler.Scheduler
	window    *window.Tracker
	logger    *slog.Logger
	nowFn     func() time.Time
	retention time.Duration

	mu   sync.Mutex
	subs []chan Snapshot

	wg     sync.WaitGroup
	cancel context.CancelFunc
}

// New creates the engine. nowFn may be nil, in which case time.Now is used.
func New(
	store queue.Store,
	exec *executor.Executor,
	sched *scheduler.Scheduler,
	windowTracker *window.Tracker,
	logger *slog.Logger,
	nowFn func() time.Time,
) *Engine {
	if nowFn == nil {
		nowFn = time.Now
	}
	return &Engine{
		store:     store,
		exec:      exec,
		sched:     sched,
		window:    windowTracker,
		logger:    logger,
		nowFn:     nowFn,
		retention: DefaultRetention,
	}
}

// Start recovers stale rows, starts the scheduler and the retention
// cleanup loop. Background work stops when Close is called.
func (e *Engine) Start(ctx context.Context) error {
	recovered, err := e.store.RecoverStale(ctx)
	if err != nil {
		return fmt.Errorf("failed to recover stale operations: %w", err)
	}
	if recovered > 0 {
		e.logger.Info("recovered stale in-progress operations", "count", recovered)
	}

	runCtx, cancel := context.WithCancel(ctx)
	e.cancel = cancel

	if err := e.sched.Start(runCtx); err != nil {
		cancel()
		return fmt.Errorf("failed to start scheduler: %w", err)
	}

	e.wg.Add(1)
	go e.cleanupLoop(runCtx)

	return nil
}

// Close stops the scheduler and background loops. An in-progress sync
// cycle finishes its current operation first.
func (e *Engine) Close() {
	if e.cancel != nil {
		e.cancel()
	}
	e.sched.Stop()
	e.wg.Wait()

	e.mu.Lock()
	defer e.mu.Unlock()
	for _, sub := range e.subs {
		close(sub)
	}
	e.subs = nil
}

// Enqueue validates and persists a local mutation. A storage failure is
// surfaced synchronously: the mutation is NOT queued and the caller owns
// the retry. Past offline-window expiry only critical operations pass.
func (e *Engine) Enqueue(ctx context.Context, op *models.Operation) (string, error) {
	if err := op.Validate(); err != nil {
		return "", fmt.Errorf("invalid sync operation: %w", err)
	}
	if err := e.window.Gate(ctx, op.Priority); err != nil {
		return "", err
	}

	id, err := e.store.Enqueue(ctx, op)
	if err != nil {
		return "", fmt.Errorf("failed to enqueue operation: %w", err)
	}

	e.logger.Debug("operation enqueued",
		"operation_id", id,
		"aggregate_type", op.AggregateType,
		"priority", op.Priority)

	e.publish(ctx)
	return id, nil
}

// SyncAll runs one full sync cycle immediately.
func (e *Engine) SyncAll(ctx context.Context) (*models.SyncResult, error) {
	result, err := e.exec.SyncAll(ctx)
	e.publish(ctx)
	return result, err
}

// SyncByPriority runs a cycle restricted to one priority class.
func (e *Engine) SyncByPriority(ctx context.Context, p models.Priority) (*models.SyncResult, error) {
	result, err := e.exec.SyncByPriority(ctx, p)
	e.publish(ctx)
	return result, err
}

// GetPendingCount returns the number of operations awaiting sync.
func (e *Engine) GetPendingCount(ctx context.Context) (int, error) {
	return e.store.CountPending(ctx)
}

// AdjustSettingsBasedOnUsage runs the scheduler's usage feedback loop.
func (e *Engine) AdjustSettingsBasedOnUsage(ctx context.Context) (bool, error) {
	return e.sched.AdjustSettingsBasedOnUsage(ctx)
}

// RetryFailed returns a terminally failed operation to pending with a
// fresh retry budget.
func (e *Engine) RetryFailed(ctx context.Context, id string) error {
	if err := e.store.Requeue(ctx, id, nil); err != nil {
		return err
	}
	e.publish(ctx)
	return nil
}

// ResolveConflict completes the manual resolution flow: the
// human-resolved payload replaces the stored one and the operation goes
// back to pending.
func (e *Engine) ResolveConflict(ctx context.Context, id string, resolved models.Value) error {
	if err := e.store.Requeue(ctx, id, &resolved); err != nil {
		return err
	}
	e.logger.Info("conflict resolved manually", "operation_id", id)
	e.publish(ctx)
	return nil
}

// DiscardOperation drops an operation, usually a conflicted or failed
// one the user chose not to keep.
func (e *Engine) DiscardOperation(ctx context.Context, id string) error {
	if err := e.store.Discard(ctx, id); err != nil {
		return err
	}
	e.publish(ctx)
	return nil
}

// StatusStream returns a channel of queue snapshots, emitted on every
// state change. The channel closes when ctx is done or the engine closes.
func (e *Engine) StatusStream(ctx context.Context) <-chan Snapshot {
	ch := make(chan Snapshot, 1)

	e.mu.Lock()
	e.subs = append(e.subs, ch)
	e.mu.Unlock()

	go func() {
		<-ctx.Done()
		e.mu.Lock()
		defer e.mu.Unlock()
		for i, sub := range e.subs {
			if sub == ch {
				e.subs = append(e.subs[:i], e.subs[i+1:]...)
				close(ch)
				return
			}
		}
	}()
	return ch
}

// Status computes the current snapshot on demand.
func (e *Engine) Status(ctx context.Context) (Snapshot, error) {
	snap := Snapshot{At: e.nowFn()}

	var err error
	if snap.Pending, err = e.store.CountByStatus(ctx, models.StatusPending); err != nil {
		return Snapshot{}, err
	}
	if snap.InProgress, err = e.store.CountByStatus(ctx, models.StatusInProgress); err != nil {
		return Snapshot{}, err
	}
	if snap.Failed, err = e.store.CountByStatus(ctx, models.StatusFailed); err != nil {
		return Snapshot{}, err
	}
	if snap.Conflicted, err = e.store.CountByStatus(ctx, models.StatusConflicted); err != nil {
		return Snapshot{}, err
	}
	if snap.WindowExpired, err = e.window.IsExpired(ctx); err != nil {
		return Snapshot{}, err
	}
	// Начало окна и есть момент последней чистой полной синхронизации.
	if snap.LastSyncAt, err = e.window.WindowStart(ctx); err != nil {
		return Snapshot{}, err
	}
	return snap, nil
}

// publish pushes a fresh snapshot to every subscriber without blocking.
func (e *Engine) publish(ctx context.Context) {
	e.mu.Lock()
	hasSubs := len(e.subs) > 0
	e.mu.Unlock()
	if !hasSubs {
		return
	}

	snap, err := e.Status(ctx)
	if err != nil {
		e.logger.Warn("failed to compute status snapshot", "error", err)
		return
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	for _, sub := range e.subs {
		select {
		case sub <- snap:
		default:
			// Подписчик не успевает — снимок устареет, пропускаем.
		}
	}
}

// cleanupLoop periodically removes completed operations older than the
// retention threshold.
func (e *Engine) cleanupLoop(ctx context.Context) {
	defer e.wg.Done()

	ticker := time.NewTicker(cleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			cutoff := e.nowFn().Add(-e.retention)
			deleted, err := e.store.DeleteCompletedBefore(ctx, cutoff)
			if err != nil {
				e.logger.Warn("retention cleanup failed", "error", err)
				continue
			}
			if deleted > 0 {
				e.logger.Info("retention cleanup removed operations", "count", deleted)
			}
		}
	}
}
