// Package executor drains the sync queue in priority order, runs
// conflict detection/resolution per operation and records the outcome
// back into the queue store.
package executor

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/ridawn928/hr-connect/internal/conflict"
	"github.com/ridawn928/hr-connect/internal/device"
	"github.com/ridawn928/hr-connect/internal/models"
	"github.com/ridawn928/hr-connect/internal/queue"
	"github.com/ridawn928/hr-connect/internal/remote"
	"github.com/ridawn928/hr-connect/internal/window"
)

// Retry backoff parameters: base=1s, factor=2, cap=5min.
const (
	backoffBase = time.Second
	backoffCap  = 5 * time.Minute

	// opTimeout bounds every remote handler invocation.
	opTimeout = 30 * time.Second
)

var (
	// ErrNetworkUnavailable indicates there was no connectivity at batch
	// start; the whole run is aborted before any row is touched.
	ErrNetworkUnavailable = errors.New("network unavailable, sync aborted")

	// ErrSyncInProgress indicates another run holds the run-lock. The
	// trigger is coalesced into a no-op rather than queued.
	ErrSyncInProgress = errors.New("sync already in progress")
)

// Executor processes queued operations against their remote handlers.
// At most one run is active at a time; within a run operations are
// processed sequentially, which trivially serializes mutations on the
// same aggregate.
type Executor struct {
	store        queue.Store
	registry     *remote.Registry
	detector     *conflict.Detector
	resolver     *conflict.Resolver
	window       *window.Tracker
	connectivity device.ConnectivityProvider
	logger       *slog.Logger
	nowFn        func() time.Time
	runMu        sync.Mutex
}

// New creates an executor. nowFn may be nil, in which case time.Now is used.
func New(
	store queue.Store,
	registry *remote.Registry,
	detector *conflict.Detector,
	resolver *conflict.Resolver,
	windowTracker *window.Tracker,
	connectivity device.ConnectivityProvider,
	logger *slog.Logger,
	nowFn func() time.Time,
) *Executor {
	if nowFn == nil {
		nowFn = time.Now
	}
	return &Executor{
		store:        store,
		registry:     registry,
		detector:     detector,
		resolver:     resolver,
		window:       windowTracker,
		connectivity: connectivity,
		logger:       logger,
		nowFn:        nowFn,
	}
}

// SyncAll drains every eligible pending operation.
func (e *Executor) SyncAll(ctx context.Context) (*models.SyncResult, error) {
	return e.run(ctx, queue.Filter{})
}

// SyncByPriority drains only operations of the given priority class.
func (e *Executor) SyncByPriority(ctx context.Context, p models.Priority) (*models.SyncResult, error) {
	return e.run(ctx, queue.Filter{Priority: &p})
}

func (e *Executor) run(ctx context.Context, f queue.Filter) (*models.SyncResult, error) {
	if !e.connectivity.Current().Online() {
		return &models.SyncResult{}, ErrNetworkUnavailable
	}

	// Run-lock: конкурентный вызов сворачивается в no-op.
	if !e.runMu.TryLock() {
		return nil, ErrSyncInProgress
	}
	defer e.runMu.Unlock()

	batch, err := e.store.DequeueBatch(ctx, f)
	if err != nil {
		return nil, fmt.Errorf("failed to dequeue batch: %w", err)
	}

	result := &models.SyncResult{Total: len(batch)}
	e.logger.Info("sync cycle started", "operations", len(batch))

	for _, op := range batch {
		// Shutdown is honored between operations, never mid-operation,
		// so no row is left in_progress indefinitely.
		if ctx.Err() != nil {
			e.logger.Warn("sync cycle interrupted", "remaining", result.Total-processed(result))
			return result, nil
		}
		e.processOne(ctx, op, result)
	}

	// Полностью чистый цикл сбрасывает offline window.
	if f.Priority == nil && result.Clean() {
		if err := e.window.RecordSuccessfulFullSync(ctx); err != nil {
			e.logger.Warn("failed to reset offline window", "error", err)
		}
	}

	e.logger.Info("sync cycle completed",
		"total", result.Total,
		"succeeded", result.Succeeded,
		"failed", result.Failed,
		"conflicted", result.Conflicted,
		"retried", result.Retried)

	return result, nil
}

// processOne pushes a single operation through the pipeline: mark
// in_progress, fetch the remote snapshot, detect and resolve conflicts,
// apply, classify the outcome. A failure here never aborts the batch.
func (e *Executor) processOne(ctx context.Context, op *models.Operation, result *models.SyncResult) {
	if err := e.store.UpdateStatus(ctx, op.ID, models.StatusInProgress, "", time.Time{}); err != nil {
		// Строка не изменилась — операция останется pending до следующего цикла.
		e.logger.Error("failed to mark operation in progress", "operation_id", op.ID, "error", err)
		return
	}

	handler, ok := e.registry.Lookup(op.AggregateType)
	if !ok {
		// Terminal: retrying cannot conjure a handler. Does not count
		// against the retry budget.
		msg := fmt.Sprintf("no handler registered for aggregate type %q", op.AggregateType)
		e.markFailed(ctx, op, msg)
		result.Failed++
		return
	}

	opCtx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	resolved := op.Payload
	if op.Kind != models.KindDelete {
		remoteVal, err := handler.FetchRemote(opCtx, op.AggregateID)
		switch {
		case errors.Is(err, remote.ErrNotFound):
			// Нет удаленной версии — нечего диффить, пишем локальный payload.
		case err != nil:
			e.classifyFailure(ctx, op, err, result)
			return
		default:
			conflicts := e.detector.Detect(op.Payload, remoteVal)
			if len(conflicts) > 0 {
				merged, err := e.resolver.Resolve(conflicts, op.Payload, remoteVal)
				if err != nil {
					e.markConflicted(ctx, op, err)
					result.Conflicted++
					return
				}
				resolved = merged
			}
		}
	}

	if err := handler.Apply(opCtx, op, resolved); err != nil {
		e.classifyFailure(ctx, op, err, result)
		return
	}

	if err := e.store.UpdateStatus(ctx, op.ID, models.StatusCompleted, "", time.Time{}); err != nil {
		e.logger.Error("failed to mark operation completed", "operation_id", op.ID, "error", err)
		return
	}
	result.Succeeded++

	e.logger.Debug("operation synced",
		"operation_id", op.ID,
		"aggregate_type", op.AggregateType,
		"aggregate_id", op.AggregateID)
}

// classifyFailure routes a remote error: retryable failures go back to
// pending with exponential backoff until the retry budget is exhausted;
// everything else fails terminally.
func (e *Executor) classifyFailure(ctx context.Context, op *models.Operation, cause error, result *models.SyncResult) {
	if !remote.IsRetryable(cause) {
		e.markFailed(ctx, op, cause.Error())
		result.Failed++
		return
	}

	count, err := e.store.IncrementRetry(ctx, op.ID)
	if err != nil {
		if !errors.Is(err, queue.ErrRetryBudgetExceeded) {
			e.logger.Error("failed to increment retry count", "operation_id", op.ID, "error", err)
		}
		e.markFailed(ctx, op, cause.Error())
		result.Failed++
		return
	}

	if count >= models.MaxRetries {
		e.markFailed(ctx, op, cause.Error())
		result.Failed++
		return
	}

	notBefore := e.nowFn().Add(backoff(count))
	if err := e.store.UpdateStatus(ctx, op.ID, models.StatusPending, cause.Error(), notBefore); err != nil {
		e.logger.Error("failed to reschedule operation", "operation_id", op.ID, "error", err)
		return
	}
	result.Retried++

	e.logger.Debug("operation deferred for retry",
		"operation_id", op.ID,
		"retry_count", count,
		"not_before", notBefore)
}

func (e *Executor) markFailed(ctx context.Context, op *models.Operation, msg string) {
	if err := e.store.UpdateStatus(ctx, op.ID, models.StatusFailed, msg, time.Time{}); err != nil {
		e.logger.Error("failed to mark operation failed", "operation_id", op.ID, "error", err)
		return
	}
	e.logger.Warn("operation failed terminally",
		"operation_id", op.ID,
		"aggregate_type", op.AggregateType,
		"error", msg)
}

func (e *Executor) markConflicted(ctx context.Context, op *models.Operation, cause error) {
	if err := e.store.UpdateStatus(ctx, op.ID, models.StatusConflicted, cause.Error(), time.Time{}); err != nil {
		e.logger.Error("failed to mark operation conflicted", "operation_id", op.ID, "error", err)
		return
	}
	e.logger.Warn("operation parked for manual resolution",
		"operation_id", op.ID,
		"aggregate_type", op.AggregateType,
		"aggregate_id", op.AggregateID)
}

// backoff returns the delay before retry attempt n (1-based):
// 1s, 2s, 4s, ... capped at 5 minutes.
func backoff(n int) time.Duration {
	d := backoffBase << (n - 1)
	if d > backoffCap || d <= 0 {
		return backoffCap
	}
	return d
}

func processed(r *models.SyncResult) int {
	return r.Succeeded + r.Failed + r.Conflicted + r.Retried
}
