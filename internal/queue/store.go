// Package queue defines the durable sync queue contract: a transactional
// log of pending mutation operations drained by the executor in priority
// order.
package queue

import (
	"context"
	"time"

	"github.com/ridawn928/hr-connect/internal/models"
)

//go:generate moq -out store_mock.go . Store

// Filter narrows a DequeueBatch call. The zero value selects every
// eligible pending operation.
type Filter struct {
	// Priority, when set, restricts the batch to a single priority class.
	Priority *models.Priority

	// AggregateType, when non-empty, restricts the batch to one entity family.
	AggregateType string

	// Limit bounds the batch size; 0 means no limit.
	Limit int
}

// Store is the durable, transactional log of sync operations.
//
// Every write is atomic: either the row is fully persisted or left
// unchanged, so a storage error never produces a partial write. Callers
// retry the whole call on error.
type Store interface {
	// Enqueue persists a new operation with status pending and returns its id.
	// If the operation carries no id one is assigned. CreatedAt is stamped
	// if zero. Atomic: on error nothing is persisted.
	Enqueue(ctx context.Context, op *models.Operation) (string, error)

	// Get returns the operation with the given id.
	// Returns ErrOperationNotFound if it does not exist.
	Get(ctx context.Context, id string) (*models.Operation, error)

	// DequeueBatch returns eligible pending operations ordered by priority
	// (critical first), then CreatedAt (oldest first) within equal priority.
	// Rows gated by a future NotBefore are skipped. This ordering is the
	// sole fairness/urgency guarantee the engine offers.
	DequeueBatch(ctx context.Context, f Filter) ([]*models.Operation, error)

	// UpdateStatus transitions a single row through the status state
	// machine, recording the last error and an optional not-before gate.
	// Returns ErrInvalidTransition if the state machine forbids the move.
	UpdateStatus(ctx context.Context, id string, status models.Status, lastErr string, notBefore time.Time) error

	// IncrementRetry bumps the retry counter and returns the new count.
	// Returns ErrRetryBudgetExceeded once the counter has reached
	// models.MaxRetries.
	IncrementRetry(ctx context.Context, id string) (int, error)

	// Requeue returns a failed or conflicted operation to pending after a
	// manual retry/resolve action, resetting its retry budget. A non-nil
	// payload replaces the stored one (used after manual conflict
	// resolution).
	Requeue(ctx context.Context, id string, payload *models.Value) error

	// Discard removes an operation regardless of status.
	Discard(ctx context.Context, id string) error

	// CountPending returns the number of pending operations.
	CountPending(ctx context.Context) (int, error)

	// CountByStatus returns the number of operations in the given status.
	CountByStatus(ctx context.Context, status models.Status) (int, error)

	// RecoverStale returns in_progress rows to pending. Run once at
	// startup: an interrupted executor may have left rows mid-flight.
	RecoverStale(ctx context.Context) (int, error)

	// DeleteCompletedBefore removes completed operations created before the
	// cutoff and returns how many were removed.
	DeleteCompletedBefore(ctx context.Context, cutoff time.Time) (int, error)

	// Close releases the underlying storage.
	Close() error
}
