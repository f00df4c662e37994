package queue

import "errors"

// Common queue storage errors
var (
	// ErrOperationNotFound indicates that no operation exists with the given id
	ErrOperationNotFound = errors.New("sync operation not found")

	// ErrStorageClosed indicates that the store is closed
	ErrStorageClosed = errors.New("queue storage is closed")

	// ErrInvalidTransition indicates a status change forbidden by the state machine
	ErrInvalidTransition = errors.New("invalid status transition")

	// ErrRetryBudgetExceeded indicates the retry counter already reached its cap
	ErrRetryBudgetExceeded = errors.New("retry budget exceeded")
)
