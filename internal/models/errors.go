package models

import "errors"

// Validation errors returned by Operation.Validate.
// These map to the ValidationFailure class: the operation is malformed
// and must not enter the queue.
var (
	// ErrInvalidKind indicates an unknown operation kind
	ErrInvalidKind = errors.New("invalid operation kind")

	// ErrInvalidPriority indicates an unknown priority class
	ErrInvalidPriority = errors.New("invalid operation priority")

	// ErrMissingAggregateType indicates an empty aggregate type tag
	ErrMissingAggregateType = errors.New("aggregate type is required")

	// ErrMissingAggregateID indicates an empty aggregate id
	ErrMissingAggregateID = errors.New("aggregate id is required")
)
