package remote

import (
	"context"
	"errors"
	"fmt"
	"net"
)

// ErrNotFound indicates the aggregate does not exist on the remote side.
// Not a failure: create operations expect it.
var ErrNotFound = errors.New("remote aggregate not found")

// Error is a classified remote failure. Retryable errors (transport
// problems, server-side 5xx, timeouts) send the operation back to pending
// with backoff; non-retryable ones (rejections) fail it terminally.
type Error struct {
	Err        error
	Op         string // "fetch" or "apply"
	StatusCode int    // HTTP status, 0 for transport errors
	Retryable  bool
}

func (e *Error) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("remote %s failed with status %d: %v", e.Op, e.StatusCode, e.Err)
	}
	return fmt.Sprintf("remote %s failed: %v", e.Op, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// IsRetryable classifies an error from an AggregateHandler. Timeouts and
// transport-level failures are retryable even when the handler did not
// wrap them in *Error.
func IsRetryable(err error) bool {
	var remoteErr *Error
	if errors.As(err, &remoteErr) {
		return remoteErr.Retryable
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	if errors.As(err, &netErr) {
		return true
	}
	return false
}
