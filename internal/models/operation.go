package models

import "time"

// OperationKind классифицирует тип локальной мутации.
type OperationKind string

const (
	KindCreate OperationKind = "create"
	KindUpdate OperationKind = "update"
	KindDelete OperationKind = "delete"
	KindCustom OperationKind = "custom"
)

// Valid reports whether the kind is one of the known mutation kinds.
func (k OperationKind) Valid() bool {
	switch k {
	case KindCreate, KindUpdate, KindDelete, KindCustom:
		return true
	}
	return false
}

// Priority is the fixed urgency class assigned at enqueue time.
// It never changes after creation and drives dequeue order.
type Priority string

const (
	PriorityCritical Priority = "critical"
	PriorityHigh     Priority = "high"
	PriorityMedium   Priority = "medium"
	PriorityLow      Priority = "low"
)

// Rank returns the sort rank of the priority: critical sorts first.
// Unknown priorities sort after low.
func (p Priority) Rank() int {
	switch p {
	case PriorityCritical:
		return 0
	case PriorityHigh:
		return 1
	case PriorityMedium:
		return 2
	case PriorityLow:
		return 3
	}
	return 4
}

// Valid reports whether the priority is one of the known classes.
func (p Priority) Valid() bool {
	return p.Rank() < 4
}

// Status represents the sync lifecycle state of an operation.
type Status string

const (
	StatusPending    Status = "pending"
	StatusInProgress Status = "in_progress"
	StatusCompleted  Status = "completed"
	StatusFailed     Status = "failed"
	StatusConflicted Status = "conflicted"
)

// Valid reports whether the status is one of the known states.
func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusInProgress, StatusCompleted, StatusFailed, StatusConflicted:
		return true
	}
	return false
}

// CanTransition reports whether the status state machine allows moving
// from s to the target state:
//
//	pending → in_progress → {completed | failed | conflicted | pending}
//	failed/conflicted → pending (manual retry or resolution only)
//
// completed is terminal. in_progress → pending covers the retry-with-backoff
// path and the startup recovery scan for stale rows.
func (s Status) CanTransition(to Status) bool {
	switch s {
	case StatusPending:
		return to == StatusInProgress
	case StatusInProgress:
		return to == StatusCompleted || to == StatusFailed ||
			to == StatusConflicted || to == StatusPending
	case StatusFailed, StatusConflicted:
		return to == StatusPending
	}
	return false
}

// Terminal reports whether the status is terminal for the sync loop.
// failed and conflicted rows can still be returned to pending by an
// explicit user action.
func (s Status) Terminal() bool {
	return s == StatusCompleted || s == StatusFailed
}

// MaxRetries is the retry budget per operation. Once RetryCount reaches
// this value the operation becomes terminally failed.
const MaxRetries = 5

// Operation represents a single queued local mutation awaiting
// transmission to the remote system.
type Operation struct {
	CreatedAt     time.Time     `json:"created_at"`
	NotBefore     time.Time     `json:"not_before,omitempty"` // backoff gate; zero = eligible now
	ID            string        `json:"id"`
	AggregateType string        `json:"aggregate_type"` // owning entity family, e.g. "attendance"
	AggregateID   string        `json:"aggregate_id"`
	LastError     string        `json:"last_error,omitempty"`
	Kind          OperationKind `json:"kind"`
	Priority      Priority      `json:"priority"`
	Status        Status        `json:"status"`
	Payload       Value         `json:"payload"` // opaque to the engine: moved and diffed, never interpreted
	RetryCount    int           `json:"retry_count"`
}

// Validate checks the fields a caller must supply before enqueueing.
// ID, Status and CreatedAt are assigned by the queue store if absent.
func (o *Operation) Validate() error {
	if !o.Kind.Valid() {
		return ErrInvalidKind
	}
	if o.AggregateType == "" {
		return ErrMissingAggregateType
	}
	if o.AggregateID == "" {
		return ErrMissingAggregateID
	}
	if !o.Priority.Valid() {
		return ErrInvalidPriority
	}
	return nil
}

// Eligible reports whether the operation may be dequeued at the given time.
func (o *Operation) Eligible(now time.Time) bool {
	return o.Status == StatusPending && (o.NotBefore.IsZero() || !now.Before(o.NotBefore))
}

// Clone создает глубокую копию операции.
func (o *Operation) Clone() *Operation {
	clone := *o
	clone.Payload = o.Payload.Clone()
	return &clone
}
