// Package remote defines the per-aggregate-type adapter that knows how
// to fetch and apply a specific entity family's remote representation,
// plus the registry the executor resolves handlers from.
package remote

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/ridawn928/hr-connect/internal/models"
)

//go:generate moq -out handler_mock.go . AggregateHandler

// AggregateHandler adapts one aggregate type to its remote system.
// Implementations live in the feature layer; the engine only moves
// payloads through them.
type AggregateHandler interface {
	// FetchRemote returns the current remote payload snapshot for the
	// aggregate. Returns ErrNotFound if the aggregate does not exist
	// remotely yet (the usual case for create operations).
	FetchRemote(ctx context.Context, aggregateID string) (models.Value, error)

	// Apply writes the resolved payload to the remote system.
	Apply(ctx context.Context, op *models.Operation, resolved models.Value) error
}

// Registry maps aggregate types to their handlers.
type Registry struct {
	mu       sync.RWMutex
	handlers map[string]AggregateHandler
}

// NewRegistry creates an empty handler registry.
func NewRegistry() *Registry {
	return &Registry{handlers: make(map[string]AggregateHandler)}
}

// Register binds a handler to an aggregate type, replacing any previous
// binding for the same type.
func (r *Registry) Register(aggregateType string, h AggregateHandler) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.handlers[aggregateType] = h
}

// Lookup returns the handler bound to the aggregate type.
func (r *Registry) Lookup(aggregateType string) (AggregateHandler, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	h, ok := r.handlers[aggregateType]
	return h, ok
}

// Types returns the registered aggregate types in sorted order.
func (r *Registry) Types() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	types := make([]string, 0, len(r.handlers))
	for t := range r.handlers {
		types = append(types, t)
	}
	sort.Strings(types)
	return types
}

// String описывает registry для логов.
func (r *Registry) String() string {
	return fmt.Sprintf("remote.Registry(%v)", r.Types())
}
