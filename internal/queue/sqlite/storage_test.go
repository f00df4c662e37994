package sqlite

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ridawn928/hr-connect/internal/models"
	"github.com/ridawn928/hr-connect/internal/queue"
)

func newTestStorage(t *testing.T) *Storage {
	t.Helper()

	store, err := New(context.Background(), ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() {
		require.NoError(t, store.Close())
	})
	return store
}

func testOperation(priority models.Priority) *models.Operation {
	return &models.Operation{
		Kind:          models.KindUpdate,
		AggregateType: "attendance",
		AggregateID:   "att-1",
		Priority:      priority,
		Payload: models.MapValue(map[string]models.Value{
			"hours": models.NumberValue(8),
		}),
	}
}

func TestNew_RunsMigrations(t *testing.T) {
	store := newTestStorage(t)

	// Миграции создали таблицы.
	for _, table := range []string{"sync_operations", "sync_metadata"} {
		var name string
		row := store.DB().QueryRow(
			`SELECT name FROM sqlite_master WHERE type='table' AND name=?`, table)
		require.NoError(t, row.Scan(&name))
		assert.Equal(t, table, name)
	}
}

func TestEnqueueGet_RoundTrip(t *testing.T) {
	store := newTestStorage(t)
	ctx := context.Background()

	op := testOperation(models.PriorityHigh)
	id, err := store.Enqueue(ctx, op)
	require.NoError(t, err)
	require.NotEmpty(t, id)

	got, err := store.Get(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, id, got.ID)
	assert.Equal(t, models.KindUpdate, got.Kind)
	assert.Equal(t, models.PriorityHigh, got.Priority)
	assert.Equal(t, models.StatusPending, got.Status)
	assert.True(t, op.Payload.Equal(got.Payload))
	assert.True(t, got.NotBefore.IsZero())
}

func TestGet_NotFound(t *testing.T) {
	store := newTestStorage(t)

	_, err := store.Get(context.Background(), "missing")
	assert.ErrorIs(t, err, queue.ErrOperationNotFound)
}

func TestDequeueBatch_Order(t *testing.T) {
	store := newTestStorage(t)
	ctx := context.Background()

	base := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)

	// Более ранняя medium не обгоняет более позднюю high.
	opA := testOperation(models.PriorityMedium)
	opA.AggregateID = "A"
	opA.CreatedAt = base.Add(1 * time.Second)
	opB := testOperation(models.PriorityHigh)
	opB.AggregateID = "B"
	opB.CreatedAt = base.Add(2 * time.Second)
	opC := testOperation(models.PriorityCritical)
	opC.AggregateID = "C"
	opC.CreatedAt = base.Add(3 * time.Second)

	for _, op := range []*models.Operation{opA, opB, opC} {
		_, err := store.Enqueue(ctx, op)
		require.NoError(t, err)
	}

	batch, err := store.DequeueBatch(ctx, queue.Filter{})
	require.NoError(t, err)
	require.Len(t, batch, 3)
	assert.Equal(t, "C", batch[0].AggregateID)
	assert.Equal(t, "B", batch[1].AggregateID)
	assert.Equal(t, "A", batch[2].AggregateID)
}

func TestDequeueBatch_HonorsNotBefore(t *testing.T) {
	store := newTestStorage(t)
	ctx := context.Background()

	now := time.Now()
	store.nowFn = func() time.Time { return now }

	gated := testOperation(models.PriorityMedium)
	gated.AggregateID = "gated"
	gated.NotBefore = now.Add(time.Hour)
	ready := testOperation(models.PriorityMedium)
	ready.AggregateID = "ready"

	_, err := store.Enqueue(ctx, gated)
	require.NoError(t, err)
	_, err = store.Enqueue(ctx, ready)
	require.NoError(t, err)

	batch, err := store.DequeueBatch(ctx, queue.Filter{})
	require.NoError(t, err)
	require.Len(t, batch, 1)
	assert.Equal(t, "ready", batch[0].AggregateID)

	store.nowFn = func() time.Time { return now.Add(2 * time.Hour) }
	batch, err = store.DequeueBatch(ctx, queue.Filter{})
	require.NoError(t, err)
	assert.Len(t, batch, 2)
}

func TestDequeueBatch_Filters(t *testing.T) {
	store := newTestStorage(t)
	ctx := context.Background()

	critical := testOperation(models.PriorityCritical)
	critical.AggregateType = "leave"
	medium := testOperation(models.PriorityMedium)

	_, err := store.Enqueue(ctx, critical)
	require.NoError(t, err)
	_, err = store.Enqueue(ctx, medium)
	require.NoError(t, err)

	p := models.PriorityCritical
	batch, err := store.DequeueBatch(ctx, queue.Filter{Priority: &p})
	require.NoError(t, err)
	require.Len(t, batch, 1)
	assert.Equal(t, models.PriorityCritical, batch[0].Priority)

	batch, err = store.DequeueBatch(ctx, queue.Filter{AggregateType: "leave", Limit: 1})
	require.NoError(t, err)
	require.Len(t, batch, 1)
	assert.Equal(t, "leave", batch[0].AggregateType)
}

func TestUpdateStatus_StateMachine(t *testing.T) {
	store := newTestStorage(t)
	ctx := context.Background()

	id, err := store.Enqueue(ctx, testOperation(models.PriorityMedium))
	require.NoError(t, err)

	// pending → completed запрещен.
	err = store.UpdateStatus(ctx, id, models.StatusCompleted, "", time.Time{})
	assert.ErrorIs(t, err, queue.ErrInvalidTransition)

	require.NoError(t, store.UpdateStatus(ctx, id, models.StatusInProgress, "", time.Time{}))

	gate := time.Now().Add(time.Minute)
	require.NoError(t, store.UpdateStatus(ctx, id, models.StatusPending, "timeout", gate))

	got, err := store.Get(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, models.StatusPending, got.Status)
	assert.Equal(t, "timeout", got.LastError)
	assert.Equal(t, gate.UnixNano(), got.NotBefore.UnixNano())
}

func TestUpdateStatus_NotFound(t *testing.T) {
	store := newTestStorage(t)

	err := store.UpdateStatus(context.Background(), "missing", models.StatusInProgress, "", time.Time{})
	assert.ErrorIs(t, err, queue.ErrOperationNotFound)
}

func TestIncrementRetry_Budget(t *testing.T) {
	store := newTestStorage(t)
	ctx := context.Background()

	id, err := store.Enqueue(ctx, testOperation(models.PriorityMedium))
	require.NoError(t, err)

	for i := 1; i <= models.MaxRetries; i++ {
		count, err := store.IncrementRetry(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, i, count)
	}

	_, err = store.IncrementRetry(ctx, id)
	assert.ErrorIs(t, err, queue.ErrRetryBudgetExceeded)
}

func TestRequeue(t *testing.T) {
	store := newTestStorage(t)
	ctx := context.Background()

	id, err := store.Enqueue(ctx, testOperation(models.PriorityMedium))
	require.NoError(t, err)

	// pending нельзя вернуть в очередь вручную.
	assert.ErrorIs(t, store.Requeue(ctx, id, nil), queue.ErrInvalidTransition)

	require.NoError(t, store.UpdateStatus(ctx, id, models.StatusInProgress, "", time.Time{}))
	require.NoError(t, store.UpdateStatus(ctx, id, models.StatusConflicted, "conflict", time.Time{}))
	_, err = store.IncrementRetry(ctx, id)
	require.NoError(t, err)

	resolved := models.MapValue(map[string]models.Value{
		"hours": models.NumberValue(6),
	})
	require.NoError(t, store.Requeue(ctx, id, &resolved))

	got, err := store.Get(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, models.StatusPending, got.Status)
	assert.Equal(t, 0, got.RetryCount)
	assert.Empty(t, got.LastError)
	assert.True(t, resolved.Equal(got.Payload))
}

func TestDiscard(t *testing.T) {
	store := newTestStorage(t)
	ctx := context.Background()

	id, err := store.Enqueue(ctx, testOperation(models.PriorityMedium))
	require.NoError(t, err)

	require.NoError(t, store.Discard(ctx, id))
	assert.ErrorIs(t, store.Discard(ctx, id), queue.ErrOperationNotFound)
}

func TestCountsAndRecoverStale(t *testing.T) {
	store := newTestStorage(t)
	ctx := context.Background()

	id1, err := store.Enqueue(ctx, testOperation(models.PriorityMedium))
	require.NoError(t, err)
	_, err = store.Enqueue(ctx, testOperation(models.PriorityLow))
	require.NoError(t, err)
	require.NoError(t, store.UpdateStatus(ctx, id1, models.StatusInProgress, "", time.Time{}))

	pending, err := store.CountPending(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, pending)

	recovered, err := store.RecoverStale(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, recovered)

	pending, err = store.CountPending(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, pending)
}

func TestDeleteCompletedBefore(t *testing.T) {
	store := newTestStorage(t)
	ctx := context.Background()

	old := testOperation(models.PriorityMedium)
	old.CreatedAt = time.Now().Add(-48 * time.Hour)
	oldID, err := store.Enqueue(ctx, old)
	require.NoError(t, err)
	require.NoError(t, store.UpdateStatus(ctx, oldID, models.StatusInProgress, "", time.Time{}))
	require.NoError(t, store.UpdateStatus(ctx, oldID, models.StatusCompleted, "", time.Time{}))

	freshID, err := store.Enqueue(ctx, testOperation(models.PriorityMedium))
	require.NoError(t, err)

	deleted, err := store.DeleteCompletedBefore(ctx, time.Now().Add(-24*time.Hour))
	require.NoError(t, err)
	assert.Equal(t, 1, deleted)

	_, err = store.Get(ctx, oldID)
	assert.ErrorIs(t, err, queue.ErrOperationNotFound)
	_, err = store.Get(ctx, freshID)
	assert.NoError(t, err)
}
