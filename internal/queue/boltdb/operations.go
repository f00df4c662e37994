package boltdb

import (
	"context"
	"encoding/binary"
	"encoding/json"
	"fmt"
	"time"

	"go.etcd.io/bbolt"

	"github.com/ridawn928/hr-connect/internal/models"
	"github.com/ridawn928/hr-connect/internal/queue"
)

// indexKey builds the queue-order key for an operation:
// one priority rank byte, 8 bytes of big-endian CreatedAt nanoseconds,
// then the id. Cursor order over these keys is exactly
// priority-then-createdAt, which is the dequeue contract.
func indexKey(op *models.Operation) []byte {
	key := make([]byte, 0, 9+len(op.ID))
	key = append(key, byte('0'+op.Priority.Rank()))
	var ts [8]byte
	binary.BigEndian.PutUint64(ts[:], uint64(op.CreatedAt.UnixNano()))
	key = append(key, ts[:]...)
	key = append(key, []byte(op.ID)...)
	return key
}

// Enqueue persists a new operation with status pending.
// The row and its queue-index entry are written in one transaction.
func (s *Storage) Enqueue(ctx context.Context, op *models.Operation) (string, error) {
	if s.db == nil {
		return "", queue.ErrStorageClosed
	}

	stored := op.Clone()
	if stored.CreatedAt.IsZero() {
		stored.CreatedAt = s.nowFn()
	}
	if stored.ID == "" {
		id, err := s.newID(stored.CreatedAt)
		if err != nil {
			return "", err
		}
		stored.ID = id
	}
	stored.Status = models.StatusPending

	data, err := json.Marshal(stored)
	if err != nil {
		return "", fmt.Errorf("failed to marshal operation: %w", err)
	}

	err = s.db.Update(func(tx *bbolt.Tx) error {
		ops := tx.Bucket(bucketOperations)
		if err := ops.Put([]byte(stored.ID), data); err != nil {
			return fmt.Errorf("failed to save operation: %w", err)
		}
		idx := tx.Bucket(bucketQueueIndex)
		if err := idx.Put(indexKey(stored), []byte(stored.ID)); err != nil {
			return fmt.Errorf("failed to index operation: %w", err)
		}
		return nil
	})
	if err != nil {
		return "", fmt.Errorf("enqueue transaction failed: %w", err)
	}

	return stored.ID, nil
}

// Get retrieves an operation by id
func (s *Storage) Get(ctx context.Context, id string) (*models.Operation, error) {
	if s.db == nil {
		return nil, queue.ErrStorageClosed
	}

	var op *models.Operation
	err := s.db.View(func(tx *bbolt.Tx) error {
		data := tx.Bucket(bucketOperations).Get([]byte(id))
		if data == nil {
			return queue.ErrOperationNotFound
		}
		op = &models.Operation{}
		if err := json.Unmarshal(data, op); err != nil {
			return fmt.Errorf("failed to unmarshal operation: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return op, nil
}

// DequeueBatch returns eligible pending operations in queue order:
// priority ascending (critical first), then CreatedAt ascending.
func (s *Storage) DequeueBatch(ctx context.Context, f queue.Filter) ([]*models.Operation, error) {
	if s.db == nil {
		return nil, queue.ErrStorageClosed
	}

	now := s.nowFn()
	var batch []*models.Operation

	err := s.db.View(func(tx *bbolt.Tx) error {
		ops := tx.Bucket(bucketOperations)
		cursor := tx.Bucket(bucketQueueIndex).Cursor()

		for k, id := cursor.First(); k != nil; k, id = cursor.Next() {
			data := ops.Get(id)
			if data == nil {
				// Осиротевшая index-запись, пропускаем.
				continue
			}

			var op models.Operation
			if err := json.Unmarshal(data, &op); err != nil {
				return fmt.Errorf("failed to unmarshal operation: %w", err)
			}

			if !op.Eligible(now) {
				continue
			}
			if f.Priority != nil && op.Priority != *f.Priority {
				continue
			}
			if f.AggregateType != "" && op.AggregateType != f.AggregateType {
				continue
			}

			batch = append(batch, &op)
			if f.Limit > 0 && len(batch) >= f.Limit {
				return nil
			}
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to dequeue batch: %w", err)
	}

	return batch, nil
}

// UpdateStatus transitions a single row through the status state machine.
func (s *Storage) UpdateStatus(ctx context.Context, id string, status models.Status, lastErr string, notBefore time.Time) error {
	if s.db == nil {
		return queue.ErrStorageClosed
	}

	err := s.db.Update(func(tx *bbolt.Tx) error {
		return s.mutate(tx, id, func(op *models.Operation) error {
			if !op.Status.CanTransition(status) {
				return fmt.Errorf("%w: %s → %s", queue.ErrInvalidTransition, op.Status, status)
			}
			op.Status = status
			op.LastError = lastErr
			op.NotBefore = notBefore
			return nil
		})
	})
	if err != nil {
		return err
	}

	return nil
}

// IncrementRetry bumps the retry counter, capped at models.MaxRetries.
func (s *Storage) IncrementRetry(ctx context.Context, id string) (int, error) {
	if s.db == nil {
		return 0, queue.ErrStorageClosed
	}

	var count int
	err := s.db.Update(func(tx *bbolt.Tx) error {
		return s.mutate(tx, id, func(op *models.Operation) error {
			if op.RetryCount >= models.MaxRetries {
				return queue.ErrRetryBudgetExceeded
			}
			op.RetryCount++
			count = op.RetryCount
			return nil
		})
	})
	if err != nil {
		return 0, err
	}

	return count, nil
}

// Requeue returns a failed or conflicted operation to pending after a
// manual retry/resolve action. The retry budget is reset so a manually
// retried operation gets a fresh set of attempts.
func (s *Storage) Requeue(ctx context.Context, id string, payload *models.Value) error {
	if s.db == nil {
		return queue.ErrStorageClosed
	}

	return s.db.Update(func(tx *bbolt.Tx) error {
		return s.mutate(tx, id, func(op *models.Operation) error {
			if op.Status != models.StatusFailed && op.Status != models.StatusConflicted {
				return fmt.Errorf("%w: %s → %s", queue.ErrInvalidTransition, op.Status, models.StatusPending)
			}
			op.Status = models.StatusPending
			op.RetryCount = 0
			op.LastError = ""
			op.NotBefore = time.Time{}
			if payload != nil {
				op.Payload = payload.Clone()
			}
			return nil
		})
	})
}

// Discard removes an operation and its index entry.
func (s *Storage) Discard(ctx context.Context, id string) error {
	if s.db == nil {
		return queue.ErrStorageClosed
	}

	return s.db.Update(func(tx *bbolt.Tx) error {
		ops := tx.Bucket(bucketOperations)
		data := ops.Get([]byte(id))
		if data == nil {
			return queue.ErrOperationNotFound
		}

		var op models.Operation
		if err := json.Unmarshal(data, &op); err != nil {
			return fmt.Errorf("failed to unmarshal operation: %w", err)
		}

		if err := tx.Bucket(bucketQueueIndex).Delete(indexKey(&op)); err != nil {
			return fmt.Errorf("failed to delete index entry: %w", err)
		}
		if err := ops.Delete([]byte(id)); err != nil {
			return fmt.Errorf("failed to delete operation: %w", err)
		}
		return nil
	})
}

// CountPending returns the number of pending operations
func (s *Storage) CountPending(ctx context.Context) (int, error) {
	return s.CountByStatus(ctx, models.StatusPending)
}

// CountByStatus returns the number of operations in the given status
func (s *Storage) CountByStatus(ctx context.Context, status models.Status) (int, error) {
	if s.db == nil {
		return 0, queue.ErrStorageClosed
	}

	count := 0
	err := s.db.View(func(tx *bbolt.Tx) error {
		return tx.Bucket(bucketOperations).ForEach(func(k, v []byte) error {
			var op models.Operation
			if err := json.Unmarshal(v, &op); err != nil {
				return fmt.Errorf("failed to unmarshal operation: %w", err)
			}
			if op.Status == status {
				count++
			}
			return nil
		})
	})
	if err != nil {
		return 0, fmt.Errorf("failed to count operations: %w", err)
	}

	return count, nil
}

// RecoverStale returns in_progress rows to pending. An interrupted run
// may have left rows mid-flight; they are safe to retry.
func (s *Storage) RecoverStale(ctx context.Context) (int, error) {
	if s.db == nil {
		return 0, queue.ErrStorageClosed
	}

	recovered := 0
	err := s.db.Update(func(tx *bbolt.Tx) error {
		ops := tx.Bucket(bucketOperations)

		// Собираем ключи заранее: писать в бакет внутри ForEach нельзя.
		type stale struct {
			id   []byte
			data []byte
		}
		var rows []stale

		err := ops.ForEach(func(k, v []byte) error {
			var op models.Operation
			if err := json.Unmarshal(v, &op); err != nil {
				return fmt.Errorf("failed to unmarshal operation: %w", err)
			}
			if op.Status != models.StatusInProgress {
				return nil
			}

			op.Status = models.StatusPending
			data, err := json.Marshal(&op)
			if err != nil {
				return fmt.Errorf("failed to marshal operation: %w", err)
			}
			id := make([]byte, len(k))
			copy(id, k)
			rows = append(rows, stale{id: id, data: data})
			return nil
		})
		if err != nil {
			return err
		}

		for _, row := range rows {
			if err := ops.Put(row.id, row.data); err != nil {
				return fmt.Errorf("failed to save recovered operation: %w", err)
			}
			recovered++
		}
		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("recover transaction failed: %w", err)
	}

	return recovered, nil
}

// DeleteCompletedBefore removes completed operations created before the cutoff.
func (s *Storage) DeleteCompletedBefore(ctx context.Context, cutoff time.Time) (int, error) {
	if s.db == nil {
		return 0, queue.ErrStorageClosed
	}

	deleted := 0
	err := s.db.Update(func(tx *bbolt.Tx) error {
		ops := tx.Bucket(bucketOperations)
		idx := tx.Bucket(bucketQueueIndex)

		// Собираем ключи заранее: удалять внутри ForEach нельзя.
		type victim struct {
			id    []byte
			index []byte
		}
		var victims []victim

		err := ops.ForEach(func(k, v []byte) error {
			var op models.Operation
			if err := json.Unmarshal(v, &op); err != nil {
				return fmt.Errorf("failed to unmarshal operation: %w", err)
			}
			if op.Status == models.StatusCompleted && op.CreatedAt.Before(cutoff) {
				id := make([]byte, len(k))
				copy(id, k)
				victims = append(victims, victim{id: id, index: indexKey(&op)})
			}
			return nil
		})
		if err != nil {
			return err
		}

		for _, v := range victims {
			if err := idx.Delete(v.index); err != nil {
				return fmt.Errorf("failed to delete index entry: %w", err)
			}
			if err := ops.Delete(v.id); err != nil {
				return fmt.Errorf("failed to delete operation: %w", err)
			}
			deleted++
		}
		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("cleanup transaction failed: %w", err)
	}

	return deleted, nil
}

// mutate loads, edits and saves a single operation inside tx.
func (s *Storage) mutate(tx *bbolt.Tx, id string, edit func(op *models.Operation) error) error {
	ops := tx.Bucket(bucketOperations)
	data := ops.Get([]byte(id))
	if data == nil {
		return queue.ErrOperationNotFound
	}

	var op models.Operation
	if err := json.Unmarshal(data, &op); err != nil {
		return fmt.Errorf("failed to unmarshal operation: %w", err)
	}

	if err := edit(&op); err != nil {
		return err
	}

	updated, err := json.Marshal(&op)
	if err != nil {
		return fmt.Errorf("failed to marshal operation: %w", err)
	}
	if err := ops.Put([]byte(id), updated); err != nil {
		return fmt.Errorf("failed to save operation: %w", err)
	}
	return nil
}
