package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/ridawn928/hr-connect/internal/models"
	"github.com/ridawn928/hr-connect/internal/queue"
)

const operationColumns = `id, kind, aggregate_type, aggregate_id, payload,
	priority, status, created_at, retry_count, last_error, not_before`

// Enqueue persists a new operation with status pending
func (s *Storage) Enqueue(ctx context.Context, op *models.Operation) (string, error) {
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

	payload, err := json.Marshal(stored.Payload)
	if err != nil {
		return "", fmt.Errorf("failed to marshal payload: %w", err)
	}

	query := `
		INSERT INTO sync_operations (
			id, kind, aggregate_type, aggregate_id, payload,
			priority, priority_rank, status, created_at,
			retry_count, last_error, not_before
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`
	_, err = s.db.ExecContext(ctx, query,
		stored.ID,
		string(stored.Kind),
		stored.AggregateType,
		stored.AggregateID,
		string(payload),
		string(stored.Priority),
		stored.Priority.Rank(),
		string(stored.Status),
		stored.CreatedAt.UnixNano(),
		stored.RetryCount,
		stored.LastError,
		notBeforeNano(stored.NotBefore),
	)
	if err != nil {
		return "", fmt.Errorf("failed to insert operation: %w", err)
	}

	return stored.ID, nil
}

// Get retrieves an operation by id
func (s *Storage) Get(ctx context.Context, id string) (*models.Operation, error) {
	query := `SELECT ` + operationColumns + ` FROM sync_operations WHERE id = ?`

	op, err := scanOperation(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, queue.ErrOperationNotFound
		}
		return nil, fmt.Errorf("failed to get operation: %w", err)
	}
	return op, nil
}

// DequeueBatch returns eligible pending operations in queue order
func (s *Storage) DequeueBatch(ctx context.Context, f queue.Filter) ([]*models.Operation, error) {
	query := `
		SELECT ` + operationColumns + `
		FROM sync_operations
		WHERE status = ? AND (not_before = 0 OR not_before <= ?)
	`
	args := []any{string(models.StatusPending), s.nowFn().UnixNano()}

	if f.Priority != nil {
		query += ` AND priority = ?`
		args = append(args, string(*f.Priority))
	}
	if f.AggregateType != "" {
		query += ` AND aggregate_type = ?`
		args = append(args, f.AggregateType)
	}

	query += ` ORDER BY priority_rank ASC, created_at ASC`
	if f.Limit > 0 {
		query += ` LIMIT ?`
		args = append(args, f.Limit)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query batch: %w", err)
	}
	defer rows.Close()

	var batch []*models.Operation
	for rows.Next() {
		op, err := scanOperation(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan operation: %w", err)
		}
		batch = append(batch, op)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate batch: %w", err)
	}

	return batch, nil
}

// UpdateStatus transitions a single row through the status state machine.
// Проверка перехода и запись выполняются в одной транзакции.
func (s *Storage) UpdateStatus(ctx context.Context, id string, status models.Status, lastErr string, notBefore time.Time) error {
	return s.withTx(ctx, func(tx *sql.Tx) error {
		current, err := currentStatus(ctx, tx, id)
		if err != nil {
			return err
		}
		if !current.CanTransition(status) {
			return fmt.Errorf("%w: %s → %s", queue.ErrInvalidTransition, current, status)
		}

		_, err = tx.ExecContext(ctx,
			`UPDATE sync_operations SET status = ?, last_error = ?, not_before = ? WHERE id = ?`,
			string(status), lastErr, notBeforeNano(notBefore), id,
		)
		if err != nil {
			return fmt.Errorf("failed to update status: %w", err)
		}
		return nil
	})
}

// IncrementRetry bumps the retry counter, capped at models.MaxRetries
func (s *Storage) IncrementRetry(ctx context.Context, id string) (int, error) {
	var count int
	err := s.withTx(ctx, func(tx *sql.Tx) error {
		row := tx.QueryRowContext(ctx, `SELECT retry_count FROM sync_operations WHERE id = ?`, id)
		if err := row.Scan(&count); err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return queue.ErrOperationNotFound
			}
			return fmt.Errorf("failed to read retry count: %w", err)
		}
		if count >= models.MaxRetries {
			return queue.ErrRetryBudgetExceeded
		}

		count++
		if _, err := tx.ExecContext(ctx,
			`UPDATE sync_operations SET retry_count = ? WHERE id = ?`, count, id,
		); err != nil {
			return fmt.Errorf("failed to update retry count: %w", err)
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return count, nil
}

// Requeue returns a failed or conflicted operation to pending
func (s *Storage) Requeue(ctx context.Context, id string, payload *models.Value) error {
	return s.withTx(ctx, func(tx *sql.Tx) error {
		current, err := currentStatus(ctx, tx, id)
		if err != nil {
			return err
		}
		if current != models.StatusFailed && current != models.StatusConflicted {
			return fmt.Errorf("%w: %s → %s", queue.ErrInvalidTransition, current, models.StatusPending)
		}

		if payload != nil {
			data, err := json.Marshal(*payload)
			if err != nil {
				return fmt.Errorf("failed to marshal payload: %w", err)
			}
			if _, err := tx.ExecContext(ctx,
				`UPDATE sync_operations SET payload = ? WHERE id = ?`, string(data), id,
			); err != nil {
				return fmt.Errorf("failed to replace payload: %w", err)
			}
		}

		_, err = tx.ExecContext(ctx,
			`UPDATE sync_operations
			 SET status = ?, retry_count = 0, last_error = '', not_before = 0
			 WHERE id = ?`,
			string(models.StatusPending), id,
		)
		if err != nil {
			return fmt.Errorf("failed to requeue operation: %w", err)
		}
		return nil
	})
}

// Discard removes an operation regardless of status
func (s *Storage) Discard(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM sync_operations WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to discard operation: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check discard result: %w", err)
	}
	if affected == 0 {
		return queue.ErrOperationNotFound
	}
	return nil
}

// CountPending returns the number of pending operations
func (s *Storage) CountPending(ctx context.Context) (int, error) {
	return s.CountByStatus(ctx, models.StatusPending)
}

// CountByStatus returns the number of operations in the given status
func (s *Storage) CountByStatus(ctx context.Context, status models.Status) (int, error) {
	var count int
	row := s.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM sync_operations WHERE status = ?`, string(status))
	if err := row.Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count operations: %w", err)
	}
	return count, nil
}

// RecoverStale returns in_progress rows to pending
func (s *Storage) RecoverStale(ctx context.Context) (int, error) {
	res, err := s.db.ExecContext(ctx,
		`UPDATE sync_operations SET status = ? WHERE status = ?`,
		string(models.StatusPending), string(models.StatusInProgress))
	if err != nil {
		return 0, fmt.Errorf("failed to recover stale operations: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to check recover result: %w", err)
	}
	return int(affected), nil
}

// DeleteCompletedBefore removes completed operations created before the cutoff
func (s *Storage) DeleteCompletedBefore(ctx context.Context, cutoff time.Time) (int, error) {
	res, err := s.db.ExecContext(ctx,
		`DELETE FROM sync_operations WHERE status = ? AND created_at < ?`,
		string(models.StatusCompleted), cutoff.UnixNano())
	if err != nil {
		return 0, fmt.Errorf("failed to delete completed operations: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to check cleanup result: %w", err)
	}
	return int(affected), nil
}

// withTx runs fn inside a transaction with rollback on error
func (s *Storage) withTx(ctx context.Context, fn func(tx *sql.Tx) error) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	if err := fn(tx); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			return fmt.Errorf("rollback failed: %v (original error: %w)", rbErr, err)
		}
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

func currentStatus(ctx context.Context, tx *sql.Tx, id string) (models.Status, error) {
	var raw string
	row := tx.QueryRowContext(ctx, `SELECT status FROM sync_operations WHERE id = ?`, id)
	if err := row.Scan(&raw); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", queue.ErrOperationNotFound
		}
		return "", fmt.Errorf("failed to read status: %w", err)
	}
	return models.Status(raw), nil
}

// scanner covers both *sql.Row and *sql.Rows
type scanner interface {
	Scan(dest ...any) error
}

func scanOperation(row scanner) (*models.Operation, error) {
	var (
		op              models.Operation
		kind, priority  string
		status, payload string
		createdAt       int64
		notBefore       int64
	)

	err := row.Scan(
		&op.ID, &kind, &op.AggregateType, &op.AggregateID, &payload,
		&priority, &status, &createdAt, &op.RetryCount, &op.LastError, &notBefore,
	)
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal([]byte(payload), &op.Payload); err != nil {
		return nil, fmt.Errorf("failed to unmarshal payload: %w", err)
	}

	op.Kind = models.OperationKind(kind)
	op.Priority = models.Priority(priority)
	op.Status = models.Status(status)
	op.CreatedAt = time.Unix(0, createdAt)
	if notBefore != 0 {
		op.NotBefore = time.Unix(0, notBefore)
	}
	return &op, nil
}

func notBeforeNano(t time.Time) int64 {
	if t.IsZero() {
		return 0
	}
	return t.UnixNano()
}
