package completion

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"lastmile/internal/entities"
	"lastmile/internal/repository"
)

const taskColumns = `delivery_id, effect, status, attempts, last_error, created_at, updated_at`

type TaskDB struct {
	DeliveryID int64
	Effect     string
	Status     string
	Attempts   int
	LastError  *string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

func ToDomain(t *TaskDB) entities.CompletionTask {
	return entities.CompletionTask{
		DeliveryID: t.DeliveryID,
		Effect:     entities.CompletionEffect(t.Effect),
		Status:     entities.TaskStatus(t.Status),
		Attempts:   t.Attempts,
		LastError:  t.LastError,
		CreatedAt:  t.CreatedAt,
		UpdatedAt:  t.UpdatedAt,
	}
}

type Repository struct {
	querier repository.Querier
}

func New(querier repository.Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

// Schedule пишет задачи в той же транзакции, что и переход в delivered.
func (r *Repository) Schedule(ctx context.Context, deliveryID int64, effects []entities.CompletionEffect) error {
	names := make([]string, len(effects))
	for i, e := range effects {
		names[i] = e.String()
	}

	query := `INSERT INTO completion_tasks (delivery_id, effect)
		SELECT $1::bigint, unnest($2::text[])
		ON CONFLICT (delivery_id, effect) DO NOTHING`

	if _, err := r.querier.Exec(ctx, query, deliveryID, names); err != nil {
		return fmt.Errorf("unexpected completion repository schedule error: %w", err)
	}
	return nil
}

func (r *Repository) MarkDone(ctx context.Context, deliveryID int64, effect entities.CompletionEffect) error {
	query := `UPDATE completion_tasks
		SET status = 'done', attempts = attempts + 1, last_error = NULL, updated_at = NOW()
		WHERE delivery_id = $1 AND effect = $2`

	if _, err := r.querier.Exec(ctx, query, deliveryID, effect.String()); err != nil {
		return fmt.Errorf("unexpected completion repository mark done error: %w", err)
	}
	return nil
}

func (r *Repository) MarkFailed(ctx context.Context, deliveryID int64, effect entities.CompletionEffect, lastError string) error {
	query := `UPDATE completion_tasks
		SET status = 'failed', attempts = attempts + 1, last_error = $3, updated_at = NOW()
		WHERE delivery_id = $1 AND effect = $2 AND status <> 'done'`

	if _, err := r.querier.Exec(ctx, query, deliveryID, effect.String(), lastError); err != nil {
		return fmt.Errorf("unexpected completion repository mark failed error: %w", err)
	}
	return nil
}

// ListRetryable отдает незавершенные задачи, не трогавшиеся дольше staleAfter.
// Свежие pending задачи еще может выполнять синхронный прогон после коммита.
func (r *Repository) ListRetryable(
	ctx context.Context,
	staleAfter time.Duration,
	maxAttempts int,
	limit uint64,
) ([]entities.CompletionTask, error) {
	query := `SELECT ` + taskColumns + `
		FROM completion_tasks
		WHERE status <> 'done'
			AND attempts < $1
			AND updated_at < NOW() - make_interval(secs => $2::double precision)
		ORDER BY updated_at, delivery_id
		LIMIT $3`

	rows, err := r.querier.Query(ctx, query, maxAttempts, staleAfter.Seconds(), limit)
	if err != nil {
		return nil, fmt.Errorf("unexpected completion repository list retryable error: %w", err)
	}
	return collectTasks(rows)
}

func (r *Repository) ListByDelivery(ctx context.Context, deliveryID int64) ([]entities.CompletionTask, error) {
	query := `SELECT ` + taskColumns + `
		FROM completion_tasks
		WHERE delivery_id = $1
		ORDER BY effect`

	rows, err := r.querier.Query(ctx, query, deliveryID)
	if err != nil {
		return nil, fmt.Errorf("unexpected completion repository list error: %w", err)
	}
	return collectTasks(rows)
}

func collectTasks(rows pgx.Rows) ([]entities.CompletionTask, error) {
	defer rows.Close()

	tasks := make([]entities.CompletionTask, 0, 4)
	for rows.Next() {
		var t TaskDB
		err := rows.Scan(&t.DeliveryID, &t.Effect, &t.Status, &t.Attempts, &t.LastError, &t.CreatedAt, &t.UpdatedAt)
		if err != nil {
			return nil, fmt.Errorf("unexpected completion repository scan error: %w", err)
		}
		tasks = append(tasks, ToDomain(&t))
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected completion repository rows error: %w", err)
	}
	return tasks, nil
}
