package ledger

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"lastmile/internal/entities"
	"lastmile/internal/repository"
	"lastmile/internal/service/ledger"
)

const settlementColumns = `id, delivery_id, courier_id, amount, paid_out_amount, status, excluded_reason,
	payout_request_id, created_at, confirmed_at, updated_at`

func scanSettlement(row pgx.Row) (*entities.Settlement, error) {
	var s SettlementDB
	err := row.Scan(
		&s.ID,
		&s.DeliveryID,
		&s.CourierID,
		&s.Amount,
		&s.PaidOutAmount,
		&s.Status,
		&s.ExcludedReason,
		&s.PayoutRequestID,
		&s.CreatedAt,
		&s.ConfirmedAt,
		&s.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return ToSettlementDomain(&s), nil
}

// InsertSettlementIfAbsent возвращает created=false, если расчет по доставке уже есть.
// Сумма берется только при первой вставке и больше не пересчитывается.
func (r *Repository) InsertSettlementIfAbsent(
	ctx context.Context,
	deliveryID, courierID, amount int64,
) (*entities.Settlement, bool, error) {
	query := `INSERT INTO settlements (delivery_id, courier_id, amount, status)
		VALUES ($1, $2, $3, 'pending')
		ON CONFLICT (delivery_id) DO NOTHING
		RETURNING ` + settlementColumns

	settlement, err := scanSettlement(r.querier.QueryRow(ctx, query, deliveryID, courierID, amount))
	if err == nil {
		return settlement, true, nil
	}
	if repository.IsPgErrorWithCode(err, repository.PgErrForeignKeyViolation) {
		return nil, false, ledger.ErrSettlementNotAllowed
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return nil, false, fmt.Errorf("unexpected ledger repository insert settlement error: %w", err)
	}

	// конфликт: отдельный SELECT видит строку, закоммиченную конкурентом
	existing, err := r.getSettlement(ctx, `SELECT `+settlementColumns+` FROM settlements WHERE delivery_id = $1`, deliveryID)
	if err != nil {
		return nil, false, err
	}
	return existing, false, nil
}

func (r *Repository) GetSettlementByID(ctx context.Context, id int64) (*entities.Settlement, error) {
	return r.getSettlement(ctx, `SELECT `+settlementColumns+` FROM settlements WHERE id = $1`, id)
}

func (r *Repository) GetSettlementByDeliveryIDForUpdate(ctx context.Context, deliveryID int64) (*entities.Settlement, error) {
	return r.getSettlement(ctx, `SELECT `+settlementColumns+` FROM settlements WHERE delivery_id = $1 FOR UPDATE`, deliveryID)
}

func (r *Repository) getSettlement(ctx context.Context, query string, arg int64) (*entities.Settlement, error) {
	settlement, err := scanSettlement(r.querier.QueryRow(ctx, query, arg))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ledger.ErrSettlementNotFound
		}
		return nil, fmt.Errorf("unexpected ledger repository get settlement error: %w", err)
	}
	return settlement, nil
}

func (r *Repository) ExcludeSettlement(ctx context.Context, id int64, reason string) (*entities.Settlement, error) {
	query := `UPDATE settlements
		SET status = 'excluded', excluded_reason = $2, updated_at = NOW()
		WHERE id = $1 AND status = 'pending'
		RETURNING ` + settlementColumns

	return r.settlementTransition(ctx, query, id, reason)
}

func (r *Repository) ConfirmSettlement(ctx context.Context, id int64) (*entities.Settlement, error) {
	query := `UPDATE settlements
		SET status = 'confirmed', confirmed_at = NOW(), updated_at = NOW()
		WHERE id = $1 AND status = 'pending'
		RETURNING ` + settlementColumns

	return r.settlementTransition(ctx, query, id)
}

func (r *Repository) settlementTransition(ctx context.Context, query string, args ...any) (*entities.Settlement, error) {
	settlement, err := scanSettlement(r.querier.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ledger.ErrSettlementNotPending
		}
		if repository.IsPgErrorWithCode(err, repository.PgErrCheckViolation) {
			return nil, fmt.Errorf("%w: exclusion requires a reason", ledger.ErrSettlementNotPending)
		}
		return nil, fmt.Errorf("unexpected ledger repository settlement transition error: %w", err)
	}
	return settlement, nil
}

// ListConfirmedSettlementsForUpdate отдает расчеты в порядке FIFO и блокирует их до конца транзакции.
func (r *Repository) ListConfirmedSettlementsForUpdate(ctx context.Context, courierID int64) ([]entities.Settlement, error) {
	query := `SELECT ` + settlementColumns + `
		FROM settlements
		WHERE courier_id = $1 AND status = 'confirmed'
		ORDER BY created_at, id
		FOR UPDATE`

	rows, err := r.querier.Query(ctx, query, courierID)
	if err != nil {
		return nil, fmt.Errorf("unexpected ledger repository list settlements error: %w", err)
	}
	defer rows.Close()

	settlements := make([]entities.Settlement, 0)
	for rows.Next() {
		settlement, err := scanSettlement(rows)
		if err != nil {
			return nil, fmt.Errorf("unexpected ledger repository list settlements error: %w", err)
		}
		settlements = append(settlements, *settlement)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected ledger repository list settlements error: %w", err)
	}

	return settlements, nil
}

// DrawSettlements списывает части расчетов в счет выплаты и пишет каждую часть
// в settlement_payouts. Расчет уходит в paid_out, когда списан целиком.
func (r *Repository) DrawSettlements(ctx context.Context, payoutID int64, draws []entities.SettlementDraw) error {
	query := `WITH drawn AS (
			UPDATE settlements
			SET paid_out_amount = paid_out_amount + $2,
				status = CASE WHEN paid_out_amount + $2 = amount THEN 'paid_out' ELSE status END,
				payout_request_id = $3,
				updated_at = NOW()
			WHERE id = $1 AND status = 'confirmed' AND paid_out_amount + $2 <= amount
			RETURNING id
		)
		INSERT INTO settlement_payouts (settlement_id, payout_request_id, amount)
		SELECT id, $3, $2 FROM drawn`

	for _, draw := range draws {
		tag, err := r.querier.Exec(ctx, query, draw.SettlementID, draw.Amount, payoutID)
		if err != nil {
			return fmt.Errorf("unexpected ledger repository draw settlement error: %w", err)
		}
		if tag.RowsAffected() != 1 {
			return fmt.Errorf("%w: settlement %d", ledger.ErrSettlementNotFound, draw.SettlementID)
		}
	}
	return nil
}
