package payout

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"lastmile/internal/entities"
	"lastmile/internal/repository"
	"lastmile/internal/service/wallet"
)

const payoutColumns = `id, courier_id, amount, status, note, created_at, processed_at, updated_at`

// uniq_payout_requests_open: не больше одной открытой заявки на курьера.
const openPayoutIndex = "uniq_payout_requests_open"

type PayoutDB struct {
	ID          int64
	CourierID   int64
	Amount      int64
	Status      string
	Note        *string
	CreatedAt   time.Time
	ProcessedAt *time.Time
	UpdatedAt   time.Time
}

func ToDomain(p *PayoutDB) *entities.PayoutRequest {
	return &entities.PayoutRequest{
		ID:          p.ID,
		CourierID:   p.CourierID,
		Amount:      p.Amount,
		Status:      entities.PayoutStatus(p.Status),
		Note:        p.Note,
		CreatedAt:   p.CreatedAt,
		ProcessedAt: p.ProcessedAt,
		UpdatedAt:   p.UpdatedAt,
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

func scanPayout(row pgx.Row) (*entities.PayoutRequest, error) {
	var p PayoutDB
	err := row.Scan(&p.ID, &p.CourierID, &p.Amount, &p.Status, &p.Note, &p.CreatedAt, &p.ProcessedAt, &p.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return ToDomain(&p), nil
}

func (r *Repository) Create(ctx context.Context, courierID, amount int64) (*entities.PayoutRequest, error) {
	query := `INSERT INTO payout_requests (courier_id, amount, status)
		VALUES ($1, $2, 'pending')
		RETURNING ` + payoutColumns

	payout, err := scanPayout(r.querier.QueryRow(ctx, query, courierID, amount))
	if err != nil {
		switch {
		case repository.IsPgErrorWithCode(err, repository.PgErrUniqueViolation) &&
			repository.ConstraintName(err) == openPayoutIndex:
			return nil, wallet.ErrPayoutInProgress
		case repository.IsPgErrorWithCode(err, repository.PgErrForeignKeyViolation):
			return nil, wallet.ErrWalletNotFound
		}
		return nil, fmt.Errorf("unexpected payout repository create error: %w", err)
	}
	return payout, nil
}

func (r *Repository) GetByID(ctx context.Context, id int64) (*entities.PayoutRequest, error) {
	query := `SELECT ` + payoutColumns + ` FROM payout_requests WHERE id = $1`

	payout, err := scanPayout(r.querier.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, wallet.ErrPayoutNotFound
		}
		return nil, fmt.Errorf("unexpected payout repository get error: %w", err)
	}
	return payout, nil
}

// Transition возвращает ErrIllegalPayoutTransition, если заявки нет в статусах from.
func (r *Repository) Transition(
	ctx context.Context,
	id int64,
	to entities.PayoutStatus,
	from []entities.PayoutStatus,
	note *string,
) (*entities.PayoutRequest, error) {
	fromStrings := make([]string, len(from))
	for i, s := range from {
		fromStrings[i] = s.String()
	}

	query := `UPDATE payout_requests
		SET status = $2,
			note = COALESCE($4, note),
			processed_at = CASE WHEN $2 IN ('paid', 'rejected') THEN NOW() ELSE processed_at END,
			updated_at = NOW()
		WHERE id = $1 AND status = ANY($3)
		RETURNING ` + payoutColumns

	payout, err := scanPayout(r.querier.QueryRow(ctx, query, id, to.String(), fromStrings, note))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, wallet.ErrIllegalPayoutTransition
		}
		return nil, fmt.Errorf("unexpected payout repository transition error: %w", err)
	}
	return payout, nil
}

func (r *Repository) ListByCourier(ctx context.Context, courierID int64) ([]entities.PayoutRequest, error) {
	query := `SELECT ` + payoutColumns + `
		FROM payout_requests
		WHERE courier_id = $1
		ORDER BY id DESC`

	rows, err := r.querier.Query(ctx, query, courierID)
	if err != nil {
		return nil, fmt.Errorf("unexpected payout repository list error: %w", err)
	}
	defer rows.Close()

	payouts := make([]entities.PayoutRequest, 0)
	for rows.Next() {
		payout, err := scanPayout(rows)
		if err != nil {
			return nil, fmt.Errorf("unexpected payout repository list error: %w", err)
		}
		payouts = append(payouts, *payout)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected payout repository list error: %w", err)
	}

	return payouts, nil
}
