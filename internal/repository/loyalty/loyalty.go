package loyalty

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"lastmile/internal/entities"
	"lastmile/internal/repository"
)

const creditColumns = `delivery_id, customer_id, points, created_at`

type Repository struct {
	querier repository.Querier
}

func New(querier repository.Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func scanCredit(row pgx.Row) (*entities.LoyaltyCredit, error) {
	var c entities.LoyaltyCredit
	if err := row.Scan(&c.DeliveryID, &c.CustomerID, &c.Points, &c.CreatedAt); err != nil {
		return nil, err
	}
	return &c, nil
}

// InsertCreditIfAbsent: одна запись на доставку, повтор возвращает существующую.
func (r *Repository) InsertCreditIfAbsent(ctx context.Context, credit entities.LoyaltyCredit) (*entities.LoyaltyCredit, error) {
	query := `INSERT INTO loyalty_credits (delivery_id, customer_id, points)
		VALUES ($1, $2, $3)
		ON CONFLICT (delivery_id) DO NOTHING
		RETURNING ` + creditColumns

	inserted, err := scanCredit(r.querier.QueryRow(ctx, query, credit.DeliveryID, credit.CustomerID, credit.Points))
	if err == nil {
		return inserted, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("unexpected loyalty repository insert error: %w", err)
	}

	existing, err := scanCredit(r.querier.QueryRow(ctx,
		`SELECT `+creditColumns+` FROM loyalty_credits WHERE delivery_id = $1`, credit.DeliveryID))
	if err != nil {
		return nil, fmt.Errorf("unexpected loyalty repository insert error: %w", err)
	}
	return existing, nil
}
