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

const orderColumns = `id, delivery_id, customer_id, status, created_at, updated_at`

func scanOrder(row pgx.Row) (*entities.Order, error) {
	var o OrderDB
	err := row.Scan(&o.ID, &o.DeliveryID, &o.CustomerID, &o.Status, &o.CreatedAt, &o.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return ToOrderDomain(&o), nil
}

func (r *Repository) CreateOrder(ctx context.Context, deliveryID, customerID int64) (*entities.Order, error) {
	query := `INSERT INTO orders (delivery_id, customer_id, status)
		VALUES ($1, $2, 'requested')
		RETURNING ` + orderColumns

	order, err := scanOrder(r.querier.QueryRow(ctx, query, deliveryID, customerID))
	if err != nil {
		if repository.IsPgErrorWithCode(err, repository.PgErrUniqueViolation) {
			return nil, ledger.ErrOrderAlreadyExists
		}
		return nil, fmt.Errorf("unexpected ledger repository create order error: %w", err)
	}
	return order, nil
}

func (r *Repository) GetOrderByDeliveryID(ctx context.Context, deliveryID int64) (*entities.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders WHERE delivery_id = $1`

	order, err := scanOrder(r.querier.QueryRow(ctx, query, deliveryID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ledger.ErrOrderNotFound
		}
		return nil, fmt.Errorf("unexpected ledger repository get order error: %w", err)
	}
	return order, nil
}

// AdvanceOrderStatus двигает заказ только вперед. Если заказ уже дальше,
// возвращается текущая строка без изменений.
func (r *Repository) AdvanceOrderStatus(
	ctx context.Context,
	deliveryID int64,
	transition entities.OrderTransition,
) (*entities.Order, error) {
	query := `
		WITH updated AS (
			UPDATE orders
			SET status = $2, updated_at = NOW()
			WHERE delivery_id = $1 AND status = ANY($3)
			RETURNING ` + orderColumns + `
		)
		SELECT ` + orderColumns + ` FROM updated
		UNION ALL
		SELECT ` + orderColumns + ` FROM orders
		WHERE delivery_id = $1 AND NOT EXISTS (SELECT 1 FROM updated)`

	order, err := scanOrder(r.querier.QueryRow(
		ctx,
		query,
		deliveryID,
		transition.To.String(),
		orderStatusStrings(transition.From),
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ledger.ErrOrderNotFound
		}
		return nil, fmt.Errorf("unexpected ledger repository advance order error: %w", err)
	}
	return order, nil
}

// ListOrderDrift находит заказы, отставшие от своей доставки.
// Условия повторяют таблицу проекции, поэтому забежавший вперед заказ (paid) не попадает.
func (r *Repository) ListOrderDrift(ctx context.Context, limit uint64) ([]entities.OrderDrift, error) {
	query := `
		SELECT d.id, d.status, o.status
		FROM orders o
		JOIN delivery_requests d ON d.id = o.delivery_id
		WHERE (d.status = 'accepted' AND o.status = 'requested')
			OR (d.status IN ('picked_up', 'in_transit') AND o.status IN ('requested', 'assigned'))
			OR (d.status IN ('delivered', 'cancelled') AND o.status IN ('requested', 'assigned', 'picked_up'))
		ORDER BY d.id
		LIMIT $1`

	rows, err := r.querier.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("unexpected ledger repository order drift error: %w", err)
	}
	defer rows.Close()

	drifts := make([]entities.OrderDrift, 0)
	for rows.Next() {
		var (
			drift          entities.OrderDrift
			deliveryStatus string
			orderStatus    string
		)
		if err := rows.Scan(&drift.DeliveryID, &deliveryStatus, &orderStatus); err != nil {
			return nil, fmt.Errorf("unexpected ledger repository order drift error: %w", err)
		}
		drift.DeliveryStatus = entities.DeliveryStatus(deliveryStatus)
		drift.OrderStatus = entities.OrderStatusType(orderStatus)
		drifts = append(drifts, drift)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected ledger repository order drift error: %w", err)
	}

	return drifts, nil
}
