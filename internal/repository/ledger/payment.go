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

const paymentColumns = `id, order_id, method, amount, status, gateway_ref, last_error, created_at, updated_at`

func scanPayment(row pgx.Row) (*entities.Payment, error) {
	var p PaymentDB
	err := row.Scan(&p.ID, &p.OrderID, &p.Method, &p.Amount, &p.Status, &p.GatewayRef, &p.LastError, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return ToPaymentDomain(&p), nil
}

func (r *Repository) CreatePayment(
	ctx context.Context,
	orderID int64,
	method entities.PaymentMethod,
	amount int64,
	status entities.PaymentStatus,
) (*entities.Payment, error) {
	query := `INSERT INTO payments (order_id, method, amount, status)
		VALUES ($1, $2, $3, $4)
		RETURNING ` + paymentColumns

	payment, err := scanPayment(r.querier.QueryRow(ctx, query, orderID, method.String(), amount, status.String()))
	if err != nil {
		if repository.IsPgErrorWithCode(err, repository.PgErrForeignKeyViolation) {
			return nil, ledger.ErrOrderNotFound
		}
		return nil, fmt.Errorf("unexpected ledger repository create payment error: %w", err)
	}
	return payment, nil
}

func (r *Repository) GetPaymentByID(ctx context.Context, id int64) (*entities.Payment, error) {
	query := `SELECT ` + paymentColumns + ` FROM payments WHERE id = $1`
	return r.getPayment(ctx, query, id)
}

func (r *Repository) GetPaymentByOrderID(ctx context.Context, orderID int64) (*entities.Payment, error) {
	query := `SELECT ` + paymentColumns + `
		FROM payments
		WHERE order_id = $1
		ORDER BY id DESC
		LIMIT 1`
	return r.getPayment(ctx, query, orderID)
}

// GetPaymentByOrderIDForUpdate берет последнюю попытку оплаты заказа.
func (r *Repository) GetPaymentByOrderIDForUpdate(ctx context.Context, orderID int64) (*entities.Payment, error) {
	query := `SELECT ` + paymentColumns + `
		FROM payments
		WHERE order_id = $1
		ORDER BY id DESC
		LIMIT 1
		FOR UPDATE`
	return r.getPayment(ctx, query, orderID)
}

func (r *Repository) getPayment(ctx context.Context, query string, arg int64) (*entities.Payment, error) {
	payment, err := scanPayment(r.querier.QueryRow(ctx, query, arg))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ledger.ErrPaymentNotFound
		}
		return nil, fmt.Errorf("unexpected ledger repository get payment error: %w", err)
	}
	return payment, nil
}

// UpdatePaymentStatus меняет статус только из перечисленных from.
// gatewayRef записывается, если передан.
func (r *Repository) UpdatePaymentStatus(
	ctx context.Context,
	id int64,
	to entities.PaymentStatus,
	from []entities.PaymentStatus,
	gatewayRef *string,
) (*entities.Payment, error) {
	query := `
		UPDATE payments
		SET status = $2,
			gateway_ref = COALESCE($4, gateway_ref),
			last_error = CASE WHEN $4::text IS NULL THEN last_error ELSE NULL END,
			updated_at = NOW()
		WHERE id = $1 AND status = ANY($3)
		RETURNING ` + paymentColumns

	payment, err := scanPayment(r.querier.QueryRow(ctx, query, id, to.String(), paymentStatusStrings(from), gatewayRef))
	if err == nil {
		return payment, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("unexpected ledger repository update payment error: %w", err)
	}

	if _, getErr := r.GetPaymentByID(ctx, id); getErr != nil {
		return nil, getErr
	}
	return nil, ledger.ErrPaymentTerminal
}

func (r *Repository) RecordPaymentError(ctx context.Context, id int64, lastError string) error {
	query := `UPDATE payments SET last_error = $2, updated_at = NOW() WHERE id = $1`

	tag, err := r.querier.Exec(ctx, query, id, lastError)
	if err != nil {
		return fmt.Errorf("unexpected ledger repository record payment error: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ledger.ErrPaymentNotFound
	}
	return nil
}
