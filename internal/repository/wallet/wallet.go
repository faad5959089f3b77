package wallet

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"lastmile/internal/entities"
	"lastmile/internal/repository"
	"lastmile/internal/service/ledger"
	"lastmile/internal/service/wallet"
)

const walletColumns = `courier_id, pending_balance, available_balance, updated_at`

type WalletDB struct {
	CourierID        int64
	PendingBalance   int64
	AvailableBalance int64
	UpdatedAt        time.Time
}

func ToDomain(w *WalletDB) *entities.Wallet {
	return &entities.Wallet{
		CourierID:        w.CourierID,
		PendingBalance:   w.PendingBalance,
		AvailableBalance: w.AvailableBalance,
		UpdatedAt:        w.UpdatedAt,
	}
}

// Repository меняет балансы только инкрементом в одном UPDATE.
// Отрицательный баланс отсекает условие WHERE, а CHECK в схеме страхует его.
type Repository struct {
	querier repository.Querier
}

func New(querier repository.Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func scanWallet(row pgx.Row) (*entities.Wallet, error) {
	var w WalletDB
	if err := row.Scan(&w.CourierID, &w.PendingBalance, &w.AvailableBalance, &w.UpdatedAt); err != nil {
		return nil, err
	}
	return ToDomain(&w), nil
}

func (r *Repository) Get(ctx context.Context, courierID int64) (*entities.Wallet, error) {
	query := `SELECT ` + walletColumns + ` FROM wallets WHERE courier_id = $1`

	w, err := scanWallet(r.querier.QueryRow(ctx, query, courierID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, wallet.ErrWalletNotFound
		}
		return nil, fmt.Errorf("unexpected wallet repository get error: %w", err)
	}
	return w, nil
}

// CreditPending создает кошелек при первом расчете курьера.
func (r *Repository) CreditPending(ctx context.Context, courierID, amount int64) (*entities.Wallet, error) {
	query := `INSERT INTO wallets (courier_id, pending_balance)
		VALUES ($1, $2)
		ON CONFLICT (courier_id) DO UPDATE
		SET pending_balance = wallets.pending_balance + EXCLUDED.pending_balance, updated_at = NOW()
		RETURNING ` + walletColumns

	w, err := scanWallet(r.querier.QueryRow(ctx, query, courierID, amount))
	if err != nil {
		if repository.IsPgErrorWithCode(err, repository.PgErrForeignKeyViolation) {
			return nil, wallet.ErrInvalidCourierID
		}
		return nil, fmt.Errorf("unexpected wallet repository credit pending error: %w", err)
	}
	return w, nil
}

func (r *Repository) RevokePending(ctx context.Context, courierID, amount int64) (*entities.Wallet, error) {
	query := `UPDATE wallets
		SET pending_balance = pending_balance - $2, updated_at = NOW()
		WHERE courier_id = $1 AND pending_balance >= $2
		RETURNING ` + walletColumns

	return r.conditional(ctx, "revoke pending", ledger.ErrInsufficientPending, query, courierID, amount)
}

// MovePendingToAvailable - подтверждение расчета: обе колонки меняются в одной строке атомарно.
func (r *Repository) MovePendingToAvailable(ctx context.Context, courierID, amount int64) (*entities.Wallet, error) {
	query := `UPDATE wallets
		SET pending_balance = pending_balance - $2,
			available_balance = available_balance + $2,
			updated_at = NOW()
		WHERE courier_id = $1 AND pending_balance >= $2
		RETURNING ` + walletColumns

	return r.conditional(ctx, "move pending", ledger.ErrInsufficientPending, query, courierID, amount)
}

// Debit - холд под заявку на выплату.
func (r *Repository) Debit(ctx context.Context, courierID, amount int64) (*entities.Wallet, error) {
	query := `UPDATE wallets
		SET available_balance = available_balance - $2, updated_at = NOW()
		WHERE courier_id = $1 AND available_balance >= $2
		RETURNING ` + walletColumns

	return r.conditional(ctx, "debit", wallet.ErrInsufficientBalance, query, courierID, amount)
}

func (r *Repository) Credit(ctx context.Context, courierID, amount int64) (*entities.Wallet, error) {
	query := `UPDATE wallets
		SET available_balance = available_balance + $2, updated_at = NOW()
		WHERE courier_id = $1
		RETURNING ` + walletColumns

	return r.conditional(ctx, "credit", wallet.ErrWalletNotFound, query, courierID, amount)
}

// conditional различает "нет кошелька" и "не выполнилось условие".
func (r *Repository) conditional(
	ctx context.Context,
	op string,
	conditionErr error,
	query string,
	courierID, amount int64,
) (*entities.Wallet, error) {
	w, err := scanWallet(r.querier.QueryRow(ctx, query, courierID, amount))
	if err == nil {
		return w, nil
	}
	if repository.IsPgErrorWithCode(err, repository.PgErrCheckViolation) {
		return nil, conditionErr
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("unexpected wallet repository %s error: %w", op, err)
	}

	if _, err := r.Get(ctx, courierID); err != nil {
		return nil, err
	}
	return nil, conditionErr
}
