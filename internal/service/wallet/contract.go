//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=wallet_test
package wallet

import (
	"context"

	"lastmile/internal/entities"
)

type Repository interface {
	Get(ctx context.Context, courierID int64) (*entities.Wallet, error)
	MovePendingToAvailable(ctx context.Context, courierID, amount int64) (*entities.Wallet, error)
	Debit(ctx context.Context, courierID, amount int64) (*entities.Wallet, error)
	Credit(ctx context.Context, courierID, amount int64) (*entities.Wallet, error)
}

type PayoutRepository interface {
	Create(ctx context.Context, courierID, amount int64) (*entities.PayoutRequest, error)
	GetByID(ctx context.Context, id int64) (*entities.PayoutRequest, error)
	Transition(ctx context.Context, id int64, to entities.PayoutStatus, from []entities.PayoutStatus, note *string) (*entities.PayoutRequest, error)
	ListByCourier(ctx context.Context, courierID int64) ([]entities.PayoutRequest, error)
}

type SettlementRepository interface {
	GetSettlementByID(ctx context.Context, id int64) (*entities.Settlement, error)
	ConfirmSettlement(ctx context.Context, id int64) (*entities.Settlement, error)
	ListConfirmedSettlementsForUpdate(ctx context.Context, courierID int64) ([]entities.Settlement, error)
	DrawSettlements(ctx context.Context, payoutID int64, draws []entities.SettlementDraw) error
}

type TxManager interface {
	DoReadCommitted(ctx context.Context, fn func(ctx context.Context) error) error
}
