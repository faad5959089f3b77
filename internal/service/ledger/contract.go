//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=ledger_test
package ledger

import (
	"context"

	"lastmile/internal/entities"
)

type Repository interface {
	CreateOrder(ctx context.Context, deliveryID, customerID int64) (*entities.Order, error)
	GetOrderByDeliveryID(ctx context.Context, deliveryID int64) (*entities.Order, error)
	AdvanceOrderStatus(ctx context.Context, deliveryID int64, transition entities.OrderTransition) (*entities.Order, error)
	ListOrderDrift(ctx context.Context, limit uint64) ([]entities.OrderDrift, error)

	CreatePayment(ctx context.Context, orderID int64, method entities.PaymentMethod, amount int64, status entities.PaymentStatus) (*entities.Payment, error)
	GetPaymentByID(ctx context.Context, id int64) (*entities.Payment, error)
	GetPaymentByOrderID(ctx context.Context, orderID int64) (*entities.Payment, error)
	GetPaymentByOrderIDForUpdate(ctx context.Context, orderID int64) (*entities.Payment, error)
	UpdatePaymentStatus(ctx context.Context, id int64, to entities.PaymentStatus, from []entities.PaymentStatus, gatewayRef *string) (*entities.Payment, error)
	RecordPaymentError(ctx context.Context, id int64, lastError string) error

	InsertSettlementIfAbsent(ctx context.Context, deliveryID, courierID, amount int64) (*entities.Settlement, bool, error)
	GetSettlementByDeliveryIDForUpdate(ctx context.Context, deliveryID int64) (*entities.Settlement, error)
	ExcludeSettlement(ctx context.Context, id int64, reason string) (*entities.Settlement, error)
}

type WalletRepository interface {
	CreditPending(ctx context.Context, courierID, amount int64) (*entities.Wallet, error)
	RevokePending(ctx context.Context, courierID, amount int64) (*entities.Wallet, error)
}

type ProjectionFactory interface {
	GetTransition(status entities.DeliveryStatus) (*entities.OrderTransition, error)
	PaidTransition() *entities.OrderTransition
}

type PaymentGateway interface {
	Refund(ctx context.Context, req entities.RefundRequest) (string, error)
}

type TxManager interface {
	DoReadCommitted(ctx context.Context, fn func(ctx context.Context) error) error
}
