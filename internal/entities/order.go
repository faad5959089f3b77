package entities

import "time"

type Order struct {
	ID         int64
	DeliveryID int64
	CustomerID int64
	Status     OrderStatusType
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

type OrderStatusType string

const (
	OrderRequested OrderStatusType = "requested"
	OrderAssigned  OrderStatusType = "assigned"
	OrderPickedUp  OrderStatusType = "picked_up"
	OrderDelivered OrderStatusType = "delivered"
	OrderPaid      OrderStatusType = "paid"
	OrderCanceled  OrderStatusType = "canceled"
)

func (s OrderStatusType) String() string {
	return string(s)
}

type PaymentMethod string

const (
	PaymentCash     PaymentMethod = "cash"
	PaymentCard     PaymentMethod = "card"
	PaymentTransfer PaymentMethod = "transfer"
)

func (m PaymentMethod) String() string {
	return string(m)
}

type PaymentStatus string

const (
	PaymentReady    PaymentStatus = "ready"
	PaymentPending  PaymentStatus = "pending"
	PaymentPaid     PaymentStatus = "paid"
	PaymentFailed   PaymentStatus = "failed"
	PaymentCanceled PaymentStatus = "canceled"
	PaymentRefunded PaymentStatus = "refunded"
	// PaymentRefundPending: деньги списаны, возврат через шлюз еще не подтвержден.
	PaymentRefundPending PaymentStatus = "refund_pending"
)

func (s PaymentStatus) String() string {
	return string(s)
}

// IsTerminal: paid - терминальный успех, canceled/refunded/failed - терминальный отказ.
func (s PaymentStatus) IsTerminal() bool {
	switch s {
	case PaymentPaid, PaymentFailed, PaymentCanceled, PaymentRefunded:
		return true
	default:
		return false
	}
}

type Payment struct {
	ID         int64
	OrderID    int64
	Method     PaymentMethod
	Amount     int64
	Status     PaymentStatus
	GatewayRef *string
	LastError  *string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// CancellationLedger describes what a cancellation did to the sub-ledgers.
type CancellationLedger struct {
	Order      *Order
	Payment    *Payment
	Settlement *Settlement
	// RefundViaGateway is set when money was captured and must be returned by the gateway.
	RefundViaGateway bool
}

type RefundRequest struct {
	PaymentID int64
	OrderID   int64
	Amount    int64
	Reason    string
}

// OrderTransition - целевой статус заказа и статусы, из которых в него можно перейти.
// Заказ никогда не откатывается назад.
type OrderTransition struct {
	To   OrderStatusType
	From []OrderStatusType
}

// OrderDrift - заказ, статус которого разошелся со статусом доставки.
type OrderDrift struct {
	DeliveryID     int64
	DeliveryStatus DeliveryStatus
	OrderStatus    OrderStatusType
}

type PaymentCallback struct {
	PaymentID  int64
	Status     PaymentStatus
	GatewayRef *string
}
