package ledger

import "time"

type OrderDB struct {
	ID         int64
	DeliveryID int64
	CustomerID int64
	Status     string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

type PaymentDB struct {
	ID         int64
	OrderID    int64
	Method     string
	Amount     int64
	Status     string
	GatewayRef *string
	LastError  *string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

type SettlementDB struct {
	ID              int64
	DeliveryID      int64
	CourierID       int64
	Amount          int64
	PaidOutAmount   int64
	Status          string
	ExcludedReason  *string
	PayoutRequestID *int64
	CreatedAt       time.Time
	ConfirmedAt     *time.Time
	UpdatedAt       time.Time
}
