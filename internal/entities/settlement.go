package entities

import "time"

type SettlementStatus string

const (
	SettlementPending   SettlementStatus = "pending"
	SettlementConfirmed SettlementStatus = "confirmed"
	SettlementPaidOut   SettlementStatus = "paid_out"
	SettlementExcluded  SettlementStatus = "excluded"
)

func (s SettlementStatus) String() string {
	return string(s)
}

type Settlement struct {
	ID              int64
	DeliveryID      int64
	CourierID       int64
	Amount          int64
	PaidOutAmount   int64
	Status          SettlementStatus
	ExcludedReason  *string
	PayoutRequestID *int64
	CreatedAt       time.Time
	ConfirmedAt     *time.Time
	UpdatedAt       time.Time
}

// Remaining - часть суммы, еще не списанная выплатами.
func (s Settlement) Remaining() int64 {
	return s.Amount - s.PaidOutAmount
}

// SettlementDraw - часть расчета, списанная одной выплатой.
type SettlementDraw struct {
	SettlementID int64
	Amount       int64
}
