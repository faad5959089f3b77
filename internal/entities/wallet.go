package entities

import "time"

type Wallet struct {
	CourierID        int64
	PendingBalance   int64
	AvailableBalance int64
	UpdatedAt        time.Time
}

type PayoutStatus string

const (
	PayoutPending  PayoutStatus = "pending"
	PayoutApproved PayoutStatus = "approved"
	PayoutPaid     PayoutStatus = "paid"
	PayoutRejected PayoutStatus = "rejected"
)

func (s PayoutStatus) String() string {
	return string(s)
}

func (s PayoutStatus) IsTerminal() bool {
	return s == PayoutPaid || s == PayoutRejected
}

type PayoutRequest struct {
	ID          int64
	CourierID   int64
	Amount      int64
	Status      PayoutStatus
	Note        *string
	CreatedAt   time.Time
	ProcessedAt *time.Time
	UpdatedAt   time.Time
}

type PayoutAction string

const (
	PayoutActionApprove PayoutAction = "approve"
	PayoutActionPaid    PayoutAction = "paid"
	PayoutActionReject  PayoutAction = "reject"
)

type PayoutResult struct {
	Payout *PayoutRequest
	Wallet *Wallet
	// SettlementIDs consumed FIFO when the payout was marked paid.
	SettlementIDs []int64
	Draws         []SettlementDraw
}

type SettlementConfirmation struct {
	Settlement *Settlement
	Wallet     *Wallet
}
