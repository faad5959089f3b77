package entities

import "time"

// ReferralLink is written once per customer and never overwritten.
type ReferralLink struct {
	CustomerID int64
	CourierID  int64
	Active     bool
	CreatedAt  time.Time
}

type RewardPolicy struct {
	ID        int64
	Rate      float64
	Active    bool
	DeletedAt *time.Time
	CreatedAt time.Time
}

type ReferralBonus struct {
	DeliveryID int64
	CourierID  int64
	CustomerID int64
	PolicyID   int64
	Amount     int64
	CreatedAt  time.Time
}

type LoyaltyCredit struct {
	DeliveryID int64
	CustomerID int64
	Points     int64
	CreatedAt  time.Time
}
