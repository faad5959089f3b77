package delivery

import "time"

type DeliveryDB struct {
	ID            int64
	CustomerID    int64
	PickupLat     float64
	PickupLng     float64
	PickupAddress string
	DropLat       float64
	DropLng       float64
	DropAddress   string
	ItemClass     string
	Vehicle       string
	Urgency       string
	Scheduling    string
	ScheduledAt   *time.Time
	DistanceKm    float64
	QuotedFee     int64
	OverrideFee   *int64
	TotalFee      int64
	CourierFee    int64
	PlatformFee   int64
	PaymentMethod string
	CourierID     *int64
	LastCourierID *int64
	Status        string
	CancelReason  *string
	CreatedAt     time.Time
	AcceptedAt    *time.Time
	PickedUpAt    *time.Time
	DeliveredAt   *time.Time
	CancelledAt   *time.Time
	UpdatedAt     time.Time
}
