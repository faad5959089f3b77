package entities

import "time"

type DeliveryStatus string

const (
	DeliveryPending   DeliveryStatus = "pending"
	DeliveryAccepted  DeliveryStatus = "accepted"
	DeliveryPickedUp  DeliveryStatus = "picked_up"
	DeliveryInTransit DeliveryStatus = "in_transit"
	DeliveryDelivered DeliveryStatus = "delivered"
	DeliveryCancelled DeliveryStatus = "cancelled"
)

func (s DeliveryStatus) String() string {
	return string(s)
}

func (s DeliveryStatus) IsTerminal() bool {
	return s == DeliveryDelivered || s == DeliveryCancelled
}

// HoldsGoods: picked_up и in_transit для леджера одно и то же - товар у курьера.
func (s DeliveryStatus) HoldsGoods() bool {
	return s == DeliveryPickedUp || s == DeliveryInTransit
}

// ItemClass - весовой/габаритный класс посылки. Порядок объявления = порядок тиров.
type ItemClass string

const (
	ItemDocument ItemClass = "document"
	ItemSmall    ItemClass = "small"
	ItemMedium   ItemClass = "medium"
	ItemLarge    ItemClass = "large"
	ItemBulky    ItemClass = "bulky"
)

var itemClassTiers = map[ItemClass]int{
	ItemDocument: 0,
	ItemSmall:    1,
	ItemMedium:   2,
	ItemLarge:    3,
	ItemBulky:    4,
}

// ItemClasses returns all classes ordered from the lightest tier.
func ItemClasses() []ItemClass {
	return []ItemClass{ItemDocument, ItemSmall, ItemMedium, ItemLarge, ItemBulky}
}

// Tier returns the class tier, or -1 for an unknown class.
func (c ItemClass) Tier() int {
	tier, ok := itemClassTiers[c]
	if !ok {
		return -1
	}
	return tier
}

func (c ItemClass) String() string {
	return string(c)
}

type Urgency string

const (
	UrgencyStandard Urgency = "standard"
	UrgencyExpress  Urgency = "express"
)

type SchedulingMode string

const (
	ScheduleImmediate SchedulingMode = "immediate"
	ScheduleLater     SchedulingMode = "scheduled"
)

type DeliveryRequest struct {
	ID            int64
	CustomerID    int64
	Pickup        Point
	PickupAddress string
	Drop          Point
	DropAddress   string
	ItemClass     ItemClass
	Vehicle       CourierTransportType
	Urgency       Urgency
	Scheduling    SchedulingMode
	ScheduledAt   *time.Time
	DistanceKm    float64
	QuotedFee     int64
	OverrideFee   *int64
	TotalFee      int64
	CourierFee    int64
	PlatformFee   int64
	PaymentMethod PaymentMethod
	CourierID     *int64
	LastCourierID *int64
	Status        DeliveryStatus
	CancelReason  *string
	CreatedAt     time.Time
	AcceptedAt    *time.Time
	PickedUpAt    *time.Time
	DeliveredAt   *time.Time
	CancelledAt   *time.Time
	UpdatedAt     time.Time
}

// DeliveryCreate is the validated, priced input persisted at request time.
type DeliveryCreate struct {
	CustomerID    int64
	Pickup        Point
	PickupAddress string
	Drop          Point
	DropAddress   string
	ItemClass     ItemClass
	Vehicle       CourierTransportType
	Urgency       Urgency
	Scheduling    SchedulingMode
	ScheduledAt   *time.Time
	PaymentMethod PaymentMethod
	OverrideFee   *int64

	DistanceKm  float64
	QuotedFee   int64
	TotalFee    int64
	CourierFee  int64
	PlatformFee int64
}

type DeliveryFilter struct {
	Status     *DeliveryStatus
	CustomerID *int64
	CourierID  *int64
	Limit      uint64
	Offset     uint64
}

type CancelActor string

const (
	ActorCustomer CancelActor = "customer"
	ActorAdmin    CancelActor = "admin"
)

type DeliveryCancel struct {
	DeliveryID int64
	Actor      CancelActor
	ActorID    int64
	Reason     string
}

// DeliveryCreated bundles the request with the ledger rows opened for it.
type DeliveryCreated struct {
	Delivery *DeliveryRequest
	Order    *Order
	Payment  *Payment
}

type DeliveryCancellation struct {
	Delivery       *DeliveryRequest
	PreviousStatus DeliveryStatus
	Ledger         *CancellationLedger
	// RefundFailed: отмена применена, но шлюз не вернул деньги, нужен повтор.
	RefundFailed bool
}

// DeliveryStatusChanged is published after every committed transition.
type DeliveryStatusChanged struct {
	EventID    string
	DeliveryID int64
	Status     DeliveryStatus
	CourierID  *int64
	OccurredAt time.Time
}

type AcceptOutcome string

const (
	AcceptAccepted     AcceptOutcome = "accepted"
	AcceptAlreadyTaken AcceptOutcome = "already_taken"
	AcceptNotFound     AcceptOutcome = "not_found"
)

type AcceptResult struct {
	Outcome  AcceptOutcome
	Delivery *DeliveryRequest
}
