// Package dto holds the JSON shapes of the REST API.
package dto

import "time"

type Location struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

type Error struct {
	Error string `json:"error"`
}

type Courier struct {
	ID                int64      `json:"id"`
	Name              string     `json:"name"`
	Phone             string     `json:"phone"`
	Status            string     `json:"status"`
	TransportType     string     `json:"transport_type"`
	Location          *Location  `json:"location,omitempty"`
	LocationUpdatedAt *time.Time `json:"location_updated_at,omitempty"`
	Rating            float64    `json:"rating"`
	CompletedJobs     int64      `json:"completed_jobs"`
}

type CourierCreate struct {
	Name          string    `json:"name"`
	Phone         string    `json:"phone"`
	Status        string    `json:"status"`
	TransportType string    `json:"transport_type"`
	Location      *Location `json:"location,omitempty"`
}

type CourierCreateResponse struct {
	ID int64 `json:"id"`
}

type CourierUpdate struct {
	ID            int64     `json:"id,omitempty"`
	Name          *string   `json:"name,omitempty"`
	Phone         *string   `json:"phone,omitempty"`
	Status        *string   `json:"status,omitempty"`
	TransportType *string   `json:"transport_type,omitempty"`
	Location      *Location `json:"location,omitempty"`
}

type DeliveryCreate struct {
	CustomerID    int64      `json:"customer_id"`
	Pickup        Location   `json:"pickup"`
	PickupAddress string     `json:"pickup_address"`
	Drop          Location   `json:"drop"`
	DropAddress   string     `json:"drop_address"`
	ItemClass     string     `json:"item_class"`
	Vehicle       string     `json:"vehicle"`
	Urgency       string     `json:"urgency"`
	Scheduling    string     `json:"scheduling"`
	ScheduledAt   *time.Time `json:"scheduled_at,omitempty"`
	PaymentMethod string     `json:"payment_method"`
	OverrideFee   *int64     `json:"override_fee,omitempty"`
}

type Delivery struct {
	ID            int64      `json:"id"`
	CustomerID    int64      `json:"customer_id"`
	Pickup        Location   `json:"pickup"`
	PickupAddress string     `json:"pickup_address"`
	Drop          Location   `json:"drop"`
	DropAddress   string     `json:"drop_address"`
	ItemClass     string     `json:"item_class"`
	Vehicle       string     `json:"vehicle"`
	Urgency       string     `json:"urgency"`
	Scheduling    string     `json:"scheduling"`
	ScheduledAt   *time.Time `json:"scheduled_at,omitempty"`
	DistanceKm    float64    `json:"distance_km"`
	QuotedFee     int64      `json:"quoted_fee"`
	OverrideFee   *int64     `json:"override_fee,omitempty"`
	TotalFee      int64      `json:"total_fee"`
	CourierFee    int64      `json:"courier_fee"`
	PlatformFee   int64      `json:"platform_fee"`
	PaymentMethod string     `json:"payment_method"`
	CourierID     *int64     `json:"courier_id,omitempty"`
	Status        string     `json:"status"`
	CancelReason  *string    `json:"cancel_reason,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
	AcceptedAt    *time.Time `json:"accepted_at,omitempty"`
	PickedUpAt    *time.Time `json:"picked_up_at,omitempty"`
	DeliveredAt   *time.Time `json:"delivered_at,omitempty"`
	CancelledAt   *time.Time `json:"cancelled_at,omitempty"`
}

type DeliveryCreateResponse struct {
	Delivery Delivery `json:"delivery"`
	Order    *Order   `json:"order,omitempty"`
	Payment  *Payment `json:"payment,omitempty"`
}

type Quote struct {
	DistanceKm           float64 `json:"distance_km"`
	ItemClass            string  `json:"item_class"`
	QuotedFee            int64   `json:"quoted_fee"`
	CourierFee           int64   `json:"courier_fee"`
	PlatformFee          int64   `json:"platform_fee"`
	EstimatedDurationSec int64   `json:"estimated_duration_sec"`
}

type Candidate struct {
	CourierID     int64     `json:"courier_id"`
	Name          string    `json:"name"`
	TransportType string    `json:"transport_type"`
	Location      *Location `json:"location,omitempty"`
	// DistanceKm отсутствует у курьеров без координат.
	DistanceKm    *float64 `json:"distance_km,omitempty"`
	Rating        float64  `json:"rating"`
	CompletedJobs int64    `json:"completed_jobs"`
}

type AcceptRequest struct {
	CourierID int64 `json:"courier_id"`
}

type AcceptResponse struct {
	Outcome  string    `json:"outcome"`
	Delivery *Delivery `json:"delivery,omitempty"`
}

type StatusRequest struct {
	CourierID int64  `json:"courier_id"`
	Status    string `json:"status"`
}

type CancelRequest struct {
	Actor   string `json:"actor"`
	ActorID int64  `json:"actor_id"`
	Reason  string `json:"reason"`
}

type CancelResponse struct {
	Delivery         Delivery    `json:"delivery"`
	PreviousStatus   string      `json:"previous_status"`
	Order            *Order      `json:"order,omitempty"`
	Payment          *Payment    `json:"payment,omitempty"`
	Settlement       *Settlement `json:"settlement,omitempty"`
	RefundViaGateway bool        `json:"refund_via_gateway"`
	RefundFailed     bool        `json:"refund_failed"`
}

type Order struct {
	ID         int64  `json:"id"`
	DeliveryID int64  `json:"delivery_id"`
	CustomerID int64  `json:"customer_id"`
	Status     string `json:"status"`
}

type Payment struct {
	ID         int64   `json:"id"`
	OrderID    int64   `json:"order_id"`
	Method     string  `json:"method"`
	Amount     int64   `json:"amount"`
	Status     string  `json:"status"`
	GatewayRef *string `json:"gateway_ref,omitempty"`
	LastError  *string `json:"last_error,omitempty"`
}

type PaymentCallback struct {
	Status     string  `json:"status"`
	GatewayRef *string `json:"gateway_ref,omitempty"`
}

type Settlement struct {
	ID              int64      `json:"id"`
	DeliveryID      int64      `json:"delivery_id"`
	CourierID       int64      `json:"courier_id"`
	Amount          int64      `json:"amount"`
	PaidOutAmount   int64      `json:"paid_out_amount,omitempty"`
	Status          string     `json:"status"`
	ExcludedReason  *string    `json:"excluded_reason,omitempty"`
	PayoutRequestID *int64     `json:"payout_request_id,omitempty"`
	ConfirmedAt     *time.Time `json:"confirmed_at,omitempty"`
}

type SettlementConfirmResponse struct {
	Settlement Settlement `json:"settlement"`
	Wallet     Wallet     `json:"wallet"`
}

type Wallet struct {
	CourierID        int64     `json:"courier_id"`
	PendingBalance   int64     `json:"pending_balance"`
	AvailableBalance int64     `json:"available_balance"`
	UpdatedAt        time.Time `json:"updated_at"`
}

type PayoutCreate struct {
	CourierID int64 `json:"courier_id"`
	Amount    int64 `json:"amount"`
}

type PayoutAction struct {
	Note *string `json:"note,omitempty"`
}

type Payout struct {
	ID          int64      `json:"id"`
	CourierID   int64      `json:"courier_id"`
	Amount      int64      `json:"amount"`
	Status      string     `json:"status"`
	Note        *string    `json:"note,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	ProcessedAt *time.Time `json:"processed_at,omitempty"`
}

type PayoutResponse struct {
	Payout        Payout  `json:"payout"`
	Wallet        *Wallet `json:"wallet,omitempty"`
	SettlementIDs []int64 `json:"settlement_ids,omitempty"`
}

type ReferralCreate struct {
	CustomerID int64 `json:"customer_id"`
	CourierID  int64 `json:"courier_id"`
}

type ReferralLink struct {
	CustomerID int64     `json:"customer_id"`
	CourierID  int64     `json:"courier_id"`
	Active     bool      `json:"active"`
	CreatedAt  time.Time `json:"created_at"`
	// Created false: связь уже была, возвращена существующая.
	Created bool `json:"created"`
}

type RewardPolicyCreate struct {
	Rate float64 `json:"rate"`
}

type RewardPolicy struct {
	ID        int64     `json:"id"`
	Rate      float64   `json:"rate"`
	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"created_at"`
}

type CompletionTask struct {
	Effect    string    `json:"effect"`
	Status    string    `json:"status"`
	Attempts  int       `json:"attempts"`
	LastError *string   `json:"last_error,omitempty"`
	UpdatedAt time.Time `json:"updated_at"`
}

// PingResponse.ServerTime нужен курьерскому приложению для поправки часов к ETA.
type PingResponse struct {
	Message    string    `json:"message"`
	ServerTime time.Time `json:"server_time"`
}
