package dto

import (
	"lastmile/internal/entities"
)

func FromPoint(p *entities.Point) *Location {
	if p == nil {
		return nil
	}
	return &Location{Lat: p.Lat, Lng: p.Lng}
}

func (l *Location) ToPoint() *entities.Point {
	if l == nil {
		return nil
	}
	return &entities.Point{Lat: l.Lat, Lng: l.Lng}
}

// ToModify: пустой статус оставляет выбор статуса сервису.
func (c CourierCreate) ToModify() entities.CourierModify {
	transport := entities.CourierTransportType(c.TransportType)
	modify := entities.CourierModify{
		Name:          &c.Name,
		Phone:         &c.Phone,
		TransportType: &transport,
		Location:      c.Location.ToPoint(),
	}
	if c.Status != "" {
		status := entities.CourierStatusType(c.Status)
		modify.Status = &status
	}
	return modify
}

func (c CourierUpdate) ToModify() entities.CourierModify {
	modify := entities.CourierModify{
		Name:     c.Name,
		Phone:    c.Phone,
		Location: c.Location.ToPoint(),
	}
	if c.ID != 0 {
		modify.ID = &c.ID
	}
	if c.Status != nil {
		status := entities.CourierStatusType(*c.Status)
		modify.Status = &status
	}
	if c.TransportType != nil {
		transport := entities.CourierTransportType(*c.TransportType)
		modify.TransportType = &transport
	}
	return modify
}

func FromCourier(c *entities.Courier) Courier {
	return Courier{
		ID:                c.ID,
		Name:              c.Name,
		Phone:             c.Phone,
		Status:            c.Status.String(),
		TransportType:     c.TransportType.String(),
		Location:          FromPoint(c.Location),
		LocationUpdatedAt: c.LocationUpdatedAt,
		Rating:            c.Rating,
		CompletedJobs:     c.CompletedJobs,
	}
}

func FromCouriers(couriers []entities.Courier) []Courier {
	result := make([]Courier, 0, len(couriers))
	for i := range couriers {
		result = append(result, FromCourier(&couriers[i]))
	}
	return result
}

func FromDelivery(d *entities.DeliveryRequest) Delivery {
	return Delivery{
		ID:            d.ID,
		CustomerID:    d.CustomerID,
		Pickup:        Location{Lat: d.Pickup.Lat, Lng: d.Pickup.Lng},
		PickupAddress: d.PickupAddress,
		Drop:          Location{Lat: d.Drop.Lat, Lng: d.Drop.Lng},
		DropAddress:   d.DropAddress,
		ItemClass:     d.ItemClass.String(),
		Vehicle:       d.Vehicle.String(),
		Urgency:       string(d.Urgency),
		Scheduling:    string(d.Scheduling),
		ScheduledAt:   d.ScheduledAt,
		DistanceKm:    d.DistanceKm,
		QuotedFee:     d.QuotedFee,
		OverrideFee:   d.OverrideFee,
		TotalFee:      d.TotalFee,
		CourierFee:    d.CourierFee,
		PlatformFee:   d.PlatformFee,
		PaymentMethod: d.PaymentMethod.String(),
		CourierID:     d.CourierID,
		Status:        d.Status.String(),
		CancelReason:  d.CancelReason,
		CreatedAt:     d.CreatedAt,
		AcceptedAt:    d.AcceptedAt,
		PickedUpAt:    d.PickedUpAt,
		DeliveredAt:   d.DeliveredAt,
		CancelledAt:   d.CancelledAt,
	}
}

func FromDeliveries(deliveries []entities.DeliveryRequest) []Delivery {
	result := make([]Delivery, 0, len(deliveries))
	for i := range deliveries {
		result = append(result, FromDelivery(&deliveries[i]))
	}
	return result
}

func (d *DeliveryCreate) ToDomain() entities.DeliveryCreate {
	return entities.DeliveryCreate{
		CustomerID:    d.CustomerID,
		Pickup:        entities.Point{Lat: d.Pickup.Lat, Lng: d.Pickup.Lng},
		PickupAddress: d.PickupAddress,
		Drop:          entities.Point{Lat: d.Drop.Lat, Lng: d.Drop.Lng},
		DropAddress:   d.DropAddress,
		ItemClass:     entities.ItemClass(d.ItemClass),
		Vehicle:       entities.CourierTransportType(d.Vehicle),
		Urgency:       entities.Urgency(d.Urgency),
		Scheduling:    entities.SchedulingMode(d.Scheduling),
		ScheduledAt:   d.ScheduledAt,
		PaymentMethod: entities.PaymentMethod(d.PaymentMethod),
		OverrideFee:   d.OverrideFee,
	}
}

func FromQuote(q *entities.Quote) Quote {
	return Quote{
		DistanceKm:           q.DistanceKm,
		ItemClass:            q.ItemClass.String(),
		QuotedFee:            q.QuotedFee,
		CourierFee:           q.CourierFee,
		PlatformFee:          q.PlatformFee,
		EstimatedDurationSec: int64(q.EstimatedDuration.Seconds()),
	}
}

func FromCandidates(candidates []entities.Candidate) []Candidate {
	result := make([]Candidate, 0, len(candidates))
	for _, c := range candidates {
		candidate := Candidate{
			CourierID:     c.CourierID,
			Name:          c.Name,
			TransportType: c.TransportType.String(),
			Location:      FromPoint(c.Location),
			Rating:        c.Rating,
			CompletedJobs: c.CompletedJobs,
		}
		if c.HasDistance() {
			distance := c.DistanceKm
			candidate.DistanceKm = &distance
		}
		result = append(result, candidate)
	}
	return result
}

func FromOrder(o *entities.Order) *Order {
	if o == nil {
		return nil
	}
	return &Order{
		ID:         o.ID,
		DeliveryID: o.DeliveryID,
		CustomerID: o.CustomerID,
		Status:     o.Status.String(),
	}
}

func FromPayment(p *entities.Payment) *Payment {
	if p == nil {
		return nil
	}
	return &Payment{
		ID:         p.ID,
		OrderID:    p.OrderID,
		Method:     p.Method.String(),
		Amount:     p.Amount,
		Status:     p.Status.String(),
		GatewayRef: p.GatewayRef,
		LastError:  p.LastError,
	}
}

func FromSettlement(s *entities.Settlement) *Settlement {
	if s == nil {
		return nil
	}
	return &Settlement{
		ID:              s.ID,
		DeliveryID:      s.DeliveryID,
		CourierID:       s.CourierID,
		Amount:          s.Amount,
		PaidOutAmount:   s.PaidOutAmount,
		Status:          s.Status.String(),
		ExcludedReason:  s.ExcludedReason,
		PayoutRequestID: s.PayoutRequestID,
		ConfirmedAt:     s.ConfirmedAt,
	}
}

func FromCancelled(c *entities.DeliveryCancellation) CancelResponse {
	response := CancelResponse{
		Delivery:       FromDelivery(c.Delivery),
		PreviousStatus: c.PreviousStatus.String(),
		RefundFailed:   c.RefundFailed,
	}
	if c.Ledger != nil {
		response.Order = FromOrder(c.Ledger.Order)
		response.Payment = FromPayment(c.Ledger.Payment)
		response.Settlement = FromSettlement(c.Ledger.Settlement)
		response.RefundViaGateway = c.Ledger.RefundViaGateway
	}
	return response
}

func FromWallet(w *entities.Wallet) *Wallet {
	if w == nil {
		return nil
	}
	return &Wallet{
		CourierID:        w.CourierID,
		PendingBalance:   w.PendingBalance,
		AvailableBalance: w.AvailableBalance,
		UpdatedAt:        w.UpdatedAt,
	}
}

func FromPayout(p *entities.PayoutRequest) Payout {
	return Payout{
		ID:          p.ID,
		CourierID:   p.CourierID,
		Amount:      p.Amount,
		Status:      p.Status.String(),
		Note:        p.Note,
		CreatedAt:   p.CreatedAt,
		ProcessedAt: p.ProcessedAt,
	}
}

func FromPayouts(payouts []entities.PayoutRequest) []Payout {
	result := make([]Payout, 0, len(payouts))
	for i := range payouts {
		result = append(result, FromPayout(&payouts[i]))
	}
	return result
}

func FromPayoutResult(r *entities.PayoutResult) PayoutResponse {
	return PayoutResponse{
		Payout:        FromPayout(r.Payout),
		Wallet:        FromWallet(r.Wallet),
		SettlementIDs: r.SettlementIDs,
	}
}

func FromReferralLink(l *entities.ReferralLink, created bool) ReferralLink {
	return ReferralLink{
		CustomerID: l.CustomerID,
		CourierID:  l.CourierID,
		Active:     l.Active,
		CreatedAt:  l.CreatedAt,
		Created:    created,
	}
}

func FromRewardPolicy(p *entities.RewardPolicy) RewardPolicy {
	return RewardPolicy{
		ID:        p.ID,
		Rate:      p.Rate,
		Active:    p.Active,
		CreatedAt: p.CreatedAt,
	}
}

func FromCompletionTasks(tasks []entities.CompletionTask) []CompletionTask {
	result := make([]CompletionTask, 0, len(tasks))
	for _, t := range tasks {
		result = append(result, CompletionTask{
			Effect:    t.Effect.String(),
			Status:    string(t.Status),
			Attempts:  t.Attempts,
			LastError: t.LastError,
			UpdatedAt: t.UpdatedAt,
		})
	}
	return result
}
