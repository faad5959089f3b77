package delivery

import "lastmile/internal/entities"

func ToDomain(d *DeliveryDB) *entities.DeliveryRequest {
	if d == nil {
		return nil
	}
	return &entities.DeliveryRequest{
		ID:            d.ID,
		CustomerID:    d.CustomerID,
		Pickup:        entities.Point{Lat: d.PickupLat, Lng: d.PickupLng},
		PickupAddress: d.PickupAddress,
		Drop:          entities.Point{Lat: d.DropLat, Lng: d.DropLng},
		DropAddress:   d.DropAddress,
		ItemClass:     entities.ItemClass(d.ItemClass),
		Vehicle:       entities.CourierTransportType(d.Vehicle),
		Urgency:       entities.Urgency(d.Urgency),
		Scheduling:    entities.SchedulingMode(d.Scheduling),
		ScheduledAt:   d.ScheduledAt,
		DistanceKm:    d.DistanceKm,
		QuotedFee:     d.QuotedFee,
		OverrideFee:   d.OverrideFee,
		TotalFee:      d.TotalFee,
		CourierFee:    d.CourierFee,
		PlatformFee:   d.PlatformFee,
		PaymentMethod: entities.PaymentMethod(d.PaymentMethod),
		CourierID:     d.CourierID,
		LastCourierID: d.LastCourierID,
		Status:        entities.DeliveryStatus(d.Status),
		CancelReason:  d.CancelReason,
		CreatedAt:     d.CreatedAt,
		AcceptedAt:    d.AcceptedAt,
		PickedUpAt:    d.PickedUpAt,
		DeliveredAt:   d.DeliveredAt,
		CancelledAt:   d.CancelledAt,
		UpdatedAt:     d.UpdatedAt,
	}
}

func ToDomainList(deliveriesDB []DeliveryDB) []entities.DeliveryRequest {
	result := make([]entities.DeliveryRequest, len(deliveriesDB))
	for i := range deliveriesDB {
		result[i] = *ToDomain(&deliveriesDB[i])
	}
	return result
}

func statusStrings(statuses []entities.DeliveryStatus) []string {
	result := make([]string, len(statuses))
	for i, s := range statuses {
		result[i] = s.String()
	}
	return result
}
