package delivery

import (
	"time"

	"lastmile/internal/entities"
	"lastmile/pkg/geo"
)

func isValidPoint(p entities.Point) bool {
	return geo.ValidCoordinate(p.Lat, p.Lng)
}

func isValidVehicle(v entities.CourierTransportType) bool {
	switch v {
	case entities.OnFoot, entities.Bicycle, entities.Scooter, entities.Car, entities.Truck:
		return true
	default:
		return false
	}
}

func isValidPaymentMethod(m entities.PaymentMethod) bool {
	switch m {
	case entities.PaymentCash, entities.PaymentCard, entities.PaymentTransfer:
		return true
	default:
		return false
	}
}

func validateQuote(req entities.QuoteRequest) error {
	if !isValidPoint(req.Pickup) || !isValidPoint(req.Drop) {
		return ErrInvalidPoint
	}
	if req.ItemClass.Tier() < 0 {
		return ErrInvalidItemClass
	}
	if req.Vehicle != "" && !isValidVehicle(req.Vehicle) {
		return ErrInvalidVehicle
	}
	return nil
}

// validateCreate проверяет запрос и проставляет значения по умолчанию.
func validateCreate(create *entities.DeliveryCreate, now time.Time) error {
	if create.CustomerID <= 0 {
		return ErrInvalidCustomerID
	}

	err := validateQuote(entities.QuoteRequest{
		Pickup:    create.Pickup,
		Drop:      create.Drop,
		ItemClass: create.ItemClass,
		Vehicle:   create.Vehicle,
	})
	if err != nil {
		return err
	}

	if create.Vehicle == "" {
		create.Vehicle = entities.DefaultTransportType
	}

	switch create.Urgency {
	case "":
		create.Urgency = entities.UrgencyStandard
	case entities.UrgencyStandard, entities.UrgencyExpress:
	default:
		return ErrInvalidUrgency
	}

	switch create.Scheduling {
	case "", entities.ScheduleImmediate:
		if create.ScheduledAt != nil {
			return ErrInvalidScheduling
		}
		create.Scheduling = entities.ScheduleImmediate
	case entities.ScheduleLater:
		if create.ScheduledAt == nil || !create.ScheduledAt.After(now) {
			return ErrInvalidScheduling
		}
	default:
		return ErrInvalidScheduling
	}

	if !isValidPaymentMethod(create.PaymentMethod) {
		return ErrInvalidPaymentMethod
	}

	if create.OverrideFee != nil && *create.OverrideFee <= 0 {
		return ErrInvalidOverrideFee
	}

	return nil
}

// allowedFrom - откуда курьер может перевести доставку в целевой статус.
// pending->accepted идет только через Accept, cancelled только через Cancel.
func allowedFrom(to entities.DeliveryStatus) ([]entities.DeliveryStatus, error) {
	switch to {
	case entities.DeliveryPickedUp:
		return []entities.DeliveryStatus{entities.DeliveryAccepted}, nil
	case entities.DeliveryInTransit:
		return []entities.DeliveryStatus{entities.DeliveryPickedUp}, nil
	case entities.DeliveryDelivered:
		return []entities.DeliveryStatus{entities.DeliveryPickedUp, entities.DeliveryInTransit}, nil
	case entities.DeliveryPending, entities.DeliveryAccepted, entities.DeliveryCancelled:
		return nil, ErrIllegalTransition
	default:
		return nil, ErrInvalidStatus
	}
}

func isValidActor(actor entities.CancelActor) bool {
	return actor == entities.ActorCustomer || actor == entities.ActorAdmin
}
