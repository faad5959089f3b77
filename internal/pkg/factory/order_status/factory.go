package order_status

import (
	"fmt"

	"lastmile/internal/entities"
	"lastmile/internal/service/ledger"
)

var active = []entities.OrderStatusType{
	entities.OrderRequested,
	entities.OrderAssigned,
	entities.OrderPickedUp,
}

type ProjectionFactory struct{}

func New() *ProjectionFactory {
	return &ProjectionFactory{}
}

// GetTransition - фиксированная таблица проекции статуса доставки в статус заказа.
func (f *ProjectionFactory) GetTransition(status entities.DeliveryStatus) (*entities.OrderTransition, error) {
	switch status {
	case entities.DeliveryAccepted:
		return transition(entities.OrderAssigned, entities.OrderRequested), nil
	case entities.DeliveryPickedUp, entities.DeliveryInTransit:
		return transition(entities.OrderPickedUp, entities.OrderRequested, entities.OrderAssigned), nil
	case entities.DeliveryDelivered:
		return transition(entities.OrderDelivered, active...), nil
	case entities.DeliveryCancelled:
		return transition(entities.OrderCanceled, active...), nil
	default:
		return nil, fmt.Errorf("%w: %s", ledger.ErrUnmappedStatus, status)
	}
}

// PaidTransition - заказ становится paid только после создания расчета.
func (f *ProjectionFactory) PaidTransition() *entities.OrderTransition {
	return transition(entities.OrderPaid, append(active, entities.OrderDelivered)...)
}

func transition(to entities.OrderStatusType, from ...entities.OrderStatusType) *entities.OrderTransition {
	return &entities.OrderTransition{
		To:   to,
		From: append([]entities.OrderStatusType(nil), from...),
	}
}
