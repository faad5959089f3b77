package ledger

import "lastmile/internal/entities"

func ToOrderDomain(o *OrderDB) *entities.Order {
	if o == nil {
		return nil
	}
	return &entities.Order{
		ID:         o.ID,
		DeliveryID: o.DeliveryID,
		CustomerID: o.CustomerID,
		Status:     entities.OrderStatusType(o.Status),
		CreatedAt:  o.CreatedAt,
		UpdatedAt:  o.UpdatedAt,
	}
}

func ToPaymentDomain(p *PaymentDB) *entities.Payment {
	if p == nil {
		return nil
	}
	return &entities.Payment{
		ID:         p.ID,
		OrderID:    p.OrderID,
		Method:     entities.PaymentMethod(p.Method),
		Amount:     p.Amount,
		Status:     entities.PaymentStatus(p.Status),
		GatewayRef: p.GatewayRef,
		LastError:  p.LastError,
		CreatedAt:  p.CreatedAt,
		UpdatedAt:  p.UpdatedAt,
	}
}

func ToSettlementDomain(s *SettlementDB) *entities.Settlement {
	if s == nil {
		return nil
	}
	return &entities.Settlement{
		ID:              s.ID,
		DeliveryID:      s.DeliveryID,
		CourierID:       s.CourierID,
		Amount:          s.Amount,
		PaidOutAmount:   s.PaidOutAmount,
		Status:          entities.SettlementStatus(s.Status),
		ExcludedReason:  s.ExcludedReason,
		PayoutRequestID: s.PayoutRequestID,
		CreatedAt:       s.CreatedAt,
		ConfirmedAt:     s.ConfirmedAt,
		UpdatedAt:       s.UpdatedAt,
	}
}

func orderStatusStrings(statuses []entities.OrderStatusType) []string {
	result := make([]string, len(statuses))
	for i, s := range statuses {
		result[i] = s.String()
	}
	return result
}

func paymentStatusStrings(statuses []entities.PaymentStatus) []string {
	result := make([]string, len(statuses))
	for i, s := range statuses {
		result[i] = s.String()
	}
	return result
}
