package completion_effect

import (
	"context"
	"fmt"

	"lastmile/internal/entities"
	"lastmile/internal/service/completion"
)

type EffectHandlerFactory struct {
	ledgerService   completion.LedgerService
	referralService completion.ReferralService
	loyaltyService  completion.LoyaltyService
}

func NewEffectHandlerFactory(
	ledgerService completion.LedgerService,
	referralService completion.ReferralService,
	loyaltyService completion.LoyaltyService,
) *EffectHandlerFactory {
	return &EffectHandlerFactory{
		ledgerService:   ledgerService,
		referralService: referralService,
		loyaltyService:  loyaltyService,
	}
}

func (f *EffectHandlerFactory) GetHandler(effect entities.CompletionEffect) (completion.ExecuteFn, error) {
	switch effect {
	case entities.EffectLoyaltyCredit:
		return f.loyaltyHandler, nil
	case entities.EffectReferralBonus:
		return f.referralHandler, nil
	case entities.EffectSettlement:
		return f.settlementHandler, nil
	case entities.EffectOrderProjection:
		return f.projectionHandler, nil
	case entities.EffectRefund:
		return f.refundHandler, nil
	default:
		return nil, fmt.Errorf("%w: %s", completion.ErrUndefinedEffect, effect)
	}
}

func (f *EffectHandlerFactory) loyaltyHandler(ctx context.Context, delivery *entities.DeliveryRequest) error {
	_, err := f.loyaltyService.CreditDelivery(ctx, delivery)
	if err != nil {
		return fmt.Errorf("loyalty credit for delivery %d: %w", delivery.ID, err)
	}
	return nil
}

func (f *EffectHandlerFactory) referralHandler(ctx context.Context, delivery *entities.DeliveryRequest) error {
	_, err := f.referralService.ApplyDeliveryBonus(ctx, delivery)
	if err != nil {
		return fmt.Errorf("referral bonus for delivery %d: %w", delivery.ID, err)
	}
	return nil
}

func (f *EffectHandlerFactory) settlementHandler(ctx context.Context, delivery *entities.DeliveryRequest) error {
	_, err := f.ledgerService.CreateSettlement(ctx, delivery)
	if err != nil {
		return fmt.Errorf("settlement for delivery %d: %w", delivery.ID, err)
	}
	return nil
}

func (f *EffectHandlerFactory) projectionHandler(ctx context.Context, delivery *entities.DeliveryRequest) error {
	_, err := f.ledgerService.ProjectDeliveryStatus(ctx, delivery.ID, delivery.Status)
	if err != nil {
		return fmt.Errorf("order projection for delivery %d: %w", delivery.ID, err)
	}
	return nil
}

func (f *EffectHandlerFactory) refundHandler(ctx context.Context, delivery *entities.DeliveryRequest) error {
	_, err := f.ledgerService.IssueRefund(ctx, delivery)
	if err != nil {
		return fmt.Errorf("refund for delivery %d: %w", delivery.ID, err)
	}
	return nil
}
