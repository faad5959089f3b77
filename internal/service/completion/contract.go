//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=completion_test
package completion

import (
	"context"
	"time"

	"lastmile/internal/entities"
)

type Repository interface {
	Schedule(ctx context.Context, deliveryID int64, effects []entities.CompletionEffect) error
	MarkDone(ctx context.Context, deliveryID int64, effect entities.CompletionEffect) error
	MarkFailed(ctx context.Context, deliveryID int64, effect entities.CompletionEffect, lastError string) error
	ListRetryable(ctx context.Context, staleAfter time.Duration, maxAttempts int, limit uint64) ([]entities.CompletionTask, error)
	ListByDelivery(ctx context.Context, deliveryID int64) ([]entities.CompletionTask, error)
}

type DeliveryRepository interface {
	GetByID(ctx context.Context, id int64) (*entities.DeliveryRequest, error)
}

type (
	ExecuteFn      func(ctx context.Context, delivery *entities.DeliveryRequest) error
	HandlerFactory interface {
		GetHandler(effect entities.CompletionEffect) (ExecuteFn, error)
	}
)

type LedgerService interface {
	CreateSettlement(ctx context.Context, delivery *entities.DeliveryRequest) (*entities.Settlement, error)
	ProjectDeliveryStatus(ctx context.Context, deliveryID int64, status entities.DeliveryStatus) (*entities.Order, error)
	IssueRefund(ctx context.Context, delivery *entities.DeliveryRequest) (*entities.Payment, error)
}

type ReferralService interface {
	ApplyDeliveryBonus(ctx context.Context, delivery *entities.DeliveryRequest) (*entities.ReferralBonus, error)
}

type LoyaltyService interface {
	CreditDelivery(ctx context.Context, delivery *entities.DeliveryRequest) (*entities.LoyaltyCredit, error)
}
