//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=referral_test
package referral

import (
	"context"

	"lastmile/internal/entities"
)

type Repository interface {
	CreateLinkIfAbsent(ctx context.Context, customerID, courierID int64) (*entities.ReferralLink, bool, error)
	GetLink(ctx context.Context, customerID int64) (*entities.ReferralLink, error)
	IsFirstDelivered(ctx context.Context, customerID, deliveryID int64) (bool, error)
	GetActivePolicy(ctx context.Context) (*entities.RewardPolicy, error)
	ActivatePolicy(ctx context.Context, rate float64) (*entities.RewardPolicy, error)
	InsertBonusIfAbsent(ctx context.Context, bonus entities.ReferralBonus) (*entities.ReferralBonus, error)
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}
