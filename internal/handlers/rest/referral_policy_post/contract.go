//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=referral_policy_post_test
package referral_policy_post

import (
	"context"

	"lastmile/internal/entities"
	"lastmile/pkg/logger"
)

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Service interface {
	ActivatePolicy(ctx context.Context, rate float64) (*entities.RewardPolicy, error)
}
