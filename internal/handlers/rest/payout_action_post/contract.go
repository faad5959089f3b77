//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=payout_action_post_test
package payout_action_post

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
	ProcessPayout(ctx context.Context, payoutID int64, action entities.PayoutAction, note *string) (*entities.PayoutResult, error)
}
