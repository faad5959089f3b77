//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=referral_post_test
package referral_post

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
	LinkReferral(ctx context.Context, customerID, courierID int64) (*entities.ReferralLink, bool, error)
}
