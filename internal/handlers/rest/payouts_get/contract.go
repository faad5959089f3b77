//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=payouts_get_test
package payouts_get

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
	ListPayouts(ctx context.Context, courierID int64) ([]entities.PayoutRequest, error)
}
