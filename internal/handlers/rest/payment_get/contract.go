//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=payment_get_test
package payment_get

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
	GetPayment(ctx context.Context, id int64) (*entities.Payment, error)
}
