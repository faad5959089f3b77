//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=delivery_status_changed_test
package delivery_status_changed

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
	ProjectDeliveryStatus(ctx context.Context, deliveryID int64, status entities.DeliveryStatus) (*entities.Order, error)
}
