//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=settlement_confirm_post_test
package settlement_confirm_post

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
	ConfirmSettlement(ctx context.Context, settlementID int64) (*entities.SettlementConfirmation, error)
}
