//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=quote_get_test
package quote_get

import (
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
	Quote(req entities.QuoteRequest) (*entities.Quote, error)
}
