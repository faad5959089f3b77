//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=completion_sweep_test
package completion_sweep

import (
	"context"

	"lastmile/internal/entities"
	"lastmile/pkg/logger"
)

type taskLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type CompletionService interface {
	Sweep(ctx context.Context) (int, []entities.TaskResult, error)
}

type LedgerService interface {
	ReconcileOrders(ctx context.Context, limit uint64) (int64, error)
}
