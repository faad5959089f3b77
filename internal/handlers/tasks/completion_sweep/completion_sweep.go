package completion_sweep

import (
	"context"
	"errors"
	"fmt"
	"time"

	"lastmile/pkg/logger"
)

// CompletionSweep добивает эффекты завершения, упавшие или зависшие после
// рестарта, и чинит заказы, отставшие от статуса своей доставки.
type CompletionSweep struct {
	log        taskLogger
	completion CompletionService
	ledger     LedgerService
	interval   time.Duration
	driftBatch uint64
}

func New(
	log taskLogger,
	completion CompletionService,
	ledger LedgerService,
	interval time.Duration,
	driftBatch uint64,
) *CompletionSweep {
	return &CompletionSweep{
		log:        log,
		completion: completion,
		ledger:     ledger,
		interval:   interval,
		driftBatch: driftBatch,
	}
}

func (c *CompletionSweep) TTL() time.Duration {
	return c.interval
}

func (c *CompletionSweep) Do(ctx context.Context) error {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, c.interval)
	defer cancel()

	var errs []error

	retried, results, err := c.completion.Sweep(ctxWithTimeout)
	if err != nil {
		errs = append(errs, fmt.Errorf("sweep: %w", err))
	}
	if retried > 0 {
		var failed int
		for _, result := range results {
			if result.Err != nil {
				failed++
				c.log.With(
					logger.NewField("delivery_id", result.DeliveryID),
					logger.NewField("effect", result.Effect.String()),
					logger.NewField("error", result.Err),
				).Warn("completion effect retry failed")
			}
		}
		c.log.With(
			logger.NewField("retried", retried),
			logger.NewField("failed", failed),
		).Info("completion sweep")
	}

	fixed, err := c.ledger.ReconcileOrders(ctxWithTimeout, c.driftBatch)
	if err != nil {
		errs = append(errs, fmt.Errorf("reconcile orders: %w", err))
	}
	if fixed > 0 {
		c.log.With(
			logger.NewField("fixed_orders", fixed),
		).Info("order drift reconciled")
	}

	return errors.Join(errs...)
}

func (c *CompletionSweep) Info() string {
	return "completion sweep"
}
