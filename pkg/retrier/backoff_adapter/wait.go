package backoff_adapter

import (
	"context"
	"fmt"
	"time"

	"lastmile/pkg/logger"
	"lastmile/pkg/retrier"
)

// StartupConfig - расписание ожидания внешней зависимости на старте процесса.
var StartupConfig = retrier.Config{
	InitialInterval: time.Second,
	MaxInterval:     30 * time.Second,
	MaxElapsedTime:  2 * time.Minute,
	Randomization:   0.5,
	Multiplier:      2,
}

// WaitFor повторяет ping, пока зависимость target не ответит или не кончится расписание cfg.
func WaitFor(ctx context.Context, log logger.Logger, target string, cfg retrier.Config, ping func(context.Context) error) error {
	attempts := 1
	cfg.OnRetry = func(err error, wait time.Duration) {
		log.Warn("dependency not ready",
			logger.NewField("target", target),
			logger.NewField("attempt", attempts),
			logger.NewField("wait", wait),
			logger.NewField("error", err),
		)
		attempts++
	}

	if err := New(cfg).ExecuteWithContext(ctx, ping); err != nil {
		log.Error("dependency unreachable",
			logger.NewField("target", target),
			logger.NewField("attempts", attempts),
			logger.NewField("error", err),
		)
		return fmt.Errorf("%s unreachable after %d attempts: %w", target, attempts, err)
	}

	log.Info("dependency ready",
		logger.NewField("target", target),
		logger.NewField("attempts", attempts),
	)
	return nil
}
