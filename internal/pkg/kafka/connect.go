package kafka

import (
	"context"
	"fmt"

	"github.com/IBM/sarama"
	"lastmile/pkg/logger"
	"lastmile/pkg/retrier/backoff_adapter"
)

// pingKafka ждет, пока кластер начнет отдавать метаданные.
func pingKafka(ctx context.Context, log logger.Logger, brokers []string, cfg *sarama.Config) error {
	ping := func(context.Context) error {
		client, err := sarama.NewClient(brokers, cfg)
		if err != nil {
			return err
		}
		defer func() {
			if err := client.Close(); err != nil {
				log.Warn("close Kafka ping client", logger.NewField("error", err))
			}
		}()

		_, err = client.Topics()
		return err
	}

	if err := backoff_adapter.WaitFor(ctx, log, "kafka", backoff_adapter.StartupConfig, ping); err != nil {
		return fmt.Errorf("failed to connect to Kafka: %w", err)
	}
	return nil
}
