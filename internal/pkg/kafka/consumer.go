package kafka

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/IBM/sarama"
	"lastmile/internal/pkg/config"
	"lastmile/pkg/logger"
	"lastmile/pkg/retrier"
	"lastmile/pkg/retrier/backoff_adapter"
)

var (
	ErrUnknownRebalanceStrategy = errors.New("unknown rebalance strategy")
	ErrUnknownInitialOffset     = errors.New("unknown initial offset")
)

// Сессии подряд падают при недоступном координаторе группы, между ними backoff.
var sessionRetry = retrier.Config{
	InitialInterval: 500 * time.Millisecond,
	MaxInterval:     15 * time.Second,
	MaxElapsedTime:  5 * time.Minute,
	Randomization:   0.3,
	Multiplier:      2,
	ShouldRetry: func(err error) bool {
		return !errors.Is(err, sarama.ErrClosedConsumerGroup)
	},
}

type Consumer struct {
	log     logger.Logger
	client  sarama.ConsumerGroup
	topics  []string
	handler sarama.ConsumerGroupHandler
	retrier retrier.Retrier
}

func NewConsumerConfig(cfg *config.Sarama) (*sarama.Config, error) {
	version, err := sarama.ParseKafkaVersion(cfg.Version)
	if err != nil {
		return nil, fmt.Errorf("parse kafka version %q: %w", cfg.Version, err)
	}

	strategy, err := rebalanceStrategy(cfg.RebalanceStrategy)
	if err != nil {
		return nil, err
	}

	offset, err := initialOffset(cfg.InitialOffset)
	if err != nil {
		return nil, err
	}

	saramaConfig := sarama.NewConfig()
	saramaConfig.Version = version
	saramaConfig.Consumer.Offsets.Initial = offset
	saramaConfig.Consumer.Offsets.AutoCommit.Enable = cfg.ConsumerOffsetsAutocommit
	saramaConfig.Consumer.Group.Rebalance.GroupStrategies = []sarama.BalanceStrategy{strategy}
	saramaConfig.Consumer.Return.Errors = true

	return saramaConfig, nil
}

func rebalanceStrategy(name string) (sarama.BalanceStrategy, error) {
	switch strings.ToLower(name) {
	case "", "roundrobin":
		return sarama.NewBalanceStrategyRoundRobin(), nil
	case "sticky":
		return sarama.NewBalanceStrategySticky(), nil
	case "range":
		return sarama.NewBalanceStrategyRange(), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownRebalanceStrategy, name)
	}
}

func initialOffset(name string) (int64, error) {
	switch strings.ToLower(name) {
	case "", "oldest":
		return sarama.OffsetOldest, nil
	case "newest":
		return sarama.OffsetNewest, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownInitialOffset, name)
	}
}

// NewConsumer подписывает группу cfg.ConsumerGroup на cfg.Topic.
func NewConsumer(ctx context.Context, log logger.Logger, cfg *config.Kafka, handler sarama.ConsumerGroupHandler) (*Consumer, error) {
	saramaConfig, err := NewConsumerConfig(&cfg.Sarama)
	if err != nil {
		return nil, fmt.Errorf("build saramaConfig: %w", err)
	}

	brokers := cfg.BrokerList()
	topics := []string{cfg.Topic}
	kafkaLog := log.With(
		logger.NewField("brokers", brokers),
		logger.NewField("group", cfg.ConsumerGroup),
		logger.NewField("topics", topics),
	)

	if err := pingKafka(ctx, kafkaLog, brokers, saramaConfig); err != nil {
		return nil, fmt.Errorf("kafka connection: %w", err)
	}

	client, err := sarama.NewConsumerGroup(brokers, cfg.ConsumerGroup, saramaConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create consumer group: %w", err)
	}

	retryConfig := sessionRetry
	retryConfig.OnRetry = func(err error, wait time.Duration) {
		kafkaLog.Warn("consumer session failed, reopening",
			logger.NewField("error", err),
			logger.NewField("wait", wait),
		)
	}

	return &Consumer{
		log:     kafkaLog,
		client:  client,
		topics:  topics,
		handler: handler,
		retrier: backoff_adapter.New(retryConfig),
	}, nil
}

// Start блокируется до отмены ctx или закрытия группы.
// Consume возвращает nil на каждом ребалансе, тогда открывается новая сессия.
func (c *Consumer) Start(ctx context.Context) error {
	c.log.Info("Kafka consumer starting")

	go c.drainErrors()

	for {
		err := c.retrier.ExecuteWithContext(ctx, func(ctx context.Context) error {
			return c.client.Consume(ctx, c.topics, c.handler)
		})

		switch {
		case ctx.Err() != nil:
			c.log.Info("Context cancelled, stopping consumer")
			return ctx.Err()
		case errors.Is(err, sarama.ErrClosedConsumerGroup):
			return nil
		case err != nil:
			c.log.Error("consumer gave up", logger.NewField("error", err))
			return fmt.Errorf("consumer error: %w", err)
		}
	}
}

// drainErrors читает канал ошибок группы, иначе при Return.Errors он заблокирует sarama.
func (c *Consumer) drainErrors() {
	for err := range c.client.Errors() {
		c.log.Warn("consumer group error", logger.NewField("error", err))
	}
}

func (c *Consumer) Close() error {
	return c.client.Close()
}
