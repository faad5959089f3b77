package rabbitmq

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"sync"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"lastmile/internal/pkg/config"
	"lastmile/pkg/logger"
	"lastmile/pkg/retrier/backoff_adapter"
)

const dialTimeout = 10 * time.Second

// Producer публикует в topic-exchange. Канал amqp не потокобезопасен,
// поэтому публикации сериализуются мьютексом.
type Producer struct {
	log      logger.Logger
	exchange string

	mu      sync.Mutex
	conn    *amqp.Connection
	channel *amqp.Channel
}

func NewProducer(ctx context.Context, log logger.Logger, cfg *config.RabbitMQ) (*Producer, error) {
	amqpURL, err := sanitizeURL(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("rabbitmq url: %w", err)
	}

	p := &Producer{
		log: log.With(
			logger.NewField("component", "rabbitmq-producer"),
			logger.NewField("exchange", cfg.PushExchange),
		),
		exchange: cfg.PushExchange,
	}

	err = backoff_adapter.WaitFor(ctx, p.log, "rabbitmq", backoff_adapter.StartupConfig, func(context.Context) error {
		return p.connect(amqpURL)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to RabbitMQ: %w", err)
	}

	return p, nil
}

func sanitizeURL(raw string) (string, error) {
	clean := strings.Trim(strings.TrimSpace(raw), "\"'")
	u, err := url.Parse(clean)
	if err != nil {
		return "", err
	}
	if u.Scheme != "amqp" && u.Scheme != "amqps" {
		return "", errors.New("AMQP scheme must be either 'amqp://' or 'amqps://'")
	}
	return clean, nil
}

func (p *Producer) connect(amqpURL string) error {
	conn, err := amqp.DialConfig(amqpURL, amqp.Config{Dial: amqp.DefaultDial(dialTimeout)})
	if err != nil {
		return err
	}

	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return err
	}

	if err := ch.ExchangeDeclare(p.exchange, "topic", true, false, false, false, nil); err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return err
	}

	p.conn = conn
	p.channel = ch
	return nil
}

// Publish один раз переоткрывает канал, если брокер его закрыл.
func (p *Producer) Publish(ctx context.Context, routingKey, messageID string, body []byte) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	msg := amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		MessageId:    messageID,
		Timestamp:    time.Now(),
		Body:         body,
	}

	err := p.channel.PublishWithContext(ctx, p.exchange, routingKey, false, false, msg)
	if err == nil {
		return nil
	}

	p.log.With(
		logger.NewField("error", err),
		logger.NewField("routing_key", routingKey),
	).Warn("publish failed, reopening channel")

	ch, chErr := p.conn.Channel()
	if chErr != nil {
		return fmt.Errorf("publish %s: %w (reopen channel: %v)", routingKey, err, chErr)
	}
	p.channel = ch

	if err := p.channel.PublishWithContext(ctx, p.exchange, routingKey, false, false, msg); err != nil {
		return fmt.Errorf("publish %s: %w", routingKey, err)
	}
	return nil
}

func (p *Producer) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	var errs []error
	if p.channel != nil {
		errs = append(errs, p.channel.Close())
	}
	if p.conn != nil {
		errs = append(errs, p.conn.Close())
	}
	return errors.Join(errs...)
}
