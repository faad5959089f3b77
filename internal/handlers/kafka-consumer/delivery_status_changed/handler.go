package delivery_status_changed

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/IBM/sarama"
	"lastmile/internal/entities"
	ledgerservice "lastmile/internal/service/ledger"
	"lastmile/pkg/logger"
	"lastmile/pkg/retrier"
	"lastmile/pkg/retrier/backoff_adapter"
)

// projectRetry ограничен только таймаутом обработки сообщения.
var projectRetry = retrier.Config{
	InitialInterval: 100 * time.Millisecond,
	MaxInterval:     2 * time.Second,
	Randomization:   0.3,
	Multiplier:      2,
	ShouldRetry:     isTransient,
}

// isTransient: доменные ошибки повтором не лечатся.
func isTransient(err error) bool {
	switch {
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return false
	case errors.Is(err, ledgerservice.ErrOrderNotFound),
		errors.Is(err, ledgerservice.ErrInvalidDeliveryID),
		errors.Is(err, ledgerservice.ErrUnmappedStatus):
		return false
	}
	return true
}

type statusChangedEvent struct {
	EventID    string    `json:"event_id"`
	DeliveryID int64     `json:"delivery_id"`
	Status     string    `json:"status"`
	CourierID  *int64    `json:"courier_id"`
	OccurredAt time.Time `json:"occurred_at"`
}

// Handler проецирует статус доставки на заказ. Проекция монотонна,
// поэтому повтор и переупорядочивание сообщений безопасны.
type Handler struct {
	ledgerService            Service
	log                      handlerLogger
	retrier                  retrier.Retrier
	messageProcessingTimeout time.Duration
}

func New(log handlerLogger, ledgerService Service, timeout time.Duration) *Handler {
	return &Handler{
		ledgerService:            ledgerService,
		log:                      log.With(logger.NewField("handler", "delivery.status.changed")),
		retrier:                  backoff_adapter.New(projectRetry),
		messageProcessingTimeout: timeout,
	}
}

func (h *Handler) Setup(sarama.ConsumerGroupSession) error {
	return nil
}

func (h *Handler) Cleanup(sarama.ConsumerGroupSession) error {
	return nil
}

func (h *Handler) ConsumeClaim(sess sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	for {
		select {
		case message, ok := <-claim.Messages():
			if !ok {
				h.log.Info("delivery.status.changed: claim.Messages() closed, exiting ConsumeClaim")
				return nil
			}

			if shouldExit := h.messageProcessing(sess, message); shouldExit {
				return nil
			}

		case <-sess.Context().Done():
			// rebalance или остановка consumer group
			h.log.Info("delivery.status.changed: session context done, exiting ConsumeClaim")
			return nil
		}
	}
}

// messageProcessing возвращает true, если ConsumeClaim нужно прервать без
// коммита оффсета: сообщение перечитается после ребаланса.
func (h *Handler) messageProcessing(sess sarama.ConsumerGroupSession, message *sarama.ConsumerMessage) bool {
	ctx, cancel := context.WithTimeout(sess.Context(), h.messageProcessingTimeout)
	defer cancel()

	var event statusChangedEvent
	if err := json.Unmarshal(message.Value, &event); err != nil || event.DeliveryID <= 0 {
		h.log.With(
			logger.NewField("error", err),
			logger.NewField("offset", message.Offset),
		).Error("delivery.status.changed handler received bad message")
		sess.MarkMessage(message, "")
		return false
	}

	msgLog := h.log.With(
		logger.NewField("event_id", event.EventID),
		logger.NewField("delivery_id", event.DeliveryID),
		logger.NewField("status", event.Status),
		logger.NewField("offset", message.Offset),
	)

	var order *entities.Order
	err := h.retrier.ExecuteWithContext(ctx, func(ctx context.Context) error {
		var err error
		order, err = h.ledgerService.ProjectDeliveryStatus(ctx, event.DeliveryID, entities.DeliveryStatus(event.Status))
		return err
	})
	if err != nil {
		switch {
		case errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded):
			msgLog.With(
				logger.NewField("error", err),
			).Warn("delivery.status.changed handler context cancelled, message will be reprocessed")
			return true

		case errors.Is(err, ledgerservice.ErrOrderNotFound):
			// заказ создается в одной транзакции с доставкой, значит событие чужое
			msgLog.With(
				logger.NewField("error", err),
			).Warn("delivery.status.changed handler order not found")

		case isTransient(err):
			// повторы внутри таймаута не помогли, сообщение перечитается в новой сессии
			msgLog.With(
				logger.NewField("error", err),
			).Error("delivery.status.changed handler failed to project status, message will be reprocessed")
			return true

		default:
			msgLog.With(
				logger.NewField("error", err),
			).Warn("delivery.status.changed handler rejected event")
		}
		sess.MarkMessage(message, "")
		return false
	}

	if order == nil {
		msgLog.Info("delivery.status.changed: status has no order projection")
	} else {
		msgLog.With(
			logger.NewField("order", order.ID),
			logger.NewField("order_status", order.Status.String()),
		).Info("delivery.status.changed: processed")
	}

	sess.MarkMessage(message, "")
	return false
}
