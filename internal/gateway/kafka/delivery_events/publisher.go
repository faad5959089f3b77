package delivery_events

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"lastmile/internal/entities"
)

type statusChangedMessage struct {
	EventID    string    `json:"event_id"`
	DeliveryID int64     `json:"delivery_id"`
	Status     string    `json:"status"`
	CourierID  *int64    `json:"courier_id,omitempty"`
	OccurredAt time.Time `json:"occurred_at"`
}

type Publisher struct {
	sender sender
	topic  string
}

func New(sender sender, topic string) *Publisher {
	return &Publisher{
		sender: sender,
		topic:  topic,
	}
}

func (p *Publisher) PublishStatusChanged(ctx context.Context, event entities.DeliveryStatusChanged) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	value, err := json.Marshal(statusChangedMessage{
		EventID:    event.EventID,
		DeliveryID: event.DeliveryID,
		Status:     event.Status.String(),
		CourierID:  event.CourierID,
		OccurredAt: event.OccurredAt.UTC(),
	})
	if err != nil {
		return fmt.Errorf("marshal delivery.status.changed: %w", err)
	}

	if err := p.sender.Send(p.topic, strconv.FormatInt(event.DeliveryID, 10), value); err != nil {
		return fmt.Errorf("publish delivery.status.changed %d: %w", event.DeliveryID, err)
	}
	return nil
}
