package push

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"lastmile/internal/entities"
)

const newRequestRoutingKey = "delivery.new_request"

var ErrNoRecipients = errors.New("no couriers to notify")

type newRequestMessage struct {
	DeliveryID int64   `json:"delivery_id"`
	CourierIDs []int64 `json:"courier_ids"`
	PickupLat  float64 `json:"pickup_lat"`
	PickupLng  float64 `json:"pickup_lng"`
	DropLat    float64 `json:"drop_lat"`
	DropLng    float64 `json:"drop_lng"`
	ItemClass  string  `json:"item_class"`
	Urgency    string  `json:"urgency"`
	CourierFee int64   `json:"courier_fee"`
}

// Pusher раздает уведомление о новой заявке через брокер. Доставка до
// устройств - дело подписчиков exchange.
type Pusher struct {
	publisher publisher
}

func New(publisher publisher) *Pusher {
	return &Pusher{
		publisher: publisher,
	}
}

func (p *Pusher) NotifyNewRequest(ctx context.Context, delivery *entities.DeliveryRequest, courierIDs []int64) error {
	if delivery == nil {
		return fmt.Errorf("notify new request: nil delivery")
	}
	if len(courierIDs) == 0 {
		return ErrNoRecipients
	}

	body, err := json.Marshal(newRequestMessage{
		DeliveryID: delivery.ID,
		CourierIDs: courierIDs,
		PickupLat:  delivery.Pickup.Lat,
		PickupLng:  delivery.Pickup.Lng,
		DropLat:    delivery.Drop.Lat,
		DropLng:    delivery.Drop.Lng,
		ItemClass:  delivery.ItemClass.String(),
		Urgency:    string(delivery.Urgency),
		CourierFee: delivery.CourierFee,
	})
	if err != nil {
		return fmt.Errorf("marshal new request push: %w", err)
	}

	if err := p.publisher.Publish(ctx, newRequestRoutingKey, uuid.NewString(), body); err != nil {
		return fmt.Errorf("push new request %d: %w", delivery.ID, err)
	}
	return nil
}
