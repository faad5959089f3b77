package delivery

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"lastmile/internal/entities"
	"lastmile/pkg/geo"
	"lastmile/pkg/logger"
)

type Delivery struct {
	log         serviceLogger
	repository  Repository
	couriers    CourierRepository
	ledger      LedgerService
	completion  CompletionService
	fees        FeeCalculator
	etaFactory  ETAFactory
	matcher     Matcher
	pusher      Pusher
	publisher   EventPublisher
	txManager   TxManager
	now         func() time.Time
	inflightOps sync.WaitGroup
}

func New(
	log serviceLogger,
	repository Repository,
	couriers CourierRepository,
	ledger LedgerService,
	completion CompletionService,
	fees FeeCalculator,
	etaFactory ETAFactory,
	matcher Matcher,
	pusher Pusher,
	publisher EventPublisher,
	txManager TxManager,
) *Delivery {
	return &Delivery{
		log:        log,
		repository: repository,
		couriers:   couriers,
		ledger:     ledger,
		completion: completion,
		fees:       fees,
		etaFactory: etaFactory,
		matcher:    matcher,
		pusher:     pusher,
		publisher:  publisher,
		txManager:  txManager,
		now:        func() time.Time { return time.Now().UTC() },
	}
}

// Wait дожидается фоновых рассылок. Нужен для graceful shutdown и тестов.
func (d *Delivery) Wait() {
	d.inflightOps.Wait()
}

// Quote не имеет побочных эффектов: один и тот же вход всегда дает ту же цену.
func (d *Delivery) Quote(req entities.QuoteRequest) (*entities.Quote, error) {
	if err := validateQuote(req); err != nil {
		return nil, err
	}

	vehicle := req.Vehicle
	if vehicle == "" {
		vehicle = entities.DefaultTransportType
	}

	distance := geo.HaversineKm(req.Pickup.Lat, req.Pickup.Lng, req.Drop.Lat, req.Drop.Lng)

	quoted, err := d.fees.Quote(distance, req.ItemClass)
	if err != nil {
		return nil, fmt.Errorf("quote fee: %w", err)
	}
	courierFee, platformFee := d.fees.Split(quoted)

	return &entities.Quote{
		DistanceKm:        distance,
		ItemClass:         req.ItemClass,
		QuotedFee:         quoted,
		CourierFee:        courierFee,
		PlatformFee:       platformFee,
		EstimatedDuration: d.etaFactory.EstimateDuration(vehicle, distance),
	}, nil
}

// CreateDelivery фиксирует расчетную цену и override раздельно
// и открывает заказ с платежом в той же транзакции.
func (d *Delivery) CreateDelivery(ctx context.Context, create entities.DeliveryCreate) (*entities.DeliveryCreated, error) {
	if err := validateCreate(&create, d.now()); err != nil {
		return nil, err
	}

	quote, err := d.Quote(entities.QuoteRequest{
		Pickup:    create.Pickup,
		Drop:      create.Drop,
		ItemClass: create.ItemClass,
		Vehicle:   create.Vehicle,
	})
	if err != nil {
		return nil, err
	}

	create.DistanceKm = quote.DistanceKm
	create.QuotedFee = quote.QuotedFee
	create.TotalFee = quote.QuotedFee
	if create.OverrideFee != nil {
		create.TotalFee = *create.OverrideFee
	}
	create.CourierFee, create.PlatformFee = d.fees.Split(create.TotalFee)

	created := entities.DeliveryCreated{}
	err = d.txManager.Do(ctx, func(ctx context.Context) error {
		delivery, err := d.repository.Create(ctx, create)
		if err != nil {
			return fmt.Errorf("create delivery: %w", err)
		}

		order, payment, err := d.ledger.OpenOrder(ctx, delivery)
		if err != nil {
			return fmt.Errorf("open order: %w", err)
		}

		created = entities.DeliveryCreated{
			Delivery: delivery,
			Order:    order,
			Payment:  payment,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	d.publish(ctx, created.Delivery)

	return &created, nil
}

func (d *Delivery) GetDelivery(ctx context.Context, id int64) (*entities.DeliveryRequest, error) {
	if id <= 0 {
		return nil, ErrInvalidDeliveryID
	}

	delivery, err := d.repository.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get delivery: %w", err)
	}
	return delivery, nil
}

func (d *Delivery) ListDeliveries(ctx context.Context, filter entities.DeliveryFilter) ([]entities.DeliveryRequest, error) {
	deliveries, err := d.repository.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list deliveries: %w", err)
	}
	return deliveries, nil
}

// FindCandidates только рекомендует курьеров. При notify рассылка уходит
// в фоне и не влияет на ответ.
func (d *Delivery) FindCandidates(
	ctx context.Context,
	id int64,
	radiusKm float64,
	limit uint64,
	notify bool,
) ([]entities.Candidate, error) {
	delivery, err := d.GetDelivery(ctx, id)
	if err != nil {
		return nil, err
	}
	if delivery.Status != entities.DeliveryPending {
		return nil, fmt.Errorf("%w: %s", ErrNotPending, delivery.Status)
	}

	candidates, err := d.matcher.Candidates(ctx, delivery.Pickup, radiusKm, limit)
	if err != nil {
		return nil, fmt.Errorf("find candidates: %w", err)
	}

	if notify && len(candidates) > 0 {
		courierIDs := make([]int64, 0, len(candidates))
		for _, c := range candidates {
			courierIDs = append(courierIDs, c.CourierID)
		}
		d.notifyAsync(ctx, delivery, courierIDs)
	}

	return candidates, nil
}

func (d *Delivery) notifyAsync(ctx context.Context, delivery *entities.DeliveryRequest, courierIDs []int64) {
	// ответ клиенту не ждет рассылку, поэтому отвязываемся от отмены запроса
	ctx = context.WithoutCancel(ctx)

	d.inflightOps.Add(1)
	go func() {
		defer d.inflightOps.Done()

		if err := d.pusher.NotifyNewRequest(ctx, delivery, courierIDs); err != nil {
			d.log.Warn("push new request failed",
				logger.NewField("delivery_id", delivery.ID),
				logger.NewField("couriers", len(courierIDs)),
				logger.NewField("error", err),
			)
		}
	}()
}

// AcceptDelivery: побеждает первый курьер. Проигравший получает already_taken
// без каких-либо изменений.
func (d *Delivery) AcceptDelivery(ctx context.Context, id, courierID int64) (*entities.AcceptResult, error) {
	if id <= 0 {
		return nil, ErrInvalidDeliveryID
	}
	if courierID <= 0 {
		return nil, ErrInvalidCourierID
	}

	delivery, err := d.repository.Accept(ctx, id, courierID)
	if err != nil {
		switch {
		case errors.Is(err, ErrAlreadyTaken):
			AcceptOutcomesTotal.WithLabelValues(string(entities.AcceptAlreadyTaken)).Inc()
			return &entities.AcceptResult{Outcome: entities.AcceptAlreadyTaken}, err
		case errors.Is(err, ErrDeliveryNotFound):
			AcceptOutcomesTotal.WithLabelValues(string(entities.AcceptNotFound)).Inc()
			return &entities.AcceptResult{Outcome: entities.AcceptNotFound}, err
		default:
			return nil, fmt.Errorf("accept delivery: %w", err)
		}
	}

	AcceptOutcomesTotal.WithLabelValues(string(entities.AcceptAccepted)).Inc()
	d.publish(ctx, delivery)

	return &entities.AcceptResult{
		Outcome:  entities.AcceptAccepted,
		Delivery: delivery,
	}, nil
}

// AdvanceStatus - переходы, которые делает назначенный курьер.
func (d *Delivery) AdvanceStatus(
	ctx context.Context,
	id, courierID int64,
	to entities.DeliveryStatus,
) (*entities.DeliveryRequest, error) {
	if id <= 0 {
		return nil, ErrInvalidDeliveryID
	}
	if courierID <= 0 {
		return nil, ErrInvalidCourierID
	}

	from, err := allowedFrom(to)
	if err != nil {
		return nil, err
	}

	if to != entities.DeliveryDelivered {
		delivery, err := d.repository.Advance(ctx, id, courierID, from, to)
		if err != nil {
			return nil, d.explainRejected(ctx, id, courierID, to, err)
		}
		d.publish(ctx, delivery)
		return delivery, nil
	}

	var delivered *entities.DeliveryRequest
	err = d.txManager.DoReadCommitted(ctx, func(ctx context.Context) error {
		delivery, err := d.repository.Advance(ctx, id, courierID, from, to)
		if err != nil {
			return d.explainRejected(ctx, id, courierID, to, err)
		}

		if err := d.couriers.IncrementCompletedJobs(ctx, courierID); err != nil {
			return fmt.Errorf("increment completed jobs: %w", err)
		}

		if err := d.completion.Schedule(ctx, delivery.ID); err != nil {
			return fmt.Errorf("schedule completion: %w", err)
		}

		delivered = delivery
		return nil
	})
	if err != nil {
		return nil, err
	}

	d.publish(ctx, delivered)
	d.runCompletion(ctx, delivered.ID)

	return delivered, nil
}

// runCompletion выполняет эффекты сразу после коммита. Упавшие эффекты
// остаются в задачах и добираются фоновым sweep, курьер ошибку не видит.
func (d *Delivery) runCompletion(ctx context.Context, deliveryID int64) {
	results, err := d.completion.Run(ctx, deliveryID)
	if err != nil {
		d.log.Error("completion run failed",
			logger.NewField("delivery_id", deliveryID),
			logger.NewField("error", err),
		)
		return
	}

	for _, result := range results {
		if result.Err != nil {
			d.log.Warn("completion effect failed",
				logger.NewField("delivery_id", deliveryID),
				logger.NewField("effect", result.Effect.String()),
				logger.NewField("error", result.Err),
			)
		}
	}
}

// explainRejected вызывается, когда условный UPDATE не затронул строку:
// перечитываем доставку и отдаем типизированную причину.
func (d *Delivery) explainRejected(
	ctx context.Context,
	id, courierID int64,
	to entities.DeliveryStatus,
	cause error,
) error {
	if !errors.Is(cause, ErrDeliveryNotFound) {
		return fmt.Errorf("advance delivery: %w", cause)
	}

	current, err := d.repository.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("get delivery: %w", err)
	}

	switch {
	case current.Status == entities.DeliveryDelivered:
		return ErrAlreadyDelivered
	case current.Status == entities.DeliveryCancelled:
		return ErrAlreadyCancelled
	case current.CourierID == nil || *current.CourierID != courierID:
		return ErrNotAssignedCourier
	default:
		return fmt.Errorf("%w: %s -> %s", ErrIllegalTransition, current.Status, to)
	}
}

// CancelDelivery: до забора платеж отменяется, после забора возвращается,
// а расчет исключается. Возврат через шлюз планируется задачей в той же
// транзакции и первый раз пробуется сразу после коммита.
func (d *Delivery) CancelDelivery(ctx context.Context, cancel entities.DeliveryCancel) (*entities.DeliveryCancellation, error) {
	if cancel.DeliveryID <= 0 {
		return nil, ErrInvalidDeliveryID
	}
	if !isValidActor(cancel.Actor) {
		return nil, ErrInvalidActor
	}
	if cancel.Actor == entities.ActorCustomer && cancel.ActorID <= 0 {
		return nil, ErrInvalidCustomerID
	}

	reason := cancel.Reason
	if reason == "" {
		reason = fmt.Sprintf("cancelled by %s", cancel.Actor)
	}

	result := entities.DeliveryCancellation{}
	err := d.txManager.DoReadCommitted(ctx, func(ctx context.Context) error {
		current, err := d.repository.GetByIDForUpdate(ctx, cancel.DeliveryID)
		if err != nil {
			return fmt.Errorf("get delivery: %w", err)
		}

		if cancel.Actor == entities.ActorCustomer && current.CustomerID != cancel.ActorID {
			return ErrNotOwner
		}

		switch current.Status {
		case entities.DeliveryDelivered:
			return ErrAlreadyDelivered
		case entities.DeliveryCancelled:
			return ErrAlreadyCancelled
		}

		cancelled, err := d.repository.Cancel(ctx, current.ID, reason)
		if err != nil {
			return fmt.Errorf("cancel delivery: %w", err)
		}

		ledger, err := d.ledger.SettleCancellation(ctx, cancelled, current.Status, reason)
		if err != nil {
			return fmt.Errorf("settle cancellation: %w", err)
		}

		if ledger != nil && ledger.RefundViaGateway {
			if err := d.completion.ScheduleRefund(ctx, cancelled.ID); err != nil {
				return fmt.Errorf("schedule refund: %w", err)
			}
		}

		result = entities.DeliveryCancellation{
			Delivery:       cancelled,
			PreviousStatus: current.Status,
			Ledger:         ledger,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if result.Ledger != nil && result.Ledger.RefundViaGateway {
		d.refund(ctx, &result)
	}

	d.publish(ctx, result.Delivery)

	return &result, nil
}

// refund: неудача не отменяет отмену, платеж остается refund_pending,
// а задачу повторит фоновый sweep.
func (d *Delivery) refund(ctx context.Context, result *entities.DeliveryCancellation) {
	deliveryID := result.Delivery.ID

	task, err := d.completion.RunRefund(ctx, deliveryID)
	if err == nil {
		err = task.Err
	}
	if err != nil {
		result.RefundFailed = true
		d.log.Warn("refund failed, task left for retry",
			logger.NewField("delivery_id", deliveryID),
			logger.NewField("error", err),
		)
		return
	}
	if result.Ledger.Payment == nil {
		return
	}

	payment, err := d.ledger.GetPayment(ctx, result.Ledger.Payment.ID)
	if err != nil {
		d.log.Warn("reload refunded payment failed",
			logger.NewField("delivery_id", deliveryID),
			logger.NewField("error", err),
		)
		return
	}
	result.Ledger.Payment = payment
}

// publish best-effort: событие теряется только в лог, транзакция уже закоммичена.
func (d *Delivery) publish(ctx context.Context, delivery *entities.DeliveryRequest) {
	event := entities.DeliveryStatusChanged{
		EventID:    uuid.NewString(),
		DeliveryID: delivery.ID,
		Status:     delivery.Status,
		CourierID:  delivery.CourierID,
		OccurredAt: d.now(),
	}

	if err := d.publisher.PublishStatusChanged(ctx, event); err != nil {
		d.log.Warn("publish status event failed",
			logger.NewField("delivery_id", delivery.ID),
			logger.NewField("status", delivery.Status.String()),
			logger.NewField("error", err),
		)
	}

	TransitionsTotal.WithLabelValues(delivery.Status.String()).Inc()
}
