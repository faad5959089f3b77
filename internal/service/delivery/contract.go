//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=delivery_test
package delivery

import (
	"context"
	"time"

	"lastmile/internal/entities"
	"lastmile/pkg/logger"
)

type serviceLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
}

type Repository interface {
	Create(ctx context.Context, create entities.DeliveryCreate) (*entities.DeliveryRequest, error)
	GetByID(ctx context.Context, id int64) (*entities.DeliveryRequest, error)
	GetByIDForUpdate(ctx context.Context, id int64) (*entities.DeliveryRequest, error)
	List(ctx context.Context, filter entities.DeliveryFilter) ([]entities.DeliveryRequest, error)

	// Accept - один условный UPDATE: pending и без курьера -> accepted.
	Accept(ctx context.Context, id, courierID int64) (*entities.DeliveryRequest, error)
	Advance(ctx context.Context, id, courierID int64, from []entities.DeliveryStatus, to entities.DeliveryStatus) (*entities.DeliveryRequest, error)
	Cancel(ctx context.Context, id int64, reason string) (*entities.DeliveryRequest, error)
}

type CourierRepository interface {
	IncrementCompletedJobs(ctx context.Context, courierID int64) error
}

type LedgerService interface {
	OpenOrder(ctx context.Context, delivery *entities.DeliveryRequest) (*entities.Order, *entities.Payment, error)
	SettleCancellation(ctx context.Context, delivery *entities.DeliveryRequest, previous entities.DeliveryStatus, reason string) (*entities.CancellationLedger, error)
	GetPayment(ctx context.Context, id int64) (*entities.Payment, error)
}

type CompletionService interface {
	Schedule(ctx context.Context, deliveryID int64) error
	Run(ctx context.Context, deliveryID int64) ([]entities.TaskResult, error)
	ScheduleRefund(ctx context.Context, deliveryID int64) error
	RunRefund(ctx context.Context, deliveryID int64) (entities.TaskResult, error)
}

type FeeCalculator interface {
	Quote(distanceKm float64, class entities.ItemClass) (int64, error)
	Split(total int64) (int64, int64)
}

type ETAFactory interface {
	EstimateDuration(transportType entities.CourierTransportType, distanceKm float64) time.Duration
}

type Matcher interface {
	Candidates(ctx context.Context, origin entities.Point, radiusKm float64, limit uint64) ([]entities.Candidate, error)
}

type Pusher interface {
	NotifyNewRequest(ctx context.Context, delivery *entities.DeliveryRequest, courierIDs []int64) error
}

type EventPublisher interface {
	PublishStatusChanged(ctx context.Context, event entities.DeliveryStatusChanged) error
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
	DoReadCommitted(ctx context.Context, fn func(ctx context.Context) error) error
}
