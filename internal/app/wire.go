//go:build wireinject
// +build wireinject

package app

import (
	"context"

	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/google/wire"
	"github.com/jackc/pgx/v5/pgxpool"
	"google.golang.org/grpc"
	"lastmile/internal/gateway/amqp/push"
	"lastmile/internal/gateway/grpc/payment"
	"lastmile/internal/gateway/kafka/delivery_events"
	"lastmile/internal/handlers/kafka-consumer/delivery_status_changed"
	"lastmile/internal/handlers/tasks/completion_sweep"
	"lastmile/internal/pkg/config"
	"lastmile/internal/pkg/factory/completion_effect"
	"lastmile/internal/pkg/factory/delivery_eta"
	"lastmile/internal/pkg/factory/order_status"
	"lastmile/internal/pkg/kafka"
	"lastmile/internal/pkg/rabbitmq"
	completionRepo "lastmile/internal/repository/completion"
	courierRepo "lastmile/internal/repository/courier"
	deliveryRepo "lastmile/internal/repository/delivery"
	ledgerRepo "lastmile/internal/repository/ledger"
	loyaltyRepo "lastmile/internal/repository/loyalty"
	payoutRepo "lastmile/internal/repository/payout"
	referralRepo "lastmile/internal/repository/referral"
	walletRepo "lastmile/internal/repository/wallet"
	completionService "lastmile/internal/service/completion"
	courierService "lastmile/internal/service/courier"
	deliveryService "lastmile/internal/service/delivery"
	"lastmile/internal/service/fee"
	ledgerService "lastmile/internal/service/ledger"
	loyaltyService "lastmile/internal/service/loyalty"
	"lastmile/internal/service/matcher"
	referralService "lastmile/internal/service/referral"
	walletService "lastmile/internal/service/wallet"
	"lastmile/pkg/logger"
	"lastmile/pkg/tx"
)

var repositorySet = wire.NewSet(
	provideTxManager,
	provideQuerier,

	provideCourierRepository,
	provideDeliveryRepository,
	provideLedgerRepository,
	provideWalletRepository,
	providePayoutRepository,
	provideReferralRepository,
	provideLoyaltyRepository,
	provideCompletionRepository,
)

// ledgerSet - все, что нужно для проекции статусов и денежных операций.
var ledgerSet = wire.NewSet(
	order_status.New,
	providePaymentGateway,
	provideServiceLedger,

	wire.Bind(new(ledgerService.Repository), new(*ledgerRepo.Repository)),
	wire.Bind(new(ledgerService.WalletRepository), new(*walletRepo.Repository)),
	wire.Bind(new(ledgerService.ProjectionFactory), new(*order_status.ProjectionFactory)),
	wire.Bind(new(ledgerService.PaymentGateway), new(*payment.PaymentGateway)),
	wire.Bind(new(ledgerService.TxManager), new(*tx.Manager)),
)

// InitializeApplication для HTTP сервиса (cmd/service)
func InitializeApplication(
	ctx context.Context,
	log logger.Logger,
	pool *pgxpool.Pool,
	getter *pgxv5.CtxGetter,
	conn *grpc.ClientConn,
	producer *kafka.Producer,
	publisher *rabbitmq.Producer,
	cfg *config.Config,
) (*Application, error) {
	wire.Build(
		repositorySet,
		ledgerSet,

		provideFeeConfig,
		provideMatcherConfig,
		provideWalletConfig,
		provideLoyaltyConfig,
		provideCompletionConfig,

		fee.NewCalculator,
		delivery_eta.New,
		provideMatcher,
		provideEventPublisher,
		providePusher,

		provideServiceCourier,
		provideServiceWallet,
		provideServiceReferral,
		loyaltyService.New,
		completion_effect.NewEffectHandlerFactory,
		provideServiceCompletion,
		provideServiceDelivery,

		provideCompletionSweepTask,
		provideTaskList,
		provideBackgroundWorkers,

		wire.Struct(new(Application), "*"),

		wire.Bind(new(ServiceCourier), new(*courierService.Courier)),
		wire.Bind(new(ServiceDelivery), new(*deliveryService.Delivery)),
		wire.Bind(new(ServiceLedger), new(*ledgerService.Ledger)),
		wire.Bind(new(ServiceWallet), new(*walletService.Wallet)),
		wire.Bind(new(ServiceReferral), new(*referralService.Referral)),
		wire.Bind(new(ServiceCompletion), new(*completionService.Service)),

		wire.Bind(new(courierService.Repository), new(*courierRepo.Repository)),
		wire.Bind(new(matcher.Repository), new(*courierRepo.Repository)),

		wire.Bind(new(deliveryService.Repository), new(*deliveryRepo.Repository)),
		wire.Bind(new(deliveryService.CourierRepository), new(*courierRepo.Repository)),
		wire.Bind(new(deliveryService.LedgerService), new(*ledgerService.Ledger)),
		wire.Bind(new(deliveryService.CompletionService), new(*completionService.Service)),
		wire.Bind(new(deliveryService.FeeCalculator), new(*fee.Calculator)),
		wire.Bind(new(deliveryService.ETAFactory), new(*delivery_eta.DeliveryETAFactory)),
		wire.Bind(new(deliveryService.Matcher), new(*matcher.Matcher)),
		wire.Bind(new(deliveryService.Pusher), new(*push.Pusher)),
		wire.Bind(new(deliveryService.EventPublisher), new(*delivery_events.Publisher)),
		wire.Bind(new(deliveryService.TxManager), new(*tx.Manager)),

		wire.Bind(new(walletService.Repository), new(*walletRepo.Repository)),
		wire.Bind(new(walletService.PayoutRepository), new(*payoutRepo.Repository)),
		wire.Bind(new(walletService.SettlementRepository), new(*ledgerRepo.Repository)),
		wire.Bind(new(walletService.TxManager), new(*tx.Manager)),

		wire.Bind(new(referralService.Repository), new(*referralRepo.Repository)),
		wire.Bind(new(referralService.TxManager), new(*tx.Manager)),
		wire.Bind(new(loyaltyService.Repository), new(*loyaltyRepo.Repository)),

		wire.Bind(new(completionService.Repository), new(*completionRepo.Repository)),
		wire.Bind(new(completionService.DeliveryRepository), new(*deliveryRepo.Repository)),
		wire.Bind(new(completionService.HandlerFactory), new(*completion_effect.EffectHandlerFactory)),
		wire.Bind(new(completionService.LedgerService), new(*ledgerService.Ledger)),
		wire.Bind(new(completionService.ReferralService), new(*referralService.Referral)),
		wire.Bind(new(completionService.LoyaltyService), new(*loyaltyService.Loyalty)),

		wire.Bind(new(completion_sweep.CompletionService), new(*completionService.Service)),
		wire.Bind(new(completion_sweep.LedgerService), new(*ledgerService.Ledger)),
	)
	return &Application{}, nil
}

// InitializeKafkaWorkerApp для Kafka воркера (cmd/worker-delivery-status-changed)
func InitializeKafkaWorkerApp(
	pool *pgxpool.Pool,
	getter *pgxv5.CtxGetter,
	conn *grpc.ClientConn,
	cfg *config.Config,
) (*KafkaWorkerApp, error) {
	wire.Build(
		repositorySet,
		ledgerSet,

		wire.Struct(new(KafkaWorkerApp), "*"),

		wire.Bind(new(delivery_status_changed.Service), new(*ledgerService.Ledger)),
	)
	return nil, nil
}
