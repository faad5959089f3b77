package app

import (
	"context"

	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/jackc/pgx/v5/pgxpool"
	"google.golang.org/grpc"
	"lastmile/internal/entities"
	"lastmile/internal/gateway/amqp/push"
	"lastmile/internal/gateway/grpc/payment"
	"lastmile/internal/gateway/kafka/delivery_events"
	"lastmile/internal/handlers/tasks/completion_sweep"
	"lastmile/internal/pkg/config"
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
	"lastmile/pkg/background"
	"lastmile/pkg/logger"
	"lastmile/pkg/querier"
	"lastmile/pkg/tx"
)

func provideTxManager(pool *pgxpool.Pool) *tx.Manager {
	return tx.New(pool)
}

func provideQuerier(pool *pgxpool.Pool, getter *pgxv5.CtxGetter) *querier.Querier {
	return querier.New(pool, getter)
}

func provideCourierRepository(querier *querier.Querier) *courierRepo.Repository {
	return courierRepo.New(querier)
}

func provideDeliveryRepository(querier *querier.Querier) *deliveryRepo.Repository {
	return deliveryRepo.New(querier)
}

func provideLedgerRepository(querier *querier.Querier) *ledgerRepo.Repository {
	return ledgerRepo.New(querier)
}

func provideWalletRepository(querier *querier.Querier) *walletRepo.Repository {
	return walletRepo.New(querier)
}

func providePayoutRepository(querier *querier.Querier) *payoutRepo.Repository {
	return payoutRepo.New(querier)
}

func provideReferralRepository(querier *querier.Querier) *referralRepo.Repository {
	return referralRepo.New(querier)
}

func provideLoyaltyRepository(querier *querier.Querier) *loyaltyRepo.Repository {
	return loyaltyRepo.New(querier)
}

func provideCompletionRepository(querier *querier.Querier) *completionRepo.Repository {
	return completionRepo.New(querier)
}

func provideFeeConfig(cfg *config.Config) fee.Config {
	p := cfg.Pricing
	return fee.Config{
		BaseFee:    p.BaseFee,
		IncludedKm: p.IncludedKm,
		PerKm:      p.PerKm,
		Surcharges: map[entities.ItemClass]int64{
			entities.ItemDocument: p.SurchargeDocument,
			entities.ItemSmall:    p.SurchargeSmall,
			entities.ItemMedium:   p.SurchargeMedium,
			entities.ItemLarge:    p.SurchargeLarge,
			entities.ItemBulky:    p.SurchargeBulky,
		},
		PlatformCommission: p.PlatformCommission,
	}
}

func provideMatcherConfig(cfg *config.Config) matcher.Config {
	return matcher.Config{
		DefaultRadiusKm: cfg.Matcher.DefaultRadiusKm,
		MaxRadiusKm:     cfg.Matcher.MaxRadiusKm,
		DefaultLimit:    cfg.Matcher.DefaultLimit,
		MaxLimit:        cfg.Matcher.MaxLimit,
		MinCandidates:   cfg.Matcher.MinCandidates,
	}
}

func provideWalletConfig(cfg *config.Config) walletService.Config {
	return walletService.Config{
		MinPayout: cfg.Wallet.MinPayout,
	}
}

func provideLoyaltyConfig(cfg *config.Config) loyaltyService.Config {
	return loyaltyService.Config{
		PointsRate: cfg.Loyalty.PointsRate,
	}
}

func provideCompletionConfig(cfg *config.Config) completionService.Config {
	return completionService.Config{
		MaxAttempts: cfg.Tasks.CompletionMaxAttempts,
		StaleAfter:  cfg.Tasks.CompletionStaleAfter,
		BatchSize:   cfg.Tasks.CompletionBatchSize,
	}
}

func provideMatcher(repository matcher.Repository, cfg matcher.Config) *matcher.Matcher {
	return matcher.New(repository, cfg)
}

// providePaymentGateway - *grpc.ClientConn сам реализует Invoke.
func providePaymentGateway(conn *grpc.ClientConn, cfg *config.Config) *payment.PaymentGateway {
	return payment.New(conn, cfg.PaymentGateway.Timeout)
}

func provideEventPublisher(producer *kafka.Producer, cfg *config.Config) *delivery_events.Publisher {
	return delivery_events.New(producer, cfg.Kafka.Topic)
}

func providePusher(publisher *rabbitmq.Producer) *push.Pusher {
	return push.New(publisher)
}

func provideServiceCourier(repository courierService.Repository) *courierService.Courier {
	return courierService.New(repository)
}

func provideServiceLedger(
	repository ledgerService.Repository,
	wallets ledgerService.WalletRepository,
	projection ledgerService.ProjectionFactory,
	gateway ledgerService.PaymentGateway,
	txManager ledgerService.TxManager,
) *ledgerService.Ledger {
	return ledgerService.New(repository, wallets, projection, gateway, txManager)
}

func provideServiceWallet(
	repository walletService.Repository,
	payouts walletService.PayoutRepository,
	settlements walletService.SettlementRepository,
	txManager walletService.TxManager,
	cfg walletService.Config,
) *walletService.Wallet {
	return walletService.New(repository, payouts, settlements, txManager, cfg)
}

func provideServiceReferral(
	repository referralService.Repository,
	txManager referralService.TxManager,
) *referralService.Referral {
	return referralService.New(repository, txManager)
}

func provideServiceCompletion(
	repository completionService.Repository,
	deliveries completionService.DeliveryRepository,
	factory completionService.HandlerFactory,
	cfg completionService.Config,
) *completionService.Service {
	return completionService.New(repository, deliveries, factory, cfg)
}

func provideServiceDelivery(
	log logger.Logger,
	repository deliveryService.Repository,
	couriers deliveryService.CourierRepository,
	ledger deliveryService.LedgerService,
	completion deliveryService.CompletionService,
	fees deliveryService.FeeCalculator,
	etaFactory deliveryService.ETAFactory,
	matcher deliveryService.Matcher,
	pusher deliveryService.Pusher,
	publisher deliveryService.EventPublisher,
	txManager deliveryService.TxManager,
) *deliveryService.Delivery {
	return deliveryService.New(
		log.With(logger.NewField("component", "delivery")),
		repository,
		couriers,
		ledger,
		completion,
		fees,
		etaFactory,
		matcher,
		pusher,
		publisher,
		txManager,
	)
}

func provideCompletionSweepTask(
	log logger.Logger,
	completion completion_sweep.CompletionService,
	ledger completion_sweep.LedgerService,
	cfg *config.Config,
) *completion_sweep.CompletionSweep {
	return completion_sweep.New(
		log.With(logger.NewField("task", "completion_sweep")),
		completion,
		ledger,
		cfg.Tasks.CompletionSweepInterval,
		cfg.Tasks.DriftBatchSize,
	)
}

func provideTaskList(
	completionSweepTask *completion_sweep.CompletionSweep,
) []background.Task {
	return []background.Task{
		completionSweepTask,
	}
}

func provideBackgroundWorkers(ctx context.Context, log logger.Logger, tasks []background.Task) (*background.Worker, error) {
	return background.New(ctx, log, tasks)
}
