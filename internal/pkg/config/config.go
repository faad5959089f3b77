package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

type (
	Tasks struct {
		CompletionSweepInterval time.Duration
		CompletionStaleAfter    time.Duration
		CompletionMaxAttempts   int
		CompletionBatchSize     uint64
		DriftBatchSize          uint64
	}

	HTTPServer struct {
		Port                string
		RequestTimeout      time.Duration // middleware timeout
		ShutdownRetryAfter  time.Duration // Retry-After для 503 во время остановки
		RateLimiterQPS      int           // middleware  rate limiter capacity
		RateLimiterBurst    int           // middlewarerate limiter burst/refill
		ClientRateLimitQPS  int           // per-client bucket capacity, 0 - выключено
		ClientRateLimitRate float64       // per-client refill в секунду
		ClientRateLimitKeys int           // максимум клиентов в реестре
		PprofEnabled        bool
		PprofPort           string
	}

	Database struct {
		Host     string
		Port     string
		User     string
		Password string
		DBName   string
		SSLMode  string
		MaxConns int32
	}

	PaymentGateway struct {
		GRPCHost string
		Timeout  time.Duration
	}

	RabbitMQ struct {
		URL          string
		PushExchange string
	}

	Kafka struct {
		PortHealthcheck string
		Brokers         string
		Topic           string
		ConsumerGroup   string
		Sarama          Sarama
		Handlers        KafkaHandlers
	}

	Sarama struct {
		Version                   string
		ConsumerOffsetsAutocommit bool
		RebalanceStrategy         string // roundrobin | sticky | range
		InitialOffset             string // oldest | newest
		ProducerMaxRetries        int
		ProducerTimeout           time.Duration
	}

	KafkaHandlers struct {
		DeliveryStatusChanged DeliveryStatusChanged
	}

	DeliveryStatusChanged struct {
		ProcessTimeout time.Duration
	}

	// Pricing - суммы в минимальных единицах валюты.
	Pricing struct {
		BaseFee            int64
		IncludedKm         float64
		PerKm              int64
		SurchargeDocument  int64
		SurchargeSmall     int64
		SurchargeMedium    int64
		SurchargeLarge     int64
		SurchargeBulky     int64
		PlatformCommission float64
	}

	Matcher struct {
		DefaultRadiusKm float64
		MaxRadiusKm     float64
		DefaultLimit    uint64
		MaxLimit        uint64
		MinCandidates   int
	}

	Wallet struct {
		MinPayout int64
	}

	Loyalty struct {
		PointsRate float64
	}

	Metrics struct {
		CollectInterval time.Duration
	}

	Config struct {
		Tasks          Tasks
		Server         HTTPServer
		Database       Database
		PaymentGateway PaymentGateway
		RabbitMQ       RabbitMQ
		Kafka          Kafka
		Pricing        Pricing
		Matcher        Matcher
		Wallet         Wallet
		Loyalty        Loyalty
		Metrics        Metrics
	}
)

func Load() (*Config, error) {
	cfg, err := loadFromEnv()
	if err != nil {
		return nil, fmt.Errorf("environment loading: %w", err)
	}

	if err := validateConfig(cfg); err != nil {
		return nil, fmt.Errorf("validation: %w", err)
	}
	return cfg, nil
}

// envReader копит первую ошибку разбора, чтобы не проверять err после каждой переменной.
// Пустая переменная дает значение по умолчанию.
type envReader struct {
	err error
}

func read[T any](r *envReader, key string, def T, parse func(string) (T, error)) T {
	val := os.Getenv(key)
	if val == "" {
		return def
	}

	res, err := parse(val)
	if err != nil {
		if r.err == nil {
			r.err = fmt.Errorf("invalid value for %s=%q: %w", key, val, err)
		}
		return def
	}
	return res
}

func (r *envReader) duration(key string, def time.Duration) time.Duration {
	return read(r, key, def, time.ParseDuration)
}

func (r *envReader) int(key string, def int) int {
	return read(r, key, def, strconv.Atoi)
}

func (r *envReader) int64(key string, def int64) int64 {
	return read(r, key, def, func(s string) (int64, error) {
		return strconv.ParseInt(s, 10, 64)
	})
}

func (r *envReader) uint64(key string, def uint64) uint64 {
	return read(r, key, def, func(s string) (uint64, error) {
		return strconv.ParseUint(s, 10, 64)
	})
}

func (r *envReader) float(key string, def float64) float64 {
	return read(r, key, def, func(s string) (float64, error) {
		return strconv.ParseFloat(s, 64)
	})
}

func (r *envReader) bool(key string) bool {
	return read(r, key, false, strconv.ParseBool)
}

func loadFromEnv() (*Config, error) {
	r := &envReader{}

	cfg := &Config{
		Tasks: Tasks{
			CompletionSweepInterval: r.duration("BACKGROUND_COMPLETION_SWEEP_INTERVAL", 0),
			CompletionStaleAfter:    r.duration("BACKGROUND_COMPLETION_STALE_AFTER", time.Minute),
			CompletionMaxAttempts:   r.int("BACKGROUND_COMPLETION_MAX_ATTEMPTS", 10),
			CompletionBatchSize:     r.uint64("BACKGROUND_COMPLETION_BATCH_SIZE", 100),
			DriftBatchSize:          r.uint64("BACKGROUND_DRIFT_BATCH_SIZE", 100),
		},
		Server: HTTPServer{
			Port:                os.Getenv("PORT"),
			RequestTimeout:      r.duration("MIDDLEWARE_REQUEST_TIMEOUT", 0),
			ShutdownRetryAfter:  r.duration("MIDDLEWARE_SHUTDOWN_RETRY_AFTER", 5*time.Second),
			RateLimiterQPS:      r.int("MIDDLEWARE_RATE_LIMIT_QPS", 0),
			RateLimiterBurst:    r.int("MIDDLEWARE_RATE_LIMIT_BURST", 0),
			ClientRateLimitQPS:  r.int("MIDDLEWARE_CLIENT_RATE_LIMIT_QPS", 0),
			ClientRateLimitRate: r.float("MIDDLEWARE_CLIENT_RATE_LIMIT_REFILL", 0),
			ClientRateLimitKeys: r.int("MIDDLEWARE_CLIENT_RATE_LIMIT_MAX_KEYS", 10000),
			PprofEnabled:        r.bool("PPROF_ENABLED"),
			PprofPort:           os.Getenv("PPROF_PORT"),
		},
		Database: Database{
			Host:     os.Getenv("POSTGRES_HOST"),
			Port:     os.Getenv("POSTGRES_PORT"),
			User:     os.Getenv("POSTGRES_USER"),
			Password: os.Getenv("POSTGRES_PASSWORD"),
			DBName:   os.Getenv("POSTGRES_DB"),
			SSLMode:  os.Getenv("POSTGRES_SSLMODE"),
			MaxConns: int32(r.int("POSTGRES_MAX_CONNS", 0)),
		},
		PaymentGateway: PaymentGateway{
			GRPCHost: os.Getenv("PAYMENT_GATEWAY_GRPC_HOST"),
			Timeout:  r.duration("PAYMENT_GATEWAY_TIMEOUT", 3*time.Second),
		},
		RabbitMQ: RabbitMQ{
			URL:          os.Getenv("RABBITMQ_URL"),
			PushExchange: envOrDefault("RABBITMQ_PUSH_EXCHANGE", "courier.push"),
		},
		Kafka: Kafka{
			Brokers:         os.Getenv("KAFKA_BROKERS"),
			Topic:           os.Getenv("KAFKA_TOPIC"),
			ConsumerGroup:   os.Getenv("KAFKA_CONSUMER_GROUP"),
			PortHealthcheck: os.Getenv("KAFKA_HTTP_HEALTHCHECK_PORT"),
			Sarama: Sarama{
				Version:                   os.Getenv("KAFKA_SARAMA_VERSION"),
				ConsumerOffsetsAutocommit: r.bool("KAFKA_SARAMA_OFFSETS_AUTOCOMMIT"),
				RebalanceStrategy:         os.Getenv("KAFKA_SARAMA_REBALANCE_STRATEGY"),
				InitialOffset:             os.Getenv("KAFKA_SARAMA_INITIAL_OFFSET"),
				ProducerMaxRetries:        r.int("KAFKA_SARAMA_PRODUCER_MAX_RETRIES", 3),
				ProducerTimeout:           r.duration("KAFKA_SARAMA_PRODUCER_TIMEOUT", 5*time.Second),
			},
			Handlers: KafkaHandlers{
				DeliveryStatusChanged: DeliveryStatusChanged{
					ProcessTimeout: r.duration("KAFKA_HANDLER_DELIVERY_STATUS_CHANGED_PROCESS_TIMEOUT", 0),
				},
			},
		},
		Pricing: Pricing{
			BaseFee:            r.int64("PRICING_BASE_FEE", 5000),
			IncludedKm:         r.float("PRICING_INCLUDED_KM", 2),
			PerKm:              r.int64("PRICING_PER_KM", 1000),
			SurchargeDocument:  r.int64("PRICING_SURCHARGE_DOCUMENT", 0),
			SurchargeSmall:     r.int64("PRICING_SURCHARGE_SMALL", 0),
			SurchargeMedium:    r.int64("PRICING_SURCHARGE_MEDIUM", 500),
			SurchargeLarge:     r.int64("PRICING_SURCHARGE_LARGE", 1500),
			SurchargeBulky:     r.int64("PRICING_SURCHARGE_BULKY", 3000),
			PlatformCommission: r.float("PRICING_PLATFORM_COMMISSION", 0.2),
		},
		Matcher: Matcher{
			DefaultRadiusKm: r.float("MATCHER_DEFAULT_RADIUS_KM", 5),
			MaxRadiusKm:     r.float("MATCHER_MAX_RADIUS_KM", 50),
			DefaultLimit:    r.uint64("MATCHER_DEFAULT_LIMIT", 10),
			MaxLimit:        r.uint64("MATCHER_MAX_LIMIT", 100),
			MinCandidates:   r.int("MATCHER_MIN_CANDIDATES", 3),
		},
		Wallet: Wallet{
			MinPayout: r.int64("WALLET_MIN_PAYOUT", 100000),
		},
		Loyalty: Loyalty{
			PointsRate: r.float("LOYALTY_POINTS_RATE", 0.01),
		},
		Metrics: Metrics{
			CollectInterval: r.duration("METRICS_COLLECT_INTERVAL", 5*time.Second),
		},
	}

	if r.err != nil {
		return nil, fmt.Errorf("loading config: %w", r.err)
	}
	return cfg, nil
}

func envOrDefault(key, def string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return def
}

// BrokerList разбирает список брокеров через запятую.
func (k Kafka) BrokerList() []string {
	brokers := strings.Split(k.Brokers, ",")
	res := make([]string, 0, len(brokers))
	for _, b := range brokers {
		if b = strings.TrimSpace(b); b != "" {
			res = append(res, b)
		}
	}
	return res
}

// cpuSampleFloor - сборщик метрик сам ждет секунду на замер CPU.
const cpuSampleFloor = time.Second

func validateConfig(cfg *Config) error {
	if cfg.Server.Port == "" {
		return errors.New("server port is required (set via PORT env variable)")
	}
	if cfg.Server.RequestTimeout == time.Duration(0) {
		return errors.New("MIDDLEWARE_REQUEST_TIMEOUT is required")
	}
	if cfg.Server.RateLimiterQPS == 0 {
		return errors.New("MIDDLEWARE_RATE_LIMIT_QPS is required")
	}
	if cfg.Server.RateLimiterBurst == 0 {
		return errors.New("MIDDLEWARE_RATE_LIMIT_BURST is required")
	}
	if cfg.Server.ClientRateLimitQPS > 0 && cfg.Server.ClientRateLimitRate <= 0 {
		return errors.New("MIDDLEWARE_CLIENT_RATE_LIMIT_REFILL is required when per-client limit is enabled")
	}
	if cfg.Server.PprofPort == "" && cfg.Server.PprofEnabled {
		return errors.New("PprofPort is required (set via PPROF_PORT env variable)")
	}

	if cfg.Database.Host == "" {
		return errors.New("POSTGRES_HOST is required")
	}
	if cfg.Database.Port == "" {
		return errors.New("POSTGRES_PORT is required")
	}
	if cfg.Database.User == "" {
		return errors.New("POSTGRES_USER is required")
	}
	if cfg.Database.Password == "" {
		return errors.New("POSTGRES_PASSWORD is required")
	}
	if cfg.Database.DBName == "" {
		return errors.New("POSTGRES_DB is required")
	}
	if cfg.Database.SSLMode == "" {
		return errors.New("POSTGRES_SSLMODE is required")
	}

	if cfg.Tasks.CompletionSweepInterval == time.Duration(0) {
		return errors.New("BACKGROUND_COMPLETION_SWEEP_INTERVAL is required")
	}
	if cfg.Tasks.CompletionMaxAttempts <= 0 {
		return errors.New("BACKGROUND_COMPLETION_MAX_ATTEMPTS must be positive")
	}

	if cfg.PaymentGateway.GRPCHost == "" {
		return errors.New("PAYMENT_GATEWAY_GRPC_HOST is required")
	}

	if cfg.RabbitMQ.URL == "" {
		return errors.New("RABBITMQ_URL is required")
	}

	if cfg.Kafka.Brokers == "" {
		return errors.New("KAFKA_BROKERS is required")
	}
	if cfg.Kafka.Topic == "" {
		return errors.New("KAFKA_TOPIC is required")
	}
	if cfg.Kafka.ConsumerGroup == "" {
		return errors.New("KAFKA_CONSUMER_GROUP is required")
	}
	if cfg.Kafka.PortHealthcheck == "" {
		return errors.New("KAFKA_HTTP_HEALTHCHECK_PORT is required")
	}

	if cfg.Kafka.Sarama.Version == "" {
		return errors.New("KAFKA_SARAMA_VERSION is required")
	}

	if cfg.Kafka.Handlers.DeliveryStatusChanged.ProcessTimeout == time.Duration(0) {
		return errors.New("KAFKA_HANDLER_DELIVERY_STATUS_CHANGED_PROCESS_TIMEOUT is required")
	}

	if cfg.Wallet.MinPayout <= 0 {
		return errors.New("WALLET_MIN_PAYOUT must be positive")
	}

	if cfg.Metrics.CollectInterval <= cpuSampleFloor {
		return errors.New("METRICS_COLLECT_INTERVAL must be longer than one second")
	}

	return nil
}
