package payment

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/structpb"
	"lastmile/internal/entities"
	retrierconfig "lastmile/pkg/retrier"
	"lastmile/pkg/retrier/backoff_adapter"
)

const (
	serviceName  = "payment-gateway"
	refundMethod = "/payments.v1.PaymentGateway/Refund"
)

const (
	initialInterval = 100 * time.Millisecond
	maxInterval     = 2 * time.Second
	maxElapsedTime  = 5 * time.Second
	randomization   = 0.5
	multiplier      = 2.0
)

type PaymentGateway struct {
	conn    invoker
	retrier retrier
	timeout time.Duration
}

func New(conn invoker, timeout time.Duration) *PaymentGateway {
	retryConfig := retrierconfig.Config{
		InitialInterval: initialInterval,
		MaxInterval:     maxInterval,
		MaxElapsedTime:  maxElapsedTime,
		Randomization:   randomization,
		Multiplier:      multiplier,
		ShouldRetry:     isRetryableCode,
	}

	return &PaymentGateway{
		conn:    conn,
		retrier: backoff_adapter.New(retryConfig),
		timeout: timeout,
	}
}

// Refund возвращает ссылку шлюза на возврат. Ключ идемпотентности привязан
// к платежу, поэтому повтор после таймаута не вернет деньги дважды.
func (p *PaymentGateway) Refund(ctx context.Context, req entities.RefundRequest) (string, error) {
	idempotencyKey := "refund-" + strconv.FormatInt(req.PaymentID, 10)

	in, err := toRefundRequest(req, idempotencyKey)
	if err != nil {
		return "", fmt.Errorf("gateway payment, build refund request: %w", err)
	}

	var out *structpb.Struct
	err = p.executeWithMetrics(ctx, "Refund", func(ctx context.Context) error {
		if p.timeout > 0 {
			var cancel context.CancelFunc
			ctx, cancel = context.WithTimeout(ctx, p.timeout)
			defer cancel()
		}

		resp := &structpb.Struct{}
		if err := p.conn.Invoke(ctx, refundMethod, in, resp); err != nil {
			return err
		}
		out = resp
		return nil
	})
	if err != nil {
		return "", fmt.Errorf("gateway payment, refund payment %d: %w", req.PaymentID, err)
	}

	ref, err := refundRef(out)
	if err != nil {
		return "", fmt.Errorf("gateway payment, refund payment %d: %w", req.PaymentID, err)
	}
	return ref, nil
}

func isRetryableCode(err error) bool {
	if err == nil {
		return false
	}
	st, ok := status.FromError(err)
	if !ok {
		return false
	}

	switch st.Code() {
	case codes.ResourceExhausted,
		codes.Unavailable,
		codes.DeadlineExceeded:
		return true
	default:
		return false
	}
}

// latency metric -> attempts metric -> retrier -> gateway
func (p *PaymentGateway) executeWithMetrics(ctx context.Context, method string, fn func(context.Context) error) error {
	var attempt uint64
	start := time.Now()

	err := p.retrier.ExecuteWithContext(ctx, func(ctx context.Context) error {
		attempt++
		return fn(ctx)
	})

	grpcCode := getGRPCCode(err)
	GatewayRequestDuration.WithLabelValues(serviceName, method, grpcCode).Observe(time.Since(start).Seconds())

	if attempt > 1 {
		GatewayRetriesTotal.WithLabelValues(serviceName, method, grpcCode).Inc()
	}

	return err
}

func getGRPCCode(err error) string {
	if err == nil {
		return "OK"
	}
	if st, ok := status.FromError(err); ok {
		return st.Code().String()
	}
	return "UNKNOWN"
}
