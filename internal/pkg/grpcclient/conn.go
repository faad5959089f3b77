package grpcclient

import (
	"context"
	"fmt"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/connectivity"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/keepalive"
	"lastmile/internal/pkg/config"
	"lastmile/pkg/logger"
	"lastmile/pkg/retrier/backoff_adapter"
)

const (
	KeepaliveTime                = 5 * time.Minute
	KeepaliveTimeout             = 3 * time.Second
	KeepalivePermitWithoutStream = false

	stateWaitTimeout = 5 * time.Second
)

func NewConnClient(ctx context.Context, log logger.Logger, cfg *config.PaymentGateway) (*grpc.ClientConn, error) {
	conn, err := grpc.NewClient(
		cfg.GRPCHost,
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithKeepaliveParams(keepalive.ClientParameters{
			Time:                KeepaliveTime,
			Timeout:             KeepaliveTimeout,
			PermitWithoutStream: KeepalivePermitWithoutStream,
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create gRPC client: %w", err)
	}

	grpcLog := log.With(
		logger.NewField("component", "grpc-client"),
		logger.NewField("host", cfg.GRPCHost),
	)

	err = waitReady(ctx, grpcLog, conn)
	if err != nil {
		connCloseErr := conn.Close()
		if connCloseErr != nil {
			return nil, fmt.Errorf("gRPC connection: %w (failed to close: %v)", err, connCloseErr)
		}
		return nil, fmt.Errorf("gRPC connection: %w", err)
	}

	return conn, nil
}

// waitReady ждет состояния Ready: у шлюза нет дешевого метода для пинга,
// поэтому проверяем само соединение.
func waitReady(ctx context.Context, log logger.Logger, conn *grpc.ClientConn) error {
	ping := func(ctx context.Context) error {
		conn.Connect()
		state := conn.GetState()
		if state == connectivity.Ready {
			return nil
		}

		waitCtx, cancel := context.WithTimeout(ctx, stateWaitTimeout)
		defer cancel()
		conn.WaitForStateChange(waitCtx, state)

		if state = conn.GetState(); state != connectivity.Ready {
			return fmt.Errorf("connection state %s", state)
		}
		return nil
	}

	if err := backoff_adapter.WaitFor(ctx, log, "payment-gateway", backoff_adapter.StartupConfig, ping); err != nil {
		return fmt.Errorf("failed to establish gRPC connection: %w", err)
	}
	return nil
}
