package postgres

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"lastmile/internal/pkg/config"
	"lastmile/pkg/logger"
	"lastmile/pkg/retrier/backoff_adapter"
)

const (
	defaultMaxConns = 10
	maxConnLifetime = time.Hour
	applicationName = "lastmile"

	// postgres в compose поднимается дольше остальных
	pingInitialInterval = 5 * time.Second
)

func NewConnPool(ctx context.Context, log logger.Logger, cfg *config.Database) (*pgxpool.Pool, error) {
	connString := newDsn(cfg)

	poolCfg, err := pgxpool.ParseConfig(connString)
	if err != nil {
		return nil, err
	}
	// параллельные эффекты завершения доставки держат по соединению каждый
	poolCfg.MaxConns = defaultMaxConns
	if cfg.MaxConns > 0 {
		poolCfg.MaxConns = cfg.MaxConns
	}
	poolCfg.MinConns = poolCfg.MaxConns / 2
	poolCfg.MaxConnLifetime = maxConnLifetime

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, fmt.Errorf("connection pool: %w", err)
	}

	dbLog := log.With(
		logger.NewField("host", cfg.Host),
		logger.NewField("port", cfg.Port),
		logger.NewField("db", cfg.DBName),
	)

	err = pingDatabase(ctx, dbLog, pool)
	if err != nil {
		pool.Close()
		return nil, fmt.Errorf("database connection: %w", err)
	}

	return pool, nil
}

// newDsn экранирует пароль: в нем бывают @ и /.
func newDsn(cfg *config.Database) string {
	dsn := url.URL{
		Scheme: "postgres",
		User:   url.UserPassword(cfg.User, cfg.Password),
		Host:   cfg.Host + ":" + cfg.Port,
		Path:   "/" + cfg.DBName,
	}

	q := dsn.Query()
	q.Set("sslmode", cfg.SSLMode)
	q.Set("application_name", applicationName)
	dsn.RawQuery = q.Encode()

	return dsn.String()
}

func pingDatabase(ctx context.Context, log logger.Logger, pool *pgxpool.Pool) error {
	schedule := backoff_adapter.StartupConfig
	schedule.InitialInterval = pingInitialInterval

	if err := backoff_adapter.WaitFor(ctx, log, "postgres", schedule, pool.Ping); err != nil {
		return fmt.Errorf("failed to ping database: %w", err)
	}
	return nil
}
