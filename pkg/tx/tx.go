package tx

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/avito-tech/go-transaction-manager/trm"
	trmcontext "github.com/avito-tech/go-transaction-manager/trm/context"
	"github.com/avito-tech/go-transaction-manager/trm/manager"
	"github.com/avito-tech/go-transaction-manager/trm/settings"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"lastmile/pkg/retrier"
	"lastmile/pkg/retrier/backoff_adapter"
)

// https://www.postgresql.org/docs/current/errcodes-appendix.html
const (
	pgErrSerializationFailure = "40001"
	pgErrDeadlockDetected     = "40P01"
)

// SerializableRetry - расписание повторов serializable транзакции после конфликта.
var SerializableRetry = retrier.Config{
	InitialInterval: 10 * time.Millisecond,
	MaxInterval:     200 * time.Millisecond,
	MaxElapsedTime:  2 * time.Second,
	Randomization:   0.5,
	Multiplier:      2,
	MaxRetries:      5,
	ShouldRetry:     IsSerializationFailure,
}

type runner interface {
	DoWithSettings(ctx context.Context, s trm.Settings, fn func(ctx context.Context) error) error
}

// Manager инкапсулирует логику управления транзакциями.
// Вложенный вызов переиспользует транзакцию из контекста.
type Manager struct {
	internal runner
	retrier  retrier.Retrier
}

func New(db pgxv5.Transactional) *Manager {
	return newManager(manager.Must(pgxv5.NewDefaultFactory(db)), backoff_adapter.New(SerializableRetry))
}

func newManager(internal runner, r retrier.Retrier) *Manager {
	return &Manager{
		internal: internal,
		retrier:  r,
	}
}

// IsSerializationFailure: postgres откатил транзакцию из-за конкурентной записи,
// ее можно безопасно повторить целиком.
func IsSerializationFailure(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == pgErrSerializationFailure || pgErr.Code == pgErrDeadlockDetected
	}
	return false
}

func (m *Manager) execWithIsoLevel(
	ctx context.Context,
	level pgx.TxIsoLevel,
	fn func(ctx context.Context) error,
) error {
	txSettings := pgxv5.MustSettings(
		settings.Must(),
		pgxv5.WithTxOptions(pgx.TxOptions{IsoLevel: level}),
	)
	return m.internal.DoWithSettings(ctx, txSettings, fn)
}

// Do runs fn in a serializable transaction. После конфликта сериализации
// транзакция повторяется целиком; вложенный вызов не повторяется,
// повтор делает внешний Do.
func (m *Manager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	if trmcontext.DefaultManager.Default(ctx) != nil {
		return m.execWithIsoLevel(ctx, pgx.Serializable, fn)
	}

	err := m.retrier.ExecuteWithContext(ctx, func(ctx context.Context) error {
		return m.execWithIsoLevel(ctx, pgx.Serializable, fn)
	})
	if err != nil && IsSerializationFailure(err) {
		return fmt.Errorf("%w: %w", ErrSerializationConflict, err)
	}
	return err
}

// DoReadCommitted is for units of work that only rely on row locks and
// conditional writes (balances, status flips), where serializable retries
// would just be noise.
func (m *Manager) DoReadCommitted(ctx context.Context, fn func(ctx context.Context) error) error {
	return m.execWithIsoLevel(ctx, pgx.ReadCommitted, fn)
}
