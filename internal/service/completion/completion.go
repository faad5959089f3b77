package completion

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"
	"lastmile/internal/entities"
)

type Config struct {
	MaxAttempts int
	StaleAfter  time.Duration
	BatchSize   uint64
}

// Service исполняет побочные эффекты доставки: четыре эффекта delivered
// и возврат платежа после отмены. Каждый эффект идемпотентен
// и фиксирует свой результат отдельно, падение одного не трогает остальные.
type Service struct {
	repository Repository
	deliveries DeliveryRepository
	factory    HandlerFactory
	cfg        Config
}

func New(repository Repository, deliveries DeliveryRepository, factory HandlerFactory, cfg Config) *Service {
	return &Service{
		repository: repository,
		deliveries: deliveries,
		factory:    factory,
		cfg:        cfg,
	}
}

// Schedule вызывается в транзакции перехода в delivered.
func (s *Service) Schedule(ctx context.Context, deliveryID int64) error {
	if deliveryID <= 0 {
		return ErrInvalidDeliveryID
	}

	if err := s.repository.Schedule(ctx, deliveryID, entities.CompletionEffects()); err != nil {
		return fmt.Errorf("schedule completion tasks: %w", err)
	}
	return nil
}

// Run запускает все эффекты параллельно и ждет их. Ошибка возвращается,
// только если саму доставку прочитать не удалось.
func (s *Service) Run(ctx context.Context, deliveryID int64) ([]entities.TaskResult, error) {
	return s.run(ctx, deliveryID, entities.CompletionEffects())
}

// ScheduleRefund вызывается в транзакции отмены, если деньги надо вернуть через шлюз.
func (s *Service) ScheduleRefund(ctx context.Context, deliveryID int64) error {
	if deliveryID <= 0 {
		return ErrInvalidDeliveryID
	}

	if err := s.repository.Schedule(ctx, deliveryID, []entities.CompletionEffect{entities.EffectRefund}); err != nil {
		return fmt.Errorf("schedule refund task: %w", err)
	}
	return nil
}

// RunRefund - первая попытка возврата сразу после коммита отмены.
// Неудача остается в задаче, ее подберет Sweep.
func (s *Service) RunRefund(ctx context.Context, deliveryID int64) (entities.TaskResult, error) {
	results, err := s.run(ctx, deliveryID, []entities.CompletionEffect{entities.EffectRefund})
	if err != nil {
		return entities.TaskResult{}, err
	}
	return results[0], nil
}

func (s *Service) run(ctx context.Context, deliveryID int64, effects []entities.CompletionEffect) ([]entities.TaskResult, error) {
	if deliveryID <= 0 {
		return nil, ErrInvalidDeliveryID
	}

	delivery, err := s.deliveries.GetByID(ctx, deliveryID)
	if err != nil {
		return nil, fmt.Errorf("get delivery: %w", err)
	}
	for _, effect := range effects {
		if want := effect.TriggerStatus(); delivery.Status != want {
			return nil, fmt.Errorf("%w: %s needs %s, delivery is %s", ErrNotApplicable, effect, want, delivery.Status)
		}
	}

	results := make([]entities.TaskResult, len(effects))

	// errgroup без WithContext: ошибка одного эффекта не отменяет остальные
	var g errgroup.Group
	for i, effect := range effects {
		g.Go(func() error {
			results[i] = s.execute(ctx, delivery, effect)
			return nil
		})
	}
	_ = g.Wait()

	return results, nil
}

func (s *Service) execute(ctx context.Context, delivery *entities.DeliveryRequest, effect entities.CompletionEffect) entities.TaskResult {
	result := entities.TaskResult{
		DeliveryID: delivery.ID,
		Effect:     effect,
	}

	executeFn, err := s.factory.GetHandler(effect)
	if err == nil {
		err = executeFn(ctx, delivery)
	}

	if err != nil {
		result.Err = err
		EffectsTotal.WithLabelValues(effect.String(), "failed").Inc()
		if markErr := s.repository.MarkFailed(ctx, delivery.ID, effect, err.Error()); markErr != nil {
			result.Err = fmt.Errorf("%w (mark failed: %w)", err, markErr)
		}
		return result
	}

	EffectsTotal.WithLabelValues(effect.String(), "done").Inc()
	if markErr := s.repository.MarkDone(ctx, delivery.ID, effect); markErr != nil {
		// эффект применен, повтор безопасен благодаря идемпотентности
		result.Err = fmt.Errorf("mark done: %w", markErr)
	}
	return result
}

// Sweep повторяет упавшие и зависшие задачи. Возвращает число перезапущенных задач.
func (s *Service) Sweep(ctx context.Context) (int, []entities.TaskResult, error) {
	tasks, err := s.repository.ListRetryable(ctx, s.cfg.StaleAfter, s.cfg.MaxAttempts, s.cfg.BatchSize)
	if err != nil {
		return 0, nil, fmt.Errorf("list retryable tasks: %w", err)
	}

	byDelivery := make(map[int64][]entities.CompletionEffect)
	order := make([]int64, 0)
	for _, task := range tasks {
		if _, ok := byDelivery[task.DeliveryID]; !ok {
			order = append(order, task.DeliveryID)
		}
		byDelivery[task.DeliveryID] = append(byDelivery[task.DeliveryID], task.Effect)
	}

	var all []entities.TaskResult
	for _, deliveryID := range order {
		results, err := s.run(ctx, deliveryID, byDelivery[deliveryID])
		if err != nil {
			for _, effect := range byDelivery[deliveryID] {
				all = append(all, entities.TaskResult{DeliveryID: deliveryID, Effect: effect, Err: err})
				if markErr := s.repository.MarkFailed(ctx, deliveryID, effect, err.Error()); markErr != nil {
					return len(tasks), all, fmt.Errorf("mark failed: %w", markErr)
				}
			}
			continue
		}
		all = append(all, results...)
	}

	return len(tasks), all, nil
}

func (s *Service) ListTasks(ctx context.Context, deliveryID int64) ([]entities.CompletionTask, error) {
	if deliveryID <= 0 {
		return nil, ErrInvalidDeliveryID
	}

	tasks, err := s.repository.ListByDelivery(ctx, deliveryID)
	if err != nil {
		return nil, fmt.Errorf("list completion tasks: %w", err)
	}
	return tasks, nil
}
