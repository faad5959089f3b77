package wallet

import (
	"context"
	"errors"
	"fmt"

	"lastmile/internal/entities"
	"lastmile/internal/service/ledger"
)

type Config struct {
	MinPayout int64
}

// Wallet двигает балансы только атомарными инкрементами в БД,
// прочитать-посчитать-записать здесь нет нигде.
type Wallet struct {
	repository  Repository
	payouts     PayoutRepository
	settlements SettlementRepository
	txManager   TxManager
	cfg         Config
}

func New(
	repository Repository,
	payouts PayoutRepository,
	settlements SettlementRepository,
	txManager TxManager,
	cfg Config,
) *Wallet {
	return &Wallet{
		repository:  repository,
		payouts:     payouts,
		settlements: settlements,
		txManager:   txManager,
		cfg:         cfg,
	}
}

func (w *Wallet) GetWallet(ctx context.Context, courierID int64) (*entities.Wallet, error) {
	if courierID <= 0 {
		return nil, ErrInvalidCourierID
	}

	wallet, err := w.repository.Get(ctx, courierID)
	if err != nil {
		return nil, fmt.Errorf("failed to get wallet: %w", err)
	}
	return wallet, nil
}

func (w *Wallet) ListPayouts(ctx context.Context, courierID int64) ([]entities.PayoutRequest, error) {
	if courierID <= 0 {
		return nil, ErrInvalidCourierID
	}

	payouts, err := w.payouts.ListByCourier(ctx, courierID)
	if err != nil {
		return nil, fmt.Errorf("failed to list payouts: %w", err)
	}
	return payouts, nil
}

// ConfirmSettlement переводит сумму расчета из pending в available одной транзакцией
// вместе со сменой статуса расчета.
func (w *Wallet) ConfirmSettlement(ctx context.Context, settlementID int64) (*entities.SettlementConfirmation, error) {
	if settlementID <= 0 {
		return nil, ErrInvalidSettlementID
	}

	var result entities.SettlementConfirmation
	err := w.txManager.DoReadCommitted(ctx, func(ctx context.Context) error {
		settlement, err := w.settlements.ConfirmSettlement(ctx, settlementID)
		if err != nil {
			if errors.Is(err, ledger.ErrSettlementNotPending) {
				return w.diagnoseSettlement(ctx, settlementID)
			}
			return fmt.Errorf("confirm settlement: %w", err)
		}

		wallet, err := w.repository.MovePendingToAvailable(ctx, settlement.CourierID, settlement.Amount)
		if err != nil {
			return fmt.Errorf("move pending to available: %w", err)
		}

		result = entities.SettlementConfirmation{
			Settlement: settlement,
			Wallet:     wallet,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &result, nil
}

func (w *Wallet) diagnoseSettlement(ctx context.Context, settlementID int64) error {
	settlement, err := w.settlements.GetSettlementByID(ctx, settlementID)
	if err != nil {
		return fmt.Errorf("get settlement: %w", err)
	}
	return fmt.Errorf("%w: current status %s", ledger.ErrSettlementNotPending, settlement.Status)
}

// RequestPayout сразу холдирует сумму на available_balance. Уникальный индекс
// на открытые заявки и условное списание делают проверку и списание атомарными.
func (w *Wallet) RequestPayout(ctx context.Context, courierID, amount int64) (*entities.PayoutResult, error) {
	if courierID <= 0 {
		return nil, ErrInvalidCourierID
	}
	if amount <= 0 {
		return nil, ErrInvalidAmount
	}
	if amount < w.cfg.MinPayout {
		return nil, fmt.Errorf("%w: %d < %d", ErrBelowMinimumPayout, amount, w.cfg.MinPayout)
	}

	var result entities.PayoutResult
	err := w.txManager.DoReadCommitted(ctx, func(ctx context.Context) error {
		payout, err := w.payouts.Create(ctx, courierID, amount)
		if err != nil {
			return fmt.Errorf("create payout request: %w", err)
		}

		wallet, err := w.repository.Debit(ctx, courierID, amount)
		if err != nil {
			return fmt.Errorf("hold available balance: %w", err)
		}

		result = entities.PayoutResult{
			Payout: payout,
			Wallet: wallet,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	PayoutsTotal.WithLabelValues(entities.PayoutPending.String()).Inc()
	return &result, nil
}

func (w *Wallet) ProcessPayout(ctx context.Context, payoutID int64, action entities.PayoutAction, note *string) (*entities.PayoutResult, error) {
	switch action {
	case entities.PayoutActionApprove:
		return w.ApprovePayout(ctx, payoutID)
	case entities.PayoutActionPaid:
		return w.MarkPayoutPaid(ctx, payoutID)
	case entities.PayoutActionReject:
		return w.RejectPayout(ctx, payoutID, note)
	default:
		return nil, fmt.Errorf("%w: %q", ErrInvalidAction, action)
	}
}

func (w *Wallet) ApprovePayout(ctx context.Context, payoutID int64) (*entities.PayoutResult, error) {
	if payoutID <= 0 {
		return nil, ErrInvalidPayoutID
	}

	payout, err := w.transition(ctx, payoutID, entities.PayoutApproved, []entities.PayoutStatus{entities.PayoutPending}, nil)
	if err != nil {
		return nil, err
	}

	PayoutsTotal.WithLabelValues(payout.Status.String()).Inc()
	return &entities.PayoutResult{Payout: payout}, nil
}

// RejectPayout возвращает холд обратно в available_balance.
func (w *Wallet) RejectPayout(ctx context.Context, payoutID int64, note *string) (*entities.PayoutResult, error) {
	if payoutID <= 0 {
		return nil, ErrInvalidPayoutID
	}

	var result entities.PayoutResult
	err := w.txManager.DoReadCommitted(ctx, func(ctx context.Context) error {
		payout, err := w.transition(
			ctx,
			payoutID,
			entities.PayoutRejected,
			[]entities.PayoutStatus{entities.PayoutPending, entities.PayoutApproved},
			note,
		)
		if err != nil {
			return err
		}

		wallet, err := w.repository.Credit(ctx, payout.CourierID, payout.Amount)
		if err != nil {
			return fmt.Errorf("release hold: %w", err)
		}

		result = entities.PayoutResult{
			Payout: payout,
			Wallet: wallet,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	PayoutsTotal.WithLabelValues(entities.PayoutRejected.String()).Inc()
	return &result, nil
}

// MarkPayoutPaid списывает подтвержденные расчеты курьера в порядке создания,
// пока их сумма не покроет выплату. Последний расчет может списаться частично,
// остаток уйдет в следующую выплату.
func (w *Wallet) MarkPayoutPaid(ctx context.Context, payoutID int64) (*entities.PayoutResult, error) {
	if payoutID <= 0 {
		return nil, ErrInvalidPayoutID
	}

	var result entities.PayoutResult
	err := w.txManager.DoReadCommitted(ctx, func(ctx context.Context) error {
		payout, err := w.transition(ctx, payoutID, entities.PayoutPaid, []entities.PayoutStatus{entities.PayoutApproved}, nil)
		if err != nil {
			return err
		}

		confirmed, err := w.settlements.ListConfirmedSettlementsForUpdate(ctx, payout.CourierID)
		if err != nil {
			return fmt.Errorf("list confirmed settlements: %w", err)
		}

		draws := consumeFIFO(confirmed, payout.Amount)
		if len(draws) > 0 {
			if err := w.settlements.DrawSettlements(ctx, payout.ID, draws); err != nil {
				return fmt.Errorf("draw settlements: %w", err)
			}
		}

		ids := make([]int64, 0, len(draws))
		for _, d := range draws {
			ids = append(ids, d.SettlementID)
		}

		result = entities.PayoutResult{
			Payout:        payout,
			SettlementIDs: ids,
			Draws:         draws,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	PayoutsTotal.WithLabelValues(entities.PayoutPaid.String()).Inc()
	return &result, nil
}

func (w *Wallet) transition(
	ctx context.Context,
	payoutID int64,
	to entities.PayoutStatus,
	from []entities.PayoutStatus,
	note *string,
) (*entities.PayoutRequest, error) {
	payout, err := w.payouts.Transition(ctx, payoutID, to, from, note)
	if err == nil {
		return payout, nil
	}
	if !errors.Is(err, ErrIllegalPayoutTransition) {
		return nil, fmt.Errorf("payout transition: %w", err)
	}

	current, getErr := w.payouts.GetByID(ctx, payoutID)
	if getErr != nil {
		return nil, fmt.Errorf("get payout: %w", getErr)
	}
	return nil, fmt.Errorf("%w: %s -> %s", ErrIllegalPayoutTransition, current.Status, to)
}

// consumeFIFO: settlements уже отсортированы по created_at, id.
func consumeFIFO(settlements []entities.Settlement, amount int64) []entities.SettlementDraw {
	var draws []entities.SettlementDraw
	for _, s := range settlements {
		if amount <= 0 {
			break
		}
		take := min(s.Remaining(), amount)
		if take <= 0 {
			continue
		}
		draws = append(draws, entities.SettlementDraw{SettlementID: s.ID, Amount: take})
		amount -= take
	}
	return draws
}
