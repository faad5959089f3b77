package ledger

import (
	"context"
	"errors"
	"fmt"

	"lastmile/internal/entities"
)

type Ledger struct {
	repository Repository
	wallets    WalletRepository
	projection ProjectionFactory
	gateway    PaymentGateway
	txManager  TxManager
}

func New(
	repository Repository,
	wallets WalletRepository,
	projection ProjectionFactory,
	gateway PaymentGateway,
	txManager TxManager,
) *Ledger {
	return &Ledger{
		repository: repository,
		wallets:    wallets,
		projection: projection,
		gateway:    gateway,
		txManager:  txManager,
	}
}

// OpenOrder создает заказ и единственный платеж к нему. Вызывается внутри
// транзакции создания доставки. Наличные ждут сбора курьером, карта и
// перевод считаются предавторизованными.
func (l *Ledger) OpenOrder(ctx context.Context, delivery *entities.DeliveryRequest) (*entities.Order, *entities.Payment, error) {
	if delivery == nil || delivery.ID <= 0 {
		return nil, nil, ErrInvalidDeliveryID
	}

	paymentStatus, err := initialPaymentStatus(delivery.PaymentMethod)
	if err != nil {
		return nil, nil, err
	}

	order, err := l.repository.CreateOrder(ctx, delivery.ID, delivery.CustomerID)
	if err != nil {
		return nil, nil, fmt.Errorf("create order: %w", err)
	}

	payment, err := l.repository.CreatePayment(ctx, order.ID, delivery.PaymentMethod, delivery.TotalFee, paymentStatus)
	if err != nil {
		return nil, nil, fmt.Errorf("create payment: %w", err)
	}

	return order, payment, nil
}

// ProjectDeliveryStatus переносит статус доставки на заказ по фиксированной таблице.
// Статусы без проекции и попытки откатить заказ назад ничего не меняют.
func (l *Ledger) ProjectDeliveryStatus(ctx context.Context, deliveryID int64, status entities.DeliveryStatus) (*entities.Order, error) {
	if deliveryID <= 0 {
		return nil, ErrInvalidDeliveryID
	}

	transition, err := l.projection.GetTransition(status)
	if err != nil {
		if errors.Is(err, ErrUnmappedStatus) {
			return nil, nil
		}
		return nil, err
	}

	order, err := l.repository.AdvanceOrderStatus(ctx, deliveryID, *transition)
	if err != nil {
		return nil, fmt.Errorf("advance order status: %w", err)
	}

	return order, nil
}

// CreateSettlement идемпотентен: повторный вызов возвращает уже созданный расчет
// и не трогает кошелек второй раз.
func (l *Ledger) CreateSettlement(ctx context.Context, delivery *entities.DeliveryRequest) (*entities.Settlement, error) {
	if delivery == nil || delivery.ID <= 0 {
		return nil, ErrInvalidDeliveryID
	}
	if delivery.Status != entities.DeliveryDelivered || delivery.CourierID == nil {
		return nil, ErrSettlementNotAllowed
	}

	var settlement *entities.Settlement
	err := l.txManager.DoReadCommitted(ctx, func(ctx context.Context) error {
		var (
			created bool
			err     error
		)
		settlement, created, err = l.repository.InsertSettlementIfAbsent(ctx, delivery.ID, *delivery.CourierID, delivery.CourierFee)
		if err != nil {
			return fmt.Errorf("insert settlement: %w", err)
		}
		if !created {
			SettlementsTotal.WithLabelValues("existing").Inc()
			return nil
		}
		SettlementsTotal.WithLabelValues("created").Inc()

		if _, err := l.wallets.CreditPending(ctx, settlement.CourierID, settlement.Amount); err != nil {
			return fmt.Errorf("credit pending balance: %w", err)
		}

		return l.collectPayment(ctx, delivery.ID)
	})
	if err != nil {
		return nil, err
	}

	return settlement, nil
}

// collectPayment: наличные считаются собранными в момент создания расчета.
// Заказ уходит в paid только если платеж действительно оплачен.
func (l *Ledger) collectPayment(ctx context.Context, deliveryID int64) error {
	order, err := l.repository.GetOrderByDeliveryID(ctx, deliveryID)
	if err != nil {
		return fmt.Errorf("get order: %w", err)
	}

	payment, err := l.repository.GetPaymentByOrderIDForUpdate(ctx, order.ID)
	if err != nil {
		return fmt.Errorf("get payment: %w", err)
	}

	if payment.Method == entities.PaymentCash && !payment.Status.IsTerminal() {
		payment, err = l.repository.UpdatePaymentStatus(
			ctx,
			payment.ID,
			entities.PaymentPaid,
			[]entities.PaymentStatus{entities.PaymentReady, entities.PaymentPending},
			nil,
		)
		if err != nil {
			return fmt.Errorf("collect cash payment: %w", err)
		}
	}

	if payment.Status != entities.PaymentPaid {
		return nil
	}

	if _, err := l.repository.AdvanceOrderStatus(ctx, deliveryID, *l.projection.PaidTransition()); err != nil {
		return fmt.Errorf("mark order paid: %w", err)
	}
	return nil
}

// SettleCancellation работает внутри транзакции отмены, доставка уже заблокирована.
// До забора: платеж отменяется, а уже списанный возвращается.
// После забора: платеж возвращается, а расчет исключается с причиной.
// Списанные картой или переводом деньги уходят в refund_pending: refunded
// выставляет только IssueRefund после ответа шлюза.
func (l *Ledger) SettleCancellation(
	ctx context.Context,
	delivery *entities.DeliveryRequest,
	previous entities.DeliveryStatus,
	reason string,
) (*entities.CancellationLedger, error) {
	if delivery == nil || delivery.ID <= 0 {
		return nil, ErrInvalidDeliveryID
	}

	order, err := l.ProjectDeliveryStatus(ctx, delivery.ID, entities.DeliveryCancelled)
	if err != nil {
		return nil, err
	}

	payment, err := l.repository.GetPaymentByOrderIDForUpdate(ctx, order.ID)
	if err != nil {
		return nil, fmt.Errorf("get payment: %w", err)
	}

	result := &entities.CancellationLedger{
		Order:   order,
		Payment: payment,
	}

	captured := payment.Status == entities.PaymentPaid
	viaGateway := captured && payment.Method != entities.PaymentCash

	target := entities.PaymentCanceled
	switch {
	case viaGateway:
		target = entities.PaymentRefundPending
	case previous.HoldsGoods() || captured:
		target = entities.PaymentRefunded
	}

	if !payment.Status.IsTerminal() || captured {
		result.Payment, err = l.repository.UpdatePaymentStatus(ctx, payment.ID, target, []entities.PaymentStatus{payment.Status}, nil)
		if err != nil {
			return nil, fmt.Errorf("update payment: %w", err)
		}
		result.RefundViaGateway = viaGateway
	}

	if !previous.HoldsGoods() {
		return result, nil
	}

	result.Settlement, err = l.excludeSettlement(ctx, delivery.ID, reason)
	if err != nil {
		return nil, err
	}

	return result, nil
}

func (l *Ledger) excludeSettlement(ctx context.Context, deliveryID int64, reason string) (*entities.Settlement, error) {
	settlement, err := l.repository.GetSettlementByDeliveryIDForUpdate(ctx, deliveryID)
	if err != nil {
		if errors.Is(err, ErrSettlementNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("get settlement: %w", err)
	}

	// подтвержденный или выплаченный расчет уже не трогаем
	if settlement.Status != entities.SettlementPending {
		return settlement, nil
	}

	excluded, err := l.repository.ExcludeSettlement(ctx, settlement.ID, reason)
	if err != nil {
		return nil, fmt.Errorf("exclude settlement: %w", err)
	}

	if _, err := l.wallets.RevokePending(ctx, settlement.CourierID, settlement.Amount); err != nil {
		return nil, fmt.Errorf("revoke pending balance: %w", err)
	}

	return excluded, nil
}

// IssueRefund возвращает деньги отмененной доставки через шлюз. Работает вне
// транзакции, повторяется задачей refund. Ключ идемпотентности шлюза привязан
// к платежу, так что повтор после потерянного ответа не вернет деньги дважды.
func (l *Ledger) IssueRefund(ctx context.Context, delivery *entities.DeliveryRequest) (*entities.Payment, error) {
	if delivery == nil || delivery.ID <= 0 {
		return nil, ErrInvalidDeliveryID
	}

	order, err := l.repository.GetOrderByDeliveryID(ctx, delivery.ID)
	if err != nil {
		return nil, fmt.Errorf("get order: %w", err)
	}

	payment, err := l.repository.GetPaymentByOrderID(ctx, order.ID)
	if err != nil {
		return nil, fmt.Errorf("get payment: %w", err)
	}

	// уже возвращен или возврат через шлюз не нужен
	if payment.Status != entities.PaymentRefundPending {
		return payment, nil
	}

	reason := "delivery cancelled"
	if delivery.CancelReason != nil && *delivery.CancelReason != "" {
		reason = *delivery.CancelReason
	}

	ref, err := l.gateway.Refund(ctx, entities.RefundRequest{
		PaymentID: payment.ID,
		OrderID:   payment.OrderID,
		Amount:    payment.Amount,
		Reason:    reason,
	})
	if err != nil {
		RefundsTotal.WithLabelValues("failed").Inc()
		if recErr := l.repository.RecordPaymentError(ctx, payment.ID, err.Error()); recErr != nil {
			return nil, fmt.Errorf("%w: %w (record error: %w)", ErrGatewayUnavailable, err, recErr)
		}
		return nil, fmt.Errorf("%w: %w", ErrGatewayUnavailable, err)
	}

	RefundsTotal.WithLabelValues("ok").Inc()
	refunded, err := l.repository.UpdatePaymentStatus(
		ctx,
		payment.ID,
		entities.PaymentRefunded,
		[]entities.PaymentStatus{entities.PaymentRefundPending},
		&ref,
	)
	if err != nil {
		return nil, fmt.Errorf("store refund reference: %w", err)
	}

	return refunded, nil
}

// ApplyGatewayResult - колбэк шлюза. Меняет только нетерминальные платежи.
func (l *Ledger) ApplyGatewayResult(ctx context.Context, callback entities.PaymentCallback) (*entities.Payment, error) {
	if callback.PaymentID <= 0 {
		return nil, ErrInvalidPaymentID
	}
	if callback.Status != entities.PaymentPaid && callback.Status != entities.PaymentFailed {
		return nil, ErrInvalidPaymentStatus
	}

	var payment *entities.Payment
	err := l.txManager.DoReadCommitted(ctx, func(ctx context.Context) error {
		current, err := l.repository.GetPaymentByID(ctx, callback.PaymentID)
		if err != nil {
			return fmt.Errorf("get payment: %w", err)
		}
		if current.Status.IsTerminal() || current.Status == entities.PaymentRefundPending {
			return ErrPaymentTerminal
		}

		payment, err = l.repository.UpdatePaymentStatus(
			ctx,
			callback.PaymentID,
			callback.Status,
			[]entities.PaymentStatus{entities.PaymentReady, entities.PaymentPending},
			callback.GatewayRef,
		)
		if err != nil {
			return fmt.Errorf("update payment: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return payment, nil
}

// ReconcileOrders переприменяет проекцию к заказам, чей статус разошелся с доставкой.
func (l *Ledger) ReconcileOrders(ctx context.Context, limit uint64) (int64, error) {
	drifts, err := l.repository.ListOrderDrift(ctx, limit)
	if err != nil {
		return 0, fmt.Errorf("list order drift: %w", err)
	}

	var fixed int64
	var errs []error
	for _, drift := range drifts {
		order, err := l.ProjectDeliveryStatus(ctx, drift.DeliveryID, drift.DeliveryStatus)
		if err != nil {
			errs = append(errs, fmt.Errorf("delivery %d: %w", drift.DeliveryID, err))
			continue
		}
		if order != nil && order.Status != drift.OrderStatus {
			fixed++
		}
	}

	return fixed, errors.Join(errs...)
}

func (l *Ledger) GetPayment(ctx context.Context, id int64) (*entities.Payment, error) {
	if id <= 0 {
		return nil, ErrInvalidPaymentID
	}

	payment, err := l.repository.GetPaymentByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get payment: %w", err)
	}
	return payment, nil
}

func initialPaymentStatus(method entities.PaymentMethod) (entities.PaymentStatus, error) {
	switch method {
	case entities.PaymentCash:
		return entities.PaymentPending, nil
	case entities.PaymentCard, entities.PaymentTransfer:
		return entities.PaymentPaid, nil
	default:
		return "", fmt.Errorf("%w: payment method %q", ErrInvalidPaymentStatus, method)
	}
}
