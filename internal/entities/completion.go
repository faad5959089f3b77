package entities

import "time"

// CompletionEffect - независимые побочные эффекты терминального перехода доставки.
type CompletionEffect string

const (
	EffectLoyaltyCredit   CompletionEffect = "loyalty_credit"
	EffectReferralBonus   CompletionEffect = "referral_bonus"
	EffectSettlement      CompletionEffect = "settlement"
	EffectOrderProjection CompletionEffect = "order_projection"

	// EffectRefund возвращает списанный платеж отмененной доставки через шлюз.
	EffectRefund CompletionEffect = "refund"
)

func CompletionEffects() []CompletionEffect {
	return []CompletionEffect{
		EffectLoyaltyCredit,
		EffectReferralBonus,
		EffectSettlement,
		EffectOrderProjection,
	}
}

// TriggerStatus - статус доставки, в котором эффект имеет смысл.
func (e CompletionEffect) TriggerStatus() DeliveryStatus {
	if e == EffectRefund {
		return DeliveryCancelled
	}
	return DeliveryDelivered
}

func (e CompletionEffect) String() string {
	return string(e)
}

type TaskStatus string

const (
	TaskPending TaskStatus = "pending"
	TaskDone    TaskStatus = "done"
	TaskFailed  TaskStatus = "failed"
)

type CompletionTask struct {
	DeliveryID int64
	Effect     CompletionEffect
	Status     TaskStatus
	Attempts   int
	LastError  *string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

type TaskResult struct {
	DeliveryID int64
	Effect     CompletionEffect
	Err        error
}
