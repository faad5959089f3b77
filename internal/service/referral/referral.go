package referral

import (
	"context"
	"errors"
	"fmt"
	"math"

	"lastmile/internal/entities"
)

type Referral struct {
	repository Repository
	txManager  TxManager
}

func New(repository Repository, txManager TxManager) *Referral {
	return &Referral{
		repository: repository,
		txManager:  txManager,
	}
}

// LinkReferral: первая запись побеждает, повторные вызовы возвращают существующую связь.
func (r *Referral) LinkReferral(ctx context.Context, customerID, courierID int64) (*entities.ReferralLink, bool, error) {
	if customerID <= 0 {
		return nil, false, ErrInvalidCustomerID
	}
	if courierID <= 0 {
		return nil, false, ErrInvalidCourierID
	}

	link, created, err := r.repository.CreateLinkIfAbsent(ctx, customerID, courierID)
	if err != nil {
		return nil, false, fmt.Errorf("create referral link: %w", err)
	}
	return link, created, nil
}

// ActivatePolicy заменяет действующую политику новой ставкой.
func (r *Referral) ActivatePolicy(ctx context.Context, rate float64) (*entities.RewardPolicy, error) {
	if math.IsNaN(rate) || rate < 0 || rate > 1 {
		return nil, ErrInvalidRate
	}

	var policy *entities.RewardPolicy
	err := r.txManager.Do(ctx, func(ctx context.Context) error {
		var err error
		policy, err = r.repository.ActivatePolicy(ctx, rate)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("activate reward policy: %w", err)
	}
	return policy, nil
}

// ApplyDeliveryBonus начисляет бонус за первую выполненную доставку клиента, если
// у клиента есть активная связь именно с ее курьером. На клиента приходится не больше
// одного бонуса. Отсутствие связи или политики - не ошибка, бонуса просто нет.
func (r *Referral) ApplyDeliveryBonus(ctx context.Context, delivery *entities.DeliveryRequest) (*entities.ReferralBonus, error) {
	if delivery == nil || delivery.CourierID == nil || delivery.Status != entities.DeliveryDelivered {
		return nil, nil
	}

	link, err := r.repository.GetLink(ctx, delivery.CustomerID)
	if err != nil {
		if errors.Is(err, ErrLinkNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("get referral link: %w", err)
	}
	if !link.Active || link.CourierID != *delivery.CourierID {
		return nil, nil
	}

	first, err := r.repository.IsFirstDelivered(ctx, delivery.CustomerID, delivery.ID)
	if err != nil {
		return nil, fmt.Errorf("check first delivery: %w", err)
	}
	if !first {
		return nil, nil
	}

	policy, err := r.repository.GetActivePolicy(ctx)
	if err != nil {
		if errors.Is(err, ErrPolicyNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("get reward policy: %w", err)
	}

	bonus, err := r.repository.InsertBonusIfAbsent(ctx, entities.ReferralBonus{
		DeliveryID: delivery.ID,
		CourierID:  *delivery.CourierID,
		CustomerID: delivery.CustomerID,
		PolicyID:   policy.ID,
		Amount:     BonusAmount(delivery.TotalFee, policy.Rate),
	})
	if err != nil {
		return nil, fmt.Errorf("insert referral bonus: %w", err)
	}
	// клиент уже получил бонус за другую доставку
	if bonus.DeliveryID != delivery.ID {
		return nil, nil
	}

	return bonus, nil
}

func BonusAmount(totalFee int64, rate float64) int64 {
	return int64(math.Round(float64(totalFee) * rate))
}
