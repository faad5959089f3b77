package loyalty

import (
	"context"
	"errors"
	"fmt"
	"math"

	"lastmile/internal/entities"
)

var (
	ErrInvalidDelivery = errors.New("invalid delivery for loyalty credit")
	ErrInvalidRate     = errors.New("invalid loyalty points rate")
)

type Config struct {
	// PointsRate - баллов за единицу валюты.
	PointsRate float64
}

type Loyalty struct {
	repository Repository
	cfg        Config
}

func New(repository Repository, cfg Config) (*Loyalty, error) {
	if math.IsNaN(cfg.PointsRate) || cfg.PointsRate < 0 {
		return nil, ErrInvalidRate
	}
	return &Loyalty{
		repository: repository,
		cfg:        cfg,
	}, nil
}

// CreditDelivery начисляет floor(total_fee * rate) баллов один раз на доставку.
func (l *Loyalty) CreditDelivery(ctx context.Context, delivery *entities.DeliveryRequest) (*entities.LoyaltyCredit, error) {
	if delivery == nil || delivery.ID <= 0 || delivery.Status != entities.DeliveryDelivered {
		return nil, ErrInvalidDelivery
	}

	credit, err := l.repository.InsertCreditIfAbsent(ctx, entities.LoyaltyCredit{
		DeliveryID: delivery.ID,
		CustomerID: delivery.CustomerID,
		Points:     int64(math.Floor(float64(delivery.TotalFee) * l.cfg.PointsRate)),
	})
	if err != nil {
		return nil, fmt.Errorf("insert loyalty credit: %w", err)
	}
	return credit, nil
}
