package fee

import (
	"fmt"
	"math"

	"lastmile/internal/entities"
)

type Config struct {
	BaseFee    int64
	IncludedKm float64
	PerKm      int64
	Surcharges map[entities.ItemClass]int64
	// PlatformCommission - доля платформы от итоговой суммы, [0, 1].
	PlatformCommission float64
}

// Calculator детерминирован: один и тот же вход всегда дает ту же сумму,
// поэтому сохраненную при создании цену можно перепроверить при споре.
type Calculator struct {
	cfg Config
}

func NewCalculator(cfg Config) (*Calculator, error) {
	if cfg.BaseFee < 0 || cfg.PerKm < 0 || cfg.IncludedKm < 0 {
		return nil, fmt.Errorf("%w: negative base, per km or included distance", ErrInvalidPricing)
	}
	if cfg.PlatformCommission < 0 || cfg.PlatformCommission > 1 {
		return nil, fmt.Errorf("%w: commission %v out of [0, 1]", ErrInvalidPricing, cfg.PlatformCommission)
	}

	surcharges := make(map[entities.ItemClass]int64, len(cfg.Surcharges))
	prev := int64(0)
	for _, class := range entities.ItemClasses() {
		s := cfg.Surcharges[class]
		if s < prev {
			return nil, fmt.Errorf("%w: surcharge for %s is lower than for a lighter class", ErrInvalidPricing, class)
		}
		surcharges[class] = s
		prev = s
	}
	cfg.Surcharges = surcharges

	return &Calculator{cfg: cfg}, nil
}

// Quote = base + round(max(0, d - included) * perKm) + surcharge(class).
func (c *Calculator) Quote(distanceKm float64, class entities.ItemClass) (int64, error) {
	if math.IsNaN(distanceKm) || math.IsInf(distanceKm, 0) || distanceKm < 0 {
		return 0, ErrInvalidDistance
	}
	if class.Tier() < 0 {
		return 0, fmt.Errorf("%w: %q", ErrUnknownItemClass, class)
	}

	extraKm := math.Max(0, distanceKm-c.cfg.IncludedKm)
	distanceFee := int64(math.Round(extraKm * float64(c.cfg.PerKm)))

	return c.cfg.BaseFee + distanceFee + c.cfg.Surcharges[class], nil
}

// Split делит итоговую сумму на долю курьера и платформы, сумма долей всегда равна total.
func (c *Calculator) Split(total int64) (courierFee, platformFee int64) {
	if total <= 0 {
		return 0, 0
	}
	platformFee = int64(math.Round(float64(total) * c.cfg.PlatformCommission))
	return total - platformFee, platformFee
}
