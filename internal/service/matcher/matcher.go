package matcher

import (
	"context"
	"fmt"
	"math"
	"sort"

	"lastmile/internal/entities"
	"lastmile/pkg/geo"
)

type Config struct {
	DefaultRadiusKm float64
	MaxRadiusKm     float64
	DefaultLimit    uint64
	MaxLimit        uint64
	// MinCandidates - если в радиусе нашлось меньше, добавляем всех доступных.
	MinCandidates int
}

type Matcher struct {
	repository Repository
	cfg        Config
}

func New(repository Repository, cfg Config) *Matcher {
	return &Matcher{
		repository: repository,
		cfg:        cfg,
	}
}

// Candidates только рекомендует, никого не назначает.
func (m *Matcher) Candidates(ctx context.Context, origin entities.Point, radiusKm float64, limit uint64) ([]entities.Candidate, error) {
	if !geo.ValidCoordinate(origin.Lat, origin.Lng) {
		return nil, ErrInvalidOrigin
	}

	radiusKm, limit, err := m.normalize(radiusKm, limit)
	if err != nil {
		return nil, err
	}

	nearby, err := m.repository.FindNearby(ctx, entities.CandidateQuery{
		Origin:   origin,
		RadiusKm: radiusKm,
		Limit:    limit,
	})
	if err != nil {
		return nil, fmt.Errorf("find nearby couriers: %w", err)
	}

	if len(nearby) >= m.cfg.MinCandidates && len(nearby) > 0 {
		rank(nearby)
		return nearby, nil
	}

	// курьеры без координат тоже кандидаты, с неизвестной дистанцией
	available, err := m.repository.ListAvailable(ctx)
	if err != nil {
		return nil, fmt.Errorf("list available couriers: %w", err)
	}

	candidates := merge(origin, nearby, available)
	rank(candidates)
	if uint64(len(candidates)) > limit {
		candidates = candidates[:limit]
	}
	return candidates, nil
}

func (m *Matcher) normalize(radiusKm float64, limit uint64) (float64, uint64, error) {
	if radiusKm == 0 {
		radiusKm = m.cfg.DefaultRadiusKm
	}
	if math.IsNaN(radiusKm) || radiusKm < 0 {
		return 0, 0, ErrInvalidRadius
	}
	if m.cfg.MaxRadiusKm > 0 && radiusKm > m.cfg.MaxRadiusKm {
		radiusKm = m.cfg.MaxRadiusKm
	}

	if limit == 0 {
		limit = m.cfg.DefaultLimit
	}
	if m.cfg.MaxLimit > 0 && limit > m.cfg.MaxLimit {
		limit = m.cfg.MaxLimit
	}
	return radiusKm, limit, nil
}

// merge дедуплицирует по id курьера: дистанция из радиусного запроса приоритетнее.
func merge(origin entities.Point, nearby, available []entities.Candidate) []entities.Candidate {
	seen := make(map[int64]struct{}, len(nearby)+len(available))
	result := make([]entities.Candidate, 0, len(nearby)+len(available))

	for _, c := range nearby {
		if _, ok := seen[c.CourierID]; ok {
			continue
		}
		seen[c.CourierID] = struct{}{}
		result = append(result, c)
	}

	for _, c := range available {
		if _, ok := seen[c.CourierID]; ok {
			continue
		}
		seen[c.CourierID] = struct{}{}

		if c.Location != nil {
			c.DistanceKm = geo.HaversineKm(origin.Lat, origin.Lng, c.Location.Lat, c.Location.Lng)
		} else {
			c.DistanceKm = entities.UnknownDistance
		}
		result = append(result, c)
	}

	return result
}

// rank: известная дистанция по возрастанию, неизвестная в конце,
// дальше рейтинг и опыт по убыванию, id для стабильности.
func rank(candidates []entities.Candidate) {
	sort.SliceStable(candidates, func(i, j int) bool {
		a, b := candidates[i], candidates[j]
		if a.HasDistance() != b.HasDistance() {
			return a.HasDistance()
		}
		if a.HasDistance() && a.DistanceKm != b.DistanceKm {
			return a.DistanceKm < b.DistanceKm
		}
		if a.Rating != b.Rating {
			return a.Rating > b.Rating
		}
		if a.CompletedJobs != b.CompletedJobs {
			return a.CompletedJobs > b.CompletedJobs
		}
		return a.CourierID < b.CourierID
	})
}
