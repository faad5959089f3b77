package courier

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"lastmile/internal/entities"
	"lastmile/internal/repository"
	"lastmile/internal/service/courier"
)

var qb sq.StatementBuilderType = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const courierColumns = `id, name, phone, status, transport_type, lat, lng, location_updated_at,
	rating, completed_jobs, created_at, updated_at`

// haversineExpr - та же формула, что в pkg/geo, чтобы дистанции из БД и из кода совпадали.
// least отсекает округление выше 1 у антиподов, иначе asin падает с out of range.
const haversineExpr = `2 * 6371.0088 * asin(least(1, sqrt(
	power(sin(radians(lat - ?) / 2), 2) +
	cos(radians(?)) * cos(radians(lat)) * power(sin(radians(lng - ?) / 2), 2)
))) AS distance_km`

type Repository struct {
	querier repository.Querier
}

func New(querier repository.Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func scanCourier(row pgx.Row, c *CourierDB) error {
	return row.Scan(
		&c.ID,
		&c.Name,
		&c.Phone,
		&c.Status,
		&c.TransportType,
		&c.Lat,
		&c.Lng,
		&c.LocationUpdatedAt,
		&c.Rating,
		&c.CompletedJobs,
		&c.CreatedAt,
		&c.UpdatedAt,
	)
}

func (r *Repository) Create(ctx context.Context, courierModifyEntity entities.CourierModify) (int64, error) {
	courierModifyModel := FromDomainModify(&courierModifyEntity)
	query := `INSERT INTO couriers (name, phone, status, transport_type, lat, lng, location_updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, CASE WHEN $5::double precision IS NULL THEN NULL ELSE NOW() END)
		RETURNING id`

	var id int64
	err := r.querier.QueryRow(
		ctx,
		query,
		courierModifyModel.Name,
		courierModifyModel.Phone,
		courierModifyModel.Status,
		courierModifyModel.TransportType,
		courierModifyModel.Lat,
		courierModifyModel.Lng,
	).Scan(&id)
	if err != nil {
		if repository.IsPgErrorWithCode(err, repository.PgErrUniqueViolation) {
			return 0, courier.ErrConflict
		}
		return 0, fmt.Errorf("unexpected courier repository create error: %w", err)
	}

	return id, nil
}

func (r *Repository) Update(ctx context.Context, courierModifyEntity entities.CourierModify) (*entities.Courier, error) {
	courierModifyModel := FromDomainModify(&courierModifyEntity)

	builder := qb.
		Update("couriers")

	// опциональные поля
	if courierModifyModel.Name != nil {
		builder = builder.Set("name", courierModifyModel.Name)
	}
	if courierModifyModel.Phone != nil {
		builder = builder.Set("phone", courierModifyModel.Phone)
	}
	if courierModifyModel.Status != nil {
		builder = builder.Set("status", courierModifyModel.Status)
	}
	if courierModifyModel.TransportType != nil {
		builder = builder.Set("transport_type", courierModifyModel.TransportType)
	}
	if courierModifyModel.Lat != nil && courierModifyModel.Lng != nil {
		builder = builder.
			Set("lat", courierModifyModel.Lat).
			Set("lng", courierModifyModel.Lng).
			Set("location_updated_at", sq.Expr("NOW()"))
	}

	builder = builder.Set("updated_at", sq.Expr("NOW()"))

	builder = builder.
		Where(sq.Eq{"id": courierModifyModel.ID}).
		Suffix("RETURNING " + courierColumns)

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected courier repository update error: %w", err)
	}

	var courierModel CourierDB
	err = scanCourier(r.querier.QueryRow(ctx, query, args...), &courierModel)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, courier.ErrCourierNotFound
		}

		if repository.IsPgErrorWithCode(err, repository.PgErrUniqueViolation) {
			return nil, courier.ErrConflict
		}

		return nil, fmt.Errorf("unexpected courier repository update error: %w", err)
	}

	return ToDomain(&courierModel), nil
}

func (r *Repository) GetByID(ctx context.Context, id int64) (*entities.Courier, error) {
	query := `SELECT ` + courierColumns + `
		FROM couriers
		WHERE id = $1`

	var courierModel CourierDB
	err := scanCourier(r.querier.QueryRow(ctx, query, id), &courierModel)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, courier.ErrCourierNotFound
		}

		return nil, fmt.Errorf("unexpected courier repository getbyid error: %w", err)
	}

	return ToDomain(&courierModel), nil
}

func (r *Repository) List(ctx context.Context, filter entities.CourierFilter) ([]entities.Courier, error) {
	builder := qb.
		Select(courierColumns).
		From("couriers").
		OrderBy("id")

	if filter.Status != nil {
		builder = builder.Where(sq.Eq{"status": filter.Status.String()})
	}
	if filter.TransportType != nil {
		builder = builder.Where(sq.Eq{"transport_type": filter.TransportType.String()})
	}
	if filter.HasLocation != nil {
		if *filter.HasLocation {
			builder = builder.Where(sq.NotEq{"lat": nil})
		} else {
			builder = builder.Where(sq.Eq{"lat": nil})
		}
	}
	if filter.Limit > 0 {
		builder = builder.Limit(filter.Limit)
	}
	if filter.Offset > 0 {
		builder = builder.Offset(filter.Offset)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected courier repository list error: %w", err)
	}

	rows, err := r.querier.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("unexpected courier repository list error: %w", err)
	}
	defer rows.Close()

	courierModels := make([]CourierDB, 0, 8)
	for rows.Next() {
		var courierModel CourierDB
		if err := scanCourier(rows, &courierModel); err != nil {
			return nil, fmt.Errorf("unexpected courier repository list error: %w", err)
		}
		courierModels = append(courierModels, courierModel)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected courier repository list error: %w", err)
	}

	return ToDomainList(courierModels), nil
}

func (r *Repository) IncrementCompletedJobs(ctx context.Context, courierID int64) error {
	query := `UPDATE couriers
		SET completed_jobs = completed_jobs + 1, updated_at = NOW()
		WHERE id = $1`

	tag, err := r.querier.Exec(ctx, query, courierID)
	if err != nil {
		return fmt.Errorf("unexpected courier repository increment error: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return courier.ErrCourierNotFound
	}

	return nil
}

// FindNearby - радиусный запрос по свободным курьерам с известной позицией.
func (r *Repository) FindNearby(ctx context.Context, q entities.CandidateQuery) ([]entities.Candidate, error) {
	// вложенный запрос собирается с ? плейсхолдерами, внешний переводит их в $N
	inner := sq.
		Select("id", "name", "transport_type", "lat", "lng", "rating", "completed_jobs").
		Column(haversineExpr, q.Origin.Lat, q.Origin.Lat, q.Origin.Lng).
		From("couriers").
		Where(sq.Eq{"status": entities.CourierAvailable.String()}).
		Where(sq.NotEq{"lat": nil})

	builder := qb.
		Select("id", "name", "transport_type", "lat", "lng", "rating", "completed_jobs", "distance_km").
		FromSelect(inner, "nearby").
		Where(sq.LtOrEq{"distance_km": q.RadiusKm}).
		OrderBy("distance_km", "rating DESC", "completed_jobs DESC", "id")

	if q.Limit > 0 {
		builder = builder.Limit(q.Limit)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected courier repository nearby error: %w", err)
	}

	return r.queryCandidates(ctx, query, args...)
}

// ListAvailable возвращает всех свободных курьеров, в том числе без позиции.
func (r *Repository) ListAvailable(ctx context.Context) ([]entities.Candidate, error) {
	query := `SELECT id, name, transport_type, lat, lng, rating, completed_jobs, NULL::double precision
		FROM couriers
		WHERE status = $1
		ORDER BY id`

	return r.queryCandidates(ctx, query, entities.CourierAvailable.String())
}

func (r *Repository) queryCandidates(ctx context.Context, query string, args ...any) ([]entities.Candidate, error) {
	rows, err := r.querier.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("unexpected courier repository candidates error: %w", err)
	}
	defer rows.Close()

	candidates := make([]entities.Candidate, 0, 8)
	for rows.Next() {
		var c CandidateDB
		err := rows.Scan(&c.ID, &c.Name, &c.TransportType, &c.Lat, &c.Lng, &c.Rating, &c.CompletedJobs, &c.DistanceKm)
		if err != nil {
			return nil, fmt.Errorf("unexpected courier repository candidates error: %w", err)
		}
		candidates = append(candidates, ToCandidate(&c))
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected courier repository candidates error: %w", err)
	}

	return candidates, nil
}
