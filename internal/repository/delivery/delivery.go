package delivery

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"lastmile/internal/entities"
	"lastmile/internal/repository"
	"lastmile/internal/service/delivery"
)

var qb sq.StatementBuilderType = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const deliveryColumns = `id, customer_id, pickup_lat, pickup_lng, pickup_address, drop_lat, drop_lng, drop_address,
	item_class, vehicle, urgency, scheduling, scheduled_at, distance_km, quoted_fee, override_fee, total_fee,
	courier_fee, platform_fee, payment_method, courier_id, last_courier_id, status, cancel_reason,
	created_at, accepted_at, picked_up_at, delivered_at, cancelled_at, updated_at`

type Repository struct {
	querier repository.Querier
}

func New(querier repository.Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func scanDelivery(row pgx.Row, d *DeliveryDB) error {
	return row.Scan(
		&d.ID,
		&d.CustomerID,
		&d.PickupLat,
		&d.PickupLng,
		&d.PickupAddress,
		&d.DropLat,
		&d.DropLng,
		&d.DropAddress,
		&d.ItemClass,
		&d.Vehicle,
		&d.Urgency,
		&d.Scheduling,
		&d.ScheduledAt,
		&d.DistanceKm,
		&d.QuotedFee,
		&d.OverrideFee,
		&d.TotalFee,
		&d.CourierFee,
		&d.PlatformFee,
		&d.PaymentMethod,
		&d.CourierID,
		&d.LastCourierID,
		&d.Status,
		&d.CancelReason,
		&d.CreatedAt,
		&d.AcceptedAt,
		&d.PickedUpAt,
		&d.DeliveredAt,
		&d.CancelledAt,
		&d.UpdatedAt,
	)
}

func (r *Repository) queryOne(ctx context.Context, op, query string, args ...any) (*entities.DeliveryRequest, error) {
	var deliveryDB DeliveryDB
	err := scanDelivery(r.querier.QueryRow(ctx, query, args...), &deliveryDB)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, delivery.ErrDeliveryNotFound
		}
		if repository.IsPgErrorWithCode(err, repository.PgErrForeignKeyViolation) {
			return nil, delivery.ErrCourierNotFound
		}
		return nil, fmt.Errorf("unexpected delivery repository %s error: %w", op, err)
	}

	return ToDomain(&deliveryDB), nil
}

func (r *Repository) Create(ctx context.Context, create entities.DeliveryCreate) (*entities.DeliveryRequest, error) {
	query := `
		INSERT INTO delivery_requests (
			customer_id, pickup_lat, pickup_lng, pickup_address, drop_lat, drop_lng, drop_address,
			item_class, vehicle, urgency, scheduling, scheduled_at, distance_km,
			quoted_fee, override_fee, total_fee, courier_fee, platform_fee, payment_method
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19)
		RETURNING ` + deliveryColumns

	return r.queryOne(ctx, "create", query,
		create.CustomerID,
		create.Pickup.Lat,
		create.Pickup.Lng,
		create.PickupAddress,
		create.Drop.Lat,
		create.Drop.Lng,
		create.DropAddress,
		create.ItemClass.String(),
		create.Vehicle.String(),
		string(create.Urgency),
		string(create.Scheduling),
		create.ScheduledAt,
		create.DistanceKm,
		create.QuotedFee,
		create.OverrideFee,
		create.TotalFee,
		create.CourierFee,
		create.PlatformFee,
		string(create.PaymentMethod),
	)
}

func (r *Repository) GetByID(ctx context.Context, id int64) (*entities.DeliveryRequest, error) {
	query := `SELECT ` + deliveryColumns + ` FROM delivery_requests WHERE id = $1`
	return r.queryOne(ctx, "getbyid", query, id)
}

func (r *Repository) GetByIDForUpdate(ctx context.Context, id int64) (*entities.DeliveryRequest, error) {
	query := `SELECT ` + deliveryColumns + ` FROM delivery_requests WHERE id = $1 FOR UPDATE`
	return r.queryOne(ctx, "getbyid for update", query, id)
}

func (r *Repository) List(ctx context.Context, filter entities.DeliveryFilter) ([]entities.DeliveryRequest, error) {
	builder := qb.
		Select(deliveryColumns).
		From("delivery_requests").
		OrderBy("id DESC")

	if filter.Status != nil {
		builder = builder.Where(sq.Eq{"status": filter.Status.String()})
	}
	if filter.CustomerID != nil {
		builder = builder.Where(sq.Eq{"customer_id": *filter.CustomerID})
	}
	if filter.CourierID != nil {
		builder = builder.Where(sq.Eq{"courier_id": *filter.CourierID})
	}
	if filter.Limit > 0 {
		builder = builder.Limit(filter.Limit)
	}
	if filter.Offset > 0 {
		builder = builder.Offset(filter.Offset)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected delivery repository list error: %w", err)
	}

	rows, err := r.querier.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("unexpected delivery repository list error: %w", err)
	}
	defer rows.Close()

	deliveries := make([]DeliveryDB, 0, 16)
	for rows.Next() {
		var deliveryDB DeliveryDB
		if err := scanDelivery(rows, &deliveryDB); err != nil {
			return nil, fmt.Errorf("unexpected delivery repository list error: %w", err)
		}
		deliveries = append(deliveries, deliveryDB)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected delivery repository list error: %w", err)
	}

	return ToDomainList(deliveries), nil
}

// Accept - единственная точка назначения курьера. Условие в WHERE делает
// гонку безопасной: строку обновит ровно один из конкурентов.
func (r *Repository) Accept(ctx context.Context, id, courierID int64) (*entities.DeliveryRequest, error) {
	query := `
		UPDATE delivery_requests
		SET courier_id = $2, status = 'accepted', accepted_at = NOW(), updated_at = NOW()
		WHERE id = $1 AND status = 'pending' AND courier_id IS NULL
		RETURNING ` + deliveryColumns

	accepted, err := r.queryOne(ctx, "accept", query, id, courierID)
	if err == nil {
		return accepted, nil
	}
	if !errors.Is(err, delivery.ErrDeliveryNotFound) {
		return nil, err
	}

	// строка не обновилась: отличаем "занято" от "нет такой доставки"
	var exists bool
	err = r.querier.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM delivery_requests WHERE id = $1)`, id).Scan(&exists)
	if err != nil {
		return nil, fmt.Errorf("unexpected delivery repository accept error: %w", err)
	}
	if !exists {
		return nil, delivery.ErrDeliveryNotFound
	}

	return nil, delivery.ErrAlreadyTaken
}

// Advance переводит доставку, только если она назначена на courierID и
// находится в одном из статусов from. Иначе ErrDeliveryNotFound.
func (r *Repository) Advance(
	ctx context.Context,
	id, courierID int64,
	from []entities.DeliveryStatus,
	to entities.DeliveryStatus,
) (*entities.DeliveryRequest, error) {
	query := `
		UPDATE delivery_requests
		SET status = $4,
			picked_up_at = CASE WHEN $4 = 'picked_up' THEN NOW() ELSE picked_up_at END,
			delivered_at = CASE WHEN $4 = 'delivered' THEN NOW() ELSE delivered_at END,
			updated_at = NOW()
		WHERE id = $1 AND courier_id = $2 AND status = ANY($3)
		RETURNING ` + deliveryColumns

	return r.queryOne(ctx, "advance", query, id, courierID, statusStrings(from), to.String())
}

// Cancel снимает курьера, сохраняя его в last_courier_id для разбора.
func (r *Repository) Cancel(ctx context.Context, id int64, reason string) (*entities.DeliveryRequest, error) {
	query := `
		UPDATE delivery_requests
		SET status = 'cancelled',
			last_courier_id = COALESCE(courier_id, last_courier_id),
			courier_id = NULL,
			cancel_reason = $2,
			cancelled_at = NOW(),
			updated_at = NOW()
		WHERE id = $1 AND status NOT IN ('delivered', 'cancelled')
		RETURNING ` + deliveryColumns

	return r.queryOne(ctx, "cancel", query, id, reason)
}
