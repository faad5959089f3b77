package referral

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"lastmile/internal/entities"
	"lastmile/internal/repository"
	"lastmile/internal/service/referral"
)

const (
	linkColumns   = `customer_id, courier_id, active, created_at`
	policyColumns = `id, rate, active, deleted_at, created_at`
	bonusColumns  = `delivery_id, courier_id, customer_id, policy_id, amount, created_at`
)

type Repository struct {
	querier repository.Querier
}

func New(querier repository.Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func scanLink(row pgx.Row) (*entities.ReferralLink, error) {
	var l entities.ReferralLink
	if err := row.Scan(&l.CustomerID, &l.CourierID, &l.Active, &l.CreatedAt); err != nil {
		return nil, err
	}
	return &l, nil
}

func scanPolicy(row pgx.Row) (*entities.RewardPolicy, error) {
	var p entities.RewardPolicy
	if err := row.Scan(&p.ID, &p.Rate, &p.Active, &p.DeletedAt, &p.CreatedAt); err != nil {
		return nil, err
	}
	return &p, nil
}

func scanBonus(row pgx.Row) (*entities.ReferralBonus, error) {
	var b entities.ReferralBonus
	if err := row.Scan(&b.DeliveryID, &b.CourierID, &b.CustomerID, &b.PolicyID, &b.Amount, &b.CreatedAt); err != nil {
		return nil, err
	}
	return &b, nil
}

// CreateLinkIfAbsent никогда не перезаписывает существующую связь.
func (r *Repository) CreateLinkIfAbsent(ctx context.Context, customerID, courierID int64) (*entities.ReferralLink, bool, error) {
	query := `INSERT INTO referral_links (customer_id, courier_id)
		VALUES ($1, $2)
		ON CONFLICT (customer_id) DO NOTHING
		RETURNING ` + linkColumns

	link, err := scanLink(r.querier.QueryRow(ctx, query, customerID, courierID))
	if err == nil {
		return link, true, nil
	}
	if repository.IsPgErrorWithCode(err, repository.PgErrForeignKeyViolation) {
		return nil, false, referral.ErrCourierNotFound
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return nil, false, fmt.Errorf("unexpected referral repository create link error: %w", err)
	}

	link, err = r.GetLink(ctx, customerID)
	if err != nil {
		return nil, false, err
	}
	return link, false, nil
}

func (r *Repository) GetLink(ctx context.Context, customerID int64) (*entities.ReferralLink, error) {
	query := `SELECT ` + linkColumns + ` FROM referral_links WHERE customer_id = $1`

	link, err := scanLink(r.querier.QueryRow(ctx, query, customerID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, referral.ErrLinkNotFound
		}
		return nil, fmt.Errorf("unexpected referral repository get link error: %w", err)
	}
	return link, nil
}

// IsFirstDelivered: у клиента нет выполненных доставок раньше deliveryID.
// Порядок задается временем доставки, при равенстве - id.
func (r *Repository) IsFirstDelivered(ctx context.Context, customerID, deliveryID int64) (bool, error) {
	query := `SELECT NOT EXISTS (
		SELECT 1
		FROM delivery_requests d
		JOIN delivery_requests cur ON cur.id = $2
		WHERE d.customer_id = $1
			AND d.id <> cur.id
			AND d.status = 'delivered'
			AND (d.delivered_at, d.id) < (cur.delivered_at, cur.id)
	)`

	var first bool
	if err := r.querier.QueryRow(ctx, query, customerID, deliveryID).Scan(&first); err != nil {
		return false, fmt.Errorf("unexpected referral repository first delivery error: %w", err)
	}
	return first, nil
}

func (r *Repository) GetActivePolicy(ctx context.Context) (*entities.RewardPolicy, error) {
	query := `SELECT ` + policyColumns + `
		FROM reward_policies
		WHERE active AND deleted_at IS NULL`

	policy, err := scanPolicy(r.querier.QueryRow(ctx, query))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, referral.ErrPolicyNotFound
		}
		return nil, fmt.Errorf("unexpected referral repository get policy error: %w", err)
	}
	return policy, nil
}

// ActivatePolicy мягко удаляет действующую политику и вставляет новую.
// Вызывается внутри транзакции.
func (r *Repository) ActivatePolicy(ctx context.Context, rate float64) (*entities.RewardPolicy, error) {
	_, err := r.querier.Exec(ctx, `UPDATE reward_policies
		SET active = FALSE, deleted_at = NOW()
		WHERE active AND deleted_at IS NULL`)
	if err != nil {
		return nil, fmt.Errorf("unexpected referral repository deactivate policy error: %w", err)
	}

	query := `INSERT INTO reward_policies (rate, active)
		VALUES ($1, TRUE)
		RETURNING ` + policyColumns

	policy, err := scanPolicy(r.querier.QueryRow(ctx, query, rate))
	if err != nil {
		return nil, fmt.Errorf("unexpected referral repository activate policy error: %w", err)
	}
	return policy, nil
}

// InsertBonusIfAbsent возвращает уже начисленный бонус при повторе. Бонус уникален
// и по доставке, и по клиенту: при конфликте по клиенту вернется бонус другой доставки.
func (r *Repository) InsertBonusIfAbsent(ctx context.Context, bonus entities.ReferralBonus) (*entities.ReferralBonus, error) {
	query := `INSERT INTO referral_bonuses (delivery_id, courier_id, customer_id, policy_id, amount)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT DO NOTHING
		RETURNING ` + bonusColumns

	inserted, err := scanBonus(r.querier.QueryRow(ctx, query,
		bonus.DeliveryID, bonus.CourierID, bonus.CustomerID, bonus.PolicyID, bonus.Amount))
	if err == nil {
		return inserted, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("unexpected referral repository insert bonus error: %w", err)
	}

	existing, err := scanBonus(r.querier.QueryRow(ctx,
		`SELECT `+bonusColumns+` FROM referral_bonuses
		WHERE delivery_id = $1 OR customer_id = $2
		ORDER BY (delivery_id = $1) DESC
		LIMIT 1`, bonus.DeliveryID, bonus.CustomerID))
	if err != nil {
		return nil, fmt.Errorf("unexpected referral repository insert bonus error: %w", err)
	}
	return existing, nil
}
