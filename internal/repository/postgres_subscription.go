package repository

import (
	"context"
	"errors"

	"github.com/burakdemirtas/credit-purchase-system/internal/domain"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PostgresSubscriptionRepository struct {
	db *pgxpool.Pool
}

func NewPostgresSubscriptionRepository(db *pgxpool.Pool) *PostgresSubscriptionRepository {
	return &PostgresSubscriptionRepository{
		db: db,
	}
}

func (p *PostgresSubscriptionRepository) Activate(ctx context.Context, sub *domain.Subscription) error {
	query := `
		INSERT INTO subscriptions (user_id, stripe_subscription_id, plan_id, status, source)
		VALUES ($1, $2, $3, 'active', $4)
		RETURNING id, created_at
	`

	err := p.db.QueryRow(
		ctx,
		query,
		sub.UserID,
		sub.SubscriptionID,
		sub.PlanID,
		sub.Source,
	).Scan(&sub.ID, &sub.CreatedAt)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return domain.ErrDuplicateTransaction
		}

		return err
	}

	sub.Status = domain.SubscriptionStatusActive

	return nil
}

func (p *PostgresSubscriptionRepository) Deactivate(ctx context.Context, subscriptionID string) error {
	query := `UPDATE subscriptions
		SET status = 'canceled', updated_at = now()
		WHERE stripe_subscription_id = $1 AND status = 'active'
	`

	tag, err := p.db.Exec(ctx, query, subscriptionID)
	if err != nil {
		return err
	}

	if tag.RowsAffected() == 0 {
		return domain.ErrRecordNotFound
	}

	return nil
}

func (p *PostgresSubscriptionRepository) GetByUserId(ctx context.Context, userID int) ([]domain.Subscription, error) {
	query := `
		SELECT id, user_id, stripe_subscription_id, plan_id, status, source, created_at, updated_at
		FROM subscriptions
		WHERE user_id = $1
		ORDER BY created_at DESC
	`

	rows, err := p.db.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var subs []domain.Subscription

	for rows.Next() {
		var sub domain.Subscription

		err := rows.Scan(
			&sub.ID,
			&sub.UserID,
			&sub.SubscriptionID,
			&sub.PlanID,
			&sub.Status,
			&sub.Source,
			&sub.CreatedAt,
			&sub.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}

		subs = append(subs, sub)
	}

	return subs, rows.Err()
}
