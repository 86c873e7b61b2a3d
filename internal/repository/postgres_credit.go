package repository

import (
	"context"
	"errors"

	"github.com/burakdemirtas/credit-purchase-system/internal/domain"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

type PostgresCreditRepository struct {
	db *pgxpool.Pool
}

func NewPostgresCreditRepository(db *pgxpool.Pool) *PostgresCreditRepository {
	return &PostgresCreditRepository{
		db: db,
	}
}

// Allocate records the ledger entry and bumps the user's balance in one
// database transaction. The unique index on transaction_id turns a webhook
// redelivery into ErrDuplicateTransaction instead of a double credit.
func (p *PostgresCreditRepository) Allocate(ctx context.Context, tx *domain.CreditTransaction) error {
	return pgx.BeginFunc(ctx, p.db, func(dbTx pgx.Tx) error {
		query := `
			INSERT INTO credit_transactions (user_id, amount, source, transaction_id, metadata)
			VALUES ($1, $2, $3, $4, $5)
			RETURNING id, created_at
		`

		err := dbTx.QueryRow(
			ctx,
			query,
			tx.UserID,
			tx.Amount,
			tx.Source,
			tx.TransactionID,
			tx.Metadata,
		).Scan(&tx.ID, &tx.CreatedAt)

		if err != nil {
			var pgErr *pgconn.PgError
			if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
				return domain.ErrDuplicateTransaction
			}

			return err
		}

		query = `UPDATE users SET credits = credits + $1, updated_at = now(), version = version + 1 WHERE id = $2`

		tag, err := dbTx.Exec(ctx, query, tx.Amount, tx.UserID)
		if err != nil {
			return err
		}

		if tag.RowsAffected() == 0 {
			return domain.ErrRecordNotFound
		}

		return nil
	})
}

func (p *PostgresCreditRepository) GetBalance(ctx context.Context, userID int) (decimal.Decimal, error) {
	query := `SELECT credits FROM users WHERE id = $1`

	var balance decimal.Decimal

	err := p.db.QueryRow(ctx, query, userID).Scan(&balance)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return decimal.Zero, domain.ErrRecordNotFound
		}

		return decimal.Zero, err
	}

	return balance, nil
}
