package domain

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// CreditTransaction is one entry in the credit ledger. TransactionID is the
// provider-side identifier (the checkout session id for Stripe) and is unique,
// which makes webhook redeliveries idempotent.
type CreditTransaction struct {
	ID            int
	UserID        int
	Amount        decimal.Decimal
	Source        string
	TransactionID string
	Metadata      map[string]string
	CreatedAt     time.Time
}

type CreditRepository interface {
	// Allocate credits the amount to the user's balance and records the
	// ledger entry in the same database transaction. Returns
	// ErrDuplicateTransaction when the transaction id was already recorded.
	Allocate(ctx context.Context, tx *CreditTransaction) error
	GetBalance(ctx context.Context, userID int) (decimal.Decimal, error)
}
