package domain

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

type User struct {
	ID        int
	Email     string
	Credits   decimal.Decimal
	CreatedAt time.Time
	UpdatedAt time.Time
	IsActive  bool
	Version   int
}

type UserRepository interface {
	GetById(ctx context.Context, id int) (*User, error)
}
