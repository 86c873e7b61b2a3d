package mocks

import (
	"context"

	"github.com/burakdemirtas/credit-purchase-system/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

type MockCreditRepo struct {
	mock.Mock
	domain.CreditRepository
}

func (m *MockCreditRepo) Allocate(ctx context.Context, tx *domain.CreditTransaction) error {
	args := m.Called(ctx, tx)
	return args.Error(0)
}

func (m *MockCreditRepo) GetBalance(ctx context.Context, userID int) (decimal.Decimal, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}
