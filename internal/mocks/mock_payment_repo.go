package mocks

import (
	"context"

	"github.com/burakdemirtas/credit-purchase-system/internal/domain"
	"github.com/stretchr/testify/mock"
)

type MockPaymentRepo struct {
	mock.Mock
	domain.PaymentRepository
}

func (m *MockPaymentRepo) Create(ctx context.Context, payment *domain.Payment) error {
	args := m.Called(ctx, payment)
	return args.Error(0)
}

func (m *MockPaymentRepo) GetById(ctx context.Context, id int) (*domain.Payment, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(*domain.Payment), args.Error(1)
}

func (m *MockPaymentRepo) SetCheckoutSession(ctx context.Context, paymentID int, checkoutSessionID string) error {
	args := m.Called(ctx, paymentID, checkoutSessionID)
	return args.Error(0)
}

func (m *MockPaymentRepo) UpdateStatus(
	ctx context.Context,
	checkoutSessionID string,
	status domain.PaymentStatus,
	errMsg string) error {

	args := m.Called(ctx, checkoutSessionID, status, errMsg)
	return args.Error(0)
}
