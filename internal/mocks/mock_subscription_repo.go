package mocks

import (
	"context"

	"github.com/burakdemirtas/credit-purchase-system/internal/domain"
	"github.com/stretchr/testify/mock"
)

type MockSubscriptionRepo struct {
	mock.Mock
	domain.SubscriptionRepository
}

func (m *MockSubscriptionRepo) Activate(ctx context.Context, sub *domain.Subscription) error {
	args := m.Called(ctx, sub)
	return args.Error(0)
}

func (m *MockSubscriptionRepo) Deactivate(ctx context.Context, subscriptionID string) error {
	args := m.Called(ctx, subscriptionID)
	return args.Error(0)
}

func (m *MockSubscriptionRepo) GetByUserId(ctx context.Context, userID int) ([]domain.Subscription, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).([]domain.Subscription), args.Error(1)
}
