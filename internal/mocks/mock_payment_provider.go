package mocks

import (
	"github.com/burakdemirtas/credit-purchase-system/internal/domain"
	"github.com/stretchr/testify/mock"
	"github.com/stripe/stripe-go/v82"
)

type MockPaymentProvider struct {
	mock.Mock
	domain.PaymentProvider
}

func (m *MockPaymentProvider) CreateCreditSession(
	sessionId string,
	user *domain.User,
	credits int,
	payment domain.Payment) (*stripe.CheckoutSession, error) {

	args := m.Called(sessionId, user, credits, payment)
	return args.Get(0).(*stripe.CheckoutSession), args.Error(1)
}

func (m *MockPaymentProvider) CreateProductSession(
	sessionId string,
	user *domain.User,
	order domain.ProductOrder,
	payment domain.Payment) (*stripe.CheckoutSession, error) {

	args := m.Called(sessionId, user, order, payment)
	return args.Get(0).(*stripe.CheckoutSession), args.Error(1)
}

func (m *MockPaymentProvider) CreateSubscriptionSession(
	sessionId string,
	user *domain.User,
	plan domain.SubscriptionPlan,
	payment domain.Payment) (*stripe.CheckoutSession, error) {

	args := m.Called(sessionId, user, plan, payment)
	return args.Get(0).(*stripe.CheckoutSession), args.Error(1)
}
