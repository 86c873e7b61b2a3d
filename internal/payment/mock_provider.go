package payment

import (
	"github.com/burakdemirtas/credit-purchase-system/internal/domain"
	"github.com/stripe/stripe-go/v82"
)

// MockPaymentProvider is a settable stand-in for the Stripe provider, used
// where a real Stripe account is unavailable.
type MockPaymentProvider struct {
	CheckoutSession *stripe.CheckoutSession
	Err             error
}

func NewMockPaymentProvider() *MockPaymentProvider {
	return &MockPaymentProvider{}
}

func (m *MockPaymentProvider) CreateCreditSession(
	sessionId string,
	user *domain.User,
	credits int,
	payment domain.Payment) (*stripe.CheckoutSession, error) {

	return m.CheckoutSession, m.Err
}

func (m *MockPaymentProvider) CreateProductSession(
	sessionId string,
	user *domain.User,
	order domain.ProductOrder,
	payment domain.Payment) (*stripe.CheckoutSession, error) {

	return m.CheckoutSession, m.Err
}

func (m *MockPaymentProvider) CreateSubscriptionSession(
	sessionId string,
	user *domain.User,
	plan domain.SubscriptionPlan,
	payment domain.Payment) (*stripe.CheckoutSession, error) {

	return m.CheckoutSession, m.Err
}
