package payment

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/burakdemirtas/credit-purchase-system/internal/domain"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stripe/stripe-go/v82"
	"github.com/stripe/stripe-go/v82/checkout/session"
)

type StripePaymentProvider struct {
	cancelUrl  string
	successUrl string
}

func NewStripePaymentProvider(cancelUrl, successUrl string) *StripePaymentProvider {
	return &StripePaymentProvider{
		cancelUrl:  cancelUrl,
		successUrl: successUrl,
	}
}

// CreateCreditSession starts a hosted checkout for a credit pack. Credits are
// priced at one dollar each.
func (s *StripePaymentProvider) CreateCreditSession(
	sessionId string,
	user *domain.User,
	credits int,
	payment domain.Payment) (*stripe.CheckoutSession, error) {

	order := domain.ProductOrder{
		ProductName: fmt.Sprintf("%d Credits", credits),
		Amount:      decimal.NewFromInt(int64(credits)),
		Currency:    "USD",
		Quantity:    1,
	}

	return s.CreateProductSession(sessionId, user, order, payment)
}

func (s *StripePaymentProvider) CreateProductSession(
	sessionId string,
	user *domain.User,
	order domain.ProductOrder,
	payment domain.Payment) (*stripe.CheckoutSession, error) {

	priceCents := order.Amount.Mul(decimal.NewFromInt(100)).IntPart()

	quantity := order.Quantity
	if quantity == 0 {
		quantity = 1
	}

	lineItems := []*stripe.CheckoutSessionLineItemParams{
		{
			PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
				Currency:   stripe.String(currencyOrDefault(order.Currency)),
				UnitAmount: stripe.Int64(priceCents),
				ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
					Name: stripe.String(order.ProductName),
				},
			},
			Quantity: stripe.Int64(int64(quantity)),
		},
	}

	params := s.sessionParams(sessionId, user, payment, order.Metadata)
	params.LineItems = lineItems
	params.Mode = stripe.String(string(stripe.CheckoutSessionModePayment))

	return session.New(params)
}

func (s *StripePaymentProvider) CreateSubscriptionSession(
	sessionId string,
	user *domain.User,
	plan domain.SubscriptionPlan,
	payment domain.Payment) (*stripe.CheckoutSession, error) {

	if plan.Interval != "month" && plan.Interval != "year" {
		return nil, fmt.Errorf("interval must be 'month' or 'year', got %q", plan.Interval)
	}

	priceCents := plan.Amount.Mul(decimal.NewFromInt(100)).IntPart()

	lineItems := []*stripe.CheckoutSessionLineItemParams{
		{
			PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
				Currency:   stripe.String(currencyOrDefault(plan.Currency)),
				UnitAmount: stripe.Int64(priceCents),
				ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
					Name: stripe.String(plan.PlanName),
				},
				Recurring: &stripe.CheckoutSessionLineItemPriceDataRecurringParams{
					Interval: stripe.String(plan.Interval),
				},
			},
			Quantity: stripe.Int64(1),
		},
	}

	params := s.sessionParams(sessionId, user, payment, plan.Metadata)
	params.LineItems = lineItems
	params.Mode = stripe.String(string(stripe.CheckoutSessionModeSubscription))

	return session.New(params)
}

func (s *StripePaymentProvider) sessionParams(
	sessionId string,
	user *domain.User,
	payment domain.Payment,
	extra map[string]string) *stripe.CheckoutSessionParams {

	metadata := map[string]string{
		"session_id": sessionId,
		"user_id":    strconv.Itoa(user.ID),
		"payment_id": strconv.Itoa(payment.ID),
	}

	for k, v := range extra {
		metadata[k] = v
	}

	params := &stripe.CheckoutSessionParams{
		SuccessURL:        stripe.String(s.successUrl),
		CancelURL:         stripe.String(s.cancelUrl),
		Metadata:          metadata,
		CustomerEmail:     &user.Email,
		ClientReferenceID: stripe.String(strconv.Itoa(user.ID)),
	}
	params.SetIdempotencyKey(uuid.NewString())

	return params
}

func currencyOrDefault(currency string) string {
	if currency == "" {
		return string(stripe.CurrencyUSD)
	}

	return strings.ToLower(currency)
}
