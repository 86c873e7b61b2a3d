package domain

import (
	"github.com/shopspring/decimal"
	"github.com/stripe/stripe-go/v82"
)

// ProductOrder describes a one-time purchase to start a checkout for.
type ProductOrder struct {
	ProductName string
	Amount      decimal.Decimal
	Currency    string
	Quantity    int
	Metadata    map[string]string
}

// SubscriptionPlan describes a recurring purchase. Interval is "month" or
// "year".
type SubscriptionPlan struct {
	PlanName string
	Amount   decimal.Decimal
	Interval string
	Currency string
	Metadata map[string]string
}

type PaymentProvider interface {
	CreateCreditSession(sessionId string, user *User, credits int, payment Payment) (*stripe.CheckoutSession, error)
	CreateProductSession(sessionId string, user *User, order ProductOrder, payment Payment) (*stripe.CheckoutSession, error)
	CreateSubscriptionSession(sessionId string, user *User, plan SubscriptionPlan, payment Payment) (*stripe.CheckoutSession, error)
}
