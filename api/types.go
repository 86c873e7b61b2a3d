// Package api holds the request and response types of the HTTP API.
package api

import (
	"time"

	"github.com/shopspring/decimal"
)

// CheckoutSessionResponse carries the hosted checkout page address. Clients
// are expected to navigate the user agent to Url.
type CheckoutSessionResponse struct {
	Url string `json:"url"`
}

// ProductCheckoutRequest is the body of POST /stripe/checkout/product.
type ProductCheckoutRequest struct {
	Amount      decimal.Decimal   `json:"amount" validate:"required,positive_amount"`
	ProductName string            `json:"productName" validate:"required,max=120"`
	Currency    string            `json:"currency" validate:"omitempty,currency"`
	Quantity    int               `json:"quantity" validate:"omitempty,min=1,max=100"`
	Metadata    map[string]string `json:"metadata" validate:"omitempty,max=20"`
}

// SubscriptionCheckoutRequest is the body of POST /stripe/checkout/subscription.
type SubscriptionCheckoutRequest struct {
	PlanName string            `json:"planName" validate:"required,max=120"`
	Amount   decimal.Decimal   `json:"amount" validate:"required,positive_amount"`
	Interval string            `json:"interval" validate:"required,interval"`
	Currency string            `json:"currency" validate:"omitempty,currency"`
	Metadata map[string]string `json:"metadata" validate:"omitempty,max=20"`
}

type ErrorResponse struct {
	Message   string    `json:"message"`
	RequestId string    `json:"requestId,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

type ValidationError struct {
	Field string `json:"field"`
	Issue string `json:"issue"`
}

type ValidationErrorResponse struct {
	Message          string            `json:"message"`
	RequestId        string            `json:"requestId,omitempty"`
	Timestamp        time.Time         `json:"timestamp"`
	ValidationErrors []ValidationError `json:"validationErrors"`
}

// CreditBalanceResponse is the body of GET /credits/balance.
type CreditBalanceResponse struct {
	Balance decimal.Decimal `json:"balance"`
}

type SubscriptionResponse struct {
	SubscriptionId string    `json:"subscriptionId"`
	PlanId         *string   `json:"planId,omitempty"`
	Status         string    `json:"status"`
	CreatedAt      time.Time `json:"createdAt"`
}

type SubscriptionListResponse struct {
	Subscriptions []SubscriptionResponse `json:"subscriptions"`
}

type SystemInfo struct {
	Version     string `json:"version"`
	Environment string `json:"environment"`
}

type HealthcheckResponse struct {
	Status     string     `json:"status"`
	SystemInfo SystemInfo `json:"systemInfo"`
}
