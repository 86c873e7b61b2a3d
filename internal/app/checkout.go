package app

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/burakdemirtas/credit-purchase-system/api"
	"github.com/burakdemirtas/credit-purchase-system/internal/domain"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
	"github.com/stripe/stripe-go/v82"
)

// Stripe keeps hosted checkout pages alive for 24 hours; the cached URL is
// kept for a shorter window so stale links don't outlive the session.
const checkoutSessionTTL = 30 * time.Minute

// CreateCheckoutSessionHandler starts a hosted checkout for the default
// credit pack and returns its URL. Repeated calls within the same session
// return the already-created checkout page instead of opening a new one.
func (app *Application) CreateCheckoutSessionHandler(w http.ResponseWriter, r *http.Request) {
	sessionId := app.sessionManager.Token(r.Context())

	cachedUrl, err := app.redis.Get(r.Context(), checkoutSessionKey(sessionId)).Result()
	if err != nil && !errors.Is(err, redis.Nil) {
		app.serverErrorResponse(w, r, err)
		return
	}

	if cachedUrl != "" {
		app.contextGetLogger(r).Info("reusing pending checkout session")

		resp := api.CheckoutSessionResponse{
			Url: cachedUrl,
		}

		err = app.writeJSON(w, http.StatusOK, resp, nil)
		if err != nil {
			app.serverErrorResponse(w, r, err)
		}
		return
	}

	credits := app.config.Checkout.CreditPackSize

	checkoutSession, err := app.createCheckoutSession(w, r, func(user *domain.User, payment domain.Payment) (*stripe.CheckoutSession, error) {
		return app.paymentProvider.CreateCreditSession(sessionId, user, credits, payment)
	}, decimal.NewFromInt(int64(credits)), "USD")
	if checkoutSession == nil {
		return
	}

	err = app.redis.Set(r.Context(), checkoutSessionKey(sessionId), checkoutSession.URL, checkoutSessionTTL).Err()
	if err != nil {
		// The checkout session already exists at Stripe; losing the cache
		// entry only costs deduplication on the next click.
		app.contextGetLogger(r).Warn("failed to cache checkout session url", "error", err)
	}

	resp := api.CheckoutSessionResponse{
		Url: checkoutSession.URL,
	}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

// ProductCheckoutHandler starts a hosted checkout for a one-time product
// purchase described by the request body.
func (app *Application) ProductCheckoutHandler(w http.ResponseWriter, r *http.Request) {
	var input api.ProductCheckoutRequest

	err := app.readJSON(w, r, &input)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	err = app.validator.Struct(input)
	if err != nil {
		app.failedValidationResponse(w, r, err)
		return
	}

	order := domain.ProductOrder{
		ProductName: input.ProductName,
		Amount:      input.Amount,
		Currency:    input.Currency,
		Quantity:    input.Quantity,
		Metadata:    input.Metadata,
	}

	if order.Quantity == 0 {
		order.Quantity = 1
	}

	sessionId := app.sessionManager.Token(r.Context())
	total := order.Amount.Mul(decimal.NewFromInt(int64(order.Quantity)))

	checkoutSession, err := app.createCheckoutSession(w, r, func(user *domain.User, payment domain.Payment) (*stripe.CheckoutSession, error) {
		return app.paymentProvider.CreateProductSession(sessionId, user, order, payment)
	}, total, currencyOrUSD(order.Currency))
	if checkoutSession == nil {
		return
	}

	resp := api.CheckoutSessionResponse{
		Url: checkoutSession.URL,
	}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

// SubscriptionCheckoutHandler starts a hosted checkout that signs the user
// up for a recurring plan.
func (app *Application) SubscriptionCheckoutHandler(w http.ResponseWriter, r *http.Request) {
	var input api.SubscriptionCheckoutRequest

	err := app.readJSON(w, r, &input)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	err = app.validator.Struct(input)
	if err != nil {
		app.failedValidationResponse(w, r, err)
		return
	}

	plan := domain.SubscriptionPlan{
		PlanName: input.PlanName,
		Amount:   input.Amount,
		Interval: input.Interval,
		Currency: input.Currency,
		Metadata: input.Metadata,
	}

	sessionId := app.sessionManager.Token(r.Context())

	checkoutSession, err := app.createCheckoutSession(w, r, func(user *domain.User, payment domain.Payment) (*stripe.CheckoutSession, error) {
		return app.paymentProvider.CreateSubscriptionSession(sessionId, user, plan, payment)
	}, plan.Amount, currencyOrUSD(plan.Currency))
	if checkoutSession == nil {
		return
	}

	resp := api.CheckoutSessionResponse{
		Url: checkoutSession.URL,
	}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

// createCheckoutSession runs the shared part of every checkout: load the
// user, record a pending payment, ask the provider for a session and bind
// the session id to the payment. On failure it has already written the
// error response and returns nil.
func (app *Application) createCheckoutSession(
	w http.ResponseWriter,
	r *http.Request,
	create func(*domain.User, domain.Payment) (*stripe.CheckoutSession, error),
	amount decimal.Decimal,
	currency string) (*stripe.CheckoutSession, error) {

	userId := app.contextGetUserId(r)

	user, err := app.userRepo.GetById(r.Context(), userId)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return nil, err
	}

	payment := domain.Payment{
		UserID:   userId,
		Amount:   amount,
		Currency: currency,
		Status:   domain.PaymentStatusPending,
	}

	err = app.paymentRepo.Create(r.Context(), &payment)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return nil, err
	}

	checkoutSession, err := create(user, payment)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return nil, err
	}

	err = app.paymentRepo.SetCheckoutSession(r.Context(), payment.ID, checkoutSession.ID)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return nil, err
	}

	return checkoutSession, nil
}

func checkoutSessionKey(sessionID string) string {
	return fmt.Sprintf("checkout:%s", sessionID)
}

func currencyOrUSD(currency string) string {
	if currency == "" {
		return "USD"
	}

	return currency
}
