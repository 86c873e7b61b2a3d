package app

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/burakdemirtas/credit-purchase-system/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stripe/stripe-go/v82"
	"github.com/stripe/stripe-go/v82/webhook"
)

const maxWebhookBytes = 65536

// StripeWebhookHandler verifies and dispatches Stripe events. Processing is
// idempotent: a redelivered checkout.session.completed event credits the
// user exactly once.
func (app *Application) StripeWebhookHandler(w http.ResponseWriter, r *http.Request) {
	logger := app.contextGetLogger(r)

	signature := r.Header.Get("Stripe-Signature")
	if signature == "" {
		app.badRequestResponse(w, r, fmt.Errorf("missing Stripe-Signature header"))
		return
	}

	payload, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxWebhookBytes))
	if err != nil {
		app.badRequestResponse(w, r, fmt.Errorf("failed to read webhook payload: %w", err))
		return
	}

	event, err := webhook.ConstructEvent(payload, signature, app.config.Stripe.WebhookSecret)
	if err != nil {
		logger.Warn("rejected webhook with invalid signature", "error", err)
		app.badRequestResponse(w, r, fmt.Errorf("webhook signature verification failed"))
		return
	}

	switch event.Type {
	case "checkout.session.completed":
		err = app.handleCheckoutCompleted(r, event)
	case "checkout.session.expired":
		err = app.handleCheckoutExpired(r, event)
	case "customer.subscription.deleted":
		err = app.handleSubscriptionDeleted(r, event)
	default:
		logger.Info("ignoring unhandled webhook event", "type", event.Type)
	}

	if err != nil {
		// Non-2xx makes Stripe redeliver the event later.
		app.serverErrorResponse(w, r, err)
		return
	}

	w.WriteHeader(http.StatusOK)
}

func (app *Application) handleCheckoutCompleted(r *http.Request, event stripe.Event) error {
	logger := app.contextGetLogger(r)

	var session stripe.CheckoutSession
	err := json.Unmarshal(event.Data.Raw, &session)
	if err != nil {
		return fmt.Errorf("failed to unmarshal checkout session: %w", err)
	}

	userId, err := strconv.Atoi(session.ClientReferenceID)
	if err != nil {
		return fmt.Errorf("invalid client reference id %q: %w", session.ClientReferenceID, err)
	}

	switch session.Mode {
	case stripe.CheckoutSessionModePayment:
		return app.completePurchase(r, userId, &session)
	case stripe.CheckoutSessionModeSubscription:
		return app.activateSubscription(r, userId, &session)
	default:
		logger.Info("ignoring checkout session with unhandled mode", "mode", session.Mode)
		return nil
	}
}

func (app *Application) completePurchase(r *http.Request, userId int, session *stripe.CheckoutSession) error {
	logger := app.contextGetLogger(r)

	err := app.paymentRepo.UpdateStatus(r.Context(), session.ID, domain.PaymentStatusCompleted, "")
	if err != nil {
		return fmt.Errorf("failed to mark payment completed: %w", err)
	}

	credits := decimal.NewFromInt(session.AmountTotal).Div(decimal.NewFromInt(100))

	tx := domain.CreditTransaction{
		UserID:        userId,
		Amount:        credits,
		Source:        "stripe",
		TransactionID: session.ID,
		Metadata: map[string]string{
			"currency": string(session.Currency),
		},
	}

	if session.PaymentIntent != nil {
		tx.Metadata["payment_intent"] = session.PaymentIntent.ID
	}

	err = app.creditRepo.Allocate(r.Context(), &tx)
	if err != nil {
		if errors.Is(err, domain.ErrDuplicateTransaction) {
			logger.Info("skipping already processed checkout session", "checkout_session_id", session.ID)
			return nil
		}

		return fmt.Errorf("credit allocation failed: %w", err)
	}

	// The pending-checkout cache key for this browser session is stale now.
	if sessionId := session.Metadata["session_id"]; sessionId != "" {
		app.redis.Del(r.Context(), checkoutSessionKey(sessionId))
	}

	app.sendReceipt(r, userId, session, credits)

	return nil
}

func (app *Application) sendReceipt(r *http.Request, userId int, session *stripe.CheckoutSession, credits decimal.Decimal) {
	logger := app.contextGetLogger(r)

	recipient := session.CustomerEmail
	if recipient == "" {
		user, err := app.userRepo.GetById(r.Context(), userId)
		if err != nil {
			logger.Error("failed to resolve receipt recipient", "error", err)
			return
		}
		recipient = user.Email
	}

	go func(ctx context.Context) {
		gLogger := app.contextGetLogger(r.WithContext(ctx))

		defer func() {
			if err := recover(); err != nil {
				gLogger.Error("panic occurred during sending receipt mail", "panic", err)
			}
		}()

		data := map[string]any{
			"credits":       credits,
			"amount":        decimal.NewFromInt(session.AmountTotal).Div(decimal.NewFromInt(100)),
			"currency":      string(session.Currency),
			"transactionId": session.ID,
		}

		err := app.mailer.Send(recipient, "purchase_receipt.tmpl", data)
		if err != nil {
			gLogger.Error("failed to send receipt email", "error", err)
		} else {
			gLogger.Info("receipt email sent successfully")
		}
	}(context.WithoutCancel(r.Context()))
}

func (app *Application) activateSubscription(r *http.Request, userId int, session *stripe.CheckoutSession) error {
	logger := app.contextGetLogger(r)

	if session.Subscription == nil {
		return fmt.Errorf("checkout session %s has no subscription attached", session.ID)
	}

	err := app.paymentRepo.UpdateStatus(r.Context(), session.ID, domain.PaymentStatusCompleted, "")
	if err != nil {
		return fmt.Errorf("failed to mark payment completed: %w", err)
	}

	sub := domain.Subscription{
		UserID:         userId,
		SubscriptionID: session.Subscription.ID,
		Source:         "stripe",
	}

	if planId, ok := session.Metadata["plan_id"]; ok {
		sub.PlanID = &planId
	}

	err = app.subscriptionRepo.Activate(r.Context(), &sub)
	if err != nil {
		if errors.Is(err, domain.ErrDuplicateTransaction) {
			logger.Info("skipping already activated subscription", "subscription_id", sub.SubscriptionID)
			return nil
		}

		return fmt.Errorf("subscription activation failed: %w", err)
	}

	return nil
}

func (app *Application) handleCheckoutExpired(r *http.Request, event stripe.Event) error {
	var session stripe.CheckoutSession
	err := json.Unmarshal(event.Data.Raw, &session)
	if err != nil {
		return fmt.Errorf("failed to unmarshal checkout session: %w", err)
	}

	err = app.paymentRepo.UpdateStatus(r.Context(), session.ID, domain.PaymentStatusCanceled, "checkout session expired")
	if err != nil {
		return fmt.Errorf("failed to mark payment canceled: %w", err)
	}

	if sessionId := session.Metadata["session_id"]; sessionId != "" {
		app.redis.Del(r.Context(), checkoutSessionKey(sessionId))
	}

	return nil
}

func (app *Application) handleSubscriptionDeleted(r *http.Request, event stripe.Event) error {
	logger := app.contextGetLogger(r)

	var sub stripe.Subscription
	err := json.Unmarshal(event.Data.Raw, &sub)
	if err != nil {
		return fmt.Errorf("failed to unmarshal subscription: %w", err)
	}

	err = app.subscriptionRepo.Deactivate(r.Context(), sub.ID)
	if err != nil {
		if errors.Is(err, domain.ErrRecordNotFound) {
			logger.Warn("deactivation requested for unknown subscription", "subscription_id", sub.ID)
			return nil
		}

		return fmt.Errorf("subscription deactivation failed: %w", err)
	}

	return nil
}
