package integration_test

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"github.com/stripe/stripe-go/v82"
)

type WebhookTestSuite struct {
	BaseSuite
}

func TestWebhookSuite(t *testing.T) {
	if testing.Short() {
		t.Skip()
	}

	suite.Run(t, new(WebhookTestSuite))
}

func completedPaymentEventPayload(checkoutSessionId string, amountTotal int) string {
	return fmt.Sprintf(`{
		"id": "evt_integration_1",
		"api_version": "%s",
		"type": "checkout.session.completed",
		"data": {
			"object": {
				"id": "%s",
				"object": "checkout.session",
				"mode": "payment",
				"client_reference_id": "%d",
				"amount_total": %d,
				"currency": "usd",
				"customer_email": "%s"
			}
		}
	}`, stripe.APIVersion, checkoutSessionId, TestUserId, amountTotal, TestUserEmail)
}

func insertPendingPayment(t testing.TB, app *TestApp, checkoutSessionId string, amount string) {
	_, err := app.DB.Exec(context.Background(),
		`INSERT INTO payments (user_id, stripe_checkout_session_id, amount, status) VALUES ($1, $2, $3, 'pending')`,
		TestUserId, checkoutSessionId, amount)
	require.NoError(t, err)
}

func (s *WebhookTestSuite) TestStripeWebhookHandler() {
	payload := completedPaymentEventPayload(TestCheckoutSessionId, 1000)

	scenarios := []Scenario{
		{
			Name:           "returns 400 when the signature header is missing",
			Method:         "POST",
			URL:            "/stripe/webhook",
			Body:           strings.NewReader(payload),
			ExpectedStatus: http.StatusBadRequest,
		},
		{
			Name:           "returns 400 when the signature does not match",
			Method:         "POST",
			URL:            "/stripe/webhook",
			Body:           strings.NewReader(payload),
			Headers:        map[string]string{"Stripe-Signature": signWebhookPayload([]byte(payload), "whsec_wrong_secret")},
			ExpectedStatus: http.StatusBadRequest,
		},
		{
			Name:           "credits the user when a payment completes",
			Method:         "POST",
			URL:            "/stripe/webhook",
			Body:           strings.NewReader(payload),
			Headers:        map[string]string{"Stripe-Signature": signWebhookPayload([]byte(payload), TestWebhookSecret)},
			ExpectedStatus: http.StatusOK,
			BeforeTestFunc: func(t testing.TB, app *TestApp) {
				executeSQLFile(t, app.DB, "testdata/users_down.sql")
				executeSQLFile(t, app.DB, "testdata/users_up.sql")
				insertPendingPayment(t, app, TestCheckoutSessionId, "10.00")
				app.Mailer.Reset()
			},
			AfterTestFunc: func(t testing.TB, app *TestApp, res *http.Response) {
				ctx := context.Background()

				var credits string
				err := app.DB.QueryRow(ctx, `SELECT credits::text FROM users WHERE id = $1`, TestUserId).Scan(&credits)
				require.NoError(t, err)
				require.Equal(t, "10.00", credits)

				var status string
				err = app.DB.QueryRow(ctx,
					`SELECT status FROM payments WHERE stripe_checkout_session_id = $1`, TestCheckoutSessionId).Scan(&status)
				require.NoError(t, err)
				require.Equal(t, "completed", status)

				require.Eventually(t, func() bool {
					emails := app.Mailer.GetSentEmails()
					return len(emails) == 1 && emails[0].Recipient == TestUserEmail
				}, 2*time.Second, 20*time.Millisecond, "expected a receipt email")
			},
		},
		{
			Name:           "does not credit the user twice on a redelivered event",
			Method:         "POST",
			URL:            "/stripe/webhook",
			Body:           strings.NewReader(payload),
			Headers:        map[string]string{"Stripe-Signature": signWebhookPayload([]byte(payload), TestWebhookSecret)},
			ExpectedStatus: http.StatusOK,
			AfterTestFunc: func(t testing.TB, app *TestApp, res *http.Response) {
				ctx := context.Background()

				var credits string
				err := app.DB.QueryRow(ctx, `SELECT credits::text FROM users WHERE id = $1`, TestUserId).Scan(&credits)
				require.NoError(t, err)
				require.Equal(t, "10.00", credits, "expected the balance to stay unchanged")

				var count int
				err = app.DB.QueryRow(ctx, `SELECT count(*) FROM credit_transactions`).Scan(&count)
				require.NoError(t, err)
				require.Equal(t, 1, count)
			},
		},
	}

	for _, scenario := range scenarios {
		scenario.Run(s.T(), s.app)
	}
}
