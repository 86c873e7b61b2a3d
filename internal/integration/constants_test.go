package integration_test

const (
	// User related constants
	TestUserId    = 1
	TestUserEmail = "test@example.com"

	// Checkout related constants
	TestCheckoutSessionId  = "cs_test_integration"
	TestCheckoutSessionURL = "https://checkout.stripe.com/c/pay/cs_test_integration"

	// Webhook related constants
	TestWebhookSecret = "whsec_integration_secret"
)
