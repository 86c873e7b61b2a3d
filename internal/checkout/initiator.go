// Package checkout implements the client half of the hosted checkout flow:
// it asks the server for a checkout session and sends the user agent to the
// returned URL.
package checkout

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
)

const createSessionPath = "/stripe/create-session"

// SessionResponse is the body returned by the session-creation endpoint.
type SessionResponse struct {
	Url string `json:"url"`
}

// Initiator triggers a session-creation request against a fixed endpoint and
// performs one navigation per invocation. It never retries and carries no
// timeout of its own; deadlines come from the caller's context.
type Initiator struct {
	baseURL   string
	client    *http.Client
	navigator Navigator
	logger    *slog.Logger
}

func NewInitiator(baseURL string, navigator Navigator, logger *slog.Logger) *Initiator {
	return &Initiator{
		baseURL:   strings.TrimSuffix(baseURL, "/"),
		client:    http.DefaultClient,
		navigator: navigator,
		logger:    logger,
	}
}

// WithHTTPClient replaces the underlying HTTP client.
func (i *Initiator) WithHTTPClient(client *http.Client) *Initiator {
	i.client = client
	return i
}

// CreateSession POSTs to the session-creation endpoint with an empty JSON
// body and returns the checkout URL from the response. Any response body
// containing a url field is accepted, whatever the status code; a missing
// url field yields an empty string, not an error.
func (i *Initiator) CreateSession(ctx context.Context) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, i.baseURL+createSessionPath, nil)
	if err != nil {
		return "", fmt.Errorf("failed to build session request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")

	resp, err := i.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("session request failed: %w", err)
	}
	defer resp.Body.Close()

	var session SessionResponse

	err = json.NewDecoder(resp.Body).Decode(&session)
	if err != nil {
		return "", fmt.Errorf("failed to decode session response: %w", err)
	}

	return session.Url, nil
}

// InitiateCheckout runs the full flow: create a session, then navigate to
// its URL. Navigation is attempted even when the URL came back empty; the
// navigator decides what that means.
func (i *Initiator) InitiateCheckout(ctx context.Context) error {
	url, err := i.CreateSession(ctx)
	if err != nil {
		return err
	}

	return i.navigator.NavigateTo(url)
}

// TriggerFunc returns a zero-argument callable suitable for binding to a UI
// trigger. Failures are logged and swallowed; the page simply does not
// navigate.
func (i *Initiator) TriggerFunc() func() {
	return func() {
		err := i.InitiateCheckout(context.Background())
		if err != nil {
			i.logger.Error("Stripe checkout failed", "error", err)
		}
	}
}
