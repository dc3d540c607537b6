// Package payment implements the payment-provider port against a
// Stripe-compatible HTTP API.
package payment

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/bistroboss/restaurant-api/internal/core/domain"
)

const defaultBaseURL = "https://api.stripe.com"

// Client creates payment intents over the provider's form-encoded REST API.
type Client struct {
	http *resty.Client
}

// NewClient builds a provider client authenticated with the given secret
// key. baseURL overrides the production endpoint; empty selects the default.
func NewClient(apiKey, baseURL string) *Client {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}

	return &Client{
		http: resty.New().
			SetBaseURL(baseURL).
			SetAuthToken(apiKey).
			SetTimeout(15 * time.Second),
	}
}

type intentResponse struct {
	ID           string `json:"id"`
	ClientSecret string `json:"client_secret"`
}

// CreateIntent requests a single-use payment intent for the minor-unit
// amount and returns the opaque client secret for client-side confirmation.
func (c *Client) CreateIntent(ctx context.Context, amount int64, currency string) (string, error) {
	var out intentResponse

	resp, err := c.http.R().
		SetContext(ctx).
		SetFormData(map[string]string{
			"amount":                 strconv.FormatInt(amount, 10),
			"currency":               currency,
			"payment_method_types[]": "card",
		}).
		SetResult(&out).
		Post("/v1/payment_intents")
	if err != nil {
		return "", fmt.Errorf("%w: %v", domain.ErrPaymentProvider, err)
	}
	if resp.IsError() {
		return "", fmt.Errorf("%w: status %d", domain.ErrPaymentProvider, resp.StatusCode())
	}
	if out.ClientSecret == "" {
		return "", fmt.Errorf("%w: empty client secret", domain.ErrPaymentProvider)
	}

	return out.ClientSecret, nil
}
