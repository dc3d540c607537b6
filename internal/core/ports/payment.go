package ports

import "context"

// PaymentProvider creates single-use payment intents with an external
// processor. The amount is in the currency's minor unit (cents).
type PaymentProvider interface {
	CreateIntent(ctx context.Context, amount int64, currency string) (clientSecret string, err error)
}

// IntentCache stores client secrets keyed by idempotency key so a replayed
// request returns the original intent without a second provider call.
type IntentCache interface {
	Lookup(ctx context.Context, key string) (secret string, found bool, err error)
	Store(ctx context.Context, key, secret string) error
}

// CreateIntentInput carries the payment-intent request.
type CreateIntentInput struct {
	// Price is the amount in major currency units (e.g. 19.99).
	Price float64
	// IdempotencyKey is optional; empty disables replay protection.
	IdempotencyKey string
}

// IntentResult is returned after creating (or replaying) an intent.
type IntentResult struct {
	ClientSecret string
	// Amount is the minor-unit amount sent to the provider.
	Amount int64
	// Replayed is true when the idempotency key matched a previous intent.
	Replayed bool
}

// PaymentService defines the payment-intent use case.
type PaymentService interface {
	CreateIntent(ctx context.Context, input CreateIntentInput) (*IntentResult, error)
}
