package service

import (
	"context"
	"math"

	"github.com/rs/zerolog"

	"github.com/bistroboss/restaurant-api/internal/core/domain"
	"github.com/bistroboss/restaurant-api/internal/core/ports"
)

// PaymentService converts a major-unit price to the provider's minor unit
// and requests a single-use payment intent in a fixed currency.
type PaymentService struct {
	provider ports.PaymentProvider
	cache    ports.IntentCache
	currency string
	logger   zerolog.Logger
}

func NewPaymentService(provider ports.PaymentProvider, cache ports.IntentCache, currency string, logger zerolog.Logger) *PaymentService {
	return &PaymentService{provider: provider, cache: cache, currency: currency, logger: logger}
}

// CreateIntent creates a payment intent for the given price. When an
// idempotency key is provided and already seen, the original client secret
// is returned without a second provider call.
func (s *PaymentService) CreateIntent(ctx context.Context, input ports.CreateIntentInput) (*ports.IntentResult, error) {
	amount := toMinorUnits(input.Price)
	if amount <= 0 {
		return nil, domain.ErrInvalidAmount
	}

	if input.IdempotencyKey != "" {
		secret, found, err := s.cache.Lookup(ctx, input.IdempotencyKey)
		if err != nil {
			return nil, err
		}
		if found {
			s.logger.Info().Str("idempotency_key", input.IdempotencyKey).Msg("payment intent replayed")
			return &ports.IntentResult{ClientSecret: secret, Amount: amount, Replayed: true}, nil
		}
	}

	secret, err := s.provider.CreateIntent(ctx, amount, s.currency)
	if err != nil {
		s.logger.Error().Err(err).Int64("amount", amount).Msg("payment provider call failed")
		return nil, err
	}

	if input.IdempotencyKey != "" {
		if err := s.cache.Store(ctx, input.IdempotencyKey, secret); err != nil {
			// The intent exists either way; a failed cache write only costs
			// replay protection for this key.
			s.logger.Warn().Err(err).Str("idempotency_key", input.IdempotencyKey).Msg("intent cache write failed")
		}
	}

	s.logger.Info().Int64("amount", amount).Str("currency", s.currency).Msg("payment intent created")

	return &ports.IntentResult{ClientSecret: secret, Amount: amount}, nil
}

// toMinorUnits converts a major-unit price to minor units, truncating
// toward zero. The epsilon absorbs binary float artifacts so a price of
// 19.99 maps to 1999 even though 19.99*100 is slightly below 1999.
func toMinorUnits(price float64) int64 {
	return int64(math.Trunc(price*100 + 1e-6))
}
