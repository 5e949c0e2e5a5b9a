package llm

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/blanklearn/marketplace-backend/internal/metrics"
	"github.com/rs/zerolog"
	gobreaker "github.com/sony/gobreaker/v2"
)

// generator is the call a Breaker guards. *Client implements it.
type generator interface {
	GenerateJSON(ctx context.Context, system, user string, schema *Schema) (map[string]any, error)
}

// BreakerSettings tune a Breaker.
type BreakerSettings struct {
	// ConsecutiveFailures opens the circuit. Zero disables tripping.
	ConsecutiveFailures uint32
	// OpenTimeout is how long the circuit stays open before a probe is let through.
	OpenTimeout time.Duration
}

// Breaker fails calls fast while the generator keeps failing. It never
// retries: each GenerateJSON is at most one upstream request.
type Breaker struct {
	next generator
	cb   *gobreaker.CircuitBreaker[map[string]any]
	log  zerolog.Logger
}

// NewBreaker wraps next with a circuit breaker.
func NewBreaker(next generator, s BreakerSettings, log zerolog.Logger) *Breaker {
	log = log.With().Str("component", "llm-breaker").Logger()
	metrics.GeneratorBreakerState.Set(0)

	cb := gobreaker.NewCircuitBreaker[map[string]any](gobreaker.Settings{
		Name:        "text-generator",
		MaxRequests: 1,
		Interval:    time.Minute,
		Timeout:     s.OpenTimeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return s.ConsecutiveFailures > 0 && counts.ConsecutiveFailures >= s.ConsecutiveFailures
		},
		// A caller giving up says nothing about the generator's health.
		IsSuccessful: func(err error) bool {
			return err == nil || errors.Is(err, context.Canceled)
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			log.Warn().Str("from", from.String()).Str("to", to.String()).Msg("Circuit breaker state changed")
			metrics.GeneratorBreakerState.Set(stateValue(to))
		},
	})

	return &Breaker{next: next, cb: cb, log: log}
}

// GenerateJSON forwards to the wrapped generator unless the circuit is open,
// in which case it returns an error wrapping ErrUnavailable.
func (b *Breaker) GenerateJSON(ctx context.Context, system, user string, schema *Schema) (map[string]any, error) {
	obj, err := b.cb.Execute(func() (map[string]any, error) {
		return b.next.GenerateJSON(ctx, system, user, schema)
	})
	if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	return obj, err
}

// State reports the breaker state as "closed", "half-open" or "open".
func (b *Breaker) State() string {
	return b.cb.State().String()
}

func stateValue(s gobreaker.State) float64 {
	switch s {
	case gobreaker.StateHalfOpen:
		return 1
	case gobreaker.StateOpen:
		return 2
	default:
		return 0
	}
}
