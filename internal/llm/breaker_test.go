package llm

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"
)

type countingGenerator struct {
	calls int
	err   error
}

func (g *countingGenerator) GenerateJSON(ctx context.Context, system, user string, schema *Schema) (map[string]any, error) {
	g.calls++
	if g.err != nil {
		return nil, g.err
	}
	return map[string]any{"ok": true}, nil
}

func TestBreakerOpensAfterConsecutiveFailures(t *testing.T) {
	gen := &countingGenerator{err: errors.New("upstream down")}
	b := NewBreaker(gen, BreakerSettings{ConsecutiveFailures: 3, OpenTimeout: time.Hour}, zerolog.Nop())

	for i := 0; i < 3; i++ {
		if _, err := b.GenerateJSON(context.Background(), "s", "u", testSchema); errors.Is(err, ErrUnavailable) {
			t.Fatalf("call %d rejected before the circuit opened", i)
		}
	}
	if b.State() != "open" {
		t.Fatalf("state = %s, want open", b.State())
	}

	_, err := b.GenerateJSON(context.Background(), "s", "u", testSchema)
	if !errors.Is(err, ErrUnavailable) {
		t.Fatalf("expected ErrUnavailable while open, got %v", err)
	}
	if gen.calls != 3 {
		t.Errorf("open circuit must not reach the generator, calls = %d", gen.calls)
	}
}

func TestBreakerPassesThroughSuccess(t *testing.T) {
	gen := &countingGenerator{}
	b := NewBreaker(gen, BreakerSettings{ConsecutiveFailures: 1, OpenTimeout: time.Hour}, zerolog.Nop())

	obj, err := b.GenerateJSON(context.Background(), "s", "u", testSchema)
	if err != nil || obj["ok"] != true {
		t.Fatalf("got %v, %v", obj, err)
	}
	if gen.calls != 1 || b.State() != "closed" {
		t.Errorf("calls = %d, state = %s", gen.calls, b.State())
	}
}

func TestBreakerIgnoresCancellation(t *testing.T) {
	gen := &countingGenerator{err: context.Canceled}
	b := NewBreaker(gen, BreakerSettings{ConsecutiveFailures: 1, OpenTimeout: time.Hour}, zerolog.Nop())

	for i := 0; i < 3; i++ {
		_, _ = b.GenerateJSON(context.Background(), "s", "u", testSchema)
	}
	if b.State() != "closed" {
		t.Errorf("cancellations tripped the breaker: %s", b.State())
	}
}

func TestBreakerHalfOpenProbe(t *testing.T) {
	gen := &countingGenerator{err: errors.New("down")}
	b := NewBreaker(gen, BreakerSettings{ConsecutiveFailures: 1, OpenTimeout: 10 * time.Millisecond}, zerolog.Nop())

	_, _ = b.GenerateJSON(context.Background(), "s", "u", testSchema)
	if b.State() != "open" {
		t.Fatalf("state = %s, want open", b.State())
	}

	time.Sleep(20 * time.Millisecond)
	gen.err = nil
	if _, err := b.GenerateJSON(context.Background(), "s", "u", testSchema); err != nil {
		t.Fatalf("probe failed: %v", err)
	}
	if b.State() != "closed" {
		t.Errorf("state after successful probe = %s", b.State())
	}
}
