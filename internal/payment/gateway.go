package payment

import (
	"context"
	"time"

	"busbuddy/internal/domain"
)

// Gateway is the external payment processor boundary. The booking flow
// does not know whether an implementation is simulated or real, so a
// production integration is a drop-in replacement.
type Gateway interface {
	Submit(ctx context.Context, amount int64, details domain.PaymentDetails) error
}

// DefaultDelay mirrors the checkout's simulated processing pause.
const DefaultDelay = 1500 * time.Millisecond

// Simulated approves every submission after a fixed delay. The outcome is
// decided before the delay starts, never after it.
type Simulated struct {
	Delay time.Duration
}

func (g Simulated) Submit(ctx context.Context, amount int64, _ domain.PaymentDetails) error {
	_ = amount

	delay := g.Delay
	if delay <= 0 {
		delay = DefaultDelay
	}
	timer := time.NewTimer(delay)
	defer timer.Stop()
	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
