// Package service contains the business logic.
//
// It sits between the handler layer and the random source: each service
// waits out the configured processing latency and then fills a canned
// response with sampled values.
package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"
)

// Sampler draws the random values of a canned response.
type Sampler interface {
	// Uniform samples [lo, hi] rounded half-up to places decimals.
	Uniform(lo, hi float64, places int32) float64
	// IntBetween samples an integer in [lo, hi] inclusive.
	IntBetween(lo, hi int) int
}

// base carries what every canned generator needs.
type base struct {
	sampler Sampler
	logger  *zerolog.Logger
	sleep   func(time.Duration)
}

// loggerFrom prefers the request-scoped logger carried by ctx.
func (b base) loggerFrom(ctx context.Context) *zerolog.Logger {
	if logger := zerolog.Ctx(ctx); logger.GetLevel() != zerolog.Disabled {
		return logger
	}
	return b.logger
}

// pause emulates processing time. It blocks the calling goroutine and
// is not cancellable.
func (b base) pause(ctx context.Context, op string, d time.Duration) {
	if d <= 0 {
		return
	}

	b.loggerFrom(ctx).Debug().
		Str("operation", op).
		Dur("latency", d).
		Msg("simulating processing")

	b.sleep(d)
}
