package limiter

import (
	"context"

	"golang.org/x/time/rate"

	"github.com/rojanmagar2001/alivecheck/internal/ports"
)

// Global caps the request rate across all workers.
type Global struct {
	l *rate.Limiter
}

// New returns a limiter allowing rps requests per second. rps <= 0 means
// unlimited.
func New(rps float64) ports.Limiter {
	if rps <= 0 {
		return &Global{l: rate.NewLimiter(rate.Inf, 0)}
	}

	burst := int(rps)
	if burst < 1 {
		burst = 1
	}
	return &Global{l: rate.NewLimiter(rate.Limit(rps), burst)}
}

func (g *Global) Wait(ctx context.Context) error {
	return g.l.Wait(ctx)
}
