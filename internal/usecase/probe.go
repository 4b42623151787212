package usecase

import (
	"context"
	"fmt"

	"github.com/rojanmagar2001/alivecheck/internal/domain"
	"github.com/rojanmagar2001/alivecheck/internal/logger"
	"github.com/rojanmagar2001/alivecheck/internal/ports"
)

// ProbeService waits on the limiter before delegating to the checker.
type ProbeService struct {
	chk     ports.Prober
	limiter ports.Limiter
}

func NewProbeService(chk ports.Prober, limiter ports.Limiter) *ProbeService {
	return &ProbeService{chk: chk, limiter: limiter}
}

func (s *ProbeService) Check(ctx context.Context, host string) domain.Result {
	if s.limiter != nil {
		if err := s.limiter.Wait(ctx); err != nil {
			return domain.Result{URL: host, Outcome: domain.Failure, Err: fmt.Errorf("rate limit: %w", err)}
		}
	}

	r := s.chk.Check(ctx, host)
	if r.Err != nil {
		logger.Debug("probe failed", "host", host, "err", r.Err)
	} else {
		logger.Debug("probe done", "host", host, "status", r.StatusCode, "outcome", r.Outcome, "elapsed", r.Elapsed)
	}
	return r
}
