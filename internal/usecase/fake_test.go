package usecase

import (
	"context"
	"errors"
	"sync/atomic"
	"time"

	"github.com/rojanmagar2001/alivecheck/internal/domain"
)

// fakeProber answers from a fixed table and records peak concurrency.
type fakeProber struct {
	alive map[string]bool
	delay time.Duration

	calls       atomic.Int64
	inflight    atomic.Int64
	maxInflight atomic.Int64
}

func (f *fakeProber) Check(ctx context.Context, host string) domain.Result {
	n := f.inflight.Add(1)
	defer f.inflight.Add(-1)
	for {
		m := f.maxInflight.Load()
		if n <= m || f.maxInflight.CompareAndSwap(m, n) {
			break
		}
	}
	f.calls.Add(1)

	if f.delay > 0 {
		select {
		case <-time.After(f.delay):
		case <-ctx.Done():
			return domain.Result{URL: host, Outcome: domain.Failure, Err: ctx.Err()}
		}
	}

	if f.alive[host] {
		return domain.Result{URL: host, Outcome: domain.Success, StatusCode: 200}
	}
	return domain.Result{URL: host, Outcome: domain.Failure, Err: errors.New("connection refused")}
}
