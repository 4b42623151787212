package usecase

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/rojanmagar2001/alivecheck/internal/ports"
)

type Pool struct {
	workers int
}

func NewPool(workers int) *Pool {
	return &Pool{workers: workers}
}

// WorkerCount is min(requested, total), with requested clamped to at least 1.
func WorkerCount(requested, total int) int {
	if total <= 0 {
		return 0
	}
	if requested < 1 {
		requested = 1
	}
	if requested > total {
		return total
	}
	return requested
}

// Run drains q with a fixed number of workers and returns once every worker
// has exited. The queue must be fully loaded before Run is called. A done ctx
// stops workers from taking new hosts; Run then returns ctx.Err() and whatever
// was recorded so far stays valid.
func (p *Pool) Run(ctx context.Context, q ports.Queue, prober ports.Prober, results ports.ResultSet, prog ports.Progress) error {
	n := WorkerCount(p.workers, q.Len())

	var g errgroup.Group
	for i := 0; i < n; i++ {
		g.Go(func() error {
			work(ctx, q, prober, results, prog)
			return nil
		})
	}
	_ = g.Wait()

	return ctx.Err()
}

func work(ctx context.Context, q ports.Queue, prober ports.Prober, results ports.ResultSet, prog ports.Progress) {
	for ctx.Err() == nil {
		host, ok := q.TryTake()
		if !ok {
			return
		}

		r := prober.Check(ctx, host)
		if !r.IsAlive() && ctx.Err() != nil {
			// Aborted, not completed.
			return
		}

		if r.IsAlive() {
			results.Append(host)
		}
		prog.Increment()
	}
}
