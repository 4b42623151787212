package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/rojanmagar2001/alivecheck/internal/domain"
	"github.com/rojanmagar2001/alivecheck/internal/infra/queue"
	"github.com/rojanmagar2001/alivecheck/internal/infra/store"
	"github.com/rojanmagar2001/alivecheck/internal/logger"
	"github.com/rojanmagar2001/alivecheck/internal/ports"
	"github.com/rojanmagar2001/alivecheck/internal/progress"
)

type Scanner struct {
	prober  ports.Prober
	workers int
}

func NewScanner(prober ports.Prober, workers int) *Scanner {
	return &Scanner{prober: prober, workers: workers}
}

// Run probes every host once and returns the hosts that answered 200. The
// listener, if non-nil, is told about each completed check.
func (s *Scanner) Run(ctx context.Context, hosts []string, listener progress.Listener) domain.Report {
	start := time.Now()

	// Fully loaded before any worker starts.
	q := queue.From(hosts)
	results := store.NewMemory()

	var opts []progress.Option
	if listener != nil {
		opts = append(opts, progress.WithListener(listener))
	}
	prog := progress.New(len(hosts), opts...)

	workers := WorkerCount(s.workers, len(hosts))
	logger.Debugf("scanning %d hosts with %d workers", len(hosts), workers)

	err := NewPool(s.workers).Run(ctx, q, s.prober, results, prog)

	rep := domain.Report{
		Total:       prog.Total(),
		Checked:     prog.Current(),
		Alive:       results.Snapshot(),
		Elapsed:     time.Since(start),
		Interrupted: err != nil,
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		logger.Warnf("scan interrupted after %d/%d checks", rep.Checked, rep.Total)
	}
	return rep
}
