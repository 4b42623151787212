package ports

import (
	"context"

	"github.com/rojanmagar2001/alivecheck/internal/domain"
)

// Prober performs exactly one check of one host. It never returns an error:
// every fault is reported as a Failure outcome.
type Prober interface {
	Check(ctx context.Context, host string) domain.Result
}
