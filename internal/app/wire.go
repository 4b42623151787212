package app

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/fatih/color"

	"github.com/rojanmagar2001/alivecheck/internal/check"
	"github.com/rojanmagar2001/alivecheck/internal/config"
	"github.com/rojanmagar2001/alivecheck/internal/domain"
	"github.com/rojanmagar2001/alivecheck/internal/infra/httpclient"
	"github.com/rojanmagar2001/alivecheck/internal/infra/limiter"
	"github.com/rojanmagar2001/alivecheck/internal/infra/progressbar"
	"github.com/rojanmagar2001/alivecheck/internal/input"
	"github.com/rojanmagar2001/alivecheck/internal/logger"
	"github.com/rojanmagar2001/alivecheck/internal/output"
	"github.com/rojanmagar2001/alivecheck/internal/ports"
	"github.com/rojanmagar2001/alivecheck/internal/progress"
	"github.com/rojanmagar2001/alivecheck/internal/usecase"
)

var (
	okColor   = color.New(color.FgHiGreen)
	warnColor = color.New(color.FgHiYellow)
	infoColor = color.New(color.FgHiCyan)
)

func Run(ctx context.Context, cfg config.Config, stdout, stderr io.Writer) error {
	cfg.Normalize()
	return RunWith(ctx, cfg, httpclient.New(cfg.Timeout, cfg.Threads), stdout, stderr)
}

// RunWith is Run with the HTTP client supplied by the caller.
// read hosts -> scan -> write alive hosts -> print summary.
func RunWith(ctx context.Context, cfg config.Config, client ports.HTTPClient, stdout, stderr io.Writer) error {
	cfg.Normalize()
	if err := cfg.Validate(); err != nil {
		return err
	}

	hosts, err := input.ReadHosts(cfg.File)
	if err != nil {
		return err
	}
	logger.Debugf("loaded %d hosts from %s", len(hosts), cfg.File)

	chk := check.NewChecker(client, cfg.Timeout, cfg.UserAgent)
	svc := usecase.NewProbeService(chk, limiter.New(cfg.Rate))

	var listener progress.Listener
	var finish func()
	if !cfg.NoProgress && len(hosts) > 0 {
		bar := progressbar.New(len(hosts), stderr)
		listener = bar
		finish = func() { _ = bar.Exit() }
	}

	rep := usecase.NewScanner(svc, cfg.Threads).Run(ctx, hosts, listener)
	if finish != nil {
		finish()
	}

	wrote, err := output.WriteHosts(cfg.Output, rep.Alive)
	if err != nil {
		return err
	}

	printSummary(stdout, cfg, rep, wrote)
	return nil
}

func printSummary(w io.Writer, cfg config.Config, rep domain.Report, wrote bool) {
	if rep.Interrupted {
		warnColor.Fprintf(w, "Scan interrupted: %d of %d hosts checked\n", rep.Checked, rep.Total)
	}
	infoColor.Fprintf(w, "Checked %d hosts (workers=%d, timeout=%s) in %s\n",
		rep.Checked, usecase.WorkerCount(cfg.Threads, rep.Total), cfg.Timeout, rep.Elapsed.Round(time.Millisecond))

	if wrote {
		okColor.Fprintf(w, "Alive: %d\n", len(rep.Alive))
		fmt.Fprintf(w, "Results saved to: %s\n", cfg.Output)
		return
	}
	warnColor.Fprintf(w, "Alive: 0 (%s not written)\n", cfg.Output)
}
