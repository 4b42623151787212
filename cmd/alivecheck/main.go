package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/rojanmagar2001/alivecheck/internal/app"
	"github.com/rojanmagar2001/alivecheck/internal/config"
	"github.com/rojanmagar2001/alivecheck/internal/logger"
)

func newRootCmd() *cobra.Command {
	v := viper.New()
	var configPath string

	cmd := &cobra.Command{
		Use:           "alivecheck",
		Short:         "Probe a list of hostnames over HTTPS and keep the ones answering 200",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(v, configPath)
			if err != nil {
				return err
			}
			if cfg.Verbose {
				logger.Init(cmd.ErrOrStderr(), true)
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			return app.Run(ctx, cfg, cmd.OutOrStdout(), cmd.ErrOrStderr())
		},
	}

	d := config.Default()
	f := cmd.Flags()
	f.StringP("file", "f", "", "Path to file containing list of URLs (required)")
	f.StringP("output", "o", "", "File to save all 200 URLs (required)")
	f.IntP("threads", "t", d.Threads, "Number of threads")
	f.Duration("timeout", d.Timeout, "Per-URL timeout (e.g. 5s)")
	f.Float64("rate", 0, "Max requests per second across all threads (0 = unlimited)")
	f.String("user-agent", d.UserAgent, "User-Agent header sent with every probe")
	f.Bool("no-progress", false, "Disable the progress bar")
	f.BoolP("verbose", "v", false, "Log every probe outcome")
	cmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Optional config file (yaml, json, toml)")

	config.SetDefaults(v)
	_ = v.BindPFlags(f)

	return cmd
}

func main() {
	if err := newRootCmd().ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
