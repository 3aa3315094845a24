package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"

	"github.com/mmynk/projectbook/internal/metrics"
	"github.com/mmynk/projectbook/internal/service"
)

const prompt = "> "

// NewReplCommand creates the interactive command loop.
func NewReplCommand(rootOpts *RootOptions) *cobra.Command {
	var metricsAddr string

	cmd := &cobra.Command{
		Use:   "repl",
		Short: "Start an interactive session",
		Long: `Read commands line by line until "exit" or end of input.
The book is saved after every command that changes it.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRepl(cmd, rootOpts, metricsAddr)
		},
	}

	cmd.Flags().StringVar(&metricsAddr, "metrics-addr", "", "serve Prometheus metrics on this address (overrides preferences)")
	return cmd
}

func runRepl(cmd *cobra.Command, opts *RootOptions, metricsAddr string) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	sess, err := newSession(opts, cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	if metricsAddr == "" {
		metricsAddr = sess.prefs.MetricsAddr
	}

	var svcOpts []service.Option
	if metricsAddr != "" {
		reg := prometheus.NewRegistry()
		reg.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		)
		svcOpts = append(svcOpts, service.WithMetrics(metrics.New(reg)))
		stop := serveMetrics(metricsAddr, reg, sess.logger)
		defer stop()
	}

	svc, err := sess.open(ctx, svcOpts...)
	if err != nil {
		return err
	}
	defer svc.Close()

	return repl(ctx, cmd.InOrStdin(), cmd.OutOrStdout(), svc)
}

// repl runs commands from in until exit, end of input or cancellation.
// Failed commands are reported and the loop carries on.
func repl(ctx context.Context, in io.Reader, out io.Writer, svc *service.BookService) error {
	scanner := bufio.NewScanner(in)
	fmt.Fprint(out, prompt)
	for scanner.Scan() {
		if err := ctx.Err(); err != nil {
			return err
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			fmt.Fprint(out, prompt)
			continue
		}

		res, err := svc.Execute(ctx, line)
		if err != nil {
			fmt.Fprintln(out, err)
		} else {
			printResult(out, svc, res)
		}
		if res.Exit {
			return nil
		}
		fmt.Fprint(out, prompt)
	}
	fmt.Fprintln(out)
	return scanner.Err()
}

func serveMetrics(addr string, reg *prometheus.Registry, logger *slog.Logger) (stop func()) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{Registry: reg}))
	srv := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		logger.Info("Metrics server starting", "address", addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("Metrics server failed", "error", err)
		}
	}()

	return func() {
		ctx, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()
		_ = srv.Shutdown(ctx)
	}
}
