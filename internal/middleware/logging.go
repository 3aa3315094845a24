package middleware

import (
	"context"
	"log/slog"
	"time"

	"github.com/mmynk/projectbook/internal/metrics"
)

// LoggingInterceptor logs every command with its outcome and duration.
// User mistakes are logged at WARN, everything else that fails at ERROR.
func LoggingInterceptor(logger *slog.Logger) Interceptor {
	return func(next HandlerFunc) HandlerFunc {
		return func(ctx context.Context, input string) (Response, error) {
			start := time.Now()

			resp, err := next(ctx, input)

			duration := time.Since(start).Milliseconds()
			switch outcome := Classify(err); outcome {
			case metrics.OutcomeSuccess:
				logger.Info("Command ok",
					"command", resp.Command,
					"duration_ms", duration,
				)
			case metrics.OutcomeParseError, metrics.OutcomeCommandError:
				logger.Warn("Command rejected",
					"command", resp.Command,
					"outcome", outcome,
					"error", err,
					"duration_ms", duration,
				)
			default:
				logger.Error("Command failed",
					"command", resp.Command,
					"error", err,
					"duration_ms", duration,
				)
			}

			return resp, err
		}
	}
}

// MetricsInterceptor counts every command by outcome.
func MetricsInterceptor(m *metrics.Metrics) Interceptor {
	return func(next HandlerFunc) HandlerFunc {
		return func(ctx context.Context, input string) (Response, error) {
			start := time.Now()
			resp, err := next(ctx, input)
			m.ObserveCommand(resp.Command, Classify(err), time.Since(start))
			return resp, err
		}
	}
}
