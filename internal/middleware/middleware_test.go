package middleware

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmynk/projectbook/internal/command"
	"github.com/mmynk/projectbook/internal/metrics"
	"github.com/mmynk/projectbook/internal/parser"
)

func handlerReturning(name string, err error) HandlerFunc {
	return func(context.Context, string) (Response, error) {
		return Response{Command: name}, err
	}
}

func TestChainOrder(t *testing.T) {
	var calls []string
	trace := func(label string) Interceptor {
		return func(next HandlerFunc) HandlerFunc {
			return func(ctx context.Context, input string) (Response, error) {
				calls = append(calls, label+" in")
				resp, err := next(ctx, input)
				calls = append(calls, label+" out")
				return resp, err
			}
		}
	}

	h := Chain(handlerReturning("list", nil), trace("a"), trace("b"))
	_, err := h(context.Background(), "list")
	require.NoError(t, err)
	assert.Equal(t, []string{"a in", "b in", "b out", "a out"}, calls)
}

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want metrics.Outcome
	}{
		{"nil", nil, metrics.OutcomeSuccess},
		{"parse", &parser.ParseError{Message: "bad"}, metrics.OutcomeParseError},
		{"command", &command.Error{Kind: command.KindDuplicate}, metrics.OutcomeCommandError},
		{"internal", &command.Error{Kind: command.KindInternal}, metrics.OutcomeStorageError},
		{"other", errors.New("disk full"), metrics.OutcomeStorageError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.err))
		})
	}
}

func TestLoggingInterceptor(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	h := Chain(handlerReturning("add", &command.Error{Kind: command.KindDuplicate, Message: "dup"}), LoggingInterceptor(logger))
	_, err := h(context.Background(), "add ...")
	require.Error(t, err)
	assert.Contains(t, buf.String(), "level=WARN")
	assert.Contains(t, buf.String(), "command=add")

	buf.Reset()
	h = Chain(handlerReturning("list", errors.New("disk full")), LoggingInterceptor(logger))
	_, _ = h(context.Background(), "list")
	assert.Contains(t, buf.String(), "level=ERROR")
	assert.Contains(t, buf.String(), "disk full")
}

func TestMetricsInterceptor(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := metrics.New(reg)

	ok := Chain(handlerReturning("list", nil), MetricsInterceptor(m))
	bad := Chain(handlerReturning("", &parser.ParseError{Message: "?"}), MetricsInterceptor(m))
	_, _ = ok(context.Background(), "list")
	_, _ = ok(context.Background(), "list")
	_, _ = bad(context.Background(), "???")

	count, err := testutil.GatherAndCount(reg, "projectbook_commands_total")
	require.NoError(t, err)
	assert.Equal(t, 2, count, "one series per command and outcome")
}
