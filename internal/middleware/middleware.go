// Package middleware wraps command handling with cross-cutting concerns.
package middleware

import (
	"context"
	"errors"

	"github.com/mmynk/projectbook/internal/command"
	"github.com/mmynk/projectbook/internal/metrics"
	"github.com/mmynk/projectbook/internal/parser"
)

// Response is what a handler produced for one line of input.
type Response struct {
	// Command is the parsed command word; empty when parsing failed.
	Command string
	Result  command.Result
}

// HandlerFunc handles one line of input.
type HandlerFunc func(ctx context.Context, input string) (Response, error)

// Interceptor wraps a HandlerFunc.
type Interceptor func(next HandlerFunc) HandlerFunc

// Chain applies interceptors so that the first one runs outermost.
func Chain(h HandlerFunc, interceptors ...Interceptor) HandlerFunc {
	for i := len(interceptors) - 1; i >= 0; i-- {
		h = interceptors[i](h)
	}
	return h
}

// Classify maps a handler error to a metrics outcome.
func Classify(err error) metrics.Outcome {
	var (
		pe *parser.ParseError
		ce *command.Error
	)
	switch {
	case err == nil:
		return metrics.OutcomeSuccess
	case errors.As(err, &pe):
		return metrics.OutcomeParseError
	case errors.As(err, &ce) && ce.Kind != command.KindInternal:
		return metrics.OutcomeCommandError
	default:
		return metrics.OutcomeStorageError
	}
}
