package metrics

import (
	"context"
	"time"

	"github.com/andrescamacho/supplychain-go/internal/application/mediator"
	"github.com/andrescamacho/supplychain-go/internal/domain/shared"
)

// PrometheusMiddleware records duration and outcome of every command and query
// sent through the mediator. Domain rejections are also counted by error kind.
// A nil collector disables it.
func PrometheusMiddleware(collector *CommandMetricsCollector) mediator.Middleware {
	return func(ctx context.Context, request mediator.Request, next mediator.HandlerFunc) (mediator.Response, error) {
		if collector == nil {
			return next(ctx, request)
		}

		start := time.Now()
		response, err := next(ctx, request)
		name := mediator.RequestName(request)
		collector.RecordRequest(name, time.Since(start), err)

		if kind := shared.KindOf(err); kind != "" {
			RecordFailure(name, string(kind))
		}

		return response, err
	}
}
