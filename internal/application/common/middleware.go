package common

import (
	"context"
	"time"

	"github.com/andrescamacho/supplychain-go/internal/domain/shared"
)

// LoggingMiddleware logs every request sent through the mediator with its outcome.
// Domain rejections are expected and logged at DEBUG; anything else is an ERROR.
func LoggingMiddleware() Middleware {
	return func(ctx context.Context, request Request, next HandlerFunc) (Response, error) {
		logger := LoggerFromContext(ctx)
		name := RequestName(request)

		start := time.Now()
		response, err := next(ctx, request)
		fields := map[string]interface{}{
			"request":     name,
			"duration_ms": float64(time.Since(start).Microseconds()) / 1000,
		}

		switch kind := shared.KindOf(err); {
		case err == nil:
			logger.Log("DEBUG", "Request handled", fields)
		case kind != "":
			fields["kind"] = kind.String()
			fields["error"] = err.Error()
			logger.Log("DEBUG", "Request rejected", fields)
		default:
			fields["error"] = err.Error()
			logger.Log("ERROR", "Request failed", fields)
		}
		return response, err
	}
}
