package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/andrescamacho/supplychain-go/internal/domain/shared"
)

// Outcomes of a mediator request
const (
	outcomeOK       = "ok"
	outcomeRejected = "rejected" // the domain refused it, nothing changed
	outcomeFailed   = "failed"
)

// CommandMetricsCollector times every command and query sent through the mediator
type CommandMetricsCollector struct {
	requestDuration *prometheus.HistogramVec
	requestsTotal   *prometheus.CounterVec
}

func NewCommandMetricsCollector() *CommandMetricsCollector {
	return &CommandMetricsCollector{
		// Everything runs in memory, so buckets start well below a millisecond
		requestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "request_duration_seconds",
				Help:      "Time spent handling a command or query",
				Buckets:   []float64{0.00001, 0.0001, 0.001, 0.01, 0.1, 1.0},
			},
			[]string{"request", "outcome"},
		),

		requestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "requests_total",
				Help:      "Commands and queries handled, by outcome",
			},
			[]string{"request", "outcome"},
		),
	}
}

// Register adds the collector to Registry. It is a no-op while metrics are disabled.
func (c *CommandMetricsCollector) Register() error {
	if Registry == nil {
		return nil
	}

	for _, metric := range []prometheus.Collector{c.requestDuration, c.requestsTotal} {
		if err := Registry.Register(metric); err != nil {
			return err
		}
	}
	return nil
}

// RecordRequest observes one handled request
func (c *CommandMetricsCollector) RecordRequest(request string, elapsed time.Duration, err error) {
	outcome := requestOutcome(err)
	c.requestDuration.WithLabelValues(request, outcome).Observe(elapsed.Seconds())
	c.requestsTotal.WithLabelValues(request, outcome).Inc()
}

func requestOutcome(err error) string {
	switch {
	case err == nil:
		return outcomeOK
	case shared.KindOf(err) != "":
		return outcomeRejected
	default:
		return outcomeFailed
	}
}
