package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// SupplyChainMetricsCollector counts trades, production runs, stock adjustments and failures
type SupplyChainMetricsCollector struct {
	tradesTotal       *prometheus.CounterVec
	tradeUnitsTotal   *prometheus.CounterVec
	tradeValue        *prometheus.HistogramVec
	manufacturesTotal *prometheus.CounterVec
	unitsProduced     *prometheus.CounterVec
	productionCost    *prometheus.CounterVec
	adjustmentsTotal  *prometheus.CounterVec
	failuresTotal     *prometheus.CounterVec
}

// NewSupplyChainMetricsCollector creates a new supply chain metrics collector
func NewSupplyChainMetricsCollector() *SupplyChainMetricsCollector {
	return &SupplyChainMetricsCollector{
		tradesTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "trades_total",
				Help:      "Completed trades by type and good",
			},
			[]string{"type", "good"},
		),

		tradeUnitsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "trade_units_total",
				Help:      "Units moved by completed trades",
			},
			[]string{"type", "good"},
		),

		tradeValue: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "trade_value",
				Help:      "Trade total (price x quantity) distribution",
				Buckets:   []float64{10, 50, 100, 500, 1000, 5000, 10000},
			},
			[]string{"type"},
		),

		manufacturesTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "manufactures_total",
				Help:      "Completed production runs by factory and product",
			},
			[]string{"factory", "product"},
		),

		unitsProduced: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "units_produced_total",
				Help:      "Finished goods produced",
			},
			[]string{"factory", "product"},
		),

		productionCost: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "production_cost_total",
				Help:      "Cash spent on production",
			},
			[]string{"factory"},
		),

		adjustmentsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "stock_adjustment_units_total",
				Help:      "Units restocked or discarded outside trades",
			},
			[]string{"adjustment", "holder"},
		),

		failuresTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "operation_failures_total",
				Help:      "Rejected operations by error kind",
			},
			[]string{"operation", "kind"},
		),
	}
}

// Register registers all supply chain metrics with the Prometheus registry
func (c *SupplyChainMetricsCollector) Register() error {
	if Registry == nil {
		return nil // Metrics not enabled
	}

	metrics := []prometheus.Collector{
		c.tradesTotal,
		c.tradeUnitsTotal,
		c.tradeValue,
		c.manufacturesTotal,
		c.unitsProduced,
		c.productionCost,
		c.adjustmentsTotal,
		c.failuresTotal,
	}

	for _, metric := range metrics {
		if err := Registry.Register(metric); err != nil {
			return err
		}
	}
	return nil
}

func (c *SupplyChainMetricsCollector) RecordTrade(tradeType, good string, quantity int, total float64) {
	c.tradesTotal.WithLabelValues(tradeType, good).Inc()
	c.tradeUnitsTotal.WithLabelValues(tradeType, good).Add(float64(quantity))
	c.tradeValue.WithLabelValues(tradeType).Observe(total)
}

func (c *SupplyChainMetricsCollector) RecordManufacture(factory, product string, amount int, cost float64) {
	c.manufacturesTotal.WithLabelValues(factory, product).Inc()
	c.unitsProduced.WithLabelValues(factory, product).Add(float64(amount))
	c.productionCost.WithLabelValues(factory).Add(cost)
}

func (c *SupplyChainMetricsCollector) RecordStockAdjustment(adjustment, holder string, quantity int) {
	c.adjustmentsTotal.WithLabelValues(adjustment, holder).Add(float64(quantity))
}

func (c *SupplyChainMetricsCollector) RecordFailure(operation, kind string) {
	if kind == "" {
		kind = "UNKNOWN"
	}
	c.failuresTotal.WithLabelValues(operation, kind).Inc()
}
