package metrics

import (
	"context"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/andrescamacho/supplychain-go/internal/application/common"
	ledgerQueries "github.com/andrescamacho/supplychain-go/internal/application/ledger/queries"
	registryQueries "github.com/andrescamacho/supplychain-go/internal/application/registry/queries"
)

// FinancialMetricsCollector samples party balances and journal statements into gauges
type FinancialMetricsCollector struct {
	mediator common.Mediator
	logger   common.Logger

	balance      *prometheus.GaugeVec
	totalBalance prometheus.Gauge

	revenue  *prometheus.GaugeVec
	expenses *prometheus.GaugeVec
	net      *prometheus.GaugeVec

	// Lifecycle
	ctx        context.Context
	cancelFunc context.CancelFunc
	wg         sync.WaitGroup
}

// NewFinancialMetricsCollector creates a new financial metrics collector
func NewFinancialMetricsCollector(mediator common.Mediator, logger common.Logger) *FinancialMetricsCollector {
	return &FinancialMetricsCollector{
		mediator: mediator,
		logger:   logger,

		balance: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "party_balance",
				Help:      "Current cash balance of each factory, market and customer",
			},
			[]string{"party", "role"},
		),

		// Trades move cash between parties; only manufacturing lowers the total
		totalBalance: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "total_balance",
				Help:      "Sum of all party balances",
			},
		),

		revenue: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "party_revenue",
				Help:      "Journaled revenue per party",
			},
			[]string{"party"},
		),

		expenses: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "party_expenses",
				Help:      "Journaled expenses per party",
			},
			[]string{"party"},
		),

		net: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "party_net",
				Help:      "Journaled revenue minus expenses per party",
			},
			[]string{"party"},
		),
	}
}

// Register registers all financial metrics with the Prometheus registry
func (c *FinancialMetricsCollector) Register() error {
	if Registry == nil {
		return nil // Metrics not enabled
	}

	metrics := []prometheus.Collector{
		c.balance,
		c.totalBalance,
		c.revenue,
		c.expenses,
		c.net,
	}

	for _, metric := range metrics {
		if err := Registry.Register(metric); err != nil {
			return err
		}
	}

	return nil
}

// Start begins sampling every interval until ctx is cancelled or Stop is called
func (c *FinancialMetricsCollector) Start(ctx context.Context, interval time.Duration) {
	c.ctx, c.cancelFunc = context.WithCancel(ctx)

	c.wg.Add(1)
	go c.poll(interval)
}

// Stop gracefully stops the financial metrics collector
func (c *FinancialMetricsCollector) Stop() {
	if c.cancelFunc != nil {
		c.cancelFunc()
	}
	c.wg.Wait()
}

func (c *FinancialMetricsCollector) poll(interval time.Duration) {
	defer c.wg.Done()

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	// Do initial poll immediately
	c.Update(c.ctx)

	for {
		select {
		case <-c.ctx.Done():
			return
		case <-ticker.C:
			c.Update(c.ctx)
		}
	}
}

// Update takes one sample. Failures are logged and leave the previous values in place.
func (c *FinancialMetricsCollector) Update(ctx context.Context) {
	if c.mediator == nil {
		return
	}

	response, err := c.mediator.Send(ctx, &registryQueries.GetBalancesQuery{})
	if err != nil {
		c.log("ERROR", "Failed to fetch balances for metrics", map[string]interface{}{"error": err.Error()})
		return
	}
	balances, ok := response.(*registryQueries.GetBalancesResponse)
	if !ok {
		c.log("ERROR", "Unexpected response type for balances query", map[string]interface{}{"type": response})
		return
	}

	for _, b := range balances.Balances {
		c.balance.WithLabelValues(b.Name, b.Role).Set(b.Balance.Float64())
		c.updateStatement(ctx, b.Name)
	}
	c.totalBalance.Set(balances.Total.Float64())
}

func (c *FinancialMetricsCollector) updateStatement(ctx context.Context, party string) {
	response, err := c.mediator.Send(ctx, &ledgerQueries.GetStatementQuery{Party: party})
	if err != nil {
		c.log("ERROR", "Failed to fetch statement for metrics", map[string]interface{}{
			"party": party,
			"error": err.Error(),
		})
		return
	}
	statement, ok := response.(*ledgerQueries.GetStatementResponse)
	if !ok || statement.Statement == nil {
		return
	}

	c.revenue.WithLabelValues(party).Set(statement.Statement.Revenue.Float64())
	c.expenses.WithLabelValues(party).Set(statement.Statement.Expenses.Float64())
	c.net.WithLabelValues(party).Set(statement.Statement.Net().Float64())
}

func (c *FinancialMetricsCollector) log(level, message string, metadata map[string]interface{}) {
	if c.logger != nil {
		c.logger.Log(level, message, metadata)
	}
}
