package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

const (
	// Namespace for all metrics
	namespace = "supplychain"
	// Subsystem for simulator metrics
	subsystem = "sim"
)

var (
	// Registry is the global Prometheus registry for all metrics
	Registry *prometheus.Registry

	// globalSupplyChainCollector is set by SetGlobalSupplyChainCollector() when metrics are enabled
	globalSupplyChainCollector SupplyChainMetricsRecorder
)

// SupplyChainMetricsRecorder defines the interface for recording simulator events.
// Application handlers record through the package-level functions below, which are
// no-ops while metrics are disabled.
type SupplyChainMetricsRecorder interface {
	RecordTrade(tradeType, good string, quantity int, total float64)
	RecordManufacture(factory, product string, amount int, cost float64)
	RecordStockAdjustment(adjustment, holder string, quantity int)
	RecordFailure(operation, kind string)
}

// InitRegistry initializes the Prometheus registry
// Should be called once at application startup if metrics are enabled
func InitRegistry() {
	Registry = prometheus.NewRegistry()
}

// GetRegistry returns the global Prometheus registry
// Returns nil if metrics are not initialized
func GetRegistry() *prometheus.Registry {
	return Registry
}

// IsEnabled returns true if metrics collection is enabled
func IsEnabled() bool {
	return Registry != nil
}

// Reset drops the registry and global collector. Used by tests.
func Reset() {
	Registry = nil
	globalSupplyChainCollector = nil
}

// SetGlobalSupplyChainCollector sets the global supply chain collector
func SetGlobalSupplyChainCollector(collector SupplyChainMetricsRecorder) {
	globalSupplyChainCollector = collector
}

// RecordTrade records a completed trade globally
func RecordTrade(tradeType, good string, quantity int, total float64) {
	if globalSupplyChainCollector != nil {
		globalSupplyChainCollector.RecordTrade(tradeType, good, quantity, total)
	}
}

// RecordManufacture records a completed production run globally
func RecordManufacture(factory, product string, amount int, cost float64) {
	if globalSupplyChainCollector != nil {
		globalSupplyChainCollector.RecordManufacture(factory, product, amount, cost)
	}
}

// RecordStockAdjustment records a restock or discard globally
func RecordStockAdjustment(adjustment, holder string, quantity int) {
	if globalSupplyChainCollector != nil {
		globalSupplyChainCollector.RecordStockAdjustment(adjustment, holder, quantity)
	}
}

// RecordFailure records a rejected operation by error kind globally
func RecordFailure(operation, kind string) {
	if globalSupplyChainCollector != nil {
		globalSupplyChainCollector.RecordFailure(operation, kind)
	}
}
