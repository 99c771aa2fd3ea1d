// Package metrics holds the prometheus instrumentation for order
// processing.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// OrdersProcessed counts orders that produced a breakdown.
	OrdersProcessed = promauto.NewCounter(prometheus.CounterOpts{
		Name: "splitledger_orders_processed_total",
		Help: "Number of orders that were processed into a breakdown",
	})

	// OrdersSkipped counts fully refunded orders that were excluded.
	OrdersSkipped = promauto.NewCounter(prometheus.CounterOpts{
		Name: "splitledger_orders_skipped_total",
		Help: "Number of orders skipped because they are fully refunded",
	})

	// OrdersFailed counts orders that could not be processed.
	OrdersFailed = promauto.NewCounter(prometheus.CounterOpts{
		Name: "splitledger_orders_failed_total",
		Help: "Number of orders that failed processing, e.g. because of malformed data",
	})
)

// Record updates the counters after a batch.
func Record(processed, skipped, failed int) {
	OrdersProcessed.Add(float64(processed))
	OrdersSkipped.Add(float64(skipped))
	OrdersFailed.Add(float64(failed))
}
