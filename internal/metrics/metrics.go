// Package metrics exposes the workflow counters scraped from the
// standalone metrics server.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	KOTsCreated = promauto.NewCounter(prometheus.CounterOpts{
		Name: "bistro_kots_created_total",
		Help: "Kitchen order tickets created by send-to-kitchen actions.",
	})

	OrdersCompleted = promauto.NewCounter(prometheus.CounterOpts{
		Name: "bistro_orders_completed_total",
		Help: "Orders that reached Completed via payment.",
	})

	RevenueCollected = promauto.NewCounter(prometheus.CounterOpts{
		Name: "bistro_revenue_collected_total",
		Help: "Sum of completed order totals, tax included.",
	})

	OversellWarnings = promauto.NewCounter(prometheus.CounterOpts{
		Name: "bistro_oversell_warnings_total",
		Help: "Stock decrements that drove a menu item to zero or below.",
	})

	RejectedActions = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "bistro_rejected_actions_total",
		Help: "Workflow actions refused by a precondition check.",
	}, []string{"reason"})
)
