package delivery

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	AcceptOutcomesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "delivery_accept_outcomes_total",
			Help: "Results of courier acceptance attempts",
		},
		[]string{"outcome"},
	)

	TransitionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "delivery_transitions_total",
			Help: "Committed delivery status transitions",
		},
		[]string{"status"},
	)
)
