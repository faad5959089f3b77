package ledger

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	SettlementsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ledger_settlements_total",
			Help: "Settlement creation attempts by result",
		},
		[]string{"result"}, // created, existing
	)

	RefundsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ledger_refunds_total",
			Help: "Gateway refunds by result",
		},
		[]string{"result"},
	)
)
