package wallet

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var PayoutsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "wallet_payouts_total",
		Help: "Payout request transitions by resulting status",
	},
	[]string{"status"},
)
