package completion

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var EffectsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "completion_effects_total",
		Help: "Post-delivery effect executions by effect and result",
	},
	[]string{"effect", "result"},
)
