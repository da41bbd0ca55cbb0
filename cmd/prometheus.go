package main

import (
	"swaphub/internal/usecasees/structs"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type Metrics struct {
	Counters map[structs.MetricConst]prometheus.Counter
}

func (a *App) InitMetrics() {
	metrics := Metrics{Counters: map[structs.MetricConst]prometheus.Counter{}}

	for _, m := range []structs.MetricConst{
		structs.MetricPollTotal,
		structs.MetricTransitionTotal,
		structs.MetricOrderSettled,
		structs.MetricRateLimitPause,
		structs.MetricDCAExecution,
		structs.MetricLimitTriggered,
		structs.MetricLimitDead,
		structs.MetricLimitStaleSkipped,
		structs.MetricPriceRefreshTotal,
		structs.MetricNotificationsTotal,
	} {
		metrics.Counters[m] = promauto.NewCounter(prometheus.CounterOpts{
			Name: m.ToString(),
			Help: m.ToString(),
		})
	}

	a.Metrics = &metrics
}
