//nolint:gochecknoglobals
package main

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	picksMetric = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "townpicker",
		Name:      "picks_total",
		Help:      "The total number of pick sessions",
	})

	transformsMetric = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "townpicker",
		Name:      "transforms_total",
		Help:      "The total number of coordinate batches transformed",
	}, []string{"from", "to"})
)
