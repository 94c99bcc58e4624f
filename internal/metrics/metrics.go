package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	ConversionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "unitconv_conversions_total",
			Help: "Total number of conversion requests by category and status.",
		},
		[]string{"category", "status"},
	)

	ConversionDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "unitconv_conversion_duration_seconds",
			Help:    "Conversion request duration in seconds.",
			Buckets: []float64{0.01, 0.05, 0.1, 0.5, 1.0, 2.0, 5.0},
		},
		[]string{"category"},
	)

	RateRefreshesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "unitconv_rate_refreshes_total",
			Help: "Total number of exchange rate snapshot refreshes by outcome.",
		},
		[]string{"status"},
	)
)
