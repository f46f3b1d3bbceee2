package api

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	apiRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "backend_requests_total",
			Help: "Calls made to the storefront backend",
		},
		[]string{"op", "status"},
	)

	apiDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "backend_request_duration_ms",
			Help:    "Duration of backend calls in ms",
			Buckets: []float64{5, 10, 25, 50, 100, 200, 400, 800, 1600, 5000, 10000},
		},
		[]string{"op"},
	)
)

// observe records one call; status 0 means the call never got an answer.
func observe(op string, status int, start time.Time) {
	label := "error"
	if status > 0 {
		label = strconv.Itoa(status)
	}
	apiRequests.WithLabelValues(op, label).Inc()
	apiDuration.WithLabelValues(op).Observe(float64(time.Since(start).Milliseconds()))
}
