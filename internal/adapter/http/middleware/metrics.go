package middleware

import (
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	viewRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "storefront_http_requests_total",
			Help: "Storefront views served, by area, route and status code",
		},
		[]string{"area", "method", "route", "status"},
	)

	viewDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "storefront_http_request_duration_ms",
			Help:    "Time to build a storefront view in ms, backend calls included",
			Buckets: []float64{5, 10, 25, 50, 100, 200, 400, 800, 1600, 5000},
		},
		[]string{"area", "method"},
	)

	viewsInFlight = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "storefront_http_requests_in_flight",
		Help: "Storefront views being built right now",
	})
)

// Metrics counts and times every routed view. Paths in skip (health checks, the
// scrape endpoint) are not recorded.
func Metrics(skip ...string) gin.HandlerFunc {
	ignored := make(map[string]bool, len(skip))
	for _, p := range skip {
		ignored[p] = true
	}
	return func(c *gin.Context) {
		if ignored[c.Request.URL.Path] {
			c.Next()
			return
		}
		viewsInFlight.Inc()
		start := time.Now()
		c.Next()
		viewsInFlight.Dec()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		area := Area(route)
		viewRequests.WithLabelValues(area, c.Request.Method, route, strconv.Itoa(c.Writer.Status())).Inc()
		viewDuration.WithLabelValues(area, c.Request.Method).Observe(float64(time.Since(start).Milliseconds()))
	}
}

// Area groups a route by its first segment: "/checkout/next" is "checkout",
// "/" is "home".
func Area(route string) string {
	if route == "unmatched" {
		return route
	}
	seg, _, _ := strings.Cut(strings.TrimPrefix(route, "/"), "/")
	if seg == "" {
		return "home"
	}
	return seg
}
