package metrics

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	generationStartedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "generation_started_total",
		Help: "Total generation attempts dispatched to the provider.",
	})
	generationSucceededTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "generation_succeeded_total",
		Help: "Total generations that returned a valid result.",
	})
	generationFailedTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "generation_failed_total",
		Help: "Total failed generations by taxonomy code.",
	}, []string{"code"})
	generationDurationMs = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "generation_duration_ms",
		Help:    "Provider round-trip duration in milliseconds.",
		Buckets: []float64{100, 250, 500, 1000, 2000, 5000, 10000, 30000, 60000},
	})
)

// IncGenerationStarted increments the started counter.
func IncGenerationStarted() {
	generationStartedTotal.Inc()
}

// IncGenerationSucceeded increments the succeeded counter.
func IncGenerationSucceeded() {
	generationSucceededTotal.Inc()
}

// IncGenerationFailed increments the failed counter for a taxonomy code.
func IncGenerationFailed(code string) {
	generationFailedTotal.WithLabelValues(code).Inc()
}

// ObserveGenerationDurationMs records one provider round trip.
func ObserveGenerationDurationMs(value float64) {
	if value < 0 {
		value = 0
	}
	generationDurationMs.Observe(value)
}

// Handler exposes the Prometheus scrape endpoint.
func Handler() gin.HandlerFunc {
	return gin.WrapH(promhttp.Handler())
}
