package metrics

import (
	"net/http"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const metricPrefix = "campus_analyzer_"

var (
	shapesMeasured = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: metricPrefix + "shapes_measured_total",
			Help: "Shapes measured successfully, by category",
		},
		[]string{"category"},
	)
	validationFailures = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: metricPrefix + "validation_failures_total",
			Help: "Rejected measurements, by error kind",
		},
		[]string{"kind"},
	)
)

func init() {
	prometheus.MustRegister(shapesMeasured, validationFailures)
}

// ShapeMeasured counts a successful measurement.
func ShapeMeasured(category string) {
	shapesMeasured.WithLabelValues(category).Inc()
}

// ValidationFailed counts a rejected measurement by error kind.
func ValidationFailed(kind string) {
	validationFailures.WithLabelValues(kind).Inc()
}

var sessionGaugeOnce sync.Once

// RegisterSessionGauge exposes the live session count. Call once at startup.
func RegisterSessionGauge(count func() float64) {
	sessionGaugeOnce.Do(func() {
		prometheus.MustRegister(prometheus.NewGaugeFunc(
			prometheus.GaugeOpts{
				Name: metricPrefix + "sessions_active",
				Help: "Sessions currently held in memory",
			},
			count,
		))
	})
}

// Handler returns the Prometheus scrape handler.
func Handler() http.Handler {
	return promhttp.Handler()
}
