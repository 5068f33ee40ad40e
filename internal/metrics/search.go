package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/kailas-cloud/vidriera/internal/domain/search/result"
)

const namespace = "vidriera"

// Search and catalog Prometheus metrics.
var (
	SearchRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "search_requests_total",
			Help:      "Total number of searches by detected intent",
		},
		[]string{"intent"},
	)

	SearchFallbacksTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "search_fallbacks_total",
			Help:      "Fail-open narrowing stages that reverted to the wider pool",
		},
		[]string{"stage"},
	)

	SearchDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "search_duration_seconds",
			Help:      "Engine search duration in seconds",
			Buckets:   []float64{0.0001, 0.00025, 0.0005, 0.001, 0.0025, 0.005, 0.01, 0.025, 0.05},
		},
	)

	SearchResults = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "search_results",
			Help:      "Number of items returned per search",
			Buckets:   []float64{0, 1, 2, 4, 8, 16, 32, 50},
		},
	)

	CatalogProducts = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "catalog_products",
			Help:      "Products in the live catalog snapshot",
		},
	)

	CatalogReloadsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "catalog_reloads_total",
			Help:      "Catalog reload attempts",
		},
		[]string{"result"}, // "ok" / "error"
	)
)

func init() {
	prometheus.MustRegister(SearchRequestsTotal)
	prometheus.MustRegister(SearchFallbacksTotal)
	prometheus.MustRegister(SearchDuration)
	prometheus.MustRegister(SearchResults)
	prometheus.MustRegister(CatalogProducts)
	prometheus.MustRegister(CatalogReloadsTotal)
}

// Recorder feeds search and catalog events into the package metrics.
type Recorder struct{}

// NewRecorder creates a metrics recorder.
func NewRecorder() *Recorder {
	return &Recorder{}
}

// ObserveSearch records one engine search.
func (Recorder) ObserveSearch(kind string, returned int, fallbacks []result.Stage, elapsed time.Duration) {
	SearchRequestsTotal.WithLabelValues(kind).Inc()
	for _, st := range fallbacks {
		SearchFallbacksTotal.WithLabelValues(string(st)).Inc()
	}
	SearchDuration.Observe(elapsed.Seconds())
	SearchResults.Observe(float64(returned))
}

// ObserveCatalogReload records a snapshot reload. The gauge only moves on success.
func (Recorder) ObserveCatalogReload(products int, err error) {
	if err != nil {
		CatalogReloadsTotal.WithLabelValues("error").Inc()
		return
	}
	CatalogReloadsTotal.WithLabelValues("ok").Inc()
	CatalogProducts.Set(float64(products))
}
