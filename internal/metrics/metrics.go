// Package metrics provides Prometheus metrics collection for the webshop API.
package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Basket mutation operations.
const (
	BasketCreated     = "created"
	BasketItemAdded   = "item_inserted"
	BasketItemBumped  = "item_incremented"
	BasketItemRemoved = "item_removed"
)

var (
	// HTTPRequestDuration tracks HTTP request duration by method, route, and status code.
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path", "status_code"},
	)

	// HTTPRequestTotal tracks total HTTP requests by method, route, and status code.
	HTTPRequestTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status_code"},
	)

	// BasketMutationsTotal tracks basket writes by operation.
	BasketMutationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "basket_mutations_total",
			Help: "Total number of shopping basket mutations",
		},
		[]string{"operation"},
	)

	// TranslationLookupsTotal tracks translation lookups by the source that
	// answered them (cache or database) and whether a value was found.
	TranslationLookupsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "translation_lookups_total",
			Help: "Total number of translation lookups by source and result",
		},
		[]string{"source", "result"},
	)
)

// RecordHTTPRequest records a finished HTTP request. path should be the
// route pattern, not the raw URL, to keep label cardinality bounded.
func RecordHTTPRequest(method, path string, status int, duration time.Duration) {
	code := strconv.Itoa(status)
	HTTPRequestDuration.WithLabelValues(method, path, code).Observe(duration.Seconds())
	HTTPRequestTotal.WithLabelValues(method, path, code).Inc()
}

// RecordBasketMutation counts one basket write.
func RecordBasketMutation(operation string) {
	BasketMutationsTotal.WithLabelValues(operation).Inc()
}

// Translation lookup sources.
const (
	LookupSourceCache    = "cache"
	LookupSourceDatabase = "database"
)

// RecordTranslationLookups adds hit and miss counts for one batched lookup
// against source.
func RecordTranslationLookups(source string, hits, misses int) {
	if hits > 0 {
		TranslationLookupsTotal.WithLabelValues(source, "hit").Add(float64(hits))
	}
	if misses > 0 {
		TranslationLookupsTotal.WithLabelValues(source, "miss").Add(float64(misses))
	}
}
