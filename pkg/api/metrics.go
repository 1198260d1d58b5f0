package api

import (
	"sync"
	"time"

	foundation "github.com/estafette/estafette-foundation"
	"github.com/go-kit/kit/metrics"
	kitprometheus "github.com/go-kit/kit/metrics/prometheus"
	stdprometheus "github.com/prometheus/client_golang/prometheus"
)

const metricsNamespace = "hydra_build_products"

// UpdateMetrics counts the call and observes its latency, labelled with the snake cased func name and whether it failed
func UpdateMetrics(requestCount metrics.Counter, requestLatency metrics.Histogram, funcName string, begin time.Time, err error) {
	funcName = foundation.ToLowerSnakeCase(funcName)

	outcome := "success"
	if err != nil {
		outcome = "error"
	}

	requestCount.With("func", funcName, "outcome", outcome).Add(1)
	requestLatency.With("func", funcName, "outcome", outcome).Observe(time.Since(begin).Seconds())
}

var (
	metricsMutex      sync.Mutex
	requestCounters   = map[string]metrics.Counter{}
	requestHistograms = map[string]metrics.Histogram{}
)

// NewRequestCounter returns the request counter of a subsystem, registering it on first use
func NewRequestCounter(subsystem string) metrics.Counter {
	metricsMutex.Lock()
	defer metricsMutex.Unlock()

	if _, ok := requestCounters[subsystem]; !ok {
		requestCounters[subsystem] = kitprometheus.NewCounterFrom(stdprometheus.CounterOpts{
			Namespace: metricsNamespace,
			Subsystem: subsystem,
			Name:      "request_count",
			Help:      "Number of requests made.",
		}, []string{"func", "outcome"})
	}

	return requestCounters[subsystem]
}

// NewRequestHistogram returns the request latency histogram of a subsystem, registering it on first use
func NewRequestHistogram(subsystem string) metrics.Histogram {
	metricsMutex.Lock()
	defer metricsMutex.Unlock()

	if _, ok := requestHistograms[subsystem]; !ok {
		requestHistograms[subsystem] = kitprometheus.NewHistogramFrom(stdprometheus.HistogramOpts{
			Namespace: metricsNamespace,
			Subsystem: subsystem,
			Name:      "request_latency_seconds",
			Help:      "Duration of requests in seconds.",
			Buckets:   []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30, 60, 300, 900, 3600},
		}, []string{"func", "outcome"})
	}

	return requestHistograms[subsystem]
}
