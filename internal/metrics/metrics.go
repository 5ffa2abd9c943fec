package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	PoolAvailableBytes = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "fillbuf_pool_available_bytes",
		Help: "The number of bytes of the region pool that are not reserved",
	})

	PoolGets = promauto.NewCounter(prometheus.CounterOpts{
		Name: "fillbuf_pool_gets_total",
		Help: "The total number of regions handed out by the pool",
	})

	EnsureInitBytes = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "fillbuf_ensure_init_bytes",
		Help:    "Number of stale bytes zero-filled per EnsureInit call",
		Buckets: prometheus.ExponentialBuckets(64, 4, 8), // buckets from 64B to 1MiB
	})
)
