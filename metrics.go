package genring

import (
	"github.com/prometheus/client_golang/prometheus"
)

type metrics struct {
	pushes    prometheus.Counter
	evictions prometheus.Counter
	lookups   *prometheus.CounterVec
	occupancy prometheus.Gauge

	// Children of the lookups vec, resolved once so the lookup path stays
	// allocation-free.
	lookupHits  prometheus.Counter
	lookupStale prometheus.Counter
}

func newMetrics(registerer prometheus.Registerer, namespace, subsystem string) *metrics {
	m := metrics{
		pushes: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "pushes",
			Help:      "Number of values pushed into the buffer",
		}),
		evictions: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "evictions",
			Help:      "Number of values displaced by wraparound overwrites",
		}),
		lookups: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "lookups",
			Help:      "Number of handle lookups by result",
		}, []string{"result"}),
		occupancy: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "occupancy",
			Help:      "Number of populated slots",
		}),
	}

	m.lookupHits = m.lookups.WithLabelValues("hit")
	m.lookupStale = m.lookups.WithLabelValues("stale")

	if registerer != nil {
		registerer = prometheus.WrapRegistererWith(
			prometheus.Labels{"component": "genring"},
			registerer,
		)
		registerer.MustRegister(
			m.pushes,
			m.evictions,
			m.lookups,
			m.occupancy,
		)
	}

	return &m
}
