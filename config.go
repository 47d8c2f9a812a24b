package genring

import (
	"github.com/prometheus/client_golang/prometheus"
)

type Option[Item any] = func(*config[Item])

// WithOnEvict registers a hook invoked with each value displaced by a silent
// overwrite in [Buffer.Push]. It runs as part of the replacement, before Push
// returns. [Buffer.PushEvict] bypasses the hook since the displaced value is
// handed to the caller instead.
func WithOnEvict[Item any](onEvict func(Item)) Option[Item] {
	if onEvict == nil {
		panic("evict hook can't be nil")
	}
	return func(c *config[Item]) {
		c.onEvict = onEvict
	}
}

// WithPrometheus makes the buffer report its metrics (pushes, evictions,
// lookup hits and misses, occupancy) with the given namespace and subsystem.
// If registerer is nil, metrics are collected but not registered.
func WithPrometheus[Item any](
	registerer prometheus.Registerer,
	namespace, subsystem string,
) Option[Item] {
	return func(c *config[Item]) {
		c.metrics = newMetrics(registerer, namespace, subsystem)
	}
}

type config[Item any] struct {
	onEvict func(Item)
	metrics *metrics
}

func newConfig[Item any](options ...Option[Item]) *config[Item] {
	options = append([]Option[Item]{
		WithPrometheus[Item](nil, "genring", "buffer"),
	}, options...)

	cfg := config[Item]{}
	for _, opt := range options {
		opt(&cfg)
	}

	return &cfg
}
