// Package promreg holds the process-wide Prometheus registry. A private
// registry keeps the /metrics output down to this service's own counters,
// without the default Go runtime and http handler collectors.
package promreg

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	registry = prometheus.NewRegistry()
	auto     = promauto.With(registry)
)

// Auto returns the factory that packages use to declare their metrics; the
// collectors register on the private registry at package init time.
func Auto() promauto.Factory {
	return auto
}

// Registry exposes the registry for the metrics HTTP handler.
func Registry() *prometheus.Registry {
	return registry
}
