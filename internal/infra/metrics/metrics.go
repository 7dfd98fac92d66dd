// Package metrics exposes dispatch counters through Prometheus.
package metrics

import (
	"net/http"

	"guardian/internal/domain/service"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "guardian"

// Collector owns its own Prometheus registry and implements service.DispatchMetrics.
type Collector struct {
	registry *prometheus.Registry

	deliveries *prometheus.CounterVec
	fallbacks  *prometheus.CounterVec
	alerts     *prometheus.CounterVec
}

var _ service.DispatchMetrics = (*Collector)(nil)

// NewCollector creates a Collector with the Go and process collectors registered.
func NewCollector() *Collector {
	reg := prometheus.NewRegistry()

	c := &Collector{
		registry: reg,
		deliveries: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "dispatch_total",
			Help:      "Delivery attempts by channel and final status",
		}, []string{"method", "status"}),
		fallbacks: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "dispatch_fallback_total",
			Help:      "Deliveries that fell back from push to SMS",
		}, []string{"reason"}),
		alerts: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "alerts_total",
			Help:      "Alert triggers by type and outcome",
		}, []string{"type", "outcome"}),
	}

	reg.MustRegister(
		c.deliveries,
		c.fallbacks,
		c.alerts,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return c
}

func (c *Collector) ObserveDelivery(method, status string) {
	c.deliveries.WithLabelValues(method, status).Inc()
}

func (c *Collector) ObserveFallback(reason string) {
	c.fallbacks.WithLabelValues(reason).Inc()
}

func (c *Collector) ObserveAlert(alertType, outcome string) {
	c.alerts.WithLabelValues(alertType, outcome).Inc()
}

// Handler serves the registry in the Prometheus text format.
func (c *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{})
}
