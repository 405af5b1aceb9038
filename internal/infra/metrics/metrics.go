// Package metrics exposes Prometheus collectors for dispatch and HTTP traffic.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"nudge/internal/domain/entity"
	"nudge/internal/domain/service"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "nudge"

// NewRegistry returns a registry carrying the Go runtime and process collectors.
func NewRegistry() *prometheus.Registry {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return reg
}

// Handler serves the registry in the Prometheus text format.
func Handler(reg *prometheus.Registry) http.Handler {
	return promhttp.HandlerFor(reg, promhttp.HandlerOpts{DisableCompression: true})
}

// Collectors holds every metric the service records.
type Collectors struct {
	sends            *prometheus.CounterVec
	dispatches       *prometheus.CounterVec
	dispatchOutcomes *prometheus.CounterVec
	httpDuration     *prometheus.HistogramVec
}

// NewCollectors registers the service metrics on reg.
func NewCollectors(reg *prometheus.Registry) *Collectors {
	factory := promauto.With(reg)

	return &Collectors{
		sends: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "push",
			Name:      "sends_total",
			Help:      "Endpoint sends by transport and outcome.",
		}, []string{"kind", "outcome"}),

		dispatches: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "dispatch",
			Name:      "invocations_total",
			Help:      "Completed dispatch invocations by type.",
		}, []string{"type"}),

		dispatchOutcomes: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "dispatch",
			Name:      "endpoints_total",
			Help:      "Endpoint outcomes aggregated per dispatch type.",
		}, []string{"type", "outcome"}),

		httpDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "The latency of the HTTP requests.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"api", "method", "code"}),
	}
}

// ObserveSend implements service.DeliveryObserver.
func (c *Collectors) ObserveSend(kind entity.SubscriptionKind, outcome string) {
	c.sends.With(prometheus.Labels{"kind": string(kind), "outcome": outcome}).Inc()
}

// ObserveDispatch implements service.DeliveryObserver.
func (c *Collectors) ObserveDispatch(dispatchType entity.DispatchType, result entity.DeliveryResult) {
	t := string(dispatchType)
	c.dispatches.With(prometheus.Labels{"type": t}).Inc()
	c.dispatchOutcomes.With(prometheus.Labels{"type": t, "outcome": service.SendOutcomeSent}).Add(float64(result.Sent))
	c.dispatchOutcomes.With(prometheus.Labels{"type": t, "outcome": "failed"}).Add(float64(result.Failed))
	c.dispatchOutcomes.With(prometheus.Labels{"type": t, "outcome": "pruned"}).Add(float64(result.Pruned))
}

// ObserveHTTP records one served request.
func (c *Collectors) ObserveHTTP(api, method string, code int, elapsed time.Duration) {
	c.httpDuration.With(prometheus.Labels{
		"api":    api,
		"method": method,
		"code":   strconv.Itoa(code),
	}).Observe(elapsed.Seconds())
}

// AsObserver exposes the collectors through the domain interface for fx.
func AsObserver(c *Collectors) service.DeliveryObserver {
	return c
}
