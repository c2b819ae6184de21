package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var Observer = &Metrics{
	mutex:      new(sync.RWMutex),
	prometheus: NewPrometheusMetrics(),
}

func init() {
	prometheus.MustRegister(Observer.prometheus.Predictions)
	prometheus.MustRegister(Observer.prometheus.Latency)
}

type Metrics struct {
	mutex      *sync.RWMutex
	prometheus Prometheus
}

func (m *Metrics) Increment(labels ...string) {
	m.prometheus.Predictions.WithLabelValues(labels...).Inc()
}

func (m *Metrics) Observe(seconds float64) {
	m.prometheus.Latency.Observe(seconds)
}
