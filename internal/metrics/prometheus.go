package metrics

import "github.com/prometheus/client_golang/prometheus"

type Prometheus struct {
	Predictions *prometheus.CounterVec
	Latency     prometheus.Histogram
}

func NewPrometheusMetrics() Prometheus {
	return Prometheus{
		Predictions: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "price",
				Name:      "predictions",
			}, []string{"outcome"}),
		Latency: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: "price",
				Name:      "latency_seconds",
			}),
	}
}
