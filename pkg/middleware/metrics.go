package middleware

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics agrupa os coletores HTTP expostos em /metrics
type Metrics struct {
	inFlight prometheus.Gauge
	requests *prometheus.CounterVec
	duration *prometheus.HistogramVec
}

// NewMetrics registra os coletores HTTP. Um registerer nil desabilita as métricas.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	if reg == nil {
		return nil
	}

	m := &Metrics{
		inFlight: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "castnavi",
			Subsystem: "http",
			Name:      "requests_in_flight",
			Help:      "Requisições HTTP em andamento.",
		}),
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "castnavi",
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total de requisições HTTP por rota, método e status.",
		}, []string{"route", "method", "code"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "castnavi",
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "Duração das requisições HTTP por rota.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"route", "method", "code"}),
	}

	reg.MustRegister(m.inFlight, m.requests, m.duration)

	return m
}

// MetricsMiddleware contabiliza as requisições em andamento
func (m *Metrics) MetricsMiddleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if m == nil {
			return next
		}
		return promhttp.InstrumentHandlerInFlight(m.inFlight, next)
	}
}

// Instrument mede contagem e duração com o padrão da rota como label,
// evitando cardinalidade por ID
func (m *Metrics) Instrument(route string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if m == nil {
			return next
		}

		labels := prometheus.Labels{"route": route}
		counter := m.requests.MustCurryWith(labels)
		duration := m.duration.MustCurryWith(labels)

		return promhttp.InstrumentHandlerDuration(duration,
			promhttp.InstrumentHandlerCounter(counter, next))
	}
}
