// Package metrics - метрики Prometheus для HTTP слоя и хранилища.
package metrics

import (
	"database/sql"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/Popolzen/wishlists/internal/repository"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "wishlists"

type Metrics struct {
	RequestsTotal    *prometheus.CounterVec
	RequestDuration  *prometheus.HistogramVec
	RequestsInFlight prometheus.Gauge
	// RepositoryErrors - ошибки хранилища по виду (not_found, conflict, ...)
	RepositoryErrors *prometheus.CounterVec

	registry *prometheus.Registry
}

// New регистрирует метрики в собственном реестре вместе
// со стандартными метриками процесса и рантайма Go
func New() *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	factory := promauto.With(reg)

	return &Metrics{
		RequestsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "http_requests_total",
				Help:      "Total number of HTTP requests",
			},
			[]string{"method", "route", "status"},
		),
		RequestDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "http_request_duration_seconds",
				Help:      "HTTP request duration in seconds",
				Buckets:   []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5},
			},
			[]string{"method", "route"},
		),
		RequestsInFlight: factory.NewGauge(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "http_requests_in_flight",
				Help:      "Number of HTTP requests being served",
			},
		),
		RepositoryErrors: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "repository_errors_total",
				Help:      "Total number of repository errors by kind",
			},
			[]string{"kind"},
		),
		registry: reg,
	}
}

// WatchDB добавляет статистику пула *sql.DB
func (m *Metrics) WatchDB(db *sql.DB) {
	m.registry.MustRegister(collectors.NewDBStatsCollector(db, namespace))
}

// Middleware считает запросы по шаблону маршрута, а не по URL,
// чтобы идентификаторы не раздували число серий
func (m *Metrics) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		m.RequestsInFlight.Inc()
		defer m.RequestsInFlight.Dec()

		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		m.RequestsTotal.WithLabelValues(c.Request.Method, route, strconv.Itoa(c.Writer.Status())).Inc()
		m.RequestDuration.WithLabelValues(c.Request.Method, route).Observe(time.Since(start).Seconds())
	}
}

// ObserveRepositoryError учитывает ошибку хранилища по её виду
func (m *Metrics) ObserveRepositoryError(err error) {
	if err == nil {
		return
	}
	m.RepositoryErrors.WithLabelValues(KindLabel(err)).Inc()
}

// KindLabel - имя вида ошибки для метки
func KindLabel(err error) string {
	switch kind := repository.KindOf(err); {
	case errors.Is(kind, repository.ErrNotFound):
		return "not_found"
	case errors.Is(kind, repository.ErrConflict):
		return "conflict"
	case errors.Is(kind, repository.ErrUnavailable):
		return "unavailable"
	default:
		return "internal"
	}
}

// Handler отдаёт метрики в формате Prometheus
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}
