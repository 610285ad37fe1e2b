// Package metrics собирает Prometheus метрики HTTP API:
// itemdesk_http_requests_total, itemdesk_http_request_duration_seconds.
package metrics

import (
	"strconv"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type Metrics struct {
	requestsTotal   *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
}

// New регистрирует метрики в reg.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		requestsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "itemdesk_http_requests_total",
				Help: "Общее количество HTTP-запросов",
			},
			[]string{"method", "path", "status"},
		),
		requestDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "itemdesk_http_request_duration_seconds",
				Help:    "Длительность HTTP-запросов в секундах",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "path"},
		),
	}
}

// Middleware пишет метрики по шаблону пути операции, а не по фактическому
// URL: /api/items/{id}, а не /api/items/42.
func (m *Metrics) Middleware() func(huma.Context, func(huma.Context)) {
	return func(ctx huma.Context, next func(huma.Context)) {
		start := time.Now()

		next(ctx)

		path := ctx.URL().Path
		if op := ctx.Operation(); op != nil {
			path = op.Path
		}
		status := ctx.Status()
		if status == 0 {
			status = 200
		}

		m.requestsTotal.WithLabelValues(ctx.Method(), path, strconv.Itoa(status)).Inc()
		m.requestDuration.WithLabelValues(ctx.Method(), path).Observe(time.Since(start).Seconds())
	}
}
