package middleware

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// metrics: HTTP-метрики panel-service.
type metrics struct {
	requests *prometheus.CounterVec
	duration *prometheus.HistogramVec
}

// Metrics считает запросы и их длительность с метками method, route, status.
// route: шаблон chi ("/api/news/{id}"), чтобы id не раздували кардинальность.
// Метрики регистрируются в reg; nil означает prometheus.DefaultRegisterer.
func Metrics(reg prometheus.Registerer) Middleware {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}

	f := promauto.With(reg)
	m := &metrics{
		requests: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: "panel",
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total number of HTTP requests.",
		}, []string{"method", "route", "status"}),
		duration: f.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "panel",
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "HTTP request latency.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route", "status"}),
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			sw := newStatusWriter(w)
			start := time.Now()
			next.ServeHTTP(sw, r)

			labels := prometheus.Labels{
				"method": r.Method,
				"route":  routePattern(r),
				"status": strconv.Itoa(sw.code()),
			}
			m.requests.With(labels).Inc()
			m.duration.With(labels).Observe(time.Since(start).Seconds())
		})
	}
}

func routePattern(r *http.Request) string {
	if rc := chi.RouteContext(r.Context()); rc != nil {
		if p := rc.RoutePattern(); p != "" {
			return p
		}
	}
	return "unmatched"
}
