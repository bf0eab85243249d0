// Package metrics exposes Prometheus instruments for the storefront API.
package metrics

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/fx"
)

// Metrics holds the application-level instruments scraped at /metrics.
type Metrics struct {
	requests       *prometheus.CounterVec
	duration       *prometheus.HistogramVec
	whatsappClicks *prometheus.CounterVec
	uploads        prometheus.Counter
}

func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "storefront_http_requests_total",
			Help: "HTTP requests by method, route and status code.",
		}, []string{"method", "route", "status"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "storefront_http_request_duration_seconds",
			Help:    "HTTP request latency by route.",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "route"}),
		whatsappClicks: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "storefront_whatsapp_clicks_total",
			Help: "Accepted WhatsApp click events by source.",
		}, []string{"source"}),
		uploads: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "storefront_image_uploads_total",
			Help: "Successful product image uploads.",
		}),
	}
	reg.MustRegister(m.requests, m.duration, m.whatsappClicks, m.uploads)
	return m
}

// RecordWhatsAppClick counts an accepted click event.
func (m *Metrics) RecordWhatsAppClick(source string) {
	if m == nil {
		return
	}
	m.whatsappClicks.WithLabelValues(source).Inc()
}

// RecordImageUpload counts a stored product image.
func (m *Metrics) RecordImageUpload() {
	if m == nil {
		return
	}
	m.uploads.Inc()
}

// GinMiddleware records per-request counters and latency. Routes are labeled
// by the registered path template to keep cardinality bounded.
func GinMiddleware(m *Metrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		if m == nil {
			return
		}

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		m.requests.WithLabelValues(c.Request.Method, route, strconv.Itoa(c.Writer.Status())).Inc()
		m.duration.WithLabelValues(c.Request.Method, route).Observe(time.Since(start).Seconds())
	}
}

var Module = fx.Module("metrics",
	fx.Provide(func() *prometheus.Registry {
		return prometheus.NewRegistry()
	}),
	fx.Provide(func(reg *prometheus.Registry) *Metrics {
		return New(reg)
	}),
)
