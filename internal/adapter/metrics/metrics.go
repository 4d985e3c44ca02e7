package metrics

import (
	"strconv"
	"time"

	"github.com/MikeRez0/sharpdata/internal/core/domain"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
)

type Recorder struct {
	pushItems     *prometheus.CounterVec
	syncOrders    *prometheus.CounterVec
	notifications *prometheus.CounterVec

	httpRequestsTotal   *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec
}

func NewRecorder(reg prometheus.Registerer) *Recorder {
	r := &Recorder{
		pushItems: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "bundle_push_items_total",
				Help: "Line items pushed to the fulfillment API by outcome",
			},
			[]string{"outcome"},
		),
		syncOrders: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "bundle_sync_orders_total",
				Help: "Orders reconciled with the fulfillment API by outcome",
			},
			[]string{"outcome"},
		),
		notifications: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "bundle_notifications_total",
				Help: "Completion notifications by result",
			},
			[]string{"result"},
		),
		httpRequestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "http_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"method", "endpoint", "status"},
		),
		httpRequestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "http_request_duration_seconds",
				Help:    "HTTP request duration in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "endpoint"},
		),
	}

	reg.MustRegister(r.pushItems, r.syncOrders, r.notifications, r.httpRequestsTotal, r.httpRequestDuration)
	return r
}

func (r *Recorder) ItemPushed(outcome string) {
	r.pushItems.WithLabelValues(outcome).Inc()
}

func (r *Recorder) OrderSynced(outcome domain.SyncOutcome) {
	r.syncOrders.WithLabelValues(string(outcome)).Inc()
}

func (r *Recorder) NotificationSent(result string) {
	r.notifications.WithLabelValues(result).Inc()
}

func (r *Recorder) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.FullPath()
		if path == "" {
			path = c.Request.URL.Path
		}

		c.Next()

		status := strconv.Itoa(c.Writer.Status())
		r.httpRequestsTotal.WithLabelValues(c.Request.Method, path, status).Inc()
		r.httpRequestDuration.WithLabelValues(c.Request.Method, path).Observe(time.Since(start).Seconds())
	}
}
