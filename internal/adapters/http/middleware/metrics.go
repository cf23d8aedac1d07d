package middleware

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	httpRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "horomi",
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	httpRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "horomi",
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "HTTP request latency in seconds",
			Buckets:   []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5},
		},
		[]string{"method", "path"},
	)

	httpRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "horomi",
			Subsystem: "http",
			Name:      "requests_in_flight",
			Help:      "Number of HTTP requests currently being processed",
		},
	)
)

// Business metrics
var (
	// OrdersTotal считает отправленные заказы по типу и дате.
	OrdersTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "horomi",
			Subsystem: "business",
			Name:      "orders_total",
			Help:      "Total number of submitted orders",
		},
		[]string{"meal_type", "order_date"},
	)

	// OrderAmount отслеживает суммы заказов в рублях.
	OrderAmount = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "horomi",
			Subsystem: "business",
			Name:      "order_amount_rub",
			Help:      "Order totals in rubles",
			Buckets:   prometheus.ExponentialBuckets(500, 2, 8),
		},
	)

	// PromoRegenerationsTotal считает админские замены промокода.
	PromoRegenerationsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: "horomi",
			Subsystem: "business",
			Name:      "promo_regenerations_total",
			Help:      "Total number of promo code regenerations",
		},
	)
)

// Metrics собирает Prometheus-метрики HTTP запросов.
func Metrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.URL.Path == "/metrics" {
			c.Next()
			return
		}

		start := time.Now()
		path := c.FullPath()
		if path == "" {
			path = "unknown"
		}
		method := c.Request.Method

		httpRequestsInFlight.Inc()
		defer httpRequestsInFlight.Dec()

		c.Next()

		status := strconv.Itoa(c.Writer.Status())
		httpRequestsTotal.WithLabelValues(method, path, status).Inc()
		httpRequestDuration.WithLabelValues(method, path).Observe(time.Since(start).Seconds())
	}
}

// RecordOrder записывает бизнес-метрику отправленного заказа.
func RecordOrder(mealType, orderDate string, amount int) {
	OrdersTotal.WithLabelValues(mealType, orderDate).Inc()
	OrderAmount.Observe(float64(amount))
}
