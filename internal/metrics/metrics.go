// Package metrics exposes Prometheus counters for the dashboard
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	ClicksTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "taxidash_clicks_total",
		Help: "Total number of region selections handled",
	})
	InvalidSelectionsTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "taxidash_invalid_selections_total",
		Help: "Total selections that did not resolve to a region",
	})
	EmptyAggregatesTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "taxidash_empty_aggregates_total",
		Help: "Total selections of a region without recorded trips",
	})
	WebSocketConnections = prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "taxidash_websocket_connections",
		Help: "Open WebSocket connections",
	})
	RequestDurationMs = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "taxidash_request_duration_ms",
		Help:    "HTTP request duration in milliseconds",
		Buckets: []float64{1, 5, 10, 20, 50, 100, 200, 500, 1000},
	}, []string{"route", "status"})
)

func init() {
	prometheus.MustRegister(ClicksTotal)
	prometheus.MustRegister(InvalidSelectionsTotal)
	prometheus.MustRegister(EmptyAggregatesTotal)
	prometheus.MustRegister(WebSocketConnections)
	prometheus.MustRegister(RequestDurationMs)
}

// Handler serves the registered metrics on /metrics
func Handler() http.Handler { return promhttp.Handler() }

// Recorder counts interaction outcomes of the dashboard controller
type Recorder struct{}

func (Recorder) Click()            { ClicksTotal.Inc() }
func (Recorder) InvalidSelection() { InvalidSelectionsTotal.Inc() }
func (Recorder) EmptyAggregate()   { EmptyAggregatesTotal.Inc() }

// Middleware observes request durations labelled by chi route pattern
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)

		route := "unmatched"
		if rctx := chi.RouteContext(r.Context()); rctx != nil {
			if p := rctx.RoutePattern(); p != "" {
				route = p
			}
		}
		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}
		RequestDurationMs.WithLabelValues(route, strconv.Itoa(status)).
			Observe(float64(time.Since(start).Microseconds()) / 1000)
	})
}
