package metrics

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "equipment_rental"

// Outcome labels for reservation attempts.
const (
	OutcomeAdmitted = "admitted"
	OutcomeRejected = "rejected"
	OutcomeUnknown  = "unknown_equipment"
)

type Recorder struct {
	reservations   *prometheus.CounterVec
	removals       prometheus.Counter
	ordersClosed   prometheus.Counter
	orderLines     prometheus.Histogram
	reapedRentals  prometheus.Counter
	catalogLoaded  prometheus.Counter
	catalogSkipped prometheus.Counter
	httpRequests   *prometheus.CounterVec
	httpDuration   *prometheus.HistogramVec
}

func NewRecorder() *Recorder {
	return NewRecorderWithRegisterer(prometheus.DefaultRegisterer)
}

// NewRecorderWithRegisterer lets tests use a private registry so that repeated
// construction does not collide on the default one.
func NewRecorderWithRegisterer(registerer prometheus.Registerer) *Recorder {
	if registerer == nil {
		registerer = prometheus.DefaultRegisterer
	}

	return &Recorder{
		reservations: registerCounterVec(registerer, prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "reservations_total",
			Help:      "Reservation attempts by outcome",
		}, []string{"outcome"}),
		removals: registerCounter(registerer, prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "reservations_removed_total",
			Help:      "Reservations removed from the basket",
		}),
		ordersClosed: registerCounter(registerer, prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "orders_closed_total",
			Help:      "Baskets finalized into orders",
		}),
		orderLines: registerHistogram(registerer, prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "order_lines",
			Help:      "Number of lines per closed order",
			Buckets:   []float64{0, 1, 2, 5, 10, 25, 50},
		}),
		reapedRentals: registerCounter(registerer, prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "rentals_reaped_total",
			Help:      "Expired rental holds removed during admission",
		}),
		catalogLoaded: registerCounter(registerer, prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "catalog_lines_loaded_total",
			Help:      "Catalog lines applied",
		}),
		catalogSkipped: registerCounter(registerer, prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "catalog_lines_skipped_total",
			Help:      "Malformed catalog lines skipped",
		}),
		httpRequests: registerCounterVec(registerer, prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "HTTP requests by route and status",
		}, []string{"method", "route", "status"}),
		httpDuration: registerHistogramVec(registerer, prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency by route",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"}),
	}
}

func (r *Recorder) Reservation(outcome string) {
	if r == nil {
		return
	}
	r.reservations.WithLabelValues(outcome).Inc()
}

func (r *Recorder) Removal() {
	if r == nil {
		return
	}
	r.removals.Inc()
}

func (r *Recorder) OrderClosed(lines int) {
	if r == nil {
		return
	}
	r.ordersClosed.Inc()
	r.orderLines.Observe(float64(lines))
}

func (r *Recorder) Reaped(n int) {
	if r == nil || n <= 0 {
		return
	}
	r.reapedRentals.Add(float64(n))
}

func (r *Recorder) CatalogLines(loaded, skipped int) {
	if r == nil {
		return
	}
	r.catalogLoaded.Add(float64(loaded))
	r.catalogSkipped.Add(float64(skipped))
}

func (r *Recorder) HTTPRequest(method, route, status string, seconds float64) {
	if r == nil {
		return
	}
	r.httpRequests.WithLabelValues(method, route, status).Inc()
	r.httpDuration.WithLabelValues(method, route).Observe(seconds)
}

func registerCounter(registerer prometheus.Registerer, opts prometheus.CounterOpts) prometheus.Counter {
	c := prometheus.NewCounter(opts)
	if err := registerer.Register(c); err != nil {
		var are prometheus.AlreadyRegisteredError
		if errors.As(err, &are) {
			return are.ExistingCollector.(prometheus.Counter)
		}
		panic(err)
	}
	return c
}

func registerCounterVec(registerer prometheus.Registerer, opts prometheus.CounterOpts, labels []string) *prometheus.CounterVec {
	c := prometheus.NewCounterVec(opts, labels)
	if err := registerer.Register(c); err != nil {
		var are prometheus.AlreadyRegisteredError
		if errors.As(err, &are) {
			return are.ExistingCollector.(*prometheus.CounterVec)
		}
		panic(err)
	}
	return c
}

func registerHistogram(registerer prometheus.Registerer, opts prometheus.HistogramOpts) prometheus.Histogram {
	h := prometheus.NewHistogram(opts)
	if err := registerer.Register(h); err != nil {
		var are prometheus.AlreadyRegisteredError
		if errors.As(err, &are) {
			return are.ExistingCollector.(prometheus.Histogram)
		}
		panic(err)
	}
	return h
}

func registerHistogramVec(registerer prometheus.Registerer, opts prometheus.HistogramOpts, labels []string) *prometheus.HistogramVec {
	h := prometheus.NewHistogramVec(opts, labels)
	if err := registerer.Register(h); err != nil {
		var are prometheus.AlreadyRegisteredError
		if errors.As(err, &are) {
			return are.ExistingCollector.(*prometheus.HistogramVec)
		}
		panic(err)
	}
	return h
}
