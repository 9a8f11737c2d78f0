package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "gudlft"

// BookingRecorder receives booking attempt results from the usecase layer.
type BookingRecorder interface {
	RecordOutcome(reason string, requested int)
	RecordPersistFailure()
}

// Registry owns every collector exported on /metrics.
type Registry struct {
	registry        *prometheus.Registry
	bookingOutcomes *prometheus.CounterVec
	placesBooked    prometheus.Counter
	requestedPlaces prometheus.Histogram
	persistFailures prometheus.Counter
}

func NewRegistry() *Registry {
	reg := prometheus.NewRegistry()
	r := &Registry{
		registry: reg,
		bookingOutcomes: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "booking",
			Name:      "outcomes_total",
			Help:      "Booking attempts by outcome reason.",
		}, []string{"reason"}),
		placesBooked: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "booking",
			Name:      "places_booked_total",
			Help:      "Places debited by successful bookings.",
		}),
		requestedPlaces: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "booking",
			Name:      "requested_places",
			Help:      "Places requested per booking attempt.",
			Buckets:   []float64{1, 2, 4, 8, 12, 24},
		}),
		persistFailures: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "store",
			Name:      "persist_failures_total",
			Help:      "Bookings rolled back because the record files could not be written.",
		}),
	}

	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		r.bookingOutcomes,
		r.placesBooked,
		r.requestedPlaces,
		r.persistFailures,
	)
	return r
}

func (r *Registry) RecordOutcome(reason string, requested int) {
	r.bookingOutcomes.WithLabelValues(reason).Inc()
	r.requestedPlaces.Observe(float64(requested))
	if reason == "Success" && requested > 0 {
		r.placesBooked.Add(float64(requested))
	}
}

func (r *Registry) RecordPersistFailure() {
	r.persistFailures.Inc()
}

func (r *Registry) Handler() http.Handler {
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{Registry: r.registry})
}

// Gatherer exposes the underlying registry for tests.
func (r *Registry) Gatherer() prometheus.Gatherer {
	return r.registry
}

type noop struct{}

// Noop discards every measurement.
func Noop() BookingRecorder { return noop{} }

func (noop) RecordOutcome(string, int) {}
func (noop) RecordPersistFailure()     {}
