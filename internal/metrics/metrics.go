// Package metrics records route query and network load statistics in a
// private Prometheus registry and exports them in the textfile format read
// by node_exporter's textfile collector.
package metrics

import (
	"errors"
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/katalvlaran/citynet/dijkstra"
)

// Query outcomes, used as the "outcome" label.
const (
	OutcomeFound       = "found"
	OutcomeUnreachable = "unreachable"
	OutcomeInvalid     = "invalid"
)

// ErrNoFile indicates Export was called without a destination.
var ErrNoFile = errors.New("metrics: no textfile configured")

// Recorder owns a registry and the collectors registered in it.
// All methods are safe for concurrent use.
type Recorder struct {
	reg *prometheus.Registry

	queries      *prometheus.CounterVec
	duration     prometheus.Histogram
	visited      prometheus.Histogram
	distance     prometheus.Histogram
	cities       prometheus.Gauge
	roads        prometheus.Gauge
	loadFailures prometheus.Counter
}

// New registers every collector under namespace in a fresh registry.
func New(namespace string) *Recorder {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)

	return &Recorder{
		reg: reg,
		queries: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "route",
			Name:      "queries_total",
			Help:      "Route queries by outcome",
		}, []string{"outcome"}),
		duration: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "route",
			Name:      "duration_seconds",
			Help:      "Search time of completed route queries",
			Buckets:   prometheus.ExponentialBuckets(1e-6, 4, 12),
		}),
		visited: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "route",
			Name:      "visited_cities",
			Help:      "Cities finalized per completed route query",
			Buckets:   prometheus.ExponentialBuckets(1, 2, 14),
		}),
		distance: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "route",
			Name:      "distance_km",
			Help:      "Total distance of found routes",
			Buckets:   prometheus.ExponentialBuckets(10, 2, 12),
		}),
		cities: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "network",
			Name:      "cities",
			Help:      "Cities in the loaded network",
		}),
		roads: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "network",
			Name:      "roads",
			Help:      "Roads in the loaded network",
		}),
		loadFailures: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "network",
			Name:      "load_failures_total",
			Help:      "Path records that could not be applied",
		}),
	}
}

// Registry exposes the underlying registry as a Gatherer.
func (r *Recorder) Registry() prometheus.Gatherer { return r.reg }

// ObserveQuery records one ShortestPath call. A non-nil err counts as invalid.
func (r *Recorder) ObserveQuery(res *dijkstra.Result, err error) {
	if err != nil || res == nil {
		r.queries.WithLabelValues(OutcomeInvalid).Inc()
		return
	}
	r.duration.Observe(res.ElapsedSeconds())
	r.visited.Observe(float64(res.Visited))
	if !res.Found {
		r.queries.WithLabelValues(OutcomeUnreachable).Inc()
		return
	}
	r.queries.WithLabelValues(OutcomeFound).Inc()
	r.distance.Observe(float64(res.TotalDistance))
}

// SetNetwork records the size of the loaded network.
func (r *Recorder) SetNetwork(cities, roads int) {
	r.cities.Set(float64(cities))
	r.roads.Set(float64(roads))
}

// AddLoadFailures counts path records rejected while loading.
func (r *Recorder) AddLoadFailures(n int) {
	r.loadFailures.Add(float64(n))
}

// Export writes the registry to path atomically.
func (r *Recorder) Export(path string) error {
	if path == "" {
		return ErrNoFile
	}
	if err := prometheus.WriteToTextfile(path, r.reg); err != nil {
		return fmt.Errorf("metrics: export %s: %w", path, err)
	}

	return nil
}
