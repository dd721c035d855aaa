package plant

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Stage labels of StageDuration.
const (
	StagePoints = "points"
	StageGraph  = "graph"
	StageGrowth = "growth"
)

// Lookup results of PathLookups.
const (
	LookupFound       = "found"
	LookupUnreachable = "unreachable"
)

// Metrics are the Prometheus collectors of a Generator.
// A nil *Metrics records nothing.
type Metrics struct {
	// Segments counts emitted segments by depth.
	Segments *prometheus.CounterVec

	// PathLookups counts growth path queries by result.
	PathLookups *prometheus.CounterVec

	// Points is the size of the last point field, origin included.
	Points prometheus.Gauge

	// GraphEdges is the edge count of the last proximity graph.
	GraphEdges prometheus.Gauge

	// Reachable counts the points of the last graph reachable from the
	// origin, origin excluded.
	Reachable prometheus.Gauge

	// StageDuration measures each pipeline stage.
	StageDuration *prometheus.HistogramVec
}

// NewMetrics creates the collectors and registers them with reg.
// A nil reg leaves them unregistered.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)

	return &Metrics{
		Segments: f.NewCounterVec(
			prometheus.CounterOpts{
				Name: "sprout_segments_total",
				Help: "Total number of plant segments grown",
			},
			[]string{"depth"},
		),
		PathLookups: f.NewCounterVec(
			prometheus.CounterOpts{
				Name: "sprout_path_lookups_total",
				Help: "Total number of shortest-path queries issued by growth",
			},
			[]string{"result"},
		),
		Points: f.NewGauge(prometheus.GaugeOpts{
			Name: "sprout_points",
			Help: "Number of points in the last generated field",
		}),
		GraphEdges: f.NewGauge(prometheus.GaugeOpts{
			Name: "sprout_graph_edges",
			Help: "Number of edges in the last proximity graph",
		}),
		Reachable: f.NewGauge(prometheus.GaugeOpts{
			Name: "sprout_reachable_points",
			Help: "Number of points reachable from the origin in the last proximity graph",
		}),
		StageDuration: f.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "sprout_stage_duration_seconds",
				Help:    "Duration of pipeline stages in seconds",
				Buckets: []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 2.5, 5, 10},
			},
			[]string{"stage"},
		),
	}
}

func (m *Metrics) segment(depth int) {
	if m != nil {
		m.Segments.WithLabelValues(strconv.Itoa(depth)).Inc()
		m.PathLookups.WithLabelValues(LookupFound).Inc()
	}
}

func (m *Metrics) unreachable() {
	if m != nil {
		m.PathLookups.WithLabelValues(LookupUnreachable).Inc()
	}
}

func (m *Metrics) observe(stage string, d time.Duration) {
	if m != nil {
		m.StageDuration.WithLabelValues(stage).Observe(d.Seconds())
	}
}

func (m *Metrics) sizes(points, edges, reachable int) {
	if m != nil {
		m.Points.Set(float64(points))
		m.GraphEdges.Set(float64(edges))
		m.Reachable.Set(float64(reachable))
	}
}
