// SPDX-License-Identifier: MIT
//
// Package metrics records one solver run as Prometheus metrics and writes
// them in the node-exporter textfile format.
package metrics

import (
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/katalvlaran/twicearound/core"
	"github.com/katalvlaran/twicearound/tsp"
)

// Namespace prefixes every metric name.
const Namespace = "twicearound"

// Recorder owns a private registry, so several recorders (one per test, say)
// never collide on the process-wide default registry.
type Recorder struct {
	reg *prometheus.Registry

	vertices   prometheus.Gauge
	edges      prometheus.Gauge
	mstWeight  prometheus.Gauge
	tourLength prometheus.Gauge

	scanned   prometheus.Counter
	pruned    prometheus.Counter
	fallbacks *prometheus.CounterVec
	detached  *prometheus.CounterVec
	twoOpt    prometheus.Counter

	solveSeconds prometheus.Histogram
}

// NewRecorder registers all metrics on a fresh registry.
func NewRecorder() *Recorder {
	reg := prometheus.NewRegistry()
	f := promauto.With(reg)

	return &Recorder{
		reg: reg,
		vertices: f.NewGauge(prometheus.GaugeOpts{
			Namespace: Namespace,
			Name:      "vertices",
			Help:      "Number of vertices in the input graph",
		}),
		edges: f.NewGauge(prometheus.GaugeOpts{
			Namespace: Namespace,
			Name:      "edges",
			Help:      "Number of undirected edges in the input graph",
		}),
		mstWeight: f.NewGauge(prometheus.GaugeOpts{
			Namespace: Namespace,
			Name:      "mst_weight",
			Help:      "Total weight of the minimum spanning tree",
		}),
		tourLength: f.NewGauge(prometheus.GaugeOpts{
			Namespace: Namespace,
			Name:      "tour_length",
			Help:      "Length of the reported circuit",
		}),
		scanned: f.NewCounter(prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      "catalog_scanned_total",
			Help:      "Edge catalog records inspected while building the tree",
		}),
		pruned: f.NewCounter(prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      "catalog_pruned_total",
			Help:      "Edge catalog records dropped because both ends were known",
		}),
		fallbacks: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      "walk_fallbacks_total",
			Help:      "Walk steps that used a graph edge instead of a tree edge",
		}, []string{"walk"}),
		detached: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      "walk_detached_total",
			Help:      "Walk steps whose enumeration vertex was not the circuit tail",
		}, []string{"walk"}),
		twoOpt: f.NewCounter(prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      "two_opt_moves_total",
			Help:      "Accepted 2-opt moves",
		}),
		solveSeconds: f.NewHistogram(prometheus.HistogramOpts{
			Namespace: Namespace,
			Name:      "solve_seconds",
			Help:      "Wall time of the solve pipeline",
			Buckets:   prometheus.ExponentialBuckets(0.0001, 4, 10),
		}),
	}
}

// Registry exposes the recorder's registry as a Gatherer.
func (r *Recorder) Registry() prometheus.Gatherer {
	return r.reg
}

// Observe records one run. walk labels the walk counters.
func (r *Recorder) Observe(g *core.Graph, walk string, res tsp.Result, elapsed time.Duration) {
	if g != nil {
		r.vertices.Set(float64(g.Order()))
		r.edges.Set(float64(g.Size()))
	}
	r.mstWeight.Set(float64(res.MSTWeight))
	r.tourLength.Set(float64(res.Cost))

	r.scanned.Add(float64(res.MSTStats.Scanned))
	r.pruned.Add(float64(res.MSTStats.Pruned))
	r.fallbacks.WithLabelValues(walk).Add(float64(res.Stats.Fallbacks))
	r.detached.WithLabelValues(walk).Add(float64(res.Stats.Detached))
	r.twoOpt.Add(float64(res.Stats.TwoOptMoves))

	r.solveSeconds.Observe(elapsed.Seconds())
}

// WriteTextfile writes every metric to path in the text exposition format.
// The file is written to a temporary name and renamed into place.
func (r *Recorder) WriteTextfile(path string) error {
	if err := prometheus.WriteToTextfile(path, r.reg); err != nil {
		return fmt.Errorf("write metrics to %s: %w", path, err)
	}

	return nil
}
