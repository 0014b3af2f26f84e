// SPDX-License-Identifier: MIT
// Package: twicearound/builder
//
// impl_euclidean.go - complete graph over random points in the plane.
//
// Contract:
//   • g.Order() ≥ MinCompleteNodes (else ErrTooFewVertices).
//   • cfg.rng must be non-nil (else ErrNeedRandSource).
//   • Points are drawn uniformly from [0, planeSize)², one per vertex in index order.
//   • w(i,j) = ⌈‖p_i − p_j‖⌉. cfg.weightFn is not consulted.
//
// Rounding up keeps the triangle inequality:
// ⌈d(a,c)⌉ ≤ ⌈d(a,b) + d(b,c)⌉ ≤ ⌈d(a,b)⌉ + ⌈d(b,c)⌉,
// so these graphs are metric and the preorder walk stays within 2·MST.
//
// Complexity: O(n²) time, O(n) extra space.

package builder

import (
	"math"
	"math/rand"

	"github.com/katalvlaran/twicearound/core"
)

// Point is a location in the plane.
type Point struct {
	X, Y float64
}

// Dist returns the Euclidean distance rounded up to an integer weight.
func (p Point) Dist(q Point) int64 {
	return int64(math.Ceil(math.Hypot(p.X-q.X, p.Y-q.Y)))
}

// RandomPoints draws n points uniformly from [0, size)².
// Returns nil when n < 1, rng is nil or size ≤ 0.
func RandomPoints(n int, size float64, rng *rand.Rand) []Point {
	if n < 1 || rng == nil || size <= 0 {
		return nil
	}
	pts := make([]Point, n)
	for i := range pts {
		pts[i] = Point{X: rng.Float64() * size, Y: rng.Float64() * size}
	}

	return pts
}

// Euclidean returns a Constructor that builds the complete metric graph over
// random points, emitting pairs in lexicographic (i,j), i<j order.
func Euclidean() Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		n := g.Order()
		if err := validateMin(MethodEuclidean, n, MinCompleteNodes); err != nil {
			return err
		}
		if cfg.rng == nil {
			return builderErrorf(MethodEuclidean, "rng is required: %w", ErrNeedRandSource)
		}

		return EuclideanFrom(RandomPoints(n, cfg.planeSize, cfg.rng))(g, cfg)
	}
}

// EuclideanFrom returns a Constructor over fixed points; len(pts) must equal g.Order().
func EuclideanFrom(pts []Point) Constructor {
	return func(g *core.Graph, _ builderConfig) error {
		n := g.Order()
		if len(pts) != n {
			return builderErrorf(MethodEuclidean, "%d points for %d vertices: %w", len(pts), n, ErrConstructFailed)
		}
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if err := addEdge(MethodEuclidean, g, i, j, pts[i].Dist(pts[j])); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
