// Package builder provides "functional-options"-style graph constructors for
// tests, benchmarks and the generate command. Every constructor fills an
// index-based *core.Graph created by BuildGraph.
//
// The package offers the following key components:
//
//   - Configuration primitives:
//     – BuilderOption:     a function that mutates builderConfig before use.
//     – builderConfig:     holds RNG, weight function and Euclidean plane size.
//   - Constructors:
//     – Complete:          K_n, the input the walkers are defined for.
//     – Euclidean:         complete metric graph over random points (ceil distances).
//     – EuclideanFrom:     the same over caller-supplied points.
//     – Path, Cycle, Star: sparse skeletons.
//     – RandomSparse:      Erdős–Rényi-like edges with probability p.
//   - Edge-weight distributions (WeightFn implementations):
//     – DefaultWeightFn:   constant weight DefaultEdgeWeight.
//     – ConstantWeightFn:  fixed user-provided value.
//     – UniformWeightFn:   uniform integers in [min,max].
//
// Guarantees:
//
//   - Same n, options, seed and constructor order yield identical graphs.
//   - Fast-fail on invalid option parameters via panics in option constructors.
//   - Sentinel runtime errors (ErrTooFewVertices, ErrInvalidProbability,
//     ErrNeedRandSource, ErrConstructFailed) wrapped with the constructor name.
package builder
