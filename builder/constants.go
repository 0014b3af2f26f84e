// Package builder defines shared constants used by graph builders, ensuring
// consistent defaults and validation across all topology constructors.
package builder

//-----------------------------------------------------------------------------
// Builder Method Name Constants
//   used to prefix errors with the constructor name for context.
//-----------------------------------------------------------------------------

const (
	// MethodPath is the canonical name for the Path constructor.
	MethodPath = "Path"
	// MethodCycle is the canonical name for the Cycle constructor.
	MethodCycle = "Cycle"
	// MethodStar is the canonical name for the Star constructor.
	MethodStar = "Star"
	// MethodComplete is the canonical name for the Complete constructor.
	MethodComplete = "Complete"
	// MethodRandomSparse is the canonical name for the RandomSparse constructor.
	MethodRandomSparse = "RandomSparse"
	// MethodEuclidean is the canonical name for the Euclidean constructor.
	MethodEuclidean = "Euclidean"
)

//-----------------------------------------------------------------------------
// Minimum Node Counts
//-----------------------------------------------------------------------------

// MinPathNodes is the smallest meaningful size for a simple path.
const MinPathNodes = 2

// MinCycleNodes is the smallest size for a ring without parallel edges.
const MinCycleNodes = 3

// MinStarNodes is one center plus at least one leaf.
const MinStarNodes = 2

// MinCompleteNodes allows K_1, the single-vertex boundary case.
const MinCompleteNodes = 1

//-----------------------------------------------------------------------------
// Defaults and Bounds
//-----------------------------------------------------------------------------

// DefaultEdgeWeight is assigned to each edge when no WeightFn is provided.
const DefaultEdgeWeight int64 = 1

// DefaultPlaneSize is the side of the square Euclidean points are drawn from.
const DefaultPlaneSize = 100.0

// MinProbability is the inclusive lower bound for RandomSparse's p.
const MinProbability = 0.0

// MaxProbability is the inclusive upper bound for RandomSparse's p.
const MaxProbability = 1.0
