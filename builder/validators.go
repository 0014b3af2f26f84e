// Package builder provides validation helpers to enforce
// parameter contracts in Constructor factories.
package builder

import (
	"fmt"

	"github.com/katalvlaran/twicearound/core"
)

// validateMin ensures that got ≥ min, wrapping ErrTooFewVertices with the
// constructor name otherwise.
//
// Complexity: O(1) time and space.
func validateMin(method string, got, min int) error {
	if got < min {
		return fmt.Errorf("%s: n=%d < min=%d: %w", method, got, min, ErrTooFewVertices)
	}

	return nil
}

// validateProbability enforces p ∈ [MinProbability, MaxProbability].
//
// Complexity: O(1) time and space.
func validateProbability(method string, p float64) error {
	if p < MinProbability || p > MaxProbability {
		return fmt.Errorf("%s: p=%.6f not in [%.1f,%.1f]: %w", method, p, MinProbability, MaxProbability, ErrInvalidProbability)
	}

	return nil
}

// addEdge inserts u-v and tags a failure with the constructor name.
func addEdge(method string, g *core.Graph, u, v int, w int64) error {
	if err := g.AddEdge(u, v, w); err != nil {
		return fmt.Errorf("%s: AddEdge(%d-%d, w=%d): %v: %w", method, u, v, w, err, ErrConstructFailed)
	}

	return nil
}

// builderErrorf prefixes a formatted message with the constructor name.
// A %w verb in format keeps the wrapped sentinel visible to errors.Is.
func builderErrorf(method, format string, args ...interface{}) error {
	return fmt.Errorf("%s: "+format, append([]interface{}{method}, args...)...)
}
