// SPDX-License-Identifier: MIT
//
// Package tsp - tour utilities shared by the walkers and the 2-opt polish.
//
// These helpers operate purely on tour structure (index sequences):
//   - ValidatePermutation: verify a permutation over {0..n-1}.
//   - MakeTourFromPermutation: build a closed tour from a permutation, rotated to root.
//   - ValidateTour: enforce Hamiltonian circuit invariants.
//   - ShortcutEulerianToHamiltonian: skip revisits in an Eulerian sequence.
//   - reverseArcInPlace: in-place segment reversal (2-opt core).
//
// No logging, no panics on user input. O(n) time for every helper.
package tsp

import "fmt"

// ValidatePermutation checks that perm is a permutation of {0..n-1}.
//
// Complexity: O(n) time, O(n) space.
func ValidatePermutation(perm []int, n int) error {
	if n <= 0 || len(perm) != n {
		return fmt.Errorf("ValidatePermutation: len=%d, n=%d: %w", len(perm), n, ErrInvalidTour)
	}
	seen := make([]bool, n)
	for i, v := range perm {
		if v < 0 || v >= n {
			return fmt.Errorf("ValidatePermutation: perm[%d]=%d out of range: %w", i, v, ErrInvalidTour)
		}
		if seen[v] {
			return fmt.Errorf("ValidatePermutation: perm[%d]=%d repeated: %w", i, v, ErrInvalidTour)
		}
		seen[v] = true
	}

	return nil
}

// MakeTourFromPermutation builds a closed tour from a vertex permutation.
// Steps:
//  1. Validate that perm is a permutation of {0..n-1}.
//  2. Rotate so that root comes first.
//  3. Return a fresh slice of length n+1 closed with root.
//
// Complexity: O(n) time, O(n) space.
func MakeTourFromPermutation(perm []int, root int) ([]int, error) {
	n := len(perm)
	if err := ValidatePermutation(perm, n); err != nil {
		return nil, err
	}
	if root < 0 || root >= n {
		return nil, fmt.Errorf("MakeTourFromPermutation: root=%d, n=%d: %w", root, n, ErrRootOutOfRange)
	}

	pivot := 0
	for pivot < n && perm[pivot] != root {
		pivot++
	}

	tour := make([]int, n+1)
	for i := 0; i < n; i++ {
		tour[i] = perm[(pivot+i)%n]
	}
	tour[n] = root

	return tour, nil
}

// ValidateTour enforces the circuit invariants:
//
//	len(tour) == n+1, tour[0] == tour[n] == root,
//	each vertex v ∈ [0..n-1] appears exactly once in positions [0..n-1].
//
// It checks shape only; edge existence is checked by TourCost.
//
// Complexity: O(n) time, O(n) space.
func ValidateTour(tour []int, n int, root int) error {
	if n <= 0 || len(tour) != n+1 {
		return fmt.Errorf("ValidateTour: len=%d, n=%d: %w", len(tour), n, ErrInvalidTour)
	}
	if root < 0 || root >= n {
		return fmt.Errorf("ValidateTour: root=%d, n=%d: %w", root, n, ErrRootOutOfRange)
	}
	if tour[0] != root || tour[n] != root {
		return fmt.Errorf("ValidateTour: endpoints %d..%d, want %d: %w", tour[0], tour[n], root, ErrInvalidTour)
	}

	return ValidatePermutation(tour[:n], n)
}

// ShortcutEulerianToHamiltonian converts an Eulerian vertex sequence (with
// revisits) into a Hamiltonian circuit by keeping only first occurrences and
// closing with root. With euler starting at root no rotation is needed.
//
// Errors:
//   - ErrRootOutOfRange    if root ∉ [0..n-1].
//   - ErrInvalidTour       on out-of-range entries.
//   - ErrIncompleteCircuit if some vertex never occurs.
//
// Complexity: O(len(euler) + n) time, O(n) space.
func ShortcutEulerianToHamiltonian(euler []int, n int, root int) ([]int, error) {
	if root < 0 || root >= n {
		return nil, fmt.Errorf("ShortcutEulerianToHamiltonian: root=%d, n=%d: %w", root, n, ErrRootOutOfRange)
	}

	visited := make([]bool, n)
	visited[root] = true
	tour := make([]int, 1, n+1)
	tour[0] = root
	for i, v := range euler {
		if v < 0 || v >= n {
			return nil, fmt.Errorf("ShortcutEulerianToHamiltonian: euler[%d]=%d: %w", i, v, ErrInvalidTour)
		}
		if !visited[v] {
			visited[v] = true
			tour = append(tour, v)
		}
	}
	if len(tour) != n {
		return nil, fmt.Errorf("ShortcutEulerianToHamiltonian: %d of %d vertices: %w", len(tour), n, ErrIncompleteCircuit)
	}

	return append(tour, root), nil
}

// reverseArcInPlace reverses the inclusive segment tour[i..k] in place,
// keeping both endpoints of the closed tour intact.
//
// Requires 1 ≤ i < k ≤ len(tour)−2.
//
// Complexity: O(k−i) time, O(1) space.
func reverseArcInPlace(tour []int, i, k int) {
	for i < k {
		tour[i], tour[k] = tour[k], tour[i]
		i++
		k--
	}
}
