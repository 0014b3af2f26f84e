// Package tsp_test covers the structural tour helpers and the Eulerian
// circuit of a doubled tree.
package tsp_test

import (
	"testing"

	"github.com/katalvlaran/twicearound/tsp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateTour(t *testing.T) {
	tests := []struct {
		name string
		tour []int
		n    int
		root int
		want error
	}{
		{name: "ok", tour: []int{0, 2, 1, 3, 0}, n: 4, root: 0},
		{name: "single", tour: []int{0, 0}, n: 1, root: 0},
		{name: "short", tour: []int{0, 1, 0}, n: 4, root: 0, want: tsp.ErrInvalidTour},
		{name: "open", tour: []int{0, 1, 2, 3, 1}, n: 4, root: 0, want: tsp.ErrInvalidTour},
		{name: "wrong root", tour: []int{1, 0, 2, 3, 1}, n: 4, root: 0, want: tsp.ErrInvalidTour},
		{name: "duplicate", tour: []int{0, 1, 1, 3, 0}, n: 4, root: 0, want: tsp.ErrInvalidTour},
		{name: "out of range", tour: []int{0, 1, 7, 3, 0}, n: 4, root: 0, want: tsp.ErrInvalidTour},
		{name: "root out of range", tour: []int{0, 1, 2, 3, 0}, n: 4, root: 5, want: tsp.ErrRootOutOfRange},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := tsp.ValidateTour(tc.tour, tc.n, tc.root)
			if tc.want == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

func TestMakeTourFromPermutation(t *testing.T) {
	tour, err := tsp.MakeTourFromPermutation([]int{2, 3, 0, 1}, 0)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2, 3, 0}, tour)

	_, err = tsp.MakeTourFromPermutation([]int{2, 2, 0, 1}, 0)
	assert.ErrorIs(t, err, tsp.ErrInvalidTour)

	_, err = tsp.MakeTourFromPermutation([]int{1, 0}, 3)
	assert.ErrorIs(t, err, tsp.ErrRootOutOfRange)
}

func TestShortcutEulerianToHamiltonian(t *testing.T) {
	tour, err := tsp.ShortcutEulerianToHamiltonian([]int{0, 1, 0, 2, 3, 2, 0}, 4, 0)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2, 3, 0}, tour)

	_, err = tsp.ShortcutEulerianToHamiltonian([]int{0, 1, 0}, 3, 0)
	assert.ErrorIs(t, err, tsp.ErrIncompleteCircuit)

	_, err = tsp.ShortcutEulerianToHamiltonian([]int{0, 4, 0}, 3, 0)
	assert.ErrorIs(t, err, tsp.ErrInvalidTour)
}

// TestEulerianCircuit_DoubledTree checks length 2(V−1)+1, closure, and that
// every tree edge is walked exactly twice.
func TestEulerianCircuit_DoubledTree(t *testing.T) {
	g := buildGraph(t, 6, [][3]int64{
		{0, 1, 1}, {1, 2, 1}, {1, 3, 1}, {0, 4, 1}, {4, 5, 1},
	})
	tree := mstOf(t, g).Tree

	circuit := tsp.EulerianCircuit(tree, 0)
	require.Len(t, circuit, 2*(6-1)+1)
	assert.Equal(t, 0, circuit[0])
	assert.Equal(t, 0, circuit[len(circuit)-1])
	assert.Equal(t, []int{0, 1, 2, 1, 3, 1, 0, 4, 5, 4, 0}, circuit)

	walked := map[[2]int]int{}
	for i := 0; i+1 < len(circuit); i++ {
		u, v := circuit[i], circuit[i+1]
		if u > v {
			u, v = v, u
		}
		walked[[2]int{u, v}]++
	}
	assert.Len(t, walked, 5)
	for e, k := range walked {
		assert.Equal(t, 2, k, "edge %v", e)
	}

	assert.Equal(t, []int{0}, tsp.EulerianCircuit(buildGraph(t, 1, nil), 0))
}

func TestTourCost(t *testing.T) {
	g := buildScenario(t)

	cost, err := tsp.TourCost(g, []int{0, 2, 1, 3, 0})
	require.NoError(t, err)
	assert.Equal(t, int64(3+5+6+4), cost)

	_, err = tsp.TourCost(g, []int{0})
	assert.ErrorIs(t, err, tsp.ErrInvalidTour)

	_, err = tsp.TourCost(nil, []int{0, 0})
	assert.ErrorIs(t, err, tsp.ErrInvalidGraph)

	_, err = tsp.TourCost(g, []int{0, 0, 0})
	assert.ErrorIs(t, err, tsp.ErrMissingEdge)
}
