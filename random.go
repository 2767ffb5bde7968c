// Copyright 2016 Sonia Keys
// License MIT: https://opensource.org/licenses/MIT

// random.go
//
// Synthetic random graph generation for benchmarks and tests. Adapted
// from the Euclidean generator's "reject and retry" structure and its
// optional-RNG convention, traded here for a direct density target
// instead of a Euclidean affinity bias, since clique benchmarks care
// about size and density, not geometric locality.

package clique

import (
	"errors"
	"math/rand"
	"time"
)

// RandomGraph generates a random undirected simple graph with n
// vertices (external ids 0..n-1) and a target edge density in [0, 1]:
// each of the n(n-1)/2 candidate pairs is included independently with
// probability density. If r is nil, a generator is created and seeded
// from time.Now().UnixNano() for one-time use.
//
// RandomGraph returns an error if n < 0 or density is outside [0, 1].
func RandomGraph(n int, density float64, r *rand.Rand) ([][2]int, error) {
	if n < 0 {
		return nil, errors.New("clique: RandomGraph: n must be non-negative")
	}
	if density < 0 || density > 1 {
		return nil, errors.New("clique: RandomGraph: density must be in [0, 1]")
	}
	if r == nil {
		r = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	var edges [][2]int
	for u := 0; u < n; u++ {
		for v := u + 1; v < n; v++ {
			if r.Float64() < density {
				edges = append(edges, [2]int{u, v})
			}
		}
	}
	return edges, nil
}

// PlantedClique generates a random graph on n vertices at the given
// background density, then forces every pair within the first
// cliqueSize vertices to be adjacent, guaranteeing a clique of at least
// that size for exercising the dispatcher and both solvers against a
// known lower bound.
func PlantedClique(n, cliqueSize int, density float64, r *rand.Rand) ([][2]int, error) {
	edges, err := RandomGraph(n, density, r)
	if err != nil {
		return nil, err
	}
	if cliqueSize > n {
		return nil, errors.New("clique: PlantedClique: cliqueSize exceeds n")
	}
	present := make(map[[2]int]bool, len(edges))
	for _, e := range edges {
		present[e] = true
	}
	for u := 0; u < cliqueSize; u++ {
		for v := u + 1; v < cliqueSize; v++ {
			if !present[[2]int{u, v}] {
				edges = append(edges, [2]int{u, v})
			}
		}
	}
	return edges, nil
}
