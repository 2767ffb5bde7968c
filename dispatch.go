// Copyright 2014 Sonia Keys
// License MIT: http://opensource.org/licenses/MIT

// dispatch.go
//
// The dispatcher: picks the exact solver or the metaheuristic based on
// graph size and density.

package clique

import (
	"github.com/maxclique/clique/exact"
	"github.com/maxclique/clique/ga"
)

// useExact reports whether g is small or sparse enough for exhaustive
// search to be affordable. The thresholds are policy, not correctness:
// callers that want a different tradeoff should call SolveExact or
// SolveHeuristic directly.
func useExact(g *Graph) bool {
	n := g.N()
	switch {
	case n <= 50:
		return true
	case n <= 100:
		return g.Density() <= 0.9
	case n <= 200:
		return g.Density() <= 0.8
	case n <= 500:
		return g.Density() <= 0.3
	default:
		return false
	}
}

// Solve builds a graph from edges (external vertex ids) and returns a
// clique, dispatching between the exact and heuristic solvers by size
// and density: the clique is maximum when the exact solver is chosen,
// and the best one the evolutionary search found otherwise. The
// returned ids are external.
func Solve(edges [][2]int) []int {
	g := NewGraph(edges)
	if useExact(g) {
		return g.ToExternal(exact.Solve(g))
	}
	return g.ToExternal(ga.Solve(g, ga.DefaultConfig()))
}

// SolveExact always uses the Bron-Kerbosch exact solver, regardless of
// size or density.
func SolveExact(edges [][2]int) []int {
	g := NewGraph(edges)
	return g.ToExternal(exact.Solve(g))
}

// SolveHeuristic always uses the evolutionary solver, with cfg
// overriding the default population size, generation budget, local
// improvement iterations, and stagnation tolerance.
func SolveHeuristic(edges [][2]int, cfg ga.Config) []int {
	g := NewGraph(edges)
	return g.ToExternal(ga.Solve(g, cfg))
}
