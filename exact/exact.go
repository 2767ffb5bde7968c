// Copyright 2014 Sonia Keys
// License MIT: http://opensource.org/licenses/MIT

// Package exact implements the Bron-Kerbosch algorithm with pivoting,
// adapted from maximal-clique enumeration to maximum-clique search by
// adding a size bound that prunes any branch which cannot beat the
// best clique found so far.
//
// The algorithm and pruning rule are grounded on the graph package's
// BronKerbosch2/3 methods (pivot selection from P union X, and a
// non-increasing-degree outer vertex order standing in for full
// degeneracy ordering), generalized here to track and return a single
// best bitset instead of emitting every maximal clique.
package exact

import (
	"github.com/willf/bitset"

	"github.com/maxclique/clique"
)

// Solve returns a maximum clique of g, in g's internal id space.
//
// Solve is deterministic: given the same graph it returns a clique of
// the same size, with ties among same-size cliques broken by the
// algorithm's pivot rule and ascending-id branch order.
func Solve(g *clique.Graph) *bitset.BitSet {
	n := g.N()
	if n == 0 {
		return bitset.New(0)
	}

	// Reindex by non-increasing degree so the outer loop (and the
	// pivot rule, which favors high-degree vertices) explores the
	// densest part of the graph first, tightening the bound early.
	// Since the reindexed graph's ids are already sorted by descending
	// degree, iterating a candidate set in ascending id order visits
	// high-degree vertices first at every recursion depth, not just the
	// outermost one.
	rg, perm := g.ReindexByDegree()

	s := &searcher{g: rg, n: n, best: bitset.New(uint(n))}
	R := bitset.New(uint(n))
	P := bitset.New(uint(n)).Complement()
	X := bitset.New(uint(n))
	s.search(R, P, X)

	// Map the winning bitset back from the degree-reindexed space to
	// g's original internal id space.
	out := bitset.New(uint(n))
	for i, ok := s.best.NextSet(0); ok; i, ok = s.best.NextSet(i + 1) {
		out.Set(uint(perm[i]))
	}
	return out
}

type searcher struct {
	g    *clique.Graph
	n    int
	best *bitset.BitSet
}

// search implements search(R, P, X, B): a bound check, a leaf check,
// pivot selection, and recursion over P \ N(pivot) in ascending id
// order, with a per-child bound check before recursing.
func (s *searcher) search(R, P, X *bitset.BitSet) {
	if R.Count()+P.Count() <= s.best.Count() {
		return // (a) bound: this branch cannot beat the best clique found
	}
	if P.None() {
		if X.None() && R.Count() > s.best.Count() {
			s.best = R.Clone()
		}
		return
	}

	pivot := s.choosePivot(P, X)
	branch := P.Difference(s.g.Neighbors(int(pivot)))

	for v, ok := branch.NextSet(0); ok; v, ok = branch.NextSet(v + 1) {
		if R.Count()+1+P.Count() <= s.best.Count() {
			// even the best case (v plus everything left in P) cannot
			// beat the best known clique; stop exploring this pivot's
			// remaining children, same effect as moving each to X.
			break
		}
		nb := s.g.Neighbors(int(v))
		newP := P.Intersection(nb)
		if R.Count()+1+newP.Count() > s.best.Count() {
			r2 := R.Clone()
			r2.Set(v)
			newX := X.Intersection(nb)
			s.search(r2, newP, newX)
		}
		P.SetTo(v, false)
		X.Set(v)
	}
}

// choosePivot returns the vertex in P union X that maximizes
// |N(p) intersect P|, breaking ties by smallest id. Candidates are
// visited in ascending id order over the merged P union X so that the
// first-seen maximum is always the smallest id among ties, regardless
// of whether the tied vertices fall in P or in X.
func (s *searcher) choosePivot(P, X *bitset.BitSet) uint {
	candidates := P.Union(X)
	var best uint
	bestCount := -1
	for u, ok := candidates.NextSet(0); ok; u, ok = candidates.NextSet(u + 1) {
		if c := int(s.g.Neighbors(int(u)).IntersectionCardinality(P)); c > bestCount {
			bestCount = c
			best = u
		}
	}
	return best
}
