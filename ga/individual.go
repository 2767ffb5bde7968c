// Copyright 2014 Sonia Keys
// License MIT: http://opensource.org/licenses/MIT

// Package ga implements a population-based evolutionary search for a
// large clique: greedy construction, intersection/union based
// crossover, targeted local search, and stagnation-triggered restarts.
// It does not prove optimality; for that, see the exact package.
package ga

import (
	"math/rand"
	"sort"

	"github.com/willf/bitset"

	"github.com/maxclique/clique"
)

// Individual represents one candidate clique K together with its
// Possible-Additions set PA: the vertices adjacent to every member of
// K, i.e. the legal single-vertex extensions of K.
//
// An Individual references its graph by shared pointer, never by
// ownership; cloning duplicates only K and PA.
type Individual struct {
	g  *clique.Graph
	K  *bitset.BitSet
	PA *bitset.BitSet
}

// New seeds an individual with a single vertex s: K = {s}, PA = N[s].
func New(g *clique.Graph, s int) *Individual {
	n := uint(g.N())
	K := bitset.New(n)
	K.Set(uint(s))
	PA := g.Neighbors(s).Clone()
	return &Individual{g: g, K: K, PA: PA}
}

// Clone returns a deep copy of ind's K and PA, sharing the same graph.
func (ind *Individual) Clone() *Individual {
	return &Individual{g: ind.g, K: ind.K.Clone(), PA: ind.PA.Clone()}
}

// Len returns |K|.
func (ind *Individual) Len() int {
	return int(ind.K.Count())
}

// Add extends K by v. The caller must ensure v is in PA (or already in
// K, in which case Add is a no-op); Add does not verify legality.
func (ind *Individual) Add(v int) {
	if ind.K.Test(uint(v)) {
		return
	}
	ind.K.Set(uint(v))
	ind.PA.InPlaceIntersection(ind.g.Neighbors(v))
	ind.PA.SetTo(uint(v), false)
}

// Remove shrinks K by v and recomputes PA from scratch against the
// remaining members of K. This is deliberately not an incremental
// update: reinstating v's neighborhood into PA would resurrect
// vertices excluded by some other, earlier removed member of K.
func (ind *Individual) Remove(v int) {
	if !ind.K.Test(uint(v)) {
		return
	}
	ind.K.SetTo(uint(v), false)

	n := uint(ind.g.N())
	if ind.K.None() {
		ind.PA = bitset.New(n).Complement()
		return
	}
	PA := bitset.New(n).Complement()
	for u, ok := ind.K.NextSet(0); ok; u, ok = ind.K.NextSet(u + 1) {
		PA.InPlaceIntersection(ind.g.Neighbors(int(u)))
	}
	PA.InPlaceDifference(ind.K)
	ind.PA = PA
}

// GreedyExpand repeatedly adds the PA vertex of highest degree within
// the snapshot of PA taken at the start (ties broken by ascending id),
// skipping any that crossover or an earlier add already consumed, until
// PA is exhausted. The result is a maximal clique containing the
// original K.
func (ind *Individual) GreedyExpand() {
	snapshot := ind.PA.Clone()
	order := sortedByDegreeDesc(ind.g, snapshot)
	for _, v := range order {
		if ind.PA.Test(uint(v)) {
			ind.Add(v)
		}
	}
}

// LocalImprovement explores the Hamming-distance-2 neighborhood of K:
// iters times, it removes two distinct random members of a clone, runs
// GreedyExpand, and keeps the clone's K if it strictly improved on the
// best seen so far. If |K| <= 1 this is a no-op.
func (ind *Individual) LocalImprovement(iters int, rng *rand.Rand) {
	if ind.Len() <= 1 {
		return
	}
	best := ind
	for i := 0; i < iters; i++ {
		cand := best.Clone()
		a, b := pickTwo(cand.K, rng)
		cand.Remove(a)
		cand.Remove(b)
		cand.GreedyExpand()
		if cand.Len() > best.Len() {
			best = cand
		}
	}
	ind.K = best.K
	ind.PA = best.PA
}

// pickTwo returns two distinct members of set, chosen uniformly at
// random without replacement.
func pickTwo(set *bitset.BitSet, rng *rand.Rand) (int, int) {
	members := make([]int, 0, set.Count())
	for i, ok := set.NextSet(0); ok; i, ok = set.NextSet(i + 1) {
		members = append(members, int(i))
	}
	rng.Shuffle(len(members), func(i, j int) {
		members[i], members[j] = members[j], members[i]
	})
	return members[0], members[1]
}

// sortedByDegreeDesc returns the members of set sorted by descending
// degree within set (not the whole graph), ties broken by ascending id.
func sortedByDegreeDesc(g *clique.Graph, set *bitset.BitSet) []int {
	members := make([]int, 0, set.Count())
	for i, ok := set.NextSet(0); ok; i, ok = set.NextSet(i + 1) {
		members = append(members, int(i))
	}
	degree := make(map[int]int, len(members))
	for _, v := range members {
		degree[v] = int(g.Neighbors(v).IntersectionCardinality(set))
	}
	sort.Slice(members, func(i, j int) bool {
		if degree[members[i]] != degree[members[j]] {
			return degree[members[i]] > degree[members[j]]
		}
		return members[i] < members[j]
	})
	return members
}
