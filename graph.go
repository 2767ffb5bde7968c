// Copyright 2014 Sonia Keys
// License MIT: http://opensource.org/licenses/MIT

// graph.go
//
// The bitset adjacency model: Graph is the immutable, word-parallel
// representation every solver in this module operates on.

package clique

import (
	"sort"

	"github.com/willf/bitset"
)

// NI is a node id, internal to a Graph. It is always in 0..n-1 and is
// used directly as a slice index.
type NI int

// A Graph is a simple undirected graph represented as n neighbor
// bitsets, one per internal vertex id. It is built once and is
// immutable thereafter; it is safe to share across goroutines.
//
// Graph also carries the bijection between caller-supplied external ids
// (arbitrary non-negative integers, as they arrive on an edge list) and
// the contiguous internal id space 0..n-1 that the solvers operate in.
type Graph struct {
	neighbors []*bitset.BitSet
	extID     []int // internal id -> external id, ascending when built by NewGraph
}

// NewGraph builds a Graph from an edge list of external vertex ids.
//
// All distinct endpoints are collected, sorted ascending, and assigned
// internal ids by position, so the mapping is reproducible regardless
// of edge order. Self-loops are ignored and multi-edges are coalesced.
func NewGraph(edges [][2]int) *Graph {
	seen := make(map[int]struct{})
	for _, e := range edges {
		seen[e[0]] = struct{}{}
		seen[e[1]] = struct{}{}
	}
	extID := make([]int, 0, len(seen))
	for id := range seen {
		extID = append(extID, id)
	}
	sort.Ints(extID)

	toInternal := make(map[int]int, len(extID))
	for i, id := range extID {
		toInternal[id] = i
	}

	n := len(extID)
	neighbors := make([]*bitset.BitSet, n)
	for i := range neighbors {
		neighbors[i] = bitset.New(uint(n))
	}
	for _, e := range edges {
		u := toInternal[e[0]]
		v := toInternal[e[1]]
		if u == v {
			continue // ignore self-loops
		}
		neighbors[u].Set(uint(v))
		neighbors[v].Set(uint(u))
	}
	return &Graph{neighbors: neighbors, extID: extID}
}

// N returns the number of vertices in g.
func (g *Graph) N() int {
	return len(g.neighbors)
}

// Neighbors returns the bitset of vertices adjacent to internal id v.
// The returned bitset is shared with g and must not be mutated.
func (g *Graph) Neighbors(v int) *bitset.BitSet {
	return g.neighbors[v]
}

// Degree returns the number of vertices adjacent to internal id v.
func (g *Graph) Degree(v int) int {
	return int(g.neighbors[v].Count())
}

// ExternalID maps an internal id back to the external id it was built
// from.
func (g *Graph) ExternalID(v int) int {
	return g.extID[v]
}

// Size returns the number of edges in g.
func (g *Graph) Size() int {
	m := 0
	for _, nb := range g.neighbors {
		m += int(nb.Count())
	}
	return m / 2
}

// Density returns 2|E| / (n(n-1)) for n >= 2, and 0 for n < 2.
func (g *Graph) Density() float64 {
	n := g.N()
	if n < 2 {
		return 0
	}
	return 2 * float64(g.Size()) / float64(n*(n-1))
}

// ToExternal maps a bitset of internal ids to a slice of external ids,
// in ascending internal id order (sorted by external id for a graph
// built by NewGraph; not for one returned by ReindexByDegree).
func (g *Graph) ToExternal(b *bitset.BitSet) []int {
	out := make([]int, 0, b.Count())
	for i, ok := b.NextSet(0); ok; i, ok = b.NextSet(i + 1) {
		out = append(out, g.extID[i])
	}
	return out
}

// ReindexByDegree returns a graph whose vertices are renumbered by
// non-increasing degree, ties broken by ascending original internal id,
// along with the permutation perm such that reindexed internal id i
// corresponds to original internal id perm[i].
//
// The exact solver uses this ordering so the outer loop explores
// high-degree vertices first, tightening the best-known bound early.
func (g *Graph) ReindexByDegree() (reindexed *Graph, perm []int) {
	n := g.N()
	perm = make([]int, n)
	for i := range perm {
		perm[i] = i
	}
	sort.SliceStable(perm, func(a, b int) bool {
		return g.Degree(perm[a]) > g.Degree(perm[b])
	})

	rank := make([]int, n) // rank[origID] = new id
	for newID, origID := range perm {
		rank[origID] = newID
	}

	neighbors := make([]*bitset.BitSet, n)
	for newID := range neighbors {
		neighbors[newID] = bitset.New(uint(n))
	}
	for origID := 0; origID < n; origID++ {
		newID := rank[origID]
		nb := g.neighbors[origID]
		for to, ok := nb.NextSet(0); ok; to, ok = nb.NextSet(to + 1) {
			neighbors[newID].Set(uint(rank[int(to)]))
		}
	}

	extID := make([]int, n)
	for newID, origID := range perm {
		extID[newID] = g.extID[origID]
	}
	return &Graph{neighbors: neighbors, extID: extID}, perm
}
