// Copyright 2014 Sonia Keys
// License MIT: http://opensource.org/licenses/MIT

// Package clique finds maximum cliques in undirected simple graphs.
//
// Two solvers are provided. Solve dispatches between them automatically
// based on graph size and density:
//
//   - the exact package implements Bron-Kerbosch with pivot selection, a
//     non-increasing-degree outer vertex order, and bitset-parallel set
//     operations. It returns a provably maximum clique.
//   - the ga package implements a population-based evolutionary search
//     over bitset-represented cliques: greedy construction, intersection
//     and union based crossover, targeted local search, and stagnation
//     restarts. It returns a high quality but not provably optimal
//     clique, suitable for graphs where exhaustive search is not
//     affordable.
//
// All solver state is represented with github.com/willf/bitset, a
// fixed-width bit vector, so that the set operations at the core of both
// solvers (intersection, difference, popcount) are word-parallel.
//
// Terminology
//
// A clique is a set of vertices that are pairwise adjacent. A maximal
// clique is one that cannot legally be extended by any other vertex. A
// maximum clique is a largest clique in the graph; its size is the
// clique number.
package clique
