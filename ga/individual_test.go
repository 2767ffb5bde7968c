// Copyright 2014 Sonia Keys
// License MIT: http://opensource.org/licenses/MIT

package ga_test

import (
	"math/rand"
	"testing"

	"github.com/maxclique/clique"
	"github.com/maxclique/clique/ga"
)

func k5() *clique.Graph {
	var edges [][2]int
	for i := 0; i < 5; i++ {
		for j := i + 1; j < 5; j++ {
			edges = append(edges, [2]int{i, j})
		}
	}
	return clique.NewGraph(edges)
}

func TestNewSeedsSingleVertex(t *testing.T) {
	g := k5()
	ind := ga.New(g, 2)
	if ind.Len() != 1 {
		t.Fatalf("Len() = %d, want 1", ind.Len())
	}
	if !ind.PA.Equal(g.Neighbors(2)) {
		t.Fatalf("PA after New should equal N(s)")
	}
}

func TestAddGrowsCliqueAndShrinksPA(t *testing.T) {
	g := k5()
	ind := ga.New(g, 0)
	ind.Add(1)
	if ind.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", ind.Len())
	}
	if ind.PA.Test(1) {
		t.Fatal("PA must not contain a vertex already in K")
	}
	assertInvariant(t, g, ind)
}

func TestRemoveRecomputesPAFromScratch(t *testing.T) {
	g := k5()
	ind := ga.New(g, 0)
	ind.Add(1)
	ind.Add(2)
	ind.Remove(1)
	if ind.Len() != 2 {
		t.Fatalf("Len() = %d, want 2 after remove", ind.Len())
	}
	assertInvariant(t, g, ind)
}

func TestGreedyExpandReachesMaximal(t *testing.T) {
	g := k5()
	ind := ga.New(g, 0)
	ind.GreedyExpand()
	if ind.Len() != 5 {
		t.Fatalf("Len() = %d, want 5 (K5 is one maximal clique)", ind.Len())
	}
	assertInvariant(t, g, ind)
}

func TestLocalImprovementNeverShrinksBelowStart(t *testing.T) {
	g := k5()
	ind := ga.New(g, 0)
	ind.GreedyExpand()
	start := ind.Len()
	ind.LocalImprovement(10, rand.New(rand.NewSource(1)))
	if ind.Len() < start {
		t.Fatalf("LocalImprovement shrank the clique: %d -> %d", start, ind.Len())
	}
	assertInvariant(t, g, ind)
}

// assertInvariant brute-force recomputes PA from K and g and compares
// it against ind.PA.
func assertInvariant(t *testing.T, g *clique.Graph, ind *ga.Individual) {
	t.Helper()
	var members []int
	for i, ok := ind.K.NextSet(0); ok; i, ok = ind.K.NextSet(i + 1) {
		members = append(members, int(i))
	}
	for i := 0; i < len(members); i++ {
		for j := i + 1; j < len(members); j++ {
			if !g.Neighbors(members[i]).Test(uint(members[j])) {
				t.Fatalf("K is not a clique: %d and %d not adjacent", members[i], members[j])
			}
		}
	}
	for v := 0; v < g.N(); v++ {
		inK := ind.K.Test(uint(v))
		inPA := ind.PA.Test(uint(v))
		if inK && inPA {
			t.Fatalf("vertex %d is in both K and PA", v)
		}
		if inK {
			continue
		}
		wantPA := true
		for _, u := range members {
			if !g.Neighbors(u).Test(uint(v)) {
				wantPA = false
				break
			}
		}
		if wantPA != inPA {
			t.Fatalf("PA(%d) = %v, want %v", v, inPA, wantPA)
		}
	}
}
