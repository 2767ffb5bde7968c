// Copyright 2014 Sonia Keys
// License MIT: http://opensource.org/licenses/MIT

package ga

import (
	"math/rand"
	"testing"

	"github.com/maxclique/clique"
)

// TestPickParentsAreDistinct verifies that pickParents samples without
// replacement whenever the population has more than one individual:
// spec.md requires two distinct parents, falling back to reusing the
// same individual only when the population holds a single one.
func TestPickParentsAreDistinct(t *testing.T) {
	g := clique.NewGraph([][2]int{{0, 1}, {1, 2}, {0, 2}})
	e := &engine{pop: []*Individual{
		New(g, 0), New(g, 1), New(g, 2),
	}}
	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 500; i++ {
		p1, p2 := e.pickParents(rng)
		if p1 == p2 {
			t.Fatalf("pickParents returned the same individual twice with %d distinct individuals in the population", len(e.pop))
		}
	}
}

// TestPickParentsReusesSoleIndividual verifies the single-individual
// fallback: with only one distinct individual in the population,
// pickParents must reuse it for both parents rather than panic or loop
// forever trying to find a second distinct index.
func TestPickParentsReusesSoleIndividual(t *testing.T) {
	g := clique.NewGraph([][2]int{{0, 1}})
	e := &engine{pop: []*Individual{New(g, 0)}}
	rng := rand.New(rand.NewSource(1))
	p1, p2 := e.pickParents(rng)
	if p1 != p2 {
		t.Fatal("pickParents should reuse the sole individual for both parents")
	}
}
