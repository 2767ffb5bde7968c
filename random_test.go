// Copyright 2013 Sonia Keys
// License MIT: http://opensource.org/licenses/MIT

package clique_test

import (
	"math/rand"
	"testing"

	"github.com/maxclique/clique"
)

func TestRandomGraphRejectsBadArgs(t *testing.T) {
	if _, err := clique.RandomGraph(-1, 0.5, nil); err == nil {
		t.Fatal("want error for negative n")
	}
	if _, err := clique.RandomGraph(5, 1.5, nil); err == nil {
		t.Fatal("want error for density > 1")
	}
}

func TestRandomGraphRespectsVertexCount(t *testing.T) {
	r := rand.New(rand.NewSource(1))
	edges, err := clique.RandomGraph(20, 0.3, r)
	if err != nil {
		t.Fatalf("RandomGraph: %v", err)
	}
	for _, e := range edges {
		if e[0] < 0 || e[0] >= 20 || e[1] < 0 || e[1] >= 20 {
			t.Fatalf("edge %v out of range [0,20)", e)
		}
	}
}

func TestPlantedCliqueContainsClique(t *testing.T) {
	r := rand.New(rand.NewSource(2))
	edges, err := clique.PlantedClique(30, 8, 0.1, r)
	if err != nil {
		t.Fatalf("PlantedClique: %v", err)
	}
	present := make(map[[2]int]bool, len(edges))
	for _, e := range edges {
		present[e] = true
	}
	for u := 0; u < 8; u++ {
		for v := u + 1; v < 8; v++ {
			if !present[[2]int{u, v}] {
				t.Fatalf("planted clique missing edge (%d,%d)", u, v)
			}
		}
	}
}

func TestPlantedCliqueRejectsOversizedClique(t *testing.T) {
	if _, err := clique.PlantedClique(5, 10, 0.2, nil); err == nil {
		t.Fatal("want error when cliqueSize exceeds n")
	}
}
