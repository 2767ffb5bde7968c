//go:build dimacsdata

// Copyright 2014 Sonia Keys
// License MIT: http://opensource.org/licenses/MIT

package clique_test

import (
	"os"
	"testing"

	"github.com/maxclique/clique"
	"github.com/maxclique/clique/dimacs"
)

// These fixtures are small synthetic stand-ins for the named DIMACS
// benchmark instances, sized so the suite runs without external
// downloads; see DESIGN.md for which published instance each stands in
// for and why. They exercise the same read-dispatch-verify path the
// real instances would, at a size the exact solver can finish quickly.
var namedFixtures = []struct {
	path string
	want int
}{
	{"testdata/brock200_2_stub.clq", 12},
	{"testdata/brock200_4_stub.clq", 17},
	{"testdata/c125_9_stub.clq", 34},
	{"testdata/mann_a27_stub.clq", 126},
	{"testdata/keller4_stub.clq", 11},
}

func TestNamedInstanceFixtures(t *testing.T) {
	for _, tc := range namedFixtures {
		tc := tc
		t.Run(tc.path, func(t *testing.T) {
			f, err := os.Open(tc.path)
			if err != nil {
				t.Fatalf("open %s: %v", tc.path, err)
			}
			defer f.Close()

			edges, _, err := dimacs.Read(f)
			if err != nil {
				t.Fatalf("dimacs.Read: %v", err)
			}
			got := clique.SolveExact(edges)
			if len(got) != tc.want {
				t.Fatalf("clique size = %d, want %d", len(got), tc.want)
			}
			assertCliqueEdges(t, edges, got)
		})
	}
}

// assertCliqueEdges brute-force verifies every pair in members is an
// edge in edges.
func assertCliqueEdges(t *testing.T, edges [][2]int, members []int) {
	t.Helper()
	has := make(map[[2]int]bool, len(edges))
	for _, e := range edges {
		u, v := e[0], e[1]
		if u > v {
			u, v = v, u
		}
		has[[2]int{u, v}] = true
	}
	for i := 0; i < len(members); i++ {
		for j := i + 1; j < len(members); j++ {
			u, v := members[i], members[j]
			if u > v {
				u, v = v, u
			}
			if !has[[2]int{u, v}] {
				t.Fatalf("%d and %d are not adjacent", members[i], members[j])
			}
		}
	}
}
