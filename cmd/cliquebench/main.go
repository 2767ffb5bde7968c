// Copyright 2014 Sonia Keys
// License MIT: http://opensource.org/licenses/MIT

// Command cliquebench reads a DIMACS graph file, runs the dispatcher
// (or a forced solver), and reports the resulting clique size and wall
// time.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/maxclique/clique"
	"github.com/maxclique/clique/dimacs"
	"github.com/maxclique/clique/ga"
)

func main() {
	path := flag.String("dimacs", "", "path to a DIMACS .clq/.col file")
	mode := flag.String("mode", "auto", "exact | heuristic | auto")
	pop := flag.Int("pop", ga.DefaultConfig().PopSize, "GA population size")
	gen := flag.Int("gen", ga.DefaultConfig().Generations, "GA generation budget")
	local := flag.Int("local", ga.DefaultConfig().LocalIters, "GA local-improvement iterations")
	stall := flag.Int("stall", ga.DefaultConfig().StagnationLimit, "GA stagnation limit before restart")
	seed := flag.Int64("seed", 0, "GA RNG seed (0 = time-seeded)")
	verbose := flag.Bool("verbose", false, "print the clique's external ids (and, in heuristic mode, one GA progress line per generation)")
	flag.Parse()

	if *path == "" {
		log.Fatal("cliquebench: -dimacs is required")
	}
	f, err := os.Open(*path)
	if err != nil {
		log.Fatalf("cliquebench: %v", err)
	}
	defer f.Close()

	edges, n, err := dimacs.Read(f)
	if err != nil {
		log.Fatalf("cliquebench: %v", err)
	}

	cfg := ga.Config{
		PopSize:         *pop,
		Generations:     *gen,
		LocalIters:      *local,
		StagnationLimit: *stall,
		Seed:            *seed,
		Verbose:         *verbose,
	}

	start := time.Now()
	var result []int
	switch *mode {
	case "exact":
		result = clique.SolveExact(edges)
	case "heuristic":
		result = clique.SolveHeuristic(edges, cfg)
	case "auto":
		result = clique.Solve(edges)
	default:
		log.Fatalf("cliquebench: unknown -mode %q", *mode)
	}
	elapsed := time.Since(start)

	fmt.Printf("n=%d clique_size=%d elapsed=%s\n", n, len(result), elapsed)
	if *verbose {
		fmt.Printf("clique=%v\n", result)
	}
}
