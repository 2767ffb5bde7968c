// Copyright 2014 Sonia Keys
// License MIT: http://opensource.org/licenses/MIT

// engine.go
//
// The evolutionary engine: population initialization, per-generation
// stagnation checks, elitism, crossover, mutation, and data-parallel
// offspring generation.

package ga

import (
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/willf/bitset"

	"github.com/maxclique/clique"
)

// Config holds the evolutionary solver's fixed-at-init parameters.
type Config struct {
	PopSize         int   // P: individuals per generation
	Generations     int   // T: outer iteration budget
	LocalIters      int   // L: local-improvement iterations per individual
	StagnationLimit int   // S: generations with no improvement before a restart
	Seed            int64 // if zero, seeded from time.Now().UnixNano()
	Verbose         bool  // if true, log one line per generation
}

// DefaultConfig returns reasonable parameters for graphs in the
// low hundreds to low thousands of vertices.
func DefaultConfig() Config {
	return Config{
		PopSize:         30,
		Generations:     150,
		LocalIters:      15,
		StagnationLimit: 10,
	}
}

// Solve returns the best clique found within cfg's generation budget.
// Not deterministic unless cfg.Seed is nonzero.
func Solve(g *clique.Graph, cfg Config) *bitset.BitSet {
	if g.N() == 0 {
		return bitset.New(0)
	}
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	e := &engine{g: g, cfg: cfg, rng: rand.New(rand.NewSource(seed)), seed: seed}
	return e.run()
}

type engine struct {
	g    *clique.Graph
	cfg  Config
	rng  *rand.Rand
	seed int64

	pop         []*Individual
	best        *Individual
	prevBestLen int
	stagnation  int
}

func (e *engine) run() *bitset.BitSet {
	e.pop = e.initPopulation()
	e.best = e.bestOf(e.pop)
	e.prevBestLen = e.best.Len()

	for gen := 0; gen < e.cfg.Generations; gen++ {
		e.evolve(gen)
	}
	if last := e.bestOf(e.pop); last.Len() > e.best.Len() {
		e.best = last.Clone()
	}
	return e.best.K.Clone()
}

// initPopulation seeds PopSize-1 individuals (at most n) from distinct
// random start vertices plus one elite seed from the maximum-degree vertex
// (ties broken by smallest id), each expanded to a maximal clique.
func (e *engine) initPopulation() []*Individual {
	n := e.g.N()
	pop := make([]*Individual, 0, e.cfg.PopSize)

	perm := e.rng.Perm(n)
	for i := 0; i < e.cfg.PopSize-1 && i < n; i++ {
		ind := New(e.g, perm[i])
		ind.GreedyExpand()
		pop = append(pop, ind)
	}

	eliteSeed := maxDegreeVertex(e.g)
	elite := New(e.g, eliteSeed)
	elite.GreedyExpand()
	pop = append(pop, elite)

	return pop
}

// evolve runs one generation in place: stagnation check and possible
// restart, elite identification and refinement, then parallel offspring
// generation, replacing e.pop with [refined elite] + offspring.
func (e *engine) evolve(gen int) {
	if e.best.Len() == e.prevBestLen {
		e.stagnation++
	} else {
		e.stagnation = 0
		e.prevBestLen = e.best.Len()
	}
	if e.stagnation >= e.cfg.StagnationLimit {
		e.pop = e.initPopulation()
		e.stagnation = 0
	}

	elite := e.bestOf(e.pop)
	if elite.Len() > e.best.Len() {
		e.best = elite.Clone()
	}

	refined := elite.Clone()
	workerRNG := rand.New(rand.NewSource(e.seed + int64(gen)*7919 + 1))
	refined.LocalImprovement(e.cfg.LocalIters, workerRNG)

	offspring := e.generateOffspring(gen)

	next := make([]*Individual, 0, e.cfg.PopSize)
	next = append(next, refined)
	next = append(next, offspring...)
	e.pop = next

	if e.cfg.Verbose {
		fmt.Printf("ga: generation %d best=%d stagnation=%d\n", gen, e.best.Len(), e.stagnation)
	}
}

// generateOffspring produces PopSize-1 children, each on its own
// goroutine writing to a disjoint result slot (no shared mutable
// state, so no mutex is needed), each goroutine owning a private RNG
// seeded from the engine seed, the generation number, and its slot.
func (e *engine) generateOffspring(gen int) []*Individual {
	count := e.cfg.PopSize - 1
	if count < 0 {
		count = 0
	}
	children := make([]*Individual, count)

	var wg sync.WaitGroup
	wg.Add(count)
	for slot := 0; slot < count; slot++ {
		slot := slot
		go func() {
			defer wg.Done()
			workerRNG := rand.New(rand.NewSource(e.seed + int64(gen)*7919 + int64(slot) + 2))
			p1, p2 := e.pickParents(workerRNG)
			child := crossover(e.g, p1, p2, workerRNG)
			if child.Len() <= min(p1.Len(), p2.Len()) {
				mutate(child, workerRNG)
			}
			child.LocalImprovement(e.cfg.LocalIters, workerRNG)
			children[slot] = child
		}()
	}
	wg.Wait()
	return children
}

// pickParents draws two distinct parents from the current population
// by sampling without replacement; if the population has only one
// individual, it is reused for both.
func (e *engine) pickParents(rng *rand.Rand) (*Individual, *Individual) {
	if len(e.pop) == 1 {
		return e.pop[0], e.pop[0]
	}
	idx := rng.Perm(len(e.pop))[:2]
	return e.pop[idx[0]], e.pop[idx[1]]
}

// bestOf returns the individual in pop with the largest K, ties broken
// by position (first occurrence).
func (e *engine) bestOf(pop []*Individual) *Individual {
	best := pop[0]
	for _, ind := range pop[1:] {
		if ind.Len() > best.Len() {
			best = ind
		}
	}
	return best
}

// maxDegreeVertex returns the vertex of highest degree in g, ties
// broken by smallest id.
func maxDegreeVertex(g *clique.Graph) int {
	best := 0
	for v := 1; v < g.N(); v++ {
		if g.Degree(v) > g.Degree(best) {
			best = v
		}
	}
	return best
}

// crossover combines two parents into a child. When K_p1 and K_p2
// intersect, the child is seeded from the shared clique and grown by
// adding the rest of the intersection (which crossover can always add,
// since the intersection of two cliques is itself a clique). When they
// are disjoint, the child is seeded from the union sorted by descending
// degree within the union. Either way, crossover finishes with
// GreedyExpand.
func crossover(g *clique.Graph, p1, p2 *Individual, rng *rand.Rand) *Individual {
	shared := p1.K.Intersection(p2.K)
	if shared.Any() {
		members := shuffledMembers(shared, rng)
		child := New(g, members[0])
		for _, v := range members[1:] {
			if child.PA.Test(uint(v)) {
				child.Add(v)
			}
		}
		child.GreedyExpand()
		return child
	}

	union := p1.K.Union(p2.K)
	order := sortedByDegreeDesc(g, union)
	child := New(g, order[0])
	for _, v := range order[1:] {
		if child.PA.Test(uint(v)) {
			child.Add(v)
		}
	}
	child.GreedyExpand()
	return child
}

// mutate removes one random member of child's clique, then either
// greedily re-expands (probability 0.5) or performs a random walk to a
// maximal clique by repeatedly adding a uniformly random PA member.
func mutate(child *Individual, rng *rand.Rand) {
	if child.Len() == 0 {
		return
	}
	members := shuffledMembers(child.K, rng)
	child.Remove(members[0])

	if rng.Float64() < 0.5 {
		child.GreedyExpand()
		return
	}
	for child.PA.Any() {
		v := randomMember(child.PA, rng)
		child.Add(v)
	}
}

// shuffledMembers returns the members of set in random order.
func shuffledMembers(set *bitset.BitSet, rng *rand.Rand) []int {
	members := make([]int, 0, set.Count())
	for i, ok := set.NextSet(0); ok; i, ok = set.NextSet(i + 1) {
		members = append(members, int(i))
	}
	rng.Shuffle(len(members), func(i, j int) {
		members[i], members[j] = members[j], members[i]
	})
	return members
}

// randomMember returns a uniformly random member of a nonempty set.
func randomMember(set *bitset.BitSet, rng *rand.Rand) int {
	k := rng.Intn(int(set.Count()))
	i, ok := set.NextSet(0)
	for ; k > 0; k-- {
		i, ok = set.NextSet(i + 1)
	}
	if !ok {
		panic("ga: randomMember called on fewer members than Count reported")
	}
	return int(i)
}
