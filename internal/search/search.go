// Package search finds the cheapest way to sort a burrow.
//
// The configuration graph is never built: successors are generated by the
// burrow model each time a configuration is expanded. The frontier is a binary
// heap without decrease-key, so improved configurations are pushed again and
// outdated entries are dropped when popped.
package search

import (
	"errors"

	"github.com/geofduf/burrow/internal/burrow"
	"github.com/geofduf/burrow/internal/heap"
)

// ErrNotReachable is returned when every reachable configuration has been
// expanded without meeting the goal.
var ErrNotReachable = errors.New("search: goal configuration is not reachable")

// Options tune a search run.
type Options struct {
	// Heuristic orders the frontier by accumulated cost plus the burrow's
	// lower bound on the remaining cost. The result is the same; usually
	// fewer configurations are expanded.
	Heuristic bool
}

// Stats describe the work done by a run.
type Stats struct {
	Expanded    int // configurations whose moves were enumerated
	Pushed      int // frontier insertions, including the start
	Stale       int // popped entries superseded by a cheaper path
	Discovered  int // distinct configurations seen
	MaxFrontier int
}

// Result is the outcome of a successful run.
type Result struct {
	Cost  int
	Stats Stats
}

type entry struct {
	priority int
	cost     int
	c        burrow.Configuration
}

// MinimumCost returns the minimum energy needed to take b from start to its
// goal, or ErrNotReachable.
func MinimumCost(b *burrow.Burrow, start burrow.Configuration) (int, error) {
	res, err := Run(b, start, Options{})
	if err != nil {
		return 0, err
	}
	return res.Cost, nil
}

// Run is MinimumCost with options and statistics. The returned Stats are
// filled in even when the error is ErrNotReachable.
func Run(b *burrow.Burrow, start burrow.Configuration, opts Options) (Result, error) {
	if err := b.Check(start); err != nil {
		return Result{}, err
	}
	r := newRun(b, start, opts)
	for r.frontier.Len() > 0 {
		e, ok := r.next()
		if !ok {
			continue
		}
		if b.IsGoal(e.c) {
			return Result{Cost: e.cost, Stats: r.stats()}, nil
		}
		r.expand(e)
	}
	return Result{Stats: r.stats()}, ErrNotReachable
}

// Distances explores everything reachable from start and returns the minimum
// cost of reaching each configuration.
func Distances(b *burrow.Burrow, start burrow.Configuration) (map[burrow.Configuration]int, error) {
	if err := b.Check(start); err != nil {
		return nil, err
	}
	r := newRun(b, start, Options{})
	for r.frontier.Len() > 0 {
		if e, ok := r.next(); ok {
			r.expand(e)
		}
	}
	return r.best, nil
}

// run holds the state owned by one search.
type run struct {
	b        *burrow.Burrow
	opts     Options
	best     map[burrow.Configuration]int
	frontier *heap.Heap[entry]
	moves    []burrow.Move
	st       Stats
}

func newRun(b *burrow.Burrow, start burrow.Configuration, opts Options) *run {
	r := &run{
		b:    b,
		opts: opts,
		best: map[burrow.Configuration]int{start: 0},
		frontier: heap.New(func(x, y entry) bool {
			return x.priority < y.priority
		}),
	}
	r.push(start, 0)
	return r
}

func (r *run) push(c burrow.Configuration, cost int) {
	priority := cost
	if r.opts.Heuristic {
		priority += r.b.LowerBound(c)
	}
	r.frontier.Push(entry{priority: priority, cost: cost, c: c})
	r.st.Pushed++
	r.st.MaxFrontier = max(r.st.MaxFrontier, r.frontier.Len())
}

// next pops the cheapest entry, reporting false if it is stale.
func (r *run) next() (entry, bool) {
	e := r.frontier.Pop()
	if e.cost > r.best[e.c] {
		r.st.Stale++
		return e, false
	}
	return e, true
}

func (r *run) expand(e entry) {
	r.st.Expanded++
	r.moves = r.b.AppendMoves(r.moves[:0], e.c)
	for _, m := range r.moves {
		cost := e.cost + m.Cost
		if known, ok := r.best[m.Next]; ok && known <= cost {
			continue
		}
		r.best[m.Next] = cost
		r.push(m.Next, cost)
	}
}

func (r *run) stats() Stats {
	st := r.st
	st.Discovered = len(r.best)
	return st
}
