// Package workerloop exercises the single-writer/single-reader plan
// handoff spec.md §5 describes: a background worker solves one level at a
// time on its own goroutine and publishes the outcome through a channel;
// a newly submitted level cancels whatever the previous worker was still
// computing by discarding its late result rather than attempting to abort
// it mid-search (spec.md §5: "no explicit abort... discarded").
//
// Grounded in the teacher pack's closest single-producer/single-consumer
// idiom, vxm-ppz/go-solution's sync.Cond-guarded PriorityQueue, translated
// to Go's more idiomatic channel-based handoff since the teacher's own
// solve package has no concurrency primitives of its own to generalize.
package workerloop

import (
	"sync"

	"github.com/renanaferreira/sokoban-solver/levelmap"
	"github.com/renanaferreira/sokoban-solver/plan"
	"github.com/renanaferreira/sokoban-solver/search"
	"github.com/renanaferreira/sokoban-solver/sokoban"
	"github.com/renanaferreira/sokoban-solver/staticmap"
)

// Solve runs one level to completion and produces its plan.Result. Pulled
// out as a free function so Dispatcher can run it on a goroutine without
// depending on any particular domain-construction details.
func Solve(m levelmap.Map, strategy search.Strategy) plan.Result {
	tables := staticmap.Analyze(m)
	domain := sokoban.NewDomain(m, tables)
	initial := sokoban.InitialState(m)
	goal := sokoban.GoalState(m)

	tree := search.NewTree(domain, initial, goal).Strategy(strategy)
	result, err := tree.Search()
	if err != nil {
		return plan.Result{Err: err}
	}

	actions := make([]sokoban.MacroAction, 0, len(result.Plan))
	for _, a := range result.Plan {
		actions = append(actions, a.(sokoban.MacroAction))
	}
	return plan.Result{Keystrokes: plan.Flatten(actions)}
}

// Worker runs a single level's search on its own goroutine, publishing the
// outcome through Done once. Done has buffer 1 so the goroutine never
// blocks on a publish nobody is left to receive (spec.md §5's release
// rather than rendezvous semantics).
type Worker struct {
	Done chan plan.Result
}

// Start launches the search in the background and returns immediately.
func Start(m levelmap.Map, strategy search.Strategy) *Worker {
	w := &Worker{Done: make(chan plan.Result, 1)}
	go func() {
		w.Done <- Solve(m, strategy)
	}()
	return w
}

// Dispatcher serializes level submissions: submitting a new level discards
// any still-running previous worker's eventual result instead of waiting
// for or cancelling it (spec.md §5).
type Dispatcher struct {
	mu      sync.Mutex
	current *Worker
	gen     uint64
}

// Submit starts solving m and returns a channel that receives exactly the
// result for this submission -- never one from a level submitted earlier,
// even if that earlier search is still running when this one starts.
func (d *Dispatcher) Submit(m levelmap.Map, strategy search.Strategy) <-chan plan.Result {
	d.mu.Lock()
	d.gen++
	gen := d.gen
	d.mu.Unlock()

	worker := Start(m, strategy)

	d.mu.Lock()
	d.current = worker
	d.mu.Unlock()

	out := make(chan plan.Result, 1)
	go func() {
		result := <-worker.Done
		d.mu.Lock()
		stale := gen != d.gen
		d.mu.Unlock()
		if stale {
			return
		}
		out <- result
	}()
	return out
}
