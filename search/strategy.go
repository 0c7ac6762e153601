package search

import "container/heap"

// Strategy selects which priority the frontier orders nodes by (spec.md
// §4.6). It generalizes teacher solve.go's Algorithm enum, which already
// covered A*/BreadthFirst/DepthFirst, to the four named strategies
// spec.md's generic search calls for.
type Strategy int

const (
	// Breadth orders purely by discovery order (FIFO).
	Breadth Strategy = iota
	// Uniform orders by cumulative cost g.
	Uniform
	// Greedy orders by heuristic estimate h only.
	Greedy
	// AStar orders by g + h.
	AStar
)

func (s Strategy) String() string {
	switch s {
	case Breadth:
		return "breadth"
	case Uniform:
		return "uniform"
	case Greedy:
		return "greedy"
	case AStar:
		return "a_star"
	}
	return "<unknown strategy>"
}

// priority computes the frontier key for a node under the given strategy.
func (s Strategy) priority(counter int, cost, heuristic float64) float64 {
	switch s {
	case Breadth:
		return float64(counter)
	case Uniform:
		return cost
	case Greedy:
		return heuristic
	case AStar:
		return cost + heuristic
	}
	panic("search: invalid strategy")
}

// frontierItem is one entry on the open list: a priority, the insertion
// counter that breaks ties deterministically (and keeps the heap from ever
// needing to compare node values directly), and the arena index of the
// node it refers to.
type frontierItem struct {
	priority float64
	counter  int
	nodeIdx  int
}

// frontier is a min-heap over frontierItem ordered by (priority, counter).
type frontier []frontierItem

func (f frontier) Len() int { return len(f) }

func (f frontier) Less(i, j int) bool {
	if f[i].priority != f[j].priority {
		return f[i].priority < f[j].priority
	}
	return f[i].counter < f[j].counter
}

func (f frontier) Swap(i, j int) { f[i], f[j] = f[j], f[i] }

func (f *frontier) Push(x interface{}) {
	*f = append(*f, x.(frontierItem))
}

func (f *frontier) Pop() interface{} {
	old := *f
	n := len(old)
	item := old[n-1]
	*f = old[:n-1]
	return item
}

var _ heap.Interface = (*frontier)(nil)
