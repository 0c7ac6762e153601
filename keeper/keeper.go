// Package keeper implements the inner best-first search that finds a
// keeper walking path through a frozen box configuration (spec.md §4.4,
// C4). It is a search.Domain in its own right, reused by the sokoban
// package both to test reachability of a push-from cell and to test
// keeper-dominance between two macro-states, mirroring original_source's
// KeeperDomain being driven by the very same SearchTree/SearchProblem pair
// as the outer SokobanDomain.
package keeper

import (
	"fmt"

	"github.com/renanaferreira/sokoban-solver/grid"
	"github.com/renanaferreira/sokoban-solver/search"
)

// Domain is a search.Domain over raw keeper positions in a map with a fixed
// set of obstacles (walls plus the current box positions -- boxes never
// move during a keeper walk, so they are folded into the obstacle set by
// the caller before constructing a Domain).
type Domain struct {
	Obstacles map[grid.Position]struct{}
	Size      grid.Size
}

// New builds a keeper Domain over the given obstacle set (walls ∪ boxes)
// and map size.
func New(obstacles map[grid.Position]struct{}, size grid.Size) Domain {
	return Domain{Obstacles: obstacles, Size: size}
}

func (d Domain) blocked(pos grid.Position) bool {
	if !grid.InBounds(pos, d.Size) {
		return true
	}
	_, obstacle := d.Obstacles[pos]
	return obstacle
}

// Actions lists the cardinal moves that stay in bounds and don't enter an
// obstacle (spec.md §4.4 "successors").
func (d Domain) Actions(state search.State) search.Actions {
	pos := state.(grid.Position)
	var actions []search.Action
	for _, dir := range grid.Directions {
		if !d.blocked(grid.Step(pos, dir)) {
			actions = append(actions, dir)
		}
	}
	return search.Expand(actions...)
}

func (d Domain) Result(state search.State, action search.Action) search.State {
	return grid.Step(state.(grid.Position), action.(grid.Direction))
}

// Cost is a unit step cost (spec.md §4.4 "step cost: 1").
func (d Domain) Cost(state search.State, action search.Action) float64 { return 1 }

// Heuristic is manhattan distance to the target, admissible for unit-cost
// cardinal moves (spec.md §4.4).
func (d Domain) Heuristic(state search.State, goal search.State) float64 {
	return float64(grid.Manhattan(state.(grid.Position), goal.(grid.Position)))
}

func (d Domain) Equivalent(a, b search.State) bool {
	return a.(grid.Position) == b.(grid.Position)
}

func (d Domain) Satisfies(state search.State, goal search.State) bool {
	return d.Equivalent(state, goal)
}

func (d Domain) Hash(state search.State) string {
	pos := state.(grid.Position)
	return fmt.Sprintf("%d,%d", pos.X, pos.Y)
}

// FindPath runs a greedy best-first search from start to target over
// obstacles and returns the sequence of directions taken (exclusive of any
// push), or ok=false if target is unreachable (spec.md §4.4 "Return value").
func FindPath(obstacles map[grid.Position]struct{}, size grid.Size, start, target grid.Position) (path []grid.Direction, ok bool) {
	if start == target {
		return nil, true
	}
	domain := New(obstacles, size)
	tree := search.NewTree(domain, start, target).Strategy(search.Greedy)
	result, err := tree.Search()
	if err != nil {
		return nil, false
	}
	path = make([]grid.Direction, 0, len(result.Plan))
	for _, action := range result.Plan {
		path = append(path, action.(grid.Direction))
	}
	return path, true
}
