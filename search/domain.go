// Package search implements the generic, strategy-parameterised best-first
// tree search described in spec.md §4.6 (C6). It knows nothing about
// Sokoban: any domain implementing Domain can be solved by a Tree, which is
// exactly how both the outer box-push search (package sokoban) and the
// inner keeper-walk search (package keeper) are built on top of it.
//
// This generalizes teacher bertbaron-pathfinding's solve.Solver /
// solve.State pair from a single hard-coded state type to an arbitrary
// domain-supplied one, matching the SearchDomain contract of
// original_source/tree_search.py.
package search

// Action is an opaque, domain-specific action value. The search engine
// never inspects it; it only threads it through Cost, Result and the
// returned plan.
type Action = interface{}

// State is an opaque, domain-specific state value.
type State = interface{}

// Actions is the result of Domain.Actions: either a concrete list of legal
// actions, or the Skip sentinel meaning "this state is dominated by one
// already explored, do not expand it" (spec.md §4.5.1, §4.6 step 3). Go has
// no sum types, so the skip marker is carried as a boolean flag rather than
// folding it into a nil/empty slice, which would be indistinguishable from
// "legitimately no moves" (a dead state, not a skipped one).
type Actions struct {
	Skip bool
	List []Action
}

// Expand wraps a concrete action list as a non-skip Actions value.
func Expand(actions ...Action) Actions {
	return Actions{List: actions}
}

// SkipDominated is the sentinel Actions value signalling that a state
// should be marked visited without being expanded.
var SkipDominated = Actions{Skip: true}

// Domain is the capability set the generic search consumes (spec.md §9
// "Polymorphic domain"), mirroring original_source/tree_search.py's
// SearchDomain abstract base class method for method.
type Domain interface {
	// Actions lists the legal actions from state, or returns SkipDominated.
	Actions(state State) Actions

	// Result returns the state reached by performing action in state.
	Result(state State, action Action) State

	// Cost returns the cost of performing action in state.
	Cost(state State, action Action) float64

	// Heuristic estimates the cost remaining from state to goal.
	Heuristic(state State, goal State) float64

	// Equivalent reports whether two states should be treated as the same
	// for cycle detection against ancestors in the search tree.
	Equivalent(a, b State) bool

	// Satisfies reports whether state meets goal.
	Satisfies(state State, goal State) bool

	// Hash produces a stable key for state, used by the visited set. Per
	// spec.md P5, Hash(a) == Hash(b) must hold iff Equivalent(a, b).
	Hash(state State) string
}
