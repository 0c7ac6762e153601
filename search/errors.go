package search

import "errors"

// ErrNoSolution is returned, not panicked, when the frontier empties before
// a goal state is found (spec.md §7: "Unsolvable... returned as a normal
// 'no plan' result, not an error").
var ErrNoSolution = errors.New("search: no solution found")
