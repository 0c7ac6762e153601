// Package plan flattens a solved search.Result's macro-action list into the
// single external keystroke string clients and the CLI consume (spec.md
// §4.6's "Plan extraction", C7), matching the original's plan-printing
// shape while working from the generic search.Result rather than a
// Sokoban-specific return type.
package plan

import (
	"strings"

	"github.com/renanaferreira/sokoban-solver/sokoban"
)

// Result is the value handed from a solving worker to whatever publishes or
// consumes its outcome (spec.md §5's single-writer/single-reader plan
// field; see internal/workerloop): either a flattened keystroke string, or
// the error the search failed with.
type Result struct {
	Keystrokes string
	Err        error
}

// Flatten concatenates every macro-action's keystrokes, in solution order,
// into one string of 'w'/'a'/'s'/'d' characters.
func Flatten(actions []sokoban.MacroAction) string {
	var b strings.Builder
	for _, action := range actions {
		for _, d := range action.Keystrokes {
			b.WriteByte(d.Keystroke())
		}
	}
	return b.String()
}

// FromPlan converts a search.Result's opaque action list into the
// keystroke string, asserting each action is a sokoban.MacroAction; it
// panics if handed a plan from a different domain, which would indicate a
// caller wiring mismatch rather than a runtime condition to recover from.
func FromPlan(rawPlan []interface{}) string {
	actions := make([]sokoban.MacroAction, 0, len(rawPlan))
	for _, a := range rawPlan {
		actions = append(actions, a.(sokoban.MacroAction))
	}
	return Flatten(actions)
}
