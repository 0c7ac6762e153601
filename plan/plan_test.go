package plan_test

import (
	"testing"

	"github.com/renanaferreira/sokoban-solver/grid"
	"github.com/renanaferreira/sokoban-solver/plan"
	"github.com/renanaferreira/sokoban-solver/sokoban"
)

func TestFlattenConcatenatesInOrder(t *testing.T) {
	actions := []sokoban.MacroAction{
		{Box: grid.Position{X: 1, Y: 1}, Keystrokes: []grid.Direction{grid.Right, grid.Right}},
		{Box: grid.Position{X: 3, Y: 1}, Keystrokes: []grid.Direction{grid.Down}},
	}
	got := plan.Flatten(actions)
	if got != "dds" {
		t.Fatalf("Flatten() = %q; want %q", got, "dds")
	}
}

func TestFlattenEmpty(t *testing.T) {
	if got := plan.Flatten(nil); got != "" {
		t.Fatalf("Flatten(nil) = %q; want empty string", got)
	}
}

func TestFromPlanConvertsOpaqueActions(t *testing.T) {
	raw := []interface{}{
		sokoban.MacroAction{Keystrokes: []grid.Direction{grid.Up}},
	}
	if got := plan.FromPlan(raw); got != "w" {
		t.Fatalf("FromPlan() = %q; want %q", got, "w")
	}
}
